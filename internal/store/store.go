package store

import (
	"sync"
	"time"

	"github.com/jask/designplay/internal/scene"
)

// State is the aggregate of every scene slice plus the active tab.
type State struct {
	Tab      scene.Tab
	Tray     scene.TrayNotice
	Layout   scene.Layout
	Content  scene.Content
	Approval scene.Approval
	Modal    scene.Modal
}

// Defaults builds a fresh state with new ids and the tray clock set to now.
func Defaults(now time.Time) State {
	return State{
		Tab:      scene.TabTray,
		Tray:     scene.DefaultTray(now),
		Layout:   scene.DefaultLayout(),
		Content:  scene.DefaultContent(),
		Approval: scene.DefaultApproval(),
		Modal:    scene.DefaultModal(),
	}
}

type Option func(*Store)

// WithClock replaces time.Now for timestamped updates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store owns the state. Every update applies a transform to the latest value
// under the lock and then notifies subscribers in commit order.
type Store struct {
	mu     sync.Mutex
	notify sync.Mutex
	state  State
	now    func() time.Time
	subs   map[int]func(State)
	nextID int
}

func New(initial State, opts ...Option) *Store {
	s := &Store{state: initial, now: time.Now, subs: map[int]func(State){}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to run after every committed update. fn must not
// update the store itself. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) Now() time.Time { return s.now() }

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Tab() scene.Tab              { return s.State().Tab }
func (s *Store) Tray() scene.TrayNotice      { return s.State().Tray }
func (s *Store) Layout() scene.Layout        { return s.State().Layout }
func (s *Store) Content() scene.Content      { return s.State().Content }
func (s *Store) Approval() scene.Approval    { return s.State().Approval }
func (s *Store) Modal() scene.Modal          { return s.State().Modal }
func (s *Store) Update(fn func(State) State) { s.commit(fn) }
func (s *Store) Replace(st State)            { s.commit(func(State) State { return st }) }

func (s *Store) SetTab(t scene.Tab) {
	s.commit(func(st State) State { st.Tab = parseTab(t); return st })
}

func (s *Store) SetTray(v scene.TrayNotice) {
	s.UpdateTray(func(scene.TrayNotice) scene.TrayNotice { return v })
}

func (s *Store) SetLayout(v scene.Layout) {
	s.UpdateLayout(func(scene.Layout) scene.Layout { return v })
}

func (s *Store) SetContent(v scene.Content) {
	s.UpdateContent(func(scene.Content) scene.Content { return v })
}

func (s *Store) SetApproval(v scene.Approval) {
	s.UpdateApproval(func(scene.Approval) scene.Approval { return v })
}

func (s *Store) SetModal(v scene.Modal) { s.UpdateModal(func(scene.Modal) scene.Modal { return v }) }

func (s *Store) UpdateTray(fn func(scene.TrayNotice) scene.TrayNotice) {
	s.commit(func(st State) State { st.Tray = fn(st.Tray); return st })
}

func (s *Store) UpdateLayout(fn func(scene.Layout) scene.Layout) {
	s.commit(func(st State) State { st.Layout = fn(st.Layout); return st })
}

func (s *Store) UpdateContent(fn func(scene.Content) scene.Content) {
	s.commit(func(st State) State { st.Content = fn(st.Content); return st })
}

func (s *Store) UpdateApproval(fn func(scene.Approval) scene.Approval) {
	s.commit(func(st State) State { st.Approval = fn(st.Approval); return st })
}

func (s *Store) UpdateModal(fn func(scene.Modal) scene.Modal) {
	s.commit(func(st State) State { st.Modal = fn(st.Modal); return st })
}

// UpdateTrayAt is UpdateTray for transforms that stamp the current time.
func (s *Store) UpdateTrayAt(fn func(scene.TrayNotice, time.Time) scene.TrayNotice) {
	now := s.now()
	s.UpdateTray(func(t scene.TrayNotice) scene.TrayNotice { return fn(t, now) })
}

// ResetTray restores the tray defaults with a fresh timestamp.
func (s *Store) ResetTray() {
	s.SetTray(scene.DefaultTray(s.now()))
}

func (s *Store) commit(fn func(State) State) {
	s.mu.Lock()
	s.state = fn(s.state)
	next := s.state
	subs := make([]func(State), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if sub, ok := s.subs[id]; ok {
			subs = append(subs, sub)
		}
	}
	// Taking notify before releasing mu keeps notifications in commit order.
	s.notify.Lock()
	s.mu.Unlock()
	defer s.notify.Unlock()
	for _, sub := range subs {
		sub(next)
	}
}

func parseTab(t scene.Tab) scene.Tab {
	return scene.Parse(string(t), scene.Tabs, scene.TabTray)
}
