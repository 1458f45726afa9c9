// Package tui is the interactive playground: an editor panel of controls for
// the active scene next to its live preview.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/designplay/internal/editor"
	"github.com/jask/designplay/internal/preview"
	"github.com/jask/designplay/internal/scene"
	"github.com/jask/designplay/internal/store"
)

// Options tune the app; zero values use the defaults.
type Options struct {
	Theme          scene.ThemeMode
	Scale          float64
	TrayCloseDelay time.Duration
	Keys           []KeyBinding
}

// App ties the store, the editor controls and the preview together.
type App struct {
	store    *store.Store
	log      *zap.Logger
	opts     Options
	keys     *KeyRegistry
	controls []editor.Control
	cursor   int
	offset   int
	input    textinput.Model
	editing  bool
	closer   scene.TrayCloser
	closeSeq int
	status   string
	errored  bool
	width    int
	height   int
}

// trayClosedMsg settles the tray close started as number seq.
type trayClosedMsg struct{ seq int }

func New(s *store.Store, log *zap.Logger, opts Options) *App {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Scale <= 0 {
		opts.Scale = preview.DefaultScale
	}
	bindings := opts.Keys
	if len(bindings) == 0 {
		bindings = DefaultKeyBindings()
	}
	in := textinput.New()
	in.Prompt = "› "
	a := &App{
		store:  s,
		log:    log.Named("tui"),
		opts:   opts,
		keys:   NewKeyRegistry(bindings),
		input:  in,
		width:  160,
		height: 48,
	}
	a.refresh()
	return a
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) scope() string {
	if a.editing {
		return scopeEdit
	}
	return scopeBrowse
}

// refresh rebuilds the controls of the active tab from the latest state.
func (a *App) refresh() {
	a.controls = editor.For(a.store.Tab(), a.store)
	if a.cursor >= len(a.controls) {
		a.cursor = max(0, len(a.controls)-1)
	}
}

func (a *App) current() (editor.Control, bool) {
	if a.cursor < 0 || a.cursor >= len(a.controls) {
		return editor.Control{}, false
	}
	return a.controls[a.cursor], true
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		if a.editing {
			return a.handleEditKey(m)
		}
		return a.handleKey(m)
	case trayClosedMsg:
		// Only the latest close settles; earlier ticks are superseded.
		if m.seq == a.closeSeq {
			a.closer.Settle()
		}
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := a.keys.Action(m, scopeBrowse)
	switch {
	case action == actionQuit:
		return a, tea.Quit
	case action == actionNextTab:
		a.switchTab(a.tabIndex() + 1)
	case action == actionPrevTab:
		a.switchTab(a.tabIndex() - 1)
	case len(action) == len(actionTab)+1 && action[:len(actionTab)] == actionTab:
		a.switchTab(int(action[len(actionTab)] - '1'))
	case action == actionUp:
		if a.cursor > 0 {
			a.cursor--
		}
	case action == actionDown:
		if a.cursor < len(a.controls)-1 {
			a.cursor++
		}
	case action == actionPrev:
		return a, a.shift(-1)
	case action == actionNext:
		return a, a.shift(1)
	case action == actionActivate:
		return a, a.activate()
	case action == actionEscape:
		return a, a.closeTray()
	}
	return a, nil
}

func (a *App) handleEditKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.keys.Action(m, scopeEdit) {
	case actionQuit:
		return a, tea.Quit
	case actionCommit:
		a.editing = false
		a.input.Blur()
		return a, a.apply(a.input.Value())
	case actionCancel:
		a.editing = false
		a.input.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	return a, cmd
}

func (a *App) tabIndex() int {
	tab := a.store.Tab()
	for i, t := range scene.Tabs {
		if t == tab {
			return i
		}
	}
	return 0
}

func (a *App) switchTab(i int) {
	n := len(scene.Tabs)
	tab := scene.Tabs[((i%n)+n)%n]
	if tab == a.store.Tab() {
		return
	}
	a.store.SetTab(tab)
	a.cursor, a.offset = 0, 0
	a.refresh()
}

// activate edits text and number controls inline; the other kinds apply at once.
func (a *App) activate() tea.Cmd {
	c, ok := a.current()
	if !ok {
		return nil
	}
	switch c.Kind {
	case editor.KindText, editor.KindNumber:
		a.editing = true
		a.input.SetValue(c.Value)
		a.input.CursorEnd()
		return a.input.Focus()
	case editor.KindChoice:
		return a.apply(c.Cycle(1))
	default:
		return a.apply("")
	}
}

// shift cycles a choice or steps a number without opening the input.
func (a *App) shift(delta int) tea.Cmd {
	c, ok := a.current()
	if !ok {
		return nil
	}
	switch c.Kind {
	case editor.KindChoice:
		return a.apply(c.Cycle(delta))
	case editor.KindNumber:
		return a.apply(c.Step(delta))
	case editor.KindToggle:
		return a.apply("")
	}
	return nil
}

func (a *App) apply(input string) tea.Cmd {
	c, ok := a.current()
	if !ok {
		return nil
	}
	if err := c.Apply(input); err != nil {
		a.log.Debug("control rejected input", zap.String("control", c.Label), zap.Error(err))
		a.status, a.errored = err.Error(), true
		return nil
	}
	a.log.Debug("control applied", zap.String("group", c.Group), zap.String("control", c.Label))
	a.status, a.errored = fmt.Sprintf("%s · %s", c.Group, c.Label), false
	a.refresh()
	return nil
}

// closeTray starts the tray exit; a tick settles it after the close delay.
func (a *App) closeTray() tea.Cmd {
	if a.store.Tab() != scene.TabTray {
		return nil
	}
	delay := a.closer.Close()
	if a.opts.TrayCloseDelay > 0 {
		delay = a.opts.TrayCloseDelay
	}
	a.closeSeq++
	seq := a.closeSeq
	return tea.Tick(delay, func(time.Time) tea.Msg { return trayClosedMsg{seq: seq} })
}

// Closing reports whether the tray exit is running.
func (a *App) Closing() bool { return a.closer.Closing() }

// Preview draws the active scene the way the preview panel shows it.
func (a *App) Preview() string {
	st := a.store.State()
	root := preview.Build(st, preview.Options{Closing: a.closer.Closing(), Theme: a.opts.Theme})
	return preview.Render(root, a.opts.Scale)
}
