// Package editor exposes each scene slice as a flat list of controls. Every
// control applies its input through exactly one store update, so the preview
// and the persisted snapshot always see a single consistent change.
package editor

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jask/designplay/internal/scene"
	"github.com/jask/designplay/internal/store"
)

// Kind selects how a control is edited.
type Kind string

const (
	KindText   Kind = "text"
	KindToggle Kind = "toggle"
	KindChoice Kind = "choice"
	KindNumber Kind = "number"
	KindAction Kind = "action"
)

// ErrInvalidInput is returned when a choice or number control rejects its input.
var ErrInvalidInput = errors.New("invalid input")

// Control is one editable property of a scene.
type Control struct {
	Group   string
	Label   string
	Kind    Kind
	Value   string
	Options []string
	Depth   int
	Min     int
	Max     int

	apply func(string) error
}

// Apply feeds input to the control. Text controls store it verbatim,
// toggles flip regardless of input, choices require one of Options,
// numbers are parsed and clamped to [Min, Max], actions ignore it.
func (c Control) Apply(input string) error {
	if c.apply == nil {
		return nil
	}
	return c.apply(input)
}

// On reports whether a toggle is switched on.
func (c Control) On() bool { return c.Kind == KindToggle && c.Value == "on" }

// Cycle returns the choice option delta steps away from the current value.
func (c Control) Cycle(delta int) string {
	if len(c.Options) == 0 {
		return c.Value
	}
	i := slices.Index(c.Options, c.Value)
	if i < 0 {
		i = 0
		if delta > 0 {
			delta--
		}
	}
	n := len(c.Options)
	return c.Options[((i+delta)%n+n)%n]
}

// Step returns the number value moved by delta and clamped.
func (c Control) Step(delta int) string {
	v, err := strconv.Atoi(c.Value)
	if err != nil {
		v = c.Min
	}
	return strconv.Itoa(min(max(v+delta, c.Min), c.Max))
}

func text(group, label, value string, set func(string)) Control {
	return Control{Group: group, Label: label, Kind: KindText, Value: value, apply: func(in string) error {
		set(in)
		return nil
	}}
}

func toggle(group, label string, on bool, flip func()) Control {
	v := "off"
	if on {
		v = "on"
	}
	return Control{Group: group, Label: label, Kind: KindToggle, Value: v, apply: func(string) error {
		flip()
		return nil
	}}
}

func choice(group, label, value string, options []string, set func(string)) Control {
	return Control{Group: group, Label: label, Kind: KindChoice, Value: value, Options: options, apply: func(in string) error {
		if !slices.Contains(options, in) {
			return fmt.Errorf("%s: %q is not one of %s: %w", label, in, strings.Join(options, ", "), ErrInvalidInput)
		}
		set(in)
		return nil
	}}
}

func number(group, label string, value, lo, hi int, set func(int)) Control {
	return Control{Group: group, Label: label, Kind: KindNumber, Value: strconv.Itoa(value), Min: lo, Max: hi, apply: func(in string) error {
		v, err := strconv.Atoi(strings.TrimSpace(in))
		if err != nil {
			return fmt.Errorf("%s: %q is not a number: %w", label, in, ErrInvalidInput)
		}
		set(min(max(v, lo), hi))
		return nil
	}}
}

func action(group, label string, run func()) Control {
	return Control{Group: group, Label: label, Kind: KindAction, apply: func(string) error {
		run()
		return nil
	}}
}

func indent(c Control, depth int) Control {
	c.Depth = depth
	return c
}

const maxPages = 999

// pagerControls edits a pagination block through one update per control.
func pagerControls(group string, p scene.Pagination, update func(func(scene.Pagination) scene.Pagination)) []Control {
	return []Control{
		toggle(group, "페이지네이션 표시", p.Show, func() {
			update(func(p scene.Pagination) scene.Pagination {
				p.Show = !p.Show
				return p
			})
		}),
		number(group, "현재 페이지", p.CurrentPage, 1, max(1, p.TotalPages), func(n int) {
			update(func(p scene.Pagination) scene.Pagination { return p.SetPage(n) })
		}),
		number(group, "전체 페이지", p.TotalPages, 1, maxPages, func(n int) {
			update(func(p scene.Pagination) scene.Pagination { return p.SetTotal(n) })
		}),
	}
}

func emptyControls(group string, e scene.EmptyState, update func(func(scene.EmptyState) scene.EmptyState)) []Control {
	return []Control{
		toggle(group, "빈 상태 표시", e.Show, func() {
			update(func(e scene.EmptyState) scene.EmptyState {
				e.Show = !e.Show
				return e
			})
		}),
		text(group, "빈 상태 메시지", e.Message, func(v string) {
			update(func(e scene.EmptyState) scene.EmptyState {
				e.Message = v
				return e
			})
		}),
	}
}

// escape shows newlines as \n so multi-line values fit a single-line input.
func escape(s string) string   { return strings.ReplaceAll(s, "\n", `\n`) }
func unescape(s string) string { return strings.ReplaceAll(s, `\n`, "\n") }

// For returns the controls of one scene built from the store's current state.
func For(tab scene.Tab, s *store.Store) []Control {
	st := s.State()
	switch tab {
	case scene.TabLayout:
		return Layout(st.Layout, s)
	case scene.TabContent:
		return Content(st.Content, s)
	case scene.TabApproval:
		return Approval(st.Approval, s)
	case scene.TabModal:
		return Modal(st.Modal, s)
	default:
		return Tray(st.Tray, s)
	}
}
