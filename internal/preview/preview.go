package preview

import (
	"github.com/jask/designplay/internal/scene"
	"github.com/jask/designplay/internal/store"
	"github.com/jask/designplay/widgets"
)

// Options tune how a state is previewed.
type Options struct {
	// Closing hides the tray card while its exit delay runs.
	Closing bool
	// Theme overrides the layout's theme mode when set.
	Theme scene.ThemeMode
}

// Palette picks the colors for st: the override when valid, otherwise the
// layout's theme mode.
func (o Options) Palette(st store.State) widgets.Palette {
	if scene.Valid(o.Theme, scene.ThemeModes) {
		return widgets.PaletteFor(o.Theme)
	}
	return widgets.PaletteFor(st.Layout.ThemeMode)
}

// For builds the preview tree of one scene of st.
func For(tab scene.Tab, st store.State, opts Options) *Node {
	p := opts.Palette(st)
	switch tab {
	case scene.TabLayout:
		l := st.Layout
		if scene.Valid(opts.Theme, scene.ThemeModes) {
			l.ThemeMode = opts.Theme
		}
		return Layout(l)
	case scene.TabContent:
		return Content(st.Content, p)
	case scene.TabApproval:
		return Approval(st.Approval, p)
	case scene.TabModal:
		return Modal(st.Modal, p)
	default:
		return Tray(st.Tray, opts.Closing, p)
	}
}

// Build previews the active tab of st.
func Build(st store.State, opts Options) *Node {
	return For(st.Tab, st, opts)
}
