// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (boxes, stacks, tables, badges, popup overlay compositor)
//
// Not allowed here:
// - key handling, store access, or any knowledge of which scene is being drawn
package widgets

// Widget draws itself into a width x height cell area.
type Widget interface {
	Render(width, height int) string
}

// Text is a widget that renders a fixed string, clipped to the area.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return clip(string(t), width, height)
}
