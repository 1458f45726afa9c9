package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/designplay/internal/scene"
)

// BadgeColor is the fill of a badge variant; unknown variants are blue.
func BadgeColor(v scene.BadgeVariant) lipgloss.Color {
	switch v {
	case scene.BadgeYellow:
		return "#f59e0b"
	case scene.BadgeGreen:
		return "#22c55e"
	case scene.BadgeRed:
		return "#ef4444"
	case scene.BadgeBlue:
		return "#3b82f6"
	default:
		return "#3b82f6"
	}
}

// Badge renders a small pill with the variant's color.
func Badge(text string, v scene.BadgeVariant) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(BadgeColor(v)).Render(" " + text + " ")
}

// Switch renders a toggle in its on or off position.
func Switch(on bool, p Palette) string {
	if on {
		return lipgloss.NewStyle().Foreground(p.Accent).Render("━◉ ON")
	}
	return p.MutedStyle().Render("◯━ OFF")
}

// Checkbox renders a labeled box.
func Checkbox(checked bool, label string, p Palette) string {
	box := "[ ]"
	if checked {
		box = "[✓]"
	}
	return p.TextStyle().Render(box + " " + label)
}
