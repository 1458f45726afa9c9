package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/designplay/internal/scene"
)

// ChipButton is a one-line button drawn according to its variant.
type ChipButton struct {
	Label   string
	Variant scene.ButtonVariant
	Palette Palette
}

func (b ChipButton) String() string {
	base := lipgloss.NewStyle().Padding(0, 1)
	switch b.Variant {
	case scene.ButtonPrimary:
		return base.Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(b.Palette.Accent).Render(b.Label)
	case scene.ButtonSecondary:
		return base.Foreground(b.Palette.Text).Background(b.Palette.Hover).Render(b.Label)
	case scene.ButtonIcon:
		return base.Foreground(b.Palette.Muted).Render("◆")
	case scene.ButtonSm:
		return lipgloss.NewStyle().Foreground(b.Palette.Text).Render("[" + b.Label + "]")
	case scene.ButtonXs:
		return lipgloss.NewStyle().Foreground(b.Palette.Muted).Render("[" + b.Label + "]")
	case scene.ButtonRefresh:
		return base.Foreground(b.Palette.Text).Render("⟳ " + b.Label)
	case scene.ButtonDelete:
		return base.Foreground(lipgloss.Color("#ef4444")).Render("✕ " + b.Label)
	case scene.ButtonAction:
		return base.Bold(true).Foreground(b.Palette.Accent).Render(b.Label)
	case scene.ButtonAdd:
		return base.Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(b.Palette.Accent).Render("+ " + b.Label)
	case scene.ButtonTableIcon:
		return base.Foreground(b.Palette.Muted).Render("⋯")
	default:
		return base.Foreground(b.Palette.Text).Render(b.Label)
	}
}

func (b ChipButton) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return clip(b.String(), width, 1)
}
