package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/designplay/internal/scene"
)

// Palette is the set of colors a preview is drawn with.
type Palette struct {
	Bg     lipgloss.Color
	Panel  lipgloss.Color
	Header lipgloss.Color
	Hover  lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
	Accent lipgloss.Color
}

var (
	Dark = Palette{
		Bg:     "#1a1c2b",
		Panel:  "#242740",
		Header: "#2C2F4C",
		Hover:  "#2e3253",
		Text:   "#dedee3",
		Muted:  "#9CA3AF",
		Border: "#2e3253",
		Accent: "#818cf8",
	}
	Light = Palette{
		Bg:     "#ffffff",
		Panel:  "#ffffff",
		Header: "#ffffff",
		Hover:  "#f3f4f6",
		Text:   "#213547",
		Muted:  "#4B5563",
		Border: "#e5e7eb",
		Accent: "#4f46e5",
	}
)

// PaletteFor maps a theme mode to its palette; unknown modes use light.
func PaletteFor(mode scene.ThemeMode) Palette {
	if mode == scene.ThemeDark {
		return Dark
	}
	return Light
}

func (p Palette) TextStyle() lipgloss.Style  { return lipgloss.NewStyle().Foreground(p.Text) }
func (p Palette) MutedStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(p.Muted) }
func (p Palette) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
}
