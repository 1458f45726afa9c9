package widgets

import "github.com/charmbracelet/lipgloss"

// Box is a rounded pane with an optional title line and accent-colored border.
type Box struct {
	Title   string
	Content string
	Border  lipgloss.Color
	// Accent colors the title; the border color is used when empty.
	Accent lipgloss.Color
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(max(1, width-2)).Height(max(1, height-2))
	if b.Border != "" {
		style = style.BorderForeground(b.Border)
	}
	body := b.Content
	if b.Title != "" {
		accent := b.Accent
		if accent == "" {
			accent = b.Border
		}
		body = lipgloss.NewStyle().Bold(true).Foreground(accent).Render(b.Title) + "\n" + body
	}
	inner := max(1, width-4)
	return style.Render(clip(body, inner, max(1, height-2)))
}
