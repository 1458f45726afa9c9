package widgets

import "github.com/charmbracelet/lipgloss"

// EmptyState fills its area with a centered placeholder message.
type EmptyState struct {
	Message string
	Palette Palette
}

func (e EmptyState) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	body := e.Palette.MutedStyle().Render("▢\n" + e.Message)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, clip(body, width, height))
}
