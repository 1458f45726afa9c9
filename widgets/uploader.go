package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Uploader is a drop-zone stub followed by the attached file names.
type Uploader struct {
	Hint    string
	Files   []string
	Palette Palette
}

func (u Uploader) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	zone := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(u.Palette.Border).
		Foreground(u.Palette.Muted).
		Width(max(1, width-2)).
		Align(lipgloss.Center).
		Render("⇪ " + u.Hint)
	lines := []string{zone}
	for _, f := range u.Files {
		lines = append(lines, u.Palette.TextStyle().Render("📎 "+f+"  ✕"))
	}
	return clip(strings.Join(lines, "\n"), width, height)
}
