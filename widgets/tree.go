package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one visible row of a tree list.
type TreeItem struct {
	Label  string
	Depth  int
	Marker string
	Active bool
}

// TreeList draws a titled, indented list; active rows use the accent color.
type TreeList struct {
	Title   string
	Items   []TreeItem
	Palette Palette
}

func (l TreeList) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, len(l.Items)+1)
	if l.Title != "" {
		rows = append(rows, lipgloss.NewStyle().Bold(true).Foreground(l.Palette.Muted).Render(l.Title))
	}
	for _, item := range l.Items {
		style := l.Palette.TextStyle()
		if item.Active {
			style = lipgloss.NewStyle().Bold(true).Foreground(l.Palette.Accent).Background(l.Palette.Hover)
		}
		text := strings.Repeat("  ", item.Depth)
		if item.Marker != "" {
			text += item.Marker + " "
		}
		rows = append(rows, style.Render(text+item.Label))
	}
	return clip(strings.Join(rows, "\n"), width, height)
}
