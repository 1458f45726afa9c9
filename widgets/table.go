package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table draws a header row, a rule and body rows. Widths holds a percentage
// of the available width per column; zero shares the remainder.
type Table struct {
	Headers   []string
	Rows      [][]string
	Widths    []int
	Checkable bool
	Palette   Palette
}

const checkboxCol = "[ ] "

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Headers) == 0 {
		return t.Palette.MutedStyle().Render("No data")
	}
	inner := width
	if t.Checkable {
		inner -= len(checkboxCol)
	}
	gaps := len(t.Headers) - 1
	widths := ColumnWidths(max(len(t.Headers), inner-gaps), t.Widths, len(t.Headers))

	head := lipgloss.NewStyle().Bold(true).Foreground(t.Palette.Text)
	lines := []string{t.line(t.Headers, widths, head)}
	lines = append(lines, lipgloss.NewStyle().Foreground(t.Palette.Border).Render(strings.Repeat("─", width)))
	body := t.Palette.TextStyle()
	for _, row := range t.Rows {
		if len(lines) >= height {
			break
		}
		lines = append(lines, t.line(row, widths, body))
	}
	return strings.Join(lines, "\n")
}

func (t Table) line(cells []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = padRight(style.Render(cell), w)
	}
	prefix := ""
	if t.Checkable {
		prefix = checkboxCol
	}
	return prefix + strings.Join(parts, " ")
}

// ColumnWidths splits total cells across n columns. Positive percentages are
// honored first (scaled down if they overflow); the rest is shared evenly.
// Every column gets at least one cell when total allows it.
func ColumnWidths(total int, percents []int, n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	fixed, auto := 0, 0
	for i := range n {
		if i < len(percents) && percents[i] > 0 {
			out[i] = max(1, total*percents[i]/100)
			fixed += out[i]
		} else {
			auto++
		}
	}
	budget := total - auto
	if fixed > budget && fixed > 0 {
		scaled := 0
		for i := range out {
			if out[i] > 0 {
				out[i] = max(1, out[i]*max(0, budget)/fixed)
				scaled += out[i]
			}
		}
		fixed = scaled
	}
	if auto > 0 {
		rest := shares(max(auto, total-fixed), nil, auto)
		j := 0
		for i := range out {
			if out[i] == 0 {
				out[i] = rest[j]
				j++
			}
		}
	}
	return out
}
