package widgets

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gap marks an ellipsis position in the result of PageNumbers.
const Gap = 0

// PageNumbers lists the pages a pager shows. Up to seven pages are all
// listed; otherwise the first and last page stay visible with the current
// page and its neighbours, and Gap stands for the skipped runs.
func PageNumbers(current, total int) []int {
	total = max(1, total)
	current = min(max(1, current), total)
	if total <= 7 {
		out := make([]int, total)
		for i := range out {
			out[i] = i + 1
		}
		return out
	}
	switch {
	case current <= 4:
		return []int{1, 2, 3, 4, 5, Gap, total}
	case current >= total-3:
		return []int{1, Gap, total - 4, total - 3, total - 2, total - 1, total}
	default:
		return []int{1, Gap, current - 1, current, current + 1, Gap, total}
	}
}

// Pagination draws a centered pager line.
type Pagination struct {
	Current int
	Total   int
	Palette Palette
}

func (p Pagination) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	current := min(max(1, p.Current), max(1, p.Total))
	parts := []string{p.Palette.MutedStyle().Render("‹")}
	for _, n := range PageNumbers(current, p.Total) {
		switch {
		case n == Gap:
			parts = append(parts, p.Palette.MutedStyle().Render("…"))
		case n == current:
			parts = append(parts, lipgloss.NewStyle().Bold(true).Foreground(p.Palette.Accent).Render("["+strconv.Itoa(n)+"]"))
		default:
			parts = append(parts, p.Palette.TextStyle().Render(strconv.Itoa(n)))
		}
	}
	parts = append(parts, p.Palette.MutedStyle().Render("›"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, clip(strings.Join(parts, " "), width, 1))
}
