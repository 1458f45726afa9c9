package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets top to bottom. Sizes are the sections' heights in
// logical px and split the rows in proportion; without Sizes the split is
// even. Every section is padded or cut to its share so the ones below stay put.
type VStack struct {
	Widgets []Widget
	Sizes   []int
	Gap     int
}

func (v VStack) Render(width, height int) string {
	n := len(v.Widgets)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}
	rows := shares(max(n, height-v.Gap*(n-1)), v.Sizes, n)
	blank := strings.Repeat(" ", width)
	out := make([]string, 0, height)
	for i, w := range v.Widgets {
		section := strings.Split(w.Render(width, rows[i]), "\n")
		for r := range rows[i] {
			if r < len(section) {
				out = append(out, padRight(section[r], width))
			} else {
				out = append(out, blank)
			}
		}
		if i < n-1 {
			for range v.Gap {
				out = append(out, blank)
			}
		}
	}
	if len(out) > height {
		out = out[:height]
	}
	return strings.Join(out, "\n")
}

// HStack lays widgets side by side. Sizes are the columns' widths in logical
// px, so a 260px sidebar next to a 940px main area keeps its share at any
// scale; without Sizes the split is even.
type HStack struct {
	Widgets []Widget
	Sizes   []int
	Gap     int
}

func (h HStack) Render(width, height int) string {
	n := len(h.Widgets)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}
	cols := shares(max(n, width-h.Gap*(n-1)), h.Sizes, n)
	parts := make([][]string, n)
	lines := 0
	for i, w := range h.Widgets {
		parts[i] = strings.Split(w.Render(cols[i], height), "\n")
		lines = max(lines, len(parts[i]))
	}
	gap := strings.Repeat(" ", h.Gap)
	out := make([]string, lines)
	for l := range out {
		row := make([]string, n)
		for i, part := range parts {
			cell := ""
			if l < len(part) {
				cell = part[l]
			}
			row[i] = padRight(cell, cols[i])
		}
		out[l] = strings.Join(row, gap)
	}
	return strings.Join(out, "\n")
}

// shares splits total cells over n parts in proportion to sizes, at least
// one cell each, handing the rounding remainder to the largest fractions.
func shares(total int, sizes []int, n int) []int {
	weights := make([]int, n)
	sum := 0
	for i := range weights {
		weights[i] = 1
		if len(sizes) == n && sizes[i] > 0 {
			weights[i] = sizes[i]
		}
		sum += weights[i]
	}
	out := make([]int, n)
	rest := make([]int, n)
	used := 0
	for i, w := range weights {
		out[i] = max(1, total*w/sum)
		rest[i] = total * w % sum
		used += out[i]
	}
	for used < total {
		best := 0
		for i := range rest {
			if rest[i] > rest[best] {
				best = i
			}
		}
		out[best]++
		rest[best] = -1
		used++
		if rest[best] == -1 && allSpent(rest) {
			for i := range rest {
				rest[i] = 0
			}
		}
	}
	return out
}

func allSpent(rest []int) bool {
	for _, r := range rest {
		if r >= 0 {
			return false
		}
	}
	return true
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// clip cuts s to at most height lines of at most width cells.
func clip(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "…")
	}
	return strings.Join(lines, "\n")
}
