package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/designplay/internal/editor"
	"github.com/jask/designplay/internal/scene"
)

const (
	appTitle      = "designplay"
	controlsWidth = 46
	chromeRows    = 4
)

func (a *App) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, a.renderControls(), a.renderPreview())
	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		body,
		a.renderStatusBar(),
		a.renderFooter(),
	)
}

func (a *App) renderHeader() string {
	parts := []string{headerAppStyle.Render(appTitle)}
	tab := a.store.Tab()
	for i, t := range scene.Tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Label())
		if t == tab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(label))
		}
	}
	return renderBar(lipgloss.JoinHorizontal(lipgloss.Top, parts...), a.width, footerStyle)
}

func (a *App) panelRows() int {
	return max(3, a.height-chromeRows-2)
}

// renderControls lists the controls around the cursor, scrolling to keep it visible.
func (a *App) renderControls() string {
	rows := a.panelRows() - 1
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if a.cursor >= a.offset+rows {
		a.offset = a.cursor - rows + 1
	}
	inner := controlsWidth - 2
	lines := []string{panelTitle.Render("편집")}
	group := ""
	for i := a.offset; i < len(a.controls) && len(lines) < rows+1; i++ {
		c := a.controls[i]
		if c.Group != group {
			group = c.Group
			lines = append(lines, groupStyle.Render(ansi.Truncate("▍"+group, inner, "…")))
			if len(lines) >= rows+1 {
				break
			}
		}
		lines = append(lines, a.renderControl(c, i == a.cursor, inner))
	}
	return panelStyle.Width(inner).Height(a.panelRows()).Render(strings.Join(lines, "\n"))
}

func (a *App) renderControl(c editor.Control, selected bool, width int) string {
	pad := strings.Repeat("  ", c.Depth)
	var value string
	switch c.Kind {
	case editor.KindToggle:
		if c.On() {
			value = actionStyle.Render("● on")
		} else {
			value = valueStyle.Render("○ off")
		}
	case editor.KindChoice:
		value = valueStyle.Render("‹ " + c.Value + " ›")
	case editor.KindAction:
		line := pad + actionStyle.Render(c.Label)
		if selected {
			return cursorStyle.Render(ansi.Truncate(pad+c.Label, width, "…"))
		}
		return ansi.Truncate(line, width, "…")
	default:
		value = valueStyle.Render(firstLine(c.Value))
	}
	if selected && a.editing {
		value = a.input.View()
	}
	label := pad + c.Label
	if selected {
		label = cursorStyle.Render(label)
	} else {
		label = labelStyle.Render(label)
	}
	return ansi.Truncate(label+" "+value, width, "…")
}

func (a *App) renderPreview() string {
	width := max(10, a.width-controlsWidth-2)
	inner := width - 2
	title := panelTitle.Render("미리보기 · " + a.store.Tab().Label())
	if a.Closing() {
		title += valueStyle.Render(" (닫는 중)")
	}
	lines := strings.Split(a.Preview(), "\n")
	rows := a.panelRows() - 1
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, inner, "")
	}
	content := title + "\n" + strings.Join(lines, "\n")
	return panelStyle.Width(inner).Height(a.panelRows()).Render(content)
}

func (a *App) renderStatusBar() string {
	if a.errored {
		return renderBar(" "+a.status, a.width, statusErrBarStyle)
	}
	status := a.status
	if status == "" {
		status = "Ready"
	}
	return renderBar(" "+status, a.width, statusBarStyle)
}

func (a *App) renderFooter() string {
	var parts []string
	for _, h := range a.keys.Help(a.scope()) {
		parts = append(parts, keyStyle.Render(h.Key)+helpDescStyle.Render(" "+h.Desc))
	}
	return renderBar(" "+strings.Join(parts, helpDescStyle.Render("  ")), a.width, footerStyle)
}

func renderBar(content string, width int, style lipgloss.Style) string {
	if width <= 0 {
		return style.Render(content)
	}
	content = ansi.Truncate(content, width, "")
	if gap := width - lipgloss.Width(content); gap > 0 {
		content += style.Render(strings.Repeat(" ", gap))
	}
	return style.Render(content)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + "…"
	}
	return s
}
