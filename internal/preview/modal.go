package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/designplay/internal/scene"
	"github.com/jask/designplay/widgets"
)

const (
	confirmWidthPx = 384
	logTitle       = "차단 로그"
	noRows         = "데이터가 없습니다."
)

type confirmLook struct {
	icon  string
	color lipgloss.Color
}

var confirmLooks = map[scene.ConfirmType]confirmLook{
	scene.ConfirmInfo:    {icon: "ℹ", color: "#3b82f6"},
	scene.ConfirmWarning: {icon: "⚠", color: "#f87171"},
	scene.ConfirmError:   {icon: "✖", color: "#ef4444"},
	scene.ConfirmSuccess: {icon: "✓", color: "#10b981"},
	scene.ConfirmYesNo:   {icon: "?", color: "#3b82f6"},
}

var headerIcons = map[scene.HeaderType]string{
	scene.HeaderMember:     "👤",
	scene.HeaderAsset:      "💻",
	scene.HeaderDepartment: "🏢",
}

func lookFor(t scene.ConfirmType) confirmLook {
	if l, ok := confirmLooks[t]; ok {
		return l
	}
	return confirmLooks[scene.ConfirmWarning]
}

// Modal builds the dialog preview. Confirm and general dialogs float over a
// dimmed backdrop; the log dialog fills its own canvas.
func Modal(m scene.Modal, p widgets.Palette) *Node {
	switch scene.Parse(string(m.ModalType), scene.ModalTypes, scene.ModalConfirm) {
	case scene.ModalLog:
		return logModal(m, p)
	case scene.ModalGeneral:
		return generalModal(m, p)
	default:
		return confirmModal(m, p)
	}
}

func confirmModal(m scene.Modal, p widgets.Palette) *Node {
	ct := scene.Parse(string(m.ConfirmType), scene.ConfirmTypes, scene.ConfirmWarning)
	look := lookFor(ct)
	root := &Node{
		Role:    RoleModal,
		Text:    string(scene.ModalConfirm),
		Variant: string(ct),
		Size:    confirmWidthPx,
		Color:   string(look.color),
		Canvas:  ModalCanvas,
		Palette: p,
	}
	root.add(
		node(RoleTitle, m.Title),
		&Node{Role: RoleIcon, Text: look.icon, Color: string(look.color)},
		node(RoleMessage, m.Message),
	)
	if m.ShowCancelButton {
		root.add(&Node{Role: RoleButton, Text: m.CancelButtonText, Variant: "cancel"})
	}
	return root.add(&Node{Role: RoleButton, Text: m.ConfirmButtonText, Variant: "confirm", Color: string(look.color)})
}

func generalModal(m scene.Modal, p widgets.Palette) *Node {
	size := scene.Parse(string(m.Size), scene.ModalSizes, scene.SizeLg)
	root := &Node{
		Role:    RoleModal,
		Text:    string(scene.ModalGeneral),
		Variant: string(size),
		Size:    size.WidthPx(),
		Total:   m.HeightPx,
		Canvas:  ModalCanvas,
		Palette: p,
	}
	root.add(node(RoleTitle, m.Title))
	if m.ShowHeader {
		ht := scene.Parse(string(m.Header.Type), scene.HeaderTypes, scene.HeaderMember)
		root.add(&Node{Role: RoleHeader, Text: m.Header.Title, Variant: string(ht)},
			node(RoleSubtitle, m.Header.Subtitle))
	}
	switch {
	case m.EmptyState.Show:
		root.add(node(RoleEmpty, m.EmptyState.Message))
	case m.ShowTable:
		table := &Node{Role: RoleTable, Variant: string(scene.TableSimple)}
		for _, h := range m.TableData.Headers {
			table.add(&Node{Role: RoleColumn, Text: h, Variant: string(scene.CellText)})
		}
		for _, r := range m.TableData.Rows {
			row := node(RoleRow, "")
			for _, c := range r {
				row.add(&Node{Role: RoleCell, Text: c, Variant: string(scene.CellText)})
			}
			table.add(row)
		}
		root.add(table)
	default:
		root.add(node(RoleMessage, m.Message))
	}
	if m.Pagination.Show && !m.EmptyState.Show {
		root.add(pagerNode(m.Pagination))
	}
	return root
}

func logModal(m scene.Modal, p widgets.Palette) *Node {
	lc := m.LogConfig
	variant := scene.BadgeYellow
	if lc.DetectionCount > 2 {
		variant = scene.BadgeRed
	}
	root := &Node{Role: RoleLogModal, Text: m.Title, Canvas: LogCanvas, Palette: p}
	root.add(
		node(RoleTitle, lc.ItemName),
		&Node{Role: RoleBadge, Text: fmt.Sprintf("총 %d회 차단", lc.DetectionCount), Variant: string(variant), Total: lc.DetectionCount},
		node(RoleSubtitle, lc.ItemPath),
		node(RoleTimestamp, "마지막 기록:  "+lc.BlockedDate),
	)
	for _, l := range lc.Logs {
		entry := node(RoleLog, l.Date)
		for _, t := range l.Times {
			entry.add(node(RoleLogTime, t))
		}
		root.add(entry)
	}
	return root
}

func backdrop(p widgets.Palette, w, h int) string {
	row := lipgloss.NewStyle().Foreground(p.Border).Faint(true).Render(strings.Repeat("░", w))
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func headerLine(title string, p widgets.Palette, inner int) string {
	t := lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(title)
	return t + strings.Repeat(" ", max(1, inner-lipgloss.Width(t)-1)) + p.MutedStyle().Render("✕")
}

func drawModal(root *Node, scale float64, w, h int) string {
	p := root.Palette
	pw := min(w, pxToCols(root.Size, scale))
	inner := max(1, pw-4)
	var popup string
	if root.Text == string(scene.ModalGeneral) {
		ph := min(h, pxToRows(root.Total, scale))
		popup = widgets.Box{Content: generalBody(root, p, inner, max(1, ph-2)), Border: p.Border}.Render(pw, ph)
	} else {
		popup = confirmCard(root, p, pw, inner)
	}
	return widgets.Overlay(backdrop(p, w, h), popup, w, h)
}

func confirmCard(root *Node, p widgets.Palette, pw, inner int) string {
	icon := root.Find(RoleIcon)
	mark := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color(icon.Color)).Render(" " + icon.Text + " ")
	msgW := max(1, inner-lipgloss.Width(mark)-1)
	msg := p.TextStyle().Width(msgW).Render(root.Find(RoleMessage).Text)

	var buttons []string
	for _, b := range root.FindAll(RoleButton) {
		if b.Variant == "cancel" {
			buttons = append(buttons, lipgloss.NewStyle().Foreground(p.Text).Background(p.Hover).Padding(0, 2).Render(b.Text))
			continue
		}
		buttons = append(buttons, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color(b.Color)).Padding(0, 2).Render(b.Text))
	}
	lines := []string{
		headerLine(root.Find(RoleTitle).Text, p, inner),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, mark, " ", msg),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, strings.Join(buttons, " ")),
	}
	body := strings.Join(lines, "\n")
	return widgets.Box{Content: body, Border: p.Border}.Render(pw, lipgloss.Height(body)+2)
}

func generalBody(root *Node, p widgets.Palette, inner, h int) string {
	lines := []string{
		headerLine(root.Find(RoleTitle).Text, p, inner),
		lipgloss.NewStyle().Foreground(p.Border).Render(strings.Repeat("─", inner)),
	}
	if hd := root.Find(RoleHeader); hd != nil {
		icon := headerIcons[scene.HeaderType(hd.Variant)]
		line := icon + " " + lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(hd.Text)
		if sub := root.Find(RoleSubtitle); sub != nil && sub.Text != "" {
			line += "  " + p.MutedStyle().Render(sub.Text)
		}
		lines = append(lines, line, "")
	}
	pager := root.Find(RolePagination)
	rest := max(1, h-len(lines))
	if pager != nil {
		rest = max(1, rest-2)
	}
	switch {
	case root.Find(RoleEmpty) != nil:
		lines = append(lines, widgets.EmptyState{Message: root.Find(RoleEmpty).Text, Palette: p}.Render(inner, rest))
	case root.Find(RoleTable) != nil:
		t := root.Find(RoleTable)
		if len(t.FindAll(RoleRow)) == 0 {
			lines = append(lines, drawTable(t, p, inner, 2), p.MutedStyle().Render(noRows))
		} else {
			lines = append(lines, widgets.Fit(drawTable(t, p, inner, rest), inner, rest))
		}
	default:
		lines = append(lines, p.TextStyle().Width(inner).Render(root.Find(RoleMessage).Text))
	}
	if pager != nil {
		body := widgets.Fit(strings.Join(lines, "\n"), inner, max(1, h-1))
		return body + "\n" + drawPager(pager, p, inner)
	}
	return strings.Join(lines, "\n")
}

func drawLog(root *Node, w, h int) string {
	p := root.Palette
	inner := max(1, w-4)
	badge := root.Find(RoleBadge)
	name := lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(root.Find(RoleTitle).Text)
	pill := widgets.Badge(badge.Text, scene.BadgeVariant(badge.Variant))
	lines := []string{
		headerLine(root.Text, p, inner),
		lipgloss.NewStyle().Foreground(p.Border).Render(strings.Repeat("─", inner)),
		name + strings.Repeat(" ", max(1, inner-lipgloss.Width(name)-lipgloss.Width(pill))) + pill,
		p.MutedStyle().Render(root.Find(RoleSubtitle).Text),
		p.MutedStyle().Render(root.Find(RoleTimestamp).Text),
		"",
		lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(logTitle),
	}
	dot := p.AccentStyle().Render("●")
	for _, entry := range root.FindAll(RoleLog) {
		lines = append(lines, dot+" "+p.TextStyle().Bold(true).Render(entry.Text))
		for _, t := range entry.Texts(RoleLogTime) {
			lines = append(lines, p.MutedStyle().Render("│  "+t))
		}
	}
	return widgets.Box{Content: strings.Join(lines, "\n"), Border: p.Border}.Render(w, h)
}
