package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/designplay/internal/scene"
	"github.com/jask/designplay/widgets"
)

const (
	sidebarPx     = 260
	hintsPx       = 120
	placeholderPx = 240
	layoutHint1   = "Topbar/Sidebar는 오른쪽 패널에서 추가/수정 가능."
	layoutHint2   = "클릭하면 활성화 스타일이 적용돼."
)

// Layout builds the application shell. The shell is drawn with its own
// theme mode rather than a caller palette.
func Layout(l scene.Layout) *Node {
	title := l.AppTitle
	if title == "" {
		title = scene.Brand
	}
	root := &Node{
		Role:    RoleLayout,
		Variant: string(scene.Parse(string(l.SidebarMode), scene.SidebarModes, scene.SidebarMixed)),
		Canvas:  LayoutCanvas,
		Palette: widgets.PaletteFor(l.ThemeMode),
	}

	top := node(RoleTopBar, "", node(RoleTitle, title))
	for _, n := range l.TopNav {
		top.add(&Node{Role: RoleNavItem, Text: n.Label, Active: l.ActiveTopNavID != nil && *l.ActiveTopNavID == n.ID})
	}

	side := node(RoleSidebar, l.SidebarTitle)
	side.add(sideNodes(l)...)

	main := node(RoleMain, "", node(RoleMessage, layoutHint1), node(RoleMessage, layoutHint2))
	footer := node(RoleFooter, l.FooterNotice, node(RoleTitle, l.FooterUserName))
	return root.add(top, side, main, footer)
}

func sideNodes(l scene.Layout) []*Node {
	active := ""
	if l.ActiveSideID != nil {
		active = *l.ActiveSideID
	}
	var out []*Node
	leaf := func(label, id string) *Node {
		return &Node{Role: RoleSideItem, Text: label, Variant: "•", Active: id == active}
	}
	folder := func(it scene.SideItem) {
		open := it.ID == active || containsID(it.Children, active)
		marker := "▸"
		if open {
			marker = "▾"
		}
		out = append(out, &Node{Role: RoleSideItem, Text: it.Label, Variant: marker, Active: open})
		if !open {
			return
		}
		for _, c := range it.Children {
			n := leaf(c.Label, c.ID)
			n.Depth = 1
			out = append(out, n)
		}
	}

	switch scene.Parse(string(l.SidebarMode), scene.SidebarModes, scene.SidebarMixed) {
	case scene.SidebarFlat:
		for _, it := range l.SideItems {
			out = append(out, leaf(it.Label, it.ID))
			for _, c := range it.Children {
				out = append(out, leaf(it.Label+" / "+c.Label, c.ID))
			}
		}
	case scene.SidebarFolder:
		for _, it := range l.SideItems {
			if len(it.Children) == 0 {
				out = append(out, leaf(it.Label, it.ID))
				continue
			}
			folder(it)
		}
	default:
		for _, it := range l.SideItems {
			if len(it.Children) > 0 {
				folder(it)
				continue
			}
			out = append(out, leaf(it.Label, it.ID))
		}
	}
	return out
}

func containsID(items []scene.SideItem, id string) bool {
	if id == "" {
		return false
	}
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func drawLayout(root *Node, w, h int) string {
	p := root.Palette
	bar := root.Find(RoleTopBar)
	parts := []string{p.MutedStyle().Render("☰"), lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(bar.Find(RoleTitle).Text)}
	for _, n := range bar.FindAll(RoleNavItem) {
		if n.Active {
			parts = append(parts, p.AccentStyle().Underline(true).Render(n.Text))
			continue
		}
		parts = append(parts, p.TextStyle().Render(n.Text))
	}
	left := strings.Join(parts, "  ")
	icons := p.MutedStyle().Render("◎ ◌")
	topLine := left + strings.Repeat(" ", max(1, w-lipgloss.Width(left)-lipgloss.Width(icons))) + icons
	rule := lipgloss.NewStyle().Foreground(p.Border).Render(strings.Repeat("─", w))

	side := root.Find(RoleSidebar)
	items := make([]widgets.TreeItem, 0, len(side.Children))
	for _, n := range side.Children {
		items = append(items, widgets.TreeItem{Label: n.Text, Depth: n.Depth, Marker: n.Variant, Active: n.Active})
	}
	bodyH := max(1, h-4)
	tree := widgets.TreeList{Title: side.Text, Items: items, Palette: p}

	main := root.Find(RoleMain)
	hints := p.MutedStyle().Render(strings.Join(main.Texts(RoleMessage), "\n"))
	grid := widgets.VStack{Widgets: []widgets.Widget{
		widgets.Text(hints),
		placeholderRow(p),
		placeholderRow(p),
	}, Sizes: []int{hintsPx, placeholderPx, placeholderPx}}

	body := widgets.HStack{
		Widgets: []widgets.Widget{tree, grid},
		Sizes:   []int{sidebarPx, LayoutCanvas.Width - sidebarPx},
		Gap:     1,
	}.Render(w, bodyH)

	footer := root.Find(RoleFooter)
	user := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(p.Accent).Render(" U ")
	footLine := user + " " + p.TextStyle().Render(footer.Find(RoleTitle).Text) + "  " + p.MutedStyle().Render(footer.Text)

	return strings.Join([]string{topLine, rule, widgets.Fit(body, w, bodyH), rule, footLine}, "\n")
}

func placeholderRow(p widgets.Palette) widgets.Widget {
	cell := widgets.Box{Border: p.Border}
	return widgets.HStack{Widgets: []widgets.Widget{cell, cell, cell}, Gap: 1}
}
