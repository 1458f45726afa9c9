package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/designplay/internal/scene"
	"github.com/jask/designplay/widgets"
)

const (
	searchPlaceholder = "검색어를 입력하세요"
	searchButton      = "검색"
	overlayText       = "오버레이 활성화 상태"
)

var (
	statusOn  = lipgloss.Color("#22c55e")
	statusOff = lipgloss.Color("#ef4444")
)

// Content builds the list/table section.
func Content(c scene.Content, p widgets.Palette) *Node {
	root := &Node{
		Role:    RoleContent,
		Variant: string(scene.Parse(string(c.TableMode), scene.TableModes, scene.TableSimple)),
		Active:  c.ShowOverlay,
		Canvas:  ContentCanvas,
		Palette: p,
	}
	if c.ListMenu != "" || c.ListSubMenu != "" {
		root.add(node(RoleBreadcrumb, strings.Join(nonEmpty(c.ListMenu, c.ListSubMenu), " › ")))
	}
	root.add(node(RoleTitle, c.ListTitle), node(RoleSubtitle, c.ListSubtitle))
	for _, m := range c.MenuItems {
		root.add(node(RoleMenuItem, m))
	}
	for _, b := range c.ExtraButtons {
		root.add(&Node{Role: RoleButton, Text: b.Label, Variant: string(b.Variant)})
	}
	if sf := c.SearchFilter; sf.Enabled {
		search := &Node{Role: RoleSearch, Text: sf.SearchKeyword, Variant: searchLabel(sf)}
		for _, o := range sf.SearchOptions {
			search.add(&Node{Role: RoleOption, Text: o.Label, Active: o.Value == sf.SearchType})
		}
		root.add(search)
	}

	if c.EmptyState.Show {
		root.add(node(RoleEmpty, c.EmptyState.Message))
	} else {
		root.add(contentTable(c))
		if c.Pagination.Show {
			root.add(pagerNode(c.Pagination))
		}
	}
	if c.ShowOverlay {
		root.add(node(RoleOverlay, overlayText))
	}
	return root
}

func searchLabel(sf scene.SearchFilter) string {
	for _, o := range sf.SearchOptions {
		if o.Value == sf.SearchType {
			return o.Label
		}
	}
	if len(sf.SearchOptions) > 0 {
		return sf.SearchOptions[0].Label
	}
	return "전체"
}

func contentTable(c scene.Content) *Node {
	table := &Node{Role: RoleTable, Variant: string(scene.Parse(string(c.TableMode), scene.TableModes, scene.TableSimple))}
	for _, col := range c.Columns {
		n := &Node{Role: RoleColumn, Text: col.Header, Variant: string(col.CellType)}
		if col.Width != nil {
			n.Size = *col.Width
		}
		table.add(n)
	}
	for _, r := range c.Rows {
		row := node(RoleRow, r.ID)
		for _, col := range c.Columns {
			cell, ok := r.Cells[col.ID]
			if !ok {
				cell = col.DefaultCell()
			}
			n := &Node{Role: RoleCell, Text: cell.Text, Variant: string(cell.Type), Active: cell.On}
			switch cell.Type {
			case scene.CellStatus:
				n.Active = cell.Text == col.TrueText()
			case scene.CellBadge:
				n.add(&Node{Role: RoleBadge, Text: cell.Text, Variant: string(cell.Variant)})
			}
			row.add(n)
		}
		table.add(row)
	}
	return table
}

func pagerNode(pg scene.Pagination) *Node {
	pg = pg.Normalize()
	return &Node{Role: RolePagination, Current: pg.CurrentPage, Total: pg.TotalPages}
}

func nonEmpty(ss ...string) []string {
	var out []string
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// cellText draws one table cell according to its type; unknown types are
// drawn as plain text.
func cellText(n *Node, p widgets.Palette) string {
	switch scene.CellType(n.Variant) {
	case scene.CellSwitch:
		return widgets.Switch(n.Active, p)
	case scene.CellStatus:
		color := statusOff
		if n.Active {
			color = statusOn
		}
		return lipgloss.NewStyle().Foreground(color).Render("● " + n.Text)
	case scene.CellBadge:
		if b := n.Find(RoleBadge); b != nil {
			return widgets.Badge(b.Text, scene.BadgeVariant(b.Variant))
		}
		return widgets.Badge(n.Text, scene.BadgeBlue)
	default:
		return n.Text
	}
}

func drawTable(t *Node, p widgets.Palette, w, h int) string {
	cols := t.FindAll(RoleColumn)
	headers := make([]string, len(cols))
	widths := make([]int, len(cols))
	for i, c := range cols {
		headers[i] = c.Text
		widths[i] = c.Size
	}
	var rows [][]string
	for _, r := range t.FindAll(RoleRow) {
		cells := make([]string, len(r.Children))
		for i, c := range r.Children {
			cells[i] = cellText(c, p)
		}
		rows = append(rows, cells)
	}
	return widgets.Table{
		Headers:   headers,
		Rows:      rows,
		Widths:    widths,
		Checkable: t.Variant == string(scene.TableCheckable),
		Palette:   p,
	}.Render(w, h)
}

func drawPager(n *Node, p widgets.Palette, w int) string {
	return widgets.Pagination{Current: n.Current, Total: n.Total, Palette: p}.Render(w, 1)
}

func drawContent(root *Node, w, h int) string {
	p := root.Palette
	var lines []string
	if bc := root.Find(RoleBreadcrumb); bc != nil {
		lines = append(lines, p.MutedStyle().Render(bc.Text))
	}
	lines = append(lines,
		lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(root.Find(RoleTitle).Text),
		p.MutedStyle().Render(root.Find(RoleSubtitle).Text),
	)

	var menus []string
	for _, m := range root.Texts(RoleMenuItem) {
		menus = append(menus, p.TextStyle().Render(m))
	}
	menuLine := strings.Join(menus, p.MutedStyle().Render(" | "))
	var buttons []string
	for _, b := range root.FindAll(RoleButton) {
		buttons = append(buttons, widgets.ChipButton{Label: b.Text, Variant: scene.ButtonVariant(b.Variant), Palette: p}.String())
	}
	btnLine := strings.Join(buttons, " ")
	lines = append(lines, menuLine+strings.Repeat(" ", max(1, w-lipgloss.Width(menuLine)-lipgloss.Width(btnLine)))+btnLine)

	if s := root.Find(RoleSearch); s != nil {
		kw := s.Text
		kwStyle := p.TextStyle()
		if kw == "" {
			kw, kwStyle = searchPlaceholder, p.MutedStyle()
		}
		box := lipgloss.NewStyle().Foreground(p.Border)
		lines = append(lines, box.Render("[")+p.TextStyle().Render(s.Variant+" ▾")+box.Render("] [")+kwStyle.Render(kw)+box.Render("] ")+
			widgets.ChipButton{Label: searchButton, Variant: scene.ButtonPrimary, Palette: p}.String())
	}
	lines = append(lines, "")

	head := strings.Join(lines, "\n")
	rest := max(1, h-len(lines))
	var body string
	switch {
	case root.Find(RoleEmpty) != nil:
		body = widgets.EmptyState{Message: root.Find(RoleEmpty).Text, Palette: p}.Render(w, rest)
	default:
		tableH := rest
		pager := root.Find(RolePagination)
		if pager != nil {
			tableH = max(1, rest-2)
		}
		body = widgets.Fit(drawTable(root.Find(RoleTable), p, w, tableH), w, tableH)
		if pager != nil {
			body += "\n\n" + drawPager(pager, p, w)
		}
	}
	out := head + "\n" + body
	if ov := root.Find(RoleOverlay); ov != nil {
		dim := lipgloss.NewStyle().Foreground(p.Muted).Faint(true)
		faded := strings.Split(widgets.Fit(out, w, h), "\n")
		for i, l := range faded {
			faded[i] = dim.Render(ansi.Strip(l))
		}
		popup := widgets.Box{Content: lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(ov.Text), Border: p.Accent}.Render(min(w, lipgloss.Width(ov.Text)+6), 3)
		out = widgets.Overlay(strings.Join(faded, "\n"), popup, w, h)
	}
	return out
}
