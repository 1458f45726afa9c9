package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/designplay/internal/scene"
	"github.com/jask/designplay/widgets"
)

var uploaderHints = map[scene.UploaderType]string{
	scene.UploaderDocument: "문서 파일을 끌어다 놓거나 클릭하여 업로드",
	scene.UploaderProgram:  "프로그램 파일을 끌어다 놓거나 클릭하여 업로드",
}

// Approval builds the approval request form. An empty state replaces the
// form body; the pager is hidden while the empty state shows.
func Approval(a scene.Approval, p widgets.Palette) *Node {
	root := &Node{
		Role:    RoleApproval,
		Variant: string(scene.Parse(string(a.UploaderType), scene.UploaderTypes, scene.UploaderNone)),
		Canvas:  ApprovalCanvas,
		Palette: p,
	}
	root.add(node(RoleTitle, a.Title), node(RoleSubtitle, a.Subtitle))
	if a.EmptyState.Show {
		return root.add(node(RoleEmpty, a.EmptyState.Message))
	}

	for _, f := range a.FormFields {
		field := &Node{
			Role:    RoleField,
			Text:    f.Label,
			Variant: string(scene.Parse(string(f.Type), scene.FieldTypes, scene.FieldInput)),
			Active:  f.Required,
			Size:    100,
		}
		if f.Width == scene.WidthHalf {
			field.Size = 50
		}
		switch scene.FieldType(field.Variant) {
		case scene.FieldDropdown:
			for _, o := range f.Options {
				field.add(node(RoleOption, o.Label))
			}
		default:
			// Active marks a placeholder shown in place of an empty value.
			v := &Node{Role: RoleMessage, Text: f.DefaultValue}
			if v.Text == "" {
				v.Text, v.Active = f.Placeholder, true
			}
			field.add(v)
		}
		root.add(field)
	}

	if files, ok := uploaderFiles(a); ok {
		up := &Node{Role: RoleUploader, Text: uploaderHints[scene.UploaderType(root.Variant)], Variant: root.Variant}
		for _, f := range files {
			up.add(&Node{Role: RoleFile, Text: f.FileName, Variant: f.FilePath})
		}
		root.add(up)
	}

	root.add(&Node{Role: RoleCheckbox, Text: a.CheckboxOption.Label, Active: a.CheckboxOption.Checked})
	if a.NoticeField.Text != "" {
		root.add(&Node{Role: RoleNotice, Text: a.NoticeField.Text, Color: a.NoticeField.Color})
	}
	if a.Pagination.Show {
		root.add(pagerNode(a.Pagination))
	}
	return root
}

func uploaderFiles(a scene.Approval) ([]scene.FileEntry, bool) {
	switch a.UploaderType {
	case scene.UploaderDocument:
		return a.DocumentFiles, true
	case scene.UploaderProgram:
		return a.ProgramFiles, true
	default:
		return nil, false
	}
}

func drawField(f *Node, p widgets.Palette, w int) string {
	label := p.TextStyle().Bold(true).Render(f.Text)
	if f.Active {
		label += lipgloss.NewStyle().Foreground(statusOff).Render(" *")
	}
	var value string
	switch scene.FieldType(f.Variant) {
	case scene.FieldDropdown:
		first := "선택하세요"
		if opts := f.Texts(RoleOption); len(opts) > 0 {
			first = opts[0]
		}
		value = p.TextStyle().Render(first) + strings.Repeat(" ", max(1, w-4-lipgloss.Width(first))) + p.MutedStyle().Render("▾")
	default:
		v := f.Find(RoleMessage)
		style := p.TextStyle()
		if v.Active {
			style = p.MutedStyle()
		}
		value = style.Render(v.Text)
	}
	input := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.Border).Width(max(1, w-2)).Render(widgets.Fit(value, max(1, w-2), 1))
	return label + "\n" + input
}

func drawApproval(root *Node, w, h int) string {
	p := root.Palette
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(root.Find(RoleTitle).Text),
		p.MutedStyle().Render(root.Find(RoleSubtitle).Text),
		lipgloss.NewStyle().Foreground(p.Border).Render(strings.Repeat("─", w)),
	}
	if e := root.Find(RoleEmpty); e != nil {
		rest := max(1, h-len(lines))
		return strings.Join(lines, "\n") + "\n" + widgets.EmptyState{Message: e.Text, Palette: p}.Render(w, rest)
	}

	// Consecutive half-width fields share a line.
	fields := root.FindAll(RoleField)
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		if f.Size == 50 && i+1 < len(fields) && fields[i+1].Size == 50 {
			half := (w - 1) / 2
			pair := widgets.HStack{
				Widgets: []widgets.Widget{
					widgets.Text(drawField(f, p, half)),
					widgets.Text(drawField(fields[i+1], p, w-1-half)),
				},
				Gap: 1,
			}.Render(w, 4)
			lines = append(lines, pair)
			i++
			continue
		}
		width := w
		if f.Size == 50 {
			width = (w - 1) / 2
		}
		lines = append(lines, drawField(f, p, width))
	}

	if up := root.Find(RoleUploader); up != nil {
		lines = append(lines, widgets.Uploader{Hint: up.Text, Files: up.Texts(RoleFile), Palette: p}.Render(w, 3+len(up.Children)))
	}
	cb := root.Find(RoleCheckbox)
	lines = append(lines, widgets.Checkbox(cb.Active, cb.Text, p))
	if n := root.Find(RoleNotice); n != nil {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color(n.Color)).Render(n.Text))
	}
	if pg := root.Find(RolePagination); pg != nil {
		lines = append(lines, "", drawPager(pg, p, w))
	}
	return strings.Join(lines, "\n")
}
