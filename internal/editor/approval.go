package editor

import (
	"github.com/jask/designplay/internal/scene"
	"github.com/jask/designplay/internal/store"
)

const (
	groupForm     = "승인 요청"
	groupFields   = "폼 필드"
	groupUploader = "업로더"
	groupCheckbox = "체크박스"
	groupNotice   = "안내 문구"
)

func Approval(a scene.Approval, s *store.Store) []Control {
	up := func(fn func(scene.Approval) scene.Approval) { s.UpdateApproval(fn) }
	out := []Control{
		text(groupForm, "타이틀", a.Title, func(v string) {
			up(func(a scene.Approval) scene.Approval {
				a.Title = v
				return a
			})
		}),
		text(groupForm, "서브타이틀", a.Subtitle, func(v string) {
			up(func(a scene.Approval) scene.Approval {
				a.Subtitle = v
				return a
			})
		}),
		action(groupFields, "+ 드롭다운 추가", func() {
			up(func(a scene.Approval) scene.Approval { return a.AddField(scene.FieldDropdown, scene.WidthFull) })
		}),
		action(groupFields, "+ 입력 필드 추가", func() {
			up(func(a scene.Approval) scene.Approval { return a.AddField(scene.FieldInput, scene.WidthFull) })
		}),
	}
	for _, f := range a.FormFields {
		out = append(out, fieldControls(f, up)...)
	}

	out = append(out, choice(groupUploader, "업로더 타입", string(a.UploaderType), scene.Names(scene.UploaderTypes), func(v string) {
		up(func(a scene.Approval) scene.Approval {
			a.UploaderType = scene.UploaderType(v)
			return a
		})
	}))
	switch a.UploaderType {
	case scene.UploaderDocument:
		out = append(out, action(groupUploader, "+ 문서 추가", func() { up(scene.Approval.AddDocument) }))
		for _, f := range a.DocumentFiles {
			id := f.ID
			out = append(out, indent(action(groupUploader, f.FileName+" 삭제", func() {
				up(func(a scene.Approval) scene.Approval { return a.RemoveDocument(id) })
			}), 1))
		}
	case scene.UploaderProgram:
		out = append(out, action(groupUploader, "+ 프로그램 추가", func() { up(scene.Approval.AddProgram) }))
		for _, f := range a.ProgramFiles {
			id := f.ID
			out = append(out, indent(action(groupUploader, f.FileName+" 삭제", func() {
				up(func(a scene.Approval) scene.Approval { return a.RemoveProgram(id) })
			}), 1))
		}
	}

	out = append(out,
		toggle(groupCheckbox, "체크", a.CheckboxOption.Checked, func() {
			up(func(a scene.Approval) scene.Approval {
				a.CheckboxOption.Checked = !a.CheckboxOption.Checked
				return a
			})
		}),
		text(groupCheckbox, "라벨", a.CheckboxOption.Label, func(v string) {
			up(func(a scene.Approval) scene.Approval {
				a.CheckboxOption.Label = v
				return a
			})
		}),
		toggle(groupNotice, "안내 표시", a.NoticeField.Text != "", func() {
			up(func(a scene.Approval) scene.Approval { return a.SetNotice(a.NoticeField.Text == "") })
		}),
		text(groupNotice, "색상", a.NoticeField.Color, func(v string) {
			up(func(a scene.Approval) scene.Approval {
				a.NoticeField.Color = v
				return a
			})
		}),
	)
	if a.NoticeField.Text != "" {
		out = append(out, text(groupNotice, "문구", a.NoticeField.Text, func(v string) {
			up(func(a scene.Approval) scene.Approval {
				a.NoticeField.Text = v
				return a
			})
		}))
	}

	out = append(out, pagerControls(groupPager, a.Pagination, func(fn func(scene.Pagination) scene.Pagination) {
		up(func(a scene.Approval) scene.Approval {
			a.Pagination = fn(a.Pagination)
			return a
		})
	})...)
	return append(out, emptyControls(groupEmpty, a.EmptyState, func(fn func(scene.EmptyState) scene.EmptyState) {
		up(func(a scene.Approval) scene.Approval {
			a.EmptyState = fn(a.EmptyState)
			return a
		})
	})...)
}

func fieldControls(f scene.FormField, up func(func(scene.Approval) scene.Approval)) []Control {
	id := f.ID
	edit := func(fn func(scene.FormField) scene.FormField) {
		up(func(a scene.Approval) scene.Approval { return a.UpdateField(id, fn) })
	}
	out := []Control{
		indent(text(groupFields, "필드", f.Label, func(v string) {
			edit(func(f scene.FormField) scene.FormField {
				f.Label = v
				return f
			})
		}), 1),
		indent(choice(groupFields, "타입", string(f.Type), scene.Names(scene.FieldTypes), func(v string) {
			up(func(a scene.Approval) scene.Approval { return a.SetFieldType(id, scene.FieldType(v)) })
		}), 2),
		indent(choice(groupFields, "너비", string(f.Width), scene.Names(scene.FieldWidths), func(v string) {
			edit(func(f scene.FormField) scene.FormField {
				f.Width = scene.FieldWidth(v)
				return f
			})
		}), 2),
		indent(toggle(groupFields, "필수", f.Required, func() {
			edit(func(f scene.FormField) scene.FormField {
				f.Required = !f.Required
				return f
			})
		}), 2),
	}
	switch f.Type {
	case scene.FieldDropdown:
		out = append(out, indent(action(groupFields, "+ 옵션 추가", func() {
			up(func(a scene.Approval) scene.Approval { return a.AddOption(id) })
		}), 2))
		for _, o := range f.Options {
			oid := o.ID
			out = append(out,
				indent(text(groupFields, "옵션", o.Label, func(v string) {
					up(func(a scene.Approval) scene.Approval { return a.RenameOption(id, oid, v) })
				}), 3),
				indent(action(groupFields, "삭제", func() {
					up(func(a scene.Approval) scene.Approval { return a.RemoveOption(id, oid) })
				}), 4),
			)
		}
	default:
		out = append(out,
			indent(text(groupFields, "플레이스홀더", f.Placeholder, func(v string) {
				edit(func(f scene.FormField) scene.FormField {
					f.Placeholder = v
					return f
				})
			}), 2),
			indent(text(groupFields, "기본값", f.DefaultValue, func(v string) {
				edit(func(f scene.FormField) scene.FormField {
					f.DefaultValue = v
					return f
				})
			}), 2),
		)
	}
	return append(out, indent(action(groupFields, "삭제", func() {
		up(func(a scene.Approval) scene.Approval { return a.RemoveField(id) })
	}), 2))
}
