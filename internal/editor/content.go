package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jask/designplay/internal/scene"
	"github.com/jask/designplay/internal/store"
)

const (
	groupList    = "리스트"
	groupMenu    = "메뉴"
	groupButtons = "추가 버튼"
	groupSearch  = "검색 필터"
	groupColumns = "컬럼"
	groupRows    = "행"
	groupPager   = "페이지네이션"
	groupEmpty   = "빈 상태"
)

func Content(c scene.Content, s *store.Store) []Control {
	up := func(fn func(scene.Content) scene.Content) { s.UpdateContent(fn) }
	field := func(group, label, value string, set func(*scene.Content, string)) Control {
		return text(group, label, value, func(v string) {
			up(func(c scene.Content) scene.Content {
				set(&c, v)
				return c
			})
		})
	}

	out := []Control{
		field(groupList, "메뉴", c.ListMenu, func(c *scene.Content, v string) { c.ListMenu = v }),
		field(groupList, "서브 메뉴", c.ListSubMenu, func(c *scene.Content, v string) { c.ListSubMenu = v }),
		field(groupList, "타이틀", c.ListTitle, func(c *scene.Content, v string) { c.ListTitle = v }),
		field(groupList, "서브타이틀", c.ListSubtitle, func(c *scene.Content, v string) { c.ListSubtitle = v }),
		toggle(groupList, "오버레이", c.ShowOverlay, func() {
			up(func(c scene.Content) scene.Content {
				c.ShowOverlay = !c.ShowOverlay
				return c
			})
		}),
		choice(groupList, "테이블 모드", string(c.TableMode), scene.Names(scene.TableModes), func(v string) {
			up(func(c scene.Content) scene.Content {
				c.TableMode = scene.TableMode(v)
				return c
			})
		}),
		action(groupMenu, "+ 메뉴 추가", func() { up(scene.Content.AddMenuItem) }),
	}
	for i, m := range c.MenuItems {
		out = append(out,
			indent(text(groupMenu, "메뉴", m, func(v string) {
				up(func(c scene.Content) scene.Content { return c.RenameMenuItem(i, v) })
			}), 1),
			indent(action(groupMenu, "삭제", func() {
				up(func(c scene.Content) scene.Content { return c.RemoveMenuItem(i) })
			}), 2),
		)
	}

	out = append(out, action(groupButtons, "+ 버튼 추가", func() { up(scene.Content.AddExtraButton) }))
	for _, b := range c.ExtraButtons {
		id := b.ID
		out = append(out,
			indent(text(groupButtons, "버튼", b.Label, func(v string) {
				up(func(c scene.Content) scene.Content {
					return c.UpdateExtraButton(id, func(b scene.ExtraButton) scene.ExtraButton {
						b.Label = v
						return b
					})
				})
			}), 1),
			indent(choice(groupButtons, "스타일", string(b.Variant), scene.Names(scene.ButtonVariants), func(v string) {
				up(func(c scene.Content) scene.Content {
					return c.UpdateExtraButton(id, func(b scene.ExtraButton) scene.ExtraButton {
						b.Variant = scene.ButtonVariant(v)
						return b
					})
				})
			}), 2),
			indent(action(groupButtons, "삭제", func() {
				up(func(c scene.Content) scene.Content { return c.RemoveExtraButton(id) })
			}), 2),
		)
	}

	out = append(out, searchControls(c.SearchFilter, up)...)
	out = append(out, columnControls(c, up)...)
	out = append(out, rowControls(c, up)...)
	out = append(out, pagerControls(groupPager, c.Pagination, func(fn func(scene.Pagination) scene.Pagination) {
		up(func(c scene.Content) scene.Content {
			c.Pagination = fn(c.Pagination)
			return c
		})
	})...)
	return append(out, emptyControls(groupEmpty, c.EmptyState, func(fn func(scene.EmptyState) scene.EmptyState) {
		up(func(c scene.Content) scene.Content {
			c.EmptyState = fn(c.EmptyState)
			return c
		})
	})...)
}

func searchControls(sf scene.SearchFilter, up func(func(scene.Content) scene.Content)) []Control {
	values := make([]string, len(sf.SearchOptions))
	for i, o := range sf.SearchOptions {
		values[i] = o.Value
	}
	out := []Control{
		toggle(groupSearch, "검색 사용", sf.Enabled, func() {
			up(func(c scene.Content) scene.Content {
				c.SearchFilter.Enabled = !c.SearchFilter.Enabled
				return c
			})
		}),
	}
	if len(values) > 0 {
		out = append(out, choice(groupSearch, "검색 타입", sf.SearchType, values, func(v string) {
			up(func(c scene.Content) scene.Content {
				c.SearchFilter.SearchType = v
				return c
			})
		}))
	}
	out = append(out,
		text(groupSearch, "검색어", sf.SearchKeyword, func(v string) {
			up(func(c scene.Content) scene.Content {
				c.SearchFilter.SearchKeyword = v
				return c
			})
		}),
		action(groupSearch, "+ 옵션 추가", func() { up(scene.Content.AddSearchOption) }),
	)
	for i, o := range sf.SearchOptions {
		out = append(out,
			indent(text(groupSearch, o.Value, o.Label, func(v string) {
				up(func(c scene.Content) scene.Content { return c.RenameSearchOption(i, v) })
			}), 1),
			indent(action(groupSearch, "삭제", func() {
				up(func(c scene.Content) scene.Content { return c.RemoveSearchOption(i) })
			}), 2),
		)
	}
	return out
}

// columnWidth edits a width in percent. Exactly 0 clears it back to automatic;
// any other value clamps to [ColumnWidthMin, ColumnWidthMax].
func columnWidth(label string, value int, set func(*int)) Control {
	c := number(groupColumns, label, value, 0, scene.ColumnWidthMax, nil)
	c.apply = func(in string) error {
		v, err := strconv.Atoi(strings.TrimSpace(in))
		if err != nil {
			return fmt.Errorf("%s: %q is not a number: %w", label, in, ErrInvalidInput)
		}
		if v == 0 {
			set(nil)
			return nil
		}
		v = min(max(v, scene.ColumnWidthMin), scene.ColumnWidthMax)
		set(&v)
		return nil
	}
	return c
}

func columnControls(c scene.Content, up func(func(scene.Content) scene.Content)) []Control {
	out := []Control{action(groupColumns, "+ 컬럼 추가", func() { up(scene.Content.AddColumn) })}
	for _, col := range c.Columns {
		id := col.ID
		width := 0
		if col.Width != nil {
			width = *col.Width
		}
		out = append(out,
			indent(text(groupColumns, "헤더", col.Header, func(v string) {
				up(func(c scene.Content) scene.Content { return c.RenameColumn(id, v) })
			}), 1),
			indent(choice(groupColumns, "셀 타입", string(col.CellType), scene.Names(scene.CellTypes), func(v string) {
				up(func(c scene.Content) scene.Content { return c.SetColumnType(id, scene.CellType(v)) })
			}), 2),
			indent(columnWidth("너비(%)", width, func(w *int) {
				up(func(c scene.Content) scene.Content { return c.SetColumnWidth(id, w) })
			}), 2),
		)
		switch col.CellType {
		case scene.CellStatus:
			trueText, falseText := col.TrueText(), col.FalseText()
			out = append(out,
				indent(text(groupColumns, "허용 텍스트", trueText, func(v string) {
					up(func(c scene.Content) scene.Content { return c.SetStatusOptions(id, v, falseText) })
				}), 2),
				indent(text(groupColumns, "차단 텍스트", falseText, func(v string) {
					up(func(c scene.Content) scene.Content { return c.SetStatusOptions(id, trueText, v) })
				}), 2),
			)
		case scene.CellBadge:
			b := col.DefaultCell()
			out = append(out,
				indent(text(groupColumns, "뱃지 텍스트", b.Text, func(v string) {
					up(func(c scene.Content) scene.Content { return c.SetBadgeOptions(id, v, b.Variant) })
				}), 2),
				indent(choice(groupColumns, "뱃지 색상", string(b.Variant), scene.Names(scene.BadgeVariants), func(v string) {
					up(func(c scene.Content) scene.Content { return c.SetBadgeOptions(id, b.Text, scene.BadgeVariant(v)) })
				}), 2),
			)
		}
		out = append(out, indent(action(groupColumns, "삭제", func() {
			up(func(c scene.Content) scene.Content { return c.RemoveColumn(id) })
		}), 2))
	}
	return out
}

func rowControls(c scene.Content, up func(func(scene.Content) scene.Content)) []Control {
	out := []Control{action(groupRows, "+ 행 추가", func() { up(scene.Content.AddRow) })}
	for i, r := range c.Rows {
		rid := r.ID
		out = append(out, indent(action(groupRows, scene.NextLabel("행 ", i)+" 삭제", func() {
			up(func(c scene.Content) scene.Content { return c.RemoveRow(rid) })
		}), 1))
		for _, col := range c.Columns {
			cid := col.ID
			cell := r.Cells[cid]
			switch col.CellType {
			case scene.CellSwitch:
				out = append(out, indent(toggle(groupRows, col.Header, cell.On, func() {
					up(func(c scene.Content) scene.Content { return c.ToggleSwitch(rid, cid) })
				}), 2))
			case scene.CellStatus:
				out = append(out, indent(choice(groupRows, col.Header, cell.Text, []string{col.TrueText(), col.FalseText()}, func(v string) {
					up(func(c scene.Content) scene.Content { return c.SetCellText(rid, cid, v) })
				}), 2))
			case scene.CellBadge:
				out = append(out,
					indent(text(groupRows, col.Header, cell.Text, func(v string) {
						up(func(c scene.Content) scene.Content { return c.SetCellText(rid, cid, v) })
					}), 2),
					indent(choice(groupRows, col.Header+" 색상", string(cell.Variant), scene.Names(scene.BadgeVariants), func(v string) {
						up(func(c scene.Content) scene.Content { return c.SetBadgeVariant(rid, cid, scene.BadgeVariant(v)) })
					}), 2),
				)
			default:
				out = append(out, indent(text(groupRows, col.Header, cell.Text, func(v string) {
					up(func(c scene.Content) scene.Content { return c.SetCellText(rid, cid, v) })
				}), 2))
			}
		}
	}
	return out
}
