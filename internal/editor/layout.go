package editor

import (
	"github.com/jask/designplay/internal/scene"
	"github.com/jask/designplay/internal/store"
)

const (
	groupShell   = "레이아웃"
	groupTopNav  = "상단 메뉴"
	groupSidebar = "사이드바"
	groupFooter  = "푸터"
)

func Layout(l scene.Layout, s *store.Store) []Control {
	up := func(fn func(scene.Layout) scene.Layout) { s.UpdateLayout(fn) }
	activeTop, activeSide := "", ""
	if l.ActiveTopNavID != nil {
		activeTop = *l.ActiveTopNavID
	}
	if l.ActiveSideID != nil {
		activeSide = *l.ActiveSideID
	}

	out := []Control{
		choice(groupShell, "테마", string(l.ThemeMode), scene.Names(scene.ThemeModes), func(v string) {
			up(func(l scene.Layout) scene.Layout {
				l.ThemeMode = scene.ThemeMode(v)
				return l
			})
		}),
		text(groupShell, "앱 타이틀", l.AppTitle, func(v string) {
			up(func(l scene.Layout) scene.Layout {
				l.AppTitle = v
				return l
			})
		}),
		action(groupTopNav, "+ 메뉴 추가", func() { up(scene.Layout.AddTopNav) }),
	}
	for _, n := range l.TopNav {
		id := n.ID
		out = append(out,
			indent(text(groupTopNav, "메뉴", n.Label, func(v string) {
				up(func(l scene.Layout) scene.Layout { return l.RenameTopNav(id, v) })
			}), 1),
			indent(toggle(groupTopNav, "활성", id == activeTop, func() {
				up(func(l scene.Layout) scene.Layout { return l.SetActiveTopNav(flipActive(l.ActiveTopNavID, id)) })
			}), 2),
			indent(action(groupTopNav, "삭제", func() {
				up(func(l scene.Layout) scene.Layout { return l.RemoveTopNav(id) })
			}), 2),
		)
	}

	out = append(out,
		text(groupSidebar, "사이드바 타이틀", l.SidebarTitle, func(v string) {
			up(func(l scene.Layout) scene.Layout {
				l.SidebarTitle = v
				return l
			})
		}),
		choice(groupSidebar, "사이드바 모드", string(l.SidebarMode), scene.Names(scene.SidebarModes), func(v string) {
			up(func(l scene.Layout) scene.Layout {
				l.SidebarMode = scene.SidebarMode(v)
				return l
			})
		}),
		action(groupSidebar, "+ 항목 추가", func() { up(scene.Layout.AddSideItem) }),
	)
	for _, it := range l.SideItems {
		id := it.ID
		out = append(out,
			indent(text(groupSidebar, "항목", it.Label, func(v string) {
				up(func(l scene.Layout) scene.Layout { return l.RenameSideItem(id, v) })
			}), 1),
			indent(toggle(groupSidebar, "활성", id == activeSide, func() {
				up(func(l scene.Layout) scene.Layout { return l.SetActiveSide(flipActive(l.ActiveSideID, id)) })
			}), 2),
		)
		if it.IsFolder() {
			out = append(out, indent(action(groupSidebar, "+ 하위 추가", func() {
				up(func(l scene.Layout) scene.Layout { return l.AddChild(id) })
			}), 2))
		}
		out = append(out, indent(action(groupSidebar, "삭제", func() {
			up(func(l scene.Layout) scene.Layout { return l.RemoveSideItem(id) })
		}), 2))
		for _, c := range it.Children {
			cid := c.ID
			out = append(out,
				indent(text(groupSidebar, "하위", c.Label, func(v string) {
					up(func(l scene.Layout) scene.Layout { return l.RenameChild(id, cid, v) })
				}), 3),
				indent(toggle(groupSidebar, "활성", cid == activeSide, func() {
					up(func(l scene.Layout) scene.Layout { return l.SetActiveSide(flipActive(l.ActiveSideID, cid)) })
				}), 4),
				indent(action(groupSidebar, "삭제", func() {
					up(func(l scene.Layout) scene.Layout { return l.RemoveChild(id, cid) })
				}), 4),
			)
		}
	}

	return append(out,
		text(groupFooter, "사용자 이름", l.FooterUserName, func(v string) {
			up(func(l scene.Layout) scene.Layout {
				l.FooterUserName = v
				return l
			})
		}),
		text(groupFooter, "공지", l.FooterNotice, func(v string) {
			up(func(l scene.Layout) scene.Layout {
				l.FooterNotice = v
				return l
			})
		}),
	)
}

// flipActive selects id, or clears the selection when id is already active.
func flipActive(current *string, id string) string {
	if current != nil && *current == id {
		return ""
	}
	return id
}
