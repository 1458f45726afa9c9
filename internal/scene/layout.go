package scene

type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// SideItem is a sidebar entry. A non-nil Children slice marks a folder,
// even when empty; children never carry children of their own.
type SideItem struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Children []SideItem `json:"children"`
}

func (s SideItem) IsFolder() bool { return s.Children != nil }

// Layout is the application shell slice: top bar, sidebar and footer.
type Layout struct {
	ThemeMode      ThemeMode   `json:"themeMode"`
	AppTitle       string      `json:"appTitle"`
	TopNav         []NavItem   `json:"topNav"`
	ActiveTopNavID *string     `json:"activeTopNavId"`
	SidebarMode    SidebarMode `json:"sidebarMode"`
	SidebarTitle   string      `json:"sidebarTitle"`
	SideItems      []SideItem  `json:"sideItems"`
	ActiveSideID   *string     `json:"activeSideId"`
	FooterUserName string      `json:"footerUserName"`
	FooterNotice   string      `json:"footerNotice"`
}

func DefaultTopNav() []NavItem {
	return []NavItem{
		{ID: NewID("nav"), Label: "협업보호"},
		{ID: NewID("nav"), Label: "불법접근"},
		{ID: NewID("nav"), Label: "랜섬웨어"},
		{ID: NewID("nav"), Label: "백업"},
	}
}

func DefaultSideItems() []SideItem {
	return []SideItem{
		{ID: NewID("side"), Label: "폴더1", Children: []SideItem{
			{ID: NewID("side"), Label: "하위1"},
			{ID: NewID("side"), Label: "하위2"},
		}},
		{ID: NewID("side"), Label: "단일 메뉴"},
		{ID: NewID("side"), Label: "폴더2", Children: []SideItem{
			{ID: NewID("side"), Label: "하위1"},
		}},
	}
}

func DefaultLayout() Layout {
	return Layout{
		ThemeMode:      ThemeLight,
		AppTitle:       Brand,
		TopNav:         DefaultTopNav(),
		SidebarMode:    SidebarMixed,
		SidebarTitle:   "Sidebar",
		SideItems:      DefaultSideItems(),
		FooterUserName: "관리자",
		FooterNotice:   "시스템 공지: 정기 점검이 2024년 1월 25일 02:00~04:00에 진행됩니다.",
	}
}

func (l Layout) AddTopNav() Layout {
	l.TopNav = appendCopy(l.TopNav, NavItem{ID: NewID("nav"), Label: NextLabel("메뉴", len(l.TopNav))})
	return l
}

func (l Layout) RemoveTopNav(id string) Layout {
	l.TopNav = removeBy(l.TopNav, func(n NavItem) bool { return n.ID == id })
	if l.ActiveTopNavID != nil && *l.ActiveTopNavID == id {
		l.ActiveTopNavID = nil
	}
	return l
}

func (l Layout) RenameTopNav(id, label string) Layout {
	l.TopNav = mapBy(l.TopNav, func(n NavItem) bool { return n.ID == id }, func(n NavItem) NavItem {
		n.Label = label
		return n
	})
	return l
}

// SetActiveTopNav selects an item; an empty or unknown id clears the selection.
func (l Layout) SetActiveTopNav(id string) Layout {
	l.ActiveTopNavID = nil
	for _, n := range l.TopNav {
		if n.ID == id {
			v := id
			l.ActiveTopNavID = &v
		}
	}
	return l
}

// AddSideItem appends a folder in folder/mixed mode and a plain entry in flat mode.
func (l Layout) AddSideItem() Layout {
	n := len(l.SideItems)
	item := SideItem{ID: NewID("side"), Label: NextLabel("메뉴", n)}
	if l.SidebarMode == SidebarFolder || l.SidebarMode == SidebarMixed {
		item = SideItem{ID: NewID("side"), Label: NextLabel("폴더", n), Children: []SideItem{}}
	}
	l.SideItems = appendCopy(l.SideItems, item)
	return l
}

// RemoveSideItem drops a top-level entry together with its children.
func (l Layout) RemoveSideItem(id string) Layout {
	for _, it := range l.SideItems {
		if it.ID != id {
			continue
		}
		if l.ActiveSideID != nil && (it.ID == *l.ActiveSideID || containsChild(it, *l.ActiveSideID)) {
			l.ActiveSideID = nil
		}
	}
	l.SideItems = removeBy(l.SideItems, func(s SideItem) bool { return s.ID == id })
	return l
}

func (l Layout) RenameSideItem(id, label string) Layout {
	l.SideItems = mapBy(l.SideItems, func(s SideItem) bool { return s.ID == id }, func(s SideItem) SideItem {
		s.Label = label
		return s
	})
	return l
}

// AddChild appends a child to a top-level entry, turning it into a folder if needed.
func (l Layout) AddChild(folderID string) Layout {
	l.SideItems = mapBy(l.SideItems, func(s SideItem) bool { return s.ID == folderID }, func(s SideItem) SideItem {
		s.Children = appendCopy(s.Children, SideItem{ID: NewID("side"), Label: NextLabel("하위", len(s.Children))})
		return s
	})
	return l
}

func (l Layout) RemoveChild(folderID, childID string) Layout {
	l.SideItems = mapBy(l.SideItems, func(s SideItem) bool { return s.ID == folderID }, func(s SideItem) SideItem {
		s.Children = removeBy(s.Children, func(c SideItem) bool { return c.ID == childID })
		return s
	})
	if l.ActiveSideID != nil && *l.ActiveSideID == childID {
		l.ActiveSideID = nil
	}
	return l
}

func (l Layout) RenameChild(folderID, childID, label string) Layout {
	l.SideItems = mapBy(l.SideItems, func(s SideItem) bool { return s.ID == folderID }, func(s SideItem) SideItem {
		s.Children = mapBy(s.Children, func(c SideItem) bool { return c.ID == childID }, func(c SideItem) SideItem {
			c.Label = label
			return c
		})
		return s
	})
	return l
}

// SetActiveSide selects any entry of the tree; unknown ids clear the selection.
func (l Layout) SetActiveSide(id string) Layout {
	l.ActiveSideID = nil
	for _, it := range l.SideItems {
		if it.ID == id || containsChild(it, id) {
			v := id
			l.ActiveSideID = &v
		}
	}
	return l
}

func containsChild(item SideItem, id string) bool {
	for _, c := range item.Children {
		if c.ID == id {
			return true
		}
	}
	return false
}

// SideIDs lists every id in the sidebar tree, parents before their children.
func (l Layout) SideIDs() []string {
	var ids []string
	for _, it := range l.SideItems {
		ids = append(ids, it.ID)
		for _, c := range it.Children {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// ValidTree reports whether the sidebar nests one level deep with unique ids.
func (l Layout) ValidTree() bool {
	for _, it := range l.SideItems {
		for _, c := range it.Children {
			if len(c.Children) > 0 {
				return false
			}
		}
	}
	return uniqueIDs(l.SideIDs())
}

// ValidTopNav reports whether every top-nav id is present and unique.
func (l Layout) ValidTopNav() bool {
	ids := make([]string, len(l.TopNav))
	for i, n := range l.TopNav {
		ids[i] = n.ID
	}
	return uniqueIDs(ids)
}

func (l Layout) Normalize() Layout {
	l.ThemeMode = Parse(string(l.ThemeMode), ThemeModes, ThemeLight)
	l.SidebarMode = Parse(string(l.SidebarMode), SidebarModes, SidebarMixed)
	l.SideItems = mapBy(l.SideItems, SideItem.IsFolder, func(s SideItem) SideItem {
		s.Children = mapBy(s.Children, func(SideItem) bool { return true }, func(c SideItem) SideItem {
			c.Children = nil
			return c
		})
		return s
	})
	if l.ActiveTopNavID != nil {
		l = l.SetActiveTopNav(*l.ActiveTopNavID)
	}
	if l.ActiveSideID != nil {
		l = l.SetActiveSide(*l.ActiveSideID)
	}
	return l
}
