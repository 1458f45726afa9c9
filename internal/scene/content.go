package scene

import "maps"

const (
	defaultCellText   = "데이터"
	defaultTrueText   = "허용"
	defaultFalseText  = "차단"
	defaultBadgeText  = "뱃지"
	ColumnWidthMin    = 5
	ColumnWidthMax    = 100
	defaultSearchType = "all"
)

type ExtraButton struct {
	ID      string        `json:"id"`
	Label   string        `json:"label"`
	Variant ButtonVariant `json:"variant"`
}

type SearchOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type SearchFilter struct {
	Enabled       bool           `json:"enabled"`
	SearchType    string         `json:"searchType"`
	SearchKeyword string         `json:"searchKeyword"`
	SearchOptions []SearchOption `json:"searchOptions"`
}

type StatusOptions struct {
	TrueText  string `json:"trueText,omitempty"`
	FalseText string `json:"falseText,omitempty"`
}

type BadgeOptions struct {
	Text    string       `json:"text"`
	Variant BadgeVariant `json:"variant"`
}

type Column struct {
	ID            string         `json:"id"`
	Header        string         `json:"header"`
	CellType      CellType       `json:"cellType"`
	Width         *int           `json:"width,omitempty"`
	StatusOptions *StatusOptions `json:"statusOptions,omitempty"`
	BadgeOptions  *BadgeOptions  `json:"badgeOptions,omitempty"`
}

// TrueText is the "active" status caption of the column.
func (c Column) TrueText() string {
	if c.StatusOptions != nil && c.StatusOptions.TrueText != "" {
		return c.StatusOptions.TrueText
	}
	return defaultTrueText
}

func (c Column) FalseText() string {
	if c.StatusOptions != nil && c.StatusOptions.FalseText != "" {
		return c.StatusOptions.FalseText
	}
	return defaultFalseText
}

func (c Column) badge() BadgeOptions {
	b := BadgeOptions{Text: defaultBadgeText, Variant: BadgeBlue}
	if c.BadgeOptions != nil {
		if c.BadgeOptions.Text != "" {
			b.Text = c.BadgeOptions.Text
		}
		b.Variant = Parse(string(c.BadgeOptions.Variant), BadgeVariants, BadgeBlue)
	}
	return b
}

// DefaultCell is the canonical value a cell takes under this column.
func (c Column) DefaultCell() Cell {
	switch c.CellType {
	case CellSwitch:
		return SwitchCell(false)
	case CellStatus:
		return StatusCell(c.TrueText())
	case CellBadge:
		b := c.badge()
		return BadgeCell(b.Text, b.Variant)
	case CellText:
		return TextCell(defaultCellText)
	default:
		return TextCell(defaultCellText)
	}
}

// fit keeps a compatible value and retags it; anything else becomes the default.
func (c Column) fit(v Cell) Cell {
	switch c.CellType {
	case CellText:
		if v.Type == CellText || v.Type == CellStatus {
			return TextCell(v.Text)
		}
	case CellStatus:
		if v.Type == CellText || v.Type == CellStatus {
			return StatusCell(v.Text)
		}
	case CellSwitch:
		if v.Type == CellSwitch {
			return v
		}
	case CellBadge:
		if v.Type == CellBadge {
			return v
		}
	}
	return c.DefaultCell()
}

type Row struct {
	ID    string          `json:"id"`
	Cells map[string]Cell `json:"cells"`
}

// Content is the list/table section slice.
type Content struct {
	ListMenu     string        `json:"listMenu"`
	ListSubMenu  string        `json:"listSubMenu"`
	ListTitle    string        `json:"listTitle"`
	ListSubtitle string        `json:"listSubtitle"`
	MenuItems    []string      `json:"menuItems"`
	ExtraButtons []ExtraButton `json:"extraButtons"`
	TableMode    TableMode     `json:"tableMode"`
	SearchFilter SearchFilter  `json:"searchFilter"`
	Columns      []Column      `json:"columns"`
	Rows         []Row         `json:"rows"`
	Pagination   Pagination    `json:"pagination"`
	EmptyState   EmptyState    `json:"emptyState"`
	ShowOverlay  bool          `json:"showOverlay"`
}

func DefaultColumns() []Column {
	return []Column{
		{ID: NewID("col"), Header: "이름", CellType: CellText},
		{ID: NewID("col"), Header: "상태", CellType: CellSwitch},
		{ID: NewID("col"), Header: "접근권한", CellType: CellStatus},
	}
}

// DefaultRows builds the three sample rows against the three default columns.
func DefaultRows(cols []Column) []Row {
	if len(cols) < 3 {
		cols = DefaultColumns()
	}
	row := func(name string, on bool, status string) Row {
		return Row{ID: NewID("row"), Cells: map[string]Cell{
			cols[0].ID: TextCell(name),
			cols[1].ID: SwitchCell(on),
			cols[2].ID: StatusCell(status),
		}}
	}
	return []Row{
		row("항목1", true, "허용"),
		row("항목2", false, "차단"),
		row("항목3", true, "허용"),
	}
}

func DefaultSearchFilter() SearchFilter {
	return SearchFilter{
		Enabled:    true,
		SearchType: defaultSearchType,
		SearchOptions: []SearchOption{
			{Value: "all", Label: "전체"},
			{Value: "name", Label: "이름"},
			{Value: "status", Label: "상태"},
		},
	}
}

func DefaultExtraButtons() []ExtraButton {
	return []ExtraButton{{ID: NewID("btn"), Label: "추가하기", Variant: ButtonAdd}}
}

func DefaultContent() Content {
	cols := DefaultColumns()
	return Content{
		ListTitle:    "콘텐츠 리스트",
		ListSubtitle: "서브타이틀 설명 문구",
		MenuItems:    []string{"필터", "정렬"},
		ExtraButtons: DefaultExtraButtons(),
		TableMode:    TableSimple,
		SearchFilter: DefaultSearchFilter(),
		Columns:      cols,
		Rows:         DefaultRows(cols),
		Pagination:   DefaultPagination(),
		EmptyState:   DefaultEmptyState(),
	}
}

func (c Content) Column(id string) (Column, bool) {
	for _, col := range c.Columns {
		if col.ID == id {
			return col, true
		}
	}
	return Column{}, false
}

func (c Content) AddMenuItem() Content {
	c.MenuItems = appendCopy(c.MenuItems, NextLabel("메뉴", len(c.MenuItems)))
	return c
}

func (c Content) RemoveMenuItem(idx int) Content {
	c.MenuItems = removeAt(c.MenuItems, idx)
	return c
}

func (c Content) RenameMenuItem(idx int, label string) Content {
	c.MenuItems = mapAt(c.MenuItems, idx, func(string) string { return label })
	return c
}

func (c Content) AddExtraButton() Content {
	c.ExtraButtons = appendCopy(c.ExtraButtons, ExtraButton{
		ID:      NewID("btn"),
		Label:   NextLabel("버튼", len(c.ExtraButtons)),
		Variant: ButtonAdd,
	})
	return c
}

func (c Content) RemoveExtraButton(id string) Content {
	c.ExtraButtons = removeBy(c.ExtraButtons, func(b ExtraButton) bool { return b.ID == id })
	return c
}

func (c Content) UpdateExtraButton(id string, fn func(ExtraButton) ExtraButton) Content {
	c.ExtraButtons = mapBy(c.ExtraButtons, func(b ExtraButton) bool { return b.ID == id }, fn)
	return c
}

// AddSearchOption appends an option whose value is not taken yet.
func (c Content) AddSearchOption() Content {
	taken := make(map[string]bool, len(c.SearchFilter.SearchOptions))
	for _, o := range c.SearchFilter.SearchOptions {
		taken[o.Value] = true
	}
	n := len(c.SearchFilter.SearchOptions)
	for taken[NextLabel("opt", n)] {
		n++
	}
	c.SearchFilter.SearchOptions = appendCopy(c.SearchFilter.SearchOptions, SearchOption{
		Value: NextLabel("opt", n),
		Label: NextLabel("옵션", n),
	})
	return c
}

// RemoveSearchOption drops an option; a selection pointing at it falls back
// to the first remaining option.
func (c Content) RemoveSearchOption(idx int) Content {
	opts := c.SearchFilter.SearchOptions
	if idx < 0 || idx >= len(opts) {
		return c
	}
	removed := opts[idx].Value
	c.SearchFilter.SearchOptions = removeAt(opts, idx)
	if c.SearchFilter.SearchType == removed {
		c.SearchFilter.SearchType = defaultSearchType
		if len(c.SearchFilter.SearchOptions) > 0 {
			c.SearchFilter.SearchType = c.SearchFilter.SearchOptions[0].Value
		}
	}
	return c
}

func (c Content) RenameSearchOption(idx int, label string) Content {
	c.SearchFilter.SearchOptions = mapAt(c.SearchFilter.SearchOptions, idx, func(o SearchOption) SearchOption {
		o.Label = label
		return o
	})
	return c
}

// AddColumn appends a text column and gives every row its default cell.
func (c Content) AddColumn() Content {
	col := Column{ID: NewID("col"), Header: NextLabel("컬럼", len(c.Columns)), CellType: CellText}
	c.Columns = appendCopy(c.Columns, col)
	c.Rows = c.mapRows(func(cells map[string]Cell) { cells[col.ID] = col.DefaultCell() })
	return c
}

// RemoveColumn drops the column and its key from every row.
func (c Content) RemoveColumn(id string) Content {
	c.Columns = removeBy(c.Columns, func(col Column) bool { return col.ID == id })
	c.Rows = c.mapRows(func(cells map[string]Cell) { delete(cells, id) })
	return c
}

func (c Content) RenameColumn(id, header string) Content {
	return c.updateColumn(id, func(col Column) Column {
		col.Header = header
		return col
	})
}

// SetColumnWidth sets a width in percent clamped to [5, 100]; nil means automatic.
func (c Content) SetColumnWidth(id string, width *int) Content {
	return c.updateColumn(id, func(col Column) Column {
		col.Width = nil
		if width != nil {
			w := clamp(*width, ColumnWidthMin, ColumnWidthMax)
			col.Width = &w
		}
		return col
	})
}

// SetColumnType retags a column and coerces every row's value under it to
// the canonical default of the new type.
func (c Content) SetColumnType(id string, t CellType) Content {
	t = Parse(string(t), CellTypes, CellText)
	col, ok := c.Column(id)
	if !ok {
		return c
	}
	col.CellType = t
	c = c.updateColumn(id, func(Column) Column { return col })
	c.Rows = c.mapRows(func(cells map[string]Cell) { cells[id] = col.DefaultCell() })
	return c
}

// SetStatusOptions renames the two status captions; rows keep their side.
func (c Content) SetStatusOptions(id, trueText, falseText string) Content {
	col, ok := c.Column(id)
	if !ok {
		return c
	}
	oldTrue := col.TrueText()
	col.StatusOptions = &StatusOptions{TrueText: trueText, FalseText: falseText}
	c = c.updateColumn(id, func(Column) Column { return col })
	if col.CellType == CellStatus {
		c.Rows = c.mapRows(func(cells map[string]Cell) {
			if cells[id].Text == oldTrue {
				cells[id] = StatusCell(col.TrueText())
			} else {
				cells[id] = StatusCell(col.FalseText())
			}
		})
	}
	return c
}

func (c Content) SetBadgeOptions(id, text string, v BadgeVariant) Content {
	return c.updateColumn(id, func(col Column) Column {
		col.BadgeOptions = &BadgeOptions{Text: text, Variant: Parse(string(v), BadgeVariants, BadgeBlue)}
		return col
	})
}

func (c Content) AddRow() Content {
	cells := make(map[string]Cell, len(c.Columns))
	for _, col := range c.Columns {
		cells[col.ID] = col.DefaultCell()
	}
	c.Rows = appendCopy(c.Rows, Row{ID: NewID("row"), Cells: cells})
	return c
}

func (c Content) RemoveRow(id string) Content {
	c.Rows = removeBy(c.Rows, func(r Row) bool { return r.ID == id })
	return c
}

// SetCellText edits the text of a text, status or badge cell. Switch cells
// have no text and are left untouched.
func (c Content) SetCellText(rowID, colID, text string) Content {
	return c.updateCell(rowID, colID, func(col Column, cur Cell) Cell {
		switch col.CellType {
		case CellText:
			return TextCell(text)
		case CellStatus:
			return StatusCell(text)
		case CellBadge:
			return BadgeCell(text, cur.Variant)
		case CellSwitch:
			return cur
		default:
			return cur
		}
	})
}

func (c Content) ToggleSwitch(rowID, colID string) Content {
	return c.updateCell(rowID, colID, func(col Column, cur Cell) Cell {
		if col.CellType != CellSwitch {
			return cur
		}
		return SwitchCell(!cur.On)
	})
}

// ToggleStatus replaces the status text with the other configured caption.
func (c Content) ToggleStatus(rowID, colID string) Content {
	return c.updateCell(rowID, colID, func(col Column, cur Cell) Cell {
		if col.CellType != CellStatus {
			return cur
		}
		if cur.Text == col.TrueText() {
			return StatusCell(col.FalseText())
		}
		return StatusCell(col.TrueText())
	})
}

func (c Content) SetBadgeVariant(rowID, colID string, v BadgeVariant) Content {
	return c.updateCell(rowID, colID, func(col Column, cur Cell) Cell {
		if col.CellType != CellBadge {
			return cur
		}
		return BadgeCell(cur.Text, Parse(string(v), BadgeVariants, BadgeBlue))
	})
}

// Consistent reports whether every row holds exactly one cell per column,
// each tagged with its column's type.
func (c Content) Consistent() bool {
	for _, r := range c.Rows {
		if len(r.Cells) != len(c.Columns) {
			return false
		}
		for _, col := range c.Columns {
			v, ok := r.Cells[col.ID]
			if !ok || v.Type != col.CellType {
				return false
			}
		}
	}
	return true
}

// ValidTable reports whether columns and rows can be restored as a pair:
// ids unique and every row keyed exactly by the column ids. With no columns
// every row must have no cells.
func (c Content) ValidTable() bool {
	colIDs := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		colIDs[i] = col.ID
	}
	rowIDs := make([]string, len(c.Rows))
	for i, r := range c.Rows {
		rowIDs[i] = r.ID
		if len(r.Cells) != len(c.Columns) {
			return false
		}
		for _, id := range colIDs {
			if _, ok := r.Cells[id]; !ok {
				return false
			}
		}
	}
	return uniqueIDs(colIDs) && uniqueIDs(rowIDs)
}

func (c Content) Normalize() Content {
	c.TableMode = Parse(string(c.TableMode), TableModes, TableSimple)
	c.Pagination = c.Pagination.Normalize()
	cols := make([]Column, len(c.Columns))
	for i, col := range c.Columns {
		col.CellType = Parse(string(col.CellType), CellTypes, CellText)
		if col.Width != nil {
			w := clamp(*col.Width, ColumnWidthMin, ColumnWidthMax)
			col.Width = &w
		}
		cols[i] = col
	}
	c.Columns = cols
	c.Rows = c.mapRows(func(cells map[string]Cell) {
		for _, col := range c.Columns {
			cells[col.ID] = col.fit(cells[col.ID])
		}
	})
	c.ExtraButtons = mapBy(c.ExtraButtons, func(ExtraButton) bool { return true }, func(b ExtraButton) ExtraButton {
		b.Variant = Parse(string(b.Variant), ButtonVariants, ButtonAdd)
		return b
	})
	return c
}

func (c Content) updateColumn(id string, fn func(Column) Column) Content {
	c.Columns = mapBy(c.Columns, func(col Column) bool { return col.ID == id }, fn)
	return c
}

func (c Content) updateCell(rowID, colID string, fn func(Column, Cell) Cell) Content {
	col, ok := c.Column(colID)
	if !ok {
		return c
	}
	c.Rows = mapBy(c.Rows, func(r Row) bool { return r.ID == rowID }, func(r Row) Row {
		cells := maps.Clone(r.Cells)
		cells[colID] = fn(col, cells[colID])
		r.Cells = cells
		return r
	})
	return c
}

// mapRows applies fn to a private copy of every row's cell map.
func (c Content) mapRows(fn func(map[string]Cell)) []Row {
	out := make([]Row, len(c.Rows))
	for i, r := range c.Rows {
		cells := maps.Clone(r.Cells)
		if cells == nil {
			cells = make(map[string]Cell)
		}
		fn(cells)
		r.Cells = cells
		out[i] = r
	}
	return out
}
