package scene

import "time"

const (
	ModalHeightMin  = 200
	ModalHeightMax  = 700
	ModalHeightStep = 50
	logDateLayout   = "2006.01.02"
	logTimeLayout   = "15:04:05"
)

var modalWidths = map[ModalSize]int{
	SizeSm:  384,
	SizeMd:  448,
	SizeLg:  512,
	SizeXl:  576,
	Size2xl: 672,
}

// WidthPx is the logical modal width; unknown sizes use lg.
func (s ModalSize) WidthPx() int {
	if w, ok := modalWidths[s]; ok {
		return w
	}
	return modalWidths[SizeLg]
}

type ModalHeader struct {
	Type     HeaderType `json:"type"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
}

// SmallTable is rectangular: every row has len(Headers) cells.
type SmallTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

type LogItem struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

type LogConfig struct {
	ItemName       string    `json:"itemName"`
	ItemPath       string    `json:"itemPath"`
	DetectionCount int       `json:"detectionCount"`
	BlockedDate    string    `json:"blockedDate"`
	Logs           []LogItem `json:"logs"`
}

// Modal is the dialog slice.
type Modal struct {
	ModalType         ModalType   `json:"modalType"`
	ConfirmType       ConfirmType `json:"confirmType"`
	Title             string      `json:"title"`
	Message           string      `json:"message"`
	ConfirmButtonText string      `json:"confirmButtonText"`
	CancelButtonText  string      `json:"cancelButtonText"`
	ShowCancelButton  bool        `json:"showCancelButton"`
	Header            ModalHeader `json:"header"`
	ShowHeader        bool        `json:"showHeader"`
	Size              ModalSize   `json:"size"`
	HeightPx          int         `json:"heightPx"`
	Pagination        Pagination  `json:"pagination"`
	EmptyState        EmptyState  `json:"emptyState"`
	ShowTable         bool        `json:"showTable"`
	TableData         SmallTable  `json:"tableData"`
	LogConfig         LogConfig   `json:"logConfig"`
}

func DefaultTableData() SmallTable {
	return SmallTable{
		Headers: []string{"PC 이름", "PC 닉네임", "타입"},
		Rows: [][]string{
			{"데스크탑-01", "DEV-01", "PC"},
			{"노트북-02", "LAP-01", "Laptop"},
		},
	}
}

func DefaultLogConfig() LogConfig {
	return LogConfig{
		ItemName:       "unknown_tool.exe",
		ItemPath:       `C:\Users\user\Downloads\unknown_tool.exe`,
		DetectionCount: 3,
		BlockedDate:    "2024.01.24 14:32",
		Logs: []LogItem{
			{Date: "2024.01.24", Times: []string{"14:32:10", "11:05:42"}},
			{Date: "2024.01.22", Times: []string{"09:17:03"}},
		},
	}
}

func DefaultModal() Modal {
	return Modal{
		ModalType:         ModalConfirm,
		ConfirmType:       ConfirmWarning,
		Title:             "주의",
		Message:           "이 작업을 진행하시겠습니까?",
		ConfirmButtonText: "확인",
		CancelButtonText:  "취소",
		ShowCancelButton:  true,
		Header:            ModalHeader{Type: HeaderMember, Title: "홍길동", Subtitle: "개발팀"},
		ShowHeader:        true,
		Size:              SizeLg,
		HeightPx:          400,
		Pagination:        DefaultPagination(),
		EmptyState:        DefaultEmptyState(),
		ShowTable:         false,
		TableData:         DefaultTableData(),
		LogConfig:         DefaultLogConfig(),
	}
}

// SetHeight stores a height clamped to [200, 700].
func (m Modal) SetHeight(px int) Modal {
	m.HeightPx = clamp(px, ModalHeightMin, ModalHeightMax)
	return m
}

func (m Modal) Taller() Modal  { return m.SetHeight(m.HeightPx + ModalHeightStep) }
func (m Modal) Shorter() Modal { return m.SetHeight(m.HeightPx - ModalHeightStep) }

// AddHeader appends a column and pads every row to keep the table rectangular.
func (m Modal) AddHeader() Modal {
	t := m.TableData
	m.TableData = SmallTable{
		Headers: appendCopy(t.Headers, NextLabel("컬럼", len(t.Headers))),
		Rows:    mapRowsOf(t.Rows, func(r []string) []string { return appendCopy(r, defaultCellText) }),
	}
	return m
}

func (m Modal) RemoveHeader(idx int) Modal {
	t := m.TableData
	if idx < 0 || idx >= len(t.Headers) {
		return m
	}
	m.TableData = SmallTable{
		Headers: removeAt(t.Headers, idx),
		Rows:    mapRowsOf(t.Rows, func(r []string) []string { return removeAt(r, idx) }),
	}
	return m
}

func (m Modal) RenameHeader(idx int, label string) Modal {
	m.TableData.Headers = mapAt(m.TableData.Headers, idx, func(string) string { return label })
	return m
}

func (m Modal) AddTableRow() Modal {
	row := make([]string, len(m.TableData.Headers))
	for i := range row {
		row[i] = defaultCellText
	}
	m.TableData.Rows = appendCopy(m.TableData.Rows, row)
	return m
}

func (m Modal) RemoveTableRow(idx int) Modal {
	m.TableData.Rows = removeAt(m.TableData.Rows, idx)
	return m
}

func (m Modal) SetTableCell(row, col int, v string) Modal {
	m.TableData.Rows = mapAt(m.TableData.Rows, row, func(r []string) []string {
		return mapAt(r, col, func(string) string { return v })
	})
	return m
}

func mapRowsOf(rows [][]string, fn func([]string) []string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = fn(r)
	}
	return out
}

// Rectangular reports whether every row has one cell per header.
func (t SmallTable) Rectangular() bool {
	for _, r := range t.Rows {
		if len(r) != len(t.Headers) {
			return false
		}
	}
	return true
}

// AddLog prepends an entry dated today with the current time.
func (m Modal) AddLog(now time.Time) Modal {
	item := LogItem{Date: now.Format(logDateLayout), Times: []string{now.Format(logTimeLayout)}}
	logs := make([]LogItem, 0, len(m.LogConfig.Logs)+1)
	m.LogConfig.Logs = append(append(logs, item), m.LogConfig.Logs...)
	return m
}

func (m Modal) RemoveLog(idx int) Modal {
	m.LogConfig.Logs = removeAt(m.LogConfig.Logs, idx)
	return m
}

func (m Modal) SetLogDate(idx int, date string) Modal {
	m.LogConfig.Logs = mapAt(m.LogConfig.Logs, idx, func(l LogItem) LogItem {
		l.Date = date
		return l
	})
	return m
}

func (m Modal) AddLogTime(idx int, now time.Time) Modal {
	m.LogConfig.Logs = mapAt(m.LogConfig.Logs, idx, func(l LogItem) LogItem {
		l.Times = appendCopy(l.Times, now.Format(logTimeLayout))
		return l
	})
	return m
}

func (m Modal) RemoveLogTime(idx, timeIdx int) Modal {
	m.LogConfig.Logs = mapAt(m.LogConfig.Logs, idx, func(l LogItem) LogItem {
		l.Times = removeAt(l.Times, timeIdx)
		return l
	})
	return m
}

func (m Modal) SetLogTime(idx, timeIdx int, v string) Modal {
	m.LogConfig.Logs = mapAt(m.LogConfig.Logs, idx, func(l LogItem) LogItem {
		l.Times = mapAt(l.Times, timeIdx, func(string) string { return v })
		return l
	})
	return m
}

func (m Modal) SetDetectionCount(n int) Modal {
	m.LogConfig.DetectionCount = max(0, n)
	return m
}

func (m Modal) Normalize() Modal {
	m.ModalType = Parse(string(m.ModalType), ModalTypes, ModalConfirm)
	m.ConfirmType = Parse(string(m.ConfirmType), ConfirmTypes, ConfirmWarning)
	m.Size = Parse(string(m.Size), ModalSizes, SizeLg)
	m.Header.Type = Parse(string(m.Header.Type), HeaderTypes, HeaderMember)
	m.Pagination = m.Pagination.Normalize()
	m = m.SetHeight(m.HeightPx)
	m = m.SetDetectionCount(m.LogConfig.DetectionCount)
	return m
}
