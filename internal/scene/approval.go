package scene

// NoticeText is the caption used when the notice field is switched on.
const NoticeText = "※ 중요: 승인 후에는 취소할 수 없습니다."

type DropdownOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// FormField is tagged by Type: dropdown fields own Options, input fields
// own Placeholder and DefaultValue.
type FormField struct {
	ID           string           `json:"id"`
	Type         FieldType        `json:"type"`
	Label        string           `json:"label"`
	Placeholder  string           `json:"placeholder,omitempty"`
	DefaultValue string           `json:"defaultValue,omitempty"`
	Required     bool             `json:"required"`
	Width        FieldWidth       `json:"width"`
	Options      []DropdownOption `json:"options,omitempty"`
}

type FileEntry struct {
	ID       string `json:"id"`
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
}

type CheckboxOption struct {
	Checked bool   `json:"checked"`
	Label   string `json:"label"`
}

type NoticeField struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// Approval is the approval request form slice.
type Approval struct {
	Title          string         `json:"title"`
	Subtitle       string         `json:"subtitle"`
	FormFields     []FormField    `json:"formFields"`
	UploaderType   UploaderType   `json:"uploaderType"`
	DocumentFiles  []FileEntry    `json:"documentFiles"`
	ProgramFiles   []FileEntry    `json:"programFiles"`
	CheckboxOption CheckboxOption `json:"checkboxOption"`
	NoticeField    NoticeField    `json:"noticeField"`
	Pagination     Pagination     `json:"pagination"`
	EmptyState     EmptyState     `json:"emptyState"`
}

func DefaultFormFields() []FormField {
	return []FormField{
		{ID: NewID("field"), Type: FieldDropdown, Label: "승인자", Required: true, Width: WidthFull, Options: []DropdownOption{
			{ID: NewID("opt"), Label: "홍길동 (부서장)"},
			{ID: NewID("opt"), Label: "김철수 (대표)"},
		}},
		{ID: NewID("field"), Type: FieldDropdown, Label: "참조자", Required: true, Width: WidthFull, Options: []DropdownOption{
			{ID: NewID("opt"), Label: "이영희 (팀장)"},
			{ID: NewID("opt"), Label: "박민수 (과장)"},
		}},
		{ID: NewID("field"), Type: FieldInput, Label: "제목", Placeholder: "승인 요청 제목을 입력하세요", DefaultValue: "프로그램 실행 허용 요청", Required: true, Width: WidthFull},
		{ID: NewID("field"), Type: FieldInput, Label: "사유", Placeholder: "승인 요청 사유를 입력하세요", DefaultValue: "업무상 필요한 프로그램이므로 실행 허용을 요청드립니다.", Required: true, Width: WidthFull},
	}
}

func DefaultApproval() Approval {
	return Approval{
		Title:          "승인 요청서",
		Subtitle:       "필요한 정보를 입력하고 승인을 요청해주세요.",
		FormFields:     DefaultFormFields(),
		UploaderType:   UploaderNone,
		DocumentFiles:  []FileEntry{},
		ProgramFiles:   []FileEntry{},
		CheckboxOption: CheckboxOption{Checked: false, Label: "위 내용을 확인했습니다."},
		NoticeField:    NoticeField{Text: "", Color: "#ef4444"},
		Pagination:     DefaultPagination(),
		EmptyState:     DefaultEmptyState(),
	}
}

func newField(t FieldType, w FieldWidth) FormField {
	f := FormField{ID: NewID("field"), Type: t, Required: true, Width: w}
	switch t {
	case FieldDropdown:
		f.Label = "드롭다운 항목"
		f.Options = []DropdownOption{{ID: NewID("opt"), Label: "옵션 1"}}
	case FieldInput:
		f.Label = "입력 항목"
		f.Placeholder = "입력해주세요"
	}
	return f
}

// shape strips the members that do not belong to the field's type.
func (f FormField) shape() FormField {
	switch f.Type {
	case FieldDropdown:
		f.Placeholder, f.DefaultValue = "", ""
		if f.Options == nil {
			f.Options = []DropdownOption{}
		}
	case FieldInput:
		f.Options = nil
	}
	return f
}

func (a Approval) AddField(t FieldType, w FieldWidth) Approval {
	t = Parse(string(t), FieldTypes, FieldInput)
	w = Parse(string(w), FieldWidths, WidthFull)
	a.FormFields = appendCopy(a.FormFields, newField(t, w))
	return a
}

func (a Approval) RemoveField(id string) Approval {
	a.FormFields = removeBy(a.FormFields, func(f FormField) bool { return f.ID == id })
	return a
}

// UpdateField applies fn to one field; the result is reshaped to its type.
func (a Approval) UpdateField(id string, fn func(FormField) FormField) Approval {
	a.FormFields = mapBy(a.FormFields, func(f FormField) bool { return f.ID == id }, func(f FormField) FormField {
		f = fn(f)
		f.Width = Parse(string(f.Width), FieldWidths, WidthFull)
		return f.shape()
	})
	return a
}

// SetFieldType converts a field between dropdown and input.
func (a Approval) SetFieldType(id string, t FieldType) Approval {
	t = Parse(string(t), FieldTypes, FieldInput)
	return a.UpdateField(id, func(f FormField) FormField {
		if f.Type == t {
			return f
		}
		fresh := newField(t, f.Width)
		fresh.ID, fresh.Label, fresh.Required = f.ID, f.Label, f.Required
		return fresh
	})
}

func (a Approval) AddOption(fieldID string) Approval {
	a.FormFields = mapBy(a.FormFields, func(f FormField) bool { return f.ID == fieldID && f.Type == FieldDropdown }, func(f FormField) FormField {
		f.Options = appendCopy(f.Options, DropdownOption{ID: NewID("opt"), Label: NextLabel("옵션 ", len(f.Options))})
		return f
	})
	return a
}

func (a Approval) RemoveOption(fieldID, optionID string) Approval {
	a.FormFields = mapBy(a.FormFields, func(f FormField) bool { return f.ID == fieldID && f.Type == FieldDropdown }, func(f FormField) FormField {
		f.Options = removeBy(f.Options, func(o DropdownOption) bool { return o.ID == optionID })
		return f
	})
	return a
}

func (a Approval) RenameOption(fieldID, optionID, label string) Approval {
	a.FormFields = mapBy(a.FormFields, func(f FormField) bool { return f.ID == fieldID && f.Type == FieldDropdown }, func(f FormField) FormField {
		f.Options = mapBy(f.Options, func(o DropdownOption) bool { return o.ID == optionID }, func(o DropdownOption) DropdownOption {
			o.Label = label
			return o
		})
		return f
	})
	return a
}

func (a Approval) AddDocument() Approval {
	a.DocumentFiles = appendCopy(a.DocumentFiles, FileEntry{
		ID:       NewID("doc"),
		FileName: NextLabel("문서", len(a.DocumentFiles)) + ".pdf",
		FilePath: "/path/to/document.pdf",
	})
	return a
}

func (a Approval) RemoveDocument(id string) Approval {
	a.DocumentFiles = removeBy(a.DocumentFiles, func(f FileEntry) bool { return f.ID == id })
	return a
}

func (a Approval) AddProgram() Approval {
	a.ProgramFiles = appendCopy(a.ProgramFiles, FileEntry{
		ID:       NewID("prog"),
		FileName: NextLabel("프로그램", len(a.ProgramFiles)) + ".exe",
		FilePath: "/path/to/program.exe",
	})
	return a
}

func (a Approval) RemoveProgram(id string) Approval {
	a.ProgramFiles = removeBy(a.ProgramFiles, func(f FileEntry) bool { return f.ID == id })
	return a
}

// SetNotice switches the notice field on with the standard caption or clears it.
func (a Approval) SetNotice(on bool) Approval {
	a.NoticeField.Text = ""
	if on {
		a.NoticeField.Text = NoticeText
	}
	return a
}

// ValidFields reports whether field ids are unique and types known.
func (a Approval) ValidFields() bool {
	ids := make([]string, len(a.FormFields))
	for i, f := range a.FormFields {
		if !Valid(f.Type, FieldTypes) {
			return false
		}
		ids[i] = f.ID
	}
	return uniqueIDs(ids)
}

func ValidFiles(files []FileEntry) bool {
	ids := make([]string, len(files))
	for i, f := range files {
		ids[i] = f.ID
	}
	return uniqueIDs(ids)
}

func (a Approval) Normalize() Approval {
	a.UploaderType = Parse(string(a.UploaderType), UploaderTypes, UploaderNone)
	a.Pagination = a.Pagination.Normalize()
	fields := make([]FormField, len(a.FormFields))
	for i, f := range a.FormFields {
		f.Width = Parse(string(f.Width), FieldWidths, WidthFull)
		fields[i] = f.shape()
	}
	a.FormFields = fields
	if a.DocumentFiles == nil {
		a.DocumentFiles = []FileEntry{}
	}
	if a.ProgramFiles == nil {
		a.ProgramFiles = []FileEntry{}
	}
	return a
}
