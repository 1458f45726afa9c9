package scene

// Tab identifies one of the five editable scenes.
type Tab string

const (
	TabTray     Tab = "tray"
	TabLayout   Tab = "layout"
	TabContent  Tab = "content"
	TabApproval Tab = "approval"
	TabModal    Tab = "modal"
)

// Tabs lists the scenes in display order.
var Tabs = []Tab{TabTray, TabLayout, TabContent, TabApproval, TabModal}

// Label returns the Korean tab caption.
func (t Tab) Label() string {
	switch t {
	case TabLayout:
		return "레이아웃"
	case TabContent:
		return "콘텐츠"
	case TabApproval:
		return "승인"
	case TabModal:
		return "모달"
	default:
		return "트레이"
	}
}

type ThemeMode string

const (
	ThemeDark  ThemeMode = "dark"
	ThemeLight ThemeMode = "light"
)

type SidebarMode string

const (
	SidebarFlat   SidebarMode = "flat"
	SidebarFolder SidebarMode = "folder"
	SidebarMixed  SidebarMode = "mixed"
)

type TableMode string

const (
	TableSimple    TableMode = "simple"
	TableCheckable TableMode = "checkable"
)

// CellType is the discriminant for a column and every cell under it.
type CellType string

const (
	CellText   CellType = "text"
	CellSwitch CellType = "switch"
	CellStatus CellType = "status"
	CellBadge  CellType = "badge"
)

type BadgeVariant string

const (
	BadgeBlue   BadgeVariant = "blue"
	BadgeYellow BadgeVariant = "yellow"
	BadgeGreen  BadgeVariant = "green"
	BadgeRed    BadgeVariant = "red"
)

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonIcon      ButtonVariant = "icon"
	ButtonSm        ButtonVariant = "sm"
	ButtonXs        ButtonVariant = "xs"
	ButtonRefresh   ButtonVariant = "refresh"
	ButtonDelete    ButtonVariant = "delete"
	ButtonAction    ButtonVariant = "action"
	ButtonAdd       ButtonVariant = "add"
	ButtonTableIcon ButtonVariant = "tableIcon"
)

type FieldType string

const (
	FieldDropdown FieldType = "dropdown"
	FieldInput    FieldType = "input"
)

type FieldWidth string

const (
	WidthFull FieldWidth = "full"
	WidthHalf FieldWidth = "half"
)

type UploaderType string

const (
	UploaderNone     UploaderType = "none"
	UploaderDocument UploaderType = "document"
	UploaderProgram  UploaderType = "program"
)

type ModalType string

const (
	ModalConfirm ModalType = "confirm"
	ModalGeneral ModalType = "general"
	ModalLog     ModalType = "log"
)

type ConfirmType string

const (
	ConfirmInfo    ConfirmType = "info"
	ConfirmWarning ConfirmType = "warning"
	ConfirmError   ConfirmType = "error"
	ConfirmSuccess ConfirmType = "success"
	ConfirmYesNo   ConfirmType = "yesNo"
)

type HeaderType string

const (
	HeaderMember     HeaderType = "member"
	HeaderAsset      HeaderType = "asset"
	HeaderDepartment HeaderType = "department"
)

type ModalSize string

const (
	SizeSm  ModalSize = "sm"
	SizeMd  ModalSize = "md"
	SizeLg  ModalSize = "lg"
	SizeXl  ModalSize = "xl"
	Size2xl ModalSize = "2xl"
)

var (
	TrayTypes      = []TrayType{TrayInfo, TraySuccess, TrayWarning, TrayError}
	ThemeModes     = []ThemeMode{ThemeDark, ThemeLight}
	SidebarModes   = []SidebarMode{SidebarFlat, SidebarFolder, SidebarMixed}
	TableModes     = []TableMode{TableSimple, TableCheckable}
	CellTypes      = []CellType{CellText, CellSwitch, CellStatus, CellBadge}
	BadgeVariants  = []BadgeVariant{BadgeBlue, BadgeYellow, BadgeGreen, BadgeRed}
	ButtonVariants = []ButtonVariant{ButtonPrimary, ButtonSecondary, ButtonIcon, ButtonSm, ButtonXs, ButtonRefresh, ButtonDelete, ButtonAction, ButtonAdd, ButtonTableIcon}
	FieldTypes     = []FieldType{FieldDropdown, FieldInput}
	FieldWidths    = []FieldWidth{WidthFull, WidthHalf}
	UploaderTypes  = []UploaderType{UploaderNone, UploaderDocument, UploaderProgram}
	ModalTypes     = []ModalType{ModalConfirm, ModalGeneral, ModalLog}
	ConfirmTypes   = []ConfirmType{ConfirmInfo, ConfirmWarning, ConfirmError, ConfirmSuccess, ConfirmYesNo}
	HeaderTypes    = []HeaderType{HeaderMember, HeaderAsset, HeaderDepartment}
	ModalSizes     = []ModalSize{SizeSm, SizeMd, SizeLg, SizeXl, Size2xl}
)

// Parse returns v as a member of all, or def when v is not one of them.
func Parse[T ~string](v string, all []T, def T) T {
	for _, candidate := range all {
		if string(candidate) == v {
			return candidate
		}
	}
	return def
}

// Valid reports whether v is a member of all.
func Valid[T ~string](v T, all []T) bool {
	for _, candidate := range all {
		if candidate == v {
			return true
		}
	}
	return false
}

// Names converts an enum list to plain strings for choice controls.
func Names[T ~string](all []T) []string {
	out := make([]string, len(all))
	for i, v := range all {
		out[i] = string(v)
	}
	return out
}
