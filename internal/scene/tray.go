package scene

import (
	"time"
)

// Brand prefixes the default tray header and the default app title.
const Brand = "D-BUGGER"

// TimestampLayout renders the tray clock as YYYY.MM.DD HH:MM.
const TimestampLayout = "2006.01.02 15:04"

// TrayCloseDelay is how long the tray stays in its closing state.
const TrayCloseDelay = 240 * time.Millisecond

type TrayType string

const (
	TrayInfo    TrayType = "info"
	TraySuccess TrayType = "success"
	TrayWarning TrayType = "warning"
	TrayError   TrayType = "error"
)

// TrayMeta is the accent color and status caption of a tray type.
type TrayMeta struct {
	Accent string
	Status string
}

var trayMeta = map[TrayType]TrayMeta{
	TrayInfo:    {Accent: "#3b82f6", Status: "정보 안내"},
	TraySuccess: {Accent: "#22c55e", Status: "완료 안내"},
	TrayWarning: {Accent: "#f59e0b", Status: "보안 주의"},
	TrayError:   {Accent: "#ef4444", Status: "보안 위험"},
}

// Meta returns the metadata for t; unknown types use info.
func (t TrayType) Meta() TrayMeta {
	if m, ok := trayMeta[t]; ok {
		return m
	}
	return trayMeta[TrayInfo]
}

// DefaultHeader is the template header for a tray type.
func DefaultHeader(t TrayType) string {
	return Brand + " · " + t.Meta().Status
}

// TrayNotice is the tray notification slice.
type TrayNotice struct {
	Type       TrayType `json:"type"`
	HeaderText string   `json:"headerText"`
	// HeaderIsDefault is true while HeaderText is still the template for Type.
	HeaderIsDefault bool   `json:"headerIsDefault"`
	Title           string `json:"title"`
	Message         string `json:"message"`
	ButtonText      string `json:"buttonText"`
	Timestamp       string `json:"currentTimestamp"`
}

func DefaultTray(now time.Time) TrayNotice {
	return TrayNotice{
		Type:            TrayInfo,
		HeaderText:      DefaultHeader(TrayInfo),
		HeaderIsDefault: true,
		Title:           "알림 제목입니다",
		Message:         "여기에 알림 메시지 내용이 표시됩니다.\n여러 줄로 표시할 수 있습니다.",
		ButtonText:      "확인하기",
		Timestamp:       now.Format(TimestampLayout),
	}
}

// SetType switches the notice type. The timestamp is regenerated and the
// header follows the new type only while it is still the template default.
func (t TrayNotice) SetType(tt TrayType, now time.Time) TrayNotice {
	t.Type = Parse(string(tt), TrayTypes, TrayInfo)
	if t.HeaderIsDefault {
		t.HeaderText = DefaultHeader(t.Type)
	}
	t.Timestamp = now.Format(TimestampLayout)
	return t
}

// SetHeaderText stores a user-entered header and detaches it from the template.
func (t TrayNotice) SetHeaderText(s string) TrayNotice {
	t.HeaderText = s
	t.HeaderIsDefault = false
	return t
}

// Touch regenerates the timestamp.
func (t TrayNotice) Touch(now time.Time) TrayNotice {
	t.Timestamp = now.Format(TimestampLayout)
	return t
}

// TrayCloser models the close affordance: Close enters the closing state and
// Settle, fired once per Close after TrayCloseDelay, returns to visible.
// Overlapping closes are harmless because Settle only clears the flag.
type TrayCloser struct {
	closing bool
}

func (c *TrayCloser) Close() time.Duration {
	c.closing = true
	return TrayCloseDelay
}

func (c *TrayCloser) Settle() {
	c.closing = false
}

func (c TrayCloser) Closing() bool { return c.closing }
