package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/jask/designplay/internal/scene"
)

// Snapshot is a decoded persisted state: one raw value per top-level key.
type Snapshot map[string]json.RawMessage

type field struct {
	key      string
	nullable bool
	encode   func(State) any
	decode   func(json.RawMessage, *State) error
}

// bind maps a snapshot key onto one location of the state. A value that
// fails to decode leaves the location untouched.
func bind[T any](key string, at func(*State) *T) field {
	return field{
		key:    key,
		encode: func(s State) any { return *at(&s) },
		decode: func(raw json.RawMessage, s *State) error {
			var v T
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			*at(s) = v
			return nil
		},
	}
}

// nullable marks a key whose JSON null is a real value rather than absence.
func nullable(f field) field {
	f.nullable = true
	return f
}

var fields = []field{
	bind("tab", func(s *State) *scene.Tab { return &s.Tab }),

	bind("trayType", func(s *State) *scene.TrayType { return &s.Tray.Type }),
	bind("trayHeaderText", func(s *State) *string { return &s.Tray.HeaderText }),
	bind("trayHeaderIsDefault", func(s *State) *bool { return &s.Tray.HeaderIsDefault }),
	bind("trayTitle", func(s *State) *string { return &s.Tray.Title }),
	bind("trayMessage", func(s *State) *string { return &s.Tray.Message }),
	bind("trayButtonText", func(s *State) *string { return &s.Tray.ButtonText }),

	bind("themeMode", func(s *State) *scene.ThemeMode { return &s.Layout.ThemeMode }),
	bind("appTitle", func(s *State) *string { return &s.Layout.AppTitle }),
	bind("topNav", func(s *State) *[]scene.NavItem { return &s.Layout.TopNav }),
	nullable(bind("activeTopNavId", func(s *State) **string { return &s.Layout.ActiveTopNavID })),
	bind("sidebarMode", func(s *State) *scene.SidebarMode { return &s.Layout.SidebarMode }),
	bind("sidebarTitle", func(s *State) *string { return &s.Layout.SidebarTitle }),
	bind("sideItems", func(s *State) *[]scene.SideItem { return &s.Layout.SideItems }),
	nullable(bind("activeSideId", func(s *State) **string { return &s.Layout.ActiveSideID })),
	bind("footerUserName", func(s *State) *string { return &s.Layout.FooterUserName }),
	bind("footerNotice", func(s *State) *string { return &s.Layout.FooterNotice }),

	bind("listMenu", func(s *State) *string { return &s.Content.ListMenu }),
	bind("listSubMenu", func(s *State) *string { return &s.Content.ListSubMenu }),
	bind("listTitle", func(s *State) *string { return &s.Content.ListTitle }),
	bind("listSubtitle", func(s *State) *string { return &s.Content.ListSubtitle }),
	bind("menuItems", func(s *State) *[]string { return &s.Content.MenuItems }),
	bind("extraButtons", func(s *State) *[]scene.ExtraButton { return &s.Content.ExtraButtons }),
	bind("showOverlay", func(s *State) *bool { return &s.Content.ShowOverlay }),
	bind("tableMode", func(s *State) *scene.TableMode { return &s.Content.TableMode }),
	bind("searchFilter", func(s *State) *scene.SearchFilter { return &s.Content.SearchFilter }),
	bind("columns", func(s *State) *[]scene.Column { return &s.Content.Columns }),
	bind("rows", func(s *State) *[]scene.Row { return &s.Content.Rows }),
	bind("showContentPagination", func(s *State) *bool { return &s.Content.Pagination.Show }),
	bind("contentCurrentPage", func(s *State) *int { return &s.Content.Pagination.CurrentPage }),
	bind("contentTotalPages", func(s *State) *int { return &s.Content.Pagination.TotalPages }),
	bind("showContentEmptyState", func(s *State) *bool { return &s.Content.EmptyState.Show }),
	bind("contentEmptyStateMessage", func(s *State) *string { return &s.Content.EmptyState.Message }),

	bind("approvalTitle", func(s *State) *string { return &s.Approval.Title }),
	bind("approvalSubtitle", func(s *State) *string { return &s.Approval.Subtitle }),
	bind("formFields", func(s *State) *[]scene.FormField { return &s.Approval.FormFields }),
	bind("uploaderType", func(s *State) *scene.UploaderType { return &s.Approval.UploaderType }),
	bind("documentFiles", func(s *State) *[]scene.FileEntry { return &s.Approval.DocumentFiles }),
	bind("programFiles", func(s *State) *[]scene.FileEntry { return &s.Approval.ProgramFiles }),
	bind("checkboxOption", func(s *State) *scene.CheckboxOption { return &s.Approval.CheckboxOption }),
	bind("noticeField", func(s *State) *scene.NoticeField { return &s.Approval.NoticeField }),
	bind("showPagination", func(s *State) *bool { return &s.Approval.Pagination.Show }),
	bind("currentPage", func(s *State) *int { return &s.Approval.Pagination.CurrentPage }),
	bind("totalPages", func(s *State) *int { return &s.Approval.Pagination.TotalPages }),
	bind("showEmptyState", func(s *State) *bool { return &s.Approval.EmptyState.Show }),
	bind("emptyStateMessage", func(s *State) *string { return &s.Approval.EmptyState.Message }),

	bind("modalType", func(s *State) *scene.ModalType { return &s.Modal.ModalType }),
	bind("confirmType", func(s *State) *scene.ConfirmType { return &s.Modal.ConfirmType }),
	bind("modalTitle", func(s *State) *string { return &s.Modal.Title }),
	bind("modalMessage", func(s *State) *string { return &s.Modal.Message }),
	bind("confirmButtonText", func(s *State) *string { return &s.Modal.ConfirmButtonText }),
	bind("cancelButtonText", func(s *State) *string { return &s.Modal.CancelButtonText }),
	bind("showCancelButton", func(s *State) *bool { return &s.Modal.ShowCancelButton }),
	bind("showModalEmptyState", func(s *State) *bool { return &s.Modal.EmptyState.Show }),
	bind("modalEmptyStateMessage", func(s *State) *string { return &s.Modal.EmptyState.Message }),
	bind("showTable", func(s *State) *bool { return &s.Modal.ShowTable }),
	bind("tableData", func(s *State) *scene.SmallTable { return &s.Modal.TableData }),
	bind("modalHeader", func(s *State) *scene.ModalHeader { return &s.Modal.Header }),
	bind("showModalHeader", func(s *State) *bool { return &s.Modal.ShowHeader }),
	bind("modalSize", func(s *State) *scene.ModalSize { return &s.Modal.Size }),
	bind("modalHeight", func(s *State) *int { return &s.Modal.HeightPx }),
	bind("showModalPagination", func(s *State) *bool { return &s.Modal.Pagination.Show }),
	bind("modalCurrentPage", func(s *State) *int { return &s.Modal.Pagination.CurrentPage }),
	bind("modalTotalPages", func(s *State) *int { return &s.Modal.Pagination.TotalPages }),
	bind("logConfig", func(s *State) *scene.LogConfig { return &s.Modal.LogConfig }),
}

// group is a set of keys restored all-or-nothing: when any key is missing,
// undecodable or the decoded values fail valid, every key takes its default.
type group struct {
	keys  []string
	valid func(State) bool
	reset func(st *State, def State)
}

var groups = []group{
	{
		keys:  []string{"columns", "rows"},
		valid: func(s State) bool { return s.Content.ValidTable() },
		reset: func(st *State, def State) {
			st.Content.Columns, st.Content.Rows = def.Content.Columns, def.Content.Rows
		},
	},
	{
		keys:  []string{"topNav"},
		valid: func(s State) bool { return s.Layout.TopNav != nil && s.Layout.ValidTopNav() },
		reset: func(st *State, def State) { st.Layout.TopNav = def.Layout.TopNav },
	},
	{
		keys:  []string{"sideItems"},
		valid: func(s State) bool { return s.Layout.SideItems != nil && s.Layout.ValidTree() },
		reset: func(st *State, def State) { st.Layout.SideItems = def.Layout.SideItems },
	},
	{
		keys:  []string{"menuItems"},
		valid: func(s State) bool { return s.Content.MenuItems != nil },
		reset: func(st *State, def State) { st.Content.MenuItems = def.Content.MenuItems },
	},
	{
		keys: []string{"extraButtons"},
		valid: func(s State) bool {
			ids := make([]string, len(s.Content.ExtraButtons))
			for i, b := range s.Content.ExtraButtons {
				ids[i] = b.ID
			}
			return s.Content.ExtraButtons != nil && unique(ids)
		},
		reset: func(st *State, def State) { st.Content.ExtraButtons = def.Content.ExtraButtons },
	},
	{
		keys:  []string{"formFields"},
		valid: func(s State) bool { return s.Approval.FormFields != nil && s.Approval.ValidFields() },
		reset: func(st *State, def State) { st.Approval.FormFields = def.Approval.FormFields },
	},
	{
		keys:  []string{"documentFiles"},
		valid: func(s State) bool { return scene.ValidFiles(s.Approval.DocumentFiles) },
		reset: func(st *State, def State) { st.Approval.DocumentFiles = def.Approval.DocumentFiles },
	},
	{
		keys:  []string{"programFiles"},
		valid: func(s State) bool { return scene.ValidFiles(s.Approval.ProgramFiles) },
		reset: func(st *State, def State) { st.Approval.ProgramFiles = def.Approval.ProgramFiles },
	},
	{
		keys:  []string{"tableData"},
		valid: func(s State) bool { return s.Modal.TableData.Headers != nil && s.Modal.TableData.Rectangular() },
		reset: func(st *State, def State) { st.Modal.TableData = def.Modal.TableData },
	},
	{
		keys: []string{"logConfig"},
		valid: func(s State) bool {
			for _, l := range s.Modal.LogConfig.Logs {
				if l.Times == nil {
					return false
				}
			}
			return true
		},
		reset: func(st *State, def State) { st.Modal.LogConfig = def.Modal.LogConfig },
	},
}

func unique(vs []string) bool {
	seen := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		if _, dup := seen[v]; dup || v == "" {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// Keys lists every top-level snapshot key in encoding order.
func Keys() []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.key
	}
	return out
}

// Encode serializes the full state as one flat JSON object.
func Encode(st State) ([]byte, error) {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		out[f.key] = f.encode(st)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a persisted snapshot. Only the outer object must be valid;
// individual values are checked by Restore.
func Decode(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap == nil {
		return nil, fmt.Errorf("decode snapshot: not an object")
	}
	return snap, nil
}

var null = []byte("null")

// Restore builds a state from snap. Every key that is missing, null or
// undecodable keeps its default independently, except the list groups
// which fall back as a whole. It returns the keys that fell back.
func Restore(snap Snapshot, now time.Time) (State, []string) {
	def := Defaults(now)
	if snap == nil {
		return def, Keys()
	}
	st := def
	ok := make(map[string]bool, len(fields))
	var fellBack []string
	for _, f := range fields {
		raw, present := snap[f.key]
		if !present {
			continue
		}
		if bytes.Equal(bytes.TrimSpace(raw), null) {
			ok[f.key] = f.nullable
			continue
		}
		if err := f.decode(raw, &st); err == nil {
			ok[f.key] = true
		}
	}
	for _, g := range groups {
		complete := true
		for _, k := range g.keys {
			complete = complete && ok[k]
		}
		if !complete || !g.valid(st) {
			g.reset(&st, def)
			for _, k := range g.keys {
				ok[k] = false
			}
		}
	}
	for _, f := range fields {
		if !ok[f.key] {
			fellBack = append(fellBack, f.key)
		}
	}

	st.Tab = parseTab(st.Tab)
	st.Tray.Type = scene.Parse(string(st.Tray.Type), scene.TrayTypes, scene.TrayInfo)
	if !ok["trayHeaderIsDefault"] {
		st.Tray.HeaderIsDefault = isTemplateHeader(st.Tray.HeaderText)
	}
	st.Tray.Timestamp = now.Format(scene.TimestampLayout)
	st.Layout = st.Layout.Normalize()
	st.Content = st.Content.Normalize()
	st.Approval = st.Approval.Normalize()
	st.Modal = st.Modal.Normalize()
	slices.Sort(fellBack)
	return st, fellBack
}

// isTemplateHeader recognizes headers written before the default flag existed.
func isTemplateHeader(h string) bool {
	for _, t := range scene.TrayTypes {
		if h == scene.DefaultHeader(t) {
			return true
		}
	}
	return false
}
