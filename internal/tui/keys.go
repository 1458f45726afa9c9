package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopeBrowse = "browse"
	scopeEdit   = "edit"
)

const (
	actionQuit     = "quit"
	actionNextTab  = "next-tab"
	actionPrevTab  = "prev-tab"
	actionUp       = "up"
	actionDown     = "down"
	actionPrev     = "prev"
	actionNext     = "next"
	actionActivate = "activate"
	actionEscape   = "escape"
	actionCommit   = "commit"
	actionCancel   = "cancel"
	actionTab      = "switch-tab-"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"q"}, Action: actionQuit, Description: "quit", Scopes: []string{scopeBrowse}},
		{Keys: []string{"1"}, Action: actionTab + "1", Description: "tray", Scopes: []string{scopeBrowse}},
		{Keys: []string{"2"}, Action: actionTab + "2", Description: "layout", Scopes: []string{scopeBrowse}},
		{Keys: []string{"3"}, Action: actionTab + "3", Description: "content", Scopes: []string{scopeBrowse}},
		{Keys: []string{"4"}, Action: actionTab + "4", Description: "approval", Scopes: []string{scopeBrowse}},
		{Keys: []string{"5"}, Action: actionTab + "5", Description: "modal", Scopes: []string{scopeBrowse}},
		{Keys: []string{"tab"}, Action: actionNextTab, Description: "next tab", Scopes: []string{scopeBrowse}},
		{Keys: []string{"shift+tab"}, Action: actionPrevTab, Description: "prev tab", Scopes: []string{scopeBrowse}},
		{Keys: []string{"k", "up"}, Action: actionUp, Description: "up", Scopes: []string{scopeBrowse}},
		{Keys: []string{"j", "down"}, Action: actionDown, Description: "down", Scopes: []string{scopeBrowse}},
		{Keys: []string{"h", "left"}, Action: actionPrev, Description: "prev value", Scopes: []string{scopeBrowse}},
		{Keys: []string{"l", "right"}, Action: actionNext, Description: "next value", Scopes: []string{scopeBrowse}},
		{Keys: []string{"enter", " "}, Action: actionActivate, Description: "edit", Scopes: []string{scopeBrowse}},
		{Keys: []string{"esc"}, Action: actionEscape, Description: "close tray", Scopes: []string{scopeBrowse}},
		{Keys: []string{"enter"}, Action: actionCommit, Description: "apply", Scopes: []string{scopeEdit}},
		{Keys: []string{"esc"}, Action: actionCancel, Description: "cancel", Scopes: []string{scopeEdit}},
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	seen := map[string]bool{}
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) || seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		out = append(out, b)
	}
	return out
}

// Action returns the action bound to msg in scope, or "".
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

// Help renders the bindings of scope as key/description pairs.
func (r *KeyRegistry) Help(scope string) []key.Help {
	var out []key.Help
	for _, b := range r.BindingsForScope(scope) {
		if len(b.Keys) == 0 || strings.HasPrefix(b.Action, actionTab) {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(strings.Join(b.Keys, "/"), b.Description))
		out = append(out, kb.Help())
	}
	return out
}

func normalizeKey(k string) string {
	if k == " " {
		return k
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
