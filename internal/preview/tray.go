package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/designplay/internal/scene"
	"github.com/jask/designplay/widgets"
)

// TrayHint is shown on the mock taskbar under the notification.
const TrayHint = "ESC로 닫기"

var trayIcons = map[scene.TrayType]string{
	scene.TrayInfo:    "ℹ",
	scene.TraySuccess: "✓",
	scene.TrayWarning: "⚠",
	scene.TrayError:   "✖",
}

// Tray builds the notification card. A closing tray has no card, only the
// taskbar hint.
func Tray(t scene.TrayNotice, closing bool, p widgets.Palette) *Node {
	tt := scene.Parse(string(t.Type), scene.TrayTypes, scene.TrayInfo)
	root := &Node{
		Role:    RoleTray,
		Variant: string(tt),
		Color:   tt.Meta().Accent,
		Active:  !closing,
		Canvas:  TrayCanvas,
		Palette: p,
	}
	if closing {
		return root
	}
	header := node(RoleHeader, t.HeaderText, &Node{Role: RoleIcon, Text: trayIcons[tt]})
	return root.add(
		header,
		node(RoleTitle, t.Title),
		node(RoleMessage, t.Message),
		node(RoleTimestamp, "시간: "+t.Timestamp),
		node(RoleButton, t.ButtonText),
	)
}

func drawTray(root *Node, w, h int) string {
	p := root.Palette
	hint := p.MutedStyle().Render(TrayHint)
	if !root.Active {
		return strings.Repeat("\n", max(0, h-1)) + lipgloss.PlaceHorizontal(w, lipgloss.Right, hint)
	}
	accent := lipgloss.Color(root.Color)
	inner := max(1, w-4)

	header := root.Find(RoleHeader)
	icon := header.Find(RoleIcon).Text
	left := icon + " " + header.Text
	headLine := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(left)
	gap := max(1, inner-lipgloss.Width(headLine)-1)
	headLine += strings.Repeat(" ", gap) + p.MutedStyle().Render("✕")

	lines := []string{
		headLine,
		lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(root.Find(RoleTitle).Text),
	}
	for _, l := range strings.Split(root.Find(RoleMessage).Text, "\n") {
		lines = append(lines, p.TextStyle().Render(l))
	}
	lines = append(lines, p.MutedStyle().Render(root.Find(RoleTimestamp).Text))
	button := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(accent).Padding(0, 1).Render(root.Find(RoleButton).Text)
	lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Right, button))

	card := widgets.Box{Content: strings.Join(lines, "\n"), Border: accent}.Render(w, max(1, h-1))
	return card + "\n" + lipgloss.PlaceHorizontal(w, lipgloss.Right, hint)
}
