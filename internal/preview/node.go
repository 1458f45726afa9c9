// Package preview turns scene slices into visual trees and draws them on a
// terminal canvas.
package preview

import (
	"math"

	"github.com/jask/designplay/widgets"
)

// DefaultScale is the zoom every preview is drawn at.
const DefaultScale = 0.75

const (
	pxPerCol = 8
	pxPerRow = 16
)

// Canvas is a logical drawing area in pixels.
type Canvas struct {
	Width  int
	Height int
}

var (
	TrayCanvas     = Canvas{Width: 380, Height: 200}
	LayoutCanvas   = Canvas{Width: 1200, Height: 800}
	ContentCanvas  = Canvas{Width: 900, Height: 650}
	ApprovalCanvas = Canvas{Width: 500, Height: 700}
	ModalCanvas    = Canvas{Width: 900, Height: 600}
	LogCanvas      = Canvas{Width: 500, Height: 600}
)

// Cells maps the canvas to terminal columns and rows at the given scale.
// A non-positive scale falls back to DefaultScale.
func (c Canvas) Cells(scale float64) (cols, rows int) {
	if scale <= 0 {
		scale = DefaultScale
	}
	return pxToCols(c.Width, scale), max(1, int(math.Round(float64(c.Height)*scale/pxPerRow)))
}

func pxToCols(px int, scale float64) int {
	return max(1, int(math.Round(float64(px)*scale/pxPerCol)))
}

func pxToRows(px int, scale float64) int {
	return max(1, int(math.Round(float64(px)*scale/pxPerRow)))
}

// Role names what a node stands for in the preview.
type Role string

const (
	RoleTray       Role = "tray"
	RoleLayout     Role = "layout"
	RoleContent    Role = "content"
	RoleApproval   Role = "approval"
	RoleModal      Role = "modal"
	RoleLogModal   Role = "logModal"
	RoleHeader     Role = "header"
	RoleTitle      Role = "title"
	RoleSubtitle   Role = "subtitle"
	RoleMessage    Role = "message"
	RoleTimestamp  Role = "timestamp"
	RoleButton     Role = "button"
	RoleTopBar     Role = "topBar"
	RoleNavItem    Role = "navItem"
	RoleSidebar    Role = "sidebar"
	RoleSideItem   Role = "sideItem"
	RoleMain       Role = "main"
	RoleFooter     Role = "footer"
	RoleBreadcrumb Role = "breadcrumb"
	RoleMenuItem   Role = "menuItem"
	RoleSearch     Role = "search"
	RoleTable      Role = "table"
	RoleColumn     Role = "column"
	RoleRow        Role = "row"
	RoleCell       Role = "cell"
	RolePagination Role = "pagination"
	RoleEmpty      Role = "empty"
	RoleOverlay    Role = "overlay"
	RoleField      Role = "field"
	RoleOption     Role = "option"
	RoleUploader   Role = "uploader"
	RoleFile       Role = "file"
	RoleCheckbox   Role = "checkbox"
	RoleNotice     Role = "notice"
	RoleIcon       Role = "icon"
	RoleBadge      Role = "badge"
	RoleLog        Role = "log"
	RoleLogTime    Role = "logTime"
)

// Node is one element of a preview tree. Variant carries the branch the
// element was drawn with (tray type, cell type, button variant and so on);
// Size is a column width in percent; Current and Total are page or
// counter values.
type Node struct {
	Role     Role
	Text     string
	Variant  string
	Active   bool
	Depth    int
	Size     int
	Current  int
	Total    int
	Color    string
	Children []*Node

	// Set on root nodes only.
	Canvas  Canvas
	Palette widgets.Palette
}

func node(role Role, text string, children ...*Node) *Node {
	return &Node{Role: role, Text: text, Children: children}
}

func (n *Node) add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Find returns the first node with the given role in depth-first order.
func (n *Node) Find(role Role) *Node {
	if n == nil {
		return nil
	}
	if n.Role == role {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(role); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node with the given role in depth-first order.
func (n *Node) FindAll(role Role) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	if n.Role == role {
		out = append(out, n)
	}
	for _, c := range n.Children {
		out = append(out, c.FindAll(role)...)
	}
	return out
}

// Texts lists the Text of every child with the given role.
func (n *Node) Texts(role Role) []string {
	var out []string
	for _, c := range n.FindAll(role) {
		out = append(out, c.Text)
	}
	return out
}

// Render draws a root node on its canvas at the given scale. The result
// always has exactly the canvas' rows, each padded to its columns.
func Render(root *Node, scale float64) string {
	if root == nil {
		return ""
	}
	if scale <= 0 {
		scale = DefaultScale
	}
	w, h := root.Canvas.Cells(scale)
	var out string
	switch root.Role {
	case RoleTray:
		out = drawTray(root, w, h)
	case RoleLayout:
		out = drawLayout(root, w, h)
	case RoleContent:
		out = drawContent(root, w, h)
	case RoleApproval:
		out = drawApproval(root, w, h)
	case RoleModal:
		out = drawModal(root, scale, w, h)
	case RoleLogModal:
		out = drawLog(root, w, h)
	default:
		out = root.Text
	}
	return widgets.Fit(out, w, h)
}
