package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Cell is a table cell value tagged by the CellType of its column.
// Text carries the value for text and status cells and the caption for
// badge cells; On carries switch cells; Variant colors badge cells.
type Cell struct {
	Type    CellType
	Text    string
	On      bool
	Variant BadgeVariant
}

func TextCell(s string) Cell   { return Cell{Type: CellText, Text: s} }
func SwitchCell(on bool) Cell  { return Cell{Type: CellSwitch, On: on} }
func StatusCell(s string) Cell { return Cell{Type: CellStatus, Text: s} }

func BadgeCell(text string, v BadgeVariant) Cell {
	return Cell{Type: CellBadge, Text: text, Variant: v}
}

type badgeJSON struct {
	Text    string       `json:"text"`
	Variant BadgeVariant `json:"variant"`
}

// MarshalJSON writes text and status cells as strings, switch cells as
// booleans and badge cells as {text, variant} objects.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Type {
	case CellSwitch:
		return json.Marshal(c.On)
	case CellBadge:
		return json.Marshal(badgeJSON{Text: c.Text, Variant: c.Variant})
	case CellText, CellStatus:
		return json.Marshal(c.Text)
	default:
		return nil, fmt.Errorf("cell: unknown type %q", c.Type)
	}
}

// UnmarshalJSON infers a provisional type from the JSON shape. Strings
// decode as text; the owning column later retags them as status if needed.
func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("cell: empty value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = TextCell(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*c = SwitchCell(b)
	case '{':
		var b badgeJSON
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*c = BadgeCell(b.Text, Parse(string(b.Variant), BadgeVariants, BadgeBlue))
	default:
		return fmt.Errorf("cell: unsupported value %s", data)
	}
	return nil
}

// String renders the cell for plain-text contexts.
func (c Cell) String() string {
	switch c.Type {
	case CellSwitch:
		if c.On {
			return "ON"
		}
		return "OFF"
	case CellBadge, CellStatus, CellText:
		return c.Text
	default:
		return strconv.Quote(c.Text)
	}
}
