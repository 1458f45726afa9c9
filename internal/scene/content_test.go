package scene

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func rowKeys(r Row) []string {
	keys := make([]string, 0, len(r.Cells))
	for k := range r.Cells {
		keys = append(keys, k)
	}
	return keys
}

func TestContentRemoveColumnDropsRowKeys(t *testing.T) {
	t.Parallel()
	c := DefaultContent()
	require.Len(t, c.Columns, 3)
	require.Len(t, c.Rows, 3)

	c = c.RemoveColumn(c.Columns[1].ID)
	want := []string{c.Columns[0].ID, c.Columns[1].ID}
	for _, r := range c.Rows {
		require.ElementsMatch(t, want, rowKeys(r))
	}
	require.True(t, c.Consistent())
}

func TestContentRowKeysFollowColumnsAcrossEdits(t *testing.T) {
	t.Parallel()
	c := DefaultContent()
	c = c.AddColumn().AddRow()
	c = c.SetColumnType(c.Columns[3].ID, CellBadge)
	c = c.RemoveColumn(c.Columns[0].ID).AddColumn().AddRow()
	c = c.RemoveRow(c.Rows[0].ID)
	require.True(t, c.Consistent())
	require.True(t, c.ValidTable())
}

func TestContentSetColumnTypeCoerces(t *testing.T) {
	t.Parallel()
	c := DefaultContent()
	id := c.Columns[0].ID

	status := c.SetColumnType(id, CellStatus)
	for _, r := range status.Rows {
		require.Equal(t, StatusCell("허용"), r.Cells[id])
	}

	sw := c.SetColumnType(id, CellSwitch)
	for _, r := range sw.Rows {
		require.Equal(t, SwitchCell(false), r.Cells[id])
	}

	badge := c.SetColumnType(id, CellBadge)
	for _, r := range badge.Rows {
		require.Equal(t, BadgeCell("뱃지", BadgeBlue), r.Cells[id])
	}

	text := sw.SetColumnType(id, CellText)
	for _, r := range text.Rows {
		require.Equal(t, TextCell("데이터"), r.Cells[id])
	}

	require.Equal(t, badge.Rows, badge.SetColumnType(id, CellBadge).Rows)
	require.Equal(t, "항목1", c.Rows[0].Cells[id].Text)
}

func TestContentToggleStatusUsesConfiguredCaptions(t *testing.T) {
	t.Parallel()
	c := DefaultContent()
	col := c.Columns[2].ID
	c = c.SetStatusOptions(col, "사용", "미사용")
	require.Equal(t, "사용", c.Rows[0].Cells[col].Text)
	require.Equal(t, "미사용", c.Rows[1].Cells[col].Text)

	c = c.ToggleStatus(c.Rows[0].ID, col)
	require.Equal(t, StatusCell("미사용"), c.Rows[0].Cells[col])
	c = c.ToggleStatus(c.Rows[0].ID, col)
	require.Equal(t, StatusCell("사용"), c.Rows[0].Cells[col])
}

func TestContentToggleSwitchIgnoresOtherColumns(t *testing.T) {
	t.Parallel()
	c := DefaultContent()
	row := c.Rows[0].ID
	c = c.ToggleSwitch(row, c.Columns[1].ID)
	require.False(t, c.Rows[0].Cells[c.Columns[1].ID].On)
	before := c.Rows[0].Cells[c.Columns[0].ID]
	c = c.ToggleSwitch(row, c.Columns[0].ID)
	require.Equal(t, before, c.Rows[0].Cells[c.Columns[0].ID])
}

func TestContentColumnWidthClamp(t *testing.T) {
	t.Parallel()
	c := DefaultContent()
	id := c.Columns[0].ID
	for _, tc := range []struct {
		in, want int
	}{{0, 5}, {5, 5}, {40, 40}, {150, 100}} {
		in := tc.in
		got := c.SetColumnWidth(id, &in)
		require.Equal(t, tc.want, *got.Columns[0].Width)
	}
	require.Nil(t, c.SetColumnWidth(id, nil).Columns[0].Width)
}

func TestContentUpdatesDoNotTouchPreviousValue(t *testing.T) {
	t.Parallel()
	before := DefaultContent()
	name := before.Rows[0].Cells[before.Columns[0].ID]
	after := before.SetCellText(before.Rows[0].ID, before.Columns[0].ID, "변경")
	require.Equal(t, name, before.Rows[0].Cells[before.Columns[0].ID])
	require.Equal(t, "변경", after.Rows[0].Cells[before.Columns[0].ID].Text)

	_ = before.RemoveColumn(before.Columns[0].ID)
	require.Len(t, before.Rows[0].Cells, 3)
}

func TestContentRemoveSearchOptionResetsSelection(t *testing.T) {
	t.Parallel()
	c := DefaultContent()
	c.SearchFilter.SearchType = "name"
	c = c.RemoveSearchOption(1)
	require.Equal(t, "all", c.SearchFilter.SearchType)
	require.Len(t, c.SearchFilter.SearchOptions, 2)
}

func TestCellJSONShapes(t *testing.T) {
	t.Parallel()
	row := map[string]Cell{
		"a": TextCell("x"),
		"b": SwitchCell(true),
		"c": BadgeCell("new", BadgeRed),
	}
	data, err := json.Marshal(row)
	require.NoError(t, err)
	require.JSONEq(t, `{"a":"x","b":true,"c":{"text":"new","variant":"red"}}`, string(data))

	var back map[string]Cell
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, row, back)

	var bad Cell
	require.Error(t, json.Unmarshal([]byte(`12`), &bad))
}

func TestContentNormalizeRetagsStatusStrings(t *testing.T) {
	t.Parallel()
	c := DefaultContent()
	data, err := json.Marshal(c)
	require.NoError(t, err)

	var back Content
	require.NoError(t, json.Unmarshal(data, &back))
	require.False(t, back.Consistent())
	back = back.Normalize()
	require.True(t, back.Consistent())
	require.Equal(t, c.Rows, back.Rows)
}

func TestContentAddSearchOptionSkipsTakenValues(t *testing.T) {
	t.Parallel()
	c := DefaultContent().AddSearchOption().AddSearchOption()
	c = c.RemoveSearchOption(len(c.SearchFilter.SearchOptions) - 2)
	c = c.AddSearchOption()
	seen := map[string]bool{}
	for _, o := range c.SearchFilter.SearchOptions {
		require.False(t, seen[o.Value], "duplicate option value %q", o.Value)
		seen[o.Value] = true
	}
	require.Equal(t, "opt6", c.SearchFilter.SearchOptions[len(c.SearchFilter.SearchOptions)-1].Value)
}

func TestContentWithoutColumnsIsValidTable(t *testing.T) {
	t.Parallel()
	c := DefaultContent()
	for _, col := range DefaultContent().Columns {
		c = c.RemoveColumn(col.ID)
	}
	require.Empty(t, c.Columns)
	require.Len(t, c.Rows, 3)
	require.True(t, c.ValidTable())

	c.Rows[0].Cells = map[string]Cell{"ghost": TextCell("x")}
	require.False(t, c.ValidTable())
}
