package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jask/designplay/internal/scene"
)

func roundTrip(t *testing.T, st State) (State, []string) {
	t.Helper()
	data, err := Encode(st)
	require.NoError(t, err)
	snap, err := Decode(data)
	require.NoError(t, err)
	return Restore(snap, fixedNow)
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()
	st := Defaults(fixedNow)
	st.Tab = scene.TabApproval
	st.Tray = st.Tray.SetType(scene.TrayWarning, fixedNow).SetHeaderText("사용자 헤더")
	st.Layout = st.Layout.SetActiveSide(st.Layout.SideItems[0].Children[1].ID)
	st.Layout.ThemeMode = scene.ThemeDark
	st.Content = st.Content.AddColumn().SetColumnType(st.Content.Columns[0].ID, scene.CellBadge)
	w := 30
	st.Content = st.Content.SetColumnWidth(st.Content.Columns[1].ID, &w)
	st.Approval = st.Approval.AddDocument().SetNotice(true)
	st.Modal = st.Modal.AddHeader().SetHeight(650)
	st.Modal.Size = scene.Size2xl

	got, fellBack := roundTrip(t, st)
	require.Empty(t, fellBack)
	if diff := cmp.Diff(st, got); diff != "" {
		t.Fatalf("restored state mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotUsesFlatKeys(t *testing.T) {
	t.Parallel()
	data, err := Encode(Defaults(fixedNow))
	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, len(Keys()))
	require.JSONEq(t, `"info"`, string(raw["trayType"]))
	require.JSONEq(t, `400`, string(raw["modalHeight"]))
	require.JSONEq(t, `null`, string(raw["activeTopNavId"]))
}

func TestRestoreNilSnapshotIsDefaults(t *testing.T) {
	t.Parallel()
	st, fellBack := Restore(nil, fixedNow)
	require.Equal(t, Keys(), fellBack)
	require.Equal(t, scene.TabTray, st.Tab)
	require.Len(t, st.Content.Columns, 3)
}

func TestRestorePartialSnapshotFallsBackPerField(t *testing.T) {
	t.Parallel()
	snap := Snapshot{
		"tab":         json.RawMessage(`"modal"`),
		"modalTitle":  json.RawMessage(`"보존된 제목"`),
		"modalHeight": json.RawMessage(`"tall"`),
		"trayTitle":   json.RawMessage(`null`),
	}
	st, fellBack := Restore(snap, fixedNow)
	require.Equal(t, scene.TabModal, st.Tab)
	require.Equal(t, "보존된 제목", st.Modal.Title)
	require.Equal(t, 400, st.Modal.HeightPx)
	require.Equal(t, "알림 제목입니다", st.Tray.Title)
	require.Contains(t, fellBack, "modalHeight")
	require.Contains(t, fellBack, "trayTitle")
	require.NotContains(t, fellBack, "modalTitle")
}

func TestRestoreColumnsWithoutRowsFallsBackAsPair(t *testing.T) {
	t.Parallel()
	st := Defaults(fixedNow)
	st.Content = st.Content.AddColumn()
	data, err := Encode(st)
	require.NoError(t, err)
	snap, err := Decode(data)
	require.NoError(t, err)
	delete(snap, "rows")

	got, fellBack := Restore(snap, fixedNow)
	require.Contains(t, fellBack, "columns")
	require.Contains(t, fellBack, "rows")
	require.Len(t, got.Content.Columns, 3)
	require.Len(t, got.Content.Rows, 3)
	require.True(t, got.Content.Consistent())
}

func TestRestoreRowsKeyedByUnknownColumnFallsBack(t *testing.T) {
	t.Parallel()
	snap := Snapshot{
		"columns": json.RawMessage(`[{"id":"c1","header":"A","cellType":"text"}]`),
		"rows":    json.RawMessage(`[{"id":"r1","cells":{"c9":"x"}}]`),
	}
	st, _ := Restore(snap, fixedNow)
	require.Equal(t, "이름", st.Content.Columns[0].Header)
	require.True(t, st.Content.Consistent())
}

func TestRestoreRetagsStatusCells(t *testing.T) {
	t.Parallel()
	snap := Snapshot{
		"columns": json.RawMessage(`[{"id":"c1","header":"권한","cellType":"status"},{"id":"c2","header":"켬","cellType":"switch"}]`),
		"rows":    json.RawMessage(`[{"id":"r1","cells":{"c1":"차단","c2":"yes"}}]`),
	}
	st, fellBack := Restore(snap, fixedNow)
	require.NotContains(t, fellBack, "rows")
	require.Equal(t, scene.StatusCell("차단"), st.Content.Rows[0].Cells["c1"])
	require.Equal(t, scene.SwitchCell(false), st.Content.Rows[0].Cells["c2"])
}

func TestRestoreInvalidListGroups(t *testing.T) {
	t.Parallel()
	snap := Snapshot{
		"sideItems":  json.RawMessage(`[{"id":"a","label":"x","children":[{"id":"a","label":"dup"}]}]`),
		"topNav":     json.RawMessage(`{"not":"a list"}`),
		"formFields": json.RawMessage(`[{"id":"f","type":"slider","label":"?"}]`),
		"tableData":  json.RawMessage(`{"headers":["a","b"],"rows":[["1"]]}`),
		"menuItems":  json.RawMessage(`["필터"]`),
	}
	st, fellBack := Restore(snap, fixedNow)
	for _, k := range []string{"sideItems", "topNav", "formFields", "tableData"} {
		require.Contains(t, fellBack, k)
	}
	require.NotContains(t, fellBack, "menuItems")
	require.Len(t, st.Layout.SideItems, 3)
	require.Len(t, st.Layout.TopNav, 4)
	require.Len(t, st.Approval.FormFields, 4)
	require.True(t, st.Modal.TableData.Rectangular())
	require.Equal(t, []string{"필터"}, st.Content.MenuItems)
}

func TestRestoreDerivesHeaderFlagForOldSnapshots(t *testing.T) {
	t.Parallel()
	snap := Snapshot{
		"trayType":       json.RawMessage(`"warning"`),
		"trayHeaderText": json.RawMessage(`"D-BUGGER · 정보 안내"`),
	}
	st, _ := Restore(snap, fixedNow)
	require.True(t, st.Tray.HeaderIsDefault)

	snap["trayHeaderText"] = json.RawMessage(`"내 헤더"`)
	st, _ = Restore(snap, fixedNow)
	require.False(t, st.Tray.HeaderIsDefault)
	require.Equal(t, "내 헤더", st.Tray.SetType(scene.TrayError, fixedNow).HeaderText)
}

func TestRestoreClampsAndParsesEnums(t *testing.T) {
	t.Parallel()
	snap := Snapshot{
		"tab":                json.RawMessage(`"settings"`),
		"modalHeight":        json.RawMessage(`90`),
		"modalSize":          json.RawMessage(`"huge"`),
		"contentCurrentPage": json.RawMessage(`99`),
		"activeTopNavId":     json.RawMessage(`"ghost"`),
	}
	st, _ := Restore(snap, fixedNow)
	require.Equal(t, scene.TabTray, st.Tab)
	require.Equal(t, 200, st.Modal.HeightPx)
	require.Equal(t, scene.SizeLg, st.Modal.Size)
	require.Equal(t, 5, st.Content.Pagination.CurrentPage)
	require.Nil(t, st.Layout.ActiveTopNavID)
}

func TestDecodeRejectsNonObjects(t *testing.T) {
	t.Parallel()
	for _, in := range []string{`not json`, `[1,2]`, `null`, `"x"`} {
		_, err := Decode([]byte(in))
		require.Error(t, err, in)
	}
}

func TestRoundTripKeepsSearchOptionsAfterRemoval(t *testing.T) {
	t.Parallel()
	st := Defaults(fixedNow)
	c := st.Content.AddSearchOption().AddSearchOption()
	c = c.RemoveSearchOption(len(c.SearchFilter.SearchOptions) - 2)
	c = c.AddSearchOption()
	c.SearchFilter.SearchKeyword = "kw"
	c.SearchFilter.Enabled = false
	st.Content = c

	got, fellBack := roundTrip(t, st)
	require.Empty(t, fellBack)
	if diff := cmp.Diff(st.Content.SearchFilter, got.Content.SearchFilter); diff != "" {
		t.Fatalf("search filter mismatch (-want +got):\n%s", diff)
	}
}

func TestRestoreKeepsDuplicateSearchValues(t *testing.T) {
	t.Parallel()
	snap := Snapshot{
		"searchFilter": json.RawMessage(`{"enabled":false,"searchType":"opt5","searchKeyword":"kw","searchOptions":[{"value":"opt5","label":"a"},{"value":"opt5","label":"b"}]}`),
	}
	st, fellBack := Restore(snap, fixedNow)
	require.NotContains(t, fellBack, "searchFilter")
	require.False(t, st.Content.SearchFilter.Enabled)
	require.Equal(t, "kw", st.Content.SearchFilter.SearchKeyword)
	require.Len(t, st.Content.SearchFilter.SearchOptions, 2)
}

func TestRoundTripKeepsTableWithoutColumns(t *testing.T) {
	t.Parallel()
	st := Defaults(fixedNow)
	for _, col := range st.Content.Columns {
		st.Content = st.Content.RemoveColumn(col.ID)
	}

	got, fellBack := roundTrip(t, st)
	require.NotContains(t, fellBack, "columns")
	require.NotContains(t, fellBack, "rows")
	require.Empty(t, got.Content.Columns)
	require.Len(t, got.Content.Rows, 3)
	if diff := cmp.Diff(st.Content, got.Content); diff != "" {
		t.Fatalf("content mismatch (-want +got):\n%s", diff)
	}
}

func TestTrayTimestampIsNotPersisted(t *testing.T) {
	t.Parallel()
	data, err := Encode(Defaults(fixedNow))
	require.NoError(t, err)
	snap, err := Decode(data)
	require.NoError(t, err)
	require.NotContains(t, snap, "currentTimestamp")

	got, fellBack := Restore(snap, fixedNow.Add(26*time.Hour))
	require.Empty(t, fellBack)
	require.Equal(t, fixedNow.Add(26*time.Hour).Format(scene.TimestampLayout), got.Tray.Timestamp)
}
