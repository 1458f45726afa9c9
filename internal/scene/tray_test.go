package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 9, 14, 5, 0, 0, time.UTC)

func TestDefaultTray(t *testing.T) {
	t.Parallel()
	tr := DefaultTray(fixedNow)
	require.Equal(t, TrayInfo, tr.Type)
	require.Equal(t, "D-BUGGER · 정보 안내", tr.HeaderText)
	require.True(t, tr.HeaderIsDefault)
	require.Equal(t, "2026.03.09 14:05", tr.Timestamp)
}

func TestTraySetTypeFollowsDefaultHeader(t *testing.T) {
	t.Parallel()
	later := fixedNow.Add(3 * time.Minute)
	tr := DefaultTray(fixedNow).SetType(TrayError, later)
	require.Equal(t, "D-BUGGER · 보안 위험", tr.HeaderText)
	require.Equal(t, "2026.03.09 14:08", tr.Timestamp)
	require.True(t, tr.HeaderIsDefault)
}

func TestTrayCustomHeaderSurvivesTypeChange(t *testing.T) {
	t.Parallel()
	tr := DefaultTray(fixedNow).SetHeaderText("보안 센터")
	tr = tr.SetType(TrayWarning, fixedNow)
	require.Equal(t, "보안 센터", tr.HeaderText)
	require.False(t, tr.HeaderIsDefault)
	require.Equal(t, "#f59e0b", tr.Type.Meta().Accent)
}

func TestTrayUnknownTypeFallsBackToInfo(t *testing.T) {
	t.Parallel()
	tr := DefaultTray(fixedNow).SetType(TrayType("purple"), fixedNow)
	require.Equal(t, TrayInfo, tr.Type)
	require.Equal(t, "정보 안내", TrayType("purple").Meta().Status)
}

func TestTrayCloser(t *testing.T) {
	t.Parallel()
	var c TrayCloser
	require.False(t, c.Closing())
	require.Equal(t, 240*time.Millisecond, c.Close())
	require.True(t, c.Closing())
	c.Close()
	c.Settle()
	require.False(t, c.Closing())
	c.Settle()
	require.False(t, c.Closing())
}
