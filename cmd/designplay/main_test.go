package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jask/designplay/internal/scene"
)

// testEnv points config, store and log at a temp dir using the file driver.
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DESIGNPLAY_CONFIG", filepath.Join(dir, "config.toml"))
	t.Setenv("DESIGNPLAY_STORE_DRIVER", "file")
	t.Setenv("DESIGNPLAY_STORE_PATH", filepath.Join(dir, "state.json"))
	t.Setenv("DESIGNPLAY_LOG_FILE", filepath.Join(dir, "designplay.log"))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRenderScene(t *testing.T) {
	testEnv(t)
	out, err := run(t, "render", "tray", "--plain")
	require.NoError(t, err)
	require.Contains(t, out, "알림 제목입니다")
	require.Contains(t, out, "ESC로 닫기")

	out, err = run(t, "render", "tray", "--plain", "--closing")
	require.NoError(t, err)
	require.NotContains(t, out, "알림 제목입니다")

	out, err = run(t, "render", "content", "--plain", "--ephemeral")
	require.NoError(t, err)
	require.Contains(t, out, "검색")
}

func TestRenderRejectsUnknownNames(t *testing.T) {
	testEnv(t)
	_, err := run(t, "render", "tary")
	require.ErrorContains(t, err, `did you mean "tray"`)

	_, err = run(t, "render", "layout", "--theme", "purple")
	require.ErrorContains(t, err, "unknown theme")
}

func TestParseScene(t *testing.T) {
	tab, err := parseScene(" Modal ")
	require.NoError(t, err)
	require.Equal(t, scene.TabModal, tab)

	_, err = parseScene("aproval")
	require.ErrorContains(t, err, `did you mean "approval"`)

	_, err = parseScene("zzzzzzzzzz")
	require.ErrorContains(t, err, "tray|layout|content|approval|modal")
}

func TestSnapshotYAMLRoundTrip(t *testing.T) {
	dir := testEnv(t)
	exported, err := run(t, "snapshot", "export", "--format", "yaml")
	require.NoError(t, err)
	file := filepath.Join(dir, "snap.yaml")
	require.NoError(t, os.WriteFile(file, []byte(exported), 0o644))

	out, err := run(t, "snapshot", "import", file)
	require.NoError(t, err)
	require.Equal(t, "imported\n", out)

	first, err := run(t, "snapshot", "export")
	require.NoError(t, err)
	second, err := run(t, "snapshot", "export")
	require.NoError(t, err)

	var a, b map[string]any
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(second), &b))
	for _, key := range []string{"columns", "rows", "sideItems", "formFields", "logConfig"} {
		require.Empty(t, cmp.Diff(a[key], b[key]), key)
	}
}

func TestSnapshotImportReportsDefaults(t *testing.T) {
	dir := testEnv(t)
	file := filepath.Join(dir, "partial.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"appTitle":"사내 포털","modalHeight":"tall"}`), 0o644))

	out, err := run(t, "snapshot", "import", file)
	require.NoError(t, err)
	require.Contains(t, out, "defaults used for:")
	require.Contains(t, out, "modalHeight")

	exported, err := run(t, "snapshot", "export")
	require.NoError(t, err)
	var snap map[string]any
	require.NoError(t, json.Unmarshal([]byte(exported), &snap))
	require.Equal(t, "사내 포털", snap["appTitle"])
	require.EqualValues(t, 400, snap["modalHeight"])
}

func TestSnapshotImportRejectsNonObject(t *testing.T) {
	dir := testEnv(t)
	file := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(file, []byte(`[1,2,3]`), 0o644))
	_, err := run(t, "snapshot", "import", file)
	require.ErrorContains(t, err, "parse snapshot")
}

func TestSnapshotResetAndPurge(t *testing.T) {
	dir := testEnv(t)
	file := filepath.Join(dir, "snap.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"tab":"modal"}`), 0o644))
	_, err := run(t, "snapshot", "import", file)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "state.json"))

	out, err := run(t, "snapshot", "purge")
	require.NoError(t, err)
	require.Equal(t, "purged 0 session(s)\n", out)
	require.FileExists(t, filepath.Join(dir, "state.json"))

	out, err = run(t, "snapshot", "reset")
	require.NoError(t, err)
	require.Contains(t, out, "cleared file:")
	require.NoFileExists(t, filepath.Join(dir, "state.json"))
}

func TestSnapshotExportRejectsUnknownFormat(t *testing.T) {
	testEnv(t)
	_, err := run(t, "snapshot", "export", "--format", "xml")
	require.ErrorContains(t, err, "unknown format")
}

func TestConfigInitAndShow(t *testing.T) {
	dir := testEnv(t)
	out, err := run(t, "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, "driver: file")
	require.Contains(t, out, "tray_close_delay: 240ms")

	_, err = run(t, "config", "init")
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "config.toml"))

	_, err = run(t, "config", "init")
	require.ErrorContains(t, err, "already exists")
	_, err = run(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestSnapshotSessionsOnSQLite(t *testing.T) {
	dir := testEnv(t)
	_, err := run(t, "snapshot", "sessions")
	require.ErrorContains(t, err, "keeps a single session")

	t.Setenv("DESIGNPLAY_STORE_DRIVER", "sqlite")
	t.Setenv("DESIGNPLAY_STORE_PATH", filepath.Join(dir, "designplay.db"))
	file := filepath.Join(dir, "snap.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"tab":"layout"}`), 0o644))
	_, err = run(t, "snapshot", "import", file)
	require.NoError(t, err)

	out, err := run(t, "snapshot", "sessions")
	require.NoError(t, err)
	require.Contains(t, out, "* default  1 slot(s)")

	out, err = run(t, "render", "--plain")
	require.NoError(t, err)
	require.Contains(t, out, "U")
}
