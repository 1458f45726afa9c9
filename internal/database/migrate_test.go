package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMigrationsIsIdempotent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "play.db")
	db, err := OpenMigrated(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(path))
	v, dirty, err := SchemaVersion(path)
	require.NoError(t, err)
	require.False(t, dirty)
	require.EqualValues(t, 1, v)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session_slots`).Scan(&n))
	require.Zero(t, n)
}
