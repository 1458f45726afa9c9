package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/designplay/internal/database"
	"github.com/jask/designplay/internal/database/repository"
)

func openRepo(t *testing.T) *repository.SlotRepo {
	t.Helper()
	db, err := database.OpenMigrated(context.Background(), filepath.Join(t.TempDir(), "slots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewSlotRepo(db)
}

func TestSlotRepoPutGetOverwrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := openRepo(t)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	_, err := repo.Get(ctx, "s1", "k")
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Put(ctx, repository.Slot{SessionID: "s1", Key: "k", Value: []byte(`{"a":1}`), UpdatedAt: at}))
	require.NoError(t, repo.Put(ctx, repository.Slot{SessionID: "s1", Key: "k", Value: []byte(`{"a":2}`), UpdatedAt: at.Add(time.Minute)}))

	got, err := repo.Get(ctx, "s1", "k")
	require.NoError(t, err)
	require.Equal(t, `{"a":2}`, string(got.Value))
	require.Equal(t, at.Add(time.Minute), got.UpdatedAt)

	_, err = repo.Get(ctx, "s2", "k")
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "s1", "k"))
	_, err = repo.Get(ctx, "s1", "k")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSlotRepoPurgeBefore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := openRepo(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Put(ctx, repository.Slot{SessionID: "old", Key: "k", Value: []byte("1"), UpdatedAt: base}))
	require.NoError(t, repo.Put(ctx, repository.Slot{SessionID: "new", Key: "k", Value: []byte("2"), UpdatedAt: base.Add(48 * time.Hour)}))

	sessions, err := repo.Sessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, "new", sessions[0].SessionID)

	n, err := repo.PurgeBefore(ctx, base.Add(24*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = repo.Get(ctx, "old", "k")
	require.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.Get(ctx, "new", "k")
	require.NoError(t, err)
}
