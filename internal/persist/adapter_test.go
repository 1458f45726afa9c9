package persist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jask/designplay/internal/scene"
	"github.com/jask/designplay/internal/store"
)

var fixedNow = time.Date(2026, 3, 9, 9, 30, 0, 0, time.UTC)

type brokenSlot struct{ MemorySlot }

func (*brokenSlot) Write(context.Context, []byte) error { return errors.New("disk full") }
func (*brokenSlot) Read(context.Context) ([]byte, error) {
	return nil, errors.New("permission denied")
}

func TestAdapterSaveRestoreThroughStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	slot := NewMemorySlot()
	a := NewAdapter(slot, nil)

	s := store.New(store.Defaults(fixedNow))
	unbind := a.Bind(ctx, s)
	defer unbind()

	s.SetTab(scene.TabContent)
	s.UpdateContent(func(c scene.Content) scene.Content { return c.RemoveColumn(c.Columns[1].ID) })
	s.UpdateLayout(func(l scene.Layout) scene.Layout { return l.AddTopNav() })

	got := a.Restore(ctx, fixedNow)
	if diff := cmp.Diff(s.State(), got); diff != "" {
		t.Fatalf("restored state mismatch (-want +got):\n%s", diff)
	}
	require.Zero(t, a.Failures())
}

func TestAdapterLoadEmptyAndCorrupt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	slot := NewMemorySlot()
	a := NewAdapter(slot, nil)

	require.Nil(t, a.Load(ctx))
	require.Zero(t, a.Failures())

	require.NoError(t, slot.Write(ctx, []byte(`{"tab":`)))
	require.Nil(t, a.Load(ctx))
	require.EqualValues(t, 1, a.Failures())

	st := a.Restore(ctx, fixedNow)
	require.Equal(t, scene.TabTray, st.Tab)
	require.Len(t, st.Content.Rows, 3)
}

func TestAdapterSwallowsAndLogsFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	core, logs := observer.New(zap.WarnLevel)
	a := NewAdapter(&brokenSlot{}, zap.New(core))

	a.Save(ctx, store.Defaults(fixedNow))
	require.Nil(t, a.Load(ctx))
	require.EqualValues(t, 2, a.Failures())

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "write slot", entries[0].Message)
	require.Equal(t, "read slot", entries[1].Message)
}

func TestAdapterPurge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	require.Zero(t, NewAdapter(NewMemorySlot(), nil).Purge(ctx, fixedNow, time.Hour))

	slot := NewFileSlot(t.TempDir() + "/state.json")
	a := NewAdapter(slot, nil)
	a.Save(ctx, store.Defaults(fixedNow))
	require.Zero(t, a.Purge(ctx, time.Now(), 0))
	require.EqualValues(t, 1, a.Purge(ctx, time.Now().Add(48*time.Hour), time.Hour))

	a.Clear(ctx)
	require.Zero(t, a.Failures())
}
