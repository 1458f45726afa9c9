package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/designplay/internal/scene"
)

var fixedNow = time.Date(2026, 3, 9, 9, 30, 0, 0, time.UTC)

func newTestStore() *Store {
	return New(Defaults(fixedNow), WithClock(func() time.Time { return fixedNow }))
}

func TestStoreUpdateNotifiesSubscribers(t *testing.T) {
	t.Parallel()
	s := newTestStore()
	var got []State
	unsubscribe := s.Subscribe(func(st State) { got = append(got, st) })

	s.SetTab(scene.TabModal)
	s.UpdateModal(scene.Modal.Taller)
	require.Len(t, got, 2)
	require.Equal(t, scene.TabModal, got[0].Tab)
	require.Equal(t, 450, got[1].Modal.HeightPx)

	unsubscribe()
	s.SetTab(scene.TabTray)
	require.Len(t, got, 2)
	require.Equal(t, scene.TabTray, s.Tab())
}

func TestStoreSetTabFallsBackForUnknown(t *testing.T) {
	t.Parallel()
	s := newTestStore()
	s.SetTab(scene.TabContent)
	s.SetTab("settings")
	require.Equal(t, scene.TabTray, s.Tab())
}

func TestStoreFunctionalUpdatesCompose(t *testing.T) {
	t.Parallel()
	s := newTestStore()
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.UpdateContent(scene.Content.AddRow)
		}()
	}
	wg.Wait()
	require.Len(t, s.Content().Rows, 23)
	require.True(t, s.Content().Consistent())
}

func TestStoreOldSnapshotsStayIntact(t *testing.T) {
	t.Parallel()
	s := newTestStore()
	before := s.State()
	s.UpdateLayout(func(l scene.Layout) scene.Layout { return l.RemoveSideItem(l.SideItems[0].ID) })
	require.Len(t, before.Layout.SideItems, 3)
	require.Len(t, s.Layout().SideItems, 2)
}

func TestStoreTrayTypeChangeUsesClock(t *testing.T) {
	t.Parallel()
	later := fixedNow.Add(time.Hour)
	s := New(Defaults(fixedNow), WithClock(func() time.Time { return later }))
	s.UpdateTrayAt(func(tr scene.TrayNotice, now time.Time) scene.TrayNotice {
		return tr.SetType(scene.TraySuccess, now)
	})
	require.Equal(t, "2026.03.09 10:30", s.Tray().Timestamp)
	require.Equal(t, "D-BUGGER · 완료 안내", s.Tray().HeaderText)

	s.UpdateTray(func(tr scene.TrayNotice) scene.TrayNotice { return tr.SetHeaderText("custom") })
	s.ResetTray()
	require.True(t, s.Tray().HeaderIsDefault)
	require.Equal(t, scene.TrayInfo, s.Tray().Type)
}
