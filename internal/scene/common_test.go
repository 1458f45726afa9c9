package scene

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginationClamp(t *testing.T) {
	t.Parallel()
	p := DefaultPagination()
	require.Equal(t, 1, p.SetPage(0).CurrentPage)
	require.Equal(t, 5, p.SetPage(10).CurrentPage)
	require.Equal(t, 3, p.SetPage(3).CurrentPage)

	p = p.SetPage(5).SetTotal(2)
	require.Equal(t, 2, p.CurrentPage)
	require.Equal(t, 1, p.SetTotal(-3).TotalPages)
}

func TestParseFallsBack(t *testing.T) {
	t.Parallel()
	require.Equal(t, SizeXl, Parse("xl", ModalSizes, SizeLg))
	require.Equal(t, SizeLg, Parse("xxl", ModalSizes, SizeLg))
	require.True(t, Valid(ConfirmYesNo, ConfirmTypes))
	require.Equal(t, []string{"dark", "light"}, Names(ThemeModes))
}

func TestNewIDIsUnique(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for range 100 {
		id := NewID("row")
		require.False(t, seen[id])
		require.Regexp(t, `^row_[0-9a-f]{32}$`, id)
		seen[id] = true
	}
}
