package editor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/designplay/internal/scene"
	"github.com/jask/designplay/internal/store"
)

var fixedNow = time.Date(2026, 3, 9, 14, 5, 0, 0, time.UTC)

func newStore(t *testing.T, edit func(*store.State)) (*store.Store, *int) {
	t.Helper()
	st := store.Defaults(fixedNow)
	if edit != nil {
		edit(&st)
	}
	s := store.New(st, store.WithClock(func() time.Time { return fixedNow }))
	commits := new(int)
	unsubscribe := s.Subscribe(func(store.State) { *commits++ })
	t.Cleanup(unsubscribe)
	return s, commits
}

func validInput(c Control) string {
	switch c.Kind {
	case KindText:
		return "edited"
	case KindChoice:
		return c.Cycle(1)
	case KindNumber:
		return c.Step(1)
	default:
		return ""
	}
}

func find(t *testing.T, controls []Control, group, label string) Control {
	t.Helper()
	for _, c := range controls {
		if c.Group == group && c.Label == label {
			return c
		}
	}
	t.Fatalf("no control %s/%s", group, label)
	return Control{}
}

func TestEveryControlCommitsOnce(t *testing.T) {
	t.Parallel()
	setups := map[string]func(*store.State){
		"tray":    func(st *store.State) { st.Tab = scene.TabTray },
		"layout":  func(st *store.State) { st.Tab = scene.TabLayout },
		"content": func(st *store.State) { st.Tab = scene.TabContent },
		"content-badge": func(st *store.State) {
			st.Tab = scene.TabContent
			st.Content = st.Content.AddColumn()
			st.Content = st.Content.SetColumnType(st.Content.Columns[3].ID, scene.CellBadge)
		},
		"approval-document": func(st *store.State) {
			st.Tab = scene.TabApproval
			st.Approval.UploaderType = scene.UploaderDocument
			st.Approval = st.Approval.AddDocument().AddField(scene.FieldInput, scene.WidthHalf).SetNotice(true)
		},
		"approval-program": func(st *store.State) {
			st.Tab = scene.TabApproval
			st.Approval.UploaderType = scene.UploaderProgram
			st.Approval = st.Approval.AddProgram()
		},
		"modal-confirm": func(st *store.State) { st.Tab = scene.TabModal },
		"modal-general": func(st *store.State) {
			st.Tab = scene.TabModal
			st.Modal.ModalType = scene.ModalGeneral
		},
		"modal-log": func(st *store.State) {
			st.Tab = scene.TabModal
			st.Modal.ModalType = scene.ModalLog
		},
	}
	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			s, _ := newStore(t, setup)
			n := len(For(s.Tab(), s))
			require.NotZero(t, n)
			for i := range n {
				s, commits := newStore(t, setup)
				c := For(s.Tab(), s)[i]
				require.NoError(t, c.Apply(validInput(c)), "%s/%s", c.Group, c.Label)
				require.Equal(t, 1, *commits, "%s/%s", c.Group, c.Label)
			}
		})
	}
}

func TestTrayTypeFollowsHeaderTemplate(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t, nil)
	c := find(t, Tray(s.Tray(), s), groupTray, "타입")
	require.Equal(t, KindChoice, c.Kind)
	require.NoError(t, c.Apply("warning"))
	require.Equal(t, "D-BUGGER · 보안 주의", s.Tray().HeaderText)

	require.NoError(t, find(t, Tray(s.Tray(), s), groupTray, "헤더 텍스트").Apply("커스텀"))
	require.NoError(t, find(t, Tray(s.Tray(), s), groupTray, "타입").Apply("error"))
	require.Equal(t, "커스텀", s.Tray().HeaderText)

	require.NoError(t, find(t, Tray(s.Tray(), s), groupTray, "초기화").Apply(""))
	require.Equal(t, scene.DefaultTray(fixedNow), s.Tray())
}

func TestTrayMessageKeepsNewlines(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t, nil)
	c := find(t, Tray(s.Tray(), s), groupTray, "메시지")
	require.Equal(t, `여기에 알림 메시지 내용이 표시됩니다.\n여러 줄로 표시할 수 있습니다.`, c.Value)
	require.NoError(t, c.Apply(`첫 줄\n둘째 줄`))
	require.Equal(t, "첫 줄\n둘째 줄", s.Tray().Message)
}

func TestChoiceRejectsUnknownValue(t *testing.T) {
	t.Parallel()
	s, commits := newStore(t, nil)
	c := find(t, Tray(s.Tray(), s), groupTray, "타입")
	err := c.Apply("purple")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Zero(t, *commits)
}

func TestNumberClampsAndRejectsText(t *testing.T) {
	t.Parallel()
	s, commits := newStore(t, func(st *store.State) { st.Modal.ModalType = scene.ModalGeneral })
	h := find(t, Modal(s.Modal(), s), groupModal, "높이(px)")
	require.Equal(t, "400", h.Value)
	require.NoError(t, h.Apply("9999"))
	require.Equal(t, scene.ModalHeightMax, s.Modal().HeightPx)
	require.NoError(t, h.Apply("10"))
	require.Equal(t, scene.ModalHeightMin, s.Modal().HeightPx)
	require.ErrorIs(t, h.Apply("tall"), ErrInvalidInput)
	require.Equal(t, 2, *commits)

	require.Equal(t, "700", h.Step(1000))
	require.Equal(t, "200", Control{Kind: KindNumber, Value: "x", Min: 200, Max: 700}.Step(0))
}

func TestControlCycle(t *testing.T) {
	t.Parallel()
	c := Control{Kind: KindChoice, Value: "b", Options: []string{"a", "b", "c"}}
	require.Equal(t, "c", c.Cycle(1))
	require.Equal(t, "a", c.Cycle(-1))
	require.Equal(t, "a", c.Cycle(2))
	c.Value = "zzz"
	require.Equal(t, "a", c.Cycle(1))
	require.Equal(t, "c", c.Cycle(-1))
	require.Equal(t, "", Control{Kind: KindChoice}.Cycle(1))
}

func TestLayoutActiveToggles(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t, nil)
	controls := Layout(s.Layout(), s)
	var actives []Control
	for _, c := range controls {
		if c.Group == groupSidebar && c.Label == "활성" {
			actives = append(actives, c)
		}
	}
	// 폴더1, 하위1, 하위2, 단일 메뉴, 폴더2, 하위1
	require.Len(t, actives, 6)
	require.NoError(t, actives[2].Apply(""))
	child := s.Layout().SideItems[0].Children[1].ID
	require.Equal(t, child, *s.Layout().ActiveSideID)

	again := Layout(s.Layout(), s)
	var toggles []Control
	for _, c := range again {
		if c.Group == groupSidebar && c.Label == "활성" {
			toggles = append(toggles, c)
		}
	}
	require.True(t, toggles[2].On())
	require.NoError(t, toggles[2].Apply(""))
	require.Nil(t, s.Layout().ActiveSideID)
}

func TestLayoutAddChildOnlyOnFolders(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t, nil)
	n := 0
	for _, c := range Layout(s.Layout(), s) {
		if c.Label == "+ 하위 추가" {
			n++
		}
	}
	require.Equal(t, 2, n)
}

func TestContentColumnWidthAndType(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t, nil)
	controls := Content(s.Content(), s)
	var width, kind Control
	for _, c := range controls {
		if c.Group == groupColumns && c.Label == "너비(%)" && width.Label == "" {
			width = c
		}
		if c.Group == groupColumns && c.Label == "셀 타입" && kind.Label == "" {
			kind = c
		}
	}
	require.Equal(t, "0", width.Value)
	require.NoError(t, width.Apply("2"))
	require.Equal(t, scene.ColumnWidthMin, *s.Content().Columns[0].Width)
	require.NoError(t, width.Apply("0"))
	require.Nil(t, s.Content().Columns[0].Width)
	require.NoError(t, width.Apply("-7"))
	require.Equal(t, scene.ColumnWidthMin, *s.Content().Columns[0].Width)
	require.NoError(t, width.Apply("250"))
	require.Equal(t, scene.ColumnWidthMax, *s.Content().Columns[0].Width)
	require.ErrorIs(t, width.Apply("wide"), ErrInvalidInput)

	require.NoError(t, kind.Apply("switch"))
	c := s.Content()
	for _, r := range c.Rows {
		require.Equal(t, scene.SwitchCell(false), r.Cells[c.Columns[0].ID])
	}
	require.True(t, c.ValidTable())
}

func TestContentStatusCellIsChoiceOfCaptions(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t, nil)
	c := s.Content()
	status := find(t, Content(c, s), groupRows, c.Columns[2].Header)
	require.Equal(t, KindChoice, status.Kind)
	require.Equal(t, []string{"허용", "차단"}, status.Options)
	require.NoError(t, status.Apply("차단"))
	require.Equal(t, scene.StatusCell("차단"), s.Content().Rows[0].Cells[c.Columns[2].ID])
}

func TestApprovalNoticeToggle(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t, nil)
	require.NoError(t, find(t, Approval(s.Approval(), s), groupNotice, "안내 표시").Apply(""))
	require.Equal(t, scene.NoticeText, s.Approval().NoticeField.Text)
	c := find(t, Approval(s.Approval(), s), groupNotice, "안내 표시")
	require.True(t, c.On())
	require.NoError(t, c.Apply(""))
	require.Empty(t, s.Approval().NoticeField.Text)
}

func TestApprovalFieldTypeSwitch(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t, nil)
	id := s.Approval().FormFields[0].ID
	require.NoError(t, find(t, Approval(s.Approval(), s), groupFields, "타입").Apply("input"))
	f := s.Approval().FormFields[0]
	require.Equal(t, id, f.ID)
	require.Equal(t, scene.FieldInput, f.Type)
	require.Nil(t, f.Options)
}

func TestLogControlsUseStoreClock(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t, func(st *store.State) { st.Modal.ModalType = scene.ModalLog })
	require.NoError(t, find(t, Modal(s.Modal(), s), groupLog, "+ 로그 추가").Apply(""))
	logs := s.Modal().LogConfig.Logs
	require.Len(t, logs, 3)
	require.Equal(t, scene.LogItem{Date: "2026.03.09", Times: []string{"14:05:00"}}, logs[0])

	count := find(t, Modal(s.Modal(), s), groupLog, "차단 횟수")
	require.NoError(t, count.Apply("-4"))
	require.Zero(t, s.Modal().LogConfig.DetectionCount)
}

func TestForFollowsTab(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t, nil)
	require.Equal(t, groupTray, For(scene.TabTray, s)[0].Group)
	require.Equal(t, groupShell, For(scene.TabLayout, s)[0].Group)
	require.Equal(t, groupList, For(scene.TabContent, s)[0].Group)
	require.Equal(t, groupForm, For(scene.TabApproval, s)[0].Group)
	require.Equal(t, groupModal, For(scene.TabModal, s)[0].Group)
}
