package editor

import (
	"time"

	"github.com/jask/designplay/internal/scene"
	"github.com/jask/designplay/internal/store"
)

const groupTray = "트레이 알림"

func Tray(t scene.TrayNotice, s *store.Store) []Control {
	return []Control{
		choice(groupTray, "타입", string(t.Type), scene.Names(scene.TrayTypes), func(v string) {
			s.UpdateTrayAt(func(t scene.TrayNotice, now time.Time) scene.TrayNotice {
				return t.SetType(scene.TrayType(v), now)
			})
		}),
		text(groupTray, "헤더 텍스트", t.HeaderText, func(v string) {
			s.UpdateTray(func(t scene.TrayNotice) scene.TrayNotice { return t.SetHeaderText(v) })
		}),
		text(groupTray, "제목", t.Title, func(v string) {
			s.UpdateTray(func(t scene.TrayNotice) scene.TrayNotice {
				t.Title = v
				return t
			})
		}),
		text(groupTray, "메시지", escape(t.Message), func(v string) {
			s.UpdateTray(func(t scene.TrayNotice) scene.TrayNotice {
				t.Message = unescape(v)
				return t
			})
		}),
		text(groupTray, "버튼 텍스트", t.ButtonText, func(v string) {
			s.UpdateTray(func(t scene.TrayNotice) scene.TrayNotice {
				t.ButtonText = v
				return t
			})
		}),
		action(groupTray, "시간 업데이트", func() {
			s.UpdateTrayAt(scene.TrayNotice.Touch)
		}),
		action(groupTray, "초기화", s.ResetTray),
	}
}
