package editor

import (
	"fmt"

	"github.com/jask/designplay/internal/scene"
	"github.com/jask/designplay/internal/store"
)

const (
	groupModal  = "모달"
	groupHeader = "모달 헤더"
	groupTable  = "테이블"
	groupLog    = "차단 로그"

	maxDetections = 9999
)

func Modal(m scene.Modal, s *store.Store) []Control {
	up := func(fn func(scene.Modal) scene.Modal) { s.UpdateModal(fn) }
	set := func(label, value string, assign func(*scene.Modal, string)) Control {
		return text(groupModal, label, value, func(v string) {
			up(func(m scene.Modal) scene.Modal {
				assign(&m, v)
				return m
			})
		})
	}

	out := []Control{
		choice(groupModal, "모달 타입", string(m.ModalType), scene.Names(scene.ModalTypes), func(v string) {
			up(func(m scene.Modal) scene.Modal {
				m.ModalType = scene.ModalType(v)
				return m
			})
		}),
		set("타이틀", m.Title, func(m *scene.Modal, v string) { m.Title = v }),
	}

	switch m.ModalType {
	case scene.ModalLog:
		return append(out, logControls(m.LogConfig, s)...)
	case scene.ModalGeneral:
		out = append(out, set("메시지", escape(m.Message), func(m *scene.Modal, v string) { m.Message = unescape(v) }))
		return append(out, generalControls(m, up)...)
	default:
		return append(out,
			choice(groupModal, "확인 타입", string(m.ConfirmType), scene.Names(scene.ConfirmTypes), func(v string) {
				up(func(m scene.Modal) scene.Modal {
					m.ConfirmType = scene.ConfirmType(v)
					return m
				})
			}),
			set("메시지", escape(m.Message), func(m *scene.Modal, v string) { m.Message = unescape(v) }),
			set("확인 버튼", m.ConfirmButtonText, func(m *scene.Modal, v string) { m.ConfirmButtonText = v }),
			set("취소 버튼", m.CancelButtonText, func(m *scene.Modal, v string) { m.CancelButtonText = v }),
			toggle(groupModal, "취소 버튼 표시", m.ShowCancelButton, func() {
				up(func(m scene.Modal) scene.Modal {
					m.ShowCancelButton = !m.ShowCancelButton
					return m
				})
			}),
		)
	}
}

func generalControls(m scene.Modal, up func(func(scene.Modal) scene.Modal)) []Control {
	header := func(label, value string, assign func(*scene.ModalHeader, string)) Control {
		return text(groupHeader, label, value, func(v string) {
			up(func(m scene.Modal) scene.Modal {
				assign(&m.Header, v)
				return m
			})
		})
	}
	out := []Control{
		choice(groupModal, "크기", string(m.Size), scene.Names(scene.ModalSizes), func(v string) {
			up(func(m scene.Modal) scene.Modal {
				m.Size = scene.ModalSize(v)
				return m
			})
		}),
		number(groupModal, "높이(px)", m.HeightPx, scene.ModalHeightMin, scene.ModalHeightMax, func(n int) {
			up(func(m scene.Modal) scene.Modal { return m.SetHeight(n) })
		}),
		action(groupModal, fmt.Sprintf("높이 +%d", scene.ModalHeightStep), func() { up(scene.Modal.Taller) }),
		action(groupModal, fmt.Sprintf("높이 -%d", scene.ModalHeightStep), func() { up(scene.Modal.Shorter) }),
		toggle(groupHeader, "헤더 표시", m.ShowHeader, func() {
			up(func(m scene.Modal) scene.Modal {
				m.ShowHeader = !m.ShowHeader
				return m
			})
		}),
		choice(groupHeader, "헤더 타입", string(m.Header.Type), scene.Names(scene.HeaderTypes), func(v string) {
			up(func(m scene.Modal) scene.Modal {
				m.Header.Type = scene.HeaderType(v)
				return m
			})
		}),
		header("헤더 타이틀", m.Header.Title, func(h *scene.ModalHeader, v string) { h.Title = v }),
		header("헤더 서브타이틀", m.Header.Subtitle, func(h *scene.ModalHeader, v string) { h.Subtitle = v }),
		toggle(groupTable, "테이블 표시", m.ShowTable, func() {
			up(func(m scene.Modal) scene.Modal {
				m.ShowTable = !m.ShowTable
				return m
			})
		}),
		action(groupTable, "+ 컬럼 추가", func() { up(scene.Modal.AddHeader) }),
	}
	for i, h := range m.TableData.Headers {
		out = append(out,
			indent(text(groupTable, "컬럼", h, func(v string) {
				up(func(m scene.Modal) scene.Modal { return m.RenameHeader(i, v) })
			}), 1),
			indent(action(groupTable, "삭제", func() {
				up(func(m scene.Modal) scene.Modal { return m.RemoveHeader(i) })
			}), 2),
		)
	}
	out = append(out, action(groupTable, "+ 행 추가", func() { up(scene.Modal.AddTableRow) }))
	for r, row := range m.TableData.Rows {
		out = append(out, indent(action(groupTable, scene.NextLabel("행 ", r)+" 삭제", func() {
			up(func(m scene.Modal) scene.Modal { return m.RemoveTableRow(r) })
		}), 1))
		for c, cell := range row {
			label := fmt.Sprintf("셀 %d", c+1)
			if c < len(m.TableData.Headers) {
				label = m.TableData.Headers[c]
			}
			out = append(out, indent(text(groupTable, label, cell, func(v string) {
				up(func(m scene.Modal) scene.Modal { return m.SetTableCell(r, c, v) })
			}), 2))
		}
	}

	out = append(out, pagerControls(groupPager, m.Pagination, func(fn func(scene.Pagination) scene.Pagination) {
		up(func(m scene.Modal) scene.Modal {
			m.Pagination = fn(m.Pagination)
			return m
		})
	})...)
	return append(out, emptyControls(groupEmpty, m.EmptyState, func(fn func(scene.EmptyState) scene.EmptyState) {
		up(func(m scene.Modal) scene.Modal {
			m.EmptyState = fn(m.EmptyState)
			return m
		})
	})...)
}

func logControls(lc scene.LogConfig, s *store.Store) []Control {
	up := func(fn func(scene.Modal) scene.Modal) { s.UpdateModal(fn) }
	field := func(label, value string, assign func(*scene.LogConfig, string)) Control {
		return text(groupLog, label, value, func(v string) {
			up(func(m scene.Modal) scene.Modal {
				assign(&m.LogConfig, v)
				return m
			})
		})
	}
	out := []Control{
		field("항목 이름", lc.ItemName, func(l *scene.LogConfig, v string) { l.ItemName = v }),
		field("항목 경로", lc.ItemPath, func(l *scene.LogConfig, v string) { l.ItemPath = v }),
		number(groupLog, "차단 횟수", lc.DetectionCount, 0, maxDetections, func(n int) {
			up(func(m scene.Modal) scene.Modal { return m.SetDetectionCount(n) })
		}),
		field("마지막 기록", lc.BlockedDate, func(l *scene.LogConfig, v string) { l.BlockedDate = v }),
		action(groupLog, "+ 로그 추가", func() {
			now := s.Now()
			up(func(m scene.Modal) scene.Modal { return m.AddLog(now) })
		}),
	}
	for i, l := range lc.Logs {
		out = append(out,
			indent(text(groupLog, "날짜", l.Date, func(v string) {
				up(func(m scene.Modal) scene.Modal { return m.SetLogDate(i, v) })
			}), 1),
			indent(action(groupLog, "+ 시간 추가", func() {
				now := s.Now()
				up(func(m scene.Modal) scene.Modal { return m.AddLogTime(i, now) })
			}), 2),
			indent(action(groupLog, "삭제", func() {
				up(func(m scene.Modal) scene.Modal { return m.RemoveLog(i) })
			}), 2),
		)
		for j, t := range l.Times {
			out = append(out,
				indent(text(groupLog, "시간", t, func(v string) {
					up(func(m scene.Modal) scene.Modal { return m.SetLogTime(i, j, v) })
				}), 3),
				indent(action(groupLog, "삭제", func() {
					up(func(m scene.Modal) scene.Modal { return m.RemoveLogTime(i, j) })
				}), 4),
			)
		}
	}
	return out
}
