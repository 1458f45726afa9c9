package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the session has no value under the key.
var ErrNotFound = errors.New("slot not found")

// SlotRepo handles session_slots.
type SlotRepo struct {
	db *sql.DB
}

func NewSlotRepo(db *sql.DB) *SlotRepo {
	return &SlotRepo{db: db}
}

func (r *SlotRepo) Put(ctx context.Context, s Slot) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO session_slots(session_id, slot_key, value, updated_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(session_id, slot_key) DO UPDATE SET
	 value=excluded.value,
	 updated_at=excluded.updated_at;
	`, s.SessionID, s.Key, s.Value, s.UpdatedAt.Unix())
	return err
}

func (r *SlotRepo) Get(ctx context.Context, sessionID, key string) (Slot, error) {
	s := Slot{SessionID: sessionID, Key: key}
	var updated int64
	err := r.db.QueryRowContext(ctx,
		`SELECT value, updated_at FROM session_slots WHERE session_id = ? AND slot_key = ?`,
		sessionID, key,
	).Scan(&s.Value, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return Slot{}, ErrNotFound
	}
	if err != nil {
		return Slot{}, err
	}
	s.UpdatedAt = time.Unix(updated, 0).UTC()
	return s, nil
}

func (r *SlotRepo) Delete(ctx context.Context, sessionID, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session_slots WHERE session_id = ? AND slot_key = ?`, sessionID, key)
	return err
}

// PurgeBefore drops every slot last written before cutoff and reports how many went.
func (r *SlotRepo) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM session_slots WHERE updated_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SlotRepo) Sessions(ctx context.Context) ([]SessionInfo, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT session_id, COUNT(*), MAX(updated_at)
	FROM session_slots
	GROUP BY session_id
	ORDER BY MAX(updated_at) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SessionInfo
	for rows.Next() {
		var s SessionInfo
		var updated int64
		if err := rows.Scan(&s.SessionID, &s.Slots, &updated); err != nil {
			return nil, err
		}
		s.UpdatedAt = time.Unix(updated, 0).UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}
