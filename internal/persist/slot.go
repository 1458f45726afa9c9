package persist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jask/designplay/internal/database/repository"
)

// SlotKey names the single value the playground keeps per session.
const SlotKey = "design-playground-state"

// ErrEmpty is returned by Read when nothing has been written yet.
var ErrEmpty = errors.New("persist: slot is empty")

// Slot is a session-scoped string slot.
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
	String() string
}

// Purger is implemented by slots that can expire stale sessions.
type Purger interface {
	Purge(ctx context.Context, before time.Time) (int64, error)
}

// SessionLister is implemented by slots that share storage across sessions.
type SessionLister interface {
	Sessions(ctx context.Context) ([]repository.SessionInfo, error)
}

// MemorySlot keeps the value in process memory.
type MemorySlot struct {
	mu   sync.Mutex
	data []byte
}

func NewMemorySlot() *MemorySlot { return &MemorySlot{} }

func (m *MemorySlot) Read(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrEmpty
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemorySlot) Write(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte{}, data...)
	return nil
}

func (m *MemorySlot) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}

func (m *MemorySlot) String() string { return "memory" }

// FileSlot keeps the value in one JSON file, replaced atomically on write.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) *FileSlot { return &FileSlot{path: path} }

func (f *FileSlot) Read(context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return data, nil
}

func (f *FileSlot) Write(_ context.Context, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("mkdir slot dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileSlot) Clear(context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Purge removes the file when it was last written before the cutoff.
func (f *FileSlot) Purge(_ context.Context, before time.Time) (int64, error) {
	info, err := os.Stat(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if !info.ModTime().Before(before) {
		return 0, nil
	}
	if err := os.Remove(f.path); err != nil {
		return 0, err
	}
	return 1, nil
}

func (f *FileSlot) String() string { return "file:" + f.path }

// SQLiteSlot keeps the value in the session_slots table under one session id.
type SQLiteSlot struct {
	repo    *repository.SlotRepo
	session string
	now     func() time.Time
}

func NewSQLiteSlot(repo *repository.SlotRepo, session string, now func() time.Time) *SQLiteSlot {
	if now == nil {
		now = time.Now
	}
	return &SQLiteSlot{repo: repo, session: session, now: now}
}

func (s *SQLiteSlot) Read(ctx context.Context) ([]byte, error) {
	slot, err := s.repo.Get(ctx, s.session, SlotKey)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read session %s: %w", s.session, err)
	}
	return slot.Value, nil
}

func (s *SQLiteSlot) Write(ctx context.Context, data []byte) error {
	return s.repo.Put(ctx, repository.Slot{
		SessionID: s.session,
		Key:       SlotKey,
		Value:     data,
		UpdatedAt: s.now().UTC(),
	})
}

func (s *SQLiteSlot) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, s.session, SlotKey)
}

func (s *SQLiteSlot) Purge(ctx context.Context, before time.Time) (int64, error) {
	return s.repo.PurgeBefore(ctx, before)
}

func (s *SQLiteSlot) Session() string { return s.session }

// Sessions lists every session sharing the database, newest first.
func (s *SQLiteSlot) Sessions(ctx context.Context) ([]repository.SessionInfo, error) {
	return s.repo.Sessions(ctx)
}

func (s *SQLiteSlot) String() string { return "sqlite:" + s.session }
