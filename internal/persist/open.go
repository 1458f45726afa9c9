package persist

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/jask/designplay/internal/config"
	"github.com/jask/designplay/internal/database"
	"github.com/jask/designplay/internal/database/repository"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the slot selected by cfg. The closer releases the database
// handle of the sqlite driver. An empty session gets a fresh uuid.
func Open(ctx context.Context, cfg config.StoreConfig) (Slot, io.Closer, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemorySlot(), nopCloser{}, nil
	case config.DriverFile:
		return NewFileSlot(cfg.Path), nopCloser{}, nil
	case config.DriverSQLite:
		db, err := database.OpenMigrated(ctx, cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		session := cfg.Session
		if session == "" {
			session = uuid.NewString()
		}
		return NewSQLiteSlot(repository.NewSlotRepo(db), session, nil), db, nil
	default:
		return nil, nil, fmt.Errorf("persist: unknown driver %q", cfg.Driver)
	}
}
