package persist

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/jask/designplay/internal/store"
)

// Adapter moves whole-state snapshots between the store and a slot. It never
// returns persistence errors to callers: failures are logged and counted.
type Adapter struct {
	slot     Slot
	log      *zap.Logger
	failures atomic.Int64
}

func NewAdapter(slot Slot, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{slot: slot, log: log.Named("persist").With(zap.Stringer("slot", slot))}
}

func (a *Adapter) Slot() Slot { return a.slot }

// Load returns the decoded snapshot, or nil when the slot is empty,
// unreadable or does not hold a JSON object.
func (a *Adapter) Load(ctx context.Context) store.Snapshot {
	data, err := a.slot.Read(ctx)
	if errors.Is(err, ErrEmpty) {
		return nil
	}
	if err != nil {
		a.fail("read slot", err)
		return nil
	}
	snap, err := store.Decode(data)
	if err != nil {
		a.fail("parse snapshot", err)
		return nil
	}
	return snap
}

// Restore loads the slot and rebuilds a state with default fallbacks.
func (a *Adapter) Restore(ctx context.Context, now time.Time) store.State {
	snap := a.Load(ctx)
	st, fellBack := store.Restore(snap, now)
	if snap != nil && len(fellBack) > 0 {
		a.log.Debug("restored with defaults", zap.Strings("keys", fellBack))
	}
	return st
}

// Save serializes the full state and overwrites the slot.
func (a *Adapter) Save(ctx context.Context, st store.State) {
	data, err := store.Encode(st)
	if err != nil {
		a.fail("encode snapshot", err)
		return
	}
	if err := a.slot.Write(ctx, data); err != nil {
		a.fail("write slot", err)
	}
}

// Clear empties the slot.
func (a *Adapter) Clear(ctx context.Context) {
	if err := a.slot.Clear(ctx); err != nil {
		a.fail("clear slot", err)
	}
}

// Purge expires sessions last written more than ttl ago when the slot
// supports it. A zero ttl disables purging.
func (a *Adapter) Purge(ctx context.Context, now time.Time, ttl time.Duration) int64 {
	p, ok := a.slot.(Purger)
	if !ok || ttl <= 0 {
		return 0
	}
	n, err := p.Purge(ctx, now.Add(-ttl))
	if err != nil {
		a.fail("purge slots", err)
		return 0
	}
	if n > 0 {
		a.log.Info("purged stale sessions", zap.Int64("count", n), zap.Duration("ttl", ttl))
	}
	return n
}

// Bind saves after every committed store update and returns the unsubscribe func.
func (a *Adapter) Bind(ctx context.Context, s *store.Store) func() {
	return s.Subscribe(func(st store.State) { a.Save(ctx, st) })
}

// Failures counts persistence errors since the adapter was created.
func (a *Adapter) Failures() int64 { return a.failures.Load() }

func (a *Adapter) fail(msg string, err error) {
	a.failures.Add(1)
	a.log.Warn(msg, zap.Error(err))
}
