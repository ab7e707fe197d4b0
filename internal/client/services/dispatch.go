// Package services implements the reconciliation functions: every mutating
// operation applies its change to the local cache synchronously, returns the
// optimistic value to the caller, and dispatches the remote sync in the
// background. Remote failures are logged, never surfaced, and never retried;
// the optimistic local state is the lasting state.
package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/rosetta/internal/logging"
)

// dispatcher runs background remote syncs and tracks them so callers can
// drain before shutdown. Dispatched work gets a fresh context: once fired, a
// sync runs to completion or failure regardless of the caller's lifetime.
type dispatcher struct {
	wg  sync.WaitGroup
	log logging.Logger
}

func (d *dispatcher) dispatch(op string, fn func(ctx context.Context) error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx := context.Background()
		if err := fn(ctx); err != nil {
			d.log.Warn(ctx, "background sync failed", "op", op, "err", err)
		}
	}()
}

// Wait blocks until every dispatched sync has finished.
func (d *dispatcher) Wait() {
	d.wg.Wait()
}
