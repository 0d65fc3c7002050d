// Package engine hosts the lot router inside the settlement daemon. It owns
// the process lifecycle and the periodic checkpoint loop that persists the
// composite state snapshot.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/muhammadchandra19/auctionhouse/internal/usecase/router"
	"github.com/muhammadchandra19/auctionhouse/internal/usecase/snapshot"
	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
)

// Engine wires the router to the snapshot manager and runs the checkpoint
// loop. Checkpoints are skipped while the router version is unchanged, so an
// idle daemon writes nothing.
type Engine struct {
	router    *router.Router
	snapshots *snapshot.Manager
	logger    logger.Interface

	mu               sync.RWMutex
	lastSavedVersion uint64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	snapshotInterval time.Duration
}

// NewEngine creates an engine with the default options.
func NewEngine(
	router *router.Router,
	snapshots *snapshot.Manager,
	logger logger.Interface,
) *Engine {
	return NewEngineWithOptions(router, snapshots, logger, DefaultEngineOptions())
}

// NewEngineWithOptions creates an engine with custom options.
func NewEngineWithOptions(
	router *router.Router,
	snapshots *snapshot.Manager,
	logger logger.Interface,
	options *Options,
) *Engine {
	return &Engine{
		router:    router,
		snapshots: snapshots,
		logger:    logger,

		snapshotInterval: options.SnapshotInterval,
	}
}

// Start restores the latest checkpoint, if any, and launches the snapshot
// loop. A failed restore aborts startup, since serving on partial state
// could double-pay claims.
func (e *Engine) Start(ctx context.Context) error {
	restored, err := e.snapshots.Load(ctx)
	if err != nil {
		return err
	}
	if restored {
		e.setLastSavedVersion(e.router.Version())
		e.logger.Info("state restored from checkpoint", logger.Field{
			Key:   "version",
			Value: e.router.Version(),
		})
	}

	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(1)
	go e.runSnapshotLoop()

	e.logger.Info("settlement engine started", logger.Field{
		Key:   "snapshotInterval",
		Value: e.snapshotInterval.String(),
	})

	return nil
}

// Stop shuts the engine down and writes one final checkpoint so a clean
// restart loses nothing.
func (e *Engine) Stop(ctx context.Context) error {
	if e.cancel != nil {
		e.cancel()
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if e.shouldCheckpoint() {
			e.checkpoint(ctx)
		}
		e.logger.Info("settlement engine stopped gracefully")
		return nil
	case <-ctx.Done():
		e.logger.Warn("engine stop timeout exceeded")
		return ctx.Err()
	}
}

// runSnapshotLoop checkpoints state on a fixed interval while it changed.
func (e *Engine) runSnapshotLoop() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.snapshotInterval)
	defer ticker.Stop()

	e.logger.Info("starting snapshot loop")

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("snapshot loop shutting down")
			return
		case <-ticker.C:
			if e.shouldCheckpoint() {
				e.checkpoint(e.ctx)
			}
		}
	}
}

// shouldCheckpoint reports whether the router mutated since the last save.
func (e *Engine) shouldCheckpoint() bool {
	return e.router.Version() != e.LastSavedVersion()
}

// checkpoint writes one composite snapshot. The version is read before the
// save so a mutation racing the write only causes one redundant checkpoint,
// never a missed one.
func (e *Engine) checkpoint(ctx context.Context) {
	version := e.router.Version()

	if err := e.snapshots.Save(ctx); err != nil {
		e.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "save_snapshot",
		})
		return
	}

	e.setLastSavedVersion(version)
	e.logger.Info("checkpoint stored", logger.Field{
		Key:   "version",
		Value: version,
	})
}

// LastSavedVersion returns the router version of the last stored checkpoint.
func (e *Engine) LastSavedVersion() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastSavedVersion
}

func (e *Engine) setLastSavedVersion(version uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSavedVersion = version
}
