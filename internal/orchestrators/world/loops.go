package world

import (
	"context"
	"log/slog"
	"time"

	"github.com/hexterra/world-api/internal/errors"
)

// Loop stages reported through the error sink
const (
	StageRechargeTick  = "recharge_tick"
	StageSnapshotFlush = "snapshot_flush"
)

// Start launches the recharge and snapshot loops. The snapshot loop is
// skipped when no sink is configured. Cancelling ctx stops the loops the
// same way Stop does.
func (e *Engine) Start(ctx context.Context) error {
	e.loopMu.Lock()
	defer e.loopMu.Unlock()

	if e.quit != nil {
		return errors.FailedPrecondition("engine loops already started")
	}

	quit := make(chan struct{})
	e.quit = quit

	e.wg.Add(1)
	go e.rechargeLoop(quit)

	if e.sink != nil {
		e.wg.Add(1)
		go e.snapshotLoop(quit)
	}

	go func() {
		select {
		case <-ctx.Done():
			e.Stop()
		case <-quit:
		}
	}()

	slog.Info("world engine loops started",
		"recharge_interval", e.rules.RechargeInterval,
		"snapshot_interval", e.rules.SnapshotInterval,
		"snapshot_enabled", e.sink != nil,
	)
	return nil
}

// Stop shuts the loops down and waits for any in-flight sweep to complete.
// Safe to call more than once.
func (e *Engine) Stop() {
	e.loopMu.Lock()
	quit := e.quit
	e.quit = nil
	e.loopMu.Unlock()

	if quit == nil {
		return
	}
	close(quit)
	e.wg.Wait()
	slog.Info("world engine loops stopped")
}

// rechargeLoop drives the simulation sweep on its interval. Sweep runs use
// a background context so a shutdown mid-sweep finishes cleanly; failures
// go to the error sink and never stop the loop.
func (e *Engine) rechargeLoop(quit chan struct{}) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.rules.RechargeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			out, err := e.RunRechargeTick(context.Background(), &RechargeTickInput{})
			if err != nil {
				e.reportError(StageRechargeTick, err)
				continue
			}
			if out.TilesUpdated > 0 {
				slog.Debug("recharge tick complete",
					"tiles_scanned", out.TilesScanned,
					"tiles_updated", out.TilesUpdated,
					"owners_credited", out.OwnersCredited,
					"energy_generated", out.EnergyGenerated,
				)
			}
		}
	}
}

func (e *Engine) snapshotLoop(quit chan struct{}) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.rules.SnapshotInterval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			out, err := e.FlushSnapshot(context.Background(), &FlushSnapshotInput{})
			if err != nil {
				e.reportError(StageSnapshotFlush, err)
				continue
			}
			slog.Info("snapshot flushed", "tiles_persisted", out.TilesPersisted)
		}
	}
}

func logBackgroundError(stage string, err error) {
	slog.Error("background loop failure", "stage", stage, "error", err)
}
