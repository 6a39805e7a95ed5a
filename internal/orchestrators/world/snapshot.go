package world

import (
	"context"
	"log/slog"

	"github.com/hexterra/world-api/internal/entities/game"
	"github.com/hexterra/world-api/internal/errors"
	"github.com/hexterra/world-api/internal/persistence/kv"
)

// FlushSnapshot streams the tile index to the snapshot sink in batches,
// emitting each batch as it fills and the final partial batch at the end.
// Returns how many tiles were persisted.
func (e *Engine) FlushSnapshot(ctx context.Context, _ *FlushSnapshotInput) (*FlushSnapshotOutput, error) {
	if e.sink == nil {
		return nil, errors.FailedPrecondition("no snapshot sink configured")
	}
	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	batchSize := e.rules.SnapshotBatchSize
	batch := make([]game.Tile, 0, batchSize)
	total := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := e.sink.UpsertTiles(ctx, batch); err != nil {
			return errors.Wrap(err, "failed to upsert snapshot batch")
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	cursor := kv.ScanStart
	for {
		members, next, err := e.store.SetScan(ctx, keyTilesIndex, cursor, int64(batchSize))
		if err != nil {
			return nil, err
		}
		for _, member := range members {
			coord, err := parseCoordMember(member)
			if err != nil {
				slog.Warn("skipping malformed tile index member", "member", member)
				continue
			}
			tile, err := e.loadTile(ctx, coord)
			if err != nil {
				return nil, err
			}
			if tile == nil {
				continue
			}
			batch = append(batch, *tile)
			if len(batch) >= batchSize {
				if err := flush(); err != nil {
					return nil, err
				}
			}
		}
		cursor = next
		if cursor == kv.ScanStart {
			break
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return &FlushSnapshotOutput{TilesPersisted: total}, nil
}
