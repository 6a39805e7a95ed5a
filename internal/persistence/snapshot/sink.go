// Package snapshot persists tile state to durable storage. The engine's
// snapshot loop streams the tile index here in batches; upserts are
// idempotent so replays after a crash are harmless.
package snapshot

import (
	"context"

	"github.com/hexterra/world-api/internal/entities/game"
)

//go:generate mockgen -destination=mock/mock_sink.go -package=snapshotmock github.com/hexterra/world-api/internal/persistence/snapshot Sink

// Sink receives batches of tile rows. UpsertTiles is keyed by (q, r) and
// writes all tile fields including the alliance snapshot and last_update.
type Sink interface {
	UpsertTiles(ctx context.Context, tiles []game.Tile) error
}
