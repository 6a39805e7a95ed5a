package snapshot

import (
	"context"
	"sync"

	"github.com/hexterra/world-api/internal/entities/game"
)

// MemorySink keeps the latest row per tile in memory. Tests assert against
// it; the server does not use it and runs with no sink when no database is
// configured.
type MemorySink struct {
	mu      sync.Mutex
	rows    map[[2]int64]game.Tile
	batches [][]game.Tile
}

// NewMemory creates an empty MemorySink
func NewMemory() *MemorySink {
	return &MemorySink{rows: make(map[[2]int64]game.Tile)}
}

// Ensure MemorySink implements Sink
var _ Sink = (*MemorySink)(nil)

// UpsertTiles records the batch and applies it keyed by (q, r)
func (s *MemorySink) UpsertTiles(ctx context.Context, tiles []game.Tile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	batch := make([]game.Tile, len(tiles))
	copy(batch, tiles)
	s.batches = append(s.batches, batch)
	for _, t := range tiles {
		s.rows[[2]int64{t.Q, t.R}] = t
	}
	return nil
}

// Rows returns a copy of the current row per tile
func (s *MemorySink) Rows() map[[2]int64]game.Tile {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[[2]int64]game.Tile, len(s.rows))
	for k, v := range s.rows {
		out[k] = v
	}
	return out
}

// Batches returns the batches received, in arrival order
func (s *MemorySink) Batches() [][]game.Tile {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([][]game.Tile, len(s.batches))
	copy(out, s.batches)
	return out
}
