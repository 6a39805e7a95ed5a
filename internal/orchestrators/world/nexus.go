package world

import (
	"context"
	"log/slog"

	"github.com/hexterra/world-api/internal/entities/game"
	"github.com/hexterra/world-api/internal/errors"
	"github.com/hexterra/world-api/internal/hex"
)

// RegisterNexus creates or upgrades a nexus tile. Nexuses start unowned;
// claims and captures follow the normal rules and the tile keeps its type.
func (e *Engine) RegisterNexus(ctx context.Context, input *RegisterNexusInput) (*RegisterNexusOutput, error) {
	coord := hex.Coord{Q: input.Q, R: input.R}
	if err := validateCoord(coord); err != nil {
		return nil, err
	}
	if input.Level < 1 {
		return nil, errors.InvalidArgumentf("nexus level must be a positive integer, got %d", input.Level)
	}
	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	unlockTile := e.tileLocks.lock(tileKey(coord))
	defer unlockTile()

	tile, err := e.loadTile(ctx, coord)
	if err != nil {
		return nil, err
	}

	now := e.nowMillis()
	created := tile == nil
	if created {
		tile = &game.Tile{
			Q:         coord.Q,
			R:         coord.R,
			Energy:    e.rules.InitialTileEnergy,
			Integrity: e.rules.InitialTileIntegrity,
		}
	}
	tile.Type = game.TileTypeNexus
	tile.Level = input.Level
	tile.LastUpdate = now
	if err := e.writeTile(ctx, tile); err != nil {
		return nil, err
	}

	member := coordMember(coord)
	if _, err := e.store.SetAdd(ctx, keyTilesIndex, member); err != nil {
		return nil, err
	}
	chunk := hex.ChunkOf(coord, e.rules.ChunkSize)
	if _, err := e.store.SetAdd(ctx, chunkTilesKey(chunk), member); err != nil {
		return nil, err
	}
	if _, err := e.store.SetAdd(ctx, keyPOIIndex, member); err != nil {
		return nil, err
	}

	slog.Info("nexus registered",
		"q", coord.Q,
		"r", coord.R,
		"level", input.Level,
		"created", created,
	)

	return &RegisterNexusOutput{Tile: tile, Created: created}, nil
}
