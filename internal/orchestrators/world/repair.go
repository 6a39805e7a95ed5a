package world

import (
	"context"
	"log/slog"

	"github.com/hexterra/world-api/internal/hex"
)

// RepairTile restores integrity on a tile the caller owns
func (e *Engine) RepairTile(ctx context.Context, input *RepairTileInput) (*RepairTileOutput, error) {
	userID, err := validateUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	coord := hex.Coord{Q: input.Q, R: input.R}
	if err := validateCoord(coord); err != nil {
		return nil, err
	}
	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	chunk := hex.ChunkOf(coord, e.rules.ChunkSize)
	out := &RepairTileOutput{
		ChunkQ:  chunk.Q,
		ChunkR:  chunk.R,
		EventID: e.idGen.Generate(),
	}

	unlockTile := e.tileLocks.lock(tileKey(coord))
	defer unlockTile()

	tile, err := e.loadTile(ctx, coord)
	if err != nil {
		return nil, err
	}
	if tile == nil {
		out.Status = StatusTileNotFound
		return out, nil
	}
	if tile.OwnerID != userID {
		out.Status = StatusNotOwner
		return out, nil
	}

	unlockPlayer := e.playerLocks.lock(playerKey(userID))
	defer unlockPlayer()

	player, err := e.loadOrCreatePlayer(ctx, userID)
	if err != nil {
		return nil, err
	}

	cost := e.rules.RepairCostEnergy
	if player.Energy < cost {
		out.Status = StatusInsufficientEnergy
		out.RequiredEnergy = cost
		out.PlayerEnergy = player.Energy
		return out, nil
	}

	now := e.nowMillis()
	energyAfter := round4(player.Energy - cost)
	if err := e.writePlayerEnergy(ctx, userID, energyAfter, now); err != nil {
		return nil, err
	}

	tile.Integrity = round4(clamp(tile.Integrity+e.rules.RepairIntegrityGain, 0, 100))
	tile.LastUpdate = now
	if err := e.writeTile(ctx, tile); err != nil {
		return nil, err
	}

	if err := e.recordActivity(ctx, chunk, 2); err != nil {
		return nil, err
	}

	out.Status = StatusOK
	out.Tile = tile
	out.EnergyCost = cost
	out.EnergyAfter = energyAfter

	slog.Info("tile repaired",
		"user_id", userID,
		"q", coord.Q,
		"r", coord.R,
		"integrity", tile.Integrity,
	)

	return out, nil
}
