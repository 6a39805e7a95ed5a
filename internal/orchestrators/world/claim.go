package world

import (
	"context"
	"log/slog"

	"github.com/hexterra/world-api/internal/entities/game"
	"github.com/hexterra/world-api/internal/hex"
)

// ClaimTile applies the claim rules in order: self-claim no-op, range gate,
// cost, spend gate, commit. Gameplay refusals come back as statuses; only
// invalid input, store failures, and cancellation are errors.
func (e *Engine) ClaimTile(ctx context.Context, input *ClaimTileInput) (*ClaimTileOutput, error) {
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
	out := &ClaimTileOutput{
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

	prevOwner := ""
	if tile != nil {
		prevOwner = tile.OwnerID
	}

	// Claimer's lock, plus the previous owner's on capture. Tile stripes
	// are always taken before player stripes.
	playerLockKeys := []string{playerKey(userID)}
	if prevOwner != "" && prevOwner != userID {
		playerLockKeys = append(playerLockKeys, playerKey(prevOwner))
	}
	unlockPlayers := e.playerLocks.lockMany(playerLockKeys...)
	defer unlockPlayers()

	player, err := e.loadOrCreatePlayer(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Rule 1: claiming your own tile is a free success.
	if tile != nil && tile.OwnerID == userID {
		out.Status = StatusOK
		out.Tile = tile
		out.EnergyAfter = player.Energy
		return out, nil
	}

	// Rule 2: range gate, bypassed on a player's first-ever claim.
	ownedMembers, err := e.store.SetMembers(ctx, ownerTilesKey(userID))
	if err != nil {
		return nil, err
	}
	if len(ownedMembers) > 0 {
		nearest := int64(-1)
		for _, member := range ownedMembers {
			owned, err := parseCoordMember(member)
			if err != nil {
				continue
			}
			d := hex.Distance(coord, owned)
			if nearest < 0 || d < nearest {
				nearest = d
			}
		}
		if nearest > e.rules.MaxClaimDistanceFromOwned {
			out.Status = StatusOutOfRange
			out.NearestDistance = &nearest
			out.MaxDistance = e.rules.MaxClaimDistanceFromOwned
			return out, nil
		}
	}

	// Rule 3: cost.
	cost := e.rules.FreeClaimCost
	if prevOwner != "" {
		cost = float64(tile.Level) * e.rules.HostileClaimCostMultiplier
	}

	// Rule 4: spend gate. Nothing is mutated on refusal.
	if player.Energy < cost {
		out.Status = StatusInsufficientEnergy
		out.RequiredEnergy = cost
		out.PlayerEnergy = player.Energy
		return out, nil
	}

	// Rule 5: commit.
	now := e.nowMillis()
	energyAfter := round4(player.Energy - cost)
	if err := e.writePlayerEnergy(ctx, userID, energyAfter, now); err != nil {
		return nil, err
	}

	created := tile == nil
	if created {
		tile = &game.Tile{
			Q:         coord.Q,
			R:         coord.R,
			Energy:    e.rules.InitialTileEnergy,
			Integrity: e.rules.InitialTileIntegrity,
			Level:     e.rules.InitialTileLevel,
			Type:      game.TileTypeNormal,
		}
	}
	tile.OwnerID = userID
	tile.OwnerAllianceTag = player.AllianceTag
	tile.OwnerAllianceColor = player.AllianceColor
	tile.LastUpdate = now
	if err := e.writeTile(ctx, tile); err != nil {
		return nil, err
	}

	member := coordMember(coord)
	if _, err := e.store.SetAdd(ctx, keyTilesIndex, member); err != nil {
		return nil, err
	}
	if _, err := e.store.SetAdd(ctx, chunkTilesKey(chunk), member); err != nil {
		return nil, err
	}
	if _, err := e.store.SetAdd(ctx, ownerTilesKey(userID), member); err != nil {
		return nil, err
	}

	captured := prevOwner != "" && prevOwner != userID
	if captured {
		if _, err := e.store.SetRemove(ctx, ownerTilesKey(prevOwner), member); err != nil {
			return nil, err
		}
		if err := e.adjustScore(ctx, prevOwner, -1); err != nil {
			return nil, err
		}
	}
	// Every path here gains the claimer a tile: creation, capture, or an
	// existing unowned tile. Exactly one credit either way.
	if err := e.adjustScore(ctx, userID, 1); err != nil {
		return nil, err
	}

	activity := int64(1)
	if captured {
		activity = 3
	}
	if err := e.recordActivity(ctx, chunk, activity); err != nil {
		return nil, err
	}

	out.Status = StatusOK
	out.Created = created
	out.Captured = captured
	out.Tile = tile
	out.EnergyCost = cost
	out.EnergyAfter = energyAfter

	slog.Info("tile claimed",
		"user_id", userID,
		"q", coord.Q,
		"r", coord.R,
		"created", created,
		"captured", captured,
		"cost", cost,
	)

	return out, nil
}
