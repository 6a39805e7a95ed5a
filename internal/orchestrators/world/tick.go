package world

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	"github.com/hexterra/world-api/internal/hex"
	"github.com/hexterra/world-api/internal/persistence/kv"
)

// tickScanBatch is the cursor batch hint for the tile index sweep
const tickScanBatch = 512

// neighborOwner caches what the alliance-bonus check needs about a
// neighboring tile; the cache lives for one sweep only so ownership changes
// land by the next tick.
type neighborOwner struct {
	ownerID     string
	allianceTag string
}

// RunRechargeTick advances every tile's simulated state to now: integrity
// decays, energy regenerates for the seconds the tile stayed above zero
// integrity, adjacent same-alliance tiles earn the bonus multiplier, and
// the generated energy is credited to owners after the sweep.
func (e *Engine) RunRechargeTick(ctx context.Context, input *RechargeTickInput) (*RechargeTickOutput, error) {
	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	now := input.Now
	if now == 0 {
		now = e.nowMillis()
	}

	out := &RechargeTickOutput{}
	ownerCredits := make(map[string]float64)
	cache := make(map[hex.Coord]neighborOwner)

	cursor := kv.ScanStart
	for {
		members, next, err := e.store.SetScan(ctx, keyTilesIndex, cursor, tickScanBatch)
		if err != nil {
			return nil, err
		}
		for _, member := range members {
			coord, err := parseCoordMember(member)
			if err != nil {
				slog.Warn("skipping malformed tile index member", "member", member)
				continue
			}
			updated, generated, ownerID, err := e.tickTile(ctx, coord, now, cache)
			if err != nil {
				return nil, err
			}
			out.TilesScanned++
			if updated {
				out.TilesUpdated++
			}
			if ownerID != "" && generated > 0 {
				ownerCredits[ownerID] += generated
				out.EnergyGenerated += generated
			}
		}
		cursor = next
		if cursor == kv.ScanStart {
			break
		}
	}

	for ownerID, credit := range ownerCredits {
		if err := e.creditPlayerEnergy(ctx, ownerID, credit, now); err != nil {
			return nil, err
		}
		out.OwnersCredited++
	}

	decayed, err := e.maybeDecayActivity(ctx, now)
	if err != nil {
		return nil, err
	}
	out.ChunksDecayed = decayed

	return out, nil
}

// tickTile evolves one tile under its lock. It returns whether the tile was
// persisted, the energy generated during the elapsed window, and the owner
// to credit.
func (e *Engine) tickTile(ctx context.Context, coord hex.Coord, now int64, cache map[hex.Coord]neighborOwner) (bool, float64, string, error) {
	unlock := e.tileLocks.lock(tileKey(coord))
	defer unlock()

	tile, err := e.loadTile(ctx, coord)
	if err != nil {
		return false, 0, "", err
	}
	if tile == nil {
		// Index member raced ahead of the hash write; next tick sees it.
		return false, 0, "", nil
	}

	cache[coord] = neighborOwner{ownerID: tile.OwnerID, allianceTag: tile.OwnerAllianceTag}

	elapsed := now - tile.LastUpdate
	if elapsed <= 0 {
		return false, 0, tile.OwnerID, nil
	}

	decay := e.rules.IntegrityDecayPerMinute
	loss := float64(elapsed) / 60000 * decay
	nextIntegrity := clamp(tile.Integrity-loss, 0, 100)

	// Seconds during the window the tile still had integrity: the
	// pre-decay integrity buys integrity/decay minutes of generation.
	activeSeconds := float64(elapsed) / 1000
	if decay > 0 {
		activeSeconds = math.Min(activeSeconds, math.Max(0, tile.Integrity/decay*60))
	}

	bonus := 1.0
	if tile.Owned() && tile.OwnerAllianceTag != "" {
		allied, err := e.hasAlliedNeighbor(ctx, coord, tile.OwnerID, tile.OwnerAllianceTag, cache)
		if err != nil {
			return false, 0, "", err
		}
		if allied {
			bonus = e.rules.AllianceNeighborBonusMultiplier
		}
	}

	generated := activeSeconds * e.rules.EnergyRechargePerSecond * bonus

	tile.Energy = round4(clamp(tile.Energy+generated, 0, e.rules.MaxTileEnergy))
	tile.Integrity = round4(nextIntegrity)
	tile.LastUpdate = now
	if err := e.writeTile(ctx, tile); err != nil {
		return false, 0, "", err
	}

	return true, round4(generated), tile.OwnerID, nil
}

// hasAlliedNeighbor reports whether any of the six neighbors is owned by a
// different player carrying the same alliance tag. Neighbor reads go
// through the per-sweep cache.
func (e *Engine) hasAlliedNeighbor(ctx context.Context, coord hex.Coord, ownerID, tag string, cache map[hex.Coord]neighborOwner) (bool, error) {
	for _, n := range coord.Neighbors() {
		info, ok := cache[n]
		if !ok {
			fields, err := e.store.HashGetAll(ctx, tileKey(n))
			if err != nil {
				return false, err
			}
			info = neighborOwner{
				ownerID:     fields[fieldOwnerID],
				allianceTag: fields[fieldAllianceTag],
			}
			cache[n] = info
		}
		if info.ownerID != "" && info.ownerID != ownerID && info.allianceTag == tag {
			return true, nil
		}
	}
	return false, nil
}

// creditPlayerEnergy adds generated energy to a player, clamped to the cap
func (e *Engine) creditPlayerEnergy(ctx context.Context, userID string, credit float64, now int64) error {
	unlock := e.playerLocks.lock(playerKey(userID))
	defer unlock()

	player, err := e.loadOrCreatePlayer(ctx, userID)
	if err != nil {
		return err
	}
	energy := round4(clamp(player.Energy+credit, 0, e.rules.MaxPlayerEnergy))
	return e.writePlayerEnergy(ctx, userID, energy, now)
}

// maybeDecayActivity halves every chunk activity counter once per decay
// interval and drops the ones that reach zero, bounding the activity hash.
func (e *Engine) maybeDecayActivity(ctx context.Context, now int64) (int, error) {
	interval := e.rules.ActivityDecayInterval
	if interval <= 0 {
		return 0, nil
	}

	e.loopMu.Lock()
	if e.lastActivityDecay == 0 {
		e.lastActivityDecay = now
		e.loopMu.Unlock()
		return 0, nil
	}
	if now-e.lastActivityDecay < interval.Milliseconds() {
		e.loopMu.Unlock()
		return 0, nil
	}
	e.lastActivityDecay = now
	e.loopMu.Unlock()

	activity, err := e.store.HashGetAll(ctx, keyChunkActivity)
	if err != nil {
		return 0, err
	}

	updates := make(map[string]string)
	var drops []string
	for field, raw := range activity {
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || count <= 1 {
			drops = append(drops, field)
			continue
		}
		updates[field] = strconv.FormatInt(count/2, 10)
	}

	if len(updates) > 0 {
		if _, err := e.store.HashSet(ctx, keyChunkActivity, updates); err != nil {
			return 0, err
		}
	}
	if len(drops) > 0 {
		if _, err := e.store.HashDelete(ctx, keyChunkActivity, drops...); err != nil {
			return 0, err
		}
	}
	return len(updates) + len(drops), nil
}
