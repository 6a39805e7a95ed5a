package world

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/hexterra/world-api/internal/entities/game"
	"github.com/hexterra/world-api/internal/errors"
	"github.com/hexterra/world-api/internal/hex"
)

const (
	leaderboardLimitMin = 1
	leaderboardLimitMax = 100
)

// GetTile returns a single tile, or a not-found error
func (e *Engine) GetTile(ctx context.Context, input *GetTileInput) (*GetTileOutput, error) {
	coord := hex.Coord{Q: input.Q, R: input.R}
	if err := validateCoord(coord); err != nil {
		return nil, err
	}
	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	tile, err := e.loadTile(ctx, coord)
	if err != nil {
		return nil, err
	}
	if tile == nil {
		return nil, errors.NotFoundf("tile (%d, %d) does not exist", coord.Q, coord.R)
	}
	return &GetTileOutput{Tile: tile}, nil
}

// GetPlayer returns a player profile, creating it on first observation
func (e *Engine) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	userID, err := validateUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	unlock := e.playerLocks.lock(playerKey(userID))
	defer unlock()

	player, err := e.loadOrCreatePlayer(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &GetPlayerOutput{Player: player}, nil
}

// GetTilesInRange returns every tile within hex distance radius of the
// center, sorted by (distance, q, r). Candidates come from the chunk sets
// covering the bounding box, so the scan cost scales with the viewport, not
// the world.
func (e *Engine) GetTilesInRange(ctx context.Context, input *GetTilesInRangeInput) (*GetTilesInRangeOutput, error) {
	center := hex.Coord{Q: input.CenterQ, R: input.CenterR}
	if err := validateCoord(center); err != nil {
		return nil, err
	}
	if input.Radius < 0 {
		return nil, errors.InvalidArgumentf("radius must not be negative, got %d", input.Radius)
	}
	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	type rankedTile struct {
		tile *game.Tile
		dist int64
	}
	var found []rankedTile

	for _, chunk := range e.chunksInBox(center, input.Radius) {
		members, err := e.store.SetMembers(ctx, chunkTilesKey(chunk))
		if err != nil {
			return nil, err
		}
		for _, member := range members {
			coord, err := parseCoordMember(member)
			if err != nil {
				continue
			}
			dist := hex.Distance(center, coord)
			if dist > input.Radius {
				continue
			}
			tile, err := e.loadTile(ctx, coord)
			if err != nil {
				return nil, err
			}
			if tile == nil {
				continue
			}
			found = append(found, rankedTile{tile: tile, dist: dist})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].dist != found[j].dist {
			return found[i].dist < found[j].dist
		}
		if found[i].tile.Q != found[j].tile.Q {
			return found[i].tile.Q < found[j].tile.Q
		}
		return found[i].tile.R < found[j].tile.R
	})

	tiles := make([]*game.Tile, len(found))
	for i, f := range found {
		tiles[i] = f.tile
	}
	return &GetTilesInRangeOutput{Tiles: tiles}, nil
}

// chunksInBox enumerates the chunk ids intersecting the bounding box
// [center±radius] on both axes
func (e *Engine) chunksInBox(center hex.Coord, radius int64) []hex.Coord {
	lo := hex.ChunkOf(hex.Coord{Q: center.Q - radius, R: center.R - radius}, e.rules.ChunkSize)
	hi := hex.ChunkOf(hex.Coord{Q: center.Q + radius, R: center.R + radius}, e.rules.ChunkSize)

	var chunks []hex.Coord
	for cq := lo.Q; cq <= hi.Q; cq++ {
		for cr := lo.R; cr <= hi.R; cr++ {
			chunks = append(chunks, hex.Coord{Q: cq, R: cr})
		}
	}
	return chunks
}

// GetRadarSummary builds the player's three radar layers: own bases, nexus
// cores, and activity hotspots. Each layer truncates at its configured cap.
func (e *Engine) GetRadarSummary(ctx context.Context, input *GetRadarSummaryInput) (*GetRadarSummaryOutput, error) {
	userID, err := validateUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	center := hex.Coord{Q: input.CenterQ, R: input.CenterR}
	if err := validateCoord(center); err != nil {
		return nil, err
	}
	if input.Radius <= 0 {
		return nil, errors.InvalidArgumentf("radius must be positive, got %d", input.Radius)
	}
	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	bases, err := e.radarBases(ctx, userID, center, input.Radius)
	if err != nil {
		return nil, err
	}
	cores, err := e.radarNexusCores(ctx, center, input.Radius)
	if err != nil {
		return nil, err
	}
	hotspots, err := e.radarHotspots(ctx, center, input.Radius)
	if err != nil {
		return nil, err
	}

	return &GetRadarSummaryOutput{Radar: &game.RadarData{
		PlayerBases: bases,
		NexusCores:  cores,
		Hotspots:    hotspots,
	}}, nil
}

func (e *Engine) radarBases(ctx context.Context, userID string, center hex.Coord, radius int64) ([]game.RadarPoint, error) {
	members, err := e.store.SetMembers(ctx, ownerTilesKey(userID))
	if err != nil {
		return nil, err
	}

	points := make([]game.RadarPoint, 0, e.rules.MaxRadarBasePoints)
	for _, member := range members {
		coord, err := parseCoordMember(member)
		if err != nil {
			continue
		}
		if hex.Distance(center, coord) > radius {
			continue
		}
		points = append(points, game.RadarPoint{Q: coord.Q, R: coord.R})
		if len(points) >= e.rules.MaxRadarBasePoints {
			break
		}
	}
	return points, nil
}

func (e *Engine) radarNexusCores(ctx context.Context, center hex.Coord, radius int64) ([]game.RadarPoint, error) {
	members, err := e.store.SetMembers(ctx, keyPOIIndex)
	if err != nil {
		return nil, err
	}

	points := make([]game.RadarPoint, 0, e.rules.MaxRadarNexusPoints)
	for _, member := range members {
		coord, err := parseCoordMember(member)
		if err != nil {
			continue
		}
		if hex.Distance(center, coord) > radius {
			continue
		}
		tile, err := e.loadTile(ctx, coord)
		if err != nil {
			return nil, err
		}
		if tile == nil || tile.Type != game.TileTypeNexus {
			continue
		}
		points = append(points, game.RadarPoint{Q: coord.Q, R: coord.R, Level: tile.Level})
		if len(points) >= e.rules.MaxRadarNexusPoints {
			break
		}
	}
	return points, nil
}

func (e *Engine) radarHotspots(ctx context.Context, center hex.Coord, radius int64) ([]game.RadarPoint, error) {
	activity, err := e.store.HashGetAll(ctx, keyChunkActivity)
	if err != nil {
		return nil, err
	}

	var points []game.RadarPoint
	for field, raw := range activity {
		chunk, err := parseChunkField(field)
		if err != nil {
			continue
		}
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || count <= 0 {
			continue
		}
		chunkCenter := hex.ChunkCenter(chunk, e.rules.ChunkSize)
		if hex.Distance(center, chunkCenter) > radius+e.rules.ChunkSize {
			continue
		}
		points = append(points, game.RadarPoint{
			Q:        chunkCenter.Q,
			R:        chunkCenter.R,
			Activity: count,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].Activity != points[j].Activity {
			return points[i].Activity > points[j].Activity
		}
		if points[i].Q != points[j].Q {
			return points[i].Q < points[j].Q
		}
		return points[i].R < points[j].R
	})
	if len(points) > e.rules.MaxRadarHotspots {
		points = points[:e.rules.MaxRadarHotspots]
	}
	return points, nil
}

// GetLeaderboard returns the top tile holders by score descending. Blank
// member ids and non-positive scores are dropped.
func (e *Engine) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit < leaderboardLimitMin {
		limit = leaderboardLimitMin
	}
	if limit > leaderboardLimitMax {
		limit = leaderboardLimitMax
	}

	members, err := e.store.ZRangeWithScores(ctx, keyLeaderboard, 0, limit-1, true)
	if err != nil {
		return nil, err
	}

	entries := make([]*game.LeaderboardEntry, 0, len(members))
	for _, m := range members {
		userID := strings.TrimSpace(m.Member)
		if userID == "" || m.Score <= 0 {
			continue
		}

		entry := &game.LeaderboardEntry{
			UserID:      userID,
			DisplayName: userID,
			Score:       int64(m.Score),
		}
		player, err := e.loadPlayer(ctx, userID)
		if err != nil {
			return nil, err
		}
		if player != nil {
			entry.DisplayName = player.DisplayName
			entry.AllianceTag = player.AllianceTag
			entry.AllianceColor = player.AllianceColor
		}
		entries = append(entries, entry)
	}
	return &GetLeaderboardOutput{Entries: entries}, nil
}
