package world

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hexterra/world-api/internal/errors"
	"github.com/hexterra/world-api/internal/hex"
)

// Key layout. The tile hash is the authoritative record; everything else is
// a derived index owned exclusively by this engine.
const (
	keyTilesIndex    = "tiles:index"
	keyPOIIndex      = "poi:index"
	keyLeaderboard   = "leaderboard:tiles"
	keyChunkActivity = "chunk:activity"

	tileKeyPrefix   = "tile:"
	playerKeyPrefix = "player:"
)

func tileKey(c hex.Coord) string {
	return fmt.Sprintf("%s%d:%d", tileKeyPrefix, c.Q, c.R)
}

func playerKey(userID string) string {
	return playerKeyPrefix + userID
}

func chunkTilesKey(chunk hex.Coord) string {
	return fmt.Sprintf("chunk:%d:%d:tiles", chunk.Q, chunk.R)
}

func ownerTilesKey(userID string) string {
	return fmt.Sprintf("owner:%s:tiles", userID)
}

// coordMember encodes a coordinate as a set member, "q:r"
func coordMember(c hex.Coord) string {
	return fmt.Sprintf("%d:%d", c.Q, c.R)
}

// parseCoordMember inverts coordMember
func parseCoordMember(member string) (hex.Coord, error) {
	parts := strings.Split(member, ":")
	if len(parts) != 2 {
		return hex.Coord{}, errors.Internalf("malformed coordinate member %q", member)
	}
	q, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return hex.Coord{}, errors.Internalf("malformed coordinate member %q", member)
	}
	r, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return hex.Coord{}, errors.Internalf("malformed coordinate member %q", member)
	}
	return hex.Coord{Q: q, R: r}, nil
}

// chunkField encodes a chunk id as an activity-hash field, "cq:cr"
func chunkField(chunk hex.Coord) string {
	return fmt.Sprintf("%d:%d", chunk.Q, chunk.R)
}

func parseChunkField(field string) (hex.Coord, error) {
	return parseCoordMember(field)
}
