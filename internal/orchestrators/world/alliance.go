package world

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strings"

	"github.com/hexterra/world-api/internal/errors"
	"github.com/hexterra/world-api/internal/hex"
)

var allianceTagPattern = regexp.MustCompile(`^[A-Z0-9]{3,4}$`)

// AllianceColor derives the deterministic display color for an alliance
// tag: a Java-style string hash picks the hue, rendered at HSL(h, 68%, 56%).
func AllianceColor(tag string) string {
	h := 0
	for _, r := range tag {
		h = h*31 + int(r)
	}
	hue := float64(h % 360)
	return hslToHex(hue, 0.68, 0.56)
}

func hslToHex(h, s, l float64) string {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return fmt.Sprintf("#%02X%02X%02X",
		int(math.Round((r+m)*255)),
		int(math.Round((g+m)*255)),
		int(math.Round((b+m)*255)),
	)
}

// SetAllianceTag sets or clears a player's alliance and refreshes the
// denormalized alliance snapshot on every tile the player owns.
func (e *Engine) SetAllianceTag(ctx context.Context, input *SetAllianceTagInput) (*SetAllianceTagOutput, error) {
	userID, err := validateUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	var tag, color string
	if input.Tag != nil {
		tag = strings.ToUpper(strings.TrimSpace(*input.Tag))
		if !allianceTagPattern.MatchString(tag) {
			return nil, errors.InvalidArgumentf(
				"alliance tag must be 3-4 characters of A-Z or 0-9, got %q", *input.Tag)
		}
		color = AllianceColor(tag)
	}

	if err := ctxGuard(ctx); err != nil {
		return nil, err
	}

	// The player lock is released before the tile walk: tile stripes are
	// never acquired while a player stripe is held.
	unlockPlayer := e.playerLocks.lock(playerKey(userID))
	player, err := e.loadOrCreatePlayer(ctx, userID)
	if err != nil {
		unlockPlayer()
		return nil, err
	}
	player.AllianceTag = tag
	player.AllianceColor = color
	player.LastUpdate = e.nowMillis()
	if err := e.writePlayer(ctx, player); err != nil {
		unlockPlayer()
		return nil, err
	}
	unlockPlayer()

	ownedMembers, err := e.store.SetMembers(ctx, ownerTilesKey(userID))
	if err != nil {
		return nil, err
	}

	updated := 0
	for _, member := range ownedMembers {
		coord, err := parseCoordMember(member)
		if err != nil {
			continue
		}
		changed, err := e.refreshTileAlliance(ctx, coord, userID, tag, color)
		if err != nil {
			return nil, err
		}
		if changed {
			updated++
		}
	}

	slog.Info("alliance tag set",
		"user_id", userID,
		"tag", tag,
		"tiles_updated", updated,
	)

	return &SetAllianceTagOutput{Player: player, TilesUpdated: updated}, nil
}

// refreshTileAlliance rewrites only the two alliance fields, and only while
// the tile still belongs to the player.
func (e *Engine) refreshTileAlliance(ctx context.Context, coord hex.Coord, userID, tag, color string) (bool, error) {
	unlock := e.tileLocks.lock(tileKey(coord))
	defer unlock()

	tile, err := e.loadTile(ctx, coord)
	if err != nil {
		return false, err
	}
	if tile == nil || tile.OwnerID != userID {
		return false, nil
	}
	if tile.OwnerAllianceTag == tag && tile.OwnerAllianceColor == color {
		return false, nil
	}

	_, err = e.store.HashSet(ctx, tileKey(coord), map[string]string{
		fieldAllianceTag:   tag,
		fieldAllianceColor: color,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
