package world

import (
	"math"
	"strconv"

	"github.com/hexterra/world-api/internal/entities/game"
	"github.com/hexterra/world-api/internal/errors"
	"github.com/hexterra/world-api/internal/hex"
)

// Tile hash fields
const (
	fieldOwnerID       = "owner_id"
	fieldAllianceTag   = "owner_alliance_tag"
	fieldAllianceColor = "owner_alliance_color"
	fieldEnergy        = "energy"
	fieldIntegrity     = "integrity"
	fieldLevel         = "level"
	fieldTileType      = "tile_type"
	fieldLastUpdate    = "last_update"
)

// Player hash fields
const (
	fieldDisplayName = "display_name"
	fieldPlayerTag   = "alliance_tag"
	fieldPlayerColor = "alliance_color"
)

// round4 rounds to four decimal places. Every numeric value written to the
// store goes through it so read-back comparisons are stable.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(round4(v), 'f', -1, 64)
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func tileFields(t *game.Tile) map[string]string {
	return map[string]string{
		fieldOwnerID:       t.OwnerID,
		fieldAllianceTag:   t.OwnerAllianceTag,
		fieldAllianceColor: t.OwnerAllianceColor,
		fieldEnergy:        formatFloat(t.Energy),
		fieldIntegrity:     formatFloat(t.Integrity),
		fieldLevel:         formatInt(t.Level),
		fieldTileType:      string(t.Type),
		fieldLastUpdate:    formatInt(t.LastUpdate),
	}
}

func tileFromHash(c hex.Coord, fields map[string]string) (*game.Tile, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	energy, err := parseFloatField(fields, fieldEnergy)
	if err != nil {
		return nil, err
	}
	integrity, err := parseFloatField(fields, fieldIntegrity)
	if err != nil {
		return nil, err
	}
	level, err := parseIntField(fields, fieldLevel)
	if err != nil {
		return nil, err
	}
	lastUpdate, err := parseIntField(fields, fieldLastUpdate)
	if err != nil {
		return nil, err
	}

	tileType := game.TileType(fields[fieldTileType])
	if tileType == "" {
		tileType = game.TileTypeNormal
	}

	return &game.Tile{
		Q:                  c.Q,
		R:                  c.R,
		OwnerID:            fields[fieldOwnerID],
		OwnerAllianceTag:   fields[fieldAllianceTag],
		OwnerAllianceColor: fields[fieldAllianceColor],
		Energy:             energy,
		Integrity:          integrity,
		Level:              level,
		Type:               tileType,
		LastUpdate:         lastUpdate,
	}, nil
}

func playerFields(p *game.PlayerProfile) map[string]string {
	return map[string]string{
		fieldDisplayName: p.DisplayName,
		fieldPlayerTag:   p.AllianceTag,
		fieldPlayerColor: p.AllianceColor,
		fieldEnergy:      formatFloat(p.Energy),
		fieldLastUpdate:  formatInt(p.LastUpdate),
	}
}

func playerFromHash(userID string, fields map[string]string) (*game.PlayerProfile, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	energy, err := parseFloatField(fields, fieldEnergy)
	if err != nil {
		return nil, err
	}
	lastUpdate, err := parseIntField(fields, fieldLastUpdate)
	if err != nil {
		return nil, err
	}

	displayName := fields[fieldDisplayName]
	if displayName == "" {
		displayName = userID
	}

	return &game.PlayerProfile{
		UserID:        userID,
		DisplayName:   displayName,
		AllianceTag:   fields[fieldPlayerTag],
		AllianceColor: fields[fieldPlayerColor],
		Energy:        energy,
		LastUpdate:    lastUpdate,
	}, nil
}

func parseFloatField(fields map[string]string, name string) (float64, error) {
	raw, ok := fields[name]
	if !ok || raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Internalf("field %s holds non-numeric value %q", name, raw)
	}
	return v, nil
}

func parseIntField(fields map[string]string, name string) (int64, error) {
	raw, ok := fields[name]
	if !ok || raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Internalf("field %s holds non-integer value %q", name, raw)
	}
	return v, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
