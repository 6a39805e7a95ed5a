package snapshot

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/hexterra/world-api/internal/entities/game"
	"github.com/hexterra/world-api/internal/errors"
)

// Schema evolution is idempotent so every server start can run it. The
// statements are portable across Postgres and the sqlite driver used in
// tests.
const schema = `
CREATE TABLE IF NOT EXISTS world_tiles (
	q BIGINT NOT NULL,
	r BIGINT NOT NULL,
	owner_id TEXT NULL,
	owner_alliance_tag TEXT NULL,
	owner_alliance_color TEXT NULL,
	energy FLOAT8 NOT NULL,
	integrity FLOAT8 NOT NULL,
	level INT NOT NULL DEFAULT 1,
	tile_type TEXT NOT NULL DEFAULT 'normal',
	last_update BIGINT NOT NULL,
	PRIMARY KEY (q, r)
);
CREATE INDEX IF NOT EXISTS world_tiles_owner_id_idx ON world_tiles (owner_id);
CREATE INDEX IF NOT EXISTS world_tiles_last_update_idx ON world_tiles (last_update);
`

const upsertQuery = `
INSERT INTO world_tiles (
	q, r, owner_id, owner_alliance_tag, owner_alliance_color,
	energy, integrity, level, tile_type, last_update
) VALUES (
	:q, :r, :owner_id, :owner_alliance_tag, :owner_alliance_color,
	:energy, :integrity, :level, :tile_type, :last_update
)
ON CONFLICT (q, r) DO UPDATE SET
	owner_id = EXCLUDED.owner_id,
	owner_alliance_tag = EXCLUDED.owner_alliance_tag,
	owner_alliance_color = EXCLUDED.owner_alliance_color,
	energy = EXCLUDED.energy,
	integrity = EXCLUDED.integrity,
	level = EXCLUDED.level,
	tile_type = EXCLUDED.tile_type,
	last_update = EXCLUDED.last_update
`

type tileRow struct {
	Q                  int64          `db:"q"`
	R                  int64          `db:"r"`
	OwnerID            sql.NullString `db:"owner_id"`
	OwnerAllianceTag   sql.NullString `db:"owner_alliance_tag"`
	OwnerAllianceColor sql.NullString `db:"owner_alliance_color"`
	Energy             float64        `db:"energy"`
	Integrity          float64        `db:"integrity"`
	Level              int64          `db:"level"`
	TileType           string         `db:"tile_type"`
	LastUpdate         int64          `db:"last_update"`
}

// SQLConfig holds the configuration for the SQL sink
type SQLConfig struct {
	DB *sqlx.DB
}

// Validate ensures all required dependencies are provided
func (c *SQLConfig) Validate() error {
	if c.DB == nil {
		return errors.InvalidArgument("database handle is required")
	}
	return nil
}

type sqlSink struct {
	db *sqlx.DB
}

// NewSQL creates a SQL-backed Sink and runs the idempotent migration
func NewSQL(ctx context.Context, cfg *SQLConfig) (Sink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	if _, err := cfg.DB.ExecContext(ctx, schema); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to migrate world_tiles")
	}

	return &sqlSink{db: cfg.DB}, nil
}

// Ensure sqlSink implements Sink
var _ Sink = (*sqlSink)(nil)

// UpsertTiles writes the batch in one transaction
func (s *sqlSink) UpsertTiles(ctx context.Context, tiles []game.Tile) error {
	if len(tiles) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to begin snapshot transaction")
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareNamedContext(ctx, upsertQuery)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to prepare upsert")
	}
	defer func() { _ = stmt.Close() }()

	for i := range tiles {
		if _, err := stmt.ExecContext(ctx, rowFromTile(&tiles[i])); err != nil {
			return errors.WrapWithCodef(err, errors.CodeUnavailable,
				"failed to upsert tile (%d, %d)", tiles[i].Q, tiles[i].R)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to commit snapshot batch")
	}
	return nil
}

func rowFromTile(t *game.Tile) tileRow {
	return tileRow{
		Q:                  t.Q,
		R:                  t.R,
		OwnerID:            nullable(t.OwnerID),
		OwnerAllianceTag:   nullable(t.OwnerAllianceTag),
		OwnerAllianceColor: nullable(t.OwnerAllianceColor),
		Energy:             t.Energy,
		Integrity:          t.Integrity,
		Level:              t.Level,
		TileType:           string(t.Type),
		LastUpdate:         t.LastUpdate,
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
