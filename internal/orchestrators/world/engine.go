package world

import (
	"context"
	"strings"
	"sync"

	"github.com/hexterra/world-api/internal/entities/game"
	"github.com/hexterra/world-api/internal/errors"
	"github.com/hexterra/world-api/internal/hex"
	"github.com/hexterra/world-api/internal/persistence/kv"
	"github.com/hexterra/world-api/internal/persistence/snapshot"
	"github.com/hexterra/world-api/internal/pkg/clock"
	"github.com/hexterra/world-api/internal/pkg/idgen"
)

// coordCheckHexSize is the hex size used for the projection round-trip that
// validates incoming coordinates.
const coordCheckHexSize = 1.0

// ErrorSink receives failures from the background loops. Loops never stop
// on error; they report and run again on the next interval.
type ErrorSink func(stage string, err error)

// Config holds the dependencies for the world engine
type Config struct {
	Store kv.Store
	// Sink is optional; with no sink the snapshot loop is not started and
	// FlushSnapshot fails with a precondition error.
	Sink      snapshot.Sink
	Clock     clock.Clock
	IDGen     idgen.Generator
	ErrorSink ErrorSink
	Rules     *Rules
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}

	return vb.Build()
}

// Engine is the world-state engine. It owns every derived index in the
// store; no other writer is permitted.
type Engine struct {
	store     kv.Store
	sink      snapshot.Sink
	clock     clock.Clock
	idGen     idgen.Generator
	errorSink ErrorSink
	rules     Rules

	tileLocks   stripedLock
	playerLocks stripedLock

	loopMu            sync.Mutex
	quit              chan struct{}
	wg                sync.WaitGroup
	lastActivityDecay int64
}

// Ensure Engine implements Service
var _ Service = (*Engine)(nil)

// NewEngine creates a world engine with the provided dependencies
func NewEngine(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	rules := DefaultRules()
	if cfg.Rules != nil {
		copied := *cfg.Rules
		copied.ApplyDefaults()
		rules = &copied
	}
	if err := rules.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid rules")
	}

	return &Engine{
		store:     cfg.Store,
		sink:      cfg.Sink,
		clock:     cfg.Clock,
		idGen:     cfg.IDGen,
		errorSink: cfg.ErrorSink,
		rules:     *rules,
	}, nil
}

// Rules returns a copy of the effective gameplay tuning
func (e *Engine) Rules() Rules {
	return e.rules
}

func (e *Engine) nowMillis() int64 {
	return e.clock.Now().UnixMilli()
}

// validateUserID trims and checks a user id
func validateUserID(userID string) (string, error) {
	trimmed := strings.TrimSpace(userID)
	if trimmed == "" {
		return "", errors.InvalidArgument("user id is required")
	}
	return trimmed, nil
}

// validateCoord rejects coordinates that do not survive the pixel
// projection round-trip. Honest integer inputs always pass; the check
// guards against silent float ingestion upstream.
func validateCoord(c hex.Coord) error {
	ok, err := hex.RoundTrips(c, coordCheckHexSize)
	if err != nil {
		return err
	}
	if !ok {
		return errors.InvalidArgumentf("invalid coordinates (%d, %d)", c.Q, c.R)
	}
	return nil
}

// ctxGuard fails fast once the caller's context is done, before any further
// I/O is issued.
func ctxGuard(ctx context.Context) error {
	switch err := ctx.Err(); err {
	case nil:
		return nil
	case context.DeadlineExceeded:
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "operation timed out")
	default:
		return errors.WrapWithCode(err, errors.CodeCanceled, "operation canceled")
	}
}

// loadTile reads a tile hash; nil means the tile does not exist
func (e *Engine) loadTile(ctx context.Context, c hex.Coord) (*game.Tile, error) {
	fields, err := e.store.HashGetAll(ctx, tileKey(c))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load tile (%d, %d)", c.Q, c.R)
	}
	return tileFromHash(c, fields)
}

// writeTile persists the full tile hash
func (e *Engine) writeTile(ctx context.Context, t *game.Tile) error {
	_, err := e.store.HashSet(ctx, tileKey(hex.Coord{Q: t.Q, R: t.R}), tileFields(t))
	if err != nil {
		return errors.Wrapf(err, "failed to write tile (%d, %d)", t.Q, t.R)
	}
	return nil
}

// loadPlayer reads a player profile; nil means the player has never been
// observed
func (e *Engine) loadPlayer(ctx context.Context, userID string) (*game.PlayerProfile, error) {
	fields, err := e.store.HashGetAll(ctx, playerKey(userID))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load player %s", userID)
	}
	return playerFromHash(userID, fields)
}

// loadOrCreatePlayer reads a player profile, creating it with initial
// energy on first observation. Callers must hold the player's lock.
func (e *Engine) loadOrCreatePlayer(ctx context.Context, userID string) (*game.PlayerProfile, error) {
	player, err := e.loadPlayer(ctx, userID)
	if err != nil {
		return nil, err
	}
	if player != nil {
		return player, nil
	}

	player = &game.PlayerProfile{
		UserID:      userID,
		DisplayName: userID,
		Energy:      e.rules.InitialPlayerEnergy,
		LastUpdate:  e.nowMillis(),
	}
	if err := e.writePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// writePlayer persists the full player hash
func (e *Engine) writePlayer(ctx context.Context, p *game.PlayerProfile) error {
	_, err := e.store.HashSet(ctx, playerKey(p.UserID), playerFields(p))
	if err != nil {
		return errors.Wrapf(err, "failed to write player %s", p.UserID)
	}
	return nil
}

// writePlayerEnergy updates only the energy and last_update fields
func (e *Engine) writePlayerEnergy(ctx context.Context, userID string, energy float64, now int64) error {
	_, err := e.store.HashSet(ctx, playerKey(userID), map[string]string{
		fieldEnergy:     formatFloat(energy),
		fieldLastUpdate: formatInt(now),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to update energy for player %s", userID)
	}
	return nil
}

// adjustScore moves a leaderboard score by delta, clamping at zero
func (e *Engine) adjustScore(ctx context.Context, userID string, delta float64) error {
	score, err := e.store.ZIncrBy(ctx, keyLeaderboard, delta, userID)
	if err != nil {
		return errors.Wrapf(err, "failed to adjust score for player %s", userID)
	}
	if score < 0 {
		if _, err := e.store.ZIncrBy(ctx, keyLeaderboard, -score, userID); err != nil {
			return errors.Wrapf(err, "failed to clamp score for player %s", userID)
		}
	}
	return nil
}

// recordActivity bumps a chunk's activity counter
func (e *Engine) recordActivity(ctx context.Context, chunk hex.Coord, delta int64) error {
	_, err := e.store.HashIncrBy(ctx, keyChunkActivity, chunkField(chunk), delta)
	if err != nil {
		return errors.Wrapf(err, "failed to record activity for chunk (%d, %d)", chunk.Q, chunk.R)
	}
	return nil
}

func (e *Engine) reportError(stage string, err error) {
	if e.errorSink != nil {
		e.errorSink(stage, err)
		return
	}
	logBackgroundError(stage, err)
}
