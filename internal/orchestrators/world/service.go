// Package world implements the authoritative world-state engine: claim and
// repair transactions, nexus registration, alliances, spatial queries, the
// radar and leaderboard read models, and the two background loops (recharge
// tick and snapshot flush).
package world

import (
	"context"

	"github.com/hexterra/world-api/internal/entities/game"
)

//go:generate mockgen -destination=mock/mock_service.go -package=worldmock github.com/hexterra/world-api/internal/orchestrators/world Service

// ActionStatus tags the outcome of a claim or repair. Rule failures are
// values on the success path, not errors.
type ActionStatus string

// Action statuses
const (
	StatusOK                 ActionStatus = "ok"
	StatusOutOfRange         ActionStatus = "out_of_range"
	StatusInsufficientEnergy ActionStatus = "insufficient_energy"
	StatusTileNotFound       ActionStatus = "tile_not_found"
	StatusNotOwner           ActionStatus = "not_owner"
)

// Service defines the world engine operations. Errors are reserved for
// invalid arguments, store I/O failures, and cancellation; every gameplay
// outcome is reported through the output's Status.
type Service interface {
	ClaimTile(ctx context.Context, input *ClaimTileInput) (*ClaimTileOutput, error)
	RepairTile(ctx context.Context, input *RepairTileInput) (*RepairTileOutput, error)
	RegisterNexus(ctx context.Context, input *RegisterNexusInput) (*RegisterNexusOutput, error)
	SetAllianceTag(ctx context.Context, input *SetAllianceTagInput) (*SetAllianceTagOutput, error)

	GetTile(ctx context.Context, input *GetTileInput) (*GetTileOutput, error)
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)
	GetTilesInRange(ctx context.Context, input *GetTilesInRangeInput) (*GetTilesInRangeOutput, error)
	GetRadarSummary(ctx context.Context, input *GetRadarSummaryInput) (*GetRadarSummaryOutput, error)
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	RunRechargeTick(ctx context.Context, input *RechargeTickInput) (*RechargeTickOutput, error)
	FlushSnapshot(ctx context.Context, input *FlushSnapshotInput) (*FlushSnapshotOutput, error)
}

// ClaimTileInput contains parameters for claiming a tile
type ClaimTileInput struct {
	UserID string
	Q      int64
	R      int64
}

// ClaimTileOutput reports the claim outcome. ChunkQ/ChunkR and EventID are
// for the transport layer's room fan-out.
type ClaimTileOutput struct {
	Status   ActionStatus
	Created  bool
	Captured bool
	Tile     *game.Tile

	EnergyCost  float64
	EnergyAfter float64

	// Populated on StatusOutOfRange.
	NearestDistance *int64
	MaxDistance     int64

	// Populated on StatusInsufficientEnergy.
	RequiredEnergy float64
	PlayerEnergy   float64

	ChunkQ  int64
	ChunkR  int64
	EventID string
}

// OK reports whether the claim succeeded
func (o *ClaimTileOutput) OK() bool {
	return o.Status == StatusOK
}

// RepairTileInput contains parameters for repairing a tile
type RepairTileInput struct {
	UserID string
	Q      int64
	R      int64
}

// RepairTileOutput reports the repair outcome
type RepairTileOutput struct {
	Status ActionStatus
	Tile   *game.Tile

	EnergyCost  float64
	EnergyAfter float64

	// Populated on StatusInsufficientEnergy.
	RequiredEnergy float64
	PlayerEnergy   float64

	ChunkQ  int64
	ChunkR  int64
	EventID string
}

// OK reports whether the repair succeeded
func (o *RepairTileOutput) OK() bool {
	return o.Status == StatusOK
}

// RegisterNexusInput contains parameters for creating or upgrading a nexus
type RegisterNexusInput struct {
	Q     int64
	R     int64
	Level int64
}

// RegisterNexusOutput carries the resulting nexus tile
type RegisterNexusOutput struct {
	Tile    *game.Tile
	Created bool
}

// SetAllianceTagInput sets or clears a player's alliance tag. A nil Tag
// leaves the alliance.
type SetAllianceTagInput struct {
	UserID string
	Tag    *string
}

// SetAllianceTagOutput carries the updated profile and how many of the
// player's tiles had their alliance snapshot refreshed
type SetAllianceTagOutput struct {
	Player       *game.PlayerProfile
	TilesUpdated int
}

// GetTileInput identifies a tile
type GetTileInput struct {
	Q int64
	R int64
}

// GetTileOutput carries the tile
type GetTileOutput struct {
	Tile *game.Tile
}

// GetPlayerInput identifies a player
type GetPlayerInput struct {
	UserID string
}

// GetPlayerOutput carries the profile; the player is created with initial
// energy if this is the first observation
type GetPlayerOutput struct {
	Player *game.PlayerProfile
}

// GetTilesInRangeInput is a viewport query around a center coordinate
type GetTilesInRangeInput struct {
	CenterQ int64
	CenterR int64
	Radius  int64
}

// GetTilesInRangeOutput lists tiles sorted by (distance, q, r)
type GetTilesInRangeOutput struct {
	Tiles []*game.Tile
}

// GetRadarSummaryInput is a radar query for a player
type GetRadarSummaryInput struct {
	UserID  string
	CenterQ int64
	CenterR int64
	Radius  int64
}

// GetRadarSummaryOutput carries the three radar layers
type GetRadarSummaryOutput struct {
	Radar *game.RadarData
}

// GetLeaderboardInput requests the top tile holders. Limit is clamped to
// [1, 100].
type GetLeaderboardInput struct {
	Limit int64
}

// GetLeaderboardOutput lists leaderboard entries in score order
type GetLeaderboardOutput struct {
	Entries []*game.LeaderboardEntry
}

// RechargeTickInput drives one simulation sweep. Now is wall-clock
// milliseconds; zero means the engine's clock.
type RechargeTickInput struct {
	Now int64
}

// RechargeTickOutput summarizes a sweep
type RechargeTickOutput struct {
	TilesScanned    int
	TilesUpdated    int
	OwnersCredited  int
	EnergyGenerated float64
	ChunksDecayed   int
}

// FlushSnapshotInput triggers a snapshot flush
type FlushSnapshotInput struct{}

// FlushSnapshotOutput reports how many tiles were persisted
type FlushSnapshotOutput struct {
	TilesPersisted int
}
