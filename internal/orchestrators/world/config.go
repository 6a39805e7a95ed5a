package world

import (
	"time"

	"github.com/hexterra/world-api/internal/errors"
)

// Rules holds the gameplay tuning parameters. Zero values mean "use the
// default", except IntegrityDecayPerMinute and ActivityDecayInterval, where a
// zero is kept and disables that decay; call ApplyDefaults (NewEngine does)
// before reading.
type Rules struct {
	ChunkSize int64

	MaxTileEnergy        float64
	MaxPlayerEnergy      float64
	InitialTileEnergy    float64
	InitialTileIntegrity float64
	InitialTileLevel     int64
	InitialPlayerEnergy  float64

	EnergyRechargePerSecond float64
	IntegrityDecayPerMinute float64

	FreeClaimCost              float64
	HostileClaimCostMultiplier float64
	RepairCostEnergy           float64
	RepairIntegrityGain        float64
	MaxClaimDistanceFromOwned  int64

	AllianceNeighborBonusMultiplier float64

	MaxLeaderboardEntries int64
	MaxRadarNexusPoints   int
	MaxRadarBasePoints    int
	MaxRadarHotspots      int

	RechargeInterval  time.Duration
	SnapshotInterval  time.Duration
	SnapshotBatchSize int

	// ActivityDecayInterval is how often the recharge tick halves every
	// chunk's activity counter and drops the ones that reach zero, keeping
	// the activity hash bounded. Zero disables decay.
	ActivityDecayInterval time.Duration
}

// DefaultRules returns the standard gameplay tuning
func DefaultRules() *Rules {
	return &Rules{
		ChunkSize:                       64,
		MaxTileEnergy:                   100,
		MaxPlayerEnergy:                 1000,
		InitialTileEnergy:               100,
		InitialTileIntegrity:            100,
		InitialTileLevel:                1,
		InitialPlayerEnergy:             100,
		EnergyRechargePerSecond:         1,
		IntegrityDecayPerMinute:         1,
		FreeClaimCost:                   10,
		HostileClaimCostMultiplier:      50,
		RepairCostEnergy:                5,
		RepairIntegrityGain:             20,
		MaxClaimDistanceFromOwned:       8,
		AllianceNeighborBonusMultiplier: 1.05,
		MaxLeaderboardEntries:           10,
		MaxRadarNexusPoints:             64,
		MaxRadarBasePoints:              64,
		MaxRadarHotspots:                32,
		RechargeInterval:                time.Second,
		SnapshotInterval:                5 * time.Minute,
		SnapshotBatchSize:               1000,
		ActivityDecayInterval:           10 * time.Minute,
	}
}

// ApplyDefaults fills zero-valued fields from DefaultRules
func (r *Rules) ApplyDefaults() {
	d := DefaultRules()
	if r.ChunkSize == 0 {
		r.ChunkSize = d.ChunkSize
	}
	if r.MaxTileEnergy == 0 {
		r.MaxTileEnergy = d.MaxTileEnergy
	}
	if r.MaxPlayerEnergy == 0 {
		r.MaxPlayerEnergy = d.MaxPlayerEnergy
	}
	if r.InitialTileEnergy == 0 {
		r.InitialTileEnergy = d.InitialTileEnergy
	}
	if r.InitialTileIntegrity == 0 {
		r.InitialTileIntegrity = d.InitialTileIntegrity
	}
	if r.InitialTileLevel == 0 {
		r.InitialTileLevel = d.InitialTileLevel
	}
	if r.InitialPlayerEnergy == 0 {
		r.InitialPlayerEnergy = d.InitialPlayerEnergy
	}
	if r.EnergyRechargePerSecond == 0 {
		r.EnergyRechargePerSecond = d.EnergyRechargePerSecond
	}
	if r.FreeClaimCost == 0 {
		r.FreeClaimCost = d.FreeClaimCost
	}
	if r.HostileClaimCostMultiplier == 0 {
		r.HostileClaimCostMultiplier = d.HostileClaimCostMultiplier
	}
	if r.RepairCostEnergy == 0 {
		r.RepairCostEnergy = d.RepairCostEnergy
	}
	if r.RepairIntegrityGain == 0 {
		r.RepairIntegrityGain = d.RepairIntegrityGain
	}
	if r.MaxClaimDistanceFromOwned == 0 {
		r.MaxClaimDistanceFromOwned = d.MaxClaimDistanceFromOwned
	}
	if r.AllianceNeighborBonusMultiplier == 0 {
		r.AllianceNeighborBonusMultiplier = d.AllianceNeighborBonusMultiplier
	}
	if r.MaxLeaderboardEntries == 0 {
		r.MaxLeaderboardEntries = d.MaxLeaderboardEntries
	}
	if r.MaxRadarNexusPoints == 0 {
		r.MaxRadarNexusPoints = d.MaxRadarNexusPoints
	}
	if r.MaxRadarBasePoints == 0 {
		r.MaxRadarBasePoints = d.MaxRadarBasePoints
	}
	if r.MaxRadarHotspots == 0 {
		r.MaxRadarHotspots = d.MaxRadarHotspots
	}
	if r.RechargeInterval == 0 {
		r.RechargeInterval = d.RechargeInterval
	}
	if r.SnapshotInterval == 0 {
		r.SnapshotInterval = d.SnapshotInterval
	}
	if r.SnapshotBatchSize == 0 {
		r.SnapshotBatchSize = d.SnapshotBatchSize
	}
	// IntegrityDecayPerMinute and ActivityDecayInterval keep explicit
	// zeroes: zero decay and disabled activity decay are valid settings.
}

// Validate checks structural constraints
func (r *Rules) Validate() error {
	vb := errors.NewValidationBuilder()

	if r.ChunkSize <= 0 {
		vb.InvalidField("ChunkSize", "must be positive")
	}
	if r.SnapshotBatchSize <= 0 {
		vb.InvalidField("SnapshotBatchSize", "must be positive")
	}
	if r.IntegrityDecayPerMinute < 0 {
		vb.InvalidField("IntegrityDecayPerMinute", "must not be negative")
	}
	if r.MaxClaimDistanceFromOwned < 0 {
		vb.InvalidField("MaxClaimDistanceFromOwned", "must not be negative")
	}

	return vb.Build()
}
