package game

// PlayerProfile is the per-player record. Players are created lazily on
// first observation with the configured initial energy.
type PlayerProfile struct {
	UserID      string
	DisplayName string

	// AllianceTag is empty or 3-4 uppercase alphanumerics. AllianceColor is
	// empty iff the tag is empty; otherwise the deterministic #RRGGBB color
	// derived from the tag.
	AllianceTag   string
	AllianceColor string

	// Energy is in [0, maxPlayerEnergy].
	Energy float64

	// LastUpdate is wall-clock milliseconds.
	LastUpdate int64
}

// InAlliance reports whether the player currently carries an alliance tag
func (p *PlayerProfile) InAlliance() bool {
	return p.AllianceTag != ""
}
