// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/hexterra/world-api/internal/pkg/idgen Generator

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// PrefixedGenerator generates IDs with a specific prefix, e.g. "evt_<uuid>"
// for the event ids stamped onto mutation results.
type PrefixedGenerator struct {
	prefix string
}

// NewPrefixed creates a new generator with the given prefix
func NewPrefixed(prefix string) *PrefixedGenerator {
	return &PrefixedGenerator{prefix: prefix}
}

// Generate creates a new ID with the format: prefix_uuid
func (g *PrefixedGenerator) Generate() string {
	return fmt.Sprintf("%s_%s", g.prefix, uuid.NewString())
}

// UUIDGenerator generates bare UUIDs
type UUIDGenerator struct{}

// Generate creates a new UUID string
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
