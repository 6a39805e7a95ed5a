// Package hex implements axial coordinate math for a pointy-top hexagonal
// grid: distance, neighbor enumeration, pixel projection with cube rounding,
// and the chunk bucketing used by the spatial indices.
package hex

import (
	"math"

	"github.com/hexterra/world-api/internal/errors"
)

// Coord is an axial hex coordinate. The third cube axis is implicit:
// s = -q - r.
type Coord struct {
	Q int64
	R int64
}

// neighborOffsets are the six axial unit vectors, clockwise from east.
var neighborOffsets = [6]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent coordinates
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i, d := range neighborOffsets {
		out[i] = Coord{Q: c.Q + d.Q, R: c.R + d.R}
	}
	return out
}

// Distance returns the hex distance between a and b
func Distance(a, b Coord) int64 {
	dq := a.Q - b.Q
	dr := a.R - b.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// ToPixel projects an axial coordinate to pixel space for hexes of the given
// size (center-to-corner).
func ToPixel(c Coord, size float64) (x, y float64, err error) {
	if err := validateSize(size); err != nil {
		return 0, 0, err
	}
	q := float64(c.Q)
	r := float64(c.R)
	x = size * math.Sqrt(3) * (q + r/2)
	y = size * 1.5 * r
	return x, y, nil
}

// FromPixel inverts ToPixel, rounding to the nearest hex via cube rounding
func FromPixel(x, y, size float64) (Coord, error) {
	if err := validateSize(size); err != nil {
		return Coord{}, err
	}
	q := (math.Sqrt(3)/3*x - y/3) / size
	r := (2.0 / 3.0 * y) / size
	return cubeRound(q, r), nil
}

// RoundTrips reports whether projecting c to pixel space and back recovers c
// exactly. Redundant for honest integer inputs, but it guards the engine
// against silent float ingestion at the API edge.
func RoundTrips(c Coord, size float64) (bool, error) {
	x, y, err := ToPixel(c, size)
	if err != nil {
		return false, err
	}
	back, err := FromPixel(x, y, size)
	if err != nil {
		return false, err
	}
	return back == c, nil
}

// ChunkOf returns the chunk bucket containing c. Chunk indices floor-divide
// each axis independently, so negative coordinates bucket correctly.
func ChunkOf(c Coord, chunkSize int64) Coord {
	return Coord{
		Q: floorDiv(c.Q, chunkSize),
		R: floorDiv(c.R, chunkSize),
	}
}

// ChunkCenter returns the representative center coordinate of a chunk
func ChunkCenter(chunk Coord, chunkSize int64) Coord {
	return Coord{
		Q: chunk.Q*chunkSize + chunkSize/2,
		R: chunk.R*chunkSize + chunkSize/2,
	}
}

func validateSize(size float64) error {
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return errors.InvalidArgumentf("hex size must be finite and positive, got %v", size)
	}
	return nil
}

func cubeRound(q, r float64) Coord {
	// Cube coordinates: x = q, z = r, y = -x - z.
	x, z := q, r
	y := -x - z

	rx := math.Round(x)
	ry := math.Round(y)
	rz := math.Round(z)

	dx := math.Abs(rx - x)
	dy := math.Abs(ry - y)
	dz := math.Abs(rz - z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}

	return Coord{Q: int64(rx), R: int64(rz)}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
