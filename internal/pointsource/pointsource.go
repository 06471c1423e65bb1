// Package pointsource defines the contract a point-cloud reader must
// satisfy to feed the voxelizer, plus small pure helpers for adapting
// external formats' color representations. No concrete LAS/LAZ decoder
// lives here — that codec is out of scope.
package pointsource

import "github.com/nickglenn/voxeltiler/internal/voxel"

// Point is one colored point as read from an external source, in
// whatever world-unit coordinate system the source uses.
type Point struct {
	X, Y, Z float64
	Color   voxel.RGB
}

// Source is implemented by a point-cloud reader (LAS/LAZ, a CSV, an
// in-memory slice, ...). Next returns io.EOF-compatible false when
// exhausted.
type Source interface {
	Next() (Point, bool, error)
}

// FlattenLASColor reduces LAS's 16-bit-per-channel color to the 8-bit
// channels this system stores, via truncating integer division rather
// than rounding, matching the external format's own convention.
func FlattenLASColor(r, g, b uint16) voxel.RGB {
	return voxel.RGB{uint8(r / 256), uint8(g / 256), uint8(b / 256)}
}

// DefaultLASColor is the color assigned to a LAS point with no color
// channels present.
var DefaultLASColor = voxel.RGB{0, 0, 0}
