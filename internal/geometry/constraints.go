// Package geometry provides the generic numeric constraints, point types,
// and axis-aligned bounds shared by the voxel store, voxelizer, and mesher
// packages.
package geometry

import "golang.org/x/exp/constraints"

// Number is any type that can be added, subtracted, and compared, the
// lowest common capability required of a voxel coordinate or color
// channel.
type Number interface {
	constraints.Integer | constraints.Float
}

// Int is any signed or unsigned integer type, used for voxel grid
// coordinates and weight/pool channels.
type Int interface {
	constraints.Integer
}

// UInt is any unsigned integer type, used for voxel weight channels where
// saturation must be well defined (no negative excursion).
type UInt interface {
	constraints.Unsigned
}
