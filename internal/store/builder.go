package store

import (
	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

// Builder accumulates points or voxels and constructs a store in one
// call, instead of requiring the caller to drive InsertOne in a loop.
// It holds (point, color) pairs only, each inserted at weight 1.
type Builder[P geometry.Number, C geometry.Number, W geometry.UInt] struct {
	points     []PointColor[P, C]
	resolution float64
}

// NewBuilder starts a fresh builder.
func NewBuilder[P geometry.Number, C geometry.Number, W geometry.UInt]() *Builder[P, C, W] {
	return &Builder[P, C, W]{}
}

// Points appends a batch of (point, color) pairs, each taken at weight 1.
func (b *Builder[P, C, W]) Points(points []PointColor[P, C]) *Builder[P, C, W] {
	b.points = append(b.points, points...)
	return b
}

// Resolution records r on the builder. BuildInto does not apply it: the
// destination store keeps the resolution it was constructed with.
func (b *Builder[P, C, W]) Resolution(r float64) *Builder[P, C, W] {
	b.resolution = r
	return b
}

// BuildInto inserts the builder's points into an already-constructed
// empty store (any VoxelStore variant), merging every accumulated point
// at weight 1. The builder keeps its points afterward.
func (b *Builder[P, C, W]) BuildInto(dst VoxelStore[P, C, W], weightMax W) error {
	return dst.Insert(b.points, weightMax)
}

// Voxel is a convenience for building a single-point builder entry from a
// raw color (weight defaults to 1 on insert).
func Voxel[P geometry.Number, C geometry.Number](p geometry.Point3D[P], c voxel.Color[C]) PointColor[P, C] {
	return PointColor[P, C]{Point: p, Color: c}
}
