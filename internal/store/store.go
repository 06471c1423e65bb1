// Package store implements the voxel store abstraction: a single
// VoxelStore contract with five interchangeable container variants that
// differ only in memory/concurrency tradeoffs, never in merge semantics
// (modulo the documented hash-2D height-mismatch quirk).
package store

import (
	"errors"

	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

// ErrOutOfRange names a coordinate outside a fixed-extent store's
// allocated bounds. No variant currently returns it: the dense variants
// silently drop an out-of-range InsertOne and return nil.
var ErrOutOfRange = errors.New("store: coordinate out of range")

// ErrResolutionMismatch is returned by Merge when the two stores were
// built at different resolutions. Resolution is a configuration property
// of a store, not a per-voxel value, so merging across resolutions is a
// configuration error to surface, not a situation to reconcile.
var ErrResolutionMismatch = errors.New("store: resolution mismatch on merge")

// PointColor pairs a coordinate with an observed color, the unit the
// builder and batch-insert operations work in.
type PointColor[P geometry.Number, C geometry.Number] struct {
	Point geometry.Point3D[P]
	Color voxel.Color[C]
}

// VoxelStore is implemented by all five container variants: a flat point
// list, a dense 3D array, a dense 2D-with-height array, and their
// concurrent hash-backed counterparts.
type VoxelStore[P geometry.Number, C geometry.Number, W geometry.UInt] interface {
	// HasBounds reports whether any voxel has been inserted yet.
	HasBounds() bool
	// GetBounds returns the current occupied axis-aligned bounds. Valid
	// is false until the first insert.
	GetBounds() geometry.Bounds3D[P]
	// GetResolution returns the store's voxel-to-world-unit scale.
	GetResolution() float64
	// GetOffset/SetOffset track a translation applied when points are
	// read back out via ToPoints.
	GetOffset() geometry.Point3D[P]
	SetOffset(geometry.Point3D[P])
	// OffsetToMin sets the offset to the current bounds' minimum corner,
	// so that ToPoints yields coordinates relative to that corner.
	OffsetToMin()
	// ToPoints flattens the store back into (point, color) pairs, with
	// the configured offset subtracted from each point.
	ToPoints() []PointColor[P, C]
	// InsertOne merges a single color observation of the given weight
	// into the voxel at p, saturating at weightMax.
	InsertOne(p geometry.Point3D[P], c voxel.Color[C], weight W, weightMax W) error
	// Insert merges a batch of (point, color) observations, each with
	// weight 1.
	Insert(points []PointColor[P, C], weightMax W) error
	// Merge folds every voxel of other into this store.
	Merge(other VoxelStore[P, C, W], weightMax W) error
	// Has reports whether a voxel exists at p.
	Has(p geometry.Point3D[P]) bool
}
