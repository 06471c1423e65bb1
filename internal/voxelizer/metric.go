// Package voxelizer assigns points to voxel cells, in either metric
// (fixed world-unit resolution) or tiled (Web-Mercator pixel) mode, and
// hands the populated store off to the mesher.
package voxelizer

import (
	"math"

	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/store"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

// MetricVoxelizer assigns points given in world units to integer voxel
// cells at a fixed resolution (world units per cell), inserting each into
// the backing store at weight 1.
type MetricVoxelizer[C geometry.Number, W geometry.UInt] struct {
	resolution float64
	weightMax  W
	store      store.VoxelStore[int, C, W]
	offset     Offset
}

// NewMetricVoxelizer wraps an already-constructed (and typically empty)
// store with the metric cell-assignment rule.
func NewMetricVoxelizer[C geometry.Number, W geometry.UInt](resolution float64, weightMax W, s store.VoxelStore[int, C, W], offset Offset) *MetricVoxelizer[C, W] {
	return &MetricVoxelizer[C, W]{resolution: resolution, weightMax: weightMax, store: s, offset: offset}
}

// cellOf converts a world-unit coordinate to its containing voxel index:
// floor(coord / resolution).
func (v *MetricVoxelizer[C, W]) cellOf(x, y, z float64) geometry.Point3D[int] {
	return geometry.Point3D[int]{
		int(math.Floor(x / v.resolution)),
		int(math.Floor(y / v.resolution)),
		int(math.Floor(z / v.resolution)),
	}
}

// InsertPoint voxelizes one colored point.
func (v *MetricVoxelizer[C, W]) InsertPoint(x, y, z float64, c voxel.Color[C]) error {
	return v.store.InsertOne(v.cellOf(x, y, z), c, 1, v.weightMax)
}

// Finish applies the configured Offset rule and returns the populated
// store, ready for meshing.
func (v *MetricVoxelizer[C, W]) Finish() store.VoxelStore[int, C, W] {
	applyOffset(v.store, v.offset)
	return v.store
}
