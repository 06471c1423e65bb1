package store

import (
	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

// DenseStore3D is a fixed-extent dense 3D array of voxels, addressed by
// integer coordinate via a flat slice index, generalized from the
// teacher's own VoxelGrid. Unlike the teacher, an out-of-range insert is
// silently dropped rather than panicking: a store variant represents
// attacker-controlled point-cloud data, not a programmer contract.
//
// origin is the world coordinate mapped to array index 0 on every axis.
// It is zero for a freshly allocated store and only moves when Merge
// grows the backing array to absorb a source point outside the current
// extent — ordinary InsertOne calls never relocate it.
type DenseStore3D[C geometry.Int, W geometry.UInt, CP geometry.Int] struct {
	resolution float64
	offset     geometry.Point3D[int]
	origin     geometry.Point3D[int]
	bounds     geometry.Bounds3D[int]
	counts     [3]int
	cells      []voxel.Voxel[C, W, CP]
	occupied   []bool
}

// NewDenseStore3D allocates a dense grid spanning counts[0]*counts[1]*counts[2]
// cells at the given resolution.
func NewDenseStore3D[C geometry.Int, W geometry.UInt, CP geometry.Int](counts [3]int, resolution float64) *DenseStore3D[C, W, CP] {
	n := counts[0] * counts[1] * counts[2]
	return &DenseStore3D[C, W, CP]{
		resolution: resolution,
		counts:     counts,
		cells:      make([]voxel.Voxel[C, W, CP], n),
		occupied:   make([]bool, n),
	}
}

func (ds *DenseStore3D[C, W, CP]) index(p geometry.Point3D[int]) (int, bool) {
	x, y, z := p[0]-ds.origin[0], p[1]-ds.origin[1], p[2]-ds.origin[2]
	w, h, d := ds.counts[0], ds.counts[1], ds.counts[2]
	if x < 0 || y < 0 || z < 0 || x >= w || y >= h || z >= d {
		return 0, false
	}
	return (w*h*z)+(w*y)+x, true
}

// growToInclude reallocates the backing array so that p falls within its
// extent, remapping every previously occupied cell into its new
// position. This is only ever called from Merge: InsertOne keeps the
// dense store's ordinary fixed-extent, silent-drop contract.
func (ds *DenseStore3D[C, W, CP]) growToInclude(p geometry.Point3D[int]) {
	newMin := geometry.Point3D[int]{
		min(ds.origin[0], p[0]),
		min(ds.origin[1], p[1]),
		min(ds.origin[2], p[2]),
	}
	newMax := geometry.Point3D[int]{
		max(ds.origin[0]+ds.counts[0]-1, p[0]),
		max(ds.origin[1]+ds.counts[1]-1, p[1]),
		max(ds.origin[2]+ds.counts[2]-1, p[2]),
	}
	newCounts := [3]int{
		newMax[0] - newMin[0] + 1,
		newMax[1] - newMin[1] + 1,
		newMax[2] - newMin[2] + 1,
	}

	n := newCounts[0] * newCounts[1] * newCounts[2]
	newCells := make([]voxel.Voxel[C, W, CP], n)
	newOccupied := make([]bool, n)

	w, h, d := ds.counts[0], ds.counts[1], ds.counts[2]
	nw, nh := newCounts[0], newCounts[1]
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := (w*h*z)+(w*y)+x
				if !ds.occupied[i] {
					continue
				}
				nx := x + ds.origin[0] - newMin[0]
				ny := y + ds.origin[1] - newMin[1]
				nz := z + ds.origin[2] - newMin[2]
				ni := (nw*nh*nz)+(nw*ny)+nx
				newCells[ni] = ds.cells[i]
				newOccupied[ni] = true
			}
		}
	}

	ds.cells = newCells
	ds.occupied = newOccupied
	ds.counts = newCounts
	ds.origin = newMin
}

func (ds *DenseStore3D[C, W, CP]) HasBounds() bool                   { return ds.bounds.Valid }
func (ds *DenseStore3D[C, W, CP]) GetBounds() geometry.Bounds3D[int] { return ds.bounds }
func (ds *DenseStore3D[C, W, CP]) GetResolution() float64            { return ds.resolution }
func (ds *DenseStore3D[C, W, CP]) GetOffset() geometry.Point3D[int]  { return ds.offset }
func (ds *DenseStore3D[C, W, CP]) SetOffset(o geometry.Point3D[int]) { ds.offset = o }
func (ds *DenseStore3D[C, W, CP]) OffsetToMin() {
	if ds.bounds.Valid {
		ds.offset = ds.bounds.Min
	}
}

func (ds *DenseStore3D[C, W, CP]) Has(p geometry.Point3D[int]) bool {
	i, ok := ds.index(p)
	return ok && ds.occupied[i]
}

func (ds *DenseStore3D[C, W, CP]) InsertOne(p geometry.Point3D[int], c voxel.Color[C], weight W, weightMax W) error {
	i, ok := ds.index(p)
	if !ok {
		// Out-of-range inserts are silently dropped, matching the
		// dense store's fixed-extent contract.
		return nil
	}
	if ds.occupied[i] {
		ds.cells[i] = ds.cells[i].Add(c, weight, weightMax)
	} else {
		ds.cells[i] = voxel.New[C, W, CP](c)
		ds.occupied[i] = true
	}
	ds.bounds.Extend(p)
	return nil
}

func (ds *DenseStore3D[C, W, CP]) Insert(points []PointColor[int, C], weightMax W) error {
	for _, pt := range points {
		_ = ds.InsertOne(pt.Point, pt.Color, 1, weightMax)
	}
	return nil
}

// Merge folds every voxel of other into ds, growing the backing array as
// needed so that every contributing point is preserved, per the dense
// variant's merge contract.
func (ds *DenseStore3D[C, W, CP]) Merge(other VoxelStore[int, C, W], weightMax W) error {
	if other.GetResolution() != ds.resolution {
		return ErrResolutionMismatch
	}
	for _, pt := range other.ToPoints() {
		if _, ok := ds.index(pt.Point); !ok {
			ds.growToInclude(pt.Point)
		}
		_ = ds.InsertOne(pt.Point, pt.Color, 1, weightMax)
	}
	return nil
}

func (ds *DenseStore3D[C, W, CP]) ToPoints() []PointColor[int, C] {
	var out []PointColor[int, C]
	w, h, d := ds.counts[0], ds.counts[1], ds.counts[2]
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := (w*h*z)+(w*y)+x
				if !ds.occupied[i] {
					continue
				}
				p := geometry.Point3D[int]{x + ds.origin[0], y + ds.origin[1], z + ds.origin[2]}
				for k := 0; k < 3; k++ {
					p[k] -= ds.offset[k]
				}
				out = append(out, PointColor[int, C]{Point: p, Color: ds.cells[i].Color()})
			}
		}
	}
	return out
}
