package store

import (
	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

type column2d[C geometry.Int, W geometry.UInt, CP geometry.Int] struct {
	height int
	voxel  voxel.Voxel[C, W, CP]
}

// DenseStore2D is a fixed-extent dense array over the (x, y) plane where
// each column stores a single (height, voxel) pair rather than a full
// z-column. Inserting at a height that differs from the column's current
// height replaces the column outright (including its weight), unlike the
// hash-backed 2D variant which silently ignores a height mismatch.
//
// origin is the (x, y) world coordinate mapped to array index 0. It only
// moves when Merge grows the backing array to absorb a source column
// outside the current (x, y) extent.
type DenseStore2D[C geometry.Int, W geometry.UInt, CP geometry.Int] struct {
	resolution float64
	offset     geometry.Point3D[int]
	origin     geometry.Point2D[int]
	bounds     geometry.Bounds3D[int]
	boundsZOK  bool
	counts     [2]int
	cols       []column2d[C, W, CP]
	occupied   []bool
}

// NewDenseStore2D allocates a dense column grid spanning counts[0]*counts[1]
// columns at the given resolution.
func NewDenseStore2D[C geometry.Int, W geometry.UInt, CP geometry.Int](counts [2]int, resolution float64) *DenseStore2D[C, W, CP] {
	n := counts[0] * counts[1]
	return &DenseStore2D[C, W, CP]{
		resolution: resolution,
		counts:     counts,
		cols:       make([]column2d[C, W, CP], n),
		occupied:   make([]bool, n),
	}
}

func (ds *DenseStore2D[C, W, CP]) index(p geometry.Point2D[int]) (int, bool) {
	x, y := p[0]-ds.origin[0], p[1]-ds.origin[1]
	w, h := ds.counts[0], ds.counts[1]
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0, false
	}
	return (w * y) + x, true
}

// growToInclude reallocates the column grid so that p2 falls within its
// (x, y) extent, remapping every previously occupied column. Only called
// from Merge.
func (ds *DenseStore2D[C, W, CP]) growToInclude(p2 geometry.Point2D[int]) {
	newMin := geometry.Point2D[int]{min(ds.origin[0], p2[0]), min(ds.origin[1], p2[1])}
	newMax := geometry.Point2D[int]{
		max(ds.origin[0]+ds.counts[0]-1, p2[0]),
		max(ds.origin[1]+ds.counts[1]-1, p2[1]),
	}
	newCounts := [2]int{newMax[0] - newMin[0] + 1, newMax[1] - newMin[1] + 1}

	n := newCounts[0] * newCounts[1]
	newCols := make([]column2d[C, W, CP], n)
	newOccupied := make([]bool, n)

	w, h := ds.counts[0], ds.counts[1]
	nw := newCounts[0]
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (w * y) + x
			if !ds.occupied[i] {
				continue
			}
			nx := x + ds.origin[0] - newMin[0]
			ny := y + ds.origin[1] - newMin[1]
			ni := (nw * ny) + nx
			newCols[ni] = ds.cols[i]
			newOccupied[ni] = true
		}
	}

	ds.cols = newCols
	ds.occupied = newOccupied
	ds.counts = newCounts
	ds.origin = newMin
}

func (ds *DenseStore2D[C, W, CP]) HasBounds() bool                   { return ds.GetBounds().Valid }
func (ds *DenseStore2D[C, W, CP]) GetResolution() float64            { return ds.resolution }
func (ds *DenseStore2D[C, W, CP]) GetOffset() geometry.Point3D[int]  { return ds.offset }
func (ds *DenseStore2D[C, W, CP]) SetOffset(o geometry.Point3D[int]) { ds.offset = o }
func (ds *DenseStore2D[C, W, CP]) OffsetToMin() {
	if b := ds.GetBounds(); b.Valid {
		ds.offset = b.Min
	}
}

// GetBounds recomputes the bounds lazily by scanning occupied columns
// whenever an insert has invalidated them (every InsertOne does), mirroring the
// hash/dense-2D collection's lazy bounds_z recompute.
func (ds *DenseStore2D[C, W, CP]) GetBounds() geometry.Bounds3D[int] {
	if !ds.boundsZOK {
		ds.recomputeZBounds()
	}
	return ds.bounds
}

func (ds *DenseStore2D[C, W, CP]) recomputeZBounds() {
	var b geometry.Bounds3D[int]
	w, h := ds.counts[0], ds.counts[1]
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (w * y) + x
			if !ds.occupied[i] || ds.cols[i].voxel.Weight == 0 {
				continue
			}
			b.Extend(geometry.Point3D[int]{x + ds.origin[0], y + ds.origin[1], ds.cols[i].height})
		}
	}
	ds.bounds = b
	ds.boundsZOK = true
}

func (ds *DenseStore2D[C, W, CP]) Has(p geometry.Point3D[int]) bool {
	i, ok := ds.index(p.To2D())
	return ok && ds.occupied[i] && ds.cols[i].height == p[2]
}

func (ds *DenseStore2D[C, W, CP]) InsertOne(p geometry.Point3D[int], c voxel.Color[C], weight W, weightMax W) error {
	i, ok := ds.index(p.To2D())
	if !ok {
		return nil
	}
	switch {
	case !ds.occupied[i]:
		ds.cols[i] = column2d[C, W, CP]{height: p[2], voxel: voxel.New[C, W, CP](c)}
		ds.occupied[i] = true
	case ds.cols[i].height == p[2]:
		ds.cols[i].voxel = ds.cols[i].voxel.Add(c, weight, weightMax)
	default:
		// Height mismatch: the dense variant replaces the column
		// outright, including its weight.
		ds.cols[i] = column2d[C, W, CP]{height: p[2], voxel: voxel.New[C, W, CP](c)}
	}
	ds.boundsZOK = false
	return nil
}

func (ds *DenseStore2D[C, W, CP]) Insert(points []PointColor[int, C], weightMax W) error {
	for _, pt := range points {
		_ = ds.InsertOne(pt.Point, pt.Color, 1, weightMax)
	}
	return nil
}

// Merge folds every voxel of other into ds, growing the (x, y) extent as
// needed so every contributing column is preserved.
func (ds *DenseStore2D[C, W, CP]) Merge(other VoxelStore[int, C, W], weightMax W) error {
	if other.GetResolution() != ds.resolution {
		return ErrResolutionMismatch
	}
	for _, pt := range other.ToPoints() {
		p2 := pt.Point.To2D()
		if _, ok := ds.index(p2); !ok {
			ds.growToInclude(p2)
		}
		_ = ds.InsertOne(pt.Point, pt.Color, 1, weightMax)
	}
	return nil
}

func (ds *DenseStore2D[C, W, CP]) ToPoints() []PointColor[int, C] {
	var out []PointColor[int, C]
	w, h := ds.counts[0], ds.counts[1]
	off := ds.offset
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (w * y) + x
			if !ds.occupied[i] {
				continue
			}
			p := geometry.Point3D[int]{x + ds.origin[0] - off[0], y + ds.origin[1] - off[1], ds.cols[i].height - off[2]}
			out = append(out, PointColor[int, C]{Point: p, Color: ds.cols[i].voxel.Color()})
		}
	}
	return out
}
