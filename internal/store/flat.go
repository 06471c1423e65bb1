package store

import (
	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

// cell is one occupied voxel tracked by the flat variant.
type cell[P geometry.Number, C geometry.Int, W geometry.UInt, CP geometry.Int] struct {
	point geometry.Point3D[P]
	voxel voxel.Voxel[C, W, CP]
}

// PointCloud is the flat-list store variant: a simple slice of occupied
// cells in first-insert order, with a map from coordinate to slice
// position for lookup and merge. It has no fixed extent and never
// rejects an insert.
type PointCloud[P geometry.Number, C geometry.Int, W geometry.UInt, CP geometry.Int] struct {
	resolution float64
	offset     geometry.Point3D[P]
	bounds     geometry.Bounds3D[P]
	cells      []cell[P, C, W, CP]
	index      map[geometry.Point3D[P]]int
}

// NewPointCloud returns an empty flat-list store at the given resolution.
func NewPointCloud[P geometry.Number, C geometry.Int, W geometry.UInt, CP geometry.Int](resolution float64) *PointCloud[P, C, W, CP] {
	return &PointCloud[P, C, W, CP]{
		resolution: resolution,
		index:      make(map[geometry.Point3D[P]]int),
	}
}

func (pc *PointCloud[P, C, W, CP]) HasBounds() bool                 { return pc.bounds.Valid }
func (pc *PointCloud[P, C, W, CP]) GetBounds() geometry.Bounds3D[P] { return pc.bounds }
func (pc *PointCloud[P, C, W, CP]) GetResolution() float64          { return pc.resolution }
func (pc *PointCloud[P, C, W, CP]) GetOffset() geometry.Point3D[P]  { return pc.offset }
func (pc *PointCloud[P, C, W, CP]) SetOffset(o geometry.Point3D[P]) { pc.offset = o }
func (pc *PointCloud[P, C, W, CP]) OffsetToMin() {
	if pc.bounds.Valid {
		pc.offset = pc.bounds.Min
	}
}

func (pc *PointCloud[P, C, W, CP]) Has(p geometry.Point3D[P]) bool {
	_, ok := pc.index[p]
	return ok
}

func (pc *PointCloud[P, C, W, CP]) InsertOne(p geometry.Point3D[P], c voxel.Color[C], weight W, weightMax W) error {
	if i, ok := pc.index[p]; ok {
		pc.cells[i].voxel = pc.cells[i].voxel.Add(c, weight, weightMax)
		return nil
	}
	pc.index[p] = len(pc.cells)
	pc.cells = append(pc.cells, cell[P, C, W, CP]{point: p, voxel: voxel.New[C, W, CP](c)})
	pc.bounds.Extend(p)
	return nil
}

func (pc *PointCloud[P, C, W, CP]) Insert(points []PointColor[P, C], weightMax W) error {
	for _, pt := range points {
		if err := pc.InsertOne(pt.Point, pt.Color, 1, weightMax); err != nil {
			return err
		}
	}
	return nil
}

func (pc *PointCloud[P, C, W, CP]) Merge(other VoxelStore[P, C, W], weightMax W) error {
	if other.GetResolution() != pc.resolution {
		return ErrResolutionMismatch
	}
	for _, pt := range other.ToPoints() {
		if err := pc.InsertOne(pt.Point, pt.Color, 1, weightMax); err != nil {
			return err
		}
	}
	return nil
}

func (pc *PointCloud[P, C, W, CP]) ToPoints() []PointColor[P, C] {
	out := make([]PointColor[P, C], 0, len(pc.cells))
	for _, c := range pc.cells {
		p := c.point
		for i := 0; i < 3; i++ {
			p[i] -= pc.offset[i]
		}
		out = append(out, PointColor[P, C]{Point: p, Color: c.voxel.Color()})
	}
	return out
}
