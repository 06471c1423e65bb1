package store

import (
	"hash/fnv"
	"strconv"
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

func shardPoint3D(p geometry.Point3D[int]) uint32 {
	h := fnv.New32a()
	h.Write([]byte(strconv.Itoa(p[0])))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(p[1])))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(p[2])))
	return h.Sum32()
}

// HashStore3D is the concurrent, unbounded 3D store variant: a sharded
// hash map keyed by integer coordinate, safe for concurrent InsertOne
// calls from multiple voxelizer workers. Bounds tracking takes its own
// lock since it is not naturally sharded by the map's key space.
type HashStore3D[C geometry.Int, W geometry.UInt, CP geometry.Int] struct {
	resolution float64
	cells      cmap.ConcurrentMap[geometry.Point3D[int], voxel.Voxel[C, W, CP]]

	mu     sync.Mutex
	offset geometry.Point3D[int]
	bounds geometry.Bounds3D[int]
}

// NewHashStore3D returns an empty concurrent 3D store at the given
// resolution.
func NewHashStore3D[C geometry.Int, W geometry.UInt, CP geometry.Int](resolution float64) *HashStore3D[C, W, CP] {
	return &HashStore3D[C, W, CP]{
		resolution: resolution,
		cells:      cmap.NewWithCustomShardingFunction[geometry.Point3D[int], voxel.Voxel[C, W, CP]](shardPoint3D),
	}
}

func (hs *HashStore3D[C, W, CP]) HasBounds() bool {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	return hs.bounds.Valid
}

func (hs *HashStore3D[C, W, CP]) GetBounds() geometry.Bounds3D[int] {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	return hs.bounds
}

func (hs *HashStore3D[C, W, CP]) GetResolution() float64 { return hs.resolution }

func (hs *HashStore3D[C, W, CP]) GetOffset() geometry.Point3D[int] {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	return hs.offset
}

func (hs *HashStore3D[C, W, CP]) SetOffset(o geometry.Point3D[int]) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.offset = o
}

func (hs *HashStore3D[C, W, CP]) OffsetToMin() {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	if hs.bounds.Valid {
		hs.offset = hs.bounds.Min
	}
}

func (hs *HashStore3D[C, W, CP]) Has(p geometry.Point3D[int]) bool {
	return hs.cells.Has(p)
}

func (hs *HashStore3D[C, W, CP]) InsertOne(p geometry.Point3D[int], c voxel.Color[C], weight W, weightMax W) error {
	hs.cells.Upsert(p, voxel.Voxel[C, W, CP]{}, func(exists bool, cur, _ voxel.Voxel[C, W, CP]) voxel.Voxel[C, W, CP] {
		if !exists {
			return voxel.New[C, W, CP](c)
		}
		return cur.Add(c, weight, weightMax)
	})
	hs.mu.Lock()
	hs.bounds.Extend(p)
	hs.mu.Unlock()
	return nil
}

func (hs *HashStore3D[C, W, CP]) Insert(points []PointColor[int, C], weightMax W) error {
	for _, pt := range points {
		_ = hs.InsertOne(pt.Point, pt.Color, 1, weightMax)
	}
	return nil
}

func (hs *HashStore3D[C, W, CP]) Merge(other VoxelStore[int, C, W], weightMax W) error {
	if other.GetResolution() != hs.resolution {
		return ErrResolutionMismatch
	}
	for _, pt := range other.ToPoints() {
		_ = hs.InsertOne(pt.Point, pt.Color, 1, weightMax)
	}
	return nil
}

func (hs *HashStore3D[C, W, CP]) ToPoints() []PointColor[int, C] {
	offset := hs.GetOffset()
	out := make([]PointColor[int, C], 0, hs.cells.Count())
	for item := range hs.cells.IterBuffered() {
		p := item.Key
		for i := 0; i < 3; i++ {
			p[i] -= offset[i]
		}
		out = append(out, PointColor[int, C]{Point: p, Color: item.Val.Color()})
	}
	return out
}
