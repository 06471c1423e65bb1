package store

import (
	"hash/fnv"
	"strconv"
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

func shardPoint2D(p geometry.Point2D[int]) uint32 {
	h := fnv.New32a()
	h.Write([]byte(strconv.Itoa(p[0])))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(p[1])))
	return h.Sum32()
}

// HashStore2D is the concurrent 2D-with-height store variant. Unlike
// DenseStore2D, a height mismatch on an existing column is NOT a replace:
// the insert is silently dropped. This divergence from the dense variant
// is intentional — it is the actual behavior of the hash-backed
// collection's entry-modify closure, which only merges when the stored
// height matches and otherwise no-ops rather than overwriting.
type HashStore2D[C geometry.Int, W geometry.UInt, CP geometry.Int] struct {
	resolution float64
	cols       cmap.ConcurrentMap[geometry.Point2D[int], column2d[C, W, CP]]

	mu     sync.Mutex
	offset geometry.Point3D[int]
	bounds geometry.Bounds3D[int]
}

// NewHashStore2D returns an empty concurrent 2D-with-height store at the
// given resolution.
func NewHashStore2D[C geometry.Int, W geometry.UInt, CP geometry.Int](resolution float64) *HashStore2D[C, W, CP] {
	return &HashStore2D[C, W, CP]{
		resolution: resolution,
		cols:       cmap.NewWithCustomShardingFunction[geometry.Point2D[int], column2d[C, W, CP]](shardPoint2D),
	}
}

func (hs *HashStore2D[C, W, CP]) HasBounds() bool {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	return hs.bounds.Valid
}

func (hs *HashStore2D[C, W, CP]) GetBounds() geometry.Bounds3D[int] {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	return hs.bounds
}

func (hs *HashStore2D[C, W, CP]) GetResolution() float64 { return hs.resolution }

func (hs *HashStore2D[C, W, CP]) GetOffset() geometry.Point3D[int] {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	return hs.offset
}

func (hs *HashStore2D[C, W, CP]) SetOffset(o geometry.Point3D[int]) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.offset = o
}

func (hs *HashStore2D[C, W, CP]) OffsetToMin() {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	if hs.bounds.Valid {
		hs.offset = hs.bounds.Min
	}
}

func (hs *HashStore2D[C, W, CP]) Has(p geometry.Point3D[int]) bool {
	col, ok := hs.cols.Get(p.To2D())
	return ok && col.height == p[2]
}

func (hs *HashStore2D[C, W, CP]) InsertOne(p geometry.Point3D[int], c voxel.Color[C], weight W, weightMax W) error {
	key := p.To2D()
	dropped := false
	hs.cols.Upsert(key, column2d[C, W, CP]{}, func(exists bool, cur, _ column2d[C, W, CP]) column2d[C, W, CP] {
		if !exists {
			return column2d[C, W, CP]{height: p[2], voxel: voxel.New[C, W, CP](c)}
		}
		if cur.height != p[2] {
			// Height mismatch: silently no-op, matching the
			// entry-modify closure's and_modify/or_insert split.
			dropped = true
			return cur
		}
		cur.voxel = cur.voxel.Add(c, weight, weightMax)
		return cur
	})
	if dropped {
		return nil
	}
	hs.mu.Lock()
	hs.bounds.Extend(p)
	hs.mu.Unlock()
	return nil
}

func (hs *HashStore2D[C, W, CP]) Insert(points []PointColor[int, C], weightMax W) error {
	for _, pt := range points {
		_ = hs.InsertOne(pt.Point, pt.Color, 1, weightMax)
	}
	return nil
}

func (hs *HashStore2D[C, W, CP]) Merge(other VoxelStore[int, C, W], weightMax W) error {
	if other.GetResolution() != hs.resolution {
		return ErrResolutionMismatch
	}
	for _, pt := range other.ToPoints() {
		_ = hs.InsertOne(pt.Point, pt.Color, 1, weightMax)
	}
	return nil
}

func (hs *HashStore2D[C, W, CP]) ToPoints() []PointColor[int, C] {
	offset := hs.GetOffset()
	out := make([]PointColor[int, C], 0, hs.cols.Count())
	for item := range hs.cols.IterBuffered() {
		p := geometry.Point3D[int]{item.Key[0] - offset[0], item.Key[1] - offset[1], item.Val.height - offset[2]}
		out = append(out, PointColor[int, C]{Point: p, Color: item.Val.voxel.Color()})
	}
	return out
}
