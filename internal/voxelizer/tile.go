package voxelizer

import (
	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/store"
	"github.com/nickglenn/voxeltiler/internal/tile"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

// ResolutionProvider resolves a per-pixel world-unit resolution from a
// latitude and zoom level. Implementing the actual pixel_resolution
// geodetic formula is out of scope for this package; callers supply it
// (or use a constant-resolution stub in tests).
type ResolutionProvider interface {
	ResolutionAt(lat float64, zoom int) float64
}

// TileResult is one tile's populated store along with the resolution
// chosen for it.
type TileResult[C geometry.Number, W geometry.UInt] struct {
	Store      store.VoxelStore[int, C, W]
	Resolution float64
}

// TileVoxelizer buckets points into 256x256-pixel Web-Mercator tiles, each
// backed by its own store, and assigns height by voxel-index z.
type TileVoxelizer[C geometry.Number, W geometry.UInt] struct {
	zoom       int
	weightMax  W
	resolution ResolutionProvider
	newStore   func() store.VoxelStore[int, C, W]

	tiles map[tile.Index]store.VoxelStore[int, C, W]
	lats  map[tile.Index]float64
}

// NewTileVoxelizer constructs an empty tiled voxelizer. newStore is called
// once per newly-observed tile to allocate that tile's store (so callers
// can choose flat/dense/hash per tile).
func NewTileVoxelizer[C geometry.Number, W geometry.UInt](zoom int, weightMax W, resolution ResolutionProvider, newStore func() store.VoxelStore[int, C, W]) *TileVoxelizer[C, W] {
	return &TileVoxelizer[C, W]{
		zoom:       zoom,
		weightMax:  weightMax,
		resolution: resolution,
		newStore:   newStore,
		tiles:      make(map[tile.Index]store.VoxelStore[int, C, W]),
		lats:       make(map[tile.Index]float64),
	}
}

// InsertPixel voxelizes one point already projected into Web-Mercator
// pixel space (px, py) at the given zoom, with z already expressed in
// voxel-index units and lat the point's source latitude (used only to
// pick that tile's resolution).
func (t *TileVoxelizer[C, W]) InsertPixel(px, py int64, lat float64, z int, c voxel.Color[C]) error {
	idx := tile.PixelToTile(px, py)
	s, ok := t.tiles[idx]
	if !ok {
		s = t.newStore()
		t.tiles[idx] = s
		t.lats[idx] = lat
	}
	local := geometry.Point3D[int]{
		int(px) - int(idx.X)*tile.Size,
		int(py) - int(idx.Y)*tile.Size,
		z,
	}
	return s.InsertOne(local, c, 1, t.weightMax)
}

// Finish returns every tile's store paired with a single resolution
// averaged across all tiles as (min+max)/2 — an approximation, since a
// single mesh-export resolution is applied uniformly. Prefer FinishTiles
// when per-tile accuracy matters more than a single shared scale.
func (t *TileVoxelizer[C, W]) Finish() map[tile.Index]TileResult[C, W] {
	if len(t.tiles) == 0 {
		return nil
	}

	min, max := 0.0, 0.0
	first := true
	res := make(map[tile.Index]float64, len(t.tiles))
	for idx, lat := range t.lats {
		r := t.resolution.ResolutionAt(lat, t.zoom)
		res[idx] = r
		if first {
			min, max, first = r, r, false
			continue
		}
		if r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}
	avg := (min + max) / 2

	out := make(map[tile.Index]TileResult[C, W], len(t.tiles))
	for idx, s := range t.tiles {
		out[idx] = TileResult[C, W]{Store: s, Resolution: avg}
	}
	return out
}

// FinishTiles returns every tile's store paired with that tile's own
// exact resolution, rather than the (min+max)/2 approximation Finish
// applies uniformly.
func (t *TileVoxelizer[C, W]) FinishTiles() map[tile.Index]TileResult[C, W] {
	out := make(map[tile.Index]TileResult[C, W], len(t.tiles))
	for idx, s := range t.tiles {
		out[idx] = TileResult[C, W]{
			Store:      s,
			Resolution: t.resolution.ResolutionAt(t.lats[idx], t.zoom),
		}
	}
	return out
}
