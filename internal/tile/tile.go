// Package tile provides the Web-Mercator pixel-tile bucketing used by the
// tiled voxelizer mode.
package tile

import "github.com/paulmach/orb/maptile"

// Size is the pixel width/height of one Web-Mercator tile.
const Size = 256

// Index identifies a single 256x256 pixel tile within a zoom level.
type Index struct {
	X, Y uint32
}

// PixelToTile buckets a pixel coordinate into its containing tile via
// plain integer division, the Web-Mercator tiling scheme's own bucketing
// rule.
func PixelToTile(px, py int64) Index {
	return Index{
		X: uint32(px / Size),
		Y: uint32(py / Size),
	}
}

// Maptile converts an Index at the given zoom level to the equivalent
// paulmach/orb maptile.Tile, reusing the ecosystem's own tile/quadkey and
// bound-conversion helpers instead of reimplementing them.
func (i Index) Maptile(zoom maptile.Zoom) maptile.Tile {
	return maptile.Tile{X: i.X, Y: i.Y, Z: zoom}
}
