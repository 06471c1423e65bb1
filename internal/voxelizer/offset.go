package voxelizer

import (
	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/store"
)

// Offset selects how a voxelizer positions its output relative to the
// occupied bounds once voxelization finishes. This is a supplemental
// feature not present in the simpler offset_to_min()-only model: it
// generalizes the single built-in "offset to minimum corner" rule into a
// small set of named placement strategies, narrowed from the original
// Offset enum to the subset that composes with a single store's bounds.
type Offset int

const (
	// OffsetNone leaves points in their raw voxel-index coordinates.
	OffsetNone Offset = iota
	// OffsetMinCorner subtracts the occupied bounds' minimum corner,
	// equivalent to calling OffsetToMin on the store directly.
	OffsetMinCorner
	// OffsetTileOrigin names the tile-local placement: coordinates
	// relative to the tile's pixel origin (tileX*256, tileY*256) rather
	// than the occupied bounds. TileVoxelizer takes no Offset and always
	// stores points this way; applyOffset leaves a store unchanged for it.
	OffsetTileOrigin
)

func applyOffset[P geometry.Number, C geometry.Number, W geometry.UInt](s store.VoxelStore[P, C, W], o Offset) {
	switch o {
	case OffsetMinCorner:
		s.OffsetToMin()
	case OffsetNone, OffsetTileOrigin:
		// TileVoxelizer.InsertPixel already stores tile-local
		// coordinates; nothing to do here.
	}
}
