// Package terrain decodes an RGB-encoded altitude image into a voxel
// store, filling each column down to the ground to avoid gaps on steep
// terrain.
package terrain

import (
	"errors"
	"image"
	"image/color"

	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/store"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

// ErrNoData marks a pixel whose decoded value is the sentinel "no data"
// value, v == 2^23 exactly.
var ErrNoData = errors.New("terrain: no-data pixel")

const (
	noDataValue  = 1 << 23
	wraparound   = 1 << 24
	altitudeUnit = 0.01
)

// japanOriginLatitudeDeg is the Japan geodetic origin latitude, used as
// the default reference point when a caller has no more specific
// latitude for a tile.
const japanOriginLatitudeDeg = 35.0 + 39.0/60.0 + 29.1572/3600.0

// ResolutionCriteria selects how the per-pixel resolution is determined.
type ResolutionCriteria interface {
	resolution(provider ResolutionProvider, zoom int) float64
}

// ResolutionProvider mirrors voxelizer.ResolutionProvider so this package
// does not need to import it directly.
type ResolutionProvider interface {
	ResolutionAt(lat float64, zoom int) float64
}

// ZoomLv selects resolution using the fixed Japan geodetic origin
// latitude at the given zoom level.
type ZoomLv struct{ Zoom int }

func (c ZoomLv) resolution(p ResolutionProvider, _ int) float64 {
	return p.ResolutionAt(japanOriginLatitudeDeg, c.Zoom)
}

// Lat selects resolution using an explicit latitude at the given zoom
// level.
type Lat struct {
	Latitude float64
	Zoom     int
}

func (c Lat) resolution(p ResolutionProvider, _ int) float64 {
	return p.ResolutionAt(c.Latitude, c.Zoom)
}

// decodeAltitude applies the terrain encoder's RGB->meters formula:
// v = 2^16*r + 2^8*g + b, split at the 2^23 midpoint into a signed
// range, in units of 0.01m. v == 2^23 exactly means "no data".
func decodeAltitude(r, g, b uint8) (float64, error) {
	v := float64(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
	switch {
	case v < noDataValue:
		return v * altitudeUnit, nil
	case v > noDataValue:
		return (v - wraparound) * altitudeUnit, nil
	default:
		return 0, ErrNoData
	}
}

// Sample decodes altitudeImage (optionally colored by colorImage, which
// defaults to black) into a voxel store. For each pixel whose decoded
// height resolves to voxel-index z, every integer height from 0 through
// z is inserted, not just z, so steep terrain viewed from the side has no
// vertical gaps.
func Sample(resolution ResolutionCriteria, provider ResolutionProvider, zoom int, altitudeImage image.Image, colorImage image.Image, s store.VoxelStore[int, uint8, uint8], weightMax uint8) error {
	res := resolution.resolution(provider, zoom)
	if res <= 0 {
		return errors.New("terrain: resolution must be positive")
	}

	bounds := altitudeImage.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := toRGB8(altitudeImage.At(x, y))
			meters, err := decodeAltitude(r, g, b)
			if err != nil {
				continue
			}

			var cr, cg, cb uint8
			if colorImage != nil {
				cr, cg, cb, _ = toRGB8(colorImage.At(x, y))
			}
			c := voxel.RGB{cr, cg, cb}

			z := int(meters / res)
			if z < 0 {
				z = 0
			}
			for fillZ := 0; fillZ <= z; fillZ++ {
				p := geometry.Point3D[int]{x, y, fillZ}
				if err := s.InsertOne(p, c, 1, weightMax); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func toRGB8(c color.Color) (r, g, b, a uint8) {
	rr, gg, bb, aa := c.RGBA()
	return uint8(rr >> 8), uint8(gg >> 8), uint8(bb >> 8), uint8(aa >> 8)
}
