// Package voxel defines the per-cell value stored by every voxel store
// variant: a color accumulator and a saturating weight.
package voxel

import "github.com/nickglenn/voxeltiler/internal/geometry"

// Color is a 3-channel color value, generic over the channel's numeric
// type so the same code serves both raw u8 colors and the wider pool
// types used while accumulating a weighted average.
type Color[P geometry.Number] [3]P

// RGB is the common 8-bit-channel instantiation used by point sources and
// exporters.
type RGB = Color[uint8]

func (c Color[P]) R() P { return c[0] }
func (c Color[P]) G() P { return c[1] }
func (c Color[P]) B() P { return c[2] }
