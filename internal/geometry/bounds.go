package geometry

import math32 "github.com/chewxy/math32"

// Bounds3D tracks the minimum and maximum corner of an axis-aligned box in
// voxel-coordinate space. A zero-value Bounds3D has no extent until the
// first Extend call; callers must check Valid before reading Min/Max.
type Bounds3D[P Number] struct {
	Min, Max Point3D[P]
	Valid    bool
}

// Extend grows the bounds, if necessary, to include p.
func (b *Bounds3D[P]) Extend(p Point3D[P]) {
	if !b.Valid {
		b.Min, b.Max, b.Valid = p, p, true
		return
	}
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// OnOuterShell reports whether p lies on the outer face of the bounds
// along at least one axis, used by the mesher's border-suppression rule.
func (b Bounds3D[P]) OnOuterShell(p Point3D[P]) bool {
	for i := 0; i < 3; i++ {
		if p[i] == b.Min[i] || p[i] == b.Max[i] {
			return true
		}
	}
	return false
}

// CellCounts computes the number of voxel cells spanned by width/height/
// depth at the given resolution, matching the teacher's own
// ceil(abs(dimension*resolution)) construction.
func CellCounts(width, height, depth float32, resolution uint) (w, h, d uint) {
	w = uint(math32.Ceil(math32.Abs(width * float32(resolution))))
	h = uint(math32.Ceil(math32.Abs(height * float32(resolution))))
	d = uint(math32.Ceil(math32.Abs(depth * float32(resolution))))
	return
}
