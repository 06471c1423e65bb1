// Package mesh turns a populated voxel store into a face-culled surface
// mesh, and can simplify or re-triangulate that mesh afterward.
package mesh

// ValidSide is a bitmask of which cube faces the mesher is allowed to
// emit. A caller that knows, for example, that a terrain tile's bottom
// face will never be visible can omit Bottom to shrink the output mesh.
type ValidSide uint8

const (
	Top ValidSide = 1 << iota
	Bottom
	Left
	Right
	Front
	Back
	// Border allows faces whose corners lie on the mesh's outer bounds
	// to be emitted. Without it, such faces are suppressed on the
	// assumption that the true geometry continues past the populated
	// extent (e.g. a tile boundary or a point-cloud crop).
	Border

	// AllSides is every face direction, with border suppression active.
	AllSides = Top | Bottom | Left | Right | Front | Back
	// AllSidesWithBorder is AllSides plus Border.
	AllSidesWithBorder = AllSides | Border
)

// Has reports whether the mask includes every bit in want.
func (v ValidSide) Has(want ValidSide) bool {
	return v&want == want
}
