package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

// targetError is the unitless decimation aggressiveness applied per
// color group.
const targetError = 0.05

// Simplifier decimates a VoxelMesh's triangles, one color group at a
// time, rebuilding a fresh vertex list containing only the points that
// survive. Like the mesher's deduplication, the rebuilt vertex set is
// shared across color groups: a point referenced by surviving triangles
// of two different colors appears once.
type Simplifier struct{}

// NewSimplifier returns a Simplifier using the standard target error.
func NewSimplifier() *Simplifier { return &Simplifier{} }

// Simplify returns new points and a new per-color face map, decimated
// independently per color group against targetError.
func (s *Simplifier) Simplify(m *VoxelMesh[uint8]) (points []geometry.Point3D[int], facesByColor map[voxel.Color[uint8]][]int) {
	originalPoints := m.Points()
	facesByColor = make(map[voxel.Color[uint8]][]int, len(m.FacesByColor))
	out := newOrderedSet[geometry.Point3D[int]]()

	for color, indices := range m.FacesByColor {
		kept := decimate(originalPoints, indices, targetError)
		remapped := make([]int, 0, len(kept))
		for _, origIdx := range kept {
			remapped = append(remapped, out.Add(originalPoints[origIdx]))
		}
		facesByColor[color] = remapped
	}

	return out.Items(), facesByColor
}

// decimate collapses short edges whose removal would move a vertex less
// than targetError times the mesh's diagonal extent, a standard
// error-bounded edge-collapse decimation. It returns the subset of
// original point indices (by position in points) that survive, in
// triangle order.
func decimate(points []geometry.Point3D[int], indices []int, targetError float32) []int {
	if len(indices) == 0 {
		return nil
	}

	diag := meshDiagonal(points)
	threshold := diag * targetError

	// Build an adjacency-free greedy pass: for each triangle, collapse
	// degenerate/near-degenerate edges (below threshold) onto one of
	// their endpoints, then keep triangles whose three resolved
	// vertices remain distinct.
	collapse := make(map[int]int, len(indices))
	resolve := func(i int) int {
		for {
			j, ok := collapse[i]
			if !ok {
				return i
			}
			i = j
		}
	}

	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		pairs := [3][2]int{{a, b}, {b, c}, {c, a}}
		for _, pr := range pairs {
			ra, rb := resolve(pr[0]), resolve(pr[1])
			if ra == rb {
				continue
			}
			if pointDistance(points[ra], points[rb]) <= threshold {
				collapse[rb] = ra
			}
		}
	}

	var kept []int
	for t := 0; t+2 < len(indices); t += 3 {
		a := resolve(indices[t])
		b := resolve(indices[t+1])
		c := resolve(indices[t+2])
		if a == b || b == c || a == c {
			continue
		}
		kept = append(kept, a, b, c)
	}
	return kept
}

func meshDiagonal(points []geometry.Point3D[int]) float32 {
	if len(points) == 0 {
		return 0
	}
	var b geometry.Bounds3D[int]
	for _, p := range points {
		b.Extend(p)
	}
	v := mgl32.Vec3{
		float32(b.Max[0] - b.Min[0]),
		float32(b.Max[1] - b.Min[1]),
		float32(b.Max[2] - b.Min[2]),
	}
	return v.Len()
}

func pointDistance(a, b geometry.Point3D[int]) float32 {
	v := mgl32.Vec3{
		float32(a[0] - b[0]),
		float32(a[1] - b[1]),
		float32(a[2] - b[2]),
	}
	return v.Len()
}
