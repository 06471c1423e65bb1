package mesh

import (
	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/store"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

// cube corner offsets, relative to a voxel's minimum corner.
var cubeCorners = [8]geometry.Point3D[int]{
	{0, 0, 0}, // 0
	{1, 0, 0}, // 1
	{1, 1, 0}, // 2
	{0, 1, 0}, // 3
	{0, 0, 1}, // 4
	{1, 0, 1}, // 5
	{1, 1, 1}, // 6
	{0, 1, 1}, // 7
}

type faceDir struct {
	side      ValidSide
	neighbor  func(p geometry.Point3D[int]) geometry.Point3D[int]
	corners   [6]int // indices into cubeCorners, two triangles CCW seen from outside the cell
}

var faceDirs = [6]faceDir{
	{Bottom, geometry.Point3D[int].Bottom, [6]int{0, 2, 1, 0, 3, 2}},
	{Top, geometry.Point3D[int].Top, [6]int{4, 5, 6, 4, 6, 7}},
	{Left, geometry.Point3D[int].Left, [6]int{0, 7, 3, 0, 4, 7}},
	{Right, geometry.Point3D[int].Right, [6]int{1, 6, 5, 1, 2, 6}},
	{Front, geometry.Point3D[int].Front, [6]int{0, 5, 4, 0, 1, 5}},
	{Back, geometry.Point3D[int].Back, [6]int{3, 6, 2, 3, 7, 6}},
}

// Mesher generates a face-culled surface mesh from a populated voxel
// store: for each occupied cell, a face is emitted toward every
// unoccupied neighbor direction enabled in Sides, except where border
// suppression applies.
type Mesher struct {
	Sides ValidSide
}

// NewMesher returns a Mesher emitting every side, including faces on the
// mesh's outer shell. Border suppression is opt-in (via Sides without
// Border) for callers meshing a crop of a larger scene — a tile edge or a
// point-cloud bounding crop — where the outer faces are known to continue
// past the populated extent.
func NewMesher() *Mesher {
	return &Mesher{Sides: AllSidesWithBorder}
}

// Mesh builds a VoxelMesh from s.
func Mesh[C geometry.Number, W geometry.UInt](m *Mesher, s store.VoxelStore[int, C, W]) *VoxelMesh[C] {
	bounds := s.GetBounds()
	if bounds.Valid {
		for i := 0; i < 3; i++ {
			bounds.Max[i]++
		}
	}
	vm := newVoxelMesh[C](bounds, s.GetOffset(), s.GetResolution())
	if !bounds.Valid {
		return vm
	}

	points := s.ToPoints()
	occupied := make(map[geometry.Point3D[int]]voxel.Color[C], len(points))
	for _, pc := range points {
		occupied[pc.Point] = pc.Color
	}

	for p, color := range occupied {
		for _, fd := range faceDirs {
			if !m.Sides.Has(fd.side) {
				continue
			}
			neighbor := fd.neighbor(p)
			if _, ok := occupied[neighbor]; ok {
				continue
			}

			if !m.Sides.Has(Border) {
				suppressed := false
				for _, ci := range fd.corners {
					corner := geometry.Point3D[int]{
						p[0] + cubeCorners[ci][0],
						p[1] + cubeCorners[ci][1],
						p[2] + cubeCorners[ci][2],
					}
					if bounds.OnOuterShell(corner) {
						suppressed = true
						break
					}
				}
				if suppressed {
					continue
				}
			}

			var idx [6]int
			for i, ci := range fd.corners {
				corner := geometry.Point3D[int]{
					p[0] + cubeCorners[ci][0],
					p[1] + cubeCorners[ci][1],
					p[2] + cubeCorners[ci][2],
				}
				idx[i] = vm.addVertex(corner)
			}
			vm.FacesByColor[color] = append(vm.FacesByColor[color], idx[:]...)
		}
	}

	return vm
}
