package mesh

import (
	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

// VoxelMesh is the output of a Mesher run: a deduplicated, insertion-
// ordered vertex list plus a triangle-index list grouped by color, so
// exporters can emit one primitive per color group without a second pass
// over the geometry.
type VoxelMesh[C geometry.Number] struct {
	// Bounds is the store's occupied-cell bounds with Max extended by one
	// unit on every axis, since a cell at coordinate p contributes
	// geometry up to corner p+1.
	Bounds     geometry.Bounds3D[int]
	Offset     geometry.Point3D[int]
	Resolution float64

	points   *orderedSet[geometry.Point3D[int]]
	FacesByColor map[voxel.Color[C]][]int
}

func newVoxelMesh[C geometry.Number](bounds geometry.Bounds3D[int], offset geometry.Point3D[int], resolution float64) *VoxelMesh[C] {
	return &VoxelMesh[C]{
		Bounds:       bounds,
		Offset:       offset,
		Resolution:   resolution,
		points:       newOrderedSet[geometry.Point3D[int]](),
		FacesByColor: make(map[voxel.Color[C]][]int),
	}
}

// Points returns the insertion-ordered, deduplicated vertex list.
func (m *VoxelMesh[C]) Points() []geometry.Point3D[int] {
	return m.points.Items()
}

// VertexCount returns the number of distinct vertices in the mesh.
func (m *VoxelMesh[C]) VertexCount() int {
	return m.points.Len()
}

// FaceCount returns the total number of cube faces across every color
// group. Each face is two triangles, so a group's index slice holds 6
// indices per face.
func (m *VoxelMesh[C]) FaceCount() int {
	n := 0
	for _, idx := range m.FacesByColor {
		n += len(idx) / 6
	}
	return n
}

func (m *VoxelMesh[C]) addVertex(p geometry.Point3D[int]) int {
	return m.points.Add(p)
}
