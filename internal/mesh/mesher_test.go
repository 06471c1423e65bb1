package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/mesh"
	"github.com/nickglenn/voxeltiler/internal/store"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

type MesherSuite struct {
	suite.Suite
}

func (s *MesherSuite) TestSingleVoxelHasSixFaces() {
	require := require.New(s.T())
	ds := store.NewDenseStore3D[uint8, uint8, uint32]([3]int{1, 1, 1}, 1.0)
	require.NoError(ds.InsertOne(geometry.Point3D[int]{0, 0, 0}, voxel.RGB{1, 2, 3}, 1, 255))

	m := mesh.NewMesher()
	vm := mesh.Mesh[uint8, uint8](m, ds)
	require.Equal(6, vm.FaceCount())
	require.Equal(8, vm.VertexCount())
}

func (s *MesherSuite) TestAdjacentVoxelsCullSharedFace() {
	require := require.New(s.T())
	ds := store.NewDenseStore3D[uint8, uint8, uint32]([3]int{2, 1, 1}, 1.0)
	require.NoError(ds.InsertOne(geometry.Point3D[int]{0, 0, 0}, voxel.RGB{1, 2, 3}, 1, 255))
	require.NoError(ds.InsertOne(geometry.Point3D[int]{1, 0, 0}, voxel.RGB{1, 2, 3}, 1, 255))

	m := mesh.NewMesher()
	vm := mesh.Mesh[uint8, uint8](m, ds)
	// Each cube contributes 6 faces; the two faces where they touch
	// (right face of cube 0, left face of cube 1) are culled.
	require.Equal(10, vm.FaceCount())
}

func (s *MesherSuite) TestBorderSuppressionDropsOuterFaces() {
	require := require.New(s.T())
	ds := store.NewDenseStore3D[uint8, uint8, uint32]([3]int{1, 1, 1}, 1.0)
	require.NoError(ds.InsertOne(geometry.Point3D[int]{0, 0, 0}, voxel.RGB{1, 2, 3}, 1, 255))

	m := &mesh.Mesher{Sides: mesh.AllSides} // Border bit unset
	vm := mesh.Mesh[uint8, uint8](m, ds)
	require.Equal(0, vm.FaceCount())
}

func TestMesherSuite(t *testing.T) {
	suite.Run(t, new(MesherSuite))
}
