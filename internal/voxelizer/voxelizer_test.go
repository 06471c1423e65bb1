package voxelizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nickglenn/voxeltiler/internal/store"
	"github.com/nickglenn/voxeltiler/internal/tile"
	"github.com/nickglenn/voxeltiler/internal/voxel"
	"github.com/nickglenn/voxeltiler/internal/voxelizer"
)

type VoxelizerSuite struct {
	suite.Suite
}

func (s *VoxelizerSuite) TestMetricVoxelizerAssignsCells() {
	require := require.New(s.T())
	s3d := store.NewPointCloud[int, uint8, uint8, uint32](1.0)
	v := voxelizer.NewMetricVoxelizer[uint8, uint8](0.5, 255, s3d, voxelizer.OffsetNone)

	require.NoError(v.InsertPoint(0.1, 0.1, 0.1, voxel.RGB{1, 2, 3}))
	require.NoError(v.InsertPoint(0.2, 0.2, 0.2, voxel.RGB{4, 5, 6}))

	result := v.Finish()
	points := result.ToPoints()
	require.Len(points, 1, "both points fall into the same 0.5-unit cell")
}

type constResolution struct{ r float64 }

func (c constResolution) ResolutionAt(lat float64, zoom int) float64 { return c.r }

func (s *VoxelizerSuite) TestTileVoxelizerBucketsAndAveragesResolution() {
	require := require.New(s.T())
	tv2 := voxelizer.NewTileVoxelizer[uint8, uint8](10, 255, constResolution{r: 2.0}, func() store.VoxelStore[int, uint8, uint8] {
		return store.NewPointCloud[int, uint8, uint8, uint32](2.0)
	})
	require.NoError(tv2.InsertPixel(100, 300, 35.0, 1, voxel.RGB{1, 1, 1}))
	require.NoError(tv2.InsertPixel(300, 300, 35.0, 2, voxel.RGB{2, 2, 2}))

	results := tv2.Finish()
	require.Len(results, 2)
	for idx, r := range results {
		require.Equal(2.0, r.Resolution)
		_ = idx
	}
	require.Contains(results, tile.Index{X: 0, Y: 1})
	require.Contains(results, tile.Index{X: 1, Y: 1})
}

func TestVoxelizerSuite(t *testing.T) {
	suite.Run(t, new(VoxelizerSuite))
}
