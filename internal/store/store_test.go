package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/store"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

type StoreSuite struct {
	suite.Suite
}

func (s *StoreSuite) TestDenseStore3DBasicInsertAndDrop() {
	require := require.New(s.T())
	ds := store.NewDenseStore3D[uint8, uint8, uint32]([3]int{2, 2, 2}, 1.0)

	require.NoError(ds.InsertOne(geometry.Point3D[int]{0, 0, 0}, voxel.RGB{1, 2, 3}, 1, 255))
	require.True(ds.Has(geometry.Point3D[int]{0, 0, 0}))

	// Out of range insert is silently dropped, not an error.
	require.NoError(ds.InsertOne(geometry.Point3D[int]{5, 5, 5}, voxel.RGB{1, 2, 3}, 1, 255))
	require.False(ds.Has(geometry.Point3D[int]{5, 5, 5}))
}

func (s *StoreSuite) TestDenseStore3DMergeGrowsToFitOutOfRangePoints() {
	require := require.New(s.T())
	dst := store.NewDenseStore3D[uint8, uint8, uint32]([3]int{1, 1, 1}, 1.0)
	require.NoError(dst.InsertOne(geometry.Point3D[int]{0, 0, 0}, voxel.RGB{1, 1, 1}, 1, 255))

	src := store.NewPointCloud[int, uint8, uint8, uint32](1.0)
	require.NoError(src.InsertOne(geometry.Point3D[int]{5, 5, 5}, voxel.RGB{2, 2, 2}, 1, 255))

	require.NoError(dst.Merge(src, 255))
	require.True(dst.Has(geometry.Point3D[int]{0, 0, 0}), "original point must survive the grow")
	require.True(dst.Has(geometry.Point3D[int]{5, 5, 5}), "merge must not drop an out-of-range point")

	points := dst.ToPoints()
	require.Len(points, 2)
}

func (s *StoreSuite) TestDenseStore3DMergeRejectsResolutionMismatch() {
	require := require.New(s.T())
	dst := store.NewDenseStore3D[uint8, uint8, uint32]([3]int{2, 2, 2}, 1.0)
	src := store.NewPointCloud[int, uint8, uint8, uint32](2.0)
	require.ErrorIs(dst.Merge(src, 255), store.ErrResolutionMismatch)
}

func (s *StoreSuite) TestPointCloudMergeRejectsResolutionMismatch() {
	require := require.New(s.T())
	dst := store.NewPointCloud[int, uint8, uint8, uint32](1.0)
	src := store.NewPointCloud[int, uint8, uint8, uint32](2.0)
	require.ErrorIs(dst.Merge(src, 255), store.ErrResolutionMismatch)
}

func (s *StoreSuite) TestHashStore3DMergeRejectsResolutionMismatch() {
	require := require.New(s.T())
	dst := store.NewHashStore3D[uint8, uint8, uint32](1.0)
	src := store.NewPointCloud[int, uint8, uint8, uint32](2.0)
	require.ErrorIs(dst.Merge(src, 255), store.ErrResolutionMismatch)
}

func (s *StoreSuite) TestDense2DReplacesOnHeightMismatch() {
	require := require.New(s.T())
	ds := store.NewDenseStore2D[uint8, uint8, uint32]([2]int{4, 4}, 1.0)
	require.NoError(ds.InsertOne(geometry.Point3D[int]{1, 1, 3}, voxel.RGB{10, 0, 0}, 1, 255))
	require.NoError(ds.InsertOne(geometry.Point3D[int]{1, 1, 7}, voxel.RGB{20, 0, 0}, 1, 255))

	require.True(ds.Has(geometry.Point3D[int]{1, 1, 7}))
	require.False(ds.Has(geometry.Point3D[int]{1, 1, 3}))
}

func (s *StoreSuite) TestDenseStore2DMergeGrowsToFitOutOfRangeColumns() {
	require := require.New(s.T())
	dst := store.NewDenseStore2D[uint8, uint8, uint32]([2]int{1, 1}, 1.0)
	require.NoError(dst.InsertOne(geometry.Point3D[int]{0, 0, 0}, voxel.RGB{1, 1, 1}, 1, 255))

	src := store.NewPointCloud[int, uint8, uint8, uint32](1.0)
	require.NoError(src.InsertOne(geometry.Point3D[int]{5, 5, 9}, voxel.RGB{2, 2, 2}, 1, 255))

	require.NoError(dst.Merge(src, 255))
	require.True(dst.Has(geometry.Point3D[int]{0, 0, 0}))
	require.True(dst.Has(geometry.Point3D[int]{5, 5, 9}))
}

func (s *StoreSuite) TestHash2DIgnoresHeightMismatch() {
	require := require.New(s.T())
	hs := store.NewHashStore2D[uint8, uint8, uint32](1.0)
	require.NoError(hs.InsertOne(geometry.Point3D[int]{1, 1, 3}, voxel.RGB{10, 0, 0}, 1, 255))
	require.NoError(hs.InsertOne(geometry.Point3D[int]{1, 1, 7}, voxel.RGB{20, 0, 0}, 1, 255))

	// Unlike the dense variant, the mismatched second insert is
	// silently dropped: the original height/column survives.
	require.True(hs.Has(geometry.Point3D[int]{1, 1, 3}))
	require.False(hs.Has(geometry.Point3D[int]{1, 1, 7}))
}

func (s *StoreSuite) TestHashStore3DRepeatedInsertAverages() {
	require := require.New(s.T())
	hs := store.NewHashStore3D[uint8, uint8, uint32](1.0)
	require.NoError(hs.InsertOne(geometry.Point3D[int]{0, 0, 0}, voxel.RGB{4, 0, 0}, 1, 255))
	require.NoError(hs.InsertOne(geometry.Point3D[int]{0, 0, 0}, voxel.RGB{4, 0, 0}, 1, 255))

	points := hs.ToPoints()
	require.Len(points, 1)
	require.Equal(voxel.RGB{4, 0, 0}, points[0].Color)
}

func (s *StoreSuite) TestOffsetToMin() {
	require := require.New(s.T())
	pc := store.NewPointCloud[int, uint8, uint8, uint32](1.0)
	require.NoError(pc.InsertOne(geometry.Point3D[int]{5, 5, 5}, voxel.RGB{1, 1, 1}, 1, 255))
	require.NoError(pc.InsertOne(geometry.Point3D[int]{7, 7, 7}, voxel.RGB{1, 1, 1}, 1, 255))
	pc.OffsetToMin()

	points := pc.ToPoints()
	require.Len(points, 2)
	for _, p := range points {
		require.GreaterOrEqual(p.Point[0], 0)
	}
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}
