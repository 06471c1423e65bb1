package voxel_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nickglenn/voxeltiler/internal/voxel"
)

type VoxelSuite struct {
	suite.Suite
}

func (s *VoxelSuite) TestFirstInsertStartsAtWeightOne() {
	require := require.New(s.T())
	v := voxel.New[uint8, uint8, uint32](voxel.RGB{10, 20, 30})
	require.Equal(uint8(1), v.Weight)
	require.Equal(voxel.RGB{10, 20, 30}, v.Color())
}

func (s *VoxelSuite) TestSaturatingWeightScenario() {
	require := require.New(s.T())
	v := voxel.New[uint8, uint8, uint32](voxel.RGB{4, 0, 0})
	for i := 0; i < 299; i++ {
		v = v.Add(voxel.RGB{4, 0, 0}, 1, 255)
	}
	require.Equal(uint8(255), v.Weight)
	c := v.Color()
	require.Equal(uint8(4), c[0])
	require.Equal(uint8(0), c[1])
	require.Equal(uint8(0), c[2])
}

func (s *VoxelSuite) TestSaturatedVoxelIsNoOp() {
	require := require.New(s.T())
	v := voxel.Voxel[uint8, uint8, uint32]{ColorSum: voxel.Color[uint32]{255, 510, 765}, Weight: 255}
	updated := v.Add(voxel.RGB{200, 200, 200}, 10, 255)
	require.Equal(v, updated)
}

func (s *VoxelSuite) TestWeightedAverage() {
	require := require.New(s.T())
	v := voxel.New[uint8, uint8, uint32](voxel.RGB{0, 0, 0})
	v = v.Add(voxel.RGB{10, 10, 10}, 1, 255)
	require.Equal(uint8(2), v.Weight)
	// sum of 0 and 10 is 10; truncating division by weight 2 is 5
	require.Equal(uint8(5), v.Color()[0])
}

func (s *VoxelSuite) TestColorSumIsOrderInvariant() {
	require := require.New(s.T())
	a := voxel.New[uint8, uint8, uint32](voxel.RGB{0, 0, 0})
	a = a.Add(voxel.RGB{0, 0, 0}, 1, 255)
	a = a.Add(voxel.RGB{1, 1, 1}, 1, 255)

	b := voxel.New[uint8, uint8, uint32](voxel.RGB{1, 1, 1})
	b = b.Add(voxel.RGB{0, 0, 0}, 1, 255)
	b = b.Add(voxel.RGB{0, 0, 0}, 1, 255)

	// 1/3 truncates to 0 regardless of insertion order.
	require.Equal(a.Color(), b.Color())
	require.Equal(uint8(0), a.Color()[0])
}

func TestVoxelSuite(t *testing.T) {
	suite.Run(t, new(VoxelSuite))
}
