package export

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nickglenn/voxeltiler/internal/geometry"
)

func TestRoundUpToMulOfFour(t *testing.T) {
	require := require.New(t)
	want := []uint32{0, 4, 4, 4, 4, 8, 8, 8, 8}
	for n, w := range want {
		require.Equal(w, roundUpToMulOfFour(uint32(n)), "n=%d", n)
	}
}

func TestPadToMulOfFour(t *testing.T) {
	require := require.New(t)
	require.Equal([]byte{1, 2, 3, 0}, padToMulOfFour([]byte{1, 2, 3}))
	require.Equal([]byte{1, 2, 3, 4}, padToMulOfFour([]byte{1, 2, 3, 4}))
	require.Len(padToMulOfFour([]byte{1, 2, 3, 4, 5}), 8)
}

func TestCoordinateRemap(t *testing.T) {
	require := require.New(t)
	v := remapCoordinate(geometry.Point3D[int]{1, 2, 3}, 1.0)
	require.Equal(float32(1), v.X())
	require.Equal(float32(3), v.Y())
	require.Equal(float32(-2), v.Z())
}

func TestSrgbToLinearIsOpaque(t *testing.T) {
	require := require.New(t)
	c := srgbToLinear([3]uint8{255, 255, 255})
	require.Equal(float32(1), c[3])
	require.InDelta(1.0, c[0], 0.001)
}
