package tile_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nickglenn/voxeltiler/internal/tile"
)

type TileSuite struct {
	suite.Suite
}

func (s *TileSuite) TestPixelToTileBucketing() {
	require := require.New(s.T())
	require.Equal(tile.Index{X: 0, Y: 1}, tile.PixelToTile(100, 300))
	require.Equal(tile.Index{X: 1, Y: 1}, tile.PixelToTile(300, 300))
	require.Equal(tile.Index{X: 0, Y: 0}, tile.PixelToTile(0, 0))
	require.Equal(tile.Index{X: 1, Y: 0}, tile.PixelToTile(256, 0))
}

func TestTileSuite(t *testing.T) {
	suite.Run(t, new(TileSuite))
}
