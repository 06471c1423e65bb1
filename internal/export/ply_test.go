package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nickglenn/voxeltiler/internal/export"
)

type PLYSuite struct {
	suite.Suite
}

func (s *PLYSuite) TestASCIIRoundTrip() {
	require := require.New(s.T())
	m := export.Mesh{
		Vertices: []export.Vertex{
			{X: 0, Y: 0, Z: 0, R: 255, G: 0, B: 0},
			{X: 1, Y: 0, Z: 0, R: 0, G: 255, B: 0},
			{X: 0, Y: 1, Z: 0, R: 0, G: 0, B: 255},
		},
		Faces: []export.Face{{Indices: [3]uint32{0, 1, 2}}},
	}

	var buf bytes.Buffer
	require.NoError(export.WritePLY(&buf, m, export.ASCII))

	got, err := export.ReadPLYASCII(&buf)
	require.NoError(err)
	require.Len(got.Vertices, 3)
	require.Len(got.Faces, 1)
	require.Equal(uint8(255), got.Vertices[0].R)
}

func (s *PLYSuite) TestBinaryEncodingsDoNotError() {
	require := require.New(s.T())
	m := export.Mesh{
		Vertices: []export.Vertex{{X: 1, Y: 2, Z: 3, R: 1, G: 2, B: 3}},
		Faces:    nil,
	}

	var le, be bytes.Buffer
	require.NoError(export.WritePLY(&le, m, export.BinaryLittleEndian))
	require.NoError(export.WritePLY(&be, m, export.BinaryBigEndian))
	require.NotEqual(le.Bytes(), be.Bytes())
}

func (s *PLYSuite) TestMergeDedupsIdenticalVertices() {
	require := require.New(s.T())
	a := export.Mesh{
		Vertices: []export.Vertex{{X: 0, Y: 0, Z: 0, R: 1, G: 1, B: 1}, {X: 1, Y: 0, Z: 0, R: 1, G: 1, B: 1}},
		Faces:    []export.Face{{Indices: [3]uint32{0, 1, 0}}},
	}
	b := export.Mesh{
		Vertices: []export.Vertex{{X: 0, Y: 0, Z: 0, R: 1, G: 1, B: 1}, {X: 2, Y: 0, Z: 0, R: 1, G: 1, B: 1}},
		Faces:    []export.Face{{Indices: [3]uint32{0, 1, 0}}},
	}

	merged := export.MergePLY(a, b)
	require.Len(merged.Vertices, 3) // (0,0,0) shared, (1,0,0), (2,0,0)
	require.Len(merged.Faces, 2)
}

func TestPLYSuite(t *testing.T) {
	suite.Run(t, new(PLYSuite))
}
