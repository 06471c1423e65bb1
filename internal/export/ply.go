// Package export writes (and, for PLY, reads) the mesh formats consumed
// downstream: PLY in three encodings and GLB in two variants.
package export

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

// Encoding selects a PLY file's element encoding.
type Encoding int

const (
	ASCII Encoding = iota
	BinaryLittleEndian
	BinaryBigEndian
)

// ErrUnsupportedFormat is returned when a PLY header names a format this
// reader does not implement.
var ErrUnsupportedFormat = errors.New("export: unsupported ply format")

// Vertex is one output vertex: position in world units plus 8-bit color.
type Vertex struct {
	X, Y, Z    float32
	R, G, B    uint8
}

// Face is a triangle's three vertex indices.
type Face struct {
	Indices [3]uint32
}

// Mesh is the minimal shape PLY reads and writes: a vertex list and a
// face list, independent of how the mesh was produced.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
}

// FromVoxelMesh converts a mesh's insertion-ordered voxel-index points
// and per-color triangle lists into the fixed PLY vertex/face schema,
// scaling each point by resolution into world units.
func FromVoxelMesh(points []geometry.Point3D[int], resolution float64, facesByColor map[voxel.Color[uint8]][]int) Mesh {
	var m Mesh
	m.Vertices = make([]Vertex, len(points))
	for i, p := range points {
		m.Vertices[i] = Vertex{
			X: float32(float64(p[0]) * resolution),
			Y: float32(float64(p[1]) * resolution),
			Z: float32(float64(p[2]) * resolution),
		}
	}
	for color, indices := range facesByColor {
		for i := 0; i+2 < len(indices); i += 3 {
			m.Faces = append(m.Faces, Face{Indices: [3]uint32{uint32(indices[i]), uint32(indices[i+1]), uint32(indices[i+2])}})
			vi := m.Faces[len(m.Faces)-1].Indices
			for _, v := range vi {
				m.Vertices[v].R, m.Vertices[v].G, m.Vertices[v].B = color[0], color[1], color[2]
			}
		}
	}
	return m
}

// WritePLY writes m in the requested encoding, with the fixed schema:
//
//	element vertex N
//	property float x/y/z
//	property uchar red/green/blue
//	element face N
//	property list uchar uint vertex_indices
func WritePLY(w io.Writer, m Mesh, enc Encoding) error {
	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, m, enc); err != nil {
		return err
	}

	switch enc {
	case ASCII:
		if err := writeASCIIBody(bw, m); err != nil {
			return err
		}
	case BinaryLittleEndian:
		if err := writeBinaryBody(bw, m, binary.LittleEndian); err != nil {
			return err
		}
	case BinaryBigEndian:
		if err := writeBinaryBody(bw, m, binary.BigEndian); err != nil {
			return err
		}
	default:
		return ErrUnsupportedFormat
	}

	return bw.Flush()
}

func writeHeader(w *bufio.Writer, m Mesh, enc Encoding) error {
	var format string
	switch enc {
	case ASCII:
		format = "ascii 1.0"
	case BinaryLittleEndian:
		format = "binary_little_endian 1.0"
	case BinaryBigEndian:
		format = "binary_big_endian 1.0"
	default:
		return ErrUnsupportedFormat
	}

	_, err := fmt.Fprintf(w,
		"ply\nformat %s\nelement vertex %d\nproperty float x\nproperty float y\nproperty float z\nproperty uchar red\nproperty uchar green\nproperty uchar blue\nelement face %d\nproperty list uchar uint vertex_indices\nend_header\n",
		format, len(m.Vertices), len(m.Faces))
	return err
}

func writeASCIIBody(w *bufio.Writer, m Mesh) error {
	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(w, "%g %g %g %d %d %d\n", v.X, v.Y, v.Z, v.R, v.G, v.B); err != nil {
			return err
		}
	}
	for _, f := range m.Faces {
		if _, err := fmt.Fprintf(w, "3 %d %d %d\n", f.Indices[0], f.Indices[1], f.Indices[2]); err != nil {
			return err
		}
	}
	return nil
}

func writeBinaryBody(w *bufio.Writer, m Mesh, order binary.ByteOrder) error {
	for _, v := range m.Vertices {
		for _, f := range []float32{v.X, v.Y, v.Z} {
			if err := binary.Write(w, order, f); err != nil {
				return err
			}
		}
		if _, err := w.Write([]byte{v.R, v.G, v.B}); err != nil {
			return err
		}
	}
	for _, f := range m.Faces {
		if err := w.WriteByte(3); err != nil {
			return err
		}
		for _, idx := range f.Indices {
			if err := binary.Write(w, order, idx); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadPLYASCII reads back an ASCII PLY file written by WritePLY, enough
// to round-trip through MergePLY. Only the fixed vertex/face schema this
// package writes is understood; other header lines are skipped silently,
// and malformed vertex or face lines are skipped with a log line rather
// than rejected outright.
func ReadPLYASCII(r io.Reader) (Mesh, error) {
	sc := bufio.NewScanner(r)
	var m Mesh
	var vertexCount, faceCount int
	inHeader := true

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if inHeader {
			switch {
			case strings.HasPrefix(line, "element vertex"):
				fmt.Sscanf(line, "element vertex %d", &vertexCount)
			case strings.HasPrefix(line, "element face"):
				fmt.Sscanf(line, "element face %d", &faceCount)
			case line == "end_header":
				inHeader = false
			}
			continue
		}

		if vertexCount > 0 {
			fields := strings.Fields(line)
			if len(fields) < 6 {
				logger.Printf("skipping malformed vertex line %q", line)
				vertexCount--
				continue
			}
			var v Vertex
			fmt.Sscanf(fields[0], "%g", &v.X)
			fmt.Sscanf(fields[1], "%g", &v.Y)
			fmt.Sscanf(fields[2], "%g", &v.Z)
			r, _ := strconv.Atoi(fields[3])
			g, _ := strconv.Atoi(fields[4])
			b, _ := strconv.Atoi(fields[5])
			v.R, v.G, v.B = uint8(r), uint8(g), uint8(b)
			m.Vertices = append(m.Vertices, v)
			vertexCount--
			continue
		}

		if faceCount > 0 {
			fields := strings.Fields(line)
			if len(fields) < 4 {
				logger.Printf("skipping malformed face line %q", line)
				faceCount--
				continue
			}
			var f Face
			for i := 0; i < 3; i++ {
				n, _ := strconv.Atoi(fields[i+1])
				f.Indices[i] = uint32(n)
			}
			m.Faces = append(m.Faces, f)
			faceCount--
		}
	}

	return m, sc.Err()
}
