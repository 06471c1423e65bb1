package export

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/nickglenn/voxeltiler/internal/geometry"
	"github.com/nickglenn/voxeltiler/internal/voxel"
)

// Mime identifies a texture buffer's image format for the glTF Image
// node's mimeType field.
type Mime int

const (
	ImageUnknown Mime = iota
	ImagePNG
	ImageJPEG
)

func (m Mime) String() string {
	switch m {
	case ImagePNG:
		return "image/png"
	case ImageJPEG:
		return "image/jpeg"
	default:
		return ""
	}
}

// TextureInfo supplies an encoded (PNG or JPEG) texture buffer for the
// z-projected-texture GLB variant; the bytes are embedded as-is.
type TextureInfo struct {
	Buf      []byte
	MimeType Mime
}

// remapCoordinate converts a voxel-index coordinate to glTF's right-
// handed, y-up space: (x, y, z) -> (x, z, -y).
func remapCoordinate(p geometry.Point3D[int], resolution float64) mgl32.Vec3 {
	x := float32(float64(p[0]) * resolution)
	y := float32(float64(p[1]) * resolution)
	z := float32(float64(p[2]) * resolution)
	return mgl32.Vec3{x, z, -y}
}

// srgbToLinear approximates sRGB -> linear conversion for an 8-bit
// channel, the same (c/max)^2.2 approximation used upstream; alpha is
// always opaque.
func srgbToLinear(c voxel.Color[uint8]) [4]float32 {
	conv := func(ch uint8) float32 {
		return float32(math.Pow(float64(ch)/255.0, 2.2))
	}
	return [4]float32{conv(c[0]), conv(c[1]), conv(c[2]), 1}
}

// roundUpToMulOfFour rounds n up to the next multiple of 4 (0 stays 0).
func roundUpToMulOfFour(n uint32) uint32 {
	return (n + 3) &^ 3
}

// padToMulOfFour pads data with zero bytes until its length is a
// multiple of 4.
func padToMulOfFour(data []byte) []byte {
	pad := roundUpToMulOfFour(uint32(len(data))) - uint32(len(data))
	if pad == 0 {
		return data
	}
	return append(data, make([]byte, pad)...)
}

// WriteGLBVertexColor writes one glTF primitive per color group, each
// primitive's vertex colors taken from its group's uniform color.
func WriteGLBVertexColor(w io.Writer, points []geometry.Point3D[int], resolution float64, facesByColor map[voxel.Color[uint8]][]int) error {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "voxeltiler"

	mesh := &gltf.Mesh{Name: "voxel_mesh"}

	for color, indices := range facesByColor {
		if len(indices) == 0 {
			continue
		}
		positions := make([][3]float32, len(indices))
		colors := make([][4]float32, len(indices))
		localIndices := make([]uint32, len(indices))
		linear := srgbToLinear(color)
		for i, origIdx := range indices {
			v := remapCoordinate(points[origIdx], resolution)
			positions[i] = [3]float32{v.X(), v.Y(), v.Z()}
			colors[i] = linear
			localIndices[i] = uint32(i)
		}

		posIdx := modeler.WritePosition(doc, positions)
		colorIdx := modeler.WriteColor(doc, colors)
		idxIdx := modeler.WriteIndices(doc, localIndices)

		mesh.Primitives = append(mesh.Primitives, &gltf.Primitive{
			Indices: gltf.Index(idxIdx),
			Attributes: map[string]uint32{
				gltf.POSITION: posIdx,
				gltf.COLOR_0:  colorIdx,
			},
		})
	}

	doc.Meshes = append(doc.Meshes, mesh)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "voxel_mesh", Mesh: gltf.Index(0)})
	doc.Scenes = append(doc.Scenes, &gltf.Scene{Nodes: []uint32{0}})
	doc.Scene = gltf.Index(0)

	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	return enc.Encode(doc)
}

// WriteGLBTextureProjectedZ writes a single primitive whose UVs are the
// vertex's (x, y) position projected straight down, for draping a
// top-down texture (e.g. an orthophoto) over terrain geometry.
func WriteGLBTextureProjectedZ(w io.Writer, points []geometry.Point3D[int], resolution float64, facesByColor map[voxel.Color[uint8]][]int, tex TextureInfo) error {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "voxeltiler"

	var allIndices []int
	for _, indices := range facesByColor {
		allIndices = append(allIndices, indices...)
	}
	if len(allIndices) == 0 {
		return fmt.Errorf("export: no faces to write")
	}

	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, p := range points {
		x, y := float64(p[0]), float64(p[1])
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	positions := make([][3]float32, len(allIndices))
	uvs := make([][2]float32, len(allIndices))
	localIndices := make([]uint32, len(allIndices))
	for i, origIdx := range allIndices {
		p := points[origIdx]
		v := remapCoordinate(p, resolution)
		positions[i] = [3]float32{v.X(), v.Y(), v.Z()}
		uvs[i] = [2]float32{
			float32((float64(p[0]) - minX) / spanX),
			float32((float64(p[1]) - minY) / spanY),
		}
		localIndices[i] = uint32(i)
	}

	posIdx := modeler.WritePosition(doc, positions)
	uvIdx := modeler.WriteTextureCoord(doc, uvs)
	idxIdx := modeler.WriteIndices(doc, localIndices)

	imgBuf := padToMulOfFour(append([]byte(nil), tex.Buf...))
	bufferViewIdx := uint32(len(doc.BufferViews))
	doc.Buffers = append(doc.Buffers, &gltf.Buffer{ByteLength: uint32(len(imgBuf)), Data: imgBuf})
	doc.BufferViews = append(doc.BufferViews, &gltf.BufferView{
		Buffer:     uint32(len(doc.Buffers) - 1),
		ByteLength: uint32(len(imgBuf)),
	})
	doc.Images = append(doc.Images, &gltf.Image{
		MimeType:   tex.MimeType.String(),
		BufferView: gltf.Index(bufferViewIdx),
	})
	doc.Samplers = append(doc.Samplers, &gltf.Sampler{
		MagFilter: gltf.MagNearest,
		MinFilter: gltf.MinNearest,
	})
	doc.Textures = append(doc.Textures, &gltf.Texture{
		Source:  gltf.Index(0),
		Sampler: gltf.Index(0),
	})
	doc.Materials = append(doc.Materials, &gltf.Material{
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorTexture: &gltf.TextureInfo{Index: 0},
		},
	})

	mesh := &gltf.Mesh{
		Name: "voxel_mesh",
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(idxIdx),
			Material: gltf.Index(0),
			Attributes: map[string]uint32{
				gltf.POSITION:   posIdx,
				gltf.TEXCOORD_0: uvIdx,
			},
		}},
	}

	doc.Meshes = append(doc.Meshes, mesh)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "voxel_mesh", Mesh: gltf.Index(0)})
	doc.Scenes = append(doc.Scenes, &gltf.Scene{Nodes: []uint32{0}})
	doc.Scene = gltf.Index(0)

	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	return enc.Encode(doc)
}

// sniffMime decodes just enough of buf to report its image format,
// erroring if it's neither PNG nor JPEG.
func sniffMime(buf []byte) (Mime, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(buf))
	if err != nil {
		return ImageUnknown, fmt.Errorf("export: sniffing texture format: %w", err)
	}
	switch format {
	case "png":
		return ImagePNG, nil
	case "jpeg":
		return ImageJPEG, nil
	default:
		return ImageUnknown, fmt.Errorf("export: unsupported texture format %q", format)
	}
}

// NewTextureInfo wraps a raw image buffer, sniffing its MIME type via
// the standard library's image decoders.
func NewTextureInfo(buf []byte) (TextureInfo, error) {
	mime, err := sniffMime(buf)
	if err != nil {
		return TextureInfo{}, err
	}
	return TextureInfo{Buf: buf, MimeType: mime}, nil
}
