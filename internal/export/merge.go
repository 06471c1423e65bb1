package export

// hashableVertex is a Vertex reduced to a comparable key for exact-match
// dedup during a merge.
type hashableVertex struct {
	x, y, z    float32
	r, g, b    uint8
}

func key(v Vertex) hashableVertex {
	return hashableVertex{v.X, v.Y, v.Z, v.R, v.G, v.B}
}

// MergePLY combines multiple independently-read meshes into one,
// deduplicating vertices by exact (x, y, z, r, g, b) equality and faces
// by their index triples resolved through the merged vertex list.
func MergePLY(meshes ...Mesh) Mesh {
	var out Mesh
	seen := make(map[hashableVertex]int)
	seenFaces := make(map[[3]uint32]bool)

	for _, m := range meshes {
		remap := make([]uint32, len(m.Vertices))
		for i, v := range m.Vertices {
			k := key(v)
			if idx, ok := seen[k]; ok {
				remap[i] = uint32(idx)
				continue
			}
			idx := len(out.Vertices)
			out.Vertices = append(out.Vertices, v)
			seen[k] = idx
			remap[i] = uint32(idx)
		}
		for _, f := range m.Faces {
			resolved := [3]uint32{
				remap[f.Indices[0]],
				remap[f.Indices[1]],
				remap[f.Indices[2]],
			}
			if seenFaces[resolved] {
				continue
			}
			seenFaces[resolved] = true
			out.Faces = append(out.Faces, Face{Indices: resolved})
		}
	}

	return out
}
