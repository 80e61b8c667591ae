package viewer

import "github.com/chazu/brep/pkg/meshx"

// FromTriMesh flattens an assembled, deduplicated meshx.TriMesh into the
// GPU-friendly Mesh layout, tagging the whole mesh with partName and color
// so a multi-part assembly can still tell its pieces apart once flattened.
func FromTriMesh(tm meshx.TriMesh, partName, color string) Mesh {
	out := Mesh{
		Vertices: make([]float32, 0, len(tm.Vertices)*3),
		Normals:  make([]float32, 0, len(tm.Vertices)*3),
		Indices:  make([]uint32, 0, len(tm.Triangles)*3),
		PartName: partName,
		Color:    color,
	}
	for _, v := range tm.Vertices {
		out.Vertices = append(out.Vertices,
			float32(v.Pos.X.Float64()), float32(v.Pos.Y.Float64()), float32(v.Pos.Z.Float64()))
		out.Normals = append(out.Normals,
			float32(v.Normal.X.Float64()), float32(v.Normal.Y.Float64()), float32(v.Normal.Z.Float64()))
	}
	for _, t := range tm.Triangles {
		out.Indices = append(out.Indices, uint32(t.A), uint32(t.B), uint32(t.C))
	}
	return out
}
