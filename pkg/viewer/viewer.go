// Package viewer defines the flat, by-value mesh format handed to an
// external rendering surface: the kernel never calls into the viewer, it
// only produces data the viewer can consume. This is adapted from the
// teacher's pkg/kernel.Mesh (a flat-array mesh meant for GPU upload),
// generalized with a part name and one color per mesh so a viewer can tell
// the parts of a multi-part assembly apart.
package viewer

// Mesh is a triangle mesh suitable for rendering, in the flat-array layout
// a GPU vertex buffer wants directly: all arrays are tightly packed,
// vertices has 3 floats per vertex (x,y,z), normals has 3 floats per
// vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Viewer is the external collaborator this package's mesh format is built
// for: it accepts meshes by value and never calls back into the kernel.
// cmd/fjviewer's Wails shell is the one production implementation; this
// interface exists so pkg/viewer stays a pure data/contract package
// independent of any particular GUI toolkit.
type Viewer interface {
	ShowMesh(m Mesh) error
}
