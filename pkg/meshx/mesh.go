// Package meshx assembles lifted 3D triangles from every face of a shell
// into a single indexed mesh, deduplicating vertices shared between
// adjacent faces so the result is watertight rather than a disjoint soup
// of per-face triangles.
package meshx

import "github.com/chazu/brep/pkg/geom"

// MeshVertex is one vertex of an assembled mesh: a position plus an
// averaged normal accumulated from every triangle that references it.
type MeshVertex struct {
	Pos    geom.Point3
	Normal geom.Vector3
}

// MeshTriangle references three vertices of a TriMesh by index.
type MeshTriangle struct {
	A, B, C int
}

// TriMesh is a complete indexed triangle mesh.
type TriMesh struct {
	Vertices  []MeshVertex
	Triangles []MeshTriangle
}

// VertexCount returns the number of distinct vertices in the mesh.
func (m TriMesh) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns the number of triangles in the mesh.
func (m TriMesh) TriangleCount() int { return len(m.Triangles) }

// IsEmpty reports whether the mesh has no triangles.
func (m TriMesh) IsEmpty() bool { return len(m.Triangles) == 0 }
