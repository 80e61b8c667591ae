package meshx

import (
	"github.com/chazu/brep/pkg/bound"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/tolerance"
)

// Builder accumulates lifted triangles into a deduplicated TriMesh. Points
// within the builder's tolerance of an already-inserted vertex are treated
// as the same vertex, which is what turns the independently-triangulated,
// independently-lifted faces of a shell into one connected mesh instead of
// a pile of coincident-but-distinct triangles.
type Builder struct {
	dedup       *bound.DedupIndex
	vertices    []MeshVertex
	triangles   []MeshTriangle
	normalAccum []geom.Vector3
}

// NewBuilder returns an empty Builder that merges vertices within tol of
// one another.
func NewBuilder(tol tolerance.Tolerance) *Builder {
	return &Builder{dedup: bound.NewDedupIndex(tol)}
}

// AddTriangle dedups tri's three corners against every point inserted so
// far and appends a MeshTriangle referencing them, accumulating tri's
// normal into each corner's running normal total.
func (b *Builder) AddTriangle(tri geom.Triangle) {
	n := tri.Normal()

	ia := b.vertexIndex(tri.A, n)
	ib := b.vertexIndex(tri.B, n)
	ic := b.vertexIndex(tri.C, n)

	b.triangles = append(b.triangles, MeshTriangle{A: ia, B: ib, C: ic})
}

func (b *Builder) vertexIndex(p geom.Point3, normalContribution geom.Vector3) int {
	idx, isNew := b.dedup.Lookup(p)
	if isNew {
		b.vertices = append(b.vertices, MeshVertex{Pos: p})
		b.normalAccum = append(b.normalAccum, geom.Vector3{})
	}
	b.normalAccum[idx] = b.normalAccum[idx].Add(normalContribution)
	return idx
}

// Build finalizes the mesh, normalizing every vertex's accumulated normal
// to unit length. Vertices that never received a nonzero normal
// contribution (degenerate input) keep a zero normal rather than panicking.
func (b *Builder) Build() TriMesh {
	vertices := make([]MeshVertex, len(b.vertices))
	for i, v := range b.vertices {
		n := b.normalAccum[i]
		if n.SqMagnitude() > 0 {
			n = n.Normalized()
		}
		vertices[i] = MeshVertex{Pos: v.Pos, Normal: n}
	}
	return TriMesh{Vertices: vertices, Triangles: b.triangles}
}
