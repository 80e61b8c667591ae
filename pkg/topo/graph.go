package topo

import (
	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/surface"
)

// Graph owns every topological object created during a modeling session.
// Objects are only ever added, never removed or mutated in place — the
// append-only discipline pkg/handle.Store enforces is what makes handles
// safe to hand out and compare by identity.
type Graph struct {
	vertices  *handle.Store[Vertex]
	curves    *handle.Store[Curve]
	surfaces  *handle.Store[Surface]
	halfEdges *handle.Store[HalfEdge]
	cycles    *handle.Store[Cycle]
	regions   *handle.Store[Region]
	faces     *handle.Store[Face]
	shells    *handle.Store[Shell]
	solids    *handle.Store[Solid]
	sketches  *handle.Store[Sketch]
}

// NewGraph returns an empty topology graph.
func NewGraph() *Graph {
	return &Graph{
		vertices:  handle.New[Vertex](),
		curves:    handle.New[Curve](),
		surfaces:  handle.New[Surface](),
		halfEdges: handle.New[HalfEdge](),
		cycles:    handle.New[Cycle](),
		regions:   handle.New[Region](),
		faces:     handle.New[Face](),
		shells:    handle.New[Shell](),
		solids:    handle.New[Solid](),
		sketches:  handle.New[Sketch](),
	}
}

func (g *Graph) AddVertex() handle.Handle[Vertex] {
	return g.vertices.Insert(Vertex{})
}

func (g *Graph) AddCurve(geo curve.Geometry) handle.Handle[Curve] {
	return g.curves.Insert(Curve{Geometry: geo})
}

func (g *Graph) AddSurface(geo surface.Geometry) handle.Handle[Surface] {
	return g.surfaces.Insert(Surface{Geometry: geo})
}

func (g *Graph) AddHalfEdge(he HalfEdge) handle.Handle[HalfEdge] {
	return g.halfEdges.Insert(he)
}

func (g *Graph) AddCycle(c Cycle) handle.Handle[Cycle] {
	return g.cycles.Insert(c)
}

func (g *Graph) AddRegion(r Region) handle.Handle[Region] {
	return g.regions.Insert(r)
}

func (g *Graph) AddFace(f Face) handle.Handle[Face] {
	return g.faces.Insert(f)
}

func (g *Graph) AddShell(s Shell) handle.Handle[Shell] {
	return g.shells.Insert(s)
}

func (g *Graph) AddSolid(s Solid) handle.Handle[Solid] {
	return g.solids.Insert(s)
}

func (g *Graph) AddSketch(s Sketch) handle.Handle[Sketch] {
	return g.sketches.Insert(s)
}

// Faces returns every face inserted so far.
func (g *Graph) Faces() []handle.Handle[Face] { return g.faces.All() }

// Shells returns every shell inserted so far.
func (g *Graph) Shells() []handle.Handle[Shell] { return g.shells.All() }

// Solids returns every solid inserted so far.
func (g *Graph) Solids() []handle.Handle[Solid] { return g.solids.All() }
