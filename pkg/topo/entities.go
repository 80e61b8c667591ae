// Package topo defines the boundary-representation topology graph: the
// vertices, curves, surfaces, half-edges, cycles, regions, faces, shells,
// solids, and sketches that reference each other by handle (pkg/handle)
// rather than by value, so that shared sub-structure (two faces sharing an
// edge, two shells sharing a vertex) is represented by two handles to the
// same stored object instead of two independent copies.
package topo

import (
	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/surface"
)

// Vertex is a topological point. It carries no geometric position of its
// own — its position is wherever the curve of an incident half-edge places
// the corresponding end of its boundary. A Vertex's only role is identity:
// two half-edges reference the "same" endpoint by sharing a Vertex handle.
// The unused byte gives Vertex a nonzero size: Go may place every
// allocation of a zero-size type at one shared address, which would make
// all Vertex handles compare equal.
type Vertex struct{ _ byte }

// Curve is a topological curve: an analytic curve.Geometry, identified by
// handle so that multiple half-edges can reference the same underlying
// geometry (a requirement for watertight meshes, see the sibling half-edge
// query in queries.go).
type Curve struct {
	Geometry curve.Geometry
}

// Surface is a topological surface: an analytic surface.Geometry,
// identified by handle for the same reason as Curve.
type Surface struct {
	Geometry surface.Geometry
}

// CurveBoundary is the portion of a curve's parameter space a half-edge
// occupies, as the pair of curve-local coordinates bounding it. Lower need
// not be less than Upper; the half-edge's direction of travel is implied by
// which bound is which.
type CurveBoundary struct {
	Lower, Upper geom.Point1
}

// Reversed swaps the bounds, producing the boundary as seen traveling the
// curve in the opposite direction.
func (b CurveBoundary) Reversed() CurveBoundary {
	return CurveBoundary{Lower: b.Upper, Upper: b.Lower}
}

// HalfEdge is a directed traversal of a curve: it references the curve, the
// portion of the curve's parameter space it covers, and the vertex at its
// start. Its end vertex is not stored directly — it is the start vertex of
// the next half-edge in the same cycle (see BoundingVerticesOfHalfEdgeInCycle).
type HalfEdge struct {
	Curve       handle.Handle[Curve]
	Boundary    CurveBoundary
	StartVertex handle.Handle[Vertex]
}

// Cycle is a closed loop of half-edges, each one's end meeting the next
// one's start, bounding a region of a surface.
type Cycle struct {
	HalfEdges []handle.Handle[HalfEdge]
}

// Region is a surface area bounded by one exterior cycle and zero or more
// interior cycles (holes).
type Region struct {
	Exterior  handle.Handle[Cycle]
	Interiors []handle.Handle[Cycle]
}

// Face couples a surface with the region of it that is actually part of
// the model.
type Face struct {
	Surface handle.Handle[Surface]
	Region  handle.Handle[Region]
}

// Shell is a connected collection of faces, typically bounding a solid
// (when closed) or standing alone as an open shell.
type Shell struct {
	Faces []handle.Handle[Face]
}

// Solid is one or more shells, the outer boundary plus any internal voids.
type Solid struct {
	Shells []handle.Handle[Shell]
}

// Sketch is a standalone planar profile — a surface plus a region — that
// does not appear in a solid's boundary directly. No compose operation
// takes a Sketch as input; compose.Extrude takes a Face.
type Sketch struct {
	Surface handle.Handle[Surface]
	Region  handle.Handle[Region]
}
