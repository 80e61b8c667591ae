// Package compose provides sugar operations built on top of pkg/topo's
// bare graph builders: sketching a closed polygon or circle on a surface,
// extruding a face into a solid, and connecting two faces with a loft of
// side faces. None of this is primitive — every function here is
// expressible directly against pkg/topo, pkg/curve, and pkg/surface; it
// exists so a Model API program or pkg/script builtin doesn't have to
// hand-assemble vertices, curves, half-edges, and cycles for every shape.
//
// This generalizes fj-core's higher-level "sketch -> sweep -> solid"
// model-building helpers (fj-core/src/operations/{sweep,build}.rs) into a
// small set of composable Go functions, grounded in the same
// discover-the-primitives-then-wire-them shape pkg/script's builtins use to
// build up a solid from keyword arguments.
package compose

import (
	"fmt"

	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/surface"
	"github.com/chazu/brep/pkg/topo"
)

// Polygon3D builds a closed Cycle in model space from an ordered list of
// at least three points: one Vertex and one Line curve per edge, and one
// half-edge per edge referencing the edge's start vertex. Points must not
// repeat the first point at the end — the cycle closes implicitly, the
// same convention pkg/approx.Cycle uses when it appends the first
// approximated point again to close the loop.
func Polygon3D(g *topo.Graph, points []geom.Point3) (handle.Handle[topo.Cycle], error) {
	if len(points) < 3 {
		return handle.Handle[topo.Cycle]{}, fmt.Errorf("compose: polygon needs at least 3 points, got %d", len(points))
	}

	vertices := make([]handle.Handle[topo.Vertex], len(points))
	for i := range points {
		vertices[i] = g.AddVertex()
	}

	halfEdges := make([]handle.Handle[topo.HalfEdge], len(points))
	for i := range points {
		a, b := points[i], points[(i+1)%len(points)]
		if a == b {
			return handle.Handle[topo.Cycle]{}, fmt.Errorf("compose: polygon has a zero-length edge at point %d", i)
		}
		lineH := g.AddCurve(curve.Line{Origin: a, Direction: b.Sub(a)})
		halfEdges[i] = g.AddHalfEdge(topo.HalfEdge{
			Curve:       lineH,
			Boundary:    topo.CurveBoundary{Lower: geom.Point1{X: geom.MustScalar(0)}, Upper: geom.Point1{X: geom.MustScalar(1)}},
			StartVertex: vertices[i],
		})
	}

	return g.AddCycle(topo.Cycle{HalfEdges: halfEdges}), nil
}

// Polygon builds a planar polygon Cycle from 2D points on surf by mapping
// each through surf's local-to-global coordinate function before handing
// off to Polygon3D. This is the usual entry point for a sketch profile,
// since a user designs a 2D shape and picks which surface it lives on.
func Polygon(g *topo.Graph, surf surface.Geometry, points2D []geom.Point2) (handle.Handle[topo.Cycle], error) {
	points3D := make([]geom.Point3, len(points2D))
	for i, p := range points2D {
		points3D[i] = surf.Point(p)
	}
	return Polygon3D(g, points3D)
}

// Circle builds a single-half-edge Cycle tracing a full circle of radius r
// centered at center, in the plane spanned by the orthonormal pair (u, v).
// A full circle needs only one half-edge: its own start vertex stands in
// for both ends, since CurveBoundary{0, tau} already closes on itself (the
// approximator samples strictly between 0 and tau and the cycle
// approximation closes the loop by repeating the first point).
func Circle(g *topo.Graph, center geom.Point3, r geom.Scalar, u, v geom.Vector3) handle.Handle[topo.Cycle] {
	const tau = 6.283185307179586

	circleH := g.AddCurve(curve.Circle{Center: center, U: u, V: v, Radius: r})
	vertex := g.AddVertex()
	he := g.AddHalfEdge(topo.HalfEdge{
		Curve:       circleH,
		Boundary:    topo.CurveBoundary{Lower: geom.Point1{X: geom.MustScalar(0)}, Upper: geom.Point1{X: geom.MustScalar(tau)}},
		StartVertex: vertex,
	})
	return g.AddCycle(topo.Cycle{HalfEdges: []handle.Handle[topo.HalfEdge]{he}})
}

// RegionFromCycles builds a Region from an exterior cycle and zero or more
// interior (hole) cycles — interior cycles must wind opposite to the
// exterior, which is the caller's responsibility (Polygon and Circle do
// not impose a winding, they trace points/angles as given).
func RegionFromCycles(g *topo.Graph, exterior handle.Handle[topo.Cycle], interiors ...handle.Handle[topo.Cycle]) handle.Handle[topo.Region] {
	return g.AddRegion(topo.Region{Exterior: exterior, Interiors: interiors})
}

// Face builds a Face from a surface and a region already defined on it.
func Face(g *topo.Graph, surf handle.Handle[topo.Surface], region handle.Handle[topo.Region]) handle.Handle[topo.Face] {
	return g.AddFace(topo.Face{Surface: surf, Region: region})
}

// PolygonFace is the common case of Polygon+RegionFromCycles+Face
// collapsed into one call: a planar polygon profile on surf, with no
// holes, promoted directly to a Face.
func PolygonFace(g *topo.Graph, surfaceH handle.Handle[topo.Surface], points2D []geom.Point2) (handle.Handle[topo.Face], error) {
	surf := surfaceH.Get()
	if surf == nil {
		return handle.Handle[topo.Face]{}, fmt.Errorf("compose: surface handle references a missing surface")
	}
	cycleH, err := Polygon(g, surf.Geometry, points2D)
	if err != nil {
		return handle.Handle[topo.Face]{}, err
	}
	regionH := RegionFromCycles(g, cycleH)
	return Face(g, surfaceH, regionH), nil
}

// Sketch packages a surface and region as a standalone Sketch object,
// without committing it to a Face (and hence a Shell) of its own; Extrude
// takes a Face, not a Sketch — a 2D shape, independent of any specific 3D embedding
// commitment, as distinct from a Face (a region actually bound to a
// surface as part of a shape's boundary).
func Sketch(g *topo.Graph, surf handle.Handle[topo.Surface], region handle.Handle[topo.Region]) handle.Handle[topo.Sketch] {
	return g.AddSketch(topo.Sketch{Surface: surf, Region: region})
}
