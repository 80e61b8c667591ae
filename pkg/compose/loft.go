package compose

import (
	"fmt"

	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/surface"
	"github.com/chazu/brep/pkg/topo"
)

// stitchCycles is the shared core of Extrude and Connect: given two virgin
// cycles of equal length — meaning neither's half-edges belong to any face
// yet — it builds a fresh reverse-traversal copy of a (so every one of a's
// own half-edges, reused as-is, gets a ready-made sibling) and one side
// face per corresponding pair of edges, connecting vertex i of a to vertex
// i of b with a straight line. b is left untouched: the caller places it in
// a face directly, using its own half-edges forward, exactly as Extrude
// does for the translated copy it builds and Connect does for the profile
// the caller supplies.
//
// Both loops must wind in the same rotational sense when viewed from their
// respective surfaces' outward side, matching the convention Polygon and
// Circle trace points in — stitchCycles does not detect a winding mismatch,
// it just builds the quads the indices imply.
func stitchCycles(g *topo.Graph, a, b handle.Handle[topo.Cycle]) (reversedA handle.Handle[topo.Cycle], sides []handle.Handle[topo.Face], err error) {
	cycleA := a.Get()
	if cycleA == nil {
		return handle.Handle[topo.Cycle]{}, nil, fmt.Errorf("compose: cycle handle references a missing cycle")
	}
	cycleB := b.Get()
	if cycleB == nil {
		return handle.Handle[topo.Cycle]{}, nil, fmt.Errorf("compose: cycle handle references a missing cycle")
	}
	n := len(cycleA.HalfEdges)
	if n == 0 {
		return handle.Handle[topo.Cycle]{}, nil, fmt.Errorf("compose: cycle has no half-edges")
	}
	if len(cycleB.HalfEdges) != n {
		return handle.Handle[topo.Cycle]{}, nil, fmt.Errorf("compose: cannot stitch cycles of different length (%d vs %d)", n, len(cycleB.HalfEdges))
	}

	edgesA := make([]*topo.HalfEdge, n)
	edgesB := make([]*topo.HalfEdge, n)
	for i := range edgesA {
		edgesA[i] = cycleA.HalfEdges[i].Get()
		if edgesA[i] == nil {
			return handle.Handle[topo.Cycle]{}, nil, fmt.Errorf("compose: half-edge handle references a missing half-edge")
		}
		edgesB[i] = cycleB.HalfEdges[i].Get()
		if edgesB[i] == nil {
			return handle.Handle[topo.Cycle]{}, nil, fmt.Errorf("compose: half-edge handle references a missing half-edge")
		}
	}

	vertexA := make([]handle.Handle[topo.Vertex], n)
	nextVertexA := make([]handle.Handle[topo.Vertex], n)
	vertexB := make([]handle.Handle[topo.Vertex], n)
	for i := range edgesA {
		vertexA[i] = edgesA[i].StartVertex
		vertexB[i] = edgesB[i].StartVertex
	}
	for i := range edgesA {
		nextVertexA[i] = vertexA[(i+1)%n]
	}

	verticalCurves := make([]handle.Handle[topo.Curve], n)
	for i := range edgesA {
		startPos := edgesA[i].Curve.Get().Geometry.Point(edgesA[i].Boundary.Lower)
		endPos := edgesB[i].Curve.Get().Geometry.Point(edgesB[i].Boundary.Lower)
		verticalCurves[i] = g.AddCurve(curve.Line{Origin: startPos, Direction: endPos.Sub(startPos)})
	}

	backHalfEdges := make([]handle.Handle[topo.HalfEdge], n)
	for i, he := range edgesA {
		backHalfEdges[n-1-i] = g.AddHalfEdge(topo.HalfEdge{
			Curve:       he.Curve,
			Boundary:    he.Boundary.Reversed(),
			StartVertex: nextVertexA[i],
		})
	}
	reversedA = g.AddCycle(topo.Cycle{HalfEdges: backHalfEdges})

	forward := topo.CurveBoundary{Lower: geom.Point1{X: geom.MustScalar(0)}, Upper: geom.Point1{X: geom.MustScalar(1)}}

	sideFaces := make([]handle.Handle[topo.Face], n)
	for i, heA := range edgesA {
		next := (i + 1) % n
		heB := edgesB[i]
		sideSurfaceH := g.AddSurface(surface.SweptCurve{U: heA.Curve.Get().Geometry, V: vertexDisplacement(heA, heB)})

		s1 := cycleA.HalfEdges[i] // reused directly: sibling of backHalfEdges[n-1-i]
		s2 := g.AddHalfEdge(topo.HalfEdge{Curve: verticalCurves[next], Boundary: forward, StartVertex: nextVertexA[i]})
		s3 := g.AddHalfEdge(topo.HalfEdge{Curve: heB.Curve, Boundary: heB.Boundary.Reversed(), StartVertex: vertexB[next]})
		s4 := g.AddHalfEdge(topo.HalfEdge{Curve: verticalCurves[i], Boundary: forward.Reversed(), StartVertex: vertexB[i]})

		sideCycleH := g.AddCycle(topo.Cycle{HalfEdges: []handle.Handle[topo.HalfEdge]{s1, s2, s3, s4}})
		sideRegionH := g.AddRegion(topo.Region{Exterior: sideCycleH})
		sideFaces[i] = g.AddFace(topo.Face{Surface: sideSurfaceH, Region: sideRegionH})
	}

	return reversedA, sideFaces, nil
}

// vertexDisplacement returns the vector from heA's start point to heB's
// start point, used only to give each side face's SweptCurve surface a
// reasonable sweep vector for triangulation; it does not need to be exact
// away from the two curves' own start parameters.
func vertexDisplacement(heA, heB *topo.HalfEdge) geom.Vector3 {
	a := heA.Curve.Get().Geometry.Point(heA.Boundary.Lower)
	b := heB.Curve.Get().Geometry.Point(heB.Boundary.Lower)
	return b.Sub(a)
}
