package approx

import (
	"testing"

	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/tolerance"
	"github.com/chazu/brep/pkg/topo"
)

func buildTriangleCycle(g *topo.Graph) topo.Cycle {
	pts := []geom.Point3{
		{},
		{X: geom.MustScalar(1)},
		{Y: geom.MustScalar(1)},
	}
	verts := make([]handle.Handle[topo.Vertex], len(pts))
	for i := range verts {
		verts[i] = g.AddVertex()
	}

	var edges []handle.Handle[topo.HalfEdge]
	for i := range pts {
		from, to := pts[i], pts[(i+1)%len(pts)]
		c := g.AddCurve(curve.Line{Origin: from, Direction: to.Sub(from)})
		edges = append(edges, g.AddHalfEdge(topo.HalfEdge{
			Curve:       c,
			Boundary:    topo.CurveBoundary{Lower: geom.Point1{}, Upper: geom.Point1{X: geom.MustScalar(1)}},
			StartVertex: verts[i],
		}))
	}
	return topo.Cycle{HalfEdges: edges}
}

func TestCycleApproxClosesLoop(t *testing.T) {
	g := topo.NewGraph()
	cycle := buildTriangleCycle(g)
	cache := NewCache()

	points := Cycle(g, cache, cycle, tolerance.Default)
	if len(points) == 0 {
		t.Fatal("expected nonempty approximation")
	}
	if points[0].Pos != points[len(points)-1].Pos {
		t.Errorf("cycle approximation should close: first=%v last=%v", points[0].Pos, points[len(points)-1].Pos)
	}
}

func TestSegmentsFromCycle(t *testing.T) {
	g := topo.NewGraph()
	cycle := buildTriangleCycle(g)
	cache := NewCache()

	points := Cycle(g, cache, cycle, tolerance.Default)
	segs := Segments(points)
	if len(segs) != len(points)-1 {
		t.Errorf("segment count = %d, want %d", len(segs), len(points)-1)
	}
}
