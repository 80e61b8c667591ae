package validate

import (
	"testing"

	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/surface"
	"github.com/chazu/brep/pkg/topo"
)

func buildOpenSquareShell(g *topo.Graph) topo.Shell {
	corners := []geom.Point3{
		{}, {X: geom.MustScalar(1)}, {X: geom.MustScalar(1), Y: geom.MustScalar(1)}, {Y: geom.MustScalar(1)},
	}
	var verts [4]handle.Handle[topo.Vertex]
	for i := range verts {
		verts[i] = g.AddVertex()
	}
	var edges []handle.Handle[topo.HalfEdge]
	for i := 0; i < 4; i++ {
		from, to := corners[i], corners[(i+1)%4]
		c := g.AddCurve(curve.Line{Origin: from, Direction: to.Sub(from)})
		edges = append(edges, g.AddHalfEdge(topo.HalfEdge{
			Curve:       c,
			Boundary:    topo.CurveBoundary{Lower: geom.Point1{}, Upper: geom.Point1{X: geom.MustScalar(1)}},
			StartVertex: verts[i],
		}))
	}
	cycle := g.AddCycle(topo.Cycle{HalfEdges: edges})
	region := g.AddRegion(topo.Region{Exterior: cycle})
	sf := g.AddSurface(surface.SweptCurve{})
	face := g.AddFace(topo.Face{Surface: sf, Region: region})
	return topo.Shell{Faces: []handle.Handle[topo.Face]{face}}
}

func TestShellFlagsOpenBoundaryAsMissingSiblings(t *testing.T) {
	g := topo.NewGraph()
	shell := buildOpenSquareShell(g)

	buf := &Buffer{}
	Shell(g, shell, buf)

	if !buf.HasErrors() {
		t.Fatal("a single open face should fail the watertightness check")
	}
	siblingErrors := 0
	for _, e := range buf.Errors() {
		if e.Message == "half-edge has no sibling; shell is not watertight along this curve" {
			siblingErrors++
		}
	}
	if siblingErrors != 4 {
		t.Errorf("expected 4 missing-sibling errors, got %d", siblingErrors)
	}
}

func TestGeometricShellFlagsDegenerateCircle(t *testing.T) {
	g := topo.NewGraph()
	v := g.AddVertex()
	badCurve := g.AddCurve(curve.Circle{Radius: geom.MustScalar(-1)})
	he := g.AddHalfEdge(topo.HalfEdge{Curve: badCurve, StartVertex: v})
	cycle := g.AddCycle(topo.Cycle{HalfEdges: []handle.Handle[topo.HalfEdge]{he, he, he}})
	region := g.AddRegion(topo.Region{Exterior: cycle})
	sf := g.AddSurface(surface.SweptCurve{})
	face := g.AddFace(topo.Face{Surface: sf, Region: region})
	shell := topo.Shell{Faces: []handle.Handle[topo.Face]{face}}

	buf := &Buffer{}
	Shell(g, shell, buf)

	found := false
	for _, e := range buf.Errors() {
		if e.Message == "circle has non-positive radius" {
			found = true
		}
	}
	if !found {
		t.Error("expected a non-positive-radius finding")
	}
}
