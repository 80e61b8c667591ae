package bound

import (
	"testing"

	"github.com/chazu/brep/pkg/approx"
	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/tolerance"
	"github.com/chazu/brep/pkg/topo"
)

func TestOfHalfEdgeLine(t *testing.T) {
	g := topo.NewGraph()
	ch := g.AddCurve(curve.Line{Origin: p3(0, 0, 0), Direction: geom.Vector3{X: geom.MustScalar(1)}})
	v := g.AddVertex()
	he := topo.HalfEdge{
		Curve:       ch,
		Boundary:    topo.CurveBoundary{Lower: geom.Point1{}, Upper: geom.Point1{X: geom.MustScalar(5)}},
		StartVertex: v,
	}
	cache := approx.NewCache()

	box := OfHalfEdge(g, cache, &he, tolerance.Default)
	if box.Min != (p3(0, 0, 0)) || box.Max != (p3(5, 0, 0)) {
		t.Errorf("box = %+v, want min=(0,0,0) max=(5,0,0)", box)
	}
}

func TestOfHalfEdgeCircle(t *testing.T) {
	g := topo.NewGraph()
	ch := g.AddCurve(curve.Circle{
		U:      geom.Vector3{X: geom.MustScalar(1)},
		V:      geom.Vector3{Y: geom.MustScalar(1)},
		Radius: geom.MustScalar(2),
	})
	v := g.AddVertex()
	he := topo.HalfEdge{Curve: ch, StartVertex: v}
	cache := approx.NewCache()

	box := OfHalfEdge(g, cache, &he, tolerance.Default)
	if box.Min.X.Float64() > -2.0001 && box.Min.X.Float64() < -1.9999 {
		// within expected range
	} else {
		t.Errorf("box.Min.X = %v, want ~-2", box.Min.X)
	}
}

func TestOfShellMergesFaces(t *testing.T) {
	g := topo.NewGraph()
	shell, _ := buildSquareShellForBound(g)
	cache := approx.NewCache()

	box, ok := OfShell(g, cache, shell, tolerance.Default)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if box.Min != (p3(0, 0, 0)) {
		t.Errorf("box.Min = %v, want (0,0,0)", box.Min)
	}
}

// buildSquareShellForBound mirrors topo's test fixture locally to avoid an
// import cycle with topo's _test.go file.
func buildSquareShellForBound(g *topo.Graph) (topo.Shell, [4]handle.Handle[topo.Vertex]) {
	var verts [4]handle.Handle[topo.Vertex]
	for i := range verts {
		verts[i] = g.AddVertex()
	}
	pts := [4]geom.Point3{
		p3(0, 0, 0), p3(1, 0, 0), p3(1, 1, 0), p3(0, 1, 0),
	}
	var edges []handle.Handle[topo.HalfEdge]
	for i := 0; i < 4; i++ {
		from, to := pts[i], pts[(i+1)%4]
		c := g.AddCurve(curve.Line{Origin: from, Direction: to.Sub(from)})
		edges = append(edges, g.AddHalfEdge(topo.HalfEdge{
			Curve:       c,
			Boundary:    topo.CurveBoundary{Lower: geom.Point1{}, Upper: geom.Point1{X: geom.MustScalar(1)}},
			StartVertex: verts[i],
		}))
	}
	cycle := g.AddCycle(topo.Cycle{HalfEdges: edges})
	region := g.AddRegion(topo.Region{Exterior: cycle})
	face := g.AddFace(topo.Face{Region: region})
	return topo.Shell{Faces: []handle.Handle[topo.Face]{face}}, verts
}
