package topo

import (
	"testing"

	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/handle"
)

func TestGraphAddAndEnumerate(t *testing.T) {
	g := NewGraph()

	v1 := g.AddVertex()
	v2 := g.AddVertex()
	if v1.Equal(v2) {
		t.Error("two distinct vertex inserts should not be equal")
	}

	c := g.AddCurve(curve.Line{Direction: geom.Vector3{X: geom.MustScalar(1)}})
	he := g.AddHalfEdge(HalfEdge{Curve: c, StartVertex: v1})
	cycle := g.AddCycle(Cycle{HalfEdges: []handle.Handle[HalfEdge]{he}})
	_ = cycle

	if g.faces.Len() != 0 {
		t.Errorf("expected 0 faces before any AddFace call, got %d", g.faces.Len())
	}
}
