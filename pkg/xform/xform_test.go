package xform

import (
	"testing"

	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/topo"
)

func TestCacheCurveMemoizes(t *testing.T) {
	g := topo.NewGraph()
	ch := g.AddCurve(curve.Line{Direction: geom.Vector3{X: geom.MustScalar(1)}})
	cache := NewCache()
	tr := geom.Translation(geom.Vector3{X: geom.MustScalar(5)})

	a := cache.Curve(ch, tr)
	b := cache.Curve(ch, tr)
	if len(cache.curves) != 1 {
		t.Errorf("expected 1 cache entry, got %d", len(cache.curves))
	}

	p1 := geom.Point1{X: geom.MustScalar(1)}
	if a.Point(p1) != b.Point(p1) {
		t.Error("cached transformed curve should produce identical points across calls")
	}
}

func TestCacheCurveAppliesTransform(t *testing.T) {
	g := topo.NewGraph()
	ch := g.AddCurve(curve.Line{Direction: geom.Vector3{X: geom.MustScalar(1)}})
	cache := NewCache()
	tr := geom.Translation(geom.Vector3{X: geom.MustScalar(10)})

	transformed := cache.Curve(ch, tr)
	got := transformed.Point(geom.Point1{})
	want := geom.Point3{X: geom.MustScalar(10)}
	if got != want {
		t.Errorf("Point(0) = %v, want %v", got, want)
	}
}

func TestStackPushPop(t *testing.T) {
	s := NewStack()
	if s.Current() != geom.Identity() {
		t.Error("new stack should start at identity")
	}

	s.Push(geom.Translation(geom.Vector3{X: geom.MustScalar(1)}))
	moved := s.Current().Apply(geom.Point3{})
	if moved != (geom.Point3{X: geom.MustScalar(1)}) {
		t.Errorf("after push, Apply(origin) = %v, want (1,0,0)", moved)
	}

	s.Pop()
	if s.Current() != geom.Identity() {
		t.Error("after pop, stack should return to identity")
	}
}

func TestStackPopWithoutPushPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewStack().Pop()
}
