package curve

import (
	"math"
	"testing"

	"github.com/chazu/brep/pkg/geom"
)

func p1(x float64) geom.Point1 { return geom.Point1{X: geom.MustScalar(x)} }

func TestLinePoint(t *testing.T) {
	l := Line{
		Origin:    geom.Point3{},
		Direction: geom.Vector3{X: geom.MustScalar(1)},
	}
	got := l.Point(p1(3))
	want := geom.Point3{X: geom.MustScalar(3)}
	if got != want {
		t.Errorf("Point(3) = %v, want %v", got, want)
	}
}

func TestLineDeterministic(t *testing.T) {
	l := Line{Direction: geom.Vector3{X: geom.MustScalar(1), Y: geom.MustScalar(1)}}
	a := l.Point(p1(2.5))
	b := l.Point(p1(2.5))
	if a != b {
		t.Errorf("same parameter produced different points: %v vs %v", a, b)
	}
}

func TestCirclePoint(t *testing.T) {
	c := Circle{
		Center: geom.Point3{},
		U:      geom.Vector3{X: geom.MustScalar(1)},
		V:      geom.Vector3{Y: geom.MustScalar(1)},
		Radius: geom.MustScalar(2),
	}

	origin := c.Point(p1(0))
	want := geom.Point3{X: geom.MustScalar(2)}
	if origin != want {
		t.Errorf("Point(0) = %v, want %v", origin, want)
	}

	quarter := c.Point(p1(math.Pi / 2))
	if math.Abs(quarter.X.Float64()) > 1e-9 {
		t.Errorf("Point(pi/2).X = %v, want ~0", quarter.X)
	}
	if math.Abs(quarter.Y.Float64()-2) > 1e-9 {
		t.Errorf("Point(pi/2).Y = %v, want ~2", quarter.Y)
	}
}
