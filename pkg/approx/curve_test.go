package approx

import (
	"math"
	"testing"

	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/tolerance"
	"github.com/chazu/brep/pkg/topo"
)

func boundary(lo, hi float64) topo.CurveBoundary {
	return topo.CurveBoundary{
		Lower: geom.Point1{X: geom.MustScalar(lo)},
		Upper: geom.Point1{X: geom.MustScalar(hi)},
	}
}

func TestLineApproxHasNoInteriorPoints(t *testing.T) {
	l := curve.Line{Direction: geom.Vector3{X: geom.MustScalar(1)}}
	pts := Curve(l, boundary(0, 5), tolerance.MustNew(0.01))
	if len(pts) != 2 {
		t.Fatalf("expected exactly 2 points (the boundary endpoints), got %d", len(pts))
	}
}

func TestCircleApproxIsDeterministicAcrossOverlappingBoundaries(t *testing.T) {
	c := curve.Circle{
		U:      geom.Vector3{X: geom.MustScalar(1)},
		V:      geom.Vector3{Y: geom.MustScalar(1)},
		Radius: geom.MustScalar(10),
	}
	tol := tolerance.MustNew(0.01)

	full := Curve(c, boundary(0, 6.283185307), tol)
	sub := Curve(c, boundary(1.0, 2.0), tol)

	// Every point of sub in (1,2) must also appear, at the same position,
	// among full's points.
	for _, sp := range sub {
		found := false
		for _, fp := range full {
			if sp.Param1 == fp.Param1 {
				if sp.Pos != fp.Pos {
					t.Errorf("same parameter %v produced different positions: %v vs %v", sp.Param1, sp.Pos, fp.Pos)
				}
				found = true
				break
			}
		}
		if !found && sp.Param1.X.Float64() > 1.0 && sp.Param1.X.Float64() < 2.0 {
			t.Errorf("interior point at %v from sub-boundary query missing from full query", sp.Param1)
		}
	}
}

func TestCircleAngularStepDividesFullCircleEvenly(t *testing.T) {
	step := circleAngularStep(1.0, 0.01)
	n := 2 * math.Pi / step
	rounded := math.Round(n)
	if math.Abs(n-rounded) > 1e-9 {
		t.Fatalf("2*pi/step = %v is not an integer segment count", n)
	}
	if rounded < 3 {
		t.Errorf("segment count %v below the minimum-3-sided floor", rounded)
	}
}

func TestCircleAngularStepFloorsAtThreeSegments(t *testing.T) {
	// radius=1, tol=2 means tol exceeds the radius: acos(1-tol/radius)
	// is undefined territory (ratio clamps to -1, acos(-1)=pi), and the
	// step must still floor at the minimum 3-sided approximation rather
	// than degenerating toward a single point.
	step := circleAngularStep(1.0, 2.0)
	n := math.Round(2 * math.Pi / step)
	if n != 3 {
		t.Errorf("segment count = %v, want 3 for tol >= radius", n)
	}
}

func TestCircleAngularStepMatchesIntegerSegmentFormula(t *testing.T) {
	radius, tol := 10.0, 0.01
	ratio := 1 - tol/radius
	wantN := math.Ceil(math.Max(math.Pi/math.Acos(ratio), 3))
	wantStep := 2 * math.Pi / wantN

	step := circleAngularStep(radius, tol)
	if math.Abs(step-wantStep) > 1e-12 {
		t.Errorf("circleAngularStep(%v, %v) = %v, want %v", radius, tol, step, wantStep)
	}
}

func TestCircleApproxReversedBoundaryReversesOrder(t *testing.T) {
	c := curve.Circle{
		U:      geom.Vector3{X: geom.MustScalar(1)},
		V:      geom.Vector3{Y: geom.MustScalar(1)},
		Radius: geom.MustScalar(10),
	}
	tol := tolerance.MustNew(0.01)

	forward := Curve(c, boundary(0, 3), tol)
	backward := Curve(c, boundary(3, 0), tol)

	if len(forward) != len(backward) {
		t.Fatalf("forward/backward point counts differ: %d vs %d", len(forward), len(backward))
	}
	for i := range forward {
		j := len(backward) - 1 - i
		if forward[i].Pos != backward[j].Pos {
			t.Errorf("forward[%d]=%v should match backward[%d]=%v", i, forward[i].Pos, j, backward[j].Pos)
		}
	}
}
