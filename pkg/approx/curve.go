package approx

import (
	"math"
	"sort"

	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/tolerance"
	"github.com/chazu/brep/pkg/topo"
)

// Curve approximates geo over boundary at the given tolerance, returning
// the boundary endpoints plus every interior point of geo's globally
// anchored, deterministic point set that falls strictly inside the
// boundary. Points are returned in the order of travel from boundary.Lower
// to boundary.Upper, so a reversed boundary yields the same points in
// reverse.
func Curve(geo curve.Geometry, boundary topo.CurveBoundary, tol tolerance.Tolerance) []Point {
	lower, upper := boundary.Lower.X.Float64(), boundary.Upper.X.Float64()
	reversed := lower > upper
	lo, hi := lower, upper
	if reversed {
		lo, hi = upper, lower
	}

	interior := interiorParameters(geo, tol, lo, hi)

	params := make([]float64, 0, len(interior)+2)
	params = append(params, lo)
	params = append(params, interior...)
	params = append(params, hi)
	sort.Float64s(params)
	params = dedupeSorted(params)

	if reversed {
		for i, j := 0, len(params)-1; i < j; i, j = i+1, j-1 {
			params[i], params[j] = params[j], params[i]
		}
	}

	out := make([]Point, len(params))
	for i, p := range params {
		param1 := geom.Point1{X: geom.MustScalar(p)}
		out[i] = Point{Param1: param1, Pos: geo.Point(param1)}
	}
	return out
}

// interiorParameters returns the subset of geo's globally anchored point
// set lying strictly between lo and hi. The grid is anchored at the
// curve's own parameter origin (0), never at lo, which is what lets two
// differently-bounded half-edges over the same curve agree on every point
// in their overlap.
func interiorParameters(geo curve.Geometry, tol tolerance.Tolerance, lo, hi float64) []float64 {
	switch c := geo.(type) {
	case curve.Line:
		// A line interpolates exactly between any two of its points, so no
		// interior samples are needed regardless of tolerance.
		return nil
	case curve.Circle:
		step := circleAngularStep(c.Radius.Float64(), tol.Float64())
		return gridPointsInOpenInterval(step, lo, hi)
	case curve.Transformed:
		// A transformed curve shares its inner curve's parameter space, so it
		// uses the inner curve's point set.
		return interiorParameters(c.Inner, tol, lo, hi)
	default:
		// Unknown curve kinds fall back to a fixed-stride sampler anchored
		// at 0. This is conservative rather than adaptive, but preserves
		// the determinism contract: the stride depends only on tolerance.
		return gridPointsInOpenInterval(tol.Float64()*4, lo, hi)
	}
}

// circleAngularStep returns the angular step (radians) for a circle of the
// given radius such that the sagitta (the gap between the chord and the arc
// it subtends) does not exceed tol. The step is derived from the integer
// segment count n = ceil(max(pi/acos(1-tol/radius), 3)), never the raw
// per-chord angle directly, so the circle always closes on an even division
// of 2*pi: an odd remainder step at the seam would violate the determinism
// contract just as surely as too few segments would.
func circleAngularStep(radius, tol float64) float64 {
	if radius <= 0 {
		return 2 * math.Pi / 3
	}
	ratio := 1 - tol/radius
	ratio = math.Max(-1, math.Min(1, ratio))
	acos := math.Acos(ratio)
	n := 3.0
	if acos > 0 {
		n = math.Ceil(math.Max(math.Pi/acos, 3))
	}
	return 2 * math.Pi / n
}

// gridPointsInOpenInterval returns every multiple of step, positive or
// negative, strictly between lo and hi.
func gridPointsInOpenInterval(step, lo, hi float64) []float64 {
	if step <= 0 {
		return nil
	}
	var out []float64
	// Each point is computed as k*step from its integer index k rather than
	// accumulated by repeated addition, so the same k yields the same float
	// whatever lo the query started from.
	for k := math.Ceil(lo / step); k*step < hi; k++ {
		if p := k * step; p > lo {
			out = append(out, p)
		}
	}
	return out
}

func dedupeSorted(params []float64) []float64 {
	if len(params) == 0 {
		return params
	}
	out := params[:1]
	for _, p := range params[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
