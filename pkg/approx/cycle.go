package approx

import (
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/tolerance"
	"github.com/chazu/brep/pkg/topo"
)

// Cycle approximates every half-edge of cycle in order and concatenates
// their points, then appends the first point again to close the loop —
// the same shape as fj-core's CycleApprox::points.
func Cycle(g *topo.Graph, cache *Cache, cycle topo.Cycle, tol tolerance.Tolerance) []Point {
	var points []Point
	for _, heHandle := range cycle.HalfEdges {
		he := heHandle.Get()
		if he == nil {
			continue
		}
		points = append(points, cache.Curve(g, he.Curve, he.Boundary, tol)...)
	}
	if len(points) > 0 {
		points = append(points, points[0])
	}
	return points
}

// Segments converts a point polyline (as returned by Cycle) into a slice of
// straight segments connecting consecutive points.
func Segments(points []Point) []geom.Segment {
	if len(points) < 2 {
		return nil
	}
	out := make([]geom.Segment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		out = append(out, geom.Segment{Start: points[i].Pos, End: points[i+1].Pos})
	}
	return out
}
