package triangulate

import (
	"fmt"

	"github.com/chazu/brep/pkg/geom"
)

// earClip triangulates a simple, counter-clockwise-wound polygon (poly,
// indexed 0..len(poly)-1) via the classic ear-clipping algorithm: repeatedly
// find a convex vertex whose triangle with its neighbors contains no other
// polygon vertex, emit that triangle, and remove the vertex.
func earClip(poly []geom.Point2) ([]IndexTriangle, error) {
	n := len(poly)
	if n < 3 {
		return nil, fmt.Errorf("triangulate: polygon needs at least 3 vertices, got %d", n)
	}

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	var out []IndexTriangle
	guard := 0
	maxIterations := n * n
	for len(remaining) > 3 {
		guard++
		if guard > maxIterations {
			return nil, fmt.Errorf("triangulate: ear clipping failed to converge on %d remaining vertices (degenerate or self-intersecting polygon)", len(remaining))
		}

		clipped := false
		for i := range remaining {
			prev := remaining[(i-1+len(remaining))%len(remaining)]
			cur := remaining[i]
			next := remaining[(i+1)%len(remaining)]

			if !isConvex(poly[prev], poly[cur], poly[next]) {
				continue
			}
			if anyVertexInside(poly, remaining, prev, cur, next) {
				continue
			}

			out = append(out, IndexTriangle{A: prev, B: cur, C: next})
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, fmt.Errorf("triangulate: no ear found among %d remaining vertices", len(remaining))
		}
	}
	out = append(out, IndexTriangle{A: remaining[0], B: remaining[1], C: remaining[2]})
	return out, nil
}

func isConvex(prev, cur, next geom.Point2) bool {
	return cur.Sub(prev).Cross(next.Sub(cur)) > 0
}

func anyVertexInside(poly []geom.Point2, remaining []int, prev, cur, next int) bool {
	for _, idx := range remaining {
		if idx == prev || idx == cur || idx == next {
			continue
		}
		// Hole bridging duplicates vertices; a copy sitting on one of the
		// triangle's own corners does not block the ear.
		if poly[idx] == poly[prev] || poly[idx] == poly[cur] || poly[idx] == poly[next] {
			continue
		}
		if pointInTriangle(poly[idx], poly[prev], poly[cur], poly[next]) {
			return true
		}
	}
	return false
}
