package approx

import (
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/tolerance"
	"github.com/chazu/brep/pkg/topo"
)

type cacheKey struct {
	curve    handle.Handle[topo.Curve]
	boundary topo.CurveBoundary
	tol      tolerance.Tolerance
}

// Cache memoizes curve approximations keyed on (curve handle, boundary,
// tolerance),
// grounded on fj-core's CurveApproxCache. Approximating the same curve over
// the same boundary is common — every half-edge sharing a curve with its
// sibling queries the same (or an overlapping) boundary — so memoizing
// avoids redundant trigonometry on repeated lookups within one modeling
// session.
type Cache struct {
	entries map[cacheKey][]Point
}

// NewCache returns an empty approximation cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey][]Point)}
}

// Curve returns the approximation of ch's curve over boundary at the given
// tolerance, computing and storing it on first request.
func (c *Cache) Curve(g *topo.Graph, ch handle.Handle[topo.Curve], boundary topo.CurveBoundary, tol tolerance.Tolerance) []Point {
	key := cacheKey{curve: ch, boundary: boundary, tol: tol}
	if pts, ok := c.entries[key]; ok {
		return pts
	}
	curveObj := ch.Get()
	if curveObj == nil {
		return nil
	}
	pts := Curve(curveObj.Geometry, boundary, tol)
	c.entries[key] = pts
	return pts
}

// Len returns the number of distinct (curve, boundary, tolerance) entries
// memoized so far.
func (c *Cache) Len() int {
	return len(c.entries)
}
