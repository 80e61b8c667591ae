package bound

import (
	"github.com/chazu/brep/pkg/approx"
	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/tolerance"
	"github.com/chazu/brep/pkg/topo"
)

// OfHalfEdge returns the bounding box of he, grounded on fj-core's
// per-curve-kind treatment: a line's box is the exact box of its two
// boundary points, a circle's is the conservative square enclosing it
// (center +/- radius on both of its plane axes), and anything else falls
// back to bounding its tolerance-driven approximation.
func OfHalfEdge(g *topo.Graph, cache *approx.Cache, he *topo.HalfEdge, tol tolerance.Tolerance) geom.Aabb3 {
	curveObj := he.Curve.Get()
	if curveObj == nil {
		panic("bound: half-edge references a missing curve")
	}

	switch c := curveObj.Geometry.(type) {
	case curve.Line:
		start := c.Point(he.Boundary.Lower)
		end := c.Point(he.Boundary.Upper)
		return geom.NewAabb3FromPoints([]geom.Point3{start, end})
	case curve.Circle:
		r := c.Radius
		corner := c.U.Scale(r).Add(c.V.Scale(r))
		return geom.NewAabb3FromPoints([]geom.Point3{
			c.Center.Add(corner),
			c.Center.Sub(corner),
			c.Center.Add(c.U.Scale(r)).Sub(c.V.Scale(r)),
			c.Center.Sub(c.U.Scale(r)).Add(c.V.Scale(r)),
		})
	default:
		points := cache.Curve(g, he.Curve, he.Boundary, tol)
		pts := make([]geom.Point3, len(points))
		for i, p := range points {
			pts[i] = p.Pos
		}
		return geom.NewAabb3FromPoints(pts)
	}
}

// OfCycle merges the bounding boxes of every half-edge in cycle.
func OfCycle(g *topo.Graph, cache *approx.Cache, cycle topo.Cycle, tol tolerance.Tolerance) (geom.Aabb3, bool) {
	var boxes []geom.Aabb3
	for _, heHandle := range cycle.HalfEdges {
		he := heHandle.Get()
		if he == nil {
			continue
		}
		boxes = append(boxes, OfHalfEdge(g, cache, he, tol))
	}
	return geom.MergeAabb3(boxes)
}

// OfRegion merges the bounding boxes of region's exterior and interior
// cycles.
func OfRegion(g *topo.Graph, cache *approx.Cache, region topo.Region, tol tolerance.Tolerance) (geom.Aabb3, bool) {
	var boxes []geom.Aabb3
	if c := region.Exterior.Get(); c != nil {
		if box, ok := OfCycle(g, cache, *c, tol); ok {
			boxes = append(boxes, box)
		}
	}
	for _, ih := range region.Interiors {
		if c := ih.Get(); c != nil {
			if box, ok := OfCycle(g, cache, *c, tol); ok {
				boxes = append(boxes, box)
			}
		}
	}
	return geom.MergeAabb3(boxes)
}

// OfFace returns f's bounding box, delegating to its region.
func OfFace(g *topo.Graph, cache *approx.Cache, f topo.Face, tol tolerance.Tolerance) (geom.Aabb3, bool) {
	region := f.Region.Get()
	if region == nil {
		return geom.Aabb3{}, false
	}
	return OfRegion(g, cache, *region, tol)
}

// OfShell merges the bounding boxes of every face in shell.
func OfShell(g *topo.Graph, cache *approx.Cache, shell topo.Shell, tol tolerance.Tolerance) (geom.Aabb3, bool) {
	var boxes []geom.Aabb3
	for _, fh := range shell.Faces {
		f := fh.Get()
		if f == nil {
			continue
		}
		if box, ok := OfFace(g, cache, *f, tol); ok {
			boxes = append(boxes, box)
		}
	}
	return geom.MergeAabb3(boxes)
}

// OfSolid merges the bounding boxes of every shell in solid.
func OfSolid(g *topo.Graph, cache *approx.Cache, solid topo.Solid, tol tolerance.Tolerance) (geom.Aabb3, bool) {
	var boxes []geom.Aabb3
	for _, sh := range solid.Shells {
		s := sh.Get()
		if s == nil {
			continue
		}
		if box, ok := OfShell(g, cache, *s, tol); ok {
			boxes = append(boxes, box)
		}
	}
	return geom.MergeAabb3(boxes)
}
