package triangulate

import (
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/surface"
)

// Lift3D maps a 2D triangulation into 3D by pushing each point through
// surf. The triangulation happens once in 2D surface-local coordinates;
// lifting is a separate, cheap step so the same 2D triangulation can be
// reused against a transformed copy of the surface (see pkg/xform) without
// re-triangulating.
func Lift3D(points []geom.Point2, tris []IndexTriangle, surf surface.Geometry) []geom.Triangle {
	lifted := make([]geom.Point3, len(points))
	for i, p := range points {
		lifted[i] = surf.Point(p)
	}

	out := make([]geom.Triangle, len(tris))
	for i, tr := range tris {
		out[i] = geom.Triangle{A: lifted[tr.A], B: lifted[tr.B], C: lifted[tr.C]}
	}
	return out
}
