// Package surface defines analytic 2D surface geometry embedded in 3D
// space, the surface analogue of pkg/curve.
package surface

import "github.com/chazu/brep/pkg/geom"

// Geometry is implemented by every surface kind. Point maps a surface-local
// (u, v) coordinate to a position in model space. As with curve.Geometry,
// calling Point twice with the same coordinate must return the same
// result.
type Geometry interface {
	Point(p geom.Point2) geom.Point3
}

// Planar is implemented by surface kinds that admit a single linear inverse
// of Point — true planes, and any wrapper (Flipped, Translated, Transformed)
// whose Inner is itself Planar. The triangulator uses PlanarUV to recover a
// face's 2D surface coordinates from a 3D boundary point approximated in
// model space; a curved surface (a cylinder's SweptCurve, say) is not
// Planar, since its U curve has no single linear inverse.
type Planar interface {
	PlanarUV(p geom.Point3) (geom.Point2, bool)
}
