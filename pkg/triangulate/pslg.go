// Package triangulate turns a planar straight-line graph — an exterior
// polygon plus zero or more interior hole polygons, both expressed in
// surface-local coordinates — into a constrained triangulation, then lifts
// the result into 3D via the owning surface. The planar algorithm
// (bridge-and-clip) is grounded on the same discover-constrain-prune shape
// as a general constrained Delaunay pipeline, simplified to ear clipping
// since the kernel's triangles only need to respect the boundary, not
// satisfy the Delaunay empty-circumcircle property.
package triangulate

import "github.com/chazu/brep/pkg/geom"

// PSLG (planar straight-line graph) is the 2D input to Triangulate: the
// outer boundary of a region plus any holes cut out of it. Holes must lie
// strictly within Exterior and must not touch it or each other.
type PSLG struct {
	Exterior []geom.Point2
	Holes    [][]geom.Point2
}

// IndexTriangle references three points of the slice passed to Triangulate
// by index, avoiding a copy of the (possibly large) point coordinates per
// triangle.
type IndexTriangle struct {
	A, B, C int
}
