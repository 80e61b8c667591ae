package compose

import (
	"fmt"

	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/surface"
	"github.com/chazu/brep/pkg/topo"
)

// Triangle builds a single triangular Face spanning three points, on the
// plane those points define. Degenerate (collinear) input is rejected,
// since the plane's U/V axes come directly from the first two edges.
func Triangle(g *topo.Graph, points [3]geom.Point3) (handle.Handle[topo.Face], error) {
	u := points[1].Sub(points[0])
	v := points[2].Sub(points[0])
	if u.Cross(v).SqMagnitude().Float64() == 0 {
		return handle.Handle[topo.Face]{}, fmt.Errorf("compose: triangle points are collinear")
	}

	planeH := g.AddSurface(surface.SweptCurve{
		U: curve.Line{Origin: points[0], Direction: u},
		V: v,
	})
	cycleH, err := Polygon3D(g, points[:])
	if err != nil {
		return handle.Handle[topo.Face]{}, err
	}
	regionH := RegionFromCycles(g, cycleH)
	return Face(g, planeH, regionH), nil
}

// Tetrahedron builds the closed Shell of a tetrahedron from four points,
// one triangular face per combination of three of them, each wound so its
// outward normal points away from the fourth point.
func Tetrahedron(g *topo.Graph, points [4]geom.Point3) (handle.Handle[topo.Shell], error) {
	faceIndices := [4][3]int{
		{0, 2, 1},
		{0, 1, 3},
		{1, 2, 3},
		{2, 0, 3},
	}

	faces := make([]handle.Handle[topo.Face], 4)
	for i, idx := range faceIndices {
		fh, err := Triangle(g, [3]geom.Point3{points[idx[0]], points[idx[1]], points[idx[2]]})
		if err != nil {
			return handle.Handle[topo.Shell]{}, fmt.Errorf("compose: tetrahedron face %d: %w", i, err)
		}
		faces[i] = fh
	}
	return g.AddShell(topo.Shell{Faces: faces}), nil
}

// SolidTetrahedron wraps Tetrahedron's shell into a Solid.
func SolidTetrahedron(g *topo.Graph, points [4]geom.Point3) (handle.Handle[topo.Solid], error) {
	shellH, err := Tetrahedron(g, points)
	if err != nil {
		return handle.Handle[topo.Solid]{}, err
	}
	return g.AddSolid(topo.Solid{Shells: []handle.Handle[topo.Shell]{shellH}}), nil
}

// Box builds an axis-aligned cuboid Solid spanning [min, max] by sketching
// its bottom face on the XY plane at z=min.Z and extruding by the box's
// height along +Z.
func Box(g *topo.Graph, min, max geom.Point3) (handle.Handle[topo.Solid], error) {
	if max.X.Float64() <= min.X.Float64() || max.Y.Float64() <= min.Y.Float64() || max.Z.Float64() <= min.Z.Float64() {
		return handle.Handle[topo.Solid]{}, fmt.Errorf("compose: box requires max strictly greater than min on every axis")
	}

	planeH := g.AddSurface(surface.SweptCurve{
		U: curve.Line{Origin: geom.Point3{Z: min.Z}, Direction: geom.Vector3{X: geom.MustScalar(1)}},
		V: geom.Vector3{Y: geom.MustScalar(1)},
	})
	points2D := []geom.Point2{
		{X: min.X, Y: min.Y},
		{X: max.X, Y: min.Y},
		{X: max.X, Y: max.Y},
		{X: min.X, Y: max.Y},
	}
	bottomH, err := PolygonFace(g, planeH, points2D)
	if err != nil {
		return handle.Handle[topo.Solid]{}, err
	}
	return Extrude(g, bottomH, geom.Vector3{Z: max.Z.Sub(min.Z)})
}
