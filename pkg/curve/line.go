package curve

import "github.com/chazu/brep/pkg/geom"

// Line is the curve x(t) = Origin + t*Direction. Per fj-core's GenPolyline
// impl for Line, its approximation is special-cased: a line segment is
// approximated by its two endpoints alone, with no interior points,
// regardless of tolerance, since any two points on a line already
// interpolate exactly (see pkg/approx).
type Line struct {
	Origin    geom.Point3
	Direction geom.Vector3
}

var _ Geometry = Line{}

// Point returns Origin + p.X*Direction.
func (l Line) Point(p geom.Point1) geom.Point3 {
	return l.Origin.Add(l.Direction.Scale(p.X))
}
