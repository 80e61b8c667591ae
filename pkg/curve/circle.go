package curve

import (
	"math"

	"github.com/chazu/brep/pkg/geom"
)

// Circle is a circle of Radius centered at Center, lying in the plane
// spanned by the orthonormal pair (U, V). Its curve-local coordinate is an
// angle in radians: x(t) = Center + Radius*cos(t)*U + Radius*sin(t)*V.
type Circle struct {
	Center geom.Point3
	U, V   geom.Vector3
	Radius geom.Scalar
}

var _ Geometry = Circle{}

// Point returns the point on the circle at angle p.X radians.
func (c Circle) Point(p geom.Point1) geom.Point3 {
	cos := geom.MustScalar(math.Cos(p.X.Float64()))
	sin := geom.MustScalar(math.Sin(p.X.Float64()))
	offset := c.U.Scale(c.Radius.Mul(cos)).Add(c.V.Scale(c.Radius.Mul(sin)))
	return c.Center.Add(offset)
}
