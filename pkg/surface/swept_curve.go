package surface

import (
	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
)

// PlanarUV recovers the surface-local coordinate of p for a SweptCurve
// whose U is a straight line — i.e. a genuine plane — by solving the
// least-squares system p - origin = s*direction + t*V for (s, t). This is
// the inverse of Point, needed to project a curve that was approximated in
// 3D model space back into this surface's 2D parameter space for
// triangulation. It returns ok=false when U is not a curve.Line, since a
// curved sweep (a cylinder, say) has no single linear inverse.
func (s SweptCurve) PlanarUV(p geom.Point3) (geom.Point2, bool) {
	line, ok := s.U.(curve.Line)
	if !ok {
		return geom.Point2{}, false
	}

	d := p.Sub(line.Origin)
	dirDotDir := line.Direction.Dot(line.Direction)
	dirDotV := line.Direction.Dot(s.V)
	vDotV := s.V.Dot(s.V)
	dirDotD := line.Direction.Dot(d)
	vDotD := s.V.Dot(d)

	det := dirDotDir.Mul(vDotV).Sub(dirDotV.Mul(dirDotV))
	if det.Abs().Float64() < 1e-15 {
		return geom.Point2{}, false
	}

	sParam := dirDotD.Mul(vDotV).Sub(dirDotV.Mul(vDotD)).Div(det)
	tParam := dirDotDir.Mul(vDotD).Sub(dirDotV.Mul(dirDotD)).Div(det)
	return geom.Point2{X: sParam, Y: tParam}, true
}

// SweptCurve is the surface traced by sweeping U along V: a point at
// surface coordinate (s, t) is U.Point(s) offset by t*V. This is the
// workhorse surface kind — planes, cylinders, and cones are all a line or
// circle swept along a vector — grounded on fj-core's SweptCurve.
type SweptCurve struct {
	U curve.Geometry
	V geom.Vector3
}

var _ Geometry = SweptCurve{}
var _ Planar = SweptCurve{}

// Point returns U.Point({s}) + t*V for surface coordinate (s, t).
func (s SweptCurve) Point(p geom.Point2) geom.Point3 {
	base := s.U.Point(geom.Point1{X: p.X})
	return base.Add(s.V.Scale(p.Y))
}
