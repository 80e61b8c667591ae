package surface

import "github.com/chazu/brep/pkg/geom"

// Transformed wraps a surface and applies an arbitrary geom.Transform to
// every point it produces. As in fj-core's TransformedSurface, the
// transform is applied to the evaluated point, not to the 2D surface
// coordinate space the triangulator works in — no need to transform that.
type Transformed struct {
	Inner     Geometry
	Transform geom.Transform
}

var _ Geometry = Transformed{}

// Point delegates to Inner and applies Transform to the result.
func (t Transformed) Point(p geom.Point2) geom.Point3 {
	return t.Transform.Apply(t.Inner.Point(p))
}

// PlanarUV applies Transform's inverse to p and delegates to Inner, the
// inverse of Point. It returns ok=false whenever Inner has no PlanarUV of
// its own.
func (t Transformed) PlanarUV(p geom.Point3) (geom.Point2, bool) {
	planar, ok := t.Inner.(Planar)
	if !ok {
		return geom.Point2{}, false
	}
	return planar.PlanarUV(t.Transform.Inverse().Apply(p))
}
