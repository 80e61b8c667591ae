package curve

import "github.com/chazu/brep/pkg/geom"

// Transformed wraps a curve and applies an arbitrary geom.Transform to
// every point it produces, rather than re-deriving the underlying geometry
// under the transform — the curve analogue of fj-core's
// TransformedSurface, generalized from translation-only to any Transform
// (see pkg/xform for the cache that keeps repeated transforms of the same
// curve from being rebuilt).
type Transformed struct {
	Inner     Geometry
	Transform geom.Transform
}

var _ Geometry = Transformed{}

// Point delegates to Inner and applies Transform to the result.
func (t Transformed) Point(p geom.Point1) geom.Point3 {
	return t.Transform.Apply(t.Inner.Point(p))
}
