package surface

import "github.com/chazu/brep/pkg/geom"

// Translated wraps a surface and offsets every point it produces by a fixed
// vector, without needing to re-derive the underlying geometry — the
// surface analogue of fj-core's TransformedSurface, specialized to pure
// translation. compose.Extrude uses it for an extrusion's front face;
// pkg/xform wraps surfaces in Transformed instead (see pkg/xform for the
// general transform-with-cache machinery).
type Translated struct {
	Inner  Geometry
	Offset geom.Vector3
}

var _ Geometry = Translated{}

// Point delegates to Inner and then adds Offset.
func (t Translated) Point(p geom.Point2) geom.Point3 {
	return t.Inner.Point(p).Add(t.Offset)
}

// PlanarUV undoes Offset and delegates to Inner, the inverse of Point. It
// returns ok=false whenever Inner has no PlanarUV of its own.
func (t Translated) PlanarUV(p geom.Point3) (geom.Point2, bool) {
	planar, ok := t.Inner.(Planar)
	if !ok {
		return geom.Point2{}, false
	}
	return planar.PlanarUV(p.Add(t.Offset.Scale(geom.MustScalar(-1))))
}
