package surface

import "github.com/chazu/brep/pkg/geom"

// Flipped wraps a surface and swaps its parameter axes, which reverses the
// orientation of the normal implied by walking u then v. Faces that need
// the same underlying geometry with the opposite outward direction (the
// back side of a swept plane, for instance) wrap it in a Flipped rather
// than duplicating the geometry.
type Flipped struct {
	Inner Geometry
}

var _ Geometry = Flipped{}

// Point swaps the coordinate axes before delegating to Inner.
func (f Flipped) Point(p geom.Point2) geom.Point3 {
	return f.Inner.Point(geom.Point2{X: p.Y, Y: p.X})
}

// PlanarUV recovers the surface-local coordinate of p, delegating to Inner
// and swapping the axes back — the inverse of the swap Point applies going
// the other way. It returns ok=false whenever Inner has no PlanarUV of its
// own (e.g. a curved sweep).
func (f Flipped) PlanarUV(p geom.Point3) (geom.Point2, bool) {
	planar, ok := f.Inner.(Planar)
	if !ok {
		return geom.Point2{}, false
	}
	uv, ok := planar.PlanarUV(p)
	if !ok {
		return geom.Point2{}, false
	}
	return geom.Point2{X: uv.Y, Y: uv.X}, true
}
