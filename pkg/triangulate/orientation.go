package triangulate

import "github.com/chazu/brep/pkg/geom"

// signedArea returns twice the signed area of poly: positive for
// counter-clockwise winding, negative for clockwise.
func signedArea(poly []geom.Point2) geom.Scalar {
	var sum geom.Scalar
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		sum = sum.Add(a.X.Mul(b.Y).Sub(b.X.Mul(a.Y)))
	}
	return sum
}

// isCCW reports whether poly is wound counter-clockwise.
func isCCW(poly []geom.Point2) bool {
	return signedArea(poly) > 0
}

// orientedCCW returns a copy of poly wound counter-clockwise.
func orientedCCW(poly []geom.Point2) []geom.Point2 {
	if isCCW(poly) {
		return append([]geom.Point2(nil), poly...)
	}
	return reversed(poly)
}

// orientedCW returns a copy of poly wound clockwise.
func orientedCW(poly []geom.Point2) []geom.Point2 {
	if !isCCW(poly) {
		return append([]geom.Point2(nil), poly...)
	}
	return reversed(poly)
}

func reversed(poly []geom.Point2) []geom.Point2 {
	out := make([]geom.Point2, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = p
	}
	return out
}

// pointInTriangle reports whether p lies inside (or on the boundary of)
// the triangle (a, b, c), via same-sign barycentric cross products.
func pointInTriangle(p, a, b, c geom.Point2) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
