package geom

// Segment is an oriented straight connection between two approximated
// points, the atomic unit the approximator and the triangulator both
// consume (mirroring fj-core's Segment<D>).
type Segment struct {
	Start, End Point3
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() Scalar { return s.Start.DistanceTo(s.End) }

// Triangle is an ordered triple of 3D points. Winding order carries the
// outward-normal convention used by the mesh assembler.
type Triangle struct {
	A, B, C Point3
}

// Normal returns the (non-normalized) face normal implied by the triangle's
// winding order.
func (t Triangle) Normal() Vector3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

// UnitNormal returns Normal normalized to unit length. Panics on a
// degenerate (zero-area) triangle.
func (t Triangle) UnitNormal() Vector3 {
	return t.Normal().Normalized()
}

// Flipped returns the triangle with reversed winding order, and hence a
// reversed normal.
func (t Triangle) Flipped() Triangle {
	return Triangle{t.A, t.C, t.B}
}
