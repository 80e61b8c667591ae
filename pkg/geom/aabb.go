package geom

import "math"

// Aabb3 is an axis-aligned bounding box in 3D model space, grounded on
// fj-core's Aabb<D> (min/max corner pair, merged recursively up the topology
// tree rather than recomputed from scratch at each level).
type Aabb3 struct {
	Min, Max Point3
}

// NewAabb3FromPoints returns the smallest Aabb3 enclosing all of points.
// Panics if points is empty; callers own the decision of what an empty
// bounding volume means for their context.
func NewAabb3FromPoints(points []Point3) Aabb3 {
	if len(points) == 0 {
		panic("geom: NewAabb3FromPoints called with no points")
	}
	box := Aabb3{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.expandToInclude(p)
	}
	return box
}

func (b Aabb3) expandToInclude(p Point3) Aabb3 {
	return Aabb3{
		Min: Point3{minS(b.Min.X, p.X), minS(b.Min.Y, p.Y), minS(b.Min.Z, p.Z)},
		Max: Point3{maxS(b.Max.X, p.X), maxS(b.Max.Y, p.Y), maxS(b.Max.Z, p.Z)},
	}
}

func minS(a, b Scalar) Scalar {
	return finite(math.Min(float64(a), float64(b)))
}

func maxS(a, b Scalar) Scalar {
	return finite(math.Max(float64(a), float64(b)))
}

// Merge returns the smallest Aabb3 enclosing both b and o.
func (b Aabb3) Merge(o Aabb3) Aabb3 {
	return Aabb3{
		Min: Point3{minS(b.Min.X, o.Min.X), minS(b.Min.Y, o.Min.Y), minS(b.Min.Z, o.Min.Z)},
		Max: Point3{maxS(b.Max.X, o.Max.X), maxS(b.Max.Y, o.Max.Y), maxS(b.Max.Z, o.Max.Z)},
	}
}

// MergeAabb3 folds a slice of optional boxes into one, mirroring the
// recursive Option<Aabb>-merge pattern used to compute shell/solid bounds
// from their faces.
func MergeAabb3(boxes []Aabb3) (Aabb3, bool) {
	if len(boxes) == 0 {
		return Aabb3{}, false
	}
	merged := boxes[0]
	for _, b := range boxes[1:] {
		merged = merged.Merge(b)
	}
	return merged, true
}

// Center returns the midpoint of the box.
func (b Aabb3) Center() Point3 {
	return b.Min.Lerp(b.Max, MustScalar(0.5))
}

// Contains reports whether p lies within the box, inclusive of its faces.
func (b Aabb3) Contains(p Point3) bool {
	return b.Min.X.LessOrEqual(p.X) && p.X.LessOrEqual(b.Max.X) &&
		b.Min.Y.LessOrEqual(p.Y) && p.Y.LessOrEqual(b.Max.Y) &&
		b.Min.Z.LessOrEqual(p.Z) && p.Z.LessOrEqual(b.Max.Z)
}
