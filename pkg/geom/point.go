package geom

// Point1 is a position in curve-parameter space ("curve coordinates").
type Point1 struct{ X Scalar }

// Point2 is a position in surface-parameter space ("surface coordinates").
type Point2 struct{ X, Y Scalar }

// Point3 is a position in 3D model space.
type Point3 struct{ X, Y, Z Scalar }

// NewPoint3 builds a Point3 from raw components, rejecting non-finite input.
func NewPoint3(x, y, z float64) (Point3, error) {
	v, err := NewVector3(x, y, z)
	if err != nil {
		return Point3{}, err
	}
	return Point3{v.X, v.Y, v.Z}, nil
}

func (p Point1) Sub(o Point1) Vector1 { return Vector1{p.X.Sub(o.X)} }
func (p Point1) Add(v Vector1) Point1 { return Point1{p.X.Add(v.X)} }

func (p Point2) Sub(o Point2) Vector2 { return Vector2{p.X.Sub(o.X), p.Y.Sub(o.Y)} }
func (p Point2) Add(v Vector2) Point2 { return Point2{p.X.Add(v.X), p.Y.Add(v.Y)} }

func (p Point3) Sub(o Point3) Vector3 {
	return Vector3{p.X.Sub(o.X), p.Y.Sub(o.Y), p.Z.Sub(o.Z)}
}

func (p Point3) Add(v Vector3) Point3 {
	return Point3{p.X.Add(v.X), p.Y.Add(v.Y), p.Z.Add(v.Z)}
}

// Lerp linearly interpolates between p and o at parameter t in [0, 1].
func (p Point3) Lerp(o Point3, t Scalar) Point3 {
	return p.Add(o.Sub(p).Scale(t))
}

// DistanceTo returns the Euclidean distance between p and o.
func (p Point3) DistanceTo(o Point3) Scalar { return p.Sub(o).Magnitude() }
