package geom

// Go has no const generics, so the dimensioned Point<D>/Vector<D> family
// from the math kernel is realized as one concrete type per dimension
// instead of a single generic type parameterized on array length.

// Vector1 is a displacement in curve-parameter space.
type Vector1 struct{ X Scalar }

// Vector2 is a displacement in surface-parameter space.
type Vector2 struct{ X, Y Scalar }

// Vector3 is a displacement in 3D model space.
type Vector3 struct{ X, Y, Z Scalar }

// NewVector3 builds a Vector3 from raw components, rejecting non-finite input.
func NewVector3(x, y, z float64) (Vector3, error) {
	sx, err := NewScalar(x)
	if err != nil {
		return Vector3{}, err
	}
	sy, err := NewScalar(y)
	if err != nil {
		return Vector3{}, err
	}
	sz, err := NewScalar(z)
	if err != nil {
		return Vector3{}, err
	}
	return Vector3{sx, sy, sz}, nil
}

func (v Vector1) Add(o Vector1) Vector1 { return Vector1{v.X.Add(o.X)} }
func (v Vector1) Sub(o Vector1) Vector1 { return Vector1{v.X.Sub(o.X)} }
func (v Vector1) Scale(s Scalar) Vector1 { return Vector1{v.X.Mul(s)} }
func (v Vector1) Magnitude() Scalar     { return v.X.Abs() }

func (v Vector2) Add(o Vector2) Vector2  { return Vector2{v.X.Add(o.X), v.Y.Add(o.Y)} }
func (v Vector2) Sub(o Vector2) Vector2  { return Vector2{v.X.Sub(o.X), v.Y.Sub(o.Y)} }
func (v Vector2) Scale(s Scalar) Vector2 { return Vector2{v.X.Mul(s), v.Y.Mul(s)} }
func (v Vector2) Dot(o Vector2) Scalar   { return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)) }
func (v Vector2) SqMagnitude() Scalar    { return v.Dot(v) }
func (v Vector2) Magnitude() Scalar      { return v.SqMagnitude().Sqrt() }

// Cross returns the scalar (z-component) cross product, used for orientation
// tests in the 2D triangulator.
func (v Vector2) Cross(o Vector2) Scalar {
	return v.X.Mul(o.Y).Sub(v.Y.Mul(o.X))
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)}
}

func (v Vector3) Scale(s Scalar) Vector3 {
	return Vector3{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

func (v Vector3) Dot(o Vector3) Scalar {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)).Add(v.Z.Mul(o.Z))
}

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y.Mul(o.Z).Sub(v.Z.Mul(o.Y)),
		v.Z.Mul(o.X).Sub(v.X.Mul(o.Z)),
		v.X.Mul(o.Y).Sub(v.Y.Mul(o.X)),
	}
}

func (v Vector3) SqMagnitude() Scalar { return v.Dot(v) }
func (v Vector3) Magnitude() Scalar   { return v.SqMagnitude().Sqrt() }

// Normalized returns v scaled to unit length. Panics if v is the zero vector.
func (v Vector3) Normalized() Vector3 {
	m := v.Magnitude()
	return v.Scale(MustScalar(1).Div(m))
}
