package geom

import "math"

// Transform is a rigid or affine transform: a 3x3 linear part plus a
// translation, applied as p' = M*p + t. Translation and rotation
// accumulate into a single composable matrix rather than being tracked
// separately, which is what the transform-with-cache machinery
// (pkg/xform) keys on.
type Transform struct {
	M [3][3]Scalar
	T Vector3
}

// Identity returns the transform that leaves every point unchanged.
func Identity() Transform {
	one := MustScalar(1)
	return Transform{M: [3][3]Scalar{
		{one, 0, 0},
		{0, one, 0},
		{0, 0, one},
	}}
}

// Translation returns a pure translation by v.
func Translation(v Vector3) Transform {
	t := Identity()
	t.T = v
	return t
}

// RotationAxisAngle returns a rotation of angleRad radians about axis
// (which must be nonzero; it is normalized internally), using the standard
// Rodrigues rotation formula.
func RotationAxisAngle(axis Vector3, angleRad Scalar) Transform {
	a := axis.Normalized()
	sin := finite(math.Sin(float64(angleRad)))
	cos := finite(math.Cos(float64(angleRad)))
	one := MustScalar(1)
	t := one.Sub(cos)

	x, y, z := a.X, a.Y, a.Z
	return Transform{M: [3][3]Scalar{
		{
			cos.Add(x.Mul(x).Mul(t)),
			x.Mul(y).Mul(t).Sub(z.Mul(sin)),
			x.Mul(z).Mul(t).Add(y.Mul(sin)),
		},
		{
			y.Mul(x).Mul(t).Add(z.Mul(sin)),
			cos.Add(y.Mul(y).Mul(t)),
			y.Mul(z).Mul(t).Sub(x.Mul(sin)),
		},
		{
			z.Mul(x).Mul(t).Sub(y.Mul(sin)),
			z.Mul(y).Mul(t).Add(x.Mul(sin)),
			cos.Add(z.Mul(z).Mul(t)),
		},
	}}
}

// Apply transforms a point: M*p + t.
func (tr Transform) Apply(p Point3) Point3 {
	v := Vector3{p.X, p.Y, p.Z}
	r := tr.applyLinear(v)
	return Point3{r.X.Add(tr.T.X), r.Y.Add(tr.T.Y), r.Z.Add(tr.T.Z)}
}

// ApplyVector transforms a direction: M*v, ignoring translation.
func (tr Transform) ApplyVector(v Vector3) Vector3 {
	return tr.applyLinear(v)
}

func (tr Transform) applyLinear(v Vector3) Vector3 {
	row := tr.M
	return Vector3{
		row[0][0].Mul(v.X).Add(row[0][1].Mul(v.Y)).Add(row[0][2].Mul(v.Z)),
		row[1][0].Mul(v.X).Add(row[1][1].Mul(v.Y)).Add(row[1][2].Mul(v.Z)),
		row[2][0].Mul(v.X).Add(row[2][1].Mul(v.Y)).Add(row[2][2].Mul(v.Z)),
	}
}

// Inverse returns the transform that undoes tr: Apply(tr.Inverse().Apply(p))
// and tr.Inverse().Apply(tr.Apply(p)) both return p (up to floating-point
// error), computed via the cofactor formula for a 3x3 matrix. It panics if
// tr's linear part is singular, which never happens for the rigid and
// uniform-scale transforms pkg/xform builds.
func (tr Transform) Inverse() Transform {
	m := tr.M
	// adj is the adjugate of m (the transposed cofactor matrix), laid out
	// so that adj[i][j] is already the numerator for inv[i][j] — no
	// further transpose needed below.
	adj := [3][3]Scalar{
		{
			m[1][1].Mul(m[2][2]).Sub(m[1][2].Mul(m[2][1])),
			m[0][2].Mul(m[2][1]).Sub(m[0][1].Mul(m[2][2])),
			m[0][1].Mul(m[1][2]).Sub(m[0][2].Mul(m[1][1])),
		},
		{
			m[1][2].Mul(m[2][0]).Sub(m[1][0].Mul(m[2][2])),
			m[0][0].Mul(m[2][2]).Sub(m[0][2].Mul(m[2][0])),
			m[0][2].Mul(m[1][0]).Sub(m[0][0].Mul(m[1][2])),
		},
		{
			m[1][0].Mul(m[2][1]).Sub(m[1][1].Mul(m[2][0])),
			m[0][1].Mul(m[2][0]).Sub(m[0][0].Mul(m[2][1])),
			m[0][0].Mul(m[1][1]).Sub(m[0][1].Mul(m[1][0])),
		},
	}
	det := m[0][0].Mul(adj[0][0]).Add(m[0][1].Mul(adj[1][0])).Add(m[0][2].Mul(adj[2][0]))
	if det.Abs().Float64() < 1e-15 {
		panic("geom: Inverse of a singular transform")
	}

	var inv [3][3]Scalar
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv[i][j] = adj[i][j].Div(det)
		}
	}

	out := Transform{M: inv}
	negT := Vector3{tr.T.X.Neg(), tr.T.Y.Neg(), tr.T.Z.Neg()}
	out.T = out.applyLinear(negT)
	return out
}

// Then composes tr followed by next: applying the result is equivalent to
// applying tr, then next, to the same point.
func (tr Transform) Then(next Transform) Transform {
	var out Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum Scalar
			for k := 0; k < 3; k++ {
				sum = sum.Add(next.M[i][k].Mul(tr.M[k][j]))
			}
			out.M[i][j] = sum
		}
	}
	out.T = next.applyLinear(tr.T).Add(next.T)
	return out
}
