// Package geom provides the scalar, point, vector, and transform primitives
// that the rest of the kernel builds on. Every value in this package is
// finite: construction rejects NaN and infinities so that downstream code
// never has to guard against them.
package geom

import (
	"fmt"
	"math"
)

// Scalar is a finite float64. NaN and infinite values cannot be constructed;
// any arithmetic that would produce one is a programming error and panics
// rather than propagating silently.
type Scalar float64

// NewScalar wraps v as a Scalar, rejecting NaN and infinite values.
func NewScalar(v float64) (Scalar, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("geom: scalar must be finite, got %v", v)
	}
	return Scalar(v), nil
}

// MustScalar is like NewScalar but panics on invalid input. Intended for
// constants and test fixtures, not for validating external input.
func MustScalar(v float64) Scalar {
	s, err := NewScalar(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Float64 returns the underlying float64 value.
func (s Scalar) Float64() float64 { return float64(s) }

// finite panics if v is NaN or infinite. Arithmetic helpers call this on
// their result so that a non-finite value can never silently leave this
// package.
func finite(v float64) Scalar {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("geom: arithmetic produced non-finite value %v", v))
	}
	return Scalar(v)
}

// Add returns s + other.
func (s Scalar) Add(other Scalar) Scalar { return finite(float64(s) + float64(other)) }

// Sub returns s - other.
func (s Scalar) Sub(other Scalar) Scalar { return finite(float64(s) - float64(other)) }

// Mul returns s * other.
func (s Scalar) Mul(other Scalar) Scalar { return finite(float64(s) * float64(other)) }

// Div returns s / other. Panics if other is zero (division producing an
// infinity is exactly the non-finite-result condition this package forbids).
func (s Scalar) Div(other Scalar) Scalar { return finite(float64(s) / float64(other)) }

// Neg returns -s.
func (s Scalar) Neg() Scalar { return finite(-float64(s)) }

// Abs returns the absolute value of s.
func (s Scalar) Abs() Scalar { return finite(math.Abs(float64(s))) }

// Sqrt returns the square root of s.
func (s Scalar) Sqrt() Scalar { return finite(math.Sqrt(float64(s))) }

// Less reports whether s < other, giving Scalar a total order.
func (s Scalar) Less(other Scalar) bool { return s < other }

// LessOrEqual reports whether s <= other.
func (s Scalar) LessOrEqual(other Scalar) bool { return s <= other }

// Equal reports exact equality. Callers comparing approximated geometry
// should use a tolerance-based comparison instead.
func (s Scalar) Equal(other Scalar) bool { return s == other }

// Zero is the additive identity.
const Zero Scalar = 0
