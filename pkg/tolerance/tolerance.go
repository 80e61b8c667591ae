// Package tolerance defines the positive-scalar tolerance value that the
// approximator and triangulator use to decide how finely to sample curves
// and surfaces.
package tolerance

import (
	"fmt"

	"github.com/chazu/brep/pkg/geom"
)

// Tolerance is a strictly positive distance bound: no point generated by an
// approximation may deviate from the true analytic curve or surface by more
// than this amount.
type Tolerance struct {
	value geom.Scalar
}

// Default is a reasonable general-purpose tolerance for model-space units.
var Default = MustNew(1e-3)

// New validates v and wraps it as a Tolerance. v must be finite and
// strictly positive.
func New(v float64) (Tolerance, error) {
	s, err := geom.NewScalar(v)
	if err != nil {
		return Tolerance{}, fmt.Errorf("tolerance: %w", err)
	}
	if v <= 0 {
		return Tolerance{}, fmt.Errorf("tolerance: must be strictly positive, got %v", v)
	}
	return Tolerance{value: s}, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(v float64) Tolerance {
	t, err := New(v)
	if err != nil {
		panic(err)
	}
	return t
}

// Scalar returns the underlying tolerance value.
func (t Tolerance) Scalar() geom.Scalar { return t.value }

// Float64 returns the underlying tolerance value as a float64.
func (t Tolerance) Float64() float64 { return t.value.Float64() }
