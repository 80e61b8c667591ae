package geom

import (
	"math"
	"testing"
)

func TestNewScalarRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name string
		v    float64
	}{
		{"nan", math.NaN()},
		{"+inf", math.Inf(1)},
		{"-inf", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewScalar(tt.v); err == nil {
				t.Errorf("NewScalar(%v) should have returned an error", tt.v)
			}
		})
	}
}

func TestScalarArithmetic(t *testing.T) {
	a := MustScalar(3)
	b := MustScalar(4)

	if got := a.Add(b); got != MustScalar(7) {
		t.Errorf("Add = %v, want 7", got)
	}
	if got := a.Sub(b); got != MustScalar(-1) {
		t.Errorf("Sub = %v, want -1", got)
	}
	if got := a.Mul(b); got != MustScalar(12) {
		t.Errorf("Mul = %v, want 12", got)
	}
	if got := b.Div(a); float64(got) < 1.333 || float64(got) > 1.334 {
		t.Errorf("Div = %v, want ~1.333", got)
	}
}

func TestScalarDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Div by zero should panic")
		}
	}()
	MustScalar(1).Div(MustScalar(0))
}

func TestScalarOrdering(t *testing.T) {
	a, b := MustScalar(1), MustScalar(2)
	if !a.Less(b) {
		t.Error("1 should be less than 2")
	}
	if !a.LessOrEqual(a) {
		t.Error("1 should be <= 1")
	}
	if !a.Equal(MustScalar(1)) {
		t.Error("1 should equal 1")
	}
}
