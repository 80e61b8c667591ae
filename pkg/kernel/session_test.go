package kernel

import (
	"testing"

	"github.com/chazu/brep/pkg/tolerance"
	"github.com/chazu/brep/pkg/validate"
)

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession()
	if s.ApproxTol != tolerance.Default {
		t.Errorf("ApproxTol = %v, want default", s.ApproxTol)
	}
	if s.Graph == nil || s.Approx == nil || s.Transforms == nil || s.Validation == nil {
		t.Error("NewSession should initialize every field")
	}
}

func TestWithToleranceOption(t *testing.T) {
	custom := tolerance.MustNew(0.1)
	s := NewSession(WithTolerance(custom))
	if s.ApproxTol != custom {
		t.Errorf("ApproxTol = %v, want %v", s.ApproxTol, custom)
	}
}

func TestCloseWithNoErrorsDoesNotPanic(t *testing.T) {
	s := NewSession()
	s.Close()
}

func TestCloseWithErrorsPanics(t *testing.T) {
	s := NewSession()
	s.Validation.Add(validate.Error{Context: "test", Message: "boom", Severity: validate.SeverityError})

	defer func() {
		if recover() == nil {
			t.Error("expected Close to panic with an unresolved error in the buffer")
		}
	}()
	s.Close()
}

func TestCloseIgnoresWarnings(t *testing.T) {
	s := NewSession()
	s.Validation.Add(validate.Error{Context: "test", Message: "minor", Severity: validate.SeverityWarning})
	s.Close()
}
