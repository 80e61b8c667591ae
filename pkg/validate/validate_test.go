package validate

import "testing"

func TestBufferHasErrorsIgnoresWarnings(t *testing.T) {
	buf := &Buffer{}
	buf.Add(Error{Context: "x", Message: "minor", Severity: SeverityWarning})
	if buf.HasErrors() {
		t.Error("a buffer with only warnings should not report HasErrors")
	}

	buf.Add(Error{Context: "y", Message: "major", Severity: SeverityError})
	if !buf.HasErrors() {
		t.Error("a buffer with an error-severity finding should report HasErrors")
	}
	if buf.Len() != 2 {
		t.Errorf("Len() = %d, want 2", buf.Len())
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityError.String() != "error" {
		t.Errorf("SeverityError.String() = %q", SeverityError.String())
	}
	if SeverityWarning.String() != "warning" {
		t.Errorf("SeverityWarning.String() = %q", SeverityWarning.String())
	}
}

func TestErrorMessage(t *testing.T) {
	e := Error{Context: "shell", Message: "not watertight", Severity: SeverityError}
	want := "error: shell: not watertight"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
}
