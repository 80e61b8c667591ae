// Package validate checks topology for structural and geometric
// consistency. Checks never panic or abort a modeling session on their
// own; they append to a buffered Error slice, generalized from the
// teacher's ValidationError/ValidationSeverity pair in
// pkg/graph/validate.go. It is the owning session's job (pkg/kernel) to
// decide what to do with a non-empty buffer — by default, panicking when
// the session ends with unresolved errors still in it.
package validate

import "fmt"

// Severity classifies how serious a validation finding is.
type Severity int

const (
	// SeverityError marks a finding that makes the model invalid — an
	// open shell that was supposed to be closed, a cycle that does not
	// close on itself.
	SeverityError Severity = iota
	// SeverityWarning marks a finding worth surfacing but that does not
	// by itself make the model invalid — a degenerate-but-harmless
	// sliver triangle, for instance.
	SeverityWarning
)

// String returns "error" or "warning".
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Error is one validation finding.
type Error struct {
	Context  string
	Message  string
	Severity Severity
}

// Error implements the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Severity, e.Context, e.Message)
}

// Buffer accumulates validation findings across a modeling session. It is
// never required to be checked immediately after each operation — findings
// pile up until whoever owns the buffer decides to inspect it.
type Buffer struct {
	errors []Error
}

// Add appends a finding to the buffer.
func (b *Buffer) Add(e Error) {
	b.errors = append(b.errors, e)
}

// Errors returns every finding appended so far.
func (b *Buffer) Errors() []Error {
	return b.errors
}

// HasErrors reports whether the buffer contains any SeverityError finding.
// Warnings alone do not count.
func (b *Buffer) HasErrors() bool {
	for _, e := range b.errors {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Len returns the total number of findings, errors and warnings combined.
func (b *Buffer) Len() int {
	return len(b.errors)
}
