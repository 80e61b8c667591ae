// Package kernel ties together the topology graph, the approximation and
// transform caches, and the validation buffer into one modeling session —
// the object a Model API program or CLI command actually holds. Earlier
// designs in this lineage modeled implicit solids via a CSG/marching-cubes
// pipeline; that approach has no home here, since this kernel builds
// boundary representations instead (see DESIGN.md).
package kernel

import (
	"fmt"

	"github.com/chazu/brep/pkg/approx"
	"github.com/chazu/brep/pkg/tolerance"
	"github.com/chazu/brep/pkg/topo"
	"github.com/chazu/brep/pkg/validate"
	"github.com/chazu/brep/pkg/xform"
	"github.com/google/uuid"
)

// Session owns every object created while building one model: the
// topology graph, the approximation and transform caches that memoize
// derived geometry, and the buffer that accumulates validation findings as
// they occur rather than surfacing them immediately.
type Session struct {
	ID uuid.UUID

	Graph      *topo.Graph
	ApproxTol  tolerance.Tolerance
	Approx     *approx.Cache
	Transforms *xform.Cache
	Validation *validate.Buffer
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithTolerance overrides the default approximation tolerance.
func WithTolerance(tol tolerance.Tolerance) Option {
	return func(s *Session) { s.ApproxTol = tol }
}

// NewSession returns a new, empty modeling session. With no options, it
// uses tolerance.Default, following a zero-config-with-override
// convention.
func NewSession(opts ...Option) *Session {
	s := &Session{
		ID:         uuid.New(),
		Graph:      topo.NewGraph(),
		ApproxTol:  tolerance.Default,
		Approx:     approx.NewCache(),
		Transforms: xform.NewCache(),
		Validation: &validate.Buffer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close ends the session. Go has no destructors, so this is the explicit
// equivalent of fj-core's panic-on-drop-with-pending-errors behavior: if
// the validation buffer still contains an error-severity finding, Close
// panics rather than letting a known-invalid model silently reach export
// or the viewer. Callers that want to inspect errors without panicking
// should check s.Validation.HasErrors() before calling Close.
func (s *Session) Close() {
	if s.Validation.HasErrors() {
		panic(fmt.Sprintf("kernel: session %s closed with %d unresolved validation error(s)", s.ID, countErrors(s.Validation)))
	}
}

func countErrors(buf *validate.Buffer) int {
	n := 0
	for _, e := range buf.Errors() {
		if e.Severity == validate.SeverityError {
			n++
		}
	}
	return n
}
