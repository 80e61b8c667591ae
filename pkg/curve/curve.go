// Package curve defines analytic 1D curve geometry embedded in 3D space.
// A Geometry maps a curve-local coordinate (Point1) to a position in model
// space (Point3); the approximator (pkg/approx) samples this mapping at a
// tolerance-driven set of parameters to produce a polyline.
package curve

import "github.com/chazu/brep/pkg/geom"

// Geometry is implemented by every curve kind. It is pure and
// side-effect-free: calling Point twice with the same parameter always
// returns the same result, which is what makes curve approximation
// deterministic (pkg/approx relies on this).
type Geometry interface {
	// Point maps a curve-local coordinate to its position in model space.
	Point(p geom.Point1) geom.Point3
}

// var assertions placed alongside each concrete type confirm it satisfies
// Geometry at compile time; see line.go and circle.go.
