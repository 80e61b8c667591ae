// Package approx turns analytic curve geometry into the finite point sets
// the triangulator and mesh assembler actually consume. Surfaces are not
// sampled here: a face is triangulated from its approximated boundary
// cycles alone. The central contract, carried over from fj-core's
// approximation algorithms, is determinism: a (curve, tolerance) pair
// implies one infinite, deterministic set of points, and querying any
// sub-boundary of it returns exactly the points of that infinite set lying
// inside the queried interval — never a re-derived, differently-placed
// set. This is what guarantees two half-edges sharing a curve produce
// identical points on their shared portion, which is in turn what keeps an
// assembled mesh watertight.
package approx

import "github.com/chazu/brep/pkg/geom"

// Point is a single approximated sample: a curve- or surface-local
// parameter paired with the model-space position it maps to.
type Point struct {
	Param1 geom.Point1 // set when approximating a curve
	Param2 geom.Point2 // surface-local parameter; no function in this package sets it
	Pos    geom.Point3
}
