package triangulate

import "github.com/chazu/brep/pkg/geom"

// bridgeHoles merges holes into exterior by connecting each hole to the
// nearest point of the boundary built up so far via a pair of coincident
// "bridge" edges, producing a single simple polygon that ear clipping can
// consume directly. Exterior is expected wound counter-clockwise and each
// hole clockwise, so the merged polygon has one consistent winding overall.
func bridgeHoles(exterior []geom.Point2, holes [][]geom.Point2) []geom.Point2 {
	merged := orientedCCW(exterior)
	for _, hole := range holes {
		merged = bridgeOne(merged, orientedCW(hole))
	}
	return merged
}

// bridgeOne splices hole into boundary at the boundary vertex nearest to
// hole's rightmost (max-X) vertex.
func bridgeOne(boundary, hole []geom.Point2) []geom.Point2 {
	if len(hole) == 0 {
		return boundary
	}

	holeStart := rightmostIndex(hole)
	bridgeTo := nearestIndex(boundary, hole[holeStart])

	out := make([]geom.Point2, 0, len(boundary)+len(hole)+2)
	out = append(out, boundary[:bridgeTo+1]...)
	for i := 0; i <= len(hole); i++ {
		out = append(out, hole[(holeStart+i)%len(hole)])
	}
	out = append(out, boundary[bridgeTo])
	out = append(out, boundary[bridgeTo+1:]...)
	return out
}

func rightmostIndex(poly []geom.Point2) int {
	best := 0
	for i, p := range poly {
		if p.X > poly[best].X {
			best = i
		}
	}
	return best
}

func nearestIndex(poly []geom.Point2, target geom.Point2) int {
	best := 0
	bestDist := poly[0].Sub(target).SqMagnitude()
	for i, p := range poly[1:] {
		d := p.Sub(target).SqMagnitude()
		if d < bestDist {
			bestDist = d
			best = i + 1
		}
	}
	return best
}
