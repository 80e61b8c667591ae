package topo

import "github.com/chazu/brep/pkg/handle"

// BoundingVertices is the pair of vertices a half-edge starts and ends at,
// as seen within some enclosing cycle.
type BoundingVertices struct {
	Start, End handle.Handle[Vertex]
}

// Reversed swaps Start and End.
func (b BoundingVertices) Reversed() BoundingVertices {
	return BoundingVertices{Start: b.End, End: b.Start}
}

// Equal reports whether b and o reference the same start and end vertices.
func (b BoundingVertices) Equal(o BoundingVertices) bool {
	return b.Start.Equal(o.Start) && b.End.Equal(o.End)
}

// afterInCycle returns the half-edge immediately following he in cycle, or
// the zero handle if he is not in cycle. A cycle wraps around: the
// half-edge after the last one is the first one.
func afterInCycle(cycle Cycle, he handle.Handle[HalfEdge]) (handle.Handle[HalfEdge], bool) {
	for i, h := range cycle.HalfEdges {
		if h.Equal(he) {
			next := cycle.HalfEdges[(i+1)%len(cycle.HalfEdges)]
			return next, true
		}
	}
	return handle.Handle[HalfEdge]{}, false
}

// BoundingVerticesOfHalfEdgeInCycle finds he's start and end vertex within
// cycle: its start is its own StartVertex, its end is the StartVertex of
// whichever half-edge follows it in the cycle.
func BoundingVerticesOfHalfEdgeInCycle(g *Graph, cycle Cycle, he handle.Handle[HalfEdge]) (BoundingVertices, bool) {
	edge := he.Get()
	if edge == nil {
		return BoundingVertices{}, false
	}
	next, ok := afterInCycle(cycle, he)
	if !ok {
		return BoundingVertices{}, false
	}
	nextEdge := next.Get()
	if nextEdge == nil {
		return BoundingVertices{}, false
	}
	return BoundingVertices{Start: edge.StartVertex, End: nextEdge.StartVertex}, true
}

// BoundingVerticesOfHalfEdgeInRegion tries every cycle of region (exterior,
// then each interior) until one contains he.
func BoundingVerticesOfHalfEdgeInRegion(g *Graph, region Region, he handle.Handle[HalfEdge]) (BoundingVertices, bool) {
	if c := region.Exterior.Get(); c != nil {
		if bv, ok := BoundingVerticesOfHalfEdgeInCycle(g, *c, he); ok {
			return bv, true
		}
	}
	for _, ih := range region.Interiors {
		if c := ih.Get(); c != nil {
			if bv, ok := BoundingVerticesOfHalfEdgeInCycle(g, *c, he); ok {
				return bv, true
			}
		}
	}
	return BoundingVertices{}, false
}

// BoundingVerticesOfHalfEdgeInFace delegates to the face's region.
func BoundingVerticesOfHalfEdgeInFace(g *Graph, f Face, he handle.Handle[HalfEdge]) (BoundingVertices, bool) {
	region := f.Region.Get()
	if region == nil {
		return BoundingVertices{}, false
	}
	return BoundingVerticesOfHalfEdgeInRegion(g, *region, he)
}

// BoundingVerticesOfHalfEdgeInShell tries every face of shell until one
// contains he.
func BoundingVerticesOfHalfEdgeInShell(g *Graph, shell Shell, he handle.Handle[HalfEdge]) (BoundingVertices, bool) {
	for _, fh := range shell.Faces {
		if f := fh.Get(); f != nil {
			if bv, ok := BoundingVerticesOfHalfEdgeInFace(g, *f, he); ok {
				return bv, true
			}
		}
	}
	return BoundingVertices{}, false
}

// AreSiblings reports whether a and b are sibling half-edges within shell:
// they reference the same curve, and their bounding vertices within the
// shell are the reverse of one another. Two half-edges being siblings is
// what guarantees a shell is watertight along their shared curve, since the
// approximator produces identical points for both (see pkg/approx).
func AreSiblings(g *Graph, shell Shell, a, b handle.Handle[HalfEdge]) bool {
	edgeA, edgeB := a.Get(), b.Get()
	if edgeA == nil || edgeB == nil {
		return false
	}
	if !edgeA.Curve.Equal(edgeB.Curve) {
		return false
	}
	bvA, ok := BoundingVerticesOfHalfEdgeInShell(g, shell, a)
	if !ok {
		return false
	}
	bvB, ok := BoundingVerticesOfHalfEdgeInShell(g, shell, b)
	if !ok {
		return false
	}
	return bvA.Equal(bvB.Reversed())
}

// SiblingOf returns the sibling of he within shell, if one exists. A
// well-formed closed shell has exactly one sibling per half-edge; this
// returns the first match found.
func SiblingOf(g *Graph, shell Shell, he handle.Handle[HalfEdge]) (handle.Handle[HalfEdge], bool) {
	for _, edge := range AllHalfEdgesInShell(g, shell) {
		if edge.Equal(he) {
			continue
		}
		if AreSiblings(g, shell, he, edge) {
			return edge, true
		}
	}
	return handle.Handle[HalfEdge]{}, false
}

// CycleOfHalfEdge finds the cycle within shell that contains he.
func CycleOfHalfEdge(shell Shell, he handle.Handle[HalfEdge]) (handle.Handle[Cycle], bool) {
	for _, fh := range shell.Faces {
		f := fh.Get()
		if f == nil {
			continue
		}
		region := f.Region.Get()
		if region == nil {
			continue
		}
		for _, ch := range allCyclesOfRegion(*region) {
			c := ch.Get()
			if c == nil {
				continue
			}
			for _, h := range c.HalfEdges {
				if h.Equal(he) {
					return ch, true
				}
			}
		}
	}
	return handle.Handle[Cycle]{}, false
}

func allCyclesOfRegion(r Region) []handle.Handle[Cycle] {
	out := make([]handle.Handle[Cycle], 0, 1+len(r.Interiors))
	out = append(out, r.Exterior)
	out = append(out, r.Interiors...)
	return out
}

// HalfEdgeWithSurface pairs a half-edge with the surface of the face it
// belongs to, the unit AllHalfEdgesWithSurface produces: approximating a
// half-edge's curve is not enough to place it in 3D for a 2D-parameterized
// operation (like triangulation) without also knowing which surface it is
// embedded in.
type HalfEdgeWithSurface struct {
	HalfEdge handle.Handle[HalfEdge]
	Surface  handle.Handle[Surface]
}

// AllHalfEdgesWithSurfaceInFace returns every half-edge of f's region's
// cycles, paired with f's surface.
func AllHalfEdgesWithSurfaceInFace(f Face) []HalfEdgeWithSurface {
	region := f.Region.Get()
	if region == nil {
		return nil
	}
	var out []HalfEdgeWithSurface
	for _, ch := range allCyclesOfRegion(*region) {
		c := ch.Get()
		if c == nil {
			continue
		}
		for _, he := range c.HalfEdges {
			out = append(out, HalfEdgeWithSurface{HalfEdge: he, Surface: f.Surface})
		}
	}
	return out
}

// AllHalfEdgesWithSurfaceInShell flat-maps AllHalfEdgesWithSurfaceInFace
// over every face of shell.
func AllHalfEdgesWithSurfaceInShell(shell Shell) []HalfEdgeWithSurface {
	var out []HalfEdgeWithSurface
	for _, fh := range shell.Faces {
		f := fh.Get()
		if f == nil {
			continue
		}
		out = append(out, AllHalfEdgesWithSurfaceInFace(*f)...)
	}
	return out
}

// AllHalfEdgesInShell returns every half-edge referenced by shell, without
// surface information.
func AllHalfEdgesInShell(g *Graph, shell Shell) []handle.Handle[HalfEdge] {
	pairs := AllHalfEdgesWithSurfaceInShell(shell)
	out := make([]handle.Handle[HalfEdge], len(pairs))
	for i, p := range pairs {
		out[i] = p.HalfEdge
	}
	return out
}
