package validate

import (
	"fmt"

	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/topo"
)

// Shell runs every structural and geometric check against shell, appending
// findings to buf. It never stops early on the first failure — the whole
// point of buffering is to surface everything wrong with a shell in one
// pass rather than one error at a time.
func Shell(g *topo.Graph, shell topo.Shell, buf *Buffer) {
	structuralShell(g, shell, buf)
	geometricShell(g, shell, buf)
}

// structuralShell checks that every half-edge has a sibling somewhere in
// the shell, as a closed, watertight shell requires, and that every cycle
// has at least three half-edges.
func structuralShell(g *topo.Graph, shell topo.Shell, buf *Buffer) {
	for i, fh := range shell.Faces {
		f := fh.Get()
		if f == nil {
			buf.Add(Error{Context: fmt.Sprintf("shell.Faces[%d]", i), Message: "face handle references a missing object", Severity: SeverityError})
			continue
		}
		structuralFace(g, shell, *f, i, buf)
	}
}

func structuralFace(g *topo.Graph, shell topo.Shell, f topo.Face, faceIndex int, buf *Buffer) {
	if f.Surface.IsZero() {
		buf.Add(Error{Context: fmt.Sprintf("shell.Faces[%d]", faceIndex), Message: "face has no surface", Severity: SeverityError})
	}
	region := f.Region.Get()
	if region == nil {
		buf.Add(Error{Context: fmt.Sprintf("shell.Faces[%d]", faceIndex), Message: "face has no region", Severity: SeverityError})
		return
	}

	checkCycle := func(label string, ch interface {
		Get() *topo.Cycle
	}) {
		c := ch.Get()
		if c == nil {
			buf.Add(Error{Context: label, Message: "cycle handle references a missing object", Severity: SeverityError})
			return
		}
		if len(c.HalfEdges) < 3 {
			buf.Add(Error{Context: label, Message: fmt.Sprintf("cycle has only %d half-edges, need at least 3", len(c.HalfEdges)), Severity: SeverityError})
			return
		}
		for _, he := range c.HalfEdges {
			if _, ok := topo.BoundingVerticesOfHalfEdgeInCycle(g, *c, he); !ok {
				buf.Add(Error{Context: label, Message: "half-edge does not connect to the next half-edge in its cycle", Severity: SeverityError})
			}
			edge := he.Get()
			if edge == nil {
				buf.Add(Error{Context: label, Message: "half-edge handle references a missing object", Severity: SeverityError})
				continue
			}
			if edge.Curve.IsZero() {
				buf.Add(Error{Context: label, Message: "half-edge has no curve", Severity: SeverityError})
			}
			if _, ok := topo.SiblingOf(g, shell, he); !ok {
				buf.Add(Error{Context: label, Message: "half-edge has no sibling; shell is not watertight along this curve", Severity: SeverityError})
			}
		}
	}

	checkCycle(fmt.Sprintf("shell.Faces[%d].Region.Exterior", faceIndex), region.Exterior)
	for i, ih := range region.Interiors {
		checkCycle(fmt.Sprintf("shell.Faces[%d].Region.Interiors[%d]", faceIndex, i), ih)
	}
}

// geometricShell flags degenerate curve geometry — a circle of
// non-positive radius, a line with a zero direction vector — that would
// otherwise only surface as a cryptic division-by-zero deep in
// approximation.
func geometricShell(g *topo.Graph, shell topo.Shell, buf *Buffer) {
	for _, heh := range topo.AllHalfEdgesInShell(g, shell) {
		he := heh.Get()
		if he == nil {
			continue
		}
		curveObj := he.Curve.Get()
		if curveObj == nil {
			continue
		}
		switch c := curveObj.Geometry.(type) {
		case curve.Circle:
			if c.Radius.Float64() <= 0 {
				buf.Add(Error{Context: "half-edge curve", Message: "circle has non-positive radius", Severity: SeverityError})
			}
		case curve.Line:
			if c.Direction.SqMagnitude().Float64() == 0 {
				buf.Add(Error{Context: "half-edge curve", Message: "line has a zero direction vector", Severity: SeverityError})
			}
		}
	}
}
