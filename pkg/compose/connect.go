package compose

import (
	"fmt"

	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/topo"
)

// Connect stitches two equal-length, virgin cycles — a and b, each on its
// own surface, neither yet committed to a Face — into a loft: a Face for
// a (its cycle rebuilt in reverse so its half-edges pair up with the
// connecting ring), a Face for b (its cycle used as given), and one side
// face per corresponding pair of boundary edges between them. This is the
// general "connect faces" composition: Extrude is the special case where b
// is a's own profile translated along a vector rather than an independently
// built cycle.
//
// a and b must trace their vertices in corresponding order (vertex i of a
// connects to vertex i of b) and in the same rotational sense as seen from
// their respective surfaces' outward side — Connect does not infer a
// correspondence or detect a winding mismatch, it builds the quads the
// indices imply.
func Connect(g *topo.Graph, surfA, surfB handle.Handle[topo.Surface], a, b handle.Handle[topo.Cycle]) (faceA, faceB handle.Handle[topo.Face], sides []handle.Handle[topo.Face], err error) {
	if surfA.Get() == nil || surfB.Get() == nil {
		return handle.Handle[topo.Face]{}, handle.Handle[topo.Face]{}, nil, fmt.Errorf("compose: connect requires both surfaces to exist")
	}

	reversedA, sideFaces, err := stitchCycles(g, a, b)
	if err != nil {
		return handle.Handle[topo.Face]{}, handle.Handle[topo.Face]{}, nil, err
	}

	faceA = g.AddFace(topo.Face{Surface: surfA, Region: g.AddRegion(topo.Region{Exterior: reversedA})})
	faceB = g.AddFace(topo.Face{Surface: surfB, Region: g.AddRegion(topo.Region{Exterior: b})})
	return faceA, faceB, sideFaces, nil
}
