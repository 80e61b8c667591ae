package compose

import (
	"fmt"

	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/surface"
	"github.com/chazu/brep/pkg/topo"
)

// Extrude sweeps face along vector, producing a closed Solid with one
// Shell: a back copy of face's region traced in reverse (so every one of
// its half-edges is a ready-made sibling of the original, undisturbed
// half-edges), a translated front copy keeping the original winding, and
// one side face per boundary edge — exterior and every interior/hole cycle
// alike — stitching the two together. This is the Go-native realization of
// sweeping a face along a vector to produce a solid, grounded on fj-core's
// Sweep::sweep_face operation (fj-core/src/operations/sweep/face.rs);
// which of the two resulting faces ends up outward-facing is a property of
// the winding the caller gave the original sketch (see RegionFromCycles),
// not something Extrude itself decides.
func Extrude(g *topo.Graph, faceH handle.Handle[topo.Face], vector geom.Vector3) (handle.Handle[topo.Solid], error) {
	if vector.SqMagnitude().Float64() == 0 {
		return handle.Handle[topo.Solid]{}, fmt.Errorf("compose: cannot extrude along a zero-length vector")
	}

	face := faceH.Get()
	if face == nil {
		return handle.Handle[topo.Solid]{}, fmt.Errorf("compose: face handle references a missing face")
	}
	surfaceObj := face.Surface.Get()
	if surfaceObj == nil {
		return handle.Handle[topo.Solid]{}, fmt.Errorf("compose: face references a missing surface")
	}
	region := face.Region.Get()
	if region == nil {
		return handle.Handle[topo.Solid]{}, fmt.Errorf("compose: face references a missing region")
	}

	translate := geom.Translation(vector)
	frontSurfaceH := g.AddSurface(surface.Translated{Inner: surfaceObj.Geometry, Offset: vector})

	backExterior, frontExterior, sides, err := extrudeCycle(g, region.Exterior, translate)
	if err != nil {
		return handle.Handle[topo.Solid]{}, err
	}
	sideFaces := sides

	backInteriors := make([]handle.Handle[topo.Cycle], len(region.Interiors))
	frontInteriors := make([]handle.Handle[topo.Cycle], len(region.Interiors))
	for i, ih := range region.Interiors {
		back, front, holeSides, err := extrudeCycle(g, ih, translate)
		if err != nil {
			return handle.Handle[topo.Solid]{}, err
		}
		backInteriors[i] = back
		frontInteriors[i] = front
		sideFaces = append(sideFaces, holeSides...)
	}

	backFaceH := g.AddFace(topo.Face{
		Surface: face.Surface,
		Region:  g.AddRegion(topo.Region{Exterior: backExterior, Interiors: backInteriors}),
	})
	frontFaceH := g.AddFace(topo.Face{
		Surface: frontSurfaceH,
		Region:  g.AddRegion(topo.Region{Exterior: frontExterior, Interiors: frontInteriors}),
	})

	faces := make([]handle.Handle[topo.Face], 0, 2+len(sideFaces))
	faces = append(faces, backFaceH, frontFaceH)
	faces = append(faces, sideFaces...)

	shellH := g.AddShell(topo.Shell{Faces: faces})
	return g.AddSolid(topo.Solid{Shells: []handle.Handle[topo.Shell]{shellH}}), nil
}

// extrudeCycle builds the translated copy of cycleH and stitches it to the
// original with stitchCycles, returning the reverse-traversal back cycle,
// the translated front cycle, and the side faces between them.
func extrudeCycle(g *topo.Graph, cycleH handle.Handle[topo.Cycle], translate geom.Transform) (back, front handle.Handle[topo.Cycle], sides []handle.Handle[topo.Face], err error) {
	cycle := cycleH.Get()
	if cycle == nil {
		return handle.Handle[topo.Cycle]{}, handle.Handle[topo.Cycle]{}, nil, fmt.Errorf("compose: cycle handle references a missing cycle")
	}

	frontHalfEdges := make([]handle.Handle[topo.HalfEdge], len(cycle.HalfEdges))
	for i, heH := range cycle.HalfEdges {
		he := heH.Get()
		if he == nil {
			return handle.Handle[topo.Cycle]{}, handle.Handle[topo.Cycle]{}, nil, fmt.Errorf("compose: half-edge handle references a missing half-edge")
		}
		curveObj := he.Curve.Get()
		if curveObj == nil {
			return handle.Handle[topo.Cycle]{}, handle.Handle[topo.Cycle]{}, nil, fmt.Errorf("compose: half-edge references a missing curve")
		}
		topCurveH := g.AddCurve(curve.Transformed{Inner: curveObj.Geometry, Transform: translate})
		frontHalfEdges[i] = g.AddHalfEdge(topo.HalfEdge{Curve: topCurveH, Boundary: he.Boundary, StartVertex: g.AddVertex()})
	}
	frontCycleH := g.AddCycle(topo.Cycle{HalfEdges: frontHalfEdges})

	backCycleH, sideFaces, err := stitchCycles(g, cycleH, frontCycleH)
	if err != nil {
		return handle.Handle[topo.Cycle]{}, handle.Handle[topo.Cycle]{}, nil, err
	}
	return backCycleH, frontCycleH, sideFaces, nil
}
