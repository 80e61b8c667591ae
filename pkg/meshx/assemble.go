package meshx

import (
	"fmt"

	"github.com/chazu/brep/pkg/approx"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/surface"
	"github.com/chazu/brep/pkg/tolerance"
	"github.com/chazu/brep/pkg/topo"
	"github.com/chazu/brep/pkg/triangulate"
)

// AssembleSolid walks every shell of solid, triangulating and lifting
// each one's faces into a single deduplicated TriMesh spanning the whole
// solid, per spec.md §4.7. A solid with no shells yields an empty mesh
// rather than an error.
func AssembleSolid(g *topo.Graph, cache *approx.Cache, solid topo.Solid, tol tolerance.Tolerance) (TriMesh, error) {
	b := NewBuilder(tol)
	for _, sh := range solid.Shells {
		shell := sh.Get()
		if shell == nil {
			continue
		}
		for _, fh := range shell.Faces {
			f := fh.Get()
			if f == nil {
				continue
			}
			tris, err := triangulateFace(g, cache, *f, tol)
			if err != nil {
				return TriMesh{}, fmt.Errorf("meshx: assembling solid: %w", err)
			}
			for _, tri := range tris {
				b.AddTriangle(tri)
			}
		}
	}
	return b.Build(), nil
}

// AssembleShell triangulates and lifts every face of shell and assembles
// the result into one deduplicated TriMesh.
func AssembleShell(g *topo.Graph, cache *approx.Cache, shell topo.Shell, tol tolerance.Tolerance) (TriMesh, error) {
	b := NewBuilder(tol)
	for _, fh := range shell.Faces {
		f := fh.Get()
		if f == nil {
			continue
		}
		tris, err := triangulateFace(g, cache, *f, tol)
		if err != nil {
			return TriMesh{}, fmt.Errorf("meshx: assembling face: %w", err)
		}
		for _, tri := range tris {
			b.AddTriangle(tri)
		}
	}
	return b.Build(), nil
}

func triangulateFace(g *topo.Graph, cache *approx.Cache, f topo.Face, tol tolerance.Tolerance) ([]geom.Triangle, error) {
	surfaceObj := f.Surface.Get()
	if surfaceObj == nil {
		return nil, fmt.Errorf("meshx: face references a missing surface")
	}
	region := f.Region.Get()
	if region == nil {
		return nil, fmt.Errorf("meshx: face references a missing region")
	}

	plane, ok := surfaceObj.Geometry.(surface.Planar)
	if !ok {
		return nil, fmt.Errorf("meshx: face surface has no planar parameterization to triangulate against")
	}

	pslg, err := regionToPSLG(g, cache, *region, plane, tol)
	if err != nil {
		return nil, err
	}

	points2D, tris, err := triangulate.Triangulate(pslg)
	if err != nil {
		return nil, fmt.Errorf("meshx: triangulating region: %w", err)
	}
	return triangulate.Lift3D(points2D, tris, surfaceObj.Geometry), nil
}

func regionToPSLG(g *topo.Graph, cache *approx.Cache, region topo.Region, plane surface.Planar, tol tolerance.Tolerance) (triangulate.PSLG, error) {
	exterior, err := cycleToPolygon(g, cache, region.Exterior, plane, tol)
	if err != nil {
		return triangulate.PSLG{}, err
	}

	holes := make([][]geom.Point2, 0, len(region.Interiors))
	for _, ih := range region.Interiors {
		hole, err := cycleToPolygon(g, cache, ih, plane, tol)
		if err != nil {
			return triangulate.PSLG{}, err
		}
		holes = append(holes, hole)
	}
	return triangulate.PSLG{Exterior: exterior, Holes: holes}, nil
}

// cycleToPolygon flattens a cycle's approximated 3D boundary into the
// owning face's surface-local 2D coordinates. Curves live in model space,
// shared by every half-edge that borders them regardless of which face's
// surface is interpreting them, so recovering (s, t) here requires
// projecting back through the face's own plane rather than assuming the
// curve was already defined in local coordinates. plane is a surface.Planar
// capability, not a concrete surface kind: a face built by compose.Extrude
// wraps its base plane in surface.Translated for the front face (the back
// face reuses the base plane itself), and Translated, Flipped and
// Transformed all delegate PlanarUV back to the wrapped plane, so this
// works unchanged for swept faces too.
func cycleToPolygon(g *topo.Graph, cache *approx.Cache, ch handle.Handle[topo.Cycle], plane surface.Planar, tol tolerance.Tolerance) ([]geom.Point2, error) {
	cycle := ch.Get()
	if cycle == nil {
		return nil, fmt.Errorf("meshx: cycle handle references a missing cycle")
	}

	var points []geom.Point2
	for _, heHandle := range cycle.HalfEdges {
		he := heHandle.Get()
		if he == nil {
			continue
		}
		approxPoints := cache.Curve(g, he.Curve, he.Boundary, tol)
		if len(approxPoints) == 0 {
			continue
		}
		// Drop the last point: it coincides with the next half-edge's
		// first point, and the polygon closes back to this edge's own
		// first point implicitly.
		for _, p := range approxPoints[:len(approxPoints)-1] {
			uv, ok := plane.PlanarUV(p.Pos)
			if !ok {
				return nil, fmt.Errorf("meshx: boundary point does not lie on the face's plane")
			}
			points = append(points, uv)
		}
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("meshx: cycle produced no approximation points")
	}
	return points, nil
}
