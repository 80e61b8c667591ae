package meshx

import (
	"testing"

	"github.com/chazu/brep/pkg/approx"
	"github.com/chazu/brep/pkg/compose"
	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/surface"
	"github.com/chazu/brep/pkg/tolerance"
	"github.com/chazu/brep/pkg/topo"
)

// buildUnitSquareFaceShell builds a one-face shell whose region is a unit
// square. The boundary curves sit in the z=0 plane in model space, and the
// face's surface is the z=0 plane itself, so its surface-local (s, t)
// coordinates happen to equal the curves' (x, y) — a convenient special
// case, not a requirement cycleToPolygon relies on.
func buildUnitSquareFaceShell(g *topo.Graph) topo.Shell {
	corners := []geom.Point3{
		{}, {X: geom.MustScalar(1)}, {X: geom.MustScalar(1), Y: geom.MustScalar(1)}, {Y: geom.MustScalar(1)},
	}
	var verts [4]handle.Handle[topo.Vertex]
	for i := range verts {
		verts[i] = g.AddVertex()
	}

	var edges []handle.Handle[topo.HalfEdge]
	for i := 0; i < 4; i++ {
		from, to := corners[i], corners[(i+1)%4]
		c := g.AddCurve(curve.Line{Origin: from, Direction: to.Sub(from)})
		edges = append(edges, g.AddHalfEdge(topo.HalfEdge{
			Curve:       c,
			Boundary:    topo.CurveBoundary{Lower: geom.Point1{}, Upper: geom.Point1{X: geom.MustScalar(1)}},
			StartVertex: verts[i],
		}))
	}

	cycle := g.AddCycle(topo.Cycle{HalfEdges: edges})
	region := g.AddRegion(topo.Region{Exterior: cycle})
	sf := g.AddSurface(surface.SweptCurve{
		U: curve.Line{Direction: geom.Vector3{X: geom.MustScalar(1)}},
		V: geom.Vector3{Y: geom.MustScalar(1)},
	})
	face := g.AddFace(topo.Face{Surface: sf, Region: region})
	return topo.Shell{Faces: []handle.Handle[topo.Face]{face}}
}

func TestAssembleShellSingleFace(t *testing.T) {
	g := topo.NewGraph()
	shell := buildUnitSquareFaceShell(g)
	cache := approx.NewCache()

	mesh, err := AssembleShell(g, cache, shell, tolerance.MustNew(0.01))
	if err != nil {
		t.Fatalf("AssembleShell failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("expected a nonempty mesh for a unit square face")
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2", mesh.TriangleCount())
	}
	if mesh.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4", mesh.VertexCount())
	}
}

func TestAssembleSolidSingleShell(t *testing.T) {
	g := topo.NewGraph()
	shell := buildUnitSquareFaceShell(g)
	shellH := g.AddShell(shell)
	solid := topo.Solid{Shells: []handle.Handle[topo.Shell]{shellH}}
	cache := approx.NewCache()

	mesh, err := AssembleSolid(g, cache, solid, tolerance.MustNew(0.01))
	if err != nil {
		t.Fatalf("AssembleSolid failed: %v", err)
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2", mesh.TriangleCount())
	}
	if mesh.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4", mesh.VertexCount())
	}
}

// TestAssembleSolidExtrudedBox exercises compose.Extrude's output, not just
// a hand-built shell: Extrude's front face sits on a surface.Translated
// wrapping the base plane, so triangulateFace must recover 2D coordinates
// through that wrapper rather than only through a bare surface.SweptCurve.
func TestAssembleSolidExtrudedBox(t *testing.T) {
	g := topo.NewGraph()
	solidH, err := compose.Box(g, geom.Point3{}, geom.Point3{X: geom.MustScalar(1), Y: geom.MustScalar(1), Z: geom.MustScalar(1)})
	if err != nil {
		t.Fatalf("Box: %v", err)
	}
	solid := solidH.Get()
	cache := approx.NewCache()

	mesh, err := AssembleSolid(g, cache, *solid, tolerance.MustNew(0.01))
	if err != nil {
		t.Fatalf("AssembleSolid failed: %v", err)
	}
	// 6 faces * 2 triangles each, over 8 distinct corner vertices.
	if mesh.TriangleCount() != 12 {
		t.Errorf("TriangleCount() = %d, want 12", mesh.TriangleCount())
	}
	if mesh.VertexCount() != 8 {
		t.Errorf("VertexCount() = %d, want 8", mesh.VertexCount())
	}
}

func TestAssembleSolidEmpty(t *testing.T) {
	g := topo.NewGraph()
	cache := approx.NewCache()
	mesh, err := AssembleSolid(g, cache, topo.Solid{}, tolerance.MustNew(0.01))
	if err != nil {
		t.Fatalf("AssembleSolid failed: %v", err)
	}
	if !mesh.IsEmpty() {
		t.Error("expected empty mesh for a solid with no shells")
	}
}
