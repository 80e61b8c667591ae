package triangulate

import (
	"testing"

	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/surface"
)

func TestLift3DOntoPlane(t *testing.T) {
	pslg := PSLG{Exterior: square(0, 0, 1, 1)}
	points, tris, err := Triangulate(pslg)
	if err != nil {
		t.Fatalf("Triangulate failed: %v", err)
	}

	plane := surface.SweptCurve{
		U: curve.Line{Origin: geom.Point3{Z: geom.MustScalar(5)}, Direction: geom.Vector3{X: geom.MustScalar(1)}},
		V: geom.Vector3{Y: geom.MustScalar(1)},
	}

	lifted := Lift3D(points, tris, plane)
	if len(lifted) != len(tris) {
		t.Fatalf("lifted triangle count = %d, want %d", len(lifted), len(tris))
	}
	for _, tr := range lifted {
		if tr.A.Z != geom.MustScalar(5) {
			t.Errorf("lifted point should lie on the plane z=5, got %v", tr.A)
		}
	}
}
