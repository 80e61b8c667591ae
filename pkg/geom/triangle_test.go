package geom

import "testing"

func TestTriangleNormal(t *testing.T) {
	tri := Triangle{
		A: mustPoint3(0, 0, 0),
		B: mustPoint3(1, 0, 0),
		C: mustPoint3(0, 1, 0),
	}
	n := tri.UnitNormal()
	if n.X != 0 || n.Y != 0 {
		t.Errorf("normal = %v, want (0, 0, 1)", n)
	}
	if float64(n.Z) < 0.999 {
		t.Errorf("normal.Z = %v, want ~1", n.Z)
	}
}

func TestTriangleFlippedReversesNormal(t *testing.T) {
	tri := Triangle{
		A: mustPoint3(0, 0, 0),
		B: mustPoint3(1, 0, 0),
		C: mustPoint3(0, 1, 0),
	}
	n := tri.Normal()
	flipped := tri.Flipped().Normal()
	if n.Add(flipped) != (Vector3{}) {
		t.Errorf("flipped normal should be the negation of the original: %v vs %v", n, flipped)
	}
}

func TestSegmentLength(t *testing.T) {
	s := Segment{Start: mustPoint3(0, 0, 0), End: mustPoint3(3, 4, 0)}
	if got := s.Length(); got != MustScalar(5) {
		t.Errorf("Length = %v, want 5", got)
	}
}
