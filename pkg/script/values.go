package script

import (
	"fmt"
	"strings"

	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/topo"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing kernel values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec2 wraps a geom.Point2, used both as a point and a free vector
// depending on the builtin that consumes it.
type sexpVec2 struct{ p geom.Point2 }

func (v *sexpVec2) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec2 %v %v)", v.p.X.Float64(), v.p.Y.Float64())
}
func (v *sexpVec2) Type() *zygo.RegisteredType { return nil }

// sexpVec3 wraps a geom.Point3.
type sexpVec3 struct{ p geom.Point3 }

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %v %v %v)", v.p.X.Float64(), v.p.Y.Float64(), v.p.Z.Float64())
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpSurface wraps a surface handle so a script can hold onto a plane and
// sketch more than one profile on it.
type sexpSurface struct{ h handle.Handle[topo.Surface] }

func (s *sexpSurface) SexpString(ps *zygo.PrintState) string { return "(surface)" }
func (s *sexpSurface) Type() *zygo.RegisteredType            { return nil }

// sexpFace wraps a face handle.
type sexpFace struct{ h handle.Handle[topo.Face] }

func (f *sexpFace) SexpString(ps *zygo.PrintState) string { return "(face)" }
func (f *sexpFace) Type() *zygo.RegisteredType            { return nil }

// sexpSolid wraps a solid handle.
type sexpSolid struct{ h handle.Handle[topo.Solid] }

func (s *sexpSolid) SexpString(ps *zygo.PrintState) string { return "(solid)" }
func (s *sexpSolid) Type() *zygo.RegisteredType            { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toScalar(s zygo.Sexp) (geom.Scalar, error) {
	f, err := toFloat64(s)
	if err != nil {
		return 0, err
	}
	return geom.NewScalar(f)
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

func toVec2(s zygo.Sexp) (geom.Point2, error) {
	v, ok := s.(*sexpVec2)
	if !ok {
		return geom.Point2{}, fmt.Errorf("expected vec2, got %T (%s)", s, s.SexpString(nil))
	}
	return v.p, nil
}

func toVec3(s zygo.Sexp) (geom.Point3, error) {
	v, ok := s.(*sexpVec3)
	if !ok {
		return geom.Point3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
	}
	return v.p, nil
}

// toVector3 reinterprets a vec3's point as a free vector, since script
// source has no separate vector literal and a direction is just a point
// relative to the origin.
func toVector3(p geom.Point3) geom.Vector3 {
	return geom.Vector3{X: p.X, Y: p.Y, Z: p.Z}
}

func toSurface(s zygo.Sexp) (handle.Handle[topo.Surface], error) {
	v, ok := s.(*sexpSurface)
	if !ok {
		return handle.Handle[topo.Surface]{}, fmt.Errorf("expected surface, got %T (%s)", s, s.SexpString(nil))
	}
	return v.h, nil
}

func toFace(s zygo.Sexp) (handle.Handle[topo.Face], error) {
	v, ok := s.(*sexpFace)
	if !ok {
		return handle.Handle[topo.Face]{}, fmt.Errorf("expected face, got %T (%s)", s, s.SexpString(nil))
	}
	return v.h, nil
}

func toSolid(s zygo.Sexp) (handle.Handle[topo.Solid], error) {
	v, ok := s.(*sexpSolid)
	if !ok {
		return handle.Handle[topo.Solid]{}, fmt.Errorf("expected solid, got %T (%s)", s, s.SexpString(nil))
	}
	return v.h, nil
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// toVec2Slice converts a list of sexpVec2 values into a []geom.Point2,
// the shape compose.Polygon/compose.PolygonFace want for a profile.
func toVec2Slice(s zygo.Sexp) ([]geom.Point2, error) {
	items, err := sexpListToSlice(s)
	if err != nil {
		return nil, err
	}
	points := make([]geom.Point2, len(items))
	for i, item := range items {
		p, err := toVec2(item)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points[i] = p
	}
	return points, nil
}
