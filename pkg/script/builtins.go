package script

import (
	"fmt"

	"github.com/chazu/brep/pkg/compose"
	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/kernel"
	"github.com/chazu/brep/pkg/surface"
	"github.com/chazu/brep/pkg/topo"
	zygo "github.com/glycerine/zygomys/zygo"
)

// registerBuiltins installs every model-script builtin into a zygomys
// environment. Each builtin operates on session's graph and transform
// cache, the shared state that lets one script build up a whole model
// across several top-level expressions.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens are converted to string literals.
func registerBuiltins(env *zygo.Zlisp, session *kernel.Session, outputs *[]Output) {
	g := session.Graph

	// -----------------------------------------------------------------------
	// (vec2 1 2)
	// -----------------------------------------------------------------------
	env.AddFunction("vec2", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("vec2 requires exactly 2 arguments, got %d", len(args))
		}
		x, err := toScalar(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec2: x: %w", err)
		}
		y, err := toScalar(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec2: y: %w", err)
		}
		return &sexpVec2{p: geom.Point2{X: x, Y: y}}, nil
	})

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		x, err := toScalar(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: x: %w", err)
		}
		y, err := toScalar(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: y: %w", err)
		}
		z, err := toScalar(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: z: %w", err)
		}
		return &sexpVec3{p: geom.Point3{X: x, Y: y, Z: z}}, nil
	})

	// -----------------------------------------------------------------------
	// (plane :origin (vec3 0 0 0) :u (vec3 1 0 0) :v (vec3 0 1 0))
	// -----------------------------------------------------------------------
	env.AddFunction("plane", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		originV, ok := pa.kw["origin"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("plane: missing :origin")
		}
		origin, err := toVec3(originV)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: origin: %w", err)
		}
		uV, ok := pa.kw["u"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("plane: missing :u")
		}
		u, err := toVec3(uV)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: u: %w", err)
		}
		vV, ok := pa.kw["v"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("plane: missing :v")
		}
		v, err := toVec3(vV)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: v: %w", err)
		}

		planeH := g.AddSurface(surface.SweptCurve{
			U: curve.Line{Origin: origin, Direction: toVector3(u)},
			V: toVector3(v),
		})
		return &sexpSurface{h: planeH}, nil
	})

	// -----------------------------------------------------------------------
	// (polygon plane (list (vec2 0 0) (vec2 1 0) (vec2 1 1) (vec2 0 1)))
	// -----------------------------------------------------------------------
	env.AddFunction("polygon", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("polygon requires a plane and a point list")
		}
		surfaceH, err := toSurface(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: surface: %w", err)
		}
		points, err := toVec2Slice(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: points: %w", err)
		}
		faceH, err := compose.PolygonFace(g, surfaceH, points)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
		}
		return &sexpFace{h: faceH}, nil
	})

	// -----------------------------------------------------------------------
	// (circle plane (vec3 cx cy cz) radius (vec3 ux uy uz) (vec3 vx vy vz))
	// -----------------------------------------------------------------------
	env.AddFunction("circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 5 {
			return zygo.SexpNull, fmt.Errorf("circle requires a plane, center, radius, u, and v")
		}
		surfaceH, err := toSurface(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: surface: %w", err)
		}
		center, err := toVec3(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: center: %w", err)
		}
		radius, err := toScalar(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: radius: %w", err)
		}
		u, err := toVec3(args[3])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: u: %w", err)
		}
		v, err := toVec3(args[4])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: v: %w", err)
		}

		cycleH := compose.Circle(g, center, radius, toVector3(u), toVector3(v))
		regionH := compose.RegionFromCycles(g, cycleH)
		faceH := compose.Face(g, surfaceH, regionH)
		return &sexpFace{h: faceH}, nil
	})

	// -----------------------------------------------------------------------
	// (box (vec3 0 0 0) (vec3 10 10 10))
	// -----------------------------------------------------------------------
	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("box requires a min and max corner")
		}
		min, err := toVec3(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: min: %w", err)
		}
		max, err := toVec3(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: max: %w", err)
		}
		solidH, err := compose.Box(g, min, max)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: %w", err)
		}
		return &sexpSolid{h: solidH}, nil
	})

	// -----------------------------------------------------------------------
	// (tetrahedron p0 p1 p2 p3)
	// -----------------------------------------------------------------------
	env.AddFunction("tetrahedron", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("tetrahedron requires exactly 4 points")
		}
		var points [4]geom.Point3
		for i, a := range args {
			p, err := toVec3(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("tetrahedron: point %d: %w", i, err)
			}
			points[i] = p
		}
		solidH, err := compose.SolidTetrahedron(g, points)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("tetrahedron: %w", err)
		}
		return &sexpSolid{h: solidH}, nil
	})

	// -----------------------------------------------------------------------
	// (extrude face (vec3 0 0 10))
	// -----------------------------------------------------------------------
	env.AddFunction("extrude", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("extrude requires a face and a vector")
		}
		faceH, err := toFace(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("extrude: face: %w", err)
		}
		vec, err := toVec3(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("extrude: vector: %w", err)
		}
		solidH, err := compose.Extrude(g, faceH, toVector3(vec))
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("extrude: %w", err)
		}
		return &sexpSolid{h: solidH}, nil
	})

	// -----------------------------------------------------------------------
	// (translate solid (vec3 10 0 0))
	// -----------------------------------------------------------------------
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("translate requires a solid and a vector")
		}
		solidH, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: solid: %w", err)
		}
		vec, err := toVec3(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: vector: %w", err)
		}
		t := geom.Translation(toVector3(vec))
		moved := session.Transforms.Solid(g, solidH, t)
		return &sexpSolid{h: moved}, nil
	})

	// -----------------------------------------------------------------------
	// (rotate solid (vec3 0 0 1) angle-in-radians)
	// -----------------------------------------------------------------------
	env.AddFunction("rotate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("rotate requires a solid, an axis, and an angle")
		}
		solidH, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: solid: %w", err)
		}
		axis, err := toVec3(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: axis: %w", err)
		}
		angle, err := toScalar(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: angle: %w", err)
		}
		t := geom.RotationAxisAngle(toVector3(axis), angle)
		rotated := session.Transforms.Solid(g, solidH, t)
		return &sexpSolid{h: rotated}, nil
	})

	// -----------------------------------------------------------------------
	// (model "name" solid1 solid2 ...)
	// -----------------------------------------------------------------------
	env.AddFunction("model", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("model requires a name and at least one solid")
		}
		modelName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("model: name: %w", err)
		}
		solids := make([]handle.Handle[topo.Solid], 0, len(args)-1)
		for i, a := range args[1:] {
			solidH, err := toSolid(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("model: solid %d: %w", i, err)
			}
			solids = append(solids, solidH)
		}
		*outputs = append(*outputs, Output{Name: modelName, Solids: solids})
		return zygo.SexpNull, nil
	})
}
