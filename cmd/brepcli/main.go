// Command brepcli is the standard driver for the kernel: it loads a
// model-script source file, evaluates it into a session full of solids,
// validates them, and optionally exports the result to a 3MF file. This
// is the Go-native analogue of fj-app (see
// original_source/fj-app/src/args.rs and original_source/fj/src/args.rs):
// the spec's CLI surface (spec.md §6.1) names --export, --tolerance, and
// --ignore-validation; --model and --parameters are supplemented from the
// original per SPEC_FULL.md §5.
//
// No third-party flag-parsing library appears anywhere in the retrieval
// pack (see DESIGN.md), so this driver uses the standard library's flag
// package, same as spec.md's §1 "only their interfaces are specified"
// framing: this command is the external collaborator, not part of the
// kernel proper.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/chazu/brep/pkg/export"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/meshx"
	"github.com/chazu/brep/pkg/script"
	"github.com/chazu/brep/pkg/tolerance"
	"github.com/chazu/brep/pkg/topo"
	"github.com/chazu/brep/pkg/validate"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("brepcli", flag.ContinueOnError)
	modelPath := fs.String("model", "", "path to a model-script file to evaluate")
	exportPath := fs.String("export", "", "write the resulting mesh to this 3MF file")
	tol := fs.Float64("tolerance", tolerance.Default.Float64(), "approximation tolerance (must be positive)")
	ignoreValidation := fs.Bool("ignore-validation", false, "export even if validation finds errors")
	var params paramList
	fs.Var(&params, "parameters", "key=value parameter for the model script (repeatable)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *modelPath == "" {
		log.Print("brepcli: -model is required")
		return 2
	}

	tol64, err := tolerance.New(*tol)
	if err != nil {
		log.Printf("brepcli: %v", err)
		return 2
	}

	src, err := os.ReadFile(*modelPath)
	if err != nil {
		log.Printf("brepcli: reading model: %v", err)
		return 1
	}

	eng := script.NewEngine()
	result, evalErrs, err := eng.Evaluate(params.prelude() + string(src))
	if err != nil {
		log.Printf("brepcli: evaluation aborted: %v", err)
		return 1
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			log.Printf("brepcli: %v", e)
		}
		return 1
	}

	if len(result.Outputs) == 0 {
		log.Print("brepcli: model script produced no named output (use (model \"name\" solid...))")
		return 1
	}

	for _, solidH := range result.Session.Graph.Solids() {
		validateSolid(result.Session.Graph, solidH, result.Session.Validation)
	}
	if result.Session.Validation.HasErrors() && !*ignoreValidation {
		for _, e := range result.Session.Validation.Errors() {
			log.Printf("brepcli: %v", e)
		}
		return 1
	}

	if *exportPath == "" {
		log.Printf("brepcli: evaluated %q: %d solid(s), no -export path given", *modelPath, len(result.Outputs))
		return 0
	}

	builder := meshx.NewBuilder(tol64)
	for _, out := range result.Outputs {
		for _, solidH := range out.Solids {
			solid := solidH.Get()
			if solid == nil {
				continue
			}
			part, err := meshx.AssembleSolid(result.Session.Graph, result.Session.Approx, *solid, tol64)
			if err != nil {
				log.Printf("brepcli: triangulating %q: %v", out.Name, err)
				return 1
			}
			for _, t := range part.Triangles {
				builder.AddTriangle(geom.Triangle{
					A: part.Vertices[t.A].Pos,
					B: part.Vertices[t.B].Pos,
					C: part.Vertices[t.C].Pos,
				})
			}
		}
	}
	mesh := builder.Build()

	if err := export.WriteTriMesh(*exportPath, mesh); err != nil {
		log.Printf("brepcli: %v", err)
		return 1
	}
	fmt.Printf("brepcli: wrote %d triangles to %s\n", mesh.TriangleCount(), *exportPath)
	return 0
}

func validateSolid(g *topo.Graph, solidH handle.Handle[topo.Solid], buf *validate.Buffer) {
	solid := solidH.Get()
	if solid == nil {
		return
	}
	for _, shellH := range solid.Shells {
		shell := shellH.Get()
		if shell == nil {
			continue
		}
		validate.Shell(g, *shell, buf)
	}
}

// paramList accumulates repeated -parameters key=value flags and renders
// them as zygomys (def ...) forms prepended to the script, since
// script.Engine.Evaluate takes only a source string.
type paramList []string

func (p *paramList) String() string { return strings.Join(*p, ",") }

func (p *paramList) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("parameters must be key=value, got %q", v)
	}
	*p = append(*p, v)
	return nil
}

func (p paramList) prelude() string {
	var b strings.Builder
	for _, kv := range p {
		parts := strings.SplitN(kv, "=", 2)
		fmt.Fprintf(&b, "(def %s %s)\n", parts[0], parts[1])
	}
	return b.String()
}
