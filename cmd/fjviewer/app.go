// Package main implements fjviewer, a thin Wails desktop shell over
// pkg/script and pkg/viewer: it evaluates a model script into a kernel
// session, triangulates every named solid, and hands the viewer flat,
// by-value meshes to render. Per spec.md §1/§6.3 the viewer is an
// external collaborator — this file only ever produces viewer.Mesh
// values, it never receives anything back from the frontend except the
// next script to evaluate.
//
// Adapted from the teacher's root app.go: the same Evaluate/OpenFile/
// SaveFile/SetTitle binding shape, generalized from a Lisp-to-SDF
// tessellation pipeline (engine.Engine + kernel.Kernel + tessellate) to a
// Lisp-to-B-rep one (script.Engine + meshx.AssembleSolid + pkg/viewer).
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/chazu/brep/pkg/export"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/meshx"
	"github.com/chazu/brep/pkg/script"
	"github.com/chazu/brep/pkg/tolerance"
	"github.com/chazu/brep/pkg/viewer"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// colorPalette assigns a distinct color to each named solid a script
// produces, the same round-robin convention the teacher's App.Evaluate
// uses for per-part colors.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App is the Wails backend. It exposes methods to the frontend via
// bindings.
type App struct {
	ctx    context.Context
	engine *script.Engine
	tol    tolerance.Tolerance
}

// EvalErrorData is a JSON-serializable eval error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// EvalResult is the full result returned to the frontend.
type EvalResult struct {
	Meshes []viewer.Mesh   `json:"meshes"`
	Errors []EvalErrorData `json:"errors"`
}

// FileResult is returned by OpenFile with the file contents and path.
type FileResult struct {
	Content string `json:"content"`
	Path    string `json:"path"`
}

// NewApp creates a new App with the default approximation tolerance.
func NewApp() *App {
	return &App{
		engine: script.NewEngine(),
		tol:    tolerance.Default,
	}
}

// startup is called by Wails on app startup; the context is saved so we
// can call Wails runtime methods later.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Evaluate takes model-script source and returns mesh data + errors.
// This is the primary binding called by the frontend editor.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{Meshes: []viewer.Mesh{}, Errors: []EvalErrorData{}}

	res, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{Line: e.Line, Message: e.Message})
		}
		return result
	}

	for i, out := range res.Outputs {
		color := colorPalette[i%len(colorPalette)]
		for _, solidH := range out.Solids {
			solid := solidH.Get()
			if solid == nil {
				continue
			}
			tri, err := meshx.AssembleSolid(res.Session.Graph, res.Session.Approx, *solid, a.tol)
			if err != nil {
				result.Errors = append(result.Errors, EvalErrorData{Message: fmt.Sprintf("triangulating %q: %v", out.Name, err)})
				continue
			}
			result.Meshes = append(result.Meshes, viewer.FromTriMesh(tri, out.Name, color))
		}
	}
	return result
}

var scriptFileFilter = runtime.FileFilter{
	DisplayName: "Model scripts (*.zy)",
	Pattern:     "*.zy",
}

// OpenFile shows an open file dialog and returns the file contents + path.
func (a *App) OpenFile() (FileResult, error) {
	path, err := runtime.OpenFileDialog(a.ctx, runtime.OpenDialogOptions{
		Title:   "Open model script",
		Filters: []runtime.FileFilter{scriptFileFilter},
	})
	if err != nil {
		return FileResult{}, err
	}
	if path == "" {
		return FileResult{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, err
	}
	return FileResult{Content: string(data), Path: path}, nil
}

// SaveFile saves content to path, or shows a save dialog if path is empty.
func (a *App) SaveFile(content string, path string) (string, error) {
	if path == "" {
		var err error
		path, err = runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
			Title:           "Save model script",
			DefaultFilename: "untitled.zy",
			Filters:         []runtime.FileFilter{scriptFileFilter},
		})
		if err != nil {
			return "", err
		}
		if path == "" {
			return "", nil
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// SetTitle updates the window title.
func (a *App) SetTitle(title string) {
	runtime.WindowSetTitle(a.ctx, title)
}

// ExportMesh triangulates every solid in source's first named output and
// writes it to path as a 3MF file, the bound equivalent of brepcli's
// -export flag for use from the viewer's "Export" button.
func (a *App) ExportMesh(source, path string) error {
	res, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		return err
	}
	if len(evalErrs) > 0 {
		return fmt.Errorf("script has %d error(s)", len(evalErrs))
	}
	if len(res.Outputs) == 0 {
		return fmt.Errorf("script produced no named output")
	}

	builder := meshx.NewBuilder(a.tol)
	for _, solidH := range res.Outputs[0].Solids {
		solid := solidH.Get()
		if solid == nil {
			continue
		}
		tri, err := meshx.AssembleSolid(res.Session.Graph, res.Session.Approx, *solid, a.tol)
		if err != nil {
			return err
		}
		for _, t := range tri.Triangles {
			builder.AddTriangle(geom.Triangle{
				A: tri.Vertices[t.A].Pos,
				B: tri.Vertices[t.B].Pos,
				C: tri.Vertices[t.C].Pos,
			})
		}
	}
	return export.WriteTriMesh(path, builder.Build())
}
