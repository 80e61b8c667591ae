// Package export converts an externalized meshx.TriMesh into a 3MF file,
// per spec.md §6.2: only the triangle-mesh portion of 3MF is produced —
// no materials, colors, or metadata — and the destination path's file
// extension is never consulted. Grounded on the teacher's indirect
// hpinc/go3mf dependency (pulled in transitively by wails' project
// tooling in the teacher's go.mod), promoted here to a direct,
// deliberately-used dependency since fj-export/src/lib.rs (the original
// this spec distills) is exactly a 3MF writer.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/chazu/brep/pkg/meshx"
	"github.com/hpinc/go3mf"
)

// WriteTriMesh writes mesh to path as a 3MF file containing a single
// mesh object and a single build item referencing it. The file extension
// of path is not consulted; it is used verbatim as the destination.
func WriteTriMesh(path string, mesh meshx.TriMesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := EncodeTriMesh(f, mesh); err != nil {
		return fmt.Errorf("export: writing %s: %w", path, err)
	}
	return nil
}

// EncodeTriMesh writes mesh as a 3MF document to w.
func EncodeTriMesh(w io.Writer, mesh meshx.TriMesh) error {
	model := &go3mf.Model{Units: go3mf.UnitMillimeter}

	m := &go3mf.Mesh{}
	m.Vertices.Vertex = make([]go3mf.Point3D, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		m.Vertices.Vertex[i] = go3mf.Point3D{
			float32(v.Pos.X.Float64()),
			float32(v.Pos.Y.Float64()),
			float32(v.Pos.Z.Float64()),
		}
	}
	m.Triangles.Triangle = make([]go3mf.Triangle, len(mesh.Triangles))
	for i, t := range mesh.Triangles {
		m.Triangles.Triangle[i] = go3mf.NewTriangle(uint32(t.A), uint32(t.B), uint32(t.C))
	}

	obj := &go3mf.Object{ID: 1, Mesh: m}
	model.Resources.Objects = append(model.Resources.Objects, obj)
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: obj.ID})

	enc := go3mf.NewEncoder(w)
	if err := enc.Encode(model); err != nil {
		return fmt.Errorf("export: encoding 3mf model: %w", err)
	}
	return nil
}
