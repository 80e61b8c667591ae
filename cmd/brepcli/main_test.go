package main

import (
	"os"
	"path/filepath"
	"testing"
)

const tetraScript = `
(def s (tetrahedron (vec3 0 0 0) (vec3 1 0 0) (vec3 0 1 0) (vec3 0 0 1)))
(model "tetra" s)
`

func writeModel(t *testing.T, source string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "model.zy")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("writing model file: %v", err)
	}
	return path
}

func TestRunExportsTetrahedron(t *testing.T) {
	modelPath := writeModel(t, tetraScript)
	exportPath := filepath.Join(t.TempDir(), "out.3mf")

	code := run([]string{"-model", modelPath, "-export", exportPath, "-tolerance", "0.01"})
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	info, err := os.Stat(exportPath)
	if err != nil {
		t.Fatalf("export file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("export file is empty")
	}
}

func TestRunWithoutExportPath(t *testing.T) {
	modelPath := writeModel(t, tetraScript)
	code := run([]string{"-model", modelPath})
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
}

func TestRunMissingModelFlag(t *testing.T) {
	if code := run([]string{}); code != 2 {
		t.Fatalf("run() = %d, want 2", code)
	}
}

func TestRunInvalidTolerance(t *testing.T) {
	modelPath := writeModel(t, tetraScript)
	code := run([]string{"-model", modelPath, "-tolerance", "-1"})
	if code != 2 {
		t.Fatalf("run() = %d, want 2", code)
	}
}

func TestRunBadScriptSyntax(t *testing.T) {
	modelPath := writeModel(t, "(this is not valid")
	code := run([]string{"-model", modelPath})
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
}

func TestRunParametersPrelude(t *testing.T) {
	modelPath := writeModel(t, `
(def s (tetrahedron (vec3 0 0 0) (vec3 sz 0 0) (vec3 0 sz 0) (vec3 0 0 sz)))
(model "tetra" s)
`)
	code := run([]string{"-model", modelPath, "-parameters", "sz=1"})
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
}
