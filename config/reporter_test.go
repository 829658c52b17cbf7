package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	res := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		res[f.Name] = string(data)
	}
	return res
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	rc := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := rc.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	anim := filepath.Join(dir, "walk.anim")
	if err := os.WriteFile(anim, []byte("formatVersion 1.0;\n"), 0644); err != nil {
		t.Fatal(err)
	}
	snap := filepath.Join(dir, "scenes")
	if err := os.MkdirAll(snap, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(snap, "scene.yaml"), []byte("version: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r.Store("input.anim", anim)
	if err := r.StoreCopy("scenes", snap); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	r.StoreData("clipboard.txt", []byte("ball.tx"))
	r.StoreData("clipboard.txt", []byte("ball.ty"))
	temps := append([]string(nil), r.temps...)

	// changes after copy must not show up
	if err := os.WriteFile(filepath.Join(snap, "scene.yaml"), []byte("changed"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, rc.Destination)
	if files["input.anim"] != "formatVersion 1.0;\n" {
		t.Errorf("input.anim = %q", files["input.anim"])
	}
	if files["scenes/scene.yaml"] != "version: 1\n" {
		t.Errorf("scenes/scene.yaml = %q", files["scenes/scene.yaml"])
	}
	if !strings.Contains(files["MANIFEST"], "clipboard.txt") {
		t.Errorf("MANIFEST = %q", files["MANIFEST"])
	}
	dumps := 0
	for name := range files {
		if strings.HasPrefix(name, "clipboard.txt") {
			dumps++
		}
	}
	if dumps != 2 {
		t.Errorf("expected both clipboard dumps, got %d", dumps)
	}

	for _, d := range temps {
		if _, err := os.Stat(d); !os.IsNotExist(err) {
			t.Errorf("copy directory %s was not removed", d)
		}
	}
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	r.Store("a", "b")
	r.StoreData("a", nil)
	if r.Name() != "" {
		t.Error("nil report has a name")
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}

func TestReportStoreConflict(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("log", "/tmp/a.log")
	r.Store("log", "/tmp/a.log")
	defer func() {
		if recover() == nil {
			t.Error("expected panic on conflicting Store")
		}
	}()
	r.Store("log", "/tmp/b.log")
}
