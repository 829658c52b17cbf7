package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"animc/codec"
)

func TestExportScene(t *testing.T) {
	ctx, env := setupTestEnv(t)
	scenePath := saveScene(t, ballScene(t, linearCurve(0, 0, 1, 10)))
	dst := t.TempDir()

	if err := exportScene(ctx, scenePath, dst, env, env.Log); err != nil {
		t.Fatalf("exportScene() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dst, "shot.anim"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	text := string(data)
	for _, want := range []string{"formatVersion 1.0;\n", "endTime 24;\n", "  ball 0 0;\n", "  anim translateX tx 0;\n", "      24 10 linear linear 1 0 0;\n"} {
		if !strings.Contains(text, want) {
			t.Errorf("output misses %q:\n%s", want, text)
		}
	}
	// rotateX is not animated and statics are exported by default
	if !strings.Contains(text, "  static rotateX rx 1;\n") {
		t.Errorf("static rotateX missing:\n%s", text)
	}
}

func TestExportScene_Overwrite(t *testing.T) {
	ctx, env := setupTestEnv(t)
	scenePath := saveScene(t, ballScene(t, linearCurve(0, 0, 1, 10)))
	out := writeFile(t, filepath.Join(t.TempDir(), "ball.anim"), "old")

	err := exportScene(ctx, scenePath, out, env, env.Log)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("exportScene() error = %v, want already exists", err)
	}
	if data, _ := os.ReadFile(out); string(data) != "old" {
		t.Error("existing file was touched")
	}

	env.Overwrite = true
	if err := exportScene(ctx, scenePath, out, env, env.Log); err != nil {
		t.Fatalf("exportScene() with overwrite error = %v", err)
	}
	if data, _ := os.ReadFile(out); !strings.HasPrefix(string(data), "formatVersion 1.0;") {
		t.Errorf("file was not replaced: %q", data)
	}
}

func TestExportScene_NothingToExport(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Cfg.Export.Statics = false
	scenePath := saveScene(t, ballScene(t, nil))
	out := filepath.Join(t.TempDir(), "ball.anim")

	err := exportScene(ctx, scenePath, out, env, env.Log)
	if !errors.Is(err, codec.ErrNothingToExport) {
		t.Fatalf("exportScene() error = %v, want ErrNothingToExport", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output left behind: %v", err)
	}
}

func TestExportScene_FailedOverwriteKeepsFile(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Cfg.Export.Statics = false
	env.Overwrite = true
	scenePath := saveScene(t, ballScene(t, nil))
	dir := t.TempDir()
	out := writeFile(t, filepath.Join(dir, "ball.anim"), "old")

	err := exportScene(ctx, scenePath, out, env, env.Log)
	if !errors.Is(err, codec.ErrNothingToExport) {
		t.Fatalf("exportScene() error = %v, want ErrNothingToExport", err)
	}
	if data, _ := os.ReadFile(out); string(data) != "old" {
		t.Errorf("existing file lost after failed export: %q", data)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary output left behind: %v", entries)
	}
}

func TestExportScene_Nodes(t *testing.T) {
	ctx, env := setupTestEnv(t)
	scenePath := saveScene(t, ballScene(t, linearCurve(0, 0, 1, 10)))
	dst := t.TempDir()

	env.Nodes = []string{"cube"}
	if err := exportScene(ctx, scenePath, dst, env, env.Log); err == nil || !strings.Contains(err.Error(), `"cube"`) {
		t.Errorf("exportScene() error = %v, want unknown node", err)
	}

	env.Nodes = []string{"ball"}
	if err := exportScene(ctx, scenePath, dst, env, env.Log); err != nil {
		t.Fatalf("exportScene() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "shot-ball.anim")); err != nil {
		t.Errorf("output named after nodes not found: %v", err)
	}
}

func TestExportScene_Embedded(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Cfg.Export.EmbeddedFile = writeFile(t, filepath.Join(t.TempDir(), "edits.txt"), "select -r ball;\n")
	scenePath := saveScene(t, ballScene(t, linearCurve(0, 0, 1, 10)))
	out := filepath.Join(t.TempDir(), "ball.anim")

	if err := exportScene(ctx, scenePath, out, env, env.Log); err != nil {
		t.Fatalf("exportScene() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "select -r ball;") {
		t.Errorf("embedded file not carried:\n%s", data)
	}

	env.Cfg.Export.EmbeddedFile = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := exportOptions(env.Cfg, env.Units()); err == nil {
		t.Error("exportOptions() accepted missing embedded file")
	}
}

func TestExportOptions_Units(t *testing.T) {
	_, env := setupTestEnv(t)
	env.Cfg.Export.UseSpecifiedRange = true
	env.Cfg.Export.Start, env.Cfg.Export.End, env.Cfg.Export.Step = 12, 48, 2

	opts, err := exportOptions(env.Cfg, env.Units())
	if err != nil {
		t.Fatal(err)
	}
	if opts.Start != 0.5 || opts.End != 2 || opts.Step != 2.0/24 {
		t.Errorf("range %g..%g step %g", opts.Start, opts.End, opts.Step)
	}
	if opts.Embedded != nil {
		t.Error("embedded data without embedded file")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx, env := setupTestEnv(t)
	scenePath := saveScene(t, ballScene(t, linearCurve(0, 0, 0.5, 4, 1, 10)))
	out := filepath.Join(t.TempDir(), "ball.anim")
	if err := exportScene(ctx, scenePath, out, env, env.Log); err != nil {
		t.Fatalf("exportScene() error = %v", err)
	}

	im := newTestImporter(t, env, "")
	if err := process(context.Background(), out, im); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	a, _ := im.scene.Attribute("ball", "tx")
	if a.Curve == nil || a.Curve.Len() != 3 {
		t.Fatalf("curve not imported: %+v", a.Curve)
	}
	for i, want := range []float64{0, 4, 10} {
		if got := a.Curve.Keys[i].Value; got != want {
			t.Errorf("key %d value %g, want %g", i, got, want)
		}
	}
}
