package convert

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"animc/memscene"
	"animc/state"
)

func newTestImporter(t *testing.T, env *state.LocalEnv, scenePath string) *importer {
	t.Helper()
	im, err := newImporter(env, env.Log)
	if err != nil {
		t.Fatalf("newImporter() error = %v", err)
	}
	if err := im.openScene(scenePath); err != nil {
		t.Fatalf("openScene() error = %v", err)
	}
	if scenePath == "" {
		addBall(t, im.scene, nil)
	}
	return im
}

func ballKeys(t *testing.T, sc *memscene.Scene) (int, float64, float64) {
	t.Helper()
	a, ok := sc.Attribute("ball", "tx")
	if !ok || a.Curve == nil {
		t.Fatal("ball.tx is not animated")
	}
	last := a.Curve.Keys[a.Curve.Len()-1]
	return a.Curve.Len(), last.Input, last.Value
}

func TestProcess_SingleFile(t *testing.T) {
	ctx, env := setupTestEnv(t)
	im := newTestImporter(t, env, "")
	src := writeFile(t, filepath.Join(t.TempDir(), "ball.anim"), ballAnim)

	if err := process(ctx, src, im); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if im.count != 1 || im.failed != 0 {
		t.Errorf("count %d failed %d", im.count, im.failed)
	}
	n, in, v := ballKeys(t, im.scene)
	if n != 2 || math.Abs(in-1) > 1e-9 || v != 10 {
		t.Errorf("keys %d, last %g -> %g", n, in, v)
	}
}

func TestProcess_Directory(t *testing.T) {
	ctx, env := setupTestEnv(t)
	im := newTestImporter(t, env, "")

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.anim"), ballAnim)
	writeFile(t, filepath.Join(dir, "sub", "b.anim"), "\xEF\xBB\xBF"+ballAnim)
	writeFile(t, filepath.Join(dir, "sub", "notes.txt"), "not animation")
	writeZip(t, filepath.Join(dir, "more.zip"), map[string]string{"c.anim": ballAnim, "readme": "text"})

	if err := process(ctx, dir, im); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if im.count != 3 || im.failed != 0 {
		t.Errorf("count %d failed %d", im.count, im.failed)
	}
}

func TestProcess_PathInArchive(t *testing.T) {
	ctx, env := setupTestEnv(t)
	im := newTestImporter(t, env, "")

	zipPath := writeZip(t, filepath.Join(t.TempDir(), "shots.zip"), map[string]string{
		"shot010/ball.anim": ballAnim,
		"shot020/ball.anim": ballAnim,
		"shot020/cube.anim": ballAnim,
	})

	if err := process(ctx, filepath.Join(zipPath, "shot020"), im); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if im.count != 2 {
		t.Errorf("count %d, want 2", im.count)
	}
}

func TestProcess_BrokenFileCounted(t *testing.T) {
	ctx, env := setupTestEnv(t)
	im := newTestImporter(t, env, "")

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.anim"), ballAnim)
	// recognized by first keyword, but version is missing its value and
	// the rest of header
	writeZip(t, filepath.Join(dir, "bad.zip"), map[string]string{"bad.anim": "formatVersion ;"})

	if err := process(ctx, dir, im); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if im.count+im.failed != 2 || im.count < 1 {
		t.Errorf("count %d failed %d", im.count, im.failed)
	}
}

func TestProcess_Errors(t *testing.T) {
	ctx, env := setupTestEnv(t)
	im := newTestImporter(t, env, "")
	dir := t.TempDir()
	other := writeFile(t, filepath.Join(dir, "scene.ma"), "//Maya ASCII scene\n")
	src := writeFile(t, filepath.Join(dir, "ball.anim"), ballAnim)

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"missing", filepath.Join(dir, "missing", "ball.anim"), "input source was not found"},
		{"not animation", other, "not recognized as animation"},
		{"file with tail", filepath.Join(src, "inner"), "not recognized as animation"},
		{"directory with tail", filepath.Join(dir, "nothing", "x"), "input source was not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := process(ctx, tt.src, im)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("process() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestProcess_Cancelled(t *testing.T) {
	ctx, env := setupTestEnv(t)
	im := newTestImporter(t, env, "")
	ctx, cancel := context.WithCancel(ctx)
	cancel()

	if err := process(ctx, t.TempDir(), im); !errors.Is(err, context.Canceled) {
		t.Errorf("process() error = %v, want context.Canceled", err)
	}
}

func TestImporter_FrameRange(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Cfg.Import.FrameRange.Enable = true
	env.Cfg.Import.FrameRange.Start = 0
	env.Cfg.Import.FrameRange.End = 12
	im := newTestImporter(t, env, "")

	if err := im.processFile(ctx, strings.NewReader(ballAnim), "ball.anim"); err != nil {
		t.Fatalf("processFile() error = %v", err)
	}
	n, in, v := ballKeys(t, im.scene)
	if n != 2 || math.Abs(in-0.5) > 1e-9 || math.Abs(v-5) > 1e-4 {
		t.Errorf("keys %d, last %g -> %g", n, in, v)
	}
}

func TestImporter_SceneRoundTrip(t *testing.T) {
	ctx, env := setupTestEnv(t)
	scenePath := saveScene(t, ballScene(t, nil))
	im := newTestImporter(t, env, scenePath)
	if got := im.opts.Units; got != im.scene.Units {
		t.Errorf("read units %+v differ from scene %+v", got, im.scene.Units)
	}

	if err := im.processFile(ctx, strings.NewReader(ballAnim), "ball.anim"); err != nil {
		t.Fatalf("processFile() error = %v", err)
	}
	out := filepath.Join(t.TempDir(), "result", "shot.yaml")
	if err := im.saveScene(out); err != nil {
		t.Fatalf("saveScene() error = %v", err)
	}

	sc := memscene.New(zaptest.NewLogger(t))
	if err := sc.Load(out); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if n, _, v := ballKeys(t, sc); n != 2 || v != 10 {
		t.Errorf("saved keys %d last value %g", n, v)
	}
}

func TestImporter_MissingScene(t *testing.T) {
	_, env := setupTestEnv(t)
	im, err := newImporter(env, env.Log)
	if err != nil {
		t.Fatal(err)
	}
	if err := im.openScene(filepath.Join(t.TempDir(), "new.yaml")); err != nil {
		t.Fatalf("openScene() error = %v", err)
	}
	if len(im.scene.Selection(true)) != 0 {
		t.Error("new scene is not empty")
	}

	bad := writeFile(t, filepath.Join(t.TempDir(), "bad.yaml"), "version: 999\n")
	if err := im.openScene(bad); err == nil {
		t.Error("openScene() accepted unsupported snapshot")
	}
}

func TestImporter_Template(t *testing.T) {
	_, env := setupTestEnv(t)
	env.Cfg.Import.Template.Path = filepath.Join(t.TempDir(), "missing.xml")
	if _, err := newImporter(env, env.Log); err == nil {
		t.Error("newImporter() accepted missing template")
	}

	tpl := writeFile(t, filepath.Join(t.TempDir(), "tpl.xml"),
		`<?xml version="1.0"?><templates><template name="rig"><attribute name="ball_rx"/></template></templates>`)
	env.Cfg.Import.Template.Path = tpl
	im, err := newImporter(env, env.Log)
	if err != nil {
		t.Fatalf("newImporter() error = %v", err)
	}
	if err := im.openScene(""); err != nil {
		t.Fatal(err)
	}
	addBall(t, im.scene, nil)

	if err := im.processFile(context.Background(), strings.NewReader(ballAnim), "ball.anim"); err != nil {
		t.Fatalf("processFile() error = %v", err)
	}
	if a, _ := im.scene.Attribute("ball", "tx"); a.Curve != nil {
		t.Error("attribute outside of template was imported")
	}
}

func TestImporter_BOMFile(t *testing.T) {
	ctx, env := setupTestEnv(t)
	im := newTestImporter(t, env, "")
	path := filepath.Join(t.TempDir(), "ball.anim")
	if err := os.WriteFile(path, encode(t, ballAnim, encUTF16BigEndian), 0644); err != nil {
		t.Fatal(err)
	}
	if err := process(ctx, path, im); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if n, _, _ := ballKeys(t, im.scene); n != 2 {
		t.Errorf("keys %d", n)
	}
}
