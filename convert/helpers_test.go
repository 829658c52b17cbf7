package convert

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"animc/anim"
	"animc/common"
	"animc/config"
	"animc/memscene"
	"animc/state"
)

const ballAnim = `formatVersion 1.0;
hostVersion 2016;
timeUnit film;
linearUnit cm;
angularUnit deg;
startTime 0;
endTime 24;
dagNode {
  ball 0 0;
  anim translateX tx 0;
  animData {
    input time;
    output linear;
    weighted 0;
    preInfinity constant;
    postInfinity constant;
    keys {
      0 0 linear linear 1 0 0;
      24 10 linear linear 1 0 0;
    }
  }
}
`

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	env.Cfg = cfg
	return ctx, env
}

// ballScene returns scene with a single "ball" node, its translateX is
// animated when curve is not nil.
func ballScene(t *testing.T, curve *anim.Curve) *memscene.Scene {
	t.Helper()
	sc := memscene.New(zaptest.NewLogger(t))
	addBall(t, sc, curve)
	return sc
}

func addBall(t *testing.T, sc *memscene.Scene, curve *anim.Curve) {
	t.Helper()
	if _, err := sc.AddNode("ball", common.NodeKindDagNode, ""); err != nil {
		t.Fatal(err)
	}
	attrs := []*memscene.Attribute{
		{Name: "tx", Full: "translateX", Type: common.ValueTypeDistance, Value: []float64{0}, Curve: curve},
		{Name: "rx", Full: "rotateX", Type: common.ValueTypeAngle, Value: []float64{0}},
	}
	for _, a := range attrs {
		if err := sc.DefineAttribute("ball", a); err != nil {
			t.Fatal(err)
		}
	}
}

func saveScene(t *testing.T, sc *memscene.Scene) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shot.yaml")
	if err := sc.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	return path
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeZip(t *testing.T, path string, files map[string]string) string {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	w := zip.NewWriter(f)
	for name, content := range files {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := io.WriteString(fw, content); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func linearCurve(pairs ...float64) *anim.Curve {
	c := anim.NewCurve(common.InputKindTime, common.OutputKindLinear)
	for i := 0; i+1 < len(pairs); i += 2 {
		c.AddKey(pairs[i], pairs[i+1], common.TangentKindLinear, common.TangentKindLinear)
	}
	return c
}
