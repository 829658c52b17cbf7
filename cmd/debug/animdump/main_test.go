package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"animc/anim"
	"animc/common"
	"animc/memscene"
)

func testScene(t *testing.T) *memscene.Scene {
	t.Helper()

	c := anim.NewCurve(common.InputKindTime, common.OutputKindLinear)
	c.AddKey(0, 0, common.TangentKindLinear, common.TangentKindLinear)
	c.AddKey(1, 10, common.TangentKindLinear, common.TangentKindLinear)

	sc := memscene.New(nil)
	if _, err := sc.AddNode("ball", common.NodeKindDagNode, ""); err != nil {
		t.Fatal(err)
	}
	if err := sc.DefineAttribute("ball", &memscene.Attribute{Name: "tx", Full: "translateX", Type: common.ValueTypeDistance, Value: []float64{0}, Curve: c}); err != nil {
		t.Fatal(err)
	}
	if err := sc.DefineAttribute("ball", &memscene.Attribute{Name: "rx", Full: "rotateX", Type: common.ValueTypeAngle, Value: []float64{45}}); err != nil {
		t.Fatal(err)
	}
	return sc
}

func TestDumpScene(t *testing.T) {
	out := dumpScene(testScene(t))

	for _, want := range []string{
		"dagNode ball (children=0)",
		"tx [translateX] distance: 0",
		"curve input=time output=linear keys=2",
		"rx [rotateX] angle: 45",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump does not contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "layers") {
		t.Errorf("dump lists layers for scene without them:\n%s", out)
	}
}

func TestWriteDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.sqlite")

	curves, keys, err := writeDatabase(testScene(t), path)
	if err != nil {
		t.Fatalf("writeDatabase() error = %v", err)
	}
	if curves != 1 || keys != 2 {
		t.Fatalf("writeDatabase() = %d curves, %d keys", curves, keys)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}

	conn, err := sqlite.OpenConn(path, sqlite.OpenReadOnly)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	var last float64
	err = sqlitex.Execute(conn, `SELECT k.value FROM keys k JOIN curves c ON c.id = k.curve_id WHERE c.attr = ? ORDER BY k.idx`,
		&sqlitex.ExecOptions{
			Args: []any{"tx"},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				last = stmt.ColumnFloat(0)
				return nil
			},
		})
	if err != nil {
		t.Fatal(err)
	}
	if last != 10 {
		t.Errorf("last key value = %g, want 10", last)
	}
}
