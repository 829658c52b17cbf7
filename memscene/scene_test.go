package memscene

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"animc/anim"
	"animc/common"
	"animc/layers"
	"animc/scene"
)

func linearCurve(keys ...float64) *anim.Curve {
	c := anim.NewCurve(common.InputKindTime, common.OutputKindLinear)
	for i := 0; i+1 < len(keys); i += 2 {
		c.AddKey(keys[i], keys[i+1], common.TangentKindLinear, common.TangentKindLinear)
	}
	return c
}

func testScene(t *testing.T) *Scene {
	t.Helper()
	s := New(zaptest.NewLogger(t))
	_, err := s.AddNode("root", common.NodeKindDagNode, "")
	require.NoError(t, err)
	_, err = s.AddNode("arm", common.NodeKindDagNode, "root")
	require.NoError(t, err)
	_, err = s.AddNode("armShape", common.NodeKindShapeNode, "arm")
	require.NoError(t, err)
	_, err = s.AddNode("hand", common.NodeKindDagNode, "root")
	require.NoError(t, err)

	require.NoError(t, s.DefineAttribute("root", &Attribute{Name: "tx", Full: "translateX", Type: common.ValueTypeDistance, Value: []float64{0}, Curve: linearCurve(0, 0, 1, 10)}))
	require.NoError(t, s.DefineAttribute("root", &Attribute{Name: "v", Type: common.ValueTypeBool, Value: []float64{1}}))
	require.NoError(t, s.DefineAttribute("arm", &Attribute{Name: "rx", Type: common.ValueTypeAngle, Value: []float64{0}, Driver: DriverExpression, Drive: linearCurve(0, 1, 1, 2)}))
	require.NoError(t, s.DefineAttribute("hand", &Attribute{Name: "sdk", Type: common.ValueTypeDouble, Value: []float64{0}, Driver: DriverSetDrivenKey}))
	return s
}

func TestSelection(t *testing.T) {
	s := testScene(t)

	got := s.Selection(true)
	require.Len(t, got, 4)
	assert.Equal(t, scene.NodeInfo{Kind: common.NodeKindDagNode, Name: "root", Depth: 0, ChildCount: 2}, got[0])
	assert.Equal(t, "arm", got[1].Name)
	assert.Equal(t, scene.NodeInfo{Kind: common.NodeKindShapeNode, Name: "armShape", Depth: 2}, got[2])
	assert.Equal(t, "hand", got[3].Name)

	s.Select("arm")
	got = s.Selection(false)
	require.Len(t, got, 1)
	assert.Equal(t, scene.NodeInfo{Kind: common.NodeKindDagNode, Name: "arm"}, got[0])
}

func TestQuery(t *testing.T) {
	s := testScene(t)

	tx, ok := s.ResolveAttribute("root", "translateX")
	require.True(t, ok)
	assert.Equal(t, "tx", tx.Leaf)
	assert.Equal(t, "translateX", tx.Attr)

	v, err := s.Value(tx, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 5, v[0], 1e-12)
	assert.True(t, s.HasCurve(tx))
	assert.Equal(t, scene.Connection{Connected: true, DirectCurve: true}, s.Connection(tx))

	rx, _ := s.ResolveAttribute("arm", "rx")
	assert.Equal(t, scene.Connection{Connected: true}, s.Connection(rx))
	v, err = s.Value(rx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2, v[0], 1e-12)

	sdk, _ := s.ResolveAttribute("hand", "sdk")
	assert.True(t, s.IsSetDrivenKey(sdk))
	assert.False(t, s.IsConstraintDriven(sdk))

	vis, _ := s.ResolveAttribute("root", "v")
	assert.Equal(t, scene.Connection{}, s.Connection(vis))
	require.NoError(t, s.SetValue(vis, 0, []float64{0}))
	v, _ = s.Value(vis, 0)
	assert.Equal(t, []float64{0}, v)

	_, ok = s.ResolveAttribute("root", "missing")
	assert.False(t, ok)
	require.NoError(t, s.AddDynamicAttribute("root", "missing"))
	_, ok = s.ResolveAttribute("root", "missing")
	assert.True(t, ok)
	assert.ErrorIs(t, s.AddDynamicAttribute("nowhere", "x"), ErrNoNode)
}

func TestLayers(t *testing.T) {
	s := testScene(t)

	require.NoError(t, s.CreateLayer("L1", ""))
	assert.Equal(t, []string{layers.RootLayer, "L1"}, s.OrderedLayerNames())
	require.NoError(t, s.CreateLayer("L2", layers.RootLayer))
	assert.Equal(t, []string{layers.RootLayer, "L2", "L1"}, s.OrderedLayerNames())
	assert.True(t, s.NodeExists("L2"))

	mute, ok := s.ResolveAttribute("L1", "mute")
	require.True(t, ok)
	assert.Equal(t, common.ValueTypeBool, mute.Type)

	tx, _ := s.ResolveAttribute("root", "tx")
	require.NoError(t, s.SetLayerCurve("L1", "root", "translateX", linearCurve(0, 1, 1, 1)))
	assert.Equal(t, []string{"root.tx"}, s.LayerAttributes("L1"))
	assert.True(t, s.IsLayerDriven(tx))
	assert.NotNil(t, s.Curve(tx, "L1"))

	v, _ := s.Value(tx, 1)
	assert.InDelta(t, 11, v[0], 1e-12)

	require.NoError(t, s.RemoveAttribute("L1", "root", "tx"))
	assert.Empty(t, s.LayerAttributes("L1"))
	assert.Nil(t, s.Curve(tx, "L1"))

	require.NoError(t, s.DeleteLayer("L1"))
	assert.False(t, s.NodeExists("L1"))
	assert.ErrorIs(t, s.DeleteLayer("L1"), ErrNoLayer)
}

func TestPaste(t *testing.T) {
	s := testScene(t)
	require.NoError(t, s.CreateLayer("L1", ""))

	cb := anim.NewLayerClipboard()
	cb.Array("").Append(&anim.Item{Node: "root", FullAttr: "translateX", LeafAttr: "tx", Curve: linearCurve(2, 20)})
	cb.Array("L1").Append(&anim.Item{Node: "arm", FullAttr: "rx", LeafAttr: "rx", Curve: linearCurve(0, 3)})
	cb.Array("").Append(&anim.Item{Node: "arm", FullAttr: "arm"})
	cb.Array("").Append(&anim.Item{Node: "ghost", LeafAttr: "tx", Curve: linearCurve(0, 1)})

	err := s.Paste(cb, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoNode)

	a, _ := s.Attribute("root", "tx")
	assert.Equal(t, 3, a.Curve.Len(), "keys must be merged")
	assert.Equal(t, []string{"arm.rx"}, s.LayerAttributes("L1"))

	again := anim.NewLayerClipboard()
	again.Array("").Append(&anim.Item{Node: "root", FullAttr: "translateX", LeafAttr: "tx", Curve: linearCurve(2, 20)})
	require.NoError(t, s.Paste(again, true))
	a, _ = s.Attribute("root", "tx")
	assert.Equal(t, 1, a.Curve.Len(), "curve must be replaced")
}

func TestSnapshot(t *testing.T) {
	s := testScene(t)
	s.SetSceneFile("shot.ma")
	s.SetPlaybackRange(0, 2)
	s.Select("root")
	require.NoError(t, s.CreateLayer("L1", ""))
	require.NoError(t, s.SetLayerCurve("L1", "arm", "rx", linearCurve(0, 1)))

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, s.Save(path))

	loaded := New(zaptest.NewLogger(t))
	require.NoError(t, loaded.Load(path))

	assert.Equal(t, s.Selection(true), loaded.Selection(true))
	assert.Equal(t, s.OrderedLayerNames(), loaded.OrderedLayerNames())
	assert.Equal(t, "shot.ma", loaded.SceneFile())
	start, end := loaded.PlaybackRange()
	assert.Equal(t, []float64{0, 2}, []float64{start, end})

	orig, _ := s.Node("arm")
	got, _ := loaded.Node("arm")
	assert.Equal(t, orig.ID, got.ID)

	tx, _ := loaded.ResolveAttribute("root", "tx")
	assert.Equal(t, s.Curve(tx, ""), loaded.Curve(tx, ""))
	rx, _ := loaded.ResolveAttribute("arm", "rx")
	assert.Equal(t, s.Curve(rx, "L1"), loaded.Curve(rx, "L1"))

	a, _ := loaded.Attribute("arm", "rx")
	assert.Equal(t, DriverExpression, a.Driver)

	var buf bytes.Buffer
	require.NoError(t, loaded.Write(&buf))
	assert.Contains(t, buf.String(), "scene_file: shot.ma")
}

func TestSnapshotRejectsUnknownFields(t *testing.T) {
	s := New(nil)
	err := s.Read(bytes.NewBufferString("version: 1\nunits: {time: film, linear: cm, angular: deg}\nnodes: []\nbogus: 1\n"))
	assert.Error(t, err)
}
