package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNilFilterAllowsEverything(t *testing.T) {
	var f *Filter
	assert.False(t, f.IsSet())
	assert.True(t, f.IsNodeAllowed("anything"))
	assert.True(t, f.IsAttributeAllowed("anything", "tx"))
	assert.Nil(t, f.AttributesForNode("anything"))
}

func TestNewSplitsAtLastUnderscore(t *testing.T) {
	f := New([]string{"pSphere1_translateX", "Name__name_rotateY", "Name__name_tx", "bad", "_x", "trailing_"})

	assert.True(t, f.IsNodeAllowed("pSphere1"))
	assert.True(t, f.IsNodeAllowed("Name__name"))
	assert.False(t, f.IsNodeAllowed("bad"))
	assert.False(t, f.IsNodeAllowed("trailing"))

	assert.True(t, f.IsAttributeAllowed("pSphere1", "translateX"))
	assert.False(t, f.IsAttributeAllowed("pSphere1", "translateY"))
	assert.False(t, f.IsAttributeAllowed("missing", "translateX"))

	assert.Equal(t, []string{"rotateY", "tx"}, f.AttributesForNode("Name__name"))
	assert.Equal(t, []string{"Name__name", "pSphere1"}, f.Nodes())
}

const templateXML = `<?xml version="1.0" encoding="UTF-8"?>
<templates>
  <template name="rig">
    <attribute name="pSphere1_translateX" type="maya.double"/>
    <attribute name="pSphere1_rotateY" type="maya.double"/>
    <attribute name="ctrl_main_visibility" type="maya.bool"/>
  </template>
  <view name="anim" template="rig">
    <group name="transforms">
      <property name="pSphere1_translateX"/>
    </group>
  </view>
</templates>
`

func TestReadTemplate(t *testing.T) {
	f, err := Read(strings.NewReader(templateXML), "rig", "", zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.True(t, f.IsAttributeAllowed("pSphere1", "rotateY"))
	assert.True(t, f.IsAttributeAllowed("ctrl_main", "visibility"))
	assert.False(t, f.IsAttributeAllowed("pSphere1", "scaleX"))
}

func TestReadView(t *testing.T) {
	f, err := Read(strings.NewReader(templateXML), "rig", "anim", zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.True(t, f.IsAttributeAllowed("pSphere1", "translateX"))
	assert.False(t, f.IsAttributeAllowed("pSphere1", "rotateY"))
	assert.False(t, f.IsNodeAllowed("ctrl_main"))
}

func TestReadUnknownTemplate(t *testing.T) {
	_, err := Read(strings.NewReader(templateXML), "nope", "", nil)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rig.template")
	require.NoError(t, os.WriteFile(path, []byte(templateXML), 0644))

	f, err := LoadFile(path, "", "", zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.True(t, f.IsNodeAllowed("pSphere1"))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.template"), "", "", nil)
	assert.Error(t, err)
}
