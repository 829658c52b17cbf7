// Package layers keeps animation layer stack of the scene in sync with what
// animation file needs and answers layer membership questions for export.
package layers

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"animc/scene"
)

// RootLayer is the name of the layer at the bottom of the stack.
const RootLayer = "BaseAnimation"

var controlAttributes = []string{
	"mute",
	"lock",
	"solo",
	"override",
	"passthrough",
	"preferred",
	"weight",
	"rotationAccumulationMode",
	"scaleAccumulationMode",
}

// AttributesOfInterest returns per layer control attributes which are
// exported as static values of layer nodes.
func AttributesOfInterest() []string {
	return slices.Clone(controlAttributes)
}

// Manager is created once per file operation.
type Manager struct {
	scene scene.Layers
	log   *zap.Logger

	ordered []string
	loaded  bool

	// attributes already taken out of their layers
	visited map[string]struct{}
	// layers which lost attributes, in order of first removal
	touched []string
	// layer handles collected during export, indexed as ordered
	collected []string
}

// NewManager returns manager working with the scene layer stack.
func NewManager(sc scene.Layers, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		scene:   sc,
		log:     log.Named("layers"),
		visited: make(map[string]struct{}),
	}
}

// OrderedLayerNames returns scene layers bottom to top. Scene is queried once,
// see Refresh.
func (m *Manager) OrderedLayerNames() []string {
	if !m.loaded {
		m.Refresh()
	}
	return m.ordered
}

// Refresh queries layer order again.
func (m *Manager) Refresh() {
	m.ordered = slices.Clone(m.scene.OrderedLayerNames())
	m.loaded = true
}

// HasLayers reports whether scene has at least one layer.
func (m *Manager) HasLayers() bool {
	return len(m.OrderedLayerNames()) > 0
}

// CreateMissing creates layers absent from the scene so that names[i] ends
// up right after names[i-1]. Root layer leading a longer list is left for
// the scene, which creates it along with the first layer anyway. Creating
// root alone twice is a no-op.
func (m *Manager) CreateMissing(names []string) error {
	present := make(map[string]struct{})
	refresh := func() {
		clear(present)
		for _, n := range m.scene.OrderedLayerNames() {
			present[n] = struct{}{}
		}
	}
	refresh()

	for i, name := range names {
		if _, ok := present[name]; ok {
			continue
		}
		var prev string
		if i > 0 {
			prev = names[i-1]
		} else if name == RootLayer && len(names) > 1 {
			continue
		}
		if err := m.scene.CreateLayer(name, prev); err != nil {
			return fmt.Errorf("unable to create layer %q: %w", name, err)
		}
		m.log.Debug("Layer created", zap.String("layer", name), zap.String("after", prev))
		refresh()
	}
	m.Refresh()
	return nil
}

// Select adds named layers present in the scene to the active selection.
func (m *Manager) Select(names []string) {
	m.Refresh()
	for _, name := range names {
		if slices.Contains(m.ordered, name) {
			m.scene.SelectLayer(name)
		}
	}
}

func attrName(node, attr string) string {
	return node + "." + attr
}

// Contains reports whether attribute is on the layer.
func (m *Manager) Contains(layer, node, attr string) bool {
	return slices.Contains(m.scene.LayerAttributes(layer), attrName(node, attr))
}

// RemoveIfNeeded takes attribute out of every layer holding it. It does
// anything only when replacing, when layers exist and only once per attribute
// for the lifetime of the manager. Returns true when removal was attempted.
func (m *Manager) RemoveIfNeeded(replace bool, node, attr string) bool {
	if !replace || !m.HasLayers() {
		return false
	}
	full := attrName(node, attr)
	if _, ok := m.visited[full]; ok {
		return false
	}
	m.visited[full] = struct{}{}

	for _, layer := range m.ordered {
		if !m.Contains(layer, node, attr) {
			continue
		}
		if err := m.scene.RemoveAttribute(layer, node, attr); err != nil {
			m.log.Warn("Unable to remove attribute from layer", zap.String("layer", layer), zap.String("attr", full), zap.Error(err))
			continue
		}
		if !slices.Contains(m.touched, layer) {
			m.touched = append(m.touched, layer)
		}
	}
	return true
}

// AddIfMissing puts attribute on the layer unless it is there already.
// Returns true when attribute was added.
func (m *Manager) AddIfMissing(layer, node, attr string) (bool, error) {
	if m.Contains(layer, node, attr) {
		return false, nil
	}
	if err := m.scene.AddAttribute(layer, node, attr); err != nil {
		return false, fmt.Errorf("unable to add %s to layer %q: %w", attrName(node, attr), layer, err)
	}
	return true, nil
}

// DeleteEmptyLayers deletes layers emptied by RemoveIfNeeded. Returns names
// of deleted layers.
func (m *Manager) DeleteEmptyLayers(replace bool) []string {
	if !replace {
		return nil
	}
	var deleted []string
	for _, layer := range m.touched {
		if len(m.scene.LayerAttributes(layer)) != 0 {
			continue
		}
		if err := m.scene.DeleteLayer(layer); err != nil {
			m.log.Warn("Unable to delete empty layer", zap.String("layer", layer), zap.Error(err))
			continue
		}
		deleted = append(deleted, layer)
	}
	if len(deleted) > 0 {
		m.Refresh()
	}
	return deleted
}

// CollectLayerObjects records layers found driving exported attributes. Only
// names present in ordered list are kept, unknown ones are ignored.
func (m *Manager) CollectLayerObjects(layers []string) {
	ordered := m.OrderedLayerNames()
	if len(m.collected) != len(ordered) {
		m.collected = make([]string, len(ordered))
	}
	for _, l := range layers {
		if i := slices.Index(ordered, l); i >= 0 {
			m.collected[i] = l
		}
	}
}

// Collected returns layers recorded by CollectLayerObjects in stack order.
func (m *Manager) Collected() []string {
	res := make([]string, 0, len(m.collected))
	for _, l := range m.collected {
		if l != "" {
			res = append(res, l)
		}
	}
	return res
}

// NodeLayers returns layer membership of node attributes.
func (m *Manager) NodeLayers(node string) *NodeLayers {
	nl := &NodeLayers{attrs: make(map[string][]string)}
	prefix := node + "."
	for _, layer := range m.OrderedLayerNames() {
		for _, name := range m.scene.LayerAttributes(layer) {
			if attr, ok := strings.CutPrefix(name, prefix); ok {
				nl.attrs[attr] = append(nl.attrs[attr], layer)
			}
		}
	}
	return nl
}
