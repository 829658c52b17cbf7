package memscene

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"animc/anim"
	"animc/common"
	"animc/layers"
)

type layer struct {
	name   string
	attrs  []string
	curves map[string]*anim.Curve
}

// control attribute defaults, in layers.AttributesOfInterest order
var layerControls = []struct {
	t common.ValueType
	v float64
}{
	{common.ValueTypeBool, 0},   // mute
	{common.ValueTypeBool, 0},   // lock
	{common.ValueTypeBool, 0},   // solo
	{common.ValueTypeBool, 0},   // override
	{common.ValueTypeBool, 1},   // passthrough
	{common.ValueTypeBool, 0},   // preferred
	{common.ValueTypeDouble, 1}, // weight
	{common.ValueTypeEnum, 0},   // rotationAccumulationMode
	{common.ValueTypeEnum, 1},   // scaleAccumulationMode
}

func (s *Scene) layer(name string) *layer {
	for _, l := range s.layers {
		if l.name == name {
			return l
		}
	}
	return nil
}

// OrderedLayerNames returns layers bottom to top.
func (s *Scene) OrderedLayerNames() []string {
	res := make([]string, 0, len(s.layers))
	for _, l := range s.layers {
		res = append(res, l.name)
	}
	return res
}

func (s *Scene) newLayer(name string, at int) error {
	n, err := s.AddNode(name, common.NodeKindAnimLayer, "")
	if err != nil {
		return err
	}
	if len(n.Attrs) == 0 {
		for i, attr := range layers.AttributesOfInterest() {
			c := layerControls[i]
			n.Attrs = append(n.Attrs, &Attribute{Name: attr, Type: c.t, Value: []float64{c.v}})
		}
	}
	l := &layer{name: name, curves: make(map[string]*anim.Curve)}
	s.layers = slices.Insert(s.layers, at, l)
	s.log.Debug("Layer created", zap.String("layer", name), zap.Int("position", at))
	return nil
}

// CreateLayer places new layer right after attachAfter, or on top when
// attachAfter is unknown. Root layer is created first when stack is empty.
func (s *Scene) CreateLayer(name, attachAfter string) error {
	if name == "" {
		return fmt.Errorf("empty layer name")
	}
	if len(s.layers) == 0 {
		if err := s.newLayer(layers.RootLayer, 0); err != nil {
			return err
		}
		if name == layers.RootLayer {
			return nil
		}
	}
	if s.layer(name) != nil {
		return nil
	}
	at := len(s.layers)
	if i := slices.IndexFunc(s.layers, func(l *layer) bool { return l.name == attachAfter }); i >= 0 {
		at = i + 1
	}
	return s.newLayer(name, at)
}

// DeleteLayer removes layer with its node and curves.
func (s *Scene) DeleteLayer(name string) error {
	i := slices.IndexFunc(s.layers, func(l *layer) bool { return l.name == name })
	if i < 0 {
		return fmt.Errorf("%s: %w", name, ErrNoLayer)
	}
	s.layers = slices.Delete(s.layers, i, i+1)
	delete(s.nodes, name)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == name })
	s.selectedLayers = slices.DeleteFunc(s.selectedLayers, func(n string) bool { return n == name })
	return nil
}

// LayerAttributes returns "node.attr" names on the layer.
func (s *Scene) LayerAttributes(name string) []string {
	if l := s.layer(name); l != nil {
		return slices.Clone(l.attrs)
	}
	return nil
}

// AddAttribute puts attribute on the layer.
func (s *Scene) AddAttribute(layerName, node, attr string) error {
	l := s.layer(layerName)
	if l == nil {
		return fmt.Errorf("%s: %w", layerName, ErrNoLayer)
	}
	a, ok := s.Attribute(node, attr)
	if !ok {
		return fmt.Errorf("%s.%s: %w", node, attr, ErrNoAttribute)
	}
	name := node + "." + a.Name
	if !slices.Contains(l.attrs, name) {
		l.attrs = append(l.attrs, name)
	}
	return nil
}

// RemoveAttribute takes attribute off the layer, dropping its layer curve.
func (s *Scene) RemoveAttribute(layerName, node, attr string) error {
	l := s.layer(layerName)
	if l == nil {
		return fmt.Errorf("%s: %w", layerName, ErrNoLayer)
	}
	name := node + "." + attr
	l.attrs = slices.DeleteFunc(l.attrs, func(n string) bool { return n == name })
	delete(l.curves, name)
	return nil
}

// SelectLayer adds layer to the layer selection.
func (s *Scene) SelectLayer(name string) {
	if !slices.Contains(s.selectedLayers, name) {
		s.selectedLayers = append(s.selectedLayers, name)
	}
}

// SelectedLayers returns layer selection.
func (s *Scene) SelectedLayers() []string {
	return slices.Clone(s.selectedLayers)
}

// SetLayerCurve sets curve of attribute on the layer, attribute is added to
// the layer when needed.
func (s *Scene) SetLayerCurve(layerName, node, attr string, c *anim.Curve) error {
	if err := s.AddAttribute(layerName, node, attr); err != nil {
		return err
	}
	a, _ := s.Attribute(node, attr)
	s.layer(layerName).curves[node+"."+a.Name] = c
	return nil
}
