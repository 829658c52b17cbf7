// Package memscene is an in-memory scene graph implementing every port the
// codec needs. Scenes are persisted as YAML snapshots.
package memscene

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"animc/anim"
	"animc/common"
	"animc/scene"
	"animc/units"
)

var (
	ErrNoNode      = errors.New("no such node")
	ErrNoAttribute = errors.New("no such attribute")
	ErrNoLayer     = errors.New("no such layer")
)

// Driver tells what feeds attribute value besides its own curve.
type Driver int

const (
	DriverNone Driver = iota
	DriverExpression
	DriverConstraint
	DriverSetDrivenKey
	DriverCurveDriven
)

var driverNames = []string{"", "expression", "constraint", "setDrivenKey", "curveDriven"}

func (d Driver) String() string {
	if int(d) < len(driverNames) {
		return driverNames[d]
	}
	return fmt.Sprintf("Driver(%d)", int(d))
}

// ParseDriver converts snapshot name, empty name is no driver.
func ParseDriver(name string) (Driver, error) {
	if i := slices.Index(driverNames, name); i >= 0 {
		return Driver(i), nil
	}
	return DriverNone, fmt.Errorf("unknown driver %q", name)
}

// Attribute of a node. Values are in internal units.
type Attribute struct {
	Name   string
	Full   string
	Type   common.ValueType
	Value  []float64
	Driver Driver
	// Curve is unlayered animation of the attribute.
	Curve *anim.Curve
	// Drive is what expression or constraint evaluates to over time.
	Drive *anim.Curve
}

func (a *Attribute) fullName() string {
	if a.Full != "" {
		return a.Full
	}
	return a.Name
}

func (a *Attribute) elements() int {
	return max(len(a.Value), 1)
}

// Node of the scene graph.
type Node struct {
	ID       uuid.UUID
	Name     string
	Kind     common.NodeKind
	Parent   string
	Children []string
	Attrs    []*Attribute
}

func (n *Node) attr(name string) *Attribute {
	for _, a := range n.Attrs {
		if a.Name == name || a.Full == name {
			return a
		}
	}
	return nil
}

// Scene keeps nodes in creation order.
type Scene struct {
	Units units.State

	nodes    map[string]*Node
	order    []string
	layers   []*layer
	selected []string

	selectedLayers []string
	playStart      float64
	playEnd        float64
	file           string

	log *zap.Logger
}

// New returns empty scene.
func New(log *zap.Logger) *Scene {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scene{
		Units:   units.NewState(units.TimeFilm, units.LinearCm, units.AngularDeg),
		nodes:   make(map[string]*Node),
		playEnd: 1,
		log:     log.Named("scene"),
	}
}

// AddNode creates node under parent (empty for root). Existing node is
// returned as is.
func (s *Scene) AddNode(name string, kind common.NodeKind, parent string) (*Node, error) {
	if n, ok := s.nodes[name]; ok {
		return n, nil
	}
	if parent != "" {
		p, ok := s.nodes[parent]
		if !ok {
			return nil, fmt.Errorf("parent %q: %w", parent, ErrNoNode)
		}
		p.Children = append(p.Children, name)
	}
	n := &Node{ID: uuid.New(), Name: name, Kind: kind, Parent: parent}
	s.nodes[name] = n
	s.order = append(s.order, name)
	return n, nil
}

// Node returns node by name.
func (s *Scene) Node(name string) (*Node, bool) {
	n, ok := s.nodes[name]
	return n, ok
}

// DefineAttribute appends attribute to the node.
func (s *Scene) DefineAttribute(node string, a *Attribute) error {
	n, ok := s.nodes[node]
	if !ok {
		return fmt.Errorf("%s: %w", node, ErrNoNode)
	}
	if n.attr(a.Name) != nil {
		return fmt.Errorf("%s.%s already exists", node, a.Name)
	}
	n.Attrs = append(n.Attrs, a)
	return nil
}

// Attribute returns attribute by leaf or full name.
func (s *Scene) Attribute(node, attr string) (*Attribute, bool) {
	n, ok := s.nodes[node]
	if !ok {
		return nil, false
	}
	a := n.attr(attr)
	return a, a != nil
}

func (s *Scene) plug(node string, a *Attribute) scene.Plug {
	return scene.Plug{Node: node, Attr: a.fullName(), Leaf: a.Name, Type: a.Type, Elements: a.elements()}
}

func (s *Scene) lookup(p scene.Plug) (*Attribute, error) {
	a, ok := s.Attribute(p.Node, p.Leaf)
	if !ok {
		return nil, fmt.Errorf("%s: %w", p.Name(), ErrNoAttribute)
	}
	return a, nil
}

// Select replaces node selection.
func (s *Scene) Select(names ...string) {
	s.selected = slices.Clone(names)
}

// SetPlaybackRange sets playback range in seconds.
func (s *Scene) SetPlaybackRange(start, end float64) {
	s.playStart, s.playEnd = start, end
}

// SetSceneFile sets name reported as source of exported files.
func (s *Scene) SetSceneFile(name string) {
	s.file = name
}

// NodeExists reports whether node with the name is in the scene.
func (s *Scene) NodeExists(name string) bool {
	_, ok := s.nodes[name]
	return ok
}

// ResolveAttribute finds attribute by leaf or full name.
func (s *Scene) ResolveAttribute(node, attr string) (scene.Plug, bool) {
	a, ok := s.Attribute(node, attr)
	if !ok {
		return scene.Plug{}, false
	}
	return s.plug(node, a), true
}

// Value evaluates attribute at time. Layer curves are added on top of the
// base value.
func (s *Scene) Value(p scene.Plug, at float64) ([]float64, error) {
	a, err := s.lookup(p)
	if err != nil {
		return nil, err
	}
	if a.elements() > 1 {
		return slices.Clone(a.Value), nil
	}

	var v float64
	switch {
	case a.Curve != nil && a.Curve.Len() > 0:
		v = a.Curve.Evaluate(at)
	case a.Drive != nil && a.Drive.Len() > 0:
		v = a.Drive.Evaluate(at)
	case len(a.Value) > 0:
		v = a.Value[0]
	}
	name := p.Node + "." + a.Name
	for _, l := range s.layers {
		if c, ok := l.curves[name]; ok && c.Len() > 0 {
			v += c.Evaluate(at)
		}
	}
	return []float64{v}, nil
}

// SetValue replaces attribute value.
func (s *Scene) SetValue(p scene.Plug, _ float64, v []float64) error {
	a, err := s.lookup(p)
	if err != nil {
		return err
	}
	a.Value = slices.Clone(v)
	return nil
}

// Connection describes attribute inputs.
func (s *Scene) Connection(p scene.Plug) scene.Connection {
	a, err := s.lookup(p)
	if err != nil {
		return scene.Connection{}
	}
	switch a.Driver {
	case DriverExpression, DriverConstraint:
		return scene.Connection{Connected: true}
	case DriverSetDrivenKey:
		return scene.Connection{Connected: true, DirectCurve: true}
	case DriverCurveDriven:
		return scene.Connection{Connected: true, DirectCurve: true, CurveDriven: true}
	}
	if s.IsLayerDriven(p) {
		return scene.Connection{Connected: true}
	}
	if a.Curve != nil {
		return scene.Connection{Connected: true, DirectCurve: true}
	}
	return scene.Connection{}
}

func (s *Scene) IsSetDrivenKey(p scene.Plug) bool {
	a, err := s.lookup(p)
	return err == nil && a.Driver == DriverSetDrivenKey
}

func (s *Scene) IsConstraintDriven(p scene.Plug) bool {
	a, err := s.lookup(p)
	return err == nil && a.Driver == DriverConstraint
}

// IsLayerDriven reports whether attribute is on any layer.
func (s *Scene) IsLayerDriven(p scene.Plug) bool {
	name := p.Node + "." + p.Leaf
	for _, l := range s.layers {
		if slices.Contains(l.attrs, name) {
			return true
		}
	}
	return false
}

// HasCurve reports whether attribute is animated in time.
func (s *Scene) HasCurve(p scene.Plug) bool {
	a, err := s.lookup(p)
	return err == nil && a.Curve != nil && a.Curve.IsTimeInput()
}

func (s *Scene) EvaluateCurve(p scene.Plug, at float64) (float64, bool) {
	a, err := s.lookup(p)
	if err != nil || a.Curve == nil {
		return 0, false
	}
	return a.Curve.Evaluate(at), true
}

// AddDynamicAttribute adds keyable double attribute unless node already has
// it.
func (s *Scene) AddDynamicAttribute(node, attr string) error {
	n, ok := s.nodes[node]
	if !ok {
		return fmt.Errorf("%s: %w", node, ErrNoNode)
	}
	if n.attr(attr) != nil {
		return nil
	}
	n.Attrs = append(n.Attrs, &Attribute{Name: attr, Type: common.ValueTypeDouble, Value: []float64{0}})
	s.log.Debug("Dynamic attribute added", zap.String("node", node), zap.String("attr", attr))
	return nil
}

// Selection returns selected nodes depth first. Without children only
// selected nodes are returned, all at depth 0. Empty selection means every
// root node.
func (s *Scene) Selection(includeChildren bool) []scene.NodeInfo {
	roots := s.selected
	if len(roots) == 0 {
		for _, name := range s.order {
			if n := s.nodes[name]; n.Parent == "" && n.Kind != common.NodeKindAnimLayer {
				roots = append(roots, name)
			}
		}
	}

	var (
		res  []scene.NodeInfo
		seen = make(map[string]struct{})
		walk func(name string, depth int)
	)
	walk = func(name string, depth int) {
		n, ok := s.nodes[name]
		if !ok || n.Kind == common.NodeKindAnimLayer {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		info := scene.NodeInfo{Kind: n.Kind, Name: name, Depth: depth}
		if includeChildren {
			info.ChildCount = len(n.Children)
		}
		res = append(res, info)
		if includeChildren {
			for _, c := range n.Children {
				walk(c, depth+1)
			}
		}
	}
	for _, r := range roots {
		walk(r, 0)
	}
	return res
}

// Attributes returns node attributes in order.
func (s *Scene) Attributes(node string) []scene.Plug {
	n, ok := s.nodes[node]
	if !ok {
		return nil
	}
	res := make([]scene.Plug, 0, len(n.Attrs))
	for _, a := range n.Attrs {
		res = append(res, s.plug(node, a))
	}
	return res
}

// Curve returns attribute curve on the layer, empty layer is unlayered curve.
func (s *Scene) Curve(p scene.Plug, layer string) *anim.Curve {
	if layer == "" {
		a, err := s.lookup(p)
		if err != nil {
			return nil
		}
		return a.Curve
	}
	l := s.layer(layer)
	if l == nil {
		return nil
	}
	return l.curves[p.Node+"."+p.Leaf]
}

func (s *Scene) PlaybackRange() (start, end float64) {
	return s.playStart, s.playEnd
}

func (s *Scene) SceneFile() string {
	return s.file
}
