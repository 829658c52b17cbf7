// Package scene defines what the codec needs from the host scene graph.
//
// Implementations live outside of the codec (see memscene for the in-memory
// one). Values passed through these interfaces are in internal units:
// seconds, centimeters and radians.
package scene

import (
	"animc/anim"
	"animc/common"
)

// Plug is a resolved attribute handle.
type Plug struct {
	Node string
	// Attr is full attribute path, Leaf is its last component.
	Attr string
	Leaf string
	Type common.ValueType
	// Elements is the number of numeric values attribute holds, 1 for scalars.
	Elements int
}

// Name returns "node.leaf" form used by layer membership lists.
func (p Plug) Name() string {
	return p.Node + "." + p.Leaf
}

// Connection describes what drives an attribute.
type Connection struct {
	// Connected is set when attribute has an incoming connection.
	Connected bool
	// DirectCurve is set when that connection comes straight from an animation curve.
	DirectCurve bool
	// CurveDriven is set when the driving curve itself has a connected input.
	CurveDriven bool
}

// NodeInfo addresses node inside of exported selection.
type NodeInfo struct {
	Kind       common.NodeKind
	Name       string
	Depth      int
	ChildCount int
}

// Query answers questions about nodes and attributes.
type Query interface {
	ResolveAttribute(node, attr string) (Plug, bool)
	Value(p Plug, at float64) ([]float64, error)
	SetValue(p Plug, at float64, v []float64) error
	Connection(p Plug) Connection
	IsSetDrivenKey(p Plug) bool
	IsConstraintDriven(p Plug) bool
	IsLayerDriven(p Plug) bool
	// HasCurve reports whether attribute is already animated with a time
	// input curve.
	HasCurve(p Plug) bool
	EvaluateCurve(p Plug, at float64) (float64, bool)
}

// TemplateFilter restricts nodes and attributes taking part in an operation.
type TemplateFilter interface {
	IsNodeAllowed(name string) bool
	IsAttributeAllowed(node, attr string) bool
}

// NameReplacer maps node names from a file onto the scene. Returned false
// rejects the node.
type NameReplacer interface {
	Resolve(kind common.NodeKind, name string, depth, childCount int) (string, bool)
}

// Layers is the animation layer stack of the scene.
type Layers interface {
	OrderedLayerNames() []string
	// CreateLayer creates layer and places it right after attachAfter. When
	// the stack is empty the scene creates its root layer first.
	CreateLayer(name, attachAfter string) error
	DeleteLayer(name string) error
	// LayerAttributes returns "node.attr" names of attributes on the layer.
	LayerAttributes(layer string) []string
	AddAttribute(layer, node, attr string) error
	RemoveAttribute(layer, node, attr string) error
	SelectLayer(name string)
}

// Source is everything export needs from the scene.
type Source interface {
	Query
	Layers
	// Selection returns nodes to export in stable depth first order.
	Selection(includeChildren bool) []NodeInfo
	// Attributes returns animatable attributes of the node in order.
	Attributes(node string) []Plug
	// Curve returns curve driving attribute on the layer, empty layer means
	// unlayered animation.
	Curve(p Plug, layer string) *anim.Curve
	PlaybackRange() (start, end float64)
	SceneFile() string
}

// Paster applies clipboard produced by import.
type Paster interface {
	Paste(cb *anim.LayerClipboard, replace bool) error
}

// AttributeAdder is implemented by scenes able to create missing keyable
// attributes on existing nodes.
type AttributeAdder interface {
	AddDynamicAttribute(node, attr string) error
}
