package anim

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"animc/utils/debug"
)

// Item is one serialized attribute. Item without curve is a placeholder
// keeping addressing intact.
type Item struct {
	Depth      int
	ChildCount int
	AttrIndex  int
	Node       string
	FullAttr   string
	LeafAttr   string
	Curve      *Curve
}

// Placeholder reports whether item has no curve.
func (it *Item) Placeholder() bool {
	return it.Curve == nil
}

// ItemArray is ordered list of items belonging to one layer.
type ItemArray struct {
	Layer string
	Items []*Item
}

// Append adds item to the end of array.
func (a *ItemArray) Append(it *Item) {
	a.Items = append(a.Items, it)
}

// Len returns number of items.
func (a *ItemArray) Len() int {
	return len(a.Items)
}

// LayerClipboard owns all curves of a single file operation grouped by layer.
// Unlayered items live in the default array with empty layer name.
type LayerClipboard struct {
	base   *ItemArray
	layers map[string]*ItemArray
	order  []string
}

// NewLayerClipboard returns empty clipboard.
func NewLayerClipboard() *LayerClipboard {
	return &LayerClipboard{
		base:   &ItemArray{},
		layers: make(map[string]*ItemArray),
	}
}

// Array returns item array for layer, creating it on first request. Empty
// layer name returns the default array.
func (cb *LayerClipboard) Array(layer string) *ItemArray {
	if layer == "" {
		return cb.base
	}
	if a, ok := cb.layers[layer]; ok {
		return a
	}
	a := &ItemArray{Layer: layer}
	cb.layers[layer] = a
	cb.order = append(cb.order, layer)
	return a
}

// Arrays returns default array first followed by layer arrays in order of
// their first appearance.
func (cb *LayerClipboard) Arrays() []*ItemArray {
	res := make([]*ItemArray, 0, len(cb.order)+1)
	res = append(res, cb.base)
	for _, name := range cb.order {
		res = append(res, cb.layers[name])
	}
	return res
}

// Layers returns names of non default layers in order of first appearance.
func (cb *LayerClipboard) Layers() []string {
	return slices.Clone(cb.order)
}

// IsEmpty reports whether clipboard holds no curves at all. Placeholders do
// not count.
func (cb *LayerClipboard) IsEmpty() bool {
	for _, a := range cb.Arrays() {
		for _, it := range a.Items {
			if !it.Placeholder() && it.Curve.Len() > 0 {
				return false
			}
		}
	}
	return true
}

func (cb *LayerClipboard) inputRange(time bool) (start, end float64, ok bool) {
	start, end = math.Inf(1), math.Inf(-1)
	for _, a := range cb.Arrays() {
		for _, it := range a.Items {
			if it.Placeholder() || it.Curve.IsTimeInput() != time {
				continue
			}
			if s, e, has := it.Curve.Range(); has {
				start, end, ok = min(start, s), max(end, e), true
			}
		}
	}
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

// TimeRange returns input range of all time input curves in seconds.
func (cb *LayerClipboard) TimeRange() (start, end float64, ok bool) {
	return cb.inputRange(true)
}

// UnitlessRange returns input range of all unitless input curves.
func (cb *LayerClipboard) UnitlessRange() (start, end float64, ok bool) {
	return cb.inputRange(false)
}

// String dumps clipboard content for debugging.
func (cb *LayerClipboard) String() string {
	tw := debug.NewTreeWriter()

	names := cb.Layers()
	sort.Sort(natural.StringSlice(names))

	dump := func(a *ItemArray) {
		label := a.Layer
		if label == "" {
			label = "<default>"
		}
		tw.Line(0, "layer %s (%d items)", label, a.Len())
		for _, it := range a.Items {
			tw.Line(1, "%s.%s [%s] depth=%d children=%d index=%d", it.Node, it.LeafAttr, it.FullAttr, it.Depth, it.ChildCount, it.AttrIndex)
			if it.Placeholder() {
				tw.Line(2, "placeholder")
				continue
			}
			c := it.Curve
			tw.Line(2, "input=%s output=%s weighted=%t pre=%s post=%s", c.Input, c.Output, c.Weighted, c.PreInfinity, c.PostInfinity)
			for _, k := range c.Keys {
				tw.Line(3, "%s", formatKey(k))
			}
		}
	}

	dump(cb.base)
	for _, name := range names {
		dump(cb.layers[name])
	}
	return tw.String()
}

func formatKey(k Key) string {
	s := fmt.Sprintf("%g -> %g %s/%s", k.Input, k.Value, k.In.Kind, k.Out.Kind)
	if k.In.IsFixed() {
		s += fmt.Sprintf(" in(%g,%g)", k.In.Angle, k.In.Weight)
	}
	if k.Out.IsFixed() {
		s += fmt.Sprintf(" out(%g,%g)", k.Out.Angle, k.Out.Weight)
	}
	if k.TangentsLocked {
		s += " tl"
	}
	if k.WeightsLocked {
		s += " wl"
	}
	if k.Breakdown {
		s += " bd"
	}
	return s
}
