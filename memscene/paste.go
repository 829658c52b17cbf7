package memscene

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"animc/anim"
)

// Paste applies curves of the clipboard, default array first. With replace
// pasted curves substitute existing ones, otherwise keys are merged into
// them. Items which could not be applied are reported together.
func (s *Scene) Paste(cb *anim.LayerClipboard, replace bool) error {
	var errs error
	for _, arr := range cb.Arrays() {
		for _, it := range arr.Items {
			if it.Placeholder() {
				continue
			}
			if err := s.pasteItem(arr.Layer, it, replace); err != nil {
				multierr.AppendInto(&errs, err)
			}
		}
	}
	return errs
}

func (s *Scene) pasteItem(layerName string, it *anim.Item, replace bool) error {
	attr := it.LeafAttr
	if attr == "" {
		attr = it.FullAttr
	}
	if _, ok := s.Attribute(it.Node, attr); !ok {
		if err := s.AddDynamicAttribute(it.Node, attr); err != nil {
			return fmt.Errorf("paste %s.%s: %w", it.Node, attr, err)
		}
	}
	a, _ := s.Attribute(it.Node, attr)
	c := it.Curve.Clone()

	if layerName == "" {
		if replace || a.Curve == nil {
			a.Curve = c
		} else {
			merge(a.Curve, c)
		}
		s.log.Debug("Curve pasted", zap.String("node", it.Node), zap.String("attr", a.Name), zap.Int("keys", c.Len()))
		return nil
	}

	l := s.layer(layerName)
	if l == nil {
		return fmt.Errorf("paste %s.%s: %s: %w", it.Node, attr, layerName, ErrNoLayer)
	}
	key := it.Node + "." + a.Name
	if old, ok := l.curves[key]; ok && !replace {
		merge(old, c)
		return nil
	}
	return s.SetLayerCurve(layerName, it.Node, a.Name, c)
}

// merge inserts keys of src into dst replacing keys at the same input.
func merge(dst, src *anim.Curve) {
	for _, k := range src.Keys {
		i := dst.AddKey(k.Input, k.Value, k.In.Kind, k.Out.Kind)
		dst.Keys[i] = k
	}
}
