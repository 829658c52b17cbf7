package anim

import (
	"math"
	"slices"

	"animc/common"
)

// Curve is an animation curve: its domain description and ordered keys.
type Curve struct {
	Input        common.InputKind
	Output       common.OutputKind
	Weighted     bool
	PreInfinity  common.InfinityKind
	PostInfinity common.InfinityKind
	Keys         []Key
}

// NewCurve returns empty curve with constant extrapolation on both ends.
func NewCurve(input common.InputKind, output common.OutputKind) *Curve {
	return &Curve{
		Input:        input,
		Output:       output,
		PreInfinity:  common.InfinityKindConstant,
		PostInfinity: common.InfinityKindConstant,
	}
}

// IsTimeInput reports whether curve is keyed in time.
func (c *Curve) IsTimeInput() bool {
	return c.Input == common.InputKindTime
}

// Len returns number of keys.
func (c *Curve) Len() int {
	return len(c.Keys)
}

// AddKey inserts key keeping keys ordered by input and returns its index. Key
// with the same input as an existing one replaces it.
func (c *Curve) AddKey(in, value float64, tin, tout common.TangentKind) int {
	k := Key{
		Input:          in,
		Value:          value,
		In:             NewTangent(tin, 0, 1),
		Out:            NewTangent(tout, 0, 1),
		TangentsLocked: true,
	}
	i, found := slices.BinarySearchFunc(c.Keys, in, func(k Key, t float64) int {
		switch {
		case k.Input < t:
			return -1
		case k.Input > t:
			return 1
		}
		return 0
	})
	if found {
		c.Keys[i] = k
		return i
	}
	c.Keys = slices.Insert(c.Keys, i, k)
	return i
}

// Find returns index of the key at input within tolerance.
func (c *Curve) Find(in float64, tolerance float64) (int, bool) {
	for i := range c.Keys {
		if math.Abs(c.Keys[i].Input-in) <= tolerance {
			return i, true
		}
	}
	return 0, false
}

// SetTangent sets one side of key i to a fixed tangent. When tangents of the
// key are locked the other side follows and becomes fixed too, so callers
// restoring keys must unlock first and apply locks last (see SetLocks).
func (c *Curve) SetTangent(i int, angle, weight float64, in bool) {
	k := &c.Keys[i]
	t := Tangent{Kind: common.TangentKindFixed, Angle: angle, Weight: weight}
	if in {
		k.In = t
	} else {
		k.Out = t
	}
	if !k.TangentsLocked {
		return
	}
	other := &k.Out
	if !in {
		other = &k.In
	}
	w := other.Weight
	if k.WeightsLocked || !other.IsFixed() {
		w = weight
	}
	*other = Tangent{Kind: common.TangentKindFixed, Angle: angle, Weight: w}
}

// SetLocks sets lock flags of key i without touching its tangents.
func (c *Curve) SetLocks(i int, tangents, weights bool) {
	c.Keys[i].TangentsLocked = tangents
	c.Keys[i].WeightsLocked = weights
}

// Range returns input of the first and the last key.
func (c *Curve) Range() (start, end float64, ok bool) {
	if len(c.Keys) == 0 {
		return 0, 0, false
	}
	return c.Keys[0].Input, c.Keys[len(c.Keys)-1].Input, true
}

// Clip drops keys outside of [start, end]. When a boundary falls between keys
// a key with evaluated value and global tangents is inserted there first.
func (c *Curve) Clip(start, end float64) {
	first, last, ok := c.Range()
	if !ok {
		return
	}
	start = max(start, first)
	end = min(end, last)
	if end < start {
		c.Keys = c.Keys[:0]
		return
	}

	for _, at := range []float64{start, end} {
		if _, found := c.Find(at, 0); !found {
			v := c.Evaluate(at)
			c.AddKey(at, v, common.TangentKindGlobal, common.TangentKindGlobal)
		}
	}
	c.Keys = slices.DeleteFunc(c.Keys, func(k Key) bool {
		return k.Input < start || k.Input > end
	})
}

// Clone returns deep copy of the curve.
func (c *Curve) Clone() *Curve {
	if c == nil {
		return nil
	}
	n := *c
	n.Keys = slices.Clone(c.Keys)
	return &n
}
