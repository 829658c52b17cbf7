package anim

import (
	"math"

	"github.com/tanema/gween/ease"

	"animc/common"
)

// segmentEase picks easing between two neighbouring keys from the out tangent
// of the left key and the in tangent of the right one. Nil means straight line.
func segmentEase(left, right Key) ease.TweenFunc {
	out, in := left.Out.Kind, right.In.Kind
	switch {
	case out == common.TangentKindLinear && in == common.TangentKindLinear:
		return nil
	case out == common.TangentKindFlat && in == common.TangentKindFlat:
		return ease.InOutSine
	case out == common.TangentKindSlow || in == common.TangentKindFast:
		return ease.InQuad
	case out == common.TangentKindFast || in == common.TangentKindSlow:
		return ease.OutQuad
	case out == common.TangentKindLinear:
		return ease.OutSine
	case in == common.TangentKindLinear:
		return ease.InSine
	}
	return ease.InOutQuad
}

// Evaluate returns curve value at input t. Between keys the value follows an
// easing chosen from key tangents, outside of keyed range curve extrapolates
// according to its infinity settings.
func (c *Curve) Evaluate(t float64) float64 {
	n := len(c.Keys)
	switch n {
	case 0:
		return 0
	case 1:
		return c.Keys[0].Value
	}

	first, last := c.Keys[0], c.Keys[n-1]
	period := last.Input - first.Input

	var offset float64
	switch {
	case t < first.Input:
		t, offset = c.extrapolate(t, c.PreInfinity, period, true)
		if math.IsNaN(t) {
			return first.Value + offset
		}
	case t > last.Input:
		t, offset = c.extrapolate(t, c.PostInfinity, period, false)
		if math.IsNaN(t) {
			return last.Value + offset
		}
	}
	return c.interpolate(t) + offset
}

// extrapolate maps t outside of keyed range back into it. NaN input means
// value should be taken from the boundary key plus returned offset.
func (c *Curve) extrapolate(t float64, kind common.InfinityKind, period float64, before bool) (float64, float64) {
	n := len(c.Keys)
	first, last := c.Keys[0], c.Keys[n-1]

	if period <= 0 {
		return math.NaN(), 0
	}

	switch kind {
	case common.InfinityKindLinear:
		if before {
			next := c.Keys[1]
			slope := (next.Value - first.Value) / (next.Input - first.Input)
			return math.NaN(), slope * (t - first.Input)
		}
		prev := c.Keys[n-2]
		slope := (last.Value - prev.Value) / (last.Input - prev.Input)
		return math.NaN(), slope * (t - last.Input)

	case common.InfinityKindCycle, common.InfinityKindCycleRelative:
		cycles := math.Floor((t - first.Input) / period)
		local := t - cycles*period
		var offset float64
		if kind == common.InfinityKindCycleRelative {
			offset = cycles * (last.Value - first.Value)
		}
		return local, offset

	case common.InfinityKindOscillate:
		cycles := math.Floor((t - first.Input) / period)
		local := t - cycles*period
		if math.Mod(math.Abs(cycles), 2) == 1 {
			local = last.Input - (local - first.Input)
		}
		return local, 0
	}
	return math.NaN(), 0
}

func (c *Curve) interpolate(t float64) float64 {
	i := 0
	for i < len(c.Keys)-1 && c.Keys[i+1].Input <= t {
		i++
	}
	left := c.Keys[i]
	if i == len(c.Keys)-1 || left.Input == t {
		return left.Value
	}
	right := c.Keys[i+1]

	switch {
	case left.Out.Kind == common.TangentKindStep:
		return left.Value
	case left.Out.Kind == common.TangentKindStepnext:
		return right.Value
	}

	span := right.Input - left.Input
	u := (t - left.Input) / span
	if left.Out.IsFixed() || right.In.IsFixed() {
		return hermite(left, right, span, u)
	}
	frac := u
	if fn := segmentEase(left, right); fn != nil {
		// easing tables are float32, only the shape of the segment comes from them
		frac = float64(fn(float32(u), 0, 1, 1))
	}
	return left.Value + (right.Value-left.Value)*frac
}

// sideSlope returns slope of the segment end in value units per input unit.
func sideSlope(tg Tangent, secant float64) float64 {
	switch tg.Kind {
	case common.TangentKindFixed:
		return math.Tan(tg.Angle)
	case common.TangentKindFlat, common.TangentKindStep, common.TangentKindStepnext:
		return 0
	}
	return secant
}

// hermite evaluates segment with at least one fixed tangent as a cubic
// Hermite spline over normalized u. Tangent weights are not taken into
// account, weighted curves are approximated by their tangent directions.
func hermite(left, right Key, span, u float64) float64 {
	secant := (right.Value - left.Value) / span
	m0 := sideSlope(left.Out, secant) * span
	m1 := sideSlope(right.In, secant) * span

	u2 := u * u
	u3 := u2 * u
	return (2*u3-3*u2+1)*left.Value + (u3-2*u2+u)*m0 + (-2*u3+3*u2)*right.Value + (u3-u2)*m1
}
