package codec

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"animc/anim"
	"animc/common"
	"animc/token"
	"animc/units"
)

var errUnexpectedEnd = errors.New("unexpected end of input")

// curveUnits describes how numbers of a single animData block map to internal
// units.
type curveUnits struct {
	input   units.Time
	value   float64
	tangent units.Angular
}

// readAnimData reads animData block. Word "animData" has already been
// consumed.
func (r *Reader) readAnimData() (*anim.Curve, error) {
	c := anim.NewCurve(common.InputKindTime, common.OutputKindLinear)
	var inputUnit, outputUnit string
	cu := curveUnits{input: r.hdr.Time, value: 1, tangent: r.hdr.Angular}

fields:
	for {
		if r.tok.EOF() {
			return nil, errUnexpectedEnd
		}
		word := r.tok.NextWord()
		switch word {
		case token.OpenBrace:
		case kwInput:
			c.Input = common.InputFromWord(r.tok.NextWord())
		case kwOutput:
			w := r.tok.NextWord()
			out, err := common.OutputFromWord(w)
			if err != nil {
				r.warn("Unknown output type, using unitless", zap.String("keyword", w))
			}
			c.Output = out
		case kwWeighted:
			v, err := r.tok.NextDouble()
			if err != nil {
				r.warnErr(fmt.Errorf("%s: %w", kwWeighted, err))
			}
			c.Weighted = v == 1
		case kwPreInfinity:
			c.PreInfinity = r.infinity(r.tok.NextWord())
		case kwPostInfinity:
			c.PostInfinity = r.infinity(r.tok.NextWord())
		case kwInputUnit:
			inputUnit = r.tok.NextWord()
		case kwOutputUnit:
			outputUnit = r.tok.NextWord()
		case kwTangentAngleUnit:
			name := r.tok.NextWord()
			u, err := units.AngularFromName(name)
			if err != nil {
				r.warn("Unknown tangent angle unit, using file unit", zap.String("unit", name), zap.Stringer("current", r.hdr.Angular))
				u = r.hdr.Angular
			}
			cu.tangent = u
		case kwKeys:
			// opening brace of keys is on the same line
			r.tok.SkipLine()
			break fields
		case token.CloseBrace:
			// block without keys
			return c, nil
		default:
			r.warn("Unknown keyword in animData", zap.String("keyword", word))
		}
	}

	r.curveUnits(c, inputUnit, outputUnit, &cu)
	for r.tok.PeekIsNumeric() {
		r.readKey(c, cu)
	}

	// keys, then animData
	for range 2 {
		if r.tok.Peek() != '}' {
			r.warn("Missing closing brace of animData")
			break
		}
		r.tok.NextWord()
	}
	return c, nil
}

func (r *Reader) infinity(word string) common.InfinityKind {
	k, err := common.InfinityFromWord(word)
	if err != nil {
		r.warn("Unknown infinity type, using constant", zap.String("keyword", word))
	}
	return k
}

// curveUnits resolves unit overrides of animData block.
func (r *Reader) curveUnits(c *anim.Curve, inputUnit, outputUnit string, cu *curveUnits) {
	if c.Input == common.InputKindTime && inputUnit != "" {
		if u, err := units.TimeFromName(inputUnit); err != nil {
			r.warn("Unknown input unit, using file unit", zap.String("unit", inputUnit), zap.Stringer("current", r.hdr.Time))
		} else {
			cu.input = u
		}
	}

	switch c.Output {
	case common.OutputKindLinear:
		u := r.hdr.Linear
		if outputUnit != "" {
			var err error
			if u, err = units.LinearFromName(outputUnit); err != nil {
				r.warn("Unknown output unit, using file unit", zap.String("unit", outputUnit), zap.Stringer("current", r.hdr.Linear))
				u = r.hdr.Linear
			}
		}
		cu.value = u.Centimeters()
	case common.OutputKindAngular:
		u := r.hdr.Angular
		if outputUnit != "" {
			var err error
			if u, err = units.AngularFromName(outputUnit); err != nil {
				r.warn("Unknown output unit, using file unit", zap.String("unit", outputUnit), zap.Stringer("current", r.hdr.Angular))
				u = r.hdr.Angular
			}
		}
		cu.value = u.Radians()
	case common.OutputKindTime:
		u := r.hdr.Time
		if outputUnit != "" {
			var err error
			if u, err = units.TimeFromName(outputUnit); err != nil {
				r.warn("Unknown output unit, using file unit", zap.String("unit", outputUnit), zap.Stringer("current", r.hdr.Time))
				u = r.hdr.Time
			}
		}
		cu.value = u.Seconds()
	}
}

func (r *Reader) flag() bool {
	v, err := r.tok.NextDouble()
	if err != nil {
		r.warnErr(fmt.Errorf("key flag: %w", err))
	}
	return v == 1
}

func (r *Reader) tangentKind(word string) common.TangentKind {
	k, err := common.TangentFromWord(word)
	if err != nil {
		r.warn("Unknown tangent type, using global", zap.String("keyword", word))
	}
	return k
}

// readKey reads single key line:
//
//	input value inTangent outTangent tangentsLocked weightsLocked breakdown [inAngle inWeight] [outAngle outWeight];
func (r *Reader) readKey(c *anim.Curve, cu curveUnits) {
	defer r.tok.SkipLine()

	in, err := r.tok.NextDouble()
	if err != nil {
		r.warnErr(fmt.Errorf("key input: %w", err))
		return
	}
	value, err := r.tok.NextDouble()
	if err != nil {
		r.warnErr(fmt.Errorf("key value: %w", err))
		return
	}
	tin := r.tangentKind(r.tok.NextWord())
	tout := r.tangentKind(r.tok.NextWord())
	tangentsLocked := r.flag()
	weightsLocked := r.flag()
	breakdown := r.flag()

	if c.IsTimeInput() {
		in = units.TimeToInternal(in, cu.input)
	}
	i := c.AddKey(in, value*cu.value, tin, tout)

	for _, side := range []struct {
		fixed bool
		in    bool
	}{{tin == common.TangentKindFixed, true}, {tout == common.TangentKindFixed, false}} {
		if !side.fixed {
			continue
		}
		angle, err := r.tok.NextDouble()
		if err != nil {
			r.warnErr(fmt.Errorf("tangent angle: %w", err))
			continue
		}
		weight, err := r.tok.NextDouble()
		if err != nil {
			r.warnErr(fmt.Errorf("tangent weight: %w", err))
			continue
		}
		angle = units.AngularToInternal(angle, cu.tangent)
		angle, weight = r.st.ConvertTangent(angle, weight, c.Weighted, c.Input, c.Output)
		// locked tangents would drag the other side along
		c.SetLocks(i, false, c.Keys[i].WeightsLocked)
		c.SetTangent(i, angle, weight, side.in)
	}

	c.SetLocks(i, tangentsLocked, weightsLocked)
	c.Keys[i].Breakdown = breakdown
}
