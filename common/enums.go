// Package common keeps enumerations shared by the codec, the scene ports and
// configuration. Text forms of these enums are the words used in animation
// files, so generated String/Parse methods double as word conversion.
package common

// Tangent kind at a keyframe endpoint.
// ENUM(global, fixed, linear, flat, spline, step, slow, fast, clamped, plateau, stepnext, auto)
type TangentKind int

// Curve extrapolation before the first and after the last keyframe.
// ENUM(constant, linear, cycle, cycleRelative, oscillate)
type InfinityKind int

// Curve input domain.
// ENUM(time, unitless)
type InputKind int

// Curve output domain.
// ENUM(linear, angular, time, unitless)
type OutputKind int

// Kind of node block, words are the file keywords.
// ENUM(dagNode, node, shapeNode, animLayer)
type NodeKind int

// Declared numeric subtype of an attribute.
// ENUM(bool, byte, char, short, enum, long, float, double, angle, distance, time)
type ValueType int

// Strategy used to match node names from a file against the scene.
// ENUM(hierarchy, search, map)
type MatchMode int

// TangentFromWord converts file word into tangent kind, unknown words map to
// global and are reported with error so caller could warn.
func TangentFromWord(word string) (TangentKind, error) {
	k, err := ParseTangentKind(word)
	if err != nil {
		return TangentKindGlobal, err
	}
	return k, nil
}

// InfinityFromWord converts file word into infinity kind, unknown words map
// to constant.
func InfinityFromWord(word string) (InfinityKind, error) {
	k, err := ParseInfinityKind(word)
	if err != nil {
		return InfinityKindConstant, err
	}
	return k, nil
}

// OutputFromWord converts file word into output kind, unknown words map to
// unitless.
func OutputFromWord(word string) (OutputKind, error) {
	k, err := ParseOutputKind(word)
	if err != nil {
		return OutputKindUnitless, err
	}
	return k, nil
}

// InputFromWord converts file word into input kind, anything but "unitless"
// is time input.
func InputFromWord(word string) InputKind {
	if word == InputKindUnitless.String() {
		return InputKindUnitless
	}
	return InputKindTime
}

// IsInteger reports whether values of this type are whole numbers.
func (v ValueType) IsInteger() bool {
	switch v {
	case ValueTypeBool, ValueTypeByte, ValueTypeChar, ValueTypeShort, ValueTypeEnum, ValueTypeLong:
		return true
	}
	return false
}

// Output returns curve output domain matching the value type.
func (v ValueType) Output() OutputKind {
	switch v {
	case ValueTypeAngle:
		return OutputKindAngular
	case ValueTypeDistance:
		return OutputKindLinear
	case ValueTypeTime:
		return OutputKindTime
	default:
		return OutputKindUnitless
	}
}
