// Package anim holds keyframed curves and the layer clipboard built while an
// animation file is read or before it is written.
//
// All coordinates and values kept here are in internal units: seconds for time,
// centimeters for distance and radians for angles. Unitless inputs are kept
// as is.
package anim

import (
	"animc/common"
)

// Tangent describes one side of a keyframe. Angle and Weight are only
// meaningful when Kind is fixed.
type Tangent struct {
	Kind   common.TangentKind
	Angle  float64
	Weight float64
}

// IsFixed reports whether tangent carries explicit angle and weight.
func (t Tangent) IsFixed() bool {
	return t.Kind == common.TangentKindFixed
}

// NewTangent returns tangent of given kind, angle and weight are dropped
// unless kind is fixed.
func NewTangent(kind common.TangentKind, angle, weight float64) Tangent {
	if kind != common.TangentKindFixed {
		return Tangent{Kind: kind}
	}
	return Tangent{Kind: kind, Angle: angle, Weight: weight}
}

// Key is a single keyframe.
type Key struct {
	Input          float64
	Value          float64
	In             Tangent
	Out            Tangent
	TangentsLocked bool
	WeightsLocked  bool
	Breakdown      bool
}
