package units

import "math"

// Tolerance used when comparing floating point values read from or written to
// files.
const Tolerance = 1e-10

// IsEquivalent compares two values within Tolerance.
func IsEquivalent(a, b float64) bool {
	d := a - b
	return d > -Tolerance && d < Tolerance
}

// ClampZero returns exact zero for values too small to survive text round
// trip.
func ClampZero(v float64) float64 {
	if IsEquivalent(v, 0) {
		return 0
	}
	return v
}

// FromPre3 converts tangent written by pre 3.0 host. Angles of 0 and +-pi/2
// keep their value, weight is scaled by yScale.
func FromPre3(angle, weight float64, weighted bool, xScale, yScale float64) (float64, float64) {
	if IsEquivalent(angle, 0) || IsEquivalent(angle, math.Pi/2) || IsEquivalent(angle, -math.Pi/2) {
		if weighted {
			weight = yScale * weight
		}
		return angle, weight
	}
	newAngle := math.Atan(yScale * math.Tan(angle) / xScale)
	if weighted {
		cos := math.Cos(angle)
		w2 := weight * weight * ((xScale*xScale-yScale*yScale)*cos*cos + yScale*yScale)
		weight = math.Sqrt(w2)
	}
	return newAngle, weight
}

// ToPre3 is the inverse of FromPre3. Weight denominator is taken at the
// resulting angle, which makes the pair exact inverses away from 0 and +-pi/2.
func ToPre3(angle, weight float64, weighted bool, xScale, yScale float64) (float64, float64) {
	newAngle := math.Atan(xScale * math.Tan(angle) / yScale)
	if weighted {
		sin, cos := math.Sin(newAngle), math.Cos(newAngle)
		w2 := weight * weight / (yScale*yScale*sin*sin + xScale*xScale*cos*cos)
		weight = math.Sqrt(w2)
	}
	return newAngle, weight
}
