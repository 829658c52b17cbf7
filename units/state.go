package units

import (
	"strconv"
	"strings"

	"animc/common"
)

// State keeps units in effect for a single file operation and which way, if
// any, tangents have to be re-projected.
type State struct {
	Time    Time
	Linear  Linear
	Angular Angular

	// file was written by a pre 3.0 host and we are not one
	FromPre3 bool
	// we are a pre 3.0 host reading newer file
	ToPre3 bool
}

// NewState returns state with no tangent conversion.
func NewState(t Time, l Linear, a Angular) State {
	return State{Time: t, Linear: l, Angular: a}
}

// MajorVersion extracts leading number of the version string ("2.5" -> 2,
// "2016 x64" -> 2016).
func MajorVersion(v string) (int, bool) {
	v = strings.TrimSpace(v)
	end := 0
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(v[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsPre3 reports whether version belongs to hosts using old tangent space.
// Unparsable versions are treated as current.
func IsPre3(v string) bool {
	n, ok := MajorVersion(v)
	return ok && n < 3
}

// SetVersions decides tangent conversion direction by comparing file and
// running host versions.
func (s *State) SetVersions(fileVersion, hostVersion string) {
	filePre3, hostPre3 := IsPre3(fileVersion), IsPre3(hostVersion)
	s.FromPre3 = filePre3 && !hostPre3
	s.ToPre3 = hostPre3 && !filePre3
}

// XScale is one second expressed in current time unit for time input curves
// and 1 for unitless input.
func (s State) XScale(input common.InputKind) float64 {
	if input != common.InputKindTime {
		return 1
	}
	return 1 / s.Time.Seconds()
}

// YScale is one internal unit of curve output domain expressed in the current
// unit of that domain.
func (s State) YScale(output common.OutputKind) float64 {
	switch output {
	case common.OutputKindTime:
		return 1 / s.Time.Seconds()
	case common.OutputKindLinear:
		return 1 / s.Linear.Centimeters()
	case common.OutputKindAngular:
		return 1 / s.Angular.Radians()
	default:
		return 1
	}
}

// ConvertTangent re-projects fixed tangent angle (radians) and weight if
// versions require it, otherwise returns them unchanged.
func (s State) ConvertTangent(angle, weight float64, weighted bool, input common.InputKind, output common.OutputKind) (float64, float64) {
	switch {
	case s.FromPre3:
		return FromPre3(angle, weight, weighted, s.XScale(input), s.YScale(output))
	case s.ToPre3:
		return ToPre3(angle, weight, weighted, s.XScale(input), s.YScale(output))
	}
	return angle, weight
}
