// Package units maps unit names used in animation files to unit values,
// converts between units and re-projects tangents written by older hosts.
package units

import (
	"errors"
	"fmt"
)

// Supported units.
// ENUM(hour, min, sec, millisec, game, film, pal, ntsc, show, palf, ntscf)
type Time int

// ENUM(mm, cm, m, km, in, ft, yd, mi)
type Linear int

// ENUM(rad, deg, min, sec)
type Angular int

var (
	ErrUnknownTimeUnit    = errors.New("unknown time unit")
	ErrUnknownLinearUnit  = errors.New("unknown linear unit")
	ErrUnknownAngularUnit = errors.New("unknown angular unit")
)

var linearLongNames = map[Linear]string{
	LinearMm: "millimeter",
	LinearCm: "centimeter",
	LinearM:  "meter",
	LinearKm: "kilometer",
	LinearIn: "inch",
	LinearFt: "foot",
	LinearYd: "yard",
	LinearMi: "mile",
}

var angularLongNames = map[Angular]string{
	AngularRad: "radian",
	AngularDeg: "degree",
	AngularMin: "minute",
	AngularSec: "second",
}

// ShortName returns name used when writing files.
func (x Time) ShortName() string { return x.String() }

// LongName is the same as short one for time units.
func (x Time) LongName() string { return x.String() }

func (x Linear) ShortName() string { return x.String() }

func (x Linear) LongName() string {
	if n, ok := linearLongNames[x]; ok {
		return n
	}
	return x.String()
}

func (x Angular) ShortName() string { return x.String() }

func (x Angular) LongName() string {
	if n, ok := angularLongNames[x]; ok {
		return n
	}
	return x.String()
}

// TimeFromName accepts either short or long unit name.
func TimeFromName(name string) (Time, error) {
	if u, err := ParseTime(name); err == nil {
		return u, nil
	}
	return TimeFilm, fmt.Errorf("%q: %w", name, ErrUnknownTimeUnit)
}

// LinearFromName accepts either short or long unit name.
func LinearFromName(name string) (Linear, error) {
	if u, err := ParseLinear(name); err == nil {
		return u, nil
	}
	for u, n := range linearLongNames {
		if n == name {
			return u, nil
		}
	}
	return LinearCm, fmt.Errorf("%q: %w", name, ErrUnknownLinearUnit)
}

// AngularFromName accepts either short or long unit name.
func AngularFromName(name string) (Angular, error) {
	if u, err := ParseAngular(name); err == nil {
		return u, nil
	}
	for u, n := range angularLongNames {
		if n == name {
			return u, nil
		}
	}
	return AngularDeg, fmt.Errorf("%q: %w", name, ErrUnknownAngularUnit)
}
