package units

import "math"

var secondsPerUnit = map[Time]float64{
	TimeHour:     3600,
	TimeMin:      60,
	TimeSec:      1,
	TimeMillisec: 0.001,
	TimeGame:     1.0 / 15,
	TimeFilm:     1.0 / 24,
	TimePal:      1.0 / 25,
	TimeNtsc:     1.0 / 30,
	TimeShow:     1.0 / 48,
	TimePalf:     1.0 / 50,
	TimeNtscf:    1.0 / 60,
}

var centimetersPerUnit = map[Linear]float64{
	LinearMm: 0.1,
	LinearCm: 1,
	LinearM:  100,
	LinearKm: 100000,
	LinearIn: 2.54,
	LinearFt: 30.48,
	LinearYd: 91.44,
	LinearMi: 160934.4,
}

var radiansPerUnit = map[Angular]float64{
	AngularRad: 1,
	AngularDeg: math.Pi / 180,
	AngularMin: math.Pi / (180 * 60),
	AngularSec: math.Pi / (180 * 3600),
}

// Seconds returns length of one unit in seconds.
func (x Time) Seconds() float64 {
	if v, ok := secondsPerUnit[x]; ok {
		return v
	}
	return 1
}

// Centimeters returns length of one unit in centimeters, internal linear unit.
func (x Linear) Centimeters() float64 {
	if v, ok := centimetersPerUnit[x]; ok {
		return v
	}
	return 1
}

// Radians returns size of one unit in radians, internal angular unit.
func (x Angular) Radians() float64 {
	if v, ok := radiansPerUnit[x]; ok {
		return v
	}
	return 1
}

// Internal representation: time in seconds, distance in centimeters, angles in
// radians. Functions below convert between internal and named units.

func TimeToInternal(v float64, u Time) float64 { return v * u.Seconds() }

// TimeFromInternal converts seconds into units.
func TimeFromInternal(v float64, u Time) float64 { return v / u.Seconds() }

func LinearToInternal(v float64, u Linear) float64 { return v * u.Centimeters() }

func LinearFromInternal(v float64, u Linear) float64 { return v / u.Centimeters() }

func AngularToInternal(v float64, u Angular) float64 { return v * u.Radians() }

func AngularFromInternal(v float64, u Angular) float64 { return v / u.Radians() }
