package codec

import (
	"fmt"

	"go.uber.org/zap"

	"animc/units"
)

// Header is the file prologue. Times are in header time unit.
type Header struct {
	FormatVersion string
	HostVersion   string
	SourceFile    string

	Time    units.Time
	Linear  units.Linear
	Angular units.Angular

	StartTime   float64
	EndTime     float64
	HasTimeSpan bool

	StartUnitless   float64
	EndUnitless     float64
	HasUnitlessSpan bool
}

// newHeader returns header with an empty time range in given units.
func newHeader(st units.State) Header {
	return Header{
		Time:          st.Time,
		Linear:        st.Linear,
		Angular:       st.Angular,
		StartTime:     1,
		EndTime:       0,
		StartUnitless: 1,
		EndUnitless:   0,
	}
}

// Start returns start time in seconds.
func (h Header) Start() float64 {
	return units.TimeToInternal(h.StartTime, h.Time)
}

// End returns end time in seconds.
func (h Header) End() float64 {
	return units.TimeToInternal(h.EndTime, h.Time)
}

// State returns units declared by the header.
func (h Header) State() units.State {
	return units.NewState(h.Time, h.Linear, h.Angular)
}

// readHeader consumes header statements and returns the first word which
// does not belong to the header.
func (r *Reader) readHeader() (string, error) {
	var (
		word    string
		version bool
	)
	for {
		word = r.tok.NextWord()
		switch word {
		case kwFormatVersion:
			r.hdr.FormatVersion = r.tok.NextWord()
			version = true
			if r.hdr.FormatVersion != FormatVersion {
				r.warn("Unexpected format version, reading anyway", zap.String("version", r.hdr.FormatVersion))
			}
		case kwHostVersion:
			r.hdr.HostVersion = r.tok.NextWordWS()
		case kwSourceFile:
			r.hdr.SourceFile = r.tok.NextWordWS()
		case kwTimeUnit:
			name := r.tok.NextWord()
			if u, uerr := units.TimeFromName(name); uerr != nil {
				r.warn("Unknown time unit, using current", zap.String("unit", name), zap.Stringer("current", r.opts.Units.Time))
				r.hdr.Time = r.opts.Units.Time
			} else {
				r.hdr.Time = u
			}
		case kwLinearUnit:
			name := r.tok.NextWord()
			if u, uerr := units.LinearFromName(name); uerr != nil {
				r.warn("Unknown linear unit, using current", zap.String("unit", name), zap.Stringer("current", r.opts.Units.Linear))
				r.hdr.Linear = r.opts.Units.Linear
			} else {
				r.hdr.Linear = u
			}
		case kwAngularUnit:
			name := r.tok.NextWord()
			if u, uerr := units.AngularFromName(name); uerr != nil {
				r.warn("Unknown angular unit, using current", zap.String("unit", name), zap.Stringer("current", r.opts.Units.Angular))
				r.hdr.Angular = r.opts.Units.Angular
			} else {
				r.hdr.Angular = u
			}
		case kwStartTime:
			r.hdr.StartTime = r.headerNumber(word)
			r.hdr.HasTimeSpan = true
		case kwEndTime:
			r.hdr.EndTime = r.headerNumber(word)
			r.hdr.HasTimeSpan = true
		case kwStartUnitless:
			r.hdr.StartUnitless = r.headerNumber(word)
			r.hdr.HasUnitlessSpan = true
		case kwEndUnitless:
			r.hdr.EndUnitless = r.headerNumber(word)
			r.hdr.HasUnitlessSpan = true
		default:
			if !version {
				return word, ErrMissingVersion
			}
			return word, nil
		}
	}
}

func (r *Reader) headerNumber(keyword string) float64 {
	v, err := r.tok.NextDouble()
	if err != nil {
		r.warnErr(fmt.Errorf("header %s: %w", keyword, err))
		return 0
	}
	return v
}

// WriteHeader writes the header. Times in h must be in h.Time units.
func (w *Writer) WriteHeader(h Header) {
	w.statement(kwFormatVersion, FormatVersion)
	host := h.HostVersion
	if host == "" {
		host = DefaultHostVersion
	}
	w.statement(kwHostVersion, host)
	if h.SourceFile != "" {
		w.statement(kwSourceFile, h.SourceFile)
	}
	w.statement(kwTimeUnit, h.Time.ShortName())
	w.statement(kwLinearUnit, h.Linear.ShortName())
	w.statement(kwAngularUnit, h.Angular.ShortName())
	if h.HasTimeSpan {
		w.statement(kwStartTime, formatNumber(h.StartTime))
		w.statement(kwEndTime, formatNumber(h.EndTime))
	}
	if h.HasUnitlessSpan {
		w.statement(kwStartUnitless, formatNumber(h.StartUnitless))
		w.statement(kwEndUnitless, formatNumber(h.EndUnitless))
	}
}
