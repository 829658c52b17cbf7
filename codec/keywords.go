// Package codec reads and writes animation interchange files.
//
// File starts with a header of "keyword value;" statements followed by node
// blocks. Every node block lists attribute entries: keyed curves (anim),
// single values (static) and pre-sampled values (cached). Optionally the file
// carries a second, independently formatted file at its very end.
package codec

import "errors"

// Header keywords.
const (
	kwFormatVersion = "formatVersion"
	kwHostVersion   = "hostVersion"
	kwSourceFile    = "sourceSceneFile"
	kwTimeUnit      = "timeUnit"
	kwLinearUnit    = "linearUnit"
	kwAngularUnit   = "angularUnit"
	kwStartTime     = "startTime"
	kwEndTime       = "endTime"
	kwStartUnitless = "startUnitless"
	kwEndUnitless   = "endUnitless"
)

// Body keywords.
const (
	kwAnimLayers   = "animLayers"
	kwAnim         = "anim"
	kwAnimData     = "animData"
	kwStatic       = "static"
	kwCached       = "cached"
	kwEmbedded     = "offlineFile"
	kwEmbeddedData = "offlineFileData"
)

// animData fields.
const (
	kwInput            = "input"
	kwOutput           = "output"
	kwWeighted         = "weighted"
	kwPreInfinity      = "preInfinity"
	kwPostInfinity     = "postInfinity"
	kwInputUnit        = "inputUnit"
	kwOutputUnit       = "outputUnit"
	kwTangentAngleUnit = "tangentAngleUnit"
	kwKeys             = "keys"
)

// FormatVersion is the only format version this package writes.
const FormatVersion = "1.0"

// DefaultHostVersion is written when running host version is not known.
const DefaultHostVersion = "2016"

var (
	// ErrMissingVersion means stream does not look like animation file at all.
	ErrMissingVersion = errors.New("missing mandatory " + kwFormatVersion + " keyword")
	// ErrNothingToExport is returned when selection has neither curves nor
	// values worth writing.
	ErrNothingToExport = errors.New("nothing to export")
)
