// Package debug produces indented text dumps of parsed animation data.
package debug

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented lines, one level of depth per indent.
type TreeWriter struct {
	w      *strings.Builder
	indent string
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w:      &strings.Builder{},
		indent: "  ",
	}
}

// WithIndent changes string used for a single level of depth.
func (tw *TreeWriter) WithIndent(indent string) *TreeWriter {
	tw.indent = indent
	return tw
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

func (tw *TreeWriter) Len() int {
	return tw.w.Len()
}

func (tw *TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(tw.indent)
	}
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes label with quoted value, so embedded text stays on one
// line.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Values writes label followed by values, perLine values on each line. Zero
// perLine puts everything on a single line.
func (tw *TreeWriter) Values(depth int, label string, values []float64, perLine int) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(":")
	if len(values) == 0 {
		tw.w.WriteString(" <none>\n")
		return
	}
	for i, v := range values {
		if perLine > 0 && i > 0 && i%perLine == 0 {
			tw.w.WriteByte('\n')
			tw.pad(depth + 1)
		} else {
			tw.w.WriteByte(' ')
		}
		tw.w.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	tw.w.WriteByte('\n')
}

func (tw *TreeWriter) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, tw.w.String())
	return int64(n), err
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
