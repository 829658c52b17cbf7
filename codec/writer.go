package codec

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"animc/anim"
	"animc/common"
	"animc/sampler"
	"animc/scene"
	"animc/units"
)

const (
	indent1 = "  "
	indent2 = "    "
	indent3 = "      "
)

// formatNumber produces shortest text reading back to the same value. Values
// next to zero are written as zero.
func formatNumber(v float64) string {
	return strconv.FormatFloat(units.ClampZero(v), 'g', -1, 64)
}

// quote returns word as is unless it would not survive tokenizing.
func quote(word string) string {
	if word == "" || strings.ContainsAny(word, " \t;{}#\"\r\n") {
		return strconv.Quote(word)
	}
	return word
}

// Writer serializes animation file. Write errors are sticky and reported by
// Flush.
type Writer struct {
	w    *bufio.Writer
	st   units.State
	log  *zap.Logger
	err  error
	line []byte
}

// NewWriter returns writer producing numbers in given file units.
func NewWriter(w io.Writer, st units.State, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{
		w:   bufio.NewWriter(w),
		st:  st,
		log: log.Named("writer"),
	}
}

func (w *Writer) write(parts ...string) {
	if w.err != nil {
		return
	}
	for _, p := range parts {
		if _, err := w.w.WriteString(p); err != nil {
			w.err = err
			return
		}
	}
}

func (w *Writer) statement(keyword, value string) {
	w.write(keyword, " ", value, ";\n")
}

// Flush writes buffered data and returns first error met.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

// WriteEmbeddedMarker announces secondary file at the end of stream.
func (w *Writer) WriteEmbeddedMarker() {
	w.write(kwEmbedded, " ;\n")
}

// WriteEmbedded writes secondary file verbatim followed by a line with the
// terminator. It must be the last thing written.
func (w *Writer) WriteEmbedded(data []byte) {
	w.write(kwEmbeddedData, " ", string(data), "\n;\n")
}

// WriteAnimLayers writes ordered list of layers.
func (w *Writer) WriteAnimLayers(names []string) {
	if len(names) == 0 {
		return
	}
	w.write(kwAnimLayers, " {")
	for _, n := range names {
		w.write(" ", quote(n))
	}
	w.write(" }\n")
}

// BeginNode writes node prologue.
func (w *Writer) BeginNode(kind common.NodeKind, name string, depth, childCount int) {
	w.write(kind.String(), " {\n")
	w.write(indent1, quote(name), " ", strconv.Itoa(depth), " ", strconv.Itoa(childCount), ";\n")
}

// EndNode closes node block.
func (w *Writer) EndNode() {
	w.write("}\n")
}

func (w *Writer) entryHead(kind, full, leaf string, index int, layer string) {
	w.write(indent1, kind, " ", quote(full), " ", quote(leaf), " ", strconv.Itoa(index))
	if layer != "" {
		w.write(" ", quote(layer))
	}
	w.write(";\n")
}

// fromInternal converts attribute value into file units.
func (w *Writer) fromInternal(v float64, t common.ValueType) float64 {
	switch t {
	case common.ValueTypeAngle:
		return units.AngularFromInternal(v, w.st.Angular)
	case common.ValueTypeDistance:
		return units.LinearFromInternal(v, w.st.Linear)
	case common.ValueTypeTime:
		return units.TimeFromInternal(v, w.st.Time)
	}
	return v
}

// WriteStatic writes attribute value given in internal units.
func (w *Writer) WriteStatic(p scene.Plug, index int, values []float64) {
	w.entryHead(kwStatic, p.Attr, p.Leaf, index, "")
	w.write(indent1, "{")
	for _, v := range values {
		v = units.ClampZero(w.fromInternal(v, p.Type))
		if p.Type.IsInteger() {
			w.write(" ", strconv.FormatInt(int64(v), 10))
			continue
		}
		w.write(" ", formatNumber(v))
	}
	w.write(" }\n")
}

// WriteCached writes pre-sampled values, table already holds file units.
func (w *Writer) WriteCached(p scene.Plug, index int, tbl *sampler.Table) {
	w.entryHead(kwCached, p.Attr, p.Leaf, index, "")
	w.line = append(w.line[:0], indent1...)
	w.line = append(w.line, "{ "...)
	w.line = tbl.AppendText(w.line)
	w.line = append(w.line, " }\n"...)
	w.write(string(w.line))
}

// valueScale is one internal unit of curve output in file units.
func (w *Writer) valueScale(out common.OutputKind) float64 {
	return w.st.YScale(out)
}

// WriteAnim writes curve of the item. Items without curve are skipped.
func (w *Writer) WriteAnim(it *anim.Item, layer string, verboseUnits bool) {
	c := it.Curve
	if c == nil {
		return
	}
	w.entryHead(kwAnim, it.FullAttr, it.LeafAttr, it.AttrIndex, layer)

	w.write(indent1, kwAnimData, " {\n")
	w.write(indent2)
	w.statement(kwInput, c.Input.String())
	w.write(indent2)
	w.statement(kwOutput, c.Output.String())
	weighted := "0"
	if c.Weighted {
		weighted = "1"
	}
	w.write(indent2)
	w.statement(kwWeighted, weighted)

	if verboseUnits {
		in := common.InputKindUnitless.String()
		if c.IsTimeInput() {
			in = w.st.Time.ShortName()
		}
		out := common.InputKindUnitless.String()
		switch c.Output {
		case common.OutputKindLinear:
			out = w.st.Linear.ShortName()
		case common.OutputKindAngular:
			out = w.st.Angular.ShortName()
		case common.OutputKindTime:
			out = w.st.Time.ShortName()
		}
		w.write(indent2)
		w.statement(kwInputUnit, in)
		w.write(indent2)
		w.statement(kwOutputUnit, out)
		w.write(indent2)
		w.statement(kwTangentAngleUnit, w.st.Angular.ShortName())
	}

	w.write(indent2)
	w.statement(kwPreInfinity, c.PreInfinity.String())
	w.write(indent2)
	w.statement(kwPostInfinity, c.PostInfinity.String())
	w.write(indent2, kwKeys, " {\n")

	scale := w.valueScale(c.Output)
	for _, k := range c.Keys {
		in := k.Input
		if c.IsTimeInput() {
			in = units.TimeFromInternal(in, w.st.Time)
		}
		w.write(indent3, formatNumber(in), " ", formatNumber(k.Value*scale),
			" ", k.In.Kind.String(), " ", k.Out.Kind.String(),
			" ", flag(k.TangentsLocked), " ", flag(k.WeightsLocked), " ", flag(k.Breakdown))
		for _, t := range []anim.Tangent{k.In, k.Out} {
			if t.IsFixed() {
				w.write(" ", formatNumber(units.AngularFromInternal(t.Angle, w.st.Angular)), " ", formatNumber(t.Weight))
			}
		}
		w.write(";\n")
	}
	w.write(indent2, "}\n")
	w.write(indent1, "}\n")
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
