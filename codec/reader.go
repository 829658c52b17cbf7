package codec

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"animc/anim"
	"animc/common"
	"animc/layers"
	"animc/scene"
	"animc/token"
	"animc/units"
)

// ReadOptions control single read operation.
type ReadOptions struct {
	// HostVersion is version of the running host, compared to the one in
	// file to decide on tangent conversion.
	HostVersion string
	// Units are current scene units, used when file names unknown unit.
	Units units.State
	// ReplaceLayers takes attributes out of existing layers before putting
	// them on layers named in file. Layers left empty are deleted.
	ReplaceLayers bool
	// Clip restricts time input curves to [ClipStart, ClipEnd] seconds.
	Clip      bool
	ClipStart float64
	ClipEnd   float64
}

// Result of a successful read.
type Result struct {
	Header    Header
	Clipboard *anim.LayerClipboard

	// EmbeddedPresent is set when file announced secondary file, its
	// content (if any) is in Embedded.
	EmbeddedPresent bool
	EmbeddedName    string
	Embedded        []byte

	DeletedLayers []string
	// Warnings accumulates every recoverable problem, see multierr.Errors.
	Warnings error
}

type nodeState struct {
	kind       common.NodeKind
	name       string
	depth      int
	childCount int
	valid      bool
}

type entryHead struct {
	full  string
	leaf  string
	index int
	layer string
}

func (h entryHead) attr() string {
	if h.leaf != "" {
		return h.leaf
	}
	return h.full
}

// Reader is created for a single file.
type Reader struct {
	query  scene.Query
	layers *layers.Manager
	filter scene.TemplateFilter
	names  scene.NameReplacer
	opts   ReadOptions
	log    *zap.Logger

	tok      *token.Tokenizer
	hdr      Header
	st       units.State
	node     nodeState
	res      *Result
	warnings error
}

// NewReader returns reader applying file to the scene. Layer stack, template
// filter and name replacer are optional.
func NewReader(q scene.Query, ls scene.Layers, filter scene.TemplateFilter, names scene.NameReplacer, opts ReadOptions, log *zap.Logger) *Reader {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Reader{
		query:  q,
		filter: filter,
		names:  names,
		opts:   opts,
		log:    log.Named("reader"),
	}
	if ls != nil {
		r.layers = layers.NewManager(ls, log)
	}
	return r
}

func (r *Reader) warn(msg string, fields ...zap.Field) {
	r.log.Warn(msg, fields...)
	multierr.AppendInto(&r.warnings, fmt.Errorf("offset %d: %s", r.tok.Offset(), msg))
}

func (r *Reader) warnErr(err error) {
	r.log.Warn("Recoverable error", zap.Error(err))
	multierr.AppendInto(&r.warnings, err)
}

// Read parses the whole stream. Only missing format version, read failure or
// cancellation stop the read, everything else is reported in Result.Warnings.
func (r *Reader) Read(ctx context.Context, in io.Reader) (*Result, error) {
	r.tok = token.New(in)
	r.hdr = newHeader(r.opts.Units)
	r.res = &Result{Clipboard: anim.NewLayerClipboard()}
	r.warnings = nil

	word, err := r.readHeader()
	if err != nil {
		return nil, err
	}
	if err := r.tok.Err(); err != nil {
		return nil, fmt.Errorf("unable to read header: %w", err)
	}

	r.st = r.hdr.State()
	r.st.SetVersions(r.hdr.HostVersion, r.opts.HostVersion)
	if r.st.FromPre3 || r.st.ToPre3 {
		r.log.Debug("Tangents will be converted",
			zap.String("file", r.hdr.HostVersion),
			zap.String("host", r.opts.HostVersion),
			zap.Bool("fromPre3", r.st.FromPre3))
	}

	if err := r.readBody(ctx, word); err != nil {
		return nil, err
	}
	if err := r.tok.Err(); err != nil {
		return nil, fmt.Errorf("unable to read body: %w", err)
	}

	if r.layers != nil {
		r.res.DeletedLayers = r.layers.DeleteEmptyLayers(r.opts.ReplaceLayers)
	}
	r.res.Header = r.hdr
	r.res.Warnings = r.warnings
	return r.res, nil
}

func (r *Reader) readBody(ctx context.Context, word string) error {
	for word != "" {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch word {
		case kwEmbedded:
			word = r.readEmbeddedMarker()
		case kwEmbeddedData:
			r.readEmbedded()
			return nil
		case kwAnimLayers:
			word = r.readAnimLayers()
		case kwAnim:
			word = r.readAnim()
		case kwCached:
			word = r.readCached()
		case kwStatic:
			word = r.readStatic()
		case token.CloseBrace:
			r.node = nodeState{}
			word = r.tok.NextWord()
		default:
			if kind, err := common.ParseNodeKind(word); err == nil {
				word = r.readNodeStart(kind)
				continue
			}
			word = r.skipUnknown(word)
		}
	}
	return nil
}

// skipUnknown throws away the rest of the line. When that line opened brace
// region the whole region goes too.
func (r *Reader) skipUnknown(word string) string {
	r.warn("Unknown keyword, skipping line", zap.String("keyword", word))
	line := r.tok.SkipLine()
	depth := bytes.Count([]byte(line), []byte(token.OpenBrace)) - bytes.Count([]byte(line), []byte(token.CloseBrace))
	if depth > 0 {
		return r.tok.SkipBlock(r.tok.NextWord(), depth)
	}
	return r.tok.NextWord()
}

func (r *Reader) readEmbeddedMarker() string {
	r.res.EmbeddedPresent = true
	if !r.tok.AtTerminator() {
		r.res.EmbeddedName = r.tok.NextWordWS()
	}
	if h, ok := r.names.(interface{ TurnOffHierarchy() }); ok {
		h.TurnOffHierarchy()
	}
	return r.tok.NextWord()
}

func (r *Reader) readEmbedded() {
	data := r.tok.Rest()
	if trimmed, ok := bytes.CutSuffix(data, []byte{'\n', token.Terminator, '\n'}); ok {
		data = trimmed
	} else {
		data = bytes.TrimSuffix(data, []byte{token.Terminator, '\n'})
		data = bytes.TrimSuffix(data, []byte{token.Terminator})
	}
	r.res.EmbeddedPresent = true
	r.res.Embedded = data
}

func (r *Reader) readAnimLayers() string {
	word := r.tok.NextWord()
	if word != token.OpenBrace {
		r.warn("Layer list without opening brace", zap.String("keyword", word))
		return word
	}
	var names []string
	for {
		word = r.tok.NextWord()
		if word == token.CloseBrace || word == "" {
			break
		}
		names = append(names, word)
	}
	if r.layers == nil {
		r.log.Debug("Scene has no layer support, layer list ignored", zap.Strings("layers", names))
		return r.tok.NextWord()
	}
	if err := r.layers.CreateMissing(names); err != nil {
		r.warnErr(err)
	}
	r.layers.Select(names)
	return r.tok.NextWord()
}

func (r *Reader) readNodeStart(kind common.NodeKind) string {
	r.node = nodeState{}
	word := r.tok.NextWord()
	if word != token.OpenBrace {
		r.warn("Node without opening brace", zap.Stringer("kind", kind), zap.String("keyword", word))
		return word
	}

	name := r.tok.NextWord()
	depth, err := r.tok.NextInt()
	if err != nil {
		r.warnErr(fmt.Errorf("node %s depth: %w", name, err))
	}
	childCount, err := r.tok.NextInt()
	if err != nil {
		r.warnErr(fmt.Errorf("node %s child count: %w", name, err))
	}

	resolved, ok := name, true
	if r.names != nil {
		resolved, ok = r.names.Resolve(kind, name, depth, childCount)
	}
	if ok && r.filter != nil {
		ok = r.filter.IsNodeAllowed(resolved)
	}
	if !ok {
		r.warn("Node skipped", zap.Stringer("kind", kind), zap.String("node", name))
		return r.tok.SkipBlock(r.tok.NextWord(), 1)
	}
	if resolved != name {
		r.log.Debug("Node renamed", zap.String("from", name), zap.String("to", resolved))
	}
	r.node = nodeState{kind: kind, name: resolved, depth: depth, childCount: childCount, valid: true}
	return r.tok.NextWord()
}

// readEntryHead reads "[full [leaf]] index [layer];".
func (r *Reader) readEntryHead(kind string) entryHead {
	var h entryHead
	if !r.tok.PeekIsNumeric() {
		h.full = r.tok.NextWord()
		if !r.tok.PeekIsNumeric() {
			h.leaf = r.tok.NextWord()
		}
	}
	index, err := r.tok.NextInt()
	if err != nil {
		r.warnErr(fmt.Errorf("%s %s.%s index: %w", kind, r.node.name, h.full, err))
	}
	h.index = index
	if !r.tok.AtTerminator() {
		h.layer = r.tok.NextWord()
	}
	return h
}

// acceptEntry decides whether entry should be applied to the scene.
func (r *Reader) acceptEntry(kind string, h entryHead) bool {
	if !r.node.valid {
		r.warn("Entry outside of node", zap.String("keyword", kind), zap.String("attr", h.full))
		return false
	}
	if r.filter != nil && !r.filter.IsAttributeAllowed(r.node.name, h.leaf) {
		r.log.Debug("Attribute not in template", zap.String("node", r.node.name), zap.String("attr", h.leaf))
		return false
	}
	if adder, ok := r.query.(scene.AttributeAdder); ok && h.leaf != "" {
		if _, found := r.query.ResolveAttribute(r.node.name, h.leaf); !found {
			if err := adder.AddDynamicAttribute(r.node.name, h.leaf); err != nil {
				r.warnErr(fmt.Errorf("unable to add %s.%s: %w", r.node.name, h.leaf, err))
			}
		}
	}
	if h.layer != "" {
		r.joinLayer(h)
	}
	return true
}

func (r *Reader) joinLayer(h entryHead) {
	if r.layers == nil {
		return
	}
	attr := h.attr()
	r.layers.RemoveIfNeeded(r.opts.ReplaceLayers, r.node.name, attr)
	added, err := r.layers.AddIfMissing(h.layer, r.node.name, attr)
	if err != nil {
		r.warnErr(err)
		return
	}
	if added {
		r.log.Debug("Attribute added to layer", zap.String("layer", h.layer), zap.String("node", r.node.name), zap.String("attr", attr))
	}
}

func (r *Reader) newItem(h entryHead) *anim.Item {
	return &anim.Item{
		Depth:      r.node.depth,
		ChildCount: r.node.childCount,
		AttrIndex:  h.index,
		Node:       r.node.name,
		FullAttr:   h.full,
		LeafAttr:   h.leaf,
	}
}

func (r *Reader) readAnim() string {
	h := r.readEntryHead(kwAnim)
	if !r.acceptEntry(kwAnim, h) {
		word := r.tok.NextWord()
		if word != kwAnimData {
			return word
		}
		return r.tok.SkipBlock(r.tok.NextWord(), 0)
	}

	item := r.newItem(h)
	arr := r.res.Clipboard.Array(h.layer)

	word := r.tok.NextWord()
	if word != kwAnimData {
		// placeholder keeps addressing of curve-less attribute
		item.FullAttr = r.node.name
		arr.Append(item)
		return word
	}

	curve, err := r.readAnimData()
	if err != nil {
		r.warnErr(fmt.Errorf("curve %s.%s: %w", r.node.name, h.full, err))
		return r.tok.NextWord()
	}
	if r.opts.Clip && curve.IsTimeInput() {
		curve.Clip(r.opts.ClipStart, r.opts.ClipEnd)
	}
	item.Curve = curve
	arr.Append(item)
	return r.tok.NextWord()
}

// readValues reads numbers up to the closing brace and returns the word
// following the brace.
func (r *Reader) readValues() ([]float64, string) {
	var vals []float64
	for r.tok.PeekIsNumeric() {
		v, err := r.tok.NextDouble()
		if err != nil {
			r.warnErr(fmt.Errorf("node %s value: %w", r.node.name, err))
			break
		}
		vals = append(vals, v)
	}
	word := r.tok.NextWord()
	if word == token.CloseBrace {
		return vals, r.tok.NextWord()
	}
	r.warn("Unexpected token among values", zap.String("keyword", word))
	return vals, r.tok.SkipBlock(word, 1)
}

// toInternal converts value of attribute from file units.
func (r *Reader) toInternal(v float64, t common.ValueType) float64 {
	switch t {
	case common.ValueTypeAngle:
		return units.AngularToInternal(v, r.hdr.Angular)
	case common.ValueTypeDistance:
		return units.LinearToInternal(v, r.hdr.Linear)
	case common.ValueTypeTime:
		return units.TimeToInternal(v, r.hdr.Time)
	}
	return v
}

// valuesCurve keys values one file time unit apart starting at header start
// time. Compound attributes contribute their first element only.
func (r *Reader) valuesCurve(p scene.Plug, vals []float64) *anim.Curve {
	c := anim.NewCurve(common.InputKindTime, p.Type.Output())
	stride := max(p.Elements, 1)
	if stride > 1 {
		r.warn("Compound attribute keyed by first element only", zap.String("node", p.Node), zap.String("attr", p.Leaf))
	}
	at, step := r.hdr.Start(), r.hdr.Time.Seconds()
	for i := 0; i < len(vals); i += stride {
		c.AddKey(at, r.toInternal(vals[i], p.Type), common.TangentKindGlobal, common.TangentKindGlobal)
		at += step
	}
	return c
}

// valuesHead reads entry prologue of cached and static entries up to the
// opening brace of values. Returns false with the word to continue from when
// values should not be read.
func (r *Reader) valuesHead(kind string) (entryHead, scene.Plug, string, bool) {
	h := r.readEntryHead(kind)
	if !r.acceptEntry(kind, h) {
		return h, scene.Plug{}, r.tok.SkipBlock(r.tok.NextWord(), 0), false
	}
	word := r.tok.NextWord()
	if word != token.OpenBrace {
		r.warn("Entry without values", zap.String("keyword", kind), zap.String("node", r.node.name), zap.String("attr", h.full))
		return h, scene.Plug{}, word, false
	}
	p, ok := r.query.ResolveAttribute(r.node.name, h.attr())
	if !ok {
		r.warn("Unable to find attribute", zap.String("keyword", kind), zap.String("node", r.node.name), zap.String("attr", h.attr()))
		return h, scene.Plug{}, r.tok.SkipBlock(word, 0), false
	}
	return h, p, "", true
}

func (r *Reader) readCached() string {
	h, p, word, ok := r.valuesHead(kwCached)
	if !ok {
		return word
	}
	vals, word := r.readValues()
	item := r.newItem(h)
	item.Curve = r.valuesCurve(p, vals)
	r.res.Clipboard.Array(h.layer).Append(item)
	return word
}

func (r *Reader) readStatic() string {
	h, p, word, ok := r.valuesHead(kwStatic)
	if !ok {
		return word
	}
	vals, word := r.readValues()
	if len(vals) == 0 {
		r.warn("Static entry without value", zap.String("node", p.Node), zap.String("attr", p.Leaf))
		return word
	}

	if r.query.HasCurve(p) {
		item := r.newItem(h)
		item.Curve = r.valuesCurve(p, vals)
		r.res.Clipboard.Array(h.layer).Append(item)
		return word
	}

	for i, v := range vals {
		v = r.toInternal(v, p.Type)
		switch {
		case p.Type == common.ValueTypeBool && v != 0:
			v = 1
		case p.Type.IsInteger():
			v = float64(int64(v))
		}
		vals[i] = v
	}
	if err := r.query.SetValue(p, r.hdr.Start(), vals); err != nil {
		r.warnErr(fmt.Errorf("unable to set %s.%s: %w", p.Node, p.Leaf, err))
	}
	return word
}
