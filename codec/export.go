package codec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"go.uber.org/zap"

	"animc/anim"
	"animc/common"
	"animc/layers"
	"animc/sampler"
	"animc/scene"
	"animc/units"
)

// ExportOptions control single export operation. Times are in seconds.
type ExportOptions struct {
	HostVersion string
	Units       units.State

	Statics         bool
	Cached          bool
	SetDrivenKeys   bool
	Constraints     bool
	Layers          bool
	ExportEdits     bool
	VerboseUnits    bool
	IncludeChildren bool

	UseSpecifiedRange bool
	Start             float64
	End               float64
	// Step between cached samples, zero means one time unit.
	Step float64

	// Embedded is secondary file carried at the end of output, nil when
	// there is none.
	Embedded []byte
}

type animEntry struct {
	item  *anim.Item
	layer string
}

type staticEntry struct {
	plug   scene.Plug
	index  int
	values []float64
}

type nodePlan struct {
	info    scene.NodeInfo
	plugs   []scene.Plug
	anims   []animEntry
	statics []staticEntry
}

// Exporter collects everything from the scene first and writes it out in one
// pass.
type Exporter struct {
	src    scene.Source
	filter scene.TemplateFilter
	opts   ExportOptions
	log    *zap.Logger

	layers  *layers.Manager
	cb      *anim.LayerClipboard
	plans   []*nodePlan
	used    []string
	sampler *sampler.Sampler
}

// NewExporter returns exporter for the scene selection. Template filter is
// optional.
func NewExporter(src scene.Source, filter scene.TemplateFilter, opts ExportOptions, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{
		src:    src,
		filter: filter,
		opts:   opts,
		log:    log.Named("export"),
		layers: layers.NewManager(src, log),
		cb:     anim.NewLayerClipboard(),
	}
}

func (e *Exporter) allowed(node, attr string) bool {
	return e.filter == nil || e.filter.IsAttributeAllowed(node, attr)
}

// Clipboard returns curves collected by Export.
func (e *Exporter) Clipboard() *anim.LayerClipboard {
	return e.cb
}

func (e *Exporter) addCurve(plan *nodePlan, p scene.Plug, index int, layer string) bool {
	c := e.src.Curve(p, layer)
	if c == nil || c.Len() == 0 {
		return false
	}
	it := &anim.Item{
		Depth:      plan.info.Depth,
		ChildCount: plan.info.ChildCount,
		AttrIndex:  index,
		Node:       plan.info.Name,
		FullAttr:   p.Attr,
		LeafAttr:   p.Leaf,
		Curve:      c.Clone(),
	}
	e.cb.Array(layer).Append(it)
	plan.anims = append(plan.anims, animEntry{item: it, layer: layer})
	if layer != "" && !slices.Contains(e.used, layer) {
		e.used = append(e.used, layer)
	}
	return true
}

func (e *Exporter) collect(ctx context.Context, selection []scene.NodeInfo) error {
	for _, n := range selection {
		if err := ctx.Err(); err != nil {
			return err
		}
		plan := &nodePlan{info: n, plugs: e.src.Attributes(n.Name)}
		var nl *layers.NodeLayers
		if e.opts.Layers {
			nl = e.layers.NodeLayers(n.Name)
		}
		for i, p := range plan.plugs {
			if !e.allowed(n.Name, p.Leaf) {
				continue
			}
			animated := e.addCurve(plan, p, i, "")
			if nl != nil {
				for _, l := range nl.LayersForAttribute(p.Leaf) {
					animated = e.addCurve(plan, p, i, l) || animated
				}
			}
			if !animated && e.opts.Statics && !e.src.Connection(p).Connected {
				plan.statics = append(plan.statics, staticEntry{plug: p, index: i})
			}
		}
		e.plans = append(e.plans, plan)
	}
	return nil
}

// header decides on time range written to the file and used for sampling.
func (e *Exporter) header() (Header, float64, float64) {
	h := newHeader(e.opts.Units)
	h.HostVersion = e.opts.HostVersion
	h.SourceFile = e.src.SceneFile()

	var start, end float64
	switch s, en, ok := e.cb.TimeRange(); {
	case e.opts.UseSpecifiedRange:
		start, end = e.opts.Start, e.opts.End
	case ok:
		start, end = s, en
	default:
		start, end = e.src.PlaybackRange()
	}
	h.StartTime = units.TimeFromInternal(start, h.Time)
	h.EndTime = units.TimeFromInternal(end, h.Time)
	h.HasTimeSpan = true

	if us, ue, ok := e.cb.UnitlessRange(); ok && us != ue {
		h.StartUnitless, h.EndUnitless = us, ue
		h.HasUnitlessSpan = true
	}
	return h, start, end
}

func (e *Exporter) sample(ctx context.Context, start, end float64) error {
	step := e.opts.Step
	if step <= 0 {
		step = e.opts.Units.Time.Seconds()
	}
	if !units.IsEquivalent(step, e.opts.Units.Time.Seconds()) {
		e.log.Warn("Cached values are read back one time unit apart", zap.Float64("step", step), zap.Stringer("unit", e.opts.Units.Time))
	}
	e.sampler = sampler.New(e.src, sampler.Options{
		Start:         start,
		End:           end,
		Step:          step,
		ExportEdits:   e.opts.ExportEdits,
		SetDrivenKeys: e.opts.SetDrivenKeys,
		Constraints:   e.opts.Constraints,
		Layers:        e.opts.Layers,
		Time:          e.opts.Units.Time,
		Linear:        e.opts.Units.Linear,
		Angular:       e.opts.Units.Angular,
	}, e.log)

	for _, plan := range e.plans {
		node := plan.info.Name
		e.sampler.Classify(node, plan.plugs, func(p scene.Plug) bool { return e.allowed(node, p.Leaf) })
	}
	return e.sampler.Run(ctx)
}

func (e *Exporter) staticValues(at float64) int {
	count := 0
	for _, plan := range e.plans {
		kept := plan.statics[:0]
		for _, st := range plan.statics {
			if e.sampler != nil && e.sampler.IsCached(plan.info.Name, st.plug.Leaf, "") {
				continue
			}
			v, err := e.src.Value(st.plug, at)
			if err != nil {
				e.log.Warn("Unable to get static value", zap.String("attr", st.plug.Name()), zap.Error(err))
				continue
			}
			st.values = v
			kept = append(kept, st)
		}
		plan.statics = kept
		count += len(kept)
	}
	return count
}

// Export writes the scene selection to out. When error is returned out
// content must be discarded.
func (e *Exporter) Export(ctx context.Context, out io.Writer) error {
	selection := e.src.Selection(e.opts.IncludeChildren)
	if len(selection) == 0 {
		return ErrNothingToExport
	}
	if err := e.collect(ctx, selection); err != nil {
		return err
	}

	h, start, end := e.header()
	if e.opts.Cached {
		if err := e.sample(ctx, start, end); err != nil {
			return fmt.Errorf("unable to sample cached values: %w", err)
		}
	}
	statics := e.staticValues(start)
	if e.cb.IsEmpty() && statics == 0 && (e.sampler == nil || !e.sampler.HasCached()) {
		return ErrNothingToExport
	}

	w := NewWriter(out, h.State(), e.log)
	w.WriteHeader(h)
	if e.opts.Embedded != nil {
		w.WriteEmbeddedMarker()
	}

	if len(e.used) > 0 {
		e.layers.CollectLayerObjects(e.used)
		names := e.layers.Collected()
		w.WriteAnimLayers(names)
		for _, l := range names {
			e.writeLayerNode(w, l, start)
		}
	}

	for _, plan := range e.plans {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.writeNode(w, plan)
	}

	if e.opts.Embedded != nil {
		w.WriteEmbedded(e.opts.Embedded)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("unable to write: %w", err)
	}
	e.log.Debug("Export done",
		zap.Int("nodes", len(e.plans)),
		zap.Int("statics", statics),
		zap.Strings("layers", e.used))
	return nil
}

func (e *Exporter) writeLayerNode(w *Writer, layer string, at float64) {
	w.BeginNode(common.NodeKindAnimLayer, layer, 0, 0)
	for i, attr := range layers.AttributesOfInterest() {
		p, ok := e.src.ResolveAttribute(layer, attr)
		if !ok {
			continue
		}
		v, err := e.src.Value(p, at)
		if err != nil {
			e.log.Warn("Unable to get layer attribute", zap.String("layer", layer), zap.String("attr", attr), zap.Error(err))
			continue
		}
		w.WriteStatic(p, i, v)
	}
	w.EndNode()
}

func (e *Exporter) writeNode(w *Writer, plan *nodePlan) {
	node := plan.info.Name
	w.BeginNode(plan.info.Kind, node, plan.info.Depth, plan.info.ChildCount)
	for _, a := range plan.anims {
		if e.sampler != nil && e.sampler.IsCached(node, a.item.LeafAttr, a.layer) {
			continue
		}
		w.WriteAnim(a.item, a.layer, e.opts.VerboseUnits)
	}
	for _, st := range plan.statics {
		w.WriteStatic(st.plug, st.index, st.values)
	}
	if e.sampler != nil {
		for _, c := range e.sampler.Cached(node) {
			w.WriteCached(c.Plug, c.Index, c.Table)
		}
	}
	w.EndNode()
}

// IsNothingToExport reports whether err means empty export.
func IsNothingToExport(err error) bool {
	return errors.Is(err, ErrNothingToExport)
}
