// Package sampler pre-samples attributes whose values can not be reproduced
// from exported curves alone.
package sampler

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"animc/common"
	"animc/scene"
	"animc/units"
)

// ErrCancelled is returned when sampling was interrupted. Nothing sampled so
// far is kept.
var ErrCancelled = errors.New("sampling cancelled")

// Nudge absorbs floating point error accumulated in (end-start)/step.
const Nudge = 1e-7

// Options of a single export.
type Options struct {
	// Start, End and Step are in seconds.
	Start float64
	End   float64
	Step  float64

	// ExportEdits and SetDrivenKeys mean set driven keys are exported on
	// their own and should not be cached.
	ExportEdits   bool
	SetDrivenKeys bool
	// Constraints and Layers exclude attributes handled by the respective
	// export modes.
	Constraints bool
	Layers      bool

	// Cached values are written in these units.
	Time    units.Time
	Linear  units.Linear
	Angular units.Angular
}

// NumSamples returns number of uniformly spaced ticks in [start, end].
func NumSamples(start, end, step float64) int {
	if end < start || step <= 0 {
		return 0
	}
	return int(math.Floor((end-start)/step+Nudge)) + 1
}

type entry struct {
	plug  scene.Plug
	index int
	scale float64
	table *Table
}

// Sampler is created once per export. Attributes are classified first, then
// Run fills the tables.
type Sampler struct {
	q    scene.Query
	opts Options
	log  *zap.Logger

	samples int
	entries []*entry
	byNode  map[string][]*entry
	sampled bool
}

// New returns sampler querying the scene.
func New(q scene.Query, opts Options, log *zap.Logger) *Sampler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sampler{
		q:       q,
		opts:    opts,
		log:     log.Named("sampler"),
		samples: NumSamples(opts.Start, opts.End, opts.Step),
		byNode:  make(map[string][]*entry),
	}
}

// Samples returns number of samples every cached attribute gets.
func (s *Sampler) Samples() int {
	return s.samples
}

// ShouldCache decides whether attribute value must be baked.
func (s *Sampler) ShouldCache(p scene.Plug) bool {
	conn := s.q.Connection(p)
	worthy := (conn.Connected && !conn.DirectCurve) || (conn.DirectCurve && conn.CurveDriven)
	if !worthy && !s.opts.ExportEdits && !s.opts.SetDrivenKeys && s.q.IsSetDrivenKey(p) {
		worthy = true
	}
	if !worthy {
		return false
	}
	if s.opts.Constraints && s.q.IsConstraintDriven(p) {
		return false
	}
	if s.opts.Layers && s.q.IsLayerDriven(p) {
		return false
	}
	return true
}

func (s *Sampler) scaleFor(t common.ValueType) float64 {
	switch t {
	case common.ValueTypeAngle:
		return units.AngularFromInternal(1, s.opts.Angular)
	case common.ValueTypeDistance:
		return units.LinearFromInternal(1, s.opts.Linear)
	case common.ValueTypeTime:
		return units.TimeFromInternal(1, s.opts.Time)
	}
	return 1
}

// Classify selects attributes of the node worth caching and allocates their
// tables. Position of plug in the slice becomes its attribute index, allow
// (when not nil) filters plugs before anything else. Returns number of cached
// attributes.
func (s *Sampler) Classify(node string, plugs []scene.Plug, allow func(scene.Plug) bool) int {
	count := 0
	for i, p := range plugs {
		if allow != nil && !allow(p) {
			continue
		}
		if !s.ShouldCache(p) {
			continue
		}
		e := &entry{
			plug:  p,
			index: i,
			scale: s.scaleFor(p.Type),
			table: NewTable(StorageFor(p.Type), s.samples, p.Elements),
		}
		s.entries = append(s.entries, e)
		s.byNode[node] = append(s.byNode[node], e)
		count++
		s.log.Debug("Attribute will be cached", zap.String("node", node), zap.String("attr", p.Leaf), zap.Stringer("storage", e.table.Storage()))
	}
	return count
}

// Run samples every classified attribute. Cancellation is checked once per
// tick; cancelled run discards all tables.
func (s *Sampler) Run(ctx context.Context) error {
	if len(s.entries) == 0 {
		s.sampled = true
		return nil
	}

	vals := make([]float64, 0, 4)
	for i := range s.samples {
		if err := ctx.Err(); err != nil {
			s.Discard()
			return errors.Join(ErrCancelled, err)
		}
		at := s.opts.Start + float64(i)*s.opts.Step
		for _, e := range s.entries {
			v, err := s.q.Value(e.plug, at)
			if err != nil {
				s.log.Warn("Unable to sample attribute", zap.String("attr", e.plug.Name()), zap.Float64("time", at), zap.Error(err))
				continue
			}
			vals = vals[:0]
			for _, x := range v {
				vals = append(vals, x*e.scale)
			}
			e.table.Set(i, vals)
		}
	}
	s.sampled = true
	return nil
}

// Discard drops everything classified and sampled.
func (s *Sampler) Discard() {
	s.entries = nil
	clear(s.byNode)
	s.sampled = false
}

// HasCached reports whether sampled data is available.
func (s *Sampler) HasCached() bool {
	return s.sampled && len(s.entries) > 0
}

// IsCached reports whether attribute is baked. Layer is accepted for symmetry
// with curve lookup, baked values already include all layers.
func (s *Sampler) IsCached(node, attr, layer string) bool {
	for _, e := range s.byNode[node] {
		if e.plug.Leaf == attr || e.plug.Attr == attr {
			return true
		}
	}
	return false
}

// Cached describes baked attribute of a node.
type Cached struct {
	Plug  scene.Plug
	Index int
	Table *Table
}

// Cached returns baked attributes of the node in classification order.
func (s *Sampler) Cached(node string) []Cached {
	if !s.sampled {
		return nil
	}
	res := make([]Cached, 0, len(s.byNode[node]))
	for _, e := range s.byNode[node] {
		res = append(res, Cached{Plug: e.plug, Index: e.index, Table: e.table})
	}
	return res
}
