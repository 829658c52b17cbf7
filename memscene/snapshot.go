package memscene

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"animc/anim"
	"animc/common"
	"animc/units"
)

type (
	keyDTO struct {
		Input          float64 `yaml:"t"`
		Value          float64 `yaml:"v"`
		In             string  `yaml:"in"`
		Out            string  `yaml:"out"`
		InAngle        float64 `yaml:"in_angle,omitempty"`
		InWeight       float64 `yaml:"in_weight,omitempty"`
		OutAngle       float64 `yaml:"out_angle,omitempty"`
		OutWeight      float64 `yaml:"out_weight,omitempty"`
		TangentsLocked bool    `yaml:"locked,omitempty"`
		WeightsLocked  bool    `yaml:"weights_locked,omitempty"`
		Breakdown      bool    `yaml:"breakdown,omitempty"`
	}

	curveDTO struct {
		Input        string   `yaml:"input"`
		Output       string   `yaml:"output"`
		Weighted     bool     `yaml:"weighted,omitempty"`
		PreInfinity  string   `yaml:"pre_infinity"`
		PostInfinity string   `yaml:"post_infinity"`
		Keys         []keyDTO `yaml:"keys,flow"`
	}

	attrDTO struct {
		Name   string    `yaml:"name"`
		Full   string    `yaml:"full,omitempty"`
		Type   string    `yaml:"type"`
		Value  []float64 `yaml:"value,flow"`
		Driver string    `yaml:"driver,omitempty"`
		Curve  *curveDTO `yaml:"curve,omitempty"`
		Drive  *curveDTO `yaml:"drive,omitempty"`
	}

	nodeDTO struct {
		ID         string    `yaml:"id"`
		Name       string    `yaml:"name"`
		Kind       string    `yaml:"kind"`
		Parent     string    `yaml:"parent,omitempty"`
		Attributes []attrDTO `yaml:"attributes,omitempty"`
	}

	layerDTO struct {
		Name       string               `yaml:"name"`
		Attributes []string             `yaml:"attributes,omitempty"`
		Curves     map[string]*curveDTO `yaml:"curves,omitempty"`
	}

	unitsDTO struct {
		Time    string `yaml:"time"`
		Linear  string `yaml:"linear"`
		Angular string `yaml:"angular"`
	}

	snapshot struct {
		Version   int        `yaml:"version"`
		SceneFile string     `yaml:"scene_file,omitempty"`
		Units     unitsDTO   `yaml:"units"`
		Playback  []float64  `yaml:"playback,flow"`
		Selection []string   `yaml:"selection,omitempty"`
		Nodes     []nodeDTO  `yaml:"nodes"`
		Layers    []layerDTO `yaml:"layers,omitempty"`
	}
)

const snapshotVersion = 1

func curveToDTO(c *anim.Curve) *curveDTO {
	if c == nil {
		return nil
	}
	d := &curveDTO{
		Input:        c.Input.String(),
		Output:       c.Output.String(),
		Weighted:     c.Weighted,
		PreInfinity:  c.PreInfinity.String(),
		PostInfinity: c.PostInfinity.String(),
		Keys:         make([]keyDTO, 0, len(c.Keys)),
	}
	for _, k := range c.Keys {
		d.Keys = append(d.Keys, keyDTO{
			Input:          k.Input,
			Value:          k.Value,
			In:             k.In.Kind.String(),
			Out:            k.Out.Kind.String(),
			InAngle:        k.In.Angle,
			InWeight:       k.In.Weight,
			OutAngle:       k.Out.Angle,
			OutWeight:      k.Out.Weight,
			TangentsLocked: k.TangentsLocked,
			WeightsLocked:  k.WeightsLocked,
			Breakdown:      k.Breakdown,
		})
	}
	return d
}

func curveFromDTO(d *curveDTO) (*anim.Curve, error) {
	if d == nil {
		return nil, nil
	}
	var errs error
	out, err := common.OutputFromWord(d.Output)
	multierr.AppendInto(&errs, err)
	c := anim.NewCurve(common.InputFromWord(d.Input), out)
	c.Weighted = d.Weighted
	c.PreInfinity, err = common.InfinityFromWord(d.PreInfinity)
	multierr.AppendInto(&errs, err)
	c.PostInfinity, err = common.InfinityFromWord(d.PostInfinity)
	multierr.AppendInto(&errs, err)

	for _, k := range d.Keys {
		tin, err := common.TangentFromWord(k.In)
		multierr.AppendInto(&errs, err)
		tout, err := common.TangentFromWord(k.Out)
		multierr.AppendInto(&errs, err)
		i := c.AddKey(k.Input, k.Value, tin, tout)
		c.Keys[i] = anim.Key{
			Input:          k.Input,
			Value:          k.Value,
			In:             anim.NewTangent(tin, k.InAngle, k.InWeight),
			Out:            anim.NewTangent(tout, k.OutAngle, k.OutWeight),
			TangentsLocked: k.TangentsLocked,
			WeightsLocked:  k.WeightsLocked,
			Breakdown:      k.Breakdown,
		}
	}
	return c, errs
}

// Write stores scene snapshot.
func (s *Scene) Write(w io.Writer) error {
	snap := snapshot{
		Version:   snapshotVersion,
		SceneFile: s.file,
		Units: unitsDTO{
			Time:    s.Units.Time.ShortName(),
			Linear:  s.Units.Linear.ShortName(),
			Angular: s.Units.Angular.ShortName(),
		},
		Playback:  []float64{s.playStart, s.playEnd},
		Selection: s.selected,
	}
	for _, name := range s.order {
		n := s.nodes[name]
		nd := nodeDTO{ID: n.ID.String(), Name: n.Name, Kind: n.Kind.String(), Parent: n.Parent}
		for _, a := range n.Attrs {
			nd.Attributes = append(nd.Attributes, attrDTO{
				Name:   a.Name,
				Full:   a.Full,
				Type:   a.Type.String(),
				Value:  a.Value,
				Driver: a.Driver.String(),
				Curve:  curveToDTO(a.Curve),
				Drive:  curveToDTO(a.Drive),
			})
		}
		snap.Nodes = append(snap.Nodes, nd)
	}
	for _, l := range s.layers {
		ld := layerDTO{Name: l.name, Attributes: l.attrs}
		if len(l.curves) > 0 {
			ld.Curves = make(map[string]*curveDTO, len(l.curves))
			for k, c := range l.curves {
				ld.Curves[k] = curveToDTO(c)
			}
		}
		snap.Layers = append(snap.Layers, ld)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&snap); err != nil {
		return fmt.Errorf("unable to encode scene: %w", err)
	}
	return enc.Close()
}

// Save writes snapshot to file.
func (s *Scene) Save(path string) error {
	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to save scene: %w", err)
	}
	return nil
}

// Read replaces scene content with snapshot.
func (s *Scene) Read(r io.Reader) error {
	var snap snapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&snap); err != nil {
		return fmt.Errorf("unable to decode scene: %w", err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("unsupported scene version %d", snap.Version)
	}

	var err error
	st := units.NewState(units.TimeFilm, units.LinearCm, units.AngularDeg)
	if snap.Units.Time != "" {
		if st.Time, err = units.TimeFromName(snap.Units.Time); err != nil {
			return err
		}
	}
	if snap.Units.Linear != "" {
		if st.Linear, err = units.LinearFromName(snap.Units.Linear); err != nil {
			return err
		}
	}
	if snap.Units.Angular != "" {
		if st.Angular, err = units.AngularFromName(snap.Units.Angular); err != nil {
			return err
		}
	}

	fresh := New(s.log)
	fresh.Units = st
	fresh.file = snap.SceneFile
	if len(snap.Playback) == 2 {
		fresh.playStart, fresh.playEnd = snap.Playback[0], snap.Playback[1]
	}

	for _, nd := range snap.Nodes {
		if err := fresh.readNode(nd); err != nil {
			return err
		}
	}
	for _, ld := range snap.Layers {
		l := &layer{name: ld.Name, attrs: ld.Attributes, curves: make(map[string]*anim.Curve)}
		for k, cd := range ld.Curves {
			c, err := curveFromDTO(cd)
			if err != nil {
				return fmt.Errorf("layer %s curve %s: %w", ld.Name, k, err)
			}
			l.curves[k] = c
		}
		fresh.layers = append(fresh.layers, l)
	}
	fresh.selected = snap.Selection

	fresh.log = s.log
	*s = *fresh
	return nil
}

func (s *Scene) readNode(nd nodeDTO) error {
	kind, err := common.ParseNodeKind(nd.Kind)
	if err != nil {
		return fmt.Errorf("node %s: %w", nd.Name, err)
	}
	n, err := s.AddNode(nd.Name, kind, nd.Parent)
	if err != nil {
		return err
	}
	if nd.ID != "" {
		if n.ID, err = uuid.Parse(nd.ID); err != nil {
			return fmt.Errorf("node %s: %w", nd.Name, err)
		}
	}
	for _, ad := range nd.Attributes {
		vt, err := common.ParseValueType(ad.Type)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", nd.Name, ad.Name, err)
		}
		drv, err := ParseDriver(ad.Driver)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", nd.Name, ad.Name, err)
		}
		a := &Attribute{Name: ad.Name, Full: ad.Full, Type: vt, Value: ad.Value, Driver: drv}
		if a.Curve, err = curveFromDTO(ad.Curve); err != nil {
			return fmt.Errorf("%s.%s curve: %w", nd.Name, ad.Name, err)
		}
		if a.Drive, err = curveFromDTO(ad.Drive); err != nil {
			return fmt.Errorf("%s.%s drive: %w", nd.Name, ad.Name, err)
		}
		n.Attrs = append(n.Attrs, a)
	}
	return nil
}

// Load replaces scene content with snapshot file.
func (s *Scene) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open scene: %w", err)
	}
	defer f.Close()
	return s.Read(f)
}
