package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"animc/common"
	"animc/units"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	UnitsConfig struct {
		Time    units.Time    `yaml:"time"`
		Linear  units.Linear  `yaml:"linear"`
		Angular units.Angular `yaml:"angular"`
	}

	HostConfig struct {
		Version   string      `yaml:"version" validate:"required"`
		SceneFile string      `yaml:"scene_file,omitempty" sanitize:"path_clean"`
		Units     UnitsConfig `yaml:"units"`
	}

	TemplateConfig struct {
		Path string `yaml:"path,omitempty" sanitize:"assure_file_access"`
		Name string `yaml:"name,omitempty"`
		View string `yaml:"view,omitempty"`
	}

	// FrameRangeConfig is in scene time units.
	FrameRangeConfig struct {
		Enable bool    `yaml:"enable"`
		Start  float64 `yaml:"start"`
		End    float64 `yaml:"end" validate:"gtefield=Start"`
	}

	ImportConfig struct {
		ReplaceLayers bool             `yaml:"replace_layers"`
		Paste         PasteMode        `yaml:"paste"`
		Match         common.MatchMode `yaml:"match"`
		Search        string           `yaml:"search,omitempty"`
		Replace       string           `yaml:"replace,omitempty"`
		Prefix        string           `yaml:"prefix,omitempty"`
		Suffix        string           `yaml:"suffix,omitempty"`
		MapFile       string           `yaml:"map_file,omitempty" sanitize:"assure_file_access"`
		Template      TemplateConfig   `yaml:"template"`
		FrameRange    FrameRangeConfig `yaml:"frame_range"`
	}

	ExportConfig struct {
		Statics         bool `yaml:"statics"`
		Cached          bool `yaml:"cached"`
		SetDrivenKeys   bool `yaml:"set_driven_keys"`
		Constraints     bool `yaml:"constraints"`
		Layers          bool `yaml:"layers"`
		ExportEdits     bool `yaml:"export_edits"`
		VerboseUnits    bool `yaml:"verbose_units"`
		IncludeChildren bool `yaml:"include_children"`

		// Range and step are in scene time units, zero step samples once
		// per unit.
		UseSpecifiedRange bool    `yaml:"use_specified_range"`
		Start             float64 `yaml:"start"`
		End               float64 `yaml:"end" validate:"gtefield=Start"`
		Step              float64 `yaml:"step" validate:"gte=0"`

		Template              TemplateConfig `yaml:"template"`
		EmbeddedFile          string         `yaml:"embedded_file,omitempty" sanitize:"assure_file_access"`
		OutputNameTemplate    string         `yaml:"output_name_template"`
		FileNameTransliterate bool           `yaml:"file_name_transliterate"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Host      HostConfig     `yaml:"host"`
		Import    ImportConfig   `yaml:"import"`
		Export    ExportConfig   `yaml:"export"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, expanded at run time, not by
	// gencfg
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// UnitState returns host units as units.State.
func (h *HostConfig) UnitState() units.State {
	return units.NewState(h.Units.Time, h.Units.Linear, h.Units.Angular)
}
