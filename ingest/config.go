package ingest

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aestelle/ChemEx/liouville"
	"github.com/aestelle/ChemEx/rffield"
)

var (
	// ErrBadConfig indicates malformed or incomplete experiment metadata.
	ErrBadConfig = errors.New("ingest: invalid experiment config")
)

// FieldSpread is the B1 inhomogeneity width in Hz; the YAML value "inf"
// selects the ideal-field regime.
type FieldSpread struct {
	Hz       float64
	Infinite bool
}

// UnmarshalYAML accepts either a number or the string "inf".
func (f *FieldSpread) UnmarshalYAML(node *yaml.Node) error {
	s := strings.TrimSpace(strings.ToLower(node.Value))
	if s == "inf" || s == "+inf" || s == ".inf" {
		f.Infinite = true
		f.Hz = math.Inf(1)
		return nil
	}
	v, err := strconv.ParseFloat(node.Value, 64)
	if err != nil {
		return fmt.Errorf("FieldSpread: %q: %w", node.Value, ErrBadConfig)
	}
	f.Hz = v

	return nil
}

// ExperimentConfig is the YAML metadata of one experiment.
type ExperimentConfig struct {
	Name        string      `yaml:"name"`
	Type        string      `yaml:"type"` // e.g. "cest.ip_1h_eq_b", "cpmg.ip_15n"
	Model       string      `yaml:"model"`
	Nucleus     string      `yaml:"nucleus"`
	HLarmorFrq  float64     `yaml:"h_larmor_frq"` // MHz
	Temperature float64     `yaml:"temperature"`  // Celsius
	CarrierPPM  float64     `yaml:"carrier"`
	TimeT1      float64     `yaml:"time_t1"`
	TimeT2      float64     `yaml:"time_t2"`
	TimeD1      float64     `yaml:"time_d1"`
	B1Frq       float64     `yaml:"b1_frq"` // Hz
	B1Inh       FieldSpread `yaml:"b1_inh"`
	B1InhRes    int         `yaml:"b1_inh_res"`
	OnResFilter float64     `yaml:"on_resonance_filter"` // Hz
	Error       string      `yaml:"error"`               // "file" (default) or "auto"
}

// LoadExperimentConfig reads and validates a YAML experiment file.
func LoadExperimentConfig(path string) (ExperimentConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ExperimentConfig{}, fmt.Errorf("LoadExperimentConfig: %w", err)
	}
	var cfg ExperimentConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return ExperimentConfig{}, fmt.Errorf("LoadExperimentConfig %s: %v: %w", path, err, ErrBadConfig)
	}
	if cfg.Nucleus == "" {
		return ExperimentConfig{}, fmt.Errorf("LoadExperimentConfig %s: missing nucleus: %w", path, ErrBadConfig)
	}
	if cfg.HLarmorFrq <= 0 {
		return ExperimentConfig{}, fmt.Errorf("LoadExperimentConfig %s: h_larmor_frq=%g: %w",
			path, cfg.HLarmorFrq, ErrBadConfig)
	}

	return cfg, nil
}

// Topology maps the model string to the closed topology type. The mapping
// happens once here: "4st" anywhere in the string selects four states, then
// "3st" three; anything else is the two-state default.
func (c ExperimentConfig) Topology() liouville.Topology {
	switch {
	case strings.Contains(c.Model, "4st"):
		return liouville.FourState
	case strings.Contains(c.Model, "3st"):
		return liouville.ThreeState
	default:
		return liouville.TwoState
	}
}

// Distribution builds the B1 field distribution from the metadata: the
// infinite sentinel for ideal fields, otherwise a Gaussian grid whose spread
// is the inhomogeneity width relative to the nominal amplitude.
func (c ExperimentConfig) Distribution() (rffield.Distribution, error) {
	if c.B1Inh.Infinite {
		return rffield.Infinite(), nil
	}
	if c.B1Frq <= 0 {
		return rffield.Distribution{}, fmt.Errorf("Distribution: b1_frq=%g: %w", c.B1Frq, ErrBadConfig)
	}

	return rffield.Gaussian(1.0, c.B1Inh.Hz/c.B1Frq, c.B1InhRes)
}
