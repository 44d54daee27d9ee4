package cpmg

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/aestelle/ChemEx/liouville"
	"github.com/aestelle/ChemEx/nmr"
)

var (
	// ErrLengthMismatch indicates measurement arrays of differing lengths.
	ErrLengthMismatch = errors.New("cpmg: measurement arrays length mismatch")
	// ErrBadConfig indicates missing or malformed experiment constants.
	ErrBadConfig = errors.New("cpmg: invalid experiment configuration")
	// ErrBadIntensity indicates a non-positive intensity ratio in R2eff.
	ErrBadIntensity = errors.New("cpmg: non-positive intensity ratio")
)

// Config carries the per-experiment constants of a CPMG profile. TimeT2 is
// the total relaxation delay in seconds; the carrier is usually placed on the
// major-state resonance.
type Config struct {
	Nucleus     string
	HLarmorFrq  float64 // proton Larmor frequency, MHz
	CarrierPPM  float64
	TimeT2      float64
	Temperature float64
	Topology    liouville.Topology
}

// Profile is one residue's CPMG dataset plus its simulation engine.
type Profile struct {
	Name          string
	Ncycs         []float64
	Intensities   []float64
	IntensityErrs []float64

	cfg      Config
	layout   liouville.Layout
	linkage  liouville.Linkage
	ppmToRad float64
	flip     *mat.Dense // 180x pulse: inverts Iy and Iz of every state
}

// NewProfile validates the dataset and precomputes the immutable per-profile
// quantities.
func NewProfile(name string, ncycs, intensities, errs []float64, cfg Config) (*Profile, error) {
	if len(ncycs) != len(intensities) || len(ncycs) != len(errs) {
		return nil, fmt.Errorf("NewProfile %s: %d/%d/%d: %w",
			name, len(ncycs), len(intensities), len(errs), ErrLengthMismatch)
	}
	if cfg.TimeT2 <= 0 {
		return nil, fmt.Errorf("NewProfile %s: time_t2=%g: %w", name, cfg.TimeT2, ErrBadConfig)
	}
	if cfg.HLarmorFrq <= 0 {
		return nil, fmt.Errorf("NewProfile %s: h_larmor_frq=%g: %w", name, cfg.HLarmorFrq, ErrBadConfig)
	}
	layout, err := liouville.NewLayout(cfg.Topology)
	if err != nil {
		return nil, fmt.Errorf("NewProfile %s: %w", name, err)
	}
	xi, err := nmr.XiRatio(cfg.Nucleus)
	if err != nil {
		return nil, fmt.Errorf("NewProfile %s: %w", name, err)
	}

	flip := mat.NewDense(layout.Dim(), layout.Dim(), nil)
	flip.Set(layout.Unity(), layout.Unity(), 1)
	for s := 0; s < layout.States(); s++ {
		flip.Set(layout.Ix(s), layout.Ix(s), 1)
		flip.Set(layout.Iy(s), layout.Iy(s), -1)
		flip.Set(layout.Iz(s), layout.Iz(s), -1)
	}

	return &Profile{
		Name:          name,
		Ncycs:         append([]float64(nil), ncycs...),
		Intensities:   append([]float64(nil), intensities...),
		IntensityErrs: append([]float64(nil), errs...),
		cfg:           cfg,
		layout:        layout,
		linkage:       liouville.DefaultLinkage(cfg.Topology),
		ppmToRad:      2 * math.Pi * cfg.HLarmorFrq * xi,
		flip:          flip,
	}, nil
}

// Len returns the number of measurement points.
func (p *Profile) Len() int { return len(p.Ncycs) }

// Simulate predicts one intensity per cycle count, in input order. The
// initial state carries the thermal populations on x (post-excitation);
// ncyc = 0 reports it unchanged.
func (p *Profile) Simulate(params liouville.Set) ([]float64, error) {
	resolved := params.Resolve(p.linkage)

	shifts := liouville.StateShifts(p.cfg.Topology, resolved)
	omegas := make([]float64, len(shifts))
	for s, cs := range shifts {
		omegas[s] = (cs - p.cfg.CarrierPPM) * p.ppmToRad
	}

	pops, err := p.cfg.Topology.Populations(resolved)
	if err != nil {
		return nil, fmt.Errorf("Simulate %s: %w", p.Name, err)
	}
	mag0 := mat.NewVecDense(p.layout.Dim(), nil)
	mag0.SetVec(p.layout.Unity(), 1)
	for s := range pops {
		mag0.SetVec(p.layout.Ix(s), pops[s])
	}

	free, err := p.layout.FreePrecession(omegas, resolved)
	if err != nil {
		return nil, fmt.Errorf("Simulate %s: %w", p.Name, err)
	}

	out := make([]float64, len(p.Ncycs))
	for i, nf := range p.Ncycs {
		ncyc := int(nf + 0.5)
		if ncyc == 0 {
			out[i] = mag0.AtVec(p.layout.Ix(0))
			continue
		}

		tau := p.cfg.TimeT2 / (4 * float64(ncyc))
		var scaled mat.Dense
		scaled.Scale(tau, free)
		var ptau mat.Dense
		ptau.Exp(&scaled)

		// one echo: τ — 180x — τ
		var half, echo mat.Dense
		half.Mul(&ptau, p.flip)
		echo.Mul(&half, &ptau)

		total := identity(p.layout.Dim())
		next := mat.NewDense(p.layout.Dim(), p.layout.Dim(), nil)
		for k := 0; k < 2*ncyc; k++ {
			next.Mul(total, &echo)
			total, next = next, total
		}

		var final mat.VecDense
		final.MulVec(total, mag0)
		out[i] = final.AtVec(p.layout.Ix(0))
	}

	return out, nil
}

// R2eff converts an intensity ratio to an effective transverse relaxation
// rate: -ln(I/I0)/time_t2.
func R2eff(intensity, reference, timeT2 float64) (float64, error) {
	if intensity <= 0 || reference <= 0 {
		return 0, fmt.Errorf("R2eff: I=%g I0=%g: %w", intensity, reference, ErrBadIntensity)
	}

	return -math.Log(intensity/reference) / timeT2, nil
}

// ExperimentName returns the explicit name, normalized, or a slug derived
// from the experiment constants: {type}_{t2 ms}ms_{frq MHz}MHz_{temp C}C.
func ExperimentName(name, expType string, cfg Config) string {
	if name != "" {
		return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	}

	return strings.ToLower(fmt.Sprintf("%s_%.0fms_%.0fMHz_%.0fC",
		strings.ReplaceAll(expType, ".", "_"), cfg.TimeT2*1e3, cfg.HLarmorFrq, cfg.Temperature))
}

func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}
