package cest

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/aestelle/ChemEx/cxmat"
	"github.com/aestelle/ChemEx/liouville"
	"github.com/aestelle/ChemEx/nmr"
)

// Profile is one residue's CEST dataset plus its simulation engine. The
// measurement slices stay co-indexed at all times: element i of every slice
// refers to the same acquisition point, before and after filtering.
type Profile struct {
	Name          string
	Offsets       []float64 // irradiation offsets, Hz
	Intensities   []float64
	IntensityErrs []float64
	Reference     []bool

	cfg      Config
	layout   liouville.Layout
	linkage  liouville.Linkage
	ppmToRad float64      // rad/s per ppm at this field for this nucleus
	rfParts  []*mat.Dense // field-dependent Liouvillian per B1 grid point
	start    []int        // post-equilibration start group (IzEq)
	obsRow   int          // observable z row
}

// NewProfile validates the measurement arrays and experiment constants and
// precomputes the immutable per-profile quantities. Configuration problems
// (unknown nucleus, non-positive durations, mismatched arrays) are fatal here
// rather than at simulation time.
func NewProfile(name string, offsets, intensities, errs []float64, cfg Config) (*Profile, error) {
	if len(offsets) != len(intensities) || len(offsets) != len(errs) {
		return nil, fmt.Errorf("NewProfile %s: %d/%d/%d: %w",
			name, len(offsets), len(intensities), len(errs), ErrLengthMismatch)
	}
	if cfg.TimeT1 <= 0 {
		return nil, fmt.Errorf("NewProfile %s: time_t1=%g: %w", name, cfg.TimeT1, ErrBadConfig)
	}
	if cfg.HLarmorFrq <= 0 {
		return nil, fmt.Errorf("NewProfile %s: h_larmor_frq=%g: %w", name, cfg.HLarmorFrq, ErrBadConfig)
	}
	if cfg.TimeD1 == 0 {
		cfg.TimeD1 = DefaultTimeD1
	}
	if cfg.ImagTolerance == 0 {
		cfg.ImagTolerance = DefaultImagTolerance
	}
	if cfg.B1.Len() == 0 {
		return nil, fmt.Errorf("NewProfile %s: empty B1 distribution: %w", name, ErrBadConfig)
	}

	layout, err := liouville.NewLayout(cfg.Topology)
	if err != nil {
		return nil, fmt.Errorf("NewProfile %s: %w", name, err)
	}
	if cfg.ObservedState < 0 || cfg.ObservedState >= layout.States() {
		return nil, fmt.Errorf("NewProfile %s: observed state %d of %d: %w",
			name, cfg.ObservedState, layout.States(), ErrBadConfig)
	}
	xi, err := nmr.XiRatio(cfg.Nucleus)
	if err != nil {
		return nil, fmt.Errorf("NewProfile %s: %w", name, err)
	}

	p := &Profile{
		Name:          name,
		Offsets:       append([]float64(nil), offsets...),
		Intensities:   append([]float64(nil), intensities...),
		IntensityErrs: append([]float64(nil), errs...),
		Reference:     make([]bool, len(offsets)),
		cfg:           cfg,
		layout:        layout,
		linkage:       liouville.DefaultLinkage(cfg.Topology),
		ppmToRad:      2 * math.Pi * cfg.HLarmorFrq * xi,
		start:         layout.IzEq(),
		obsRow:        layout.Iz(cfg.ObservedState),
	}
	for i, off := range p.Offsets {
		p.Reference[i] = math.Abs(off) > ReferenceOffsetCutoff
	}

	// One RF Liouvillian component per inhomogeneity grid point; these never
	// change across parameter sets.
	p.rfParts = make([]*mat.Dense, cfg.B1.Len())
	for k := 0; k < cfg.B1.Len(); k++ {
		omega1x := 2 * math.Pi * cfg.B1Frq * cfg.B1.Scale(k)
		p.rfParts[k] = layout.RFMatrix(omega1x)
	}

	return p, nil
}

// Len returns the number of active measurement points.
func (p *Profile) Len() int { return len(p.Offsets) }

// Simulate predicts one intensity per active measurement point for the given
// parameter set, in the order of the offsets slice. The set is
// linkage-resolved before use; reference points skip the saturation block
// and report the equilibrated magnetization directly.
func (p *Profile) Simulate(params liouville.Set) ([]float64, error) {
	resolved := params.Resolve(p.linkage)

	// ppm → rad/s relative to the carrier, per state.
	shifts := liouville.StateShifts(p.cfg.Topology, resolved)
	omegaCars := make([]float64, len(shifts))
	for s, cs := range shifts {
		omegaCars[s] = (cs - p.cfg.CarrierPPM) * p.ppmToRad
	}

	mag0, err := p.layout.EquilibriumAfterD1(p.cfg.TimeD1, resolved)
	if err != nil {
		return nil, fmt.Errorf("Simulate %s: %w", p.Name, err)
	}
	mag0Start := make([]float64, len(p.start))
	for i, row := range p.start {
		mag0Start[i] = mag0.AtVec(row)
	}

	out := make([]float64, len(p.Offsets))
	omegas := make([]float64, len(omegaCars))
	for i, offset := range p.Offsets {
		if p.Reference[i] {
			out[i] = mag0.AtVec(p.obsRow)
			continue
		}
		for s, wc := range omegaCars {
			omegas[s] = wc - 2*math.Pi*offset
		}
		free, err := p.layout.FreePrecession(omegas, resolved)
		if err != nil {
			return nil, fmt.Errorf("Simulate %s offset=%g: %w", p.Name, offset, err)
		}

		if p.cfg.B1.Infinite() {
			out[i], err = p.propagateIdeal(free, mag0Start)
		} else {
			out[i], err = p.propagateAveraged(free, mag0Start)
		}
		if err != nil {
			return nil, fmt.Errorf("Simulate %s offset=%g: %w", p.Name, offset, err)
		}
	}

	return out, nil
}

// propagateIdeal implements the infinite-field regime: eigendecompose the
// nominal Liouvillian, drop oscillatory modes, and rebuild the propagator on
// the observable × start subspaces.
func (p *Profile) propagateIdeal(free *mat.Dense, mag0Start []float64) (float64, error) {
	var liou mat.Dense
	liou.Add(free, p.rfParts[0])

	var eig mat.Eigen
	if !eig.Factorize(&liou, mat.EigenRight) {
		return 0, ErrEigenFailed
	}
	vals := eig.Values(nil)
	var vec mat.CDense
	eig.VectorsTo(&vec)

	inv, err := cxmat.Inverse(&vec)
	if err != nil {
		return 0, err
	}

	// Keep only the slowly-varying manifold; purely oscillatory modes are
	// inconsistent with the ideal-decoupling assumption.
	modes := make([]int, 0, len(vals))
	for k, v := range vals {
		if math.Abs(imag(v)) < p.cfg.ImagTolerance {
			modes = append(modes, k)
		}
	}

	prop, err := cxmat.EigenPropagator(vals, &vec, inv, modes, p.cfg.TimeT1, []int{p.obsRow}, p.start)
	if err != nil {
		return 0, err
	}

	mag := make([]complex128, len(mag0Start))
	for i, v := range mag0Start {
		mag[i] = complex(v, 0)
	}
	res, err := cxmat.MulVec(prop, mag)
	if err != nil {
		return 0, err
	}

	// Only the real part is physical.
	return real(res[0]), nil
}

// propagateAveraged implements the finite-field regime: full matrix
// exponential per field scale, weighted average over the distribution, then
// restriction to the observable × start subspaces.
func (p *Profile) propagateAveraged(free *mat.Dense, mag0Start []float64) (float64, error) {
	props := make([]*mat.Dense, len(p.rfParts))
	for k, rf := range p.rfParts {
		var liou mat.Dense
		liou.Add(free, rf)
		liou.Scale(p.cfg.TimeT1, &liou)

		var prop mat.Dense
		prop.Exp(&liou)
		props[k] = &prop
	}

	avg, err := p.cfg.B1.AverageDense(props)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for j, col := range p.start {
		sum += avg.At(p.obsRow, col) * mag0Start[j]
	}

	return sum, nil
}

// FilterOffsets applies the on-resonance selection filter: points whose
// offset lies within widthHz/2 of the minor-state resonance (csB, ppm) are
// removed from every measurement slice under a single keep-mask. Re-applying
// with the same shift and width removes nothing further.
func (p *Profile) FilterOffsets(csB, widthHz float64) {
	resonanceHz := (csB - p.cfg.CarrierPPM) * p.ppmToRad / (2 * math.Pi)

	keep := p.Offsets[:0]
	keepVal := p.Intensities[:0]
	keepErr := p.IntensityErrs[:0]
	keepRef := p.Reference[:0]
	for i, off := range p.Offsets {
		if math.Abs(resonanceHz-off) > widthHz*0.5 {
			keep = append(keep, off)
			keepVal = append(keepVal, p.Intensities[i])
			keepErr = append(keepErr, p.IntensityErrs[i])
			keepRef = append(keepRef, p.Reference[i])
		}
	}
	p.Offsets = keep
	p.Intensities = keepVal
	p.IntensityErrs = keepErr
	p.Reference = keepRef
}
