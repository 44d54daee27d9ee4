package liouville

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// RFMatrix returns the field-dependent Liouvillian component: a rotation
// about x at omega1x rad/s applied to every state. It depends only on the
// layout and the RF amplitude, so engines precompute one per field scale.
func (l Layout) RFMatrix(omega1x float64) *mat.Dense {
	m := mat.NewDense(l.dim, l.dim, nil)
	for s := 0; s < l.nStates; s++ {
		m.Set(l.Iy(s), l.Iz(s), -omega1x)
		m.Set(l.Iz(s), l.Iy(s), omega1x)
	}

	return m
}

// FreePrecession assembles the RF-independent Liouvillian component for one
// instantaneous condition: chemical-shift precession at the given per-state
// offsets (rad/s), transverse and longitudinal relaxation, population-weighted
// exchange, and the R1·p feed from the unity column that drives z
// magnetization back toward thermal equilibrium.
//
// The parameter set must be linkage-resolved; offsets must cover every state.
func (l Layout) FreePrecession(offsets []float64, p Set) (*mat.Dense, error) {
	if len(offsets) < l.nStates {
		return nil, fmt.Errorf("FreePrecession: got %d offsets for %d states: %w",
			len(offsets), l.nStates, ErrBadOffsets)
	}
	pops, err := l.topology.Populations(p)
	if err != nil {
		return nil, fmt.Errorf("FreePrecession: %w", err)
	}

	m := mat.NewDense(l.dim, l.dim, nil)

	// Per-state precession, relaxation, and equilibrium feed.
	for s := 0; s < l.nStates; s++ {
		letter := StateLetter(s)
		r1 := p.Get("r1_i_"+letter, 0.0)
		r2 := p.Get("r2_i_"+letter, 0.0)
		w := offsets[s]

		m.Set(l.Ix(s), l.Ix(s), -r2)
		m.Set(l.Iy(s), l.Iy(s), -r2)
		m.Set(l.Iz(s), l.Iz(s), -r1)
		m.Set(l.Ix(s), l.Iy(s), -w)
		m.Set(l.Iy(s), l.Ix(s), w)
		m.Set(l.Iz(s), l.Unity(), r1*pops[s])
	}

	// Pairwise exchange. kex_ij splits into forward/backward rates weighted by
	// the destination population; the column sums of the exchange terms vanish,
	// which is what conserves total probability.
	for _, pair := range l.topology.Pairs() {
		i, j := pair[0], pair[1]
		kex := p.Get(PairName(i, j), 0.0)
		if kex == 0 {
			continue
		}
		total := pops[i] + pops[j]
		if total == 0 {
			continue
		}
		kij := kex * pops[j] / total // i → j
		kji := kex * pops[i] / total // j → i
		for c := 0; c < componentsPerState; c++ {
			ri := componentsPerState*i + c
			rj := componentsPerState*j + c
			m.Set(ri, ri, m.At(ri, ri)-kij)
			m.Set(rj, ri, m.At(rj, ri)+kij)
			m.Set(rj, rj, m.At(rj, rj)-kji)
			m.Set(ri, rj, m.At(ri, rj)+kji)
		}
	}

	return m, nil
}

// Build returns the full Liouvillian for one (offsets, omega1x) condition:
// FreePrecession plus RFMatrix.
func (l Layout) Build(offsets []float64, omega1x float64, p Set) (*mat.Dense, error) {
	free, err := l.FreePrecession(offsets, p)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	free.Add(free, l.RFMatrix(omega1x))

	return free, nil
}

// EquilibriumAfterD1 computes the initial magnetization vector after the
// equilibration delay timeD1: starting from saturation (zero magnetization,
// unity component 1), z magnetization recovers toward the thermal populations
// through the RF-free Liouvillian. timeD1 = 0 models full saturation; a long
// delay converges to [Iz(s) = p_s].
func (l Layout) EquilibriumAfterD1(timeD1 float64, p Set) (*mat.VecDense, error) {
	if timeD1 < 0 {
		return nil, fmt.Errorf("EquilibriumAfterD1: time_d1=%g: %w", timeD1, ErrBadDuration)
	}

	v0 := mat.NewVecDense(l.dim, nil)
	v0.SetVec(l.Unity(), 1.0)
	if timeD1 == 0 {
		return v0, nil
	}

	free, err := l.FreePrecession(make([]float64, l.nStates), p)
	if err != nil {
		return nil, fmt.Errorf("EquilibriumAfterD1: %w", err)
	}
	free.Scale(timeD1, free)

	var prop mat.Dense
	prop.Exp(free)

	out := mat.NewVecDense(l.dim, nil)
	out.MulVec(&prop, v0)

	return out, nil
}
