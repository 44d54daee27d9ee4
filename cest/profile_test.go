package cest_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aestelle/ChemEx/cest"
	"github.com/aestelle/ChemEx/liouville"
	"github.com/aestelle/ChemEx/nmr"
	"github.com/aestelle/ChemEx/rffield"
)

// singleScale returns a one-point finite distribution of weight 1.
func singleScale(t *testing.T) rffield.Distribution {
	t.Helper()
	d, err := rffield.New([]float64{1}, []float64{1})
	require.NoError(t, err)

	return d
}

// flat returns n equal measurement values for profile construction.
func flat(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// TestNewProfile_Validation covers the construction-time failure modes.
func TestNewProfile_Validation(t *testing.T) {
	cfg := cest.Config{
		Nucleus: "n", HLarmorFrq: 500, TimeT1: 0.5,
		B1Frq: 25, B1: singleScale(t), Topology: liouville.TwoState,
	}

	_, err := cest.NewProfile("g23n", []float64{1, 2}, []float64{1}, []float64{1, 1}, cfg)
	assert.ErrorIs(t, err, cest.ErrLengthMismatch)

	bad := cfg
	bad.Nucleus = "xe"
	_, err = cest.NewProfile("g23n", []float64{1}, []float64{1}, []float64{1}, bad)
	assert.ErrorIs(t, err, nmr.ErrUnknownNucleus)

	bad = cfg
	bad.TimeT1 = 0
	_, err = cest.NewProfile("g23n", []float64{1}, []float64{1}, []float64{1}, bad)
	assert.ErrorIs(t, err, cest.ErrBadConfig)

	bad = cfg
	bad.ObservedState = 3
	_, err = cest.NewProfile("g23n", []float64{1}, []float64{1}, []float64{1}, bad)
	assert.ErrorIs(t, err, cest.ErrBadConfig)
}

// TestSimulate_NoExchangeIsSingleStateDecay: with pb = 0, kex_ab = 0 and no
// RF field, the observed magnetization follows the closed-form single-state
// recovery p_a + (z0 − p_a)·exp(−r1·t1), independent of the offset set and of
// the minor-state shift difference.
func TestSimulate_NoExchangeIsSingleStateDecay(t *testing.T) {
	const (
		r1     = 1.5
		timeT1 = 0.5
		timeD1 = 0.8
	)
	offsets := []float64{-2000, -500, 100, 500, 2000}

	cfg := cest.Config{
		Nucleus: "n", HLarmorFrq: 500, CarrierPPM: 118,
		TimeT1: timeT1, TimeD1: timeD1,
		B1Frq: 0, B1: singleScale(t), Topology: liouville.TwoState,
	}
	p, err := cest.NewProfile("g23n", offsets, flat(5, 1), flat(5, 0.02), cfg)
	require.NoError(t, err)

	params := liouville.Set{
		"pb": 0, "kex_ab": 0,
		"r1_i_a": r1, "r2_i_a": 15,
		"cs_i_a": 118, "dw_i_ab": 2.0,
	}
	got, err := p.Simulate(params)
	require.NoError(t, err)

	z0 := 1 - math.Exp(-r1*timeD1)
	want := 1 + (z0-1)*math.Exp(-r1*timeT1)
	for i := range got {
		assert.InDelta(t, want, got[i], 1e-9, "offset %g", offsets[i])
	}

	// pb = 0 makes the minor-state shift unobservable.
	params["dw_i_ab"] = 7.5
	again, err := p.Simulate(params)
	require.NoError(t, err)
	assert.InDeltaSlice(t, got, again, 1e-12, "dw must not matter at pb=0")
}

// TestSimulate_RegimesAgree: the ideal eigenmode-filtered regime and the
// finite regime with a single unit scale must agree once the oscillatory
// modes have fully decayed over time_t1.
func TestSimulate_RegimesAgree(t *testing.T) {
	offsets := []float64{-800, -200, 150, 600}
	params := liouville.Set{
		"pb": 0.04, "kex_ab": 300,
		"r1_i_a": 1.5, "r2_i_a": 20,
		"cs_i_a": 0, "dw_i_ab": 1.2,
	}
	base := cest.Config{
		Nucleus: "n", HLarmorFrq: 600, CarrierPPM: 0,
		TimeT1: 2.0, TimeD1: 1.0,
		B1Frq: 20, Topology: liouville.TwoState,
	}

	ideal := base
	ideal.B1 = rffield.Infinite()
	pIdeal, err := cest.NewProfile("g23n", offsets, flat(4, 1), flat(4, 0.02), ideal)
	require.NoError(t, err)

	finite := base
	finite.B1 = singleScale(t)
	pFinite, err := cest.NewProfile("g23n", offsets, flat(4, 1), flat(4, 0.02), finite)
	require.NoError(t, err)

	a, err := pIdeal.Simulate(params)
	require.NoError(t, err)
	b, err := pFinite.Simulate(params)
	require.NoError(t, err)

	for i := range a {
		assert.InDelta(t, b[i], a[i], 1e-6, "offset %g", offsets[i])
	}
}

// TestSimulate_MinorStateDip reproduces the reference scenario: pb = 0.05,
// kex_ab = 200/s, dw of 2 ppm placing the minor resonance at +500 Hz. The
// profile must dip near +500 Hz relative to the mirrored offset and the far
// off-resonance points.
func TestSimulate_MinorStateDip(t *testing.T) {
	offsets := []float64{-2000, -500, 0, 500, 2000}
	cfg := cest.Config{
		Nucleus: "h", HLarmorFrq: 250, CarrierPPM: 0, // 250 Hz/ppm ⇒ 2 ppm = 500 Hz
		TimeT1: 0.4, TimeD1: 3.0,
		B1Frq: 25, B1: singleScale(t), Topology: liouville.TwoState,
	}
	p, err := cest.NewProfile("hn", offsets, flat(5, 1), flat(5, 0.02), cfg)
	require.NoError(t, err)

	got, err := p.Simulate(liouville.Set{
		"pb": 0.05, "kex_ab": 200,
		"r1_i_a": 1.5, "r2_i_a": 15,
		"cs_i_a": 0, "dw_i_ab": 2.0,
	})
	require.NoError(t, err)

	assert.Less(t, got[3], got[1], "dip at the minor-state resonance vs mirrored offset")
	assert.Less(t, got[3], got[4], "dip at the minor-state resonance vs far off-resonance")
	assert.Less(t, got[2], got[1], "direct saturation at the carrier")
	assert.InDelta(t, got[0], got[4], 0.05, "far off-resonance points are nearly symmetric")
}

// TestSimulate_ReferencePoints: offsets beyond the reference cutoff skip the
// saturation block and report the equilibrated magnetization.
func TestSimulate_ReferencePoints(t *testing.T) {
	offsets := []float64{2.0e4, 100}
	cfg := cest.Config{
		Nucleus: "n", HLarmorFrq: 500, CarrierPPM: 0,
		TimeT1: 0.5, TimeD1: 10.0,
		B1Frq: 25, B1: singleScale(t), Topology: liouville.TwoState,
	}
	p, err := cest.NewProfile("g23n", offsets, flat(2, 1), flat(2, 0.02), cfg)
	require.NoError(t, err)
	assert.True(t, p.Reference[0])
	assert.False(t, p.Reference[1])

	got, err := p.Simulate(liouville.Set{
		"pb": 0.05, "kex_ab": 200, "r1_i_a": 1.5, "r2_i_a": 15,
	})
	require.NoError(t, err)
	// after a long d1 the reference point sits at the thermal population
	assert.InDelta(t, 0.95, got[0], 1e-4)
	assert.Less(t, got[1], got[0], "saturated point decays below the reference")
}

// TestFilterOffsets reproduces the reference filter scenario: width 50 Hz,
// minor resonance at 300 Hz, offsets {250, 290, 310, 1000} → {250, 1000}.
func TestFilterOffsets(t *testing.T) {
	offsets := []float64{250, 290, 310, 1000}
	intensities := []float64{0.91, 0.42, 0.40, 0.97}
	errs := []float64{0.01, 0.02, 0.03, 0.04}

	cfg := cest.Config{
		Nucleus: "h", HLarmorFrq: 300, CarrierPPM: 0, // 300 Hz/ppm ⇒ 1 ppm = 300 Hz
		TimeT1: 0.5, B1Frq: 25, B1: singleScale(t), Topology: liouville.TwoState,
	}
	p, err := cest.NewProfile("hn", offsets, intensities, errs, cfg)
	require.NoError(t, err)

	p.FilterOffsets(1.0, 50)
	assert.Equal(t, []float64{250, 1000}, p.Offsets)
	assert.Equal(t, []float64{0.91, 0.97}, p.Intensities, "arrays stay co-indexed")
	assert.Equal(t, []float64{0.01, 0.04}, p.IntensityErrs)
	assert.Len(t, p.Reference, 2)
	assert.Equal(t, 2, p.Len())

	// idempotent under re-application with the same shift and width
	p.FilterOffsets(1.0, 50)
	assert.Equal(t, []float64{250, 1000}, p.Offsets)
	assert.Equal(t, []float64{0.91, 0.97}, p.Intensities)
}
