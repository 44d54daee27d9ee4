package cest

import (
	"github.com/aestelle/ChemEx/liouville"
	"github.com/aestelle/ChemEx/rffield"
)

const (
	// DefaultImagTolerance is the eigenmode filter threshold (rad/s) of the
	// ideal-field regime: modes whose eigenvalue imaginary part exceeds it are
	// discarded as oscillatory. A fixed heuristic; override via Config.
	DefaultImagTolerance = 0.1

	// DefaultTimeD1 is the equilibration delay in seconds when none is given.
	DefaultTimeD1 = 1.0

	// ReferenceOffsetCutoff marks measurement points as reference scans when
	// the irradiation offset magnitude (Hz) exceeds it — far enough off
	// resonance that the saturation block has no effect.
	ReferenceOffsetCutoff = 1.0e4
)

// Config carries the per-experiment constants of a CEST profile.
//
// Fields:
//   - Nucleus      — lowercase nucleus symbol of the observed spin (e.g. "n").
//   - HLarmorFrq   — proton Larmor frequency of the spectrometer, MHz.
//   - CarrierPPM   — irradiation carrier position, ppm.
//   - TimeT1       — duration of the CEST irradiation block, s.
//   - TimeD1       — equilibration delay before the block, s (0 ⇒ DefaultTimeD1).
//   - B1Frq        — nominal B1 field amplitude, Hz.
//   - B1           — field-inhomogeneity distribution; rffield.Infinite()
//     selects the ideal eigenmode-filtered regime.
//   - Topology     — exchange model; selected once here, never re-inspected.
//   - ObservedState— basis state whose z magnetization is read out
//     (0 = A, 1 = B, ...). Zero value observes the major state A; set 1 for
//     the equilibrium-variant minor-state readout.
//   - ImagTolerance— eigenmode filter threshold (0 ⇒ DefaultImagTolerance).
type Config struct {
	Nucleus       string
	HLarmorFrq    float64
	CarrierPPM    float64
	TimeT1        float64
	TimeD1        float64
	B1Frq         float64
	B1            rffield.Distribution
	Topology      liouville.Topology
	ObservedState int
	ImagTolerance float64
}
