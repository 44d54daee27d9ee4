// Package cest implements the CEST (chemical exchange saturation transfer)
// profile simulation engine and its data-selection filter.
//
// 🧪 Model
//
//	A Profile holds one residue's measurement arrays (irradiation offsets,
//	intensities, uncertainties, reference mask) plus the experiment constants.
//	Construction precomputes the field-dependent Liouvillian components — one
//	per point of the B1 inhomogeneity distribution — and the basis layout;
//	both are immutable afterwards, so distinct profiles may simulate
//	concurrently. Per-call state is fully local.
//
// ⚙️ Simulation
//
//	Simulate converts the per-state chemical shifts from ppm to angular
//	offsets relative to the carrier, equilibrates the initial magnetization
//	over time_d1 once, then per irradiation offset assembles the Liouvillian
//	and computes the propagator over time_t1 in one of two regimes:
//
//	  - ideal field (rffield.Infinite): eigendecompose the nominal
//	    Liouvillian, keep only eigenmodes with |Im λ| below ImagTolerance,
//	    and rebuild the propagator restricted to the observable and start
//	    subspaces from the filtered modes;
//	  - finite field: matrix-exponentiate every field-scale Liouvillian and
//	    take the weighted average under the distribution, then restrict.
//
//	The real part of the projected result is the predicted intensity; one
//	value per offset, in input order. Numerical failures (singular
//	eigenvector matrix, non-convergent eigendecomposition) surface as errors
//	carrying the profile name and the offending offset.
//
// The on-resonance filter excludes measurement points whose offset lies
// within half the configured width of the minor-state resonance, mutating all
// measurement arrays in place under one keep-mask; it is idempotent.
//
// The calculation follows the pure in-phase CEST experiment of
// J Am Chem Soc (2012), 134, 8148-8161.
package cest
