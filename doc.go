// Package chemex simulates NMR relaxation-dispersion experiments (CEST and
// CPMG) by evolving a magnetization vector under a Liouvillian that encodes
// chemical shifts, relaxation rates and multi-state chemical exchange.
//
// 🚀 What is ChemEx?
//
//	A numerical engine for fitting chemical-exchange data: it builds the
//	state-space matrix for 2-, 3- or 4-state exchange, propagates
//	magnetization through it — by eigendecomposition in the ideal-field
//	limit or by matrix-exponential averaging over a B1 inhomogeneity
//	distribution — and reduces the result to one predicted intensity per
//	measurement point.
//
// Everything is organized in small focused packages:
//
//	nmr/       — gyromagnetic ratios, frequency ratios, scalar couplings
//	liouville/ — exchange topologies, basis layouts, Liouvillian builders
//	rffield/   — B1 field-inhomogeneity distributions and propagator averaging
//	cxmat/     — complex dense helpers (LU inverse, eigenmode propagators)
//	cest/      — CEST profile engine and on-resonance selection filter
//	cpmg/      — CPMG pulse-train engine and R2eff helpers
//	ingest/    — measurement files and YAML experiment metadata
//	cmd/chemex — simulation CLI
//
// Profiles are immutable after construction and safe to simulate
// concurrently across residues; an external fitting driver varies the
// parameter sets and compares predictions against the measured arrays.
package chemex
