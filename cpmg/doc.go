// Package cpmg implements the CPMG (Carr–Purcell–Meiboom–Gill)
// relaxation-dispersion profile engine.
//
// A profile records intensities against refocusing cycle counts (ncyc). For
// each cycle count the engine propagates transverse magnetization through
// the pulse train [τ — 180x — τ] repeated 2·ncyc times, with
// τ = time_t2 / (4·ncyc), using matrix exponentials of the same exchange
// Liouvillian the CEST engine builds; ncyc = 0 is the reference scan with no
// CPMG block. Effective transverse relaxation rates derive from intensity
// ratios via R2eff.
package cpmg
