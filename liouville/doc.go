// Package liouville defines the state-space models for 2-, 3- and 4-state
// chemical exchange and builds the Liouvillian matrices that govern
// magnetization evolution under chemical-shift offsets, relaxation,
// radiofrequency irradiation and exchange kinetics.
//
// 🧭 Basis
//
//	Each exchanging state s contributes three real magnetization components
//	[Ix(s), Iy(s), Iz(s)]; a trailing unity component closes the affine
//	relaxation term (R1 return toward thermal equilibrium) into a linear one.
//	For N states the basis dimension is 3·N + 1 and the ordering is fixed:
//
//	  [ Ix(a), Iy(a), Iz(a), ..., Ix(n), Iy(n), Iz(n), E ]
//
//	Layout exposes the index groups used by the simulation engines: the
//	per-state component rows, the equilibrium start group IzEq (all Iz rows
//	plus the unity row) and the per-state observable rows.
//
// ⚙️ Builders
//
//	FreePrecession assembles the offset/relaxation/exchange part of the
//	Liouvillian, RFMatrix the field-dependent part (rotation about x at
//	omega1x); Build is their sum. All builders are pure: they allocate a fresh
//	dense matrix per call and never cache across parameter sets.
//
// Parameters travel as a Set keyed by canonical identifiers (pb, kex_ab,
// dw_i_ab, r1_i_a, r2_i_a, cs_i_a, ...). Derived parameters (minor-state
// relaxation rates tied to state A) are expressed as an explicit Linkage
// table resolved by lookup, never by expression evaluation.
package liouville
