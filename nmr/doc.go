// Package nmr provides the static physical-constant tables used throughout
// the simulation packages: gyromagnetic ratios, nuclide frequency ratios
// relative to the proton, and residue-specific scalar couplings.
//
// All lookups are read-only and safe for concurrent use. Missing keys are
// configuration errors and are reported via the package sentinels
// (ErrUnknownNucleus, ErrUnknownResidue, ErrUnknownCoupling) so callers can
// fail fast at profile construction rather than mid-simulation.
//
// Sources:
//   - gyromagnetic ratios: Harris et al, Concepts in Magn. Reson. (2002) 14, p326
//   - frequency ratios: Markley et al, Pure & Appl. Chem. (1998) 70, p117
package nmr
