package nmr

import "errors"

var (
	// ErrUnknownNucleus indicates the requested nucleus has no tabulated value.
	ErrUnknownNucleus = errors.New("nmr: unknown nucleus")
	// ErrUnknownResidue indicates the residue code has no scalar-coupling entry.
	ErrUnknownResidue = errors.New("nmr: unknown residue")
	// ErrUnknownCoupling indicates the atom name has no coupling for the residue.
	ErrUnknownCoupling = errors.New("nmr: unknown coupling")
)
