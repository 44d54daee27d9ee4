package nmr

import "fmt"

// gamma holds gyromagnetic ratios in rad/s/T, keyed by lowercase nucleus symbol.
var gamma = map[string]float64{
	"h": 26.7522128e+07,
	"n": -2.71261804e+07,
	"c": 6.728284e+07,
	"f": 25.18148e+07,
	"p": 10.8394e+07,
}

// xiRatio holds nuclide frequency ratios with respect to the proton.
var xiRatio = map[string]float64{
	"h": 100.0000000e-02,
	"q": 100.0000000e-02,
	"n": 10.1329118e-02,
	"c": 25.1449530e-02,
	"f": 40.4808636e-02,
}

// jCouplings holds residue-specific scalar couplings with neighbouring
// carbons, in Hz. Keyed by one-letter residue code, then atom name. The empty
// residue code is the backbone-only fallback.
var jCouplings = map[string]map[string][]float64{
	"a": {
		"n":  {7.7, 10.7, 14.4},
		"c":  {52.0, 14.4},
		"ca": {52.0, 35.0},
		"cb": {35.0},
	},
	"c": {
		"n":  {7.7, 10.7, 14.4},
		"c":  {52.0, 14.4},
		"ca": {52.0, 35.0},
		"cb": {35.0},
	},
	"d": {
		"n":  {7.7, 10.7, 14.4},
		"c":  {52.0, 14.4},
		"ca": {52.0, 35.0},
		"cb": {35.0, 51.0},
	},
	"e": {
		"n":  {7.7, 10.7, 14.4},
		"c":  {52.0, 14.4},
		"ca": {52.0, 35.0},
		"cb": {35.0, 35.0},
		"cg": {35.0, 51.0},
	},
	"f": {
		"n":  {7.7, 10.7, 14.4},
		"c":  {52.0, 14.4},
		"ca": {52.0, 35.0},
		"cb": {35.0, 51.0},
	},
	"g": {
		"n":  {7.7, 10.7, 14.4},
		"c":  {52.0, 14.4},
		"ca": {52.0},
	},
	"h": {
		"n":   {7.7, 10.7, 14.4},
		"c":   {52.0, 14.4},
		"ca":  {52.0, 35.0},
		"cb":  {35.0, 51.0},
		"cg":  {51.0, 72.0},
		"cd2": {72.0},
		"ce1": {},
	},
	"i": {
		"n":   {7.7, 10.7, 14.4},
		"c":   {52.0, 14.4},
		"ca":  {52.0, 35.0},
		"cb":  {35.0, 35.0, 35.0},
		"cg1": {35.0, 35.0},
		"cg2": {35.0},
		"cd1": {35.0},
	},
	"k": {
		"n":  {7.7, 10.7, 14.4},
		"c":  {52.0, 14.4},
		"ca": {52.0, 35.0},
		"cb": {35.0, 35.0},
		"cg": {35.0, 35.0},
		"cd": {35.0, 35.0},
		"ce": {35.0},
	},
	"l": {
		"n":   {7.7, 10.7, 14.4},
		"c":   {52.0, 14.4},
		"ca":  {52.0, 35.0},
		"cb":  {35.0, 35.0},
		"cg":  {35.0, 35.0, 35.0},
		"cd1": {35.0},
		"cd2": {35.0},
	},
	"m": {
		"n":  {7.7, 10.7, 14.4},
		"c":  {52.0, 14.4},
		"ca": {52.0, 35.0},
		"cb": {35.0, 35.0},
		"cg": {35.0},
		"ce": {},
	},
	"n": {
		"n":  {7.7, 10.7, 14.4},
		"c":  {52.0, 14.4},
		"ca": {52.0, 35.0},
		"cb": {35.0, 51.0},
	},
	"p": {
		"n":  {7.7, 10.7, 14.4},
		"c":  {52.0, 14.4},
		"ca": {52.0, 35.0},
		"cb": {35.0, 35.0},
		"cg": {35.0, 35.0},
		"cd": {35.0},
	},
	"q": {
		"n":  {7.7, 10.7, 14.4},
		"c":  {52.0, 14.4},
		"ca": {52.0, 35.0},
		"cb": {35.0, 35.0},
		"cg": {35.0, 51.0},
	},
	"r": {
		"n":  {7.7, 10.7, 14.4},
		"c":  {52.0, 14.4},
		"ca": {52.0, 35.0},
		"cb": {35.0, 35.0},
		"cg": {35.0, 35.0},
		"cd": {35.0},
	},
	"s": {
		"n":  {7.7, 10.7, 14.4},
		"c":  {52.0, 14.4},
		"ca": {52.0, 35.0},
		"cb": {35.0},
	},
	"t": {
		"n":   {7.7, 10.7, 14.4},
		"c":   {52.0, 14.4},
		"ca":  {52.0, 35.0},
		"cb":  {35.0, 35.0},
		"cg2": {35.0},
	},
	"v": {
		"n":   {7.7, 10.7, 14.4},
		"c":   {52.0, 14.4},
		"ca":  {52.0, 35.0},
		"cb":  {35.0, 35.0, 35.0},
		"cg1": {35.0},
		"cg2": {35.0},
	},
	"w": {
		"n":  {7.7, 10.7, 14.4},
		"c":  {52.0, 14.4},
		"ca": {52.0, 35.0},
		"cb": {35.0, 51.0},
	},
	"y": {
		"n":  {7.7, 10.7, 14.4},
		"c":  {52.0, 14.4},
		"ca": {52.0, 35.0},
		"cb": {35.0, 51.0},
	},
	"": {
		"n": {7.7, 10.7, 14.4},
		"c": {52.0, 14.4},
	},
}

// scalarCouplings holds one-bond couplings for common moieties, in Hz.
var scalarCouplings = map[string]float64{
	"amide_hn":     -92.0,
	"methyl_ch":    125.0,
	"methylene_ch": 130.0,
	"aromatic_ch":  180.0,
}

// Gamma returns the gyromagnetic ratio of the nucleus in rad/s/T.
func Gamma(nucleus string) (float64, error) {
	g, ok := gamma[nucleus]
	if !ok {
		return 0, fmt.Errorf("Gamma: %q: %w", nucleus, ErrUnknownNucleus)
	}

	return g, nil
}

// XiRatio returns the frequency ratio of the nucleus with respect to the proton.
func XiRatio(nucleus string) (float64, error) {
	xi, ok := xiRatio[nucleus]
	if !ok {
		return 0, fmt.Errorf("XiRatio: %q: %w", nucleus, ErrUnknownNucleus)
	}

	return xi, nil
}

// JCouplings returns the scalar couplings (Hz) of the named atom with its
// neighbouring carbons for the given one-letter residue code. The returned
// slice is shared; callers must not mutate it.
func JCouplings(residue, atom string) ([]float64, error) {
	byAtom, ok := jCouplings[residue]
	if !ok {
		return nil, fmt.Errorf("JCouplings: residue %q: %w", residue, ErrUnknownResidue)
	}
	j, ok := byAtom[atom]
	if !ok {
		return nil, fmt.Errorf("JCouplings: residue %q atom %q: %w", residue, atom, ErrUnknownCoupling)
	}

	return j, nil
}

// ScalarCoupling returns the named one-bond coupling in Hz.
func ScalarCoupling(name string) (float64, error) {
	j, ok := scalarCouplings[name]
	if !ok {
		return 0, fmt.Errorf("ScalarCoupling: %q: %w", name, ErrUnknownCoupling)
	}

	return j, nil
}
