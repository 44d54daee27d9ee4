package liouville

import (
	"fmt"
	"strings"
)

// Default parameter values (single source of truth for DefaultParams).
const (
	// DefaultPB is the default minor-state population.
	DefaultPB = 0.05
	// DefaultPMinor is the default population of states C and D when present.
	DefaultPMinor = 0.02
	// DefaultKexAB is the default A⇄B exchange rate in /s.
	DefaultKexAB = 200.0
	// DefaultR1 is the default longitudinal relaxation rate in /s.
	DefaultR1 = 1.5
	// DefaultR2 is the default transverse relaxation rate in /s.
	DefaultR2 = 10.0
)

// Set maps canonical parameter identifiers to values. Populations are carried
// as minor-state fractions (pb, pc, pd); pa is derived as the remainder.
// Chemical shifts (cs_i_*) and shift differences (dw_i_*) are in ppm,
// exchange and relaxation rates in /s.
type Set map[string]float64

// Get returns the value for name, or fallback when absent.
func (s Set) Get(name string, fallback float64) float64 {
	if v, ok := s[name]; ok {
		return v
	}

	return fallback
}

// Clone returns a deep copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}

	return out
}

// Linkage records derived parameters: each entry ties a derived identifier to
// the source identifier whose value it copies. This replaces expression-based
// constraints; derivation is plain lookup.
type Linkage map[string]string

// Resolve returns a copy of the set with every derived parameter overwritten
// by its source value. Entries whose source is absent are left untouched.
func (s Set) Resolve(link Linkage) Set {
	out := s.Clone()
	for derived, source := range link {
		if v, ok := out[source]; ok {
			out[derived] = v
		}
	}

	return out
}

// ParamNames returns every canonical parameter identifier of the topology, in
// a stable order: populations, exchange rates, then per-state r1/r2/cs and
// the dw_i_a* shift differences.
func ParamNames(t Topology) []string {
	n := t.States()
	names := make([]string, 0, 4*n+n*(n-1)/2)
	for s := 1; s < n; s++ {
		names = append(names, "p"+StateLetter(s))
	}
	for _, pair := range t.Pairs() {
		names = append(names, PairName(pair[0], pair[1]))
	}
	for s := 0; s < n; s++ {
		names = append(names, "r1_i_"+StateLetter(s))
	}
	for s := 0; s < n; s++ {
		names = append(names, "r2_i_"+StateLetter(s))
	}
	for s := 0; s < n; s++ {
		names = append(names, "cs_i_"+StateLetter(s))
	}
	for s := 1; s < n; s++ {
		names = append(names, "dw_i_a"+StateLetter(s))
	}

	return names
}

// DefaultParams returns an immutable-by-convention default parameter set for
// the topology. It is a pure factory: no registry, no side effects.
func DefaultParams(t Topology) Set {
	n := t.States()
	p := make(Set)
	if n > 1 {
		p["pb"] = DefaultPB
		p[PairName(0, 1)] = DefaultKexAB
	}
	for s := 2; s < n; s++ {
		p["p"+StateLetter(s)] = DefaultPMinor
	}
	for _, pair := range t.Pairs() {
		if _, ok := p[PairName(pair[0], pair[1])]; !ok {
			p[PairName(pair[0], pair[1])] = 0.0
		}
	}
	for s := 0; s < n; s++ {
		p["r1_i_"+StateLetter(s)] = DefaultR1
		p["r2_i_"+StateLetter(s)] = DefaultR2
	}
	// Minor-state shifts default through dw_i_a*; see StateShifts.
	p["cs_i_a"] = 0.0
	for s := 1; s < n; s++ {
		p["dw_i_a"+StateLetter(s)] = 0.0
	}

	return p
}

// DefaultLinkage ties the minor-state relaxation rates to state A: r1 and r2
// of states B, C and D copy the A values until a fit releases them.
func DefaultLinkage(t Topology) Linkage {
	link := make(Linkage)
	for s := 1; s < t.States(); s++ {
		link["r1_i_"+StateLetter(s)] = "r1_i_a"
		link["r2_i_"+StateLetter(s)] = "r2_i_a"
	}

	return link
}

// Condition identifies the experimental condition a parameter belongs to.
// Nucleus is the resonance name (e.g. "g23n-h"), HLarmorFrq the proton Larmor
// frequency in MHz, Temperature in Celsius.
type Condition struct {
	Nucleus     string
	Temperature float64
	HLarmorFrq  float64
}

// MapNames maps every canonical parameter identifier of the topology to its
// fully-qualified handle. Kinetic parameters (populations, exchange rates)
// are shared across nuclei and qualified by temperature only; spin-specific
// parameters carry nucleus, temperature and field.
func MapNames(t Topology, c Condition) map[string]string {
	nucleus := strings.ToLower(strings.ReplaceAll(c.Nucleus, "-", "_"))
	names := make(map[string]string)
	for _, name := range ParamNames(t) {
		if strings.HasPrefix(name, "p") || strings.HasPrefix(name, "kex_") {
			names[name] = fmt.Sprintf("%s__%.0fc", name, c.Temperature)
			continue
		}
		names[name] = fmt.Sprintf("%s__%s_%.0fc_%.0fmhz", name, nucleus, c.Temperature, c.HLarmorFrq)
	}

	return names
}

// Populations derives the per-state population vector from the minor-state
// fractions in the set. State A takes the remainder. Fractions must lie in
// [0, 1] and sum to at most 1.
func (t Topology) Populations(p Set) ([]float64, error) {
	n := t.States()
	pops := make([]float64, n)
	minor := 0.0
	for s := 1; s < n; s++ {
		f := p.Get("p"+StateLetter(s), 0.0)
		if f < 0 || f > 1 {
			return nil, fmt.Errorf("Populations: p%s=%g: %w", StateLetter(s), f, ErrBadPopulation)
		}
		pops[s] = f
		minor += f
	}
	if minor > 1 {
		return nil, fmt.Errorf("Populations: minor fractions sum to %g: %w", minor, ErrBadPopulation)
	}
	pops[0] = 1 - minor

	return pops, nil
}

// StateShifts returns the per-state chemical shifts in ppm. A minor state
// falls back to cs_i_a + dw_i_a<s> when its cs_i_<s> entry is absent.
func StateShifts(t Topology, p Set) []float64 {
	n := t.States()
	csA := p.Get("cs_i_a", 0.0)
	shifts := make([]float64, n)
	shifts[0] = csA
	for s := 1; s < n; s++ {
		if v, ok := p["cs_i_"+StateLetter(s)]; ok {
			shifts[s] = v
			continue
		}
		shifts[s] = csA + p.Get("dw_i_a"+StateLetter(s), 0.0)
	}

	return shifts
}
