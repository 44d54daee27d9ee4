package liouville

import "fmt"

// Topology is the closed set of supported exchange models. It is selected
// once at profile construction (the ingestion layer maps metadata strings to
// a Topology); no string inspection happens at simulation time.
type Topology int

const (
	// TwoState models A ⇄ B exchange.
	TwoState Topology = iota
	// ThreeState models exchange over the A/B/C triangle.
	ThreeState
	// FourState models all-pairs exchange between A, B, C and D.
	FourState
)

// componentsPerState is the number of real magnetization components per
// exchanging state: Ix, Iy, Iz.
const componentsPerState = 3

// stateLetters names the states in basis order.
const stateLetters = "abcd"

// States returns the number of exchanging states, or 0 for an invalid topology.
func (t Topology) States() int {
	switch t {
	case TwoState:
		return 2
	case ThreeState:
		return 3
	case FourState:
		return 4
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (t Topology) String() string {
	switch t {
	case TwoState:
		return "2st"
	case ThreeState:
		return "3st"
	case FourState:
		return "4st"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// Pairs returns the exchange pathways of the topology as ordered state-index
// pairs: AB for two states, AB/AC/BC for three, all six pairs for four.
func (t Topology) Pairs() [][2]int {
	n := t.States()
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	return pairs
}

// StateLetter returns the lowercase letter naming state s (0 → "a").
func StateLetter(s int) string {
	return string(stateLetters[s])
}

// PairName returns the canonical exchange-rate identifier for the pair (i, j),
// e.g. PairName(0, 1) == "kex_ab".
func PairName(i, j int) string {
	return "kex_" + StateLetter(i) + StateLetter(j)
}

// Layout is the fixed, validated index record of a state-space basis. It is
// created once per profile and immutable thereafter.
type Layout struct {
	topology Topology
	nStates  int
	dim      int
}

// NewLayout validates the topology and returns its basis layout.
func NewLayout(t Topology) (Layout, error) {
	n := t.States()
	if n == 0 {
		return Layout{}, fmt.Errorf("NewLayout: %v: %w", t, ErrBadTopology)
	}

	return Layout{topology: t, nStates: n, dim: componentsPerState*n + 1}, nil
}

// Topology returns the exchange topology the layout was built for.
func (l Layout) Topology() Topology { return l.topology }

// States returns the number of exchanging states.
func (l Layout) States() int { return l.nStates }

// Dim returns the basis dimension, 3·States + 1.
func (l Layout) Dim() int { return l.dim }

// Ix returns the basis row of the x magnetization of state s.
func (l Layout) Ix(s int) int { return componentsPerState * s }

// Iy returns the basis row of the y magnetization of state s.
func (l Layout) Iy(s int) int { return componentsPerState*s + 1 }

// Iz returns the basis row of the z magnetization of state s.
func (l Layout) Iz(s int) int { return componentsPerState*s + 2 }

// Unity returns the row of the constant unity component.
func (l Layout) Unity() int { return l.dim - 1 }

// IzEq returns the post-equilibration start group: every Iz row followed by
// the unity row. The returned slice is freshly allocated.
func (l Layout) IzEq() []int {
	idx := make([]int, 0, l.nStates+1)
	for s := 0; s < l.nStates; s++ {
		idx = append(idx, l.Iz(s))
	}

	return append(idx, l.Unity())
}
