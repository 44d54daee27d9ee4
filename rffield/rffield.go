package rffield

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultResolution is the grid size used by Gaussian when the caller does
// not specify one.
const DefaultResolution = 11

// gaussianCutoff truncates the Gaussian grid at ±2σ around the nominal scale.
const gaussianCutoff = 2.0

var (
	// ErrEmptyDistribution indicates a distribution with no grid points.
	ErrEmptyDistribution = errors.New("rffield: distribution must have at least one point")
	// ErrLengthMismatch indicates scales and weights of different lengths.
	ErrLengthMismatch = errors.New("rffield: scales and weights length mismatch")
	// ErrBadWeight indicates a negative, NaN or Inf weight, or a zero weight sum.
	ErrBadWeight = errors.New("rffield: invalid weights")
	// ErrBadScale indicates a NaN or Inf field scale.
	ErrBadScale = errors.New("rffield: invalid field scale")
	// ErrShapeMismatch indicates matrices of differing shapes passed to AverageDense.
	ErrShapeMismatch = errors.New("rffield: matrix shape mismatch")
	// ErrCountMismatch indicates a matrix count different from the grid size.
	ErrCountMismatch = errors.New("rffield: matrix count does not match distribution")
)

// Distribution is an immutable weighted grid of B1 field scales.
type Distribution struct {
	scales   []float64
	weights  []float64
	infinite bool
}

// New validates and builds a finite distribution from parallel scale and
// weight slices. The slices are copied.
func New(scales, weights []float64) (Distribution, error) {
	if len(scales) == 0 {
		return Distribution{}, fmt.Errorf("New: %w", ErrEmptyDistribution)
	}
	if len(scales) != len(weights) {
		return Distribution{}, fmt.Errorf("New: %d scales, %d weights: %w",
			len(scales), len(weights), ErrLengthMismatch)
	}
	sum := 0.0
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return Distribution{}, fmt.Errorf("New: weight[%d]=%g: %w", i, w, ErrBadWeight)
		}
		if math.IsNaN(scales[i]) || math.IsInf(scales[i], 0) {
			return Distribution{}, fmt.Errorf("New: scale[%d]=%g: %w", i, scales[i], ErrBadScale)
		}
		sum += w
	}
	if sum == 0 {
		return Distribution{}, fmt.Errorf("New: zero weight sum: %w", ErrBadWeight)
	}

	d := Distribution{
		scales:  make([]float64, len(scales)),
		weights: make([]float64, len(weights)),
	}
	copy(d.scales, scales)
	copy(d.weights, weights)

	return d, nil
}

// Infinite returns the ideal-field sentinel distribution: a single nominal
// scale of weight 1 with the infinite flag set.
func Infinite() Distribution {
	return Distribution{scales: []float64{1}, weights: []float64{1}, infinite: true}
}

// Gaussian builds an n-point grid of scales centred on nominal with standard
// deviation spread (in scale units), truncated at ±2σ, with Gaussian weights.
// spread = 0 or n = 1 collapses to a single point of weight 1.
func Gaussian(nominal, spread float64, n int) (Distribution, error) {
	if n <= 0 {
		n = DefaultResolution
	}
	if spread == 0 || n == 1 {
		return New([]float64{nominal}, []float64{1})
	}
	scales := make([]float64, n)
	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		x := -gaussianCutoff + 2*gaussianCutoff*float64(i)/float64(n-1)
		scales[i] = nominal + x*spread
		weights[i] = math.Exp(-x * x / 2)
	}

	return New(scales, weights)
}

// Infinite reports whether the distribution is the ideal-field sentinel.
func (d Distribution) Infinite() bool { return d.infinite }

// Len returns the number of grid points.
func (d Distribution) Len() int { return len(d.scales) }

// Scale returns the i-th field scale.
func (d Distribution) Scale(i int) float64 { return d.scales[i] }

// Weight returns the i-th weight.
func (d Distribution) Weight(i int) float64 { return d.weights[i] }

// AverageDense returns the weighted mean of the given matrices under the
// distribution weights. The weight sum normalizes the result, so weights need
// not be pre-normalized. All matrices must share one shape and there must be
// exactly one per grid point.
func (d Distribution) AverageDense(ms []*mat.Dense) (*mat.Dense, error) {
	if len(ms) != d.Len() {
		return nil, fmt.Errorf("AverageDense: %d matrices for %d grid points: %w",
			len(ms), d.Len(), ErrCountMismatch)
	}
	rows, cols := ms[0].Dims()
	sum := floats.Sum(d.weights)

	avg := mat.NewDense(rows, cols, nil)
	var scaled mat.Dense
	for i, m := range ms {
		r, c := m.Dims()
		if r != rows || c != cols {
			return nil, fmt.Errorf("AverageDense: matrix %d is %dx%d, want %dx%d: %w",
				i, r, c, rows, cols, ErrShapeMismatch)
		}
		scaled.Scale(d.weights[i]/sum, m)
		avg.Add(avg, &scaled)
	}

	return avg, nil
}
