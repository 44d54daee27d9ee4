package rffield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/aestelle/ChemEx/rffield"
)

// TestNew_Validation exercises every constructor sentinel.
func TestNew_Validation(t *testing.T) {
	_, err := rffield.New(nil, nil)
	assert.ErrorIs(t, err, rffield.ErrEmptyDistribution)

	_, err = rffield.New([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, rffield.ErrLengthMismatch)

	_, err = rffield.New([]float64{1}, []float64{-0.5})
	assert.ErrorIs(t, err, rffield.ErrBadWeight)

	_, err = rffield.New([]float64{1, 2}, []float64{0, 0})
	assert.ErrorIs(t, err, rffield.ErrBadWeight)
}

// TestInfinite checks the ideal-field sentinel shape.
func TestInfinite(t *testing.T) {
	d := rffield.Infinite()
	assert.True(t, d.Infinite())
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, 1.0, d.Scale(0))
}

// TestAverageDense_SinglePointIsExact: with one grid point of weight 1 the
// average must equal the input matrix exactly — no averaging error.
func TestAverageDense_SinglePointIsExact(t *testing.T) {
	d, err := rffield.New([]float64{1}, []float64{1})
	require.NoError(t, err)

	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	avg, err := d.AverageDense([]*mat.Dense{m})
	require.NoError(t, err)
	assert.True(t, mat.Equal(m, avg), "single-point average must be exact")
}

// TestAverageDense_UnnormalizedWeights: scaling all weights by a constant must
// not change the average (weighted mean, not naive sum).
func TestAverageDense_UnnormalizedWeights(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	b := mat.NewDense(2, 2, []float64{3, 0, 0, 3})

	d1, err := rffield.New([]float64{0.9, 1.1}, []float64{1, 3})
	require.NoError(t, err)
	d2, err := rffield.New([]float64{0.9, 1.1}, []float64{10, 30})
	require.NoError(t, err)

	avg1, err := d1.AverageDense([]*mat.Dense{a, b})
	require.NoError(t, err)
	avg2, err := d2.AverageDense([]*mat.Dense{a, b})
	require.NoError(t, err)

	assert.InDelta(t, 2.5, avg1.At(0, 0), 1e-12)
	assert.True(t, mat.EqualApprox(avg1, avg2, 1e-12), "weight scaling must not change the mean")
}

// TestAverageDense_Mismatches covers the shape and count sentinels.
func TestAverageDense_Mismatches(t *testing.T) {
	d, err := rffield.New([]float64{1, 1}, []float64{1, 1})
	require.NoError(t, err)

	_, err = d.AverageDense([]*mat.Dense{mat.NewDense(2, 2, nil)})
	assert.ErrorIs(t, err, rffield.ErrCountMismatch)

	_, err = d.AverageDense([]*mat.Dense{mat.NewDense(2, 2, nil), mat.NewDense(3, 3, nil)})
	assert.ErrorIs(t, err, rffield.ErrShapeMismatch)
}

// TestGaussian checks grid symmetry and the collapse cases.
func TestGaussian(t *testing.T) {
	d, err := rffield.Gaussian(1.0, 0.1, 11)
	require.NoError(t, err)
	assert.Equal(t, 11, d.Len())
	assert.InDelta(t, 0.8, d.Scale(0), 1e-12)
	assert.InDelta(t, 1.2, d.Scale(10), 1e-12)
	assert.InDelta(t, d.Weight(0), d.Weight(10), 1e-12, "Gaussian weights are symmetric")
	assert.Greater(t, d.Weight(5), d.Weight(0), "centre outweighs the tails")

	d, err = rffield.Gaussian(1.0, 0, 11)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len(), "zero spread collapses to a single point")
	assert.False(t, d.Infinite())
}
