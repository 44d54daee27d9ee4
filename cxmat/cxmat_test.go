package cxmat_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/aestelle/ChemEx/cxmat"
)

// TestInverse_Known inverts a 2x2 complex matrix and checks A·A⁻¹ = I.
func TestInverse_Known(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{
		complex(1, 1), complex(2, 0),
		complex(0, -1), complex(3, 2),
	})
	inv, err := cxmat.Inverse(a)
	require.NoError(t, err)

	prod, err := cxmat.Mul(a, inv)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := complex(0, 0)
			if i == j {
				want = 1
			}
			assert.InDelta(t, real(want), real(prod.At(i, j)), 1e-12)
			assert.InDelta(t, imag(want), imag(prod.At(i, j)), 1e-12)
		}
	}
}

// TestInverse_NeedsPivoting inverts a matrix with a zero leading pivot, which
// a non-pivoting Doolittle scheme would reject.
func TestInverse_NeedsPivoting(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{
		0, 1,
		1, 0,
	})
	inv, err := cxmat.Inverse(a)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), inv.At(0, 1))
	assert.Equal(t, complex128(1), inv.At(1, 0))
}

// TestInverse_Singular verifies the sentinel on rank-deficient input.
func TestInverse_Singular(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{
		1, 2,
		2, 4,
	})
	_, err := cxmat.Inverse(a)
	assert.ErrorIs(t, err, cxmat.ErrSingular)
}

// TestInverse_NonSquare verifies the shape sentinel.
func TestInverse_NonSquare(t *testing.T) {
	_, err := cxmat.Inverse(mat.NewCDense(2, 3, nil))
	assert.ErrorIs(t, err, cxmat.ErrNonSquare)
}

// TestMulVec checks a complex matrix-vector product against hand arithmetic.
func TestMulVec(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{
		1, complex(0, 1),
		0, 2,
	})
	y, err := cxmat.MulVec(a, []complex128{complex(1, 0), complex(0, 1)})
	require.NoError(t, err)
	assert.Equal(t, complex(0, 0), y[0]) // 1 + i·i = 0
	assert.Equal(t, complex(0, 2), y[1])

	_, err = cxmat.MulVec(a, []complex128{1})
	assert.ErrorIs(t, err, cxmat.ErrDimensionMismatch)
}

// TestEigenPropagator_Diagonal: for a diagonal generator the eigenvectors are
// the identity, so the restricted propagator must reduce to exp(λ_k·t) on the
// selected rows/cols.
func TestEigenPropagator_Diagonal(t *testing.T) {
	const dur = 0.5
	vals := []complex128{complex(-1, 0), complex(-2, 0), complex(0, 3)}
	id := mat.NewCDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		id.Set(i, i, 1)
	}

	// keep only the real-decaying modes 0 and 1
	prop, err := cxmat.EigenPropagator(vals, id, id, []int{0, 1}, dur, []int{1}, []int{0, 1})
	require.NoError(t, err)

	r, c := prop.Dims()
	require.Equal(t, 1, r)
	require.Equal(t, 2, c)
	assert.InDelta(t, 0.0, cmplx.Abs(prop.At(0, 0)), 1e-15, "mode 0 does not reach row 1")
	assert.InDelta(t, math.Exp(-2*dur), real(prop.At(0, 1)), 1e-12)
}

// TestEigenPropagator_BadIndexGroups verifies range validation of modes and
// index groups.
func TestEigenPropagator_BadIndexGroups(t *testing.T) {
	id := mat.NewCDense(2, 2, nil)
	vals := []complex128{1, 1}

	_, err := cxmat.EigenPropagator(vals, id, id, []int{5}, 1, []int{0}, []int{0})
	assert.ErrorIs(t, err, cxmat.ErrBadIndexGroup)

	_, err = cxmat.EigenPropagator(vals, id, id, []int{0}, 1, []int{9}, []int{0})
	assert.ErrorIs(t, err, cxmat.ErrBadIndexGroup)
}
