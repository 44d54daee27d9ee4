package cxmat

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrSingular is returned when no usable pivot remains during inversion.
	ErrSingular = errors.New("cxmat: singular matrix")
	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("cxmat: matrix is not square")
	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("cxmat: dimension mismatch")
	// ErrBadIndexGroup indicates an index group referencing rows/modes out of range.
	ErrBadIndexGroup = errors.New("cxmat: index group out of range")
)

// Inverse returns the inverse of the square complex matrix a.
// Blueprint:
//
//	Stage 1 (Validate): ensure a is square.
//	Stage 2 (Decompose): PA = L·U via Doolittle with partial pivoting.
//	Stage 3 (Execute): for each permuted identity column, solve L·y = e then U·x = y.
//	Stage 4 (Finalize): assemble columns into the inverse and return.
//
// Complexity: O(n³) time, O(n²) memory.
func Inverse(a *mat.CDense) (*mat.CDense, error) {
	// Stage 1: Validate input shape
	n, cols := a.Dims()
	if n != cols {
		return nil, fmt.Errorf("Inverse: non-square %dx%d: %w", n, cols, ErrNonSquare)
	}

	// Stage 2: LU decomposition with partial pivoting on a working copy.
	// lu stores L (unit diagonal, below) and U (on and above the diagonal).
	lu := make([][]complex128, n)
	for i := 0; i < n; i++ {
		lu[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			lu[i][j] = a.At(i, j)
		}
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for k := 0; k < n; k++ {
		// pick the row with the largest pivot magnitude
		pivotRow, pivotAbs := k, cmplx.Abs(lu[k][k])
		for i := k + 1; i < n; i++ {
			if abs := cmplx.Abs(lu[i][k]); abs > pivotAbs {
				pivotRow, pivotAbs = i, abs
			}
		}
		if pivotAbs == 0 {
			return nil, fmt.Errorf("Inverse: zero pivot at %d: %w", k, ErrSingular)
		}
		if pivotRow != k {
			lu[k], lu[pivotRow] = lu[pivotRow], lu[k]
			perm[k], perm[pivotRow] = perm[pivotRow], perm[k]
		}
		for i := k + 1; i < n; i++ {
			lu[i][k] /= lu[k][k]
			for j := k + 1; j < n; j++ {
				lu[i][j] -= lu[i][k] * lu[k][j]
			}
		}
	}

	// Stage 3: Solve for each identity column under the row permutation.
	inv := mat.NewCDense(n, n, nil)
	y := make([]complex128, n)
	for col := 0; col < n; col++ {
		// Forward substitution: L·y = P·e_col
		for i := 0; i < n; i++ {
			var sum complex128
			for k := 0; k < i; k++ {
				sum += lu[i][k] * y[k]
			}
			e := complex(0, 0)
			if perm[i] == col {
				e = 1
			}
			y[i] = e - sum
		}
		// Backward substitution: U·x = y, written straight into inv
		for i := n - 1; i >= 0; i-- {
			sum := y[i]
			for k := i + 1; k < n; k++ {
				sum -= lu[i][k] * inv.At(k, col)
			}
			inv.Set(i, col, sum/lu[i][i])
		}
	}

	// Stage 4: Return computed inverse
	return inv, nil
}

// Mul returns the product a·b of two complex dense matrices.
func Mul(a, b *mat.CDense) (*mat.CDense, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, fmt.Errorf("Mul: %dx%d · %dx%d: %w", ar, ac, br, bc, ErrDimensionMismatch)
	}

	out := mat.NewCDense(ar, bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			var sum complex128
			for k := 0; k < ac; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}

	return out, nil
}

// MulVec returns the product a·x of a complex matrix and a complex vector.
func MulVec(a *mat.CDense, x []complex128) ([]complex128, error) {
	r, c := a.Dims()
	if c != len(x) {
		return nil, fmt.Errorf("MulVec: %dx%d · %d-vector: %w", r, c, len(x), ErrDimensionMismatch)
	}

	out := make([]complex128, r)
	for i := 0; i < r; i++ {
		var sum complex128
		for k := 0; k < c; k++ {
			sum += a.At(i, k) * x[k]
		}
		out[i] = sum
	}

	return out, nil
}

// EigenPropagator assembles the propagator restricted to the given row and
// column index groups from an eigendecomposition limited to the selected
// modes:
//
//	out[r][c] = Σ_{k ∈ modes} vec[rows[r], k] · exp(vals[k]·t) · inv[k, cols[c]]
//
// vec is the right-eigenvector matrix, inv its inverse, t the evolution
// duration in seconds.
func EigenPropagator(vals []complex128, vec, inv *mat.CDense, modes []int, t float64, rows, cols []int) (*mat.CDense, error) {
	n, _ := vec.Dims()
	for _, k := range modes {
		if k < 0 || k >= len(vals) {
			return nil, fmt.Errorf("EigenPropagator: mode %d of %d: %w", k, len(vals), ErrBadIndexGroup)
		}
	}
	for _, r := range rows {
		if r < 0 || r >= n {
			return nil, fmt.Errorf("EigenPropagator: row %d of %d: %w", r, n, ErrBadIndexGroup)
		}
	}
	for _, c := range cols {
		if c < 0 || c >= n {
			return nil, fmt.Errorf("EigenPropagator: col %d of %d: %w", c, n, ErrBadIndexGroup)
		}
	}

	// exponentiate the selected eigenvalues once
	exps := make([]complex128, len(modes))
	for i, k := range modes {
		exps[i] = cmplx.Exp(vals[k] * complex(t, 0))
	}

	out := mat.NewCDense(len(rows), len(cols), nil)
	for i, r := range rows {
		for j, c := range cols {
			var sum complex128
			for m, k := range modes {
				sum += vec.At(r, k) * exps[m] * inv.At(k, c)
			}
			out.Set(i, j, sum)
		}
	}

	return out, nil
}
