package gauss

import (
	"fmt"
	"math"
)

// ZeroPivot is the exact value against which singularity is detected.
// Detection is deliberately exact (==), not tolerance-based: a tiny but
// nonzero pivot still admits elimination, and the construction sites that
// feed this solver are expected to be well-scaled.
const ZeroPivot = 0.0

// UnitPivot is the diagonal value every pivot row is normalized to.
const UnitPivot = 1.0

// pivot runs one partial-pivoting step for elimination column k.
//
// Algorithm:
//  1. Scan rows k..n-1 in column k for the maximum absolute value;
//     the first occurrence wins on ties.
//  2. If that maximum is exactly 0.0 the system is singular: fail with
//     ErrSingular (wrapped with the step index).
//  3. If the winning row differs from k, swap it into position via
//     System.SwapRows (matrix row and b entry together).
//  4. Normalize row k: set A[k][k] = 1.0 by assignment (never by division,
//     so the diagonal cannot round away from unity), then divide columns
//     k+1..n-1 and b[k] by the original pivot value. A pivot already equal
//     to exactly 1.0 skips the division pass as a no-op.
//
// Postcondition: A[k][k] == 1.0 and row k is ready to eliminate rows below.
// Complexity: O(n) scan + O(n) normalize.
func pivot(sys *System, k int) error {
	n := sys.n
	irow := k // row we are going to use

	// Find the biggest absolute value in column k at or below the diagonal.
	row, err := sys.a.RowView(k)
	if err != nil {
		return err
	}
	big := math.Abs(row[k])
	var i int
	var tmp float64
	for i = k + 1; i < n; i++ {
		ri, rerr := sys.a.RowView(i)
		if rerr != nil {
			return rerr
		}
		if tmp = math.Abs(ri[k]); tmp > big {
			big = tmp
			irow = i
		}
	}

	// Make sure we can progress: an all-zero column means no unique solution.
	if big == ZeroPivot {
		return fmt.Errorf("pivot step %d: %w", k, ErrSingular)
	}

	// Swap the winning row into position, b entry in lockstep.
	if irow != k {
		if err = sys.SwapRows(k, irow); err != nil {
			return err
		}
		if row, err = sys.a.RowView(k); err != nil { // re-resolve after swap
			return err
		}
	}

	// Normalize the pivot row so the diagonal entry is exactly 1.0.
	pivotVal := row[k]
	if pivotVal != UnitPivot {
		row[k] = UnitPivot // assigned, not divided
		for i = k + 1; i < n; i++ {
			row[i] /= pivotVal
		}
		sys.b[k] /= pivotVal
	}

	return nil
}

// Eliminate reduces the system to unit upper-triangular form in place.
//
// For each step k = 0..n-1 it selects and normalizes a pivot (see pivot),
// then for every row j below applies the rank-1 update:
//
//	f = A[j][k]; A[j][k] = 0.0; A[j][c] -= f·A[k][c] for c > k; b[j] -= f·b[k]
//
// The below-diagonal entry is zeroed by explicit assignment so the exact-zero
// invariant holds bit-for-bit. The full row is scanned at every step — no
// sparsity shortcuts — giving the conventional O(n³) cost. Steps commit
// sequentially; there is no rollback, and on ErrSingular the system is left
// in its partially eliminated state and must not be trusted.
//
// Errors: ErrNilSystem, ErrSingular.
// Complexity: O(n³) time, O(1) extra space.
func Eliminate(sys *System) error {
	if sys == nil {
		return gaussErrorf(opEliminate, ErrNilSystem)
	}

	n := sys.n
	var k, j, c int
	var f float64
	for k = 0; k < n; k++ {
		if err := pivot(sys, k); err != nil {
			return gaussErrorf(opEliminate, err)
		}
		src, err := sys.a.RowView(k) // normalized pivot row
		if err != nil {
			return gaussErrorf(opEliminate, err)
		}
		for j = k + 1; j < n; j++ {
			dst, derr := sys.a.RowView(j)
			if derr != nil {
				return gaussErrorf(opEliminate, derr)
			}
			f = dst[k]
			dst[k] = 0.0 // exact zero below the diagonal, by assignment
			for c = k + 1; c < n; c++ {
				dst[c] -= f * src[c]
			}
			sys.b[j] -= f * sys.b[k]
		}
	}

	return nil
}

// BackSubstitute consumes the unit upper-triangular system produced by
// Eliminate and returns the solution vector.
//
// x[n-1] = b[n-1] (the last row has only its unit diagonal), then for each
// row upward: x[row] = b[row] − Σ A[row][col]·x[col] over col = n-1..row+1.
// By the time a row is processed every x[col] it references is known.
//
// Defined only after a successful Eliminate on the same System; on a
// non-triangular system the result is meaningless (the singularity guard in
// Eliminate is the defense against reaching that state).
//
// Errors: ErrNilSystem.
// Complexity: O(n²) time, O(n) space for the result.
func BackSubstitute(sys *System) ([]float64, error) {
	if sys == nil {
		return nil, gaussErrorf(opBackSubstitute, ErrNilSystem)
	}

	n := sys.n
	x := make([]float64, n)
	x[n-1] = sys.b[n-1]
	var row, col int
	for row = n - 2; row >= 0; row-- {
		x[row] = sys.b[row]
		r, err := sys.a.RowView(row)
		if err != nil {
			return nil, gaussErrorf(opBackSubstitute, err)
		}
		for col = n - 1; col > row; col-- {
			x[row] -= r[col] * x[col]
		}
	}

	return x, nil
}

// Solve runs the full pipeline — elimination with partial pivoting, then
// back-substitution — and returns the solution vector. The System is
// consumed: its matrix ends upper-triangular and its b holds intermediate
// values. On error no solution is returned.
//
// Errors: ErrNilSystem, ErrSingular.
// Complexity: O(n³).
func Solve(sys *System) ([]float64, error) {
	if sys == nil {
		return nil, gaussErrorf(opSolve, ErrNilSystem)
	}
	if err := Eliminate(sys); err != nil {
		return nil, err
	}

	return BackSubstitute(sys)
}
