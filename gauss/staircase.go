package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// The staircase system is the fixed test construction this package verifies
// itself against:
//
//	A[i][j] = 2·(min(i,j)+1)        b[i] = i
//
// i.e. 2·(j+1) below the diagonal and 2·(i+1) on and above it. Constant
// along L-shaped "steps", hence the name:
//
//	⎡2 2 2⎤
//	⎢2 4 4⎥    b = [0, 1, 2]
//	⎣2 4 6⎦
//
// Its solution has a closed form — x[0] = −0.5, x[n−1] = +0.5, zeros in
// between — which makes end-to-end correctness checkable without a second
// solver.

// StaircaseSystem builds the n×n staircase test system.
//
// Errors: ErrInvalidSize when n < 1.
// Complexity: O(n²).
func StaircaseSystem(n int) (*System, error) {
	if n < 1 {
		return nil, gaussErrorf(opStaircase, ErrInvalidSize)
	}
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, gaussErrorf(opStaircase, err)
	}
	if err = a.Apply(func(i, j int, _ float64) float64 {
		if j < i {
			return 2 * float64(j+1)
		}

		return 2 * float64(i+1)
	}); err != nil {
		return nil, gaussErrorf(opStaircase, err)
	}

	b := make([]float64, n)
	for i := range b {
		b[i] = float64(i)
	}

	return NewSystem(a, b)
}

// StaircaseSolution returns the closed-form solution of the n-dimensional
// staircase system: [−0.5, 0, ..., 0, +0.5].
//
// Boundary rule for n == 1: index 0 is simultaneously first and last, and
// the system degenerates to 2·x = 0, so the forced answer is [0] — the zero
// rule wins over both the −0.5 and +0.5 endpoints. For n == 2 there is no
// interior and the result is [−0.5, +0.5].
//
// Errors: ErrInvalidSize when n < 1.
// Complexity: O(n).
func StaircaseSolution(n int) ([]float64, error) {
	if n < 1 {
		return nil, gaussErrorf(opStaircase, ErrInvalidSize)
	}
	x := make([]float64, n) // zero-filled interior
	if n == 1 {
		return x, nil // degenerate: 2·x = 0
	}
	x[0] = -0.5
	x[n-1] = 0.5

	return x, nil
}

// VerifyStaircase checks a computed solution of the staircase system against
// the closed form, entrywise, within absolute tolerance tol.
//
// A mismatch means the elimination pipeline is broken or drifted beyond
// acceptance — it is reported as ErrVerifyMismatch wrapped with the failing
// index and both values, and the caller should treat it as fatal for the run.
//
// Errors: ErrInvalidSize (empty x), ErrInvalidTolerance (negative/NaN tol),
// ErrVerifyMismatch.
// Complexity: O(n).
func VerifyStaircase(x []float64, tol float64) error {
	if tol < 0 || math.IsNaN(tol) {
		return gaussErrorf(opVerify, ErrInvalidTolerance)
	}
	want, err := StaircaseSolution(len(x))
	if err != nil {
		return err
	}
	for i := range x {
		if math.Abs(x[i]-want[i]) > tol {
			return gaussErrorf(opVerify,
				fmt.Errorf("index %d: expected %g, got %g: %w", i, want[i], x[i], ErrVerifyMismatch))
		}
	}

	return nil
}
