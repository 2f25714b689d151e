// Package gauss_test: tests for the staircase construction, its closed-form
// solution (including the n=1 boundary rule), and verification.
package gauss_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/gauss"
)

// TestStaircaseSystem_N3Values pins the exact entries for n=3:
// A=[[2,2,2],[2,4,4],[2,4,6]], b=[0,1,2].
func TestStaircaseSystem_N3Values(t *testing.T) {
	sys, err := gauss.StaircaseSystem(3)
	require.NoError(t, err)

	want := [][]float64{
		{2, 2, 2},
		{2, 4, 4},
		{2, 4, 6},
	}
	for i := 0; i < 3; i++ {
		row, rerr := sys.A().RowView(i)
		require.NoError(t, rerr)
		require.Equal(t, want[i], row, "row %d", i)
	}
	require.Equal(t, []float64{0, 1, 2}, sys.RHS())
}

// TestStaircaseSystem_Rule spot-checks A[i][j] = 2·(min(i,j)+1) at n=5.
func TestStaircaseSystem_Rule(t *testing.T) {
	sys, err := gauss.StaircaseSystem(5)
	require.NoError(t, err)

	sys.A().Do(func(i, j int, v float64) bool {
		m := i
		if j < i {
			m = j
		}
		require.Equal(t, 2*float64(m+1), v, "A[%d][%d]", i, j)

		return true
	})
}

// TestStaircaseSystem_InvalidSize rejects non-positive dimensions.
func TestStaircaseSystem_InvalidSize(t *testing.T) {
	_, err := gauss.StaircaseSystem(0)
	require.ErrorIs(t, err, gauss.ErrInvalidSize)

	_, err = gauss.StaircaseSystem(-3)
	require.ErrorIs(t, err, gauss.ErrInvalidSize)
}

// TestStaircaseSolution covers the closed form and the n=1 boundary rule.
func TestStaircaseSolution(t *testing.T) {
	x, err := gauss.StaircaseSolution(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0}, x) // zero rule wins when first==last

	x, err = gauss.StaircaseSolution(2)
	require.NoError(t, err)
	require.Equal(t, []float64{-0.5, 0.5}, x) // no interior at n=2

	x, err = gauss.StaircaseSolution(5)
	require.NoError(t, err)
	require.Equal(t, []float64{-0.5, 0, 0, 0, 0.5}, x)

	_, err = gauss.StaircaseSolution(0)
	require.ErrorIs(t, err, gauss.ErrInvalidSize)
}

// TestVerifyStaircase_Accepts passes an exact closed-form vector through.
func TestVerifyStaircase_Accepts(t *testing.T) {
	want, err := gauss.StaircaseSolution(4)
	require.NoError(t, err)
	require.NoError(t, gauss.VerifyStaircase(want, 0)) // exact match, zero tolerance

	// A slightly perturbed vector still passes within tolerance.
	want[1] += 1e-12
	require.NoError(t, gauss.VerifyStaircase(want, 1e-9))
}

// TestVerifyStaircase_Mismatch reports ErrVerifyMismatch beyond tolerance.
func TestVerifyStaircase_Mismatch(t *testing.T) {
	x := []float64{-0.5, 0.25, 0.5} // interior entry off by 0.25
	err := gauss.VerifyStaircase(x, 1e-9)
	require.ErrorIs(t, err, gauss.ErrVerifyMismatch)
	require.Contains(t, err.Error(), "index 1") // failing index is named
}

// TestVerifyStaircase_InvalidTolerance rejects negative and NaN tolerances.
func TestVerifyStaircase_InvalidTolerance(t *testing.T) {
	x := []float64{-0.5, 0.5}
	require.ErrorIs(t, gauss.VerifyStaircase(x, -1), gauss.ErrInvalidTolerance)
	require.ErrorIs(t, gauss.VerifyStaircase(x, math.NaN()), gauss.ErrInvalidTolerance)
}

// TestVerifyStaircase_EmptyVector rejects a zero-length solution.
func TestVerifyStaircase_EmptyVector(t *testing.T) {
	require.ErrorIs(t, gauss.VerifyStaircase(nil, 0), gauss.ErrInvalidSize)
}
