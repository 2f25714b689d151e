// Package linsolve is a compact toolkit for solving dense linear systems
// A·x = b with Gaussian elimination and partial pivoting.
//
// 🚀 What is linsolve?
//
//	A small, deterministic, pure-Go solver for square float64 systems:
//		• Matrix storage: row-slice Dense with O(1) row swaps
//		• Pivoting: partial (row) pivoting by maximum absolute value
//		• Elimination: classic rank-1 row reduction to unit upper-triangular form
//		• Back-substitution: last unknown to first, O(n²)
//		• Verification: closed-form staircase test system for end-to-end checks
//
// ✨ Why choose linsolve?
//
//   - Predictable – fixed loop orders, sentinel errors, no hidden state
//   - Safe by construction – public surface returns errors, never panics
//   - Pure Go – no cgo, no numeric megadeps
//   - Honest failure – singular systems are detected and reported, never
//     papered over with garbage solutions
//
// Everything is organized under two subpackages and one command:
//
//	matrix/       — Dense row-slice storage, numeric policy, validators
//	gauss/        — pivoting, elimination, back-substitution, verification
//	cmd/linsolve/ — CLI harness: build the staircase system, time the solve,
//	                verify the answer
//
// Quick example:
//
//	sys, _ := gauss.StaircaseSystem(3)   // A=[[2,2,2],[2,4,4],[2,4,6]], b=[0,1,2]
//	x, err := gauss.Solve(sys)           // x ≈ [-0.5, 0, 0.5]
//	if err != nil {
//	    // errors.Is(err, gauss.ErrSingular) for degenerate inputs
//	}
//
// See gauss/example_test.go for runnable examples and cmd/linsolve for the
// timed end-to-end harness.
package linsolve
