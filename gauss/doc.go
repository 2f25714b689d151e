// Package gauss solves dense square linear systems A·x = b by Gaussian
// elimination with partial pivoting and back-substitution.
//
// 🚀 What is gauss?
//
//	The textbook direct solver, implemented deterministically:
//	  • Partial pivoting — each step selects the row with the largest
//	    absolute value in the pivot column (first occurrence wins on ties)
//	    and swaps it into place, b entry in lockstep.
//	  • Normalization — pivot rows are scaled so the diagonal is exactly 1.0
//	    (the diagonal entry is assigned, never divided, so it cannot round
//	    away from unity).
//	  • Elimination — the classic rank-1 row update zeroes every column
//	    below its pivot; below-diagonal entries are set to exactly 0.0.
//	  • Back-substitution — from the last unknown upward over the resulting
//	    unit upper-triangular system.
//
// ✨ Key properties:
//   - Singular systems (an exactly-zero pivot column) fail fast with
//     ErrSingular — never a silent garbage answer.
//   - Row swaps are O(1) header exchanges on the matrix and always mirrored
//     on the right-hand side, so equation↔constant pairing is an invariant.
//   - Single-threaded, sequential pivot steps, no rollback; one System is
//     owned by one solve.
//   - The library never exits the process: failures are sentinel errors for
//     the caller to map (see cmd/linsolve).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linsolve/gauss"
//
//	sys, err := gauss.StaircaseSystem(1024) // or gauss.NewSystem(a, b)
//	if err != nil { ... }
//	x, err := gauss.Solve(sys)
//	if errors.Is(err, gauss.ErrSingular) { ... }
//	err = gauss.VerifyStaircase(x, 1e-9)
//
// Performance:
//
//   - Time:   O(n³) elimination + O(n²) back-substitution
//   - Memory: O(n²) for the system, O(n) for the solution
//
// See example_test.go for runnable examples and staircase.go for the fixed
// test construction with its closed-form expected solution.
package gauss
