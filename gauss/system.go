package gauss

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// op tags used in error wrappers, kept as constants for grep-ability.
const (
	opNewSystem      = "NewSystem"
	opEliminate      = "Eliminate"
	opBackSubstitute = "BackSubstitute"
	opSolve          = "Solve"
	opStaircase      = "StaircaseSystem"
	opVerify         = "VerifyStaircase"
)

// gaussErrorf attaches a uniform operation context to a sentinel error.
// Keeps messages stable ("gauss.<op>: <cause>") and preserves errors.Is.
func gaussErrorf(op string, err error) error {
	return fmt.Errorf("gauss.%s: %w", op, err)
}

// System bundles one square coefficient matrix A with its right-hand-side
// vector b, keeping them index-aligned: row i of A and b[i] describe the
// same equation. Every row reorder goes through SwapRows so the alignment
// can never drift.
//
// Ownership: the System owns A and b exclusively for the duration of one
// solve. NewSystem takes ownership of both arguments; callers that need the
// inputs afterwards must pass a.Clone() and a copied slice.
type System struct {
	a *matrix.Dense // n×n coefficient matrix, mutated in place by elimination
	b []float64     // right-hand side, co-swapped and co-scaled with A's rows
	n int           // cached dimension (== a.Rows() == len(b))
}

// NewSystem validates shape (A square, len(b) == n) and wraps the pair into
// a System, taking ownership of both.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
func NewSystem(a *matrix.Dense, b []float64) (*System, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, gaussErrorf(opNewSystem, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, gaussErrorf(opNewSystem, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, gaussErrorf(opNewSystem, err)
	}

	return &System{a: a, b: b, n: a.Rows()}, nil
}

// N returns the system dimension. Complexity: O(1).
func (s *System) N() int { return s.n }

// A exposes the coefficient matrix. Mutating it directly is legal (the
// System owns it) but bypasses the co-swap guarantee; prefer SwapRows.
func (s *System) A() *matrix.Dense { return s.a }

// RHS exposes the live right-hand-side slice (no copy).
func (s *System) RHS() []float64 { return s.b }

// SwapRows exchanges equations i and j: the matrix rows swap in O(1) by
// header exchange, and the b entries swap in lockstep. This is the ONLY
// sanctioned way to reorder rows — it preserves the row↔constant pairing
// that makes the system equivalent under permutation.
//
// Errors: matrix.ErrOutOfRange on invalid indices (b untouched on failure).
func (s *System) SwapRows(i, j int) error {
	if err := s.a.SwapRows(i, j); err != nil {
		return err
	}
	s.b[i], s.b[j] = s.b[j], s.b[i] // mirror on the right-hand side

	return nil
}
