// Package gauss: sentinel error set.
// All operations return these sentinels (possibly wrapped with op context);
// callers match them via errors.Is. Nothing in this package panics or exits
// the process — mapping failures to exit codes is the caller's decision.

package gauss

import "errors"

var (
	// ErrNilSystem indicates that a nil *System was passed into an operation.
	ErrNilSystem = errors.New("gauss: nil system")

	// ErrSingular is returned when a pivot column's maximum absolute value is
	// exactly zero: the system has no unique solution and elimination cannot
	// proceed. Terminal — no partial solution is produced.
	ErrSingular = errors.New("gauss: matrix is singular")

	// ErrVerifyMismatch signals that a computed solution disagrees with the
	// closed-form expectation beyond tolerance. This is an internal invariant
	// violation (a solver bug or unacceptable drift), not a user error.
	ErrVerifyMismatch = errors.New("gauss: solution verification mismatch")

	// ErrInvalidSize indicates a non-positive system dimension.
	ErrInvalidSize = errors.New("gauss: size must be >= 1")

	// ErrInvalidTolerance indicates a negative or NaN verification tolerance.
	ErrInvalidTolerance = errors.New("gauss: tolerance must be non-negative")
)
