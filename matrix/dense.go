// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row slices) & safe accessors.
//
// Purpose:
//   - Provide an n×m float64 buffer laid out as one independently owned slice
//     per row, so that exchanging two rows is a header swap, not an
//     element-by-element copy.
//   - Guarantee safety at the public surface: At/Set/SwapRows/RowView return
//     errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single
//     source of truth (options.go).
//
// AI-Hints:
//   - Hot elimination loops should grab RowView once per row and index the
//     returned slice directly; At/Set are for cold paths and external callers.
//   - SwapRows is O(1) and bit-exact: two swaps of the same pair restore the
//     original state bit-for-bit.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); SwapRows: O(1);
//     RowView: O(1); Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"      // method tag used in error wrappers
	ctxSet   = "Set"     // method tag used in error wrappers
	ctxApply = "Apply"   // method tag used in error wrappers
	ctxRow   = "RowView" // method tag used in error wrappers
	ctxSwap  = "SwapRows"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates
//   - err: sentinel (e.g. ErrOutOfRange, ErrNaNInf)
//
// Returns:
//   - error: "Dense.<method>(row,col): <sentinel>", matchable via errors.Is.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-slice matrix.
//   - r,c hold dimensions (rows, cols).
//   - rows holds one float64 slice per matrix row; each slice has len == c and
//     is owned exclusively by this Dense. Swapping two entries of rows
//     re-identifies the rows without touching element storage.
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Apply
//     (policy default from options.go).
type Dense struct {
	r, c           int         // row and column counts (>0 for public ctor)
	rows           [][]float64 // per-row buffers; len(rows)==r, len(rows[i])==c
	validateNaNInf bool        // numeric guard: reject NaN/Inf when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using one buffer per row.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate r zero-filled row buffers and set the default policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Each row is a separate allocation on purpose: SwapRows must be a
//     header exchange, which a single flat buffer cannot provide.
//
// Returns:
//   - *Dense: newly allocated zero matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate one zero-filled buffer per row; make() zero-fills deterministically.
	buf := make([][]float64, rows)
	for i := range buf {
		buf[i] = make([]float64, cols)
	}

	return &Dense{
		r:              rows,
		c:              cols,
		rows:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// boundsCheck validates (row, col) or returns the bare ErrOutOfRange sentinel.
// Public methods (At/Set) wrap it with coordinates and method name.
// Complexity: O(1).
func (m *Dense) boundsCheck(row, col int) error {
	if row < 0 || row >= m.r {
		return ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return ErrOutOfRange
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns a wrapped sentinel error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if err := m.boundsCheck(row, col); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.rows[row][col], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Implementation:
//   - Stage 1: bounds check.
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into the row buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if err := m.boundsCheck(row, col); err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.rows[row][col] = v // direct write

	return nil
}

// SwapRows exchanges rows i and j in O(1) by swapping the row headers.
//
// Behavior highlights:
//   - Ownership transfer, not copy: after the call the slice that used to be
//     row i IS row j and vice versa. Callers must not assume a row index
//     keeps its original semantic ordering once any swap happened.
//   - i == j is a legal no-op.
//   - Bit-exact and involutive: swapping the same pair twice restores the
//     original state exactly.
//
// Errors:
//   - ErrOutOfRange when either index is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSwap, i, j, ErrOutOfRange)
	}
	if j < 0 || j >= m.r {
		return denseErrorf(ctxSwap, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil // no-op
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i] // header exchange

	return nil
}

// RowView returns the live storage slice of row i (no copy).
//
// Behavior highlights:
//   - Mutations through the returned slice write through to the matrix and
//     BYPASS the numeric policy; intended for trusted hot loops (elimination
//     kernels), not for general ingestion.
//   - The view stays attached to the row's identity: after SwapRows the
//     slice obtained earlier follows the row to its new index.
//
// Errors:
//   - ErrOutOfRange when i is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) RowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.rows[i], nil
}

// Clone returns a deep copy (new row buffers, same numeric policy).
//
// Behavior highlights:
//   - Independence: mutations (including SwapRows) do not affect the original.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([][]float64, m.r)
	for i := range cp {
		cp[i] = make([]float64, m.c)
		copy(cp[i], m.rows[i]) // deep copy row bytes
	}

	return &Dense{
		r:              m.r,
		c:              m.c,
		rows:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String provides a readable row-wise dump for diagnostics.
// Not for hot paths; intended for logs and debugging.
// Complexity: O(r*c) time and formatting space.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.rows[i][j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c) time, O(1) space.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.rows[i][j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when the transformer produced a non-finite value (policy ON).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j int
	var nv float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.rows[i][j]) // compute new value
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf) // wrap with coordinates
			}
			m.rows[i][j] = nv // write back new value
		}
	}

	return nil
}
