// SPDX-License-Identifier: MIT

// Package matrix provides dense float64 matrix storage tuned for row-level
// algorithms: one independently owned buffer per row, so that exchanging two
// rows is an O(1) header swap instead of an O(n) element copy.
//
// ✨ Key features:
//   - Dense: row-slice storage with safe At/Set accessors (errors, no panics)
//   - SwapRows: O(1), bit-exact, involutive row exchange
//   - RowView: no-copy access to a row's live storage for hot kernels
//   - Numeric policy: optional NaN/±Inf rejection at ingestion (default on)
//   - Validators: ValidateNotNil / ValidateSquare / ValidateVecLen as the
//     canonical guard set for callers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linsolve/matrix"
//
//	m, err := matrix.NewDense(3, 3)
//	if err != nil { ... }
//	_ = m.Set(0, 0, 2.0)
//	_ = m.SwapRows(0, 2)          // O(1) header exchange
//	row, _ := m.RowView(0)        // live slice, writes go to storage
//
// Error discipline: every failure is one of the package sentinels
// (ErrOutOfRange, ErrInvalidDimensions, ErrNaNInf, ...) wrapped with method
// context; match with errors.Is.
//
// The row-slice layout is deliberate: downstream elimination pipelines pivot
// by swapping whole rows, and the swap must be cheap and exact.
package matrix
