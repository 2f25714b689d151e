package gauss

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose the UNEXPORTED pivot kernel to gauss_test ONLY, so pivot
//     selection determinism and the normalization contract can be verified
//     step-by-step without widening the production API.
//
// Provided Surface:
//   - Pivot_TestOnly(sys, k): thin pass-through to the private pivot step.
//
// Behavior & Determinism:
//   - No allocations beyond what the wrapped function does; no side effects
//     other than the pivot step itself.

// Pivot_TestOnly forwards to the private pivot kernel for column k.
func Pivot_TestOnly(sys *System, k int) error {
	return pivot(sys, k)
}
