package pathway

import "errors"

// Sentinel errors, grouped by kind of failure. "No path" is deliberately
// not among these: it is a normal outcome, reported as
// Result.Success == false.
var (
	// ErrCapacity indicates the arena could not be allocated for the grid's
	// cell count.
	ErrCapacity = errors.New("pathway: capacity exceeded")

	// ErrDevice indicates the parallel solver's worker pool failed
	// mid-round (a stand-in for a data-parallel back-end device failure).
	ErrDevice = errors.New("pathway: device failure")

	// ErrCancelled indicates the search context was cancelled or timed out
	// between rounds.
	ErrCancelled = errors.New("pathway: search cancelled")

	// ErrInvariant names the kind of failure where an internal consistency
	// check fails — e.g. a predecessor chain that does not terminate at the
	// start cell. No function in this package returns it: path
	// reconstruction does not check where the chain ends.
	ErrInvariant = errors.New("pathway: invariant violated")
)
