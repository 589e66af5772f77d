// Package pathway implements 8-connected A* pathfinding over a grid.Grid,
// with two interchangeable solvers:
//
//   - Solve: a single-threaded reference solver with a binary-heap open set.
//   - ParallelSolve: a round-based solver that extracts a batch of open
//     nodes, expands and relaxes them across a bounded worker pool, and
//     merges the result — the coordination pattern a SIMD/GPU back-end
//     would need, implemented here over goroutines.
//
// Both share the same arena (the global best-g node table) and are meant to
// agree on optimal cost for any input; see package driver for the
// cross-check that verifies this.
package pathway
