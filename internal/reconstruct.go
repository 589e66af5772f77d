// Package internal holds helpers shared by the sequential and parallel
// solvers but not meant for external use.
package internal

// ReconstructPath walks predecessor links from target back to start and
// returns them in start-to-target order. pred(id) must return the
// predecessor cell id and ok=false for the start cell (or any cell with no
// recorded predecessor).
//
// The walk is bounded by maxSteps (normally the grid's cell count) as a
// guard against a corrupted predecessor chain forming a cycle.
func ReconstructPath(target int, maxSteps int, pred func(id int) (int, bool)) []int {
	path := make([]int, 0, 16)
	current := target
	for steps := 0; steps <= maxSteps; steps++ {
		path = append(path, current)
		prev, ok := pred(current)
		if !ok {
			break
		}
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
