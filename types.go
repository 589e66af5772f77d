package pathway

// Point is a grid coordinate in a returned path.
type Point struct {
	X, Y int
}

// Result is the outcome of a solve.
type Result struct {
	Success       bool
	OptimalCost   float64
	Path          []Point
	NodesExpanded int
	Rounds        int // batches processed; always 1 for the sequential solver
}
