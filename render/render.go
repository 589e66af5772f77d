// Package render holds reference consumers of a solved path: a plain-text
// printer and a minimal PNG plotter. Neither is part of the pathfinding
// core; both are trimmed stand-ins for a wall-diagram renderer.
package render

import (
	"fmt"
	"io"

	"github.com/arvi-lang/pathway"
)

// PrintSolution writes the path as "(x y) -> (x y) -> ...", ten points per
// line, the same layout as the original program's printSolution.
func PrintSolution(w io.Writer, res pathway.Result) error {
	if !res.Success {
		_, err := fmt.Fprintln(w, "no solution")
		return err
	}
	for i, p := range res.Path {
		var prefix string
		switch {
		case i == 0:
			prefix = "\t"
		case i%10 == 0:
			prefix = "\n\t"
		default:
			prefix = " -> "
		}
		if _, err := fmt.Fprintf(w, "%s(%d %d)", prefix, p.X, p.Y); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
