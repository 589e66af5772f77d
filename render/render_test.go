package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/arvi-lang/pathway"
	"github.com/arvi-lang/pathway/grid"
)

func TestPrintSolutionNoPath(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintSolution(&buf, pathway.Result{Success: false}); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "no solution" {
		t.Fatalf("got %q", got)
	}
}

func TestPrintSolutionFormatsPath(t *testing.T) {
	var buf bytes.Buffer
	res := pathway.Result{
		Success: true,
		Path:    []pathway.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}},
	}
	if err := PrintSolution(&buf, res); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "(0 0) -> (1 1) -> (2 2)") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestWritePNGProducesValidImage(t *testing.T) {
	g, err := grid.NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	res := pathway.Result{Success: true, Path: []pathway.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}}
	var buf bytes.Buffer
	if err := WritePNG(&buf, g, res, 5); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding produced PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 20 || bounds.Dy() != 15 {
		t.Fatalf("unexpected image size %dx%d", bounds.Dx(), bounds.Dy())
	}
}
