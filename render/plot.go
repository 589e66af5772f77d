package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/arvi-lang/pathway"
	"github.com/arvi-lang/pathway/grid"
)

var (
	wallColor  color.Color = color.Gray{Y: 200}
	floorColor color.Color = color.White
	pathColor  color.Color = color.RGBA{R: 0, G: 200, B: 0, A: 255}
)

// WritePNG draws each cell of g in white, or in light grey where the cell
// has no open step at all (mask 0), with the solved path overlaid in green, cellPixels across per
// cell, and encodes it as a PNG to w. This is a deliberately simple
// per-cell plot, not a faithful port of the original program's
// three-times-oversampled wall diagram — see DESIGN.md.
func WritePNG(w io.Writer, g *grid.Grid, res pathway.Result, cellPixels int) error {
	if cellPixels < 1 {
		return fmt.Errorf("render: cellPixels must be >= 1, got %d", cellPixels)
	}
	img := image.NewRGBA(image.Rect(0, 0, g.Width*cellPixels, g.Height*cellPixels))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := floorColor
			if g.Mask(g.ToID(x, y)) == 0 {
				c = wallColor
			}
			fillCell(img, x, y, cellPixels, c)
		}
	}
	if res.Success {
		for _, p := range res.Path {
			fillCell(img, p.X, p.Y, cellPixels, pathColor)
		}
	}
	return png.Encode(w, img)
}

func fillCell(img *image.RGBA, cellX, cellY, cellPixels int, c color.Color) {
	x0, y0 := cellX*cellPixels, cellY*cellPixels
	for dy := 0; dy < cellPixels; dy++ {
		for dx := 0; dx < cellPixels; dx++ {
			img.Set(x0+dx, y0+dy, c)
		}
	}
}
