package render

import (
	"image/color"

	"paintercube/internal/cube"
)

// OutlineWidth is the stroke width of the seam drawn around every face.
const OutlineWidth = 3

// Black is the background and outline color.
var Black = color.RGBA{0, 0, 0, 0xff}

// Draw clears s to black and paints polys in order, each as a fill followed
// by a black outline. polys must already be sorted farthest first.
func Draw(s Surface, polys []cube.Polygon) {
	s.Clear(Black)
	for _, p := range polys {
		s.FillPolygon(p.Points, p.Color)
		s.StrokePolygon(p.Points, Black, OutlineWidth)
	}
}
