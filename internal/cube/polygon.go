package cube

import (
	"image"
	"image/color"

	"paintercube/internal/geom"
)

// Polygon is a face ready to be drawn for a single frame.
type Polygon struct {
	Points []image.Point
	Depth  float64
	Color  color.RGBA
}

// Points returns the screen positions of the face corners in winding order.
func (f Face) Points(projected []geom.ProjectedVertex) []image.Point {
	pts := make([]image.Point, len(f.Indices))
	for i, vi := range f.Indices {
		pts[i] = image.Pt(projected[vi].X, projected[vi].Y)
	}
	return pts
}
