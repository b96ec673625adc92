// Package render drives the per-frame draw loop: it samples input, asks the
// mesh for depth-ordered polygons and paints them back to front on a Surface.
package render

import (
	"image"
	"image/color"
)

// Surface is the display the loop paints on. Implementations own windowing,
// pixel drawing and frame pacing.
type Surface interface {
	// Clear fills the whole frame with c.
	Clear(c color.RGBA)
	// FillPolygon fills the closed polygon through points.
	FillPolygon(points []image.Point, c color.RGBA)
	// StrokePolygon outlines the closed polygon through points.
	StrokePolygon(points []image.Point, c color.RGBA, width float64)
	// Present shows the finished frame.
	Present() error
}

// Input supplies the rotation driver and the quit signal. Both are polled
// once per frame.
type Input interface {
	// Pointer returns the pointer position in screen coordinates.
	Pointer() (x, y int)
	ShouldQuit() bool
}
