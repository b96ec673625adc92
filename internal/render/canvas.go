package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"
)

// Canvas is a Surface backed by an in-memory RGBA image. Polygons are
// rasterized with anti-aliasing.
type Canvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: vector.NewRasterizer(width, height),
	}
}

// Image returns the pixels of the last drawn frame. The image is reused by
// later frames.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Clear(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) FillPolygon(points []image.Point, col color.RGBA) {
	if len(points) < 3 {
		return
	}
	c.reset()
	c.ras.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		c.ras.LineTo(float32(p.X), float32(p.Y))
	}
	c.ras.ClosePath()
	c.draw(col)
}

// StrokePolygon outlines the closed polygon. Each edge becomes a quad of the
// given width, extended by half the width past both ends so corners are
// covered. Widths of one pixel or less are drawn as hairlines.
func (c *Canvas) StrokePolygon(points []image.Point, col color.RGBA, width float64) {
	if len(points) < 2 {
		return
	}
	if width <= 1 {
		for i, p := range points {
			q := points[(i+1)%len(points)]
			DrawLine(c.img, p.X, p.Y, q.X, q.Y, col)
		}
		return
	}

	c.reset()
	half := width / 2
	for i, p := range points {
		q := points[(i+1)%len(points)]
		dx, dy := float64(q.X-p.X), float64(q.Y-p.Y)
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Unit direction scaled to half the width, and its normal.
		ux, uy := dx/length*half, dy/length*half
		nx, ny := -uy, ux

		x0, y0 := float64(p.X)-ux, float64(p.Y)-uy
		x1, y1 := float64(q.X)+ux, float64(q.Y)+uy
		c.ras.MoveTo(float32(x0+nx), float32(y0+ny))
		c.ras.LineTo(float32(x1+nx), float32(y1+ny))
		c.ras.LineTo(float32(x1-nx), float32(y1-ny))
		c.ras.LineTo(float32(x0-nx), float32(y0-ny))
		c.ras.ClosePath()
	}
	c.draw(col)
}

// Present is a no-op; a Canvas is read back through Image or WritePNG.
func (c *Canvas) Present() error { return nil }

// WritePNG encodes the current frame to a PNG file at path.
func (c *Canvas) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, c.img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func (c *Canvas) reset() {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = draw.Over
}

func (c *Canvas) draw(col color.RGBA) {
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// DrawLine draws a one pixel line on the image from (x1, y1) to (x2, y2) with a DDA walk
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		if (image.Point{X: x1, Y: y1}).In(img.Bounds()) {
			img.SetRGBA(x1, y1, col)
		}
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(x1)
	y := float64(y1)

	for i := 0; i <= int(steps); i++ {
		ix := int(math.Round(x))
		iy := int(math.Round(y))
		if ix >= 0 && ix < img.Bounds().Dx() && iy >= 0 && iy < img.Bounds().Dy() {
			offset := img.PixOffset(ix, iy)
			img.Pix[offset] = col.R
			img.Pix[offset+1] = col.G
			img.Pix[offset+2] = col.B
			img.Pix[offset+3] = col.A
		}
		x += xInc
		y += yInc
	}
}
