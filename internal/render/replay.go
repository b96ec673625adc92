package render

import "image"

// Replay is an Input that feeds one recorded pointer position per frame and
// asks to quit once all of them have been used.
type Replay struct {
	Points []image.Point
	next   int
}

func NewReplay(points ...image.Point) *Replay {
	return &Replay{Points: points}
}

func (r *Replay) Pointer() (x, y int) {
	p := r.Points[r.next]
	r.next++
	return p.X, p.Y
}

func (r *Replay) ShouldQuit() bool {
	return r.next >= len(r.Points)
}
