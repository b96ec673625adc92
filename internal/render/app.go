package render

import (
	"fmt"

	"paintercube/internal/cube"
)

// Application owns everything that lives for the whole program: the mesh,
// the surface it is drawn on and the input that drives it.
type Application struct {
	mesh    *cube.Mesh
	surface Surface
	input   Input
	frames  int
}

func NewApplication(mesh *cube.Mesh, surface Surface, input Input) *Application {
	return &Application{
		mesh:    mesh,
		surface: surface,
		input:   input,
	}
}

// Frame draws and presents a single frame. The pointer position is used
// directly as the X and Y rotation in degrees.
func (a *Application) Frame() error {
	x, y := a.input.Pointer()
	Draw(a.surface, a.mesh.Frame(float64(x), float64(y)))
	if err := a.surface.Present(); err != nil {
		return err
	}
	a.frames++
	return nil
}

// Run draws frames until the input asks to quit. The quit signal is checked
// only between frames.
func (a *Application) Run() error {
	for !a.input.ShouldQuit() {
		if err := a.Frame(); err != nil {
			return fmt.Errorf("frame %d: %w", a.frames, err)
		}
	}
	return nil
}

// Frames returns the number of frames presented so far.
func (a *Application) Frames() int { return a.frames }
