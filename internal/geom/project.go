package geom

import "fmt"

const (
	// DefaultFOV is the field of view factor used for every frame.
	DefaultFOV = 512
	// DefaultViewerDistance is the distance from the camera to the model origin.
	DefaultViewerDistance = 2
)

// ProjectedVertex is a vertex in screen space. Depth is the Z the vertex had
// before projection; it is kept only for depth sorting.
type ProjectedVertex struct {
	X, Y  int
	Depth float64
}

// Projector maps model-space points onto a viewport with a pinhole camera.
type Projector struct {
	Width, Height  int
	FOV            float64
	ViewerDistance float64
}

// NewProjector returns a projector for a width x height viewport using
// DefaultFOV and DefaultViewerDistance.
func NewProjector(width, height int) Projector {
	return Projector{
		Width:          width,
		Height:         height,
		FOV:            DefaultFOV,
		ViewerDistance: DefaultViewerDistance,
	}
}

// Project projects v to screen coordinates. Screen Y grows downward, so the
// model Y axis is inverted.
//
// A point lying in the camera plane (ViewerDistance + v.Z == 0) has no
// projection. Project panics in that case; the camera never reaches the model
// during normal operation.
func (p Projector) Project(v Vector3) ProjectedVertex {
	x, y := p.ProjectF(v)
	return ProjectedVertex{
		X:     int(x),
		Y:     int(y),
		Depth: v.Z,
	}
}

// ProjectF is Project without truncation to whole pixels.
func (p Projector) ProjectF(v Vector3) (x, y float64) {
	d := p.ViewerDistance + v.Z
	if d == 0 {
		panic(fmt.Sprintf("geom: cannot project %v: point lies in the camera plane (viewer distance %v)", v, p.ViewerDistance))
	}
	factor := p.FOV / d
	x = v.X*factor + float64(p.Width)/2
	y = -v.Y*factor + float64(p.Height)/2
	return x, y
}
