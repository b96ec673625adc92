// Package cube holds the cube mesh and the per-frame geometry pipeline that
// turns it into depth-ordered polygons: rotate, project, average face depth,
// sort back to front.
package cube

import (
	"fmt"
	"image/color"

	"paintercube/internal/geom"
)

const (
	// VertexCount is the number of corners of the mesh.
	VertexCount = 8
	// FaceCount is the number of quads of the mesh.
	FaceCount = 6
	// DefaultInitialAngle is baked into the vertices on X, Y and Z at construction.
	DefaultInitialAngle = 25
)

// Face is one quad of the mesh. Indices give the winding order used when the
// quad is filled.
type Face struct {
	Indices [4]int
	Color   color.RGBA
}

// Corners are the base vertices of the cube: side 0.5, spanning
// x in [0, 0.5], y in [0, 0.5], z in [-0.5, 0].
var Corners = [VertexCount]geom.Vector3{
	{X: 0, Y: 0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: -0.5},
	{X: 0.5, Y: 0, Z: -0.5},
	{X: 0, Y: 0, Z: -0.5},
	{X: 0, Y: 0.5, Z: 0},
	{X: 0.5, Y: 0.5, Z: 0},
	{X: 0.5, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 0},
}

// Faces is the fixed topology and coloring of the cube.
var Faces = [FaceCount]Face{
	{Indices: [4]int{0, 1, 2, 3}, Color: color.RGBA{0xee, 0xee, 0xff, 0xff}},
	{Indices: [4]int{1, 5, 6, 2}, Color: color.RGBA{0x7f, 0x7c, 0xaf, 0xff}},
	{Indices: [4]int{5, 4, 7, 6}, Color: color.RGBA{0x9f, 0xb4, 0xc7, 0xff}},
	{Indices: [4]int{4, 0, 3, 7}, Color: color.RGBA{0x28, 0x58, 0x7b, 0xff}},
	{Indices: [4]int{0, 4, 5, 1}, Color: color.RGBA{0x9f, 0xb7, 0x98, 0xff}},
	{Indices: [4]int{3, 2, 6, 7}, Color: color.RGBA{0xdb, 0x29, 0x55, 0xff}},
}

// Mesh is a cube whose initial orientation has been baked into its vertices.
// It is never modified after construction.
type Mesh struct {
	vertices  [VertexCount]geom.Vector3
	faces     [FaceCount]Face
	projector geom.Projector
}

// NewCube builds the mesh from Corners for a width x height viewport.
func NewCube(width, height int, initialAngle float64) *Mesh {
	return newMesh(Corners, width, height, initialAngle)
}

// NewMesh builds a mesh from caller supplied base vertices. The vertices must
// be ordered the way Corners is, since Faces refers to them by index.
func NewMesh(vertices []geom.Vector3, width, height int, initialAngle float64) (*Mesh, error) {
	if len(vertices) != VertexCount {
		return nil, fmt.Errorf("cube: mesh needs %d vertices, got %d", VertexCount, len(vertices))
	}
	return newMesh([VertexCount]geom.Vector3(vertices), width, height, initialAngle), nil
}

func newMesh(base [VertexCount]geom.Vector3, width, height int, initialAngle float64) *Mesh {
	m := &Mesh{
		faces:     Faces,
		projector: geom.NewProjector(width, height),
	}
	for i, v := range base {
		m.vertices[i] = v.RotateXYZ(initialAngle, initialAngle, initialAngle)
	}
	return m
}

// Vertices returns the oriented base vertices.
func (m *Mesh) Vertices() []geom.Vector3 {
	out := m.vertices
	return out[:]
}

// Faces returns the faces in declaration order.
func (m *Mesh) Faces() []Face {
	out := m.faces
	return out[:]
}

func (m *Mesh) Projector() geom.Projector { return m.projector }
