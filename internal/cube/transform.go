package cube

import "paintercube/internal/geom"

// Transform rotates every base vertex around X by angleX, then around Y by
// angleY (both in degrees), and projects it. Output index i belongs to vertex i.
func (m *Mesh) Transform(angleX, angleY float64) []geom.ProjectedVertex {
	out := make([]geom.ProjectedVertex, len(m.vertices))
	for i, v := range m.vertices {
		out[i] = m.projector.Project(v.RotateX(angleX).RotateY(angleY))
	}
	return out
}

// Frame runs the whole per-frame pipeline and returns one polygon per face,
// farthest first.
func (m *Mesh) Frame(angleX, angleY float64) []Polygon {
	projected := m.Transform(angleX, angleY)
	faces := m.Faces()
	depths := AverageDepths(projected, faces)

	polys := make([]Polygon, 0, len(faces))
	for _, i := range DrawOrder(depths) {
		polys = append(polys, Polygon{
			Points: faces[i].Points(projected),
			Depth:  depths[i].Depth,
			Color:  faces[i].Color,
		})
	}
	return polys
}
