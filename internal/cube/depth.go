package cube

import (
	"cmp"
	"slices"

	"paintercube/internal/geom"
)

// FaceDepth is the approximate depth of one face for the current frame.
type FaceDepth struct {
	Face  int
	Depth float64
}

// AverageDepths returns, for each face in declaration order, the mean
// pre-projection Z of its four vertices.
func AverageDepths(projected []geom.ProjectedVertex, faces []Face) []FaceDepth {
	out := make([]FaceDepth, len(faces))
	for i, f := range faces {
		var z float64
		for _, vi := range f.Indices {
			z += projected[vi].Depth
		}
		out[i] = FaceDepth{Face: i, Depth: z / float64(len(f.Indices))}
	}
	return out
}

// DrawOrder returns face indices sorted by depth, largest first. Faces with
// equal depth keep their relative order.
func DrawOrder(depths []FaceDepth) []int {
	sorted := slices.Clone(depths)
	slices.SortStableFunc(sorted, func(a, b FaceDepth) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	order := make([]int, len(sorted))
	for i, d := range sorted {
		order[i] = d.Face
	}
	return order
}
