package cube

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"paintercube/internal/geom"
)

// LoadVerticesFile reads base vertices from a .gltf or .glb file. See LoadVertices.
func LoadVerticesFile(path string) ([]geom.Vector3, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	verts, err := LoadVertices(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return verts, nil
}

// LoadVertices decodes a glTF document and returns the POSITION attribute of
// the first primitive of the first mesh. The document must embed its buffers
// and hold exactly VertexCount positions, ordered like Corners.
func LoadVertices(r io.Reader) ([]geom.Vector3, error) {
	doc := gltf.NewDocument()
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("gltf: decode: %w", err)
	}

	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, fmt.Errorf("gltf: document has no mesh primitives")
	}
	prim := doc.Meshes[0].Primitives[0]
	accessor, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("gltf: primitive has no %s attribute", gltf.POSITION)
	}
	if int(accessor) >= len(doc.Accessors) {
		return nil, fmt.Errorf("gltf: %s accessor %d out of range", gltf.POSITION, accessor)
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[accessor], nil)
	if err != nil {
		return nil, fmt.Errorf("gltf: read positions: %w", err)
	}
	if len(positions) != VertexCount {
		return nil, fmt.Errorf("gltf: mesh has %d positions, want %d", len(positions), VertexCount)
	}

	verts := make([]geom.Vector3, len(positions))
	for i, p := range positions {
		verts[i] = geom.V3(float64(p[0]), float64(p[1]), float64(p[2]))
	}
	return verts, nil
}
