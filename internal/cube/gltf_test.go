package cube

import (
	"strings"
	"testing"

	"paintercube/internal/geom"
)

func TestLoadVerticesFile(t *testing.T) {
	verts, err := LoadVerticesFile("testdata/cube.gltf")
	if err != nil {
		t.Fatal(err)
	}
	if len(verts) != VertexCount {
		t.Fatalf("len = %d, want %d", len(verts), VertexCount)
	}
	for i, v := range verts {
		want := geom.V3(Corners[i].X*2, Corners[i].Y*2, Corners[i].Z*2)
		if v != want {
			t.Errorf("vertex %d = %v, want %v", i, v, want)
		}
	}
	if _, err := NewMesh(verts, 400, 600, 25); err != nil {
		t.Errorf("NewMesh: %v", err)
	}
}

func TestLoadVerticesErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"wrong vertex count", "testdata/triangle.gltf", "3 positions"},
		{"missing file", "testdata/nope.gltf", "read testdata/nope.gltf"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadVerticesFile(tc.path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %v, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadVerticesNoMesh(t *testing.T) {
	_, err := LoadVertices(strings.NewReader(`{"asset":{"version":"2.0"}}`))
	if err == nil || !strings.Contains(err.Error(), "no mesh") {
		t.Errorf("err = %v", err)
	}
}
