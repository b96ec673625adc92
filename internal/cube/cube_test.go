package cube

import (
	"image"
	"image/color"
	"math"
	"slices"
	"testing"

	"paintercube/internal/geom"
)

func TestFacesReferenceValidVertices(t *testing.T) {
	m := NewCube(400, 600, DefaultInitialAngle)
	faces := m.Faces()
	if len(faces) != FaceCount {
		t.Fatalf("len(faces) = %d, want %d", len(faces), FaceCount)
	}
	for i, f := range faces {
		for _, vi := range f.Indices {
			if vi < 0 || vi >= len(m.Vertices()) {
				t.Errorf("face %d references vertex %d", i, vi)
			}
		}
		if f.Color.A != 0xff {
			t.Errorf("face %d color %v is not opaque", i, f.Color)
		}
	}
}

func TestFaceColors(t *testing.T) {
	want := []color.RGBA{
		{0xee, 0xee, 0xff, 0xff},
		{0x7f, 0x7c, 0xaf, 0xff},
		{0x9f, 0xb4, 0xc7, 0xff},
		{0x28, 0x58, 0x7b, 0xff},
		{0x9f, 0xb7, 0x98, 0xff},
		{0xdb, 0x29, 0x55, 0xff},
	}
	for i, f := range NewCube(400, 600, 25).Faces() {
		if f.Color != want[i] {
			t.Errorf("face %d color = %v, want %v", i, f.Color, want[i])
		}
	}
}

func TestInitialAngleIsBaked(t *testing.T) {
	m := NewCube(400, 600, 25)
	for i, v := range m.Vertices() {
		want := Corners[i].RotateX(25).RotateY(25).RotateZ(25)
		if v != want {
			t.Errorf("vertex %d = %v, want %v", i, v, want)
		}
	}
	flat := NewCube(400, 600, 0)
	for i, v := range flat.Vertices() {
		if v != Corners[i] {
			t.Errorf("zero angle vertex %d = %v, want %v", i, v, Corners[i])
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	m := NewCube(400, 600, 25)
	m.Vertices()[0] = geom.V3(9, 9, 9)
	m.Faces()[0].Indices[0] = 7
	if m.Vertices()[0] == geom.V3(9, 9, 9) {
		t.Error("Vertices exposed internal storage")
	}
	if m.Faces()[0].Indices[0] != 0 {
		t.Error("Faces exposed internal storage")
	}
}

func TestNewMeshVertexCount(t *testing.T) {
	if _, err := NewMesh(Corners[:3], 400, 600, 25); err == nil {
		t.Error("expected error for 3 vertices")
	}
	m, err := NewMesh(Corners[:], 400, 600, 25)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(m.Vertices(), NewCube(400, 600, 25).Vertices()) {
		t.Error("NewMesh(Corners) differs from NewCube")
	}
}

func TestTransformIdentityAngles(t *testing.T) {
	m := NewCube(400, 600, 25)
	got := m.Transform(0, 0)
	if len(got) != VertexCount {
		t.Fatalf("len = %d, want %d", len(got), VertexCount)
	}
	for i, pv := range got {
		want := Corners[i].RotateX(25).RotateY(25).RotateZ(25)
		if math.Abs(pv.Depth-want.Z) > 1e-12 {
			t.Errorf("vertex %d depth = %v, want %v", i, pv.Depth, want.Z)
		}
		if pv != m.Projector().Project(want) {
			t.Errorf("vertex %d = %+v, want %+v", i, pv, m.Projector().Project(want))
		}
		if pv.X < 0 || pv.X >= 400 || pv.Y < 0 || pv.Y >= 600 {
			t.Errorf("vertex %d off screen: %+v", i, pv)
		}
	}
	// The corner at the origin stays at the viewport center.
	if got[7].X != 200 || got[7].Y != 300 {
		t.Errorf("origin corner = (%d, %d), want (200, 300)", got[7].X, got[7].Y)
	}
}

func TestTransformRotatesXThenY(t *testing.T) {
	m := NewCube(400, 600, 25)
	got := m.Transform(30, 60)
	for i, v := range m.Vertices() {
		want := m.Projector().Project(v.RotateX(30).RotateY(60))
		if got[i] != want {
			t.Errorf("vertex %d = %+v, want %+v", i, got[i], want)
		}
	}
}

func TestTransformIsPure(t *testing.T) {
	m := NewCube(400, 600, 25)
	before := m.Vertices()
	a := m.Transform(123, 45)
	m.Transform(7, 300)
	b := m.Transform(123, 45)
	if !slices.Equal(a, b) {
		t.Errorf("Transform not repeatable:\n%v\n%v", a, b)
	}
	if !slices.Equal(before, m.Vertices()) {
		t.Error("Transform mutated the mesh")
	}
}

func TestViewportWidthShiftsOnlyX(t *testing.T) {
	narrow := NewCube(400, 600, 25).Transform(0, 0)
	wide := NewCube(800, 600, 25).Transform(0, 0)
	for i := range narrow {
		if wide[i].X-narrow[i].X != 200 || wide[i].Y != narrow[i].Y || wide[i].Depth != narrow[i].Depth {
			t.Errorf("vertex %d: %+v vs %+v", i, narrow[i], wide[i])
		}
	}
}

func TestFacePoints(t *testing.T) {
	m := NewCube(400, 600, 25)
	projected := m.Transform(10, 20)
	pts := m.Faces()[0].Points(projected)
	if len(pts) != 4 {
		t.Fatalf("len = %d, want 4", len(pts))
	}
	for i, vi := range []int{0, 1, 2, 3} {
		want := image.Pt(projected[vi].X, projected[vi].Y)
		if pts[i] != want {
			t.Errorf("point %d = %v, want %v", i, pts[i], want)
		}
	}
}

func TestFrameOrdersBackToFront(t *testing.T) {
	m := NewCube(400, 600, 25)
	for _, angles := range [][2]float64{{0, 0}, {30, 60}, {200, 300}, {399, 599}} {
		polys := m.Frame(angles[0], angles[1])
		if len(polys) != FaceCount {
			t.Fatalf("%v: %d polygons", angles, len(polys))
		}
		for i := 1; i < len(polys); i++ {
			if polys[i].Depth > polys[i-1].Depth {
				t.Errorf("%v: polygon %d deeper than %d", angles, i, i-1)
			}
		}
		seen := map[color.RGBA]bool{}
		for _, p := range polys {
			seen[p.Color] = true
			if len(p.Points) != 4 {
				t.Errorf("%v: polygon with %d points", angles, len(p.Points))
			}
		}
		if len(seen) != FaceCount {
			t.Errorf("%v: %d distinct faces drawn", angles, len(seen))
		}
	}
}

func TestFrameAtRest(t *testing.T) {
	polys := NewCube(400, 600, 25).Frame(0, 0)
	want := []color.RGBA{
		Faces[2].Color, Faces[3].Color, Faces[4].Color,
		Faces[5].Color, Faces[1].Color, Faces[0].Color,
	}
	for i, p := range polys {
		if p.Color != want[i] {
			t.Errorf("draw slot %d = %v, want %v", i, p.Color, want[i])
		}
	}
}
