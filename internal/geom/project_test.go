package geom

import (
	"math"
	"strings"
	"testing"
)

func TestProjectOrigin(t *testing.T) {
	p := NewProjector(400, 600)
	got := p.Project(V3(0, 0, 0))
	want := ProjectedVertex{X: 200, Y: 300, Depth: 0}
	if got != want {
		t.Errorf("Project(origin) = %+v, want %+v", got, want)
	}
}

func TestProjectFormula(t *testing.T) {
	p := NewProjector(400, 600)
	v := V3(0.25, 0.5, -0.4)
	x, y := p.ProjectF(v)
	factor := 512 / (2 - 0.4)
	if wantX := 0.25*factor + 200; math.Abs(x-wantX) > 1e-9 {
		t.Errorf("x = %v, want %v", x, wantX)
	}
	if wantY := -0.5*factor + 300; math.Abs(y-wantY) > 1e-9 {
		t.Errorf("y = %v, want %v", y, wantY)
	}
	pv := p.Project(v)
	if pv.X != int(x) || pv.Y != int(y) {
		t.Errorf("Project = (%d, %d), want (%d, %d)", pv.X, pv.Y, int(x), int(y))
	}
	if pv.Depth != v.Z {
		t.Errorf("Depth = %v, want pre-projection z %v", pv.Depth, v.Z)
	}
}

func TestProjectYInverted(t *testing.T) {
	p := NewProjector(400, 600)
	up := p.Project(V3(0, 0.5, 0))
	down := p.Project(V3(0, -0.5, 0))
	if up.Y >= 300 || down.Y <= 300 {
		t.Errorf("model +y should land above center, got up=%d down=%d", up.Y, down.Y)
	}
}

func TestProjectFartherIsSmaller(t *testing.T) {
	p := NewProjector(400, 600)
	prev := math.Inf(1)
	for z := -1.5; z <= 3; z += 0.25 {
		x, _ := p.ProjectF(V3(1, 0, z))
		offset := math.Abs(x - 200)
		if offset >= prev {
			t.Fatalf("offset at z=%v is %v, not smaller than %v", z, offset, prev)
		}
		prev = offset
	}
}

func TestProjectViewportOnlyShiftsCenter(t *testing.T) {
	small := NewProjector(400, 600)
	wide := NewProjector(800, 600)
	for _, v := range []Vector3{V3(0.1, 0.2, -0.3), V3(-0.4, 0.1, 0.2), V3(0.5, -0.5, 0)} {
		x1, y1 := small.ProjectF(v)
		x2, y2 := wide.ProjectF(v)
		if math.Abs((x2-x1)-200) > 1e-9 || y1 != y2 {
			t.Errorf("%v: (%v, %v) vs (%v, %v)", v, x1, y1, x2, y2)
		}
	}
}

func TestProjectCameraPlanePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "camera plane") {
			t.Errorf("panic = %v", r)
		}
	}()
	NewProjector(400, 600).Project(V3(0, 0, -DefaultViewerDistance))
}
