// Package ebitenwin runs the application inside an ebiten game loop and
// draws polygons with ebiten's GPU triangles.
package ebitenwin

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"paintercube/internal/config"
	"paintercube/internal/cube"
	"paintercube/internal/render"
)

// whitePixel is the source image for solid-color triangles.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Surface draws on the screen image ebiten hands to Draw.
type Surface struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func (s *Surface) Clear(c color.RGBA) {
	s.dst.Fill(c)
}

// FillPolygon draws a convex polygon as a triangle fan.
func (s *Surface) FillPolygon(points []image.Point, c color.RGBA) {
	if len(points) < 3 {
		return
	}
	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for _, p := range points {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	for i := 1; i < len(points)-1; i++ {
		s.indices = append(s.indices, 0, uint16(i), uint16(i+1))
	}
	s.dst.DrawTriangles(s.vertices, s.indices, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// StrokePolygon draws each edge as a thick line and fills the corners with
// discs so consecutive edges join without notches.
func (s *Surface) StrokePolygon(points []image.Point, c color.RGBA, width float64) {
	w := float32(width)
	for i, p := range points {
		q := points[(i+1)%len(points)]
		vector.StrokeLine(s.dst, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), w, c, true)
		vector.DrawFilledCircle(s.dst, float32(p.X), float32(p.Y), w/2, c, true)
	}
}

// Present is a no-op: ebiten shows the screen once Draw returns.
func (s *Surface) Present() error { return nil }

// Input reads the cursor and reports quit on Escape.
type Input struct{}

func (Input) Pointer() (x, y int) { return ebiten.CursorPosition() }

func (Input) ShouldQuit() bool { return inpututil.IsKeyJustPressed(ebiten.KeyEscape) }

// Game adapts the application to ebiten's Update/Draw callbacks.
type Game struct {
	cfg     config.Config
	app     *render.Application
	surface *Surface
	input   Input
	lastX   int
	lastY   int
	err     error
}

func NewGame(cfg config.Config, mesh *cube.Mesh) *Game {
	g := &Game{
		cfg:     cfg,
		surface: &Surface{},
	}
	g.app = render.NewApplication(mesh, g.surface, g.input)
	return g
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.input.ShouldQuit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	if err := g.app.Frame(); err != nil {
		g.err = fmt.Errorf("frame %d: %w", g.app.Frames(), err)
		return
	}
	if g.cfg.Debug {
		g.lastX, g.lastY = g.input.Pointer()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %0.1f  FPS %0.1f\nrotation %d, %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.lastX, g.lastY))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(cfg config.Config, mesh *cube.Mesh) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.FPS)
	return ebiten.RunGame(NewGame(cfg, mesh))
}
