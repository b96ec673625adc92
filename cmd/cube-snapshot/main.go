// Command cube-snapshot renders a single frame without a window and writes it
// as a PNG. -x and -y stand in for the mouse position.
package main

import (
	"flag"
	"image"
	"log"

	"paintercube/internal/config"
	"paintercube/internal/render"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	var (
		x   = flag.Int("x", 0, "Pointer x, used as the X rotation in degrees.")
		y   = flag.Int("y", 0, "Pointer y, used as the Y rotation in degrees.")
		out = flag.String("out", "cube.png", "Output PNG file.")
	)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalln("invalid configuration:", err)
	}

	mesh, err := cfg.Mesh()
	if err != nil {
		log.Fatalln("failed to build mesh:", err)
	}

	canvas := render.NewCanvas(cfg.Width, cfg.Height)
	app := render.NewApplication(mesh, canvas, render.NewReplay(image.Pt(*x, *y)))
	if err := app.Run(); err != nil {
		log.Fatalln(err)
	}
	if err := canvas.WritePNG(*out); err != nil {
		log.Fatalln(err)
	}
	log.Println("wrote", *out)
}
