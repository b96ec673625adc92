// Command cube-gl shows the painter's cube in a glfw window. The mouse
// position sets the rotation; close the window or press Escape to quit.
package main

import (
	"flag"
	"log"
	"runtime"

	"paintercube/internal/config"
	"paintercube/internal/display/glfwwin"
	"paintercube/internal/render"
)

func init() {
	// glfw and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalln("invalid configuration:", err)
	}

	mesh, err := cfg.Mesh()
	if err != nil {
		log.Fatalln("failed to build mesh:", err)
	}

	win, err := glfwwin.Open(cfg)
	if err != nil {
		log.Fatalln(err)
	}
	defer win.Close()

	log.Printf("rendering %dx%d at %d fps", cfg.Width, cfg.Height, cfg.FPS)
	app := render.NewApplication(mesh, win, win)
	if err := app.Run(); err != nil {
		log.Fatalln(err)
	}
	log.Printf("quit after %d frames", app.Frames())
}
