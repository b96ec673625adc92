// Command cube-ebiten shows the painter's cube using ebiten. The mouse
// position sets the rotation; close the window or press Escape to quit.
package main

import (
	"flag"
	"log"

	"paintercube/internal/config"
	"paintercube/internal/display/ebitenwin"
)

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

	if err := ebitenwin.Run(cfg, mesh); err != nil {
		log.Fatalln(err)
	}
}
