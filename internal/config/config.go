// Package config holds the startup settings shared by the executables.
package config

import (
	"errors"
	"flag"
	"fmt"

	"paintercube/internal/cube"
)

// Config is fixed once the window opens.
type Config struct {
	Width, Height int
	InitialAngle  float64
	FPS           int
	Title         string
	// ModelPath optionally names a glTF file supplying the eight base vertices.
	ModelPath string
	Debug     bool
}

func Default() Config {
	return Config{
		Width:        400,
		Height:       600,
		InitialAngle: cube.DefaultInitialAngle,
		FPS:          50,
		Title:        "Painter's Cube",
	}
}

// RegisterFlags binds the fields of c to flags on fs. Current values become
// the flag defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Viewport width in pixels.")
	fs.IntVar(&c.Height, "height", c.Height, "Viewport height in pixels.")
	fs.Float64Var(&c.InitialAngle, "angle", c.InitialAngle, "Initial orientation in degrees, applied on X, Y and Z.")
	fs.IntVar(&c.FPS, "fps", c.FPS, "Target frames per second.")
	fs.StringVar(&c.Title, "title", c.Title, "Window title.")
	fs.StringVar(&c.ModelPath, "model", c.ModelPath, "Optional .gltf/.glb file with the 8 cube corners.")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Show frame rate and rotation.")
}

func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	return errors.Join(errs...)
}

// Mesh builds the cube described by c, reading its corners from ModelPath
// when set.
func (c Config) Mesh() (*cube.Mesh, error) {
	if c.ModelPath == "" {
		return cube.NewCube(c.Width, c.Height, c.InitialAngle), nil
	}
	verts, err := cube.LoadVerticesFile(c.ModelPath)
	if err != nil {
		return nil, err
	}
	return cube.NewMesh(verts, c.Width, c.Height, c.InitialAngle)
}
