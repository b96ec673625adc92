// Package glfwwin presents the software canvas in a glfw window through an
// OpenGL texture. All functions must be called from the main OS thread.
package glfwwin

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"paintercube/internal/config"
	"paintercube/internal/render"
)

// Window is both the Surface and the Input of the application. Polygons are
// drawn by the embedded Canvas; Present copies the canvas to the screen.
type Window struct {
	*render.Canvas

	win     *glfw.Window
	program uint32
	vao     uint32
	vbo     uint32
	tex     uint32
	texUnit int32

	width, height int
	title         string
	debug         bool

	frameInterval float64
	nextFrame     float64
	lastFpsTime   float64
	frameCount    int
	lastPointer   [2]int
}

// Full-screen quad as a triangle strip: x, y, u, v. Texture row 0 is the top
// of the canvas.
var quad = []float32{
	-1, -1, 0, 1,
	1, -1, 1, 1,
	-1, 1, 0, 0,
	1, 1, 1, 0,
}

var (
	vertexShaderSource = `
		#version 410
		in vec2 vp;
		in vec2 vt;
		out vec2 uv;
		void main() {
			uv = vt;
			gl_Position = vec4(vp, 0.0, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		uniform sampler2D frame;
		in vec2 uv;
		out vec4 frag_colour;
		void main() {
			frag_colour = texture(frame, uv);
		}
	` + "\x00"
)

// Open initializes glfw, creates a non-resizable window of the configured
// size and prepares the GL objects used by Present.
func Open(cfg config.Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("init gl: %w", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	// Frames are paced in Present.
	glfw.SwapInterval(0)

	w := &Window{
		Canvas:        render.NewCanvas(cfg.Width, cfg.Height),
		win:           win,
		width:         cfg.Width,
		height:        cfg.Height,
		title:         cfg.Title,
		debug:         cfg.Debug,
		frameInterval: 1 / float64(cfg.FPS),
	}
	if err := w.initGL(); err != nil {
		w.Close()
		return nil, err
	}

	win.SetKeyCallback(func(win *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
		}
	})

	now := glfw.GetTime()
	w.nextFrame = now
	w.lastFpsTime = now
	return w, nil
}

func (w *Window) initGL() error {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	w.program = program
	gl.UseProgram(program)
	w.texUnit = gl.GetUniformLocation(program, gl.Str("frame\x00"))

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)

	posAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))

	uvAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vt\x00")))
	gl.EnableVertexAttribArray(uvAttrib)
	gl.VertexAttribPointer(uvAttrib, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))

	gl.GenTextures(1, &w.tex)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	pix := w.Image().Pix
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w.width), int32(w.height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl setup failed: error 0x%x", code)
	}
	return nil
}

// Present uploads the canvas, swaps buffers and sleeps until the next frame
// is due.
func (w *Window) Present() error {
	fbWidth, fbHeight := w.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(w.program)
	gl.Uniform1i(w.texUnit, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w.width), int32(w.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(w.Image().Pix))

	gl.BindVertexArray(w.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("present: gl error 0x%x", code)
	}
	w.win.SwapBuffers()
	w.pace()
	return nil
}

func (w *Window) pace() {
	now := glfw.GetTime()

	// FPS Counter Update (every 1 second)
	w.frameCount++
	if now-w.lastFpsTime >= 1.0 {
		title := fmt.Sprintf("%s | FPS: %d", w.title, w.frameCount)
		if w.debug {
			title += fmt.Sprintf(" | rotation %d, %d", w.lastPointer[0], w.lastPointer[1])
		}
		w.win.SetTitle(title)
		w.frameCount = 0
		w.lastFpsTime = now
	}

	w.nextFrame += w.frameInterval
	if wait := w.nextFrame - now; wait > 0 {
		time.Sleep(time.Duration(wait * float64(time.Second)))
	} else {
		// Running behind; do not try to catch up.
		w.nextFrame = now
	}
}

// Pointer returns the cursor position in window coordinates.
func (w *Window) Pointer() (x, y int) {
	cx, cy := w.win.GetCursorPos()
	w.lastPointer = [2]int{int(cx), int(cy)}
	return w.lastPointer[0], w.lastPointer[1]
}

// ShouldQuit processes pending window events and reports whether the window
// was closed or Escape was pressed.
func (w *Window) ShouldQuit() bool {
	glfw.PollEvents()
	return w.win.ShouldClose()
}

// Close releases GL objects and terminates glfw.
func (w *Window) Close() {
	if w.tex != 0 {
		gl.DeleteTextures(1, &w.tex)
	}
	if w.vbo != 0 {
		gl.DeleteBuffers(1, &w.vbo)
	}
	if w.vao != 0 {
		gl.DeleteVertexArrays(1, &w.vao)
	}
	if w.program != 0 {
		gl.DeleteProgram(w.program)
	}
	w.win.Destroy()
	glfw.Terminate()
}
