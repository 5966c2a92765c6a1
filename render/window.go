// Package render holds the OpenGL side of the orrery: window, shader program, GPU meshes
// and textures. The simulation core only sees it through orrery.UniformSink and orrery.Drawer.
package render

import (
	"fmt"

	orrery "github.com/Mai2117/Sun-Earth-Moon"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the GLFW window and its GL context. It must be used from the main thread.
type Window struct {
	win           *glfw.Window
	width, height int
	onCursor      func(x, y float64)
}

// NewWindow initializes GLFW and OpenGL and opens the window with the cursor captured.
func NewWindow(conf orrery.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)

	w := &Window{win: win}
	w.width, w.height = win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w.width), int32(w.height))

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.onCursor != nil {
			w.onCursor(x, y)
		}
	})
	return w, nil
}

// OnCursor registers the cursor motion handler.
func (w *Window) OnCursor(fn func(x, y float64)) {
	w.onCursor = fn
}

// Aspect returns the framebuffer aspect ratio.
func (w *Window) Aspect() float32 {
	if w.height == 0 {
		return 1
	}
	return float32(w.width) / float32(w.height)
}

// Time returns the seconds elapsed since GLFW was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// ShouldClose returns whether the window was asked to close.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// Close asks the window to close at the end of the frame.
func (w *Window) Close() {
	w.win.SetShouldClose(true)
}

// Pressed returns whether the key bound to a simulation command is held down.
func (w *Window) Pressed(k orrery.Key) bool {
	gk, ok := commandKeys[k]
	return ok && w.win.GetKey(gk) == glfw.Press
}

// Held returns whether a raw GLFW key is held down.
func (w *Window) Held(k glfw.Key) bool {
	return w.win.GetKey(k) == glfw.Press
}

// SwapAndPoll presents the frame and processes pending events.
func (w *Window) SwapAndPoll() {
	w.win.SwapBuffers()
	glfw.PollEvents()
}

// Release destroys the window and terminates GLFW.
func (w *Window) Release() {
	w.win.Destroy()
	glfw.Terminate()
}

var commandKeys = map[orrery.Key]glfw.Key{
	orrery.KeyEscape: glfw.KeyEscape,
	orrery.KeyG:      glfw.KeyG,
	orrery.KeyH:      glfw.KeyH,
	orrery.KeyJ:      glfw.KeyJ,
	orrery.KeyF:      glfw.KeyF,
	orrery.KeyP:      glfw.KeyP,
}
