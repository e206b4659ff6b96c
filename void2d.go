// Package void2d is an immediate mode 2D renderer.
//
// Drawing primitives append triangles to CPU side batches. Each frame, every
// batch is submitted to the GPU in a single draw call. Batches are organized
// in groups: one group of untextured batches and one group of textured
// batches with one texture each.
//
// An Engine needs a Driver to create its window and graphics context. The app
// package provides one on top of GLFW.
//
package void2d

import (
	"time"

	"github.com/db47h/void2d/gpu"
)

// A Driver provides windowing and timing services to an Engine.
//
type Driver interface {
	// CreateWindow creates a window with an associated graphics context.
	CreateWindow(title string, width, height int) (Window, error)
	// Backend returns a backend for the current graphics context, loading
	// graphics functions as needed.
	Backend() (gpu.Backend, error)
	// Now returns the time in seconds since the driver was initialized.
	Now() float64
	// PollEvents processes pending window events.
	PollEvents()
	// Terminate releases all driver resources.
	Terminate()
}

// A Window is a native window with a graphics context.
//
type Window interface {
	MakeCurrent()
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
	SetTitle(string)
	// FramebufferSize returns the window size in pixels.
	FramebufferSize() (width, height int)
	// SetResizeCallback sets the function called when the framebuffer size
	// changes.
	SetResizeCallback(func(width, height int))
	Destroy()
}

// Handler is implemented by applications driven by an Engine.
//
// Begin is called once when the engine starts. Update is called once per frame
// with the time elapsed since the previous frame.
//
type Handler interface {
	Begin(e *Engine)
	Update(e *Engine, dt time.Duration)
}

// HandlerFuncs adapts a pair of functions to the Handler interface. Nil
// functions are ignored.
//
type HandlerFuncs struct {
	BeginFunc  func(e *Engine)
	UpdateFunc func(e *Engine, dt time.Duration)
}

// Begin implements Handler.
//
func (h HandlerFuncs) Begin(e *Engine) {
	if h.BeginFunc != nil {
		h.BeginFunc(e)
	}
}

// Update implements Handler.
//
func (h HandlerFuncs) Update(e *Engine, dt time.Duration) {
	if h.UpdateFunc != nil {
		h.UpdateFunc(e, dt)
	}
}
