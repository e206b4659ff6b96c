package app

import (
	"fmt"
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/db47h/void2d"
	"github.com/db47h/void2d/gl"
	"github.com/db47h/void2d/gpu"
)

// DriverVersion returns the GLFW and OpenGL versions in use. It must be called
// with a current graphics context.
//
func DriverVersion() string {
	return fmt.Sprintf("GLFW %s - %s %s", glfw.GetVersionString(), gl.Vendor(), gl.Version())
}

// Driver is a void2d.Driver for OpenGL 3.3 core contexts created by GLFW.
//
type Driver struct {
	cfg         winCfg
	initialized bool
}

var _ void2d.Driver = (*Driver)(nil)

// New returns a new driver. GLFW is initialized when the first window is
// created.
//
func New(opts ...WindowOption) *Driver {
	d := &Driver{cfg: defaultWinCfg()}
	for _, o := range opts {
		o.set(&d.cfg)
	}
	return d
}

// CreateWindow implements void2d.Driver.
//
func (d *Driver) CreateWindow(title string, width, height int) (void2d.Window, error) {
	if !d.initialized {
		if err := glfw.Init(); err != nil {
			return nil, errors.Wrap(err, "glfw init")
		}
		d.initialized = true
	}
	cfg := &d.cfg

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, cfg.samples)
	glfw.WindowHint(glfw.Resizable, boolHint(!cfg.fixed))

	var monitor *glfw.Monitor
	if cfg.fullScreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		glfw.WindowHint(glfw.RedBits, mode.RedBits)
		glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
		glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		width = mode.Width
		height = mode.Height
	}
	positioned := !cfg.fullScreen && cfg.x >= 0 && cfg.y >= 0
	glfw.WindowHint(glfw.Visible, boolHint(!cfg.hidden && !positioned))

	w, err := glfw.CreateWindow(width, height, title, monitor, nil)
	if err != nil {
		return nil, errors.Wrap(err, "glfw create window")
	}
	if positioned {
		w.SetPos(cfg.x, cfg.y)
		if !cfg.hidden {
			w.Show()
		}
	}
	if cfg.escape {
		w.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
			if key == glfw.KeyEscape && action == glfw.Press {
				w.SetShouldClose(true)
			}
		})
	}
	return &window{glfw: w, interval: cfg.interval}, nil
}

// Backend implements void2d.Driver.
//
func (d *Driver) Backend() (gpu.Backend, error) {
	be, err := gl.Init()
	if err != nil {
		return nil, err
	}
	log.Print(DriverVersion())
	return be, nil
}

// Now implements void2d.Driver.
//
func (d *Driver) Now() float64 {
	return glfw.GetTime()
}

// PollEvents implements void2d.Driver.
//
func (d *Driver) PollEvents() {
	glfw.PollEvents()
}

// Terminate implements void2d.Driver.
//
func (d *Driver) Terminate() {
	if d.initialized {
		glfw.Terminate()
		d.initialized = false
	}
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

type window struct {
	glfw     *glfw.Window
	interval int
}

// NativeHandle returns the underlying *glfw.Window.
//
func (w *window) NativeHandle() interface{} {
	return w.glfw
}

func (w *window) MakeCurrent() {
	w.glfw.MakeContextCurrent()
	glfw.SwapInterval(w.interval)
}

func (w *window) ShouldClose() bool     { return w.glfw.ShouldClose() }
func (w *window) SetShouldClose(b bool) { w.glfw.SetShouldClose(b) }
func (w *window) SwapBuffers()          { w.glfw.SwapBuffers() }
func (w *window) SetTitle(title string) { w.glfw.SetTitle(title) }
func (w *window) Destroy()              { w.glfw.Destroy() }

func (w *window) FramebufferSize() (width, height int) {
	return w.glfw.GetFramebufferSize()
}

func (w *window) SetResizeCallback(f func(width, height int)) {
	if f == nil {
		w.glfw.SetFramebufferSizeCallback(nil)
		return
	}
	w.glfw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		f(width, height)
	})
}
