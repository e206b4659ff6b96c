// Package app provides a GLFW based void2d.Driver.
//
// The driver locks the main goroutine to the main OS thread. Engines using it
// must be constructed and started from the main goroutine.
//
package app

import (
	"runtime"

	"github.com/db47h/void2d"
)

func init() {
	runtime.LockOSThread()
}

// Main creates an engine with a new driver configured with the given window
// options, constructs it and runs it until its window is closed.
//
func Main(title string, width, height int, h void2d.Handler, winOpts []WindowOption, opts ...void2d.Option) error {
	e := void2d.New(New(winOpts...), h, opts...)
	if err := e.Construct(title, width, height); err != nil {
		return err
	}
	return e.Start()
}

// A WindowOption configures the windows created by a Driver.
//
type WindowOption interface {
	set(*winCfg)
}

type winCfg struct {
	fullScreen bool
	hidden     bool
	fixed      bool
	escape     bool
	x, y       int
	samples    int
	interval   int
}

func defaultWinCfg() winCfg {
	return winCfg{x: -1, y: -1, samples: 4, interval: 1}
}

type winOption func(*winCfg)

func (f winOption) set(cfg *winCfg) {
	f(cfg)
}

// Pos sets the initial window position. Negative coordinates let the window
// manager choose.
//
func Pos(x, y int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.x, cfg.y = x, y
	})
}

// FullScreen creates full screen windows on the primary monitor, at the
// monitor's current video mode. The requested size is ignored.
//
func FullScreen() WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.fullScreen = true
	})
}

func Visible(b bool) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.hidden = !b
	})
}

func Resizable(b bool) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.fixed = !b
	})
}

// Samples sets the number of samples used for multisampling. Defaults to 4.
//
func Samples(n int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.samples = n
	})
}

// SwapInterval sets the number of screen updates to wait for before swapping
// buffers. 0 disables vsync. Defaults to 1.
//
func SwapInterval(n int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.interval = n
	})
}

// CloseOnEscape closes windows when the Escape key is pressed.
//
func CloseOnEscape() WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.escape = true
	})
}
