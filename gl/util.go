// Package gl implements gpu.Backend on top of the OpenGL 3.3 core profile.
//
// A context must be current on the calling thread before Init is called, and
// all methods must be called from that thread.
//
package gl

import (
	"strings"

	ogl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// Init loads the OpenGL function pointers for the current context and returns
// a ready to use Backend.
//
func Init() (*Backend, error) {
	if err := ogl.Init(); err != nil {
		return nil, errors.Wrap(err, "load OpenGL functions")
	}
	return &Backend{initialized: true}, nil
}

// GetGoString is a wrapper around GetString that returns a Go string.
//
func GetGoString(name uint32) string {
	p := ogl.GetString(name)
	if p == nil {
		return ""
	}
	return ogl.GoStr(p)
}

// Version returns the GL_VERSION string of the current context.
//
func Version() string {
	return GetGoString(ogl.VERSION)
}

// Vendor returns the GL_VENDOR string of the current context.
//
func Vendor() string {
	return GetGoString(ogl.VENDOR)
}

func cstr(s string) *uint8 {
	return ogl.Str(s + "\x00")
}

// infoLog allocates a zero filled buffer of n bytes, lets fill write the log
// into it and returns it as a trimmed string.
//
func infoLog(n int32, fill func(n int32, p *uint8)) string {
	if n <= 0 {
		return "no info log"
	}
	buf := strings.Repeat("\x00", int(n+1))
	fill(n, ogl.Str(buf))
	return strings.TrimSpace(strings.TrimRight(buf, "\x00"))
}
