// Package shader manages linked GPU programs and their uniforms.
//
package shader

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/db47h/void2d/gpu"
)

// A Program is a linked vertex and fragment shader pair.
//
// The zero program (as returned by Null) is valid: using it unbinds any
// program and setting its uniforms is a no-op.
//
type Program struct {
	be       gpu.Backend
	id       uint32
	uniforms map[string]int32
}

// New compiles the given vertex and fragment shader sources and links them
// into a new program. Errors name the failing stage and carry the compiler or
// linker log.
//
func New(be gpu.Backend, vertexSource, fragmentSource string) (*Program, error) {
	vs, err := be.CompileShader(gpu.VertexShader, vertexSource)
	if err != nil {
		return nil, err
	}
	defer be.DeleteShader(vs)
	fs, err := be.CompileShader(gpu.FragmentShader, fragmentSource)
	if err != nil {
		return nil, err
	}
	defer be.DeleteShader(fs)

	id, err := be.LinkProgram(vs, fs)
	if err != nil {
		return nil, err
	}
	return &Program{be: be, id: id, uniforms: make(map[string]int32)}, nil
}

// FileLoader is implemented by asset managers that can return the raw content
// of a file.
//
type FileLoader interface {
	File(name string) ([]byte, error)
}

// Load reads the vertex and fragment shader sources from files and links them
// into a new program.
//
func Load(be gpu.Backend, fl FileLoader, vertexPath, fragmentPath string) (*Program, error) {
	vs, err := fl.File(vertexPath)
	if err != nil {
		return nil, errors.Wrap(err, "load vertex shader")
	}
	fs, err := fl.File(fragmentPath)
	if err != nil {
		return nil, errors.Wrap(err, "load fragment shader")
	}
	return New(be, string(vs), string(fs))
}

// Null returns a placeholder program with id 0.
//
func Null(be gpu.Backend) *Program {
	return &Program{be: be}
}

// ID returns the native program id.
//
func (p *Program) ID() uint32 { return p.id }

// Valid returns true if p is a successfully linked program.
//
func (p *Program) Valid() bool { return p.id != 0 }

// Use makes p the current program.
//
func (p *Program) Use() { p.be.UseProgram(p.id) }

// Delete releases the program. It is safe to call Delete more than once.
//
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	p.be.DeleteProgram(p.id)
	p.id = 0
	p.uniforms = nil
}

// Location returns the location of the named uniform, or -1 if the program
// has no such active uniform. Locations are cached.
//
func (p *Program) Location(name string) int32 {
	if p.id == 0 {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := p.be.UniformLocation(p.id, name)
	p.uniforms[name] = loc
	return loc
}

// The Set* methods set uniform values in p, which must be the current program.

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

func (p *Program) SetInt(name string, v int32) {
	if loc := p.Location(name); loc >= 0 {
		p.be.Uniform1i(loc, v)
	}
}

func (p *Program) SetUint(name string, v uint32) {
	if loc := p.Location(name); loc >= 0 {
		p.be.Uniform1ui(loc, v)
	}
}

func (p *Program) SetFloat(name string, v float32) {
	if loc := p.Location(name); loc >= 0 {
		p.be.Uniform1f(loc, v)
	}
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	if loc := p.Location(name); loc >= 0 {
		p.be.Uniform2f(loc, v[0], v[1])
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.Location(name); loc >= 0 {
		p.be.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	if loc := p.Location(name); loc >= 0 {
		p.be.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}
