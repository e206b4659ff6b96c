package gl

import (
	"unsafe"

	ogl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"

	"github.com/db47h/void2d/gpu"
)

// Backend is a gpu.Backend that forwards to the current OpenGL context.
//
type Backend struct {
	initialized bool
}

var _ gpu.Backend = (*Backend)(nil)

// Initialized implements gpu.Backend.
//
func (b *Backend) Initialized() bool { return b != nil && b.initialized }

func (b *Backend) GenVertexArrays(n int) []uint32 {
	ids := make([]uint32, n)
	if n > 0 {
		ogl.GenVertexArrays(int32(n), &ids[0])
	}
	return ids
}

func (b *Backend) DeleteVertexArrays(ids []uint32) {
	if len(ids) > 0 {
		ogl.DeleteVertexArrays(int32(len(ids)), &ids[0])
	}
}

func (b *Backend) BindVertexArray(id uint32) { ogl.BindVertexArray(id) }

func (b *Backend) GenBuffers(n int) []uint32 {
	ids := make([]uint32, n)
	if n > 0 {
		ogl.GenBuffers(int32(n), &ids[0])
	}
	return ids
}

func (b *Backend) DeleteBuffers(ids []uint32) {
	if len(ids) > 0 {
		ogl.DeleteBuffers(int32(len(ids)), &ids[0])
	}
}

func (b *Backend) BindBuffer(target gpu.BufferTarget, id uint32) {
	ogl.BindBuffer(uint32(target), id)
}

func (b *Backend) ReserveBuffer(target gpu.BufferTarget, size int, usage gpu.Usage) {
	ogl.BufferData(uint32(target), size, nil, uint32(usage))
}

func (b *Backend) BufferSubFloats(target gpu.BufferTarget, offset int, data []float32) {
	if len(data) == 0 {
		return
	}
	ogl.BufferSubData(uint32(target), offset, len(data)*4, ogl.Ptr(data))
}

func (b *Backend) BufferIndices(target gpu.BufferTarget, data []uint32, usage gpu.Usage) {
	if len(data) == 0 {
		ogl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	ogl.BufferData(uint32(target), len(data)*4, ogl.Ptr(data), uint32(usage))
}

func (b *Backend) VertexAttrib(index uint32, size int32, stride int32, offset int) {
	ogl.VertexAttribPointerWithOffset(index, size, ogl.FLOAT, false, stride, uintptr(offset))
}

func (b *Backend) EnableVertexAttrib(index uint32) { ogl.EnableVertexAttribArray(index) }

func (b *Backend) DrawTriangles(count int) {
	ogl.DrawElements(ogl.TRIANGLES, int32(count), ogl.UNSIGNED_INT, nil)
}

func (b *Backend) GenTextures(n int) []uint32 {
	ids := make([]uint32, n)
	if n > 0 {
		ogl.GenTextures(int32(n), &ids[0])
	}
	return ids
}

func (b *Backend) DeleteTextures(ids []uint32) {
	if len(ids) > 0 {
		ogl.DeleteTextures(int32(len(ids)), &ids[0])
	}
}

func (b *Backend) ActiveTexture(unit int) { ogl.ActiveTexture(ogl.TEXTURE0 + uint32(unit)) }

func (b *Backend) BindTexture(id uint32) { ogl.BindTexture(ogl.TEXTURE_2D, id) }

func (b *Backend) TexParameter(p gpu.TexParam, value int32) {
	ogl.TexParameteri(ogl.TEXTURE_2D, uint32(p), value)
}

func (b *Backend) TexImage2D(width, height int, format gpu.PixelFormat, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = ogl.Ptr(pixels)
	}
	// rows of RGB or single channel images are not 4 byte aligned
	ogl.PixelStorei(ogl.UNPACK_ALIGNMENT, 1)
	ogl.TexImage2D(ogl.TEXTURE_2D, 0, int32(format), int32(width), int32(height), 0, uint32(format), ogl.UNSIGNED_BYTE, ptr)
}

func (b *Backend) GenerateMipmap() { ogl.GenerateMipmap(ogl.TEXTURE_2D) }

func (b *Backend) CompileShader(stage gpu.ShaderStage, source string) (uint32, error) {
	s := ogl.CreateShader(uint32(stage))
	src, free := ogl.Strs(source + "\x00")
	ogl.ShaderSource(s, 1, src, nil)
	free()
	ogl.CompileShader(s)

	var status int32
	ogl.GetShaderiv(s, ogl.COMPILE_STATUS, &status)
	if status == ogl.FALSE {
		var n int32
		ogl.GetShaderiv(s, ogl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(n int32, p *uint8) { ogl.GetShaderInfoLog(s, n, nil, p) })
		ogl.DeleteShader(s)
		return 0, errors.Errorf("compile %s shader: %s", stage, msg)
	}
	return s, nil
}

func (b *Backend) LinkProgram(shaders ...uint32) (uint32, error) {
	p := ogl.CreateProgram()
	for _, s := range shaders {
		ogl.AttachShader(p, s)
	}
	ogl.LinkProgram(p)

	var status int32
	ogl.GetProgramiv(p, ogl.LINK_STATUS, &status)
	if status == ogl.FALSE {
		var n int32
		ogl.GetProgramiv(p, ogl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(n int32, ptr *uint8) { ogl.GetProgramInfoLog(p, n, nil, ptr) })
		ogl.DeleteProgram(p)
		return 0, errors.Errorf("link program: %s", msg)
	}
	for _, s := range shaders {
		ogl.DetachShader(p, s)
	}
	return p, nil
}

func (b *Backend) DeleteShader(id uint32)  { ogl.DeleteShader(id) }
func (b *Backend) DeleteProgram(id uint32) { ogl.DeleteProgram(id) }
func (b *Backend) UseProgram(id uint32)    { ogl.UseProgram(id) }

func (b *Backend) UniformLocation(program uint32, name string) int32 {
	return ogl.GetUniformLocation(program, cstr(name))
}

func (b *Backend) Uniform1i(location int32, v int32)      { ogl.Uniform1i(location, v) }
func (b *Backend) Uniform1ui(location int32, v uint32)    { ogl.Uniform1ui(location, v) }
func (b *Backend) Uniform1f(location int32, v float32)    { ogl.Uniform1f(location, v) }
func (b *Backend) Uniform2f(location int32, x, y float32) { ogl.Uniform2f(location, x, y) }
func (b *Backend) Uniform3f(location int32, x, y, z float32) {
	ogl.Uniform3f(location, x, y, z)
}
func (b *Backend) Uniform4f(location int32, x, y, z, w float32) {
	ogl.Uniform4f(location, x, y, z, w)
}

func (b *Backend) ClearColor(r, g, bl, a float32) { ogl.ClearColor(r, g, bl, a) }
func (b *Backend) Clear(mask gpu.ClearMask)       { ogl.Clear(uint32(mask)) }

func (b *Backend) Viewport(x, y, width, height int) {
	ogl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (b *Backend) EnableDepthTest(fn gpu.DepthFunc) {
	ogl.Enable(ogl.DEPTH_TEST)
	ogl.DepthFunc(uint32(fn))
}
