// Package gpu defines the graphics backend primitives consumed by void2d.
//
// All enumerated types map directly to their OpenGL equivalents so that a GL
// backend can pass them through unchanged.
//
package gpu

import "fmt"

// Usage is a buffer usage hint.
//
type Usage uint32

// Usage values.
const (
	StreamDraw  Usage = 0x88E0
	StaticDraw  Usage = 0x88E4
	DynamicDraw Usage = 0x88E8
)

func (u Usage) String() string {
	switch u {
	case StreamDraw:
		return "StreamDraw"
	case StaticDraw:
		return "StaticDraw"
	case DynamicDraw:
		return "DynamicDraw"
	}
	return fmt.Sprintf("Usage(%#x)", uint32(u))
}

// BufferTarget selects a buffer binding point.
//
type BufferTarget uint32

// BufferTarget values.
const (
	ArrayBuffer        BufferTarget = 0x8892
	ElementArrayBuffer BufferTarget = 0x8893
)

// PixelFormat is the layout of texture pixel data. Pixel components are
// always unsigned bytes.
//
type PixelFormat uint32

// PixelFormat values.
const (
	Red  PixelFormat = 0x1903
	RG   PixelFormat = 0x8227
	RGB  PixelFormat = 0x1907
	RGBA PixelFormat = 0x1908
)

// Channels returns the number of components per pixel for the format, or 0
// for an unknown format.
//
func (f PixelFormat) Channels() int {
	switch f {
	case Red:
		return 1
	case RG:
		return 2
	case RGB:
		return 3
	case RGBA:
		return 4
	}
	return 0
}

// FormatFor returns the pixel format matching an image channel count as
// returned by image decoders.
//
func FormatFor(channels int) (PixelFormat, bool) {
	switch channels {
	case 1:
		return Red, true
	case 2:
		return RG, true
	case 3:
		return RGB, true
	case 4:
		return RGBA, true
	}
	return 0, false
}

// Filter selects how to filter textures when minifying or magnifying.
//
type Filter int32

// Filter values.
const (
	Nearest              Filter = 0x2600
	Linear               Filter = 0x2601
	NearestMipmapNearest Filter = 0x2700
	LinearMipmapNearest  Filter = 0x2701
	NearestMipmapLinear  Filter = 0x2702
	LinearMipmapLinear   Filter = 0x2703
)

// Mipmapped returns true if the filter samples mip levels.
//
func (f Filter) Mipmapped() bool {
	switch f {
	case NearestMipmapNearest, LinearMipmapNearest, NearestMipmapLinear, LinearMipmapLinear:
		return true
	}
	return false
}

// Wrap selects how textures wrap when texture coordinates get outside of
// the range [0, 1].
//
type Wrap int32

// Wrap values.
const (
	Repeat         Wrap = 0x2901
	ClampToBorder  Wrap = 0x812D
	ClampToEdge    Wrap = 0x812F
	MirroredRepeat Wrap = 0x8370
)

// TexParam names a texture parameter.
//
type TexParam uint32

// TexParam values.
const (
	TextureMagFilter TexParam = 0x2800
	TextureMinFilter TexParam = 0x2801
	TextureWrapS     TexParam = 0x2802
	TextureWrapT     TexParam = 0x2803
)

// ShaderStage is a shader type.
//
type ShaderStage uint32

// ShaderStage values.
const (
	FragmentShader ShaderStage = 0x8B30
	VertexShader   ShaderStage = 0x8B31
)

func (s ShaderStage) String() string {
	switch s {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("ShaderStage(%#x)", uint32(s))
}

// ClearMask selects which buffers Clear affects.
//
type ClearMask uint32

// ClearMask bits.
const (
	DepthBufferBit ClearMask = 0x00000100
	ColorBufferBit ClearMask = 0x00004000
)

// DepthFunc is a depth comparison function.
//
type DepthFunc uint32

// DepthFunc values.
const (
	Less   DepthFunc = 0x0201
	LEqual DepthFunc = 0x0203
)

// MaxTextureUnits is the number of texture units a program may sample from.
//
const MaxTextureUnits = 32

// Backend is the set of graphics primitives used by geometry stores, render
// batches and shader programs. All methods must be called from the thread
// that owns the graphics context.
//
// Byte sizes and offsets follow the usual GL conventions; float and index data
// is always 32 bits wide.
//
type Backend interface {
	// Initialized reports whether a graphics context is current and the
	// function pointers have been loaded.
	Initialized() bool

	GenVertexArrays(n int) []uint32
	DeleteVertexArrays(ids []uint32)
	BindVertexArray(id uint32)

	GenBuffers(n int) []uint32
	DeleteBuffers(ids []uint32)
	BindBuffer(target BufferTarget, id uint32)
	// ReserveBuffer allocates size bytes of uninitialized storage for the
	// buffer bound to target.
	ReserveBuffer(target BufferTarget, size int, usage Usage)
	// BufferSubFloats writes data at byte offset in the buffer bound to target.
	BufferSubFloats(target BufferTarget, offset int, data []float32)
	// BufferIndices replaces the content of the buffer bound to target.
	BufferIndices(target BufferTarget, data []uint32, usage Usage)

	// VertexAttrib configures attribute index as size floats read every
	// stride bytes starting at offset bytes in the bound array buffer.
	VertexAttrib(index uint32, size int32, stride int32, offset int)
	EnableVertexAttrib(index uint32)
	// DrawTriangles issues an indexed triangle list draw of count uint32
	// indices from the bound element buffer.
	DrawTriangles(count int)

	GenTextures(n int) []uint32
	DeleteTextures(ids []uint32)
	// ActiveTexture selects texture unit n (0 based).
	ActiveTexture(unit int)
	BindTexture(id uint32)
	TexParameter(p TexParam, value int32)
	// TexImage2D uploads pixels to the bound texture. pixels may be nil.
	TexImage2D(width, height int, format PixelFormat, pixels []byte)
	GenerateMipmap()

	// CompileShader compiles a shader stage. On failure, the returned error
	// carries the driver's info log.
	CompileShader(stage ShaderStage, source string) (uint32, error)
	LinkProgram(shaders ...uint32) (uint32, error)
	DeleteShader(id uint32)
	DeleteProgram(id uint32)
	UseProgram(id uint32)
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1ui(location int32, v uint32)
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, x, y float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)

	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	Viewport(x, y, width, height int)
	EnableDepthTest(fn DepthFunc)
}
