// Package gputest provides an in-memory gpu.Backend that records state
// changes and draw calls, for use in tests that must run without a graphics
// context.
//
package gputest

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/db47h/void2d/gpu"
)

// Buffer is the recorded state of a buffer object.
//
type Buffer struct {
	Size     int // storage size in bytes
	Usage    gpu.Usage
	Floats   []float32
	Indices  []uint32
	Reserves int // number of storage (re)allocations
	Writes   int // number of data uploads, full or partial
}

// Attrib is a recorded vertex attribute pointer.
//
type Attrib struct {
	Size   int32
	Stride int32
	Offset int
	Buffer uint32
}

// VertexArray is the recorded state of a vertex array object.
//
type VertexArray struct {
	ElementBuffer uint32
	Attribs       map[uint32]Attrib
	Enabled       map[uint32]bool
}

// Texture is the recorded state of a texture object.
//
type Texture struct {
	Width, Height int
	Format        gpu.PixelFormat
	Pixels        []byte
	Params        map[gpu.TexParam]int32
	Mipmaps       int
	Uploads       int
}

// Program is the recorded state of a linked program.
//
type Program struct {
	Shaders  []uint32
	Uniforms map[string]int32
	Values   map[int32]interface{}
}

// Draw records a single DrawTriangles call.
//
type Draw struct {
	Program  uint32
	VAO      uint32
	Count    int
	Indices  []uint32
	Vertices []float32
	Textures []uint32 // texture bound to each unit, by unit
}

// Backend is a recording gpu.Backend. The zero value is not usable; use New.
//
type Backend struct {
	// NoContext makes Initialized return false.
	NoContext bool
	// FailStage, if non zero, makes CompileShader fail for that stage.
	FailStage gpu.ShaderStage
	// FailLink makes LinkProgram fail.
	FailLink bool

	VAOs     map[uint32]*VertexArray
	Buffers  map[uint32]*Buffer
	Textures map[uint32]*Texture
	Programs map[uint32]*Program
	Shaders  map[uint32]gpu.ShaderStage
	Draws    []Draw

	ClearColorValue [4]float32
	Clears          []gpu.ClearMask
	ViewportValue   [4]int
	DepthFunc       gpu.DepthFunc

	nextID  uint32
	vao     uint32
	array   uint32
	program uint32
	unit    int
	units   [gpu.MaxTextureUnits]uint32
}

var _ gpu.Backend = (*Backend)(nil)

// New returns a new Backend with an initialized pseudo context.
//
func New() *Backend {
	return &Backend{
		VAOs:     make(map[uint32]*VertexArray),
		Buffers:  make(map[uint32]*Buffer),
		Textures: make(map[uint32]*Texture),
		Programs: make(map[uint32]*Program),
		Shaders:  make(map[uint32]gpu.ShaderStage),
	}
}

func (b *Backend) id() uint32 {
	b.nextID++
	return b.nextID
}

// CurrentProgram returns the program set by the last UseProgram call.
//
func (b *Backend) CurrentProgram() uint32 { return b.program }

// BoundTexture returns the texture bound to unit.
//
func (b *Backend) BoundTexture(unit int) uint32 { return b.units[unit] }

// Reset forgets recorded draws and clears.
//
func (b *Backend) Reset() {
	b.Draws = nil
	b.Clears = nil
}

func (b *Backend) Initialized() bool { return !b.NoContext }

func (b *Backend) GenVertexArrays(n int) []uint32 {
	ids := make([]uint32, n)
	for i := range ids {
		ids[i] = b.id()
		b.VAOs[ids[i]] = &VertexArray{Attribs: make(map[uint32]Attrib), Enabled: make(map[uint32]bool)}
	}
	return ids
}

func (b *Backend) DeleteVertexArrays(ids []uint32) {
	for _, id := range ids {
		delete(b.VAOs, id)
		if b.vao == id {
			b.vao = 0
		}
	}
}

func (b *Backend) BindVertexArray(id uint32) {
	if _, ok := b.VAOs[id]; !ok && id != 0 {
		panic(fmt.Sprintf("gputest: bind of unknown vertex array %d", id))
	}
	b.vao = id
}

func (b *Backend) GenBuffers(n int) []uint32 {
	ids := make([]uint32, n)
	for i := range ids {
		ids[i] = b.id()
		b.Buffers[ids[i]] = new(Buffer)
	}
	return ids
}

func (b *Backend) DeleteBuffers(ids []uint32) {
	for _, id := range ids {
		delete(b.Buffers, id)
	}
}

func (b *Backend) BindBuffer(target gpu.BufferTarget, id uint32) {
	if _, ok := b.Buffers[id]; !ok && id != 0 {
		panic(fmt.Sprintf("gputest: bind of unknown buffer %d", id))
	}
	switch target {
	case gpu.ArrayBuffer:
		b.array = id
	case gpu.ElementArrayBuffer:
		// element buffer bindings are vertex array state
		b.currentVAO().ElementBuffer = id
	default:
		panic(fmt.Sprintf("gputest: invalid buffer target %#x", uint32(target)))
	}
}

func (b *Backend) currentVAO() *VertexArray {
	v := b.VAOs[b.vao]
	if v == nil {
		panic("gputest: no vertex array bound")
	}
	return v
}

func (b *Backend) bound(target gpu.BufferTarget) *Buffer {
	var id uint32
	switch target {
	case gpu.ArrayBuffer:
		id = b.array
	case gpu.ElementArrayBuffer:
		id = b.currentVAO().ElementBuffer
	}
	buf := b.Buffers[id]
	if buf == nil {
		panic(fmt.Sprintf("gputest: no buffer bound to target %#x", uint32(target)))
	}
	return buf
}

func (b *Backend) ReserveBuffer(target gpu.BufferTarget, size int, usage gpu.Usage) {
	buf := b.bound(target)
	buf.Size = size
	buf.Usage = usage
	buf.Floats = nil
	buf.Indices = nil
	buf.Reserves++
}

func (b *Backend) BufferSubFloats(target gpu.BufferTarget, offset int, data []float32) {
	buf := b.bound(target)
	if offset < 0 || offset%4 != 0 || offset+len(data)*4 > buf.Size {
		panic(fmt.Sprintf("gputest: sub data [%d, %d) outside of buffer storage of %d bytes", offset, offset+len(data)*4, buf.Size))
	}
	start := offset / 4
	if n := start + len(data); n > len(buf.Floats) {
		buf.Floats = append(buf.Floats, make([]float32, n-len(buf.Floats))...)
	}
	copy(buf.Floats[start:], data)
	buf.Writes++
}

func (b *Backend) BufferIndices(target gpu.BufferTarget, data []uint32, usage gpu.Usage) {
	buf := b.bound(target)
	buf.Size = len(data) * 4
	buf.Usage = usage
	buf.Indices = append([]uint32(nil), data...)
	buf.Reserves++
	buf.Writes++
}

func (b *Backend) VertexAttrib(index uint32, size int32, stride int32, offset int) {
	if b.array == 0 {
		panic("gputest: vertex attribute pointer without array buffer")
	}
	b.currentVAO().Attribs[index] = Attrib{Size: size, Stride: stride, Offset: offset, Buffer: b.array}
}

func (b *Backend) EnableVertexAttrib(index uint32) {
	b.currentVAO().Enabled[index] = true
}

func (b *Backend) DrawTriangles(count int) {
	vao := b.currentVAO()
	d := Draw{
		Program:  b.program,
		VAO:      b.vao,
		Count:    count,
		Textures: append([]uint32(nil), b.units[:]...),
	}
	if eb := b.Buffers[vao.ElementBuffer]; eb != nil {
		if count > len(eb.Indices) {
			panic(fmt.Sprintf("gputest: draw of %d indices from an element buffer holding %d", count, len(eb.Indices)))
		}
		d.Indices = append([]uint32(nil), eb.Indices[:count]...)
	}
	for _, a := range vao.Attribs {
		if vb := b.Buffers[a.Buffer]; vb != nil {
			d.Vertices = append([]float32(nil), vb.Floats...)
			break
		}
	}
	b.Draws = append(b.Draws, d)
}

func (b *Backend) GenTextures(n int) []uint32 {
	ids := make([]uint32, n)
	for i := range ids {
		ids[i] = b.id()
		b.Textures[ids[i]] = &Texture{Params: make(map[gpu.TexParam]int32)}
	}
	return ids
}

func (b *Backend) DeleteTextures(ids []uint32) {
	for _, id := range ids {
		delete(b.Textures, id)
	}
}

func (b *Backend) ActiveTexture(unit int) {
	if unit < 0 || unit >= gpu.MaxTextureUnits {
		panic(fmt.Sprintf("gputest: invalid texture unit %d", unit))
	}
	b.unit = unit
}

func (b *Backend) BindTexture(id uint32) {
	if _, ok := b.Textures[id]; !ok && id != 0 {
		panic(fmt.Sprintf("gputest: bind of unknown texture %d", id))
	}
	b.units[b.unit] = id
}

func (b *Backend) boundTexture() *Texture {
	t := b.Textures[b.units[b.unit]]
	if t == nil {
		panic("gputest: no texture bound")
	}
	return t
}

func (b *Backend) TexParameter(p gpu.TexParam, value int32) {
	b.boundTexture().Params[p] = value
}

func (b *Backend) TexImage2D(width, height int, format gpu.PixelFormat, pixels []byte) {
	t := b.boundTexture()
	if pixels != nil && len(pixels) < width*height*format.Channels() {
		panic(fmt.Sprintf("gputest: %d bytes of pixel data for a %dx%d texture with %d channels", len(pixels), width, height, format.Channels()))
	}
	t.Width, t.Height, t.Format = width, height, format
	t.Pixels = append([]byte(nil), pixels...)
	t.Uploads++
}

func (b *Backend) GenerateMipmap() {
	b.boundTexture().Mipmaps++
}

func (b *Backend) CompileShader(stage gpu.ShaderStage, source string) (uint32, error) {
	if b.FailStage == stage {
		return 0, errors.Errorf("compile %s shader: 0:1(1): error: syntax error", stage)
	}
	if source == "" {
		return 0, errors.Errorf("compile %s shader: empty source", stage)
	}
	id := b.id()
	b.Shaders[id] = stage
	return id, nil
}

func (b *Backend) LinkProgram(shaders ...uint32) (uint32, error) {
	if b.FailLink {
		return 0, errors.New("link program: error: linking failed")
	}
	for _, s := range shaders {
		if _, ok := b.Shaders[s]; !ok {
			return 0, errors.Errorf("link program: unknown shader %d", s)
		}
	}
	id := b.id()
	b.Programs[id] = &Program{
		Shaders:  append([]uint32(nil), shaders...),
		Uniforms: make(map[string]int32),
		Values:   make(map[int32]interface{}),
	}
	return id, nil
}

func (b *Backend) DeleteShader(id uint32)  { delete(b.Shaders, id) }
func (b *Backend) DeleteProgram(id uint32) { delete(b.Programs, id) }

func (b *Backend) UseProgram(id uint32) {
	if _, ok := b.Programs[id]; !ok && id != 0 {
		panic(fmt.Sprintf("gputest: use of unknown program %d", id))
	}
	b.program = id
}

func (b *Backend) UniformLocation(program uint32, name string) int32 {
	p := b.Programs[program]
	if p == nil {
		return -1
	}
	if loc, ok := p.Uniforms[name]; ok {
		return loc
	}
	loc := int32(len(p.Uniforms))
	p.Uniforms[name] = loc
	return loc
}

func (b *Backend) setUniform(location int32, v interface{}) {
	if location < 0 {
		return
	}
	p := b.Programs[b.program]
	if p == nil {
		panic("gputest: uniform set without a program in use")
	}
	p.Values[location] = v
}

// Uniform returns the last value set for the named uniform of program.
//
func (b *Backend) Uniform(program uint32, name string) interface{} {
	p := b.Programs[program]
	if p == nil {
		return nil
	}
	loc, ok := p.Uniforms[name]
	if !ok {
		return nil
	}
	return p.Values[loc]
}

func (b *Backend) Uniform1i(location int32, v int32)   { b.setUniform(location, v) }
func (b *Backend) Uniform1ui(location int32, v uint32) { b.setUniform(location, v) }
func (b *Backend) Uniform1f(location int32, v float32) { b.setUniform(location, v) }
func (b *Backend) Uniform2f(location int32, x, y float32) {
	b.setUniform(location, [2]float32{x, y})
}
func (b *Backend) Uniform3f(location int32, x, y, z float32) {
	b.setUniform(location, [3]float32{x, y, z})
}
func (b *Backend) Uniform4f(location int32, x, y, z, w float32) {
	b.setUniform(location, [4]float32{x, y, z, w})
}

func (b *Backend) ClearColor(r, g, bl, a float32) { b.ClearColorValue = [4]float32{r, g, bl, a} }
func (b *Backend) Clear(mask gpu.ClearMask)       { b.Clears = append(b.Clears, mask) }

func (b *Backend) Viewport(x, y, width, height int) {
	b.ViewportValue = [4]int{x, y, width, height}
}

func (b *Backend) EnableDepthTest(fn gpu.DepthFunc) { b.DepthFunc = fn }
