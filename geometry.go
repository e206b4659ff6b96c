package void2d

import (
	"github.com/pkg/errors"

	"github.com/db47h/void2d/gpu"
)

// Layout describes an interleaved vertex format as the number of float
// components of each attribute, in attribute index order.
//
type Layout []int

// Predefined layouts.
var (
	// LayoutColor is position (x, y, z) followed by color (r, g, b, a).
	LayoutColor = Layout{3, 4}
	// LayoutTexture is position, color and texture coordinates (u, v).
	LayoutTexture = Layout{3, 4, 2}
)

// Stride returns the number of floats per vertex.
//
func (l Layout) Stride() int {
	s := 0
	for _, n := range l {
		s += n
	}
	return s
}

func (l Layout) validate() error {
	if len(l) == 0 {
		return errors.New("empty vertex layout")
	}
	for i, n := range l {
		if n < 1 || n > 4 {
			return errors.Errorf("attribute %d: invalid component count %d", i, n)
		}
	}
	return nil
}

type geometrySlot struct {
	vao, vbo, ebo uint32
	layout        Layout
	stride        int
	usage         gpu.Usage
	capacity      int // reserved vertex storage, in floats
	staged        []float32
	dirty         bool
	elements      int // number of indices in the element buffer
	enabled       []bool
}

// A GeometryStore owns a fixed size pool of vertex array, vertex buffer and
// element buffer triples. Slots are addressed by index in [0, Cap()).
//
// Vertex data is staged on the CPU side and pushed to the GPU by Upload. GPU
// storage is reserved once by DefineLayout and reused from frame to frame; it
// only grows when the staged data no longer fits.
//
type GeometryStore struct {
	be    gpu.Backend
	slots []geometrySlot
}

// NewGeometryStore creates capacity slots, each with an empty vertex buffer,
// an empty element buffer and no enabled attributes. It fails with
// ErrNoContext if the backend has no initialized graphics context.
//
func NewGeometryStore(be gpu.Backend, capacity int) (*GeometryStore, error) {
	if be == nil || !be.Initialized() {
		return nil, ErrNoContext
	}
	if capacity <= 0 {
		return nil, errors.Errorf("invalid geometry store capacity %d", capacity)
	}
	vaos := be.GenVertexArrays(capacity)
	vbos := be.GenBuffers(capacity)
	ebos := be.GenBuffers(capacity)
	s := &GeometryStore{be: be, slots: make([]geometrySlot, capacity)}
	for i := range s.slots {
		sl := &s.slots[i]
		sl.vao, sl.vbo, sl.ebo = vaos[i], vbos[i], ebos[i]
		be.BindVertexArray(sl.vao)
		be.BindBuffer(gpu.ElementArrayBuffer, sl.ebo)
		be.BindBuffer(gpu.ArrayBuffer, sl.vbo)
	}
	be.BindVertexArray(0)
	return s, nil
}

// Cap returns the number of slots in the store.
//
func (s *GeometryStore) Cap() int { return len(s.slots) }

func (s *GeometryStore) slot(i int) (*geometrySlot, error) {
	if i < 0 || i >= len(s.slots) {
		return nil, &IndexError{What: "geometry slot", Index: i, Limit: len(s.slots)}
	}
	return &s.slots[i], nil
}

func (s *GeometryStore) definedSlot(i int) (*geometrySlot, error) {
	sl, err := s.slot(i)
	if err != nil {
		return nil, err
	}
	if sl.layout == nil {
		return nil, errors.Wrapf(ErrLayoutUndefined, "geometry slot %d", i)
	}
	return sl, nil
}

// DefineLayout fixes the vertex layout of slot i, configures its attribute
// pointers and reserves GPU storage for reserved vertices. If initial is not
// empty, it is staged and uploaded as the first vertices of the slot.
//
// A slot layout can be defined only once; subsequent calls fail with
// ErrLayoutDefined.
//
func (s *GeometryStore) DefineLayout(i int, layout Layout, usage gpu.Usage, reserved int, initial []float32) error {
	sl, err := s.slot(i)
	if err != nil {
		return err
	}
	if sl.layout != nil {
		return errors.Wrapf(ErrLayoutDefined, "geometry slot %d", i)
	}
	if err = layout.validate(); err != nil {
		return errors.Wrapf(err, "geometry slot %d", i)
	}
	stride := layout.Stride()
	if len(initial)%stride != 0 {
		return errors.Wrapf(ErrStride, "geometry slot %d: %d initial floats for a stride of %d", i, len(initial), stride)
	}
	if reserved < 0 {
		reserved = 0
	}

	sl.layout = append(Layout(nil), layout...)
	sl.stride = stride
	sl.usage = usage
	sl.capacity = reserved * stride
	if len(initial) > sl.capacity {
		sl.capacity = len(initial)
	}
	sl.enabled = make([]bool, len(layout))

	s.be.BindVertexArray(sl.vao)
	s.be.BindBuffer(gpu.ArrayBuffer, sl.vbo)
	s.be.ReserveBuffer(gpu.ArrayBuffer, sl.capacity*4, usage)
	if len(initial) > 0 {
		sl.staged = append(sl.staged[:0], initial...)
		s.be.BufferSubFloats(gpu.ArrayBuffer, 0, sl.staged)
	}
	offset := 0
	for a, n := range layout {
		s.be.VertexAttrib(uint32(a), int32(n), int32(stride*4), offset*4)
		offset += n
	}
	return nil
}

// Layout returns the vertex layout of slot i, or nil if it has not been
// defined yet.
//
func (s *GeometryStore) Layout(i int) (Layout, error) {
	sl, err := s.slot(i)
	if err != nil {
		return nil, err
	}
	return sl.layout, nil
}

// Stride returns the number of floats per vertex of slot i.
//
func (s *GeometryStore) Stride(i int) (int, error) {
	sl, err := s.definedSlot(i)
	if err != nil {
		return 0, err
	}
	return sl.stride, nil
}

// EnableAttributes enables the given vertex attributes of slot i. Enabling an
// already enabled attribute is a no-op.
//
func (s *GeometryStore) EnableAttributes(i int, attrs ...uint32) error {
	sl, err := s.definedSlot(i)
	if err != nil {
		return err
	}
	for _, a := range attrs {
		if int(a) >= len(sl.layout) {
			return &IndexError{What: "vertex attribute", Index: int(a), Limit: len(sl.layout)}
		}
	}
	s.be.BindVertexArray(sl.vao)
	for _, a := range attrs {
		if sl.enabled[a] {
			continue
		}
		s.be.EnableVertexAttrib(a)
		sl.enabled[a] = true
	}
	return nil
}

// Enabled returns true if attribute a of slot i is enabled.
//
func (s *GeometryStore) Enabled(i int, a uint32) bool {
	sl, err := s.slot(i)
	if err != nil || int(a) >= len(sl.enabled) {
		return false
	}
	return sl.enabled[a]
}

// Clear discards the staged vertices of slot i. GPU storage is kept for reuse.
//
func (s *GeometryStore) Clear(i int) error {
	sl, err := s.slot(i)
	if err != nil {
		return err
	}
	if len(sl.staged) > 0 {
		sl.staged = sl.staged[:0]
		sl.dirty = true
	}
	return nil
}

// AppendVertices stages interleaved vertex data for slot i. The number of
// floats must be a multiple of the slot stride.
//
func (s *GeometryStore) AppendVertices(i int, floats []float32) error {
	sl, err := s.definedSlot(i)
	if err != nil {
		return err
	}
	if len(floats)%sl.stride != 0 {
		return errors.Wrapf(ErrStride, "geometry slot %d: %d floats for a stride of %d", i, len(floats), sl.stride)
	}
	if len(floats) == 0 {
		return nil
	}
	sl.staged = append(sl.staged, floats...)
	sl.dirty = true
	return nil
}

// Staged returns the vertex data staged for slot i. The returned slice is only
// valid until the next call that modifies the slot.
//
func (s *GeometryStore) Staged(i int) ([]float32, error) {
	sl, err := s.slot(i)
	if err != nil {
		return nil, err
	}
	return sl.staged, nil
}

// Upload pushes the staged vertices of slot i to the GPU if they changed since
// the last upload. The vertex buffer storage is grown by doubling whenever the
// staged data does not fit.
//
func (s *GeometryStore) Upload(i int) error {
	sl, err := s.definedSlot(i)
	if err != nil {
		return err
	}
	if !sl.dirty {
		return nil
	}
	s.be.BindVertexArray(sl.vao)
	s.be.BindBuffer(gpu.ArrayBuffer, sl.vbo)
	if n := len(sl.staged); n > sl.capacity {
		c := sl.capacity
		if c < sl.stride {
			c = sl.stride
		}
		for c < n {
			c *= 2
		}
		sl.capacity = c
		s.be.ReserveBuffer(gpu.ArrayBuffer, c*4, sl.usage)
	}
	s.be.BufferSubFloats(gpu.ArrayBuffer, 0, sl.staged)
	sl.dirty = false
	return nil
}

// Dirty returns true if the staged vertices of slot i differ from the
// content of its vertex buffer.
//
func (s *GeometryStore) Dirty(i int) bool {
	sl, err := s.slot(i)
	return err == nil && sl.dirty
}

// UploadElements replaces the content of the element buffer of slot i.
//
func (s *GeometryStore) UploadElements(i int, indices []uint32, usage gpu.Usage) error {
	sl, err := s.slot(i)
	if err != nil {
		return err
	}
	s.be.BindVertexArray(sl.vao)
	s.be.BindBuffer(gpu.ElementArrayBuffer, sl.ebo)
	s.be.BufferIndices(gpu.ElementArrayBuffer, indices, usage)
	sl.elements = len(indices)
	return nil
}

// Draw draws the triangles listed in the element buffer of slot i, as last
// uploaded by UploadElements.
//
func (s *GeometryStore) Draw(i int) error {
	sl, err := s.slot(i)
	if err != nil {
		return err
	}
	if sl.elements == 0 {
		return nil
	}
	s.be.BindVertexArray(sl.vao)
	s.be.DrawTriangles(sl.elements)
	return nil
}

// Destroy releases all GPU resources held by the store. The store cannot be
// used afterwards.
//
func (s *GeometryStore) Destroy() {
	if len(s.slots) == 0 {
		return
	}
	vaos := make([]uint32, len(s.slots))
	bufs := make([]uint32, 0, 2*len(s.slots))
	for i := range s.slots {
		sl := &s.slots[i]
		vaos[i] = sl.vao
		bufs = append(bufs, sl.vbo, sl.ebo)
	}
	s.be.BindVertexArray(0)
	s.be.DeleteVertexArrays(vaos)
	s.be.DeleteBuffers(bufs)
	s.slots = nil
}
