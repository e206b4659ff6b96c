package void2d

import (
	"github.com/pkg/errors"

	"github.com/db47h/void2d/gpu"
	"github.com/db47h/void2d/shader"
)

// MaxBatchTextures is the maximum number of textures bound by a RenderBatch.
//
const MaxBatchTextures = gpu.MaxTextureUnits

// A RenderBatch accumulates the geometry drawn with a single program and a
// single set of textures, then submits it in one draw call.
//
// Vertices are stored in a GeometryStore slot owned by the batch. Elements
// passed to AppendGeometry are local to the vertices appended with them; the
// batch rebases them so that they refer to the right vertices in the combined
// vertex sequence.
//
type RenderBatch struct {
	store    *GeometryStore
	slot     int
	program  *shader.Program
	elements []uint32
	last     int // index of the last appended vertex, -1 when empty
	textures []uint32
}

// NewRenderBatch returns an empty batch drawing the geometry of the given
// store slot with program.
//
func NewRenderBatch(store *GeometryStore, slot int, program *shader.Program) (*RenderBatch, error) {
	if _, err := store.slot(slot); err != nil {
		return nil, err
	}
	return &RenderBatch{store: store, slot: slot, program: program, last: -1}, nil
}

// DefineVertexLayout fixes the vertex layout of the batch. See
// GeometryStore.DefineLayout.
//
func (b *RenderBatch) DefineVertexLayout(layout Layout, usage gpu.Usage, reserved int) error {
	return b.store.DefineLayout(b.slot, layout, usage, reserved, nil)
}

// EnableAttributes enables the given vertex attributes.
//
func (b *RenderBatch) EnableAttributes(attrs ...uint32) error {
	return b.store.EnableAttributes(b.slot, attrs...)
}

// Clear empties the batch. Bound textures are kept.
//
func (b *RenderBatch) Clear() {
	b.elements = b.elements[:0]
	b.last = -1
	_ = b.store.Clear(b.slot)
}

// AppendGeometry appends vertices to the batch along with the elements
// (indices into vertices) describing its triangles.
//
// vertices must hold a whole number of vertices of the batch layout and all
// elements must be lower than that number of vertices. The batch is left
// unchanged on error.
//
func (b *RenderBatch) AppendGeometry(vertices []float32, elements []uint32) error {
	stride, err := b.store.Stride(b.slot)
	if err != nil {
		return err
	}
	if len(vertices)%stride != 0 {
		return errors.Wrapf(ErrStride, "%d floats for a stride of %d", len(vertices), stride)
	}
	n := len(vertices) / stride
	for _, e := range elements {
		if int(e) >= n {
			return errors.Wrapf(ErrElementRange, "element %d with %d vertices", e, n)
		}
	}
	if err = b.store.AppendVertices(b.slot, vertices); err != nil {
		return err
	}
	base := uint32(b.last + 1)
	for _, e := range elements {
		b.elements = append(b.elements, base+e)
	}
	b.last += n
	return nil
}

// BindTexture assigns the texture handle to a texture unit of the batch and
// returns that unit.
//
// If unit is in the range of already assigned units, the texture replaces the
// one at that unit. Otherwise it is assigned to the next free unit. When all
// MaxBatchTextures units are taken, BindTexture returns NoSlot and ErrCapacity.
//
func (b *RenderBatch) BindTexture(handle uint32, unit int) (int, error) {
	if unit >= 0 && unit < len(b.textures) {
		b.textures[unit] = handle
		return unit, nil
	}
	if len(b.textures) >= MaxBatchTextures {
		return NoSlot, ErrCapacity
	}
	b.textures = append(b.textures, handle)
	return len(b.textures) - 1, nil
}

// Draw draws the batch content. If redraw is false, the vertices and elements
// accumulated since the last draw are uploaded first. If redraw is true, the
// previously uploaded geometry is drawn again.
//
func (b *RenderBatch) Draw(redraw bool) error {
	be := b.store.be
	b.program.Use()
	for i, t := range b.textures {
		be.ActiveTexture(i)
		be.BindTexture(t)
	}
	if !redraw {
		if err := b.store.Upload(b.slot); err != nil {
			return err
		}
		if err := b.store.UploadElements(b.slot, b.elements, gpu.DynamicDraw); err != nil {
			return err
		}
	}
	return b.store.Draw(b.slot)
}

// Slot returns the geometry store slot of the batch.
//
func (b *RenderBatch) Slot() int { return b.slot }

// Program returns the program the batch draws with.
//
func (b *RenderBatch) Program() *shader.Program { return b.program }

// Elements returns the rebased elements of the batch. The returned slice must
// not be modified.
//
func (b *RenderBatch) Elements() []uint32 { return b.elements }

// Vertices returns the vertex data of the batch. The returned slice must not
// be modified.
//
func (b *RenderBatch) Vertices() []float32 {
	v, _ := b.store.Staged(b.slot)
	return v
}

// VertexCount returns the number of vertices in the batch.
//
func (b *RenderBatch) VertexCount() int { return b.last + 1 }

// LastElement returns the index of the last vertex in the batch, or -1 if the
// batch is empty.
//
func (b *RenderBatch) LastElement() int { return b.last }

// Textures returns the texture handles bound to the batch, by unit.
//
func (b *RenderBatch) Textures() []uint32 { return b.textures }
