package void2d

import (
	"github.com/pkg/errors"

	"github.com/db47h/void2d/gpu"
)

type tp struct {
	wrapS, wrapT         gpu.Wrap
	minFilter, magFilter gpu.Filter
}

// TextureParameter is implemented by functions setting texture parameters. See
// Engine.AddTexture.
//
type TextureParameter interface {
	set(*tp)
}

type textureOptionFunc func(*tp)

func (f textureOptionFunc) set(p *tp) {
	f(p)
}

// Wrap sets the wrap mode along the S and T texture axes.
//
func Wrap(wrapS, wrapT gpu.Wrap) TextureParameter {
	return textureOptionFunc(func(p *tp) {
		p.wrapS = wrapS
		p.wrapT = wrapT
	})
}

// Filter sets the minifying and magnifying filters.
//
func Filter(min, mag gpu.Filter) TextureParameter {
	return textureOptionFunc(func(p *tp) {
		p.minFilter = min
		p.magFilter = mag
	})
}

func textureParams(mipmap bool, params ...TextureParameter) tp {
	p := tp{
		wrapS:     gpu.Repeat,
		wrapT:     gpu.Repeat,
		minFilter: gpu.Linear,
		magFilter: gpu.Linear,
	}
	if mipmap {
		p.minFilter = gpu.LinearMipmapLinear
	}
	for _, o := range params {
		o.set(&p)
	}
	return p
}

// texturePool hands out a fixed set of texture handles, one per texture
// batch. Slots are assigned in order, skipping those the caller picked
// explicitly.
//
type texturePool struct {
	be       gpu.Backend
	handles  []uint32
	assigned []bool
	cursor   int
}

func newTexturePool(be gpu.Backend, n int) *texturePool {
	return &texturePool{be: be, handles: be.GenTextures(n), assigned: make([]bool, n)}
}

func (p *texturePool) assign(explicit int) (int, error) {
	if explicit >= 0 {
		if explicit >= len(p.handles) {
			return NoSlot, &IndexError{What: "texture batch", Index: explicit, Limit: len(p.handles)}
		}
		p.assigned[explicit] = true
		return explicit, nil
	}
	for p.cursor < len(p.handles) && p.assigned[p.cursor] {
		p.cursor++
	}
	if p.cursor >= len(p.handles) {
		return NoSlot, ErrCapacity
	}
	i := p.cursor
	p.assigned[i] = true
	p.cursor++
	return i, nil
}

func (p *texturePool) upload(i, width, height int, format gpu.PixelFormat, pixels []byte, mipmap bool, params tp) {
	be := p.be
	be.ActiveTexture(0)
	be.BindTexture(p.handles[i])
	be.TexParameter(gpu.TextureWrapS, int32(params.wrapS))
	be.TexParameter(gpu.TextureWrapT, int32(params.wrapT))
	be.TexParameter(gpu.TextureMinFilter, int32(params.minFilter))
	be.TexParameter(gpu.TextureMagFilter, int32(params.magFilter))
	be.TexImage2D(width, height, format, pixels)
	if mipmap {
		be.GenerateMipmap()
	}
}

func (p *texturePool) release() {
	if len(p.handles) == 0 {
		return
	}
	p.be.DeleteTextures(p.handles)
	p.handles = nil
	p.assigned = nil
}

func validateTexture(width, height int, format gpu.PixelFormat, pixels []byte, params tp) error {
	if pixels == nil {
		return ErrNilPixels
	}
	if width <= 0 || height <= 0 {
		return errors.Errorf("invalid texture size %dx%d", width, height)
	}
	c := format.Channels()
	if c == 0 {
		return errors.Errorf("invalid pixel format %#x", uint32(format))
	}
	if n := width * height * c; len(pixels) < n {
		return errors.Errorf("%d bytes of pixel data for a %dx%d texture with %d channels, need %d", len(pixels), width, height, c, n)
	}
	if params.magFilter.Mipmapped() {
		return errors.New("magnifying filter cannot use mipmaps")
	}
	return nil
}
