package asset

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/db47h/void2d/gpu"
)

// Bitmap is decoded pixel data ready for texture upload. Rows are stored top
// to bottom, with Channels bytes per pixel and no padding.
//
// Grayscale images decode to a single channel. All other images decode to
// four channels with straight alpha.
//
type Bitmap struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// FromImage converts src to a Bitmap.
//
func FromImage(src image.Image) *Bitmap {
	r := src.Bounds()
	w, h := r.Dx(), r.Dy()
	switch s := src.(type) {
	case *image.Gray:
		img := &Bitmap{Width: w, Height: h, Channels: 1, Pix: make([]byte, w*h)}
		for y := 0; y < h; y++ {
			o := s.PixOffset(r.Min.X, r.Min.Y+y)
			copy(img.Pix[y*w:(y+1)*w], s.Pix[o:o+w])
		}
		return img
	case *image.NRGBA:
		img := &Bitmap{Width: w, Height: h, Channels: 4, Pix: make([]byte, w*h*4)}
		for y := 0; y < h; y++ {
			o := s.PixOffset(r.Min.X, r.Min.Y+y)
			copy(img.Pix[y*w*4:(y+1)*w*4], s.Pix[o:o+w*4])
		}
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	return &Bitmap{Width: w, Height: h, Channels: 4, Pix: dst.Pix}
}

// Format returns the pixel format matching the bitmap channel count.
//
func (b *Bitmap) Format() gpu.PixelFormat {
	f, _ := gpu.FormatFor(b.Channels)
	return f
}

// FlipVertical reverses the order of the bitmap rows, in place. Texture
// coordinates have their origin at the bottom left, so images must be flipped
// to show upright when mapped with the default texture coordinates.
//
func (b *Bitmap) FlipVertical() {
	stride := b.Width * b.Channels
	tmp := make([]byte, stride)
	for top, bot := 0, b.Height-1; top < bot; top, bot = top+1, bot-1 {
		t := b.Pix[top*stride : (top+1)*stride]
		u := b.Pix[bot*stride : (bot+1)*stride]
		copy(tmp, t)
		copy(t, u)
		copy(u, tmp)
	}
}

// Image returns b as an image.Image sharing the same pixel data.
//
func (b *Bitmap) Image() image.Image {
	r := image.Rect(0, 0, b.Width, b.Height)
	switch b.Channels {
	case 1:
		return &image.Gray{Pix: b.Pix, Stride: b.Width, Rect: r}
	case 4:
		return &image.NRGBA{Pix: b.Pix, Stride: b.Width * 4, Rect: r}
	}
	panic(errors.Errorf("unsupported channel count %d", b.Channels))
}

// Scale returns a copy of b scaled to the given size with bilinear filtering.
// The result always has four channels.
//
func (b *Bitmap) Scale(width, height int) *Bitmap {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), b.Image(), image.Rect(0, 0, b.Width, b.Height), draw.Src, nil)
	return &Bitmap{Width: width, Height: height, Channels: 4, Pix: dst.Pix}
}

// Close implements the closer interface used by Manager.Discard.
//
func (*Bitmap) Close() error { return nil }

func loadImage(r io.Reader, name string) (interface{}, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(src), nil
}

// Image returns the named image asset. The returned Bitmap is shared by all
// callers and must not be modified; use FromImage(img.Image()) to get a
// private copy.
//
func (m *Manager) Image(name string) (*Bitmap, error) {
	a, err := m.get(Image(name))
	if err != nil {
		return nil, err
	}
	if img, ok := a.(*Bitmap); ok {
		return img, nil
	}
	return nil, errors.Errorf("asset %s is not an image", name)
}
