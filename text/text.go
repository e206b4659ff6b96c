// Package text rasterizes strings into images suitable for texture upload.
//
package text

import (
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const (
	// see subPixels() in github.com/golang/freetype/truetype/face.go
	SubPixelsX = 8
	SubPixelsY = 8
)

// Hinting selects how to quantize a vector font's glyph nodes.
//
// Not all fonts support hinting.
//
// This is a convenience duplicate of golang.org/x/image/font#Hinting
//
type Hinting int

const (
	HintingNone     Hinting = Hinting(font.HintingNone)
	HintingVertical         = Hinting(font.HintingVertical)
	HintingFull             = Hinting(font.HintingFull)
)

// NewFace returns a font face for f at the given size in points, with a DPI
// of 72.
//
func NewFace(f *truetype.Font, size float64, hinting Hinting) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:       size,
		Hinting:    font.Hinting(hinting),
		DPI:        72,
		SubPixelsX: SubPixelsX,
		SubPixelsY: SubPixelsY,
	})
}

var goRegular *truetype.Font

// DefaultFace returns a face of the Go Regular font.
//
func DefaultFace(size float64) (font.Face, error) {
	if goRegular == nil {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, errors.Wrap(err, "parse Go Regular")
		}
		goRegular = f
	}
	return NewFace(goRegular, size, HintingFull), nil
}

// A Drawer renders strings with a given face.
//
type Drawer struct {
	face font.Face
}

// NewDrawer returns a new Drawer using face f.
//
func NewDrawer(f font.Face) *Drawer {
	return &Drawer{face: f}
}

// Face returns the drawer's font face.
//
func (d *Drawer) Face() font.Face {
	return d.face
}

// Image renders s with color c into a new image with a one pixel transparent
// border. Bounds reports the pixel bounds of the rendered text relative to the
// dot: Min.Y is negative for the part above the baseline.
//
func (d *Drawer) Image(s string, c color.Color) (img *image.NRGBA, bounds image.Rectangle) {
	b, _ := font.BoundString(d.face, s)
	bounds = image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	sz := bounds.Size()
	img = image.NewNRGBA(image.Rect(0, 0, sz.X+2, sz.Y+2))
	if sz.X == 0 || sz.Y == 0 {
		return img, bounds
	}
	fd := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: d.face,
		Dot:  fixed.P(1-bounds.Min.X, 1-bounds.Min.Y),
	}
	fd.DrawString(s)
	return img, bounds
}

// Close closes the underlying face.
//
func (d *Drawer) Close() error {
	return d.face.Close()
}

// BoundString returns the bounding box of s with f, drawn at a dot equal to the origin, as well as the advance.
//
func (d *Drawer) BoundString(s string) (bounds fixed.Rectangle26_6, advance fixed.Int26_6) {
	return font.BoundString(d.face, s)
}

// MeasureString returns how far dot would advance by drawing s.
//
func (d *Drawer) MeasureString(s string) (advance fixed.Int26_6) {
	return font.MeasureString(d.face, s)
}
