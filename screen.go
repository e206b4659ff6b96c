package void2d

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// A Screen tracks the size of the window framebuffer and converts between
// pixel and normalized device coordinates.
//
// Pixel coordinates have their origin at the top left corner of the window
// with y pointing down. GL coordinates are in the range [-1, 1] with y
// pointing up.
//
type Screen struct {
	size image.Point
}

// NewScreen returns a new screen of the requested size.
//
func NewScreen(sz image.Point) *Screen {
	return &Screen{size: sz}
}

// SetSize sets the Screen size to sz.
//
func (s *Screen) SetSize(sz image.Point) {
	s.size = sz
}

// Size returns the screen size.
//
func (s *Screen) Size() image.Point {
	return s.size
}

// ToGL converts pixel coordinates to GL coordinates.
//
func (s *Screen) ToGL(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		2.0*p[0]/float32(s.size.X) - 1.0,
		-2.0*p[1]/float32(s.size.Y) + 1.0,
	}
}

// FromGL converts GL coordinates to pixel coordinates.
//
func (s *Screen) FromGL(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		(p[0] + 1) * float32(s.size.X) / 2.0,
		(1 - p[1]) * float32(s.size.Y) / 2.0,
	}
}

// RectToGL converts a rectangle in pixel coordinates to its bottom left
// corner, width and height in GL coordinates, as expected by Engine.FillRect.
//
func (s *Screen) RectToGL(r image.Rectangle) (x, y, w, h float32) {
	p := s.ToGL(mgl32.Vec2{float32(r.Min.X), float32(r.Max.Y)})
	return p[0], p[1], 2 * float32(r.Dx()) / float32(s.size.X), 2 * float32(r.Dy()) / float32(s.size.Y)
}
