package gpu

import "image/color"

// Color implements color.Color. It stores straight (non alpha-premultiplied)
// color components in the range [0, 1], the layout used for vertex colors.
//
type Color struct {
	R, G, B, A float32
}

// RGBA implements color.Color.
//
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp(c.A) * 0xffff)
	r = uint32(clamp(c.R)*clamp(c.A)*0xffff) & 0xffff
	g = uint32(clamp(c.G)*clamp(c.A)*0xffff) & 0xffff
	b = uint32(clamp(c.B)*clamp(c.A)*0xffff) & 0xffff
	return r, g, b, a
}

func clamp(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// ColorModel converts any color.Color to a Color; i.e. the result can safely be
// casted to a Color.
//
var ColorModel = color.ModelFunc(colorModel)

func colorModel(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{R: float32(n.R) / 0xffff, G: float32(n.G) / 0xffff, B: float32(n.B) / 0xffff, A: float32(n.A) / 0xffff}
}

// ToColor converts c using ColorModel. A nil color converts to opaque white.
//
func ToColor(c color.Color) Color {
	if c == nil {
		return Color{1, 1, 1, 1}
	}
	return ColorModel.Convert(c).(Color)
}
