// Package debug provides frame timing and an on-screen information box.
//
package debug

import (
	"image"
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/db47h/void2d"
	"github.com/db47h/void2d/gpu"
	"github.com/db47h/void2d/text"
)

const samples = 32

// Timer computes a moving average over the last 32 durations.
//
type Timer struct {
	times [samples]time.Duration
	index int
	n     int
}

func (t *Timer) Add(dt time.Duration) {
	t.times[t.index] = dt
	t.index = (t.index + 1) & (samples - 1)
	if t.n < samples {
		t.n++
	}
}

func (t *Timer) Average() time.Duration {
	if t.n == 0 {
		return 0
	}
	var avg time.Duration
	for _, dt := range t.times[:t.n] {
		avg += dt
	}
	return avg / time.Duration(t.n)
}

func (t *Timer) AveragePerSecond() float64 {
	avg := t.Average()
	if avg == 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// FPS tracks frame times and reports the average frame rate once per Period.
//
type FPS struct {
	Timer
	Period time.Duration // defaults to one second
	acc    time.Duration
}

// Tick records a frame time. It returns the average frame rate and true once
// every Period.
//
func (f *FPS) Tick(dt time.Duration) (fps float64, ok bool) {
	p := f.Period
	if p <= 0 {
		p = time.Second
	}
	f.Add(dt)
	f.acc += dt
	if f.acc < p {
		return 0, false
	}
	f.acc -= p
	return f.AveragePerSecond(), true
}

// Box corner positions.
const (
	TopLeft = iota
	TopRight
)

// Debug draws information boxes with a dedicated texture batch.
//
type Debug struct {
	TD    *text.Drawer
	Batch int // texture batch reserved for the box
	Z     float32
}

// InfoBox renders s into the debug texture batch and draws it at the given
// corner of the screen, one texel per pixel.
//
func (dbg *Debug) InfoBox(e *void2d.Engine, pos int, s string) error {
	img, _ := dbg.TD.Image(s, color.White)
	bg := image.NewNRGBA(img.Bounds())
	for i := 3; i < len(bg.Pix); i += 4 {
		bg.Pix[i] = 0xc0
	}
	// text pixels replace the translucent background where more opaque
	for i := 0; i < len(img.Pix); i += 4 {
		if a := img.Pix[i+3]; a > bg.Pix[i+3] {
			copy(bg.Pix[i:i+4], img.Pix[i:i+4])
		}
	}
	sz := img.Bounds().Size()
	if _, err := e.AddTexture(sz.X, sz.Y, bg.Pix, false, gpu.RGBA, 0, dbg.Batch,
		void2d.Wrap(gpu.ClampToEdge, gpu.ClampToEdge), void2d.Filter(gpu.Nearest, gpu.Nearest)); err != nil {
		return err
	}

	scr := e.Screen()
	var r image.Rectangle
	switch pos {
	case TopLeft:
		r = image.Rectangle{Max: sz}
	case TopRight:
		w := scr.Size().X
		r = image.Rect(w-sz.X, 0, w, sz.Y)
	}
	x, y, w, h := scr.RectToGL(r)
	cur := e.CurrentTextures()
	e.ChooseCurrentTextures(dbg.Batch)
	// image rows run top to bottom
	e.TextureQuadUV(mgl32.Vec2{x, y}, mgl32.Vec2{x + w, y}, mgl32.Vec2{x + w, y + h}, mgl32.Vec2{x, y + h}, dbg.Z,
		[4]mgl32.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}})
	e.ChooseCurrentTextures(cur)
	return nil
}
