package debug_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/void2d"
	"github.com/db47h/void2d/debug"
	"github.com/db47h/void2d/gpu"
	"github.com/db47h/void2d/gpu/gputest"
	"github.com/db47h/void2d/text"
)

func TestTimer(t *testing.T) {
	var tm debug.Timer
	assert.Zero(t, tm.Average())
	assert.Zero(t, tm.AveragePerSecond())

	tm.Add(10 * time.Millisecond)
	tm.Add(30 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, tm.Average())
	assert.InDelta(t, 50.0, tm.AveragePerSecond(), 1e-9)

	// older samples roll off
	for i := 0; i < 32; i++ {
		tm.Add(time.Second / 100)
	}
	assert.Equal(t, time.Second/100, tm.Average())
}

func TestFPS(t *testing.T) {
	var f debug.FPS
	dt := time.Second / 50
	var reports []float64
	for i := 0; i < 120; i++ {
		if fps, ok := f.Tick(dt); ok {
			reports = append(reports, fps)
		}
	}
	assert.Len(t, reports, 2)
	for _, fps := range reports {
		assert.InDelta(t, 50.0, fps, 1e-9)
	}

	f = debug.FPS{Period: 100 * time.Millisecond}
	_, ok := f.Tick(50 * time.Millisecond)
	assert.False(t, ok)
	_, ok = f.Tick(50 * time.Millisecond)
	assert.True(t, ok)
}

type window struct{ closed bool }

func (w *window) MakeCurrent()                              {}
func (w *window) ShouldClose() bool                         { return w.closed }
func (w *window) SetShouldClose(b bool)                     { w.closed = b }
func (w *window) SwapBuffers()                              {}
func (w *window) SetTitle(string)                           {}
func (w *window) FramebufferSize() (int, int)               { return 640, 480 }
func (w *window) SetResizeCallback(func(width, height int)) {}
func (w *window) Destroy()                                  {}

type driver struct{ be *gputest.Backend }

func (d driver) CreateWindow(string, int, int) (void2d.Window, error) { return new(window), nil }
func (d driver) Backend() (gpu.Backend, error)                        { return d.be, nil }
func (d driver) Now() float64                                         { return 0 }
func (d driver) PollEvents()                                          {}
func (d driver) Terminate()                                           {}

func TestInfoBox(t *testing.T) {
	be := gputest.New()
	e := void2d.New(driver{be}, void2d.HandlerFuncs{}, void2d.TextureBatches(2))
	require.NoError(t, e.Construct("debug", 640, 480))
	defer e.Close()

	face, err := text.DefaultFace(12)
	require.NoError(t, err)
	dbg := debug.Debug{TD: text.NewDrawer(face), Batch: 1}
	require.NoError(t, dbg.InfoBox(e, debug.TopRight, "60 fps"))
	require.NoError(t, dbg.InfoBox(e, debug.TopLeft, "60 fps"))

	assert.Equal(t, 0, e.CurrentTextures())
	b := e.Batches()[2]
	require.Len(t, b.Textures(), 1)
	tex := be.Textures[b.Textures()[0]]
	assert.Equal(t, 2, tex.Uploads)
	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0, 4, 5, 6, 6, 7, 4}, b.Elements())

	v := b.Vertices()
	// the top right box ends at the right edge of the screen, the top left one
	// starts at the left edge.
	assert.InDelta(t, 1.0, v[1*9], 1e-6)
	assert.InDelta(t, 1.0, v[2*9+1], 1e-6)
	assert.InDelta(t, -1.0, v[4*9], 1e-6)
	assert.Empty(t, e.Batches()[1].Elements())
}
