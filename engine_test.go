package void2d_test

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/void2d"
	"github.com/db47h/void2d/gpu"
	"github.com/db47h/void2d/gpu/gputest"
)

// clockStep is exactly representable as a float64 number of seconds.
const clockStep = time.Second / 64

type fakeWindow struct {
	title       string
	width       int
	height      int
	closeAfter  int // close after that many buffer swaps, if > 0
	swaps       int
	shouldClose bool
	current     bool
	destroyed   bool
	resize      func(width, height int)
}

func (w *fakeWindow) MakeCurrent()                { w.current = true }
func (w *fakeWindow) SetShouldClose(b bool)       { w.shouldClose = b }
func (w *fakeWindow) SwapBuffers()                { w.swaps++ }
func (w *fakeWindow) SetTitle(title string)       { w.title = title }
func (w *fakeWindow) FramebufferSize() (int, int) { return w.width, w.height }
func (w *fakeWindow) Destroy()                    { w.destroyed = true }

func (w *fakeWindow) ShouldClose() bool {
	return w.shouldClose || w.closeAfter > 0 && w.swaps >= w.closeAfter
}

func (w *fakeWindow) SetResizeCallback(f func(width, height int)) { w.resize = f }

type fakeDriver struct {
	be         *gputest.Backend
	win        *fakeWindow
	createErr  error
	ticks      int64
	polls      int
	terminated int
}

func newDriver(closeAfter int) *fakeDriver {
	return &fakeDriver{be: gputest.New(), win: &fakeWindow{closeAfter: closeAfter}}
}

func (d *fakeDriver) CreateWindow(title string, width, height int) (void2d.Window, error) {
	if d.createErr != nil {
		return nil, d.createErr
	}
	d.win.title, d.win.width, d.win.height = title, width, height
	return d.win, nil
}

func (d *fakeDriver) Backend() (gpu.Backend, error) {
	if !d.win.current {
		return nil, errors.New("no current context")
	}
	return d.be, nil
}

func (d *fakeDriver) Now() float64 {
	d.ticks++
	return (time.Duration(d.ticks) * clockStep).Seconds()
}

func (d *fakeDriver) PollEvents() { d.polls++ }
func (d *fakeDriver) Terminate()  { d.terminated++ }

func construct(t *testing.T, d *fakeDriver, h void2d.Handler, opts ...void2d.Option) *void2d.Engine {
	t.Helper()
	if h == nil {
		h = void2d.HandlerFuncs{}
	}
	e := void2d.New(d, h, opts...)
	require.NoError(t, e.Construct("test", 800, 600))
	return e
}

func TestEngine_Construct(t *testing.T) {
	d := newDriver(0)
	e := construct(t, d, nil)
	be := d.be

	assert.Equal(t, void2d.Constructed, e.State())
	assert.Equal(t, "test", d.win.title)
	assert.Equal(t, [4]int{0, 0, 800, 600}, be.ViewportValue)
	assert.Equal(t, [4]float32{0.2, 0.3, 0.3, 1}, be.ClearColorValue)
	assert.Equal(t, gpu.LEqual, be.DepthFunc)
	assert.Equal(t, void2d.DefaultClearColor, e.ClearColorValue())
	assert.Equal(t, gpu.Color{R: 1, G: 1, B: 1, A: 1}, e.DrawColor())

	solid, tex := e.Groups()
	assert.Equal(t, void2d.BatchGroup{Name: "solid", Start: 0, Count: 1}, solid)
	assert.Equal(t, void2d.BatchGroup{Name: "texture", Start: 1, Count: 32}, tex)

	batches := e.Batches()
	require.Len(t, batches, 33)
	assert.Len(t, be.VAOs, 33)
	assert.Len(t, be.Textures, 32)
	assert.Len(t, be.Programs, 2)
	for i, b := range batches {
		assert.Equal(t, i, b.Slot())
		assert.True(t, b.Program().Valid())
	}
	assert.NotEqual(t, batches[0].Program().ID(), batches[1].Program().ID())
	assert.Equal(t, batches[1].Program().ID(), batches[32].Program().ID())
	assert.Equal(t, int32(0), be.Uniform(batches[1].Program().ID(), "uTexture"))

	err := e.Construct("again", 800, 600)
	assert.Equal(t, void2d.ErrState, errors.Cause(err))
}

func TestEngine_Construct_failures(t *testing.T) {
	d := newDriver(0)
	d.createErr = errors.New("no display")
	e := void2d.New(d, void2d.HandlerFuncs{})
	err := e.Construct("test", 800, 600)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
	assert.Equal(t, void2d.Uninitialized, e.State())
	assert.Equal(t, 1, d.terminated)

	d = newDriver(0)
	d.be.NoContext = true
	e = void2d.New(d, void2d.HandlerFuncs{})
	err = e.Construct("test", 800, 600)
	assert.Equal(t, void2d.ErrNoContext, errors.Cause(err))
	assert.True(t, d.win.destroyed)
	assert.Equal(t, 1, d.terminated)
	assert.Nil(t, e.Window())

	d = newDriver(0)
	e = void2d.New(d, void2d.HandlerFuncs{}, void2d.TextureBatches(33))
	assert.Error(t, e.Construct("test", 800, 600))
}

func TestEngine_shaderFailure(t *testing.T) {
	d := newDriver(0)
	d.be.FailStage = gpu.FragmentShader
	e := construct(t, d, nil)
	for _, b := range e.Batches() {
		assert.False(t, b.Program().Valid())
	}
	assert.Empty(t, d.be.Programs)

	d = newDriver(0)
	d.be.FailLink = true
	e = void2d.New(d, void2d.HandlerFuncs{}, void2d.StrictShaders())
	err := e.Construct("test", 800, 600)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solid program")
	assert.Empty(t, d.be.VAOs)
	assert.Empty(t, d.be.Textures)
}

func TestEngine_Shaders(t *testing.T) {
	d := newDriver(0)
	// an empty fragment source would fail to compile if it were used
	e := construct(t, d, nil, void2d.StrictShaders(), void2d.Shaders("solid vs", "", "", "texture fs"))
	assert.Equal(t, void2d.Constructed, e.State())
}

func TestEngine_scenarioA(t *testing.T) {
	e := construct(t, newDriver(0), nil)
	e.SetDrawColor(gpu.Color{R: 1, A: 1})
	e.FillTriangle(mgl32.Vec2{-0.5, -0.5}, mgl32.Vec2{0, 0.5}, mgl32.Vec2{0.5, -0.5}, 0)

	b := e.Batches()[0]
	assert.Equal(t, []float32{
		-0.5, -0.5, 0, 1, 0, 0, 1,
		0, 0.5, 0, 1, 0, 0, 1,
		0.5, -0.5, 0, 1, 0, 0, 1,
	}, b.Vertices())
	assert.Equal(t, []uint32{0, 1, 2}, b.Elements())

	e.Clear()
	assert.Empty(t, b.Vertices())
	assert.Empty(t, b.Elements())
	assert.Equal(t, -1, b.LastElement())
}

func TestEngine_scenarioB(t *testing.T) {
	e := construct(t, newDriver(0), nil)
	e.FillQuad(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{0, 1}, 0)
	e.FillRect(-1, -1, 0.5, 0.5, 0.5)

	b := e.Batches()[0]
	assert.Equal(t, 8, b.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0, 4, 5, 6, 6, 7, 4}, b.Elements())
	v := b.Vertices()
	// FillRect corners: (x,y), (x+w,y), (x+w,y+h), (x,y+h)
	assert.Equal(t, []float32{-1, -1, 0.5}, v[4*7:4*7+3])
	assert.Equal(t, []float32{-0.5, -1, 0.5}, v[5*7:5*7+3])
	assert.Equal(t, []float32{-0.5, -0.5, 0.5}, v[6*7:6*7+3])
	assert.Equal(t, []float32{-1, -0.5, 0.5}, v[7*7:7*7+3])
}

func TestEngine_FillTriangleXY(t *testing.T) {
	e := construct(t, newDriver(0), nil)
	e.FillTriangleXY(0, 0, 1, 0, 1, 1, 0.25)
	e.FillTriangle(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{1, 1}, 0.25)
	v := e.Batches()[0].Vertices()
	assert.Equal(t, v[:21], v[21:])
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, e.Batches()[0].Elements())
}

func pixels(w, h, c int) []byte {
	return make([]byte, w*h*c)
}

func TestEngine_scenarioC(t *testing.T) {
	d := newDriver(0)
	e := construct(t, d, nil)
	for i := 0; i < 32; i++ {
		n, err := e.AddTexture(2, 2, pixels(2, 2, 4), false, gpu.RGBA, -1, -1)
		require.NoError(t, err)
		assert.Equal(t, i, n)
		b := e.Batches()[1+i]
		require.Len(t, b.Textures(), 1)
		tex := d.be.Textures[b.Textures()[0]]
		assert.Equal(t, 2, tex.Width)
		assert.Equal(t, gpu.RGBA, tex.Format)
	}
	n, err := e.AddTexture(2, 2, pixels(2, 2, 4), false, gpu.RGBA, -1, -1)
	assert.Equal(t, void2d.NoSlot, n)
	assert.Equal(t, void2d.ErrCapacity, err)

	// explicit batches can still be replaced
	n, err = e.AddTexture(4, 4, pixels(4, 4, 3), false, gpu.RGB, -1, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	b := e.Batches()[8]
	require.Len(t, b.Textures(), 1, "same handle rebinds the same unit")
	assert.Equal(t, 4, d.be.Textures[b.Textures()[0]].Width)

	n, err = e.AddTexture(4, 4, pixels(4, 4, 3), false, gpu.RGB, -1, 32)
	assert.Equal(t, void2d.NoSlot, n)
	assert.True(t, void2d.IsIndexError(err))
}

func TestEngine_AddTexture(t *testing.T) {
	d := newDriver(0)
	e := construct(t, d, nil, void2d.TextureBatches(2))

	n, err := e.AddTexture(2, 2, nil, false, gpu.RGBA, -1, -1)
	assert.Equal(t, void2d.NoSlot, n)
	assert.Equal(t, void2d.ErrNilPixels, err)
	_, err = e.AddTexture(2, 2, pixels(1, 2, 4), false, gpu.RGBA, -1, -1)
	assert.Error(t, err)
	_, err = e.AddTexture(0, 2, pixels(1, 2, 4), false, gpu.RGBA, -1, -1)
	assert.Error(t, err)
	_, err = e.AddTexture(2, 2, pixels(2, 2, 4), false, gpu.PixelFormat(42), -1, -1)
	assert.Error(t, err)
	_, err = e.AddTexture(2, 2, pixels(2, 2, 4), false, gpu.RGBA, -1, -1, void2d.Filter(gpu.Nearest, gpu.LinearMipmapLinear))
	assert.Error(t, err)

	// failed attempts do not consume slots
	n, err = e.AddTexture(2, 2, pixels(2, 2, 4), true, gpu.RGBA, -1, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	tex := d.be.Textures[e.Batches()[1].Textures()[0]]
	assert.Equal(t, map[gpu.TexParam]int32{
		gpu.TextureWrapS:     int32(gpu.Repeat),
		gpu.TextureWrapT:     int32(gpu.Repeat),
		gpu.TextureMinFilter: int32(gpu.LinearMipmapLinear),
		gpu.TextureMagFilter: int32(gpu.Linear),
	}, tex.Params)
	assert.Equal(t, 1, tex.Mipmaps)

	n, err = e.AddTexture(1, 1, pixels(1, 1, 1), false, gpu.Red, -1, -1,
		void2d.Wrap(gpu.ClampToEdge, gpu.MirroredRepeat), void2d.Filter(gpu.Nearest, gpu.Nearest))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	tex = d.be.Textures[e.Batches()[2].Textures()[0]]
	assert.Equal(t, int32(gpu.ClampToEdge), tex.Params[gpu.TextureWrapS])
	assert.Equal(t, int32(gpu.MirroredRepeat), tex.Params[gpu.TextureWrapT])
	assert.Equal(t, int32(gpu.Nearest), tex.Params[gpu.TextureMinFilter])
	assert.Zero(t, tex.Mipmaps)

	_, err = e.AddTexture(2, 2, pixels(2, 2, 4), false, gpu.RGBA, -1, -1)
	assert.Equal(t, void2d.ErrCapacity, err)
}

func TestEngine_AddTexture_state(t *testing.T) {
	e := void2d.New(newDriver(0), void2d.HandlerFuncs{})
	n, err := e.AddTexture(2, 2, pixels(2, 2, 4), false, gpu.RGBA, -1, -1)
	assert.Equal(t, void2d.NoSlot, n)
	assert.Equal(t, void2d.ErrState, errors.Cause(err))
}

func TestEngine_AddTexture_explicitSlots(t *testing.T) {
	d := newDriver(0)
	e := construct(t, d, nil, void2d.TextureBatches(2))

	n, err := e.AddTexture(2, 2, pixels(2, 2, 4), false, gpu.RGBA, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	// the next automatic slot skips the one taken explicitly
	n, err = e.AddTexture(4, 4, pixels(4, 4, 4), false, gpu.RGBA, -1, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, d.be.Textures[e.Batches()[1].Textures()[0]].Width)
	assert.Equal(t, 4, d.be.Textures[e.Batches()[2].Textures()[0]].Width)

	n, err = e.AddTexture(2, 2, pixels(2, 2, 4), false, gpu.RGBA, -1, -1)
	assert.Equal(t, void2d.NoSlot, n)
	assert.Equal(t, void2d.ErrCapacity, err)
	assert.Equal(t, 2, d.be.Textures[e.Batches()[1].Textures()[0]].Width)

	// explicit slots can still be replaced
	n, err = e.AddTexture(8, 8, pixels(8, 8, 4), false, gpu.RGBA, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 8, d.be.Textures[e.Batches()[1].Textures()[0]].Width)
}

func TestEngine_AddTexture_allExplicit(t *testing.T) {
	e := construct(t, newDriver(0), nil, void2d.TextureBatches(2))
	for _, i := range []int{1, 0} {
		n, err := e.AddTexture(2, 2, pixels(2, 2, 4), false, gpu.RGBA, -1, i)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}
	n, err := e.AddTexture(2, 2, pixels(2, 2, 4), false, gpu.RGBA, -1, -1)
	assert.Equal(t, void2d.NoSlot, n)
	assert.Equal(t, void2d.ErrCapacity, err)
}

func TestEngine_AddTexture_units(t *testing.T) {
	d := newDriver(0)
	e := construct(t, d, nil, void2d.TextureBatches(1))

	_, err := e.AddTexture(2, 2, pixels(2, 2, 4), false, gpu.RGBA, -1, 0)
	require.NoError(t, err)
	b := e.Batches()[1]
	h := b.Textures()[0]
	// same handle, same unit
	_, err = e.AddTexture(2, 2, pixels(2, 2, 4), false, gpu.RGBA, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint32{h}, b.Textures())
	// an explicit unit past the bound ones takes the next free unit
	_, err = e.AddTexture(2, 2, pixels(2, 2, 4), false, gpu.RGBA, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint32{h, h}, b.Textures())

	// the default textured program samples unit 0
	assert.Equal(t, int32(0), d.be.Uniform(b.Program().ID(), "uTexture"))
}

func TestEngine_texturedPrimitives(t *testing.T) {
	e := construct(t, newDriver(0), nil)
	assert.True(t, e.ChooseCurrentTextures(31))
	assert.False(t, e.ChooseCurrentTextures(32))
	assert.False(t, e.ChooseCurrentTextures(-1))
	_, tex := e.Groups()
	assert.Equal(t, 31, tex.Current)

	e.SetDrawColor(gpu.Color{R: 0.5, G: 0.5, B: 0.5, A: 1})
	e.TextureRect(0, 0, 1, 1, 0)
	b := e.Batches()[32]
	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0}, b.Elements())
	assert.Equal(t, []float32{
		0, 0, 0, 0.5, 0.5, 0.5, 1, 0, 0,
		1, 0, 0, 0.5, 0.5, 0.5, 1, 1, 0,
		1, 1, 0, 0.5, 0.5, 0.5, 1, 1, 1,
		0, 1, 0, 0.5, 0.5, 0.5, 1, 0, 1,
	}, b.Vertices())

	require.True(t, e.ChooseCurrentTextures(0))
	e.TextureTri(mgl32.Vec2{-1, -1}, mgl32.Vec2{0, 1}, mgl32.Vec2{1, -1}, 0)
	e.TextureQuadUV(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{0, 1}, 0,
		[4]mgl32.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}})
	b = e.Batches()[1]
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 5, 6, 3}, b.Elements())
	v := b.Vertices()
	assert.Equal(t, []float32{0.5, 1}, v[1*9+7:1*9+9])
	assert.Equal(t, []float32{0, 1}, v[3*9+7:3*9+9])
	// the solid batch is untouched
	assert.Empty(t, e.Batches()[0].Elements())

	assert.False(t, e.ClearTextures(32))
	assert.True(t, e.ClearTextures(0))
	assert.Empty(t, b.Elements())
	assert.Empty(t, b.Vertices())
	assert.Equal(t, -1, b.LastElement())
	assert.NotEmpty(t, e.Batches()[32].Elements())
}

func TestEngine_Start(t *testing.T) {
	d := newDriver(5) // 2 warm-up swaps, then 3 frames
	var (
		begins  int
		updates []time.Duration
	)
	h := void2d.HandlerFuncs{
		BeginFunc: func(e *void2d.Engine) {
			begins++
			e.FillTriangleXY(-1, -1, 0, 1, 1, -1, 0)
		},
		UpdateFunc: func(e *void2d.Engine, dt time.Duration) {
			updates = append(updates, dt)
			e.FillRect(0, 0, 1, 1, 0)
		},
	}
	e := construct(t, d, h)
	be := d.be
	require.NoError(t, e.Start())

	assert.Equal(t, 1, begins)
	assert.Equal(t, []time.Duration{clockStep, clockStep, clockStep}, updates)
	assert.Equal(t, uint64(4), e.FrameCount())
	assert.Equal(t, 3, d.polls)
	assert.Equal(t, 4*clockStep, e.TotalTime())

	// warm-up draws the triangle twice, then each frame draws one quad.
	var solid []gputest.Draw
	for _, dr := range be.Draws {
		if dr.VAO == 1 {
			solid = append(solid, dr)
		}
	}
	require.Len(t, solid, 5)
	assert.Equal(t, 3, solid[0].Count)
	assert.Equal(t, 3, solid[1].Count)
	for _, dr := range solid[2:] {
		assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0}, dr.Indices)
	}
	// empty textured batches are never drawn
	assert.Len(t, be.Draws, 5)

	assert.Equal(t, void2d.Terminated, e.State())
	assert.True(t, d.win.destroyed)
	assert.Equal(t, 1, d.terminated)
	assert.Empty(t, be.VAOs)
	assert.Empty(t, be.Buffers)
	assert.Empty(t, be.Textures)
	assert.Empty(t, be.Programs)

	assert.Equal(t, void2d.ErrState, errors.Cause(e.Start()))
}

func TestEngine_RetainGeometry(t *testing.T) {
	d := newDriver(3)
	h := void2d.HandlerFuncs{
		UpdateFunc: func(e *void2d.Engine, dt time.Duration) {
			e.FillTriangleXY(-1, -1, 0, 1, 1, -1, 0)
		},
	}
	e := construct(t, d, h, void2d.RetainGeometry(), void2d.Warmup(false))
	require.NoError(t, e.Start())
	require.Len(t, d.be.Draws, 3)
	for i, dr := range d.be.Draws {
		assert.Equal(t, 3*(i+1), dr.Count)
	}
	assert.Equal(t, uint64(3), e.FrameCount())
	// the render target is still cleared every frame
	assert.Len(t, d.be.Clears, 1+3)
}

func TestEngine_Stop(t *testing.T) {
	d := newDriver(0)
	var updates int
	h := void2d.HandlerFuncs{
		UpdateFunc: func(e *void2d.Engine, dt time.Duration) {
			updates++
			if updates == 2 {
				e.Stop()
			}
		},
	}
	e := construct(t, d, h, void2d.Warmup(false))
	require.NoError(t, e.Start())
	assert.Equal(t, 2, updates)
	assert.Equal(t, uint64(2), e.FrameCount())
}

func TestEngine_FixedTimestep(t *testing.T) {
	d := newDriver(3)
	var updates []time.Duration
	h := void2d.HandlerFuncs{
		UpdateFunc: func(e *void2d.Engine, dt time.Duration) {
			updates = append(updates, dt)
		},
	}
	e := construct(t, d, h, void2d.Warmup(false), void2d.FixedTimestep(clockStep/2))
	require.NoError(t, e.Start())
	assert.Len(t, updates, 6)
	for _, dt := range updates {
		assert.Equal(t, clockStep/2, dt)
	}
}

func TestEngine_FixedTimestep_frames(t *testing.T) {
	h := void2d.HandlerFuncs{
		UpdateFunc: func(e *void2d.Engine, dt time.Duration) {
			e.FillTriangleXY(-1, -1, 0, 1, 1, -1, 0)
		},
	}

	t.Run("slow", func(t *testing.T) {
		// one update every other frame
		d := newDriver(4)
		e := construct(t, d, h, void2d.Warmup(false), void2d.FixedTimestep(2*clockStep))
		require.NoError(t, e.Start())
		assert.Equal(t, uint64(4), e.FrameCount())
		// the first frame has nothing to draw, frames without updates redraw
		// the last uploaded triangle.
		require.Len(t, d.be.Draws, 3)
		for _, dr := range d.be.Draws {
			assert.Equal(t, []uint32{0, 1, 2}, dr.Indices)
		}
		assert.Len(t, d.be.Clears, 1+4)
	})

	t.Run("fast", func(t *testing.T) {
		// four updates per frame
		d := newDriver(2)
		e := construct(t, d, h, void2d.Warmup(false), void2d.FixedTimestep(clockStep/4))
		require.NoError(t, e.Start())
		require.Len(t, d.be.Draws, 2)
		for _, dr := range d.be.Draws {
			assert.Equal(t, 3, dr.Count)
		}
	})
}

func TestEngine_Close(t *testing.T) {
	d := newDriver(0)
	e := construct(t, d, nil)
	require.NoError(t, e.Close())
	assert.Equal(t, void2d.Terminated, e.State())
	assert.Empty(t, d.be.VAOs)
	assert.True(t, d.win.destroyed)
	assert.Equal(t, void2d.ErrState, errors.Cause(e.Close()))
	assert.Equal(t, void2d.ErrState, errors.Cause(e.Start()))
}

func TestEngine_window(t *testing.T) {
	d := newDriver(0)
	e := construct(t, d, nil)
	require.NotNil(t, e.Window())

	e.SetTitle("FPS: 60")
	assert.Equal(t, "FPS: 60", d.win.title)

	e.SetClearColor(gpu.Color{R: 1, A: 1})
	assert.Equal(t, [4]float32{1, 0, 0, 1}, d.be.ClearColorValue)
	assert.Equal(t, gpu.Color{R: 1, A: 1}, e.ClearColorValue())

	require.NotNil(t, d.win.resize)
	d.win.resize(1024, 768)
	assert.Equal(t, [4]int{0, 0, 1024, 768}, d.be.ViewportValue)
	assert.Equal(t, 1024, e.Screen().Size().X)
	assert.Equal(t, 768, e.Screen().Size().Y)
}
