package void2d

import (
	"image"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/db47h/void2d/gpu"
	"github.com/db47h/void2d/loop"
	"github.com/db47h/void2d/shader"
)

// State is the lifecycle state of an Engine.
//
type State int

// Engine states.
const (
	Uninitialized State = iota
	Constructed
	Running
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Constructed:
		return "Constructed"
	case Running:
		return "Running"
	case Terminated:
		return "Terminated"
	}
	return "State(?)"
}

const clearTarget = gpu.ColorBufferBit | gpu.DepthBufferBit

// An Engine owns the window, the GPU resources and the batches, and drives the
// frame loop.
//
// Engine methods must be called from the thread that called Construct.
//
type Engine struct {
	drv Driver
	h   Handler
	cfg config

	state State
	win   Window
	be    gpu.Backend

	store    *GeometryStore
	textures *texturePool
	batches  []*RenderBatch
	solid    BatchGroup
	textured BatchGroup
	programs []*shader.Program

	screen     Screen
	drawColor  gpu.Color
	clearColor gpu.Color
	start      time.Duration
	total      time.Duration
	frames     uint64
	updated    bool // geometry may have changed since the last upload
}

// New returns a new engine using the given driver and handler. The engine must
// be constructed with Construct before use.
//
func New(drv Driver, h Handler, opts ...Option) *Engine {
	e := &Engine{
		drv:       drv,
		h:         h,
		cfg:       defaultConfig(),
		drawColor: gpu.Color{R: 1, G: 1, B: 1, A: 1},
	}
	for _, o := range opts {
		o.set(&e.cfg)
	}
	e.clearColor = e.cfg.clearColor
	return e
}

// Construct creates the window and graphics context, then allocates the GPU
// resources of the engine: one untextured batch and the configured number of
// textured batches, their programs and the texture pool.
//
// On error, all resources acquired so far are released and the engine stays
// Uninitialized.
//
func (e *Engine) Construct(title string, width, height int) (err error) {
	if e.state != Uninitialized {
		return errors.Wrapf(ErrState, "construct in state %v", e.state)
	}
	if err = e.cfg.validate(); err != nil {
		return err
	}

	e.win, err = e.drv.CreateWindow(title, width, height)
	if err != nil {
		e.drv.Terminate()
		return errors.Wrap(err, "create window")
	}
	defer func() {
		if err != nil {
			e.release()
		}
	}()

	e.win.MakeCurrent()
	if e.be, err = e.drv.Backend(); err != nil {
		return errors.Wrap(err, "initialize graphics")
	}

	fw, fh := e.win.FramebufferSize()
	e.resize(fw, fh)
	e.win.SetResizeCallback(e.resize)
	e.be.ClearColor(e.clearColor.R, e.clearColor.G, e.clearColor.B, e.clearColor.A)
	e.be.EnableDepthTest(gpu.LEqual)
	e.be.Clear(clearTarget)

	e.solid = BatchGroup{Name: "solid", Start: 0, Count: 1}
	e.textured = BatchGroup{Name: "texture", Start: e.solid.End(), Count: e.cfg.textureBatches}
	n := e.textured.End()
	if e.store, err = NewGeometryStore(e.be, n); err != nil {
		return err
	}
	e.textures = newTexturePool(e.be, e.textured.Count)

	solid, err := e.program("solid", e.cfg.solidVS, e.cfg.solidFS)
	if err != nil {
		return err
	}
	tex, err := e.program("texture", e.cfg.textureVS, e.cfg.textureFS)
	if err != nil {
		return err
	}
	tex.Use()
	tex.SetInt("uTexture", 0)

	e.batches = make([]*RenderBatch, 0, n)
	if err = e.addBatches(e.solid, solid, LayoutColor, 0, 1); err != nil {
		return err
	}
	if err = e.addBatches(e.textured, tex, LayoutTexture, 0, 1, 2); err != nil {
		return err
	}
	if err = checkPartition(len(e.batches), e.solid, e.textured); err != nil {
		return err
	}

	e.state = Constructed
	return nil
}

// program builds a program. Unless strict shaders are requested, errors are
// logged and a null program is returned in place of the failed one.
//
func (e *Engine) program(name, vs, fs string) (*shader.Program, error) {
	p, err := shader.New(e.be, vs, fs)
	if err != nil {
		if e.cfg.strictShaders {
			return nil, errors.Wrapf(err, "%s program", name)
		}
		log.Printf("void2d: %s program: %v", name, err)
		p = shader.Null(e.be)
	}
	e.programs = append(e.programs, p)
	return p, nil
}

func (e *Engine) addBatches(g BatchGroup, p *shader.Program, layout Layout, attrs ...uint32) error {
	for i := g.Start; i < g.End(); i++ {
		b, err := NewRenderBatch(e.store, i, p)
		if err != nil {
			return err
		}
		if err = b.DefineVertexLayout(layout, gpu.DynamicDraw, e.cfg.reserved); err != nil {
			return err
		}
		if err = b.EnableAttributes(attrs...); err != nil {
			return err
		}
		e.batches = append(e.batches, b)
	}
	return nil
}

func (e *Engine) resize(width, height int) {
	e.screen.SetSize(image.Pt(width, height))
	if e.be != nil {
		e.be.Viewport(0, 0, width, height)
	}
}

// Start runs the engine until the window is closed or Stop is called, then
// releases all resources. The handler's Begin method is called once before the
// first frame.
//
func (e *Engine) Start() error {
	if e.state != Constructed {
		return errors.Wrapf(ErrState, "start in state %v", e.state)
	}
	e.state = Running
	defer e.release()

	clock := loop.Seconds(e.drv.Now)
	e.start = clock.Now()
	e.h.Begin(e)

	if e.cfg.warmup {
		e.be.Clear(clearTarget)
		e.drawAll(false)
		e.win.SwapBuffers()
		e.be.Clear(clearTarget)
		e.drawAll(true)
		e.win.SwapBuffers()
		e.frames++
	}

	e.updated = true
	r := (*frameRunner)(e)
	if e.cfg.fixedStep > 0 {
		l := loop.FixedStep{Simple: loop.Simple{Clock: clock}, DT: e.cfg.fixedStep}
		l.Run(r)
	} else {
		l := loop.Simple{Clock: clock}
		l.Run(r)
	}
	return nil
}

// Stop requests the frame loop to exit at the end of the current frame.
//
func (e *Engine) Stop() {
	if e.win != nil {
		e.win.SetShouldClose(true)
	}
}

// Close releases the resources of a constructed engine that will not be
// started. Start does this automatically.
//
func (e *Engine) Close() error {
	if e.state != Constructed {
		return errors.Wrapf(ErrState, "close in state %v", e.state)
	}
	e.release()
	return nil
}

func (e *Engine) release() {
	for _, p := range e.programs {
		p.Delete()
	}
	e.programs = nil
	if e.store != nil {
		e.store.Destroy()
	}
	if e.textures != nil {
		e.textures.release()
	}
	if e.win != nil {
		e.win.Destroy()
		e.win = nil
	}
	e.drv.Terminate()
	if e.state != Uninitialized {
		e.state = Terminated
	}
}

func (e *Engine) drawAll(redraw bool) {
	for _, b := range e.batches {
		if err := b.Draw(redraw); err != nil {
			panic(err)
		}
	}
}

// frameRunner adapts an Engine to loop.Updater.
//
type frameRunner Engine

func (r *frameRunner) ProcessEvents() bool {
	return r.win.ShouldClose()
}

func (r *frameRunner) FrameStart(now time.Duration) {
	e := (*Engine)(r)
	e.total = now - e.start
	e.be.Clear(clearTarget)
}

// Update starts each update from empty batches unless geometry is retained,
// so that a frame shows the result of its last update only. The fixed step
// loop may run any number of updates per frame.
func (r *frameRunner) Update(dt time.Duration) {
	e := (*Engine)(r)
	if !e.cfg.retain {
		e.clearBatches()
	}
	e.updated = true
	e.h.Update(e, dt)
}

// Draw redraws the previous geometry without uploading it when no update ran
// during the frame.
func (r *frameRunner) Draw() {
	e := (*Engine)(r)
	e.drawAll(!e.updated)
	e.updated = false
	e.win.SwapBuffers()
	e.frames++
	e.drv.PollEvents()
}

// Clear empties all batches and clears the render target.
//
func (e *Engine) Clear() {
	e.clearBatches()
	e.updated = true
	if e.be != nil {
		e.be.Clear(clearTarget)
	}
}

func (e *Engine) clearBatches() {
	for _, b := range e.batches {
		b.Clear()
	}
}

// ChooseCurrentTextures selects the textured batch that receives subsequent
// textured primitives. It returns false if i is out of range.
//
func (e *Engine) ChooseCurrentTextures(i int) bool {
	return e.textured.Select(i)
}

// CurrentTextures returns the index of the current textured batch.
//
func (e *Engine) CurrentTextures() int { return e.textured.Current }

// ClearTextures empties the geometry of textured batch i and keeps its
// textures. It returns false if i is out of range.
//
func (e *Engine) ClearTextures(i int) bool {
	if i < 0 || i >= e.textured.Count || e.batches == nil {
		return false
	}
	e.batches[e.textured.Start+i].Clear()
	e.updated = true
	return true
}

// AddTexture uploads pixel data into a texture slot and binds it to the
// matching textured batch. It returns the index of that batch, suitable for
// ChooseCurrentTextures.
//
// If batch is negative, the next unused slot is taken; when all slots are
// taken, AddTexture returns NoSlot and ErrCapacity. Otherwise the texture of
// the given batch is replaced.
//
// The texture is bound to unit in the batch. A negative unit binds it to the
// unit that already holds it, or to the next free unit. The default textured
// shader samples unit 0 only; other units serve custom shaders installed with
// the Shaders option, which must set their sampler uniforms themselves.
//
// Textures wrap with gpu.Repeat and filter with gpu.Linear, or
// gpu.LinearMipmapLinear when minifying mipmapped textures. params override
// these defaults.
//
func (e *Engine) AddTexture(width, height int, pixels []byte, mipmap bool, format gpu.PixelFormat, unit, batch int, params ...TextureParameter) (int, error) {
	if e.state != Constructed && e.state != Running {
		return NoSlot, errors.Wrapf(ErrState, "add texture in state %v", e.state)
	}
	p := textureParams(mipmap, params...)
	if err := validateTexture(width, height, format, pixels, p); err != nil {
		return NoSlot, err
	}
	i, err := e.textures.assign(batch)
	if err != nil {
		return NoSlot, err
	}
	e.textures.upload(i, width, height, format, pixels, mipmap, p)

	b := e.batches[e.textured.Start+i]
	h := e.textures.handles[i]
	if unit < 0 {
		for u, t := range b.Textures() {
			if t == h {
				unit = u
				break
			}
		}
	}
	if _, err = b.BindTexture(h, unit); err != nil {
		return NoSlot, err
	}
	return i, nil
}

// State returns the lifecycle state of the engine.
//
func (e *Engine) State() State { return e.state }

// Window returns the engine window, or nil if the engine is not constructed.
//
func (e *Engine) Window() Window { return e.win }

// Screen returns the screen tracking the window framebuffer size.
//
func (e *Engine) Screen() *Screen { return &e.screen }

// SetTitle sets the window title.
//
func (e *Engine) SetTitle(title string) {
	if e.win != nil {
		e.win.SetTitle(title)
	}
}

// SetDrawColor sets the color of the vertices emitted by drawing primitives.
// It defaults to opaque white.
//
func (e *Engine) SetDrawColor(c gpu.Color) { e.drawColor = c }

// DrawColor returns the current draw color.
//
func (e *Engine) DrawColor() gpu.Color { return e.drawColor }

// SetClearColor sets the background color.
//
func (e *Engine) SetClearColor(c gpu.Color) {
	e.clearColor = c
	if e.be != nil {
		e.be.ClearColor(c.R, c.G, c.B, c.A)
	}
}

// ClearColorValue returns the background color.
//
func (e *Engine) ClearColorValue() gpu.Color { return e.clearColor }

// TotalTime returns the time elapsed since the engine started.
//
func (e *Engine) TotalTime() time.Duration { return e.total }

// FrameCount returns the number of frames presented so far.
//
func (e *Engine) FrameCount() uint64 { return e.frames }

// Batches returns all batches, in draw order.
//
func (e *Engine) Batches() []*RenderBatch { return e.batches }

// Groups returns the solid and textured batch groups.
//
func (e *Engine) Groups() (solid, textured BatchGroup) { return e.solid, e.textured }

// batch returns the current batch of g.
func (e *Engine) batch(g *BatchGroup) *RenderBatch {
	return e.batches[g.Start+g.Current]
}
