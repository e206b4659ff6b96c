package asset

import (
	"context"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/db47h/void2d"
	"github.com/db47h/void2d/gpu"
	"github.com/db47h/void2d/shader"
)

// ErrMissingAsset is returned by Discard for assets that are neither cached
// nor loading.
var ErrMissingAsset = errors.New("asset not found")

// entry is a cache slot. done is closed once data and err are set.
type entry struct {
	done chan struct{}
	data interface{}
	err  error
}

// A Manager loads and caches the images, fonts and shader sources used by an
// engine. It is safe for concurrent use; assets requested while loading are
// waited for, not loaded twice. Failed loads are not cached.
//
type Manager struct {
	fs      FileSystem
	cfg     config
	mu      sync.Mutex
	entries map[Asset]*entry
}

// NewManager returns a new asset Manager.
//
func NewManager(fs FileSystem, options ...Option) *Manager {
	m := &Manager{fs: fs, entries: make(map[Asset]*entry)}
	for _, o := range options {
		o.set(&m.cfg)
	}
	return m
}

func (m *Manager) load(a Asset) (interface{}, error) {
	if a.Type < 0 || a.Type >= typeLast {
		return nil, errors.Errorf("invalid asset type %d", a.Type)
	}
	name := m.cfg.assetPath(a)
	r, err := m.fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return loaders[a.Type](r, name)
}

// get returns a cached asset, loading it first if needed.
//
func (m *Manager) get(a Asset) (interface{}, error) {
	m.mu.Lock()
	e, ok := m.entries[a]
	if ok {
		m.mu.Unlock()
		<-e.done
		return e.data, e.err
	}
	e = &entry{done: make(chan struct{})}
	m.entries[a] = e
	m.mu.Unlock()

	e.data, e.err = m.load(a)
	if e.err != nil {
		e.err = errors.Wrapf(e.err, "load %s", a)
		m.mu.Lock()
		if m.entries[a] == e {
			delete(m.entries, a)
		}
		m.mu.Unlock()
	}
	close(e.done)
	return e.data, e.err
}

// Preload loads assets concurrently, with at most two loads per CPU in flight.
// It returns the first load error, after which the remaining loads are
// skipped. Already cached assets are not reloaded.
//
func (m *Manager) Preload(ctx context.Context, assets ...Asset) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(2 * runtime.NumCPU())
	for _, a := range assets {
		a := a
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := m.get(a)
			return err
		})
	}
	return g.Wait()
}

// Discard removes an asset from the cache, waiting for it to finish loading
// if needed, and releases it.
//
func (m *Manager) Discard(a Asset) error {
	m.mu.Lock()
	e, ok := m.entries[a]
	m.mu.Unlock()
	if !ok {
		return errors.Wrapf(ErrMissingAsset, "discard %s", a)
	}
	<-e.done
	m.mu.Lock()
	if m.entries[a] == e {
		delete(m.entries, a)
	}
	m.mu.Unlock()
	if e.err != nil {
		return errors.Wrapf(ErrMissingAsset, "discard %s", a)
	}
	if cl, ok := e.data.(closer); ok {
		return errors.Wrapf(cl.Close(), "discard %s", a)
	}
	return nil
}

// Close waits for pending loads and releases all assets.
//
func (m *Manager) Close() error {
	m.mu.Lock()
	entries := m.entries
	m.entries = make(map[Asset]*entry)
	m.mu.Unlock()

	var errs errorList
	for a, e := range entries {
		<-e.done
		if cl, ok := e.data.(closer); ok && e.err == nil {
			if err := cl.Close(); err != nil {
				errs = append(errs, errors.Wrapf(err, "close %s", a))
			}
		}
	}
	if errs != nil {
		return errs
	}
	return nil
}

// Texture returns the named image as arguments for Engine.AddTexture. Rows
// are ordered bottom to top so that the image shows upright with the default
// texture coordinates. The pixels are a private copy of the cached image.
//
func (m *Manager) Texture(name string) (width, height int, format gpu.PixelFormat, pixels []byte, err error) {
	img, err := m.Image(name)
	if err != nil {
		return 0, 0, 0, nil, err
	}
	b := FromImage(img.Image())
	b.FlipVertical()
	return b.Width, b.Height, b.Format(), b.Pix, nil
}

// AddTexture uploads the named image to the engine, see Engine.AddTexture.
//
func (m *Manager) AddTexture(e *void2d.Engine, name string, mipmap bool, unit, batch int, params ...void2d.TextureParameter) (int, error) {
	w, h, f, pix, err := m.Texture(name)
	if err != nil {
		return void2d.NoSlot, err
	}
	return e.AddTexture(w, h, pix, mipmap, f, unit, batch, params...)
}

// ShaderSources returns the vertex and fragment sources of the named shader,
// read from the raw files name.vert and name.frag.
//
func (m *Manager) ShaderSources(name string) (vertex, fragment string, err error) {
	vs, err := m.File(name + ".vert")
	if err != nil {
		return "", "", err
	}
	fs, err := m.File(name + ".frag")
	if err != nil {
		return "", "", err
	}
	return string(vs), string(fs), nil
}

// Program compiles the named shader, see ShaderSources.
//
func (m *Manager) Program(be gpu.Backend, name string) (*shader.Program, error) {
	return shader.Load(be, m, name+".vert", name+".frag")
}
