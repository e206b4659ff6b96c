package void2d

import (
	"time"

	"github.com/pkg/errors"

	"github.com/db47h/void2d/gpu"
)

// Defaults.
const (
	DefaultTextureBatches   = MaxBatchTextures
	DefaultReservedVertices = 1000
)

// DefaultClearColor is the default background color.
//
var DefaultClearColor = gpu.Color{R: 0.2, G: 0.3, B: 0.3, A: 1}

type config struct {
	textureBatches int
	reserved       int
	clearColor     gpu.Color
	retain         bool
	warmup         bool
	fixedStep      time.Duration
	strictShaders  bool
	solidVS        string
	solidFS        string
	textureVS      string
	textureFS      string
}

func defaultConfig() config {
	return config{
		textureBatches: DefaultTextureBatches,
		reserved:       DefaultReservedVertices,
		clearColor:     DefaultClearColor,
		warmup:         true,
		solidVS:        solidVertexShader,
		solidFS:        solidFragmentShader,
		textureVS:      textureVertexShader,
		textureFS:      textureFragmentShader,
	}
}

func (c *config) validate() error {
	if c.textureBatches < 1 || c.textureBatches > MaxBatchTextures {
		return errors.Errorf("texture batch count %d out of range [1, %d]", c.textureBatches, MaxBatchTextures)
	}
	if c.reserved < 0 {
		return errors.Errorf("negative reserved vertex count %d", c.reserved)
	}
	if c.fixedStep < 0 {
		return errors.Errorf("negative timestep %v", c.fixedStep)
	}
	return nil
}

// Option is implemented by functions configuring an Engine. See New.
//
type Option interface {
	set(*config)
}

type optionFunc func(*config)

func (f optionFunc) set(c *config) {
	f(c)
}

// TextureBatches sets the number of textured batches, and therefore the number
// of texture slots available to AddTexture. It must be in the range [1, 32].
//
func TextureBatches(n int) Option {
	return optionFunc(func(c *config) {
		c.textureBatches = n
	})
}

// ReservedVertices sets the number of vertices for which GPU storage is
// reserved in each batch.
//
func ReservedVertices(n int) Option {
	return optionFunc(func(c *config) {
		c.reserved = n
	})
}

// ClearColor sets the background color.
//
func ClearColor(col gpu.Color) Option {
	return optionFunc(func(c *config) {
		c.clearColor = col
	})
}

// RetainGeometry disables the automatic clearing of batches at the start of
// every frame: geometry accumulates until Engine.Clear is called.
//
func RetainGeometry() Option {
	return optionFunc(func(c *config) {
		c.retain = true
	})
}

// Warmup enables or disables the draw/redraw cycle run once before entering
// the frame loop. It is enabled by default.
//
func Warmup(enable bool) Option {
	return optionFunc(func(c *config) {
		c.warmup = enable
	})
}

// FixedTimestep makes the engine call Handler.Update with a fixed timestep of
// dt, possibly several times per frame. By default, Update is called once per
// frame with the measured frame time.
//
func FixedTimestep(dt time.Duration) Option {
	return optionFunc(func(c *config) {
		c.fixedStep = dt
	})
}

// StrictShaders makes Construct fail on shader compile or link errors. By
// default such errors are logged and the affected batches draw with the null
// program.
//
func StrictShaders() Option {
	return optionFunc(func(c *config) {
		c.strictShaders = true
	})
}

// Shaders replaces the default shader sources. Empty sources keep the
// default. Solid shaders receive position and color attributes at locations 0
// and 1, texture shaders receive an additional texture coordinate at location
// 2 and sample their texture from uniform uTexture.
//
func Shaders(solidVS, solidFS, textureVS, textureFS string) Option {
	return optionFunc(func(c *config) {
		set := func(dst *string, src string) {
			if src != "" {
				*dst = src
			}
		}
		set(&c.solidVS, solidVS)
		set(&c.solidFS, solidFS)
		set(&c.textureVS, textureVS)
		set(&c.textureFS, textureFS)
	})
}
