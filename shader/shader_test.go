package shader_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/void2d/gpu"
	"github.com/db47h/void2d/gpu/gputest"
	"github.com/db47h/void2d/shader"
)

func TestNew(t *testing.T) {
	be := gputest.New()
	p, err := shader.New(be, "vs", "fs")
	require.NoError(t, err)
	assert.True(t, p.Valid())
	assert.Contains(t, be.Programs, p.ID())
	// shaders are released once linked
	assert.Empty(t, be.Shaders)

	p.Use()
	assert.Equal(t, p.ID(), be.CurrentProgram())

	id := p.ID()
	p.Delete()
	assert.False(t, p.Valid())
	assert.NotContains(t, be.Programs, id)
	p.Delete()
}

func TestNew_failures(t *testing.T) {
	be := gputest.New()
	be.FailStage = gpu.FragmentShader
	_, err := shader.New(be, "vs", "fs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fragment")
	assert.Empty(t, be.Shaders)
	assert.Empty(t, be.Programs)

	be = gputest.New()
	_, err = shader.New(be, "", "fs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vertex")

	be = gputest.New()
	be.FailLink = true
	_, err = shader.New(be, "vs", "fs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "link")
	assert.Empty(t, be.Shaders)
}

func TestUniforms(t *testing.T) {
	be := gputest.New()
	p, err := shader.New(be, "vs", "fs")
	require.NoError(t, err)
	p.Use()

	p.SetBool("uFlag", true)
	p.SetInt("uTexture", 3)
	p.SetUint("uCount", 7)
	p.SetFloat("uTime", 1.5)
	p.SetVec2("uOffset", mgl32.Vec2{1, 2})
	p.SetVec3("uLight", mgl32.Vec3{1, 2, 3})
	p.SetVec4("uTint", mgl32.Vec4{1, 2, 3, 4})

	id := p.ID()
	assert.Equal(t, int32(1), be.Uniform(id, "uFlag"))
	assert.Equal(t, int32(3), be.Uniform(id, "uTexture"))
	assert.Equal(t, uint32(7), be.Uniform(id, "uCount"))
	assert.Equal(t, float32(1.5), be.Uniform(id, "uTime"))
	assert.Equal(t, [2]float32{1, 2}, be.Uniform(id, "uOffset"))
	assert.Equal(t, [3]float32{1, 2, 3}, be.Uniform(id, "uLight"))
	assert.Equal(t, [4]float32{1, 2, 3, 4}, be.Uniform(id, "uTint"))

	assert.Equal(t, p.Location("uTime"), p.Location("uTime"))
}

func TestNull(t *testing.T) {
	be := gputest.New()
	p := shader.Null(be)
	assert.False(t, p.Valid())
	assert.Equal(t, int32(-1), p.Location("uTexture"))
	p.Use()
	p.SetInt("uTexture", 0)
	assert.Equal(t, uint32(0), be.CurrentProgram())
	p.Delete()
}

type files map[string]string

func (f files) File(name string) ([]byte, error) {
	s, ok := f[name]
	if !ok {
		return nil, errors.Errorf("%s: not found", name)
	}
	return []byte(s), nil
}

func TestLoad(t *testing.T) {
	be := gputest.New()
	fl := files{"solid.vert": "vs", "solid.frag": "fs"}
	p, err := shader.Load(be, fl, "solid.vert", "solid.frag")
	require.NoError(t, err)
	assert.True(t, p.Valid())

	_, err = shader.Load(be, fl, "solid.vert", "missing.frag")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load fragment shader")
}
