package void2d

import (
	"github.com/go-gl/mathgl/mgl32"
)

var (
	triElements  = []uint32{0, 1, 2}
	quadElements = []uint32{0, 1, 2, 2, 3, 0}

	// default texture coordinates, in the same order as the vertices of
	// FillTriangle and FillRect.
	triUV  = [3]mgl32.Vec2{{0, 0}, {0.5, 1}, {1, 0}}
	quadUV = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
)

// Drawing primitives take positions in normalized device coordinates. z is
// the depth of the primitive; depth testing uses a less-or-equal comparison.

func (e *Engine) solidVertices(z float32, pts ...mgl32.Vec2) []float32 {
	c := e.drawColor
	v := make([]float32, 0, len(pts)*7)
	for _, p := range pts {
		v = append(v, p[0], p[1], z, c.R, c.G, c.B, c.A)
	}
	return v
}

func (e *Engine) textureVertices(z float32, pts []mgl32.Vec2, uv []mgl32.Vec2) []float32 {
	c := e.drawColor
	v := make([]float32, 0, len(pts)*9)
	for i, p := range pts {
		v = append(v, p[0], p[1], z, c.R, c.G, c.B, c.A, uv[i][0], uv[i][1])
	}
	return v
}

func (e *Engine) appendTo(g *BatchGroup, vertices []float32, elements []uint32) {
	// vertex data is always built for the group layout
	if err := e.batch(g).AppendGeometry(vertices, elements); err != nil {
		panic(err)
	}
}

// FillTriangle draws a triangle with the current draw color.
//
func (e *Engine) FillTriangle(p1, p2, p3 mgl32.Vec2, z float32) {
	e.appendTo(&e.solid, e.solidVertices(z, p1, p2, p3), triElements)
}

// FillTriangleXY is like FillTriangle with scalar coordinates.
//
func (e *Engine) FillTriangleXY(x1, y1, x2, y2, x3, y3, z float32) {
	e.FillTriangle(mgl32.Vec2{x1, y1}, mgl32.Vec2{x2, y2}, mgl32.Vec2{x3, y3}, z)
}

// FillQuad draws a quadrilateral as the two triangles (p1, p2, p3) and
// (p3, p4, p1).
//
func (e *Engine) FillQuad(p1, p2, p3, p4 mgl32.Vec2, z float32) {
	e.appendTo(&e.solid, e.solidVertices(z, p1, p2, p3, p4), quadElements)
}

// FillRect draws an axis aligned rectangle with its bottom left corner at
// (x, y).
//
func (e *Engine) FillRect(x, y, w, h, z float32) {
	e.FillQuad(mgl32.Vec2{x, y}, mgl32.Vec2{x + w, y}, mgl32.Vec2{x + w, y + h}, mgl32.Vec2{x, y + h}, z)
}

// TextureTri draws a textured triangle with the texture of the current
// textured batch. p1, p2 and p3 map to the bottom left, top center and bottom
// right of the texture. Texels are modulated by the draw color.
//
func (e *Engine) TextureTri(p1, p2, p3 mgl32.Vec2, z float32) {
	e.TextureTriUV(p1, p2, p3, z, triUV)
}

// TextureTriUV is like TextureTri with explicit texture coordinates.
//
func (e *Engine) TextureTriUV(p1, p2, p3 mgl32.Vec2, z float32, uv [3]mgl32.Vec2) {
	e.appendTo(&e.textured, e.textureVertices(z, []mgl32.Vec2{p1, p2, p3}, uv[:]), triElements)
}

// TextureQuad draws a textured quadrilateral. p1 to p4 map to the bottom
// left, bottom right, top right and top left corners of the texture.
//
func (e *Engine) TextureQuad(p1, p2, p3, p4 mgl32.Vec2, z float32) {
	e.TextureQuadUV(p1, p2, p3, p4, z, quadUV)
}

// TextureQuadUV is like TextureQuad with explicit texture coordinates.
//
func (e *Engine) TextureQuadUV(p1, p2, p3, p4 mgl32.Vec2, z float32, uv [4]mgl32.Vec2) {
	e.appendTo(&e.textured, e.textureVertices(z, []mgl32.Vec2{p1, p2, p3, p4}, uv[:]), quadElements)
}

// TextureRect draws the whole texture in an axis aligned rectangle with its
// bottom left corner at (x, y).
//
func (e *Engine) TextureRect(x, y, w, h, z float32) {
	e.TextureQuad(mgl32.Vec2{x, y}, mgl32.Vec2{x + w, y}, mgl32.Vec2{x + w, y + h}, mgl32.Vec2{x, y + h}, z)
}
