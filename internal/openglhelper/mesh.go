package openglhelper

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/leterax/go-grass/pkg/scene"
)

// Primitive is the topology passed to glDrawArrays.
type Primitive uint32

const (
	Points        Primitive = gl.POINTS
	Triangles     Primitive = gl.TRIANGLES
	TriangleStrip Primitive = gl.TRIANGLE_STRIP
)

// Mesh is a non-indexed vertex buffer with its attribute layout baked into a VAO.
type Mesh struct {
	vao         *VertexArrayObject
	vbo         *BufferObject
	primitive   Primitive
	vertexCount int32
}

// NewMesh uploads interleaved vertex data and configures one attribute per
// layout entry, at locations 0, 1, ...
func NewMesh(vertices []float32, layout scene.Layout, primitive Primitive) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)

	stride := layout.Stride()
	offset := 0
	for i, size := range layout {
		vao.SetVertexAttribPointer(uint32(i), size, gl.FLOAT, false, stride, offset)
		offset += int(size) * 4
	}

	vao.Unbind()
	vbo.Unbind()

	return &Mesh{
		vao:         vao,
		vbo:         vbo,
		primitive:   primitive,
		vertexCount: int32(layout.VertexCount(vertices)),
	}
}

// Draw issues one glDrawArrays call over every vertex.
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawArrays(uint32(m.primitive), 0, m.vertexCount)
	m.vao.Unbind()
}

// VertexCount returns the number of vertices drawn per call.
func (m *Mesh) VertexCount() int {
	return int(m.vertexCount)
}

// Delete releases the VAO and VBO
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
}
