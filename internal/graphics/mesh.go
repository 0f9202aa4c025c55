package graphics

import (
	"errors"
	"fmt"

	"anima/internal/geometry"
	"anima/internal/object"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const floatSize = 4

// ErrEmptyMesh is returned when asked to upload a mesh without vertices or indices.
var ErrEmptyMesh = errors.New("empty mesh")

// GLUploader creates vertex array objects for interleaved position+normal meshes.
// It must be used on the goroutine that owns the GL context.
type GLUploader struct{}

// Upload creates a VAO with one VBO and one EBO. Attribute 0 is the position,
// attribute 1 the normal.
func (GLUploader) Upload(vertices []float32, indices []uint32) (object.Buffers, error) {
	if len(vertices) == 0 || len(indices) == 0 {
		return nil, ErrEmptyMesh
	}
	if len(vertices)%geometry.VertexStride != 0 {
		return nil, fmt.Errorf("%w: %d floats is not a multiple of %d", geometry.ErrGeometryMismatch, len(vertices), geometry.VertexStride)
	}

	m := &glMesh{count: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(geometry.VertexStride * floatSize)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*floatSize)

	gl.BindVertexArray(0)
	return m, nil
}

type glMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

func (m *glMesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (m *glMesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	m.vao, m.vbo, m.ebo = 0, 0, 0
}
