package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is number of float32 per interleaved vertex (pos.xyz + normal.xyz)
const VertexStride = 6

var (
	// ErrInvalidParameter is returned for step counts or sizes a generator cannot use.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrGeometryMismatch is returned when positions and normals disagree in count.
	ErrGeometryMismatch = errors.New("geometry mismatch")
)

// Mesh is an indexed triangle list with one normal per position.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32
}

// VertexCount returns the number of vertices in the mesh
func (m Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles described by the indices
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks the buffer contract every generator must satisfy.
func (m Mesh) Validate() error {
	if len(m.Positions) != len(m.Normals) {
		return fmt.Errorf("%w: %d positions, %d normals", ErrGeometryMismatch, len(m.Positions), len(m.Normals))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrInvalidParameter, len(m.Indices))
	}
	n := uint32(len(m.Positions))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: index %d at %d out of range (%d vertices)", ErrInvalidParameter, idx, i, n)
		}
	}
	return nil
}

// Interleave packs positions and normals into a single pos+normal vertex buffer.
func (m Mesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Positions)*VertexStride)
	for i, p := range m.Positions {
		n := m.Normals[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return out
}

func checkSteps(name string, steps int) error {
	if steps < 1 {
		return fmt.Errorf("%w: %s must be >= 1, got %d", ErrInvalidParameter, name, steps)
	}
	return nil
}

// gridIndices emits two triangles per quad of a (rows+1) x (cols+1) row-major vertex grid.
func gridIndices(rows, cols int) []uint32 {
	indices := make([]uint32, 0, rows*cols*6)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			first := uint32(i*(cols+1) + j)
			second := first + uint32(cols) + 1
			indices = append(indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}
	return indices
}
