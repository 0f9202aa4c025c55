package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Flat-faced shapes share corner vertices between faces, so each corner carries a single
// normal. Shading on the shared edges is approximate.

// Cube returns a unit cube centered on the origin.
func Cube() Mesh {
	return Mesh{
		Positions: []mgl32.Vec3{
			// Front
			{-0.5, -0.5, 0.5},
			{0.5, -0.5, 0.5},
			{0.5, 0.5, 0.5},
			{-0.5, 0.5, 0.5},
			// Back
			{-0.5, -0.5, -0.5},
			{0.5, -0.5, -0.5},
			{0.5, 0.5, -0.5},
			{-0.5, 0.5, -0.5},
		},
		Normals: []mgl32.Vec3{
			{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1},
			{0, 0, -1}, {0, 0, -1}, {0, 0, -1}, {0, 0, -1},
		},
		Indices: []uint32{
			0, 1, 2, 2, 3, 0, // front
			4, 5, 6, 6, 7, 4, // back
			0, 4, 7, 7, 3, 0, // left
			1, 5, 6, 6, 2, 1, // right
			3, 2, 6, 6, 7, 3, // top
			0, 1, 5, 5, 4, 0, // bottom
		},
	}
}

// Pyramid returns a square-based pyramid with its apex on +Y.
func Pyramid() Mesh {
	return Mesh{
		Positions: []mgl32.Vec3{
			{-0.5, -0.5, -0.5},
			{0.5, -0.5, -0.5},
			{0.5, -0.5, 0.5},
			{-0.5, -0.5, 0.5},
			{0, 0.5, 0}, // apex
		},
		Normals: []mgl32.Vec3{
			{0, -1, 0}, {0, -1, 0}, {0, -1, 0}, {0, -1, 0},
			// averaged over the four side faces, not normalized
			{0, 1, 1},
		},
		Indices: []uint32{
			0, 1, 2, 2, 3, 0, // base
			0, 4, 1,
			1, 4, 2,
			2, 4, 3,
			3, 4, 0,
		},
	}
}

// Icosahedron returns a regular icosahedron inscribed in the unit sphere.
func Icosahedron() Mesh {
	phi := (1 + math32.Sqrt(5)) / 2
	raw := []mgl32.Vec3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	scale := 1 / math32.Sqrt(1+phi*phi)

	positions := make([]mgl32.Vec3, len(raw))
	normals := make([]mgl32.Vec3, len(raw))
	for i, v := range raw {
		positions[i] = v.Mul(scale)
		normals[i] = positions[i].Normalize()
	}

	return Mesh{
		Positions: positions,
		Normals:   normals,
		Indices: []uint32{
			0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
			1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
			3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
			4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
		},
	}
}
