package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere returns a lat/lon sphere. The seam column is duplicated so the grid has
// (latSteps+1)*(lonSteps+1) vertices.
func Sphere(radius float32, latSteps, lonSteps int) (Mesh, error) {
	return Ellipsoid(radius, radius, radius, latSteps, lonSteps)
}

// Ellipsoid returns a lat/lon ellipsoid with per-axis radii. Normals point along the
// unit-sphere direction the vertex was generated from.
func Ellipsoid(rx, ry, rz float32, latSteps, lonSteps int) (Mesh, error) {
	if err := checkSteps("lat_steps", latSteps); err != nil {
		return Mesh{}, err
	}
	if err := checkSteps("lon_steps", lonSteps); err != nil {
		return Mesh{}, err
	}

	count := (latSteps + 1) * (lonSteps + 1)
	positions := make([]mgl32.Vec3, 0, count)
	normals := make([]mgl32.Vec3, 0, count)

	for i := 0; i <= latSteps; i++ {
		theta := math32.Pi * float32(i) / float32(latSteps)
		sinTheta, cosTheta := math32.Sin(theta), math32.Cos(theta)
		for j := 0; j <= lonSteps; j++ {
			phi := 2 * math32.Pi * float32(j) / float32(lonSteps)
			sinPhi, cosPhi := math32.Sin(phi), math32.Cos(phi)

			n := mgl32.Vec3{cosPhi * sinTheta, cosTheta, sinPhi * sinTheta}
			positions = append(positions, mgl32.Vec3{n[0] * rx, n[1] * ry, n[2] * rz})
			normals = append(normals, n)
		}
	}

	return Mesh{
		Positions: positions,
		Normals:   normals,
		Indices:   gridIndices(latSteps, lonSteps),
	}, nil
}

// Cylinder returns the open side wall of a cylinder centered on the origin along Y.
// Its radial step count is read from the lat_steps parameter.
func Cylinder(radius, height float32, radialSteps int) (Mesh, error) {
	if err := checkSteps("lat_steps", radialSteps); err != nil {
		return Mesh{}, err
	}

	positions := make([]mgl32.Vec3, 0, (radialSteps+1)*2)
	normals := make([]mgl32.Vec3, 0, (radialSteps+1)*2)
	for i := 0; i <= radialSteps; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(radialSteps)
		sinTheta, cosTheta := math32.Sin(theta), math32.Cos(theta)
		for j := 0; j < 2; j++ {
			y := (float32(j) - 0.5) * height
			positions = append(positions, mgl32.Vec3{radius * cosTheta, y, radius * sinTheta})
			normals = append(normals, mgl32.Vec3{cosTheta, 0, sinTheta})
		}
	}

	indices := make([]uint32, 0, radialSteps*6)
	for i := 0; i < radialSteps; i++ {
		first := uint32(2 * i)
		second := first + 2
		indices = append(indices,
			first, second, first+1,
			second, second+1, first+1,
		)
	}

	return Mesh{Positions: positions, Normals: normals, Indices: indices}, nil
}

// Torus returns a torus lying in the XY plane. The radial direction wraps back onto the
// first ring by index; the tube direction closes on a duplicated seam vertex instead, so
// each ring holds tubeSteps+1 vertices.
func Torus(outerRadius, innerRadius float32, radialSteps, tubeSteps int) (Mesh, error) {
	if err := checkSteps("radial_steps", radialSteps); err != nil {
		return Mesh{}, err
	}
	if err := checkSteps("tube_steps", tubeSteps); err != nil {
		return Mesh{}, err
	}

	ring := tubeSteps + 1
	positions := make([]mgl32.Vec3, 0, radialSteps*ring)
	normals := make([]mgl32.Vec3, 0, radialSteps*ring)

	for i := 0; i < radialSteps; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(radialSteps)
		sinTheta, cosTheta := math32.Sin(theta), math32.Cos(theta)
		for j := 0; j < ring; j++ {
			phi := 2 * math32.Pi * float32(j) / float32(tubeSteps)
			sinPhi, cosPhi := math32.Sin(phi), math32.Cos(phi)

			r := outerRadius + innerRadius*cosTheta
			positions = append(positions, mgl32.Vec3{r * cosPhi, r * sinPhi, innerRadius * sinTheta})
			normals = append(normals, mgl32.Vec3{cosTheta * cosPhi, cosTheta * sinPhi, sinTheta})
		}
	}

	indices := make([]uint32, 0, radialSteps*tubeSteps*6)
	for i := 0; i < radialSteps; i++ {
		next := (i + 1) % radialSteps
		for j := 0; j < tubeSteps; j++ {
			first := uint32(i*ring + j)
			second := uint32(next*ring + j)
			indices = append(indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}

	return Mesh{Positions: positions, Normals: normals, Indices: indices}, nil
}

// CurvedPlane returns a lat/lon sheet whose height follows sin(curvature*theta), bent
// downward when concave. Normals are the unscaled positions and are not normalized.
func CurvedPlane(radius float32, latSteps, lonSteps int, curvature float32, concave bool) (Mesh, error) {
	if err := checkSteps("lat_steps", latSteps); err != nil {
		return Mesh{}, err
	}
	if err := checkSteps("lon_steps", lonSteps); err != nil {
		return Mesh{}, err
	}

	sign := float32(1)
	if concave {
		sign = -1
	}

	count := (latSteps + 1) * (lonSteps + 1)
	positions := make([]mgl32.Vec3, 0, count)
	normals := make([]mgl32.Vec3, 0, count)

	for i := 0; i <= latSteps; i++ {
		theta := math32.Pi * float32(i) / float32(latSteps)
		sinTheta := math32.Sin(theta)
		y := math32.Sin(sign * curvature * theta)
		for j := 0; j <= lonSteps; j++ {
			phi := 2 * math32.Pi * float32(j) / float32(lonSteps)
			v := mgl32.Vec3{math32.Cos(phi) * sinTheta, y, math32.Sin(phi) * sinTheta}
			positions = append(positions, mgl32.Vec3{v[0] * radius, v[1], v[2] * radius})
			normals = append(normals, v)
		}
	}

	return Mesh{
		Positions: positions,
		Normals:   normals,
		Indices:   gridIndices(latSteps, lonSteps),
	}, nil
}
