package object

import (
	"fmt"

	"anima/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

// Object is a generated mesh with a material and kinematic state.
// Vertex and index buffers are fixed at construction; Position, Rotation and Scale
// are advanced by Animate once per frame.
type Object struct {
	Kind       Kind
	Name       string
	Properties Properties

	Vertices []float32 // interleaved pos.xyz + normal.xyz
	Indices  []uint32

	Position mgl32.Vec3
	Rotation mgl32.Vec3 // accumulated Euler angles, radians
	Scale    mgl32.Vec3

	Keyframes []Keyframe

	buffers Buffers
}

var polyhedralGenerators = map[Kind]func() geometry.Mesh{
	KindCube:        geometry.Cube,
	KindPyramid:     geometry.Pyramid,
	KindIcosahedron: geometry.Icosahedron,
}

var smoothGenerators = map[Kind]func(Params) (geometry.Mesh, error){
	KindSphere: func(p Params) (geometry.Mesh, error) {
		return geometry.Sphere(
			floatOr(p.Radius, defaultRadius),
			intOr(p.LatSteps, defaultSteps),
			intOr(p.LonSteps, defaultSteps),
		)
	},
	KindEllipsoid: func(p Params) (geometry.Mesh, error) {
		return geometry.Ellipsoid(
			floatOr(p.RadiusX, defaultRadiusX),
			floatOr(p.RadiusY, defaultRadiusY),
			floatOr(p.RadiusZ, defaultRadiusZ),
			intOr(p.LatSteps, defaultEllipsoidSteps),
			intOr(p.LonSteps, defaultEllipsoidSteps),
		)
	},
	KindCylinder: func(p Params) (geometry.Mesh, error) {
		return geometry.Cylinder(
			floatOr(p.Radius, defaultRadius),
			floatOr(p.Height, defaultHeight),
			intOr(p.LatSteps, defaultSteps),
		)
	},
	KindTorus: func(p Params) (geometry.Mesh, error) {
		return geometry.Torus(
			floatOr(p.OuterRadius, defaultOuterRadius),
			floatOr(p.InnerRadius, defaultInnerRadius),
			intOr(p.RadialSteps, defaultRadialSteps),
			intOr(p.TubeSteps, defaultTubeSteps),
		)
	},
	KindConvexPlane: func(p Params) (geometry.Mesh, error) {
		return geometry.CurvedPlane(
			floatOr(p.Radius, defaultRadius),
			intOr(p.LatSteps, defaultSteps),
			intOr(p.LonSteps, defaultSteps),
			floatOr(p.Curvature, defaultCurvature),
			false,
		)
	},
	KindConcavePlane: func(p Params) (geometry.Mesh, error) {
		return geometry.CurvedPlane(
			floatOr(p.Radius, defaultRadius),
			intOr(p.LatSteps, defaultSteps),
			intOr(p.LonSteps, defaultSteps),
			floatOr(p.Curvature, defaultCurvature),
			true,
		)
	},
}

// NewPolyhedral builds a flat-faced object (cube, pyramid, icosahedron).
func NewPolyhedral(kind Kind, props Properties) (*Object, error) {
	gen, ok := polyhedralGenerators[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not polyhedral", ErrUnsupportedShape, kind)
	}
	return newObject(kind, gen(), props)
}

// NewSmooth builds a curved object from its shape parameters.
func NewSmooth(kind Kind, props Properties, params Params) (*Object, error) {
	gen, ok := smoothGenerators[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a smooth shape", ErrUnsupportedShape, kind)
	}
	mesh, err := gen(params)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", kind, err)
	}
	return newObject(kind, mesh, props)
}

// New maps a shape tag to the matching constructor.
// Params are ignored for polyhedral shapes.
func New(shape string, props Properties, params Params) (*Object, error) {
	kind, err := ParseKind(shape)
	if err != nil {
		return nil, err
	}
	if kind.Polyhedral() {
		return NewPolyhedral(kind, props)
	}
	return NewSmooth(kind, props, params)
}

func newObject(kind Kind, mesh geometry.Mesh, props Properties) (*Object, error) {
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("%s mesh: %w", kind, err)
	}
	return &Object{
		Kind:       kind,
		Properties: props,
		Vertices:   mesh.Interleave(),
		Indices:    mesh.Indices,
		Scale:      mgl32.Vec3{1, 1, 1},
	}, nil
}

// VertexCount returns the number of interleaved vertices
func (o *Object) VertexCount() int {
	return len(o.Vertices) / geometry.VertexStride
}

// Material returns the object's current surface parameters
func (o *Object) Material() Material {
	return o.Properties.Material
}

// ApplyMaterial overwrites the object's surface parameters; kinematics are untouched.
func (o *Object) ApplyMaterial(m Material) {
	o.Properties.Material = m
}
