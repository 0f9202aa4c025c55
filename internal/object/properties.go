package object

import "github.com/go-gl/mathgl/mgl32"

// Material holds the PBR surface parameters uploaded per object.
// Values are expected in [0,1]; the shader clamps them, nothing here does.
type Material struct {
	Albedo    mgl32.Vec3
	Metallic  float32
	Roughness float32
	AO        float32
}

// DefaultMaterial returns a white dielectric with medium roughness
func DefaultMaterial() Material {
	return Material{
		Albedo:    mgl32.Vec3{1, 1, 1},
		Metallic:  0,
		Roughness: 0.5,
		AO:        1,
	}
}

// Properties couples an object's material with its kinematic speeds.
type Properties struct {
	Material

	RotationSpeed mgl32.Vec3 // rad/s
	MovementSpeed mgl32.Vec3 // units/s
	ScaleSpeed    mgl32.Vec3 // units/s

	// Bounds is the half-extent of the reflecting box around the origin.
	// Nil means the object moves without limit.
	Bounds *mgl32.Vec3
}

// DefaultProperties returns the default material with every speed at zero and no bounds
func DefaultProperties() Properties {
	return Properties{Material: DefaultMaterial()}
}
