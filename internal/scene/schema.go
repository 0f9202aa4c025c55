package scene

import (
	"bytes"
	"encoding/json"

	"anima/internal/object"

	"github.com/go-gl/mathgl/mgl32"
)

// Description is the root of a scene file.
type Description struct {
	Scene SceneDesc `json:"scene"`
}

type SceneDesc struct {
	Camera            *CameraDesc     `json:"camera,omitempty"`
	Lights            []LightDesc     `json:"lights,omitempty"`
	Objects           []ObjectDesc    `json:"objects,omitempty"`
	GridContainer     *GridDesc       `json:"grid_container,omitempty"`
	CircularContainer *CircularDesc   `json:"circular_container,omitempty"`
	SpiralContainer   *SpiralDesc     `json:"spiral_container,omitempty"`
	Animations        []AnimationDesc `json:"animations,omitempty"`
}

type CameraDesc struct {
	Position    mgl32.Vec3 `json:"position"`
	LookAt      mgl32.Vec3 `json:"look_at"`
	UpVector    mgl32.Vec3 `json:"up_vector"`
	FieldOfView float32    `json:"field_of_view"`
	NearClip    float32    `json:"near_clip"`
	FarClip     float32    `json:"far_clip"`
}

// UnmarshalJSON replaces the whole camera, so when a description repeats the camera key
// the last one wins instead of being merged into the earlier one.
func (c *CameraDesc) UnmarshalJSON(data []byte) error {
	type plain CameraDesc
	var p plain
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return err
	}
	*c = CameraDesc(p)
	return nil
}

type LightDesc struct {
	Type      string      `json:"type"`
	Position  *mgl32.Vec3 `json:"position,omitempty"`
	Direction *mgl32.Vec3 `json:"direction,omitempty"`
	Color     mgl32.Vec3  `json:"color"`
	Intensity *float32    `json:"intensity,omitempty"`
}

// MaterialDesc is the surface part of an object's properties. It is also the shape of a
// container's material_override.
type MaterialDesc struct {
	Albedo    *mgl32.Vec3 `json:"albedo,omitempty"`
	Metallic  *float32    `json:"metallic,omitempty"`
	Roughness *float32    `json:"roughness,omitempty"`
	AO        *float32    `json:"ao,omitempty"`
}

type PropertiesDesc struct {
	MaterialDesc
	RotationSpeed *mgl32.Vec3 `json:"rotation_speed,omitempty"`
	MovementSpeed *mgl32.Vec3 `json:"movement_speed,omitempty"`
	ScaleSpeed    *mgl32.Vec3 `json:"scale_speed,omitempty"`
	Bounds        *mgl32.Vec3 `json:"bounds,omitempty"`
}

// ObjectDesc is one object entry. Shape parameters sit beside type and name.
type ObjectDesc struct {
	Type       string         `json:"type"`
	Name       string         `json:"name,omitempty"`
	Position   *mgl32.Vec3    `json:"position,omitempty"`
	Properties PropertiesDesc `json:"properties"`
	object.Params
}

type GridDesc struct {
	Rows             int           `json:"rows"`
	Columns          int           `json:"columns"`
	Spacing          *mgl32.Vec3   `json:"spacing,omitempty"`
	MaterialOverride *MaterialDesc `json:"material_override,omitempty"`
	Objects          []ObjectDesc  `json:"objects"`
}

type CircularDesc struct {
	Radius           float32       `json:"radius"`
	MaterialOverride *MaterialDesc `json:"material_override,omitempty"`
	Objects          []ObjectDesc  `json:"objects"`
}

type SpiralDesc struct {
	RadiusStart      float32       `json:"radius_start"`
	RadiusEnd        float32       `json:"radius_end"`
	SpiralTurns      float32       `json:"spiral_turns"`
	MaterialOverride *MaterialDesc `json:"material_override,omitempty"`
	Objects          []ObjectDesc  `json:"objects"`
}

type AnimationDesc struct {
	Object    string            `json:"object"`
	Keyframes []object.Keyframe `json:"keyframes"`
}

// Material resolves the description against the default material.
func (m MaterialDesc) Material() object.Material {
	mat := object.DefaultMaterial()
	if m.Albedo != nil {
		mat.Albedo = *m.Albedo
	}
	if m.Metallic != nil {
		mat.Metallic = *m.Metallic
	}
	if m.Roughness != nil {
		mat.Roughness = *m.Roughness
	}
	if m.AO != nil {
		mat.AO = *m.AO
	}
	return mat
}

// Properties resolves the description against object.DefaultProperties.
func (p PropertiesDesc) Properties() object.Properties {
	props := object.Properties{Material: p.MaterialDesc.Material()}
	if p.RotationSpeed != nil {
		props.RotationSpeed = *p.RotationSpeed
	}
	if p.MovementSpeed != nil {
		props.MovementSpeed = *p.MovementSpeed
	}
	if p.ScaleSpeed != nil {
		props.ScaleSpeed = *p.ScaleSpeed
	}
	if p.Bounds != nil {
		b := *p.Bounds
		props.Bounds = &b
	}
	return props
}
