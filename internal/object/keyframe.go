package object

import "github.com/go-gl/mathgl/mgl32"

// Keyframe is a timed pose attached to a named object by the scene description.
// Nil fields leave that channel unspecified.
type Keyframe struct {
	Time     float32     `json:"time"`
	Position *mgl32.Vec3 `json:"position,omitempty"`
	Rotation *mgl32.Vec3 `json:"rotation,omitempty"`
	Scale    *mgl32.Vec3 `json:"scale,omitempty"`
}

// AttachKeyframes appends keyframes to the object
func (o *Object) AttachKeyframes(kfs []Keyframe) {
	o.Keyframes = append(o.Keyframes, kfs...)
}
