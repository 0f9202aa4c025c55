package scene

import "github.com/go-gl/mathgl/mgl32"

// Camera describes the viewpoint the renderer builds its view and projection from.
type Camera struct {
	Position    mgl32.Vec3
	LookAt      mgl32.Vec3
	Up          mgl32.Vec3
	FieldOfView float32 // vertical, degrees
	Near        float32
	Far         float32
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.LookAt, c.Up)
}

func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FieldOfView), aspect, c.Near, c.Far)
}
