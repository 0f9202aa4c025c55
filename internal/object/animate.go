package object

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Animate advances the object's kinematic state by dt seconds and returns its model
// transform. Leaving the bounds box on an axis reverses the stored movement speed on
// that axis and clamps the position to the box face. Scale grows without limit.
func (o *Object) Animate(dt float32) mgl32.Mat4 {
	p := &o.Properties

	o.Rotation = o.Rotation.Add(p.RotationSpeed.Mul(dt))

	candidate := o.Position.Add(p.MovementSpeed.Mul(dt))
	if p.Bounds != nil {
		b := *p.Bounds
		for axis := 0; axis < 3; axis++ {
			if math32.Abs(candidate[axis]) > b[axis] {
				p.MovementSpeed[axis] = -p.MovementSpeed[axis]
				candidate[axis] = mgl32.Clamp(candidate[axis], -b[axis], b[axis])
			}
		}
	}
	o.Position = candidate

	o.Scale = o.Scale.Add(p.ScaleSpeed.Mul(dt))

	rotation := eulerXYZ(o.Rotation)
	scaling := mgl32.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z())
	translation := mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z())

	return compose(compose(rotation, scaling), translation)
}

// compose returns the transform applying a first and then b.
func compose(a, b mgl32.Mat4) mgl32.Mat4 {
	return b.Mul4(a)
}

// eulerXYZ builds an intrinsic X-Y-Z rotation.
func eulerXYZ(r mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(r.X()).
		Mul4(mgl32.HomogRotate3DY(r.Y())).
		Mul4(mgl32.HomogRotate3DZ(r.Z()))
}
