package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCube(t *testing.T, props Properties) *Object {
	t.Helper()
	obj, err := NewPolyhedral(KindCube, props)
	require.NoError(t, err)
	return obj
}

func TestRotationAccumulatesExactly(t *testing.T) {
	props := DefaultProperties()
	props.RotationSpeed = mgl32.Vec3{0.3, -1.7, 2.5}
	obj := newCube(t, props)

	const dt = float32(1.0 / 30.0)
	for i := 0; i < 100; i++ {
		before := obj.Rotation
		obj.Animate(dt)
		assert.Equal(t, before.Add(props.RotationSpeed.Mul(dt)), obj.Rotation)
	}
	// no wrap to 2*pi
	assert.Greater(t, float64(obj.Rotation.Z()), 2*math.Pi)
}

func TestBounceStaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const b = float32(3)

	for trial := 0; trial < 20; trial++ {
		props := DefaultProperties()
		bounds := mgl32.Vec3{b, b, b}
		props.Bounds = &bounds
		props.MovementSpeed = mgl32.Vec3{
			(rng.Float32() - 0.5) * 20,
			(rng.Float32() - 0.5) * 20,
			(rng.Float32() - 0.5) * 20,
		}
		obj := newCube(t, props)

		for frame := 0; frame < 500; frame++ {
			speed := obj.Properties.MovementSpeed
			candidate := obj.Position.Add(speed.Mul(0.05))
			obj.Animate(0.05)

			for axis := 0; axis < 3; axis++ {
				assert.LessOrEqual(t, float64(math.Abs(float64(obj.Position[axis]))), float64(b))
				if math.Abs(float64(candidate[axis])) > float64(b) {
					assert.Equal(t, -speed[axis], obj.Properties.MovementSpeed[axis], "axis %d flips on crossing", axis)
				} else {
					assert.Equal(t, speed[axis], obj.Properties.MovementSpeed[axis])
				}
			}
		}
	}
}

func TestBounceClampsToFace(t *testing.T) {
	props := DefaultProperties()
	bounds := mgl32.Vec3{1, 1, 1}
	props.Bounds = &bounds
	props.MovementSpeed = mgl32.Vec3{4, 0, -4}
	obj := newCube(t, props)

	obj.Animate(1)
	assert.Equal(t, mgl32.Vec3{1, 0, -1}, obj.Position)
	assert.Equal(t, mgl32.Vec3{-4, 0, 4}, obj.Properties.MovementSpeed)
}

func TestUnboundedMovement(t *testing.T) {
	props := DefaultProperties()
	props.MovementSpeed = mgl32.Vec3{100, 0, 0}
	obj := newCube(t, props)

	for i := 0; i < 10; i++ {
		obj.Animate(1)
	}
	assert.InDelta(t, 1000, obj.Position.X(), 1e-3)
	assert.Equal(t, float32(100), obj.Properties.MovementSpeed.X())
}

func TestScaleIsNotClamped(t *testing.T) {
	props := DefaultProperties()
	props.ScaleSpeed = mgl32.Vec3{-1, 0, 1}
	obj := newCube(t, props)

	obj.Animate(2)
	assert.Equal(t, mgl32.Vec3{-1, 1, 3}, obj.Scale)
}

func TestModelAppliesRotationScaleThenTranslation(t *testing.T) {
	props := DefaultProperties()
	props.RotationSpeed = mgl32.Vec3{0, 0, math.Pi / 2}
	obj := newCube(t, props)
	obj.Position = mgl32.Vec3{1, 2, 3}
	obj.Scale = mgl32.Vec3{2, 2, 2}

	model := obj.Animate(1)

	// (1,0,0) -> rotate 90deg about Z -> (0,1,0) -> scale -> (0,2,0) -> translate -> (1,4,3)
	p := model.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assertVec4Near(t, mgl32.Vec4{1, 4, 3, 1}, p, 1e-5)

	// the origin lands on the world position
	o := model.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assertVec4Near(t, mgl32.Vec4{1, 2, 3, 1}, o, 1e-6)
}

func TestEulerIsIntrinsicXYZ(t *testing.T) {
	r := eulerXYZ(mgl32.Vec3{math.Pi / 2, math.Pi / 2, 0})

	// Ry takes +Z to +X, then Rx leaves +X in place
	v := r.Mul4x1(mgl32.Vec4{0, 0, 1, 0})
	assertVec4Near(t, mgl32.Vec4{1, 0, 0, 0}, v, 1e-6)
}

func TestAnimateZeroDtIsIdentityStep(t *testing.T) {
	obj := newCube(t, DefaultProperties())
	model := obj.Animate(0)
	assert.True(t, model.ApproxEqual(mgl32.Ident4()))
}

// assertVec4Near compares component-wise with an absolute tolerance, so expected zeros
// accept float noise such as cos(pi/2).
func assertVec4Near(t *testing.T, want, got mgl32.Vec4, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}
