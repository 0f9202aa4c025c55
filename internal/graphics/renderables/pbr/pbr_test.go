package pbr

import (
	"testing"

	"anima/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLightUniforms(t *testing.T) {
	lights := []scene.Light{
		{Type: scene.LightPoint, Position: mgl32.Vec3{1, 2, 3}, Direction: mgl32.Vec3{9, 9, 9}, Color: mgl32.Vec3{1, 1, 1}, Intensity: 2},
		{Type: scene.LightDirectional, Position: mgl32.Vec3{9, 9, 9}, Direction: mgl32.Vec3{0, -1, 0}, Color: mgl32.Vec3{1, 0.5, 0}, Intensity: 1},
	}

	u := LightUniforms(lights)

	assert.Equal(t, []LightUniform{
		{Type: 0, Pos: mgl32.Vec3{1, 2, 3}, Color: mgl32.Vec3{2, 2, 2}},
		{Type: 1, Dir: mgl32.Vec3{0, -1, 0}, Color: mgl32.Vec3{1, 0.5, 0}},
	}, u)
}

func TestLightUniformsTruncates(t *testing.T) {
	lights := make([]scene.Light, MaxLights+3)
	for i := range lights {
		lights[i] = scene.Light{Type: scene.LightPoint, Position: mgl32.Vec3{float32(i), 0, 0}, Intensity: 1}
	}

	u := LightUniforms(lights)

	assert.Len(t, u, MaxLights)
	assert.Equal(t, float32(MaxLights-1), u[MaxLights-1].Pos.X())
}

func TestNormalMatrixRemovesNonUniformScale(t *testing.T) {
	model := mgl32.Translate3D(5, 5, 5).Mul4(mgl32.Scale3D(2, 1, 1))
	n := NormalMatrix(model)

	// the x normal shrinks where the surface was stretched
	got := n.Mul3x1(mgl32.Vec3{1, 1, 0})
	assert.InDelta(t, 0.5, got.X(), 1e-6)
	assert.InDelta(t, 1, got.Y(), 1e-6)
}

func TestNormalMatrixSingularFallsBack(t *testing.T) {
	model := mgl32.Scale3D(0, 1, 1)
	assert.Equal(t, model.Mat3(), NormalMatrix(model))
}

func TestNormalMatrixRotationIsUnchanged(t *testing.T) {
	model := mgl32.HomogRotate3DY(0.7)
	n := NormalMatrix(model)
	want := model.Mat3()
	for i := range want {
		assert.InDelta(t, want[i], n[i], 1e-5, "element %d", i)
	}
}
