package scene

import (
	"testing"

	"anima/internal/object"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneAnimateKeepsObjectOrder(t *testing.T) {
	s := load(t, `{"scene": {"objects": [
		{"type": "cube", "position": [1, 0, 0], "properties": {"movement_speed": [1, 0, 0]}},
		{"type": "cube", "position": [0, 5, 0], "properties": {}}
	]}}`)

	models := s.Animate(0.5)

	require.Len(t, models, 2)
	assert.Equal(t, mgl32.Vec3{1.5, 0, 0}, models[0].Col(3).Vec3())
	assert.Equal(t, mgl32.Vec3{0, 5, 0}, models[1].Col(3).Vec3())
	assert.Equal(t, mgl32.Vec3{1.5, 0, 0}, s.Objects[0].Position)
}

func TestSceneObjectFirstMatch(t *testing.T) {
	a, err := object.New("cube", object.DefaultProperties(), object.Params{})
	require.NoError(t, err)
	b, err := object.New("pyramid", object.DefaultProperties(), object.Params{})
	require.NoError(t, err)
	a.Name, b.Name = "twin", "twin"

	s := &Scene{Objects: []*object.Object{a, b}}
	assert.Same(t, a, s.Object("twin"))
	assert.Nil(t, s.Object("missing"))
}

func TestCameraMatrices(t *testing.T) {
	cam := Camera{Position: mgl32.Vec3{0, 0, 10}, Up: mgl32.Vec3{0, 1, 0}, FieldOfView: 90, Near: 1, Far: 100}

	// the look-at target lands on the -Z axis in view space
	p := cam.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -10, p.Z(), 1e-5)

	proj := cam.ProjectionMatrix(2)
	assert.InDelta(t, 0.5, proj.At(0, 0), 1e-5)
	assert.InDelta(t, 1, proj.At(1, 1), 1e-5)
}

func TestLightTypeString(t *testing.T) {
	assert.Equal(t, "point", LightPoint.String())
	assert.Equal(t, "directional", LightDirectional.String())
	assert.Equal(t, "LightType(7)", LightType(7).String())
}
