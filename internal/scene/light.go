package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// LightType tags which of Position or Direction a light uses
type LightType int

const (
	LightPoint LightType = iota
	LightDirectional
)

func (t LightType) String() string {
	switch t {
	case LightPoint:
		return "point"
	case LightDirectional:
		return "directional"
	}
	return fmt.Sprintf("LightType(%d)", int(t))
}

// Light is a point or directional light. Point lights use Position only,
// directional lights use Direction only.
type Light struct {
	Type      LightType
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
}

// Radiance returns the color scaled by intensity, as uploaded to the shader
func (l Light) Radiance() mgl32.Vec3 {
	return l.Color.Mul(l.Intensity)
}
