package scene

import (
	"errors"

	"anima/internal/object"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoCamera is returned when a scene without a camera is handed to a renderer.
var ErrNoCamera = errors.New("scene has no camera")

// Scene is the result of assembly: a camera, lights in shader order and a flat object
// list. The lists are not resized after loading.
type Scene struct {
	Camera  *Camera
	Lights  []Light
	Objects []*object.Object
}

// Validate reports whether the scene can be rendered
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return ErrNoCamera
	}
	return nil
}

// Object returns the first object with the given name, or nil.
func (s *Scene) Object(name string) *object.Object {
	for _, obj := range s.Objects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// Animate advances every object by dt and returns their model transforms in object order.
func (s *Scene) Animate(dt float32) []mgl32.Mat4 {
	models := make([]mgl32.Mat4, len(s.Objects))
	for i, obj := range s.Objects {
		models[i] = obj.Animate(dt)
	}
	return models
}

// Cleanup releases GPU buffers held by every object.
func (s *Scene) Cleanup() {
	for _, obj := range s.Objects {
		obj.Cleanup()
	}
}
