package renderer

import (
	"anima/internal/profiling"
	"anima/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ClearColor is the background every frame starts from
var ClearColor = mgl32.Vec4{0.1, 0.1, 0.1, 1.0}

// Capabilities are enabled once at startup. Face culling stays off: generated meshes
// mix winding orders, so both faces of every triangle are drawn.
var Capabilities = []uint32{gl.DEPTH_TEST, gl.MULTISAMPLE}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	scene       *scene.Scene
	width       int
	height      int
}

// NewRenderer configures global GL state and initializes the renderables for the scene.
// The scene must have a camera.
func NewRenderer(s *scene.Scene, width, height int, rs ...Renderable) (*Renderer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	for _, c := range Capabilities {
		gl.Enable(c)
	}

	r := &Renderer{renderables: rs, scene: s}
	for i, rd := range rs {
		if err := rd.Init(); err != nil {
			// release what was already set up
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
	}
	r.SetViewport(width, height)
	return r, nil
}

// Render clears the frame and draws every renderable with the camera matrices.
func (r *Renderer) Render(dt float32) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := r.Context(dt)
	for _, rd := range r.renderables {
		rd.Render(ctx)
	}
}

// Context builds the per-frame render context from the scene camera
func (r *Renderer) Context(dt float32) RenderContext {
	cam := r.scene.Camera
	return RenderContext{
		Scene:   r.scene,
		DT:      dt,
		View:    cam.ViewMatrix(),
		Proj:    cam.ProjectionMatrix(r.Aspect()),
		ViewPos: cam.Position,
	}
}

// Aspect returns the viewport width over height
func (r *Renderer) Aspect() float32 {
	if r.height == 0 {
		return 1
	}
	return float32(r.width) / float32(r.height)
}

// SetViewport updates the GL viewport and forwards the size to the renderables
func (r *Renderer) SetViewport(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, rd := range r.renderables {
		rd.SetViewport(width, height)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}
