package pbr

import (
	"anima/internal/graphics"
	"anima/internal/graphics/renderer"
	"anima/internal/object"
	"anima/internal/profiling"
	"anima/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// MaxLights matches the uniform array size in pbr.frag
const MaxLights = 10

// ShaderName is the base name of the shader pair under the shaders directory
const ShaderName = "pbr"

// PBR draws every scene object with the Cook-Torrance shader. Objects are animated
// by the frame delta before drawing.
type PBR struct {
	shadersDir string
	uploader   object.Uploader
	log        zerolog.Logger

	shader       *graphics.Shader
	failed       map[*object.Object]bool
	warnedLights bool
}

func New(shadersDir string, uploader object.Uploader, log zerolog.Logger) *PBR {
	return &PBR{
		shadersDir: shadersDir,
		uploader:   uploader,
		log:        log,
		failed:     make(map[*object.Object]bool),
	}
}

func (p *PBR) Init() error {
	shader, err := graphics.LoadShader(p.shadersDir, ShaderName)
	if err != nil {
		return err
	}
	p.shader = shader
	return nil
}

func (p *PBR) Render(ctx renderer.RenderContext) {
	p.shader.Use()
	p.shader.SetMat4("view", ctx.View)
	p.shader.SetMat4("projection", ctx.Proj)
	p.shader.SetVec3("viewPos", ctx.ViewPos)
	p.setLights(ctx.Scene.Lights)

	var models []mgl32.Mat4
	func() {
		defer profiling.Track("pbr.animate")()
		models = ctx.Scene.Animate(ctx.DT)
	}()

	defer profiling.Track("pbr.draw")()
	for i, obj := range ctx.Scene.Objects {
		p.renderObject(obj, models[i])
	}
}

func (p *PBR) renderObject(obj *object.Object, model mgl32.Mat4) {
	p.shader.SetMat4("model", model)
	p.shader.SetMat3("normalMatrix", NormalMatrix(model))

	m := obj.Material()
	p.shader.SetVec3("albedo", m.Albedo)
	p.shader.SetFloat("metallic", m.Metallic)
	p.shader.SetFloat("roughness", m.Roughness)
	p.shader.SetFloat("ao", m.AO)

	if err := obj.Draw(p.uploader); err != nil && !p.failed[obj] {
		// report once per object, the upload is retried every frame
		p.failed[obj] = true
		p.log.Error().Err(err).Str("object", obj.Name).Msg("could not upload object")
	}
}

func (p *PBR) setLights(lights []scene.Light) {
	uniforms := LightUniforms(lights)
	if len(lights) > MaxLights && !p.warnedLights {
		p.warnedLights = true
		p.log.Warn().Int("lights", len(lights)).Int("max", MaxLights).Msg("too many lights, extra lights ignored")
	}

	p.shader.SetInt("numLights", int32(len(uniforms)))
	for i, u := range uniforms {
		p.shader.SetInt(graphics.Indexed("lightType", i), u.Type)
		p.shader.SetVec3(graphics.Indexed("lightPos", i), u.Pos)
		p.shader.SetVec3(graphics.Indexed("lightDir", i), u.Dir)
		p.shader.SetVec3(graphics.Indexed("lightColor", i), u.Color)
	}
}

func (p *PBR) Dispose() {
	if p.shader != nil {
		p.shader.Delete()
	}
}

func (p *PBR) SetViewport(width, height int) {}

// LightUniform is the per-light data uploaded to the shader arrays.
type LightUniform struct {
	Type  int32
	Pos   mgl32.Vec3
	Dir   mgl32.Vec3
	Color mgl32.Vec3
}

// LightUniforms converts scene lights to shader order, keeping at most MaxLights.
func LightUniforms(lights []scene.Light) []LightUniform {
	n := min(len(lights), MaxLights)
	out := make([]LightUniform, n)
	for i, l := range lights[:n] {
		out[i] = LightUniform{Type: int32(l.Type), Color: l.Radiance()}
		switch l.Type {
		case scene.LightPoint:
			out[i].Pos = l.Position
		case scene.LightDirectional:
			out[i].Dir = l.Direction
		}
	}
	return out
}

// NormalMatrix is the inverse-transpose of the model's upper 3x3. A singular model
// (zero scale on some axis) falls back to the 3x3 itself.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	m := model.Mat3()
	if m.Det() == 0 {
		return m
	}
	return m.Inv().Transpose()
}
