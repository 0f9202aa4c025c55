package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"anima/internal/container"
	"anima/internal/object"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// ErrInvalidDescription wraps every malformed-entry error raised while assembling a scene.
var ErrInvalidDescription = errors.New("invalid scene description")

// scatterExtent is the half-size of the cube objects without an explicit position start in.
const scatterExtent = 5.0

// Genesis assembles scenes from descriptions.
type Genesis struct {
	log zerolog.Logger
	rng *rand.Rand
}

// Option configures a Genesis
type Option func(*Genesis)

// WithLogger sets the logger used for assembly warnings
func WithLogger(l zerolog.Logger) Option {
	return func(g *Genesis) { g.log = l }
}

// WithSeed seeds the generator that scatters objects without an explicit position
func WithSeed(seed int64) Option {
	return func(g *Genesis) { g.rng = rand.New(rand.NewSource(seed)) }
}

func New(opts ...Option) *Genesis {
	g := &Genesis{
		log: zerolog.Nop(),
		rng: rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Decode parses a JSON scene description, rejecting unknown keys.
func Decode(r io.Reader) (Description, error) {
	var desc Description
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&desc); err != nil {
		return Description{}, fmt.Errorf("%w: %v", ErrInvalidDescription, err)
	}
	return desc, nil
}

// Load decodes and assembles a scene in one step.
func Load(r io.Reader, opts ...Option) (*Scene, error) {
	desc, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return New(opts...).Build(desc)
}

// LoadFile reads a scene description from disk and assembles it.
func LoadFile(path string, opts ...Option) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read scene file: %w", err)
	}
	s, err := Load(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// Build assembles a scene: camera, lights, standalone objects, then container members
// in grid, circular, spiral order, and finally animation attachments. Any malformed entry
// fails the whole build.
func (g *Genesis) Build(desc Description) (*Scene, error) {
	sd := desc.Scene
	s := &Scene{}

	if sd.Camera != nil {
		cam, err := buildCamera(*sd.Camera)
		if err != nil {
			return nil, err
		}
		s.Camera = cam
	}

	for i, ld := range sd.Lights {
		l, err := buildLight(ld)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.Lights = append(s.Lights, l)
	}

	for i, od := range sd.Objects {
		obj, err := g.buildObject(od, len(s.Objects))
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		s.Objects = append(s.Objects, obj)
	}

	if gd := sd.GridContainer; gd != nil {
		members, err := g.buildMembers(gd.Objects, len(s.Objects))
		if err != nil {
			return nil, fmt.Errorf("grid_container: %w", err)
		}
		spacing := container.DefaultGridSpacing
		if gd.Spacing != nil {
			spacing = *gd.Spacing
		}
		grid, err := container.NewGrid(members, gd.Rows, gd.Columns, spacing, override(gd.MaterialOverride))
		if err != nil {
			return nil, fmt.Errorf("%w: grid_container: %v", ErrInvalidDescription, err)
		}
		s.Objects = append(s.Objects, grid.Objects()...)
	}

	if cd := sd.CircularContainer; cd != nil {
		members, err := g.buildMembers(cd.Objects, len(s.Objects))
		if err != nil {
			return nil, fmt.Errorf("circular_container: %w", err)
		}
		circ, err := container.NewCircular(members, cd.Radius, override(cd.MaterialOverride))
		if err != nil {
			return nil, fmt.Errorf("%w: circular_container: %v", ErrInvalidDescription, err)
		}
		s.Objects = append(s.Objects, circ.Objects()...)
	}

	if sp := sd.SpiralContainer; sp != nil {
		members, err := g.buildMembers(sp.Objects, len(s.Objects))
		if err != nil {
			return nil, fmt.Errorf("spiral_container: %w", err)
		}
		spiral, err := container.NewSpiral(members, sp.RadiusStart, sp.RadiusEnd, sp.SpiralTurns, override(sp.MaterialOverride))
		if err != nil {
			return nil, fmt.Errorf("%w: spiral_container: %v", ErrInvalidDescription, err)
		}
		s.Objects = append(s.Objects, spiral.Objects()...)
	}

	for _, ad := range sd.Animations {
		obj := s.Object(ad.Object)
		if obj == nil {
			g.log.Warn().Str("object", ad.Object).Int("keyframes", len(ad.Keyframes)).
				Msg("animation references unknown object, skipping")
			continue
		}
		obj.AttachKeyframes(ad.Keyframes)
	}

	g.log.Debug().
		Bool("camera", s.Camera != nil).
		Int("lights", len(s.Lights)).
		Int("objects", len(s.Objects)).
		Msg("scene assembled")

	return s, nil
}

func buildCamera(cd CameraDesc) (*Camera, error) {
	if cd.FieldOfView <= 0 || cd.FieldOfView >= 180 {
		return nil, fmt.Errorf("%w: camera field_of_view %v out of (0, 180)", ErrInvalidDescription, cd.FieldOfView)
	}
	if cd.NearClip <= 0 || cd.FarClip <= cd.NearClip {
		return nil, fmt.Errorf("%w: camera clip range %v..%v", ErrInvalidDescription, cd.NearClip, cd.FarClip)
	}
	if cd.UpVector.Len() == 0 {
		return nil, fmt.Errorf("%w: camera up_vector is zero", ErrInvalidDescription)
	}
	return &Camera{
		Position:    cd.Position,
		LookAt:      cd.LookAt,
		Up:          cd.UpVector,
		FieldOfView: cd.FieldOfView,
		Near:        cd.NearClip,
		Far:         cd.FarClip,
	}, nil
}

func buildLight(ld LightDesc) (Light, error) {
	l := Light{Color: ld.Color, Intensity: 1}
	if ld.Intensity != nil {
		l.Intensity = *ld.Intensity
	}

	switch ld.Type {
	case "point":
		if ld.Position == nil {
			return Light{}, fmt.Errorf("%w: point light needs a position", ErrInvalidDescription)
		}
		l.Type = LightPoint
		l.Position = *ld.Position
	case "directional":
		if ld.Direction == nil {
			return Light{}, fmt.Errorf("%w: directional light needs a direction", ErrInvalidDescription)
		}
		l.Type = LightDirectional
		l.Direction = *ld.Direction
	default:
		return Light{}, fmt.Errorf("%w: unknown light type %q", ErrInvalidDescription, ld.Type)
	}
	return l, nil
}

// buildObject constructs one object. count is the number of objects built before it and
// names unnamed objects "{type}_{count}".
func (g *Genesis) buildObject(od ObjectDesc, count int) (*object.Object, error) {
	obj, err := object.New(od.Type, od.Properties.Properties(), od.Params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDescription, err)
	}

	obj.Name = od.Name
	if obj.Name == "" {
		obj.Name = fmt.Sprintf("%s_%d", od.Type, count)
	}

	if od.Position != nil {
		obj.Position = *od.Position
	} else {
		obj.Position = g.scatter()
	}
	return obj, nil
}

// buildMembers builds a container's objects. Members are named against the object count
// before the container, so unnamed members of the same type share a name.
func (g *Genesis) buildMembers(descs []ObjectDesc, count int) ([]*object.Object, error) {
	members := make([]*object.Object, 0, len(descs))
	for i, od := range descs {
		obj, err := g.buildObject(od, count)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		members = append(members, obj)
	}
	return members, nil
}

func (g *Genesis) scatter() mgl32.Vec3 {
	return mgl32.Vec3{
		(g.rng.Float32()*2 - 1) * scatterExtent,
		(g.rng.Float32()*2 - 1) * scatterExtent,
		(g.rng.Float32()*2 - 1) * scatterExtent,
	}
}

func override(md *MaterialDesc) *object.Material {
	if md == nil {
		return nil
	}
	m := md.Material()
	return &m
}
