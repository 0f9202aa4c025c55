package container

import (
	"fmt"

	"anima/internal/geometry"
	"anima/internal/object"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultGridSpacing is used when a grid does not specify its spacing
var DefaultGridSpacing = mgl32.Vec3{2, 2, 0}

// Container positions a group of objects once, at construction, and optionally
// overwrites their material. It keeps no relationship with the objects afterwards;
// callers take Objects() and discard the container.
type Container struct {
	objects  []*object.Object
	override *object.Material
}

func newContainer(objects []*object.Object, override *object.Material) Container {
	c := Container{objects: objects, override: override}
	c.applyMaterialOverride()
	return c
}

// Objects returns the arranged members in declaration order
func (c *Container) Objects() []*object.Object {
	return c.objects
}

func (c *Container) applyMaterialOverride() {
	if c.override == nil {
		return
	}
	for _, obj := range c.objects {
		obj.ApplyMaterial(*c.override)
	}
}

// Grid lays objects out row-major on the XY plane.
type Grid struct {
	Container
	Rows    int
	Columns int
	Spacing mgl32.Vec3
}

// NewGrid places object idx at (col*sx, row*sy, 0). Objects past rows*columns keep
// their current position.
func NewGrid(objects []*object.Object, rows, columns int, spacing mgl32.Vec3, override *object.Material) (*Grid, error) {
	if rows < 0 || columns < 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", rows, columns, geometry.ErrInvalidParameter)
	}
	g := &Grid{
		Container: newContainer(objects, override),
		Rows:      rows,
		Columns:   columns,
		Spacing:   spacing,
	}
	g.arrange()
	return g, nil
}

func (g *Grid) arrange() {
	idx := 0
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			if idx >= len(g.objects) {
				return
			}
			g.objects[idx].Position = mgl32.Vec3{
				float32(col) * g.Spacing.X(),
				float32(row) * g.Spacing.Y(),
				0,
			}
			idx++
		}
	}
}

// Circular spaces objects evenly around a circle on the XY plane.
type Circular struct {
	Container
	Radius float32
}

// NewCircular places object i at angle 2*pi*i/n on a circle of the given radius.
func NewCircular(objects []*object.Object, radius float32, override *object.Material) (*Circular, error) {
	if radius < 0 {
		return nil, fmt.Errorf("circular radius %v: %w", radius, geometry.ErrInvalidParameter)
	}
	c := &Circular{
		Container: newContainer(objects, override),
		Radius:    radius,
	}
	c.arrange()
	return c, nil
}

func (c *Circular) arrange() {
	n := len(c.objects)
	if n == 0 {
		return
	}
	for i, obj := range c.objects {
		angle := 2 * math32.Pi * float32(i) / float32(n)
		obj.Position = mgl32.Vec3{c.Radius * math32.Cos(angle), c.Radius * math32.Sin(angle), 0}
	}
}

// Spiral places objects along an Archimedean-style spiral whose radius moves linearly
// from RadiusStart to RadiusEnd over Turns revolutions.
type Spiral struct {
	Container
	RadiusStart float32
	RadiusEnd   float32
	Turns       float32
}

// NewSpiral arranges objects with t = i/(n-1); a single object sits at RadiusStart.
func NewSpiral(objects []*object.Object, radiusStart, radiusEnd, turns float32, override *object.Material) (*Spiral, error) {
	if radiusStart < 0 || radiusEnd < 0 {
		return nil, fmt.Errorf("spiral radii %v..%v: %w", radiusStart, radiusEnd, geometry.ErrInvalidParameter)
	}
	s := &Spiral{
		Container:   newContainer(objects, override),
		RadiusStart: radiusStart,
		RadiusEnd:   radiusEnd,
		Turns:       turns,
	}
	s.arrange()
	return s, nil
}

func (s *Spiral) arrange() {
	n := len(s.objects)
	switch n {
	case 0:
		return
	case 1:
		s.objects[0].Position = mgl32.Vec3{s.RadiusStart, 0, 0}
		return
	}

	span := s.RadiusEnd - s.RadiusStart
	for i, obj := range s.objects {
		t := float32(i) / float32(n-1)
		angle := 2 * math32.Pi * s.Turns * t
		r := s.RadiusStart + t*span
		obj.Position = mgl32.Vec3{r * math32.Cos(angle), r * math32.Sin(angle), 0}
	}
}
