package object

import (
	"errors"
	"fmt"
)

// ErrUnsupportedShape is returned for shape tags with no generator.
var ErrUnsupportedShape = errors.New("unsupported shape")

// Kind selects a geometry generator
type Kind int

const (
	KindCube Kind = iota
	KindPyramid
	KindIcosahedron
	KindSphere
	KindEllipsoid
	KindCylinder
	KindTorus
	KindConvexPlane
	KindConcavePlane
)

var kindNames = map[Kind]string{
	KindCube:         "cube",
	KindPyramid:      "pyramid",
	KindIcosahedron:  "icosahedron",
	KindSphere:       "sphere",
	KindEllipsoid:    "ellipsoid",
	KindCylinder:     "cylinder",
	KindTorus:        "torus",
	KindConvexPlane:  "convex_plane",
	KindConcavePlane: "concave_plane",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Polyhedral reports whether the shape is flat-faced and takes no parameters
func (k Kind) Polyhedral() bool {
	return k == KindCube || k == KindPyramid || k == KindIcosahedron
}

// ParseKind maps a configuration tag such as "sphere" to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedShape, s)
}
