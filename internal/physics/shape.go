package physics

import (
	"errors"
	"fmt"
	"strings"
)

// ShapeType tags an Object's geometry and indexes the collision table.
type ShapeType int

const (
	ShapeJoint ShapeType = iota - 1 // never collides
	ShapePlane
	ShapeSphere
	ShapeBox

	// ShapeCount is the number of collidable shapes.
	ShapeCount = int(ShapeBox) + 1
)

// ErrUnknownShape is returned when parsing a shape name that is not recognised.
var ErrUnknownShape = errors.New("physics: unknown shape")

var shapeNames = map[ShapeType]string{
	ShapeJoint:  "joint",
	ShapePlane:  "plane",
	ShapeSphere: "sphere",
	ShapeBox:    "box",
}

func (s ShapeType) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// Valid reports whether s can index the collision table.
func (s ShapeType) Valid() bool {
	return s >= 0 && int(s) < ShapeCount
}

// ParseShapeType maps a name such as "sphere" or "Box" to its ShapeType.
func ParseShapeType(name string) (ShapeType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for shape, n := range shapeNames {
		if n == name {
			return shape, nil
		}
	}
	return ShapeJoint, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}
