package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Box is an axis-aligned box. Size holds the half-extents.
type Box struct {
	baseObject
	size  rl.Vector3
	Color rl.Color
}

var boxRotation = rl.Vector3{Z: 1e-7}

func NewBox(position, velocity rl.Vector3, mass float32, size rl.Vector3, color rl.Color, twoD bool) (*Box, error) {
	body, err := NewRigidBody(position, velocity, boxRotation, mass)
	if err != nil {
		return nil, err
	}
	return newBox(body, size, color, twoD), nil
}

// NewBoxFromAngle launches a box at angle (radians) with speed.
func NewBoxFromAngle(position rl.Vector3, angle, speed, mass float32, size rl.Vector3, color rl.Color, twoD bool) (*Box, error) {
	body, err := NewRigidBodyFromAngle(position, angle, speed, boxRotation, mass)
	if err != nil {
		return nil, err
	}
	return newBox(body, size, color, twoD), nil
}

func newBox(body *RigidBody, size rl.Vector3, color rl.Color, twoD bool) *Box {
	return &Box{
		baseObject: baseObject{shape: ShapeBox, body: body, twoD: twoD},
		size:       size,
		Color:      color,
	}
}

func (b *Box) UpdatePhysics(gravity rl.Vector3, timeStep float32) {
	b.body.UpdatePhysics(gravity, timeStep)
}

func (b *Box) Size() rl.Vector3 { return b.size }
func (b *Box) SetSize(s rl.Vector3) { b.size = s }

// CheckCollision tests this box against another box (per-axis extents) or a
// sphere (closest-point distance). Any other shape never collides.
func (b *Box) CheckCollision(other Object) bool {
	return boxOverlaps(b, other)
}

// DistPointToBox is the Euclidean distance from point to the nearest point of the box.
// Points inside the box are at distance zero.
func (b *Box) DistPointToBox(point rl.Vector3) float32 {
	return distPointToBox(b.Position(), b.size, point)
}

func boxOverlaps(b BoxShape, other Object) bool {
	switch o := other.(type) {
	case BoxShape:
		delta := absVec(rl.Vector3Subtract(b.Position(), o.Position()))
		sum := rl.Vector3Add(b.Size(), o.Size())
		return delta.X <= sum.X && delta.Y <= sum.Y && delta.Z <= sum.Z
	case SphereShape:
		return b.DistPointToBox(o.Position()) <= o.Radius()
	}
	return false
}

func distPointToBox(center, half, point rl.Vector3) float32 {
	var sq float32
	for axis := 0; axis < 3; axis++ {
		c := component(center, axis)
		h := component(half, axis)
		p := component(point, axis)
		nearest := clamp(p, c-h, c+h)
		sq += math32.Pow(p-nearest, 2)
	}
	return math32.Sqrt(sq)
}
