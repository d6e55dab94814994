package world

import (
	"fmt"

	"rigidsim/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlaneExtent is the side length of the quad a PlaneModel is drawn and bounded with.
const PlaneExtent = 200.0

// Model is a physics object that also carries drawable geometry and a
// bounding box kept in step with its position.
type Model interface {
	physics.Object
	Bounds() physics.AABB
	ComputeBoundingBox()
	Translation(delta rl.Vector3)
	Info() string
}

// SphereModel is a sphere with a tracked bounding box.
type SphereModel struct {
	*physics.Sphere
	Scale  rl.Vector3
	bounds physics.AABB
}

func NewSphereModel(position, velocity rl.Vector3, mass, radius float32, color rl.Color) (*SphereModel, error) {
	s, err := physics.NewSphere(position, velocity, mass, radius, color, false)
	if err != nil {
		return nil, err
	}
	m := &SphereModel{Sphere: s, Scale: rl.Vector3{X: 1, Y: 1, Z: 1}}
	m.ComputeBoundingBox()
	return m, nil
}

func (m *SphereModel) Bounds() physics.AABB { return m.bounds }

// ComputeBoundingBox rebuilds the box from the radius and scale.
func (m *SphereModel) ComputeBoundingBox() {
	r := m.Radius()
	m.bounds = physics.NewAABBFromCenter(m.Position(), rl.Vector3{X: 2 * r * m.Scale.X, Y: 2 * r * m.Scale.Y, Z: 2 * r * m.Scale.Z})
}

func (m *SphereModel) SetPosition(p rl.Vector3) {
	delta := rl.Vector3Subtract(p, m.Position())
	m.Sphere.SetPosition(p)
	m.bounds.Move(delta)
}

func (m *SphereModel) Translation(delta rl.Vector3) {
	m.SetPosition(rl.Vector3Add(m.Position(), delta))
}

func (m *SphereModel) ResetPosition() {
	m.SetPosition(m.StartPosition())
}

func (m *SphereModel) UpdatePhysics(gravity rl.Vector3, timeStep float32) {
	before := m.Position()
	m.Sphere.UpdatePhysics(gravity, timeStep)
	m.bounds.Move(rl.Vector3Subtract(m.Position(), before))
}

func (m *SphereModel) Info() string { return info(m) }

// BoxModel is a box with a tracked bounding box.
type BoxModel struct {
	*physics.Box
	Scale  rl.Vector3
	bounds physics.AABB
}

func NewBoxModel(position, velocity rl.Vector3, mass float32, size rl.Vector3, color rl.Color) (*BoxModel, error) {
	b, err := physics.NewBox(position, velocity, mass, size, color, false)
	if err != nil {
		return nil, err
	}
	m := &BoxModel{Box: b, Scale: rl.Vector3{X: 1, Y: 1, Z: 1}}
	m.ComputeBoundingBox()
	return m, nil
}

func (m *BoxModel) Bounds() physics.AABB { return m.bounds }

// ComputeBoundingBox rebuilds the box from the half-extents and scale.
func (m *BoxModel) ComputeBoundingBox() {
	half := m.Size()
	m.bounds = physics.NewAABBFromCenter(m.Position(), rl.Vector3{X: 2 * half.X * m.Scale.X, Y: 2 * half.Y * m.Scale.Y, Z: 2 * half.Z * m.Scale.Z})
}

func (m *BoxModel) SetPosition(p rl.Vector3) {
	delta := rl.Vector3Subtract(p, m.Position())
	m.Box.SetPosition(p)
	m.bounds.Move(delta)
}

func (m *BoxModel) Translation(delta rl.Vector3) {
	m.SetPosition(rl.Vector3Add(m.Position(), delta))
}

func (m *BoxModel) ResetPosition() {
	m.SetPosition(m.StartPosition())
}

func (m *BoxModel) UpdatePhysics(gravity rl.Vector3, timeStep float32) {
	before := m.Position()
	m.Box.UpdatePhysics(gravity, timeStep)
	m.bounds.Move(rl.Vector3Subtract(m.Position(), before))
}

func (m *BoxModel) Info() string { return info(m) }

// PlaneModel is a plane drawn as a flat quad. Its bounds never move: a
// plane reads its position from its own field, not its body.
type PlaneModel struct {
	*physics.Plane
	Color  rl.Color
	bounds physics.AABB
}

func NewPlaneModel(normal rl.Vector3, distance float32, color rl.Color) *PlaneModel {
	m := &PlaneModel{Plane: physics.NewPlane(normal, distance, false), Color: color}
	m.ComputeBoundingBox()
	return m
}

func (m *PlaneModel) Bounds() physics.AABB { return m.bounds }

func (m *PlaneModel) ComputeBoundingBox() {
	m.bounds = physics.NewAABBFromCenter(m.Position(), rl.Vector3{X: PlaneExtent, Z: PlaneExtent})
}

// Translation is ignored: planes are fixed by their normal and distance.
func (m *PlaneModel) Translation(rl.Vector3) {}

func (m *PlaneModel) Info() string { return info(m) }

func info(o physics.Object) string {
	p, r := o.Position(), o.Rotation()
	return fmt.Sprintf("Object Position: %f %f %f\n Rotation: %f %f %f", p.X, p.Y, p.Z, r.X, r.Y, r.Z)
}
