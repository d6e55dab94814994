package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Sphere is a ball with a radius.
type Sphere struct {
	baseObject
	radius float32
	Color  rl.Color
}

var sphereRotation = rl.Vector3{Z: 0.01}

func NewSphere(position, velocity rl.Vector3, mass, radius float32, color rl.Color, twoD bool) (*Sphere, error) {
	body, err := NewRigidBody(position, velocity, sphereRotation, mass)
	if err != nil {
		return nil, err
	}
	return newSphere(body, radius, color, twoD), nil
}

// NewSphereFromAngle launches a sphere at angle (radians) with speed.
func NewSphereFromAngle(position rl.Vector3, angle, speed, mass, radius float32, color rl.Color, twoD bool) (*Sphere, error) {
	body, err := NewRigidBodyFromAngle(position, angle, speed, sphereRotation, mass)
	if err != nil {
		return nil, err
	}
	return newSphere(body, radius, color, twoD), nil
}

func newSphere(body *RigidBody, radius float32, color rl.Color, twoD bool) *Sphere {
	return &Sphere{
		baseObject: baseObject{shape: ShapeSphere, body: body, twoD: twoD},
		radius:     radius,
		Color:      color,
	}
}

func (s *Sphere) UpdatePhysics(gravity rl.Vector3, timeStep float32) {
	s.body.UpdatePhysics(gravity, timeStep)
}

func (s *Sphere) Radius() float32 { return s.radius }
func (s *Sphere) SetRadius(r float32) { s.radius = r }
