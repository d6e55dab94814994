package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Object is anything the World can integrate and collide.
//
// Accessors delegate to the object's RigidBody. Objects without a body
// (joints, default planes) return zero values and ignore setters.
type Object interface {
	Shape() ShapeType
	Body() *RigidBody

	UpdatePhysics(gravity rl.Vector3, timeStep float32)

	Position() rl.Vector3
	SetPosition(rl.Vector3)
	Velocity() rl.Vector3
	SetVelocity(rl.Vector3)
	Rotation() rl.Vector3
	SetRotation(rl.Vector3)
	Mass() float32
	SetMass(float32) error

	StartPosition() rl.Vector3
	StartVelocity() rl.Vector3
	SetOriginalPosition(rl.Vector3)
	SetCurrentPosAsOriginalPos()
	ResetPosition()
	ResetVelocity()

	Is2D() bool
	Switch2DState() bool
}

// SphereShape is the capability the sphere resolvers need.
type SphereShape interface {
	Object
	Radius() float32
}

// BoxShape is the capability the box resolvers need. Size is the half-extents.
type BoxShape interface {
	Object
	Size() rl.Vector3
	DistPointToBox(point rl.Vector3) float32
}

// PlaneShape is the capability the plane resolvers need.
type PlaneShape interface {
	Object
	Normal() rl.Vector3
	Distance() float32
	Elasticity() float32
}

type baseObject struct {
	shape ShapeType
	body  *RigidBody
	twoD  bool
}

func (o *baseObject) Shape() ShapeType { return o.shape }
func (o *baseObject) Body() *RigidBody { return o.body }

func (o *baseObject) UpdatePhysics(gravity rl.Vector3, timeStep float32) {
	if o.body != nil {
		o.body.UpdatePhysics(gravity, timeStep)
	}
}

func (o *baseObject) Position() rl.Vector3 {
	if o.body == nil {
		return rl.Vector3{}
	}
	return o.body.Data.Position
}

func (o *baseObject) SetPosition(p rl.Vector3) {
	if o.body != nil {
		o.body.Data.Position = p
	}
}

func (o *baseObject) Velocity() rl.Vector3 {
	if o.body == nil {
		return rl.Vector3{}
	}
	return o.body.Data.Velocity
}

func (o *baseObject) SetVelocity(v rl.Vector3) {
	if o.body != nil {
		o.body.Data.Velocity = v
	}
}

func (o *baseObject) Rotation() rl.Vector3 {
	if o.body == nil {
		return rl.Vector3{}
	}
	return o.body.Data.Rotation
}

func (o *baseObject) SetRotation(r rl.Vector3) {
	if o.body != nil {
		o.body.Data.Rotation = r
	}
}

func (o *baseObject) Mass() float32 {
	if o.body == nil {
		return 0
	}
	return o.body.Data.Mass
}

func (o *baseObject) SetMass(mass float32) error {
	if o.body == nil {
		return nil
	}
	return o.body.SetMass(mass)
}

func (o *baseObject) StartPosition() rl.Vector3 {
	if o.body == nil {
		return rl.Vector3{}
	}
	return o.body.Data.StartPosition
}

func (o *baseObject) StartVelocity() rl.Vector3 {
	if o.body == nil {
		return rl.Vector3{}
	}
	return o.body.Data.StartVelocity
}

func (o *baseObject) SetOriginalPosition(p rl.Vector3) {
	if o.body != nil {
		o.body.Data.StartPosition = p
	}
}

func (o *baseObject) SetCurrentPosAsOriginalPos() {
	if o.body != nil {
		o.body.Data.StartPosition = o.body.Data.Position
	}
}

func (o *baseObject) ResetPosition() {
	if o.body != nil {
		o.body.Data.Position = o.body.Data.StartPosition
	}
}

func (o *baseObject) ResetVelocity() {
	if o.body != nil {
		o.body.Data.Velocity = o.body.Data.StartVelocity
	}
}

func (o *baseObject) Is2D() bool { return o.twoD }

// Switch2DState toggles the 2D flag and returns the new value.
func (o *baseObject) Switch2DState() bool {
	o.twoD = !o.twoD
	return o.twoD
}

// Joint is a placeholder shape. The World skips it during collision checks.
type Joint struct {
	baseObject
}

func NewJoint() *Joint {
	return &Joint{baseObject{shape: ShapeJoint}}
}
