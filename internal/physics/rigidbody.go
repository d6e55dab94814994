package physics

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Velocities below these magnitudes are snapped to zero at the end of a step.
const (
	MinLinearThreshold   = 0.05
	MinRotationThreshold = 0.05
)

// ErrInvalidMass is returned when a body would be given a zero, negative or NaN mass.
var ErrInvalidMass = errors.New("physics: mass must be greater than zero")

// BodyData is the kinematic state of one rigid body.
// Collision resolvers read and write it directly.
type BodyData struct {
	Position        rl.Vector3
	Velocity        rl.Vector3
	Rotation        rl.Vector3 // degrees
	AngularVelocity rl.Vector3

	StartPosition rl.Vector3
	StartVelocity rl.Vector3

	Scale float32
	Mass  float32

	OnGround     bool // resting on a surface: no gravity, no bounce
	IsStatic     bool // immovable
	IsKinematic  bool // integrates but ignores collision impulses
	RotationLock bool

	LinearDrag  float32 // 1 = no drag
	AngularDrag float32 // 1 = no drag
	Elasticity  float32 // lower absorbs more
}

// RigidBody owns a BodyData and integrates it with a semi-implicit Euler step.
type RigidBody struct {
	Data BodyData
}

func defaultBodyData() BodyData {
	return BodyData{
		Rotation:     rl.Vector3{Z: 1e-8},
		Scale:        1,
		Mass:         1,
		RotationLock: true,
		LinearDrag:   1,
		AngularDrag:  0.45,
		Elasticity:   0.1,
	}
}

func validMass(mass float32) error {
	if !(mass > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidMass, mass)
	}
	return nil
}

// NewRigidBody creates a body at position moving with velocity.
// The start position and velocity used by resets are snapshotted here.
func NewRigidBody(position, velocity, rotation rl.Vector3, mass float32) (*RigidBody, error) {
	if err := validMass(mass); err != nil {
		return nil, err
	}
	data := defaultBodyData()
	data.Position = position
	data.StartPosition = position
	data.Velocity = velocity
	data.StartVelocity = velocity
	data.Rotation = rotation
	data.Mass = mass
	return &RigidBody{Data: data}, nil
}

// NewRigidBodyFromAngle creates a body launched at angle (radians) in the XY plane.
func NewRigidBodyFromAngle(position rl.Vector3, angle, speed float32, rotation rl.Vector3, mass float32) (*RigidBody, error) {
	return NewRigidBody(position, launchVelocity(angle, speed), rotation, mass)
}

func launchVelocity(angle, speed float32) rl.Vector3 {
	return rl.Vector3{X: speed * math32.Cos(angle), Y: speed * math32.Sin(angle)}
}

// UpdatePhysics advances the body by one step. Static bodies never move.
func (r *RigidBody) UpdatePhysics(gravity rl.Vector3, timeStep float32) {
	d := &r.Data
	if d.IsStatic {
		return
	}

	// resting bodies would otherwise sink a little every frame
	totalGravity := gravity
	if d.OnGround {
		totalGravity = rl.Vector3Zero()
	}
	r.ApplyForce(rl.Vector3Scale(totalGravity, d.Mass*timeStep))

	if !d.IsKinematic && !d.RotationLock {
		d.Velocity = rl.Vector3Scale(d.Velocity, d.LinearDrag)
		d.AngularVelocity = rl.Vector3Scale(d.AngularVelocity, d.AngularDrag)
	}

	d.Position = rl.Vector3Add(d.Position, rl.Vector3Scale(d.Velocity, timeStep))

	if !d.RotationLock {
		if d.Rotation.Z > 360 || d.Rotation.Z < -360 {
			d.Rotation.Z = 0
		} else {
			d.Rotation = rl.Vector3Add(d.Rotation, rl.Vector3Scale(d.AngularVelocity, timeStep))
		}
	}

	speed := rl.Vector3Length(d.Velocity)
	if speed < MinLinearThreshold && speed < rl.Vector3Length(gravity)*d.LinearDrag*timeStep {
		d.Velocity = rl.Vector3Zero()
	}

	angularSpeed := rl.Vector3Length(d.AngularVelocity)
	if angularSpeed < MinRotationThreshold && rl.Vector3Length(d.Velocity) < angularSpeed {
		d.AngularVelocity = rl.Vector3Zero()
	}
}

// ApplyForce changes the velocity instantly by force/mass.
func (r *RigidBody) ApplyForce(force rl.Vector3) {
	r.Data.Velocity = rl.Vector3Add(r.Data.Velocity, divide(force, r.Data.Mass))
}

// ApplyForceToAnotherBody applies force to other and the opposite force to r.
// Each side is skipped while it is on the ground.
func (r *RigidBody) ApplyForceToAnotherBody(other *RigidBody, force rl.Vector3) {
	if !other.Data.OnGround {
		other.ApplyForce(force)
	}
	if !r.Data.OnGround {
		r.ApplyForce(rl.Vector3Scale(force, -1))
	}
}

// ApplyTorque changes the angular velocity instantly by torque/mass.
func (r *RigidBody) ApplyTorque(torque rl.Vector3) {
	r.Data.AngularVelocity = rl.Vector3Add(r.Data.AngularVelocity, divide(torque, r.Data.Mass))
}

// ApplyTorqueToAnotherBody is the angular counterpart of ApplyForceToAnotherBody.
func (r *RigidBody) ApplyTorqueToAnotherBody(other *RigidBody, torque rl.Vector3) {
	if !other.Data.OnGround {
		other.ApplyTorque(torque)
	}
	if !r.Data.OnGround {
		r.ApplyTorque(rl.Vector3Scale(torque, -1))
	}
}

// PredictPositionFromAngle predicts where a body launched from its start position
// at angle (radians) and speed will be after t seconds. Only X and Y are predicted.
func (r *RigidBody) PredictPositionFromAngle(t, angle, speed float32, gravity rl.Vector3) rl.Vector3 {
	return r.PredictPositionWithVelocity(t, launchVelocity(angle, speed), gravity)
}

// PredictPositionWithVelocity is the ballistic position after t seconds from the start position.
func (r *RigidBody) PredictPositionWithVelocity(t float32, velocity, gravity rl.Vector3) rl.Vector3 {
	start := r.Data.StartPosition
	return rl.Vector3{
		X: start.X + velocity.X*t,
		Y: start.Y + velocity.Y*t + gravity.Y*0.5*t*t,
	}
}

// PredictPosition uses the start velocity. Velocity changes applied since are ignored.
func (r *RigidBody) PredictPosition(t float32, gravity rl.Vector3) rl.Vector3 {
	return r.PredictPositionWithVelocity(t, r.Data.StartVelocity, gravity)
}

// SetMass validates and stores mass.
func (r *RigidBody) SetMass(mass float32) error {
	if err := validMass(mass); err != nil {
		return err
	}
	r.Data.Mass = mass
	return nil
}
