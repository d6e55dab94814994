package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// FlyCamera is a free-flying camera for looking around the simulation.
// Mouse look is active while the right button is held.
type FlyCamera struct {
	Position  rl.Vector3
	Yaw       float32 // degrees
	Pitch     float32 // degrees
	MoveSpeed float32 // units per second
	LookSpeed float32
	Boost     float32 // speed multiplier while shift is held
	Fovy      float32
}

// Input is one frame of movement intent. Axes are in -1..1.
type Input struct {
	Forward, Right, Up float32
	LookX, LookY       float32
	Boost              bool
}

func New(pos rl.Vector3) *FlyCamera {
	return &FlyCamera{
		Position:  pos,
		Yaw:       -90.0,
		Pitch:     -20.0,
		MoveSpeed: 20.0,
		LookSpeed: 0.1,
		Boost:     4.0,
		Fovy:      45,
	}
}

// LookAt points the camera at target from its current position.
func (c *FlyCamera) LookAt(target rl.Vector3) {
	d := rl.Vector3Subtract(target, c.Position)
	if rl.Vector3Length(d) == 0 {
		return
	}
	d = rl.Vector3Normalize(d)
	c.Yaw = math32.Atan2(d.Z, d.X) * 180 / math32.Pi
	c.Pitch = clampPitch(math32.Asin(d.Y) * 180 / math32.Pi)
}

func (c *FlyCamera) Update(deltaTime float32) {
	c.Move(readInput(), deltaTime)
}

func readInput() Input {
	var in Input
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		d := rl.GetMouseDelta()
		in.LookX, in.LookY = d.X, d.Y
	}
	if rl.IsKeyDown(rl.KeyW) {
		in.Forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Right++
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Right--
	}
	if rl.IsKeyDown(rl.KeyE) {
		in.Up++
	}
	if rl.IsKeyDown(rl.KeyQ) {
		in.Up--
	}
	in.Boost = rl.IsKeyDown(rl.KeyLeftShift)
	return in
}

// Move applies one frame of input.
func (c *FlyCamera) Move(in Input, deltaTime float32) {
	c.Yaw += in.LookX * c.LookSpeed
	c.Pitch = clampPitch(c.Pitch - in.LookY*c.LookSpeed)

	forward := c.Forward()
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, rl.Vector3{Y: 1}))

	dir := rl.Vector3Add(rl.Vector3Scale(forward, in.Forward), rl.Vector3Scale(right, in.Right))
	dir.Y += in.Up
	// Diagonals are no faster than straight lines
	if l := rl.Vector3Length(dir); l > 1 {
		dir = rl.Vector3Scale(dir, 1/l)
	}

	speed := c.MoveSpeed
	if in.Boost {
		speed *= c.Boost
	}
	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(dir, speed*deltaTime))
}

// Forward is the unit view direction.
func (c *FlyCamera) Forward() rl.Vector3 {
	yaw := c.Yaw * math32.Pi / 180
	pitch := c.Pitch * math32.Pi / 180
	return rl.Vector3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}
}

func (c *FlyCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, c.Forward()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

func clampPitch(p float32) float32 {
	return math32.Max(-89, math32.Min(89, p))
}
