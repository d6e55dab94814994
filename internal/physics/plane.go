package physics

import rl "github.com/gen2brain/raylib-go/raylib"

const defaultPlaneElasticity = 0.7

// Plane is an infinite static surface.
//
// A plane keeps its own position field. Position reads that field while
// SetPosition writes the rigid body, so the two can drift apart.
type Plane struct {
	baseObject
	normal     rl.Vector3
	distance   float32
	elasticity float32
	position   rl.Vector3
}

// NewPlane creates a static plane backed by a rigid body placed at normal*distance.
func NewPlane(normal rl.Vector3, distance float32, twoD bool) *Plane {
	pos := rl.Vector3Scale(normal, distance)
	body := &RigidBody{Data: defaultBodyData()}
	body.Data.Position = pos
	body.Data.StartPosition = pos
	body.Data.IsStatic = true
	return &Plane{
		baseObject: baseObject{shape: ShapePlane, body: body, twoD: twoD},
		normal:     normal,
		distance:   distance,
		elasticity: defaultPlaneElasticity,
		position:   pos,
	}
}

// NewDefaultPlane is an upward-facing plane at distance 50 with no rigid body.
func NewDefaultPlane() *Plane {
	up := rl.Vector3{Y: 1}
	return &Plane{
		baseObject: baseObject{shape: ShapePlane},
		normal:     up,
		distance:   50,
		elasticity: defaultPlaneElasticity,
		position:   up,
	}
}

// UpdatePhysics is a no-op; planes never move.
func (p *Plane) UpdatePhysics(rl.Vector3, float32) {}

func (p *Plane) Position() rl.Vector3 { return p.position }

func (p *Plane) Normal() rl.Vector3 { return p.normal }
func (p *Plane) Distance() float32 { return p.distance }
func (p *Plane) Elasticity() float32 { return p.elasticity }

func (p *Plane) SetElasticity(e float32) { p.elasticity = e }
func (p *Plane) SetNormal(n rl.Vector3) { p.normal = n }
func (p *Plane) SetDistance(d float32) { p.distance = d }

// planeSide returns the distance from point to the plane and the normal
// flipped to face the point.
func planeSide(normal rl.Vector3, distance float32, point rl.Vector3) (float32, rl.Vector3) {
	mag := rl.Vector3DotProduct(point, normal) - distance
	if mag < 0 {
		return -mag, rl.Vector3Scale(normal, -1)
	}
	return mag, normal
}
