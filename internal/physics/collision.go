package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CollisionFunc tests an ordered pair of objects and, when they overlap,
// resolves the contact. It reports whether the objects were overlapping.
type CollisionFunc func(a, b Object) bool

// PlaneToPlane never collides.
func PlaneToPlane(a, b Object) bool {
	return false
}

func PlaneToSphere(plane, sphere Object) bool {
	return SphereToPlane(sphere, plane)
}

func PlaneToBox(plane, box Object) bool {
	return BoxToPlane(box, plane)
}

func SphereToBox(sphere, box Object) bool {
	return BoxToSphere(box, sphere)
}

// SphereToSphere resolves two overlapping spheres.
func SphereToSphere(a, b Object) bool {
	sa, okA := a.(SphereShape)
	sb, okB := b.(SphereShape)
	if !okA || !okB {
		return false
	}
	distance, totalRadius, hit := spheresOverlap(sa, sb)
	if !hit {
		return false
	}

	// Normal points from A to B
	normal := rl.Vector3Normalize(rl.Vector3Subtract(sb.Position(), sa.Position()))
	separation := rl.Vector3Scale(normal, totalRadius-distance)
	resolvePair(sa, sb, normal, separation, pairOptions{groundTorque: true})
	return true
}

// SphereToPlane bounces a sphere off a plane.
func SphereToPlane(a, b Object) bool {
	sphere, okA := a.(SphereShape)
	plane, okB := b.(PlaneShape)
	if !okA || !okB {
		return false
	}
	collision, normal, hit := planeOverlap(sphere, plane, sphere.Radius(), false)
	if !hit {
		return false
	}
	resolvePlane(sphere, plane, normal, collision)
	return true
}

// BoxToSphere resolves a sphere touching a box. A static box that the
// sphere lands on stays grounded.
func BoxToSphere(a, b Object) bool {
	box, okA := a.(BoxShape)
	sphere, okB := b.(SphereShape)
	if !okA || !okB {
		return false
	}
	if !boxOverlaps(box, sphere) {
		return false
	}

	extents := rl.Vector3Add(box.Size(), splat(sphere.Radius()))
	normal, separation := boxSeparation(box.Position(), sphere.Position(), extents)
	resolvePair(box, sphere, normal, separation, pairOptions{keepStaticGround: true})
	return true
}

// BoxToPlane bounces a box off a plane using the box's projected extent.
func BoxToPlane(a, b Object) bool {
	box, okA := a.(BoxShape)
	plane, okB := b.(PlaneShape)
	if !okA || !okB {
		return false
	}
	collision, normal, hit := planeOverlap(box, plane, projectedExtent(box.Size(), plane.Normal()), true)
	if !hit {
		return false
	}
	resolvePlane(box, plane, normal, collision)
	return true
}

// BoxToBox resolves two overlapping boxes. Unlike BoxToSphere, the ground
// box always loses its grounded state.
func BoxToBox(a, b Object) bool {
	ba, okA := a.(BoxShape)
	bb, okB := b.(BoxShape)
	if !okA || !okB {
		return false
	}
	if !boxOverlaps(ba, bb) {
		return false
	}

	extents := rl.Vector3Add(ba.Size(), bb.Size())
	normal, separation := boxSeparation(ba.Position(), bb.Position(), extents)
	resolvePair(ba, bb, normal, separation, pairOptions{})
	return true
}

// spheresOverlap compares the centre distance with the combined radius.
func spheresOverlap(a, b SphereShape) (distance, totalRadius float32, hit bool) {
	distance = rl.Vector3Length(rl.Vector3Subtract(b.Position(), a.Position()))
	totalRadius = a.Radius() + b.Radius()
	return distance, totalRadius, distance < totalRadius
}

// planeOverlap returns how far obj's surface is past the plane (negative
// when penetrating) and the plane normal facing obj. Boxes count touching
// as a hit, spheres do not.
func planeOverlap(obj Object, plane PlaneShape, extent float32, touching bool) (float32, rl.Vector3, bool) {
	mag, normal := planeSide(plane.Normal(), plane.Distance(), obj.Position())
	collision := mag - extent
	if touching {
		return collision, normal, collision <= 0
	}
	return collision, normal, collision < 0
}

// projectedExtent is the radius of a box's projection onto normal.
func projectedExtent(half, normal rl.Vector3) float32 {
	return rl.Vector3DotProduct(half, absVec(normal))
}

// boxSeparation returns the A to B normal and the per-axis overlap along it.
func boxSeparation(posA, posB, extents rl.Vector3) (rl.Vector3, rl.Vector3) {
	delta := rl.Vector3Subtract(posB, posA)
	normal := rl.Vector3Normalize(delta)
	overlap := rl.Vector3Subtract(extents, absVec(delta))
	overlap.X = math32.Max(overlap.X, 0)
	overlap.Y = math32.Max(overlap.Y, 0)
	overlap.Z = math32.Max(overlap.Z, 0)
	return normal, mul(normal, overlap)
}

// pairOptions are the differences between the resolvers sharing resolvePair.
type pairOptions struct {
	keepStaticGround bool // a static ground body stays OnGround
	groundTorque     bool // the bounced body is spun about z
}

// resolvePair applies the two-body response shared by the sphere and box
// resolvers. normal points from a to b and separation is the full
// penetration along it.
func resolvePair(a, b Object, normal, separation rl.Vector3, opts pairOptions) {
	bodyA, bodyB := a.Body(), b.Body()
	if bodyA == nil || bodyB == nil {
		return
	}

	kinematicA, kinematicB := bodyA.Data.IsKinematic, bodyB.Data.IsKinematic
	groundA, groundB := bodyA.Data.OnGround, bodyB.Data.OnGround

	// Both kinematic: hard stop
	if kinematicA && kinematicB {
		a.SetVelocity(rl.Vector3Zero())
		b.SetVelocity(rl.Vector3Zero())
		if groundA || groundB {
			bodyA.Data.OnGround = true
			bodyB.Data.OnGround = true
		}
		return
	}

	if !groundA && !groundB {
		relativeVelocity := rl.Vector3Subtract(a.Velocity(), b.Velocity())
		collisionVector := rl.Vector3Scale(normal, rl.Vector3DotProduct(relativeVelocity, normal))
		mass := reducedMass(bodyA, bodyB)
		force := rl.Vector3Scale(collisionVector, mass)

		// B's elasticity counts half
		elasticity := bodyA.Data.Elasticity + bodyB.Data.Elasticity/2
		bodyA.ApplyForceToAnotherBody(bodyB, rl.Vector3Add(force, rl.Vector3Scale(force, elasticity)))

		torque := rl.Vector3DotProduct(collisionVector, relativeVelocity) * mass
		bodyA.ApplyTorque(rl.Vector3{Z: -torque})
		bodyB.ApplyTorque(rl.Vector3{Z: torque})

		half := rl.Vector3Scale(separation, 0.5)
		a.SetPosition(rl.Vector3Subtract(a.Position(), half))
		b.SetPosition(rl.Vector3Add(b.Position(), half))
		return
	}

	// One side rests on the ground: bounce the other one off it
	moving, ground := a, bodyB
	push := rl.Vector3Scale(separation, -1)
	if groundA {
		moving, ground = b, bodyA
		push = separation
	}
	body := moving.Body()
	force := rl.Vector3Scale(normal, -body.Data.Mass*rl.Vector3DotProduct(normal, body.Data.Velocity))
	body.ApplyForce(rl.Vector3Scale(force, 2))
	if opts.groundTorque {
		// Scaled by a's mass whichever body moves
		torque := -bodyA.Data.Mass * rl.Vector3DotProduct(zLever(normal), body.Data.Velocity)
		body.ApplyTorque(rl.Vector3{Z: torque})
	}
	moving.SetPosition(rl.Vector3Add(moving.Position(), push))

	ground.Data.OnGround = opts.keepStaticGround && ground.Data.IsStatic
}

// resolvePlane bounces obj off a plane. normal faces obj and collision is
// the (non-positive) signed gap between obj's surface and the plane.
func resolvePlane(obj Object, plane PlaneShape, normal rl.Vector3, collision float32) {
	body := obj.Body()
	if body == nil {
		return
	}

	if body.Data.IsKinematic {
		obj.SetVelocity(rl.Vector3Zero())
		body.Data.OnGround = true
		return
	}
	// Resting bodies don't bounce
	if body.Data.OnGround {
		return
	}

	mass := body.Data.Mass
	force := rl.Vector3Scale(normal, -mass*rl.Vector3DotProduct(normal, body.Data.Velocity))
	elasticity := body.Data.Elasticity + plane.Elasticity()/2
	body.ApplyForce(rl.Vector3Add(force, rl.Vector3Scale(force, elasticity)))

	position := obj.Position()
	lever := zLever(rl.Vector3Subtract(position, normal))
	torque := rl.Vector3DotProduct(lever, body.Data.Velocity) * mass
	body.ApplyTorque(rl.Vector3{Z: -torque})

	obj.SetPosition(rl.Vector3Subtract(position, rl.Vector3Scale(normal, collision*0.5)))
}
