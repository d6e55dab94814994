package physics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereToSphereSeparates(t *testing.T) {
	a := newTestSphere(t, vec(0, 0, 0), vec(0, 0, 0), 1)
	b := newTestSphere(t, vec(1.5, 0, 0), vec(0, 0, 0), 1)

	require.True(t, SphereToSphere(a, b))

	assert.InDelta(t, -0.25, a.Position().X, 1e-6)
	assert.InDelta(t, 1.75, b.Position().X, 1e-6)
	assert.InDelta(t, 2.0, b.Position().X-a.Position().X, 1e-6)
	assert.Equal(t, float32(0), a.Position().Y)
	assert.Equal(t, float32(0), b.Position().Y)
}

func TestSphereToSphereSymmetry(t *testing.T) {
	a1 := newTestSphere(t, vec(0, 0, 0), vec(0, 0, 0), 1)
	b1 := newTestSphere(t, vec(1.5, 0, 0), vec(0, 0, 0), 1)
	require.True(t, SphereToSphere(a1, b1))

	a2 := newTestSphere(t, vec(0, 0, 0), vec(0, 0, 0), 1)
	b2 := newTestSphere(t, vec(1.5, 0, 0), vec(0, 0, 0), 1)
	require.True(t, SphereToSphere(b2, a2))

	// each sphere ends up in the same place whichever goes first
	assert.InDelta(t, a1.Position().X, a2.Position().X, 1e-6)
	assert.InDelta(t, b1.Position().X, b2.Position().X, 1e-6)

	// and the two moves mirror each other
	moveA := a1.Position().X - 0
	moveB := b1.Position().X - 1.5
	assert.InDelta(t, -moveA, moveB, 1e-6)
}

func TestSphereToSphereImpulse(t *testing.T) {
	a := newTestSphere(t, vec(0, 0, 0), vec(1, 0, 0), 1)
	b := newTestSphere(t, vec(1.5, 0, 0), vec(0, 0, 0), 1)

	require.True(t, SphereToSphere(a, b))

	// reduced mass 0.5, force (0.5,0,0), elasticity 0.1 + 0.05
	assert.InDelta(t, 1-0.575, a.Velocity().X, 1e-6)
	assert.InDelta(t, 0.575, b.Velocity().X, 1e-6)
	// torque = dot(collisionVector, relVel) * reduced = 0.5
	assert.InDelta(t, -0.5, a.Body().Data.AngularVelocity.Z, 1e-6)
	assert.InDelta(t, 0.5, b.Body().Data.AngularVelocity.Z, 1e-6)
}

func TestSphereToSphereGrounded(t *testing.T) {
	ground := newTestSphere(t, vec(0, 0, 0), vec(0, 0, 0), 1)
	ground.Body().Data.OnGround = true
	falling := newTestSphere(t, vec(0, 1.5, 0), vec(0, -2, 0), 1)

	require.True(t, SphereToSphere(ground, falling))

	assert.InDelta(t, 2, falling.Velocity().Y, 1e-6, "velocity along the normal is reflected")
	assert.InDelta(t, 2.0, falling.Position().Y, 1e-6, "moved out by the full penetration")
	assert.Equal(t, vec(0, 0, 0), ground.Position())
	assert.Equal(t, vec(0, 0, 0), ground.Velocity())
	assert.False(t, ground.Body().Data.OnGround, "ground loses its resting state")
}

func TestSphereToSphereGroundedSpin(t *testing.T) {
	ground := newTestSphere(t, vec(0, 0, 0), vec(0, 0, 0), 1)
	ground.Body().Data.OnGround = true
	falling := newTestSphere(t, vec(0, 1.5, 0), vec(1, -2, 0), 1)

	require.True(t, SphereToSphere(ground, falling))

	// velocity after the bounce is (1,2,0), lever about z is (1,0,0)
	assert.InDelta(t, 1, falling.Velocity().X, 1e-6)
	assert.InDelta(t, 2, falling.Velocity().Y, 1e-6)
	assert.InDelta(t, -1, falling.Body().Data.AngularVelocity.Z, 1e-6)
	assert.Equal(t, vec(0, 0, 0), ground.Body().Data.AngularVelocity)
}

func TestBoxToSphereGroundedDoesNotSpin(t *testing.T) {
	ground := newTestBox(t, vec(0, 0, 0), vec(0, 0, 0), vec(1, 1, 1))
	ground.Body().Data.OnGround = true
	sphere := newTestSphere(t, vec(0, 1.5, 0), vec(1, -1, 0), 1)

	require.True(t, BoxToSphere(ground, sphere))

	assert.Equal(t, vec(0, 0, 0), sphere.Body().Data.AngularVelocity)
}

func TestSphereToSphereKinematicAgainstDynamic(t *testing.T) {
	a := newTestSphere(t, vec(0, 0, 0), vec(1, 0, 0), 1)
	a.Body().Data.IsKinematic = true
	b := newTestSphere(t, vec(1.5, 0, 0), vec(0, 0, 0), 1)

	require.True(t, SphereToSphere(a, b))

	// only pairs where both sides are kinematic hard stop
	assert.InDelta(t, -0.25, a.Position().X, 1e-6)
	assert.InDelta(t, 1.75, b.Position().X, 1e-6)
	assert.InDelta(t, 1-0.575, a.Velocity().X, 1e-6)
	assert.InDelta(t, 0.575, b.Velocity().X, 1e-6)
	assert.InDelta(t, -0.5, a.Body().Data.AngularVelocity.Z, 1e-6)
	assert.InDelta(t, 0.5, b.Body().Data.AngularVelocity.Z, 1e-6)
	assert.False(t, a.Body().Data.OnGround)
	assert.False(t, b.Body().Data.OnGround)
}

func TestSphereToPlaneAbove(t *testing.T) {
	s := newTestSphere(t, vec(0, 5, 0), vec(0, -1, 0), 1)
	p := NewPlane(vec(0, 1, 0), 0, false)
	before := snapshot(s)

	assert.False(t, SphereToPlane(s, p))
	assert.Equal(t, before, snapshot(s))
}

func TestSphereToPlanePenetrating(t *testing.T) {
	s := newTestSphere(t, vec(0, 0.5, 0), vec(0, -1, 0), 1)
	p := NewPlane(vec(0, 1, 0), 0, false)

	require.True(t, SphereToPlane(s, p))

	assert.InDelta(t, 0.75, s.Position().Y, 1e-6, "pushed out by half the penetration")
	// force 1, elasticity 0.1 + 0.7/2
	assert.InDelta(t, 0.45, s.Velocity().Y, 1e-6)
	assert.InDelta(t, 0, s.Body().Data.AngularVelocity.Z, 1e-6)
}

func TestSphereToPlaneBelowFlipsNormal(t *testing.T) {
	s := newTestSphere(t, vec(0, -0.5, 0), vec(0, 1, 0), 1)
	p := NewPlane(vec(0, 1, 0), 0, false)

	require.True(t, SphereToPlane(s, p))

	assert.InDelta(t, -0.75, s.Position().Y, 1e-6)
	assert.Less(t, s.Velocity().Y, float32(0))
}

func TestSphereToPlaneUsesDistance(t *testing.T) {
	p := NewPlane(vec(0, 1, 0), 10, false)
	assert.False(t, SphereToPlane(newTestSphere(t, vec(0, 0.5, 0), vec(0, 0, 0), 1), p))
	assert.True(t, SphereToPlane(newTestSphere(t, vec(0, 10.5, 0), vec(0, 0, 0), 1), p))
}

func TestSphereToPlaneKinematic(t *testing.T) {
	s := newTestSphere(t, vec(0, 0.5, 0), vec(3, -1, 0), 1)
	s.Body().Data.IsKinematic = true
	p := NewPlane(vec(0, 1, 0), 0, false)

	require.True(t, SphereToPlane(s, p))

	assert.Equal(t, vec(0, 0, 0), s.Velocity())
	assert.True(t, s.Body().Data.OnGround)
	assert.Equal(t, vec(0, 0.5, 0), s.Position())
}

func TestSphereToPlaneResting(t *testing.T) {
	s := newTestSphere(t, vec(0, 0.5, 0), vec(0, -1, 0), 1)
	s.Body().Data.OnGround = true
	p := NewPlane(vec(0, 1, 0), 0, false)
	before := snapshot(s)

	assert.True(t, SphereToPlane(s, p), "still overlapping")
	assert.Equal(t, before, snapshot(s), "resting bodies don't bounce")
}

func TestBoxToPlaneTouching(t *testing.T) {
	p := NewPlane(vec(0, 1, 0), 0, false)
	b := newTestBox(t, vec(0, 1, 0), vec(0, -1, 0), vec(1, 1, 1))

	require.True(t, BoxToPlane(b, p), "touching counts for boxes")
	assert.Equal(t, float32(1), b.Position().Y, "zero penetration, no move")
	assert.InDelta(t, 0.45, b.Velocity().Y, 1e-6)

	sphere := newTestSphere(t, vec(0, 1, 0), vec(0, -1, 0), 1)
	assert.False(t, SphereToPlane(sphere, p), "touching does not count for spheres")
}

func TestBoxToPlaneProjectedExtent(t *testing.T) {
	p := NewPlane(vec(1, 0, 0), 0, false)
	b := newTestBox(t, vec(1.5, 0, 0), vec(0, 0, 0), vec(2, 0.5, 0.5))

	require.True(t, BoxToPlane(b, p))
	assert.InDelta(t, 1.75, b.Position().X, 1e-6)
	assert.True(t, PlaneToBox(p, newTestBox(t, vec(1.5, 0, 0), vec(0, 0, 0), vec(2, 0.5, 0.5))))
}

func TestBoxToBoxBothKinematic(t *testing.T) {
	a := newTestBox(t, vec(0, 0, 0), vec(1, 0, 0), vec(1, 1, 1))
	b := newTestBox(t, vec(1, 0, 0), vec(-1, 2, 0), vec(1, 1, 1))
	a.Body().Data.IsKinematic = true
	b.Body().Data.IsKinematic = true
	a.Body().Data.OnGround = true

	require.True(t, BoxToBox(a, b))

	assert.Equal(t, vec(0, 0, 0), a.Velocity())
	assert.Equal(t, vec(0, 0, 0), b.Velocity())
	assert.True(t, a.Body().Data.OnGround)
	assert.True(t, b.Body().Data.OnGround)
	assert.Equal(t, vec(0, 0, 0), a.Position(), "kinematic pairs are not separated")
	assert.Equal(t, vec(1, 0, 0), b.Position())
}

func TestBoxToBoxFreeSeparation(t *testing.T) {
	a := newTestBox(t, vec(0, 0, 0), vec(0, 0, 0), vec(1, 1, 1))
	b := newTestBox(t, vec(1.5, 0, 0), vec(0, 0, 0), vec(1, 1, 1))

	require.True(t, BoxToBox(a, b))

	assert.InDelta(t, -0.25, a.Position().X, 1e-6)
	assert.InDelta(t, 1.75, b.Position().X, 1e-6)
}

// A static ground box keeps its resting state against spheres but not
// against boxes.
func TestGroundFlagAsymmetry(t *testing.T) {
	newGround := func() *Box {
		g := newTestBox(t, vec(0, 0, 0), vec(0, 0, 0), vec(1, 1, 1))
		g.Body().Data.IsStatic = true
		g.Body().Data.OnGround = true
		return g
	}

	t.Run("box on box", func(t *testing.T) {
		ground := newGround()
		box := newTestBox(t, vec(0, 1.5, 0), vec(0, -1, 0), vec(1, 1, 1))

		require.True(t, BoxToBox(ground, box))

		assert.False(t, ground.Body().Data.OnGround)
		assert.InDelta(t, 1, box.Velocity().Y, 1e-6)
		assert.InDelta(t, 2.0, box.Position().Y, 1e-6)
	})

	t.Run("sphere on box", func(t *testing.T) {
		ground := newGround()
		sphere := newTestSphere(t, vec(0, 1.5, 0), vec(0, -1, 0), 1)

		require.True(t, BoxToSphere(ground, sphere))

		assert.True(t, ground.Body().Data.OnGround)
		assert.InDelta(t, 1, sphere.Velocity().Y, 1e-6)
		assert.InDelta(t, 2.0, sphere.Position().Y, 1e-6)
	})

	t.Run("sphere on dynamic box", func(t *testing.T) {
		ground := newGround()
		ground.Body().Data.IsStatic = false
		sphere := newTestSphere(t, vec(0, 1.5, 0), vec(0, -1, 0), 1)

		require.True(t, SphereToBox(sphere, ground))

		assert.False(t, ground.Body().Data.OnGround)
	})
}

func TestGroundedMoverIsPushedAwayFromGround(t *testing.T) {
	// the grounded body comes second this time
	box := newTestBox(t, vec(0, 1.5, 0), vec(0, -1, 0), vec(1, 1, 1))
	ground := newTestBox(t, vec(0, 0, 0), vec(0, 0, 0), vec(1, 1, 1))
	ground.Body().Data.OnGround = true

	require.True(t, BoxToBox(box, ground))

	assert.InDelta(t, 2.0, box.Position().Y, 1e-6)
	assert.Equal(t, vec(0, 0, 0), ground.Position())
}

func TestCapabilityMismatch(t *testing.T) {
	s := newTestSphere(t, vec(0, 0, 0), vec(0, 0, 0), 1)
	b := newTestBox(t, vec(0, 0, 0), vec(0, 0, 0), vec(1, 1, 1))
	p := NewPlane(vec(0, 1, 0), 0, false)
	before := []BodyData{snapshot(s), snapshot(b)}

	assert.False(t, SphereToSphere(s, b))
	assert.False(t, BoxToBox(b, s))
	assert.False(t, SphereToPlane(b, p))
	assert.False(t, BoxToPlane(s, p))
	assert.False(t, BoxToSphere(s, b))
	assert.False(t, SphereToSphere(NewJoint(), s))

	assert.Equal(t, before, []BodyData{snapshot(s), snapshot(b)})
}

func TestPlaneToPlaneNeverCollides(t *testing.T) {
	a := NewPlane(vec(0, 1, 0), 0, false)
	b := NewPlane(vec(0, 1, 0), 0, false)
	assert.False(t, PlaneToPlane(a, b))
}

// farApart builds an object of each shape that touches nothing else built here.
func farApart(t *testing.T, shape ShapeType, slot int) Object {
	offset := float32(slot * 20)
	switch shape {
	case ShapePlane:
		return NewPlane(vec(0, 1, 0), -100, false)
	case ShapeSphere:
		return newTestSphere(t, vec(offset, 10, 0), vec(0, 0, 0), 1)
	default:
		return newTestBox(t, vec(offset, 10, 5), vec(0, 0, 0), vec(1, 1, 1))
	}
}

func TestDispatchCompleteness(t *testing.T) {
	shapes := []ShapeType{ShapePlane, ShapeSphere, ShapeBox}
	for _, sa := range shapes {
		for _, sb := range shapes {
			t.Run(fmt.Sprintf("%s-%s", sa, sb), func(t *testing.T) {
				fn, ok := Lookup(sa, sb)
				require.True(t, ok)
				require.NotNil(t, fn)

				a, b := farApart(t, sa, 0), farApart(t, sb, 1)
				beforeA, beforeB := snapshot(a), snapshot(b)

				assert.False(t, fn(a, b))
				assert.False(t, Overlaps(a, b))
				assert.Equal(t, beforeA, snapshot(a))
				assert.Equal(t, beforeB, snapshot(b))
			})
		}
	}
}

func TestLookupOutOfRange(t *testing.T) {
	for _, pair := range [][2]ShapeType{
		{ShapeJoint, ShapeSphere},
		{ShapeBox, ShapeJoint},
		{ShapeType(3), ShapeBox},
		{ShapePlane, ShapeType(42)},
	} {
		fn, ok := Lookup(pair[0], pair[1])
		assert.False(t, ok, "%v", pair)
		assert.Nil(t, fn)
	}

	assert.False(t, Collide(NewJoint(), newTestSphere(t, vec(0, 0, 0), vec(0, 0, 0), 1)))
	assert.False(t, Overlaps(NewJoint(), NewJoint()))
}

func TestOverlapsDoesNotMutate(t *testing.T) {
	a := newTestSphere(t, vec(0, 0, 0), vec(1, 0, 0), 1)
	b := newTestBox(t, vec(1.5, 0, 0), vec(0, 0, 0), vec(1, 1, 1))
	p := NewPlane(vec(0, 1, 0), 0, false)
	beforeA, beforeB := snapshot(a), snapshot(b)

	assert.True(t, Overlaps(a, b))
	assert.True(t, Overlaps(b, a))
	assert.True(t, Overlaps(p, a))
	assert.True(t, Overlaps(b, p))

	assert.Equal(t, beforeA, snapshot(a))
	assert.Equal(t, beforeB, snapshot(b))
}
