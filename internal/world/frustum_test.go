package world

import (
	"testing"

	"rigidsim/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

// The identity view-projection clips to the cube [-1, 1] on every axis.
func TestFrustumFromIdentity(t *testing.T) {
	f := frustumFromMatrix(rl.MatrixIdentity())

	assert.True(t, f.ContainsPoint(vec(0, 0, 0)))
	assert.True(t, f.ContainsPoint(vec(0.9, -0.9, 0.9)))
	assert.False(t, f.ContainsPoint(vec(2, 0, 0)))
	assert.False(t, f.ContainsPoint(vec(0, 0, -1.5)))

	assert.True(t, f.ContainsSphere(vec(1.5, 0, 0), 0.6), "straddles the right plane")
	assert.False(t, f.ContainsSphere(vec(1.5, 0, 0), 0.4))

	assert.True(t, f.ContainsAABB(physics.NewAABBFromCenter(vec(0, 1.5, 0), vec(2, 2, 2))))
	assert.False(t, f.ContainsAABB(physics.NewAABBFromCenter(vec(0, 5, 0), vec(1, 1, 1))))
	assert.False(t, f.ContainsAABB(physics.EmptyAABB()))
}
