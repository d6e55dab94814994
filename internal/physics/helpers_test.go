package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

func vec(x, y, z float32) rl.Vector3 { return rl.Vector3{X: x, Y: y, Z: z} }

func newTestSphere(t *testing.T, pos, vel rl.Vector3, radius float32) *Sphere {
	t.Helper()
	s, err := NewSphere(pos, vel, 1, radius, rl.Red, false)
	require.NoError(t, err)
	return s
}

func newTestBox(t *testing.T, pos, vel, half rl.Vector3) *Box {
	t.Helper()
	b, err := NewBox(pos, vel, 1, half, rl.Blue, false)
	require.NoError(t, err)
	return b
}

// snapshot copies the body state so tests can compare before and after.
func snapshot(o Object) BodyData {
	if o.Body() == nil {
		return BodyData{}
	}
	return o.Body().Data
}
