package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// divide scales v by 1/s. s is never zero: masses are validated on entry.
func divide(v rl.Vector3, s float32) rl.Vector3 {
	return rl.Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// mul is the component-wise product.
func mul(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

func absVec(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: math32.Abs(v.X), Y: math32.Abs(v.Y), Z: math32.Abs(v.Z)}
}

func splat(s float32) rl.Vector3 {
	return rl.Vector3{X: s, Y: s, Z: s}
}

// reducedMass is 1/(1/ma + 1/mb).
func reducedMass(a, b *RigidBody) float32 {
	return 1 / (1/a.Data.Mass + 1/b.Data.Mass)
}

// zLever returns the in-plane perpendicular of v, normalized. Zero stays zero.
func zLever(v rl.Vector3) rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3{X: v.Y, Y: -v.X})
}

func component(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
