package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// AABB is an axis-aligned bounding box. Callers own it; the physics core
// never updates one on its own.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// EmptyAABB returns an inverted box that any ExpandToInclude call will replace.
func EmptyAABB() AABB {
	var b AABB
	b.Reset()
	return b
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3Scale(size, 0.5)
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// Reset inverts the box so it contains nothing.
func (a *AABB) Reset() {
	a.Min = splat(math32.Inf(1))
	a.Max = splat(math32.Inf(-1))
}

// IsEmpty reports whether the box contains no point.
func (a AABB) IsEmpty() bool {
	return a.Min.X > a.Max.X || a.Min.Y > a.Max.Y || a.Min.Z > a.Max.Z
}

// Move translates both corners by delta.
func (a *AABB) Move(delta rl.Vector3) {
	a.Min = rl.Vector3Add(a.Min, delta)
	a.Max = rl.Vector3Add(a.Max, delta)
}

func (a *AABB) ExpandToIncludePoint(p rl.Vector3) {
	a.Min = rl.Vector3{X: math32.Min(a.Min.X, p.X), Y: math32.Min(a.Min.Y, p.Y), Z: math32.Min(a.Min.Z, p.Z)}
	a.Max = rl.Vector3{X: math32.Max(a.Max.X, p.X), Y: math32.Max(a.Max.Y, p.Y), Z: math32.Max(a.Max.Z, p.Z)}
}

func (a *AABB) ExpandToInclude(b AABB) {
	if b.IsEmpty() {
		return
	}
	a.ExpandToIncludePoint(b.Min)
	a.ExpandToIncludePoint(b.Max)
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

// Dimensions is the full size along each axis.
func (a AABB) Dimensions() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

// Radius is half the length of the diagonal.
func (a AABB) Radius() float32 {
	return rl.Vector3Length(a.Dimensions()) * 0.5
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// BoundingBox converts to raylib's type for drawing.
func (a AABB) BoundingBox() rl.BoundingBox {
	return rl.BoundingBox{Min: a.Min, Max: a.Max}
}
