package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Object   Object
	Ground   bool // Object came from the ground set
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast checks for intersection with all objects and grounds and returns the closest hit
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	if direction == (rl.Vector3{}) {
		return RaycastHit{}, false
	}

	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	test := func(obj Object, ground bool) {
		hitInfo, ok := RaycastObject(origin, direction, obj, maxDistance)
		if ok && hitInfo.Distance < closestHit.Distance {
			closestHit = hitInfo
			closestHit.Ground = ground
			hit = true
		}
	}
	for _, obj := range w.objects {
		test(obj, false)
	}
	for _, ground := range w.grounds {
		test(ground, true)
	}
	return closestHit, hit
}

// RaycastObject intersects a ray with a single object. direction must be normalized.
func RaycastObject(origin, direction rl.Vector3, obj Object, maxDistance float32) (RaycastHit, bool) {
	var (
		hitInfo RaycastHit
		ok      bool
	)
	switch o := obj.(type) {
	case SphereShape:
		hitInfo, ok = raycastSphere(origin, direction, o.Position(), o.Radius(), maxDistance)
	case BoxShape:
		hitInfo, ok = raycastBox(origin, direction, o.Position(), o.Size(), maxDistance)
	case PlaneShape:
		hitInfo, ok = raycastPlane(origin, direction, o.Normal(), o.Distance(), maxDistance)
	}
	hitInfo.Object = obj
	return hitInfo, ok
}

func raycastBox(origin, direction, center, halfSize rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	halfSize = absVec(halfSize)
	min := rl.Vector3Subtract(center, halfSize)
	max := rl.Vector3Add(center, halfSize)

	tmin := -math32.Inf(1)
	tmax := math32.Inf(1)

	// one slab per axis
	for axis := 0; axis < 3; axis++ {
		o := component(origin, axis)
		d := component(direction, axis)
		lo, hi := component(min, axis), component(max, axis)
		if d == 0 {
			if o < lo || o > hi {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Calculate normal based on which face was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	switch {
	case math32.Abs(point.X-min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case math32.Abs(point.X-max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case math32.Abs(point.Y-min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case math32.Abs(point.Y-max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case math32.Abs(point.Z-min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	default:
		normal = rl.Vector3{Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (RaycastHit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	sq := math32.Sqrt(discriminant)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))
	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func raycastPlane(origin, direction, normal rl.Vector3, distance, maxDistance float32) (RaycastHit, bool) {
	denom := rl.Vector3DotProduct(direction, normal)
	if math32.Abs(denom) < 1e-6 {
		return RaycastHit{}, false
	}
	t := (distance - rl.Vector3DotProduct(origin, normal)) / denom
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	// face the ray
	if denom > 0 {
		normal = rl.Vector3Scale(normal, -1)
	}
	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
