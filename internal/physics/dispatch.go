package physics

// collisionFuncs is indexed by a.Shape()*ShapeCount + b.Shape().
var collisionFuncs = [ShapeCount * ShapeCount]CollisionFunc{
	PlaneToPlane, PlaneToSphere, PlaneToBox,
	SphereToPlane, SphereToSphere, SphereToBox,
	BoxToPlane, BoxToSphere, BoxToBox,
}

// overlapFuncs mirrors collisionFuncs but never mutates either object.
var overlapFuncs = [ShapeCount * ShapeCount]CollisionFunc{
	func(a, b Object) bool { return false },
	func(a, b Object) bool { return overlapSpherePlane(b, a) },
	func(a, b Object) bool { return overlapBoxPlane(b, a) },
	overlapSpherePlane,
	overlapSphereSphere,
	func(a, b Object) bool { return overlapBoxObject(b, a) },
	overlapBoxPlane,
	overlapBoxObject,
	overlapBoxObject,
}

func pairIndex(a, b ShapeType) (int, bool) {
	if !a.Valid() || !b.Valid() {
		return 0, false
	}
	return int(a)*ShapeCount + int(b), true
}

// Lookup returns the resolver for the ordered shape pair (a, b).
// Joints and any other tag outside the table report false.
func Lookup(a, b ShapeType) (CollisionFunc, bool) {
	i, ok := pairIndex(a, b)
	if !ok {
		return nil, false
	}
	return collisionFuncs[i], true
}

// Collide dispatches a and b to their resolver. Pairs without one never collide.
func Collide(a, b Object) bool {
	fn, ok := Lookup(a.Shape(), b.Shape())
	if !ok {
		return false
	}
	return fn(a, b)
}

// Overlaps reports whether a and b are touching without resolving the contact.
func Overlaps(a, b Object) bool {
	i, ok := pairIndex(a.Shape(), b.Shape())
	if !ok {
		return false
	}
	return overlapFuncs[i](a, b)
}

func overlapSphereSphere(a, b Object) bool {
	sa, okA := a.(SphereShape)
	sb, okB := b.(SphereShape)
	if !okA || !okB {
		return false
	}
	_, _, hit := spheresOverlap(sa, sb)
	return hit
}

func overlapSpherePlane(a, b Object) bool {
	sphere, okA := a.(SphereShape)
	plane, okB := b.(PlaneShape)
	if !okA || !okB {
		return false
	}
	_, _, hit := planeOverlap(sphere, plane, sphere.Radius(), false)
	return hit
}

func overlapBoxPlane(a, b Object) bool {
	box, okA := a.(BoxShape)
	plane, okB := b.(PlaneShape)
	if !okA || !okB {
		return false
	}
	_, _, hit := planeOverlap(box, plane, projectedExtent(box.Size(), plane.Normal()), true)
	return hit
}

func overlapBoxObject(a, b Object) bool {
	box, ok := a.(BoxShape)
	if !ok {
		return false
	}
	return boxOverlaps(box, b)
}
