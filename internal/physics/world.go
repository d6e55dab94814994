package physics

import (
	"log"

	"rigidsim/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultTimeStep is the fixed step the World gates integration on.
const DefaultTimeStep = float32(1.0 / 60.0)

// Properties toggles the stages of a step.
type Properties struct {
	Gravity           bool // apply World.Gravity during integration
	Collisions        bool // run the collision pass
	CollisionResponse bool // resolve contacts; when false contacts are only detected
}

// Contact is an ordered pair of touching objects. A is the earlier object
// in the pass, or the object when B is a ground.
type Contact struct {
	A, B Object
}

// World owns every simulated object and advances them at a fixed rate.
// It is not safe for concurrent use.
type World struct {
	Gravity    rl.Vector3
	TimeStep   float32
	Properties Properties

	OnCollisionEnter engine.EventWithArg[Contact]
	OnCollisionExit  engine.EventWithArg[Contact]

	objects []Object
	grounds []Object

	accumulator float32
	ticks       uint64

	// Collision tracking for callbacks
	active     []Contact
	activeSet  map[Contact]bool
	current    []Contact
	currentSet map[Contact]bool

	skipped map[[2]ShapeType]bool
}

func NewWorld(gravity rl.Vector3, timeStep float32) *World {
	if !(timeStep > 0) {
		timeStep = DefaultTimeStep
	}
	return &World{
		Gravity:  gravity,
		TimeStep: timeStep,
		Properties: Properties{
			Gravity:           true,
			Collisions:        true,
			CollisionResponse: true,
		},
		activeSet:  make(map[Contact]bool),
		currentSet: make(map[Contact]bool),
		skipped:    make(map[[2]ShapeType]bool),
	}
}

// AddObject appends obj to the simulation. Collision order follows insertion order.
func (w *World) AddObject(obj Object) {
	w.objects = append(w.objects, obj)
}

// RemoveObject removes the first occurrence of obj and reports whether it was found.
func (w *World) RemoveObject(obj Object) bool {
	for i, o := range w.objects {
		if o == obj {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			return true
		}
	}
	return false
}

// AddGround registers a static surface. Grounds are never integrated; every
// object is tested against every ground after the pairwise pass. The body is
// marked static and resting.
func (w *World) AddGround(obj Object) {
	if body := obj.Body(); body != nil {
		body.Data.IsStatic = true
		body.Data.OnGround = true
	}
	w.grounds = append(w.grounds, obj)
	log.Printf("Physics: ground %d registered (%s)", len(w.grounds)-1, obj.Shape())
}

func (w *World) Objects() []Object { return w.objects }
func (w *World) Grounds() []Object { return w.grounds }
func (w *World) NumObjects() int { return len(w.objects) }

// Ticks is the number of steps run so far.
func (w *World) Ticks() uint64 { return w.ticks }

// Contacts returns the pairs that touched during the last step.
func (w *World) Contacts() []Contact { return w.active }

// Update accumulates deltaTime and runs at most one step once a full
// TimeStep has built up. The step integrates with deltaTime itself, not
// TimeStep. It reports whether a step ran.
func (w *World) Update(deltaTime float32) bool {
	w.accumulator += deltaTime
	if w.accumulator < w.TimeStep {
		return false
	}
	w.accumulator -= w.TimeStep
	w.Step(deltaTime)
	return true
}

// Step integrates every object by deltaTime, then runs the collision pass
// and fires contact events.
func (w *World) Step(deltaTime float32) {
	gravity := rl.Vector3Zero()
	if w.Properties.Gravity {
		gravity = w.Gravity
	}
	for _, obj := range w.objects {
		if obj != nil {
			obj.UpdatePhysics(gravity, deltaTime)
		}
	}

	w.resetCurrent()
	if w.Properties.Collisions {
		w.checkCollisions()
	}
	w.dispatchContacts()
	w.ticks++
}

// CheckCollisions runs one collision pass without integrating and returns
// the number of contacts found. Contact events are not fired.
func (w *World) CheckCollisions() int {
	w.resetCurrent()
	w.checkCollisions()
	return len(w.current)
}

func (w *World) checkCollisions() {
	// Pairs must be visited in this order: a resolver moves bodies that
	// later pairs then see.
	for i := 0; i < len(w.objects)-1; i++ {
		for j := i + 1; j < len(w.objects); j++ {
			w.collide(w.objects[i], w.objects[j])
		}
	}
	for _, obj := range w.objects {
		for _, ground := range w.grounds {
			w.collide(obj, ground)
		}
	}
}

func (w *World) collide(a, b Object) {
	if a == nil || b == nil {
		return
	}
	sa, sb := a.Shape(), b.Shape()
	// Joints never collide
	if sa < 0 || sb < 0 {
		return
	}
	if !sa.Valid() || !sb.Valid() {
		key := [2]ShapeType{sa, sb}
		if !w.skipped[key] {
			w.skipped[key] = true
			log.Printf("Physics: no collision function for %s/%s, skipping", sa, sb)
		}
		return
	}

	var hit bool
	if w.Properties.CollisionResponse {
		hit = Collide(a, b)
	} else {
		hit = Overlaps(a, b)
	}
	if hit {
		w.recordContact(Contact{A: a, B: b})
	}
}

func (w *World) resetCurrent() {
	w.current = nil
	w.currentSet = make(map[Contact]bool)
}

// recordContact marks a pair as touching this step
func (w *World) recordContact(c Contact) {
	if w.currentSet[c] {
		return
	}
	w.currentSet[c] = true
	w.current = append(w.current, c)
}

// dispatchContacts fires enter for new pairs and exit for pairs that separated.
func (w *World) dispatchContacts() {
	for _, c := range w.current {
		if !w.activeSet[c] {
			w.OnCollisionEnter.Invoke(c)
		}
	}
	for _, c := range w.active {
		if !w.currentSet[c] {
			w.OnCollisionExit.Invoke(c)
		}
	}

	// Swap buffers
	w.active, w.activeSet = w.current, w.currentSet
	w.current, w.currentSet = nil, make(map[Contact]bool)
}

// Reset puts every object and ground back at its start position and velocity.
func (w *World) Reset() {
	for _, obj := range w.objects {
		obj.ResetPosition()
		obj.ResetVelocity()
	}
	for _, ground := range w.grounds {
		ground.ResetPosition()
		ground.ResetVelocity()
	}
	log.Printf("Physics: reset %d objects", len(w.objects))
}

// Clear drops every object and ground and switches gravity and collisions
// off. Open contacts are dropped without exit events.
func (w *World) Clear() {
	w.objects = nil
	w.grounds = nil
	w.Properties.Gravity = false
	w.Properties.Collisions = false
	w.active, w.activeSet = nil, make(map[Contact]bool)
	w.resetCurrent()
	log.Printf("Physics: scene cleared")
}
