// Package stream publishes simulation state to websocket clients.
package stream

import (
	"time"

	"rigidsim/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ObjectState is one body in a Snapshot. Index is stable for the lifetime
// of the world's object list; grounds follow the objects.
type ObjectState struct {
	Index    int        `json:"index"`
	Shape    string     `json:"shape"`
	Position [3]float32 `json:"position"`
	Velocity [3]float32 `json:"velocity"`
	Rotation [3]float32 `json:"rotation"`
	Ground   bool       `json:"ground,omitempty"`

	OnGround  bool `json:"onGround,omitempty"`
	Static    bool `json:"static,omitempty"`
	Kinematic bool `json:"kinematic,omitempty"`

	Radius float32     `json:"radius,omitempty"`
	Size   *[3]float32 `json:"size,omitempty"` // box half-extents
	Normal *[3]float32 `json:"normal,omitempty"`
}

// Snapshot is the state of a world after a step.
type Snapshot struct {
	Tick     uint64        `json:"tick"`
	Elapsed  float64       `json:"elapsed"` // seconds
	Objects  []ObjectState `json:"objects"`
	Contacts [][2]int      `json:"contacts,omitempty"`
}

// Capture reads the current state of w. Joints and nil entries are skipped
// but still take an index.
func Capture(w *physics.World, elapsed time.Duration) Snapshot {
	s := Snapshot{
		Tick:    w.Ticks(),
		Elapsed: elapsed.Seconds(),
	}

	index := make(map[physics.Object]int)
	next := 0
	add := func(obj physics.Object, ground bool) {
		i := next
		next++
		if obj == nil {
			return
		}
		index[obj] = i
		if obj.Shape() == physics.ShapeJoint {
			return
		}
		s.Objects = append(s.Objects, state(i, obj, ground))
	}
	for _, obj := range w.Objects() {
		add(obj, false)
	}
	for _, obj := range w.Grounds() {
		add(obj, true)
	}

	for _, c := range w.Contacts() {
		a, okA := index[c.A]
		b, okB := index[c.B]
		if okA && okB {
			s.Contacts = append(s.Contacts, [2]int{a, b})
		}
	}
	return s
}

func state(i int, obj physics.Object, ground bool) ObjectState {
	st := ObjectState{
		Index:    i,
		Shape:    obj.Shape().String(),
		Position: arr3(obj.Position()),
		Velocity: arr3(obj.Velocity()),
		Rotation: arr3(obj.Rotation()),
		Ground:   ground,
	}
	if body := obj.Body(); body != nil {
		st.OnGround = body.Data.OnGround
		st.Static = body.Data.IsStatic
		st.Kinematic = body.Data.IsKinematic
	}
	switch o := obj.(type) {
	case physics.SphereShape:
		st.Radius = o.Radius()
	case physics.BoxShape:
		size := arr3(o.Size())
		st.Size = &size
	case physics.PlaneShape:
		normal := arr3(o.Normal())
		st.Normal = &normal
	}
	return st
}

func arr3(v rl.Vector3) [3]float32 { return [3]float32{v.X, v.Y, v.Z} }
