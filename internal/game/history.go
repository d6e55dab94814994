package game

import (
	"rigidsim/internal/physics"
	"rigidsim/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxHistory = 50

// bodyState is enough of a body to put it back where it was.
type bodyState struct {
	obj             physics.Object
	position        rl.Vector3
	velocity        rl.Vector3
	rotation        rl.Vector3
	angularVelocity rl.Vector3
	onGround        bool
}

type historyEntry struct {
	label  string
	bodies []bodyState
}

// history is an undo stack of body states, captured before the user
// disturbs the simulation.
type history struct {
	entries []historyEntry
}

func (h *history) push(label string, objs ...physics.Object) {
	entry := historyEntry{label: label}
	for _, obj := range objs {
		if obj == nil || obj.Body() == nil {
			continue
		}
		d := obj.Body().Data
		entry.bodies = append(entry.bodies, bodyState{
			obj:             obj,
			position:        obj.Position(),
			velocity:        d.Velocity,
			rotation:        d.Rotation,
			angularVelocity: d.AngularVelocity,
			onGround:        d.OnGround,
		})
	}
	if len(entry.bodies) == 0 {
		return
	}

	// Cap stack size
	if len(h.entries) >= maxHistory {
		h.entries = h.entries[1:]
	}
	h.entries = append(h.entries, entry)
}

// pushWorld records every body in w, grounds included.
func (h *history) pushWorld(label string, w *world.World) {
	objs := make([]physics.Object, 0, len(w.Models())+len(w.Grounds()))
	for _, m := range w.Models() {
		objs = append(objs, m)
	}
	for _, g := range w.Grounds() {
		objs = append(objs, g)
	}
	h.push(label, objs...)
}

// undo restores the last entry. Bodies that have left w are skipped.
func (h *history) undo(w *world.World) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	entry := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]

	for _, s := range entry.bodies {
		if w.NodeOf(s.obj) == nil {
			continue
		}
		s.obj.SetPosition(s.position)
		body := s.obj.Body()
		body.Data.Velocity = s.velocity
		body.Data.Rotation = s.rotation
		body.Data.AngularVelocity = s.angularVelocity
		body.Data.OnGround = s.onGround
	}
	return entry.label, true
}

func (h *history) clear() { h.entries = nil }

func (h *history) len() int { return len(h.entries) }
