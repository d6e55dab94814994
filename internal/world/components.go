package world

import (
	"rigidsim/internal/engine"

	"github.com/chewxy/math32"
)

// FlashDuration is how long, in seconds, a node stays lit after a contact.
const FlashDuration = 0.25

// PhysicsBody links a node to its model and mirrors the model's pose into
// the node's transform every frame.
type PhysicsBody struct {
	engine.BaseComponent
	Model Model
}

func (p *PhysicsBody) Start() { p.sync() }

func (p *PhysicsBody) Update(deltaTime float32) { p.sync() }

func (p *PhysicsBody) sync() {
	n := p.GetNode()
	if n == nil || p.Model == nil {
		return
	}
	n.Transform.Position = p.Model.Position()
	n.Transform.Rotation = p.Model.Rotation()
}

// ContactFlash counts the contacts its node takes part in.
type ContactFlash struct {
	engine.BaseComponent
	Hits     int // enter events seen
	Touching int // contacts currently open

	remaining float32
}

func (f *ContactFlash) OnCollisionEnter(other *engine.Node) {
	f.Hits++
	f.Touching++
	f.remaining = FlashDuration
}

func (f *ContactFlash) OnCollisionExit(other *engine.Node) {
	if f.Touching > 0 {
		f.Touching--
	}
}

func (f *ContactFlash) Update(deltaTime float32) {
	f.remaining = math32.Max(f.remaining-deltaTime, 0)
}

// Lit reports whether a contact started within the last FlashDuration.
func (f *ContactFlash) Lit() bool { return f.remaining > 0 }
