package game

import (
	"rigidsim/internal/engine"
	"rigidsim/internal/physics"
	"rigidsim/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxPickDistance     = 500
	DefaultPushStrength = 20
)

// Pick casts a ray into w and returns the node that was hit.
func Pick(w *world.World, origin, direction rl.Vector3) (*engine.Node, physics.RaycastHit, bool) {
	hit, ok := w.Physics.Raycast(origin, direction, maxPickDistance)
	if !ok {
		return nil, hit, false
	}
	return w.NodeOf(hit.Object), hit, true
}

// Push changes obj's velocity along direction by strength/mass. Static
// bodies and bodies without a rigid body don't move.
func Push(obj physics.Object, direction rl.Vector3, strength float32) bool {
	body := obj.Body()
	if body == nil || body.Data.IsStatic {
		return false
	}
	dir := rl.Vector3Normalize(direction)
	if dir == (rl.Vector3{}) {
		return false
	}
	body.Data.OnGround = false
	body.ApplyForce(rl.Vector3Scale(dir, strength))
	return true
}

// pickAndPush selects whatever is under the mouse and pushes it away from
// the camera.
func (g *Game) pickAndPush(camera rl.Camera3D) {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), camera)
	node, hit, ok := Pick(g.World, ray.Position, ray.Direction)
	if !ok {
		g.Selected.Clear()
		return
	}
	g.Selected.Set(node)
	if hit.Ground {
		return
	}

	g.history.push("push", hit.Object)
	if Push(hit.Object, ray.Direction, g.PushStrength) && node != nil {
		g.setMsg("Pushed %s", node.Name)
	}
}
