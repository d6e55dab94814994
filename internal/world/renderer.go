package world

import (
	"rigidsim/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws a World with plain raylib primitives. Models outside the
// camera frustum are skipped; planes are always drawn.
type Renderer struct {
	ShowBounds     bool
	HighlightColor rl.Color
	WireColor      rl.Color
	ArcColor       rl.Color

	// Culled is how many models the last Draw skipped.
	Culled int
}

func NewRenderer() *Renderer {
	return &Renderer{
		HighlightColor: rl.White,
		WireColor:      rl.DarkGray,
		ArcColor:       rl.Orange,
	}
}

// Draw renders w. It must be called between BeginMode3D and EndMode3D.
func (r *Renderer) Draw(w *World, camera rl.Camera3D) {
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	frustum := ExtractFrustum(camera, aspect)

	r.Culled = 0
	for _, m := range w.Grounds() {
		r.drawModel(w, m, &frustum)
	}
	for _, m := range w.Models() {
		r.drawModel(w, m, &frustum)
	}

	if r.ShowBounds && !w.Bounds.IsEmpty() {
		rl.DrawBoundingBox(w.Bounds.BoundingBox(), rl.Gold)
	}
}

func (r *Renderer) drawModel(w *World, m Model, frustum *Frustum) {
	if _, isPlane := m.(*PlaneModel); !isPlane && !frustum.ContainsAABB(m.Bounds()) {
		r.Culled++
		return
	}

	lit := false
	if n := w.NodeOf(m); n != nil {
		if flash := engine.GetComponent[*ContactFlash](n); flash != nil {
			lit = flash.Lit()
		}
	}

	switch o := m.(type) {
	case *SphereModel:
		color := o.Color
		if lit {
			color = r.HighlightColor
		}
		rl.DrawSphere(o.Position(), o.Radius(), color)
		rl.DrawSphereWires(o.Position(), o.Radius(), 8, 8, r.WireColor)
	case *BoxModel:
		color := o.Color
		if lit {
			color = r.HighlightColor
		}
		pos, half := o.Position(), o.Size()
		size := rl.Vector3Scale(half, 2)
		// Only z rotation is simulated
		rl.PushMatrix()
		rl.Translatef(pos.X, pos.Y, pos.Z)
		rl.Rotatef(o.Rotation().Z, 0, 0, 1)
		rl.DrawCubeV(rl.Vector3Zero(), size, color)
		rl.DrawCubeWiresV(rl.Vector3Zero(), size, r.WireColor)
		rl.PopMatrix()
	case *PlaneModel:
		rl.DrawPlane(o.Position(), rl.Vector2{X: PlaneExtent, Y: PlaneExtent}, o.Color)
	}

	if r.ShowBounds {
		rl.DrawBoundingBox(m.Bounds().BoundingBox(), rl.Green)
	}
}

// LaunchArc samples the ballistic path m follows from its start state,
// one point every dt for steps steps. Static bodies have no arc.
func LaunchArc(m Model, gravity rl.Vector3, steps int, dt float32) []rl.Vector3 {
	body := m.Body()
	if body == nil || body.Data.IsStatic || steps <= 0 {
		return nil
	}
	start, velocity := body.Data.StartPosition, body.Data.StartVelocity
	points := make([]rl.Vector3, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float32(i) * dt
		p := body.PredictPosition(t, gravity)
		// The prediction is planar; carry depth along linearly
		p.Z = start.Z + velocity.Z*t
		points = append(points, p)
	}
	return points
}

// DrawArc draws the launch arc of m as a polyline.
func (r *Renderer) DrawArc(m Model, gravity rl.Vector3) {
	points := LaunchArc(m, gravity, arcSteps, arcStep)
	for i := 1; i < len(points); i++ {
		rl.DrawLine3D(points[i-1], points[i], r.ArcColor)
	}
}

const (
	arcSteps = 60
	arcStep  = 0.1
)
