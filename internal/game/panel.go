package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelWidth  = 240
	panelMargin = 10
	rowHeight   = 24

	minTimeStep = float32(1.0 / 240.0)
	maxTimeStep = float32(1.0 / 15.0)
)

var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 235)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(200, 200, 208, 255)
	colorTextHi    = rl.NewColor(255, 255, 255, 255)
	colorTextMuted = rl.NewColor(119, 119, 119, 255)
)

func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextHi))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextHi))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// panelAction is a button press from the physics panel, handled after
// drawing so the world isn't rebuilt mid-frame.
type panelAction int

const (
	actionNone panelAction = iota
	actionReset
	actionClear
	actionReload
	actionSave
	actionUndo
)

func panelBounds() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(rl.GetScreenWidth() - panelWidth - panelMargin),
		Y:      panelMargin,
		Width:  panelWidth,
		Height: 12*rowHeight + 2*panelMargin,
	}
}

// overPanel reports whether the mouse is on the panel, so clicks there
// don't pick through it.
func overPanel() bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), panelBounds())
}

// drawPanel draws the physics controls and applies toggle changes directly.
func (g *Game) drawPanel() panelAction {
	b := panelBounds()
	rl.DrawRectangleRec(b, colorBgPanel)
	rl.DrawRectangleLinesEx(b, 1, rl.NewColor(50, 50, 65, 255))

	x := b.X + panelMargin
	y := b.Y + panelMargin
	w := b.Width - 2*panelMargin
	row := func() rl.Rectangle {
		r := rl.Rectangle{X: x, Y: y, Width: w, Height: rowHeight - 4}
		y += rowHeight
		return r
	}
	check := func(label string, v bool) bool {
		r := row()
		r.Width, r.Height = 16, 16
		return gui.CheckBox(r, label, v)
	}

	rl.DrawText("Physics", int32(x), int32(y), 18, colorTextHi)
	y += rowHeight

	props := &g.World.Physics.Properties
	props.Gravity = check("Gravity", props.Gravity)
	props.Collisions = check("Collisions", props.Collisions)
	props.CollisionResponse = check("Collision response", props.CollisionResponse)
	g.Renderer.ShowBounds = check("Bounding boxes", g.Renderer.ShowBounds)

	rl.DrawText("Time step", int32(x), int32(y), 14, colorTextMuted)
	y += rowHeight - 8
	step := row()
	step.X += 30
	step.Width -= 90
	g.World.Physics.TimeStep = gui.Slider(step, "1/240", fmt.Sprintf("1/%.0f", 1/g.World.Physics.TimeStep),
		g.World.Physics.TimeStep, minTimeStep, maxTimeStep)

	action := actionNone
	half := (w - panelMargin) / 2
	buttons := func(left, right string, onLeft, onRight panelAction) {
		r := row()
		if gui.Button(rl.Rectangle{X: r.X, Y: r.Y, Width: half, Height: r.Height}, left) {
			action = onLeft
		}
		if gui.Button(rl.Rectangle{X: r.X + half + panelMargin, Y: r.Y, Width: half, Height: r.Height}, right) {
			action = onRight
		}
	}
	buttons("Reset (R)", "Clear (C)", actionReset, actionClear)
	buttons("Reload (F5)", "Save", actionReload, actionSave)
	if gui.Button(row(), fmt.Sprintf("Undo (%d)", g.history.len())) {
		action = actionUndo
	}

	rl.DrawText(fmt.Sprintf("Objects: %d  Grounds: %d", len(g.World.Models()), len(g.World.Grounds())), int32(x), int32(y), 14, colorText)
	rl.DrawText(fmt.Sprintf("Tick: %d  Contacts: %d", g.World.Physics.Ticks(), len(g.World.Physics.Contacts())), int32(x), int32(y)+rowHeight-6, 14, colorText)
	return action
}
