package game

import (
	"fmt"
	"log"
	"time"

	"rigidsim/internal/camera"
	"rigidsim/internal/config"
	"rigidsim/internal/engine"
	"rigidsim/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// defaultSavePath is where Save writes when no scene file is configured.
const defaultSavePath = "scene.json"

type Game struct {
	Config       config.Config
	World        *world.World
	Camera       *camera.FlyCamera
	Renderer     *world.Renderer
	Selected     engine.NodeRef
	PushStrength float32
	DebugMode    bool

	watcher *world.Watcher
	history history

	msg   string
	msgAt time.Time

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg config.Config) *Game {
	w := world.New(cfg.Physics.GravityVector(), cfg.Physics.TimeStep)
	cfg.Physics.Apply(w.Physics)

	cam := camera.New(rl.Vector3{X: 9, Y: 70, Z: 70})
	cam.LookAt(rl.Vector3{X: 9, Y: 30, Z: 9})

	return &Game{
		Config:       cfg,
		World:        w,
		Camera:       cam,
		Renderer:     world.NewRenderer(),
		PushStrength: DefaultPushStrength,
	}
}

// Load fills the world from the configured scene file. The built-in scene
// is used when none is set or it can't be loaded.
func (g *Game) Load() {
	path := g.Config.Scene.Path
	if path != "" && g.Config.Scene.Watch && g.watcher == nil {
		w, err := world.NewWatcher(path)
		if err != nil {
			log.Printf("Scene: %v", err)
		} else {
			g.watcher = w
		}
	}

	if path != "" {
		err := g.World.LoadScene(path)
		if err == nil {
			g.afterLoad()
			return
		}
		log.Printf("Scene: %v, using built-in scene", err)
	}
	if err := g.World.Apply(world.DemoScene()); err != nil {
		log.Printf("Scene: built-in scene: %v", err)
	}
	g.afterLoad()
}

func (g *Game) afterLoad() {
	g.history.clear()
	g.Selected.Clear()
}

// Reload reads the scene file again. On error the current world is kept.
func (g *Game) Reload() {
	path := g.Config.Scene.Path
	if path == "" {
		g.setMsg("No scene file to reload")
		return
	}
	if err := g.World.LoadScene(path); err != nil {
		log.Printf("Scene: reload failed: %v", err)
		g.setMsg("Reload failed: %v", err)
		return
	}
	g.afterLoad()
	g.setMsg("Reloaded %s", path)
}

func (g *Game) Save() {
	path := g.Config.Scene.Path
	if path == "" {
		path = defaultSavePath
	}
	if err := g.World.SaveScene(path); err != nil {
		log.Printf("Scene: save failed: %v", err)
		g.setMsg("Save failed: %v", err)
		return
	}
	log.Printf("Scene: saved %s", path)
	g.setMsg("Saved %s", path)
}

func (g *Game) Reset() {
	g.history.pushWorld("reset", g.World)
	g.World.Reset()
	g.setMsg("Reset")
}

func (g *Game) Clear() {
	g.World.Clear()
	g.afterLoad()
	g.setMsg("Cleared")
}

func (g *Game) Undo() {
	if label, ok := g.history.undo(g.World); ok {
		g.setMsg("Undid %s", label)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		g.watcher.Close()
		g.watcher = nil
	}
}

func (g *Game) Run() {
	win := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(win.TargetFPS)

	initRayguiStyle()
	g.Load()
	defer g.Close()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	g.Camera.Update(deltaTime)
	g.handleKeys()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !overPanel() {
		g.pickAndPush(g.Camera.GetRaylibCamera())
	}

	if g.watcher != nil && g.watcher.Poll() {
		g.Reload()
	}

	g.World.Update(deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) handleKeys() {
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper)
	switch {
	case ctrl && rl.IsKeyPressed(rl.KeyZ):
		g.Undo()
	case ctrl && rl.IsKeyPressed(rl.KeyS):
		g.Save()
	case rl.IsKeyPressed(rl.KeyR):
		g.Reset()
	case rl.IsKeyPressed(rl.KeyC):
		g.Clear()
	case rl.IsKeyPressed(rl.KeyF5):
		g.Reload()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.Renderer.ShowBounds = !g.Renderer.ShowBounds
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		g.DebugMode = !g.DebugMode
	}
}

func (g *Game) Draw() {
	camera := g.Camera.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.Renderer.Draw(g.World, camera)
	if m := world.ModelOf(g.Selected.Get(g.World.Scene)); m != nil {
		rl.DrawBoundingBox(m.Bounds().BoundingBox(), rl.Yellow)
		if g.World.Physics.Properties.Gravity {
			g.Renderer.DrawArc(m, g.World.Physics.Gravity)
		}
	}
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	action := g.drawPanel()
	g.DrawUI()
	rl.EndDrawing()

	switch action {
	case actionReset:
		g.Reset()
	case actionClear:
		g.Clear()
	case actionReload:
		g.Reload()
	case actionSave:
		g.Save()
	case actionUndo:
		g.Undo()
	}
}

func (g *Game) DrawUI() {
	rl.DrawText("Right mouse + WASD/QE to fly, Shift for speed", 10, 10, 20, rl.LightGray)
	rl.DrawText("Click to push  R reset  C clear  F5 reload  F1 bounds  Ctrl+Z undo", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)

	y := int32(85)
	if n := g.Selected.Get(g.World.Scene); n != nil {
		rl.DrawText(n.Name, 10, y, 18, rl.Yellow)
		y += 22
		if m := world.ModelOf(n); m != nil {
			rl.DrawText(m.Info(), 10, y, 16, rl.Yellow)
			y += 40
		}
	}

	if g.msg != "" && time.Since(g.msgAt) < 3*time.Second {
		rl.DrawText(g.msg, 10, int32(rl.GetScreenHeight())-30, 18, rl.Lime)
	}

	if g.DebugMode {
		rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), 10, y, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), 10, y+20, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Culled: %d", g.Renderer.Culled), 10, y+40, 16, rl.Green)
	}
}

func (g *Game) setMsg(format string, args ...any) {
	g.msg = fmt.Sprintf(format, args...)
	g.msgAt = time.Now()
}
