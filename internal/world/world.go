package world

import (
	"fmt"
	"log"
	"strings"

	"rigidsim/internal/engine"
	"rigidsim/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Layout defaults follow the classic demo: a 10x10 slab of 2-unit cubes at y=50.
const (
	DefaultGridRows   = 10
	DefaultGridCols   = 10
	DefaultCubeSize   = 2.0
	DefaultGridHeight = 50.0
)

// World ties the physics simulation to the scene graph. Every model gets a
// node carrying a PhysicsBody and a ContactFlash; physics contacts are routed
// to the nodes' collision handlers.
type World struct {
	Scene   *engine.Scene
	Physics *physics.World

	// Bounds covers the last generated cube layout. Empty when there is none.
	Bounds physics.AABB

	OnLoaded engine.Event

	models  []Model
	grounds []Model
	nodes   map[physics.Object]*engine.Node
}

func New(gravity rl.Vector3, timeStep float32) *World {
	w := &World{
		Scene:   engine.NewScene("Main"),
		Physics: physics.NewWorld(gravity, timeStep),
		Bounds:  physics.EmptyAABB(),
		nodes:   make(map[physics.Object]*engine.Node),
	}
	w.Physics.OnCollisionEnter.AddListener(func(c physics.Contact) { w.routeContact(c, true) })
	w.Physics.OnCollisionExit.AddListener(func(c physics.Contact) { w.routeContact(c, false) })
	return w
}

// Add puts m into the simulation under a new node.
func (w *World) Add(name string, tags []string, m Model) *engine.Node {
	n := w.newNode(name, tags, m)
	w.models = append(w.models, m)
	w.Physics.AddObject(m)
	return n
}

// AddGround registers m as a static ground surface.
func (w *World) AddGround(name string, tags []string, m Model) *engine.Node {
	n := w.newNode(name, tags, m)
	w.grounds = append(w.grounds, m)
	w.Physics.AddGround(m)
	return n
}

func (w *World) newNode(name string, tags []string, m Model) *engine.Node {
	n := engine.NewNode(name)
	n.Tags = tags
	n.AddComponent(&PhysicsBody{Model: m})
	n.AddComponent(&ContactFlash{})
	w.Scene.AddNode(n)
	w.nodes[m] = n
	n.Start()
	return n
}

// Remove takes a non-ground model out of the simulation and the scene.
func (w *World) Remove(m Model) bool {
	if !w.Physics.RemoveObject(m) {
		return false
	}
	for i, o := range w.models {
		if o == m {
			w.models = append(w.models[:i], w.models[i+1:]...)
			break
		}
	}
	if n := w.nodes[m]; n != nil {
		w.Scene.RemoveNode(n)
		delete(w.nodes, m)
	}
	return true
}

func (w *World) Models() []Model  { return w.models }
func (w *World) Grounds() []Model { return w.grounds }

// NodeOf returns the node that owns obj, or nil.
func (w *World) NodeOf(obj physics.Object) *engine.Node {
	return w.nodes[obj]
}

// ModelOf returns the model behind a node, or nil.
func ModelOf(n *engine.Node) Model {
	if n == nil {
		return nil
	}
	if body := engine.GetComponent[*PhysicsBody](n); body != nil {
		return body.Model
	}
	return nil
}

// Update advances the physics by deltaTime and then ticks the scene graph.
// It reports whether a physics step ran.
func (w *World) Update(deltaTime float32) bool {
	stepped := w.Physics.Update(deltaTime)
	w.Scene.Update(deltaTime)
	return stepped
}

func (w *World) routeContact(c physics.Contact, enter bool) {
	a, b := w.nodes[c.A], w.nodes[c.B]
	if a == nil || b == nil {
		return
	}
	notifyContact(a, b, enter)
	notifyContact(b, a, enter)
}

func notifyContact(n, other *engine.Node, enter bool) {
	for _, c := range n.Components() {
		h, ok := c.(engine.CollisionHandler)
		if !ok {
			continue
		}
		if enter {
			h.OnCollisionEnter(other)
		} else {
			h.OnCollisionExit(other)
		}
	}
}

// Reset returns every model to its start state.
func (w *World) Reset() {
	w.Physics.Reset()
	w.Scene.Update(0)
}

// Clear empties the world. Gravity and collisions are switched off.
func (w *World) Clear() {
	w.Physics.Clear()
	w.Scene.Clear()
	w.models = nil
	w.grounds = nil
	w.nodes = make(map[physics.Object]*engine.Node)
	w.Bounds = physics.EmptyAABB()
}

// --- Scene files ---

type entry struct {
	name   string
	tags   []string
	model  Model
	ground bool
}

// LoadScene replaces the world's contents with the scene at path. On error
// the world is left as it was.
func (w *World) LoadScene(path string) error {
	sf, err := ReadSceneFile(path)
	if err != nil {
		return err
	}
	if err := w.Apply(sf); err != nil {
		return fmt.Errorf("load scene %s: %w", path, err)
	}
	log.Printf("Scene: loaded %s (%d objects, %d grounds)", path, len(w.models), len(w.grounds))
	return nil
}

// Apply replaces the world's contents with sf. Simulation toggles survive.
func (w *World) Apply(sf *SceneFile) error {
	var entries []entry
	bounds := physics.EmptyAABB()

	for _, def := range sf.Objects {
		m, err := def.Build()
		if err != nil {
			return err
		}
		entries = append(entries, entry{def.Name, def.Tags, m, false})
	}
	for _, def := range sf.Grounds {
		m, err := def.Build()
		if err != nil {
			return err
		}
		entries = append(entries, entry{def.Name, def.Tags, m, true})
	}
	for i, layout := range sf.Layouts {
		generated, err := buildLayout(layout, &bounds)
		if err != nil {
			return fmt.Errorf("layout %d: %w", i, err)
		}
		entries = append(entries, generated...)
	}

	props := w.Physics.Properties
	w.Clear()
	w.Physics.Properties = props
	if sf.Gravity != nil {
		w.Physics.Gravity = vec3(*sf.Gravity)
	}
	if sf.Name != "" {
		w.Scene.Name = sf.Name
	}
	w.Bounds = bounds

	for _, e := range entries {
		if e.ground {
			w.AddGround(e.name, e.tags, e.model)
		} else {
			w.Add(e.name, e.tags, e.model)
		}
	}
	w.OnLoaded.Invoke()
	return nil
}

func buildLayout(def LayoutDef, bounds *physics.AABB) ([]entry, error) {
	var entries []entry
	switch strings.ToLower(def.Type) {
	case "cubes":
		rows, cols := orInt(def.Rows, DefaultGridRows), orInt(def.Cols, DefaultGridCols)
		size := orFloat(def.Size, DefaultCubeSize)
		height := orFloat(def.Height, DefaultGridHeight)
		cubes, err := InitializeCubes(rows, cols, def.Spacing, size, height)
		if err != nil {
			return nil, err
		}
		bounds.ExpandToInclude(CalculateSceneBounds(cubes))
		for i, c := range cubes {
			entries = append(entries, entry{fmt.Sprintf("Cube_%d", i), []string{"cube"}, c, def.Ground})
		}
	case "balls":
		balls, err := InitializeBalls(orFloat(def.Size, 1), 1)
		if err != nil {
			return nil, err
		}
		if def.Fit {
			FitAllToScene(balls, *bounds)
			for _, b := range balls {
				b.SetCurrentPosAsOriginalPos()
			}
		}
		for i, b := range balls {
			entries = append(entries, entry{fmt.Sprintf("Ball_%d", i), []string{"ball"}, b, def.Ground})
		}
	default:
		return nil, fmt.Errorf("unknown layout %q", def.Type)
	}
	return entries, nil
}

func orInt(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

func orFloat(v, fallback float32) float32 {
	if v <= 0 {
		return fallback
	}
	return v
}

// ToSceneFile describes the world as it was at the start of the simulation.
// Generated layouts are written out as plain objects.
func (w *World) ToSceneFile() *SceneFile {
	gravity := arr3(w.Physics.Gravity)
	sf := &SceneFile{Name: w.Scene.Name, Gravity: &gravity}
	for _, m := range w.models {
		sf.Objects = append(sf.Objects, w.def(m))
	}
	for _, m := range w.grounds {
		sf.Grounds = append(sf.Grounds, w.def(m))
	}
	return sf
}

func (w *World) def(m Model) ObjectDef {
	var name string
	var tags []string
	if n := w.nodes[m]; n != nil {
		name, tags = n.Name, n.Tags
	}
	return DefFromModel(name, tags, m)
}

func (w *World) SaveScene(path string) error {
	return WriteSceneFile(path, w.ToSceneFile())
}
