package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"rigidsim/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// ErrUnknownShape is returned for an object whose shape has no registered factory.
var ErrUnknownShape = errors.New("unknown shape")

// --- File types ---

type SceneFile struct {
	Name    string      `json:"name,omitempty" yaml:"name,omitempty"`
	Gravity *[3]float32 `json:"gravity,omitempty" yaml:"gravity,omitempty"`
	Objects []ObjectDef `json:"objects" yaml:"objects"`
	Grounds []ObjectDef `json:"grounds,omitempty" yaml:"grounds,omitempty"`
	Layouts []LayoutDef `json:"layouts,omitempty" yaml:"layouts,omitempty"`
}

// ObjectDef describes one body. Size is the box half-extents. Angle (degrees)
// and Speed replace Velocity when Speed is set.
type ObjectDef struct {
	Name     string     `json:"name" yaml:"name"`
	Tags     []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	Shape    string     `json:"shape" yaml:"shape"`
	Position [3]float32 `json:"position" yaml:"position"`
	Velocity [3]float32 `json:"velocity,omitempty" yaml:"velocity,omitempty"`
	Angle    float32    `json:"angle,omitempty" yaml:"angle,omitempty"`
	Speed    float32    `json:"speed,omitempty" yaml:"speed,omitempty"`
	Mass     float32    `json:"mass,omitempty" yaml:"mass,omitempty"`
	Radius   float32    `json:"radius,omitempty" yaml:"radius,omitempty"`
	Size     [3]float32 `json:"size,omitempty" yaml:"size,omitempty"`
	Normal   [3]float32 `json:"normal,omitempty" yaml:"normal,omitempty"`
	Distance float32    `json:"distance,omitempty" yaml:"distance,omitempty"`
	Color    string     `json:"color,omitempty" yaml:"color,omitempty"`

	Kinematic    bool     `json:"kinematic,omitempty" yaml:"kinematic,omitempty"`
	Static       bool     `json:"static,omitempty" yaml:"static,omitempty"`
	RotationLock *bool    `json:"rotationLock,omitempty" yaml:"rotationLock,omitempty"`
	Elasticity   *float32 `json:"elasticity,omitempty" yaml:"elasticity,omitempty"`
	LinearDrag   *float32 `json:"linearDrag,omitempty" yaml:"linearDrag,omitempty"`
	AngularDrag  *float32 `json:"angularDrag,omitempty" yaml:"angularDrag,omitempty"`
}

// LayoutDef asks for one of the generated layouts: "cubes" or "balls".
type LayoutDef struct {
	Type    string  `json:"type" yaml:"type"`
	Rows    int     `json:"rows,omitempty" yaml:"rows,omitempty"`
	Cols    int     `json:"cols,omitempty" yaml:"cols,omitempty"`
	Spacing float32 `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	Size    float32 `json:"size,omitempty" yaml:"size,omitempty"`
	Height  float32 `json:"height,omitempty" yaml:"height,omitempty"`
	Ground  bool    `json:"ground,omitempty" yaml:"ground,omitempty"`
	Fit     bool    `json:"fit,omitempty" yaml:"fit,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

func lookupColor(name string, fallback rl.Color) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return fallback
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return ""
}

// --- Shape registry ---

// ShapeFactory builds a model from its file description.
type ShapeFactory func(def ObjectDef) (Model, error)

var shapeRegistry = map[string]ShapeFactory{}

// RegisterShape makes a shape name usable in scene files.
func RegisterShape(name string, factory ShapeFactory) {
	name = strings.ToLower(name)
	if _, exists := shapeRegistry[name]; exists {
		panic(fmt.Sprintf("shape %q already registered", name))
	}
	shapeRegistry[name] = factory
}

// RegisteredShapes returns the registered shape names, sorted.
func RegisteredShapes() []string {
	names := make([]string, 0, len(shapeRegistry))
	for name := range shapeRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func init() {
	RegisterShape(physics.ShapeSphere.String(), func(def ObjectDef) (Model, error) {
		radius := def.Radius
		if radius == 0 {
			radius = 1
		}
		return NewSphereModel(def.position(), def.velocity(), def.mass(), radius, lookupColor(def.Color, rl.Red))
	})
	RegisterShape(physics.ShapeBox.String(), func(def ObjectDef) (Model, error) {
		size := vec3(def.Size)
		if def.Size == [3]float32{} {
			size = rl.Vector3{X: 1, Y: 1, Z: 1}
		}
		return NewBoxModel(def.position(), def.velocity(), def.mass(), size, lookupColor(def.Color, rl.Blue))
	})
	RegisterShape(physics.ShapePlane.String(), func(def ObjectDef) (Model, error) {
		normal := rl.Vector3{Y: 1}
		if def.Normal != [3]float32{} {
			normal = rl.Vector3Normalize(vec3(def.Normal))
		}
		return NewPlaneModel(normal, def.Distance, lookupColor(def.Color, rl.LightGray)), nil
	})
}

// Build creates the model described by def.
func (def ObjectDef) Build() (Model, error) {
	factory, ok := shapeRegistry[strings.ToLower(strings.TrimSpace(def.Shape))]
	if !ok {
		return nil, fmt.Errorf("object %q: %w: %q (known: %s)", def.Name, ErrUnknownShape, def.Shape, strings.Join(RegisteredShapes(), ", "))
	}
	m, err := factory(def)
	if err != nil {
		return nil, fmt.Errorf("object %q: %w", def.Name, err)
	}

	if body := m.Body(); body != nil {
		body.Data.IsKinematic = def.Kinematic
		if def.Static {
			body.Data.IsStatic = true
		}
		if def.RotationLock != nil {
			body.Data.RotationLock = *def.RotationLock
		}
		if def.Elasticity != nil {
			body.Data.Elasticity = *def.Elasticity
		}
		if def.LinearDrag != nil {
			body.Data.LinearDrag = *def.LinearDrag
		}
		if def.AngularDrag != nil {
			body.Data.AngularDrag = *def.AngularDrag
		}
	}
	return m, nil
}

func (def ObjectDef) position() rl.Vector3 { return vec3(def.Position) }

func (def ObjectDef) velocity() rl.Vector3 {
	if def.Speed != 0 {
		rad := def.Angle * math32.Pi / 180
		return rl.Vector3{X: def.Speed * math32.Cos(rad), Y: def.Speed * math32.Sin(rad)}
	}
	return vec3(def.Velocity)
}

// mass defaults to 1 when left out. Negative masses are passed through so
// the constructor rejects them.
func (def ObjectDef) mass() float32 {
	if def.Mass == 0 {
		return 1
	}
	return def.Mass
}

func vec3(a [3]float32) rl.Vector3 { return rl.Vector3{X: a[0], Y: a[1], Z: a[2]} }

func arr3(v rl.Vector3) [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

// DefFromModel describes m so that Build recreates it at its start state.
func DefFromModel(name string, tags []string, m Model) ObjectDef {
	def := ObjectDef{
		Name:     name,
		Tags:     tags,
		Shape:    m.Shape().String(),
		Position: arr3(m.StartPosition()),
		Velocity: arr3(m.StartVelocity()),
	}
	if body := m.Body(); body != nil {
		d := body.Data
		def.Mass = d.Mass
		def.Kinematic = d.IsKinematic
		def.Static = d.IsStatic
		rotationLock, elasticity := d.RotationLock, d.Elasticity
		linearDrag, angularDrag := d.LinearDrag, d.AngularDrag
		def.RotationLock = &rotationLock
		def.Elasticity = &elasticity
		def.LinearDrag = &linearDrag
		def.AngularDrag = &angularDrag
	}

	switch o := m.(type) {
	case *SphereModel:
		def.Radius = o.Radius()
		def.Color = lookupColorName(o.Color)
	case *BoxModel:
		def.Size = arr3(o.Size())
		def.Color = lookupColorName(o.Color)
	case *PlaneModel:
		def.Position = [3]float32{}
		def.Velocity = [3]float32{}
		def.Normal = arr3(o.Normal())
		def.Distance = o.Distance()
		def.Color = lookupColorName(o.Color)
		def.Mass = 0
	}
	return def
}

// --- Reading and writing ---

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ParseScene decodes a scene as YAML when yamlFormat is set, JSON otherwise.
func ParseScene(data []byte, yamlFormat bool) (*SceneFile, error) {
	var sf SceneFile
	if yamlFormat {
		if err := yaml.Unmarshal(data, &sf); err != nil {
			return nil, fmt.Errorf("parse scene: %w", err)
		}
		return &sf, nil
	}
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &sf, nil
}

// ReadSceneFile loads a scene file, picking the format from its extension.
func ReadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return ParseScene(data, isYAML(path))
}

// WriteSceneFile saves sf, picking the format from the extension.
func WriteSceneFile(path string, sf *SceneFile) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(sf)
	} else {
		data, err = json.MarshalIndent(sf, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}
