package engine

import (
	"sync/atomic"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// Node is one entry in the scene graph.
type Node struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *Node
	Children   []*Node
	components []Component
	started    bool
}

func NewNode(name string) *Node {
	return &Node{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		},
	}
}

func (n *Node) AddComponent(c Component) {
	c.SetNode(n)
	n.components = append(n.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T any](n *Node) T {
	var zero T
	for _, c := range n.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (n *Node) Components() []Component {
	return n.components
}

func (n *Node) Start() {
	if n.started {
		return
	}
	for _, c := range n.components {
		c.Start()
	}
	n.started = true
}

func (n *Node) Update(deltaTime float32) {
	if !n.Active {
		return
	}
	for _, c := range n.components {
		c.Update(deltaTime)
	}
}

func (n *Node) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (n *Node) WorldPosition() rl.Vector3 {
	if n.Parent == nil {
		return n.Transform.Position
	}
	parentPos := n.Parent.WorldPosition()
	parentRot := n.Parent.WorldRotation()
	parentScale := n.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector3{
		X: n.Transform.Position.X * parentScale.X,
		Y: n.Transform.Position.Y * parentScale.Y,
		Z: n.Transform.Position.Z * parentScale.Z,
	}

	// X then Y then Z, same as the renderer
	rotX := rl.MatrixRotateX(parentRot.X * math32.Pi / 180)
	rotY := rl.MatrixRotateY(parentRot.Y * math32.Pi / 180)
	rotZ := rl.MatrixRotateZ(parentRot.Z * math32.Pi / 180)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	return rl.Vector3Add(parentPos, rl.Vector3Transform(scaled, rotMatrix))
}

func (n *Node) WorldRotation() rl.Vector3 {
	if n.Parent == nil {
		return n.Transform.Rotation
	}
	return rl.Vector3Add(n.Parent.WorldRotation(), n.Transform.Rotation)
}

func (n *Node) WorldScale() rl.Vector3 {
	if n.Parent == nil {
		return n.Transform.Scale
	}
	ps := n.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * n.Transform.Scale.X,
		Y: ps.Y * n.Transform.Scale.Y,
		Z: ps.Z * n.Transform.Scale.Z,
	}
}
