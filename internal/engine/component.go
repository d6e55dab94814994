package engine

// Component is behaviour attached to a Node and ticked with it.
type Component interface {
	Start()
	Update(deltaTime float32)
	SetNode(n *Node)
	GetNode() *Node
}

// CollisionHandler is implemented by components that want to receive collision callbacks.
type CollisionHandler interface {
	OnCollisionEnter(other *Node)
	OnCollisionExit(other *Node)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	node *Node
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetNode(n *Node) {
	b.node = n
}

func (b *BaseComponent) GetNode() *Node {
	return b.node
}
