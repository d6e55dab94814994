package engine

type Scene struct {
	Name   string
	Nodes  []*Node
	uidMap map[uint64]*Node
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:   name,
		uidMap: make(map[uint64]*Node),
	}
}

func (s *Scene) AddNode(n *Node) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*Node)
	}
	n.Scene = s
	s.Nodes = append(s.Nodes, n)
	s.uidMap[n.UID] = n
}

// RemoveNode removes n and all of its descendants from the scene.
func (s *Scene) RemoveNode(n *Node) {
	for _, child := range n.Children {
		s.RemoveNode(child)
	}
	for i, obj := range s.Nodes {
		if obj == n {
			s.Nodes = append(s.Nodes[:i], s.Nodes[i+1:]...)
			break
		}
	}
	delete(s.uidMap, n.UID)
	n.Scene = nil
}

// Clear drops every node.
func (s *Scene) Clear() {
	for _, n := range s.Nodes {
		n.Scene = nil
	}
	s.Nodes = nil
	s.uidMap = make(map[uint64]*Node)
}

func (s *Scene) FindByUID(uid uint64) *Node {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *Node {
	for _, n := range s.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*Node {
	var result []*Node
	for _, n := range s.Nodes {
		if n.HasTag(tag) {
			result = append(result, n)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, n := range s.Nodes {
		n.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, n := range s.Nodes {
		n.Update(deltaTime)
	}
}
