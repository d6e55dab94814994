package engine

// NodeRef is a weak reference to a Node by UID. It resolves to nil once
// the node has left the scene.
type NodeRef struct {
	UID uint64 // 0 = none
}

// Get resolves the reference against scene.
func (r NodeRef) Get(scene *Scene) *Node {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference points at something.
// It doesn't check that the node still exists.
func (r NodeRef) IsValid() bool {
	return r.UID != 0
}

// Set points the reference at n. Pass nil to clear it.
func (r *NodeRef) Set(n *Node) {
	if n == nil {
		r.UID = 0
		return
	}
	r.UID = n.UID
}

func (r *NodeRef) Clear() {
	r.UID = 0
}
