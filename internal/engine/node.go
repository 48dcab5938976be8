package engine

type Transform struct {
	Position Vector3
	Rotation Vector3 // Euler angles in degrees
	Scale    Vector3
}

// Node is one entry in the scene graph. A node with a Mesh is drawn; a node
// without one is a plain group. Lights ride along as nodes too so the whole
// scene is a single tree.
type Node struct {
	Name      string
	Transform Transform
	Visible   bool
	Parent    *Node
	Children  []*Node
	Mesh      *Mesh
	Material  *Material
	Light     *Light
}

func NewNode(name string) *Node {
	return &Node{
		Name:    name,
		Visible: true,
		Transform: Transform{
			Scale: Vector3{X: 1, Y: 1, Z: 1},
		},
		Children: make([]*Node, 0),
	}
}

// NewSolid creates a drawable node from a mesh and a material.
func NewSolid(name string, mesh *Mesh, material *Material) *Node {
	n := NewNode(name)
	n.Mesh = mesh
	n.Material = material
	return n
}

func NewLightNode(name string, light *Light) *Node {
	n := NewNode(name)
	n.Light = light
	return n
}

func (n *Node) Add(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) Remove(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// Walk calls fn for this node and every descendant, depth-first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

func (n *Node) FindByName(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

func (n *Node) WorldPosition() Vector3 {
	if n.Parent == nil {
		return n.Transform.Position
	}
	parentPos := n.Parent.WorldPosition()
	parentRot := n.Parent.WorldRotation()
	parentScale := n.Parent.WorldScale()

	// Scale local position by parent's world scale, then rotate into
	// the parent's frame (X then Y then Z, same convention as the backend)
	scaled := n.Transform.Position.Mul(parentScale)
	return parentPos.Add(scaled.RotateEuler(parentRot))
}

func (n *Node) WorldRotation() Vector3 {
	if n.Parent == nil {
		return n.Transform.Rotation
	}
	return n.Parent.WorldRotation().Add(n.Transform.Rotation)
}

func (n *Node) WorldScale() Vector3 {
	if n.Parent == nil {
		return n.Transform.Scale
	}
	return n.Parent.WorldScale().Mul(n.Transform.Scale)
}

// WorldVisible reports whether this node and all of its ancestors are visible.
func (n *Node) WorldVisible() bool {
	if !n.Visible {
		return false
	}
	if n.Parent == nil {
		return true
	}
	return n.Parent.WorldVisible()
}
