package engine

// Scene is the root of one renderable node tree plus the draw options the
// backend reads each frame.
type Scene struct {
	Name       string
	Root       *Node
	Background Color
	Wireframe  bool
	Grid       bool
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:       name,
		Root:       NewNode("root"),
		Background: Color{20, 20, 30, 255},
	}
}

// Attach adds a node at the top level of the scene.
func (s *Scene) Attach(n *Node) {
	s.Root.Add(n)
}

// Detach removes a top-level node. Detaching a node that is not attached is
// a no-op.
func (s *Scene) Detach(n *Node) {
	s.Root.Remove(n)
}

func (s *Scene) FindByName(name string) *Node {
	return s.Root.FindByName(name)
}

// CountByName returns how many nodes in the tree carry the given name.
func (s *Scene) CountByName(name string) int {
	count := 0
	s.Root.Walk(func(n *Node) {
		if n.Name == name {
			count++
		}
	})
	return count
}
