package engine

type AABB struct {
	Min Vector3
	Max Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size Vector3) AABB {
	half := size.Scale(0.5)
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

func (a AABB) Union(b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

func (a AABB) Center() Vector3 {
	return a.Min.Add(a.Max).Scale(0.5)
}

func (a AABB) Size() Vector3 {
	return a.Max.Sub(a.Min)
}

// Bounds computes the world-space bounds of a node and its descendants.
// Rotation is ignored, which is close enough for camera framing.
func (n *Node) Bounds() AABB {
	var result AABB
	first := true
	n.Walk(func(node *Node) {
		if node.Mesh == nil {
			return
		}
		mb := node.Mesh.Bounds()
		scale := node.WorldScale()
		world := AABB{
			Min: node.WorldPosition().Add(mb.Min.Mul(scale)),
			Max: node.WorldPosition().Add(mb.Max.Mul(scale)),
		}
		if first {
			result = world
			first = false
		} else {
			result = result.Union(world)
		}
	})
	return result
}
