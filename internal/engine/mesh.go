package engine

import "github.com/chewxy/math32"

type Vertex struct {
	Position Vector3
	Normal   Vector3
	UV       Vector2
}

// Mesh is plain geometry data. Nothing is allocated on the GPU until a
// backend draws the node holding it.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

func (m *Mesh) addQuad(corners [4]Vector3, normal Vector3, uvs [4]Vector2) {
	base := uint16(len(m.Vertices))
	for i := 0; i < 4; i++ {
		m.Vertices = append(m.Vertices, Vertex{
			Position: corners[i],
			Normal:   normal,
			UV:       uvs[i],
		})
	}
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
}

// quadUVs emits corner UVs for a unit face scaled by uvScale, matching the
// bottom-left, bottom-right, top-right, top-left corner order. Scaling by
// the face's real-world extent keeps texture density constant across sizes.
func quadUVs(uvScale Vector2) [4]Vector2 {
	return [4]Vector2{
		{0, uvScale.Y},
		{uvScale.X, uvScale.Y},
		{uvScale.X, 0},
		{0, 0},
	}
}

// NewPlane creates a width x depth plane in the XZ plane facing +Y.
func NewPlane(width, depth float32, uvScale Vector2) *Mesh {
	hw, hd := width/2, depth/2
	m := &Mesh{}
	m.addQuad(
		[4]Vector3{
			{-hw, 0, hd},
			{hw, 0, hd},
			{hw, 0, -hd},
			{-hw, 0, -hd},
		},
		Vector3{Y: 1},
		quadUVs(uvScale),
	)
	return m
}

// NewBox creates an axis-aligned box centered at the origin. Every face emits
// UVs in [0,1] scaled by uvScale, counter-clockwise when seen from outside.
func NewBox(size Vector3, uvScale Vector2) *Mesh {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	m := &Mesh{}
	uvs := quadUVs(uvScale)

	// Corners run bottom-left, bottom-right, top-right, top-left as seen
	// from outside each face
	// Front (+Z)
	m.addQuad([4]Vector3{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}, Vector3{Z: 1}, uvs)
	// Back (-Z)
	m.addQuad([4]Vector3{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}, Vector3{Z: -1}, uvs)
	// Right (+X)
	m.addQuad([4]Vector3{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}}, Vector3{X: 1}, uvs)
	// Left (-X)
	m.addQuad([4]Vector3{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}, Vector3{X: -1}, uvs)
	// Top (+Y)
	m.addQuad([4]Vector3{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}}, Vector3{Y: 1}, uvs)
	// Bottom (-Y)
	m.addQuad([4]Vector3{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}, Vector3{Y: -1}, uvs)

	return m
}

// NewCylinder creates a cylinder of the given radius and height centered at
// the origin with its axis along Y.
func NewCylinder(radius, height float32, slices int) *Mesh {
	if slices < 3 {
		slices = 3
	}
	hh := height / 2
	m := &Mesh{}

	// Side wall: one ring of quads, unwrapped along U
	for i := 0; i < slices; i++ {
		a0 := float32(i) / float32(slices) * 2 * math32.Pi
		a1 := float32(i+1) / float32(slices) * 2 * math32.Pi
		c0, s0 := math32.Cos(a0), math32.Sin(a0)
		c1, s1 := math32.Cos(a1), math32.Sin(a1)

		u0 := float32(i) / float32(slices)
		u1 := float32(i+1) / float32(slices)

		base := uint16(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			Vertex{Position: Vector3{radius * c0, -hh, radius * s0}, Normal: Vector3{c0, 0, s0}, UV: Vector2{u0, 1}},
			Vertex{Position: Vector3{radius * c0, hh, radius * s0}, Normal: Vector3{c0, 0, s0}, UV: Vector2{u0, 0}},
			Vertex{Position: Vector3{radius * c1, hh, radius * s1}, Normal: Vector3{c1, 0, s1}, UV: Vector2{u1, 0}},
			Vertex{Position: Vector3{radius * c1, -hh, radius * s1}, Normal: Vector3{c1, 0, s1}, UV: Vector2{u1, 1}},
		)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	// Caps: triangle fans around a center vertex
	for _, end := range []struct {
		y      float32
		normal Vector3
	}{
		{hh, Vector3{Y: 1}},
		{-hh, Vector3{Y: -1}},
	} {
		center := uint16(len(m.Vertices))
		m.Vertices = append(m.Vertices, Vertex{
			Position: Vector3{0, end.y, 0},
			Normal:   end.normal,
			UV:       Vector2{0.5, 0.5},
		})
		for i := 0; i < slices; i++ {
			a := float32(i) / float32(slices) * 2 * math32.Pi
			c, s := math32.Cos(a), math32.Sin(a)
			m.Vertices = append(m.Vertices, Vertex{
				Position: Vector3{radius * c, end.y, radius * s},
				Normal:   end.normal,
				UV:       Vector2{0.5 + c/2, 0.5 + s/2},
			})
		}
		for i := 0; i < slices; i++ {
			i0 := center + 1 + uint16(i)
			i1 := center + 1 + uint16((i+1)%slices)
			if end.normal.Y > 0 {
				m.Indices = append(m.Indices, center, i1, i0)
			} else {
				m.Indices = append(m.Indices, center, i0, i1)
			}
		}
	}

	return m
}

// NewSphere creates a UV sphere of the given radius centered at the origin.
func NewSphere(radius float32, rings, slices int) *Mesh {
	if rings < 2 {
		rings = 2
	}
	if slices < 3 {
		slices = 3
	}
	m := &Mesh{}

	for r := 0; r <= rings; r++ {
		lat := float32(r)/float32(rings)*math32.Pi - math32.Pi/2
		y := math32.Sin(lat)
		rad := math32.Cos(lat)
		for s := 0; s <= slices; s++ {
			lon := float32(s) / float32(slices) * 2 * math32.Pi
			n := Vector3{rad * math32.Cos(lon), y, rad * math32.Sin(lon)}
			m.Vertices = append(m.Vertices, Vertex{
				Position: n.Scale(radius),
				Normal:   n,
				UV:       Vector2{float32(s) / float32(slices), 1 - float32(r)/float32(rings)},
			})
		}
	}

	stride := uint16(slices + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < slices; s++ {
			i0 := uint16(r)*stride + uint16(s)
			i1 := i0 + 1
			i2 := i0 + stride
			i3 := i2 + 1
			m.Indices = append(m.Indices, i0, i2, i3, i0, i3, i1)
		}
	}

	return m
}

// Bounds returns the axis-aligned bounds of the raw mesh vertices.
func (m *Mesh) Bounds() AABB {
	if len(m.Vertices) == 0 {
		return AABB{}
	}
	b := AABB{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		b.Min = b.Min.Min(v.Position)
		b.Max = b.Max.Max(v.Position)
	}
	return b
}
