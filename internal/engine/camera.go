package engine

import "github.com/chewxy/math32"

// Camera is a perspective camera on an orbit rig: it always looks at Target
// and its position is derived from spherical coordinates around it.
type Camera struct {
	Target    Vector3
	Radius    float32
	Azimuth   float32 // horizontal angle around Y, radians
	Elevation float32 // vertical angle from the horizontal plane, radians
	Fovy      float32 // vertical field of view in degrees
	Aspect    float32
	Near      float32
	Far       float32

	MinRadius    float32
	MaxRadius    float32
	MinElevation float32
	MaxElevation float32
}

func NewOrbitCamera() *Camera {
	return &Camera{
		Radius:       8,
		Azimuth:      0.6,
		Elevation:    0.35,
		Fovy:         45,
		Aspect:       16.0 / 9.0,
		Near:         0.1,
		Far:          100,
		MinRadius:    1.5,
		MaxRadius:    40,
		MinElevation: -1.2,
		MaxElevation: 1.45,
	}
}

// Position computes the camera position from the spherical coordinates.
func (c *Camera) Position() Vector3 {
	cosElev := math32.Cos(c.Elevation)
	return Vector3{
		X: c.Target.X + c.Radius*cosElev*math32.Sin(c.Azimuth),
		Y: c.Target.Y + c.Radius*math32.Sin(c.Elevation),
		Z: c.Target.Z + c.Radius*cosElev*math32.Cos(c.Azimuth),
	}
}

func (c *Camera) Orbit(dAzimuth, dElevation float32) {
	c.Azimuth += dAzimuth
	c.Elevation += dElevation
	if c.Elevation > c.MaxElevation {
		c.Elevation = c.MaxElevation
	}
	if c.Elevation < c.MinElevation {
		c.Elevation = c.MinElevation
	}
}

func (c *Camera) Zoom(delta float32) {
	c.Radius -= delta
	if c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}

func (c *Camera) SetAspect(width, height int) {
	if height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// Frame re-targets the orbit at the center of b and backs off far enough
// that the whole box fits in the vertical field of view.
func (c *Camera) Frame(b AABB) {
	size := b.Size()
	extent := math32.Max(size.X, math32.Max(size.Y, size.Z))
	if extent <= 0 {
		return
	}
	c.Target = b.Center()
	radius := extent / (2 * math32.Tan(c.Fovy*math32.Pi/360)) * 1.4
	if radius < c.MinRadius {
		radius = c.MinRadius
	}
	if radius > c.MaxRadius {
		radius = c.MaxRadius
	}
	c.Radius = radius
}
