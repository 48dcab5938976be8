package engine

import "github.com/chewxy/math32"

type Vector2 struct {
	X, Y float32
}

type Vector3 struct {
	X, Y, Z float32
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Mul(o Vector3) Vector3 {
	return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

func (v Vector3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return v.Scale(1 / l)
}

func (v Vector3) Dot(o Vector3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// RotateEuler rotates v by Euler angles in degrees, applied X then Y then Z.
func (v Vector3) RotateEuler(angles Vector3) Vector3 {
	rx := angles.X * math32.Pi / 180
	ry := angles.Y * math32.Pi / 180
	rz := angles.Z * math32.Pi / 180

	// X axis
	c, s := math32.Cos(rx), math32.Sin(rx)
	v = Vector3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}

	// Y axis
	c, s = math32.Cos(ry), math32.Sin(ry)
	v = Vector3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}

	// Z axis
	c, s = math32.Cos(rz), math32.Sin(rz)
	return Vector3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{math32.Min(v.X, o.X), math32.Min(v.Y, o.Y), math32.Min(v.Z, o.Z)}
}

func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{math32.Max(v.X, o.X), math32.Max(v.Y, o.Y), math32.Max(v.Z, o.Z)}
}
