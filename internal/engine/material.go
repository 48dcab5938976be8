package engine

import "doorlab/internal/assets"

type Color struct {
	R, G, B, A uint8
}

var (
	White     = Color{255, 255, 255, 255}
	LightGray = Color{200, 200, 200, 255}
	DarkGray  = Color{80, 80, 80, 255}
	Steel     = Color{190, 195, 205, 255}
)

// Material describes a surface. It is a plain value object; the backend
// decides how to realize it (which shader, which GPU texture).
type Material struct {
	Name       string
	Color      Color
	Texture    *assets.Texture
	Tiling     float32 // texture repeats per UV unit, 0 means 1
	Reflective bool    // sample the dynamic environment capture instead of a texture
}

func (m *Material) TilingOrDefault() float32 {
	if m == nil || m.Tiling == 0 {
		return 1
	}
	return m.Tiling
}
