package rgl

import (
	"doorlab/internal/assets"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type gpuTexture struct {
	tex rl.Texture2D
	gen int
}

type texRegistry struct {
	textures map[string]*gpuTexture
}

func newTexRegistry() *texRegistry {
	return &texRegistry{textures: make(map[string]*gpuTexture)}
}

// get returns the GPU texture for a handle, uploading on first use and
// re-uploading when a hot reload bumped the handle's generation.
func (r *texRegistry) get(t *assets.Texture) rl.Texture2D {
	if cached, ok := r.textures[t.Name]; ok && cached.gen == t.Gen {
		return cached.tex
	}
	if cached, ok := r.textures[t.Name]; ok {
		rl.UnloadTexture(cached.tex)
	}

	img := rl.NewImageFromImage(t.Image)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterBilinear)

	r.textures[t.Name] = &gpuTexture{tex: tex, gen: t.Gen}
	return tex
}

func (r *texRegistry) freeAll() {
	for name, cached := range r.textures {
		rl.UnloadTexture(cached.tex)
		delete(r.textures, name)
	}
}
