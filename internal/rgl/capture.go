package rgl

import (
	"doorlab/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	captureNear float32 = 0.1
	captureFar  float32 = 100.0
)

// Capture renders the scene into a horizontal strip of four 90-degree views
// around a point. Reflective materials sample the strip as a panorama.
type Capture struct {
	renderer *Renderer
	target   rl.RenderTexture2D
	size     int32
	pos      engine.Vector3
}

func newCapture(r *Renderer, size int32) *Capture {
	return &Capture{
		renderer: r,
		target:   rl.LoadRenderTexture(size*4, size),
		size:     size,
	}
}

func (c *Capture) SetPosition(pos engine.Vector3) {
	c.pos = pos
}

// Refresh redraws all four faces from the capture position. The caller hides
// the probe before calling this, so the capture never sees itself.
func (c *Capture) Refresh(scene *engine.Scene) {
	rl.BeginTextureMode(c.target)
	bg := scene.Background
	rl.ClearBackground(rl.NewColor(bg.R, bg.G, bg.B, bg.A))

	c.renderer.applyLights(scene)

	faceProj := rl.MatrixPerspective(90*rl.Deg2rad, 1.0, captureNear, captureFar)
	for face := int32(0); face < 4; face++ {
		rl.Viewport(face*c.size, 0, c.size, c.size)

		center := -math32.Pi + (float32(face)+0.5)*math32.Pi/2
		cam := rl.Camera3D{
			Position: rl.Vector3{X: c.pos.X, Y: c.pos.Y, Z: c.pos.Z},
			Target: rl.Vector3{
				X: c.pos.X + math32.Cos(center),
				Y: c.pos.Y,
				Z: c.pos.Z + math32.Sin(center),
			},
			Up:         rl.Vector3{Y: 1},
			Fovy:       90,
			Projection: rl.CameraPerspective,
		}

		rl.BeginMode3D(cam)
		rl.SetMatrixProjection(faceProj)
		c.renderer.drawNode(scene.Root, rl.MatrixIdentity(), false)
		rl.EndMode3D()
	}

	rl.EndTextureMode()
	rl.Viewport(0, 0, int32(rl.GetRenderWidth()), int32(rl.GetRenderHeight()))
}

// Preview blits the strip for the debug overlay.
func (c *Capture) Preview(x, y, height int32) {
	w := float32(c.target.Texture.Width)
	h := float32(c.target.Texture.Height)
	destW := float32(height) * 4
	// negative source height flips the render texture right side up
	rl.DrawTexturePro(c.target.Texture,
		rl.NewRectangle(0, 0, w, -h),
		rl.NewRectangle(float32(x), float32(y), destW, float32(height)),
		rl.Vector2{}, 0, rl.White)
	rl.DrawRectangleLines(x, y, int32(destW), height, rl.Gray)
}

func (c *Capture) unload() {
	rl.UnloadRenderTexture(c.target)
}
