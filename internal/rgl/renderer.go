// Package rgl is the raylib implementation of the render contracts: window,
// input, scene-graph drawing and the panorama environment capture.
package rgl

import (
	"fmt"

	"doorlab/internal/engine"
	"doorlab/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Renderer struct {
	opened    bool
	targetFPS int32

	lit  rl.Shader
	refl rl.Shader

	litLightDir   int32
	litLightColor int32
	litAmbient    int32
	litTiling     int32
	reflViewPos   int32

	meshes   *meshRegistry
	textures *texRegistry
	env      *Capture

	white rl.Texture2D // 1x1 fallback for untextured materials
}

func New(targetFPS int) *Renderer {
	if targetFPS <= 0 {
		targetFPS = 60
	}
	return &Renderer{targetFPS: int32(targetFPS)}
}

func (r *Renderer) Open(title string, width, height int) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagWindowHighdpi)
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("raylib window failed to open")
	}
	rl.SetTargetFPS(r.targetFPS)
	rl.SetExitKey(0) // Esc should not kill the viewer

	r.lit = rl.LoadShaderFromMemory(litVS, litFS)
	r.refl = rl.LoadShaderFromMemory(litVS, reflFS)
	r.litLightDir = rl.GetShaderLocation(r.lit, "lightDir")
	r.litLightColor = rl.GetShaderLocation(r.lit, "lightColor")
	r.litAmbient = rl.GetShaderLocation(r.lit, "ambient")
	r.litTiling = rl.GetShaderLocation(r.lit, "tiling")
	r.reflViewPos = rl.GetShaderLocation(r.refl, "viewPos")

	r.meshes = newMeshRegistry()
	r.textures = newTexRegistry()

	whiteImg := rl.GenImageColor(1, 1, rl.White)
	r.white = rl.LoadTextureFromImage(whiteImg)
	rl.UnloadImage(whiteImg)

	r.opened = true
	return nil
}

func (r *Renderer) SetSize(width, height int) {
	rl.SetWindowSize(width, height)
}

func (r *Renderer) Poll() render.InputState {
	var in render.InputState

	delta := rl.GetMouseDelta()
	in.MouseDX = delta.X
	in.MouseDY = delta.Y
	in.Wheel = rl.GetMouseWheelMove()
	in.Orbiting = rl.IsMouseButtonDown(rl.MouseRightButton)

	if rl.IsWindowResized() {
		in.Resized = true
		in.Width = rl.GetScreenWidth()
		in.Height = rl.GetScreenHeight()
	}

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	in.FrameKey = rl.IsKeyPressed(rl.KeyF)
	in.UndoKey = ctrl && rl.IsKeyPressed(rl.KeyZ)
	in.SavePresetKey = ctrl && rl.IsKeyPressed(rl.KeyS)
	in.ResetKey = rl.IsKeyPressed(rl.KeyR)
	in.ScreenshotKey = rl.IsKeyPressed(rl.KeyF12)
	for i := 0; i < 9; i++ {
		if rl.IsKeyPressed(rl.KeyOne + int32(i)) {
			in.Preset = i + 1
		}
	}

	return in
}

func (r *Renderer) Render(scene *engine.Scene, cam *engine.Camera, overlay func()) {
	rl.BeginDrawing()
	bg := scene.Background
	rl.ClearBackground(rl.NewColor(bg.R, bg.G, bg.B, bg.A))

	r.applyLights(scene)
	camPos := cam.Position()
	rl.SetShaderValue(r.refl, r.reflViewPos,
		[]float32{camPos.X, camPos.Y, camPos.Z}, rl.ShaderUniformVec3)

	rl.BeginMode3D(raylibCamera(cam))
	if scene.Grid {
		rl.DrawGrid(20, 1)
	}
	r.drawNode(scene.Root, rl.MatrixIdentity(), scene.Wireframe)
	rl.EndMode3D()

	if overlay != nil {
		overlay()
	}
	rl.EndDrawing()
}

func (r *Renderer) CreateCapture(size int) render.EnvCapture {
	if size <= 0 {
		size = 256
	}
	r.env = newCapture(r, int32(size))
	return r.env
}

// Free drops the GPU meshes of a detached subtree. Textures stay cached;
// they are shared with whatever replaces the subtree.
func (r *Renderer) Free(node *engine.Node) {
	if !r.opened || node == nil {
		return
	}
	node.Walk(func(n *engine.Node) {
		if n.Mesh != nil {
			r.meshes.free(n.Mesh)
		}
	})
}

func (r *Renderer) Screenshot(path string) {
	rl.TakeScreenshot(path)
}

func (r *Renderer) ShouldClose() bool {
	return r.opened && rl.WindowShouldClose()
}

func (r *Renderer) Close() {
	if !r.opened {
		return
	}
	r.opened = false

	if r.env != nil {
		r.env.unload()
		r.env = nil
	}
	r.meshes.freeAll()
	r.textures.freeAll()
	rl.UnloadTexture(r.white)
	rl.UnloadShader(r.lit)
	rl.UnloadShader(r.refl)
	rl.CloseWindow()
}

// applyLights pushes the first ambient and first directional light in the
// tree into the lit shader.
func (r *Renderer) applyLights(scene *engine.Scene) {
	ambient := []float32{0.15, 0.15, 0.15, 1}
	lightDir := []float32{0.35, -1, -0.35}
	lightColor := []float32{1, 1, 1, 1}

	var haveAmbient, haveDir bool
	scene.Root.Walk(func(n *engine.Node) {
		if n.Light == nil || !n.WorldVisible() {
			return
		}
		switch n.Light.Kind {
		case engine.LightAmbient:
			if !haveAmbient {
				haveAmbient = true
				ambient = colorScale(n.Light.Color, n.Light.Intensity)
			}
		case engine.LightDirectional:
			if !haveDir {
				haveDir = true
				d := n.Light.Direction
				lightDir = []float32{d.X, d.Y, d.Z}
				lightColor = colorScale(n.Light.Color, n.Light.Intensity)
			}
		}
	})

	rl.SetShaderValue(r.lit, r.litLightDir, lightDir, rl.ShaderUniformVec3)
	rl.SetShaderValue(r.lit, r.litLightColor, lightColor, rl.ShaderUniformVec4)
	rl.SetShaderValue(r.lit, r.litAmbient, ambient, rl.ShaderUniformVec4)
}

func (r *Renderer) drawNode(n *engine.Node, parent rl.Matrix, wireframe bool) {
	if !n.Visible {
		return
	}

	local := nodeMatrix(n)
	world := rl.MatrixMultiply(local, parent)

	if n.Mesh != nil {
		r.drawSolid(n, world, wireframe)
	}
	for _, c := range n.Children {
		r.drawNode(c, world, wireframe)
	}
}

func (r *Renderer) drawSolid(n *engine.Node, world rl.Matrix, wireframe bool) {
	g := r.meshes.get(n.Mesh)
	g.model.Transform = world

	mat := n.Material
	tint := rl.White
	if mat != nil {
		tint = rl.NewColor(mat.Color.R, mat.Color.G, mat.Color.B, mat.Color.A)
	}

	if mat != nil && mat.Reflective && r.env != nil {
		g.model.Materials.Shader = r.refl
		g.model.Materials.Maps.Texture = r.env.target.Texture
	} else {
		g.model.Materials.Shader = r.lit
		if mat != nil && mat.Texture != nil {
			g.model.Materials.Maps.Texture = r.textures.get(mat.Texture)
		} else {
			g.model.Materials.Maps.Texture = r.white
		}
		tiling := float32(1)
		if mat != nil {
			tiling = mat.TilingOrDefault()
		}
		rl.SetShaderValue(r.lit, r.litTiling, []float32{tiling}, rl.ShaderUniformFloat)
	}

	if wireframe {
		rl.DrawModelWires(g.model, rl.Vector3Zero(), 1.0, tint)
	} else {
		rl.DrawModel(g.model, rl.Vector3Zero(), 1.0, tint)
	}
}

// nodeMatrix combines scale -> rotate -> translate, rotation applied X then
// Y then Z.
func nodeMatrix(n *engine.Node) rl.Matrix {
	t := n.Transform
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	rotX := rl.MatrixRotateX(t.Rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(t.Rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(t.Rotation.Z * rl.Deg2rad)
	rot := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
	trans := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
}

func raylibCamera(cam *engine.Camera) rl.Camera3D {
	pos := cam.Position()
	return rl.Camera3D{
		Position:   rl.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z},
		Target:     rl.Vector3{X: cam.Target.X, Y: cam.Target.Y, Z: cam.Target.Z},
		Up:         rl.Vector3{Y: 1},
		Fovy:       cam.Fovy,
		Projection: rl.CameraPerspective,
	}
}

func colorScale(c engine.Color, intensity float32) []float32 {
	return []float32{
		float32(c.R) / 255 * intensity,
		float32(c.G) / 255 * intensity,
		float32(c.B) / 255 * intensity,
		1,
	}
}
