// Package render defines the contracts between the scene core and a
// rendering backend. The core never inspects backend internals; everything
// it needs crosses one of these interfaces.
package render

import "doorlab/internal/engine"

// InputState is one frame's worth of polled input, already translated into
// viewer-level intents so the core does not know about key codes.
type InputState struct {
	MouseDX  float32
	MouseDY  float32
	Wheel    float32
	Orbiting bool // orbit drag button held

	Resized bool
	Width   int
	Height  int

	FrameKey      bool // re-frame the camera on the door
	UndoKey       bool
	SavePresetKey bool
	ScreenshotKey bool
	ResetKey      bool
	Preset        int // 1..9 when a preset key was pressed, 0 otherwise
}

// Renderer is the rendering/window collaborator. Open must be called before
// anything else; Close releases the graphics context.
type Renderer interface {
	Open(title string, width, height int) error
	SetSize(width, height int)
	Poll() InputState
	Render(scene *engine.Scene, cam *engine.Camera, overlay func())
	CreateCapture(size int) EnvCapture
	// Free releases GPU resources held for a detached subtree.
	Free(node *engine.Node)
	Screenshot(path string)
	ShouldClose() bool
	Close()
}

// EnvCapture re-renders the surrounding scene into an environment buffer
// that reflective materials sample. How it captures is up to the backend.
type EnvCapture interface {
	SetPosition(pos engine.Vector3)
	Refresh(scene *engine.Scene)
	// Preview blits the capture buffer to the screen for debugging.
	Preview(x, y, height int32)
}
