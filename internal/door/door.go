// Package door builds the parametric door node: a wood panel inset in a
// four-segment frame, plus a handle. Build is pure; it allocates geometry
// descriptors and nothing else.
package door

import (
	"fmt"

	"doorlab/internal/assets"
	"doorlab/internal/engine"
)

// FrameThickness is the fixed inset between the door's outer edge and the
// panel, and the cross-section of every frame segment.
const FrameThickness = 0.1

const (
	panelDepth   = 0.06
	frameDepth   = 0.12
	handleRadius = 0.035
	handleLength = 0.3
	woodTiling   = 0.5 // texture repeats per length unit
)

type Config struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// DefaultConfig is the door the viewer starts with.
func DefaultConfig() Config {
	return Config{Width: 2, Height: 4}
}

// DimensionError reports a door config with a non-positive dimension.
type DimensionError struct {
	Width  float32
	Height float32
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("door dimensions must be positive, got %gx%g", e.Width, e.Height)
}

// Build constructs the door node for the given config. The caller owns the
// returned node and decides when to attach it to a scene.
//
// The panel's UVs are scaled by its real extent so the wood grain keeps a
// constant density no matter the door size. The whole group is shifted so
// the door bottom rests on the floor reference regardless of height.
func Build(cfg Config, wood *assets.Texture) (*engine.Node, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, &DimensionError{Width: cfg.Width, Height: cfg.Height}
	}

	w, h := cfg.Width, cfg.Height
	const f = float32(FrameThickness)

	woodMat := &engine.Material{
		Name:    "door-wood",
		Color:   engine.White,
		Texture: wood,
		Tiling:  woodTiling,
	}
	frameMat := &engine.Material{
		Name:    "door-frame",
		Color:   engine.Color{R: 170, G: 170, B: 175, A: 255},
		Texture: wood,
		Tiling:  woodTiling,
	}
	handleMat := &engine.Material{
		Name:  "door-handle",
		Color: engine.Steel,
	}

	group := engine.NewNode("Door")

	// Panel, inset by the frame thickness on every side
	panelW, panelH := w-2*f, h-2*f
	panel := engine.NewSolid("DoorPanel",
		engine.NewBox(engine.Vector3{X: panelW, Y: panelH, Z: panelDepth}, engine.Vector2{X: panelW, Y: panelH}),
		woodMat)
	group.Add(panel)

	// Two horizontal segments spanning the full width, two vertical
	// spanning the full height
	horizontal := engine.NewBox(engine.Vector3{X: w, Y: f, Z: frameDepth}, engine.Vector2{X: w, Y: f})
	vertical := engine.NewBox(engine.Vector3{X: f, Y: h, Z: frameDepth}, engine.Vector2{X: f, Y: h})

	top := engine.NewSolid("DoorFrameTop", horizontal, frameMat)
	top.Transform.Position = engine.Vector3{Y: h/2 - f/2}
	group.Add(top)

	bottom := engine.NewSolid("DoorFrameBottom", horizontal, frameMat)
	bottom.Transform.Position = engine.Vector3{Y: -(h/2 - f/2)}
	group.Add(bottom)

	left := engine.NewSolid("DoorFrameLeft", vertical, frameMat)
	left.Transform.Position = engine.Vector3{X: -(w/2 - f/2)}
	group.Add(left)

	right := engine.NewSolid("DoorFrameRight", vertical, frameMat)
	right.Transform.Position = engine.Vector3{X: w/2 - f/2}
	group.Add(right)

	// Handle: short cylinder laid horizontal, near the right edge, poking
	// out in front of the panel
	handle := engine.NewSolid("DoorHandle",
		engine.NewCylinder(handleRadius, handleLength, 12),
		handleMat)
	handle.Transform.Rotation = engine.Vector3{Z: 90}
	handle.Transform.Position = engine.Vector3{X: w/2 - f - 0.1, Z: panelDepth/2 + 0.05}
	group.Add(handle)

	// Keep the door resting near the floor reference for any height
	group.Transform.Position = engine.Vector3{Y: h/2 - 2}

	return group, nil
}
