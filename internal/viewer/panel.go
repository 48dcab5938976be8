package viewer

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"doorlab/internal/door"
)

const (
	panelX     = 10
	panelY     = 40
	panelW     = 250
	sliderStep = 0.1
	toastTime  = 3 * time.Second
)

func snap(value float32) float32 {
	return math32.Round(value/sliderStep) * sliderStep
}

// drawPanel renders the control panel and debug overlay. It runs inside the
// backend's 2D pass, after the 3D scene has been drawn.
func (v *Viewer) drawPanel() {
	rl.DrawRectangle(panelX, panelY, panelW, 190, rl.Fade(rl.Black, 0.5))
	rl.DrawText("Door", panelX+10, panelY+8, 20, rl.RayWhite)

	newW := snap(gui.Slider(
		rl.NewRectangle(panelX+60, panelY+36, 140, 20),
		"Width", fmt.Sprintf("%.1f", v.uiWidth),
		v.uiWidth, v.cfg.WidthMin, v.cfg.WidthMax))
	newH := snap(gui.Slider(
		rl.NewRectangle(panelX+60, panelY+64, 140, 20),
		"Height", fmt.Sprintf("%.1f", v.uiHeight),
		v.uiHeight, v.cfg.HeightMin, v.cfg.HeightMax))

	// A slider edit starting this frame records the pre-drag config once,
	// so Ctrl+Z reverts the whole drag
	if (newW != v.uiWidth || newH != v.uiHeight) && !v.dragging {
		v.dragging = true
		v.pushUndo(v.doorCfg)
	}
	if v.dragging && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		v.dragging = false
	}

	v.uiWidth, v.uiHeight = newW, newH
	if newW != v.doorCfg.Width || newH != v.doorCfg.Height {
		v.ConfigChanged.Invoke(door.Config{Width: newW, Height: newH})
	}

	if gui.Button(rl.NewRectangle(panelX+10, panelY+94, 90, 24), "Reset") {
		v.applyConfig(door.DefaultConfig())
	}

	v.scene.Wireframe = gui.CheckBox(
		rl.NewRectangle(panelX+10, panelY+128, 16, 16), "Wireframe", v.scene.Wireframe)
	v.scene.Grid = gui.CheckBox(
		rl.NewRectangle(panelX+10, panelY+150, 16, 16), "Grid", v.scene.Grid)
	v.showCapture = gui.CheckBox(
		rl.NewRectangle(panelX+110, panelY+128, 16, 16), "Capture view", v.showCapture)

	v.drawOverlay()
}

func (v *Viewer) drawOverlay() {
	rl.DrawFPS(panelX, 10)
	rl.DrawText("Right-drag orbit, wheel zoom, F frame", panelX, panelY+240, 16, rl.DarkGray)
	rl.DrawText("Ctrl+Z undo, Ctrl+S save preset, 1-9 apply, F12 screenshot", panelX, panelY+260, 16, rl.DarkGray)

	rl.DrawText(fmt.Sprintf("Update:  %.2f ms", v.updateMs), panelX, panelY+290, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Capture: %.2f ms", v.captureMs), panelX, panelY+310, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Draw:    %.2f ms", v.drawMs), panelX, panelY+330, 16, rl.Green)

	if v.showCapture && v.capture != nil {
		v.capture.Preview(int32(rl.GetScreenWidth())-522, 10, 128)
	}

	if v.toast != "" && time.Since(v.toastAt) < toastTime {
		rl.DrawText(v.toast, panelX, int32(rl.GetScreenHeight())-30, 20, rl.Yellow)
	}
}
