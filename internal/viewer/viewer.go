// Package viewer owns the application lifecycle: one-time scene setup, the
// per-frame tick, reactive door rebuilds, resize handling and teardown.
package viewer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"doorlab/internal/assets"
	"doorlab/internal/door"
	"doorlab/internal/engine"
	"doorlab/internal/render"
	"doorlab/internal/world"
)

type State int

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
	StateDisposed
)

const (
	initTimeout = 30 * time.Second
	orbitSpeed  = 0.005
	zoomSpeed   = 0.8
)

// Viewer wires the texture cache, the door builder and the environment
// updater to a rendering backend and drives them through one lifecycle:
// Init, Tick until the window closes, Dispose.
type Viewer struct {
	// ConfigChanged is the observer hook for door edits. The control panel
	// invokes it with each committed slider change; the viewer subscribes
	// its own rebuild handler during Init.
	ConfigChanged engine.Event[door.Config]

	cfg      AppConfig
	renderer render.Renderer
	cache    *assets.Cache
	state    State

	scene   *engine.Scene
	camera  *engine.Camera
	room    *world.Room
	env     *world.EnvironmentUpdater
	capture render.EnvCapture
	door    *engine.Node
	doorCfg door.Config
	wood    *assets.Texture

	watcher *assets.Watcher
	subID   int
	opened  bool

	viewW, viewH int

	undoStack []door.Config

	// UI state
	uiWidth, uiHeight float32
	dragging          bool
	showCapture       bool
	toast             string
	toastAt           time.Time

	// Debug timing (ms)
	updateMs  float64
	captureMs float64
	drawMs    float64
}

func New(cfg AppConfig, renderer render.Renderer, loader assets.Loader) *Viewer {
	return &Viewer{
		cfg:      cfg,
		renderer: renderer,
		cache:    assets.NewCache(loader),
		doorCfg:  door.DefaultConfig(),
	}
}

// Init opens the window, loads the three textures concurrently, builds the
// room and the initial door and subscribes the rebuild handler. If any
// texture fails to load, nothing is attached and the error propagates; the
// viewer is then only good for Dispose.
func (v *Viewer) Init() error {
	if v.state != StateUninitialized {
		return fmt.Errorf("init called in state %d", v.state)
	}
	v.state = StateInitializing

	prefs := LoadPrefs()
	width, height := v.cfg.Width, v.cfg.Height
	if prefs != nil && prefs.WindowWidth > 0 && prefs.WindowHeight > 0 {
		width, height = prefs.WindowWidth, prefs.WindowHeight
	}
	if prefs != nil && prefs.DoorWidth > 0 && prefs.DoorHeight > 0 {
		v.doorCfg = door.Config{Width: prefs.DoorWidth, Height: prefs.DoorHeight}
	}

	if err := v.renderer.Open(v.cfg.Title, width, height); err != nil {
		return fmt.Errorf("open renderer: %w", err)
	}
	v.opened = true
	v.viewW, v.viewH = width, height

	v.camera = engine.NewOrbitCamera()
	v.camera.SetAspect(width, height)
	if prefs != nil && prefs.CameraRadius > 0 {
		v.camera.Azimuth = prefs.CameraAzimuth
		v.camera.Elevation = prefs.CameraElevation
		v.camera.Radius = prefs.CameraRadius
	}

	// Start all three loads before waiting on any of them
	woodPending := v.cache.Get(v.cfg.WoodTexture)
	marblePending := v.cache.Get(v.cfg.MarbleTexture)
	wallPending := v.cache.Get(v.cfg.WallTexture)

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	wood, err := woodPending.Wait(ctx)
	if err != nil {
		return err
	}
	marble, err := marblePending.Wait(ctx)
	if err != nil {
		return err
	}
	wall, err := wallPending.Wait(ctx)
	if err != nil {
		return err
	}

	scene := engine.NewScene(v.cfg.Title)
	room := world.NewRoom(marble, wall)
	scene.Attach(room.Root)

	doorNode, err := door.Build(v.doorCfg, wood)
	if err != nil {
		return err
	}
	scene.Attach(doorNode)

	v.capture = v.renderer.CreateCapture(v.cfg.CaptureSize)
	v.env = world.NewEnvironmentUpdater(room.Probe, v.capture)

	v.scene = scene
	v.room = room
	v.door = doorNode
	v.wood = wood
	v.uiWidth, v.uiHeight = v.doorCfg.Width, v.doorCfg.Height

	v.subID = v.ConfigChanged.Subscribe(v.OnConfigChanged)

	if w, err := assets.WatchDir(v.cfg.AssetDir); err == nil {
		v.watcher = w
	} else {
		slog.Warn("texture hot reload disabled", "dir", v.cfg.AssetDir, "err", err)
	}

	v.state = StateReady
	return nil
}

// Run ticks until the window closes, then tears down.
func (v *Viewer) Run() {
	for v.state == StateReady && !v.renderer.ShouldClose() {
		v.Tick()
	}
	v.Dispose()
}

// Tick is one frame: poll input, apply it, refresh the environment capture,
// draw. It never blocks.
func (v *Viewer) Tick() {
	if v.state != StateReady {
		return
	}

	updateStart := time.Now()
	in := v.renderer.Poll()

	if in.Resized {
		v.OnResize(in.Width, in.Height)
	}
	if in.Orbiting {
		v.camera.Orbit(-in.MouseDX*orbitSpeed, in.MouseDY*orbitSpeed)
	}
	if in.Wheel != 0 {
		v.camera.Zoom(in.Wheel * zoomSpeed)
	}
	if in.FrameKey {
		v.camera.Frame(v.door.Bounds())
	}
	if in.UndoKey {
		v.undo()
	}
	if in.ResetKey {
		v.applyConfig(door.DefaultConfig())
	}
	if in.SavePresetKey {
		v.savePreset()
	}
	if in.Preset > 0 {
		v.applyPreset(in.Preset)
	}
	if in.ScreenshotKey {
		name := fmt.Sprintf("doorlab_%s.png", time.Now().Format("20060102_150405"))
		v.renderer.Screenshot(name)
		v.toastf("Saved %s", name)
	}

	v.drainReloads()
	v.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0

	captureStart := time.Now()
	v.env.Step(v.scene)
	v.captureMs = float64(time.Since(captureStart).Microseconds()) / 1000.0

	drawStart := time.Now()
	v.renderer.Render(v.scene, v.camera, v.drawPanel)
	v.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0
}

// OnConfigChanged swaps the door for a freshly built one. The replacement is
// built first; if the build fails the previous door stays attached. Exactly
// one detach and one attach happen per successful call, so the scene holds
// exactly one door at all times.
func (v *Viewer) OnConfigChanged(cfg door.Config) {
	if v.state != StateReady {
		return
	}

	replacement, err := door.Build(cfg, v.wood)
	if err != nil {
		v.toastf("Invalid door size: %v", err)
		return
	}

	old := v.door
	v.scene.Detach(old)
	v.renderer.Free(old)
	v.scene.Attach(replacement)
	v.door = replacement
	v.doorCfg = cfg
}

// OnResize adapts the camera aspect and the render target size. Nothing
// else changes.
func (v *Viewer) OnResize(width, height int) {
	if v.state != StateReady {
		return
	}
	v.camera.SetAspect(width, height)
	v.renderer.SetSize(width, height)
	v.viewW, v.viewH = width, height
}

// Dispose tears everything down. Safe in any state, including after a
// failed Init, and idempotent; every step is independently guarded so one
// missing piece does not skip the rest.
func (v *Viewer) Dispose() {
	if v.state == StateDisposed {
		return
	}
	wasReady := v.state == StateReady
	v.state = StateDisposed

	if v.subID != 0 {
		v.ConfigChanged.Unsubscribe(v.subID)
		v.subID = 0
	}
	if v.watcher != nil {
		v.watcher.Close()
		v.watcher = nil
	}
	if wasReady {
		v.savePrefs()
	}
	if v.cache != nil {
		v.cache.Dispose()
	}
	if v.opened {
		v.renderer.Close()
		v.opened = false
	}
}

// applyConfig routes a config change through the same observer path the UI
// uses, recording the old config for undo.
func (v *Viewer) applyConfig(cfg door.Config) {
	if cfg == v.doorCfg {
		return
	}
	v.pushUndo(v.doorCfg)
	v.ConfigChanged.Invoke(cfg)
	v.uiWidth, v.uiHeight = v.doorCfg.Width, v.doorCfg.Height
}

// drainReloads applies pending texture hot reloads on the main thread.
func (v *Viewer) drainReloads() {
	if v.watcher == nil {
		return
	}
	for {
		select {
		case path := <-v.watcher.Changed:
			if err := v.cache.Reload(path); err != nil {
				slog.Warn("texture reload failed", "path", path, "err", err)
			} else {
				v.toastf("Reloaded %s", path)
			}
		default:
			return
		}
	}
}

func (v *Viewer) toastf(format string, args ...any) {
	v.toast = fmt.Sprintf(format, args...)
	v.toastAt = time.Now()
}
