package viewer

import (
	"errors"
	"image"
	"testing"

	"doorlab/internal/assets"
	"doorlab/internal/door"
	"doorlab/internal/engine"
	"doorlab/internal/render"
)

// --- Fakes ---

type stubLoader struct {
	fail map[string]bool
}

func (l stubLoader) Load(path string) (*image.RGBA, error) {
	if l.fail[path] {
		return nil, errors.New("missing")
	}
	return image.NewRGBA(image.Rect(0, 0, 2, 2)), nil
}

type fakeCapture struct {
	pos       engine.Vector3
	refreshes int
}

func (c *fakeCapture) SetPosition(pos engine.Vector3) { c.pos = pos }
func (c *fakeCapture) Refresh(scene *engine.Scene)    { c.refreshes++ }
func (c *fakeCapture) Preview(x, y, height int32)     {}

type fakeRenderer struct {
	opened      bool
	closes      int
	width       int
	height      int
	renders     int
	freed       []*engine.Node
	input       render.InputState
	shouldClose bool
	openErr     error
	capture     *fakeCapture
	screenshots []string
}

func (r *fakeRenderer) Open(title string, width, height int) error {
	if r.openErr != nil {
		return r.openErr
	}
	r.opened = true
	r.width, r.height = width, height
	return nil
}

func (r *fakeRenderer) SetSize(width, height int) {
	r.width, r.height = width, height
}

func (r *fakeRenderer) Poll() render.InputState {
	in := r.input
	r.input = render.InputState{}
	return in
}

func (r *fakeRenderer) Render(scene *engine.Scene, cam *engine.Camera, overlay func()) {
	// overlay draws raygui widgets, which need a real window; skip it
	r.renders++
}

func (r *fakeRenderer) CreateCapture(size int) render.EnvCapture {
	r.capture = &fakeCapture{}
	return r.capture
}

func (r *fakeRenderer) Free(node *engine.Node) {
	r.freed = append(r.freed, node)
}

func (r *fakeRenderer) Screenshot(path string) {
	r.screenshots = append(r.screenshots, path)
}

func (r *fakeRenderer) ShouldClose() bool { return r.shouldClose }

func (r *fakeRenderer) Close() { r.closes++ }

func newTestViewer(t *testing.T) (*Viewer, *fakeRenderer) {
	t.Helper()
	t.Chdir(t.TempDir()) // keep prefs/preset files out of the source tree

	cfg := DefaultAppConfig()
	cfg.AssetDir = t.TempDir()
	r := &fakeRenderer{}
	return New(cfg, r, stubLoader{}), r
}

func panelSize(t *testing.T, doorNode *engine.Node) (float32, float32) {
	t.Helper()
	panel := doorNode.FindByName("DoorPanel")
	if panel == nil {
		t.Fatal("Door has no panel")
	}
	size := panel.Mesh.Bounds().Size()
	return size.X, size.Y
}

// --- Tests ---

func TestInitEndToEnd(t *testing.T) {
	v, r := newTestViewer(t)

	if err := v.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if v.state != StateReady {
		t.Errorf("Expected StateReady, got %d", v.state)
	}
	if !r.opened {
		t.Error("Renderer was not opened")
	}
	if v.cache.Len() != 3 {
		t.Errorf("Expected 3 cached textures, got %d", v.cache.Len())
	}
	if got := v.scene.CountByName("Door"); got != 1 {
		t.Errorf("Expected exactly 1 door attached, got %d", got)
	}

	w, h := panelSize(t, v.door)
	if !near(w, 1.8) || !near(h, 3.8) {
		t.Errorf("Expected panel 1.8x3.8 for default 2x4 door, got %gx%g", w, h)
	}
}

func TestConfigChangeSwapsDoor(t *testing.T) {
	v, r := newTestViewer(t)
	if err := v.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	old := v.door

	v.ConfigChanged.Invoke(door.Config{Width: 3, Height: 5})

	if v.door == old {
		t.Error("Door was not replaced")
	}
	if got := v.scene.CountByName("Door"); got != 1 {
		t.Errorf("Expected exactly 1 door after rebuild, got %d", got)
	}
	if len(r.freed) != 1 || r.freed[0] != old {
		t.Error("Old door's GPU resources were not freed")
	}
	w, h := panelSize(t, v.door)
	if !near(w, 2.8) || !near(h, 4.8) {
		t.Errorf("Expected panel 2.8x4.8, got %gx%g", w, h)
	}
}

func TestExactlyOneDoorAcrossManyRebuilds(t *testing.T) {
	v, _ := newTestViewer(t)
	if err := v.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	configs := []door.Config{
		{Width: 1, Height: 2}, {Width: 5, Height: 8}, {Width: 2.5, Height: 4.5},
		{Width: 1.1, Height: 7.9}, {Width: 3.3, Height: 3.3},
	}
	for _, cfg := range configs {
		if got := v.scene.CountByName("Door"); got != 1 {
			t.Fatalf("Before applying %v: %d doors attached", cfg, got)
		}
		v.ConfigChanged.Invoke(cfg)
		if got := v.scene.CountByName("Door"); got != 1 {
			t.Fatalf("After applying %v: %d doors attached", cfg, got)
		}
		if v.doorCfg != cfg {
			t.Errorf("Config not applied: %v", cfg)
		}
	}
}

func TestInvalidConfigKeepsPreviousDoor(t *testing.T) {
	v, r := newTestViewer(t)
	if err := v.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	old := v.door
	oldCfg := v.doorCfg

	v.ConfigChanged.Invoke(door.Config{Width: -1, Height: 5})

	if v.door != old {
		t.Error("Previous door must survive a failed rebuild")
	}
	if v.doorCfg != oldCfg {
		t.Error("Config must not change on a failed rebuild")
	}
	if got := v.scene.CountByName("Door"); got != 1 {
		t.Errorf("Expected 1 door, got %d", got)
	}
	if len(r.freed) != 0 {
		t.Error("Nothing should be freed on a failed rebuild")
	}
}

func TestInitTextureFailureAbortsEntirely(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg := DefaultAppConfig()
	cfg.AssetDir = t.TempDir()
	r := &fakeRenderer{}
	v := New(cfg, r, stubLoader{fail: map[string]bool{"marble.png": true}})

	err := v.Init()
	if err == nil {
		t.Fatal("Expected Init to fail")
	}
	var loadErr *assets.LoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("Expected *assets.LoadError, got %T", err)
	}
	if v.scene != nil {
		t.Error("No partial scene may be left behind")
	}

	// Dispose after a failed init must be safe
	v.Dispose()
	if r.closes != 1 {
		t.Errorf("Expected renderer closed once, got %d", r.closes)
	}
}

func TestTickRefreshesCaptureAndRenders(t *testing.T) {
	v, r := newTestViewer(t)
	if err := v.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	for i := 1; i <= 3; i++ {
		v.Tick()
		if r.capture.refreshes != i {
			t.Errorf("Tick %d: expected %d capture refreshes, got %d", i, i, r.capture.refreshes)
		}
		if r.renders != i {
			t.Errorf("Tick %d: expected %d renders, got %d", i, i, r.renders)
		}
	}

	if r.capture.pos != v.room.Probe.WorldPosition() {
		t.Error("Capture not positioned at the probe")
	}
	if !v.room.Probe.Visible {
		t.Error("Probe must be visible after a tick")
	}
}

func TestOnResizeUpdatesCameraAndRenderer(t *testing.T) {
	v, r := newTestViewer(t)
	if err := v.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	v.OnResize(800, 400)

	if v.camera.Aspect != 2 {
		t.Errorf("Expected aspect 2, got %g", v.camera.Aspect)
	}
	if r.width != 800 || r.height != 400 {
		t.Errorf("Renderer size not updated: %dx%d", r.width, r.height)
	}
}

func TestDisposeStopsLoopAndIsIdempotent(t *testing.T) {
	v, r := newTestViewer(t)
	if err := v.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	v.Tick()
	rendersBefore := r.renders

	v.Dispose()

	if v.state != StateDisposed {
		t.Errorf("Expected StateDisposed, got %d", v.state)
	}
	if v.cache.Len() != 0 {
		t.Error("Texture cache not emptied on dispose")
	}
	if v.ConfigChanged.ListenerCount() != 0 {
		t.Error("Config listener not unsubscribed")
	}
	if r.closes != 1 {
		t.Errorf("Expected 1 renderer close, got %d", r.closes)
	}

	// No further frames after dispose
	v.Tick()
	if r.renders != rendersBefore {
		t.Error("Tick after dispose still rendered")
	}

	// Second dispose: same end state, no duplicate side effects
	v.Dispose()
	if r.closes != 1 {
		t.Errorf("Second dispose closed the renderer again (%d closes)", r.closes)
	}
}

func TestDisposeBeforeInitIsSafe(t *testing.T) {
	v, r := newTestViewer(t)

	v.Dispose() // must not panic

	if v.state != StateDisposed {
		t.Errorf("Expected StateDisposed, got %d", v.state)
	}
	if r.closes != 0 {
		t.Error("Renderer was never opened, nothing to close")
	}
	if err := v.Init(); err == nil {
		t.Error("Init after Dispose should fail")
	}
}

func TestUndoRevertsLastEdit(t *testing.T) {
	v, _ := newTestViewer(t)
	if err := v.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	start := v.doorCfg

	v.applyConfig(door.Config{Width: 3, Height: 5})
	v.applyConfig(door.Config{Width: 4, Height: 6})

	v.undo()
	if (v.doorCfg != door.Config{Width: 3, Height: 5}) {
		t.Errorf("Expected undo to 3x5, got %v", v.doorCfg)
	}
	v.undo()
	if v.doorCfg != start {
		t.Errorf("Expected undo to %v, got %v", start, v.doorCfg)
	}
	v.undo() // empty stack is a no-op
	if v.doorCfg != start {
		t.Error("Undo on empty stack changed the config")
	}
}

func TestPresetsRoundTrip(t *testing.T) {
	v, _ := newTestViewer(t)
	if err := v.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	v.applyConfig(door.Config{Width: 3, Height: 5})
	v.savePreset()
	v.applyConfig(door.Config{Width: 2, Height: 4})

	v.applyPreset(1)
	if (v.doorCfg != door.Config{Width: 3, Height: 5}) {
		t.Errorf("Expected preset 3x5, got %v", v.doorCfg)
	}

	v.applyPreset(7) // unset slot is a no-op
	if (v.doorCfg != door.Config{Width: 3, Height: 5}) {
		t.Error("Applying an unset preset changed the config")
	}
}

func TestPrefsRoundTrip(t *testing.T) {
	v, _ := newTestViewer(t)
	if err := v.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	v.applyConfig(door.Config{Width: 3.5, Height: 6})
	v.camera.Orbit(0.3, 0.1)
	v.Dispose()

	prefs := LoadPrefs()
	if prefs == nil {
		t.Fatal("No prefs written on dispose")
	}
	if prefs.DoorWidth != 3.5 || prefs.DoorHeight != 6 {
		t.Errorf("Door config not persisted: %gx%g", prefs.DoorWidth, prefs.DoorHeight)
	}
	if prefs.CameraRadius <= 0 {
		t.Error("Camera state not persisted")
	}
}

func near(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}
