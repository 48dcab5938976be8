package door

import (
	"errors"
	"testing"

	"doorlab/internal/assets"
	"doorlab/internal/engine"
)

func testWood() *assets.Texture {
	return &assets.Texture{Name: "wood.png"}
}

func findChild(group *engine.Node, name string) *engine.Node {
	for _, c := range group.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestBuildRejectsNonPositiveDimensions(t *testing.T) {
	cases := []Config{
		{Width: 0, Height: 4},
		{Width: 2, Height: 0},
		{Width: -1, Height: 4},
		{Width: 2, Height: -3},
	}
	for _, cfg := range cases {
		_, err := Build(cfg, testWood())
		if err == nil {
			t.Errorf("Expected error for %gx%g", cfg.Width, cfg.Height)
			continue
		}
		var dimErr *DimensionError
		if !errors.As(err, &dimErr) {
			t.Errorf("Expected *DimensionError, got %T", err)
		}
	}
}

func TestBuildPanelSize(t *testing.T) {
	group, err := Build(Config{Width: 2, Height: 4}, testWood())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	panel := findChild(group, "DoorPanel")
	if panel == nil {
		t.Fatal("No panel in door group")
	}

	size := panel.Mesh.Bounds().Size()
	if !near(size.X, 1.8) || !near(size.Y, 3.8) {
		t.Errorf("Expected panel 1.8x3.8, got %gx%g", size.X, size.Y)
	}
}

func TestBuildPanelUVScalingLaw(t *testing.T) {
	group, err := Build(Config{Width: 2, Height: 4}, testWood())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	panel := findChild(group, "DoorPanel")

	// Emitted UV extent must equal (width-2F) x (height-2F)
	maxU, maxV := uvExtent(panel.Mesh)
	if !near(maxU, 1.8) || !near(maxV, 3.8) {
		t.Errorf("Expected UV extent 1.8x3.8, got %gx%g", maxU, maxV)
	}

	// Growing the width (height fixed) grows only the U extent, following
	// the same width-2F law
	wide, err := Build(Config{Width: 4, Height: 4}, testWood())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	wideU, wideV := uvExtent(findChild(wide, "DoorPanel").Mesh)
	if !near(wideU, 3.8) {
		t.Errorf("Expected U extent 3.8 for width 4, got %g", wideU)
	}
	if !near(wideV, maxV) {
		t.Errorf("V extent should not change with width: %g vs %g", wideV, maxV)
	}
}

func TestBuildFrameSegments(t *testing.T) {
	w, h := float32(3), float32(5)
	group, err := Build(Config{Width: w, Height: h}, testWood())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	const f = float32(FrameThickness)
	cases := []struct {
		name string
		pos  engine.Vector3
		size engine.Vector2 // X/Y extents of the segment
	}{
		{"DoorFrameTop", engine.Vector3{Y: h/2 - f/2}, engine.Vector2{X: w, Y: f}},
		{"DoorFrameBottom", engine.Vector3{Y: -(h/2 - f/2)}, engine.Vector2{X: w, Y: f}},
		{"DoorFrameLeft", engine.Vector3{X: -(w/2 - f/2)}, engine.Vector2{X: f, Y: h}},
		{"DoorFrameRight", engine.Vector3{X: w/2 - f/2}, engine.Vector2{X: f, Y: h}},
	}

	for _, tc := range cases {
		seg := findChild(group, tc.name)
		if seg == nil {
			t.Errorf("Missing %s", tc.name)
			continue
		}
		if !near(seg.Transform.Position.X, tc.pos.X) || !near(seg.Transform.Position.Y, tc.pos.Y) {
			t.Errorf("%s at (%g, %g), expected (%g, %g)", tc.name,
				seg.Transform.Position.X, seg.Transform.Position.Y, tc.pos.X, tc.pos.Y)
		}
		size := seg.Mesh.Bounds().Size()
		if !near(size.X, tc.size.X) || !near(size.Y, tc.size.Y) {
			t.Errorf("%s size (%g, %g), expected (%g, %g)", tc.name, size.X, size.Y, tc.size.X, tc.size.Y)
		}
	}
}

func TestBuildHandlePlacement(t *testing.T) {
	group, err := Build(Config{Width: 2, Height: 4}, testWood())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	handle := findChild(group, "DoorHandle")
	if handle == nil {
		t.Fatal("No handle in door group")
	}
	if !near(handle.Transform.Position.X, 2.0/2-FrameThickness-0.1) {
		t.Errorf("Handle X = %g, expected %g", handle.Transform.Position.X, 2.0/2-FrameThickness-0.1)
	}
	if handle.Transform.Position.Z <= 0 {
		t.Error("Handle should sit in front of the panel plane")
	}
	if !near(handle.Transform.Rotation.Z, 90) {
		t.Errorf("Handle rotation Z = %g, expected 90", handle.Transform.Rotation.Z)
	}
}

func TestBuildGroupRestsOnFloorReference(t *testing.T) {
	for _, h := range []float32{2, 4, 7.5} {
		group, err := Build(Config{Width: 2, Height: h}, testWood())
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		if !near(group.Transform.Position.Y, h/2-2) {
			t.Errorf("Height %g: group Y = %g, expected %g", h, group.Transform.Position.Y, h/2-2)
		}
	}
}

func TestBuildIsPure(t *testing.T) {
	wood := testWood()
	if _, err := Build(Config{Width: 2, Height: 4}, wood); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if wood.Gen != 0 || wood.Image != nil {
		t.Error("Build must not mutate the texture handle")
	}
}

func uvExtent(m *engine.Mesh) (maxU, maxV float32) {
	for _, v := range m.Vertices {
		if v.UV.X > maxU {
			maxU = v.UV.X
		}
		if v.UV.Y > maxV {
			maxV = v.UV.Y
		}
	}
	return maxU, maxV
}

func near(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}
