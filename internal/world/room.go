// Package world builds the static room around the door and keeps the
// reflective probe's environment capture fresh.
package world

import (
	"doorlab/internal/assets"
	"doorlab/internal/engine"
)

const (
	FloorSize = 12.0
	FloorY    = -2.0 // the door group is offset so its bottom lands here

	WallHeight = 6.0
	WallDepth  = 0.2

	ProbeRadius = 0.8
)

// Room is the static scenery: floor, back wall, a marble column, lights and
// the chrome probe sphere whose material samples the environment capture.
type Room struct {
	Root  *engine.Node
	Probe *engine.Node
}

func NewRoom(marble, wall *assets.Texture) *Room {
	root := engine.NewNode("Room")

	floorMat := &engine.Material{
		Name:    "floor-marble",
		Color:   engine.White,
		Texture: marble,
		Tiling:  0.25,
	}
	floor := engine.NewSolid("Floor",
		engine.NewPlane(FloorSize, FloorSize, engine.Vector2{X: FloorSize, Y: FloorSize}),
		floorMat)
	floor.Transform.Position = engine.Vector3{Y: FloorY}
	root.Add(floor)

	wallMat := &engine.Material{
		Name:    "back-wall",
		Color:   engine.White,
		Texture: wall,
		Tiling:  0.4,
	}
	back := engine.NewSolid("BackWall",
		engine.NewBox(engine.Vector3{X: FloorSize, Y: WallHeight, Z: WallDepth},
			engine.Vector2{X: FloorSize, Y: WallHeight}),
		wallMat)
	back.Transform.Position = engine.Vector3{Y: FloorY + WallHeight/2, Z: -FloorSize / 4}
	root.Add(back)

	columnMat := &engine.Material{
		Name:    "column-marble",
		Color:   engine.LightGray,
		Texture: marble,
		Tiling:  1,
	}
	column := engine.NewSolid("Column", engine.NewCylinder(0.4, 3, 24), columnMat)
	column.Transform.Position = engine.Vector3{X: -2.5, Y: FloorY + 1.5, Z: -1.2}
	root.Add(column)

	probe := engine.NewSolid("Probe",
		engine.NewSphere(ProbeRadius, 24, 32),
		&engine.Material{Name: "chrome", Color: engine.White, Reflective: true})
	probe.Transform.Position = engine.Vector3{X: 2.2, Y: FloorY + ProbeRadius, Z: 1.2}
	root.Add(probe)

	root.Add(engine.NewLightNode("Ambient",
		engine.NewAmbientLight(engine.White, 0.25)))

	sun := engine.NewLightNode("Sun",
		engine.NewDirectionalLight(engine.Vector3{X: 0.35, Y: -1, Z: -0.35}, engine.White, 1))
	root.Add(sun)

	return &Room{Root: root, Probe: probe}
}
