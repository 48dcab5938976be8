package rgl

import (
	"doorlab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// gpuModel keeps the uploaded model together with the Go slices backing its
// buffers, so the GC does not collect them while raylib holds the pointers.
type gpuModel struct {
	model     rl.Model
	vertices  []float32
	normals   []float32
	texcoords []float32
	indices   []uint16
}

type meshRegistry struct {
	models map[*engine.Mesh]*gpuModel
}

func newMeshRegistry() *meshRegistry {
	return &meshRegistry{models: make(map[*engine.Mesh]*gpuModel)}
}

// get returns the uploaded model for a mesh, uploading it on first use.
func (r *meshRegistry) get(mesh *engine.Mesh) *gpuModel {
	if m, ok := r.models[mesh]; ok {
		return m
	}
	m := uploadMesh(mesh)
	r.models[mesh] = m
	return m
}

func (r *meshRegistry) free(mesh *engine.Mesh) {
	if m, ok := r.models[mesh]; ok {
		rl.UnloadModel(m.model)
		delete(r.models, mesh)
	}
}

func (r *meshRegistry) freeAll() {
	for mesh, m := range r.models {
		rl.UnloadModel(m.model)
		delete(r.models, mesh)
	}
}

func uploadMesh(src *engine.Mesh) *gpuModel {
	g := &gpuModel{
		vertices:  make([]float32, 0, len(src.Vertices)*3),
		normals:   make([]float32, 0, len(src.Vertices)*3),
		texcoords: make([]float32, 0, len(src.Vertices)*2),
		indices:   append([]uint16(nil), src.Indices...),
	}
	for _, v := range src.Vertices {
		g.vertices = append(g.vertices, v.Position.X, v.Position.Y, v.Position.Z)
		g.normals = append(g.normals, v.Normal.X, v.Normal.Y, v.Normal.Z)
		g.texcoords = append(g.texcoords, v.UV.X, v.UV.Y)
	}

	var mesh rl.Mesh
	mesh.VertexCount = int32(len(src.Vertices))
	mesh.TriangleCount = int32(len(src.Indices) / 3)
	mesh.Vertices = &g.vertices[0]
	mesh.Normals = &g.normals[0]
	mesh.Texcoords = &g.texcoords[0]
	mesh.Indices = &g.indices[0]

	rl.UploadMesh(&mesh, false)
	g.model = rl.LoadModelFromMesh(mesh)
	return g
}
