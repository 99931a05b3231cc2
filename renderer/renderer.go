package renderer

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/scp087/buffers"
	"github.com/bloeys/scp087/materials"
	"github.com/bloeys/scp087/meshes"
)

type Render interface {
	DrawMesh(mesh *meshes.Mesh, trMat *gglm.TrMat, mat *materials.Material)
	DrawVertexArray(mat *materials.Material, vao *buffers.VertexArray, firstElement int32, count int32)
	// DrawCalls is how many draw calls were issued since the last FrameEnd
	DrawCalls() int
	FrameEnd()
}
