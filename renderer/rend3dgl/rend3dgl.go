package rend3dgl

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/scp087/buffers"
	"github.com/bloeys/scp087/materials"
	"github.com/bloeys/scp087/meshes"
	"github.com/bloeys/scp087/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ renderer.Render = &Rend3DGL{}

type Rend3DGL struct {
	BoundVaoId uint32
	BoundMatId uint32

	drawCalls     int
	lastDrawCalls int
}

// bind skips rebinding the vao and material when they are already bound
func (r *Rend3DGL) bind(vao *buffers.VertexArray, mat *materials.Material) {

	if vao.Id != r.BoundVaoId {
		vao.Bind()
		r.BoundVaoId = vao.Id
	}

	if mat.Id != r.BoundMatId {
		mat.Bind()
		r.BoundMatId = mat.Id
	}
}

func (r *Rend3DGL) DrawMesh(mesh *meshes.Mesh, modelMat *gglm.TrMat, mat *materials.Material) {

	r.bind(&mesh.Vao, mat)

	if mat.Settings.Has(materials.MaterialSettings_HasModelMtx) {
		mat.SetUnifMat4("modelMat", &modelMat.Mat4)
	}

	noDepthWrite := mat.Settings.Has(materials.MaterialSettings_NoDepthWrite)
	if noDepthWrite {
		gl.DepthMask(false)
	}

	for i := 0; i < len(mesh.SubMeshes); i++ {
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, mesh.SubMeshes[i].IndexCount, gl.UNSIGNED_INT, uintptr(mesh.SubMeshes[i].BaseIndex*4), mesh.SubMeshes[i].BaseVertex)
		r.drawCalls++
	}

	if noDepthWrite {
		gl.DepthMask(true)
	}
}

func (r *Rend3DGL) DrawVertexArray(mat *materials.Material, vao *buffers.VertexArray, firstElement int32, elementCount int32) {

	r.bind(vao, mat)

	gl.DrawArrays(gl.TRIANGLES, firstElement, elementCount)
	r.drawCalls++
}

// InvalidateBindings forgets the cached vao and material, for when other code bound its own
func (r *Rend3DGL) InvalidateBindings() {
	r.BoundVaoId = 0
	r.BoundMatId = 0
}

// DrawCalls returns the count of the last finished frame while drawing a new one, so a HUD drawn mid frame shows complete numbers
func (r *Rend3DGL) DrawCalls() int {
	return r.lastDrawCalls
}

func (r *Rend3DGL) FrameEnd() {
	r.InvalidateBindings()
	r.lastDrawCalls = r.drawCalls
	r.drawCalls = 0
}

func NewRend3DGL() *Rend3DGL {
	return &Rend3DGL{}
}
