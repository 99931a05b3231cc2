package meshes

import (
	"errors"
	"fmt"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/scp087/assert"
	"github.com/bloeys/scp087/buffers"
)

type SubMesh struct {
	BaseVertex int32
	BaseIndex  uint32
	IndexCount int32
}

type Mesh struct {
	Name string
	/*
		Vao has the following shader attribute layout:
			- Loc0: Pos
			- Loc1: Normal
			- Loc2: UV0
	*/
	Vao       buffers.VertexArray
	SubMeshes []SubMesh
}

func (m *Mesh) Delete() {
	m.Vao.Delete()
	m.SubMeshes = nil
}

// vertexLayout is shared by loaded and generated meshes so one shader fits both
func vertexLayout() []buffers.Element {
	return []buffers.Element{
		{ElementType: buffers.DataTypeVec3}, // Position
		{ElementType: buffers.DataTypeVec3}, // Normal
		{ElementType: buffers.DataTypeVec2}, // UV0
	}
}

// floatsPerVertex matches vertexLayout
const floatsPerVertex = 3 + 3 + 2

var (
	// DefaultMeshLoadFlags are the flags always applied when loading a new mesh regardless
	// of what post process flags are used when loading a mesh.
	DefaultMeshLoadFlags asig.PostProcess = asig.PostProcessTriangulate
)

// NewMesh imports a model file with assimp. Every mesh in the file becomes a submesh sharing one vao.
func NewMesh(name, modelPath string, postProcessFlags asig.PostProcess) (Mesh, error) {

	scene, release, err := asig.ImportFile(modelPath, DefaultMeshLoadFlags|postProcessFlags)
	if err != nil {
		return Mesh{}, fmt.Errorf("failed to load model %s: %w", modelPath, err)
	}
	defer release()

	if len(scene.Meshes) == 0 {
		return Mesh{}, errors.New("no meshes found in file: " + modelPath)
	}

	var geom geometry
	subMeshes := make([]SubMesh, 0, len(scene.Meshes))

	for i := 0; i < len(scene.Meshes); i++ {

		sceneMesh := scene.Meshes[i]

		subMeshes = append(subMeshes, SubMesh{
			// Index buffer values are relative to this vertex
			BaseVertex: int32(geom.vertexCount()),
			BaseIndex:  uint32(len(geom.indices)),
		})

		for v := 0; v < len(sceneMesh.Vertices); v++ {

			var normal, uv gglm.Vec3
			if v < len(sceneMesh.Normals) {
				normal = sceneMesh.Normals[v]
			}

			if v < len(sceneMesh.TexCoords[0]) {
				uv = sceneMesh.TexCoords[0][v]
			}

			geom.addVertex(sceneMesh.Vertices[v].Data, normal.Data, [2]float32{uv.X(), uv.Y()})
		}

		for f := 0; f < len(sceneMesh.Faces); f++ {

			face := &sceneMesh.Faces[f]
			assert.T(len(face.Indices) == 3, "Face %d of mesh %d in %s doesn't have 3 indices. Index count: %d", f, i, modelPath, len(face.Indices))
			geom.indices = append(geom.indices, uint32(face.Indices[0]), uint32(face.Indices[1]), uint32(face.Indices[2]))
		}

		subMeshes[i].IndexCount = int32(len(geom.indices)) - int32(subMeshes[i].BaseIndex)
	}

	mesh := uploadGeometry(name, &geom)
	mesh.SubMeshes = subMeshes
	return mesh, nil
}

// NewCubeMesh generates a box of the given size centered on the origin, with uvs spanning each face
func NewCubeMesh(name string, width, height, depth float32) Mesh {
	geom := cubeGeometry(width, height, depth)
	return uploadGeometry(name, &geom)
}

// NewQuadMesh generates a quad on the xy plane facing +z, centered on the origin
func NewQuadMesh(name string, width, height float32) Mesh {
	geom := quadGeometry(width, height)
	return uploadGeometry(name, &geom)
}

func uploadGeometry(name string, geom *geometry) Mesh {

	mesh := Mesh{
		Name: name,
		Vao:  buffers.NewVertexArray(),
		SubMeshes: []SubMesh{
			{IndexCount: int32(len(geom.indices))},
		},
	}

	vbo := buffers.NewVertexBuffer(vertexLayout()...)
	vbo.SetData(geom.vertices, buffers.BufUsage_Static_Draw)

	ibo := buffers.NewIndexBuffer()
	ibo.SetData(geom.indices)

	mesh.Vao.AddVertexBuffer(vbo)
	mesh.Vao.SetIndexBuffer(ibo)

	// This is needed so that if you load meshes one after the other the
	// following mesh doesn't attach its vbo/ibo to this vao
	mesh.Vao.UnBind()

	return mesh
}
