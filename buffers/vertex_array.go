package buffers

import (
	"github.com/bloeys/scp087/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type VertexArray struct {
	Id          uint32
	Vbos        []VertexBuffer
	IndexBuffer IndexBuffer
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.Id)
}

func (va *VertexArray) UnBind() {
	gl.BindVertexArray(0)
}

// AddVertexBuffer attaches the vbo and enables one attribute location per layout element.
// Locations continue after those of previously added vbos.
func (va *VertexArray) AddVertexBuffer(vbo VertexBuffer) {

	firstLoc := 0
	for i := 0; i < len(va.Vbos); i++ {
		firstLoc += len(va.Vbos[i].layout)
	}

	// VBOs are only captured by the vao at 'VertexAttribPointer' calls
	va.Bind()
	vbo.Bind()

	for i := 0; i < len(vbo.layout); i++ {

		l := &vbo.layout[i]
		loc := uint32(firstLoc + i)

		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, l.ElementType.CompCount(), l.ElementType.GLType(), false, vbo.Stride, uintptr(l.Offset))
	}

	va.Vbos = append(va.Vbos, vbo)
}

func (va *VertexArray) SetIndexBuffer(ib IndexBuffer) {
	va.Bind()
	ib.Bind()
	va.IndexBuffer = ib
}

// Delete frees the vao along with its buffers
func (va *VertexArray) Delete() {

	for i := 0; i < len(va.Vbos); i++ {
		va.Vbos[i].Delete()
	}

	if va.IndexBuffer.Id != 0 {
		va.IndexBuffer.Delete()
	}

	gl.DeleteVertexArrays(1, &va.Id)
	va.Id = 0
}

func NewVertexArray() VertexArray {

	vao := VertexArray{}

	gl.GenVertexArrays(1, &vao.Id)
	if vao.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL vertex array object")
	}

	return vao
}
