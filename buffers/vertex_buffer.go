package buffers

import (
	"github.com/bloeys/scp087/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type VertexBuffer struct {
	Id     uint32
	Stride int32
	layout []Element
}

func (vb *VertexBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.Id)
}

func (vb *VertexBuffer) UnBind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (vb *VertexBuffer) SetData(values []float32, usage BufUsage) {

	vb.Bind()

	if len(values) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, usage.ToGL())
		return
	}

	gl.BufferData(gl.ARRAY_BUFFER, len(values)*4, gl.Ptr(&values[0]), usage.ToGL())
}

// GetLayout returns a copy of the vertex layout
func (vb *VertexBuffer) GetLayout() []Element {
	e := make([]Element, len(vb.layout))
	copy(e, vb.layout)
	return e
}

// SetLayout sets the elements of one vertex and computes their offsets and the stride
func (vb *VertexBuffer) SetLayout(layout ...Element) {
	vb.layout = layout
	vb.Stride = computeLayout(vb.layout)
}

// computeLayout packs elements one after the other and returns the size of one vertex
func computeLayout(layout []Element) (stride int32) {

	for i := 0; i < len(layout); i++ {
		layout[i].Offset = int(stride)
		stride += layout[i].Size()
	}

	return stride
}

func (vb *VertexBuffer) Delete() {
	gl.DeleteBuffers(1, &vb.Id)
	vb.Id = 0
}

func NewVertexBuffer(layout ...Element) VertexBuffer {

	vb := VertexBuffer{}

	gl.GenBuffers(1, &vb.Id)
	if vb.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL vertex buffer")
	}

	vb.SetLayout(layout...)
	return vb
}
