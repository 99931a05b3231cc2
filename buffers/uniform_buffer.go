package buffers

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/scp087/assert"
	"github.com/bloeys/scp087/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type UniformBufferFieldInput struct {
	Id   uint16
	Type ElementType
	// Count should be set in case this field is an array of type `[Count]Type`.
	// Count=0 is valid and is equivalent to Count=1, which means the type is NOT an array, but a single field.
	Count uint16
}

type UniformBufferField struct {
	Id            uint16
	AlignedOffset uint16
	Count         uint16
	Type          ElementType
}

// UniformBuffer is a std140 uniform block shared by every material bound to the same bind point
type UniformBuffer struct {
	Id uint32
	// Size is the allocated memory in bytes on the GPU for this uniform buffer
	Size   uint32
	Fields []UniformBufferField
}

func (ub *UniformBuffer) Bind() {
	gl.BindBuffer(gl.UNIFORM_BUFFER, ub.Id)
}

func (ub *UniformBuffer) UnBind() {
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (ub *UniformBuffer) SetBindPoint(bindPointIndex uint32) {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, bindPointIndex, ub.Id)
}

// computeStd140Layout places fields in declaration order following the std140 rules and
// returns the fields with their offsets and the block size rounded up to 16 bytes.
//
// Arrays and matrices take a 16 byte slot per element/column. A lone vec3 takes 12 bytes,
// so a following scalar packs into its last 4.
func computeStd140Layout(inputs []UniformBufferFieldInput) (fields []UniformBufferField, size uint32) {

	fields = make([]UniformBufferField, 0, len(inputs))
	seen := make(map[uint16]ElementType, len(inputs))

	var offset uint16
	for i := 0; i < len(inputs); i++ {

		in := inputs[i]
		if in.Count == 0 {
			in.Count = 1
		}

		existingType, ok := seen[in.Id]
		assert.T(!ok, "Uniform buffer field id is reused within the same uniform buffer. FieldId=%d was first used on a field with type=%s and then used on a field with type=%s", in.Id, existingType, in.Type)
		seen[in.Id] = in.Type

		isArray := in.Count > 1
		isMatrix := in.Type == DataTypeMat3 || in.Type == DataTypeMat4

		align := in.Type.GlStd140AlignmentBoundary()
		if isArray {
			align = 16
		}
		padTo(&offset, align)

		fields = append(fields, UniformBufferField{Id: in.Id, Type: in.Type, Count: in.Count, AlignedOffset: offset})

		if isArray || isMatrix {
			offset += 16 * in.Type.GlStd140Columns() * in.Count
		} else {
			offset += uint16(in.Type.Size())
		}
	}

	padTo(&offset, 16)
	return fields, uint32(offset)
}

func padTo(val *uint16, boundary uint16) {
	alignmentError := *val % boundary
	if alignmentError != 0 {
		*val += boundary - alignmentError
	}
}

func (ub *UniformBuffer) getField(fieldId uint16, fieldType ElementType) UniformBufferField {

	for i := 0; i < len(ub.Fields); i++ {

		f := ub.Fields[i]
		if f.Id != fieldId {
			continue
		}

		assert.T(f.Type == fieldType, "Uniform buffer field id=%d has type=%s, but is being set as type=%s", fieldId, f.Type, fieldType)
		return f
	}

	logging.ErrLog.Panicf("couldn't find uniform buffer field of id=%d and type=%s\n", fieldId, fieldType)
	return UniformBufferField{}
}

// The setters below expect the buffer to be bound

func (ub *UniformBuffer) SetFloat32(fieldId uint16, val float32) {
	f := ub.getField(fieldId, DataTypeFloat32)
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), 4, gl.Ptr(&val))
}

func (ub *UniformBuffer) SetVec3(fieldId uint16, val *gglm.Vec3) {
	f := ub.getField(fieldId, DataTypeVec3)
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), 4*3, gl.Ptr(&val.Data[0]))
}

func (ub *UniformBuffer) SetVec4(fieldId uint16, val *gglm.Vec4) {
	f := ub.getField(fieldId, DataTypeVec4)
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), 4*4, gl.Ptr(&val.Data[0]))
}

func (ub *UniformBuffer) SetMat4(fieldId uint16, val *gglm.Mat4) {
	f := ub.getField(fieldId, DataTypeMat4)
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), 4*16, gl.Ptr(&val.Data[0][0]))
}

func (ub *UniformBuffer) Delete() {
	gl.DeleteBuffers(1, &ub.Id)
	ub.Id = 0
}

func NewUniformBuffer(fields []UniformBufferFieldInput, usage BufUsage) UniformBuffer {

	ubo := UniformBuffer{}
	ubo.Fields, ubo.Size = computeStd140Layout(fields)

	gl.GenBuffers(1, &ubo.Id)
	if ubo.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL uniform buffer")
	}

	ubo.Bind()
	gl.BufferData(gl.UNIFORM_BUFFER, int(ubo.Size), nil, usage.ToGL())
	ubo.UnBind()

	return ubo
}
