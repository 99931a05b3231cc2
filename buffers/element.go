package buffers

import (
	"github.com/bloeys/scp087/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Element represents an element that makes up a buffer (e.g. Vec3 at an offset of 12 bytes)
type Element struct {
	Offset int
	ElementType
}

// ElementType is the type of an element that makes up a buffer (e.g. Vec3)
type ElementType uint8

const (
	DataTypeUnknown ElementType = iota

	DataTypeUint32
	DataTypeInt32
	DataTypeFloat32

	DataTypeVec2
	DataTypeVec3
	DataTypeVec4

	DataTypeMat3
	DataTypeMat4
)

type elementInfo struct {
	name      string
	glType    uint32
	compCount int32
	// columns is how many vec4 slots a matrix takes in std140, zero for non matrices
	columns uint16
	// std140Align is the base alignment in std140 when not in an array
	std140Align uint16
}

var elementInfos = [...]elementInfo{
	DataTypeUnknown: {name: "Unknown"},

	DataTypeUint32:  {name: "uint32", glType: gl.UNSIGNED_INT, compCount: 1, std140Align: 4},
	DataTypeInt32:   {name: "int32", glType: gl.INT, compCount: 1, std140Align: 4},
	DataTypeFloat32: {name: "float32", glType: gl.FLOAT, compCount: 1, std140Align: 4},

	DataTypeVec2: {name: "Vec2", glType: gl.FLOAT, compCount: 2, std140Align: 8},
	DataTypeVec3: {name: "Vec3", glType: gl.FLOAT, compCount: 3, std140Align: 16},
	DataTypeVec4: {name: "Vec4", glType: gl.FLOAT, compCount: 4, std140Align: 16},

	DataTypeMat3: {name: "Mat3", glType: gl.FLOAT, compCount: 3 * 3, columns: 3, std140Align: 16},
	DataTypeMat4: {name: "Mat4", glType: gl.FLOAT, compCount: 4 * 4, columns: 4, std140Align: 16},
}

func (dt ElementType) info() *elementInfo {
	assert.T(dt > DataTypeUnknown && int(dt) < len(elementInfos), "Unknown data type passed. DataType '%d'", dt)
	return &elementInfos[dt]
}

func (dt ElementType) GLType() uint32 {
	return dt.info().glType
}

// CompSize returns the size in bytes of one component of the type. Every supported type has 4 byte components.
func (dt ElementType) CompSize() int32 {
	dt.info()
	return 4
}

// CompCount returns the number of components in the element (e.g. for Vec2 its 2)
func (dt ElementType) CompCount() int32 {
	return dt.info().compCount
}

// Size returns the tightly packed size in bytes (e.g. for vec3 its 3*4=12 bytes)
func (dt ElementType) Size() int32 {
	return dt.CompCount() * dt.CompSize()
}

// GlStd140AlignmentBoundary is the base alignment of a lone field of this type in a std140 block
func (dt ElementType) GlStd140AlignmentBoundary() uint16 {
	return dt.info().std140Align
}

// GlStd140Columns is how many vec4 sized columns a matrix occupies in std140. Non matrices occupy one slot.
func (dt ElementType) GlStd140Columns() uint16 {

	c := dt.info().columns
	if c == 0 {
		return 1
	}

	return c
}

func (dt ElementType) String() string {

	if int(dt) >= len(elementInfos) {
		return "Unknown"
	}

	return elementInfos[dt].name
}
