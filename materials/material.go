package materials

import (
	"fmt"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/scp087/assert"
	"github.com/bloeys/scp087/assets"
	"github.com/bloeys/scp087/logging"
	"github.com/bloeys/scp087/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	lastMatId uint32
)

type TextureSlot uint32

const (
	TextureSlot_Diffuse  TextureSlot = 0
	TextureSlot_Emission TextureSlot = 1
)

type MaterialSettings uint64

const (
	MaterialSettings_None        MaterialSettings = iota
	MaterialSettings_HasModelMtx MaterialSettings = 1 << (iota - 1)
	// Translucent things like the face are drawn without writing depth
	MaterialSettings_NoDepthWrite
)

func (ms *MaterialSettings) Set(flags MaterialSettings) {
	*ms |= flags
}

func (ms *MaterialSettings) Has(flags MaterialSettings) bool {
	return *ms&flags == flags
}

type Material struct {
	Id         uint32
	Name       string
	ShaderProg shaders.ShaderProgram
	Settings   MaterialSettings

	UnifLocs map[string]int32

	DiffuseTex  uint32
	EmissionTex uint32
}

func (m *Material) Bind() {

	m.ShaderProg.Bind()

	gl.ActiveTexture(uint32(gl.TEXTURE0 + TextureSlot_Diffuse))
	gl.BindTexture(gl.TEXTURE_2D, m.DiffuseTex)

	gl.ActiveTexture(uint32(gl.TEXTURE0 + TextureSlot_Emission))
	gl.BindTexture(gl.TEXTURE_2D, m.EmissionTex)
}

func (m *Material) UnBind() {
	gl.UseProgram(0)
}

func (m *Material) SetUniformBlockBindingPoint(uniformBlockName string, bindPointIndex uint32) {

	nullStr := gl.Str(uniformBlockName + "\x00")
	index := gl.GetUniformBlockIndex(m.ShaderProg.Id, nullStr)
	assert.T(
		index != gl.INVALID_INDEX,
		"SetUniformBlockBindingPoint for material=%s (matId=%d; shaderId=%d) failed because the uniform block=%s wasn't found",
		m.Name,
		m.Id,
		m.ShaderProg.Id,
		uniformBlockName,
	)
	gl.UniformBlockBinding(m.ShaderProg.Id, index, bindPointIndex)
}

// GetUnifLoc returns the cached location of a uniform. Uniforms the compiler optimized
// away get -1, which OpenGL silently ignores, and a warning the first time.
func (m *Material) GetUnifLoc(uniformName string) int32 {

	loc, ok := m.UnifLocs[uniformName]
	if ok {
		return loc
	}

	name := gl.Str(uniformName + "\x00")
	loc = gl.GetUniformLocation(m.ShaderProg.Id, name)
	if loc == -1 {
		logging.WarnLog.Printf("Uniform '%s' doesn't exist (or is unused) on material '%s'\n", uniformName, m.Name)
	}

	m.UnifLocs[uniformName] = loc
	return loc
}

func (m *Material) SetUnifInt32(uniformName string, val int32) {
	gl.ProgramUniform1i(m.ShaderProg.Id, m.GetUnifLoc(uniformName), val)
}

func (m *Material) SetUnifFloat32(uniformName string, val float32) {
	gl.ProgramUniform1f(m.ShaderProg.Id, m.GetUnifLoc(uniformName), val)
}

func (m *Material) SetUnifVec2(uniformName string, vec2 *gglm.Vec2) {
	gl.ProgramUniform2fv(m.ShaderProg.Id, m.GetUnifLoc(uniformName), 1, &vec2.Data[0])
}

func (m *Material) SetUnifVec3(uniformName string, vec3 *gglm.Vec3) {
	gl.ProgramUniform3fv(m.ShaderProg.Id, m.GetUnifLoc(uniformName), 1, &vec3.Data[0])
}

func (m *Material) SetUnifVec4(uniformName string, vec4 *gglm.Vec4) {
	gl.ProgramUniform4fv(m.ShaderProg.Id, m.GetUnifLoc(uniformName), 1, &vec4.Data[0])
}

func (m *Material) SetUnifMat4(uniformName string, mat4 *gglm.Mat4) {
	gl.ProgramUniformMatrix4fv(m.ShaderProg.Id, m.GetUnifLoc(uniformName), 1, false, &mat4.Data[0][0])
}

func (m *Material) Delete() {
	m.ShaderProg.Delete()
}

func getNewMatId() uint32 {
	lastMatId++
	return lastMatId
}

// NewMaterial compiles the combined shader at shaderPath and points its texture
// samplers at the material slots. Unset textures use the engine defaults.
func NewMaterial(matName, shaderPath string) (Material, error) {

	shdrProg, err := shaders.LoadAndCompileCombinedShader(shaderPath)
	if err != nil {
		return Material{}, fmt.Errorf("failed to create material '%s': %w", matName, err)
	}

	return newMaterial(matName, shdrProg), nil
}

func newMaterial(matName string, shdrProg shaders.ShaderProgram) Material {

	setSampler(shdrProg.Id, "diffTex", TextureSlot_Diffuse)
	setSampler(shdrProg.Id, "emissionTex", TextureSlot_Emission)

	return Material{
		Id:         getNewMatId(),
		Name:       matName,
		ShaderProg: shdrProg,
		UnifLocs:   make(map[string]int32),

		DiffuseTex:  assets.DefaultDiffuseTexId.TexID,
		EmissionTex: assets.DefaultEmissionTexId.TexID,
	}
}

func setSampler(progId uint32, samplerName string, slot TextureSlot) {

	loc := gl.GetUniformLocation(progId, gl.Str(samplerName+"\x00"))
	if loc == -1 {
		return
	}

	gl.ProgramUniform1i(progId, loc, int32(slot))
}
