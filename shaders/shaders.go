package shaders

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bloeys/scp087/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type Shader struct {
	Id   uint32
	Type ShaderType
}

func (s *Shader) Delete() {
	gl.DeleteShader(s.Id)
	s.Id = 0
}

func NewShaderProgram() (ShaderProgram, error) {

	id := gl.CreateProgram()
	if id == 0 {
		return ShaderProgram{}, errors.New("failed to create shader program")
	}

	return ShaderProgram{Id: id}, nil
}

func LoadAndCompileCombinedShader(shaderPath string) (ShaderProgram, error) {

	combinedSource, err := os.ReadFile(shaderPath)
	if err != nil {
		return ShaderProgram{}, fmt.Errorf("failed to read shader %s: %w", shaderPath, err)
	}

	prog, err := LoadAndCompileCombinedShaderSrc(combinedSource)
	if err != nil {
		return ShaderProgram{}, fmt.Errorf("shader %s: %w", shaderPath, err)
	}

	return prog, nil
}

const shaderTypeMarker = "//shader:"

// ShaderSource is one stage cut out of a combined shader file
type ShaderSource struct {
	Type ShaderType
	Src  []byte
}

// SplitCombinedSource cuts a combined shader file into its stages. Each stage starts
// with a '//shader:vertex', '//shader:fragment' or '//shader:geometry' line.
// Vertex and fragment stages are required.
func SplitCombinedSource(combined []byte) ([]ShaderSource, error) {

	parts := bytes.Split(combined, []byte(shaderTypeMarker))
	if len(parts) < 2 {
		return nil, errors.New("failed to read combined shader. The minimum shader types to have are '//shader:vertex' and '//shader:fragment'")
	}

	out := make([]ShaderSource, 0, len(parts)-1)
	hasStage := map[ShaderType]bool{}

	for i := 0; i < len(parts); i++ {

		src := parts[i]

		// Anything before the first marker is ignored, but it may only be whitespace
		if i == 0 {
			if len(bytes.TrimSpace(src)) != 0 {
				return nil, errors.New("combined shader has code before the first '//shader:' marker")
			}
			continue
		}

		shdrType := ShaderType_Unknown
		for _, t := range []ShaderType{ShaderType_Vertex, ShaderType_Fragment, ShaderType_Geometry} {
			if bytes.HasPrefix(src, []byte(t.String())) {
				shdrType = t
				src = src[len(t.String()):]
				break
			}
		}

		if shdrType == ShaderType_Unknown {
			return nil, errors.New("unknown shader type. Must be '//shader:vertex' or '//shader:fragment' or '//shader:geometry'")
		}

		if hasStage[shdrType] {
			return nil, fmt.Errorf("combined shader has more than one %s stage", shdrType)
		}
		hasStage[shdrType] = true

		out = append(out, ShaderSource{Type: shdrType, Src: src})
	}

	if !hasStage[ShaderType_Vertex] {
		return nil, errors.New("no valid vertex shader found. Please put '//shader:vertex' before your vertex shader")
	}

	if !hasStage[ShaderType_Fragment] {
		return nil, errors.New("no valid fragment shader found. Please put '//shader:fragment' before your fragment shader")
	}

	return out, nil
}

func LoadAndCompileCombinedShaderSrc(shaderSrc []byte) (ShaderProgram, error) {

	stages, err := SplitCombinedSource(shaderSrc)
	if err != nil {
		return ShaderProgram{}, err
	}

	shdrProg, err := NewShaderProgram()
	if err != nil {
		return ShaderProgram{}, err
	}

	for i := 0; i < len(stages); i++ {

		shdr, err := CompileShaderOfType(stages[i].Src, stages[i].Type)
		if err != nil {
			shdrProg.Delete()
			return ShaderProgram{}, err
		}

		shdrProg.AttachShader(shdr)
	}

	if err := shdrProg.Link(); err != nil {
		shdrProg.Delete()
		return ShaderProgram{}, err
	}

	return shdrProg, nil
}

func CompileShaderOfType(shaderSource []byte, shaderType ShaderType) (Shader, error) {

	shaderId := gl.CreateShader(shaderType.ToGl())
	if shaderId == 0 {
		return Shader{}, fmt.Errorf("failed to create OpenGl shader. OpenGl Error=%d", gl.GetError())
	}

	shaderCStr, shaderFree := gl.Strs(string(shaderSource) + "\x00")
	defer shaderFree()
	gl.ShaderSource(shaderId, 1, shaderCStr, nil)

	gl.CompileShader(shaderId)
	if err := getShaderCompileErrors(shaderId, shaderType); err != nil {
		gl.DeleteShader(shaderId)
		return Shader{}, err
	}

	return Shader{Id: shaderId, Type: shaderType}, nil
}

func getShaderCompileErrors(shaderId uint32, shaderType ShaderType) error {

	var compiledSuccessfully int32
	gl.GetShaderiv(shaderId, gl.COMPILE_STATUS, &compiledSuccessfully)
	if compiledSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetShaderiv(shaderId, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength)))
	gl.GetShaderInfoLog(shaderId, logLength, nil, log)

	errMsg := gl.GoStr(log)
	logging.ErrLog.Printf("Compilation of %s shader with id %d failed. Err: %s\n", shaderType, shaderId, errMsg)
	return fmt.Errorf("%s shader failed to compile: %s", shaderType, errMsg)
}
