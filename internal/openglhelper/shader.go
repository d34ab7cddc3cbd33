package openglhelper

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader represents an OpenGL shader program
type Shader struct {
	ID       uint32
	uniforms map[string]int32
}

// ShaderSource holds the GLSL text for each stage. Geometry is optional.
type ShaderSource struct {
	Vertex   string
	Geometry string
	Fragment string
}

// compileShader compiles a single shader
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}

	return shader, nil
}

// NewShader creates a new shader program from the given stage sources
func NewShader(src ShaderSource) (*Shader, error) {
	program, err := newProgram(src)
	if err != nil {
		return nil, err
	}

	return &Shader{ID: program, uniforms: make(map[string]int32)}, nil
}

// newProgram compiles every present stage and links them into one program
func newProgram(src ShaderSource) (uint32, error) {
	stages := []struct {
		name   string
		source string
		kind   uint32
	}{
		{"vertex", src.Vertex, gl.VERTEX_SHADER},
		{"geometry", src.Geometry, gl.GEOMETRY_SHADER},
		{"fragment", src.Fragment, gl.FRAGMENT_SHADER},
	}

	var compiled []uint32
	release := func() {
		for _, s := range compiled {
			gl.DeleteShader(s)
		}
	}

	for _, stage := range stages {
		if stage.source == "" {
			if stage.kind == gl.GEOMETRY_SHADER {
				continue
			}
			release()
			return 0, fmt.Errorf("%s shader source is empty", stage.name)
		}
		shader, err := compileShader(stage.source, stage.kind)
		if err != nil {
			release()
			return 0, fmt.Errorf("%s shader compilation failed: %w", stage.name, err)
		}
		compiled = append(compiled, shader)
	}

	program := gl.CreateProgram()
	for _, s := range compiled {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		release()

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	for _, s := range compiled {
		gl.DetachShader(program, s)
	}
	release()

	return program, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the shader program
func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
}

// location looks up a uniform once and remembers it. Unknown names map to -1,
// which GL silently ignores.
func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

// SetInt sets an integer uniform
func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

// SetFloat sets a float uniform
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

// SetVec3 sets a vec3 uniform
func (s *Shader) SetVec3(name string, vec mgl32.Vec3) {
	gl.Uniform3f(s.location(name), vec[0], vec[1], vec[2])
}

// SetMat4 sets a mat4 uniform
func (s *Shader) SetMat4(name string, mat mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &mat[0])
}

// LoadShaderFromFiles loads a shader program from vertex and fragment shader files
func LoadShaderFromFiles(vertexPath, fragmentPath string) (*Shader, error) {
	return LoadShaderWithGeometry(vertexPath, "", fragmentPath)
}

// LoadShaderWithGeometry loads a program from vertex, geometry and fragment
// shader files. An empty geometryPath skips the geometry stage.
func LoadShaderWithGeometry(vertexPath, geometryPath, fragmentPath string) (*Shader, error) {
	var src ShaderSource
	var err error

	if src.Vertex, err = readSource(vertexPath); err != nil {
		return nil, fmt.Errorf("failed to read vertex shader file: %w", err)
	}
	if geometryPath != "" {
		if src.Geometry, err = readSource(geometryPath); err != nil {
			return nil, fmt.Errorf("failed to read geometry shader file: %w", err)
		}
	}
	if src.Fragment, err = readSource(fragmentPath); err != nil {
		return nil, fmt.Errorf("failed to read fragment shader file: %w", err)
	}

	shader, err := NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", vertexPath, err)
	}
	return shader, nil
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
