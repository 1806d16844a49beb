package effect

import (
	"errors"
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"
)

var errContextLost = errors.New("WebGL context lost")

func initShader(gl *webgl.WebGL, typ webgl.ShaderType, src string) (webgl.Shader, error) {
	s := gl.CreateShader(typ)
	gl.ShaderSource(s, src)
	gl.CompileShader(s)
	if !gl.GetShaderParameter(s, gl.COMPILE_STATUS).(bool) {
		if gl.IsContextLost() {
			return webgl.Shader(js.Null()), errContextLost
		}
		if typ == gl.VERTEX_SHADER {
			return webgl.Shader(js.Null()), errors.New("compile failed (VERTEX_SHADER)")
		}
		return webgl.Shader(js.Null()), errors.New("compile failed (FRAGMENT_SHADER)")
	}
	return s, nil
}

// NewProgram compiles and links a vertex and fragment shader pair.
func NewProgram(gl *webgl.WebGL, vsSource, fsSource string) (webgl.Program, error) {
	vs, err := initShader(gl, gl.VERTEX_SHADER, vsSource)
	if err != nil {
		return webgl.Program(js.Null()), err
	}
	fs, err := initShader(gl, gl.FRAGMENT_SHADER, fsSource)
	if err != nil {
		return webgl.Program(js.Null()), err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	if !gl.GetProgramParameter(program, gl.LINK_STATUS).(bool) {
		if gl.IsContextLost() {
			return webgl.Program(js.Null()), errContextLost
		}
		return webgl.Program(js.Null()), errors.New("link failed: " + gl.GetProgramInfoLog(program))
	}
	return program, nil
}

// Locations of the effect uniforms in one program. Uniforms the program does
// not declare resolve to null and their uploads are ignored by WebGL.
type Locations struct {
	World                 webgl.Location
	View                  webgl.Location
	Projection            webgl.Location
	WorldViewProjection   webgl.Location
	WorldInverseTranspose webgl.Location
	EyePosition           webgl.Location
	Bones                 []webgl.Location
}

func Locate(gl *webgl.WebGL, program webgl.Program) Locations {
	loc := Locations{
		World:                 gl.GetUniformLocation(program, uniformWorld),
		View:                  gl.GetUniformLocation(program, uniformView),
		Projection:            gl.GetUniformLocation(program, uniformProjection),
		WorldViewProjection:   gl.GetUniformLocation(program, uniformWorldViewProjection),
		WorldInverseTranspose: gl.GetUniformLocation(program, uniformWorldInverseTranspose),
		EyePosition:           gl.GetUniformLocation(program, uniformEyePosition),
	}
	for _, name := range boneUniformNames() {
		loc.Bones = append(loc.Bones, gl.GetUniformLocation(program, name))
	}
	return loc
}

func (m *Matrices) Upload(gl *webgl.WebGL, loc Locations) {
	gl.UniformMatrix4fv(loc.World, false, m.World().Mat4())
	gl.UniformMatrix4fv(loc.View, false, m.View().Mat4())
	gl.UniformMatrix4fv(loc.Projection, false, m.Projection().Mat4())
	gl.UniformMatrix4fv(loc.WorldViewProjection, false, m.WorldViewProjection().Mat4())
	gl.UniformMatrix4fv(loc.WorldInverseTranspose, false, m.WorldInverseTranspose().Mat4())
	gl.Uniform3fv(loc.EyePosition, m.EyePosition().Vec3())
}

func (b *Bones) Upload(gl *webgl.WebGL, loc Locations) {
	for i, l := range loc.Bones {
		gl.UniformMatrix4fv(l, false, b.bone(i).Mat4())
	}
}
