package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertex attribute locations shared by every part mesh and program.
const (
	attrPosition = 0
	attrColor    = 1
	attrUV       = 2
)

// Flat vertex shader: per-face colour, used when a part has no skin texture.
const colorVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec4 aColor;

uniform mat4 uProj;
uniform mat4 uModelView;

out vec4 vColor;

void main() {
    gl_Position = uProj * uModelView * vec4(aPos, 1.0);
    vColor = aColor;
}
` + "\x00"

const colorFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// Skinned vertex shader: same transform, texture coordinates instead of colour.
const textureVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 2) in vec2 aUV;

uniform mat4 uProj;
uniform mat4 uModelView;

out vec2 vUV;

void main() {
    gl_Position = uProj * uModelView * vec4(aPos, 1.0);
    vUV = aUV;
}
` + "\x00"

const textureFragSrc = `#version 410 core

uniform sampler2D uSampler;

in vec2 vUV;
out vec4 FragColor;

void main() {
    vec4 t = texture(uSampler, vUV);
    if (t.a < 0.01) discard;
    FragColor = t;
}
` + "\x00"

// Text vertex shader: screen-space textured quads for the HUD.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Text fragment shader: glyph atlas coverage in alpha, tinted per vertex.
const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    float a = texture(uFontTex, vUV).a;
    if (a < 0.01) discard;
    FragColor = vec4(vColor.rgb, a * vColor.a);
}
` + "\x00"

// program is a linked shader program with its model-view/projection uniforms.
type program struct {
	id         uint32
	uProj      int32
	uModelView int32
}

func newProgram(name, vertSrc, fragSrc string) (program, error) {
	id, err := linkProgram(vertSrc, fragSrc)
	if err != nil {
		return program{}, fmt.Errorf("%s program: %w", name, err)
	}
	return program{
		id:         id,
		uProj:      uniform(id, "uProj"),
		uModelView: uniform(id, "uModelView"),
	}, nil
}

func uniform(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", msg)
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	gl.DetachShader(prog, vs)
	gl.DetachShader(prog, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link program: %s", msg)
	}
	return prog, nil
}

// infoLog reads a shader or program info log with the matching GL getters.
func infoLog(id uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var n int32
	getiv(id, gl.INFO_LOG_LENGTH, &n)
	buf := strings.Repeat("\x00", int(n+1))
	getLog(id, n, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}
