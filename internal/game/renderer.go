package game

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"blockman/internal/sim"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// partMesh is one box uploaded to the GPU: position, colour and uv buffers
// behind a single VAO, plus its index buffer.
type partMesh struct {
	vao     uint32
	vbos    [3]uint32
	ebo     uint32
	indices int32
}

type Renderer struct {
	colorProg   program
	textureProg program
	uSampler    int32

	meshes [sim.NumParts]partMesh

	// Skin textures keyed by asset name ("head_boy", ...). A missing entry
	// means the part is drawn with flat face colours.
	skins map[string]uint32

	hud *hud
}

// NewRenderer links the shader programs and uploads the four part meshes.
func NewRenderer() (*Renderer, error) {
	colorProg, err := newProgram("color", colorVertSrc, colorFragSrc)
	if err != nil {
		return nil, err
	}
	textureProg, err := newProgram("texture", textureVertSrc, textureFragSrc)
	if err != nil {
		gl.DeleteProgram(colorProg.id)
		return nil, err
	}

	r := &Renderer{
		colorProg:   colorProg,
		textureProg: textureProg,
		skins:       make(map[string]uint32),
	}
	gl.UseProgram(textureProg.id)
	r.uSampler = uniform(textureProg.id, "uSampler")
	gl.Uniform1i(r.uSampler, 0)

	for p := sim.Part(0); p < sim.NumParts; p++ {
		r.meshes[p] = uploadMesh(sim.BoxMesh(p))
	}
	gl.BindVertexArray(0)
	return r, nil
}

func uploadMesh(m sim.Mesh) partMesh {
	var pm partMesh
	gl.GenVertexArrays(1, &pm.vao)
	gl.BindVertexArray(pm.vao)
	gl.GenBuffers(3, &pm.vbos[0])

	attrib := func(vbo uint32, loc uint32, size int32, data []float32) {
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointer(loc, size, gl.FLOAT, false, 0, glOffset(0))
	}
	attrib(pm.vbos[0], attrPosition, 3, m.Positions)
	attrib(pm.vbos[1], attrColor, 4, m.Colors)
	attrib(pm.vbos[2], attrUV, 2, m.UVs)

	gl.GenBuffers(1, &pm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, pm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	pm.indices = int32(len(m.Indices))
	return pm
}

func (r *Renderer) Destroy() {
	for i := range r.meshes {
		m := &r.meshes[i]
		gl.DeleteBuffers(3, &m.vbos[0])
		gl.DeleteBuffers(1, &m.ebo)
		gl.DeleteVertexArrays(1, &m.vao)
	}
	for _, tex := range r.skins {
		gl.DeleteTextures(1, &tex)
	}
	for _, id := range []uint32{r.colorProg.id, r.textureProg.id} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.hud != nil {
		r.hud.destroy()
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
}

// DrawScene draws every composed part with the given skin.
func (r *Renderer) DrawScene(calls []sim.DrawCall, skin sim.Skin, proj mgl32.Mat4) {
	for _, c := range calls {
		tex, textured := r.skins[skin.TextureName(c.Part)]
		r.drawPart(&r.meshes[c.Part], c.ModelView, proj, tex, textured)
	}
	gl.BindVertexArray(0)
}

// drawPart is the single bind-and-draw routine for every box.
func (r *Renderer) drawPart(m *partMesh, mv, proj mgl32.Mat4, tex uint32, textured bool) {
	prog := r.colorProg
	if textured {
		prog = r.textureProg
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex)
	}
	gl.UseProgram(prog.id)
	gl.UniformMatrix4fv(prog.uProj, 1, false, &proj[0])
	gl.UniformMatrix4fv(prog.uModelView, 1, false, &mv[0])
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indices, gl.UNSIGNED_SHORT, glOffset(0))
}

// SkinCount reports how many skin textures are loaded.
func (r *Renderer) SkinCount() int { return len(r.skins) }
