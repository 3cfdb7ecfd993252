package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"blockman/internal/sim"
)

// Glyph atlas layout: printable ASCII in a 16x6 grid of 7x13 cells.
const (
	glyphW     = 7
	glyphH     = 13
	atlasCols  = 16
	atlasRows  = 6
	atlasFirst = 32
	atlasW     = glyphW * atlasCols
	atlasH     = glyphH * atlasRows
	hudScale   = 2
	maxGlyphs  = 512
)

type hud struct {
	prog uint32
	vao  uint32
	vbo  uint32
	tex  uint32
	uRes int32
	buf  []float32
}

// buildGlyphAtlas rasterizes the fixed 7x13 face into a white-on-clear atlas.
func buildGlyphAtlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, atlasW, atlasH))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
	}
	ascent := basicfont.Face7x13.Metrics().Ascent
	for c := atlasFirst; c < atlasFirst+atlasCols*atlasRows; c++ {
		i := c - atlasFirst
		x := (i % atlasCols) * glyphW
		y := (i / atlasCols) * glyphH
		d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + ascent}
		d.DrawString(string(rune(c)))
	}
	return img
}

// InitHUD builds the glyph atlas and the text pipeline.
func (r *Renderer) InitHUD() error {
	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	h := &hud{prog: prog}
	gl.UseProgram(prog)
	h.uRes = uniform(prog, "uResolution")
	gl.Uniform1i(uniform(prog, "uFontTex"), 1) // texture unit 1

	h.tex = uploadRGBA(buildGlyphAtlas(), gl.NEAREST, gl.NEAREST, false)

	// Per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	gl.GenVertexArrays(1, &h.vao)
	gl.GenBuffers(1, &h.vbo)
	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxGlyphs*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	gl.BindVertexArray(0)

	r.hud = h
	return nil
}

func (h *hud) destroy() {
	gl.DeleteBuffers(1, &h.vbo)
	gl.DeleteVertexArrays(1, &h.vao)
	gl.DeleteTextures(1, &h.tex)
	gl.DeleteProgram(h.prog)
}

// drawChar queues one glyph as two triangles in screen pixel space.
func (h *hud) drawChar(ch rune, sx, sy, scale float32, col color.RGBA) {
	if ch < atlasFirst || ch >= atlasFirst+atlasCols*atlasRows {
		return
	}
	if len(h.buf) >= maxGlyphs*6*8 {
		return
	}
	i := int(ch) - atlasFirst
	column, row := i%atlasCols, i/atlasCols

	u0 := float32(column*glyphW) / atlasW
	v0 := float32(row*glyphH) / atlasH
	u1 := float32((column+1)*glyphW) / atlasW
	v1 := float32((row+1)*glyphH) / atlasH

	w := glyphW * scale
	hh := glyphH * scale
	cr, cg, cb := float32(col.R)/255, float32(col.G)/255, float32(col.B)/255

	h.buf = append(h.buf,
		sx, sy, u0, v0, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx, sy+hh, u0, v1, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx+w, sy+hh, u1, v1, cr, cg, cb, 1,
		sx, sy+hh, u0, v1, cr, cg, cb, 1,
	)
}

func (h *hud) drawString(text string, sx, sy int, scale float32, col color.RGBA) {
	x := float32(sx)
	for _, ch := range text {
		h.drawChar(ch, x, float32(sy), scale, col)
		x += glyphW * scale
	}
}

// flush draws all queued glyphs over the scene and clears the queue.
func (h *hud) flush(fbW, fbH int) {
	if len(h.buf) == 0 {
		return
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(h.prog)
	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.Uniform2f(h.uRes, float32(fbW), float32(fbH))
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, h.tex)

	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(h.buf)*4, gl.Ptr(h.buf))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(h.buf)/8))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(0)
	h.buf = h.buf[:0]
}

const helpLine = "arrows move  T skin  [ ] angle  - = distance  , . speed"

// DrawHUD overlays the latest diagnostics readout and the key help.
func (r *Renderer) DrawHUD(readout sim.Readout, skin sim.Skin, fbW, fbH int) {
	h := r.hud
	if h == nil {
		return
	}
	lineH := glyphH*hudScale + 4
	y := 10
	for _, line := range readout.Lines() {
		h.drawString(line, 10, y, hudScale, colornames.White)
		y += lineH
	}
	h.drawString("Skin     <"+skin.String()+">", 10, y, hudScale, colornames.Gold)
	h.drawString(helpLine, 10, fbH-lineH, 1.5, colornames.Lightgray)
	h.flush(fbW, fbH)
}
