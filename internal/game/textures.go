package game

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/go-gl/gl/v4.1-core/gl"

	"blockman/internal/logger"
	"blockman/internal/sim"
)

//go:embed skins/*.png
var skinFS embed.FS

// LoadSkins uploads every skin texture. A texture that fails to decode is
// logged and skipped; its part falls back to flat colours.
func (r *Renderer) LoadSkins() {
	log := logger.L().With("component", "textures")
	for _, skin := range sim.Skins {
		for p := sim.Part(0); p < sim.NumParts; p++ {
			name := skin.TextureName(p)
			tex, err := loadSkinTexture(name)
			if err != nil {
				log.Warn("skin texture unavailable, using flat colours", "texture", name, "err", err)
				continue
			}
			r.skins[name] = tex
		}
	}
	log.Debug("skins loaded", "count", len(r.skins))
}

func loadSkinTexture(name string) (uint32, error) {
	data, err := skinFS.ReadFile("skins/" + name + ".png")
	if err != nil {
		return 0, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("decode %s.png: %w", name, err)
	}
	return uploadRGBA(toNRGBA(img), gl.LINEAR, gl.LINEAR_MIPMAP_NEAREST, true), nil
}

// toNRGBA returns img as tightly packed NRGBA pixels, converting if needed.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && n.Stride == b.Dx()*4 && b.Min == (image.Point{}) {
		return n
	}
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	return n
}

func uploadRGBA(img *image.NRGBA, magFilter, minFilter int32, mipmap bool) uint32 {
	b := img.Bounds()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	if mipmap {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
