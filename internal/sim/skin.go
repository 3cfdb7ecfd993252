package sim

import "fmt"

// Part is one box of the figure.
type Part int

const (
	PartHead Part = iota
	PartBody
	PartArm
	PartLeg
	NumParts
)

var partNames = [NumParts]string{"head", "body", "arm", "leg"}

func (p Part) String() string {
	if p < 0 || p >= NumParts {
		return fmt.Sprintf("part(%d)", int(p))
	}
	return partNames[p]
}

// Size returns the box extents (width, height, depth) in world units.
func (p Part) Size() (w, h, d float32) {
	switch p {
	case PartHead:
		return 8, 8, 8
	case PartBody:
		return 8, 12, 4
	default:
		return 4, 12, 4
	}
}

// Skin names a texture set mapped onto the four part meshes.
type Skin int

const (
	SkinBoy Skin = iota
	SkinGirl
)

func (s Skin) String() string {
	if s == SkinGirl {
		return "girl"
	}
	return "boy"
}

// Toggle switches between the two skins.
func (s *Skin) Toggle() {
	if *s == SkinBoy {
		*s = SkinGirl
	} else {
		*s = SkinBoy
	}
}

// TextureName is the asset base name for a part under this skin, e.g. "arm_girl".
func (s Skin) TextureName(p Part) string {
	return p.String() + "_" + s.String()
}

// Skins lists every skin, in toggle order.
var Skins = []Skin{SkinBoy, SkinGirl}

// TexCoords returns the UV layout for a part, four (u,v) pairs per face in
// front, back, top, bottom, right, left order. Both skins share the layout.
func TexCoords(p Part) []float32 {
	switch p {
	case PartHead:
		return headUV
	case PartBody:
		return bodyUV
	default:
		return limbUV
	}
}

var headUV = []float32{
	0.25, 1.00, 0.50, 1.00, 0.50, 0.50, 0.25, 0.50,
	0.75, 1.00, 0.75, 0.50, 1.00, 0.50, 1.00, 1.00,
	0.50, 0.50, 0.25, 0.50, 0.25, 0.00, 0.50, 0.00,
	0.25, 0.50, 0.00, 0.50, 0.00, 0.00, 0.25, 0.00,
	0.75, 1.00, 0.75, 0.50, 0.50, 0.50, 0.50, 1.00,
	0.00, 1.00, 0.25, 1.00, 0.25, 0.50, 0.00, 0.50,
}

var bodyUV = []float32{
	0.25, 1.00, 0.50, 1.00, 0.50, 0.25, 0.25, 0.25,
	1.00, 1.00, 1.00, 0.25, 0.75, 0.25, 0.75, 1.00,
	0.50, 0.00, 0.50, 0.25, 0.25, 0.25, 0.25, 0.00,
	0.25, 0.25, 0.00, 0.25, 0.00, 0.00, 0.25, 0.00,
	0.625, 1.00, 0.625, 0.50, 0.50, 0.50, 0.50, 1.00,
	0.125, 1.00, 0.25, 1.00, 0.25, 0.50, 0.125, 0.50,
}

// Arms and legs use the same layout.
var limbUV = []float32{
	0.25, 1.00, 0.50, 1.00, 0.50, 0.25, 0.25, 0.25,
	0.75, 1.00, 0.75, 0.25, 1.00, 0.25, 1.00, 1.00,
	0.50, 0.25, 0.25, 0.25, 0.25, 0.00, 0.50, 0.00,
	0.25, 0.25, 0.00, 0.25, 0.00, 0.00, 0.25, 0.00,
	0.75, 1.00, 0.75, 0.25, 0.50, 0.25, 0.50, 1.00,
	0.00, 1.00, 0.25, 1.00, 0.25, 0.25, 0.00, 0.25,
}
