package sim

// Mesh is an indexed box with per-vertex colour and texture coordinates.
type Mesh struct {
	Positions []float32 // 3 per vertex
	Colors    []float32 // 4 per vertex
	UVs       []float32 // 2 per vertex
	Indices   []uint16
}

// Per-face debug colours used when a part has no texture.
var faceColors = [6][4]float32{
	{1.0, 0.0, 0.0, 1.0}, // front
	{1.0, 1.0, 0.0, 1.0}, // back
	{0.0, 1.0, 0.0, 1.0}, // top
	{1.0, 0.5, 0.5, 1.0}, // bottom
	{1.0, 0.0, 1.0, 1.0}, // right
	{0.0, 0.0, 1.0, 1.0}, // left
}

// BoxMesh builds the 24-vertex, 36-index box for a part centred on the origin.
func BoxMesh(p Part) Mesh {
	w, h, d := p.Size()
	x, y, z := w/2, h/2, d/2

	pos := []float32{
		// front
		-x, -y, z, x, -y, z, x, y, z, -x, y, z,
		// back
		-x, -y, -z, -x, y, -z, x, y, -z, x, -y, -z,
		// top
		-x, y, -z, -x, y, z, x, y, z, x, y, -z,
		// bottom
		-x, -y, -z, x, -y, -z, x, -y, z, -x, -y, z,
		// right
		x, -y, -z, x, y, -z, x, y, z, x, -y, z,
		// left
		-x, -y, -z, -x, -y, z, -x, y, z, -x, y, -z,
	}

	cols := make([]float32, 0, 24*4)
	for _, c := range faceColors {
		for i := 0; i < 4; i++ {
			cols = append(cols, c[:]...)
		}
	}

	idx := make([]uint16, 0, 36)
	for f := uint16(0); f < 6; f++ {
		b := f * 4
		idx = append(idx, b, b+1, b+2, b, b+2, b+3)
	}

	uv := make([]float32, len(TexCoords(p)))
	copy(uv, TexCoords(p))

	return Mesh{Positions: pos, Colors: cols, UVs: uv, Indices: idx}
}

func (m Mesh) VertexCount() int { return len(m.Positions) / 3 }
