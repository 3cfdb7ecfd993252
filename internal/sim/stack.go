package sim

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrStackUnderflow is returned by Pop when there is no saved transform to restore.
var ErrStackUnderflow = errors.New("transform stack underflow")

// TransformStack holds the active model-view matrix and the saved copies
// pushed above it. It lives for a single composition pass.
type TransformStack struct {
	cur   mgl32.Mat4
	saved []mgl32.Mat4
}

func NewTransformStack() *TransformStack {
	return &TransformStack{cur: mgl32.Ident4(), saved: make([]mgl32.Mat4, 0, 8)}
}

// Reset drops all saved transforms and makes base the active one.
func (s *TransformStack) Reset(base mgl32.Mat4) {
	s.cur = base
	s.saved = s.saved[:0]
}

// Push saves a copy of the active transform. The active transform is unchanged.
func (s *TransformStack) Push() {
	s.saved = append(s.saved, s.cur)
}

// Pop restores the most recently pushed transform.
func (s *TransformStack) Pop() error {
	n := len(s.saved)
	if n == 0 {
		return ErrStackUnderflow
	}
	s.cur = s.saved[n-1]
	s.saved = s.saved[:n-1]
	return nil
}

func (s *TransformStack) Top() mgl32.Mat4 { return s.cur }

func (s *TransformStack) Depth() int { return len(s.saved) }

func (s *TransformStack) Translate(x, y, z float32) {
	s.cur = s.cur.Mul4(mgl32.Translate3D(x, y, z))
}

// RotateX rotates the active transform about its local X axis (degrees).
func (s *TransformStack) RotateX(deg float64) {
	s.cur = s.cur.Mul4(mgl32.HomogRotate3DX(degToRad(deg)))
}

// RotateY rotates the active transform about its local Y axis (degrees).
func (s *TransformStack) RotateY(deg float64) {
	s.cur = s.cur.Mul4(mgl32.HomogRotate3DY(degToRad(deg)))
}
