package sim

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// SwingDegrees is the limb rotation at full walk-cycle amplitude.
const SwingDegrees = 30.0

// DrawCall is one box to draw: which mesh, and where.
type DrawCall struct {
	Part      Part
	Name      string
	ModelView mgl32.Mat4
}

// limb describes a box hanging from a pivot on the player.
type limb struct {
	name   string
	part   Part
	x, y   float32 // pivot relative to the player's feet
	drop   float32 // pivot to box centre, downward
	mirror float64 // +1 or -1: which way this limb swings for positive Value
	leg    bool
}

var limbs = []limb{
	{name: "arm_left", part: PartArm, x: -6, y: 21, drop: 3, mirror: -1},
	{name: "arm_right", part: PartArm, x: 6, y: 21, drop: 3, mirror: 1},
	{name: "leg_left", part: PartLeg, x: -2, y: 12, drop: 6, mirror: 1, leg: true},
	{name: "leg_right", part: PartLeg, x: 2, y: 12, drop: 6, mirror: -1, leg: true},
}

// Compose walks the figure's part hierarchy for the current state and
// appends one DrawCall per box to dst. The stack is reset to the camera view
// first and is balanced again on success.
func Compose(dst []DrawCall, st *TransformStack, s *State) ([]DrawCall, error) {
	st.Reset(s.Camera.View())
	v := s.Anim.Value

	st.Push()
	st.Translate(float32(s.Pose.X), 0, float32(s.Pose.Z))
	st.RotateY(float64(s.Pose.Heading))

	var err error
	if dst, err = composeFixed(dst, st, "head", PartHead, 28); err != nil {
		return dst, err
	}
	if dst, err = composeFixed(dst, st, "body", PartBody, 18); err != nil {
		return dst, err
	}
	for _, l := range limbs {
		if dst, err = composeLimb(dst, st, l, v); err != nil {
			return dst, err
		}
	}

	if err := st.Pop(); err != nil {
		return dst, fmt.Errorf("compose player: %w", err)
	}
	return dst, nil
}

func composeFixed(dst []DrawCall, st *TransformStack, name string, p Part, y float32) ([]DrawCall, error) {
	st.Push()
	st.Translate(0, y, 0)
	dst = append(dst, DrawCall{Part: p, Name: name, ModelView: st.Top()})
	if err := st.Pop(); err != nil {
		return dst, fmt.Errorf("compose %s: %w", name, err)
	}
	return dst, nil
}

func composeLimb(dst []DrawCall, st *TransformStack, l limb, v float64) ([]DrawCall, error) {
	angle := v * SwingDegrees * l.mirror

	st.Push()
	if l.leg {
		// Legs pivot on the edge of the hip they swing away from.
		back := v > 0
		if l.mirror < 0 {
			back = v < 0
		}
		var z float32 = 2
		if back {
			z = -2
		}
		st.Translate(l.x, l.y, z)
		st.RotateX(angle)
		st.Translate(0, -l.drop, -z)
	} else {
		st.Translate(l.x, l.y, 0)
		st.RotateX(angle)
		st.Translate(0, -l.drop, 0)
	}
	dst = append(dst, DrawCall{Part: l.part, Name: l.name, ModelView: st.Top()})
	if err := st.Pop(); err != nil {
		return dst, fmt.Errorf("compose %s: %w", l.name, err)
	}
	return dst, nil
}
