package sim

// PlayerSpeed is the distance covered per frame per unit of factor.
const PlayerSpeed = 2.0

// PlayerPose is the player's position on the ground plane and facing.
// Heading is in degrees and always one of -135,-90,-45,0,45,90,135,180.
type PlayerPose struct {
	X, Z    float64
	Heading int
	Moving  bool
}

// UpdatePlayer applies one frame of movement from the held keys.
// Opposing keys resolve to the first one checked: left over right, up over down.
func UpdatePlayer(p *PlayerPose, in *InputState, speed, factor float64) {
	left, right := in.Held(KeyLeft), in.Held(KeyRight)
	up, down := in.Held(KeyUp), in.Held(KeyDown)
	d := speed * factor

	if left {
		p.X -= d
	} else if right {
		p.X += d
	}
	if up {
		p.Z -= d
	} else if down {
		p.Z += d
	}
	p.Moving = left || right || up || down

	if h, ok := headingFor(left, right, up, down); ok {
		p.Heading = h
	}
}

// headingFor maps held keys to a facing. ok is false when no key is held,
// in which case the previous heading is kept.
func headingFor(left, right, up, down bool) (int, bool) {
	switch {
	case up && left:
		return -135, true
	case up && right:
		return 135, true
	case up:
		return 180, true
	case down && left:
		return -45, true
	case down && right:
		return 45, true
	case down:
		return 0, true
	case left:
		return -90, true
	case right:
		return 90, true
	}
	return 0, false
}
