package sim

import "math"

// Animation speed limits and default.
const (
	DefaultAnimStep = 0.1
	MinAnimStep     = 0.01
	MaxAnimStep     = 0.5
)

// AnimationState is the walk-cycle swing fraction. Value stays in [-1,1];
// limbs swing Value*SwingDegrees.
type AnimationState struct {
	Value   float64
	Forward bool
	Step    float64
}

func NewAnimationState(step float64) AnimationState {
	return AnimationState{Forward: true, Step: step}
}

// Advance moves the walk cycle by one frame. While moving, Value ramps
// between -1 and 1 and the direction flips at each end; flipped reports that.
// While idle, Value decays toward zero by Step and snaps to zero once it is
// within 2*Step.
func (a *AnimationState) Advance(moving bool) (flipped bool) {
	if moving {
		if a.Forward {
			a.Value += a.Step
		} else {
			a.Value -= a.Step
		}
		if a.Value >= 1-eps || a.Value <= -1+eps {
			a.Value = clampF(math.Round(a.Value), -1, 1)
			a.Forward = !a.Forward
			return true
		}
		return false
	}

	if math.Abs(a.Value) > 2*a.Step+eps {
		a.Value = approach(a.Value, 0, a.Step)
	} else {
		a.Value = 0
	}
	return false
}

// Idle reports whether the animator is at rest.
func (a *AnimationState) Idle() bool { return a.Value == 0 }

// SetStep changes the step size, clamped to the supported range and
// rounded to hundredths.
func (a *AnimationState) SetStep(step float64) {
	a.Step = clampF(math.Round(step*100)/100, MinAnimStep, MaxAnimStep)
}
