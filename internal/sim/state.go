package sim

// State is everything the demo carries from one frame to the next.
type State struct {
	Input  *InputState
	Pose   PlayerPose
	Anim   AnimationState
	Camera Camera
	Skin   Skin
	Speed  float64

	Events *EventBus
}

// NewState returns the demo's starting state: player at the origin facing
// the camera, boy skin, default camera and animation step.
func NewState() *State {
	return &State{
		Input:  NewInputState(),
		Anim:   NewAnimationState(DefaultAnimStep),
		Camera: DefaultCamera(),
		Skin:   SkinBoy,
		Speed:  PlayerSpeed,
		Events: NewEventBus(),
	}
}

// Step advances one frame: movement from the held keys, then the walk cycle.
// The animation step doubles as the movement factor.
func (s *State) Step() {
	UpdatePlayer(&s.Pose, s.Input, s.Speed, s.Anim.Step)
	if s.Anim.Advance(s.Pose.Moving) {
		s.emit(EventFootstep, s.Anim.Value)
	}
}

// ToggleSkin swaps the skin; it takes effect on the next composition.
func (s *State) ToggleSkin() {
	s.Skin.Toggle()
	s.emit(EventSkinToggled, float64(s.Skin))
}

// AdjustCamera nudges the camera and reports the change.
func (s *State) AdjustCamera(dAngle, dDistance float64) {
	s.Camera.Nudge(dAngle, dDistance)
	s.emit(EventTuningChanged, 0)
}

// AdjustSpeed changes the animation step by delta, within limits.
func (s *State) AdjustSpeed(delta float64) {
	s.Anim.SetStep(s.Anim.Step + delta)
	s.emit(EventTuningChanged, s.Anim.Step)
}

// Tune replaces camera and animation speed wholesale, e.g. from a reloaded config.
func (s *State) Tune(cam Camera, step float64) {
	s.Camera = cam
	s.Camera.Clamp()
	s.Anim.SetStep(step)
	s.emit(EventTuningChanged, s.Anim.Step)
}

func (s *State) emit(t EventType, v float64) {
	if s.Events == nil {
		return
	}
	s.Events.Emit(Event{Type: t, X: s.Pose.X, Z: s.Pose.Z, Value: v})
}
