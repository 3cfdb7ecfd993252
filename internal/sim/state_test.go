package sim

import "testing"

func TestStateStepWalksAndFootsteps(t *testing.T) {
	s := NewState()
	var steps []Event
	s.Events.Subscribe(EventFootstep, func(e Event) { steps = append(steps, e) })

	s.Input.KeyDown(KeyRight)
	for i := 0; i < 30; i++ {
		s.Step()
	}
	if s.Pose.Heading != 90 || !s.Pose.Moving {
		t.Fatalf("pose = %+v, want moving with heading 90", s.Pose)
	}
	wantX := 30 * PlayerSpeed * DefaultAnimStep
	if d := s.Pose.X - wantX; d > 1e-9 || d < -1e-9 {
		t.Errorf("X = %v, want %v", s.Pose.X, wantX)
	}
	// Turns at frame 10 (+1) and frame 30 (-1).
	if len(steps) != 2 {
		t.Fatalf("footsteps = %d, want 2", len(steps))
	}
	if steps[0].Value != 1 || steps[1].Value != -1 {
		t.Errorf("footstep values = %v, %v; want 1, -1", steps[0].Value, steps[1].Value)
	}

	s.Input.KeyUp(KeyRight)
	for i := 0; i < 30; i++ {
		s.Step()
	}
	if s.Pose.Moving {
		t.Error("still moving after key release")
	}
	if s.Anim.Value != 0 {
		t.Errorf("animation Value = %v after stopping, want 0", s.Anim.Value)
	}
	if s.Pose.Heading != 90 {
		t.Errorf("Heading = %d after stopping, want 90", s.Pose.Heading)
	}
}

func TestStateTuning(t *testing.T) {
	s := NewState()
	changes := 0
	s.Events.Subscribe(EventTuningChanged, func(Event) { changes++ })

	s.AdjustCamera(10, -20)
	if s.Camera.Angle != 45 || s.Camera.Distance != 40 {
		t.Errorf("camera = %+v, want angle 45 distance 40", s.Camera)
	}
	s.AdjustSpeed(0.05)
	if s.Anim.Step != 0.15 {
		t.Errorf("step = %v, want 0.15", s.Anim.Step)
	}
	s.Tune(Camera{Angle: 500, Distance: 0}, 9)
	if s.Camera.Angle != MaxCameraAngle || s.Camera.Distance != MinCameraDistance {
		t.Errorf("Tune did not clamp camera: %+v", s.Camera)
	}
	if s.Anim.Step != MaxAnimStep {
		t.Errorf("Tune did not clamp step: %v", s.Anim.Step)
	}
	if changes != 3 {
		t.Errorf("tuning events = %d, want 3", changes)
	}
}

func TestStateWithoutEventBus(t *testing.T) {
	s := NewState()
	s.Events = nil
	s.Input.KeyDown(KeyUp)
	for i := 0; i < 15; i++ {
		s.Step()
	}
	s.ToggleSkin()
	if s.Skin != SkinGirl {
		t.Errorf("Skin = %v, want girl", s.Skin)
	}
}
