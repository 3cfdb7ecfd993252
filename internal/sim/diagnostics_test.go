package sim

import (
	"testing"
	"time"
)

func TestDiagnosticsRateLimited(t *testing.T) {
	s := NewState()
	d := NewDiagnostics(DiagnosticsInterval)
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	if _, ok := d.Sample(t0, s); !ok {
		t.Fatal("first Sample not emitted")
	}
	s.Pose.X = 42
	for _, dt := range []time.Duration{16 * time.Millisecond, 500 * time.Millisecond, 999 * time.Millisecond} {
		r, ok := d.Sample(t0.Add(dt), s)
		if ok {
			t.Fatalf("Sample at +%v emitted, want suppressed", dt)
		}
		if r.Position != "<0, 0, 0>" {
			t.Fatalf("suppressed Sample returned %q, want previous readout", r.Position)
		}
	}
	r, ok := d.Sample(t0.Add(time.Second), s)
	if !ok {
		t.Fatal("Sample at +1s suppressed")
	}
	if r.Position != "<42, 0, 0>" {
		t.Errorf("Position = %q, want <42, 0, 0>", r.Position)
	}
	if d.Current() != r {
		t.Error("Current() differs from last emitted readout")
	}
}

func TestDiagnosticsDoesNotMutateState(t *testing.T) {
	s := NewState()
	s.Pose = PlayerPose{X: 1.5, Z: -2.5, Heading: 135, Moving: true}
	before := *s
	d := NewDiagnostics(DiagnosticsInterval)
	d.Sample(time.Now(), s)
	if s.Pose != before.Pose || s.Anim != before.Anim || s.Camera != before.Camera || s.Skin != before.Skin {
		t.Error("Sample modified the state")
	}
}

func TestFormatReadout(t *testing.T) {
	s := NewState()
	s.Pose = PlayerPose{X: 1.5, Z: -2.5, Heading: -135}
	s.Camera = Camera{Angle: 35.4, Distance: 59.6}
	s.Anim.Step = 0.15

	r := FormatReadout(s)
	tests := []struct {
		name, got, want string
	}{
		{"position", r.Position, "<2, 0, -2>"},
		{"heading", r.Heading, "<-135>"},
		{"angle", r.CameraAngle, "<35>"},
		{"distance", r.CameraDistance, "<60>"},
		{"speed", r.Speed, "<0.15>"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
	if n := len(r.Lines()); n != 5 {
		t.Errorf("Lines() returned %d lines, want 5", n)
	}
}
