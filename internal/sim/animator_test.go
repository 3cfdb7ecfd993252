package sim

import (
	"math"
	"testing"
)

func TestAdvanceDrivingFlipsAtOne(t *testing.T) {
	for _, step := range []float64{0.1, 0.05, 0.3, 0.25, 0.5} {
		a := NewAnimationState(step)
		frames := int(math.Ceil(1/step - eps))
		for i := 1; i < frames; i++ {
			if a.Advance(true) {
				t.Fatalf("step %v: flipped early at frame %d (value %v)", step, i, a.Value)
			}
		}
		if !a.Advance(true) {
			t.Fatalf("step %v: no flip after %d frames (value %v)", step, frames, a.Value)
		}
		if a.Value != 1 {
			t.Errorf("step %v: Value = %v at turn, want 1", step, a.Value)
		}
		if a.Forward {
			t.Errorf("step %v: Forward still true after flip", step)
		}
	}
}

func TestAdvanceDrivingTriangleWave(t *testing.T) {
	a := NewAnimationState(0.1)
	flips := 0
	sawNegOne := false
	for i := 0; i < 100; i++ {
		if a.Advance(true) {
			flips++
		}
		if a.Value == -1 {
			sawNegOne = true
		}
	}
	// 10 frames up, then a flip every 20 frames.
	if flips != 5 {
		t.Errorf("flips = %d over 100 frames, want 5", flips)
	}
	if !sawNegOne {
		t.Error("never reached -1")
	}
}

func TestAdvanceStaysInRange(t *testing.T) {
	for _, step := range []float64{0.01, 0.07, 0.1, 0.3, 0.45, 0.5} {
		a := NewAnimationState(step)
		for i := 0; i < 1000; i++ {
			// Walk for a while, stop, walk again.
			moving := (i/37)%3 != 2
			a.Advance(moving)
			if a.Value < -1 || a.Value > 1 {
				t.Fatalf("step %v frame %d: Value %v out of [-1,1]", step, i, a.Value)
			}
		}
	}
}

func TestAdvanceDecaySequence(t *testing.T) {
	a := AnimationState{Value: 0.5, Forward: true, Step: 0.1}
	want := []float64{0.4, 0.3, 0.2, 0}
	for i, w := range want {
		a.Advance(false)
		if math.Abs(a.Value-w) > 1e-9 {
			t.Fatalf("frame %d: Value = %v, want %v", i, a.Value, w)
		}
	}
	if a.Value != 0 {
		t.Errorf("final Value = %v, want exactly 0", a.Value)
	}
	if !a.Idle() {
		t.Error("Idle() = false after snap")
	}
}

func TestAdvanceDecayNegative(t *testing.T) {
	a := AnimationState{Value: -0.75, Step: 0.1}
	for i := 0; i < 20 && !a.Idle(); i++ {
		prev := a.Value
		a.Advance(false)
		if a.Value < prev {
			t.Fatalf("frame %d: moved away from zero %v -> %v", i, prev, a.Value)
		}
	}
	if a.Value != 0 {
		t.Errorf("Value = %v, want 0", a.Value)
	}
}

func TestAdvanceResumesFromIdle(t *testing.T) {
	a := NewAnimationState(0.1)
	a.Advance(false)
	if a.Value != 0 {
		t.Fatalf("idle Value = %v", a.Value)
	}
	a.Advance(true)
	if math.Abs(a.Value-0.1) > 1e-12 {
		t.Errorf("Value after resume = %v, want 0.1", a.Value)
	}
}

func TestSetStepClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.1, 0.1},
		{0.123, 0.12},
		{0, MinAnimStep},
		{-1, MinAnimStep},
		{2, MaxAnimStep},
	}
	for _, tt := range tests {
		var a AnimationState
		a.SetStep(tt.in)
		if a.Step != tt.want {
			t.Errorf("SetStep(%v) -> %v, want %v", tt.in, a.Step, tt.want)
		}
	}
}
