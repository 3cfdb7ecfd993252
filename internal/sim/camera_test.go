package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraClamp(t *testing.T) {
	tests := []struct {
		name  string
		in    Camera
		wantA float64
		wantD float64
	}{
		{"defaults untouched", DefaultCamera(), DefaultCameraAngle, DefaultCameraDistance},
		{"too low", Camera{Angle: -10, Distance: 1}, MinCameraAngle, MinCameraDistance},
		{"too high", Camera{Angle: 200, Distance: 500}, MaxCameraAngle, MaxCameraDistance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in
			c.Clamp()
			if c.Angle != tt.wantA || c.Distance != tt.wantD {
				t.Errorf("Clamp() = %+v, want angle %v distance %v", c, tt.wantA, tt.wantD)
			}
		})
	}
}

func TestCameraNudge(t *testing.T) {
	c := DefaultCamera()
	c.Nudge(5, -10)
	if c.Angle != 40 || c.Distance != 50 {
		t.Errorf("Nudge = %+v, want angle 40 distance 50", c)
	}
	c.Nudge(100, 0)
	if c.Angle != MaxCameraAngle {
		t.Errorf("Angle = %v, want clamp to %v", c.Angle, MaxCameraAngle)
	}
}

func TestCameraViewPlacesOriginInFront(t *testing.T) {
	c := DefaultCamera()
	p := c.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if p.Z() != -cameraBackoff {
		t.Errorf("origin at z=%v, want %v", p.Z(), -cameraBackoff)
	}
	proj := c.Projection(4.0 / 3.0)
	clip := proj.Mul4x1(p)
	if clip.W() <= 0 {
		t.Errorf("origin behind the camera: clip %v", clip)
	}
}
