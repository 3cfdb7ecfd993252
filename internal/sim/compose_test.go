package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func centre(dc DrawCall) mgl32.Vec3 {
	return dc.ModelView.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
}

func byName(calls []DrawCall) map[string]DrawCall {
	m := make(map[string]DrawCall, len(calls))
	for _, c := range calls {
		m[c.Name] = c
	}
	return m
}

func TestComposeEmitsEveryPart(t *testing.T) {
	s := NewState()
	st := NewTransformStack()
	calls, err := Compose(nil, st, s)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	want := map[string]Part{
		"head": PartHead, "body": PartBody,
		"arm_left": PartArm, "arm_right": PartArm,
		"leg_left": PartLeg, "leg_right": PartLeg,
	}
	if len(calls) != len(want) {
		t.Fatalf("got %d draw calls, want %d", len(calls), len(want))
	}
	for _, c := range calls {
		p, ok := want[c.Name]
		if !ok {
			t.Errorf("unexpected draw call %q", c.Name)
			continue
		}
		if c.Part != p {
			t.Errorf("%s drawn with %v, want %v", c.Name, c.Part, p)
		}
	}
	if st.Depth() != 0 {
		t.Errorf("stack depth after Compose = %d, want 0", st.Depth())
	}
	if st.Top() != s.Camera.View() {
		t.Error("stack not restored to camera view")
	}
}

func TestComposeRestPose(t *testing.T) {
	s := NewState()
	s.Camera = Camera{Angle: 0, Distance: DefaultCameraDistance}
	calls, err := Compose(nil, NewTransformStack(), s)
	if err != nil {
		t.Fatal(err)
	}
	parts := byName(calls)

	// With no tilt the view is a pure translate along -Z.
	want := map[string]mgl32.Vec3{
		"head":      {0, 28, -100},
		"body":      {0, 18, -100},
		"arm_left":  {-6, 18, -100},
		"arm_right": {6, 18, -100},
		"leg_left":  {-2, 6, -100},
		"leg_right": {2, 6, -100},
	}
	for name, w := range want {
		got := centre(parts[name])
		if !got.ApproxEqualThreshold(w, 1e-4) {
			t.Errorf("%s centre = %v, want %v", name, got, w)
		}
	}
}

func TestComposeFollowsPlayer(t *testing.T) {
	s := NewState()
	s.Camera = Camera{Angle: 0, Distance: DefaultCameraDistance}
	s.Pose = PlayerPose{X: 10, Z: -4, Heading: 90}
	calls, err := Compose(nil, NewTransformStack(), s)
	if err != nil {
		t.Fatal(err)
	}
	head := centre(byName(calls)["head"])
	if !head.ApproxEqualThreshold(mgl32.Vec3{10, 28, -104}, 1e-4) {
		t.Errorf("head centre = %v", head)
	}
	// RotateY(90) maps the figure's local -X onto world +Z.
	arm := centre(byName(calls)["arm_left"])
	if math.Abs(float64(arm.Z()-(-104+6))) > 1e-4 {
		t.Errorf("left arm centre = %v, want z %v", arm, -104+6)
	}
}

func TestComposeLimbsSwingOpposite(t *testing.T) {
	s := NewState()
	s.Camera = Camera{Angle: 0, Distance: DefaultCameraDistance}
	s.Anim.Value = 1
	calls, err := Compose(nil, NewTransformStack(), s)
	if err != nil {
		t.Fatal(err)
	}
	parts := byName(calls)
	al, ar := centre(parts["arm_left"]), centre(parts["arm_right"])
	if al.Z() == ar.Z() {
		t.Fatalf("arms not swinging: left %v right %v", al, ar)
	}
	if (al.Z() > -100) == (ar.Z() > -100) {
		t.Errorf("arms swing the same way: left z %v right z %v", al.Z(), ar.Z())
	}
	ll, lr := centre(parts["leg_left"]), centre(parts["leg_right"])
	if (ll.Z() > -100) == (lr.Z() > -100) {
		t.Errorf("legs swing the same way: left z %v right z %v", ll.Z(), lr.Z())
	}
	if (al.Z() > -100) == (ll.Z() > -100) {
		t.Errorf("left arm and left leg swing together: arm z %v leg z %v", al.Z(), ll.Z())
	}
}

func TestComposeReusesBuffer(t *testing.T) {
	s := NewState()
	st := NewTransformStack()
	buf := make([]DrawCall, 0, 8)
	calls, err := Compose(buf[:0], st, s)
	if err != nil {
		t.Fatal(err)
	}
	if &calls[0] != &buf[:1][0] {
		t.Error("Compose did not append into the provided buffer")
	}
}
