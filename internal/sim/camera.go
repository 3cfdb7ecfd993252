package sim

import "github.com/go-gl/mathgl/mgl32"

// Camera defaults and limits (degrees).
const (
	DefaultCameraAngle    = 35.0
	DefaultCameraDistance = 60.0
	MinCameraAngle        = 0.0
	MaxCameraAngle        = 90.0
	MinCameraDistance     = 10.0
	MaxCameraDistance     = 120.0

	cameraBackoff = 100.0
	nearPlane     = 0.1
	farPlane      = 1000.0
)

// Camera looks down at the origin from a fixed distance. Angle tilts the
// scene about X; Distance is the vertical field of view, so larger values
// make the figure appear further away.
type Camera struct {
	Angle    float64
	Distance float64
}

func DefaultCamera() Camera {
	return Camera{Angle: DefaultCameraAngle, Distance: DefaultCameraDistance}
}

func (c *Camera) Clamp() {
	c.Angle = clampF(c.Angle, MinCameraAngle, MaxCameraAngle)
	c.Distance = clampF(c.Distance, MinCameraDistance, MaxCameraDistance)
}

// Nudge adjusts angle and distance by the given deltas and clamps.
func (c *Camera) Nudge(dAngle, dDistance float64) {
	c.Angle += dAngle
	c.Distance += dDistance
	c.Clamp()
}

func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(degToRad(c.Distance), aspect, nearPlane, farPlane)
}

// View is the base model-view transform every frame starts from.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -cameraBackoff).Mul4(mgl32.HomogRotate3DX(degToRad(c.Angle)))
}
