package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lixenwraith/backdrop/constant"
	"github.com/lixenwraith/backdrop/vmath"
)

// Camera is a perspective viewpoint whose x and y ease toward a target each frame
type Camera struct {
	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64

	Position vmath.Vec3F
	LookAtPt vmath.Vec3F
	Up       vmath.Vec3F

	projection mgl32.Mat4
}

// NewCamera places the camera on +Z looking at the origin
func NewCamera(aspect float64) *Camera {
	c := &Camera{
		FOV:      constant.CameraFOV,
		Near:     constant.CameraNear,
		Far:      constant.CameraFar,
		Position: vmath.Vec3F{Z: constant.CameraZ},
		Up:       vmath.Vec3F{Y: 1},
	}
	c.SetAspect(aspect)
	return c
}

// SetAspect updates the aspect ratio and recomputes the projection
func (c *Camera) SetAspect(aspect float64) {
	if aspect <= 0 {
		aspect = 1
	}
	c.Aspect = aspect
	c.projection = mgl32.Perspective(
		mgl32.DegToRad(float32(c.FOV)),
		float32(c.Aspect),
		float32(c.Near),
		float32(c.Far),
	)
}

// Follow performs one exponential smoothing step toward the pre-scaled pointer target
// Only x and y move; z stays fixed
func (c *Camera) Follow(targetX, targetY float64) {
	c.Position.X = vmath.Smooth(c.Position.X, targetX*constant.CameraTargetScale, constant.CameraDamping)
	c.Position.Y = vmath.Smooth(c.Position.Y, targetY*constant.CameraTargetScale, constant.CameraDamping)
}

// LookAt orients the camera toward a world point
func (c *Camera) LookAt(p vmath.Vec3F) {
	c.LookAtPt = p
}

// Projection returns the perspective matrix for the current aspect
func (c *Camera) Projection() mgl32.Mat4 {
	return c.projection
}

// View returns the world-to-camera matrix
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(vmath.V3FToGL(c.Position), vmath.V3FToGL(c.LookAtPt), vmath.V3FToGL(c.Up))
}
