// Package camera implements the free-fly first person camera, perspective lens
// and cursor tracking used by the 3D demos. It has no window system dependency:
// callers translate their input into [Movement] and cursor positions.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Pitch limits in degrees. Looking straight up or down would make the view
// direction parallel to the up vector and flip the view.
const (
	MaxPitch = 89
	MinPitch = -MaxPitch
)

// WorldUp is the fixed up direction of all cameras.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Movement is the set of translation keys held during a frame.
type Movement struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool
}

// Any reports whether any movement key is held.
func (m Movement) Any() bool {
	return m.Forward || m.Back || m.Left || m.Right || m.Up || m.Down
}

// FreeFly is a first person camera driven by yaw and pitch angles in degrees.
// Horizontal movement follows the view direction projected on the ground plane
// so looking up or down does not change walking speed.
type FreeFly struct {
	Pos   mgl32.Vec3
	Yaw   float32
	Pitch float32
	// Front is the unit view direction derived from Yaw and Pitch. Updated by Look.
	Front mgl32.Vec3
	// Speed is the translation speed in units per second.
	Speed float32
	// Sensitivity converts cursor offsets to degrees.
	Sensitivity float32
}

// NewFreeFly returns a camera at pos looking down the negative Z axis.
func NewFreeFly(pos mgl32.Vec3) *FreeFly {
	c := &FreeFly{
		Pos:         pos,
		Yaw:         -90,
		Speed:       10,
		Sensitivity: 0.1,
	}
	c.updateFront()
	return c
}

// Look applies a cursor offset. Positive dx turns right, positive dy looks up.
// Pitch is clamped to [MinPitch, MaxPitch].
func (c *FreeFly) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+dy*c.Sensitivity, MinPitch, MaxPitch)
	c.updateFront()
}

// Move translates the camera along its flattened forward and right axes and the world up axis.
// Distance travelled is Speed*dt regardless of frame rate.
func (c *FreeFly) Move(m Movement, dt float32) {
	if !m.Any() {
		return
	}
	step := c.Speed * dt
	front, right := c.Flat()
	if m.Forward {
		c.Pos = c.Pos.Add(front.Mul(step))
	}
	if m.Back {
		c.Pos = c.Pos.Sub(front.Mul(step))
	}
	if m.Right {
		c.Pos = c.Pos.Add(right.Mul(step))
	}
	if m.Left {
		c.Pos = c.Pos.Sub(right.Mul(step))
	}
	if m.Up {
		c.Pos = c.Pos.Add(WorldUp.Mul(step))
	}
	if m.Down {
		c.Pos = c.Pos.Sub(WorldUp.Mul(step))
	}
}

// Flat returns the view direction projected onto the ground plane and
// the right vector perpendicular to it, both normalized.
func (c *FreeFly) Flat() (front, right mgl32.Vec3) {
	front = mgl32.Vec3{c.Front.X(), 0, c.Front.Z()}.Normalize()
	right = front.Cross(WorldUp).Normalize()
	return front, right
}

// View returns the world to camera transform.
func (c *FreeFly) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Pos, c.Pos.Add(c.Front), WorldUp)
}

func (c *FreeFly) updateFront() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	c.Front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}
