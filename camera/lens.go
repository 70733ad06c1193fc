package camera

import "github.com/go-gl/mathgl/mgl32"

// Field of view limits in degrees.
const (
	MinFOV = 1
	MaxFOV = 180
)

// Lens holds the perspective projection parameters.
type Lens struct {
	// FOV is the vertical field of view in degrees.
	FOV float32
	// ZoomRate is the number of degrees one scroll unit narrows the field of view.
	ZoomRate  float32
	Near, Far float32
}

// NewLens returns a 90 degree lens with clip planes at 0.1 and 1000.
func NewLens() Lens {
	return Lens{FOV: 90, ZoomRate: 2, Near: 0.1, Far: 1000}
}

// Zoom narrows the field of view for positive scroll offsets and widens it for negative ones.
// The result is clamped to [MinFOV, MaxFOV].
func (l *Lens) Zoom(yoff float32) {
	l.FOV = mgl32.Clamp(l.FOV-yoff*l.ZoomRate, MinFOV, MaxFOV)
}

// Projection returns the perspective matrix for a framebuffer of the given size.
// Degenerate sizes, such as those of a minimized window, use an aspect ratio of 1.
func (l *Lens) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(l.FOV), aspect, l.Near, l.Far)
}

// Mouse converts absolute cursor positions into per-sample offsets.
// The first sample after construction or Reset only records the position.
type Mouse struct {
	lastX, lastY float64
	primed       bool
}

// Move records the cursor at (x, y) and returns the offset from the previous sample.
// dy is positive when the cursor moves up the screen.
func (m *Mouse) Move(x, y float64) (dx, dy float32) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
		return 0, 0
	}
	dx = float32(x - m.lastX)
	dy = float32(m.lastY - y) // Screen Y grows downwards.
	m.lastX, m.lastY = x, y
	return dx, dy
}

// Reset makes the next sample a priming sample, e.g. after the window regains focus.
func (m *Mouse) Reset() { m.primed = false }

// Offset is a model translation nudged by a fixed step per frame.
type Offset struct {
	Pos  mgl32.Vec3
	Step float32
}

// Nudge moves the offset one step along X: positive when left is held and negative when right is held.
// The voxel wall moves opposite to the held direction so the viewer appears to walk along it.
func (o *Offset) Nudge(left, right bool) {
	if right {
		o.Pos[0] -= o.Step
	}
	if left {
		o.Pos[0] += o.Step
	}
}

// Model returns the translation matrix of the offset.
func (o *Offset) Model() mgl32.Mat4 {
	return mgl32.Translate3D(o.Pos.X(), o.Pos.Y(), o.Pos.Z())
}
