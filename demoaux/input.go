package demoaux

import (
	"log/slog"

	"github.com/soypat/gldemos/camera"
)

// Input accumulates user input between frames. Window callbacks write
// into it and the render loop clears the deltas after each Update.
type Input struct {
	// CursorDX and CursorDY are the cursor displacement since the last frame
	// with y pointing up. The first cursor sample produces no displacement.
	CursorDX, CursorDY float32
	// ScrollY is the vertical scroll offset since the last frame.
	ScrollY float32
	// Move holds the movement keys held down this frame:
	// W, S, A, D, Space and either Shift.
	Move  camera.Movement
	mouse camera.Mouse
}

func (in *Input) cursorMoved(x, y float64) {
	dx, dy := in.mouse.Move(x, y)
	in.CursorDX += dx
	in.CursorDY += dy
}

func (in *Input) scrolled(yoff float64) {
	in.ScrollY += float32(yoff)
}

// endFrame discards per frame deltas. Held keys persist.
func (in *Input) endFrame() {
	in.CursorDX, in.CursorDY = 0, 0
	in.ScrollY = 0
}

// GLFW key codes read by [movement].
const (
	keySpace      = 32
	keyA          = 65
	keyD          = 68
	keyS          = 83
	keyW          = 87
	keyLeftShift  = 340
	keyRightShift = 344
)

// movement maps held keys to camera movement. held reports whether the GLFW key code is down.
func movement(held func(key int) bool) camera.Movement {
	return camera.Movement{
		Forward: held(keyW),
		Back:    held(keyS),
		Left:    held(keyA),
		Right:   held(keyD),
		Up:      held(keySpace),
		Down:    held(keyLeftShift) || held(keyRightShift),
	}
}

// Frame is the state handed to a [Scene] each loop iteration.
type Frame struct {
	Input *Input
	// Dt is the time elapsed since the previous frame in seconds.
	Dt float32
	// Width and Height are the framebuffer size in pixels.
	Width, Height int
	// Count is the number of frames drawn so far.
	Count  int
	Logger *slog.Logger
}

// Scene is a demo driven by [Run]. Init is called once the OpenGL context is
// current, Update and Draw once per frame and Close before the context is destroyed.
// The framebuffer is cleared between Update and Draw.
type Scene interface {
	Init(*Frame) error
	Update(*Frame) error
	Draw(*Frame) error
	Close()
}
