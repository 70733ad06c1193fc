package demoaux

import (
	"strconv"
	"time"
)

// FPSCounter counts frames over one second windows.
type FPSCounter struct {
	start  time.Time
	frames int
}

// Tick registers a frame rendered at now. Once at least a second has passed since
// the window began it returns the frames counted in it and starts a new window.
// The first call only starts the window.
func (c *FPSCounter) Tick(now time.Time) (fps int, ok bool) {
	if c.start.IsZero() {
		c.start = now
		return 0, false
	}
	c.frames++
	if now.Sub(c.start) < time.Second {
		return 0, false
	}
	fps = c.frames
	c.frames = 0
	c.start = now
	return fps, true
}

// FPSTitle formats a window title with the frame rate appended.
func FPSTitle(title string, fps int) string {
	return title + " - FPS: " + strconv.Itoa(fps)
}
