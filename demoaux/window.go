//go:build !tinygo && cgo

package demoaux

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/gldemos/camera"
)

// Run opens a window as configured by cfg and drives scene until the window
// is closed, Escape is pressed or ctx is done. Stopping by ctx or timeout is
// not an error. Run must be called from the main goroutine.
func Run(ctx context.Context, cfg Config, scene Scene) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, term, err := startGLFW(cfg)
	if err != nil {
		return err
	}
	defer term()
	logger.Info("opengl context ready", slog.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	in := new(Input)
	window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		in.cursorMoved(xpos, ypos)
	})
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		in.scrolled(yoff)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	if cfg.CaptureCursor {
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}

	frame := &Frame{Input: in, Logger: logger}
	frame.Width, frame.Height = window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(frame.Width), int32(frame.Height))
	if err := scene.Init(frame); err != nil {
		return fmt.Errorf("initializing scene: %w", err)
	}
	defer scene.Close()

	var fps FPSCounter
	fps.Tick(time.Now())
	previousTime := glfw.GetTime()
	bg := cfg.Background
	for !window.ShouldClose() {
		select {
		case <-ctx.Done():
			logger.Info("stopping", slog.Any("reason", context.Cause(ctx)))
			return nil
		default:
		}
		glfw.PollEvents()
		in.Move = movementKeys(window)

		currentTime := glfw.GetTime()
		frame.Dt = float32(currentTime - previousTime)
		previousTime = currentTime
		frame.Width, frame.Height = window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(frame.Width), int32(frame.Height))

		if err := scene.Update(frame); err != nil {
			return fmt.Errorf("updating scene: %w", err)
		}
		in.endFrame()

		gl.ClearColor(bg.X, bg.Y, bg.Z, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		if err := scene.Draw(frame); err != nil {
			return fmt.Errorf("drawing frame %d: %w", frame.Count, err)
		}
		window.SwapBuffers()
		frame.Count++

		if n, ok := fps.Tick(time.Now()); ok {
			logger.Debug("frame rate", slog.Int("fps", n))
			if cfg.ShowFPS {
				window.SetTitle(FPSTitle(cfg.Title, n))
			}
		}
	}
	return nil
}

func movementKeys(w *glfw.Window) camera.Movement {
	return movement(func(key int) bool { return w.GetKey(glfw.Key(key)) == glfw.Press })
}

func startGLFW(cfg Config) (window *glfw.Window, term func(), err error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("initializing GLFW: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err = glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("creating window: %w", err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	term = func() {
		window.Destroy()
		glfw.Terminate()
	}
	return window, term, nil
}
