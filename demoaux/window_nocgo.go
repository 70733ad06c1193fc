//go:build tinygo || !cgo

package demoaux

import (
	"context"
	"errors"
)

// Run requires cgo for GLFW and OpenGL.
func Run(ctx context.Context, cfg Config, scene Scene) error {
	return errors.New("demoaux: Run requires cgo")
}
