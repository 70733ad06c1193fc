// Package glrender holds the OpenGL plumbing shared by the demos: shader program
// compilation, vertex buffer meshes, textures and image decoding.
//
// GPU bound functions require cgo and a current OpenGL 4.1 core context.
package glrender

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"
)

// Attrib describes one vertex attribute within an interleaved vertex struct.
type Attrib struct {
	// Name is the attribute name in the vertex shader.
	Name string
	// Size is the number of float32 components, 1 to 4.
	Size int32
	// Offset is the byte offset of the attribute within the vertex struct.
	Offset int
}

func (a Attrib) validate(stride int) error {
	if a.Name == "" {
		return errors.New("attribute with empty name")
	} else if a.Size < 1 || a.Size > 4 {
		return fmt.Errorf("attribute %q: size %d out of range 1..4", a.Name, a.Size)
	} else if a.Offset < 0 || a.Offset+int(a.Size)*4 > stride {
		return fmt.Errorf("attribute %q: offset %d overflows %d byte vertex", a.Name, a.Offset, stride)
	}
	return nil
}

func elemSize[T any]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// cstr null terminates s for the GL API.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
