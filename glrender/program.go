//go:build !tinygo && cgo

package glrender

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/glgl/v4.1-core/glgl"
)

// CompileProgram compiles and links a vertex and fragment shader pair.
// The returned error carries the driver's info log on compile or link failure.
// Sources need not be null terminated.
func CompileProgram(vertex, fragment string) (glgl.Program, error) {
	prog, err := glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   cstr(vertex),
		Fragment: cstr(fragment),
	})
	if err != nil {
		return glgl.Program{}, fmt.Errorf("compiling shader program: %w", err)
	}
	return prog, nil
}

// Uniforms caches uniform locations of a program by name.
type Uniforms struct {
	prog glgl.Program
	locs map[string]int32
}

// NewUniforms resolves the named uniforms of prog. Names missing from
// the linked program, including uniforms optimized away by the driver, are an error.
func NewUniforms(prog glgl.Program, names ...string) (*Uniforms, error) {
	u := &Uniforms{prog: prog, locs: make(map[string]int32, len(names))}
	for _, name := range names {
		loc, err := prog.UniformLocation(cstr(name))
		if err != nil {
			return nil, fmt.Errorf("uniform %q: %w", name, err)
		}
		u.locs[name] = loc
	}
	return u, nil
}

func (u *Uniforms) loc(name string) (int32, error) {
	loc, ok := u.locs[name]
	if !ok {
		return -1, fmt.Errorf("uniform %q not resolved", name)
	}
	return loc, nil
}

// SetMat4 sets a mat4 uniform. The program must be bound.
func (u *Uniforms) SetMat4(name string, m mgl32.Mat4) error {
	loc, err := u.loc(name)
	if err != nil {
		return err
	}
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
	return glgl.Err()
}

// SetVec3 sets a vec3 uniform. The program must be bound.
func (u *Uniforms) SetVec3(name string, v mgl32.Vec3) error {
	loc, err := u.loc(name)
	if err != nil {
		return err
	}
	gl.Uniform3f(loc, v[0], v[1], v[2])
	return glgl.Err()
}

// SetFloat sets a float uniform. The program must be bound.
func (u *Uniforms) SetFloat(name string, f float32) error {
	loc, err := u.loc(name)
	if err != nil {
		return err
	}
	gl.Uniform1f(loc, f)
	return glgl.Err()
}

// SetInt sets an int or sampler uniform. The program must be bound.
func (u *Uniforms) SetInt(name string, i int32) error {
	loc, err := u.loc(name)
	if err != nil {
		return err
	}
	gl.Uniform1i(loc, i)
	return glgl.Err()
}
