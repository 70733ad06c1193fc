//go:build !tinygo && cgo

package glrender

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/soypat/glgl/v4.1-core/glgl"
)

// Mesh is a vertex array object with its vertex buffer and optional element buffer.
// All geometry is drawn as triangles with a single draw call.
type Mesh struct {
	vao, vbo, ebo uint32
	stride        int
	// capacity of the vertex buffer in vertices.
	capacity int
	nverts   int32
	nidx     int32
}

// NewMesh creates a mesh holding verts and configures attrs for prog.
// usage is a buffer usage hint such as gl.STATIC_DRAW or gl.DYNAMIC_DRAW.
// Attribute locations are looked up by name in the linked program.
// An empty verts creates a mesh that draws nothing.
func NewMesh[T any](prog glgl.Program, verts []T, usage uint32, attrs ...Attrib) (*Mesh, error) {
	if len(attrs) == 0 {
		return nil, errors.New("no vertex attributes")
	}
	stride := elemSize[T]()
	for _, a := range attrs {
		if err := a.validate(stride); err != nil {
			return nil, err
		}
	}
	m := &Mesh{stride: stride, capacity: len(verts), nverts: int32(len(verts))}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	var data unsafe.Pointer
	if len(verts) > 0 {
		data = unsafe.Pointer(&verts[0])
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*stride, data, usage)
	for _, a := range attrs {
		loc, err := prog.AttribLocation(cstr(a.Name))
		if err != nil {
			m.Delete()
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		gl.VertexAttribPointer(loc, a.Size, gl.FLOAT, false, int32(stride), gl.PtrOffset(a.Offset))
		gl.EnableVertexAttribArray(loc)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	if err := glgl.Err(); err != nil {
		m.Delete()
		return nil, err
	}
	return m, nil
}

// Upload replaces the whole vertex buffer contents with verts.
// verts must be of the same type the mesh was created with and may not exceed its original length.
func Upload[T any](m *Mesh, verts []T) error {
	if elemSize[T]() != m.stride {
		return errors.New("vertex type size mismatch")
	} else if len(verts) > m.capacity {
		return fmt.Errorf("upload of %d vertices exceeds buffer capacity %d", len(verts), m.capacity)
	} else if len(verts) == 0 {
		m.nverts = 0
		return nil
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*m.stride, unsafe.Pointer(&verts[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	m.nverts = int32(len(verts))
	return glgl.Err()
}

// SetIndices attaches an element buffer so Draw issues an indexed draw call.
func (m *Mesh) SetIndices(indices []uint32) error {
	if len(indices) == 0 {
		return errors.New("empty index data")
	}
	for _, idx := range indices {
		if int(idx) >= m.capacity {
			return fmt.Errorf("index %d out of range of %d vertices", idx, m.capacity)
		}
	}
	gl.BindVertexArray(m.vao)
	if m.ebo == 0 {
		gl.GenBuffers(1, &m.ebo)
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	gl.BindVertexArray(0)
	m.nidx = int32(len(indices))
	return glgl.Err()
}

// Draw issues one draw call for the mesh. The caller binds the program.
// Meshes without vertices draw nothing.
func (m *Mesh) Draw() {
	if m.nverts == 0 && m.nidx == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	if m.nidx > 0 {
		gl.DrawElements(gl.TRIANGLES, m.nidx, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.nverts)
	}
	gl.BindVertexArray(0)
}

// Vertices returns the number of vertices drawn by a non-indexed Draw.
func (m *Mesh) Vertices() int { return int(m.nverts) }

// Delete releases the GPU objects of the mesh. It is safe to call more than once.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
