// Package gldemos holds the geometry behind the OpenGL demos: vertex layouts,
// shape generators and the bouncing triangle simulation. It has no GPU
// dependencies so everything here is testable headless.
package gldemos

import (
	"unsafe"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
)

// Vec3 is three tightly packed float32s, the GPU side of an [ms3.Vec].
// ms3.Vec carries alignment padding and cannot be uploaded as a vec3 attribute directly.
type Vec3 struct {
	X, Y, Z float32
}

// Packed converts v to its packed vertex attribute form.
func Packed(v ms3.Vec) Vec3 { return Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// Vec returns v as an [ms3.Vec] for use with the geometry package.
func (v Vec3) Vec() ms3.Vec { return ms3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

// Vertex is an interleaved position and color vertex attribute pair.
// Its memory layout is six contiguous float32s so slices of Vertex may
// be uploaded to the GPU without conversion.
type Vertex struct {
	Pos   Vec3
	Color Vec3
}

// TexVertex is a position and texture coordinate vertex, five contiguous float32s.
type TexVertex struct {
	Pos Vec3
	UV  ms2.Vec
}

// Triangle is the shape unit shared by all demos: three corners in draw order.
type Triangle [3]Vertex

// Offsets of vertex attributes in bytes, for use when describing GPU attribute pointers.
const (
	VertexPosOffset   = int(unsafe.Offsetof(Vertex{}.Pos))
	VertexColorOffset = int(unsafe.Offsetof(Vertex{}.Color))
	TexVertexUVOffset = int(unsafe.Offsetof(TexVertex{}.UV))
)

// Vertices returns the triangles as a flat vertex slice sharing memory with tris.
func Vertices(tris []Triangle) []Vertex {
	if len(tris) == 0 {
		return nil
	}
	return unsafe.Slice(&tris[0][0], 3*len(tris))
}

// SetColor paints all corners of the triangle with c.
func (t *Triangle) SetColor(c Vec3) {
	for i := range t {
		t[i].Color = c
	}
}

// Translate moves all corners of the triangle by d in the XY plane.
func (t *Triangle) Translate(d ms2.Vec) {
	for i := range t {
		t[i].Pos.X += d.X
		t[i].Pos.Y += d.Y
	}
}

// Centroid returns the average of the triangle's corner positions.
func (t *Triangle) Centroid() ms3.Vec {
	c := ms3.Add(ms3.Add(t[0].Pos.Vec(), t[1].Pos.Vec()), t[2].Pos.Vec())
	return ms3.Scale(1./3, c)
}
