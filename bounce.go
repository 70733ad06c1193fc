package gldemos

import (
	"errors"

	"github.com/soypat/geometry/ms2"
)

// NDC is the normalized device coordinate square the rasterizer maps to the framebuffer.
var NDC = ms2.Box{Min: ms2.Vec{X: -1, Y: -1}, Max: ms2.Vec{X: 1, Y: 1}}

// Bouncer moves triangles with constant velocity inside a box, reflecting
// a velocity component whenever any corner of a triangle would leave the box on that axis.
// Triangles do not interact with each other.
type Bouncer struct {
	Triangles  []Triangle
	Velocities []ms2.Vec
	// Bounds is the reflection box. The zero value means [NDC].
	Bounds ms2.Box
}

// NewBouncer returns a Bouncer over tris with one velocity per triangle.
func NewBouncer(tris []Triangle, velocities []ms2.Vec) (*Bouncer, error) {
	if len(tris) != len(velocities) {
		return nil, errors.New("triangle and velocity count mismatch")
	}
	return &Bouncer{Triangles: tris, Velocities: velocities, Bounds: NDC}, nil
}

// Step advances every triangle by one frame and returns the number of axis reflections performed.
//
// The reflection decision for a triangle is made from its current corners plus the
// proposed velocity before any corner is moved. After both axes are resolved the same,
// possibly negated, velocity is added to all three corners.
func (b *Bouncer) Step() (reflections int) {
	bb := b.bounds()
	for i := range b.Triangles {
		tri := &b.Triangles[i]
		v := b.Velocities[i]
		flipX, flipY := crossings(tri, v, bb)
		if flipX {
			v.X = -v.X
			reflections++
		}
		if flipY {
			v.Y = -v.Y
			reflections++
		}
		b.Velocities[i] = v
		tri.Translate(v)
	}
	return reflections
}

// StepN calls Step n times and returns the total number of reflections.
func (b *Bouncer) StepN(n int) (reflections int) {
	for i := 0; i < n; i++ {
		reflections += b.Step()
	}
	return reflections
}

func (b *Bouncer) bounds() ms2.Box {
	if b.Bounds == (ms2.Box{}) {
		return NDC
	}
	return b.Bounds
}

// crossings reports per axis whether any corner of tri would fall outside bb after moving by v.
func crossings(tri *Triangle, v ms2.Vec, bb ms2.Box) (x, y bool) {
	for _, vert := range tri {
		nx := vert.Pos.X + v.X
		ny := vert.Pos.Y + v.Y
		if nx > bb.Max.X || nx < bb.Min.X {
			x = true
		}
		if ny > bb.Max.Y || ny < bb.Min.Y {
			y = true
		}
	}
	return x, y
}
