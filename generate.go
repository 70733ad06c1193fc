package gldemos

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
)

var (
	errNegativeCount = errors.New("negative shape count")
	errEmptyBox      = errors.New("empty or inverted sampling box")
)

// BounceConfig configures the bouncing triangle population.
type BounceConfig struct {
	// Spawn is the region shape centers are drawn from.
	Spawn ms2.Box
	// Size is the distance from a shape's center to its corners along each axis.
	Size float32
	// MaxSpeed bounds the absolute value of each velocity component per frame.
	MaxSpeed float32
	// RandomColor gives each shape its own uniformly random color. Otherwise Color is used.
	RandomColor bool
	Color       Vec3
}

// DefaultBounceConfig returns the configuration of the DVD style demos.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Spawn:    ms2.Box{Min: ms2.Vec{X: -0.8, Y: -0.8}, Max: ms2.Vec{X: 0.8, Y: 0.8}},
		Size:     0.1,
		MaxSpeed: 0.01,
		Color:    Vec3{X: 0.2, Y: 0.6, Z: 1.0},
	}
}

// NewBouncingTriangles generates n upright triangles with random centers and velocities
// and returns a Bouncer that owns them. Shapes are created on the z=0 plane.
func NewBouncingTriangles(rng *rand.Rand, n int, cfg BounceConfig) (*Bouncer, error) {
	if n < 0 {
		return nil, errNegativeCount
	} else if !validBox2(cfg.Spawn) {
		return nil, errEmptyBox
	} else if cfg.Size <= 0 || cfg.MaxSpeed < 0 {
		return nil, fmt.Errorf("invalid shape size %v or speed %v", cfg.Size, cfg.MaxSpeed)
	}
	tris := make([]Triangle, n)
	vels := make([]ms2.Vec, n)
	s := cfg.Size
	for i := range tris {
		c := uniform2(rng, cfg.Spawn)
		tris[i] = Triangle{
			{Pos: Vec3{X: c.X, Y: c.Y + s}},
			{Pos: Vec3{X: c.X - s, Y: c.Y - s}},
			{Pos: Vec3{X: c.X + s, Y: c.Y - s}},
		}
		color := cfg.Color
		if cfg.RandomColor {
			color = randColor(rng)
		}
		tris[i].SetColor(color)
		vels[i] = ms2.Vec{
			X: uniform(rng, -cfg.MaxSpeed, cfg.MaxSpeed),
			Y: uniform(rng, -cfg.MaxSpeed, cfg.MaxSpeed),
		}
	}
	return NewBouncer(tris, vels)
}

// RandomTriangles returns n triangles whose corners are each drawn independently from pos.
// Every corner gets its own color drawn from colors.
func RandomTriangles(rng *rand.Rand, n int, pos, colors ms3.Box) ([]Triangle, error) {
	if n < 0 {
		return nil, errNegativeCount
	} else if !validBox3(pos) || !validBox3(colors) {
		return nil, errEmptyBox
	}
	tris := make([]Triangle, n)
	for i := range tris {
		for j := range tris[i] {
			tris[i][j] = Vertex{
				Pos:   Packed(uniform3(rng, pos)),
				Color: Packed(uniform3(rng, colors)),
			}
		}
	}
	return tris, nil
}

// FieldConfig configures [TriangleField].
type FieldConfig struct {
	// Spawn is the region triangle pair centers are drawn from.
	Spawn ms3.Box
	// HalfSize is half the edge length of each triangle.
	HalfSize float32
}

// DefaultFieldConfig returns the configuration of the first-person camera demo.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Spawn:    ms3.Box{Min: ms3.Vec{X: -50, Y: -5, Z: -50}, Max: ms3.Vec{X: 50, Y: 5, Z: 50}},
		HalfSize: 0.5,
	}
}

// TriangleField generates n crossed triangle pairs scattered over cfg.Spawn.
// Each pair shares a random color; one triangle faces +Z and the other +X,
// so 2*n triangles are returned.
func TriangleField(rng *rand.Rand, n int, cfg FieldConfig) ([]Triangle, error) {
	if n < 0 {
		return nil, errNegativeCount
	} else if !validBox3(cfg.Spawn) {
		return nil, errEmptyBox
	} else if cfg.HalfSize <= 0 {
		return nil, errors.New("non-positive triangle size")
	}
	s := cfg.HalfSize
	tris := make([]Triangle, 0, 2*n)
	for i := 0; i < n; i++ {
		p := uniform3(rng, cfg.Spawn)
		color := randColor(rng)
		front := Triangle{
			{Pos: Vec3{X: p.X, Y: p.Y + s, Z: p.Z}},
			{Pos: Vec3{X: p.X - s, Y: p.Y - s, Z: p.Z}},
			{Pos: Vec3{X: p.X + s, Y: p.Y - s, Z: p.Z}},
		}
		side := Triangle{
			{Pos: Vec3{X: p.X, Y: p.Y + s, Z: p.Z}},
			{Pos: Vec3{X: p.X, Y: p.Y - s, Z: p.Z - s}},
			{Pos: Vec3{X: p.X, Y: p.Y - s, Z: p.Z + s}},
		}
		front.SetColor(color)
		side.SetColor(color)
		tris = append(tris, front, side)
	}
	return tris, nil
}

// Colors used by [VoxelRow].
var (
	VoxelHighlight = Vec3{Y: 1}
	VoxelBody      = Vec3{Y: 0.5}
)

// VoxelRow generates a wall of unit quads on the z plane, two triangles per quad.
// Quads are emitted row by row, y stepping down from ymax to ymin (exclusive)
// and x stepping up from xmin to xmax (exclusive). The first corner of each quad is highlighted.
func VoxelRow(xmin, xmax, ymax, ymin int, z float32) ([]Triangle, error) {
	if xmax <= xmin || ymax <= ymin {
		return nil, errEmptyBox
	}
	tris := make([]Triangle, 0, 2*(xmax-xmin)*(ymax-ymin))
	for y := ymax; y > ymin; y-- {
		for x := xmin; x < xmax; x++ {
			fx, fy := float32(x), float32(y)
			lower := Triangle{
				{Pos: Vec3{X: fx, Y: fy, Z: z}, Color: VoxelHighlight},
				{Pos: Vec3{X: fx + 1, Y: fy, Z: z}, Color: VoxelBody},
				{Pos: Vec3{X: fx, Y: fy + 1, Z: z}, Color: VoxelBody},
			}
			upper := Triangle{
				{Pos: Vec3{X: fx + 1, Y: fy + 1, Z: z}, Color: VoxelBody},
				{Pos: Vec3{X: fx + 1, Y: fy, Z: z}, Color: VoxelBody},
				{Pos: Vec3{X: fx, Y: fy + 1, Z: z}, Color: VoxelBody},
			}
			tris = append(tris, lower, upper)
		}
	}
	return tris, nil
}

// TexturedQuad returns a unit quad centered at the origin with texture
// coordinates spanning [0,1] and the indices of its two triangles.
func TexturedQuad() ([]TexVertex, []uint32) {
	verts := []TexVertex{
		{Pos: Vec3{X: 0.5, Y: 0.5}, UV: ms2.Vec{X: 1, Y: 1}},   // top right
		{Pos: Vec3{X: 0.5, Y: -0.5}, UV: ms2.Vec{X: 1, Y: 0}},  // bottom right
		{Pos: Vec3{X: -0.5, Y: -0.5}, UV: ms2.Vec{X: 0, Y: 0}}, // bottom left
		{Pos: Vec3{X: -0.5, Y: 0.5}, UV: ms2.Vec{X: 0, Y: 1}},  // top left
	}
	indices := []uint32{
		0, 1, 3,
		1, 2, 3,
	}
	return verts, indices
}

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

func uniform2(rng *rand.Rand, bb ms2.Box) ms2.Vec {
	return ms2.Vec{
		X: uniform(rng, bb.Min.X, bb.Max.X),
		Y: uniform(rng, bb.Min.Y, bb.Max.Y),
	}
}

func uniform3(rng *rand.Rand, bb ms3.Box) ms3.Vec {
	return ms3.Vec{
		X: uniform(rng, bb.Min.X, bb.Max.X),
		Y: uniform(rng, bb.Min.Y, bb.Max.Y),
		Z: uniform(rng, bb.Min.Z, bb.Max.Z),
	}
}

func randColor(rng *rand.Rand) Vec3 {
	return Vec3{X: rng.Float32(), Y: rng.Float32(), Z: rng.Float32()}
}

func validBox2(bb ms2.Box) bool {
	return isFinite(bb.Min.X) && isFinite(bb.Min.Y) && isFinite(bb.Max.X) && isFinite(bb.Max.Y) &&
		bb.Min.X <= bb.Max.X && bb.Min.Y <= bb.Max.Y
}

func validBox3(bb ms3.Box) bool {
	return validBox2(ms2.Box{Min: ms2.Vec{X: bb.Min.X, Y: bb.Min.Y}, Max: ms2.Vec{X: bb.Max.X, Y: bb.Max.Y}}) &&
		isFinite(bb.Min.Z) && isFinite(bb.Max.Z) && bb.Min.Z <= bb.Max.Z
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
