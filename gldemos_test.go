package gldemos

import (
	"math/rand"
	"testing"
	"unsafe"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func upright(x, y float32) Triangle {
	return Triangle{
		{Pos: Vec3{X: x, Y: y + 0.1}},
		{Pos: Vec3{X: x - 0.1, Y: y - 0.1}},
		{Pos: Vec3{X: x + 0.1, Y: y - 0.1}},
	}
}

func maxX(t Triangle) float32 {
	return max(t[0].Pos.X, t[1].Pos.X, t[2].Pos.X)
}

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, uintptr(24), unsafe.Sizeof(Vertex{}))
	assert.Equal(t, 0, VertexPosOffset)
	assert.Equal(t, 12, VertexColorOffset)
	assert.Equal(t, uintptr(20), unsafe.Sizeof(TexVertex{}))
	assert.Equal(t, 12, TexVertexUVOffset)

	tris := []Triangle{upright(0, 0), upright(0.5, 0.5)}
	verts := Vertices(tris)
	require.Len(t, verts, 6)
	verts[4].Pos.X = 42
	assert.Equal(t, float32(42), tris[1][1].Pos.X, "Vertices must alias triangle memory")
	assert.Nil(t, Vertices(nil))
}

func TestVerticesUploadBytes(t *testing.T) {
	tri := Triangle{
		{Pos: Vec3{X: 1, Y: 2, Z: 3}, Color: Vec3{X: 4, Y: 5, Z: 6}},
		{Pos: Vec3{X: 7, Y: 8, Z: 9}, Color: Vec3{X: 10, Y: 11, Z: 12}},
		{Pos: Vec3{X: 13, Y: 14, Z: 15}, Color: Vec3{X: 16, Y: 17, Z: 18}},
	}
	verts := Vertices([]Triangle{tri})
	size := len(verts) * int(unsafe.Sizeof(Vertex{}))
	floats := unsafe.Slice((*float32)(unsafe.Pointer(&verts[0])), size/4)
	want := make([]float32, 18)
	for i := range want {
		want[i] = float32(i + 1)
	}
	assert.Equal(t, want, floats, "buffer must hold no padding between attributes")
}

func TestPackedRoundTrip(t *testing.T) {
	v := ms3.Vec{X: 1.5, Y: -2, Z: 3.25}
	p := Packed(v)
	assert.Equal(t, Vec3{X: 1.5, Y: -2, Z: 3.25}, p)
	assert.Equal(t, v, p.Vec())
}

func TestBouncerEndToEnd(t *testing.T) {
	b, err := NewBouncer([]Triangle{upright(0, 0)}, []ms2.Vec{{X: 0.02}})
	require.NoError(t, err)

	n := b.StepN(41)
	assert.Zero(t, n, "no corner reaches x=1 within 41 steps")
	assert.Equal(t, float32(0.02), b.Velocities[0].X)
	assert.InDelta(t, 0.92, maxX(b.Triangles[0]), tol)
	assert.InDelta(t, 0.82, b.Triangles[0][0].Pos.X, tol)

	flipStep := -1
	prev := maxX(b.Triangles[0])
	for step := 42; step < 60; step++ {
		if b.Step() > 0 {
			flipStep = step
			break
		}
		cur := maxX(b.Triangles[0])
		assert.Greater(t, cur, prev, "moving right before reflection")
		assert.LessOrEqual(t, cur, float32(1+tol))
		prev = cur
	}
	require.NotEqual(t, -1, flipStep, "expected a reflection")
	// Leading corner starts at 0.1 and its candidate first exceeds 1.0 on step 45 or 46
	// depending on float32 rounding.
	assert.Contains(t, []int{45, 46}, flipStep)
	assert.Equal(t, float32(-0.02), b.Velocities[0].X)
	assert.Zero(t, b.Velocities[0].Y)

	afterFlip := maxX(b.Triangles[0])
	assert.Less(t, afterFlip, prev, "reflection step must already move left")
	for i := 0; i < 10; i++ {
		b.Step()
		cur := maxX(b.Triangles[0])
		assert.Less(t, cur, afterFlip)
		afterFlip = cur
	}
}

func TestBouncerNoCrossingKeepsVelocity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		c := ms2.Vec{X: uniform(rng, -0.5, 0.5), Y: uniform(rng, -0.5, 0.5)}
		v := ms2.Vec{X: uniform(rng, -0.3, 0.3), Y: uniform(rng, -0.3, 0.3)}
		b, err := NewBouncer([]Triangle{upright(c.X, c.Y)}, []ms2.Vec{v})
		require.NoError(t, err)
		n := b.Step()
		// Corners lie within 0.1 of center so |c|+0.1+|v| <= 0.9 never crosses.
		assert.Zero(t, n)
		assert.Equal(t, v, b.Velocities[0])
	}
}

func TestBouncerReflectsPerAxis(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		// Place the shape right against the right edge moving right, y well inside.
		c := ms2.Vec{X: 0.9 - uniform(rng, 0, 0.005), Y: uniform(rng, -0.5, 0.5)}
		v := ms2.Vec{X: uniform(rng, 0.01, 0.2), Y: uniform(rng, -0.2, 0.2)}
		b, err := NewBouncer([]Triangle{upright(c.X, c.Y)}, []ms2.Vec{v})
		require.NoError(t, err)
		before := b.Triangles[0]
		n := b.Step()
		assert.Equal(t, 1, n)
		assert.Equal(t, -v.X, b.Velocities[0].X, "x reflects")
		assert.Equal(t, v.Y, b.Velocities[0].Y, "y untouched")
		for j := range before {
			assert.InDelta(t, before[j].Pos.X-v.X, b.Triangles[0][j].Pos.X, tol, "negated delta applied to all corners")
		}
	}
	// A single corner poking out is enough, and both axes may reflect in one step.
	b, err := NewBouncer([]Triangle{upright(-0.89, -0.89)}, []ms2.Vec{{X: -0.02, Y: -0.02}})
	require.NoError(t, err)
	assert.Equal(t, 2, b.Step())
	assert.Equal(t, ms2.Vec{X: 0.02, Y: 0.02}, b.Velocities[0])
}

func TestBouncerTwoStepsEqualDoubleVelocity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		c := ms2.Vec{X: uniform(rng, -0.4, 0.4), Y: uniform(rng, -0.4, 0.4)}
		v := ms2.Vec{X: uniform(rng, -0.1, 0.1), Y: uniform(rng, -0.1, 0.1)}
		twice, _ := NewBouncer([]Triangle{upright(c.X, c.Y)}, []ms2.Vec{v})
		once, _ := NewBouncer([]Triangle{upright(c.X, c.Y)}, []ms2.Vec{ms2.Scale(2, v)})
		require.Zero(t, twice.StepN(2))
		require.Zero(t, once.Step())
		for j := range twice.Triangles[0] {
			assert.InDelta(t, once.Triangles[0][j].Pos.X, twice.Triangles[0][j].Pos.X, tol)
			assert.InDelta(t, once.Triangles[0][j].Pos.Y, twice.Triangles[0][j].Pos.Y, tol)
		}
	}
}

func TestBouncerIndependentShapesAndBounds(t *testing.T) {
	b, err := NewBouncer(
		[]Triangle{upright(0.85, 0), upright(0, 0)},
		[]ms2.Vec{{X: 0.1}, {X: 0.1}},
	)
	require.NoError(t, err)
	b.Step()
	assert.Equal(t, float32(-0.1), b.Velocities[0].X)
	assert.Equal(t, float32(0.1), b.Velocities[1].X, "shapes do not interact")

	// Zero bounds fall back to NDC; custom bounds are honored.
	b.Bounds = ms2.Box{}
	assert.Equal(t, NDC, b.bounds())
	b.Bounds = ms2.Box{Min: ms2.Vec{X: -0.2, Y: -2}, Max: ms2.Vec{X: 0.2, Y: 2}}
	b.Triangles[1] = upright(0, 0)
	b.Velocities[1] = ms2.Vec{X: 0.15}
	b.Step()
	assert.Equal(t, float32(-0.15), b.Velocities[1].X)

	_, err = NewBouncer(make([]Triangle, 2), make([]ms2.Vec, 1))
	assert.Error(t, err)
}

func TestNewBouncingTriangles(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	cfg := DefaultBounceConfig()
	b, err := NewBouncingTriangles(rng, 10, cfg)
	require.NoError(t, err)
	require.Len(t, b.Triangles, 10)
	require.Len(t, b.Velocities, 10)
	for i, tri := range b.Triangles {
		c := tri[0].Pos
		assert.InDelta(t, tri[1].Pos.X, c.X-0.1, tol)
		assert.InDelta(t, tri[2].Pos.X, c.X+0.1, tol)
		assert.InDelta(t, tri[1].Pos.Y, c.Y-0.2, tol)
		assert.GreaterOrEqual(t, c.X, float32(-0.8))
		assert.LessOrEqual(t, c.X, float32(0.8))
		for _, v := range tri {
			assert.Zero(t, v.Pos.Z)
			assert.Equal(t, cfg.Color, v.Color)
		}
		assert.LessOrEqual(t, absf(b.Velocities[i].X), cfg.MaxSpeed+tol)
		assert.LessOrEqual(t, absf(b.Velocities[i].Y), cfg.MaxSpeed+tol)
	}

	cfg.RandomColor = true
	b, err = NewBouncingTriangles(rng, 3, cfg)
	require.NoError(t, err)
	for _, tri := range b.Triangles {
		assert.Equal(t, tri[0].Color, tri[2].Color, "color shared within a shape")
	}

	_, err = NewBouncingTriangles(rng, -1, cfg)
	assert.Error(t, err)
	cfg.Size = 0
	_, err = NewBouncingTriangles(rng, 1, cfg)
	assert.Error(t, err)
}

func TestTriangleField(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	cfg := DefaultFieldConfig()
	tris, err := TriangleField(rng, 5000, cfg)
	require.NoError(t, err)
	require.Len(t, tris, 10000)
	for i := 0; i < len(tris); i += 2 {
		front, side := tris[i], tris[i+1]
		assert.Equal(t, front[0], side[0], "pairs share apex and color")
		assert.Equal(t, front[0].Pos.Z, front[1].Pos.Z)
		assert.Equal(t, side[0].Pos.X, side[1].Pos.X)
		apex := front[0].Pos
		assert.True(t, apex.X >= -50 && apex.X <= 50)
		assert.True(t, apex.Y-0.5 >= -5 && apex.Y-0.5 <= 5)
	}
	_, err = TriangleField(rng, 1, FieldConfig{Spawn: cfg.Spawn})
	assert.Error(t, err)
}

func TestRandomTriangles(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	pos := ms3.Box{Min: ms3.Vec{X: -1, Y: -1, Z: -1}, Max: ms3.Vec{X: 1, Y: 1, Z: 1}}
	colors := ms3.Box{Max: ms3.Vec{X: 1, Y: 1, Z: 1}}
	tris, err := RandomTriangles(rng, 10, pos, colors)
	require.NoError(t, err)
	require.Len(t, tris, 10)
	for _, v := range Vertices(tris) {
		assert.True(t, v.Color.X >= 0 && v.Color.X <= 1)
		assert.True(t, v.Pos.Z >= -1 && v.Pos.Z <= 1)
	}
	inverted := ms3.Box{Min: pos.Max, Max: pos.Min}
	_, err = RandomTriangles(rng, 1, inverted, colors)
	assert.Error(t, err)
}

func TestVoxelRow(t *testing.T) {
	tris, err := VoxelRow(-15, 15, -5, -30, -5)
	require.NoError(t, err)
	require.Len(t, tris, 2*30*25)
	first := tris[0]
	assert.Equal(t, Vec3{X: -15, Y: -5, Z: -5}, first[0].Pos)
	assert.Equal(t, VoxelHighlight, first[0].Color)
	assert.Equal(t, VoxelBody, first[1].Color)
	last := tris[len(tris)-1]
	assert.Equal(t, Vec3{X: 15, Y: -28, Z: -5}, last[0].Pos)

	_, err = VoxelRow(0, 0, 1, 0, 0)
	assert.Error(t, err)
}

func TestTexturedQuad(t *testing.T) {
	verts, idx := TexturedQuad()
	require.Len(t, verts, 4)
	assert.Equal(t, []uint32{0, 1, 3, 1, 2, 3}, idx)
	for _, i := range idx {
		assert.Less(t, int(i), len(verts))
	}
	for _, v := range verts {
		// UV maps linearly from position.
		assert.Equal(t, v.Pos.X+0.5, v.UV.X)
		assert.Equal(t, v.Pos.Y+0.5, v.UV.Y)
	}
}

func TestTriangleHelpers(t *testing.T) {
	tri := upright(0, 0)
	tri.Translate(ms2.Vec{X: 1, Y: -1})
	c := tri.Centroid()
	assert.InDelta(t, 1, c.X, tol)
	assert.InDelta(t, -1-0.1/3, c.Y, tol)
	tri.SetColor(Vec3{X: 1})
	for _, v := range tri {
		assert.Equal(t, Vec3{X: 1}, v.Color)
	}
}

func absf(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
