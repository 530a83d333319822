package material

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

var (
	floorA = core.NewVec3(0.6, 0.2, 0.05)
	floorB = core.NewVec3(0.65, 0.3, 0.1)
)

func TestWorldCheckerboard_Parity(t *testing.T) {
	board := NewWorldCheckerboard(5, floorA, floorB)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"origin cell", core.NewVec3(2, -30, 2), floorA},
		{"next cell in x", core.NewVec3(7, -30, 2), floorB},
		{"next cell in z", core.NewVec3(2, -30, 7), floorB},
		{"diagonal cell", core.NewVec3(7, -30, 7), floorA},
		{"negative x neighbour alternates", core.NewVec3(-2, -30, 2), floorB},
		{"two cells left", core.NewVec3(-7, -30, 2), floorA},
		{"negative x negative z", core.NewVec3(-2, -30, -7), floorA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, board.Evaluate(core.Vec2{}, tt.point))
		})
	}
}

func TestWorldCheckerboard_SameCellSameColor(t *testing.T) {
	board := NewWorldCheckerboard(5, floorA, floorB)

	for x := -29.5; x < 30; x += 0.7 {
		for z := -199.5; z < 0; z += 1.3 {
			p := core.NewVec3(x, -30, z)
			// Shift within the cell (truncation toward zero keeps the same bucket)
			q := p
			if math.Abs(math.Mod(x, 5)) > 0.1 && math.Abs(math.Mod(x, 5)) < 4.9 {
				q.X += math.Copysign(0.05, x)
			}
			assert.Equal(t, board.Evaluate(core.Vec2{}, p), board.Evaluate(core.Vec2{}, q), "point %v", p)

			c := board.Evaluate(core.Vec2{}, p)
			assert.True(t, c == floorA || c == floorB)
		}
	}
}

type constNoise float64

func (c constNoise) Eval2(x, y float64) float64 { return float64(c) }

type recordingNoise struct{ x, y float64 }

func (r *recordingNoise) Eval2(x, y float64) float64 {
	r.x, r.y = x, y
	return 0
}

func TestHueRamp_Segments(t *testing.T) {
	tests := []struct {
		h        float64
		expected core.Vec3
	}{
		{0, core.NewVec3(1, 0, 0)},
		{0.5, core.NewVec3(1, 0.5, 0)},
		{1.5, core.NewVec3(0.5, 1, 0)},
		{2.5, core.NewVec3(0, 1, 0.5)},
		{3.5, core.NewVec3(0, 0.5, 1)},
		{4.5, core.NewVec3(0.5, 0, 1)},
		{5.5, core.NewVec3(1, 0, 0.5)},
		{12, core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		got := HueRamp(tt.h)
		assert.InDelta(t, tt.expected.X, got.X, 1e-12, "h=%v", tt.h)
		assert.InDelta(t, tt.expected.Y, got.Y, 1e-12, "h=%v", tt.h)
		assert.InDelta(t, tt.expected.Z, got.Z, 1e-12, "h=%v", tt.h)
	}
}

func TestNoiseHue_Evaluate(t *testing.T) {
	// value 1 -> h = 0 -> pure red, scaled to 60%
	pattern := NewNoiseHue(constNoise(1), 10, 0.6)
	got := pattern.Evaluate(core.Vec2{}, core.NewVec3(3, 4, -200))
	assert.InDelta(t, 0.6, got.X, 1e-12)
	assert.InDelta(t, 0.0, got.Y, 1e-12)
	assert.InDelta(t, 0.0, got.Z, 1e-12)

	rec := &recordingNoise{}
	NewNoiseHue(rec, 10, 0.6).Evaluate(core.Vec2{}, core.NewVec3(0.5, -1.5, -200))
	assert.InDelta(t, 5.0, rec.x, 1e-12)
	assert.InDelta(t, -15.0, rec.y, 1e-12)
}

func TestSphericalUV(t *testing.T) {
	uv, ok := SphericalUV(core.NewVec3(0, 0, 1))
	assert.True(t, ok)
	assert.InDelta(t, 0.5, uv.X, 1e-12)
	assert.InDelta(t, 0.5, uv.Y, 1e-12)

	uv, ok = SphericalUV(core.NewVec3(0, 1, 0))
	assert.True(t, ok)
	assert.InDelta(t, 1.0, uv.Y, 1e-12)

	uv, ok = SphericalUV(core.NewVec3(1, 0, 0))
	assert.True(t, ok)
	assert.InDelta(t, 0.75, uv.X, 1e-12)

	_, ok = SphericalUV(core.NewVec3(0, 1.5, 0))
	assert.False(t, ok)
}

func TestMaterial_Flags(t *testing.T) {
	m := New(core.NewVec3(1, 0, 0))
	assert.True(t, m.Flat())
	assert.False(t, m.Translucent())
	assert.Equal(t, DefaultShininess, m.Shininess)

	m.WithReflectivity(true, 0.1).WithTransparency(true, 0.8)
	assert.False(t, m.Flat())
	assert.True(t, m.Translucent())

	r := New(core.Vec3{}).WithSpecular(false).WithRefractivity(true, 0.9, 1.02)
	assert.True(t, r.Translucent())
	assert.False(t, r.Specular)
	assert.Equal(t, 1.02, r.RefractiveIndex)
}
