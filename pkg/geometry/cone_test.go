package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCone_Intersect(t *testing.T) {
	// Radius 1 at y=0, apex at y=2: radius at height y is 0.5*(2-y)
	cone, err := NewCone(core.NewVec3(0, 0, 0), 1, 2, grey())
	require.NoError(t, err)

	tests := []struct {
		name     string
		origin   core.Vec3
		dir      core.Vec3
		expected float64
	}{
		{"side hit at mid height", core.NewVec3(0, 1, 5), core.NewVec3(0, 0, -1), 4.5},
		{"from inside", core.NewVec3(0, 1, 0), core.NewVec3(0, 0, -1), 0.5},
		{"above the apex", core.NewVec3(0, 3, 5), core.NewVec3(0, 0, -1), NoHit},
		{"clear miss", core.NewVec3(5, 1, 5), core.NewVec3(0, 0, -1), NoHit},
		{"tangent", core.NewVec3(0.5, 1, 5), core.NewVec3(0, 0, -1), NoHit},
		{"pointing away", core.NewVec3(0, 1, 5), core.NewVec3(0, 0, 1), NoHit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, cone.Intersect(tt.origin, tt.dir), 1e-9)
		})
	}
}

func TestCone_Intersect_SecondaryRaysLeaveSurface(t *testing.T) {
	cone, err := NewCone(core.NewVec3(0, -10, -40), 5, 10, grey())
	require.NoError(t, err)

	eye := core.NewVec3(0, 0, 0)
	hits := 0
	for i := -15; i <= 15; i++ {
		for j := 0; j <= 15; j++ {
			target := core.NewVec3(float64(i)*0.3, -10+float64(j)*0.6, -40)
			dir := target.Subtract(eye).Normalize()

			tHit := cone.Intersect(eye, dir)
			if tHit <= 0 {
				continue
			}
			hits++
			p := eye.Add(dir.Multiply(tHit))
			n := cone.Normal(p)

			for name, out := range map[string]core.Vec3{
				"reflected": core.Reflect(dir, n),
				"normal":    n,
			} {
				got := cone.Intersect(p, out)
				assert.False(t, got > 0 && got < selfHitEpsilon,
					"%s ray from %v re-hit the cone at t=%g", name, p, got)
			}
		}
	}
	assert.Greater(t, hits, 50)
}

func TestCone_Normal(t *testing.T) {
	cone, err := NewCone(core.NewVec3(2, -1, 3), 1, 2, grey())
	require.NoError(t, err)
	theta := math.Atan(0.5)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"facing +z", core.NewVec3(2, 0, 3.5), core.NewVec3(0, math.Sin(theta), math.Cos(theta))},
		{"facing +x", core.NewVec3(2.5, 0, 3), core.NewVec3(math.Cos(theta), math.Sin(theta), 0)},
		{"facing -z", core.NewVec3(2, 0, 2.5), core.NewVec3(0, math.Sin(theta), -math.Cos(theta))},
		{"facing -x", core.NewVec3(1.5, 0, 3), core.NewVec3(-math.Cos(theta), math.Sin(theta), 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := cone.Normal(tt.point)
			assert.InDelta(t, 1.0, n.Length(), 1e-9)
			assert.True(t, n.Equals(tt.expected), "expected %v, got %v", tt.expected, n)

			// Perpendicular to the generator line running up to the apex
			apex := core.NewVec3(2, 1, 3)
			assert.InDelta(t, 0.0, n.Dot(apex.Subtract(tt.point)), 1e-9)
		})
	}
}

func TestNewCone_Validation(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		height float64
	}{
		{"zero radius", 0, 1},
		{"negative radius", -1, 1},
		{"zero height", 1, 0},
		{"negative height", 1, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCone(core.Vec3{}, tt.radius, tt.height, grey())
			assert.Error(t, err)
		})
	}
}

func TestCylinder_Intersect(t *testing.T) {
	cyl, err := NewCylinder(core.NewVec3(0, 0, 0), 1, 2, grey())
	require.NoError(t, err)

	tests := []struct {
		name     string
		origin   core.Vec3
		dir      core.Vec3
		expected float64
	}{
		{"side hit", core.NewVec3(0, 1, 5), core.NewVec3(0, 0, -1), 4},
		{"from inside", core.NewVec3(0, 1, 0), core.NewVec3(0, 0, -1), 1},
		{"above", core.NewVec3(0, 3, 5), core.NewVec3(0, 0, -1), NoHit},
		{"below", core.NewVec3(0, -1, 5), core.NewVec3(0, 0, -1), NoHit},
		{"along axis", core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), NoHit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, cyl.Intersect(tt.origin, tt.dir), 1e-9)
		})
	}

	n := cyl.Normal(core.NewVec3(0, 1, 1))
	assert.True(t, n.Equals(core.NewVec3(0, 0, 1)))
}
