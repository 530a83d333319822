package geometry

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFloor(t *testing.T) *Plane {
	t.Helper()
	floor, err := NewPlane(
		core.NewVec3(-30, -30, 0),
		core.NewVec3(30, -30, 0),
		core.NewVec3(30, -30, -200),
		core.NewVec3(-30, -30, -200),
		grey(),
	)
	require.NoError(t, err)
	return floor
}

func TestPlane_Normal(t *testing.T) {
	floor := newFloor(t)
	assert.True(t, floor.Normal(core.NewVec3(0, -30, -50)).Equals(core.NewVec3(0, 1, 0)))

	// Reversing the winding flips the normal
	ceiling, err := NewPlane(
		core.NewVec3(-30, 30, -200),
		core.NewVec3(30, 30, -200),
		core.NewVec3(30, 30, 0),
		core.NewVec3(-30, 30, 0),
		grey(),
	)
	require.NoError(t, err)
	assert.True(t, ceiling.Normal(core.Vec3{}).Equals(core.NewVec3(0, -1, 0)))
}

func TestPlane_Intersect(t *testing.T) {
	floor := newFloor(t)

	tests := []struct {
		name     string
		origin   core.Vec3
		dir      core.Vec3
		expected float64
	}{
		{"straight down", core.NewVec3(0, 0, -50), core.NewVec3(0, -1, 0), 30},
		{"oblique", core.NewVec3(0, 0, 0), core.NewVec3(0, -1, -1), 30},
		{"from below", core.NewVec3(10, -40, -100), core.NewVec3(0, 1, 0), 10},
		{"outside in x", core.NewVec3(50, 0, -50), core.NewVec3(0, -1, 0), NoHit},
		{"outside in z", core.NewVec3(0, 0, -250), core.NewVec3(0, -1, 0), NoHit},
		{"behind", core.NewVec3(0, 0, -50), core.NewVec3(0, 1, 0), NoHit},
		{"parallel", core.NewVec3(0, 0, -50), core.NewVec3(1, 0, 0), NoHit},
		{"in plane", core.NewVec3(0, -30, -50), core.NewVec3(1, 0, 0), NoHit},
		{"starting on plane", core.NewVec3(0, -30, -50), core.NewVec3(0, -1, 0), NoHit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, floor.Intersect(tt.origin, tt.dir), 1e-9)
		})
	}
}

func TestPlane_Intersect_NonRectangular(t *testing.T) {
	// A trapezoid: the hit must respect the slanted edge
	trap, err := NewPlane(
		core.NewVec3(0, 0, 0),
		core.NewVec3(4, 0, 0),
		core.NewVec3(3, 0, -2),
		core.NewVec3(1, 0, -2),
		grey(),
	)
	require.NoError(t, err)

	down := core.NewVec3(0, -1, 0)
	assert.InDelta(t, 1.0, trap.Intersect(core.NewVec3(2, 1, -1), down), 1e-9)
	assert.Equal(t, NoHit, trap.Intersect(core.NewVec3(0.2, 1, -1.8), down))
}

func TestNewPlane_Degenerate(t *testing.T) {
	_, err := NewPlane(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(2, 0, 0),
		core.NewVec3(3, 0, 0),
		grey(),
	)
	assert.Error(t, err)
}
