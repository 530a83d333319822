package scene

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// recordingLogger captures log output for assertions
type recordingLogger struct {
	infos    []string
	warnings []string
}

func (l *recordingLogger) Infof(format string, args ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warningf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestNewCOSCScene(t *testing.T) {
	logger := &recordingLogger{}
	s := NewCOSCScene(Options{Logger: logger})

	// 7 box planes, 3 cones, 3 spheres, 2 frames and 2 mirrors
	assert.Len(t, s.Surfaces, 17)
	assert.Equal(t, 17, s.GetPrimitiveCount())
	assert.Equal(t, core.NewVec3(0, 25, -135), s.Light)
	assert.Equal(t, core.Vec3{}, s.Background)
	assert.Equal(t, DefaultTraceConfig(), s.Config)
	assert.False(t, s.Config.Fog.Enabled, "fog is off by default")

	floor, ok := s.Pattern(FloorIndex)
	require.True(t, ok)
	assert.IsType(t, &material.WorldCheckerboard{}, floor)
	wall, ok := s.Pattern(WallIndex)
	require.True(t, ok)
	assert.IsType(t, &material.NoiseHue{}, wall)
	_, ok = s.Pattern(2)
	assert.False(t, ok)

	assert.IsType(t, &geometry.Plane{}, s.Surfaces[FloorIndex])
	assert.IsType(t, &geometry.Plane{}, s.Surfaces[WallIndex])

	// Floor faces up, back wall faces the camera
	assert.Equal(t, core.NewVec3(0, 1, 0), s.Surfaces[FloorIndex].Normal(core.Vec3{}))
	assert.Equal(t, core.NewVec3(0, 0, 1), s.Surfaces[WallIndex].Normal(core.Vec3{}))

	var textured, translucent int
	for _, surface := range s.Surfaces {
		if surface.Material().SphereTexture {
			textured++
		}
		if surface.Material().Translucent() {
			translucent++
		}
	}
	assert.Equal(t, 1, textured)
	assert.Equal(t, 2, translucent)

	require.NotNil(t, s.Texture)
	assert.Empty(t, logger.warnings, "no texture configured is not a warning")
}

func TestNewCOSCScene_PrimaryRayHitsBackWall(t *testing.T) {
	s := NewCOSCScene(Options{Logger: &recordingLogger{}})

	ray := geometry.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	ray.ClosestPt(s.Surfaces)
	require.True(t, ray.HasHit())
	assert.Equal(t, WallIndex, ray.Index)
	assert.InDelta(t, -200, ray.Hit.Z, 1e-9)
}

func TestNewMirrorScene(t *testing.T) {
	s := NewMirrorScene(Options{Logger: &recordingLogger{}})
	require.Len(t, s.Surfaces, 4)

	var mirrors int
	for _, surface := range s.Surfaces {
		m := surface.Material()
		if m.Reflective && m.ReflectionCoeff == 1 {
			mirrors++
		}
	}
	assert.Equal(t, 2, mirrors)

	// The mirrors face each other
	far := s.Surfaces[2].Normal(core.Vec3{})
	near := s.Surfaces[3].Normal(core.Vec3{})
	assert.InDelta(t, -1, far.Dot(near), 1e-12)
}

func TestLoadTexture(t *testing.T) {
	t.Run("image", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "red.png")
		writePNG(t, path, 4, 2)

		logger := &recordingLogger{}
		tex := loadTexture(path, logger)
		img, ok := tex.(*material.ImageTexture)
		require.True(t, ok)
		assert.Equal(t, 4, img.Width)
		assert.Equal(t, 2, img.Height)
		assert.Empty(t, logger.warnings)
	})

	t.Run("missing file falls back with a warning", func(t *testing.T) {
		logger := &recordingLogger{}
		tex := loadTexture(filepath.Join(t.TempDir(), "watermelon.bmp"), logger)
		require.NotNil(t, tex)
		assert.Equal(t, FallbackTexture(), tex)
		assert.Len(t, logger.warnings, 1)
	})
}

func TestSetPattern_NilMap(t *testing.T) {
	s := &Scene{}
	s.SetPattern(3, material.NewSolidColor(core.NewVec3(1, 0, 0)))
	p, ok := s.Pattern(3)
	require.True(t, ok)
	assert.Equal(t, core.NewVec3(1, 0, 0), p.Evaluate(core.Vec2{}, core.Vec3{}))
}

func TestNewWallPattern_NeighbouringSamplesAreCoherent(t *testing.T) {
	wall := NewWallPattern(3)

	// Adjacent pixels of a 500 pixel image land 0.2 units apart on the back wall
	const step = 0.2
	var total float64
	samples := 0
	for row := 0; row < 5; row++ {
		y := -25 + float64(row)*10
		prev := wall.Evaluate(core.Vec2{}, core.NewVec3(-25, y, -200))
		for i := 1; i <= 250; i++ {
			cur := wall.Evaluate(core.Vec2{}, core.NewVec3(-25+float64(i)*step, y, -200))
			d := cur.Subtract(prev)
			total += math.Max(math.Abs(d.X), math.Max(math.Abs(d.Y), math.Abs(d.Z)))
			samples++
			prev = cur
		}
	}

	assert.Less(t, total/float64(samples), 0.1, "wall noise should vary smoothly between neighbouring pixels")
}
