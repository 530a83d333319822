package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrUnknownSurfaceType is returned when a scene file names a surface type the tracer cannot build
var ErrUnknownSurfaceType = errors.New("unknown surface type")

// Triple is a YAML three-element sequence such as [0, 25, -135]
type Triple [3]float64

// Vec3 converts the triple to a vector
func (t Triple) Vec3() core.Vec3 {
	return core.NewVec3(t[0], t[1], t[2])
}

// SceneDescription is the parsed form of a YAML scene file
type SceneDescription struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	Light       *Triple              `yaml:"light"`
	Background  Triple               `yaml:"background"`
	MaxSteps    int                  `yaml:"maxSteps"`
	Fog         *FogDescription      `yaml:"fog"`
	Texture     string               `yaml:"texture"`
	Surfaces    []SurfaceDescription `yaml:"surfaces"`
}

// FogDescription configures depth fog. Zero values fall back to the tracer defaults.
type FogDescription struct {
	Enabled bool    `yaml:"enabled"`
	Near    float64 `yaml:"near"`
	Far     float64 `yaml:"far"`
	Color   *Triple `yaml:"color"`
}

// SurfaceDescription describes one surface. Which fields apply depends on Type.
type SurfaceDescription struct {
	Type     string              `yaml:"type"`
	Center   Triple              `yaml:"center"`
	Radius   float64             `yaml:"radius"`
	Height   float64             `yaml:"height"`
	Corners  []Triple            `yaml:"corners"`
	Material MaterialDescription `yaml:"material"`
	Pattern  *PatternDescription `yaml:"pattern"`
}

// MaterialDescription mirrors material.Material with optional fields
type MaterialDescription struct {
	Color         Triple   `yaml:"color"`
	Specular      *bool    `yaml:"specular"`
	Shininess     float64  `yaml:"shininess"`
	Reflectivity  float64  `yaml:"reflectivity"`
	Refraction    *Refract `yaml:"refraction"`
	Transparency  float64  `yaml:"transparency"`
	SphereTexture bool     `yaml:"sphereTexture"`
}

// Refract holds refraction parameters
type Refract struct {
	Coeff float64 `yaml:"coeff"`
	Index float64 `yaml:"index"`
}

// PatternDescription selects a per-hit color pattern for a surface
type PatternDescription struct {
	Type      string   `yaml:"type"` // "checkerboard" or "noise"
	CellSize  float64  `yaml:"cellSize"`
	Colors    []Triple `yaml:"colors"`
	Frequency float64  `yaml:"frequency"`
	Intensity float64  `yaml:"intensity"`
	Seed      int64    `yaml:"seed"`
}

// Surface types understood by the scene builder
const (
	SurfaceSphere   = "sphere"
	SurfacePlane    = "plane"
	SurfaceCone     = "cone"
	SurfaceCylinder = "cylinder"
)

// Pattern types understood by the scene builder
const (
	PatternCheckerboard = "checkerboard"
	PatternNoise        = "noise"
)

// LoadScene reads and parses a YAML scene file
func LoadScene(filename string) (*SceneDescription, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	desc, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	// Texture paths are relative to the scene file
	if desc.Texture != "" && !filepath.IsAbs(desc.Texture) {
		desc.Texture = filepath.Join(filepath.Dir(filename), desc.Texture)
	}
	if desc.Name == "" {
		desc.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return desc, nil
}

// ParseScene parses a YAML scene description and checks its surfaces
func ParseScene(r io.Reader) (*SceneDescription, error) {
	var desc SceneDescription
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty scene description")
		}
		return nil, err
	}

	for i, s := range desc.Surfaces {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("surface %d: %w", i, err)
		}
	}
	if desc.MaxSteps < 0 {
		return nil, fmt.Errorf("maxSteps must be non-negative, got %d", desc.MaxSteps)
	}
	return &desc, nil
}

func (s SurfaceDescription) validate() error {
	switch s.Type {
	case SurfaceSphere, SurfaceCone, SurfaceCylinder:
	case SurfacePlane:
		if len(s.Corners) != 4 {
			return fmt.Errorf("plane needs 4 corners, got %d", len(s.Corners))
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSurfaceType, s.Type)
	}

	if p := s.Pattern; p != nil {
		switch p.Type {
		case PatternCheckerboard:
			if len(p.Colors) != 0 && len(p.Colors) != 2 {
				return fmt.Errorf("checkerboard needs 2 colors, got %d", len(p.Colors))
			}
		case PatternNoise:
		default:
			return fmt.Errorf("unknown pattern type %q", p.Type)
		}
	}
	return nil
}

// validateFilePath rejects paths that are not plain YAML files
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)
	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("invalid file type: only .yaml files are allowed")
	}

	return nil
}
