package renderer

import "errors"

var (
	// ErrNoScene is returned when a raytracer is created without a scene
	ErrNoScene = errors.New("no scene to render")
	// ErrInvalidResolution is returned for a non-positive image size
	ErrInvalidResolution = errors.New("invalid resolution")
)
