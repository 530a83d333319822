package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Fallback texture: a green rind-like checkerboard
var (
	fallbackLight = core.NewVec3(0.45, 0.75, 0.3)
	fallbackDark  = core.NewVec3(0.1, 0.35, 0.1)
)

// FallbackTexture returns the procedural texture used when no image is available
func FallbackTexture() *material.ImageTexture {
	return material.NewCheckerboardTexture(64, 64, 8, fallbackLight, fallbackDark)
}

// loadTexture loads the image at path into a texture, falling back to the
// procedural texture when the path is empty or the image cannot be read
func loadTexture(path string, logger core.Logger) material.ColorSource {
	if path == "" {
		logger.Infof("No texture configured, using checkerboard fallback")
		return FallbackTexture()
	}

	img, err := loaders.LoadImage(path)
	if err != nil {
		logger.Warningf("Texture %s unavailable, using checkerboard fallback: %v", path, err)
		return FallbackTexture()
	}

	logger.Infof("Loaded texture %s (%dx%d)", path, img.Width, img.Height)
	return material.NewImageTexture(img.Width, img.Height, img.Pixels)
}
