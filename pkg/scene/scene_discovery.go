package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

// ErrUnknownScene is returned when a scene ID matches no built-in scene or file
var ErrUnknownScene = errors.New("unknown scene")

// Scene types
const (
	TypeBuiltin = "builtin"
	TypeYAML    = "yaml"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "yaml"
	FilePath    string `json:"filePath"`    // Path to YAML file (yaml type only)
}

type builtinScene struct {
	info  SceneInfo
	build func(Options) *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "cosc",
			Name:        "COSC Room",
			DisplayName: "COSC Room",
			Description: "Box room with cones, transparent, refractive and textured spheres, and facing mirrors",
			Type:        TypeBuiltin,
		},
		build: NewCOSCScene,
	},
	{
		info: SceneInfo{
			ID:          "mirrors",
			Name:        "Facing Mirrors",
			DisplayName: "Facing Mirrors",
			Description: "A sphere between two mirrors; reflections stop at the step limit",
			Type:        TypeBuiltin,
		},
		build: NewMirrorScene,
	},
}

// ListYAMLScenes scans dir for .yaml and .yml scene files. A missing
// directory yields an empty list.
func ListYAMLScenes(dir string) ([]SceneInfo, error) {
	if dir == "" {
		return []SceneInfo{}, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
		}
		files = append(files, matches...)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		scenes = append(scenes, yamlSceneInfo(filePath))
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// yamlSceneInfo reads the name and description from a scene file, falling
// back to values derived from the file name when it cannot be parsed
func yamlSceneInfo(filePath string) SceneInfo {
	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	info := SceneInfo{
		ID:          "yaml:" + base,
		Name:        titleCase(base),
		DisplayName: titleCase(base),
		Type:        TypeYAML,
		FilePath:    filePath,
	}

	desc, err := loaders.LoadScene(filePath)
	if err != nil {
		info.Description = fmt.Sprintf("unreadable: %v", err)
		return info
	}
	if desc.Name != base {
		info.Name = desc.Name
		info.DisplayName = desc.Name
	}
	info.Description = desc.Description
	return info
}

// ListScenes returns the built-in scenes followed by the YAML scenes in dir
func ListScenes(dir string) ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		scenes = append(scenes, b.info)
	}

	yamlScenes, err := ListYAMLScenes(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list YAML scenes: %w", err)
	}
	return append(scenes, yamlScenes...), nil
}

// Load builds the scene identified by id: a built-in scene ID, "yaml:<name>"
// for a file in opts.ScenesDir, or a path to a .yaml file
func Load(id string, opts Options) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.build(opts), nil
		}
	}

	if name, ok := strings.CutPrefix(id, "yaml:"); ok {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(opts.ScenesDir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return LoadYAMLScene(path, opts)
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownScene, id)
	}

	ext := strings.ToLower(filepath.Ext(id))
	if ext == ".yaml" || ext == ".yml" {
		return LoadYAMLScene(id, opts)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownScene, id)
}

// LoadListed builds a scene only if id is a built-in scene or one of the
// YAML scenes listed in opts.ScenesDir. Unlike Load it never opens an
// arbitrary path, so ids from untrusted callers are safe to pass.
func LoadListed(id string, opts Options) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.build(opts), nil
		}
	}

	name, ok := strings.CutPrefix(id, "yaml:")
	if !ok || name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScene, id)
	}

	listed, err := ListYAMLScenes(opts.ScenesDir)
	if err != nil {
		return nil, err
	}
	for _, info := range listed {
		if info.ID == id {
			return LoadYAMLScene(info.FilePath, opts)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownScene, id)
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
