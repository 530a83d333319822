package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-empty", "Cornell Empty"},
		{"glass_ball", "Glass Ball"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, titleCase(tc.input))
		})
	}
}

func writeSceneFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestListYAMLScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "glass-ball.yaml", "name: Glass Ball Demo\ndescription: one refractive sphere\n")
	writeSceneFile(t, dir, "plain_room.yml", "light: [0, 1, 0]\n")
	writeSceneFile(t, dir, "broken.yaml", "surfaces: [{type: torus}]\n")
	writeSceneFile(t, dir, "notes.txt", "not a scene")

	scenes, err := ListYAMLScenes(dir)
	require.NoError(t, err)
	require.Len(t, scenes, 3)

	byID := make(map[string]SceneInfo)
	for _, s := range scenes {
		byID[s.ID] = s
		assert.Equal(t, TypeYAML, s.Type)
	}

	glass := byID["yaml:glass-ball"]
	assert.Equal(t, "Glass Ball Demo", glass.DisplayName)
	assert.Equal(t, "one refractive sphere", glass.Description)

	plain := byID["yaml:plain_room"]
	assert.Equal(t, "Plain Room", plain.DisplayName)
	assert.Equal(t, filepath.Join(dir, "plain_room.yml"), plain.FilePath)

	broken := byID["yaml:broken"]
	assert.Equal(t, "Broken", broken.DisplayName)
	assert.Contains(t, broken.Description, "unreadable")

	// Sorted by display name
	for i := 1; i < len(scenes); i++ {
		assert.LessOrEqual(t, scenes[i-1].DisplayName, scenes[i].DisplayName)
	}
}

func TestListYAMLScenes_MissingDir(t *testing.T) {
	scenes, err := ListYAMLScenes(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, scenes)

	scenes, err = ListYAMLScenes("")
	require.NoError(t, err)
	assert.Empty(t, scenes)
}

func TestListScenes_BuiltinsFirst(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "aaa.yaml", "name: aaa\n")

	scenes, err := ListScenes(dir)
	require.NoError(t, err)
	require.Len(t, scenes, 3)
	assert.Equal(t, "cosc", scenes[0].ID)
	assert.Equal(t, "mirrors", scenes[1].ID)
	assert.Equal(t, "yaml:aaa", scenes[2].ID)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeSceneFile(t, dir, "ball.yaml", "surfaces:\n  - type: sphere\n    center: [0, 0, -10]\n    radius: 2\n")
	opts := Options{ScenesDir: dir, Logger: &recordingLogger{}}

	s, err := Load("cosc", opts)
	require.NoError(t, err)
	assert.Equal(t, "cosc", s.Name)

	s, err = Load("mirrors", opts)
	require.NoError(t, err)
	assert.Equal(t, "mirrors", s.Name)

	s, err = Load("yaml:ball", opts)
	require.NoError(t, err)
	assert.Len(t, s.Surfaces, 1)

	s, err = Load(path, opts)
	require.NoError(t, err)
	assert.Equal(t, "ball", s.Name)

	_, err = Load("yaml:missing", opts)
	assert.ErrorIs(t, err, ErrUnknownScene)

	_, err = Load("cornell-box", opts)
	assert.ErrorIs(t, err, ErrUnknownScene)
}

func TestLoadListed(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "scenes")
	require.NoError(t, os.Mkdir(dir, 0o755))
	ball := "surfaces:\n  - type: sphere\n    center: [0, 0, -10]\n    radius: 2\n"
	writeSceneFile(t, dir, "ball.yaml", ball)
	outside := writeSceneFile(t, root, "outside.yaml", ball)
	opts := Options{ScenesDir: dir, Logger: &recordingLogger{}}

	s, err := LoadListed("cosc", opts)
	require.NoError(t, err)
	assert.Equal(t, "cosc", s.Name)

	s, err = LoadListed("yaml:ball", opts)
	require.NoError(t, err)
	assert.Len(t, s.Surfaces, 1)

	for _, id := range []string{
		outside,
		"yaml:../outside",
		"yaml:" + filepath.Join("..", "outside"),
		"yaml:",
		"yaml:missing",
		"ball.yaml",
	} {
		t.Run(id, func(t *testing.T) {
			_, err := LoadListed(id, opts)
			assert.ErrorIs(t, err, ErrUnknownScene)
		})
	}
}
