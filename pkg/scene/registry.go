package scene

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownScene is returned by ByName for names with no registered preset
var ErrUnknownScene = errors.New("unknown scene")

// Options adjusts how presets are built
type Options struct {
	TexturePath string // Image used by the earth presets, DefaultTexturePath when empty
}

// SceneInfo describes a registered preset
type SceneInfo struct {
	ID          string // Name used on the command line
	DisplayName string
	Description string
}

type preset struct {
	info  SceneInfo
	build func(Options) *Scene
}

var presets = []preset{
	newPreset("random", "Random spheres on a checkered ground with motion blur and depth of field", NewRandomScene),
	newPreset("two-spheres", "Two checkered spheres", NewTwoSpheresScene),
	newPreset("two-perlin-spheres", "Marble sphere on a marble ground", NewTwoPerlinSpheresScene),
	newPreset("earth", "Image-textured globe", NewEarthScene),
	newPreset("simple-light", "Marble spheres lit by an area light and a glowing sphere", NewSimpleLightScene),
	newPreset("cornell-box", "Cornell box with two rotated blocks", NewCornellBoxScene),
	newPreset("cornell-smoke", "Cornell box with smoke blocks", NewCornellSmokeScene),
	newPreset("final", "Every feature at once", NewFinalScene),
}

func newPreset(id, description string, build func(Options) *Scene) preset {
	return preset{
		info: SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: description,
		},
		build: build,
	}
}

// titleCase turns a preset ID like "cornell-box" into "Cornell Box"
func titleCase(s string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return cases.Title(language.English).String(words)
}

// Names returns the registered preset IDs in registration order
func Names() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.info.ID
	}
	return names
}

// List returns metadata for every registered preset
func List() []SceneInfo {
	infos := make([]SceneInfo, len(presets))
	for i, p := range presets {
		infos[i] = p.info
	}
	return infos
}

// ByName builds the preset registered under name
func ByName(name string, opts Options) (*Scene, error) {
	for _, p := range presets {
		if p.info.ID == name {
			return p.build(opts), nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
}
