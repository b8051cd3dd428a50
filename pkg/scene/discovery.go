package scene

import (
	"fmt"
	"sort"
)

// Options carries parameters shared by all scene builders
type Options struct {
	AspectRatio float64 // Width / height of the target image
	Seed        int64   // Seed for procedural placement and noise tables
	TexturePath string  // Image file for texture-mapped scenes
}

// Builder constructs a scene from options
type Builder func(opts Options) (*Scene, error)

// Info describes a registered scene
type Info struct {
	Name        string
	Description string
	Build       Builder
}

var registry = map[string]Info{
	"weekend": {
		Name:        "weekend",
		Description: "Random spheres on a checker ground: diffuse, metal, glass, some in motion",
		Build:       NewWeekendScene,
	},
	"two-spheres": {
		Name:        "two-spheres",
		Description: "Two large checker-textured spheres",
		Build:       NewTwoSpheresScene,
	},
	"perlin-spheres": {
		Name:        "perlin-spheres",
		Description: "Marble-noise ground and sphere",
		Build:       NewPerlinSpheresScene,
	},
	"earth": {
		Name:        "earth",
		Description: "Image-textured globe (requires a texture file)",
		Build:       NewEarthScene,
	},
	"simple-light": {
		Name:        "simple-light",
		Description: "Marble spheres lit by a rectangle and a sphere light",
		Build:       NewSimpleLightScene,
	},
	"cornell": {
		Name:        "cornell",
		Description: "Cornell box with a rectangular area light",
		Build:       NewCornellScene,
	},
}

// Get returns the builder info for a scene name
func Get(name string) (Info, error) {
	info, ok := registry[name]
	if !ok {
		return Info{}, fmt.Errorf("unknown scene %q (run 'glimmer scenes' for the list)", name)
	}
	return info, nil
}

// List returns all registered scenes sorted by name
func List() []Info {
	infos := make([]Info, 0, len(registry))
	for _, info := range registry {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}
