package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, used on the command line and in the API
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // One-line description
}

type builtInScene struct {
	info  SceneInfo
	build func() *Scene
}

var builtInScenes = []builtInScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Diffuse and mirror spheres, a disc and a ground plane under a sun and a point light",
		},
		build: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "cornell-box",
			Name:        "Cornell Box",
			Description: "Cornell box made of planes with a mirror sphere and a ceiling lamp",
		},
		build: NewCornellScene,
	},
	{
		info: SceneInfo{
			ID:          "sphere-grid",
			Name:        "Sphere Grid",
			Description: "10x10 grid of rainbow-colored diffuse and mirror spheres",
		},
		build: NewSphereGridScene,
	},
	{
		info: SceneInfo{
			ID:          "mirrors",
			Name:        "Facing Mirrors",
			Description: "Two parallel mirrors showing the reflection depth limit",
		},
		build: NewMirrorsScene,
	},
	{
		info: SceneInfo{
			ID:          "plane",
			Name:        "Lit Plane",
			Description: "A single diffuse plane under a sun, seen from straight above",
		},
		build: NewPlaneScene,
	},
}

// ListScenes returns the built-in scenes sorted by display name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, b := range builtInScenes {
		scenes = append(scenes, b.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Create builds the scene registered under id. Matching ignores case and
// surrounding whitespace.
func Create(id string) (*Scene, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, b := range builtInScenes {
		if b.info.ID == id {
			return b.build(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q (available: %s)", id, strings.Join(sceneIDs(), ", "))
}

func sceneIDs() []string {
	ids := make([]string, 0, len(builtInScenes))
	for _, b := range builtInScenes {
		ids = append(ids, b.info.ID)
	}
	return ids
}
