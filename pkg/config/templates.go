package config

import (
	"fmt"
	"sort"

	"github.com/opd-ai/go-rigid2d/pkg/physics"
)

// SceneTemplate is a named, ready-made world with its bodies
type SceneTemplate struct {
	Name        string
	Description string
	World       WorldConfig
	Bodies      []BodyConfig
	Obstacles   []ObstacleConfig
}

var sceneTemplates = map[string]*SceneTemplate{
	"single_box": {
		Name:        "Single Box",
		Description: "One square bouncing diagonally inside a walled room",
		World: WorldConfig{
			TopRight:           physics.Vector2D{X: 100, Y: 60},
			Boundary:           true,
			BoundaryElasticity: 1,
		},
		Bodies: []BodyConfig{
			{
				Name:     "box",
				Position: physics.Vector2D{X: 30, Y: 30},
				Size:     physics.Vector2D{X: 6, Y: 6},
				Mass:     1,
				Velocity: physics.Vector2D{X: 37, Y: -23},
			},
		},
	},
	"billiards": {
		Name:        "Billiards",
		Description: "A cue block fired into a rack of five equal blocks",
		World: WorldConfig{
			TopRight:           physics.Vector2D{X: 120, Y: 60},
			Boundary:           true,
			BoundaryElasticity: 0.95,
		},
		Bodies: []BodyConfig{
			{Name: "cue", Position: physics.Vector2D{X: 15, Y: 30}, Size: physics.Vector2D{X: 4, Y: 4}, Mass: 1, Velocity: physics.Vector2D{X: 40}},
			{Name: "rack-1", Position: physics.Vector2D{X: 70, Y: 30}, Size: physics.Vector2D{X: 4, Y: 4}, Mass: 1},
			{Name: "rack-2", Position: physics.Vector2D{X: 75, Y: 27.5}, Size: physics.Vector2D{X: 4, Y: 4}, Mass: 1},
			{Name: "rack-3", Position: physics.Vector2D{X: 75, Y: 32.5}, Size: physics.Vector2D{X: 4, Y: 4}, Mass: 1},
			{Name: "rack-4", Position: physics.Vector2D{X: 80, Y: 25}, Size: physics.Vector2D{X: 4, Y: 4}, Mass: 1},
			{Name: "rack-5", Position: physics.Vector2D{X: 80, Y: 35}, Size: physics.Vector2D{X: 4, Y: 4}, Mass: 1},
		},
	},
	"obstacle_course": {
		Name:        "Obstacle Course",
		Description: "Blocks ricocheting between a central pillar and two slanted ramps",
		World: WorldConfig{
			TopRight:           physics.Vector2D{X: 100, Y: 80},
			Boundary:           true,
			BoundaryElasticity: 1,
		},
		Bodies: []BodyConfig{
			{Name: "runner-1", Position: physics.Vector2D{X: 15, Y: 60}, Size: physics.Vector2D{X: 5, Y: 3}, Mass: 1, Velocity: physics.Vector2D{X: 20, Y: -12}},
			{Name: "runner-2", Position: physics.Vector2D{X: 85, Y: 20}, Size: physics.Vector2D{X: 3, Y: 5}, Mass: 2, Elasticity: Elasticity(0.8), Velocity: physics.Vector2D{X: -16, Y: 14}},
		},
		Obstacles: []ObstacleConfig{
			{Name: "pillar", Shape: ShapeRectangle, Position: physics.Vector2D{X: 50, Y: 40}, Direction: physics.Vector2D{X: 1, Y: 1}, Size: physics.Vector2D{X: 8, Y: 8}},
			{Name: "ramp-left", Shape: ShapeLine, From: physics.Vector2D{X: 5, Y: 20}, To: physics.Vector2D{X: 30, Y: 5}},
			{Name: "ramp-right", Shape: ShapeLine, From: physics.Vector2D{X: 70, Y: 75}, To: physics.Vector2D{X: 95, Y: 60}, Elasticity: Elasticity(0.7)},
		},
	},
}

// GetSceneTemplate returns the named template, or nil if there is none
func GetSceneTemplate(name string) *SceneTemplate {
	return sceneTemplates[name]
}

// ListSceneTemplates returns the template names in sorted order
func ListSceneTemplates() []string {
	names := make([]string, 0, len(sceneTemplates))
	for name := range sceneTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplySceneTemplate replaces the world, bodies and obstacles of config with
// copies of the named template. Physics and render settings are untouched.
func ApplySceneTemplate(config *SimulationConfig, name string) error {
	template := GetSceneTemplate(name)
	if template == nil {
		return fmt.Errorf("unknown scene template %q (available: %v)", name, ListSceneTemplates())
	}

	config.World = template.World
	config.Bodies = append([]BodyConfig(nil), template.Bodies...)
	config.Obstacles = append([]ObstacleConfig(nil), template.Obstacles...)
	return nil
}
