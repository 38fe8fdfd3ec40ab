// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-rigid2d/pkg/physics"
	"github.com/opd-ai/go-rigid2d/pkg/validation"
)

// SimulationConfig describes a scene and how to run it
type SimulationConfig struct {
	World     WorldConfig      `json:"world" yaml:"world"`
	Physics   PhysicsConfig    `json:"physics" yaml:"physics"`
	Render    RenderConfig     `json:"render" yaml:"render"`
	Bodies    []BodyConfig     `json:"bodies" yaml:"bodies"`
	Obstacles []ObstacleConfig `json:"obstacles,omitempty" yaml:"obstacles,omitempty"`
}

// WorldConfig contains the extent of the world and its border
type WorldConfig struct {
	BottomLeft physics.Vector2D `json:"bottomLeft" yaml:"bottom_left"`
	TopRight   physics.Vector2D `json:"topRight" yaml:"top_right"`
	// Boundary surrounds the world with four static lines.
	Boundary           bool    `json:"boundary" yaml:"boundary"`
	BoundaryElasticity float64 `json:"boundaryElasticity" yaml:"boundary_elasticity"`
}

// PhysicsConfig contains timing and integration settings
type PhysicsConfig struct {
	TickRate     int     `json:"tickRate" yaml:"tick_rate"`
	MaxDeltaTime float64 `json:"maxDeltaTime" yaml:"max_delta_time"`
	// FixedStep feeds every tick exactly 1/TickRate instead of wall-clock time.
	FixedStep bool    `json:"fixedStep" yaml:"fixed_step"`
	Rotation  bool    `json:"rotation" yaml:"rotation"`
	Damping   bool    `json:"damping" yaml:"damping"`
	Duration  float64 `json:"duration" yaml:"duration"` // seconds, 0 runs until stopped
}

// RenderConfig contains output settings
type RenderConfig struct {
	Mode       string `json:"mode" yaml:"mode"` // terminal, log or none
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	FrameEvery int    `json:"frameEvery" yaml:"frame_every"`
}

// BodyConfig contains configuration for a dynamic rectangle
type BodyConfig struct {
	Name            string           `json:"name,omitempty" yaml:"name,omitempty"`
	Position        physics.Vector2D `json:"position" yaml:"position"`
	Direction       physics.Vector2D `json:"direction,omitempty" yaml:"direction,omitempty"`
	Size            physics.Vector2D `json:"size" yaml:"size"`
	Mass            float64          `json:"mass" yaml:"mass"`
	Elasticity      *float64         `json:"elasticity,omitempty" yaml:"elasticity,omitempty"`
	Velocity        physics.Vector2D `json:"velocity" yaml:"velocity"`
	AngularVelocity float64          `json:"angularVelocity,omitempty" yaml:"angular_velocity,omitempty"`
	Friction        float64          `json:"friction,omitempty" yaml:"friction,omitempty"`
	AngularFriction float64          `json:"angularFriction,omitempty" yaml:"angular_friction,omitempty"`
}

// Obstacle shapes
const (
	ShapeRectangle = "rectangle"
	ShapeLine      = "line"
)

// ObstacleConfig contains configuration for a static body. Rectangles use
// Position, Direction and Size; lines use From and To.
type ObstacleConfig struct {
	Name       string           `json:"name,omitempty" yaml:"name,omitempty"`
	Shape      string           `json:"shape" yaml:"shape"`
	Position   physics.Vector2D `json:"position,omitempty" yaml:"position,omitempty"`
	Direction  physics.Vector2D `json:"direction,omitempty" yaml:"direction,omitempty"`
	Size       physics.Vector2D `json:"size,omitempty" yaml:"size,omitempty"`
	From       physics.Vector2D `json:"from,omitempty" yaml:"from,omitempty"`
	To         physics.Vector2D `json:"to,omitempty" yaml:"to,omitempty"`
	Elasticity *float64         `json:"elasticity,omitempty" yaml:"elasticity,omitempty"`
}

// defaultDirection is used when a body or obstacle leaves direction out.
var defaultDirection = physics.Vector2D{X: 1}

// GetDirection returns the configured direction or +X when none was given.
func (b BodyConfig) GetDirection() physics.Vector2D {
	if b.Direction.IsZero() {
		return defaultDirection
	}
	return b.Direction
}

// GetElasticity returns the configured elasticity or 1 when none was given.
func (b BodyConfig) GetElasticity() float64 {
	return elasticityOrDefault(b.Elasticity)
}

// GetDirection returns the configured direction or +X when none was given.
func (o ObstacleConfig) GetDirection() physics.Vector2D {
	if o.Direction.IsZero() {
		return defaultDirection
	}
	return o.Direction
}

// GetElasticity returns the configured elasticity or 1 when none was given.
func (o ObstacleConfig) GetElasticity() float64 {
	return elasticityOrDefault(o.Elasticity)
}

func elasticityOrDefault(e *float64) float64 {
	if e == nil {
		return 1
	}
	return *e
}

// Elasticity returns a pointer to e, for filling optional config fields.
func Elasticity(e float64) *float64 {
	return &e
}

// isYAML reports whether path names a YAML file
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadConfig loads a configuration from a JSON or YAML file, chosen by
// extension. Sections missing from the file keep their default values.
func LoadConfig(path string) (*SimulationConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	if info.Size() > validation.MaxSceneFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), validation.MaxSceneFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	config.Bodies = nil
	config.Obstacles = nil

	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a JSON or YAML file, chosen by extension.
func SaveConfig(config *SimulationConfig, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default simulation configuration: a walled
// 100x60 box with a few crates in flight.
func DefaultConfig() *SimulationConfig {
	return &SimulationConfig{
		World: WorldConfig{
			BottomLeft:         physics.Vector2D{X: 0, Y: 0},
			TopRight:           physics.Vector2D{X: 100, Y: 60},
			Boundary:           true,
			BoundaryElasticity: 1,
		},
		Physics: PhysicsConfig{
			TickRate:     60,
			MaxDeltaTime: 0.1,
			FixedStep:    false,
			Rotation:     false,
			Damping:      false,
			Duration:     0,
		},
		Render: RenderConfig{
			Mode:       "terminal",
			Width:      80,
			Height:     24,
			FrameEvery: 2,
		},
		Bodies: []BodyConfig{
			{
				Name:     "crate-1",
				Position: physics.Vector2D{X: 20, Y: 30},
				Size:     physics.Vector2D{X: 6, Y: 6},
				Mass:     1,
				Velocity: physics.Vector2D{X: 25, Y: 12},
			},
			{
				Name:       "crate-2",
				Position:   physics.Vector2D{X: 70, Y: 20},
				Size:       physics.Vector2D{X: 8, Y: 4},
				Mass:       2,
				Elasticity: Elasticity(0.9),
				Velocity:   physics.Vector2D{X: -18, Y: 9},
			},
			{
				Name:      "plank",
				Position:  physics.Vector2D{X: 50, Y: 45},
				Direction: physics.Vector2D{X: 1, Y: 0.25},
				Size:      physics.Vector2D{X: 2, Y: 14},
				Mass:      3,
				Velocity:  physics.Vector2D{X: 6, Y: -15},
			},
		},
	}
}
