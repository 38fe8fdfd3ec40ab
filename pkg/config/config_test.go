// pkg/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-rigid2d/pkg/physics"
	"github.com/opd-ai/go-rigid2d/pkg/validation"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 60, cfg.Physics.TickRate)
	assert.Equal(t, 0.1, cfg.Physics.MaxDeltaTime)
	assert.True(t, cfg.World.Boundary)
	assert.Equal(t, RenderTerminal, cfg.Render.Mode)
	assert.Len(t, cfg.Bodies, 3)
	assert.Equal(t, 0.9, cfg.Bodies[1].GetElasticity())
}

func TestSaveAndLoadConfig(t *testing.T) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scene"+ext)
			cfg := DefaultConfig()
			cfg.Physics.Rotation = true
			cfg.Obstacles = []ObstacleConfig{
				{Name: "ramp", Shape: ShapeLine, From: physics.Vector2D{X: 1, Y: 1}, To: physics.Vector2D{X: 9, Y: 4}, Elasticity: Elasticity(0.5)},
			}

			require.NoError(t, SaveConfig(cfg, path))
			loaded, err := LoadConfig(path)
			require.NoError(t, err)

			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoadConfig_YAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := `
physics:
  tick_rate: 120
  rotation: true
bodies:
  - name: lone
    position: {x: 10, y: 10}
    size: {x: 2, y: 2}
    mass: 1
    velocity: {x: 3, y: 0}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.Physics.TickRate)
	assert.True(t, cfg.Physics.Rotation)
	assert.Equal(t, 0.1, cfg.Physics.MaxDeltaTime, "missing keys keep their default")
	assert.Equal(t, physics.Vector2D{X: 100, Y: 60}, cfg.World.TopRight)
	require.Len(t, cfg.Bodies, 1, "default bodies are replaced, not merged")
	assert.Equal(t, "lone", cfg.Bodies[0].Name)
	assert.Equal(t, physics.Vector2D{X: 1}, cfg.Bodies[0].GetDirection())
	assert.Equal(t, 1.0, cfg.Bodies[0].GetElasticity())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("too_large", func(t *testing.T) {
		path := filepath.Join(dir, "big.json")
		require.NoError(t, os.WriteFile(path, make([]byte, validation.MaxSceneFileSize+1), 0o644))
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "too large")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SimulationConfig)
		field  string
	}{
		{"inverted_bounds", func(c *SimulationConfig) { c.World.TopRight = physics.Vector2D{X: -1, Y: 5} }, "world"},
		{"boundary_elasticity", func(c *SimulationConfig) { c.World.BoundaryElasticity = 2 }, "world.boundaryElasticity"},
		{"zero_tick_rate", func(c *SimulationConfig) { c.Physics.TickRate = 0 }, "physics.tickRate"},
		{"zero_max_dt", func(c *SimulationConfig) { c.Physics.MaxDeltaTime = 0 }, "physics.maxDeltaTime"},
		{"negative_duration", func(c *SimulationConfig) { c.Physics.Duration = -1 }, "physics.duration"},
		{"render_mode", func(c *SimulationConfig) { c.Render.Mode = "opengl" }, "render.mode"},
		{"tiny_terminal", func(c *SimulationConfig) { c.Render.Width = 4 }, "render"},
		{"body_size", func(c *SimulationConfig) { c.Bodies[0].Size = physics.Vector2D{X: 0, Y: 1} }, "bodies[0]"},
		{"body_mass", func(c *SimulationConfig) { c.Bodies[1].Mass = -1 }, "bodies[1]"},
		{"body_elasticity", func(c *SimulationConfig) { c.Bodies[2].Elasticity = Elasticity(1.5) }, "bodies[2]"},
		{"body_name", func(c *SimulationConfig) { c.Bodies[0].Name = "<script>" }, "bodies[0]"},
		{"obstacle_shape", func(c *SimulationConfig) {
			c.Obstacles = []ObstacleConfig{{Shape: "circle"}}
		}, "obstacles[0]"},
		{"degenerate_line", func(c *SimulationConfig) {
			c.Obstacles = []ObstacleConfig{{Shape: ShapeLine, From: physics.Vector2D{X: 1}, To: physics.Vector2D{X: 1}}}
		}, "obstacles[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidate_UnboundedWorldSkipsBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.World.Boundary = false
	cfg.World.TopRight = physics.Vector2D{}

	assert.NoError(t, cfg.Validate())
}

func TestValidate_HeadlessIgnoresTerminalSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Render.Mode = RenderNone
	cfg.Render.Width = 0

	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_SampleScene(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "scenes", "pinball.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Len(t, cfg.Bodies, 3)
	assert.Len(t, cfg.Obstacles, 2)
	assert.Equal(t, 0.95, cfg.World.BoundaryElasticity)
	assert.True(t, cfg.Physics.Rotation)

	scene, err := BuildMap(cfg)
	require.NoError(t, err)
	assert.Len(t, scene.Map.StaticBodies(), 6)
}
