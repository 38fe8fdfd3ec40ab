package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-rigid2d/pkg/physics"
)

func TestSceneTemplates(t *testing.T) {
	assert.Equal(t, []string{"billiards", "obstacle_course", "single_box"}, ListSceneTemplates())
	assert.Nil(t, GetSceneTemplate("nope"))

	for _, name := range ListSceneTemplates() {
		t.Run(name, func(t *testing.T) {
			template := GetSceneTemplate(name)
			require.NotNil(t, template)
			assert.NotEmpty(t, template.Name)
			assert.NotEmpty(t, template.Description)
			assert.NotEmpty(t, template.Bodies)

			cfg := DefaultConfig()
			require.NoError(t, ApplySceneTemplate(cfg, name))
			assert.NoError(t, cfg.Validate(), "every template is a valid scene")

			scene, err := BuildMap(cfg)
			require.NoError(t, err)
			assert.Len(t, scene.Map.DynamicBodies(), len(template.Bodies))
		})
	}
}

func TestApplySceneTemplate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Physics.TickRate = 30

	require.NoError(t, ApplySceneTemplate(cfg, "obstacle_course"))

	assert.Equal(t, physics.Vector2D{X: 100, Y: 80}, cfg.World.TopRight)
	assert.Len(t, cfg.Bodies, 2)
	assert.Len(t, cfg.Obstacles, 3)
	assert.Equal(t, 30, cfg.Physics.TickRate, "physics settings are kept")

	cfg.Bodies[0].Name = "changed"
	assert.Equal(t, "runner-1", GetSceneTemplate("obstacle_course").Bodies[0].Name, "templates are copied")
}

func TestApplySceneTemplate_Unknown(t *testing.T) {
	cfg := DefaultConfig()

	err := ApplySceneTemplate(cfg, "unknown_template")

	assert.ErrorContains(t, err, "unknown scene template")
	assert.Len(t, cfg.Bodies, 3, "config is untouched")
}
