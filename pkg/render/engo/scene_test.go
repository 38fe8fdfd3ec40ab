// pkg/render/engo/scene_test.go
package engo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-rigid2d/pkg/physics"
	"github.com/opd-ai/go-rigid2d/pkg/world"
)

func TestNewPhysicsScene(t *testing.T) {
	m := world.NewMap()
	require.NoError(t, m.InitBoundary(physics.Vector2D{}, physics.Vector2D{X: 40, Y: 20}))

	scene := NewPhysicsScene(m, SceneOptions{MaxDeltaTime: 0.1, FixedStep: 1.0 / 60})

	assert.Equal(t, "PhysicsScene", scene.Type())
	assert.Equal(t, physics.Vector2D{X: 20, Y: 10}, scene.options.View.Center, "view defaults to the map bounds")
	assert.NotNil(t, scene.logger)
}

func TestNewPhysicsScene_ExplicitView(t *testing.T) {
	view := physics.Rect{Center: physics.Vector2D{X: 1, Y: 2}, Width: 3, Height: 4}

	scene := NewPhysicsScene(world.NewMap(), SceneOptions{View: view})

	assert.Equal(t, view, scene.options.View)
}

func TestHUDSystem_Status(t *testing.T) {
	m, _ := newMovingWorld(t)
	require.NoError(t, m.InitBoundary(physics.Vector2D{X: -50, Y: -50}, physics.Vector2D{X: 50, Y: 50}))
	ps := NewPhysicsSystem(m, 0.1, 0.01)
	hud := NewHUDSystem(m, ps)
	target := newFakeTarget()

	hud.Attach(target, nil)
	assert.Empty(t, target.added, "no font, nothing to draw")

	ps.Update(0.01)
	ps.SetPaused(true)
	hud.Update(0)

	assert.Equal(t, "tick 1  bodies 5 (4 static)  speed x1  paused", hud.Status())
}
