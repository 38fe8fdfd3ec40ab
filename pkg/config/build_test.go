package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-rigid2d/pkg/body"
	"github.com/opd-ai/go-rigid2d/pkg/event"
	"github.com/opd-ai/go-rigid2d/pkg/physics"
	"github.com/opd-ai/go-rigid2d/pkg/world"
)

func TestBuildMap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.World.BoundaryElasticity = 0.5
	cfg.Bodies[0].Friction = 0.25
	cfg.Obstacles = []ObstacleConfig{
		{Name: "pillar", Shape: ShapeRectangle, Position: physics.Vector2D{X: 50, Y: 30}, Size: physics.Vector2D{X: 4, Y: 4}},
		{Name: "ramp", Shape: ShapeLine, From: physics.Vector2D{X: 5, Y: 5}, To: physics.Vector2D{X: 20, Y: 2}, Elasticity: Elasticity(0.3)},
	}

	scene, err := BuildMap(cfg)
	require.NoError(t, err)

	statics := scene.Map.StaticBodies()
	require.Len(t, statics, 6, "four boundary lines then the obstacles")
	for _, edge := range statics[:4] {
		require.IsType(t, &body.Line{}, edge)
		assert.Equal(t, 0.5, edge.(*body.Line).GetElasticity())
	}
	pillar := statics[4].(*body.Rectangle)
	assert.Equal(t, 0.0, pillar.GetMass())
	assert.Equal(t, "pillar", scene.Name(pillar.GetID()))
	assert.Equal(t, 0.3, statics[5].(*body.Line).GetElasticity())

	dynamics := scene.Map.DynamicBodies()
	require.Len(t, dynamics, 3)
	assert.Equal(t, "crate-1", scene.Name(dynamics[0].GetID()))
	assert.Equal(t, 0.25, dynamics[0].GetFriction())
	assert.Equal(t, physics.Vector2D{X: 25, Y: 12}, dynamics[0].GetVelocity())
	assert.Equal(t, 0.9, dynamics[1].GetElasticity())

	bounds, ok := scene.Map.Bounds()
	assert.True(t, ok)
	assert.Equal(t, physics.Vector2D{X: 50, Y: 30}, bounds.Center)
}

func TestBuildMap_NoBoundary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.World.Boundary = false

	scene, err := BuildMap(cfg)
	require.NoError(t, err)

	assert.Empty(t, scene.Map.StaticBodies())
	_, ok := scene.Map.Bounds()
	assert.False(t, ok)
}

func TestBuildMap_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bodies[0].Direction = physics.Vector2D{X: 0, Y: 0}
	cfg.Bodies[0].Size = physics.Vector2D{X: -1, Y: 1}

	_, err := BuildMap(cfg)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestBuildMap_PassesOptions(t *testing.T) {
	bus := event.NewEventBus()
	added := 0
	bus.Subscribe(event.BodyAdded, func(e event.Event) { added++ })

	cfg := DefaultConfig()
	cfg.Physics.Rotation = true
	cfg.Bodies = cfg.Bodies[:1]
	cfg.Bodies[0].AngularVelocity = 1

	scene, err := BuildMap(cfg, world.WithEventBus(bus))
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	scene.Map.Tick(0.5)
	assert.InDelta(t, 0.5, scene.Map.DynamicBodies()[0].GetAngle().Radians(), 1e-9, "rotation follows the physics config")
}

func TestScene_NameFallsBackToID(t *testing.T) {
	scene := &Scene{Names: map[body.ID]string{}}
	id := body.NewID()

	assert.Equal(t, id.String()[:8], scene.Name(id))
}
