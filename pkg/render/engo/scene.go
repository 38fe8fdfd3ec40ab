// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-rigid2d/pkg/logging"
	"github.com/opd-ai/go-rigid2d/pkg/physics"
	"github.com/opd-ai/go-rigid2d/pkg/world"
)

// SceneOptions configures a viewer scene
type SceneOptions struct {
	// View is the world area fitted to the window. Zero uses the map bounds.
	View         physics.Rect
	MaxDeltaTime float64
	FixedStep    float64
	Logger       *logging.Logger
}

// PhysicsScene shows a world in an engo window
type PhysicsScene struct {
	world   *world.Map
	options SceneOptions
	assets  *AssetManager
	logger  *logging.Logger

	physics *PhysicsSystem
	camera  *CameraSystem
	bodies  *BodySystem
	hud     *HUDSystem
}

// NewPhysicsScene creates a scene that ticks and draws m
func NewPhysicsScene(m *world.Map, options SceneOptions) *PhysicsScene {
	logger := options.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	if options.View.Width == 0 || options.View.Height == 0 {
		if bounds, ok := m.Bounds(); ok {
			options.View = bounds
		}
	}
	return &PhysicsScene{
		world:   m,
		options: options,
		assets:  NewAssetManager(),
		logger:  logger,
	}
}

// Type returns the scene type (required by Engo)
func (scene *PhysicsScene) Type() string {
	return "PhysicsScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *PhysicsScene) Preload() {
	if err := scene.assets.LoadAssets(); err != nil {
		scene.logger.Error(context.Background(), "Failed to load assets", err)
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *PhysicsScene) Setup(u engo.Updater) {
	w, _ := u.(*ecs.World)
	common.SetBackground(scene.assets.Background())
	SetupInputBindings()

	renderSystem := &common.RenderSystem{}
	w.AddSystem(renderSystem)

	scene.physics = NewPhysicsSystem(scene.world, scene.options.MaxDeltaTime, scene.options.FixedStep)
	w.AddSystem(scene.physics)

	scene.camera = NewCameraSystem(engo.GameWidth(), engo.GameHeight())
	scene.camera.Fit(scene.options.View)
	w.AddSystem(scene.camera)

	scene.bodies = NewBodySystem(scene.world, scene.camera, renderSystem, scene.assets)
	w.AddSystem(scene.bodies)

	w.AddSystem(NewInputSystem(scene.physics))

	scene.hud = NewHUDSystem(scene.world, scene.physics)
	font, err := scene.assets.HUDFont()
	if err != nil {
		scene.logger.Warn(context.Background(), "HUD disabled", "error", err.Error())
	}
	scene.hud.Attach(renderSystem, font)
	w.AddSystem(scene.hud)

	scene.logger.Info(context.Background(), "Viewer scene ready",
		"bodies", len(scene.world.DynamicBodies()),
		"scale", scene.camera.Scale(),
	)
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *PhysicsScene) Exit() {
	scene.logger.Info(context.Background(), "Viewer closed", "tick", scene.world.TickCount())
}
