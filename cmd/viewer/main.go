// cmd/viewer/main.go
package main

import (
	"context"
	"flag"
	"os"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-rigid2d/pkg/config"
	"github.com/opd-ai/go-rigid2d/pkg/logging"
	engorender "github.com/opd-ai/go-rigid2d/pkg/render/engo"
	"github.com/opd-ai/go-rigid2d/pkg/world"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "scene.yaml", "Path to scene file (.json or .yaml)")
	template := flag.String("template", "", "Scene template to load instead of the file's bodies")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode")
	width := flag.Int("width", 1024, "Window width")
	height := flag.Int("height", 768, "Window height")
	flag.Parse()

	var simConfig *config.SimulationConfig
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", *configPath,
		)
		simConfig = config.DefaultConfig()
	} else {
		simConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
	}

	if *template != "" {
		if err := config.ApplySceneTemplate(simConfig, *template); err != nil {
			logger.Error(ctx, "Failed to apply scene template", err)
			os.Exit(1)
		}
	}

	if err := config.ApplyEnvironmentOverrides(simConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}

	scene, err := config.BuildMap(simConfig, world.WithLogger(logger))
	if err != nil {
		logger.Error(ctx, "Failed to build scene", err)
		os.Exit(1)
	}

	physicsScene := engorender.NewPhysicsScene(scene.Map, engorender.SceneOptions{
		MaxDeltaTime: simConfig.Physics.MaxDeltaTime,
		FixedStep:    1 / float64(simConfig.Physics.TickRate),
		Logger:       logger,
	})

	engo.Run(engo.RunOptions{
		Title:      "rigid2d",
		Width:      *width,
		Height:     *height,
		Fullscreen: *fullscreen,
		VSync:      true,
	}, physicsScene)
}
