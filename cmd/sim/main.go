// cmd/sim/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/go-rigid2d/pkg/config"
	"github.com/opd-ai/go-rigid2d/pkg/engine"
	"github.com/opd-ai/go-rigid2d/pkg/event"
	"github.com/opd-ai/go-rigid2d/pkg/health"
	"github.com/opd-ai/go-rigid2d/pkg/logging"
	"github.com/opd-ai/go-rigid2d/pkg/physics"
	"github.com/opd-ai/go-rigid2d/pkg/render"
	"github.com/opd-ai/go-rigid2d/pkg/world"
)

func main() {
	// stdout carries terminal frames, so logs go to stderr
	logger := logging.NewLoggerWithWriter(os.Stderr)
	ctx := logging.WithCorrelationID(context.Background(), logging.GenerateCorrelationID())

	configPath := flag.String("config", "scene.yaml", "Path to scene file (.json or .yaml)")
	createDefault := flag.Bool("default", false, "Create default scene file")
	template := flag.String("template", "", "Scene template to load instead of the file's bodies")
	listTemplates := flag.Bool("templates", false, "List scene templates and exit")
	duration := flag.Duration("duration", 0, "Simulated time to run (overrides config)")
	renderMode := flag.String("render", "", "Renderer: terminal, log or none (overrides config)")
	healthAddr := flag.String("health", os.Getenv("RIGID2D_HEALTH_ADDR"), "Address for /health and /ready, empty disables")
	flag.Parse()

	if *listTemplates {
		for _, name := range config.ListSceneTemplates() {
			os.Stdout.WriteString(name + "\t" + config.GetSceneTemplate(name).Description + "\n")
		}
		return
	}

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	simConfig, err := loadConfig(ctx, logger, *configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", *configPath,
		)
		os.Exit(1)
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

	if *duration > 0 {
		simConfig.Physics.Duration = duration.Seconds()
	}
	if *renderMode != "" {
		simConfig.Render.Mode = *renderMode
	}
	if err := simConfig.Validate(); err != nil {
		logger.Error(ctx, "Invalid configuration", err)
		os.Exit(1)
	}

	bus := event.NewEventBus()
	bus.Subscribe(event.ContactResolved, func(e event.Event) {
		if contact, ok := e.(*event.ContactEvent); ok {
			logger.Debug(ctx, "Contact resolved",
				"body_a", contact.BodyA.String(),
				"body_b", contact.BodyB.String(),
				"depth", contact.Depth,
				"impulse", contact.Impulse,
			)
		}
	})

	scene, err := config.BuildMap(simConfig, world.WithLogger(logger), world.WithEventBus(bus))
	if err != nil {
		logger.Error(ctx, "Failed to build scene", err)
		os.Exit(1)
	}

	sim := engine.NewSimulation(scene.Map, simConfig.Physics,
		engine.WithLogger(logger),
		engine.WithRenderer(newRenderer(simConfig, scene.Map, logger), simConfig.Render.FrameEvery),
	)

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	runCtx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		// a finished run stops the health server too
		defer cancel()
		return sim.Run(gctx)
	})

	if *healthAddr != "" {
		healthChecker := health.NewHealthChecker()
		healthChecker.AddCheck(health.NewTickProgressCheck(scene.Map.TickCount, nil))
		healthChecker.AddCheck(health.NewBodyStateCheck(scene.Map.Snapshot))
		healthChecker.AddCheck(health.NewMemoryHealthCheck(500, nil))

		healthServer := &http.Server{
			Addr:         *healthAddr,
			Handler:      healthChecker.Handler(),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			logger.Info(ctx, "Starting health check server",
				"address", *healthAddr,
			)
			if err := healthServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return logging.WrapError(err, "health check server on %s", *healthAddr)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return healthServer.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Simulation failed", err)
		os.Exit(1)
	}
}

// loadConfig reads path when it exists and falls back to the default scene.
func loadConfig(ctx context.Context, logger *logging.Logger, path string) (*config.SimulationConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(path)
}

func newRenderer(simConfig *config.SimulationConfig, m *world.Map, logger *logging.Logger) render.Renderer {
	switch simConfig.Render.Mode {
	case config.RenderTerminal:
		terminal := render.NewTerminalRenderer(os.Stdout, simConfig.Render.Width, simConfig.Render.Height, 1)
		if bounds, ok := m.Bounds(); ok {
			terminal.Fit(bounds)
		} else {
			terminal.Fit(physics.RectFromCorners(simConfig.World.BottomLeft, simConfig.World.TopRight))
		}
		return terminal
	case config.RenderLog:
		return render.NewLogRenderer(logger)
	default:
		return render.NewNullRenderer(logger)
	}
}
