// pkg/engine/simulation.go
package engine

import (
	"context"
	"time"

	"github.com/opd-ai/go-rigid2d/pkg/config"
	"github.com/opd-ai/go-rigid2d/pkg/logging"
	"github.com/opd-ai/go-rigid2d/pkg/render"
	"github.com/opd-ai/go-rigid2d/pkg/validation"
	"github.com/opd-ai/go-rigid2d/pkg/world"
)

// Option configures a Simulation
type Option func(*Simulation)

// WithRenderer draws every frameEvery-th tick through r
func WithRenderer(r render.Renderer, frameEvery int) Option {
	return func(s *Simulation) {
		s.renderer = r
		s.frameEvery = max(frameEvery, 1)
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(s *Simulation) { s.logger = logger }
}

// WithClock replaces time.Now, for tests
func WithClock(clock func() time.Time) Option {
	return func(s *Simulation) { s.clock = clock }
}

// Simulation drives a world at a fixed tick rate
type Simulation struct {
	World    *world.Map
	Physics  config.PhysicsConfig
	TimeStep float64 // Seconds per tick at the configured rate

	renderer   render.Renderer
	frameEvery int
	logger     *logging.Logger
	clock      func() time.Time

	LastUpdate  time.Time
	ElapsedTime float64 // simulated seconds
}

// NewSimulation creates a simulation of m with the given physics settings
func NewSimulation(m *world.Map, physics config.PhysicsConfig, opts ...Option) *Simulation {
	sim := &Simulation{
		World:      m,
		Physics:    physics,
		TimeStep:   1.0 / float64(max(physics.TickRate, 1)),
		frameEvery: 1,
		logger:     logging.Discard(),
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(sim)
	}
	sim.LastUpdate = sim.clock()
	return sim
}

// Update advances the world by one tick and renders it when a frame is due
func (s *Simulation) Update() error {
	deltaTime := s.calculateDeltaTime()
	if err := validation.ValidateDeltaTime(deltaTime, s.Physics.MaxDeltaTime); err != nil {
		return logging.WrapError(err, "simulation update at tick %d", s.World.TickCount())
	}

	s.World.Tick(deltaTime)
	s.ElapsedTime += deltaTime

	if s.renderer != nil && s.World.TickCount()%uint64(s.frameEvery) == 0 {
		if err := render.Draw(s.renderer, s.World.Snapshot()); err != nil {
			return logging.WrapError(err, "render frame at tick %d", s.World.TickCount())
		}
	}
	return nil
}

// calculateDeltaTime returns the fixed step, or the time since the last
// update capped at MaxDeltaTime.
func (s *Simulation) calculateDeltaTime() float64 {
	now := s.clock()
	deltaTime := now.Sub(s.LastUpdate).Seconds()
	s.LastUpdate = now

	if s.Physics.FixedStep {
		deltaTime = s.TimeStep
	}

	// Cap delta time to prevent tunnelling through thin bodies
	if s.Physics.MaxDeltaTime > 0 && deltaTime > s.Physics.MaxDeltaTime {
		deltaTime = s.Physics.MaxDeltaTime
	}
	return deltaTime
}

// Done reports whether the configured duration has been simulated
func (s *Simulation) Done() bool {
	return s.Physics.Duration > 0 && s.ElapsedTime >= s.Physics.Duration
}

// Run ticks the world at TickRate until ctx is cancelled or the configured
// duration has been simulated. Cancellation is a normal stop and returns nil.
func (s *Simulation) Run(ctx context.Context) error {
	interval := time.Duration(s.TimeStep * float64(time.Second))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.LastUpdate = s.clock()
	s.logger.Info(ctx, "Simulation started",
		"tick_rate", s.Physics.TickRate,
		"fixed_step", s.Physics.FixedStep,
		"duration", s.Physics.Duration,
	)

	for !s.Done() {
		select {
		case <-ctx.Done():
			s.logStopped(ctx, "cancelled")
			return nil
		case <-ticker.C:
			if err := s.Update(); err != nil {
				s.logger.Error(ctx, "Simulation update failed", err)
				return err
			}
		}
	}

	s.logStopped(ctx, "duration reached")
	return nil
}

// RunSteps performs n updates back to back, ignoring the tick rate.
func (s *Simulation) RunSteps(n int) error {
	for i := 0; i < n; i++ {
		if err := s.Update(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulation) logStopped(ctx context.Context, reason string) {
	s.logger.Info(ctx, "Simulation stopped",
		"reason", reason,
		"ticks", s.World.TickCount(),
		"elapsed", s.ElapsedTime,
		"checksum", s.World.Snapshot().Checksum(),
	)
}
