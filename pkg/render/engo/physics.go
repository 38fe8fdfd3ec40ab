package engo

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-rigid2d/pkg/world"
)

// Time scale limits for the viewer
const (
	minTimeScale = 0.125
	maxTimeScale = 8
)

// PhysicsSystem advances a world once per frame. It owns no entities.
type PhysicsSystem struct {
	world     *world.Map
	maxDelta  float64
	fixedStep float64
	timeScale float64
	paused    bool
	step      bool
}

// NewPhysicsSystem ticks m with the frame time, capped at maxDelta. While
// paused, StepOnce advances it by a single fixedStep.
func NewPhysicsSystem(m *world.Map, maxDelta, fixedStep float64) *PhysicsSystem {
	return &PhysicsSystem{
		world:     m,
		maxDelta:  maxDelta,
		fixedStep: fixedStep,
		timeScale: 1,
	}
}

// Priority runs physics before the systems that read the world.
func (ps *PhysicsSystem) Priority() int { return 10 }

// Remove satisfies the ecs.System interface
func (ps *PhysicsSystem) Remove(basic ecs.BasicEntity) {}

// Update ticks the world
func (ps *PhysicsSystem) Update(dt float32) {
	if ps.step {
		ps.step = false
		ps.world.Tick(ps.fixedStep)
		return
	}
	if ps.paused {
		return
	}

	delta := float64(dt) * ps.timeScale
	if delta > ps.maxDelta {
		delta = ps.maxDelta
	}
	ps.world.Tick(delta)
}

// Paused reports whether the world is frozen
func (ps *PhysicsSystem) Paused() bool { return ps.paused }

// SetPaused freezes or resumes the world
func (ps *PhysicsSystem) SetPaused(paused bool) { ps.paused = paused }

// StepOnce queues a single fixed step and pauses the world
func (ps *PhysicsSystem) StepOnce() {
	ps.paused = true
	ps.step = true
}

// TimeScale returns the simulation speed relative to wall-clock time
func (ps *PhysicsSystem) TimeScale() float64 { return ps.timeScale }

// SetTimeScale sets the simulation speed, clamped to [1/8, 8]
func (ps *PhysicsSystem) SetTimeScale(scale float64) {
	ps.timeScale = min(max(scale, minTimeScale), maxTimeScale)
}
