// Package world owns the bodies of a simulation and advances them one tick at
// a time: integrate, detect, resolve, commit.
package world

import (
	"context"
	"fmt"
	"sync"

	"github.com/opd-ai/go-rigid2d/pkg/body"
	"github.com/opd-ai/go-rigid2d/pkg/collision"
	"github.com/opd-ai/go-rigid2d/pkg/event"
	"github.com/opd-ai/go-rigid2d/pkg/logging"
	"github.com/opd-ai/go-rigid2d/pkg/physics"
)

// Option configures a Map.
type Option func(*Map)

// WithRotation makes the integrate step advance each body's angle by its
// angular velocity.
func WithRotation() Option {
	return func(m *Map) { m.trace.Rotate = true }
}

// WithDamping makes the integrate step apply each body's friction and angular
// friction to its velocities.
func WithDamping() Option {
	return func(m *Map) { m.trace.Damp = true }
}

// WithEventBus publishes body, contact and tick events to bus.
func WithEventBus(bus *event.Bus) Option {
	return func(m *Map) { m.bus = bus }
}

// WithLogger sets the logger. Maps log nothing by default.
func WithLogger(logger *logging.Logger) Option {
	return func(m *Map) { m.logger = logger }
}

// Map is the simulation world. It holds static bodies, which never move, and
// dynamic bodies, which are integrated and resolved every tick.
//
// All methods are safe to call from multiple goroutines; a tick holds the
// write lock for its whole duration.
type Map struct {
	statics  []body.Object
	dynamics []body.Movable

	staticContacts  collision.Stack
	dynamicContacts collision.Stack

	trace     body.TraceOptions
	tick      uint64
	bounds    physics.Rect
	hasBounds bool
	index     *physics.QuadTree[body.Object]

	bus    *event.Bus
	logger *logging.Logger
	mu     sync.RWMutex
}

// NewMap creates an empty world.
func NewMap(opts ...Option) *Map {
	m := &Map{logger: logging.Discard()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// InitBoundary adds four static lines along the edges of the rectangle
// spanned by bottomLeft and topRight, in the order top, right, bottom, left.
func (m *Map) InitBoundary(bottomLeft, topRight physics.Vector2D) error {
	topLeft := physics.Vector2D{X: bottomLeft.X, Y: topRight.Y}
	bottomRight := physics.Vector2D{X: topRight.X, Y: bottomLeft.Y}

	edges := [4][2]physics.Vector2D{
		{topLeft, topRight},
		{topRight, bottomRight},
		{bottomRight, bottomLeft},
		{bottomLeft, topLeft},
	}

	lines := make([]body.Object, 0, len(edges))
	for _, e := range edges {
		line, err := body.NewLine(e[0], e[1])
		if err != nil {
			return fmt.Errorf("boundary %v-%v: %w", bottomLeft, topRight, err)
		}
		lines = append(lines, line)
	}

	m.mu.Lock()
	m.statics = append(m.statics, lines...)
	m.bounds = physics.RectFromCorners(bottomLeft, topRight)
	m.hasBounds = true
	m.refreshIndex()
	m.mu.Unlock()

	m.logger.Info(context.Background(), "boundary created",
		"bottom_left", bottomLeft, "top_right", topRight)
	for _, line := range lines {
		m.publish(event.NewBodyEvent(event.BoundaryCreated, m, line, true))
	}

	return nil
}

// AddStaticBody adds an immovable obstacle.
func (m *Map) AddStaticBody(o body.Object) {
	m.mu.Lock()
	m.statics = append(m.statics, o)
	m.refreshIndex()
	m.mu.Unlock()

	m.logger.Debug(context.Background(), "static body added", "id", o.GetID().String(), "kind", o.Kind().String())
	m.publish(event.NewBodyEvent(event.BodyAdded, m, o, true))
}

// AddDynamicBody adds a body that takes part in every following tick.
// The Map takes ownership: callers must not mutate b while a tick runs.
func (m *Map) AddDynamicBody(b body.Movable) {
	m.mu.Lock()
	m.dynamics = append(m.dynamics, b)
	m.refreshIndex()
	m.mu.Unlock()

	m.logger.Debug(context.Background(), "dynamic body added", "id", b.GetID().String(), "kind", b.Kind().String())
	m.publish(event.NewBodyEvent(event.BodyAdded, m, b, false))
}

// StaticBodies returns the static bodies in insertion order.
func (m *Map) StaticBodies() []body.Object {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]body.Object, len(m.statics))
	copy(out, m.statics)
	return out
}

// DynamicBodies returns the dynamic bodies in insertion order.
func (m *Map) DynamicBodies() []body.Movable {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]body.Movable, len(m.dynamics))
	copy(out, m.dynamics)
	return out
}

// Bounds returns the rectangle set by InitBoundary.
func (m *Map) Bounds() (physics.Rect, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bounds, m.hasBounds
}

// TickCount is the number of completed ticks.
func (m *Map) TickCount() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tick
}

// Tick advances the world by dt seconds. dt must be finite and non-negative;
// it is not checked here.
func (m *Map) Tick(dt float64) {
	m.mu.Lock()
	events := m.step(dt)
	m.mu.Unlock()

	for _, e := range events {
		m.publish(e)
	}
}

// step runs one tick under the write lock and returns the events to publish
// once the lock is released.
func (m *Map) step(dt float64) []event.Event {
	m.integrate(dt)

	m.detectStatic()
	var events []event.Event
	staticCount := m.staticContacts.Len()
	events = m.resolve(&m.staticContacts, events)

	m.detectDynamic()
	dynamicCount := m.dynamicContacts.Len()
	events = m.resolve(&m.dynamicContacts, events)

	m.commit()
	m.tick++
	m.refreshIndex()

	m.logger.Debug(context.Background(), "tick completed",
		"tick", m.tick,
		"dt", dt,
		"static_contacts", staticCount,
		"dynamic_contacts", dynamicCount)

	if m.bus != nil {
		events = append(events, event.NewTickEvent(m, m.tick, dt, staticCount+dynamicCount))
	}
	return events
}

func (m *Map) integrate(dt float64) {
	for _, d := range m.dynamics {
		d.Trace(dt, m.trace)
	}
}

// detectStatic tests every dynamic body against every static one. The static
// body goes first into SAT so that its face is the reference face on ties.
func (m *Map) detectStatic() {
	for _, d := range m.dynamics {
		circle := body.BoundingCircle(d)
		for _, s := range m.statics {
			if !circle.Collides(body.BoundingCircle(s)) {
				continue
			}
			if result := physics.SAT(s, d); result.Collided {
				m.staticContacts.Push(collision.NewStaticContact(d, s, result))
			}
		}
	}
}

// detectDynamic tests each unordered pair of dynamic bodies once.
func (m *Map) detectDynamic() {
	for i := 0; i < len(m.dynamics); i++ {
		a := m.dynamics[i]
		circle := body.BoundingCircle(a)
		for j := i + 1; j < len(m.dynamics); j++ {
			b := m.dynamics[j]
			if !circle.Collides(body.BoundingCircle(b)) {
				continue
			}
			if result := physics.SAT(a, b); result.Collided {
				m.dynamicContacts.Push(collision.NewContact(a, b, result))
			}
		}
	}
}

// resolve drains the stack, most recent contact first.
func (m *Map) resolve(contacts *collision.Stack, events []event.Event) []event.Event {
	for {
		c, ok := contacts.Pop()
		if !ok {
			break
		}
		impulse := c.Resolve()
		if m.bus != nil {
			events = append(events, event.NewContactEvent(m,
				c.A.GetID(), c.B.GetID(), c.Depth, c.Normal, c.Point, impulse))
		}
	}
	contacts.Reset()
	return events
}

func (m *Map) commit() {
	for _, d := range m.dynamics {
		d.Commit()
	}
}

func (m *Map) publish(e event.Event) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}
