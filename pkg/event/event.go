// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-rigid2d/pkg/body"
	"github.com/opd-ai/go-rigid2d/pkg/physics"
)

// Type represents the type of event
type Type string

// Simulation event types
const (
	BodyAdded       Type = "body_added"
	BoundaryCreated Type = "boundary_created"
	ContactResolved Type = "contact_resolved"
	TickCompleted   Type = "tick_completed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it from the bus.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers. Handlers run on the
// caller's goroutine.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// Specific event implementations

// BodyEvent is published when a body joins the world.
type BodyEvent struct {
	BaseEvent
	BodyID body.ID
	Kind   body.Kind
	Static bool
}

// NewBodyEvent creates a new body event
func NewBodyEvent(eventType Type, source interface{}, o body.Object, static bool) *BodyEvent {
	return &BodyEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		BodyID: o.GetID(),
		Kind:   o.Kind(),
		Static: static,
	}
}

// ContactEvent describes one resolved contact.
type ContactEvent struct {
	BaseEvent
	BodyA   body.ID
	BodyB   body.ID
	Depth   float64
	Normal  physics.Vector2D
	Point   physics.Vector2D
	Impulse float64
}

// NewContactEvent creates a new contact event
func NewContactEvent(source interface{}, a, b body.ID, depth float64, normal, point physics.Vector2D, impulse float64) *ContactEvent {
	return &ContactEvent{
		BaseEvent: BaseEvent{
			EventType: ContactResolved,
			Source:    source,
		},
		BodyA:   a,
		BodyB:   b,
		Depth:   depth,
		Normal:  normal,
		Point:   point,
		Impulse: impulse,
	}
}

// TickEvent is published after a tick commits.
type TickEvent struct {
	BaseEvent
	Tick      uint64
	DeltaTime float64
	Contacts  int
}

// NewTickEvent creates a new tick event
func NewTickEvent(source interface{}, tick uint64, deltaTime float64, contacts int) *TickEvent {
	return &TickEvent{
		BaseEvent: BaseEvent{
			EventType: TickCompleted,
			Source:    source,
		},
		Tick:      tick,
		DeltaTime: deltaTime,
		Contacts:  contacts,
	}
}
