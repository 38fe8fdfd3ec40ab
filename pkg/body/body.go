// Package body defines the capability sets every collidable shape implements
// and the concrete shapes the world simulates.
package body

import (
	"errors"

	"github.com/google/uuid"

	"github.com/opd-ai/go-rigid2d/pkg/physics"
)

// ErrDegenerateLine is returned when a line's endpoints coincide.
var ErrDegenerateLine = errors.New("line endpoints coincide")

// ID is a unique identifier for a body
type ID uuid.UUID

// NewID returns a fresh random identifier.
func NewID() ID {
	return ID(uuid.New())
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the ID in its canonical UUID form.
func (id ID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// Kind names the concrete shape behind an Object.
type Kind int

const (
	KindRectangle Kind = iota
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindLine:
		return "line"
	default:
		return "unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Object is any shape with spatial extent that takes part in collision queries.
//
// Position is double-buffered: the current state is the last committed one,
// the potential state is the tentative one a tick works on before commit.
type Object interface {
	GetID() ID
	Kind() Kind
	GetCurrentPosition() physics.Vector2D
	SetCurrentPosition(position physics.Vector2D)
	GetPotentialPosition() physics.Vector2D
	SetPotentialPosition(position physics.Vector2D)
	GetSize() physics.Vector2D
	// GetPotentialVertices returns world-space corners of the potential state.
	GetPotentialVertices() []physics.Vector2D
	// GetCurrentVertices returns world-space corners of the committed state.
	GetCurrentVertices() []physics.Vector2D
	// GetDirection is the unit vector of the shape's primary axis.
	GetDirection() physics.Vector2D
	// BoundingRadius is the radius of the circle circumscribing the shape.
	BoundingRadius() float64
}

// Elastic is implemented by bodies that carry a restitution coefficient.
type Elastic interface {
	GetElasticity() float64
}

// TraceOptions selects the optional parts of the integration step.
type TraceOptions struct {
	Rotate bool
	Damp   bool
}

// Movable is an Object with mass that the world integrates every tick.
type Movable interface {
	Object
	Elastic

	GetMass() float64
	SetMass(mass float64)
	GetInverseMass() float64
	GetInertia() float64
	GetInverseInertia() float64
	SetSize(size physics.Vector2D)
	SetDirection(direction physics.Vector2D)
	SetElasticity(elasticity float64)
	GetVelocity() physics.Vector2D
	SetVelocity(velocity physics.Vector2D)
	GetAngularVelocity() float64
	SetAngularVelocity(angularVelocity float64)
	GetFriction() float64
	SetFriction(friction float64)
	GetAngularFriction() float64
	SetAngularFriction(angularFriction float64)
	GetAngle() physics.Angle
	SetAngle(angle physics.Angle)

	// Trace advances the potential state by dt.
	Trace(dt float64, opts TraceOptions)
	// Commit copies the potential state into the current state.
	Commit()
}

// BoundingCircle returns the circumscribed circle of o around its potential position.
func BoundingCircle(o Object) physics.Circle {
	return physics.Circle{Center: o.GetPotentialPosition(), Radius: o.BoundingRadius()}
}

func inverse(v float64) float64 {
	if v > 0 {
		return 1 / v
	}
	return 0
}
