// Package collision turns narrow-phase results into contacts and resolves them
// with positional correction and a single velocity impulse.
package collision

import (
	"github.com/opd-ai/go-rigid2d/pkg/body"
	"github.com/opd-ai/go-rigid2d/pkg/physics"
)

// Contact is one detected overlap between a movable body and another body.
// It is only valid for the tick that produced it.
type Contact struct {
	A body.Movable
	B body.Object

	// Depth is the penetration along Normal.
	Depth float64
	// Normal is the unit separating axis pointing from A toward B.
	Normal physics.Vector2D
	// Point is where the impulse is applied, in world space.
	Point physics.Vector2D
}

// NewContact builds a contact from SAT(a, b).
func NewContact(a body.Movable, b body.Object, result physics.CollisionResult) Contact {
	return Contact{
		A:      a,
		B:      b,
		Depth:  result.Penetration,
		Normal: result.Normal,
		Point:  result.ContactPoint,
	}
}

// NewStaticContact builds a contact from SAT(static, dynamic). The static body
// goes first so its face is preferred as the reference face; the normal is
// reversed so the contact still points from the movable body outward.
func NewStaticContact(dynamic body.Movable, static body.Object, result physics.CollisionResult) Contact {
	return Contact{
		A:      dynamic,
		B:      static,
		Depth:  result.Penetration,
		Normal: result.Normal.Scale(-1),
		Point:  result.ContactPoint,
	}
}

// inertial is the part of a body the resolver reads and writes. A body that is
// not Movable is treated as an immovable one at rest.
type inertial struct {
	movable         body.Movable
	inverseMass     float64
	inverseInertia  float64
	velocity        physics.Vector2D
	angularVelocity float64
	elasticity      float64
}

func inertialOf(o body.Object) inertial {
	state := inertial{elasticity: 1}
	if e, ok := o.(body.Elastic); ok {
		state.elasticity = e.GetElasticity()
	}

	m, ok := o.(body.Movable)
	if !ok {
		return state
	}

	state.movable = m
	state.inverseMass = m.GetInverseMass()
	state.inverseInertia = m.GetInverseInertia()
	state.velocity = m.GetVelocity()
	state.angularVelocity = m.GetAngularVelocity()
	return state
}

// pointVelocity is the velocity of the material point at lever arm r.
func (s inertial) pointVelocity(r physics.Vector2D) physics.Vector2D {
	return s.velocity.Add(physics.CrossScalar(s.angularVelocity, r))
}
