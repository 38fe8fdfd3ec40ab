package body

import (
	"fmt"
	"math"

	"github.com/opd-ai/go-rigid2d/pkg/physics"
)

// Rectangle is a movable box. Size.X is its width, measured along the normal of
// its direction; Size.Y is its length, measured along the direction.
type Rectangle struct {
	id ID

	position          physics.Vector2D
	vertices          []physics.Vector2D
	potentialPosition physics.Vector2D

	size      physics.Vector2D
	direction physics.Vector2D
	angle     physics.Angle

	mass            float64
	inertia         float64
	elasticity      float64
	velocity        physics.Vector2D
	angularVelocity float64
	friction        float64
	angularFriction float64
}

var _ Movable = (*Rectangle)(nil)

// NewRectangle creates a rectangle centred at position. Elasticity defaults to 1.
func NewRectangle(position, direction, size physics.Vector2D, mass float64) (*Rectangle, error) {
	if direction.IsZero() {
		return nil, fmt.Errorf("rectangle direction: %w", physics.ErrZeroVector)
	}

	r := &Rectangle{
		id:                NewID(),
		position:          position,
		potentialPosition: position,
		size:              size,
		mass:              mass,
		elasticity:        1,
	}
	r.SetDirection(direction)
	r.updateInertia()

	return r, nil
}

// NewRectangleFromEdge creates a rectangle whose length edge runs from first
// to second; the body extends width to the right of that edge.
func NewRectangleFromEdge(first, second physics.Vector2D, width, mass float64) (*Rectangle, error) {
	edge := second.Sub(first)
	if edge.IsZero() {
		return nil, fmt.Errorf("rectangle edge: %w", physics.ErrZeroVector)
	}

	direction := edge.Unit()
	length := edge.Length()
	center := first.
		Add(direction.Scale(length / 2)).
		Add(direction.Normal().Scale(-width / 2))

	return NewRectangle(center, direction, physics.Vector2D{X: width, Y: length}, mass)
}

func (r *Rectangle) GetID() ID  { return r.id }
func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) GetCurrentPosition() physics.Vector2D { return r.position }

// SetCurrentPosition moves the committed state and refreshes its vertices.
func (r *Rectangle) SetCurrentPosition(position physics.Vector2D) {
	r.position = position
	r.vertices = rectangleVertices(position, r.direction, r.size)
}

func (r *Rectangle) GetPotentialPosition() physics.Vector2D { return r.potentialPosition }

func (r *Rectangle) SetPotentialPosition(position physics.Vector2D) {
	r.potentialPosition = position
}

func (r *Rectangle) GetSize() physics.Vector2D { return r.size }

// SetSize changes the extent, recomputes inertia and refreshes the current
// vertices.
func (r *Rectangle) SetSize(size physics.Vector2D) {
	r.size = size
	r.updateInertia()
	r.vertices = rectangleVertices(r.position, r.direction, r.size)
}

func (r *Rectangle) GetPotentialVertices() []physics.Vector2D {
	return rectangleVertices(r.potentialPosition, r.direction, r.size)
}

func (r *Rectangle) GetCurrentVertices() []physics.Vector2D {
	out := make([]physics.Vector2D, len(r.vertices))
	copy(out, r.vertices)
	return out
}

func (r *Rectangle) GetDirection() physics.Vector2D { return r.direction }

// SetDirection re-orients the rectangle and keeps its angle in step. It panics
// on a zero vector.
func (r *Rectangle) SetDirection(direction physics.Vector2D) {
	if direction.IsZero() {
		panic("body: rectangle direction must not be zero")
	}
	r.direction = direction.Unit()
	r.angle = physics.NewAngle(r.direction.Angle())
	r.vertices = rectangleVertices(r.position, r.direction, r.size)
}

func (r *Rectangle) BoundingRadius() float64 {
	return math.Hypot(r.size.X, r.size.Y) / 2
}

func (r *Rectangle) GetMass() float64 { return r.mass }

// SetMass changes the mass and recomputes inertia.
func (r *Rectangle) SetMass(mass float64) {
	r.mass = mass
	r.updateInertia()
}

func (r *Rectangle) GetInverseMass() float64    { return inverse(r.mass) }
func (r *Rectangle) GetInertia() float64        { return r.inertia }
func (r *Rectangle) GetInverseInertia() float64 { return inverse(r.inertia) }

func (r *Rectangle) GetElasticity() float64           { return r.elasticity }
func (r *Rectangle) SetElasticity(elasticity float64) { r.elasticity = elasticity }

func (r *Rectangle) GetVelocity() physics.Vector2D         { return r.velocity }
func (r *Rectangle) SetVelocity(velocity physics.Vector2D) { r.velocity = velocity }

func (r *Rectangle) GetAngularVelocity() float64 { return r.angularVelocity }
func (r *Rectangle) SetAngularVelocity(angularVelocity float64) {
	r.angularVelocity = angularVelocity
}

func (r *Rectangle) GetFriction() float64         { return r.friction }
func (r *Rectangle) SetFriction(friction float64) { r.friction = friction }

func (r *Rectangle) GetAngularFriction() float64 { return r.angularFriction }
func (r *Rectangle) SetAngularFriction(angularFriction float64) {
	r.angularFriction = angularFriction
}

func (r *Rectangle) GetAngle() physics.Angle { return r.angle }

// SetAngle turns the rectangle so its direction matches angle.
func (r *Rectangle) SetAngle(angle physics.Angle) {
	r.angle = angle
	r.direction = angle.Direction()
}

// Trace integrates the potential state over dt.
func (r *Rectangle) Trace(dt float64, opts TraceOptions) {
	state := physics.MotionState{
		Position:        r.potentialPosition,
		Velocity:        r.velocity,
		Heading:         r.angle,
		AngularVelocity: r.angularVelocity,
	}

	physics.UpdateMotion(&state, dt, physics.StepOptions{
		Rotate:          opts.Rotate,
		Damp:            opts.Damp,
		Friction:        r.friction,
		AngularFriction: r.angularFriction,
	})

	r.potentialPosition = state.Position
	r.velocity = state.Velocity
	r.angularVelocity = state.AngularVelocity
	if state.Heading != r.angle {
		r.SetAngle(state.Heading)
	}
}

// Commit makes the potential state the current one.
func (r *Rectangle) Commit() {
	r.vertices = r.GetPotentialVertices()
	r.position = r.potentialPosition
}

func (r *Rectangle) updateInertia() {
	r.inertia = r.mass * (r.size.X*r.size.X + r.size.Y*r.size.Y) / 12
}

// rectangleVertices returns the four corners counter-clockwise, starting from
// the back-right corner relative to direction.
func rectangleVertices(position, direction, size physics.Vector2D) []physics.Vector2D {
	halfLength := direction.Scale(size.Y / 2)
	halfWidth := direction.Normal().Scale(size.X / 2)

	return []physics.Vector2D{
		position.Sub(halfLength).Sub(halfWidth),
		position.Add(halfLength).Sub(halfWidth),
		position.Add(halfLength).Add(halfWidth),
		position.Sub(halfLength).Add(halfWidth),
	}
}
