package body

import (
	"fmt"

	"github.com/opd-ai/go-rigid2d/pkg/physics"
)

// Line is a static segment, typically one side of the world boundary.
// Its size is (length, 0) and its position is the segment midpoint.
type Line struct {
	id ID

	first      physics.Vector2D
	second     physics.Vector2D
	position   physics.Vector2D
	direction  physics.Vector2D
	length     float64
	elasticity float64
}

var (
	_ Object  = (*Line)(nil)
	_ Elastic = (*Line)(nil)
)

// NewLine creates a segment from first to second with elasticity 1.
func NewLine(first, second physics.Vector2D) (*Line, error) {
	edge := second.Sub(first)
	if edge.IsZero() {
		return nil, fmt.Errorf("line %v-%v: %w", first, second, ErrDegenerateLine)
	}

	return &Line{
		id:         NewID(),
		first:      first,
		second:     second,
		position:   first.Add(second).Scale(0.5),
		direction:  edge.Unit(),
		length:     edge.Length(),
		elasticity: 1,
	}, nil
}

func (l *Line) GetID() ID  { return l.id }
func (l *Line) Kind() Kind { return KindLine }

// Endpoints returns the two points the line was built from.
func (l *Line) Endpoints() (physics.Vector2D, physics.Vector2D) {
	return l.first, l.second
}

// A line never moves on its own, so its current and potential states are the same.

func (l *Line) GetCurrentPosition() physics.Vector2D   { return l.position }
func (l *Line) GetPotentialPosition() physics.Vector2D { return l.position }

// SetCurrentPosition translates the whole segment so its midpoint is position.
func (l *Line) SetCurrentPosition(position physics.Vector2D) {
	offset := position.Sub(l.position)
	l.first = l.first.Add(offset)
	l.second = l.second.Add(offset)
	l.position = position
}

// SetPotentialPosition is the same as SetCurrentPosition.
func (l *Line) SetPotentialPosition(position physics.Vector2D) {
	l.SetCurrentPosition(position)
}

func (l *Line) GetSize() physics.Vector2D {
	return physics.Vector2D{X: l.length}
}

func (l *Line) GetPotentialVertices() []physics.Vector2D {
	return []physics.Vector2D{l.first, l.second}
}

func (l *Line) GetCurrentVertices() []physics.Vector2D {
	return []physics.Vector2D{l.first, l.second}
}

func (l *Line) GetDirection() physics.Vector2D { return l.direction }

func (l *Line) BoundingRadius() float64 { return l.length / 2 }

func (l *Line) GetElasticity() float64 { return l.elasticity }

// SetElasticity sets the restitution the line offers; contacts use the smaller
// of the two bodies' values.
func (l *Line) SetElasticity(elasticity float64) { l.elasticity = elasticity }
