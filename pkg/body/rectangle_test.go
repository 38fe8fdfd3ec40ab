package body

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-rigid2d/pkg/physics"
)

func newTestRectangle(t *testing.T, position physics.Vector2D, size physics.Vector2D, mass float64) *Rectangle {
	t.Helper()
	r, err := NewRectangle(position, physics.Vector2D{X: 1}, size, mass)
	require.NoError(t, err)
	return r
}

func TestNewRectangle(t *testing.T) {
	r := newTestRectangle(t, physics.Vector2D{X: 5, Y: 5}, physics.Vector2D{X: 2, Y: 4}, 3)

	assert.Equal(t, KindRectangle, r.Kind())
	assert.Equal(t, physics.Vector2D{X: 5, Y: 5}, r.GetCurrentPosition())
	assert.Equal(t, physics.Vector2D{X: 5, Y: 5}, r.GetPotentialPosition())
	assert.Equal(t, 1.0, r.GetElasticity())
	assert.InDelta(t, 3*(4+16)/12.0, r.GetInertia(), 1e-12)
	assert.InDelta(t, 1/3.0, r.GetInverseMass(), 1e-12)
	assert.InDelta(t, math.Hypot(2, 4)/2, r.BoundingRadius(), 1e-12)
	assert.NotEqual(t, ID{}, r.GetID())
}

func TestNewRectangle_ZeroDirection(t *testing.T) {
	_, err := NewRectangle(physics.Vector2D{}, physics.Vector2D{}, physics.Vector2D{X: 1, Y: 1}, 1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, physics.ErrZeroVector))
}

func TestRectangle_DirectionIsNormalized(t *testing.T) {
	r, err := NewRectangle(physics.Vector2D{}, physics.Vector2D{X: 0, Y: 3}, physics.Vector2D{X: 1, Y: 1}, 1)
	require.NoError(t, err)

	assert.InDelta(t, 1, r.GetDirection().Length(), 1e-12)
	assert.InDelta(t, math.Pi/2, r.GetAngle().Radians(), 1e-12)
}

func TestRectangle_InertiaInvariant(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Rectangle)
		mass   float64
		size   physics.Vector2D
	}{
		{
			name:   "set_size",
			mutate: func(r *Rectangle) { r.SetSize(physics.Vector2D{X: 6, Y: 8}) },
			mass:   2,
			size:   physics.Vector2D{X: 6, Y: 8},
		},
		{
			name:   "set_mass",
			mutate: func(r *Rectangle) { r.SetMass(12) },
			mass:   12,
			size:   physics.Vector2D{X: 1, Y: 1},
		},
		{
			name: "set_both",
			mutate: func(r *Rectangle) {
				r.SetMass(5)
				r.SetSize(physics.Vector2D{X: 3, Y: 4})
			},
			mass: 5,
			size: physics.Vector2D{X: 3, Y: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRectangle(t, physics.Vector2D{}, physics.Vector2D{X: 1, Y: 1}, 2)
			tt.mutate(r)

			expected := tt.mass * (tt.size.X*tt.size.X + tt.size.Y*tt.size.Y) / 12
			assert.InDelta(t, expected, r.GetInertia(), 1e-12)
			assert.InDelta(t, 1/expected, r.GetInverseInertia(), 1e-12)
		})
	}
}

func TestRectangle_ZeroMassIsImmovable(t *testing.T) {
	r := newTestRectangle(t, physics.Vector2D{}, physics.Vector2D{X: 1, Y: 1}, 0)

	assert.Equal(t, 0.0, r.GetInverseMass())
	assert.Equal(t, 0.0, r.GetInverseInertia())
}

func TestRectangle_Vertices(t *testing.T) {
	// width 2 along Y (the normal), length 4 along X (the direction)
	r := newTestRectangle(t, physics.Vector2D{X: 10, Y: 20}, physics.Vector2D{X: 2, Y: 4}, 1)

	expected := []physics.Vector2D{
		{X: 8, Y: 19},
		{X: 12, Y: 19},
		{X: 12, Y: 21},
		{X: 8, Y: 21},
	}
	assert.Equal(t, expected, r.GetPotentialVertices())
	assert.Equal(t, expected, r.GetCurrentVertices())
}

func TestRectangle_VerticesAreCounterClockwise(t *testing.T) {
	r, err := NewRectangle(physics.Vector2D{X: 1, Y: -2}, physics.Vector2D{X: 1, Y: 2}, physics.Vector2D{X: 3, Y: 5}, 1)
	require.NoError(t, err)

	v := r.GetPotentialVertices()
	require.Len(t, v, 4)
	for i := range v {
		edge := v[(i+1)%4].Sub(v[i])
		next := v[(i+2)%4].Sub(v[(i+1)%4])
		assert.Greater(t, edge.Cross(next), 0.0, "corner %d turns clockwise", i)
	}
}

func TestNewRectangleFromEdge(t *testing.T) {
	r, err := NewRectangleFromEdge(physics.Vector2D{X: 0, Y: 0}, physics.Vector2D{X: 4, Y: 0}, 2, 1)
	require.NoError(t, err)

	// the body hangs to the right of the edge, which for +X is below it
	assert.InDelta(t, 2, r.GetCurrentPosition().X, 1e-12)
	assert.InDelta(t, -1, r.GetCurrentPosition().Y, 1e-12)
	assert.Equal(t, physics.Vector2D{X: 2, Y: 4}, r.GetSize())
	assert.Equal(t, physics.Vector2D{X: 1, Y: 0}, r.GetDirection())

	_, err = NewRectangleFromEdge(physics.Vector2D{X: 1, Y: 1}, physics.Vector2D{X: 1, Y: 1}, 2, 1)
	assert.ErrorIs(t, err, physics.ErrZeroVector)
}

func TestRectangle_TraceAndCommit(t *testing.T) {
	r := newTestRectangle(t, physics.Vector2D{}, physics.Vector2D{X: 2, Y: 2}, 1)
	r.SetVelocity(physics.Vector2D{X: 3, Y: -1})

	r.Trace(0.5, TraceOptions{})

	assert.Equal(t, physics.Vector2D{X: 1.5, Y: -0.5}, r.GetPotentialPosition())
	assert.Equal(t, physics.Vector2D{}, r.GetCurrentPosition(), "current state must wait for commit")
	assert.Equal(t, physics.Vector2D{X: 0.5, Y: -1.5}, r.GetPotentialVertices()[0])
	assert.Equal(t, physics.Vector2D{X: -1, Y: -1}, r.GetCurrentVertices()[0])

	r.Commit()

	assert.Equal(t, physics.Vector2D{X: 1.5, Y: -0.5}, r.GetCurrentPosition())
	assert.Equal(t, r.GetPotentialVertices(), r.GetCurrentVertices())
}

func TestRectangle_TraceWithRotation(t *testing.T) {
	r := newTestRectangle(t, physics.Vector2D{}, physics.Vector2D{X: 1, Y: 1}, 1)
	r.SetAngularVelocity(math.Pi)

	r.Trace(0.5, TraceOptions{})
	assert.Equal(t, physics.Vector2D{X: 1}, r.GetDirection(), "rotation is opt-in")

	r.Trace(0.5, TraceOptions{Rotate: true})
	assert.InDelta(t, math.Pi/2, r.GetAngle().Radians(), 1e-9)
	assert.InDelta(t, 0, r.GetDirection().X, 1e-9)
	assert.InDelta(t, 1, r.GetDirection().Y, 1e-9)
}

func TestRectangle_SetDirectionPanicsOnZero(t *testing.T) {
	r := newTestRectangle(t, physics.Vector2D{}, physics.Vector2D{X: 1, Y: 1}, 1)

	assert.Panics(t, func() { r.SetDirection(physics.Vector2D{}) })
}

func TestRectangle_SetCurrentPositionRefreshesVertices(t *testing.T) {
	r := newTestRectangle(t, physics.Vector2D{}, physics.Vector2D{X: 2, Y: 2}, 1)

	r.SetCurrentPosition(physics.Vector2D{X: 10, Y: 10})

	assert.Equal(t, physics.Vector2D{X: 9, Y: 9}, r.GetCurrentVertices()[0])
	assert.Equal(t, physics.Vector2D{}, r.GetPotentialPosition())
}

func TestRectangle_SettersRefreshCurrentVertices(t *testing.T) {
	tests := []struct {
		name     string
		apply    func(r *Rectangle)
		expected []physics.Vector2D
	}{
		{
			name:  "set_size",
			apply: func(r *Rectangle) { r.SetSize(physics.Vector2D{X: 4, Y: 6}) },
			expected: []physics.Vector2D{
				{X: 7, Y: 8}, {X: 13, Y: 8}, {X: 13, Y: 12}, {X: 7, Y: 12},
			},
		},
		{
			name:  "set_direction",
			apply: func(r *Rectangle) { r.SetDirection(physics.Vector2D{Y: 3}) },
			expected: []physics.Vector2D{
				{X: 11, Y: 9}, {X: 11, Y: 11}, {X: 9, Y: 11}, {X: 9, Y: 9},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRectangle(t, physics.Vector2D{X: 10, Y: 10}, physics.Vector2D{X: 2, Y: 2}, 1)

			tt.apply(r)

			got := r.GetCurrentVertices()
			require.Len(t, got, 4)
			for i := range tt.expected {
				assert.InDelta(t, tt.expected[i].X, got[i].X, 1e-9, "vertex %d x", i)
				assert.InDelta(t, tt.expected[i].Y, got[i].Y, 1e-9, "vertex %d y", i)
			}
			assert.Equal(t, r.GetPotentialVertices(), got, "nothing moved, so both states agree")
		})
	}
}

func TestBoundingCircle(t *testing.T) {
	r := newTestRectangle(t, physics.Vector2D{X: 3, Y: 4}, physics.Vector2D{X: 6, Y: 8}, 1)
	r.SetPotentialPosition(physics.Vector2D{X: 7, Y: 4})

	c := BoundingCircle(r)

	assert.Equal(t, physics.Vector2D{X: 7, Y: 4}, c.Center)
	assert.InDelta(t, 5, c.Radius, 1e-12)
}
