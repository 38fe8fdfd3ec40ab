package body

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-rigid2d/pkg/physics"
)

func TestNewLine(t *testing.T) {
	l, err := NewLine(physics.Vector2D{X: 0, Y: 0}, physics.Vector2D{X: 0, Y: 10})
	require.NoError(t, err)

	assert.Equal(t, KindLine, l.Kind())
	assert.Equal(t, physics.Vector2D{X: 10, Y: 0}, l.GetSize())
	assert.Equal(t, physics.Vector2D{X: 0, Y: 5}, l.GetCurrentPosition())
	assert.Equal(t, physics.Vector2D{X: 0, Y: 1}, l.GetDirection())
	assert.Equal(t, 5.0, l.BoundingRadius())
	assert.Equal(t, 1.0, l.GetElasticity())
	assert.Equal(t, []physics.Vector2D{{X: 0, Y: 0}, {X: 0, Y: 10}}, l.GetPotentialVertices())
}

func TestNewLine_Degenerate(t *testing.T) {
	_, err := NewLine(physics.Vector2D{X: 3, Y: 3}, physics.Vector2D{X: 3, Y: 3})

	assert.ErrorIs(t, err, ErrDegenerateLine)
}

func TestLine_SetPositionTranslatesEndpoints(t *testing.T) {
	l, err := NewLine(physics.Vector2D{X: 0, Y: 0}, physics.Vector2D{X: 4, Y: 0})
	require.NoError(t, err)

	l.SetPotentialPosition(physics.Vector2D{X: 2, Y: 3})

	first, second := l.Endpoints()
	assert.Equal(t, physics.Vector2D{X: 0, Y: 3}, first)
	assert.Equal(t, physics.Vector2D{X: 4, Y: 3}, second)
	assert.Equal(t, l.GetCurrentPosition(), l.GetPotentialPosition())
	assert.Equal(t, l.GetCurrentVertices(), l.GetPotentialVertices())
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindRectangle, "rectangle"},
		{KindLine, "line"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}
