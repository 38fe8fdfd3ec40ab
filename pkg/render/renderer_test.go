// pkg/render/renderer_test.go
package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-rigid2d/pkg/body"
	"github.com/opd-ai/go-rigid2d/pkg/logging"
	"github.com/opd-ai/go-rigid2d/pkg/physics"
	"github.com/opd-ai/go-rigid2d/pkg/world"
)

// recorder counts calls, for checking Draw.
type recorder struct {
	cleared  int
	bodies   []world.BodyState
	presents []uint64
}

func (r *recorder) Clear() { r.cleared++ }

func (r *recorder) RenderBody(b world.BodyState) { r.bodies = append(r.bodies, b) }

func (r *recorder) Present(tick uint64) error {
	r.presents = append(r.presents, tick)
	return nil
}

func newScene(t *testing.T) *world.Map {
	t.Helper()
	m := world.NewMap()
	require.NoError(t, m.InitBoundary(physics.Vector2D{}, physics.Vector2D{X: 100, Y: 60}))
	b, err := body.NewRectangle(physics.Vector2D{X: 50, Y: 30}, physics.Vector2D{X: 1}, physics.Vector2D{X: 10, Y: 10}, 1)
	require.NoError(t, err)
	b.SetVelocity(physics.Vector2D{X: 1})
	m.AddDynamicBody(b)
	return m
}

func TestDraw_RendersEveryBodyOnce(t *testing.T) {
	m := newScene(t)
	m.Tick(0.1)
	r := &recorder{}

	require.NoError(t, Draw(r, m.Snapshot()))

	assert.Equal(t, 1, r.cleared)
	assert.Len(t, r.bodies, 5)
	assert.Equal(t, []uint64{1}, r.presents)
}

func TestNullRenderer_LogsAtDebug(t *testing.T) {
	t.Setenv(logging.LogLevelEnv, "DEBUG")
	var buf bytes.Buffer
	renderer := NewNullRenderer(logging.NewLoggerWithWriter(&buf))

	require.NoError(t, Draw(renderer, newScene(t).Snapshot()))

	output := buf.String()
	assert.Contains(t, output, "Clear called")
	assert.Contains(t, output, "RenderBody called")
	assert.Contains(t, output, "Present called")
}

func TestNullRenderer_NilLogger(t *testing.T) {
	renderer := NewNullRenderer(nil)

	assert.NotPanics(t, func() {
		_ = Draw(renderer, newScene(t).Snapshot())
	})
}

func TestLogRenderer(t *testing.T) {
	t.Setenv(logging.LogLevelEnv, "INFO")
	var buf bytes.Buffer
	renderer := NewLogRenderer(logging.NewLoggerWithWriter(&buf))

	require.NoError(t, Draw(renderer, newScene(t).Snapshot()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "one dynamic body line and one frame line")
	assert.Contains(t, lines[0], `"position":"(50, 30)"`)
	assert.Contains(t, lines[1], `"bodies":5`)
	assert.Contains(t, lines[1], `"moving":1`)
}
