// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-rigid2d/pkg/logging"
	"github.com/opd-ai/go-rigid2d/pkg/world"
)

// Renderer draws one frame of a world at a time.
type Renderer interface {
	// Clear starts a new frame.
	Clear()
	// RenderBody draws one body into the current frame.
	RenderBody(body world.BodyState)
	// Present outputs the frame.
	Present(tick uint64) error
}

// Draw renders every body of a snapshot as one frame.
func Draw(r Renderer, snapshot world.Snapshot) error {
	r.Clear()
	for _, b := range snapshot.Bodies {
		r.RenderBody(b)
	}
	return r.Present(snapshot.Tick)
}

// NullRenderer discards frames, logging calls at debug level.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &NullRenderer{logger: logger}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// RenderBody implements Renderer.
func (d *NullRenderer) RenderBody(body world.BodyState) {
	d.logger.Debug(context.Background(), "RenderBody called",
		"body_id", body.ID,
		"kind", body.Kind,
		"static", body.Static,
	)
}

// Present implements Renderer.
func (d *NullRenderer) Present(tick uint64) error {
	d.logger.Debug(context.Background(), "Present called", "tick", tick)
	return nil
}

// LogRenderer writes one structured log line per dynamic body and a summary
// line per frame.
type LogRenderer struct {
	logger *logging.Logger
	bodies int
	moving int
}

// NewLogRenderer creates a renderer that reports frames through logger.
func NewLogRenderer(logger *logging.Logger) *LogRenderer {
	return &LogRenderer{logger: logger}
}

// Clear implements Renderer.
func (l *LogRenderer) Clear() {
	l.bodies = 0
	l.moving = 0
}

// RenderBody implements Renderer.
func (l *LogRenderer) RenderBody(body world.BodyState) {
	l.bodies++
	if body.Static {
		return
	}
	if !body.Velocity.IsZero() {
		l.moving++
	}
	l.logger.Info(context.Background(), "body",
		"body_id", body.ID,
		"position", body.Position,
		"velocity", body.Velocity,
		"angular_velocity", body.AngularVelocity,
	)
}

// Present implements Renderer.
func (l *LogRenderer) Present(tick uint64) error {
	l.logger.Info(context.Background(), "frame",
		"tick", tick,
		"bodies", l.bodies,
		"moving", l.moving,
	)
	return nil
}
