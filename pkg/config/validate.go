package config

import (
	"fmt"

	"github.com/opd-ai/go-rigid2d/pkg/validation"
)

// Render modes
const (
	RenderTerminal = "terminal"
	RenderLog      = "log"
	RenderNone     = "none"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed for field '%s': %s", e.Field, e.Message)
}

// Validate checks the whole configuration and returns the first problem found
// as a *ValidationError.
func (c *SimulationConfig) Validate() error {
	if c.World.Boundary {
		if err := validation.ValidateBounds(c.World.BottomLeft, c.World.TopRight); err != nil {
			return &ValidationError{Field: "world", Message: err.Error()}
		}
		if err := validation.ValidateElasticity(c.World.BoundaryElasticity); err != nil {
			return &ValidationError{Field: "world.boundaryElasticity", Message: err.Error()}
		}
	}

	if c.Physics.TickRate < 1 || c.Physics.TickRate > 1000 {
		return &ValidationError{Field: "physics.tickRate", Message: fmt.Sprintf("must be between 1 and 1000, got %d", c.Physics.TickRate)}
	}
	if err := validation.ValidateDeltaTime(c.Physics.MaxDeltaTime, 0); err != nil || c.Physics.MaxDeltaTime == 0 {
		return &ValidationError{Field: "physics.maxDeltaTime", Message: fmt.Sprintf("must be a positive number of seconds, got %v", c.Physics.MaxDeltaTime)}
	}
	if c.Physics.Duration < 0 {
		return &ValidationError{Field: "physics.duration", Message: "cannot be negative"}
	}

	switch c.Render.Mode {
	case RenderTerminal, RenderLog, RenderNone:
	default:
		return &ValidationError{Field: "render.mode", Message: fmt.Sprintf("unknown mode %q", c.Render.Mode)}
	}
	if c.Render.Mode == RenderTerminal && (c.Render.Width < 10 || c.Render.Height < 5) {
		return &ValidationError{Field: "render", Message: fmt.Sprintf("terminal needs at least 10x5 cells, got %dx%d", c.Render.Width, c.Render.Height)}
	}

	if err := validation.ValidateBodyCount(len(c.Bodies) + len(c.Obstacles)); err != nil {
		return &ValidationError{Field: "bodies", Message: err.Error()}
	}
	for i, b := range c.Bodies {
		if err := b.validate(); err != nil {
			return &ValidationError{Field: fmt.Sprintf("bodies[%d]", i), Message: err.Error()}
		}
	}
	for i, o := range c.Obstacles {
		if err := o.validate(); err != nil {
			return &ValidationError{Field: fmt.Sprintf("obstacles[%d]", i), Message: err.Error()}
		}
	}

	return nil
}

func (b BodyConfig) validate() error {
	if _, err := validation.ValidateBodyName(b.Name); err != nil {
		return err
	}
	if err := validation.ValidateFinite("position", b.Position); err != nil {
		return err
	}
	if err := validation.ValidateFinite("velocity", b.Velocity); err != nil {
		return err
	}
	if err := validation.ValidateDirection(b.GetDirection()); err != nil {
		return err
	}
	if err := validation.ValidateSize(b.Size); err != nil {
		return err
	}
	if err := validation.ValidateMass(b.Mass); err != nil {
		return err
	}
	if err := validation.ValidateElasticity(b.GetElasticity()); err != nil {
		return err
	}
	if err := validation.ValidateFriction(b.Friction); err != nil {
		return err
	}
	return validation.ValidateFriction(b.AngularFriction)
}

func (o ObstacleConfig) validate() error {
	if _, err := validation.ValidateBodyName(o.Name); err != nil {
		return err
	}
	if err := validation.ValidateElasticity(o.GetElasticity()); err != nil {
		return err
	}

	switch o.Shape {
	case ShapeRectangle:
		if err := validation.ValidateFinite("position", o.Position); err != nil {
			return err
		}
		if err := validation.ValidateDirection(o.GetDirection()); err != nil {
			return err
		}
		return validation.ValidateSize(o.Size)
	case ShapeLine:
		if err := validation.ValidateFinite("from", o.From); err != nil {
			return err
		}
		if err := validation.ValidateFinite("to", o.To); err != nil {
			return err
		}
		if o.From == o.To {
			return fmt.Errorf("line endpoints coincide at (%v, %v)", o.From.X, o.From.Y)
		}
		return nil
	default:
		return fmt.Errorf("unknown shape %q (must be %q or %q)", o.Shape, ShapeRectangle, ShapeLine)
	}
}
