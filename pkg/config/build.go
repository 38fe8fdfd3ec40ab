package config

import (
	"fmt"

	"github.com/opd-ai/go-rigid2d/pkg/body"
	"github.com/opd-ai/go-rigid2d/pkg/world"
)

// Scene is a world built from a configuration, with the configured names of
// its bodies.
type Scene struct {
	Map   *world.Map
	Names map[body.ID]string
}

// Name returns the configured name of a body, or its short ID when it has none.
func (s *Scene) Name(id body.ID) string {
	if name, ok := s.Names[id]; ok && name != "" {
		return name
	}
	return id.String()[:8]
}

// BuildMap validates config and creates the world it describes. The physics
// toggles become map options ahead of opts.
func BuildMap(config *SimulationConfig, opts ...world.Option) (*Scene, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var options []world.Option
	if config.Physics.Rotation {
		options = append(options, world.WithRotation())
	}
	if config.Physics.Damping {
		options = append(options, world.WithDamping())
	}
	options = append(options, opts...)

	scene := &Scene{
		Map:   world.NewMap(options...),
		Names: make(map[body.ID]string),
	}

	if config.World.Boundary {
		if err := scene.Map.InitBoundary(config.World.BottomLeft, config.World.TopRight); err != nil {
			return nil, fmt.Errorf("failed to create boundary: %w", err)
		}
		for _, edge := range scene.Map.StaticBodies() {
			if line, ok := edge.(*body.Line); ok {
				line.SetElasticity(config.World.BoundaryElasticity)
			}
		}
	}

	for i, oc := range config.Obstacles {
		obstacle, err := buildObstacle(oc)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		scene.Names[obstacle.GetID()] = oc.Name
		scene.Map.AddStaticBody(obstacle)
	}

	for i, bc := range config.Bodies {
		b, err := buildBody(bc)
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		scene.Names[b.GetID()] = bc.Name
		scene.Map.AddDynamicBody(b)
	}

	return scene, nil
}

func buildBody(bc BodyConfig) (*body.Rectangle, error) {
	r, err := body.NewRectangle(bc.Position, bc.GetDirection(), bc.Size, bc.Mass)
	if err != nil {
		return nil, err
	}
	r.SetElasticity(bc.GetElasticity())
	r.SetVelocity(bc.Velocity)
	r.SetAngularVelocity(bc.AngularVelocity)
	r.SetFriction(bc.Friction)
	r.SetAngularFriction(bc.AngularFriction)
	return r, nil
}

func buildObstacle(oc ObstacleConfig) (body.Object, error) {
	switch oc.Shape {
	case ShapeLine:
		l, err := body.NewLine(oc.From, oc.To)
		if err != nil {
			return nil, err
		}
		l.SetElasticity(oc.GetElasticity())
		return l, nil
	case ShapeRectangle:
		// zero mass: the resolver treats it as immovable
		r, err := body.NewRectangle(oc.Position, oc.GetDirection(), oc.Size, 0)
		if err != nil {
			return nil, err
		}
		r.SetElasticity(oc.GetElasticity())
		return r, nil
	default:
		return nil, fmt.Errorf("unknown shape %q", oc.Shape)
	}
}
