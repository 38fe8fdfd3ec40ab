// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-rigid2d/pkg/body"
	"github.com/opd-ai/go-rigid2d/pkg/world"
)

// lineThickness is the on-screen width of line bodies, in pixels.
const lineThickness = 2

// renderTarget is the part of common.RenderSystem the body system uses.
type renderTarget interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

// bodyEntity is the drawable for one body
type bodyEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// BodySystem mirrors the bodies of a world into render entities every frame.
type BodySystem struct {
	world    *world.Map
	camera   *CameraSystem
	target   renderTarget
	assets   *AssetManager
	entities map[body.ID]*bodyEntity
}

// NewBodySystem creates a system drawing m through target
func NewBodySystem(m *world.Map, camera *CameraSystem, target renderTarget, assets *AssetManager) *BodySystem {
	return &BodySystem{
		world:    m,
		camera:   camera,
		target:   target,
		assets:   assets,
		entities: make(map[body.ID]*bodyEntity),
	}
}

// Remove satisfies the ecs.System interface
func (bs *BodySystem) Remove(basic ecs.BasicEntity) {}

// Update syncs render entities with the current world state
func (bs *BodySystem) Update(dt float32) {
	bs.Sync(bs.world.Snapshot())
}

// Sync creates, moves and removes entities so they match snapshot.
func (bs *BodySystem) Sync(snapshot world.Snapshot) {
	seen := make(map[body.ID]struct{}, len(snapshot.Bodies))

	for i, state := range snapshot.Bodies {
		seen[state.ID] = struct{}{}
		e := bs.getOrCreateEntity(state, i)
		e.SpaceComponent = bs.place(state)
	}

	for id, e := range bs.entities {
		if _, ok := seen[id]; !ok {
			bs.target.Remove(e.BasicEntity)
			delete(bs.entities, id)
		}
	}
}

// Len returns the number of bodies being drawn
func (bs *BodySystem) Len() int {
	return len(bs.entities)
}

func (bs *BodySystem) getOrCreateEntity(state world.BodyState, index int) *bodyEntity {
	if e, ok := bs.entities[state.ID]; ok {
		return e
	}

	e := &bodyEntity{BasicEntity: ecs.NewBasic()}
	e.RenderComponent = common.RenderComponent{
		Drawable: common.Rectangle{},
		Color:    bs.colorFor(state, index),
	}
	if state.Kind == body.KindRectangle {
		e.RenderComponent.Drawable = common.Rectangle{
			BorderWidth: 1,
			BorderColor: color.White,
		}
	}
	e.SpaceComponent = bs.place(state)

	bs.entities[state.ID] = e
	bs.target.Add(&e.BasicEntity, &e.RenderComponent, &e.SpaceComponent)
	return e
}

func (bs *BodySystem) colorFor(state world.BodyState, index int) color.Color {
	if state.Static {
		return bs.assets.StaticColor()
	}
	return bs.assets.BodyColor(index)
}

// place computes the space component for a body. Engo rotates clockwise
// around the top-left corner, so the corner is derived from the centre.
func (bs *BodySystem) place(state world.BodyState) common.SpaceComponent {
	scale := bs.camera.Scale()

	// the local x axis follows the body direction
	var width, height float32
	switch state.Kind {
	case body.KindLine:
		width, height = float32(state.Size.X)*scale, lineThickness
	default:
		width, height = float32(state.Size.Y)*scale, float32(state.Size.X)*scale
	}

	rotation := -math.Atan2(state.Direction.Y, state.Direction.X)
	sin, cos := math.Sincos(rotation)
	halfW, halfH := float64(width)/2, float64(height)/2

	center := bs.camera.WorldToScreen(state.Position)
	return common.SpaceComponent{
		Position: engo.Point{
			X: center.X - float32(halfW*cos-halfH*sin),
			Y: center.Y - float32(halfW*sin+halfH*cos),
		},
		Width:    width,
		Height:   height,
		Rotation: float32(rotation * 180 / math.Pi),
	}
}
