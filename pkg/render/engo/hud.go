// pkg/render/engo/hud.go
package engo

import (
	"fmt"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-rigid2d/pkg/world"
)

// HUDSystem draws a status line in the top-left corner
type HUDSystem struct {
	world   *world.Map
	physics *PhysicsSystem

	text bodyEntity
	font *common.Font
}

// NewHUDSystem creates a HUD reporting on m and p
func NewHUDSystem(m *world.Map, p *PhysicsSystem) *HUDSystem {
	return &HUDSystem{world: m, physics: p}
}

// Attach adds the status text to the render system. Without a font the HUD
// only tracks its text.
func (hud *HUDSystem) Attach(target renderTarget, font *common.Font) {
	hud.font = font
	hud.text = bodyEntity{BasicEntity: ecs.NewBasic()}
	hud.text.SpaceComponent = common.SpaceComponent{Position: engo.Point{X: 10, Y: 10}}
	hud.text.RenderComponent = common.RenderComponent{
		Drawable:    common.Text{Font: font, Text: hud.Status()},
		StartZIndex: 100,
	}
	if font != nil {
		target.Add(&hud.text.BasicEntity, &hud.text.RenderComponent, &hud.text.SpaceComponent)
	}
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {}

// Update updates the HUD display
func (hud *HUDSystem) Update(dt float32) {
	hud.text.Drawable = common.Text{Font: hud.font, Text: hud.Status()}
}

// Status formats the current tick, body counts and playback state
func (hud *HUDSystem) Status() string {
	state := "running"
	if hud.physics.Paused() {
		state = "paused"
	}
	return fmt.Sprintf("tick %d  bodies %d (%d static)  speed x%g  %s",
		hud.world.TickCount(),
		len(hud.world.DynamicBodies())+len(hud.world.StaticBodies()),
		len(hud.world.StaticBodies()),
		hud.physics.TimeScale(),
		state,
	)
}
