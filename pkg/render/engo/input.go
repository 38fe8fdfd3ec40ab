// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
)

// Button names registered by SetupInputBindings
const (
	ButtonPause     = "pause"
	ButtonStep      = "step"
	ButtonFaster    = "faster"
	ButtonSlower    = "slower"
	ButtonZoomIn    = "zoomIn"
	ButtonZoomOut   = "zoomOut"
	ButtonResetZoom = "resetZoom"
)

// Controls is the input state read once per frame
type Controls struct {
	Pause  bool
	Step   bool
	Faster bool
	Slower bool
}

// InputSystem turns key presses into physics controls
type InputSystem struct {
	physics *PhysicsSystem
}

// NewInputSystem creates an input system driving p
func NewInputSystem(p *PhysicsSystem) *InputSystem {
	return &InputSystem{physics: p}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update processes input
func (is *InputSystem) Update(dt float32) {
	is.apply(Controls{
		Pause:  engo.Input.Button(ButtonPause).JustPressed(),
		Step:   engo.Input.Button(ButtonStep).JustPressed(),
		Faster: engo.Input.Button(ButtonFaster).JustPressed(),
		Slower: engo.Input.Button(ButtonSlower).JustPressed(),
	})
}

func (is *InputSystem) apply(c Controls) {
	if c.Pause {
		is.physics.SetPaused(!is.physics.Paused())
	}
	if c.Step {
		is.physics.StepOnce()
	}
	if c.Faster {
		is.physics.SetTimeScale(is.physics.TimeScale() * 2)
	}
	if c.Slower {
		is.physics.SetTimeScale(is.physics.TimeScale() / 2)
	}
}

// SetupInputBindings sets up the key bindings for the viewer
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonPause, engo.KeySpace)
	engo.Input.RegisterButton(ButtonStep, engo.KeyN)
	engo.Input.RegisterButton(ButtonFaster, engo.KeyArrowUp)
	engo.Input.RegisterButton(ButtonSlower, engo.KeyArrowDown)
	engo.Input.RegisterButton(ButtonZoomIn, engo.KeyZ)
	engo.Input.RegisterButton(ButtonZoomOut, engo.KeyX)
	engo.Input.RegisterButton(ButtonResetZoom, engo.KeyR)
}
