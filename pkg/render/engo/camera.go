// pkg/render/engo/camera.go
package engo

import (
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-rigid2d/pkg/physics"
)

// fitMargin leaves a border around the world when fitting it to the window.
const fitMargin = 0.95

// CameraSystem maps world coordinates, y up, to window pixels, y down. It can
// follow a target and zoom around it.
type CameraSystem struct {
	// Target to follow
	target    physics.Vector2D
	targetSet bool

	// Camera properties
	zoom          float32
	minZoom       float32
	maxZoom       float32
	pixelsPerUnit float32

	// Smooth following
	followSpeed float32
	smoothing   bool

	// Current camera state
	currentPos physics.Vector2D

	screenWidth  float32
	screenHeight float32
}

// NewCameraSystem creates a camera showing one world unit per pixel
func NewCameraSystem(screenWidth, screenHeight float32) *CameraSystem {
	return &CameraSystem{
		zoom:          1.0,
		minZoom:       0.1,
		maxZoom:       10.0,
		pixelsPerUnit: 1.0,
		followSpeed:   2.0,
		smoothing:     true,
		screenWidth:   screenWidth,
		screenHeight:  screenHeight,
	}
}

// Remove satisfies the ecs.System interface
func (cs *CameraSystem) Remove(basic ecs.BasicEntity) {}

// Update updates the camera position and zoom
func (cs *CameraSystem) Update(dt float32) {
	cs.handleZoomInput()

	if cs.targetSet {
		cs.updateCameraPosition(dt)
	}
}

// handleZoomInput processes zoom-related input
func (cs *CameraSystem) handleZoomInput() {
	if scrollY := engo.Input.Mouse.ScrollY; scrollY != 0 {
		cs.SetZoom(cs.zoom * (1.0 + scrollY*0.1))
	}

	if engo.Input.Button(ButtonZoomIn).Down() {
		cs.SetZoom(cs.zoom * 1.02)
	}
	if engo.Input.Button(ButtonZoomOut).Down() {
		cs.SetZoom(cs.zoom * 0.98)
	}
	if engo.Input.Button(ButtonResetZoom).JustPressed() {
		cs.SetZoom(1.0)
	}
}

// updateCameraPosition moves the camera toward the target
func (cs *CameraSystem) updateCameraPosition(dt float32) {
	if !cs.smoothing {
		cs.currentPos = cs.target
		return
	}

	step := math.Min(float64(cs.followSpeed*dt), 1)
	cs.currentPos = cs.currentPos.Add(cs.target.Sub(cs.currentPos).Scale(step))
}

// Fit centres the camera on area and sets the base scale so all of it is
// visible at zoom 1.
func (cs *CameraSystem) Fit(area physics.Rect) {
	cs.currentPos = area.Center
	cs.targetSet = false
	cs.zoom = 1.0

	if area.Width <= 0 || area.Height <= 0 {
		return
	}
	scale := math.Min(float64(cs.screenWidth)/area.Width, float64(cs.screenHeight)/area.Height)
	if scale > 0 {
		cs.pixelsPerUnit = float32(scale * fitMargin)
	}
}

// SetTarget sets the target position for the camera to follow
func (cs *CameraSystem) SetTarget(target physics.Vector2D) {
	cs.target = target
	cs.targetSet = true

	if !cs.smoothing {
		cs.currentPos = target
	}
}

// ClearTarget clears the camera target
func (cs *CameraSystem) ClearTarget() {
	cs.targetSet = false
}

// SetZoom sets the camera zoom level
func (cs *CameraSystem) SetZoom(zoom float32) {
	cs.zoom = cs.clampZoom(zoom)
}

// GetZoom returns the current zoom level
func (cs *CameraSystem) GetZoom() float32 {
	return cs.zoom
}

// clampZoom ensures zoom is within valid bounds
func (cs *CameraSystem) clampZoom(zoom float32) float32 {
	if zoom < cs.minZoom {
		return cs.minZoom
	}
	if zoom > cs.maxZoom {
		return cs.maxZoom
	}
	return zoom
}

// EnableSmoothing enables or disables camera smoothing
func (cs *CameraSystem) EnableSmoothing(enabled bool) {
	cs.smoothing = enabled
}

// GetCurrentPosition returns the current camera position
func (cs *CameraSystem) GetCurrentPosition() physics.Vector2D {
	return cs.currentPos
}

// Scale returns the number of pixels per world unit at the current zoom
func (cs *CameraSystem) Scale() float32 {
	return cs.pixelsPerUnit * cs.zoom
}

// WorldToScreen converts world coordinates to screen coordinates
func (cs *CameraSystem) WorldToScreen(worldPos physics.Vector2D) engo.Point {
	scale := float64(cs.Scale())
	return engo.Point{
		X: float32((worldPos.X-cs.currentPos.X)*scale) + cs.screenWidth/2,
		Y: cs.screenHeight/2 - float32((worldPos.Y-cs.currentPos.Y)*scale),
	}
}

// ScreenToWorld converts screen coordinates to world coordinates
func (cs *CameraSystem) ScreenToWorld(screenPos engo.Point) physics.Vector2D {
	scale := float64(cs.Scale())
	return physics.Vector2D{
		X: float64(screenPos.X-cs.screenWidth/2)/scale + cs.currentPos.X,
		Y: float64(cs.screenHeight/2-screenPos.Y)/scale + cs.currentPos.Y,
	}
}

// SetZoomLimits sets the minimum and maximum zoom levels
func (cs *CameraSystem) SetZoomLimits(min, max float32) {
	cs.minZoom = min
	cs.maxZoom = max
	cs.zoom = cs.clampZoom(cs.zoom)
}
