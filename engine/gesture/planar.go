package gesture

import (
	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine/camera"
	"github.com/Carmen-Shannon/oxy-map/engine/game_object"
)

// NewPlanarGestures creates the map strategy used by surface and detail spaces:
// WASD pan across the ground, Q/E move the focus down/up, scroll zooms and drag orbits
// around the focus. Pan speed is proportional to the orbit radius so a held key crosses
// the same share of the screen per second at any height.
//
// Parameters:
//   - ctrl: the controller to drive
//   - pivot: the rig pivot
//   - cam: the camera transform parented to the pivot
//
// Returns:
//   - GestureStrategy: the planar strategy
func NewPlanarGestures(ctrl camera.CameraController, pivot, cam game_object.GameObject) GestureStrategy {
	g := newGestures(ctrl, pivot, cam)
	g.handle = func(in input, deltaTime float32) bool {
		step := ctrl.Radius() * deltaTime
		moved := false
		pan := func(key int, fn func(float32), delta float32) {
			if in.held[key] {
				fn(delta)
				moved = true
			}
		}
		pan(common.KeyW, ctrl.PanForward, step)
		pan(common.KeyS, ctrl.PanForward, -step)
		pan(common.KeyD, ctrl.PanRight, step)
		pan(common.KeyA, ctrl.PanRight, -step)
		pan(common.KeyE, ctrl.PanUp, step)
		pan(common.KeyQ, ctrl.PanUp, -step)
		return moved
	}
	return g
}
