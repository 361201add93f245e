package gesture

import (
	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine/camera"
	"github.com/Carmen-Shannon/oxy-map/engine/game_object"
)

// NewOrbitGestures creates the globe strategy: A/D spin the globe, W/S tilt toward the poles,
// scroll zooms and drag rotates. The controller's azimuth and elevation map to longitude and
// latitude of the point under the camera.
//
// Parameters:
//   - ctrl: the controller to drive
//   - pivot: the rig pivot
//   - cam: the camera transform parented to the pivot
//
// Returns:
//   - GestureStrategy: the orbit strategy
func NewOrbitGestures(ctrl camera.CameraController, pivot, cam game_object.GameObject) GestureStrategy {
	g := newGestures(ctrl, pivot, cam)
	g.handle = func(in input, _ float32) bool {
		moved := false
		if in.held[common.KeyA] {
			ctrl.OrbitLeft()
			moved = true
		}
		if in.held[common.KeyD] {
			ctrl.OrbitRight()
			moved = true
		}
		if in.held[common.KeyW] {
			ctrl.OrbitUp()
			moved = true
		}
		if in.held[common.KeyS] {
			ctrl.OrbitDown()
			moved = true
		}
		return moved
	}
	return g
}
