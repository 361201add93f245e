package animator

import (
	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine/camera"
	"github.com/Carmen-Shannon/oxy-map/engine/game_object"
)

// OrbitState is a full spherical camera placement around a target.
type OrbitState struct {
	Target    [3]float32
	Radius    float32
	Azimuth   float32
	Elevation float32
}

// OrbitAnimator tweens a camera controller's spherical state and writes it onto the
// pivot/camera rig every frame. The globe space uses it to fly around the planet.
type OrbitAnimator interface {
	SpaceAnimator

	// Controller returns the controller being animated.
	//
	// Returns:
	//   - camera.CameraController: the animated controller
	Controller() camera.CameraController

	// AnimateOrbit tweens from the controller's current state to the given one.
	//
	// Parameters:
	//   - to: final spherical placement
	//   - duration: tween length in seconds; zero snaps on the next Update
	AnimateOrbit(to OrbitState, duration float32)
}

type orbitAnimator struct {
	tweenSet

	ctrl  camera.CameraController
	pivot game_object.GameObject
	cam   game_object.GameObject
}

var _ OrbitAnimator = &orbitAnimator{}

// NewOrbitAnimator creates an idle OrbitAnimator for a rig.
//
// Parameters:
//   - ctrl: the controller holding the spherical state
//   - pivot: the rig pivot written each frame
//   - cam: the camera transform parented to the pivot
//   - options: functional options to configure the animator
//
// Returns:
//   - OrbitAnimator: the newly created animator
func NewOrbitAnimator(ctrl camera.CameraController, pivot, cam game_object.GameObject, options ...AnimatorBuilderOption) OrbitAnimator {
	a := &orbitAnimator{
		tweenSet: tweenSet{ease: EaseInOut},
		ctrl:     ctrl,
		pivot:    pivot,
		cam:      cam,
	}
	for _, option := range options {
		option(&a.tweenSet)
	}
	return a
}

func (a *orbitAnimator) Controller() camera.CameraController {
	return a.ctrl
}

func (a *orbitAnimator) Update(deltaTime float32) {
	a.update(deltaTime)
}

func (a *orbitAnimator) Cancel() {
	a.cancel()
}

func (a *orbitAnimator) Animating() bool {
	return a.animating()
}

func (a *orbitAnimator) AnimateOrbit(to OrbitState, duration float32) {
	tx, ty, tz := a.ctrl.Target()
	from := OrbitState{
		Target:    [3]float32{tx, ty, tz},
		Radius:    a.ctrl.Radius(),
		Azimuth:   a.ctrl.Azimuth(),
		Elevation: a.ctrl.Elevation(),
	}

	a.add(&tween{
		duration: duration,
		apply: func(t float32) {
			target := common.Lerp3(from.Target, to.Target, t)
			a.ctrl.SetTarget(target[0], target[1], target[2])
			a.ctrl.SetRadius(common.Lerp(from.Radius, to.Radius, t))
			a.ctrl.SetAzimuth(common.Lerp(from.Azimuth, to.Azimuth, t))
			a.ctrl.SetElevation(common.Lerp(from.Elevation, to.Elevation, t))
			a.ctrl.WriteRig(a.pivot, a.cam)
		},
	})
}
