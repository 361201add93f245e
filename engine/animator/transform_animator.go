package animator

import (
	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine/camera"
	"github.com/Carmen-Shannon/oxy-map/engine/game_object"
)

// TransformAnimator tweens scene handles directly: local position and rotation of
// game objects and the field of view of a camera. Surface and detail spaces use it to
// descend onto the map.
type TransformAnimator interface {
	SpaceAnimator

	// AnimateTransform tweens obj from its current local transform to the given one.
	//
	// Parameters:
	//   - obj: the handle to move
	//   - position: final local position
	//   - rotation: final local Euler rotation in radians
	//   - duration: tween length in seconds; zero snaps on the next Update
	AnimateTransform(obj game_object.GameObject, position, rotation [3]float32, duration float32)

	// AnimateFov tweens the camera's field of view from its current value.
	//
	// Parameters:
	//   - cam: the camera to adjust
	//   - fov: final field of view in degrees
	//   - duration: tween length in seconds
	AnimateFov(cam camera.Camera, fov, duration float32)
}

type transformAnimator struct {
	tweenSet
}

var _ TransformAnimator = &transformAnimator{}

// NewTransformAnimator creates an idle TransformAnimator.
//
// Parameters:
//   - options: functional options to configure the animator
//
// Returns:
//   - TransformAnimator: the newly created animator
func NewTransformAnimator(options ...AnimatorBuilderOption) TransformAnimator {
	a := &transformAnimator{tweenSet: tweenSet{ease: EaseInOut}}
	for _, option := range options {
		option(&a.tweenSet)
	}
	return a
}

func (a *transformAnimator) Update(deltaTime float32) {
	a.update(deltaTime)
}

func (a *transformAnimator) Cancel() {
	a.cancel()
}

func (a *transformAnimator) Animating() bool {
	return a.animating()
}

func (a *transformAnimator) AnimateTransform(obj game_object.GameObject, position, rotation [3]float32, duration float32) {
	px, py, pz := obj.Position()
	rx, ry, rz := obj.Rotation()
	fromPos := [3]float32{px, py, pz}
	fromRot := [3]float32{rx, ry, rz}

	a.add(&tween{
		duration: duration,
		apply: func(t float32) {
			p := common.Lerp3(fromPos, position, t)
			r := common.Lerp3(fromRot, rotation, t)
			obj.SetPosition(p[0], p[1], p[2])
			obj.SetRotation(r[0], r[1], r[2])
		},
	})
}

func (a *transformAnimator) AnimateFov(cam camera.Camera, fov, duration float32) {
	from := cam.Fov()
	a.add(&tween{
		duration: duration,
		apply: func(t float32) {
			cam.SetFov(common.Lerp(from, fov, t))
		},
	})
}
