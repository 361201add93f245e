package animator

import "github.com/Carmen-Shannon/oxy-map/common"

// SpaceAnimator defines the per-frame animation driver owned by a view space.
//
// Each space variant supplies its own implementation. The space advances it once per frame
// through Update and stops it through Cancel when the space is left. Cancel is immediate:
// whatever frame the handles are on stays applied and the remaining easing is dropped.
type SpaceAnimator interface {
	// Update advances all running tweens by deltaTime seconds.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds, non-negative
	Update(deltaTime float32)

	// Cancel stops all running tweens without applying their remaining progress.
	Cancel()

	// Animating reports whether any tween is still running.
	//
	// Returns:
	//   - bool: true while a tween is in progress
	Animating() bool
}

// Easing maps linear progress in [0, 1] to eased progress in [0, 1].
type Easing func(t float32) float32

// EaseLinear applies no easing.
func EaseLinear(t float32) float32 {
	return t
}

// EaseInOut is the smoothstep curve: slow start, slow finish.
func EaseInOut(t float32) float32 {
	return t * t * (3 - 2*t)
}

// tween drives one interpolation. apply receives eased progress.
type tween struct {
	duration float32
	elapsed  float32
	apply    func(t float32)
}

// step advances the tween and applies the new progress.
//
// Returns:
//   - bool: true once the tween reached its end
func (tw *tween) step(deltaTime float32, ease Easing) bool {
	tw.elapsed += deltaTime
	if tw.duration <= 0 || tw.elapsed >= tw.duration {
		tw.apply(1)
		return true
	}
	tw.apply(ease(common.Clamp(tw.elapsed/tw.duration, 0, 1)))
	return false
}

// tweenSet is the shared bookkeeping of both animator kinds.
type tweenSet struct {
	tweens []*tween
	ease   Easing
}

func (s *tweenSet) add(tw *tween) {
	s.tweens = append(s.tweens, tw)
}

func (s *tweenSet) update(deltaTime float32) {
	if len(s.tweens) == 0 {
		return
	}
	running := s.tweens[:0]
	for _, tw := range s.tweens {
		if !tw.step(deltaTime, s.ease) {
			running = append(running, tw)
		}
	}
	for i := len(running); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = running
}

func (s *tweenSet) cancel() {
	s.tweens = nil
}

func (s *tweenSet) animating() bool {
	return len(s.tweens) > 0
}
