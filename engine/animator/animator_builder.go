package animator

// AnimatorBuilderOption is a functional option for configuring an animator during construction.
type AnimatorBuilderOption func(*tweenSet)

// WithEasing sets the easing curve applied to every tween of the animator.
// A nil easing keeps the default (EaseInOut).
//
// Parameters:
//   - ease: the easing function
//
// Returns:
//   - AnimatorBuilderOption: functional option to set the easing curve
func WithEasing(ease Easing) AnimatorBuilderOption {
	return func(s *tweenSet) {
		if ease != nil {
			s.ease = ease
		}
	}
}
