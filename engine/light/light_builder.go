package light

import "github.com/Carmen-Shannon/oxy-map/engine/game_object"

// LightBuilderOption configures a light during construction.
type LightBuilderOption func(*lightImpl)

// WithColor sets the light's RGB color.
//
// Parameters:
//   - r, g, b: color components in [0, 1]
//
// Returns:
//   - LightBuilderOption: an option applying the color
func WithColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = [3]float32{r, g, b}
	}
}

// WithIntensity sets the brightness multiplier. Negative values are clamped to zero.
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = max(intensity, 0)
	}
}

// WithTransform orients the light with an existing scene handle, usually a child of a rig pivot.
//
// Parameters:
//   - transform: the GameObject orienting the light
//
// Returns:
//   - LightBuilderOption: an option applying the transform
func WithTransform(transform game_object.GameObject) LightBuilderOption {
	return func(l *lightImpl) {
		l.transform = transform
	}
}
