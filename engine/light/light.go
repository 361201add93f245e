package light

import (
	"math"

	"github.com/Carmen-Shannon/oxy-map/engine/game_object"
)

type lightImpl struct {
	transform game_object.GameObject
	color     [3]float32
	intensity float32
}

// Light is the directional sun of a view space.
//
// The light has no placement of its own: direction and position come from its transform's
// world matrix, so hanging it from a rig pivot makes the sun follow the view. It shines
// along the transform's local -Z axis and is switched on and off through the transform.
type Light interface {
	// Transform returns the scene handle that orients the light.
	//
	// Returns:
	//   - game_object.GameObject: the light's transform
	Transform() game_object.GameObject

	// Position returns the transform's world-space position.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Direction returns the normalized world-space direction the light travels in.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Color returns the RGB color of the light.
	Color() [3]float32

	// Intensity returns the scalar brightness multiplier.
	Intensity() float32

	// Radiance returns the color scaled by the intensity.
	//
	// Returns:
	//   - [3]float32: color * intensity
	Radiance() [3]float32

	// Enabled reports whether the light's transform is enabled.
	Enabled() bool

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color components in [0, 1]
	SetColor(r, g, b float32)

	// SetIntensity sets the brightness multiplier. Negative values are clamped to zero.
	//
	// Parameters:
	//   - intensity: the multiplier
	SetIntensity(intensity float32)
}

var _ Light = &lightImpl{}

// NewDirectionalLight creates a white sun of intensity 1. Unless WithTransform is given,
// the light owns a fresh transform named "Directional Light".
//
// Parameters:
//   - opts: functional options to configure the light
//
// Returns:
//   - Light: the new light
func NewDirectionalLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		color:     [3]float32{1, 1, 1},
		intensity: 1,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.transform == nil {
		l.transform = game_object.NewGameObject(game_object.WithName("Directional Light"))
	}
	return l
}

func (l *lightImpl) Transform() game_object.GameObject {
	return l.transform
}

func (l *lightImpl) Position() [3]float32 {
	return l.transform.WorldPosition()
}

func (l *lightImpl) Direction() [3]float32 {
	m := l.transform.WorldMatrix()
	return normalize3(-m[8], -m[9], -m[10])
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Radiance() [3]float32 {
	return [3]float32{l.color[0] * l.intensity, l.color[1] * l.intensity, l.color[2] * l.intensity}
}

func (l *lightImpl) Enabled() bool {
	return l.transform.Enabled()
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = max(intensity, 0)
}

// normalize3 returns the unit vector along (x, y, z), or zero for a zero-length input.
func normalize3(x, y, z float32) [3]float32 {
	length := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	if length == 0 {
		return [3]float32{}
	}
	return [3]float32{x / length, y / length, z / length}
}
