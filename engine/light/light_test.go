package light

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/oxy-map/engine/game_object"
)

func TestNewDirectionalLight_Defaults(t *testing.T) {
	l := NewDirectionalLight()

	assert.Equal(t, "Directional Light", l.Transform().Name())
	assert.True(t, l.Enabled())
	assert.Equal(t, [3]float32{1, 1, 1}, l.Color())
	assert.Equal(t, float32(1), l.Intensity())

	// Identity rotation shines along -Z.
	assert.InDeltaSlice(t, []float32{0, 0, -1}, toSlice(l.Direction()), 1e-6)
}

func TestLight_FollowsParent(t *testing.T) {
	pivot := game_object.NewGameObject(game_object.WithPosition(3, 4, 5))
	l := NewDirectionalLight()
	l.Transform().SetParent(pivot)

	assert.InDeltaSlice(t, []float32{3, 4, 5}, toSlice(l.Position()), 1e-6)

	// Pitch the pivot down by 90 degrees: the light now points straight down.
	pivot.SetRotation(-math.Pi/2, 0, 0)
	assert.InDeltaSlice(t, []float32{0, -1, 0}, toSlice(l.Direction()), 1e-5)
}

func TestLight_EnabledFollowsTransform(t *testing.T) {
	tr := game_object.NewGameObject(game_object.WithName("sun"))
	l := NewDirectionalLight(WithTransform(tr))

	assert.Same(t, tr, l.Transform())
	tr.SetEnabled(false)
	assert.False(t, l.Enabled())
}

func TestLight_ColorAndIntensity(t *testing.T) {
	l := NewDirectionalLight(WithColor(1, 0.5, 0.25), WithIntensity(2))
	assert.Equal(t, [3]float32{2, 1, 0.5}, l.Radiance())

	l.SetColor(0.5, 0.5, 0.5)
	l.SetIntensity(-3)
	assert.Zero(t, l.Intensity())
	assert.Equal(t, [3]float32{0, 0, 0}, l.Radiance())

	assert.Zero(t, NewDirectionalLight(WithIntensity(-1)).Intensity())
}

func toSlice(v [3]float32) []float32 {
	return v[:]
}
