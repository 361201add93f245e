package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine/game_object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCamera_Defaults(t *testing.T) {
	cam := NewCamera()

	require.NotNil(t, cam.Transform())
	assert.Equal(t, "Camera", cam.Transform().Name())
	assert.Equal(t, DefaultFov, cam.Fov())
	assert.InDelta(t, 16.0/9.0, cam.Aspect(), 1e-6)
}

func TestNewCamera_WithTransform(t *testing.T) {
	tr := game_object.NewGameObject(game_object.WithName("rig camera"))
	cam := NewCamera(WithTransform(tr), WithFov(45), WithNear(1), WithFar(1000))

	assert.Equal(t, tr, cam.Transform())
	assert.Equal(t, float32(45), cam.Fov())
	assert.Equal(t, float32(1), cam.Near())
	assert.Equal(t, float32(1000), cam.Far())
}

func TestCamera_SetFovUpdatesProjection(t *testing.T) {
	cam := NewCamera()
	before := cam.ProjectionMatrix()
	cam.SetFov(30)
	after := cam.ProjectionMatrix()

	assert.Equal(t, float32(30), cam.Fov())
	assert.Greater(t, after[5], before[5], "narrower fov means larger focal scale")

	f := 1.0 / math.Tan(float64(common.DegToRad(30))/2)
	assert.InDelta(t, f, after[5], 1e-4)
}

func TestCamera_UpdateViewFollowsTransform(t *testing.T) {
	pivot := game_object.NewGameObject(game_object.WithPosition(100, 0, 0))
	cam := NewCamera()
	cam.Transform().SetParent(pivot)
	cam.Transform().SetPosition(0, 0, 10)
	cam.Update()

	// The pivot point sits 10 units in front of the camera, on its -Z axis.
	view := cam.ViewMatrix()
	p := common.TransformPoint(view[:], [3]float32{100, 0, 0})
	assert.InDeltaSlice(t, []float32{0, 0, -10}, p[:], 1e-4)
}

func TestCamera_InverseProjection(t *testing.T) {
	cam := NewCamera()
	proj := cam.ProjectionMatrix()
	inv := cam.InverseProjectionMatrix()

	var out [16]float32
	common.Mul4(out[:], proj[:], inv[:])
	var ident [16]float32
	common.Identity(ident[:])
	assert.InDeltaSlice(t, ident[:], out[:], 1e-3)
}
