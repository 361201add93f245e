package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-map/engine/game_object"
	"github.com/stretchr/testify/assert"
)

func TestCameraController_PositionFromSpherical(t *testing.T) {
	cc := NewCameraController(
		WithRadius(100),
		WithAzimuth(0),
		WithElevation(0.5),
		WithElevationBounds(-1, 1),
	)

	x, y, z := cc.Position()
	assert.InDelta(t, 0, x, 1e-4)
	assert.InDelta(t, 100*math.Sin(0.5), y, 1e-3)
	assert.InDelta(t, 100*math.Cos(0.5), z, 1e-3)
}

func TestCameraController_Bounds(t *testing.T) {
	cc := NewCameraController(WithRadiusBounds(10, 100), WithRadius(50), WithElevationBounds(0.1, 1.0))

	cc.SetRadius(1000)
	assert.Equal(t, float32(100), cc.Radius())
	cc.SetRadius(1)
	assert.Equal(t, float32(10), cc.Radius())

	cc.SetElevation(5)
	assert.Equal(t, float32(1.0), cc.Elevation())
	cc.SetElevation(-5)
	assert.Equal(t, float32(0.1), cc.Elevation())
}

func TestCameraController_ZoomIsExponential(t *testing.T) {
	cc := NewCameraController(WithRadius(1000), WithZoomSpeed(math.Ln2))

	cc.Zoom(1)
	assert.InDelta(t, 500, cc.Radius(), 1e-2)
	cc.Zoom(-2)
	assert.InDelta(t, 2000, cc.Radius(), 1e-1)
}

func TestCameraController_Orbit(t *testing.T) {
	cc := NewCameraController(WithOrbitSpeed(0.1), WithElevation(0.5), WithMouseSensitivity(0.01))

	cc.OrbitRight()
	assert.InDelta(t, 0.1, cc.Azimuth(), 1e-6)
	cc.OrbitLeft()
	cc.OrbitLeft()
	assert.InDelta(t, -0.1, cc.Azimuth(), 1e-6)
	cc.OrbitUp()
	assert.InDelta(t, 0.6, cc.Elevation(), 1e-6)
	cc.OrbitDown()
	assert.InDelta(t, 0.5, cc.Elevation(), 1e-6)

	cc.Orbit(10, 10)
	assert.InDelta(t, -0.2, cc.Azimuth(), 1e-6)
	assert.InDelta(t, 0.6, cc.Elevation(), 1e-6)
}

func TestCameraController_PanAlongGround(t *testing.T) {
	cc := NewCameraController(WithPanSpeed(2))

	// Azimuth 0: camera sits on +Z, heading is -Z and right is +X.
	cc.PanForward(1)
	cc.PanRight(1)
	cc.PanUp(1)
	x, y, z := cc.Target()
	assert.InDelta(t, 2, x, 1e-5)
	assert.InDelta(t, 2, y, 1e-5)
	assert.InDelta(t, -2, z, 1e-5)

	cc.SetTarget(0, 0, 0)
	cc.SetAzimuth(math.Pi / 2)
	cc.PanForward(1)
	x, _, z = cc.Target()
	assert.InDelta(t, -2, x, 1e-5)
	assert.InDelta(t, 0, z, 1e-5)
}

func TestCameraController_RigRoundTrip(t *testing.T) {
	pivot := game_object.NewGameObject()
	camTr := game_object.NewGameObject(game_object.WithParent(pivot))

	cc := NewCameraController(WithTarget(5, 0, -3), WithRadius(200), WithAzimuth(0.4), WithElevation(0.7))
	cc.WriteRig(pivot, camTr)

	// The rig places the camera exactly where the controller says it is.
	x, y, z := cc.Position()
	assert.InDeltaSlice(t, []float32{x, y, z}, toSlice(camTr.WorldPosition()), 1e-3)

	other := NewCameraController()
	other.ReadRig(pivot, camTr)
	assert.InDelta(t, 200, other.Radius(), 1e-4)
	assert.InDelta(t, 0.4, other.Azimuth(), 1e-6)
	assert.InDelta(t, 0.7, other.Elevation(), 1e-6)
	tx, ty, tz := other.Target()
	assert.Equal(t, [3]float32{5, 0, -3}, [3]float32{tx, ty, tz})
}

func toSlice(v [3]float32) []float32 {
	return v[:]
}
