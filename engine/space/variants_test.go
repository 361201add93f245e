package space

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine/config"
	"github.com/Carmen-Shannon/oxy-map/engine/tiling"
)

func cameraZ(rig Rig) float32 {
	_, _, z := rig.Camera.Transform().Position()
	return z
}

func TestGlobeSpace_FramesCoordinate(t *testing.T) {
	cfg := config.DefaultConfig().Spaces.Globe
	rig := NewRig("globe")
	tiles := &spyTiles{log: &callLog{}, pivot: rig.Pivot, fov: cfg.Fov}
	s, err := NewGlobeSpace(rig, tiles, cfg)
	require.NoError(t, err)
	assert.Equal(t, "globe", s.Name())

	coord := common.NewGeoCoordinate(52.52, 13.405)
	require.NoError(t, s.EnterTop(coord))

	rx, ry, _ := rig.Pivot.Rotation()
	assert.InDelta(t, -coord.Latitude*math.Pi/180, rx, 1e-5)
	assert.InDelta(t, coord.Longitude*math.Pi/180, ry, 1e-5)
	assert.InDelta(t, cfg.Radius*globeFarDistance, cameraZ(rig), 1e-3)
	assert.True(t, s.Animator().Animating())

	require.NoError(t, s.Update(cfg.Animation))
	assert.False(t, s.Animator().Animating())
	assert.InDelta(t, cfg.Radius*globeViewDistance, cameraZ(rig), 1e-3)

	// The light shines from the camera toward the globe center.
	p := tiling.SphereProjection{Radius: 1}.Project(coord)
	dir := rig.Light.Direction()
	for i := range dir {
		assert.InDelta(t, -p[i], dir[i], 1e-4)
	}

	// The tile controller sees the same focus the rig frames.
	focus := tiling.SphereProjection{Radius: cfg.Radius}.Focus(rig.Pivot.WorldMatrix())
	assert.InDelta(t, coord.Latitude, focus.Latitude, 1e-3)
	assert.InDelta(t, coord.Longitude, focus.Longitude, 1e-3)
}

func TestGlobeSpace_EnterBottomRisesFromSurface(t *testing.T) {
	cfg := config.DefaultConfig().Spaces.Globe
	rig := NewRig("globe")
	s, err := NewGlobeSpace(rig, &spyTiles{log: &callLog{}, pivot: rig.Pivot, fov: 60}, cfg)
	require.NoError(t, err)

	require.NoError(t, s.EnterBottom(common.NewGeoCoordinate(-33.86, 151.2)))
	assert.InDelta(t, cfg.Radius*globeNearDistance, cameraZ(rig), 1e-3)

	rx, _, _ := rig.Pivot.Rotation()
	assert.Greater(t, rx, float32(0), "southern latitudes tilt the pivot the other way")

	require.NoError(t, s.Update(cfg.Animation/2))
	z := cameraZ(rig)
	assert.Greater(t, z, cfg.Radius*globeNearDistance)
	assert.Less(t, z, cfg.Radius*globeViewDistance)
}

func TestGlobeSpace_LeaveResetsGestures(t *testing.T) {
	cfg := config.DefaultConfig().Spaces.Globe
	rig := NewRig("globe")
	s, err := NewGlobeSpace(rig, &spyTiles{log: &callLog{}, pivot: rig.Pivot, fov: 60}, cfg)
	require.NoError(t, err)

	require.NoError(t, s.EnterTop(common.GeoCoordinate{}))
	s.Gestures().OnKey(common.KeyD, true)
	require.NoError(t, s.Leave())

	assert.False(t, s.Gestures().Apply(0.016), "held keys are released on exit")
	assert.False(t, s.Animator().Animating(), "leave cancels the entry animation")
}

func TestGlobeSpace_RequiresHandles(t *testing.T) {
	rig := NewRig("globe")
	rig.Light = nil
	_, err := NewGlobeSpace(rig, &spyTiles{log: &callLog{}, pivot: rig.Pivot}, config.DefaultConfig().Spaces.Globe)
	require.ErrorIs(t, err, ErrMissingHandle)
}

func TestSurfaceSpace_DescendsOntoCoordinate(t *testing.T) {
	cfg := config.DefaultConfig().Spaces.Surface
	origin := common.NewGeoCoordinate(48.8566, 2.3522)
	projection := tiling.PlanarProjection{Origin: origin}
	rig := NewRig("surface")
	s, err := NewSurfaceSpace(rig, &spyTiles{log: &callLog{}, pivot: rig.Pivot, fov: cfg.Fov}, projection, cfg)
	require.NoError(t, err)

	coord := common.NewGeoCoordinate(48.8584, 2.2945)
	require.NoError(t, s.EnterTop(coord))

	want := projection.Project(coord)
	x, y, z := rig.Pivot.Position()
	assert.Equal(t, want, [3]float32{x, y, z})
	rx, ry, _ := rig.Pivot.Rotation()
	assert.InDelta(t, -(math.Pi/2 - 0.001), rx, 1e-5, "no pitch looks straight down")
	assert.Zero(t, ry)
	assert.InDelta(t, cfg.Height*descentFactor, cameraZ(rig), 1e-3)
	assert.Equal(t, cfg.Fov, rig.Camera.Fov())

	require.NoError(t, s.Update(cfg.Animation))
	assert.InDelta(t, cfg.Height, cameraZ(rig), 1e-3)
}

func TestSurfaceSpace_EnterBottomAscends(t *testing.T) {
	cfg := config.DefaultConfig().Spaces.Surface
	rig := NewRig("surface")
	s, err := NewSurfaceSpace(rig, &spyTiles{log: &callLog{}, pivot: rig.Pivot, fov: 60}, tiling.PlanarProjection{}, cfg)
	require.NoError(t, err)

	require.NoError(t, s.EnterBottom(common.GeoCoordinate{}))
	assert.InDelta(t, cfg.Height*ascentFactor, cameraZ(rig), 1e-3)
	require.NoError(t, s.Update(cfg.Animation))
	assert.InDelta(t, cfg.Height, cameraZ(rig), 1e-3)
}

func TestDetailSpace_Framing(t *testing.T) {
	cfg := config.DefaultConfig().Spaces.Detail
	rig := NewRig("detail")
	s, err := NewDetailSpace(rig, &spyTiles{log: &callLog{}, pivot: rig.Pivot, fov: cfg.Fov}, nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, "detail", s.Name())

	require.NoError(t, s.EnterBottom(common.GeoCoordinate{}))
	assert.False(t, s.Animator().Animating(), "from-bottom entries snap into place")
	assert.InDelta(t, cfg.Height, cameraZ(rig), 1e-4)
	rx, _, _ := rig.Pivot.Rotation()
	assert.InDelta(t, -(math.Pi/2 - cfg.Pitch), rx, 1e-5)
	require.NoError(t, s.Leave())

	require.NoError(t, s.EnterTop(common.GeoCoordinate{}))
	assert.True(t, s.Animator().Animating())
	assert.InDelta(t, cfg.Height*descentFactor, cameraZ(rig), 1e-3)
}

func TestNavigator_WithConcreteSpaces(t *testing.T) {
	cfg := config.DefaultConfig()
	coord := common.NewGeoCoordinate(35.6762, 139.6503)
	projection := tiling.PlanarProjection{Origin: coord}

	globeRig, surfaceRig := NewRig("globe"), NewRig("surface")
	globe, err := NewGlobeSpace(globeRig, &spyTiles{log: &callLog{}, pivot: globeRig.Pivot, fov: 60}, cfg.Spaces.Globe)
	require.NoError(t, err)
	surface, err := NewSurfaceSpace(surfaceRig, &spyTiles{log: &callLog{}, pivot: surfaceRig.Pivot, fov: 60}, projection, cfg.Spaces.Surface)
	require.NoError(t, err)

	nav := NewNavigator(globe, surface)
	require.NoError(t, nav.Start(coord))
	require.NoError(t, nav.ZoomIn(coord))
	assert.False(t, globeRig.Target.Enabled())
	assert.True(t, surfaceRig.Target.Enabled())

	// Let the descent finish, then pan north with W.
	for nav.Current().Animator().Animating() {
		require.NoError(t, nav.Update(0.1))
	}
	nav.Gestures().OnKey(common.KeyW, true)
	require.NoError(t, nav.Update(0.1))
	require.NoError(t, nav.Update(0.1))

	_, _, z := surfaceRig.Pivot.Position()
	assert.Less(t, z, float32(0), "north is -Z")
	require.NoError(t, nav.Close())
}

func TestGlobeSpace_AppliesSunAndControls(t *testing.T) {
	cfg := config.DefaultConfig().Spaces.Globe
	cfg.Sun = config.SunConfig{Color: [3]float32{1, 0.5, 0.25}, Intensity: 2}
	cfg.Controls.OrbitSpeed = 0.2
	rig := NewRig("globe")
	s, err := NewGlobeSpace(rig, &spyTiles{log: &callLog{}, pivot: rig.Pivot, fov: 60}, cfg)
	require.NoError(t, err)

	require.NoError(t, s.EnterTop(common.NewGeoCoordinate(0, 10)))
	assert.Equal(t, [3]float32{1, 0.5, 0.25}, rig.Light.Color())
	assert.Equal(t, float32(2), rig.Light.Intensity())

	require.NoError(t, s.Update(cfg.Animation))
	s.Gestures().Capture()
	_, before, _ := rig.Pivot.Rotation()
	s.Gestures().OnKey(common.KeyD, true)
	s.Gestures().Apply(0.1)
	_, after, _ := rig.Pivot.Rotation()
	assert.InDelta(t, 0.2, after-before, 1e-5)
}

func TestSurfaceSpace_ZeroSunKeepsLight(t *testing.T) {
	cfg := config.DefaultConfig().Spaces.Surface
	cfg.Sun = config.SunConfig{}
	rig := NewRig("surface")
	rig.Light.SetIntensity(0.7)
	s, err := NewSurfaceSpace(rig, &spyTiles{log: &callLog{}, pivot: rig.Pivot, fov: 60}, nil, cfg)
	require.NoError(t, err)

	require.NoError(t, s.EnterTop(common.GeoCoordinate{}))
	assert.Equal(t, float32(0.7), rig.Light.Intensity())
}
