package space

import (
	"math"

	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine/animator"
	"github.com/Carmen-Shannon/oxy-map/engine/camera"
	"github.com/Carmen-Shannon/oxy-map/engine/config"
	"github.com/Carmen-Shannon/oxy-map/engine/gesture"
	"github.com/Carmen-Shannon/oxy-map/engine/tiling"
)

const (
	// globeViewDistance is the resting camera distance from the globe center, in globe radii.
	globeViewDistance = 3
	// globeFarDistance is where a from-top entry starts.
	globeFarDistance = 6
	// globeNearDistance is where a from-bottom entry starts, just above the surface.
	globeNearDistance = 1.05
)

// globe frames the whole planet. The pivot stays at the globe center and rotates so the
// coordinate faces the camera; the orbit radius is the camera's distance from the center.
type globe struct {
	rig      Rig
	radius   float32
	duration float32
	sun      config.SunConfig

	ctrl     camera.CameraController
	gestures gesture.GestureStrategy
	anim     animator.OrbitAnimator
}

var _ Variant = &globe{}

// NewGlobeSpace creates the globe space. The tile controller should stream with a
// tiling.SphereProjection of the same radius as cfg.Radius.
//
// Parameters:
//   - rig: the scene handles, with the camera and light parented to the tiles' pivot
//   - tiles: the tile controller
//   - cfg: the globe framing
//
// Returns:
//   - Space: the globe space
//   - error: a wrapped ErrMissingHandle if the rig is incomplete
func NewGlobeSpace(rig Rig, tiles tiling.TileController, cfg config.SpaceConfig) (Space, error) {
	pivot, err := rig.validate(tiles)
	if err != nil {
		return nil, err
	}

	rig.Pivot = pivot
	r := cfg.Radius
	ctrl := camera.NewCameraController(append(controlOptions(cfg.Controls),
		camera.WithTarget(0, 0, 0),
		camera.WithRadius(r*globeViewDistance),
		camera.WithRadiusBounds(r*1.01, r*globeFarDistance*2),
		camera.WithElevationBounds(-math.Pi/2+0.01, math.Pi/2-0.01),
		camera.WithZoomSpeed(0.2),
	)...)
	g := &globe{
		rig:      rig,
		radius:   r,
		duration: cfg.Animation,
		sun:      cfg.Sun,
		ctrl:     ctrl,
		gestures: gesture.NewOrbitGestures(ctrl, pivot, rig.Camera.Transform()),
		anim:     animator.NewOrbitAnimator(ctrl, pivot, rig.Camera.Transform()),
	}
	return New(rig, tiles, g.gestures, g, WithName("globe"))
}

func (g *globe) OnEnter(coord common.GeoCoordinate, isFromTop bool) {
	coord = common.ClampCoordinate(coord)
	azimuth := common.DegToRad(coord.Longitude)
	elevation := common.DegToRad(coord.Latitude)

	start := g.radius * globeNearDistance
	if isFromTop {
		start = g.radius * globeFarDistance
	}

	g.ctrl.SetTarget(0, 0, 0)
	g.ctrl.SetAzimuth(azimuth)
	g.ctrl.SetElevation(elevation)
	g.ctrl.SetRadius(start)
	g.ctrl.WriteRig(g.rig.Pivot, g.rig.Camera.Transform())
	g.rig.applySun(g.sun)

	g.anim.AnimateOrbit(animator.OrbitState{
		Radius:    g.radius * globeViewDistance,
		Azimuth:   g.ctrl.Azimuth(),
		Elevation: g.ctrl.Elevation(),
	}, g.duration)
}

func (g *globe) OnExit() {
	g.gestures.Reset()
}

func (g *globe) Animator() animator.SpaceAnimator {
	return g.anim
}
