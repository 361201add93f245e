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
	// descentFactor scales the camera height a from-top entry starts at.
	descentFactor = 4
	// ascentFactor scales the camera height a from-bottom surface entry starts at.
	ascentFactor = 0.25
)

// surface frames a flat map. The pivot sits on the projected coordinate with the camera
// at the configured height, tilted by the configured pitch. Entries animate the camera
// along its view axis.
type surface struct {
	rig        Rig
	projection tiling.Projection
	height     float32
	elevation  float32
	duration   float32
	sun        config.SunConfig
	// ascend animates from-bottom entries upward; without it they snap into place.
	ascend bool

	ctrl     camera.CameraController
	gestures gesture.GestureStrategy
	anim     animator.TransformAnimator
}

var _ Variant = &surface{}

// NewSurfaceSpace creates the surface space: a map plane seen from above.
// From-top entries descend onto the coordinate and from-bottom entries climb back up.
//
// Parameters:
//   - rig: the scene handles, with the camera and light parented to the tiles' pivot
//   - tiles: the tile controller
//   - projection: the projection placing coordinates on the target (usually the one the tiles use)
//   - cfg: the surface framing
//
// Returns:
//   - Space: the surface space
//   - error: a wrapped ErrMissingHandle if the rig is incomplete
func NewSurfaceSpace(rig Rig, tiles tiling.TileController, projection tiling.Projection, cfg config.SpaceConfig) (Space, error) {
	return newSurface("surface", rig, tiles, projection, cfg, true)
}

// NewDetailSpace creates the street-level space. It frames like the surface space at a
// lower height with a pitch, but only from-top entries animate.
//
// Parameters:
//   - rig: the scene handles, with the camera and light parented to the tiles' pivot
//   - tiles: the tile controller
//   - projection: the projection placing coordinates on the target
//   - cfg: the detail framing
//
// Returns:
//   - Space: the detail space
//   - error: a wrapped ErrMissingHandle if the rig is incomplete
func NewDetailSpace(rig Rig, tiles tiling.TileController, projection tiling.Projection, cfg config.SpaceConfig) (Space, error) {
	return newSurface("detail", rig, tiles, projection, cfg, false)
}

func newSurface(name string, rig Rig, tiles tiling.TileController, projection tiling.Projection, cfg config.SpaceConfig, ascend bool) (Space, error) {
	pivot, err := rig.validate(tiles)
	if err != nil {
		return nil, err
	}
	if projection == nil {
		projection = tiling.PlanarProjection{}
	}
	rig.Pivot = pivot

	// Pitch is measured from straight down; the controller measures elevation from the horizon.
	elevation := float32(math.Pi/2) - cfg.Pitch
	ctrl := camera.NewCameraController(append(controlOptions(cfg.Controls),
		camera.WithRadius(cfg.Height),
		camera.WithRadiusBounds(cfg.Height*0.1, cfg.Height*descentFactor*10),
		camera.WithElevation(elevation),
	)...)
	s := &surface{
		rig:        rig,
		projection: projection,
		height:     cfg.Height,
		elevation:  ctrl.Elevation(),
		duration:   cfg.Animation,
		sun:        cfg.Sun,
		ascend:     ascend,
		ctrl:       ctrl,
		gestures:   gesture.NewPlanarGestures(ctrl, pivot, rig.Camera.Transform()),
		anim:       animator.NewTransformAnimator(),
	}
	return New(rig, tiles, s.gestures, s, WithName(name))
}

func (s *surface) OnEnter(coord common.GeoCoordinate, isFromTop bool) {
	pos := s.projection.Project(common.ClampCoordinate(coord))

	s.ctrl.SetTarget(pos[0], pos[1], pos[2])
	s.ctrl.SetAzimuth(0)
	s.ctrl.SetElevation(s.elevation)
	s.ctrl.SetRadius(s.height)
	s.ctrl.WriteRig(s.rig.Pivot, s.rig.Camera.Transform())
	s.rig.applySun(s.sun)

	start := s.height
	switch {
	case isFromTop:
		start = s.height * descentFactor
	case s.ascend:
		start = s.height * ascentFactor
	}
	if start == s.height {
		return
	}

	cam := s.rig.Camera.Transform()
	cam.SetPosition(0, 0, start)
	s.anim.AnimateTransform(cam, [3]float32{0, 0, s.height}, [3]float32{}, s.duration)
}

func (s *surface) OnExit() {
	s.gestures.Reset()
}

func (s *surface) Animator() animator.SpaceAnimator {
	return s.anim
}
