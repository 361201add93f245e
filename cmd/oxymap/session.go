package main

import (
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/pkg/errors"

	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine/camera"
	"github.com/Carmen-Shannon/oxy-map/engine/config"
	"github.com/Carmen-Shannon/oxy-map/engine/logger"
	"github.com/Carmen-Shannon/oxy-map/engine/space"
	"github.com/Carmen-Shannon/oxy-map/engine/tiling"
)

// session is a navigator over the globe, surface and detail spaces, with the tile
// controllers kept for reporting.
type session struct {
	nav   space.Navigator
	names []string
	tiles []tiling.StreamingController

	zoomEvery float32
	elapsed   float32
	zoomsLeft int
}

// newSession wires the three spaces. Surface and detail share a planar projection
// centered on origin; every controller shares one worker pool.
func newSession(cfg *config.Config, origin common.GeoCoordinate, loader tiling.TileLoader) (*session, error) {
	// Only one space streams at a time, but loads of a left space may still be queued.
	pool := worker.NewDynamicWorkerPool(cfg.Tiles.Workers, cfg.Tiles.QueueSize*3, time.Second)
	planar := tiling.PlanarProjection{Origin: common.ClampCoordinate(origin), Scale: 1}

	type spec struct {
		name       string
		cfg        config.SpaceConfig
		projection tiling.Projection
		build      func(space.Rig, tiling.TileController, tiling.Projection, config.SpaceConfig) (space.Space, error)
	}
	specs := []spec{
		{"globe", cfg.Spaces.Globe, tiling.SphereProjection{Radius: cfg.Spaces.Globe.Radius},
			func(rig space.Rig, tiles tiling.TileController, _ tiling.Projection, c config.SpaceConfig) (space.Space, error) {
				return space.NewGlobeSpace(rig, tiles, c)
			}},
		{"surface", cfg.Spaces.Surface, planar, space.NewSurfaceSpace},
		{"detail", cfg.Spaces.Detail, planar, space.NewDetailSpace},
	}

	s := &session{}
	spaces := make([]space.Space, 0, len(specs))
	for _, sp := range specs {
		rig := space.NewRig(sp.name,
			camera.WithFov(sp.cfg.Fov),
			camera.WithAspect(cfg.Aspect),
			camera.WithNear(sp.cfg.Near),
			camera.WithFar(sp.cfg.Far),
		)
		tiles := tiling.NewTileController(rig.Pivot,
			tiling.WithFieldOfView(sp.cfg.Fov),
			tiling.WithZoom(sp.cfg.Zoom),
			tiling.WithRadius(cfg.Tiles.Radius),
			tiling.WithProjection(sp.projection),
			tiling.WithLoader(loader),
			tiling.WithQueueSize(cfg.Tiles.QueueSize),
			tiling.WithWorkerPool(pool),
		)
		built, err := sp.build(rig, tiles, sp.projection, sp.cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "build %s space", sp.name)
		}
		spaces = append(spaces, built)
		s.names = append(s.names, sp.name)
		s.tiles = append(s.tiles, tiles)
	}
	s.nav = space.NewNavigator(spaces...)
	return s, nil
}

// scheduleZooms spreads n zoom-ins evenly over duration.
func (s *session) scheduleZooms(n int, duration time.Duration) {
	s.zoomsLeft = n
	if n > 0 {
		s.zoomEvery = float32(duration.Seconds()) / float32(n+1)
	}
}

// tick advances the session by one engine tick.
func (s *session) tick(deltaTime float32) {
	if err := s.nav.Update(deltaTime); err != nil {
		logger.Errorf("session: %v", err)
		return
	}
	if s.zoomsLeft == 0 {
		return
	}

	s.elapsed += deltaTime
	if s.elapsed < s.zoomEvery {
		return
	}
	s.elapsed = 0
	s.zoomsLeft--

	focus := s.tiles[s.nav.Level()].Focus()
	if err := s.nav.ZoomIn(focus); err != nil {
		if errors.Is(err, space.ErrNoSpace) {
			logger.Warnf("session: already at the lowest space")
			s.zoomsLeft = 0
			return
		}
		logger.Errorf("session: zoom in: %v", err)
	}
}
