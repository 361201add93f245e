package tiling

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/pkg/errors"

	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine/game_object"
	"github.com/Carmen-Shannon/oxy-map/engine/logger"
)

// tileResult is posted by a worker when a load finishes.
type tileResult struct {
	generation uint64
	tile       Tile
	err        error
}

type tileControllerImpl struct {
	pivot      game_object.GameObject
	fov        float32
	zoom       uint32
	radius     int
	projection Projection
	loader     TileLoader

	// pool runs loads off the frame thread. Workers persist across generations and
	// may be shared between the controllers of several spaces.
	pool      worker.DynamicWorkerPool
	hasPool   bool
	workers   int
	queueSize int
	// inFlight counts loads still running in any generation, bounding pool usage
	// while a disposed generation winds down.
	inFlight  atomic.Int64
	nextTask  int

	// per-generation state, rebuilt lazily by Update after Dispose
	initialized bool
	generation  uint64
	ctx         context.Context
	cancel      context.CancelFunc
	results     chan tileResult
	tiles       map[common.TileID]Tile
	pending     map[common.TileID]struct{}
	focus       common.GeoCoordinate
}

var _ StreamingController = &tileControllerImpl{}

// NewTileController creates a controller streaming tiles around pivot.
// The pivot is required; NewTileController panics if it is nil, as it is a wiring error.
// Without options the controller streams zoom 0 through a SyntheticLoader on a
// SphereProjection of radius 1.
//
// Parameters:
//   - pivot: the rig pivot the space's camera and light hang from (must not be nil)
//   - options: functional options to configure the controller
//
// Returns:
//   - StreamingController: the newly created controller
func NewTileController(pivot game_object.GameObject, options ...TileControllerOption) StreamingController {
	if pivot == nil {
		panic("tiling: NewTileController requires a non-nil pivot")
	}
	c := &tileControllerImpl{
		pivot:      pivot,
		fov:        60,
		projection: SphereProjection{Radius: 1},
		loader:     SyntheticLoader{},
		workers:    4,
		queueSize:  256,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *tileControllerImpl) Pivot() game_object.GameObject {
	return c.pivot
}

func (c *tileControllerImpl) FieldOfView() float32 {
	return c.fov
}

func (c *tileControllerImpl) Zoom() uint32 {
	return c.zoom
}

func (c *tileControllerImpl) Focus() common.GeoCoordinate {
	return c.focus
}

func (c *tileControllerImpl) Loaded() []Tile {
	return common.Values(c.tiles)
}

func (c *tileControllerImpl) Pending() int {
	return len(c.pending)
}

func (c *tileControllerImpl) Generation() uint64 {
	return c.generation
}

func (c *tileControllerImpl) Update(target game_object.GameObject) {
	c.init()
	c.drain()

	pivot := c.pivot.WorldMatrix()
	if target != nil {
		targetWorld := target.WorldMatrix()
		var inv [16]float32
		if common.Invert4(inv[:], targetWorld[:]) {
			common.Mul4(pivot[:], inv[:], pivot[:])
		}
	}

	c.focus = c.projection.Focus(pivot)
	wanted := common.TileNeighbourhood(common.TileAt(c.focus, c.zoom), c.radius)
	c.evict(wanted)

	for _, id := range wanted {
		if _, ok := c.tiles[id]; ok {
			continue
		}
		if _, ok := c.pending[id]; ok {
			continue
		}
		if len(c.pending) >= c.queueSize || c.inFlight.Load() >= int64(c.queueSize) {
			break
		}
		c.request(id)
	}
}

func (c *tileControllerImpl) Dispose() error {
	if !c.initialized {
		return nil
	}
	c.cancel()

	var first error
	for _, t := range c.tiles {
		if err := c.release(t); err != nil && first == nil {
			first = err
		}
	}

	logger.Debugf("tiles: disposed generation %d (%d loaded, %d pending)", c.generation, len(c.tiles), len(c.pending))
	c.tiles = nil
	c.pending = nil
	c.results = nil
	c.initialized = false
	c.generation++
	return first
}

// init builds the per-generation state if Dispose (or nothing yet) cleared it.
func (c *tileControllerImpl) init() {
	if c.initialized {
		return
	}
	if !c.hasPool {
		c.pool = worker.NewDynamicWorkerPool(c.workers, c.queueSize, 1*time.Second)
		c.hasPool = true
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	// pending holds every undrained request of a generation and is capped at queueSize,
	// so a generation never posts more results than the buffer holds.
	c.results = make(chan tileResult, c.queueSize)
	c.tiles = make(map[common.TileID]Tile)
	c.pending = make(map[common.TileID]struct{})
	c.initialized = true
}

// drain folds finished loads into the tile set without blocking.
func (c *tileControllerImpl) drain() {
	for {
		select {
		case res := <-c.results:
			if res.generation != c.generation {
				continue
			}
			delete(c.pending, res.tile.ID)
			if res.err != nil {
				logger.Warnf("tiles: load %s failed: %v", res.tile.ID, res.err)
				continue
			}
			c.tiles[res.tile.ID] = res.tile
		default:
			return
		}
	}
}

// evict releases loaded tiles that fell out of the wanted set.
func (c *tileControllerImpl) evict(wanted []common.TileID) {
	keep := make(map[common.TileID]struct{}, len(wanted))
	for _, id := range wanted {
		keep[id] = struct{}{}
	}
	for id, t := range c.tiles {
		if _, ok := keep[id]; ok {
			continue
		}
		delete(c.tiles, id)
		if err := c.release(t); err != nil {
			logger.Warnf("tiles: %v", err)
		}
	}
}

// request submits one load to the worker pool.
func (c *tileControllerImpl) request(id common.TileID) {
	gen, ctx, results, loader := c.generation, c.ctx, c.results, c.loader

	c.pending[id] = struct{}{}
	c.inFlight.Add(1)
	taskID := c.nextTask
	c.nextTask++

	c.pool.SubmitTask(worker.Task{
		ID: taskID,
		Do: func() (any, error) {
			defer c.inFlight.Add(-1)
			data, err := loader.Load(ctx, id)
			select {
			case results <- tileResult{generation: gen, tile: Tile{ID: id, Data: data}, err: err}:
			case <-ctx.Done():
			}
			return nil, nil
		},
	})
}

func (c *tileControllerImpl) release(t Tile) error {
	r, ok := c.loader.(TileReleaser)
	if !ok {
		return nil
	}
	return errors.Wrapf(r.Release(t), "release tile %s", t.ID)
}
