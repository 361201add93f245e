package tiling

import (
	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Carmen-Shannon/oxy-map/common"
)

// TileControllerOption is a functional option for configuring a tile controller during construction.
type TileControllerOption func(*tileControllerImpl)

// WithFieldOfView sets the camera field of view, in degrees, reported by the controller.
// Non-positive values keep the default of 60.
//
// Parameters:
//   - fov: the field of view in degrees
//
// Returns:
//   - TileControllerOption: functional option to set the field of view
func WithFieldOfView(fov float32) TileControllerOption {
	return func(c *tileControllerImpl) {
		if fov > 0 {
			c.fov = fov
		}
	}
}

// WithZoom sets the tile zoom level the controller streams.
//
// Parameters:
//   - zoom: the zoom level
//
// Returns:
//   - TileControllerOption: functional option to set the zoom level
func WithZoom(zoom uint32) TileControllerOption {
	return func(c *tileControllerImpl) {
		c.zoom = zoom
	}
}

// WithRadius sets how many neighbour tiles are requested on each side of the focus tile.
// Negative values are treated as zero.
//
// Parameters:
//   - radius: the neighbourhood radius in tiles
//
// Returns:
//   - TileControllerOption: functional option to set the neighbourhood radius
func WithRadius(radius int) TileControllerOption {
	return func(c *tileControllerImpl) {
		c.radius = max(radius, 0)
	}
}

// WithProjection sets the projection used to derive the focus coordinate from the pivot.
//
// Parameters:
//   - projection: the projection
//
// Returns:
//   - TileControllerOption: functional option to set the projection
func WithProjection(projection Projection) TileControllerOption {
	return func(c *tileControllerImpl) {
		if projection != nil {
			c.projection = projection
		}
	}
}

// WithLoader sets the loader tile payloads are fetched through.
//
// Parameters:
//   - loader: the tile loader
//
// Returns:
//   - TileControllerOption: functional option to set the loader
func WithLoader(loader TileLoader) TileControllerOption {
	return func(c *tileControllerImpl) {
		if loader != nil {
			c.loader = loader
		}
	}
}

// WithWorkers sets the worker count of the pool created on first Update.
// Ignored when WithWorkerPool supplies a pool.
//
// Parameters:
//   - workers: the number of workers
//
// Returns:
//   - TileControllerOption: functional option to set the worker count
func WithWorkers(workers int) TileControllerOption {
	return func(c *tileControllerImpl) {
		c.workers = common.Coalesce(max(workers, 0), c.workers)
	}
}

// WithQueueSize caps the number of loads in flight, which is also the task queue size of a
// pool created by the controller.
//
// Parameters:
//   - size: the maximum number of outstanding loads
//
// Returns:
//   - TileControllerOption: functional option to set the queue size
func WithQueueSize(size int) TileControllerOption {
	return func(c *tileControllerImpl) {
		c.queueSize = common.Coalesce(max(size, 0), c.queueSize)
	}
}

// WithWorkerPool shares an existing worker pool instead of creating one. Its queue must
// hold at least the controller's queue size.
//
// Parameters:
//   - pool: the worker pool
//
// Returns:
//   - TileControllerOption: functional option to set the worker pool
func WithWorkerPool(pool worker.DynamicWorkerPool) TileControllerOption {
	return func(c *tileControllerImpl) {
		c.pool = pool
		c.hasPool = true
	}
}
