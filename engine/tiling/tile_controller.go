package tiling

import (
	"github.com/Carmen-Shannon/oxy-map/common"
	"github.com/Carmen-Shannon/oxy-map/engine/game_object"
)

// TileController is the per-space collaborator that streams map tiles around the viewport.
//
// Update must never block: implementations fetch asynchronously and fold finished work in on
// later frames. Dispose releases every streamed tile; a controller must accept Update again
// after Dispose and rebuild its tile state from scratch.
type TileController interface {
	// Pivot returns the rig pivot that the space's camera and light are parented to.
	//
	// Returns:
	//   - game_object.GameObject: the pivot handle
	Pivot() game_object.GameObject

	// FieldOfView returns the camera field of view, in degrees, this controller streams for.
	//
	// Returns:
	//   - float32: the field of view in degrees
	FieldOfView() float32

	// Update refreshes the streamed tile set around the focus point relative to target.
	//
	// Parameters:
	//   - target: the container the tiles are placed in
	Update(target game_object.GameObject)

	// Dispose releases all streamed tiles and cancels outstanding requests.
	//
	// Returns:
	//   - error: the first release failure reported by the loader, if any
	Dispose() error
}

// Tile is a loaded tile payload.
type Tile struct {
	ID   common.TileID
	Data []byte
}

// StreamingController is the TileController implemented by this package, with read access
// to the streaming state for diagnostics and tests.
type StreamingController interface {
	TileController

	// Zoom returns the tile zoom level streamed by the controller.
	//
	// Returns:
	//   - uint32: the zoom level
	Zoom() uint32

	// Focus returns the coordinate the last Update centered on.
	//
	// Returns:
	//   - common.GeoCoordinate: the focus coordinate
	Focus() common.GeoCoordinate

	// Loaded returns the tiles currently held, in no particular order.
	//
	// Returns:
	//   - []Tile: the loaded tiles
	Loaded() []Tile

	// Pending returns the number of requests of the current generation still in flight.
	//
	// Returns:
	//   - int: outstanding requests
	Pending() int

	// Generation returns the number of Dispose calls that released state.
	// Results of requests made before a Dispose are discarded.
	//
	// Returns:
	//   - uint64: the current generation
	Generation() uint64
}
