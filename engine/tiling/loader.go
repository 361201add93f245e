package tiling

import (
	"context"
	"time"

	"github.com/Carmen-Shannon/oxy-map/common"
)

// TileLoader fetches the payload of a single tile. It is called from worker goroutines and
// must honour ctx cancellation, which happens when the controller is disposed.
type TileLoader interface {
	Load(ctx context.Context, id common.TileID) ([]byte, error)
}

// TileReleaser is implemented by loaders that hold per-tile resources (GPU buffers, file
// handles, cache pins) needing explicit release when a tile leaves the controller.
type TileReleaser interface {
	Release(tile Tile) error
}

// TileLoaderFunc adapts a function to TileLoader.
type TileLoaderFunc func(ctx context.Context, id common.TileID) ([]byte, error)

func (f TileLoaderFunc) Load(ctx context.Context, id common.TileID) ([]byte, error) {
	return f(ctx, id)
}

// SyntheticLoader produces placeholder payloads ("z/x/y") after an optional delay.
// It stands in for a real tile source in headless sessions.
type SyntheticLoader struct {
	Latency time.Duration
}

func (l SyntheticLoader) Load(ctx context.Context, id common.TileID) ([]byte, error) {
	if l.Latency > 0 {
		timer := time.NewTimer(l.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return []byte(id.String()), nil
}
