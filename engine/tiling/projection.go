package tiling

import (
	"math"

	"github.com/Carmen-Shannon/oxy-map/common"
)

// Projection maps between geographic coordinates and a space's scene units.
// Focus derives the coordinate a rig pivot is looking at, given the pivot's matrix
// expressed in the target container's local space.
type Projection interface {
	// Project converts a coordinate to a position in target-local scene units.
	//
	// Parameters:
	//   - coord: the coordinate to project
	//
	// Returns:
	//   - [3]float32: the position
	Project(coord common.GeoCoordinate) [3]float32

	// Focus returns the coordinate the pivot frames.
	//
	// Parameters:
	//   - pivot: the pivot matrix relative to the target container (column-major)
	//
	// Returns:
	//   - common.GeoCoordinate: the focused coordinate
	Focus(pivot [16]float32) common.GeoCoordinate
}

// SphereProjection places coordinates on a sphere centered at the target origin.
// Latitude/longitude map to elevation/azimuth of the orbit rig, so a pivot rotated by
// (-lat, lon, 0) frames the coordinate along its local +Z axis.
type SphereProjection struct {
	Radius float32
}

func (p SphereProjection) Project(coord common.GeoCoordinate) [3]float32 {
	lat := float64(common.DegToRad(coord.Latitude))
	lon := float64(common.DegToRad(coord.Longitude))
	r := float64(p.Radius)
	return [3]float32{
		float32(r * math.Cos(lat) * math.Sin(lon)),
		float32(r * math.Sin(lat)),
		float32(r * math.Cos(lat) * math.Cos(lon)),
	}
}

func (p SphereProjection) Focus(pivot [16]float32) common.GeoCoordinate {
	x, y, z := float64(pivot[8]), float64(pivot[9]), float64(pivot[10])
	length := math.Sqrt(x*x + y*y + z*z)
	if length == 0 {
		return common.GeoCoordinate{}
	}
	lat := math.Asin(y/length) * 180 / math.Pi
	lon := math.Atan2(x, z) * 180 / math.Pi
	return common.GeoCoordinate{Latitude: lat, Longitude: lon}
}

// PlanarProjection lays the map out flat in web mercator meters around an origin coordinate.
// East is +X and north is -Z; one scene unit is Scale meters.
type PlanarProjection struct {
	Origin common.GeoCoordinate
	Scale  float64
}

func (p PlanarProjection) scale() float64 {
	if p.Scale <= 0 {
		return 1
	}
	return p.Scale
}

func (p PlanarProjection) Project(coord common.GeoCoordinate) [3]float32 {
	ox, oy := common.MercatorMeters(p.Origin)
	x, y := common.MercatorMeters(coord)
	s := p.scale()
	return [3]float32{float32((x - ox) / s), 0, float32(-(y - oy) / s)}
}

func (p PlanarProjection) Focus(pivot [16]float32) common.GeoCoordinate {
	ox, oy := common.MercatorMeters(p.Origin)
	s := p.scale()
	return common.MercatorCoordinate(ox+float64(pivot[12])*s, oy-float64(pivot[14])*s)
}
