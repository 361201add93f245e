// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "fmt"

// GeoCoordinate is an immutable geographic position expressed in degrees.
// It is passed by value into space transitions and tile lookups.
type GeoCoordinate struct {
	// Latitude in degrees, valid range [-90, 90].
	Latitude float64
	// Longitude in degrees, valid range [-180, 180].
	Longitude float64
	// Elevation above the reference ellipsoid in meters. Zero when unknown.
	Elevation float64
}

// NewGeoCoordinate creates a GeoCoordinate at zero elevation.
//
// Parameters:
//   - latitude: latitude in degrees
//   - longitude: longitude in degrees
//
// Returns:
//   - GeoCoordinate: the coordinate value
func NewGeoCoordinate(latitude, longitude float64) GeoCoordinate {
	return GeoCoordinate{Latitude: latitude, Longitude: longitude}
}

// Valid reports whether latitude and longitude are within their geographic ranges.
//
// Returns:
//   - bool: true if both components are in range
func (c GeoCoordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

func (c GeoCoordinate) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Latitude, c.Longitude)
}

// TileID identifies a map tile in the XYZ (slippy map) scheme.
type TileID struct {
	X uint32
	Y uint32
	Z uint32
}

// Valid reports whether the tile coordinates fit within its zoom level.
//
// Returns:
//   - bool: true if X and Y are within [0, 2^Z)
func (t TileID) Valid() bool {
	return t.Z < 32 && t.X < (1<<t.Z) && t.Y < (1<<t.Z)
}

func (t TileID) String() string {
	return fmt.Sprintf("%d/%d/%d", t.Z, t.X, t.Y)
}
