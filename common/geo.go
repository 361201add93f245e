package common

import "math"

// EarthRadius is the WGS84 equatorial radius in meters, used by the spherical mercator projection.
const EarthRadius = 6378137.0

// MaxMercatorLatitude is the latitude at which web mercator is clipped to a square world.
const MaxMercatorLatitude = 85.05112878

// ClampCoordinate returns the coordinate with latitude clamped to the mercator limits
// and longitude wrapped into [-180, 180).
//
// Parameters:
//   - c: the coordinate to normalize
//
// Returns:
//   - GeoCoordinate: the normalized coordinate
func ClampCoordinate(c GeoCoordinate) GeoCoordinate {
	lat := math.Max(-MaxMercatorLatitude, math.Min(MaxMercatorLatitude, c.Latitude))
	lon := math.Mod(c.Longitude+180, 360)
	if lon < 0 {
		lon += 360
	}
	return GeoCoordinate{Latitude: lat, Longitude: lon - 180, Elevation: c.Elevation}
}

// MercatorMeters projects a coordinate onto the spherical mercator plane.
// X grows east and Y grows north, both in meters from (0, 0).
//
// Parameters:
//   - c: the coordinate to project
//
// Returns:
//   - x, y: projected position in meters
func MercatorMeters(c GeoCoordinate) (x, y float64) {
	c = ClampCoordinate(c)
	x = EarthRadius * c.Longitude * math.Pi / 180
	y = EarthRadius * math.Log(math.Tan(math.Pi/4+c.Latitude*math.Pi/360))
	return x, y
}

// MercatorCoordinate inverts MercatorMeters.
//
// Parameters:
//   - x, y: projected position in meters
//
// Returns:
//   - GeoCoordinate: the coordinate at that position
func MercatorCoordinate(x, y float64) GeoCoordinate {
	lon := x / EarthRadius * 180 / math.Pi
	lat := (2*math.Atan(math.Exp(y/EarthRadius)) - math.Pi/2) * 180 / math.Pi
	return GeoCoordinate{Latitude: lat, Longitude: lon}
}

// TileAt returns the XYZ tile containing the coordinate at the given zoom level.
// Reference: https://wiki.openstreetmap.org/wiki/Slippy_map_tilenames
//
// Parameters:
//   - c: the coordinate to look up
//   - zoom: the zoom level (0-31)
//
// Returns:
//   - TileID: the tile containing the coordinate
func TileAt(c GeoCoordinate, zoom uint32) TileID {
	c = ClampCoordinate(c)
	n := math.Exp2(float64(zoom))
	latRad := c.Latitude * math.Pi / 180

	x := math.Floor((c.Longitude + 180) / 360 * n)
	y := math.Floor((1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * n)

	maxIndex := n - 1
	x = math.Max(0, math.Min(maxIndex, x))
	y = math.Max(0, math.Min(maxIndex, y))
	return TileID{X: uint32(x), Y: uint32(y), Z: zoom}
}

// TileNeighbourhood returns the square block of tiles within radius of center.
// X wraps around the antimeridian and Y is clipped at the poles. The center tile is always first.
//
// Parameters:
//   - center: the tile at the middle of the block
//   - radius: number of tiles to include on each side of center
//
// Returns:
//   - []TileID: the tiles in the neighbourhood
func TileNeighbourhood(center TileID, radius int) []TileID {
	n := int64(1) << center.Z
	tiles := make([]TileID, 0, (2*radius+1)*(2*radius+1))
	tiles = append(tiles, center)
	seen := map[TileID]struct{}{center: {}}

	for dy := -radius; dy <= radius; dy++ {
		y := int64(center.Y) + int64(dy)
		if y < 0 || y >= n {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := ((int64(center.X)+int64(dx))%n + n) % n
			id := TileID{X: uint32(x), Y: uint32(y), Z: center.Z}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			tiles = append(tiles, id)
		}
	}
	return tiles
}
