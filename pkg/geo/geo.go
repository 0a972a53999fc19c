// Package geo provides the coordinate type shared by the station catalog and
// the distance resolvers, and a great-circle distance helper used when the
// routing service is unavailable.
package geo

import "github.com/tkrajina/gpxgo/gpx"

// MetersPerMile matches the divisor the routing service responses are
// converted with.
const MetersPerMile = 1609

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Valid reports whether the pair is within latitude [-90, 90] and
// longitude [-180, 180].
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// DistanceMiles returns the great-circle distance between two points in
// miles. Used as the fallback when driving distance cannot be resolved.
func DistanceMiles(a, b Coordinates) float64 {
	return gpx.Distance2D(a.Lat, a.Lng, b.Lat, b.Lng, true) / MetersPerMile
}
