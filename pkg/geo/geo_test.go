package geo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tkrajina/gpxgo/gpx"

	"github.com/rubiojr/gascost/pkg/geo"
)

// Two stations on State Route 100 in Palm Coast, about a mile apart.
var (
	wawa     = geo.Coordinates{Lat: 29.4763476, Lng: -81.2089708}
	racetrac = geo.Coordinates{Lat: 29.4756055, Lng: -81.2258978}
)

func TestDistanceMiles(t *testing.T) {
	d := geo.DistanceMiles(wawa, racetrac)

	require.InDelta(t, 1.02, d, 0.03)
	require.InDelta(t, gpx.Distance2D(wawa.Lat, wawa.Lng, racetrac.Lat, racetrac.Lng, true)/geo.MetersPerMile, d, 1e-9)
}

func TestDistanceMilesSymmetric(t *testing.T) {
	require.InDelta(t, geo.DistanceMiles(wawa, racetrac), geo.DistanceMiles(racetrac, wawa), 1e-9)
}

func TestDistanceMilesSamePoint(t *testing.T) {
	require.InDelta(t, 0, geo.DistanceMiles(wawa, wawa), 1e-9)
}

func TestCoordinatesValid(t *testing.T) {
	tests := []struct {
		coords geo.Coordinates
		valid  bool
	}{
		{geo.Coordinates{Lat: 29.47, Lng: -81.21}, true},
		{geo.Coordinates{Lat: 90, Lng: 180}, true},
		{geo.Coordinates{Lat: -90, Lng: -180}, true},
		{geo.Coordinates{Lat: 90.1, Lng: 0}, false},
		{geo.Coordinates{Lat: 0, Lng: -180.5}, false},
	}

	for _, test := range tests {
		require.Equal(t, test.valid, test.coords.Valid(), "coords %+v", test.coords)
	}
}
