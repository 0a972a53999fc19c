// Package geocode resolves free-text addresses to coordinates via Nominatim,
// caching results to stay friendly to the public server.
package geocode

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/muesli/gominatim"
	"github.com/patrickmn/go-cache"

	"github.com/rubiojr/gascost/pkg/geo"
)

const nominatimServer = "https://nominatim.openstreetmap.org/"

const (
	cacheExpiry  = 30 * time.Minute
	cacheCleanup = 90 * time.Minute
)

// Geocoder resolves addresses with an in-memory result cache.
type Geocoder struct {
	cache *cache.Cache
}

func New() *Geocoder {
	return &Geocoder{
		cache: cache.New(cacheExpiry, cacheCleanup),
	}
}

// Lookup resolves a free-text address to coordinates.
func (g *Geocoder) Lookup(location string) (geo.Coordinates, error) {
	gominatim.SetServer(nominatimServer)

	if cached, ok := g.cache.Get(location); ok {
		return resultToCoords(cached.(gominatim.SearchResult))
	}

	query := gominatim.SearchQuery{
		Q: url.QueryEscape(location),
	}

	results, err := query.Get()
	if err != nil {
		return geo.Coordinates{}, fmt.Errorf("geocoding error: %w", err)
	}
	if len(results) == 0 {
		return geo.Coordinates{}, fmt.Errorf("no results found for location: %s", location)
	}

	g.cache.Set(location, results[0], cache.DefaultExpiration)

	return resultToCoords(results[0])
}

func resultToCoords(result gominatim.SearchResult) (geo.Coordinates, error) {
	lat, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return geo.Coordinates{}, fmt.Errorf("error parsing latitude: %w", err)
	}

	lng, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return geo.Coordinates{}, fmt.Errorf("error parsing longitude: %w", err)
	}

	return geo.Coordinates{Lat: lat, Lng: lng}, nil
}
