// Package server is the web shell around the ranking pipeline: a form that
// captures a vehicle and a location, and a results table with the ranked
// stations.
package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/httprate"

	"github.com/rubiojr/gascost/internal/catalog"
	"github.com/rubiojr/gascost/internal/geocode"
	"github.com/rubiojr/gascost/internal/ranking"
	"github.com/rubiojr/gascost/internal/store"
	"github.com/rubiojr/gascost/pkg/geo"
)

const rateLimitPerMinute = 20

// Server holds the collaborators of the web shell. store may be nil, in
// which case searches are not logged.
type Server struct {
	ranker   *ranking.Ranker
	geocoder *geocode.Geocoder
	store    *store.Store
	logger   *httplog.Logger
}

func New(ranker *ranking.Ranker, geocoder *geocode.Geocoder, st *store.Store, logger *httplog.Logger) *Server {
	return &Server{
		ranker:   ranker,
		geocoder: geocoder,
		store:    st,
		logger:   logger,
	}
}

// Handler returns the HTTP handler with the standard middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(httprate.LimitByIP(rateLimitPerMinute, time.Minute))

	r.Get("/", s.handleIndex)
	r.Post("/", s.handleIndex)
	r.Get("/health", s.handleHealth)

	return r
}

type vehicleOption struct {
	Key   string
	Label string
}

type pageData struct {
	Vehicles []vehicleOption
	Results  []ranking.StationResult
	Error    string
}

func vehicleOptions() []vehicleOption {
	keys := catalog.VehicleKeys()
	opts := make([]vehicleOption, 0, len(keys))
	for _, key := range keys {
		vehicle, _ := catalog.VehicleByKey(key)
		opts = append(opts, vehicleOption{Key: key, Label: vehicle.Name})
	}
	return opts
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{Vehicles: vehicleOptions()}

	if r.Method == http.MethodPost {
		s.handleRankRequest(r, &data)
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error("Error rendering page", "error", err)
	}
}

// handleRankRequest validates the form, runs the ranking and fills data with
// either results or a user-facing error message.
func (s *Server) handleRankRequest(r *http.Request, data *pageData) {
	if err := r.ParseForm(); err != nil {
		data.Error = "Invalid form submission."
		return
	}

	userCoords, errMsg := s.resolveLocation(r)
	if errMsg != "" {
		data.Error = errMsg
		return
	}

	vehicleKey := r.FormValue("vehicle")
	vehicle, ok := catalog.VehicleByKey(vehicleKey)
	if !ok {
		data.Error = "Unknown vehicle selection."
		return
	}

	data.Results = s.ranker.Rank(r.Context(), catalog.Stations(), userCoords, vehicle)

	if s.store != nil {
		if err := s.store.LogSearch(r.Context(), userCoords.Lat, userCoords.Lng, vehicleKey); err != nil {
			s.logger.Error("Failed to log search location", "error", err)
		}
	}
}

// resolveLocation extracts user coordinates from either the browser
// geolocation field or a manually entered, geocoded address. A non-empty
// second return is the message to show the user.
func (s *Server) resolveLocation(r *http.Request) (geo.Coordinates, string) {
	switch r.FormValue("location_choice") {
	case "browser":
		coords := r.FormValue("coords")
		if coords == "" {
			return geo.Coordinates{}, "Location data not provided. Please allow location services in your browser."
		}
		userCoords, err := parseCoords(coords)
		if err != nil {
			return geo.Coordinates{}, "Invalid coordinates provided."
		}
		return userCoords, ""
	case "manual":
		address := r.FormValue("manual_address")
		if address == "" {
			return geo.Coordinates{}, "Address not provided. Please enter a valid address."
		}
		userCoords, err := s.geocoder.Lookup(address)
		if err != nil {
			s.logger.Debug("Geocoding failed", "address", address, "error", err)
			return geo.Coordinates{}, "Could not determine location from the provided address. Please try again."
		}
		return userCoords, ""
	default:
		return geo.Coordinates{}, "Could not determine your location."
	}
}

// parseCoords parses a "lat,lng" pair as filled in by the browser
// geolocation script.
func parseCoords(value string) (geo.Coordinates, error) {
	parts := strings.SplitN(value, ",", 2)
	if len(parts) != 2 {
		return geo.Coordinates{}, fmt.Errorf("expected lat,lng pair, got %q", value)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geo.Coordinates{}, fmt.Errorf("error parsing latitude: %w", err)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.Coordinates{}, fmt.Errorf("error parsing longitude: %w", err)
	}

	coords := geo.Coordinates{Lat: lat, Lng: lng}
	if !coords.Valid() {
		return geo.Coordinates{}, fmt.Errorf("coordinates out of range: %q", value)
	}

	return coords, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
		s.logger.Error("Error writing health response", "error", err)
	}
}
