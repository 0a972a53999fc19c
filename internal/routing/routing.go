// Package routing resolves driving distance between two coordinates using
// the HERE routing API. Unlike pricing, a failed lookup is reported to the
// caller, which is expected to fall back to great-circle distance.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rubiojr/gascost/pkg/geo"
)

// DefaultTimeout bounds every routing request. The routing call sits on the
// ranking hot path, so it must never hang.
const DefaultTimeout = 10 * time.Second

const defaultBaseURL = "https://router.hereapi.com/v8/routes"

// Resolver resolves car driving distance in miles between two points.
type Resolver interface {
	DrivingDistanceMiles(ctx context.Context, origin, dest geo.Coordinates) (float64, error)
}

// HereResolver queries the HERE v8 routes endpoint.
type HereResolver struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHereResolver creates a resolver using the given API key. An empty key is
// accepted; requests will fail and callers fall back to geodesic distance.
func NewHereResolver(apiKey string) *HereResolver {
	return &HereResolver{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// routesResponse mirrors the summary-only HERE response.
type routesResponse struct {
	Routes []struct {
		Sections []struct {
			Summary struct {
				Length float64 `json:"length"`
			} `json:"summary"`
		} `json:"sections"`
	} `json:"routes"`
}

// DrivingDistanceMiles returns the car-mode driving distance from origin to
// dest in miles.
func (r *HereResolver) DrivingDistanceMiles(ctx context.Context, origin, dest geo.Coordinates) (float64, error) {
	q := url.Values{}
	q.Set("transportMode", "car")
	q.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	q.Set("destination", fmt.Sprintf("%f,%f", dest.Lat, dest.Lng))
	q.Set("units", "imperial")
	q.Set("return", "summary")
	q.Set("apiKey", r.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("error fetching route: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("error reading response body: %w", err)
	}

	var decoded routesResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return 0, fmt.Errorf("error unmarshaling JSON: %w", err)
	}

	if len(decoded.Routes) == 0 || len(decoded.Routes[0].Sections) == 0 {
		return 0, fmt.Errorf("no route between %f,%f and %f,%f", origin.Lat, origin.Lng, dest.Lat, dest.Lng)
	}

	return decoded.Routes[0].Sections[0].Summary.Length / geo.MetersPerMile, nil
}
