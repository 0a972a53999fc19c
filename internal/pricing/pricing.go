// Package pricing resolves current per-gallon fuel prices for catalog
// stations from the GasBuddy GraphQL API. Lookups never fail past this
// package: any error degrades to the catalog's fallback price table.
package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rubiojr/gascost/internal/catalog"
)

const (
	DefaultTimeout = 10 * time.Second

	defaultBaseURL = "https://www.gasbuddy.com/graphql"
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

const stationQuery = `
query GetStation($id: ID!) {
    station(id: $id) {
        prices {
            credit {
                nickname
                postedTime
                price
            }
        }
    }
}
`

// Resolver resolves a per-gallon price for a station identifier. The live
// return reports whether the price came from the pricing service or from the
// fallback table.
type Resolver interface {
	Price(ctx context.Context, stationID string) (price float64, live bool)
}

// GasBuddyResolver fetches prices from the GasBuddy GraphQL endpoint.
type GasBuddyResolver struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewGasBuddyResolver creates a resolver with the default endpoint and a
// bounded request timeout.
func NewGasBuddyResolver(logger *slog.Logger) *GasBuddyResolver {
	return &GasBuddyResolver{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: logger,
	}
}

type graphqlRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

// priceResponse mirrors the shape of the GasBuddy station query result. The
// price is decoded as json.Number so both numeric and quoted values parse.
type priceResponse struct {
	Data struct {
		Station *struct {
			Prices []struct {
				Credit struct {
					Nickname   string      `json:"nickname"`
					PostedTime string      `json:"postedTime"`
					Price      json.Number `json:"price"`
				} `json:"credit"`
			} `json:"prices"`
		} `json:"station"`
	} `json:"data"`
}

// Price returns the first posted credit price for the station, or the
// fallback table price when the lookup fails in any way.
func (r *GasBuddyResolver) Price(ctx context.Context, stationID string) (float64, bool) {
	price, err := r.fetchPrice(ctx, stationID)
	if err != nil {
		r.log.Debug("price lookup failed, using fallback price", "station_id", stationID, "error", err)
		return catalog.FallbackPrice(stationID), false
	}
	return price, true
}

func (r *GasBuddyResolver) fetchPrice(ctx context.Context, stationID string) (float64, error) {
	payload, err := json.Marshal(graphqlRequest{
		Query:     stationQuery,
		Variables: map[string]string{"id": stationID},
	})
	if err != nil {
		return 0, fmt.Errorf("error marshaling query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("error fetching price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("error reading response body: %w", err)
	}

	var decoded priceResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return 0, fmt.Errorf("error unmarshaling JSON: %w", err)
	}

	station := decoded.Data.Station
	if station == nil || len(station.Prices) == 0 {
		return 0, fmt.Errorf("no prices for station %s", stationID)
	}

	price, err := station.Prices[0].Credit.Price.Float64()
	if err != nil {
		return 0, fmt.Errorf("error parsing price %q: %w", station.Prices[0].Credit.Price, err)
	}

	return price, nil
}
