package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rubiojr/gascost/pkg/geo"
)

var (
	origin = geo.Coordinates{Lat: 29.4763476, Lng: -81.2089708}
	dest   = geo.Coordinates{Lat: 29.4756055, Lng: -81.2258978}
)

func newTestResolver(t *testing.T, handler http.HandlerFunc) *HereResolver {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	resolver := NewHereResolver("test-key")
	resolver.baseURL = srv.URL
	return resolver
}

func TestDrivingDistanceMiles(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "car", q.Get("transportMode"))
		require.Equal(t, "imperial", q.Get("units"))
		require.Equal(t, "summary", q.Get("return"))
		require.Equal(t, "test-key", q.Get("apiKey"))
		require.NotEmpty(t, q.Get("origin"))
		require.NotEmpty(t, q.Get("destination"))

		_, _ = w.Write([]byte(`{"routes":[{"sections":[{"summary":{"length":16090}}]}]}`))
	})

	miles, err := resolver.DrivingDistanceMiles(context.Background(), origin, dest)
	require.NoError(t, err)
	require.InDelta(t, 10.0, miles, 1e-9)
}

func TestDrivingDistanceMilesServerError(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})

	_, err := resolver.DrivingDistanceMiles(context.Background(), origin, dest)
	require.Error(t, err)
	require.ErrorContains(t, err, "unexpected status code")
}

func TestDrivingDistanceMilesNoRoute(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty routes", `{"routes":[]}`},
		{"no sections", `{"routes":[{"sections":[]}]}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(test.body))
			})

			_, err := resolver.DrivingDistanceMiles(context.Background(), origin, dest)
			require.Error(t, err)
		})
	}
}

func TestDrivingDistanceMilesMalformedBody(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := resolver.DrivingDistanceMiles(context.Background(), origin, dest)
	require.Error(t, err)
}
