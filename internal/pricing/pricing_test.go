package pricing

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rubiojr/gascost/internal/catalog"
)

func newTestResolver(t *testing.T, handler http.HandlerFunc) *GasBuddyResolver {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	resolver := NewGasBuddyResolver(slog.New(slog.NewTextHandler(io.Discard, nil)))
	resolver.baseURL = srv.URL
	return resolver
}

func TestPriceLive(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var req graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "202167", req.Variables["id"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"station":{"prices":[{"credit":{"nickname":"pat","postedTime":"2026-08-28T09:00:00Z","price":3.09}}]}}}`))
	})

	price, live := resolver.Price(context.Background(), "202167")
	require.True(t, live)
	require.InDelta(t, 3.09, price, 1e-9)
}

func TestPriceUsesFirstEntry(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"station":{"prices":[{"credit":{"price":2.95}},{"credit":{"price":3.45}}]}}}`))
	})

	price, live := resolver.Price(context.Background(), "192722")
	require.True(t, live)
	require.InDelta(t, 2.95, price, 1e-9)
}

func TestPriceFallbackOnServerError(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	price, live := resolver.Price(context.Background(), "202167")
	require.False(t, live)
	require.InDelta(t, 10.00, price, 1e-9)
}

func TestPriceFallbackOnMalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>rate limited</html>`},
		{"null station", `{"data":{"station":null}}`},
		{"empty prices", `{"data":{"station":{"prices":[]}}}`},
		{"quoted price", `{"data":{"station":{"prices":[{"credit":{"price":"3.09"}}]}}}`},
		{"missing price", `{"data":{"station":{"prices":[{"credit":{"nickname":"pat"}}]}}}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(test.body))
			})

			price, live := resolver.Price(context.Background(), "202167")
			require.False(t, live)
			require.InDelta(t, 10.00, price, 1e-9)
		})
	}
}

func TestPriceFallbackOnUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	resolver := NewGasBuddyResolver(slog.New(slog.NewTextHandler(io.Discard, nil)))
	resolver.baseURL = srv.URL

	price, live := resolver.Price(context.Background(), "unknown-station")
	require.False(t, live)
	require.InDelta(t, catalog.DefaultFallbackPrice, price, 1e-9)
}
