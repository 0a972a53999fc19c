package server_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/httplog/v2"
	"github.com/stretchr/testify/require"

	"github.com/rubiojr/gascost/internal/geocode"
	"github.com/rubiojr/gascost/internal/ranking"
	"github.com/rubiojr/gascost/internal/server"
	"github.com/rubiojr/gascost/pkg/geo"
)

// Fixed price, no routes: the whole catalog ranks on fallback data, which is
// all the handler tests need.
type fixedPrices struct{}

func (fixedPrices) Price(_ context.Context, _ string) (float64, bool) { return 3.00, true }

type noRoutes struct{}

func (noRoutes) DrivingDistanceMiles(_ context.Context, _, _ geo.Coordinates) (float64, error) {
	return 0, errors.New("routing unavailable")
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	logger := httplog.NewLogger("gascost-test", httplog.Options{
		LogLevel: slog.LevelError,
		Concise:  true,
	})

	ranker := ranking.New(fixedPrices{}, noRoutes{}, logger.Logger)
	srv := server.New(ranker, geocode.New(), nil, logger)
	return srv.Handler()
}

func postForm(t *testing.T, handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestIndexForm(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Gas Station Cost Calculator")
	require.Contains(t, body, `value="audi"`)
	require.Contains(t, body, `value="bmw"`)
	require.NotContains(t, body, "<table>")
}

func TestRankWithBrowserCoords(t *testing.T) {
	handler := newTestHandler(t)

	rec := postForm(t, handler, url.Values{
		"location_choice": {"browser"},
		"coords":          {"29.4763476,-81.2089708"},
		"vehicle":         {"audi"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "WAWA")
	require.Contains(t, body, "Costco Daytona")
	require.Contains(t, body, `class="best-total"`)
	require.Contains(t, body, "$3.00")
}

func TestRankMissingCoords(t *testing.T) {
	handler := newTestHandler(t)

	rec := postForm(t, handler, url.Values{
		"location_choice": {"browser"},
		"vehicle":         {"audi"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Location data not provided")
}

func TestRankInvalidCoords(t *testing.T) {
	handler := newTestHandler(t)

	for _, coords := range []string{"not-coords", "95.0,-81.2", "29.47"} {
		rec := postForm(t, handler, url.Values{
			"location_choice": {"browser"},
			"coords":          {coords},
			"vehicle":         {"audi"},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid coordinates", "coords %q", coords)
	}
}

func TestRankMissingAddress(t *testing.T) {
	handler := newTestHandler(t)

	rec := postForm(t, handler, url.Values{
		"location_choice": {"manual"},
		"vehicle":         {"audi"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Address not provided")
}

func TestRankUnknownVehicle(t *testing.T) {
	handler := newTestHandler(t)

	rec := postForm(t, handler, url.Values{
		"location_choice": {"browser"},
		"coords":          {"29.4763476,-81.2089708"},
		"vehicle":         {"tesla"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Unknown vehicle selection")
}

func TestHealth(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
