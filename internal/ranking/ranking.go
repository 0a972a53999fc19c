// Package ranking runs the per-station cost aggregation over the whole
// station directory and marks the cheapest option under each of the three
// cost criteria.
package ranking

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/rubiojr/gascost/internal/catalog"
	"github.com/rubiojr/gascost/internal/pricing"
	"github.com/rubiojr/gascost/internal/routing"
	"github.com/rubiojr/gascost/pkg/fuel"
	"github.com/rubiojr/gascost/pkg/geo"
)

// Highlight marks a result as the cheapest under one criterion. The values
// double as CSS classes in the web results table.
type Highlight string

const (
	HighlightNone  Highlight = ""
	HighlightTotal Highlight = "best-total"
	HighlightCar   Highlight = "best-car"
	HighlightCans  Highlight = "best-cans"
)

// Source records whether a resolved value came from the live service or a
// fallback.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// StationResult is the full cost breakdown for one station.
type StationResult struct {
	Station          string
	GasPrice         float64
	DistanceMiles    float64
	TravelCost       float64
	CarFillCost      float64
	CansFillCost     float64
	CombinedFillCost float64
	TotalCost        float64
	CarTotal         float64
	CansTotal        float64
	Highlight        Highlight
	PriceSource      Source
	DistanceSource   Source
}

// Ranker aggregates price and distance lookups into comparable cost figures.
type Ranker struct {
	prices pricing.Resolver
	routes routing.Resolver
	log    *slog.Logger
}

func New(prices pricing.Resolver, routes routing.Resolver, logger *slog.Logger) *Ranker {
	return &Ranker{
		prices: prices,
		routes: routes,
		log:    logger,
	}
}

// Aggregate resolves price and driving distance for one station concurrently
// and computes the cost breakdown for the given vehicle. A failed distance
// lookup falls back to the great-circle distance.
func (r *Ranker) Aggregate(ctx context.Context, station catalog.Station, origin geo.Coordinates, vehicle catalog.Vehicle) StationResult {
	var (
		price     float64
		priceLive bool
		distance  float64
		distErr   error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		price, priceLive = r.prices.Price(ctx, station.GasBuddyID)
	}()
	go func() {
		defer wg.Done()
		distance, distErr = r.routes.DrivingDistanceMiles(ctx, origin, station.Coords)
	}()
	wg.Wait()

	distSource := SourceLive
	if distErr != nil {
		distance = geo.DistanceMiles(origin, station.Coords)
		distSource = SourceFallback
		r.log.Debug("distance lookup failed, using geodesic distance",
			"station", station.Name, "error", distErr)
	}

	priceSource := SourceLive
	if !priceLive {
		priceSource = SourceFallback
	}

	travelCost := fuel.TravelCost(distance, price, vehicle.MPG)
	carFillCost := fuel.CarFillCost(price, vehicle.TankGallons)
	cansFillCost := fuel.CansFillCost(price, fuel.GasCansVolume)
	combinedFillCost := fuel.CombinedFillCost(price, vehicle.TankGallons, fuel.GasCansVolume)

	return StationResult{
		Station:          station.Name,
		GasPrice:         price,
		DistanceMiles:    distance,
		TravelCost:       travelCost,
		CarFillCost:      carFillCost,
		CansFillCost:     cansFillCost,
		CombinedFillCost: combinedFillCost,
		TotalCost:        travelCost + combinedFillCost,
		CarTotal:         travelCost + carFillCost,
		CansTotal:        travelCost + cansFillCost,
		Highlight:        HighlightNone,
		PriceSource:      priceSource,
		DistanceSource:   distSource,
	}
}

// Rank aggregates every station concurrently, tags the cheapest result per
// criterion and returns the results sorted ascending by total cost.
//
// A result only carries the first tag that applies, tested in the order
// total, car, cans. A station that is cheapest both overall and for the car
// alone is tagged best-total and no other station is tagged best-car.
func (r *Ranker) Rank(ctx context.Context, stations []catalog.Station, origin geo.Coordinates, vehicle catalog.Vehicle) []StationResult {
	results := make([]StationResult, len(stations))

	var wg sync.WaitGroup
	for i, station := range stations {
		wg.Add(1)
		go func(i int, station catalog.Station) {
			defer wg.Done()
			results[i] = r.Aggregate(ctx, station, origin, vehicle)
		}(i, station)
	}
	wg.Wait()

	if len(results) == 0 {
		return results
	}

	bestTotal, bestCar, bestCans := 0, 0, 0
	for i := range results {
		if results[i].TotalCost < results[bestTotal].TotalCost {
			bestTotal = i
		}
		if results[i].CarTotal < results[bestCar].CarTotal {
			bestCar = i
		}
		if results[i].CansTotal < results[bestCans].CansTotal {
			bestCans = i
		}
	}

	for i := range results {
		switch {
		case i == bestTotal:
			results[i].Highlight = HighlightTotal
		case i == bestCar:
			results[i].Highlight = HighlightCar
		case i == bestCans:
			results[i].Highlight = HighlightCans
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalCost < results[j].TotalCost
	})

	return results
}
