package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rubiojr/gascost/internal/catalog"
	"github.com/rubiojr/gascost/internal/geocode"
	"github.com/rubiojr/gascost/internal/pricing"
	"github.com/rubiojr/gascost/internal/ranking"
	"github.com/rubiojr/gascost/internal/routing"
	"github.com/rubiojr/gascost/pkg/geo"
)

func rankCommand() *cli.Command {
	return &cli.Command{
		Name:  "rank",
		Usage: "Rank the station directory by fill-up cost from a location",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "location",
				Usage: "Location to search (address or place name)",
			},
			&cli.Float64Flag{
				Name:  "lat",
				Usage: "Latitude of the location",
			},
			&cli.Float64Flag{
				Name:  "long",
				Usage: "Longitude of the location",
			},
			&cli.StringFlag{
				Name:  "vehicle",
				Usage: "Vehicle selector (audi, bmw)",
				Value: "audi",
			},
		},
		Action: rankAction,
	}
}

func rankAction(c *cli.Context) error {
	vehicle, ok := catalog.VehicleByKey(c.String("vehicle"))
	if !ok {
		return fmt.Errorf("unknown vehicle %q", c.String("vehicle"))
	}

	origin, err := resolveOrigin(c)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	prices := pricing.NewGasBuddyResolver(logger)
	routes := routing.NewHereResolver(os.Getenv("HERE_API_KEY"))
	ranker := ranking.New(prices, routes, logger)

	results := ranker.Rank(context.Background(), catalog.Stations(), origin, vehicle)

	fmt.Printf("Ranking %d stations for a %s from %.4f, %.4f\n\n",
		len(results), vehicle.Name, origin.Lat, origin.Lng)

	for i, result := range results {
		fmt.Printf("%d. %s\n", i+1, result.Station)
		fmt.Printf("   Gas Price: $%.2f/gal (%s)\n", result.GasPrice, result.PriceSource)
		fmt.Printf("   Distance: %.1f miles (%s)\n", result.DistanceMiles, result.DistanceSource)
		fmt.Printf("   Travel Cost: $%.2f   Car Fill: $%.2f   Gas Cans: $%.2f\n",
			result.TravelCost, result.CarFillCost, result.CansFillCost)
		fmt.Printf("   Total Cost: $%.2f\n", result.TotalCost)
		if label := highlightLabel(result.Highlight); label != "" {
			fmt.Printf("   * %s\n", label)
		}
		fmt.Println()
	}

	return nil
}

func resolveOrigin(c *cli.Context) (geo.Coordinates, error) {
	if loc := c.String("location"); loc != "" {
		origin, err := geocode.New().Lookup(loc)
		if err != nil {
			return geo.Coordinates{}, err
		}
		return origin, nil
	}

	if !c.IsSet("lat") || !c.IsSet("long") {
		return geo.Coordinates{}, errors.New("location or latitude and longitude are required")
	}

	origin := geo.Coordinates{Lat: c.Float64("lat"), Lng: c.Float64("long")}
	if !origin.Valid() {
		return geo.Coordinates{}, fmt.Errorf("coordinates out of range: %f, %f", origin.Lat, origin.Lng)
	}

	return origin, nil
}

func highlightLabel(h ranking.Highlight) string {
	switch h {
	case ranking.HighlightTotal:
		return "Best Combined Total"
	case ranking.HighlightCar:
		return "Best for Car Only"
	case ranking.HighlightCans:
		return "Best for Gas Cans Only"
	default:
		return ""
	}
}
