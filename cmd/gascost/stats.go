package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/rubiojr/gascost/internal/store"
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show the most searched locations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "Search log database file",
				Value: "gascost.db",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of locations to show",
				Value: 10,
			},
		},
		Action: statsAction,
	}
}

func statsAction(c *cli.Context) error {
	ctx := context.Background()

	st, err := store.Open(ctx, c.String("db"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		return fmt.Errorf("error opening search log: %w", err)
	}
	defer st.Close()

	locations, err := st.PopularLocations(ctx, c.Int("limit"))
	if err != nil {
		return err
	}

	if len(locations) == 0 {
		fmt.Println("No searches logged yet.")
		return nil
	}

	for i, loc := range locations {
		fmt.Printf("%d. %.2f, %.2f (%s)\n", i+1, loc.Latitude, loc.Longitude, loc.Vehicle)
		fmt.Printf("   Searches: %d   Last: %s\n\n", loc.SearchCount, loc.LastSearch.Format("2006-01-02 15:04"))
	}

	return nil
}
