package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/urfave/cli/v2"

	"github.com/rubiojr/gascost/internal/geocode"
	"github.com/rubiojr/gascost/internal/pricing"
	"github.com/rubiojr/gascost/internal/ranking"
	"github.com/rubiojr/gascost/internal/routing"
	"github.com/rubiojr/gascost/internal/server"
	"github.com/rubiojr/gascost/internal/store"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the web calculator",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "port",
				Usage: "HTTP server port",
				Value: 8080,
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "Search log database file (empty to disable logging)",
				Value: "gascost.db",
			},
		},
		Action: serveAction,
	}
}

func serveAction(c *cli.Context) error {
	ctx := context.Background()

	logger := httplog.NewLogger("gascost", httplog.Options{
		JSON:            false,
		LogLevel:        slog.LevelDebug,
		Concise:         true,
		QuietDownPeriod: 10 * time.Second,
	})

	apiKey := os.Getenv("HERE_API_KEY")
	if apiKey == "" {
		logger.Warn("HERE_API_KEY not set, distances will fall back to great-circle estimates")
	}

	var st *store.Store
	if dbPath := c.String("db"); dbPath != "" {
		var err error
		st, err = store.Open(ctx, dbPath, logger.Logger)
		if err != nil {
			return fmt.Errorf("error initializing search log: %w", err)
		}
		defer st.Close()
	}

	prices := pricing.NewGasBuddyResolver(logger.Logger)
	routes := routing.NewHereResolver(apiKey)
	ranker := ranking.New(prices, routes, logger.Logger)

	srv := server.New(ranker, geocode.New(), st, logger)

	addr := fmt.Sprintf("127.0.0.1:%d", c.Int("port"))
	logger.Debug("Starting server on", "addr", addr)
	return http.ListenAndServe(addr, srv.Handler())
}
