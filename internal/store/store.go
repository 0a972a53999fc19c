// Package store persists a log of ranking searches (rounded coordinates and
// the selected vehicle) in SQLite so popular areas can be inspected later.
// The ranking pipeline itself keeps no state; logging failures are never
// surfaced to users.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const (
	decimalBase = 10
	// Coordinates are rounded before logging so nearby searches collapse
	// into one row and exact user locations are never stored.
	logPrecisionDecimalPlaces = 2
)

type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// Open opens (creating if needed) the search log database at dbPath.
func Open(ctx context.Context, dbPath string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 10000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("error setting busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("error setting journal mode: %w", err)
	}

	if err := createTables(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating tables: %w", err)
	}

	logger.Debug("Search log ready", "path", dbPath)

	return &Store{
		db:  db,
		log: logger,
	}, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS location_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		vehicle TEXT NOT NULL,
		search_count INTEGER NOT NULL DEFAULT 1,
		last_search TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_location_logs_coordinates ON location_logs (latitude, longitude);
	`

	_, err := db.ExecContext(ctx, createTableSQL)
	if err != nil {
		return fmt.Errorf("error creating location_logs table: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// LogSearch records one ranking request. Coordinates are rounded to
// logPrecisionDecimalPlaces before storage.
func (s *Store) LogSearch(ctx context.Context, latitude, longitude float64, vehicle string) error {
	lat, lng := reduceLocationPrecision(latitude, longitude, logPrecisionDecimalPlaces)

	var id int64
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT id, search_count FROM location_logs
		WHERE latitude = ? AND longitude = ? AND vehicle = ?
		LIMIT 1
	`, lat, lng, vehicle).Scan(&id, &count)

	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("error checking for existing location: %w", err)
	}

	if err == sql.ErrNoRows {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO location_logs (latitude, longitude, vehicle)
			VALUES (?, ?, ?)
		`, lat, lng, vehicle)
		if err != nil {
			return fmt.Errorf("error logging search location: %w", err)
		}
		s.log.Debug("Search location logged", "latitude", lat, "longitude", lng, "vehicle", vehicle)
		return nil
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE location_logs
		SET search_count = search_count + 1, last_search = CURRENT_TIMESTAMP
		WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("error updating search location: %w", err)
	}

	return nil
}

// SearchLocation is one aggregated row of the search log.
type SearchLocation struct {
	Latitude    float64
	Longitude   float64
	Vehicle     string
	SearchCount int64
	LastSearch  time.Time
}

// PopularLocations returns logged locations ordered by search count,
// most searched first. limit <= 0 returns all rows.
func (s *Store) PopularLocations(ctx context.Context, limit int) ([]SearchLocation, error) {
	query := `SELECT latitude, longitude, vehicle, search_count, last_search
			  FROM location_logs
			  ORDER BY search_count DESC `
	if limit > 0 {
		query += fmt.Sprintf("LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving location logs: %w", err)
	}
	defer rows.Close()

	var locations []SearchLocation
	for rows.Next() {
		var loc SearchLocation
		if err := rows.Scan(
			&loc.Latitude,
			&loc.Longitude,
			&loc.Vehicle,
			&loc.SearchCount,
			&loc.LastSearch,
		); err != nil {
			return nil, fmt.Errorf("error scanning location log: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}

	return locations, nil
}

func reduceLocationPrecision(lat, lng float64, decimalPlaces int) (roundedLat, roundedLng float64) {
	factor := math.Pow(decimalBase, float64(decimalPlaces))
	roundedLat = math.Round(lat*factor) / factor
	roundedLng = math.Round(lng*factor) / factor
	return
}
