package geostore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"route-recommendation-service/internal/domain"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Initialize the geocode schema.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	const createGeocodes = `
	CREATE TABLE IF NOT EXISTS geocodes (
		name TEXT PRIMARY KEY,
		lon DOUBLE PRECISION NOT NULL,
		lat DOUBLE PRECISION NOT NULL
	);
	`

	if _, err := db.ExecContext(ctx, createGeocodes); err != nil {
		return fmt.Errorf("init schema: create geocodes: %w", err)
	}

	return nil
}

type GeocodeSeed struct {
	Name string  `json:"name"`
	Lon  float64 `json:"lon"`
	Lat  float64 `json:"lat"`
}

// LoadSeeds reads and validates a JSON array of GeocodeSeed.
// Names are normalized the same way the map provider normalizes them.
func LoadSeeds(jsonPath string) (map[string]domain.Coordinates, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed geocodes: read %q: %w", jsonPath, err)
	}

	var data []GeocodeSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed geocodes: parse json: %w", err)
	}

	out := make(map[string]domain.Coordinates, len(data))
	for i, item := range data {
		name := strings.Join(strings.Fields(item.Name), " ")
		if name == "" {
			return nil, fmt.Errorf("seed geocodes: item at index %d: name cannot be empty", i+1)
		}

		c := domain.Coordinates{Lon: item.Lon, Lat: item.Lat}
		if !c.Valid() {
			return nil, fmt.Errorf("seed geocodes: %q: coordinates out of range", name)
		}
		out[name] = c
	}

	return out, nil
}

// Populate the geocodes table from a JSON file.
func SeedFromJSON(ctx context.Context, db *sqlx.DB, jsonPath string) error {
	seeds, err := LoadSeeds(jsonPath)
	if err != nil {
		return err
	}

	if err := NewSQLGeocodeStore(db).PutMany(ctx, seeds); err != nil {
		return fmt.Errorf("seed geocodes: %w", err)
	}

	return nil
}
