// Package geostore persists place name to coordinate mappings in Postgres.
package geostore

import (
	"context"
	"errors"
	"fmt"
	"route-recommendation-service/internal/domain"
	"route-recommendation-service/internal/platform/obs"
	"route-recommendation-service/internal/ports"
	"strings"

	"github.com/jmoiron/sqlx"
)

// SQLGeocodeStore is a Postgres-backed store mapping place names to coordinates.
// Names are expected to be normalized by the caller.
type SQLGeocodeStore struct {
	DB *sqlx.DB
}

var _ ports.GeocodeStore = (*SQLGeocodeStore)(nil)

func NewSQLGeocodeStore(db *sqlx.DB) *SQLGeocodeStore {
	return &SQLGeocodeStore{DB: db}
}

type geocodeRow struct {
	Name string `db:"name"`
	domain.Coordinates
}

// uniqueNames trims names and drops blanks and duplicates, keeping order.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Fetch stored coordinates for the given names.
func (s *SQLGeocodeStore) GetMany(
	ctx context.Context,
	names []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "geocode.store.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("geocode store: db is nil")
	}

	uniq := uniqueNames(names)
	if len(uniq) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	const q = `
	SELECT name, lon, lat
	FROM geocodes
	WHERE name = ANY($1::text[]);
	`

	var rows []geocodeRow
	if err := s.DB.SelectContext(ctx, &rows, q, uniq); err != nil {
		return nil, fmt.Errorf("get geocodes: query geocodes table: %w", err)
	}

	out := make(map[string]domain.Coordinates, len(rows))
	for _, r := range rows {
		out[r.Name] = r.Coordinates
	}

	return out, nil
}

// Store name -> coordinate mappings, replacing existing rows.
func (s *SQLGeocodeStore) PutMany(ctx context.Context, results map[string]domain.Coordinates) (err error) {
	defer obs.Time(ctx, "geocode.store.PutMany")(&err)

	if s.DB == nil {
		return errors.New("geocode store: db is nil")
	}

	if len(results) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert geocodes: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const q = `
	INSERT INTO geocodes (name, lon, lat)
	VALUES (:name, :lon, :lat)
	ON CONFLICT (name) DO UPDATE
	SET lon = EXCLUDED.lon,
		lat = EXCLUDED.lat;
	`

	for name, c := range results {
		if strings.TrimSpace(name) == "" {
			return errors.New("insert geocodes: empty name key")
		}
		if !c.Valid() {
			return fmt.Errorf("insert geocodes name=%q: coordinates out of range: %w", name, domain.ErrInvalidArgument)
		}

		if _, err := tx.NamedExecContext(ctx, q, geocodeRow{Name: name, Coordinates: c}); err != nil {
			return fmt.Errorf("insert geocodes name=%q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert geocodes commit: %w", err)
	}

	return nil
}
