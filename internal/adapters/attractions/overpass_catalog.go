// Package attractions fills the tourist attraction catalog from OpenStreetMap.
package attractions

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"route-recommendation-service/internal/augment"
	"route-recommendation-service/internal/domain"
	"slices"
	"strings"
	"time"

	"github.com/serjvanilla/go-overpass"
	"golang.org/x/sync/errgroup"
)

// Querier runs a raw Overpass QL query.
type Querier interface {
	Query(query string) (overpass.Result, error)
}

// OverpassCatalog looks up named tourism points around known places.
type OverpassCatalog struct {
	client   Querier
	radiusM  int
	limit    int
	parallel int
}

func NewOverpassCatalog(endpoint string, timeout time.Duration) *OverpassCatalog {
	httpClient := &http.Client{Timeout: timeout}
	client := overpass.NewWithSettings(endpoint, 2, httpClient)
	return NewOverpassCatalogWithClient(&client)
}

func NewOverpassCatalogWithClient(q Querier) *OverpassCatalog {
	return &OverpassCatalog{client: q, radiusM: 1500, limit: 10, parallel: 2}
}

func (c *OverpassCatalog) query(at domain.Coordinates) string {
	return fmt.Sprintf(`
		[out:json][timeout:25];
		(
			node["tourism"~"attraction|museum|gallery|viewpoint"]["name"](around:%d,%f,%f);
			way["tourism"~"attraction|museum|gallery|viewpoint"]["name"](around:%d,%f,%f);
		);
		out body;
	`, c.radiusM, at.Lat, at.Lon, c.radiusM, at.Lat, at.Lon)
}

// Lookup returns up to limit attraction names near at, sorted.
func (c *OverpassCatalog) Lookup(ctx context.Context, at domain.Coordinates) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := c.client.Query(c.query(at))
	if err != nil {
		return nil, fmt.Errorf("overpass query failed: %w", err)
	}

	return attractionNames(&result, c.limit), nil
}

// Prefetch looks up every place concurrently and merges the names found
// into catalog. Places that fail are skipped; their errors are returned joined.
func (c *OverpassCatalog) Prefetch(
	ctx context.Context,
	places map[string]domain.Coordinates,
	catalog *augment.Attractions,
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallel)

	errs := make([]error, 0, len(places))
	errCh := make(chan error, len(places))

	for name, at := range places {
		g.Go(func() error {
			names, err := c.Lookup(ctx, at)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				errCh <- fmt.Errorf("attractions near %q: %w", name, err)
				return nil
			}
			if len(names) > 0 {
				catalog.Merge(name, names)
			}
			log.Printf("attractions prefetched place=%q found=%d", name, len(names))
			return nil
		})
	}

	waitErr := g.Wait()
	close(errCh)
	for err := range errCh {
		errs = append(errs, err)
	}
	if waitErr != nil {
		errs = append(errs, waitErr)
	}

	return errors.Join(errs...)
}

// attractionNames collects unique names from nodes and ways, sorted for
// stable output since Overpass results arrive as maps.
func attractionNames(result *overpass.Result, limit int) []string {
	seen := make(map[string]struct{})
	var names []string

	add := func(tags map[string]string) {
		n := strings.TrimSpace(tags["name"])
		if n == "" {
			return
		}
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}

	for _, node := range result.Nodes {
		add(node.Tags)
	}
	for _, way := range result.Ways {
		add(way.Tags)
	}

	slices.Sort(names)
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names
}
