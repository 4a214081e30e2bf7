package mapprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"route-recommendation-service/internal/domain"
	"route-recommendation-service/internal/platform/obs"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// geocodeMany resolves place names individually using OpenRouteService (/geocode/search).
// Names are expected to be normalized and deduplicated by the caller.
func (o *ORSProvider) geocodeMany(
	ctx context.Context,
	names []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.geocodeMany")(&err)

	endpoint := o.baseURL + "/geocode/search"

	out := make(map[string]domain.Coordinates, len(names))
	for _, name := range names {
		c, err := o.geocodeOne(ctx, endpoint, name)
		if err != nil {
			return nil, err
		}
		out[name] = c
	}

	return out, nil
}

func (o *ORSProvider) geocodeOne(ctx context.Context, endpoint, name string) (domain.Coordinates, error) {
	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", name)
		if o.country != "" {
			q.Set("boundary.country", o.country)
		}
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", name, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no geocode results for %q", name)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, fmt.Errorf("invalid coordinate format for %q", name)
	}

	return domain.Coordinates{Lon: coords[0], Lat: coords[1]}, nil
}
