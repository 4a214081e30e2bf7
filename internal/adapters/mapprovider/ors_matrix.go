package mapprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"route-recommendation-service/internal/domain"
)

type matrixRequest struct {
	Locations    [][]float64 `json:"locations"`
	Destinations []int       `json:"destinations"`
	Metrics      []string    `json:"metrics"`
	Sources      []int       `json:"sources"`
}

type matrixResponse struct {
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

// fetchLeg retrieves distance (meters) and duration (seconds) for a single
// origin -> destination leg from the OpenRouteService matrix endpoint.
func (o *ORSProvider) fetchLeg(
	ctx context.Context,
	profile string,
	from, to domain.Coordinates,
) (meters, seconds float64, err error) {
	endpoint := fmt.Sprintf("%s/v2/matrix/%s", o.baseURL, profile)

	payload, err := json.Marshal(matrixRequest{
		Locations:    [][]float64{from.CoordsToList(), to.CoordsToList()},
		Destinations: []int{1},
		Metrics:      []string{"distance", "duration"},
		Sources:      []int{0},
	})
	if err != nil {
		return 0, 0, fmt.Errorf("marshal matrix request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return 0, 0, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var mr matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return 0, 0, fmt.Errorf("decode matrix response: %w", err)
	}

	if len(mr.Distances) != 1 || len(mr.Durations) != 1 ||
		len(mr.Distances[0]) != 1 || len(mr.Durations[0]) != 1 {
		return 0, 0, fmt.Errorf(
			"expected a 1x1 matrix; got distances=%d durations=%d",
			len(mr.Distances), len(mr.Durations),
		)
	}

	d, t := mr.Distances[0][0], mr.Durations[0][0]
	if d == nil || t == nil {
		return 0, 0, fmt.Errorf("matrix returned no route between %v and %v", from, to)
	}

	return *d, *t, nil
}
