package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"fieldops/internal/shared/logger"
)

// Route is a driving route between two positions.
type Route struct {
	// Geometry is the route polyline as [lon, lat] pairs, as delivered by
	// the routing engine.
	Geometry        [][]float64 `json:"geometry"`
	DistanceKm      float64     `json:"distance_km"`
	DurationMinutes float64     `json:"duration_minutes"`
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// OSRMRouter computes driving routes against an OSRM HTTP endpoint. One
// request per call; a failure is returned to the caller and leaves any
// previously computed route untouched.
type OSRMRouter struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Interface
}

func NewOSRMRouter(baseURL string, log logger.Interface) *OSRMRouter {
	return &OSRMRouter{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: baseURL,
		logger:  log,
	}
}

func (r *OSRMRouter) Route(ctx context.Context, origin, dest Coordinates) (*Route, error) {
	// OSRM takes lon,lat pairs.
	endpoint := fmt.Sprintf("%s/%f,%f;%f,%f?overview=full&geometries=geojson",
		r.baseURL, origin.Longitude, origin.Latitude, dest.Longitude, dest.Latitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch route: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var data osrmResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if data.Code != "Ok" || len(data.Routes) == 0 {
		return nil, fmt.Errorf("no route found (code=%s)", data.Code)
	}

	best := data.Routes[0]

	r.logger.Debug("route computed",
		"distance_km", best.Distance/1000,
		"duration_minutes", best.Duration/60,
	)

	return &Route{
		Geometry:        best.Geometry.Coordinates,
		DistanceKm:      best.Distance / 1000,
		DurationMinutes: best.Duration / 60,
	}, nil
}
