package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"fieldops/internal/shared/logger"
)

const (
	// HTTP request timeout
	requestTimeout = 10 * time.Second
	// Maximum response body size for geocoding and routing APIs (1MB)
	maxResponseSize = 1 << 20
)

// Coordinates is a WGS84 position.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// nominatimResult represents one entry of the Nominatim search response
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NominatimGeocoder resolves free-text addresses against a Nominatim search
// endpoint. Successful lookups are cached per normalized address so repeated
// resolution of the same address in one pass costs one request.
type NominatimGeocoder struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     logger.Interface

	mu    sync.RWMutex
	cache map[string]Coordinates
}

func NewNominatimGeocoder(baseURL, userAgent string, log logger.Interface) *NominatimGeocoder {
	return &NominatimGeocoder{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL:   baseURL,
		userAgent: userAgent,
		logger:    log,
		cache:     make(map[string]Coordinates),
	}
}

// Geocode resolves an address to coordinates. A (nil, nil) return means the
// address produced no result; the caller drops the entity from the map.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (*Coordinates, error) {
	key := normalizeAddress(address)
	if key == "" {
		return nil, nil
	}

	g.mu.RLock()
	if coords, ok := g.cache[key]; ok {
		g.mu.RUnlock()
		return &coords, nil
	}
	g.mu.RUnlock()

	coords, err := g.fetch(ctx, address)
	if err != nil {
		return nil, err
	}
	if coords == nil {
		return nil, nil
	}

	g.mu.Lock()
	g.cache[key] = *coords
	g.mu.Unlock()

	return coords, nil
}

func (g *NominatimGeocoder) fetch(ctx context.Context, address string) (*Coordinates, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch geocoding result: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(results) == 0 {
		g.logger.Debug("address produced no geocoding result", "address", address)
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in response: %w", err)
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("coordinates out of range: %f, %f", lat, lon)
	}

	return &Coordinates{Latitude: lat, Longitude: lon}, nil
}

func normalizeAddress(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}
