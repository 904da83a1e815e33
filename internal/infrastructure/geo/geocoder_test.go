package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/shared/logger"
)

func TestGeocode(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "fieldops-test", r.Header.Get("User-Agent"))

		switch r.URL.Query().Get("q") {
		case "Rua A 10, Osasco":
			w.Write([]byte(`[{"lat":"-23.5329","lon":"-46.7918"}]`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(server.URL, "fieldops-test", logger.NewLogger())

	t.Run("resolves top result", func(t *testing.T) {
		coords, err := geocoder.Geocode(context.Background(), "Rua A 10, Osasco")

		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.InDelta(t, -23.5329, coords.Latitude, 0.0001)
		assert.InDelta(t, -46.7918, coords.Longitude, 0.0001)
	})

	t.Run("repeated address is a cache hit", func(t *testing.T) {
		before := requests.Load()

		coords, err := geocoder.Geocode(context.Background(), "Rua A 10, Osasco")
		require.NoError(t, err)
		require.NotNil(t, coords)

		// Case and whitespace differences normalize to the same key.
		coords, err = geocoder.Geocode(context.Background(), "  rua a 10,   osasco ")
		require.NoError(t, err)
		require.NotNil(t, coords)

		assert.Equal(t, before, requests.Load())
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		coords, err := geocoder.Geocode(context.Background(), "nowhere at all")

		require.NoError(t, err)
		assert.Nil(t, coords)
	})

	t.Run("empty address short-circuits", func(t *testing.T) {
		before := requests.Load()

		coords, err := geocoder.Geocode(context.Background(), "   ")

		require.NoError(t, err)
		assert.Nil(t, coords)
		assert.Equal(t, before, requests.Load())
	})
}

func TestGeocodeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(server.URL, "fieldops-test", logger.NewLogger())

	_, err := geocoder.Geocode(context.Background(), "Rua A 10, Osasco")

	assert.Error(t, err)
}

func TestRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":12500,"duration":1500,"geometry":{"coordinates":[[-46.63,-23.55],[-46.70,-23.53]]}}]}`))
	}))
	defer server.Close()

	router := NewOSRMRouter(server.URL, logger.NewLogger())

	route, err := router.Route(context.Background(),
		Coordinates{Latitude: -23.55, Longitude: -46.63},
		Coordinates{Latitude: -23.53, Longitude: -46.70},
	)

	require.NoError(t, err)
	assert.InDelta(t, 12.5, route.DistanceKm, 0.001)
	assert.InDelta(t, 25.0, route.DurationMinutes, 0.001)
	assert.Len(t, route.Geometry, 2)
}

func TestRouteNoRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer server.Close()

	router := NewOSRMRouter(server.URL, logger.NewLogger())

	_, err := router.Route(context.Background(), Coordinates{}, Coordinates{})

	assert.Error(t, err)
}
