package usecases

import (
	"context"

	"fieldops/internal/infrastructure/geo"
)

// Geocoder resolves a free-text address to coordinates. A nil result with a
// nil error means the address could not be located.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*geo.Coordinates, error)
}

// Router computes a driving route between two coordinates.
type Router interface {
	Route(ctx context.Context, origin, dest geo.Coordinates) (*geo.Route, error)
}

// Resolver turns an entity's location into coordinates. Explicit coordinates
// always win and cost no network round trip; only address-only entities hit
// the geocoder.
type Resolver struct {
	geocoder Geocoder
}

func NewResolver(geocoder Geocoder) *Resolver {
	return &Resolver{geocoder: geocoder}
}

func (r *Resolver) Resolve(ctx context.Context, latitude, longitude *float64, address string) (*geo.Coordinates, error) {
	if latitude != nil && longitude != nil {
		return &geo.Coordinates{Latitude: *latitude, Longitude: *longitude}, nil
	}
	if address == "" {
		return nil, nil
	}
	return r.geocoder.Geocode(ctx, address)
}
