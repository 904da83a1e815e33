package usecases

import (
	"context"
	"sort"

	"fieldops/internal/domain/order"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

type Marker struct {
	OrderID    uint    `json:"order_id"`
	ClientName string  `json:"client_name"`
	Address    string  `json:"address"`
	Status     string  `json:"status"`
	Category   string  `json:"category"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	City       string  `json:"city"`
}

type CityGroup struct {
	City     string `json:"city"`
	OrderIDs []uint `json:"order_ids"`
}

type MapMarkersResult struct {
	Markers []Marker    `json:"markers"`
	Cities  []CityGroup `json:"cities"`
}

// MapMarkersUseCase resolves every order to map coordinates and groups them
// by a coarse city label. Orders that cannot be located are dropped from the
// map, never failing the whole view.
type MapMarkersUseCase struct {
	orderRepo order.OrderRepository
	resolver  *Resolver
	logger    logger.Interface
}

func NewMapMarkersUseCase(
	orderRepo order.OrderRepository,
	resolver *Resolver,
	logger logger.Interface,
) *MapMarkersUseCase {
	return &MapMarkersUseCase{
		orderRepo: orderRepo,
		resolver:  resolver,
		logger:    logger,
	}
}

func (uc *MapMarkersUseCase) Execute(ctx context.Context) (*MapMarkersResult, error) {
	orders, err := uc.orderRepo.List(ctx, order.OrderFilter{})
	if err != nil {
		uc.logger.Error("failed to list orders for map", "error", err)
		return nil, err
	}

	result := &MapMarkersResult{Markers: make([]Marker, 0, len(orders))}
	groups := make(map[string][]uint)

	for _, o := range orders {
		coords, err := uc.resolver.Resolve(ctx, o.Latitude(), o.Longitude(), o.Address())
		if err != nil {
			uc.logger.Warn("failed to resolve order location", "order_id", o.ID(), "error", err)
			continue
		}
		if coords == nil {
			continue
		}

		city := utils.CityFromAddress(o.Address())
		result.Markers = append(result.Markers, Marker{
			OrderID:    o.ID(),
			ClientName: o.ClientName(),
			Address:    o.Address(),
			Status:     o.Status().String(),
			Category:   o.ServiceCategory().String(),
			Latitude:   coords.Latitude,
			Longitude:  coords.Longitude,
			City:       city,
		})
		if city != "" {
			groups[city] = append(groups[city], o.ID())
		}
	}

	result.Cities = make([]CityGroup, 0, len(groups))
	for city, ids := range groups {
		result.Cities = append(result.Cities, CityGroup{City: city, OrderIDs: ids})
	}
	sort.Slice(result.Cities, func(i, j int) bool {
		return result.Cities[i].City < result.Cities[j].City
	})

	return result, nil
}
