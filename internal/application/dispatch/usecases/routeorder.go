package usecases

import (
	"context"

	"fieldops/internal/domain/order"
	"fieldops/internal/infrastructure/geo"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type RouteOrderQuery struct {
	OrderID uint
}

type RouteOrderResult struct {
	OrderID         uint        `json:"order_id"`
	Geometry        [][]float64 `json:"geometry"`
	DistanceKm      float64     `json:"distance_km"`
	DurationMinutes float64     `json:"duration_minutes"`
}

// RouteOrderUseCase computes the driving route from the configured depot to
// one order. A failure is returned to the caller; the dispatcher UI keeps
// whatever route it was showing before.
type RouteOrderUseCase struct {
	orderRepo order.OrderRepository
	resolver  *Resolver
	router    Router
	origin    geo.Coordinates
	logger    logger.Interface
}

func NewRouteOrderUseCase(
	orderRepo order.OrderRepository,
	resolver *Resolver,
	router Router,
	origin geo.Coordinates,
	logger logger.Interface,
) *RouteOrderUseCase {
	return &RouteOrderUseCase{
		orderRepo: orderRepo,
		resolver:  resolver,
		router:    router,
		origin:    origin,
		logger:    logger,
	}
}

func (uc *RouteOrderUseCase) Execute(ctx context.Context, query RouteOrderQuery) (*RouteOrderResult, error) {
	if query.OrderID == 0 {
		return nil, errors.NewValidationError("order ID is required")
	}

	o, err := uc.orderRepo.GetByID(ctx, query.OrderID)
	if err != nil {
		return nil, err
	}

	dest, err := uc.resolver.Resolve(ctx, o.Latitude(), o.Longitude(), o.Address())
	if err != nil {
		uc.logger.Warn("failed to resolve order for routing", "order_id", query.OrderID, "error", err)
		return nil, errors.NewInternalError("failed to resolve order location")
	}
	if dest == nil {
		return nil, errors.NewValidationError("order has no resolvable location")
	}

	route, err := uc.router.Route(ctx, uc.origin, *dest)
	if err != nil {
		uc.logger.Warn("failed to compute route", "order_id", query.OrderID, "error", err)
		return nil, errors.NewInternalError("failed to compute route")
	}

	return &RouteOrderResult{
		OrderID:         o.ID(),
		Geometry:        route.Geometry,
		DistanceKm:      route.DistanceKm,
		DurationMinutes: route.DurationMinutes,
	}, nil
}
