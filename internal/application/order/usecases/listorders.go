package usecases

import (
	"context"

	"fieldops/internal/application/order/dto"
	"fieldops/internal/domain/order"
	vo "fieldops/internal/domain/order/value_objects"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type ListOrdersQuery struct {
	Status string
}

type ListOrdersUseCase struct {
	orderRepo order.OrderRepository
	logger    logger.Interface
}

func NewListOrdersUseCase(orderRepo order.OrderRepository, logger logger.Interface) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, query ListOrdersQuery) ([]*dto.OrderDTO, error) {
	filter := order.OrderFilter{}
	if query.Status != "" {
		status, err := vo.NewOrderStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	orders, err := uc.orderRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("failed to list orders", "error", err)
		return nil, err
	}

	return dto.FromEntities(orders), nil
}
