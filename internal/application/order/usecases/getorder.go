package usecases

import (
	"context"

	"fieldops/internal/application/order/dto"
	"fieldops/internal/domain/order"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type GetOrderQuery struct {
	OrderID uint
}

type GetOrderUseCase struct {
	orderRepo order.OrderRepository
	logger    logger.Interface
}

func NewGetOrderUseCase(orderRepo order.OrderRepository, logger logger.Interface) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, query GetOrderQuery) (*dto.OrderDTO, error) {
	if query.OrderID == 0 {
		return nil, errors.NewValidationError("order ID is required")
	}

	o, err := uc.orderRepo.GetByID(ctx, query.OrderID)
	if err != nil {
		return nil, err
	}

	return dto.FromEntity(o), nil
}
