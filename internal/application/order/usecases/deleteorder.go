package usecases

import (
	"context"

	"fieldops/internal/domain/order"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type DeleteOrderCommand struct {
	OrderID uint
}

type DeleteOrderUseCase struct {
	orderRepo order.OrderRepository
	logger    logger.Interface
}

func NewDeleteOrderUseCase(orderRepo order.OrderRepository, logger logger.Interface) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *DeleteOrderUseCase) Execute(ctx context.Context, cmd DeleteOrderCommand) error {
	if cmd.OrderID == 0 {
		return errors.NewValidationError("order ID is required")
	}

	if err := uc.orderRepo.Delete(ctx, cmd.OrderID); err != nil {
		uc.logger.Error("failed to delete order", "order_id", cmd.OrderID, "error", err)
		return err
	}

	uc.logger.Info("order deleted", "order_id", cmd.OrderID)
	return nil
}
