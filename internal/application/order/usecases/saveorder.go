package usecases

import (
	"context"

	"fieldops/internal/application/order/dto"
	"fieldops/internal/domain/order"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type SaveOrderCommand struct {
	OrderID uint
	Draft   OrderDraft
}

// SaveOrderUseCase persists a field-save of the editable order fields. The
// order status is not touched here; closed orders stay editable so a
// dispatcher can fix a report after the fact without disturbing the stamps.
type SaveOrderUseCase struct {
	orderRepo order.OrderRepository
	logger    logger.Interface
}

func NewSaveOrderUseCase(orderRepo order.OrderRepository, logger logger.Interface) *SaveOrderUseCase {
	return &SaveOrderUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *SaveOrderUseCase) Execute(ctx context.Context, cmd SaveOrderCommand) (*dto.OrderDTO, error) {
	if cmd.OrderID == 0 {
		return nil, errors.NewValidationError("order ID is required")
	}

	o, err := uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if err := applyDraft(o, cmd.Draft); err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Error("failed to save order", "order_id", cmd.OrderID, "error", err)
		return nil, err
	}

	uc.logger.Info("order saved", "order_id", o.ID())

	return dto.FromEntity(o), nil
}
