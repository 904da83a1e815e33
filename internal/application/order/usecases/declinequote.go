package usecases

import (
	"context"

	"fieldops/internal/application/order/dto"
	"fieldops/internal/domain/order"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type DeclineQuoteCommand struct {
	OrderID       uint
	VisitFeeCents int64
}

// DeclineQuoteUseCase closes a quoted order that the client turned down.
// Only the visit fee is charged, and the closure still renders the report so
// the client has a record of the charge.
type DeclineQuoteUseCase struct {
	orderRepo order.OrderRepository
	renderer  ReportRenderer
	mailer    ReportMailer
	logger    logger.Interface
}

func NewDeclineQuoteUseCase(
	orderRepo order.OrderRepository,
	renderer ReportRenderer,
	mailer ReportMailer,
	logger logger.Interface,
) *DeclineQuoteUseCase {
	return &DeclineQuoteUseCase{
		orderRepo: orderRepo,
		renderer:  renderer,
		mailer:    mailer,
		logger:    logger,
	}
}

func (uc *DeclineQuoteUseCase) Execute(ctx context.Context, cmd DeclineQuoteCommand) (*dto.OrderDTO, error) {
	if cmd.OrderID == 0 {
		return nil, errors.NewValidationError("order ID is required")
	}

	o, err := uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if err := o.DeclineQuote(cmd.VisitFeeCents); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Error("failed to persist quote decline", "order_id", cmd.OrderID, "error", err)
		return nil, err
	}

	uc.logger.Info("quote declined", "order_id", o.ID(), "visit_fee_cents", cmd.VisitFeeCents)

	result := dto.FromEntity(o)
	result.ReportURL = renderAndNotify(ctx, uc.renderer, uc.mailer, uc.logger, o)
	return result, nil
}
