package usecases

import (
	"context"

	"fieldops/internal/domain/order"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type RenderReportCommand struct {
	OrderID uint
}

type RenderReportResult struct {
	ReportURL string
}

// RenderReportUseCase re-renders the report on demand from the current order
// snapshot, independent of the close-time render.
type RenderReportUseCase struct {
	orderRepo order.OrderRepository
	renderer  ReportRenderer
	logger    logger.Interface
}

func NewRenderReportUseCase(
	orderRepo order.OrderRepository,
	renderer ReportRenderer,
	logger logger.Interface,
) *RenderReportUseCase {
	return &RenderReportUseCase{
		orderRepo: orderRepo,
		renderer:  renderer,
		logger:    logger,
	}
}

func (uc *RenderReportUseCase) Execute(ctx context.Context, cmd RenderReportCommand) (*RenderReportResult, error) {
	if cmd.OrderID == 0 {
		return nil, errors.NewValidationError("order ID is required")
	}

	o, err := uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	url, err := uc.renderer.Render(ctx, o)
	if err != nil {
		uc.logger.Error("failed to render report", "order_id", cmd.OrderID, "error", err)
		return nil, errors.NewInternalError("failed to render report")
	}

	return &RenderReportResult{ReportURL: url}, nil
}
