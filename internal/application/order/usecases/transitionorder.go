package usecases

import (
	"context"

	"fieldops/internal/application/order/dto"
	"fieldops/internal/domain/order"
	vo "fieldops/internal/domain/order/value_objects"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type TransitionOrderCommand struct {
	OrderID uint
	Status  string
	Draft   OrderDraft
}

// TransitionOrderUseCase applies the pending draft fields and the status
// change in a single update, so the transition never lands on a stale
// snapshot. Closing renders the report exactly once; a renderer or mail
// failure is logged and never rolls the transition back.
type TransitionOrderUseCase struct {
	orderRepo order.OrderRepository
	renderer  ReportRenderer
	mailer    ReportMailer
	logger    logger.Interface
}

func NewTransitionOrderUseCase(
	orderRepo order.OrderRepository,
	renderer ReportRenderer,
	mailer ReportMailer,
	logger logger.Interface,
) *TransitionOrderUseCase {
	return &TransitionOrderUseCase{
		orderRepo: orderRepo,
		renderer:  renderer,
		mailer:    mailer,
		logger:    logger,
	}
}

func (uc *TransitionOrderUseCase) Execute(ctx context.Context, cmd TransitionOrderCommand) (*dto.OrderDTO, error) {
	if cmd.OrderID == 0 {
		return nil, errors.NewValidationError("order ID is required")
	}

	status, err := vo.NewOrderStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	o, err := uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if err := applyDraft(o, cmd.Draft); err != nil {
		return nil, err
	}

	closedNow, err := o.Transition(status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Error("failed to persist order transition", "order_id", cmd.OrderID, "error", err)
		return nil, err
	}

	uc.logger.Info("order transitioned", "order_id", o.ID(), "status", status.String())

	result := dto.FromEntity(o)
	if closedNow {
		result.ReportURL = renderAndNotify(ctx, uc.renderer, uc.mailer, uc.logger, o)
	}
	return result, nil
}

// renderAndNotify produces the closing report and mails its link. Every
// closure runs through here, whether the order closed by transition or by
// quote decline. Failures are logged; the closure itself already committed.
func renderAndNotify(ctx context.Context, renderer ReportRenderer, mailer ReportMailer, log logger.Interface, o *order.ServiceOrder) string {
	url, err := renderer.Render(ctx, o)
	if err != nil {
		log.Error("failed to render closing report", "order_id", o.ID(), "error", err)
		return ""
	}

	if err := mailer.SendReportLink(o.ContactEmail(), o.ClientName(), o.ID(), url); err != nil {
		log.Error("failed to email report link", "order_id", o.ID(), "error", err)
	}

	return url
}
