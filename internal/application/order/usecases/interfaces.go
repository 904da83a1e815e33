package usecases

import (
	"context"

	"fieldops/internal/application/order/dto"
	"fieldops/internal/domain/order"
)

// ReportRenderer produces the closing report document and returns its URL.
type ReportRenderer interface {
	Render(ctx context.Context, o *order.ServiceOrder) (string, error)
}

// ReportMailer delivers the report link to the client.
type ReportMailer interface {
	SendReportLink(to, clientName string, orderID uint, reportURL string) error
}

type CreateOrderExecutor interface {
	Execute(ctx context.Context, cmd CreateOrderCommand) (*dto.OrderDTO, error)
}

type SaveOrderExecutor interface {
	Execute(ctx context.Context, cmd SaveOrderCommand) (*dto.OrderDTO, error)
}

type TransitionOrderExecutor interface {
	Execute(ctx context.Context, cmd TransitionOrderCommand) (*dto.OrderDTO, error)
}

type DeclineQuoteExecutor interface {
	Execute(ctx context.Context, cmd DeclineQuoteCommand) (*dto.OrderDTO, error)
}

type ListOrdersExecutor interface {
	Execute(ctx context.Context, query ListOrdersQuery) ([]*dto.OrderDTO, error)
}

type GetOrderExecutor interface {
	Execute(ctx context.Context, query GetOrderQuery) (*dto.OrderDTO, error)
}

type DeleteOrderExecutor interface {
	Execute(ctx context.Context, cmd DeleteOrderCommand) error
}

type RenderReportExecutor interface {
	Execute(ctx context.Context, cmd RenderReportCommand) (*RenderReportResult, error)
}
