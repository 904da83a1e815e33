package usecases

import (
	"context"

	"fieldops/internal/domain/order"
	ordervo "fieldops/internal/domain/order/value_objects"
	"fieldops/internal/domain/ticket"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type AcceptTicketCommand struct {
	TicketID string
}

type AcceptTicketResult struct {
	OrderID      uint
	TicketStatus string
	WhatsAppLink string
}

// AcceptTicketUseCase converts a pending ticket into a service order. The
// order creation, the ticket link and the status flip commit together; if any
// step fails nothing is persisted and the ticket keeps no dangling order id.
type AcceptTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	orderRepo  order.OrderRepository
	tx         Transactor
	linker     MessageLinker
	logger     logger.Interface
}

func NewAcceptTicketUseCase(
	ticketRepo ticket.TicketRepository,
	orderRepo order.OrderRepository,
	tx Transactor,
	linker MessageLinker,
	logger logger.Interface,
) *AcceptTicketUseCase {
	return &AcceptTicketUseCase{
		ticketRepo: ticketRepo,
		orderRepo:  orderRepo,
		tx:         tx,
		linker:     linker,
		logger:     logger,
	}
}

func (uc *AcceptTicketUseCase) Execute(ctx context.Context, cmd AcceptTicketCommand) (*AcceptTicketResult, error) {
	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	tkt, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	var newOrder *order.ServiceOrder
	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		newOrder, err = uc.buildOrder(tkt)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.orderRepo.Save(txCtx, newOrder); err != nil {
			return err
		}

		if err := tkt.Accept(newOrder.ID()); err != nil {
			return errors.NewValidationError(err.Error())
		}

		return uc.ticketRepo.Update(txCtx, tkt)
	})
	if err != nil {
		uc.logger.Error("failed to accept ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Info("ticket accepted", "ticket_id", tkt.ID(), "order_id", newOrder.ID())

	return &AcceptTicketResult{
		OrderID:      newOrder.ID(),
		TicketStatus: tkt.Status().String(),
		WhatsAppLink: uc.linker.AcceptanceLink(tkt.ContactPhone(), tkt.ClientName(), newOrder.ID()),
	}, nil
}

// buildOrder pre-populates the service order from the ticket. The intake form
// does not distinguish trades, so the category starts as "both" and the
// ticket photos land in the "before" bucket.
func (uc *AcceptTicketUseCase) buildOrder(tkt *ticket.Ticket) (*order.ServiceOrder, error) {
	newOrder, err := order.NewServiceOrder(
		tkt.ClientName(),
		tkt.ContactPhone(),
		"",
		ordervo.CategoryBoth,
		tkt.Location(),
		tkt.Description(),
	)
	if err != nil {
		return nil, err
	}

	if tkt.Latitude() != nil && tkt.Longitude() != nil {
		newOrder.SetCoordinates(*tkt.Latitude(), *tkt.Longitude())
	}

	for _, url := range tkt.PhotoURLs() {
		if err := newOrder.AddPhoto(ordervo.BucketBefore, url); err != nil {
			return nil, err
		}
	}

	return newOrder, nil
}
