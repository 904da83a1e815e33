package usecases

import (
	"context"

	"fieldops/internal/domain/ticket"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type RejectTicketCommand struct {
	TicketID string
}

type RejectTicketResult struct {
	TicketStatus string
	WhatsAppLink string
}

type RejectTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	linker     MessageLinker
	logger     logger.Interface
}

func NewRejectTicketUseCase(
	ticketRepo ticket.TicketRepository,
	linker MessageLinker,
	logger logger.Interface,
) *RejectTicketUseCase {
	return &RejectTicketUseCase{
		ticketRepo: ticketRepo,
		linker:     linker,
		logger:     logger,
	}
}

func (uc *RejectTicketUseCase) Execute(ctx context.Context, cmd RejectTicketCommand) (*RejectTicketResult, error) {
	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	tkt, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := tkt.Reject(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, tkt); err != nil {
		uc.logger.Error("failed to reject ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Info("ticket rejected", "ticket_id", tkt.ID())

	return &RejectTicketResult{
		TicketStatus: tkt.Status().String(),
		WhatsAppLink: uc.linker.RejectionLink(tkt.ContactPhone(), tkt.ClientName()),
	}, nil
}
