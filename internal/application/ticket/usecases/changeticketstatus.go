package usecases

import (
	"context"

	"fieldops/internal/application/ticket/dto"
	"fieldops/internal/domain/ticket"
	vo "fieldops/internal/domain/ticket/value_objects"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type ChangeTicketStatusCommand struct {
	TicketID string
	Status   string
}

type ChangeTicketStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewChangeTicketStatusUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ChangeTicketStatusUseCase {
	return &ChangeTicketStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeTicketStatusUseCase) Execute(ctx context.Context, cmd ChangeTicketStatusCommand) (*dto.TicketDTO, error) {
	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	tkt, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := tkt.ChangeStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, tkt); err != nil {
		uc.logger.Error("failed to update ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Info("ticket status changed", "ticket_id", tkt.ID(), "status", status.String())

	return dto.FromEntity(tkt), nil
}
