package usecases

import (
	"context"

	"fieldops/internal/application/ticket/dto"
	"fieldops/internal/domain/ticket"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID string
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	tkt, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	return dto.FromEntity(tkt), nil
}
