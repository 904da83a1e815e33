package usecases

import (
	"context"

	"fieldops/internal/application/ticket/dto"
	"fieldops/internal/domain/ticket"
	vo "fieldops/internal/domain/ticket/value_objects"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	filter := ticket.TicketFilter{}
	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("failed to list tickets", "error", err)
		return nil, err
	}

	return dto.FromEntities(tickets), nil
}
