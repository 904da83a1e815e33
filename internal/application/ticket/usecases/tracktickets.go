package usecases

import (
	"context"
	"time"

	"fieldops/internal/domain/order"
	"fieldops/internal/domain/ticket"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

type TrackTicketsQuery struct {
	Phone string
}

// TrackedTicket is the client-facing view of a submitted ticket, enriched
// with the linked order status once the ticket was accepted.
type TrackedTicket struct {
	TicketID    string    `json:"ticket_id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	OrderID     uint      `json:"order_id,omitempty"`
	OrderStatus string    `json:"order_status,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TrackTicketsUseCase serves the public tracking page: a client looks up all
// tickets submitted under their phone number.
type TrackTicketsUseCase struct {
	ticketRepo  ticket.TicketRepository
	orderRepo   order.OrderRepository
	countryCode string
	logger      logger.Interface
}

func NewTrackTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	orderRepo order.OrderRepository,
	countryCode string,
	logger logger.Interface,
) *TrackTicketsUseCase {
	return &TrackTicketsUseCase{
		ticketRepo:  ticketRepo,
		orderRepo:   orderRepo,
		countryCode: countryCode,
		logger:      logger,
	}
}

func (uc *TrackTicketsUseCase) Execute(ctx context.Context, query TrackTicketsQuery) ([]*TrackedTicket, error) {
	phone := utils.NormalizePhone(query.Phone, uc.countryCode)
	if phone == "" {
		return nil, errors.NewValidationError("phone is required")
	}

	tickets, err := uc.ticketRepo.GetByContactPhone(ctx, phone)
	if err != nil {
		uc.logger.Error("failed to look up tickets by phone", "error", err)
		return nil, err
	}

	tracked := make([]*TrackedTicket, 0, len(tickets))
	for _, tkt := range tickets {
		entry := &TrackedTicket{
			TicketID:    tkt.ID(),
			Description: tkt.Description(),
			Status:      tkt.Status().String(),
			CreatedAt:   tkt.CreatedAt(),
		}

		if tkt.LinkedOrderID() != 0 {
			entry.OrderID = tkt.LinkedOrderID()
			if o, err := uc.orderRepo.GetByID(ctx, tkt.LinkedOrderID()); err == nil {
				entry.OrderStatus = o.Status().String()
			}
		}

		tracked = append(tracked, entry)
	}

	return tracked, nil
}
