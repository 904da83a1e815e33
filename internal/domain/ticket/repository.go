package ticket

import (
	"context"

	vo "fieldops/internal/domain/ticket/value_objects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
	GetByContactPhone(ctx context.Context, phone string) ([]*Ticket, error)
}

type TicketFilter struct {
	Status *vo.TicketStatus
}
