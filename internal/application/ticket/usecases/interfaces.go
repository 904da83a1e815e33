package usecases

import (
	"context"

	"fieldops/internal/application/ticket/dto"
)

// Transactor runs a function inside a database transaction carried through
// the context.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MessageLinker builds the client-facing WhatsApp deep links.
type MessageLinker interface {
	AcceptanceLink(rawPhone, clientName string, orderID uint) string
	RejectionLink(rawPhone, clientName string) string
}

type SubmitTicketExecutor interface {
	Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error)
}

type AcceptTicketExecutor interface {
	Execute(ctx context.Context, cmd AcceptTicketCommand) (*AcceptTicketResult, error)
}

type RejectTicketExecutor interface {
	Execute(ctx context.Context, cmd RejectTicketCommand) (*RejectTicketResult, error)
}

type ChangeTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeTicketStatusCommand) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type TrackTicketsExecutor interface {
	Execute(ctx context.Context, query TrackTicketsQuery) ([]*TrackedTicket, error)
}
