package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/domain/order"
	ordervo "fieldops/internal/domain/order/value_objects"
	"fieldops/internal/domain/ticket"
	apperrors "fieldops/internal/shared/errors"
)

func pendingTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	tkt, err := ticket.NewTicket(
		"T1001",
		"Maria Santos",
		"5511987654321",
		"Rua das Flores, 123 - Centro, São Paulo - SP",
		"Vazamento embaixo da pia",
		[]string{"/uploads/tickets/leak.jpg"},
	)
	require.NoError(t, err)
	return tkt
}

func TestAcceptTicketUseCase_Execute(t *testing.T) {
	tkt := pendingTicket(t)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
			assert.Equal(t, "T1001", ticketID)
			return tkt, nil
		},
	}
	var updatedTicket *ticket.Ticket
	ticketRepo.UpdateFunc = func(ctx context.Context, t *ticket.Ticket) error {
		updatedTicket = t
		return nil
	}
	var savedOrder *order.ServiceOrder
	orderRepo := &mockOrderRepository{
		SaveFunc: func(ctx context.Context, o *order.ServiceOrder) error {
			if err := o.SetID(7); err != nil {
				return err
			}
			savedOrder = o
			return nil
		},
	}
	linker := &mockLinker{
		AcceptanceLinkFunc: func(rawPhone, clientName string, orderID uint) string {
			assert.Equal(t, uint(7), orderID)
			return "https://wa.me/5511987654321?text=ordem"
		},
	}

	useCase := NewAcceptTicketUseCase(ticketRepo, orderRepo, &mockTransactor{}, linker, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AcceptTicketCommand{TicketID: "T1001"})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.OrderID)
	assert.Equal(t, "accepted", result.TicketStatus)
	assert.Equal(t, "https://wa.me/5511987654321?text=ordem", result.WhatsAppLink)

	require.NotNil(t, savedOrder)
	assert.Equal(t, "Maria Santos", savedOrder.ClientName())
	assert.Equal(t, "5511987654321", savedOrder.ContactPhone())
	assert.Equal(t, ordervo.CategoryBoth, savedOrder.ServiceCategory())
	assert.Equal(t, tkt.Location(), savedOrder.Address())
	assert.Equal(t, []string{"/uploads/tickets/leak.jpg"}, savedOrder.Photos().Before)
	assert.Empty(t, savedOrder.Photos().After)

	require.NotNil(t, updatedTicket)
	assert.Equal(t, uint(7), updatedTicket.LinkedOrderID())
}

func TestAcceptTicketUseCase_OrderSaveFailureAbortsEverything(t *testing.T) {
	tkt := pendingTicket(t)
	var ticketUpdated bool
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
			return tkt, nil
		},
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			ticketUpdated = true
			return nil
		},
	}
	orderRepo := &mockOrderRepository{
		SaveFunc: func(ctx context.Context, o *order.ServiceOrder) error {
			return apperrors.NewInternalError("database error")
		},
	}

	useCase := NewAcceptTicketUseCase(ticketRepo, orderRepo, &mockTransactor{}, &mockLinker{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AcceptTicketCommand{TicketID: "T1001"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.False(t, ticketUpdated, "ticket must not be written when order creation fails")
	assert.Zero(t, tkt.LinkedOrderID())
	assert.Equal(t, "pending", tkt.Status().String())
}

func TestAcceptTicketUseCase_RejectedTicketCannotBeAccepted(t *testing.T) {
	tkt := pendingTicket(t)
	require.NoError(t, tkt.Reject())
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
			return tkt, nil
		},
	}
	orderRepo := &mockOrderRepository{
		SaveFunc: func(ctx context.Context, o *order.ServiceOrder) error {
			return o.SetID(9)
		},
	}

	useCase := NewAcceptTicketUseCase(ticketRepo, orderRepo, &mockTransactor{}, &mockLinker{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), AcceptTicketCommand{TicketID: "T1001"})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestAcceptTicketUseCase_NotFound(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		},
	}

	useCase := NewAcceptTicketUseCase(ticketRepo, &mockOrderRepository{}, &mockTransactor{}, &mockLinker{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), AcceptTicketCommand{TicketID: "T9999"})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
