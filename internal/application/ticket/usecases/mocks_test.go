package usecases

import (
	"context"

	"fieldops/internal/domain/order"
	"fieldops/internal/domain/ticket"
	"fieldops/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc              func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc            func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc           func(ctx context.Context, ticketID string) (*ticket.Ticket, error)
	ListFunc              func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error)
	GetByContactPhoneFunc func(ctx context.Context, phone string) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByContactPhone(ctx context.Context, phone string) ([]*ticket.Ticket, error) {
	if m.GetByContactPhoneFunc != nil {
		return m.GetByContactPhoneFunc(ctx, phone)
	}
	return nil, nil
}

type mockOrderRepository struct {
	SaveFunc    func(ctx context.Context, o *order.ServiceOrder) error
	UpdateFunc  func(ctx context.Context, o *order.ServiceOrder) error
	DeleteFunc  func(ctx context.Context, orderID uint) error
	GetByIDFunc func(ctx context.Context, orderID uint) (*order.ServiceOrder, error)
	ListFunc    func(ctx context.Context, filter order.OrderFilter) ([]*order.ServiceOrder, error)
}

func (m *mockOrderRepository) Save(ctx context.Context, o *order.ServiceOrder) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) Update(ctx context.Context, o *order.ServiceOrder) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) Delete(ctx context.Context, orderID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, orderID)
	}
	return nil
}

func (m *mockOrderRepository) GetByID(ctx context.Context, orderID uint) (*order.ServiceOrder, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *mockOrderRepository) List(ctx context.Context, filter order.OrderFilter) ([]*order.ServiceOrder, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

// mockTransactor runs the function directly; rollback is simulated by the
// caller checking that no writes happened after a failing step.
type mockTransactor struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLinker struct {
	AcceptanceLinkFunc func(rawPhone, clientName string, orderID uint) string
	RejectionLinkFunc  func(rawPhone, clientName string) string
}

func (m *mockLinker) AcceptanceLink(rawPhone, clientName string, orderID uint) string {
	if m.AcceptanceLinkFunc != nil {
		return m.AcceptanceLinkFunc(rawPhone, clientName, orderID)
	}
	return "https://wa.me/accept"
}

func (m *mockLinker) RejectionLink(rawPhone, clientName string) string {
	if m.RejectionLinkFunc != nil {
		return m.RejectionLinkFunc(rawPhone, clientName)
	}
	return "https://wa.me/reject"
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)      {}
func (m *mockLogger) Info(msg string, args ...any)       {}
func (m *mockLogger) Warn(msg string, args ...any)       {}
func (m *mockLogger) Error(msg string, args ...any)      {}
func (m *mockLogger) Fatal(msg string, args ...any)      {}
func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
