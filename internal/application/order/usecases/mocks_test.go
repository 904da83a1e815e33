package usecases

import (
	"context"

	"fieldops/internal/domain/order"
	"fieldops/internal/shared/logger"
)

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

type mockRenderer struct {
	RenderFunc func(ctx context.Context, o *order.ServiceOrder) (string, error)
	calls      int
}

func (m *mockRenderer) Render(ctx context.Context, o *order.ServiceOrder) (string, error) {
	m.calls++
	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, o)
	}
	return "/uploads/reports/report.html", nil
}

type mockMailer struct {
	SendFunc func(to, clientName string, orderID uint, reportURL string) error
	calls    int
}

func (m *mockMailer) SendReportLink(to, clientName string, orderID uint, reportURL string) error {
	m.calls++
	if m.SendFunc != nil {
		return m.SendFunc(to, clientName, orderID, reportURL)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)      {}
func (m *mockLogger) Info(msg string, args ...any)       {}
func (m *mockLogger) Warn(msg string, args ...any)       {}
func (m *mockLogger) Error(msg string, args ...any)      {}
func (m *mockLogger) Fatal(msg string, args ...any)      {}
func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
