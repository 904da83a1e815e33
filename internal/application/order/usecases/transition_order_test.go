package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/domain/order"
	vo "fieldops/internal/domain/order/value_objects"
	apperrors "fieldops/internal/shared/errors"
)

func executedOrder(t *testing.T) *order.ServiceOrder {
	t.Helper()
	o, err := order.NewServiceOrder("João Lima", "5511912345678", "joao@example.com", vo.CategoryHydraulic, "Rua B 20, Campinas", "Cano estourado")
	require.NoError(t, err)
	require.NoError(t, o.SetID(42))
	for _, status := range []vo.OrderStatus{vo.StatusQuote, vo.StatusExecuting, vo.StatusExecuted} {
		_, err := o.Transition(status)
		require.NoError(t, err)
	}
	return o
}

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

func TestTransitionOrderUseCase_CloseRendersReportOnce(t *testing.T) {
	o := executedOrder(t)
	var persisted *order.ServiceOrder
	orderRepo := &mockOrderRepository{
		GetByIDFunc: func(ctx context.Context, orderID uint) (*order.ServiceOrder, error) {
			return o, nil
		},
		UpdateFunc: func(ctx context.Context, upd *order.ServiceOrder) error {
			persisted = upd
			return nil
		},
	}
	renderer := &mockRenderer{
		RenderFunc: func(ctx context.Context, o *order.ServiceOrder) (string, error) {
			assert.True(t, o.Status().IsClosed(), "report must render from the final snapshot")
			return "/uploads/reports/42.html", nil
		},
	}
	mailer := &mockMailer{
		SendFunc: func(to, clientName string, orderID uint, reportURL string) error {
			assert.Equal(t, "joao@example.com", to)
			assert.Equal(t, "/uploads/reports/42.html", reportURL)
			return nil
		},
	}

	useCase := NewTransitionOrderUseCase(orderRepo, renderer, mailer, &mockLogger{})
	result, err := useCase.Execute(context.Background(), TransitionOrderCommand{
		OrderID: 42,
		Status:  "closed",
		Draft: OrderDraft{
			WorkNotes:         strPtr("Troca do cano e registro"),
			LaborCostCents:    i64Ptr(15000),
			MaterialCostCents: i64Ptr(3000),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "closed", result.Status)
	assert.Equal(t, int64(18000), result.TotalCents)
	assert.Equal(t, "/uploads/reports/42.html", result.ReportURL)
	assert.NotNil(t, result.ExecutedAt)
	assert.NotNil(t, result.ClosedAt)
	assert.Equal(t, 1, renderer.calls)
	assert.Equal(t, 1, mailer.calls)

	require.NotNil(t, persisted)
	assert.Equal(t, "Troca do cano e registro", persisted.WorkNotes())
}

func TestTransitionOrderUseCase_RenderFailureDoesNotFailTransition(t *testing.T) {
	o := executedOrder(t)
	orderRepo := &mockOrderRepository{
		GetByIDFunc: func(ctx context.Context, orderID uint) (*order.ServiceOrder, error) {
			return o, nil
		},
	}
	renderer := &mockRenderer{
		RenderFunc: func(ctx context.Context, o *order.ServiceOrder) (string, error) {
			return "", apperrors.NewInternalError("template blew up")
		},
	}
	mailer := &mockMailer{}

	useCase := NewTransitionOrderUseCase(orderRepo, renderer, mailer, &mockLogger{})
	result, err := useCase.Execute(context.Background(), TransitionOrderCommand{OrderID: 42, Status: "closed"})

	require.NoError(t, err)
	assert.Equal(t, "closed", result.Status)
	assert.Empty(t, result.ReportURL)
	assert.Zero(t, mailer.calls, "no mail without a rendered report")
}

func TestTransitionOrderUseCase_NonClosingTransitionSkipsReport(t *testing.T) {
	o, err := order.NewServiceOrder("João", "5511912345678", "", vo.CategoryElectrical, "Rua A", "Curto-circuito")
	require.NoError(t, err)
	require.NoError(t, o.SetID(8))

	orderRepo := &mockOrderRepository{
		GetByIDFunc: func(ctx context.Context, orderID uint) (*order.ServiceOrder, error) {
			return o, nil
		},
	}
	renderer := &mockRenderer{}

	useCase := NewTransitionOrderUseCase(orderRepo, renderer, &mockMailer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), TransitionOrderCommand{OrderID: 8, Status: "quote"})

	require.NoError(t, err)
	assert.Equal(t, "quote", result.Status)
	assert.Zero(t, renderer.calls)
}

func TestTransitionOrderUseCase_BackwardTransitionRejected(t *testing.T) {
	o := executedOrder(t)
	orderRepo := &mockOrderRepository{
		GetByIDFunc: func(ctx context.Context, orderID uint) (*order.ServiceOrder, error) {
			return o, nil
		},
	}

	useCase := NewTransitionOrderUseCase(orderRepo, &mockRenderer{}, &mockMailer{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), TransitionOrderCommand{OrderID: 42, Status: "open"})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestTransitionOrderUseCase_InvalidStatus(t *testing.T) {
	useCase := NewTransitionOrderUseCase(&mockOrderRepository{}, &mockRenderer{}, &mockMailer{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), TransitionOrderCommand{OrderID: 42, Status: "bogus"})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
