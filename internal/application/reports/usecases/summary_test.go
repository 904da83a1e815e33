package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/domain/expense"
	"fieldops/internal/domain/order"
	vo "fieldops/internal/domain/order/value_objects"
	"fieldops/internal/shared/logger"
)

type mockOrderRepository struct {
	ListFunc func(ctx context.Context, filter order.OrderFilter) ([]*order.ServiceOrder, error)
}

func (m *mockOrderRepository) Save(ctx context.Context, o *order.ServiceOrder) error   { return nil }
func (m *mockOrderRepository) Update(ctx context.Context, o *order.ServiceOrder) error { return nil }
func (m *mockOrderRepository) Delete(ctx context.Context, orderID uint) error          { return nil }
func (m *mockOrderRepository) GetByID(ctx context.Context, orderID uint) (*order.ServiceOrder, error) {
	return nil, nil
}
func (m *mockOrderRepository) List(ctx context.Context, filter order.OrderFilter) ([]*order.ServiceOrder, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

type mockExpenseRepository struct {
	ListFunc func(ctx context.Context) ([]*expense.Expense, error)
}

func (m *mockExpenseRepository) Save(ctx context.Context, e *expense.Expense) error { return nil }
func (m *mockExpenseRepository) Delete(ctx context.Context, expenseID string) error { return nil }
func (m *mockExpenseRepository) List(ctx context.Context) ([]*expense.Expense, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)      {}
func (m *mockLogger) Info(msg string, args ...any)       {}
func (m *mockLogger) Warn(msg string, args ...any)       {}
func (m *mockLogger) Error(msg string, args ...any)      {}
func (m *mockLogger) Fatal(msg string, args ...any)      {}
func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func closedOrderWith(t *testing.T, id uint, labor, material int64, technicians ...string) *order.ServiceOrder {
	t.Helper()
	o, err := order.NewServiceOrder("Cliente", "5511912345678", "", vo.CategoryHydraulic, "Rua X", "Problema")
	require.NoError(t, err)
	require.NoError(t, o.SetID(id))
	require.NoError(t, o.SetCosts(labor, material))
	o.AssignTechnicians(technicians)
	for _, status := range []vo.OrderStatus{vo.StatusQuote, vo.StatusExecuting, vo.StatusExecuted, vo.StatusClosed} {
		_, err := o.Transition(status)
		require.NoError(t, err)
	}
	return o
}

func TestSummaryUseCase_Execute(t *testing.T) {
	openOrder, err := order.NewServiceOrder("Cliente", "5511912345678", "", vo.CategoryElectrical, "Rua Y", "Problema")
	require.NoError(t, err)
	require.NoError(t, openOrder.SetID(3))
	openOrder.AssignTechnicians([]string{"Carlos"})
	require.NoError(t, openOrder.SetCosts(99900, 0))

	orderRepo := &mockOrderRepository{
		ListFunc: func(ctx context.Context, filter order.OrderFilter) ([]*order.ServiceOrder, error) {
			return []*order.ServiceOrder{
				closedOrderWith(t, 1, 15000, 3000, "Carlos", "Ana"),
				closedOrderWith(t, 2, 10000, 0, "Carlos"),
				openOrder,
			}, nil
		},
	}

	fuel, err := expense.NewExpense("exp1", expense.CategoryFuel, "Gasolina", 12000)
	require.NoError(t, err)
	food, err := expense.NewExpense("exp2", expense.CategoryFood, "Almoço equipe", 4000)
	require.NoError(t, err)
	expenseRepo := &mockExpenseRepository{
		ListFunc: func(ctx context.Context) ([]*expense.Expense, error) {
			return []*expense.Expense{fuel, food}, nil
		},
	}

	useCase := NewSummaryUseCase(orderRepo, expenseRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(28000), result.RevenueCents, "only closed orders count as revenue")
	assert.Equal(t, int64(16000), result.ExpenseCents)
	assert.Equal(t, int64(12000), result.ProfitCents)
	assert.Equal(t, 2, result.ClosedOrders)
	assert.Equal(t, 1, result.OpenOrders)
	assert.Equal(t, int64(12000), result.ExpensesByType["fuel"])

	require.Len(t, result.TechnicianCounts, 2)
	assert.Equal(t, TechnicianCount{Name: "Carlos", Orders: 3}, result.TechnicianCounts[0])
	assert.Equal(t, TechnicianCount{Name: "Ana", Orders: 1}, result.TechnicianCounts[1])
}

func TestSummaryUseCase_Empty(t *testing.T) {
	useCase := NewSummaryUseCase(&mockOrderRepository{}, &mockExpenseRepository{}, &mockLogger{})

	result, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	assert.Zero(t, result.RevenueCents)
	assert.Zero(t, result.ProfitCents)
	assert.Empty(t, result.TechnicianCounts)
}
