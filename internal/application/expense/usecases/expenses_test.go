package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/domain/expense"
	apperrors "fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type mockExpenseRepository struct {
	SaveFunc   func(ctx context.Context, e *expense.Expense) error
	DeleteFunc func(ctx context.Context, expenseID string) error
	ListFunc   func(ctx context.Context) ([]*expense.Expense, error)
}

func (m *mockExpenseRepository) Save(ctx context.Context, e *expense.Expense) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockExpenseRepository) Delete(ctx context.Context, expenseID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, expenseID)
	}
	return nil
}

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

func TestCreateExpenseUseCase_Execute(t *testing.T) {
	var saved *expense.Expense
	repo := &mockExpenseRepository{
		SaveFunc: func(ctx context.Context, e *expense.Expense) error {
			saved = e
			return nil
		},
	}

	useCase := NewCreateExpenseUseCase(repo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateExpenseCommand{
		Category:    "fuel",
		Description: "Gasolina semana 35",
		AmountCents: 12000,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "fuel", result.Category)
	assert.Equal(t, int64(12000), result.AmountCents)
	require.NotNil(t, saved)
}

func TestCreateExpenseUseCase_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateExpenseCommand
	}{
		{"invalid category", CreateExpenseCommand{Category: "travel", Description: "x", AmountCents: 100}},
		{"zero amount", CreateExpenseCommand{Category: "fuel", Description: "x", AmountCents: 0}},
		{"negative amount", CreateExpenseCommand{Category: "fuel", Description: "x", AmountCents: -5}},
		{"missing description", CreateExpenseCommand{Category: "fuel", AmountCents: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewCreateExpenseUseCase(&mockExpenseRepository{}, &mockLogger{})
			_, err := useCase.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestDeleteExpenseUseCase_Execute(t *testing.T) {
	var deletedID string
	repo := &mockExpenseRepository{
		DeleteFunc: func(ctx context.Context, expenseID string) error {
			deletedID = expenseID
			return nil
		},
	}

	useCase := NewDeleteExpenseUseCase(repo, &mockLogger{})
	require.NoError(t, useCase.Execute(context.Background(), DeleteExpenseCommand{ExpenseID: "exp123"}))
	assert.Equal(t, "exp123", deletedID)
}

func TestListExpensesUseCase_Execute(t *testing.T) {
	e, err := expense.NewExpense("exp123", expense.CategoryFuel, "Gasolina", 12000)
	require.NoError(t, err)
	repo := &mockExpenseRepository{
		ListFunc: func(ctx context.Context) ([]*expense.Expense, error) {
			return []*expense.Expense{e}, nil
		},
	}

	useCase := NewListExpensesUseCase(repo, &mockLogger{})
	dtos, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, "exp123", dtos[0].ID)
}
