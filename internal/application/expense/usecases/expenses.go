package usecases

import (
	"context"
	"time"

	"fieldops/internal/domain/expense"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/id"
	"fieldops/internal/shared/logger"
)

type CreateExpenseCommand struct {
	Category    string
	Description string
	AmountCents int64
}

type ExpenseDTO struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	AmountCents int64     `json:"amount_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDTO(e *expense.Expense) *ExpenseDTO {
	return &ExpenseDTO{
		ID:          e.ID(),
		Category:    e.Category().String(),
		Description: e.Description(),
		AmountCents: e.AmountCents(),
		CreatedAt:   e.CreatedAt(),
	}
}

type CreateExpenseUseCase struct {
	expenseRepo expense.ExpenseRepository
	logger      logger.Interface
}

func NewCreateExpenseUseCase(expenseRepo expense.ExpenseRepository, logger logger.Interface) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *CreateExpenseUseCase) Execute(ctx context.Context, cmd CreateExpenseCommand) (*ExpenseDTO, error) {
	category, err := expense.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	expenseID, err := id.NewExpenseID()
	if err != nil {
		return nil, errors.NewInternalError("failed to generate expense ID")
	}

	e, err := expense.NewExpense(expenseID, category, cmd.Description, cmd.AmountCents)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.expenseRepo.Save(ctx, e); err != nil {
		uc.logger.Error("failed to save expense", "error", err)
		return nil, err
	}

	uc.logger.Info("expense recorded", "expense_id", e.ID(), "amount_cents", e.AmountCents())

	return toDTO(e), nil
}

type DeleteExpenseCommand struct {
	ExpenseID string
}

type DeleteExpenseUseCase struct {
	expenseRepo expense.ExpenseRepository
	logger      logger.Interface
}

func NewDeleteExpenseUseCase(expenseRepo expense.ExpenseRepository, logger logger.Interface) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, cmd DeleteExpenseCommand) error {
	if cmd.ExpenseID == "" {
		return errors.NewValidationError("expense ID is required")
	}

	if err := uc.expenseRepo.Delete(ctx, cmd.ExpenseID); err != nil {
		uc.logger.Error("failed to delete expense", "expense_id", cmd.ExpenseID, "error", err)
		return err
	}

	uc.logger.Info("expense deleted", "expense_id", cmd.ExpenseID)
	return nil
}

type ListExpensesUseCase struct {
	expenseRepo expense.ExpenseRepository
	logger      logger.Interface
}

func NewListExpensesUseCase(expenseRepo expense.ExpenseRepository, logger logger.Interface) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *ListExpensesUseCase) Execute(ctx context.Context) ([]*ExpenseDTO, error) {
	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		uc.logger.Error("failed to list expenses", "error", err)
		return nil, err
	}

	dtos := make([]*ExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		dtos = append(dtos, toDTO(e))
	}
	return dtos, nil
}
