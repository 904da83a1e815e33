package mappers

import (
	"fmt"

	"fieldops/internal/domain/expense"
	"fieldops/internal/infrastructure/persistence/models"
)

// ExpenseMapper handles the conversion between Expense domain entities and persistence models.
type ExpenseMapper interface {
	ToModel(e *expense.Expense) *models.ExpenseModel
	ToDomain(model *models.ExpenseModel) (*expense.Expense, error)
}

type ExpenseMapperImpl struct{}

func NewExpenseMapper() ExpenseMapper {
	return &ExpenseMapperImpl{}
}

func (m *ExpenseMapperImpl) ToModel(e *expense.Expense) *models.ExpenseModel {
	return &models.ExpenseModel{
		ID:          e.ID(),
		Category:    e.Category().String(),
		Description: e.Description(),
		AmountCents: e.AmountCents(),
		CreatedAt:   e.CreatedAt().UnixMilli(),
	}
}

func (m *ExpenseMapperImpl) ToDomain(model *models.ExpenseModel) (*expense.Expense, error) {
	category, err := expense.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("expense %s: %w", model.ID, err)
	}

	return expense.ReconstructExpense(
		model.ID,
		category,
		model.Description,
		model.AmountCents,
		millisToTime(model.CreatedAt),
	)
}
