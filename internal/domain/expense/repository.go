package expense

import "context"

type ExpenseRepository interface {
	Save(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, expenseID string) error
	List(ctx context.Context) ([]*Expense, error)
}
