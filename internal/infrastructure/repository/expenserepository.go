package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldops/internal/domain/expense"
	"fieldops/internal/infrastructure/persistence/mappers"
	"fieldops/internal/infrastructure/persistence/models"
	"fieldops/internal/infrastructure/pubsub"
	db "fieldops/internal/shared/db"
	apperrors "fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

const expenseTable = "expenses"

type ExpenseRepository struct {
	db     *gorm.DB
	mapper mappers.ExpenseMapper
	feed   pubsub.ChangePublisher
	logger logger.Interface
}

func NewExpenseRepository(database *gorm.DB, feed pubsub.ChangePublisher, log logger.Interface) *ExpenseRepository {
	return &ExpenseRepository{
		db:     database,
		mapper: mappers.NewExpenseMapper(),
		feed:   feed,
		logger: log,
	}
}

func (r *ExpenseRepository) Save(ctx context.Context, e *expense.Expense) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	r.notify(ctx, pubsub.OperationInsert)
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, expenseID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("id = ?", expenseID).Delete(&models.ExpenseModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("expense not found")
	}

	r.notify(ctx, pubsub.OperationDelete)
	return nil
}

func (r *ExpenseRepository) List(ctx context.Context) ([]*expense.Expense, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.ExpenseModel
	if err := tx.Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	expenses := make([]*expense.Expense, 0, len(modelList))
	for i := range modelList {
		e, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	return expenses, nil
}

func (r *ExpenseRepository) notify(ctx context.Context, op pubsub.Operation) {
	if r.feed == nil {
		return
	}
	db.AfterCommit(ctx, func() {
		if err := r.feed.Publish(ctx, expenseTable, op); err != nil {
			r.logger.Warn("failed to publish expense change", "operation", op, "error", err)
		}
	})
}
