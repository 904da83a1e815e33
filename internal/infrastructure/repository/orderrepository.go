package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldops/internal/domain/order"
	"fieldops/internal/infrastructure/persistence/mappers"
	"fieldops/internal/infrastructure/persistence/models"
	"fieldops/internal/infrastructure/pubsub"
	db "fieldops/internal/shared/db"
	apperrors "fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

const orderTable = "service_orders"

type OrderRepository struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
	feed   pubsub.ChangePublisher
	logger logger.Interface
}

func NewOrderRepository(database *gorm.DB, feed pubsub.ChangePublisher, log logger.Interface) *OrderRepository {
	return &OrderRepository{
		db:     database,
		mapper: mappers.NewOrderMapper(),
		feed:   feed,
		logger: log,
	}
}

func (r *OrderRepository) Save(ctx context.Context, o *order.ServiceOrder) error {
	model := r.mapper.ToModel(o)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if o.ID() == 0 {
		if err := o.SetID(model.ID); err != nil {
			return err
		}
	}

	r.notify(ctx, pubsub.OperationInsert)
	return nil
}

// Update persists the full order snapshot in one statement, so a status
// transition and its accompanying draft field edits land atomically.
func (r *OrderRepository) Update(ctx context.Context, o *order.ServiceOrder) error {
	model := r.mapper.ToModel(o)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") forces zeroed columns (e.g. material cost reset on quote
	// decline) to be written as well.
	result := tx.
		Model(&models.ServiceOrderModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}

	r.notify(ctx, pubsub.OperationUpdate)
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, orderID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ServiceOrderModel{}, orderID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("order not found")
	}

	r.notify(ctx, pubsub.OperationDelete)
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID uint) (*order.ServiceOrder, error) {
	var model models.ServiceOrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *OrderRepository) List(ctx context.Context, filter order.OrderFilter) ([]*order.ServiceOrder, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ServiceOrderModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var modelList []models.ServiceOrderModel
	if err := query.Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*order.ServiceOrder, 0, len(modelList))
	for i := range modelList {
		o, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// notify publishes the change event once the mutation is visible to other
// readers. Inside a transaction that means after commit; publishing earlier
// would let a subscriber refresh against pre-commit state with no later event
// to correct it.
func (r *OrderRepository) notify(ctx context.Context, op pubsub.Operation) {
	if r.feed == nil {
		return
	}
	db.AfterCommit(ctx, func() {
		if err := r.feed.Publish(ctx, orderTable, op); err != nil {
			r.logger.Warn("failed to publish order change", "operation", op, "error", err)
		}
	})
}
