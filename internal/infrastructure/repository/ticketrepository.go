package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldops/internal/domain/ticket"
	"fieldops/internal/infrastructure/persistence/mappers"
	"fieldops/internal/infrastructure/persistence/models"
	"fieldops/internal/infrastructure/pubsub"
	db "fieldops/internal/shared/db"
	apperrors "fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

const ticketTable = "client_tickets"

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	feed   pubsub.ChangePublisher
	logger logger.Interface
}

func NewTicketRepository(database *gorm.DB, feed pubsub.ChangePublisher, log logger.Interface) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
		feed:   feed,
		logger: log,
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	r.notify(ctx, pubsub.OperationInsert)
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	r.notify(ctx, pubsub.OperationUpdate)
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ?", ticketID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var modelList []models.TicketModel
	if err := query.Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}

	return tickets, nil
}

func (r *TicketRepository) GetByContactPhone(ctx context.Context, phone string) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.TicketModel
	if err := tx.
		Where("contact_phone = ?", phone).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to find tickets by phone: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}

	return tickets, nil
}

// notify publishes a change event after a successful mutation. Inside a
// transaction the publish waits for the commit; a rollback publishes nothing.
// Publishing is best effort: caches converge on the next event, so a miss is
// not fatal.
func (r *TicketRepository) notify(ctx context.Context, op pubsub.Operation) {
	if r.feed == nil {
		return
	}
	db.AfterCommit(ctx, func() {
		if err := r.feed.Publish(ctx, ticketTable, op); err != nil {
			r.logger.Warn("failed to publish ticket change", "operation", op, "error", err)
		}
	})
}
