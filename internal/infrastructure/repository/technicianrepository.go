package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldops/internal/domain/technician"
	"fieldops/internal/infrastructure/persistence/mappers"
	"fieldops/internal/infrastructure/persistence/models"
	"fieldops/internal/infrastructure/pubsub"
	db "fieldops/internal/shared/db"
	apperrors "fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

const technicianTable = "technicians"

type TechnicianRepository struct {
	db     *gorm.DB
	mapper mappers.TechnicianMapper
	feed   pubsub.ChangePublisher
	logger logger.Interface
}

func NewTechnicianRepository(database *gorm.DB, feed pubsub.ChangePublisher, log logger.Interface) *TechnicianRepository {
	return &TechnicianRepository{
		db:     database,
		mapper: mappers.NewTechnicianMapper(),
		feed:   feed,
		logger: log,
	}
}

func (r *TechnicianRepository) Save(ctx context.Context, t *technician.Technician) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save technician: %w", err)
	}

	r.notify(ctx, pubsub.OperationInsert)
	return nil
}

func (r *TechnicianRepository) Update(ctx context.Context, t *technician.Technician) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TechnicianModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update technician: %w", result.Error)
	}

	r.notify(ctx, pubsub.OperationUpdate)
	return nil
}

func (r *TechnicianRepository) Delete(ctx context.Context, technicianID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("id = ?", technicianID).Delete(&models.TechnicianModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete technician: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("technician not found")
	}

	r.notify(ctx, pubsub.OperationDelete)
	return nil
}

func (r *TechnicianRepository) GetByID(ctx context.Context, technicianID string) (*technician.Technician, error) {
	var model models.TechnicianModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ?", technicianID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("technician not found")
		}
		return nil, fmt.Errorf("failed to find technician: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TechnicianRepository) GetByUsername(ctx context.Context, username string) (*technician.Technician, error) {
	var model models.TechnicianModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("username = ?", username).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("technician not found")
		}
		return nil, fmt.Errorf("failed to find technician: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TechnicianRepository) List(ctx context.Context) ([]*technician.Technician, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.TechnicianModel
	if err := tx.Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}

	technicians := make([]*technician.Technician, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		technicians = append(technicians, t)
	}

	return technicians, nil
}

func (r *TechnicianRepository) notify(ctx context.Context, op pubsub.Operation) {
	if r.feed == nil {
		return
	}
	db.AfterCommit(ctx, func() {
		if err := r.feed.Publish(ctx, technicianTable, op); err != nil {
			r.logger.Warn("failed to publish technician change", "operation", op, "error", err)
		}
	})
}
