package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fieldops/internal/domain/identity"
	"fieldops/internal/infrastructure/persistence/mappers"
	"fieldops/internal/infrastructure/persistence/models"
	db "fieldops/internal/shared/db"
	apperrors "fieldops/internal/shared/errors"
)

// AppUserRepository does not publish change feed events: logins are not part
// of the dispatcher board and nothing caches app_users.
type AppUserRepository struct {
	db     *gorm.DB
	mapper mappers.AppUserMapper
}

func NewAppUserRepository(database *gorm.DB) *AppUserRepository {
	return &AppUserRepository{
		db:     database,
		mapper: mappers.NewAppUserMapper(),
	}
}

func (r *AppUserRepository) Save(ctx context.Context, u *identity.AppUser) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save app user: %w", err)
	}

	if u.ID() == 0 {
		if err := u.SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *AppUserRepository) Update(ctx context.Context, u *identity.AppUser) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AppUserModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update app user: %w", result.Error)
	}

	return nil
}

func (r *AppUserRepository) GetByUsername(ctx context.Context, username string) (*identity.AppUser, error) {
	var model models.AppUserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("username = ?", username).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find app user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
