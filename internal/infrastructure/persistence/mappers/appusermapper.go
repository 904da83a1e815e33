package mappers

import (
	"fieldops/internal/domain/identity"
	"fieldops/internal/infrastructure/persistence/models"
)

// AppUserMapper handles the conversion between AppUser domain entities and persistence models.
type AppUserMapper interface {
	ToModel(u *identity.AppUser) *models.AppUserModel
	ToDomain(model *models.AppUserModel) (*identity.AppUser, error)
}

type AppUserMapperImpl struct{}

func NewAppUserMapper() AppUserMapper {
	return &AppUserMapperImpl{}
}

func (m *AppUserMapperImpl) ToModel(u *identity.AppUser) *models.AppUserModel {
	return &models.AppUserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *AppUserMapperImpl) ToDomain(model *models.AppUserModel) (*identity.AppUser, error) {
	return identity.ReconstructAppUser(
		model.ID,
		model.Username,
		model.PasswordHash,
		model.Role,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
