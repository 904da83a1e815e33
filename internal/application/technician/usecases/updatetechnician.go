package usecases

import (
	"context"

	"fieldops/internal/application/technician/dto"
	"fieldops/internal/domain/technician"
	vo "fieldops/internal/domain/technician/value_objects"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

type UpdateTechnicianCommand struct {
	TechnicianID string
	Name         *string
	Phone        *string
	Email        *string
	Specialty    *string
	Status       *string
	Username     *string
	Password     *string
	DocumentURLs []string
}

// UpdateTechnicianUseCase applies a partial update. Orders reference
// technicians by name, so a rename only affects future assignments.
type UpdateTechnicianUseCase struct {
	techRepo    technician.TechnicianRepository
	hasher      PasswordHasher
	countryCode string
	logger      logger.Interface
}

func NewUpdateTechnicianUseCase(
	techRepo technician.TechnicianRepository,
	hasher PasswordHasher,
	countryCode string,
	logger logger.Interface,
) *UpdateTechnicianUseCase {
	return &UpdateTechnicianUseCase{
		techRepo:    techRepo,
		hasher:      hasher,
		countryCode: countryCode,
		logger:      logger,
	}
}

func (uc *UpdateTechnicianUseCase) Execute(ctx context.Context, cmd UpdateTechnicianCommand) (*dto.TechnicianDTO, error) {
	if cmd.TechnicianID == "" {
		return nil, errors.NewValidationError("technician ID is required")
	}

	tech, err := uc.techRepo.GetByID(ctx, cmd.TechnicianID)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(tech, cmd); err != nil {
		return nil, err
	}

	if err := uc.techRepo.Update(ctx, tech); err != nil {
		uc.logger.Error("failed to update technician", "technician_id", cmd.TechnicianID, "error", err)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username already in use")
		}
		return nil, err
	}

	uc.logger.Info("technician updated", "technician_id", tech.ID())

	return dto.FromEntity(tech), nil
}

func (uc *UpdateTechnicianUseCase) apply(tech *technician.Technician, cmd UpdateTechnicianCommand) error {
	if cmd.Name != nil || cmd.Phone != nil || cmd.Email != nil {
		name := tech.Name()
		phone := tech.Phone()
		email := tech.Email()
		if cmd.Name != nil {
			name = *cmd.Name
		}
		if cmd.Phone != nil {
			phone = utils.NormalizePhone(*cmd.Phone, uc.countryCode)
		}
		if cmd.Email != nil {
			email = *cmd.Email
		}
		if err := tech.UpdateProfile(name, phone, email); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Specialty != nil {
		specialty, err := vo.NewSpecialty(*cmd.Specialty)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := tech.ChangeSpecialty(specialty); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Status != nil {
		status, err := vo.NewTechnicianStatus(*cmd.Status)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := tech.ChangeStatus(status); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Username != nil && cmd.Password != nil {
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Error("failed to hash technician password", "error", err)
			return errors.NewInternalError("failed to hash password")
		}
		if err := tech.SetCredentials(*cmd.Username, hash); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.DocumentURLs != nil {
		tech.SetDocumentURLs(cmd.DocumentURLs)
	}

	return nil
}
