package usecases

import (
	"context"

	"fieldops/internal/application/technician/dto"
	"fieldops/internal/domain/technician"
	vo "fieldops/internal/domain/technician/value_objects"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/id"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

// PasswordHasher hashes credentials handed out to field technicians.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type CreateTechnicianCommand struct {
	Name      string
	Phone     string
	Email     string
	Specialty string
	Username  string
	Password  string
}

type CreateTechnicianUseCase struct {
	techRepo    technician.TechnicianRepository
	hasher      PasswordHasher
	countryCode string
	logger      logger.Interface
}

func NewCreateTechnicianUseCase(
	techRepo technician.TechnicianRepository,
	hasher PasswordHasher,
	countryCode string,
	logger logger.Interface,
) *CreateTechnicianUseCase {
	return &CreateTechnicianUseCase{
		techRepo:    techRepo,
		hasher:      hasher,
		countryCode: countryCode,
		logger:      logger,
	}
}

func (uc *CreateTechnicianUseCase) Execute(ctx context.Context, cmd CreateTechnicianCommand) (*dto.TechnicianDTO, error) {
	specialty, err := vo.NewSpecialty(cmd.Specialty)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if (cmd.Username == "") != (cmd.Password == "") {
		return nil, errors.NewValidationError("username and password must be provided together")
	}

	techID, err := id.NewTechnicianID()
	if err != nil {
		return nil, errors.NewInternalError("failed to generate technician ID")
	}

	tech, err := technician.NewTechnician(
		techID,
		cmd.Name,
		utils.NormalizePhone(cmd.Phone, uc.countryCode),
		cmd.Email,
		specialty,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Username != "" {
		hash, err := uc.hasher.Hash(cmd.Password)
		if err != nil {
			uc.logger.Error("failed to hash technician password", "error", err)
			return nil, errors.NewInternalError("failed to hash password")
		}
		if err := tech.SetCredentials(cmd.Username, hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.techRepo.Save(ctx, tech); err != nil {
		uc.logger.Error("failed to save technician", "error", err)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username already in use")
		}
		return nil, err
	}

	uc.logger.Info("technician created", "technician_id", tech.ID(), "name", tech.Name())

	return dto.FromEntity(tech), nil
}
