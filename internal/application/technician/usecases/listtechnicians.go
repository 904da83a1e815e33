package usecases

import (
	"context"

	"fieldops/internal/application/technician/dto"
	"fieldops/internal/domain/technician"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

type ListTechniciansUseCase struct {
	techRepo technician.TechnicianRepository
	logger   logger.Interface
}

func NewListTechniciansUseCase(techRepo technician.TechnicianRepository, logger logger.Interface) *ListTechniciansUseCase {
	return &ListTechniciansUseCase{
		techRepo: techRepo,
		logger:   logger,
	}
}

func (uc *ListTechniciansUseCase) Execute(ctx context.Context) ([]*dto.TechnicianDTO, error) {
	technicians, err := uc.techRepo.List(ctx)
	if err != nil {
		uc.logger.Error("failed to list technicians", "error", err)
		return nil, err
	}

	return dto.FromEntities(technicians), nil
}

type DeleteTechnicianCommand struct {
	TechnicianID string
}

type DeleteTechnicianUseCase struct {
	techRepo technician.TechnicianRepository
	logger   logger.Interface
}

func NewDeleteTechnicianUseCase(techRepo technician.TechnicianRepository, logger logger.Interface) *DeleteTechnicianUseCase {
	return &DeleteTechnicianUseCase{
		techRepo: techRepo,
		logger:   logger,
	}
}

func (uc *DeleteTechnicianUseCase) Execute(ctx context.Context, cmd DeleteTechnicianCommand) error {
	if cmd.TechnicianID == "" {
		return errors.NewValidationError("technician ID is required")
	}

	if err := uc.techRepo.Delete(ctx, cmd.TechnicianID); err != nil {
		uc.logger.Error("failed to delete technician", "technician_id", cmd.TechnicianID, "error", err)
		return err
	}

	uc.logger.Info("technician deleted", "technician_id", cmd.TechnicianID)
	return nil
}
