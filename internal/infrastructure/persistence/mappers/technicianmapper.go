package mappers

import (
	"encoding/json"
	"fmt"

	"fieldops/internal/domain/technician"
	vo "fieldops/internal/domain/technician/value_objects"
	"fieldops/internal/infrastructure/persistence/models"
)

// TechnicianMapper handles the conversion between Technician domain entities and persistence models.
type TechnicianMapper interface {
	ToModel(t *technician.Technician) *models.TechnicianModel
	ToDomain(model *models.TechnicianModel) (*technician.Technician, error)
}

type TechnicianMapperImpl struct{}

func NewTechnicianMapper() TechnicianMapper {
	return &TechnicianMapperImpl{}
}

func (m *TechnicianMapperImpl) ToModel(t *technician.Technician) *models.TechnicianModel {
	model := &models.TechnicianModel{
		ID:           t.ID(),
		Name:         t.Name(),
		Phone:        t.Phone(),
		Email:        t.Email(),
		Specialty:    t.Specialty().String(),
		Status:       t.Status().String(),
		Username:     t.Username(),
		PasswordHash: t.PasswordHash(),
		CreatedAt:    t.CreatedAt().UnixMilli(),
		UpdatedAt:    t.UpdatedAt().UnixMilli(),
	}

	if len(t.DocumentURLs()) > 0 {
		docsJSON, _ := json.Marshal(t.DocumentURLs())
		model.DocumentURLs = string(docsJSON)
	}

	return model
}

func (m *TechnicianMapperImpl) ToDomain(model *models.TechnicianModel) (*technician.Technician, error) {
	specialty, err := vo.NewSpecialty(model.Specialty)
	if err != nil {
		return nil, fmt.Errorf("technician %s: %w", model.ID, err)
	}
	status, err := vo.NewTechnicianStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("technician %s: %w", model.ID, err)
	}

	var documentURLs []string
	if model.DocumentURLs != "" {
		if err := json.Unmarshal([]byte(model.DocumentURLs), &documentURLs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal technician documents (id=%s): %w", model.ID, err)
		}
	}

	return technician.ReconstructTechnician(
		model.ID,
		model.Name,
		model.Phone,
		model.Email,
		specialty,
		status,
		model.Username,
		model.PasswordHash,
		documentURLs,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
