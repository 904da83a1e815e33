package dto

import (
	"time"

	"fieldops/internal/domain/technician"
)

type TechnicianDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Specialty      string    `json:"specialty"`
	Status         string    `json:"status"`
	Username       string    `json:"username,omitempty"`
	HasCredentials bool      `json:"has_credentials"`
	DocumentURLs   []string  `json:"document_urls"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromEntity(t *technician.Technician) *TechnicianDTO {
	return &TechnicianDTO{
		ID:             t.ID(),
		Name:           t.Name(),
		Phone:          t.Phone(),
		Email:          t.Email(),
		Specialty:      t.Specialty().String(),
		Status:         t.Status().String(),
		Username:       t.Username(),
		HasCredentials: t.HasCredentials(),
		DocumentURLs:   t.DocumentURLs(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func FromEntities(technicians []*technician.Technician) []*TechnicianDTO {
	dtos := make([]*TechnicianDTO, 0, len(technicians))
	for _, t := range technicians {
		dtos = append(dtos, FromEntity(t))
	}
	return dtos
}
