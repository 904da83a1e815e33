package dto

import (
	"time"

	"fieldops/internal/domain/order"
)

type OrderDTO struct {
	ID                  uint       `json:"id"`
	ClientName          string     `json:"client_name"`
	ContactPhone        string     `json:"contact_phone"`
	ContactEmail        string     `json:"contact_email,omitempty"`
	ServiceCategory     string     `json:"service_category"`
	Address             string     `json:"address"`
	Latitude            *float64   `json:"latitude,omitempty"`
	Longitude           *float64   `json:"longitude,omitempty"`
	ProblemDescription  string     `json:"problem_description"`
	WorkNotes           string     `json:"work_notes"`
	PhotosBefore        []string   `json:"photos_before"`
	PhotosDuring        []string   `json:"photos_during"`
	PhotosAfter         []string   `json:"photos_after"`
	LaborCostCents      int64      `json:"labor_cost_cents"`
	MaterialCostCents   int64      `json:"material_cost_cents"`
	TotalCents          int64      `json:"total_cents"`
	MaterialNotes       string     `json:"material_notes"`
	Status              string     `json:"status"`
	AssignedTechnicians []string   `json:"assigned_technicians"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	ExecutedAt          *time.Time `json:"executed_at,omitempty"`
	ClosedAt            *time.Time `json:"closed_at,omitempty"`
	ReportURL           string     `json:"report_url,omitempty"`
}

func FromEntity(o *order.ServiceOrder) *OrderDTO {
	photos := o.Photos()
	return &OrderDTO{
		ID:                  o.ID(),
		ClientName:          o.ClientName(),
		ContactPhone:        o.ContactPhone(),
		ContactEmail:        o.ContactEmail(),
		ServiceCategory:     o.ServiceCategory().String(),
		Address:             o.Address(),
		Latitude:            o.Latitude(),
		Longitude:           o.Longitude(),
		ProblemDescription:  o.ProblemDescription(),
		WorkNotes:           o.WorkNotes(),
		PhotosBefore:        photos.Before,
		PhotosDuring:        photos.During,
		PhotosAfter:         photos.After,
		LaborCostCents:      o.LaborCostCents(),
		MaterialCostCents:   o.MaterialCostCents(),
		TotalCents:          o.TotalCents(),
		MaterialNotes:       o.MaterialNotes(),
		Status:              o.Status().String(),
		AssignedTechnicians: o.AssignedTechnicians(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
		ExecutedAt:          o.ExecutedAt(),
		ClosedAt:            o.ClosedAt(),
	}
}

func FromEntities(orders []*order.ServiceOrder) []*OrderDTO {
	dtos := make([]*OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, FromEntity(o))
	}
	return dtos
}
