package mappers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fieldops/internal/domain/order"
	vo "fieldops/internal/domain/order/value_objects"
	"fieldops/internal/infrastructure/persistence/models"
)

// OrderMapper handles the conversion between ServiceOrder domain entities and persistence models.
type OrderMapper interface {
	ToModel(o *order.ServiceOrder) *models.ServiceOrderModel
	ToDomain(model *models.ServiceOrderModel) (*order.ServiceOrder, error)
}

type OrderMapperImpl struct{}

func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

func (m *OrderMapperImpl) ToModel(o *order.ServiceOrder) *models.ServiceOrderModel {
	model := &models.ServiceOrderModel{
		ID:                 o.ID(),
		ClientName:         o.ClientName(),
		ContactPhone:       o.ContactPhone(),
		ContactEmail:       o.ContactEmail(),
		ServiceCategory:    o.ServiceCategory().String(),
		Address:            o.Address(),
		Latitude:           o.Latitude(),
		Longitude:          o.Longitude(),
		ProblemDescription: o.ProblemDescription(),
		WorkNotes:          o.WorkNotes(),
		LaborCostCents:     o.LaborCostCents(),
		MaterialCostCents:  o.MaterialCostCents(),
		MaterialNotes:      o.MaterialNotes(),
		Status:             o.Status().String(),
		CreatedAt:          o.CreatedAt().UnixMilli(),
		UpdatedAt:          o.UpdatedAt().UnixMilli(),
	}

	photos := o.Photos()
	model.PhotosBefore = marshalURLs(photos.Before)
	model.PhotosDuring = marshalURLs(photos.During)
	model.PhotosAfter = marshalURLs(photos.After)

	if techs := o.AssignedTechnicians(); len(techs) > 0 {
		model.AssignedTechnicians = strings.Join(techs, ",")
	}

	if o.ExecutedAt() != nil {
		executed := o.ExecutedAt().UnixMilli()
		model.ExecutedAt = &executed
	}

	if o.ClosedAt() != nil {
		closed := o.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *OrderMapperImpl) ToDomain(model *models.ServiceOrderModel) (*order.ServiceOrder, error) {
	category, err := vo.NewServiceCategory(model.ServiceCategory)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", model.ID, err)
	}
	status, err := vo.NewOrderStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", model.ID, err)
	}

	photos := vo.NewPhotoSet()
	if photos.Before, err = unmarshalURLs(model.PhotosBefore); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order photos (id=%d): %w", model.ID, err)
	}
	if photos.During, err = unmarshalURLs(model.PhotosDuring); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order photos (id=%d): %w", model.ID, err)
	}
	if photos.After, err = unmarshalURLs(model.PhotosAfter); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order photos (id=%d): %w", model.ID, err)
	}

	var technicians []string
	if model.AssignedTechnicians != "" {
		technicians = strings.Split(model.AssignedTechnicians, ",")
	}

	var executedAt, closedAt *time.Time
	if model.ExecutedAt != nil {
		t := millisToTime(*model.ExecutedAt)
		executedAt = &t
	}
	if model.ClosedAt != nil {
		t := millisToTime(*model.ClosedAt)
		closedAt = &t
	}

	return order.ReconstructServiceOrder(
		model.ID,
		model.ClientName,
		model.ContactPhone,
		model.ContactEmail,
		category,
		model.Address,
		model.Latitude,
		model.Longitude,
		model.ProblemDescription,
		model.WorkNotes,
		photos,
		model.LaborCostCents,
		model.MaterialCostCents,
		model.MaterialNotes,
		status,
		technicians,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
		executedAt,
		closedAt,
	)
}

func marshalURLs(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	data, _ := json.Marshal(urls)
	return string(data)
}

func unmarshalURLs(data string) ([]string, error) {
	if data == "" {
		return []string{}, nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(data), &urls); err != nil {
		return nil, err
	}
	return urls, nil
}
