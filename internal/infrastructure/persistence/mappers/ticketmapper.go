package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"fieldops/internal/domain/ticket"
	vo "fieldops/internal/domain/ticket/value_objects"
	"fieldops/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:            t.ID(),
		ClientName:    t.ClientName(),
		ContactPhone:  t.ContactPhone(),
		Location:      t.Location(),
		Latitude:      t.Latitude(),
		Longitude:     t.Longitude(),
		Description:   t.Description(),
		Status:        t.Status().String(),
		LinkedOrderID: t.LinkedOrderID(),
		CreatedAt:     t.CreatedAt().UnixMilli(),
		UpdatedAt:     t.UpdatedAt().UnixMilli(),
	}

	if len(t.PhotoURLs()) > 0 {
		photosJSON, _ := json.Marshal(t.PhotoURLs())
		model.PhotoURLs = string(photosJSON)
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", model.ID, err)
	}

	var photoURLs []string
	if model.PhotoURLs != "" {
		if err := json.Unmarshal([]byte(model.PhotoURLs), &photoURLs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket photos (id=%s): %w", model.ID, err)
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.ClientName,
		model.ContactPhone,
		model.Location,
		model.Latitude,
		model.Longitude,
		model.Description,
		photoURLs,
		status,
		model.LinkedOrderID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
