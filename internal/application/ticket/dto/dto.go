package dto

import (
	"time"

	"fieldops/internal/domain/ticket"
)

type TicketDTO struct {
	ID            string    `json:"id"`
	ClientName    string    `json:"client_name"`
	ContactPhone  string    `json:"contact_phone"`
	Location      string    `json:"location"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	Description   string    `json:"description"`
	PhotoURLs     []string  `json:"photo_urls"`
	Status        string    `json:"status"`
	LinkedOrderID uint      `json:"linked_order_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromEntity(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:            t.ID(),
		ClientName:    t.ClientName(),
		ContactPhone:  t.ContactPhone(),
		Location:      t.Location(),
		Latitude:      t.Latitude(),
		Longitude:     t.Longitude(),
		Description:   t.Description(),
		PhotoURLs:     t.PhotoURLs(),
		Status:        t.Status().String(),
		LinkedOrderID: t.LinkedOrderID(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}

func FromEntities(tickets []*ticket.Ticket) []*TicketDTO {
	dtos := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, FromEntity(t))
	}
	return dtos
}
