package ticket

import (
	"fmt"
	"time"

	vo "fieldops/internal/domain/ticket/value_objects"
)

// Ticket is a client-submitted service request awaiting dispatch triage.
type Ticket struct {
	id            string
	clientName    string
	contactPhone  string
	location      string
	latitude      *float64
	longitude     *float64
	description   string
	photoURLs     []string
	status        vo.TicketStatus
	linkedOrderID uint
	createdAt     time.Time
	updatedAt     time.Time
}

func NewTicket(
	id string,
	clientName string,
	contactPhone string,
	location string,
	description string,
	photoURLs []string,
) (*Ticket, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(clientName) == 0 {
		return nil, fmt.Errorf("client name is required")
	}
	if len(contactPhone) == 0 {
		return nil, fmt.Errorf("contact phone is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}

	if photoURLs == nil {
		photoURLs = []string{}
	}

	now := time.Now()

	return &Ticket{
		id:           id,
		clientName:   clientName,
		contactPhone: contactPhone,
		location:     location,
		description:  description,
		photoURLs:    photoURLs,
		status:       vo.StatusPending,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructTicket(
	id string,
	clientName string,
	contactPhone string,
	location string,
	latitude *float64,
	longitude *float64,
	description string,
	photoURLs []string,
	status vo.TicketStatus,
	linkedOrderID uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if photoURLs == nil {
		photoURLs = []string{}
	}

	return &Ticket{
		id:            id,
		clientName:    clientName,
		contactPhone:  contactPhone,
		location:      location,
		latitude:      latitude,
		longitude:     longitude,
		description:   description,
		photoURLs:     photoURLs,
		status:        status,
		linkedOrderID: linkedOrderID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) ClientName() string {
	return t.clientName
}

func (t *Ticket) ContactPhone() string {
	return t.contactPhone
}

func (t *Ticket) Location() string {
	return t.location
}

func (t *Ticket) Latitude() *float64 {
	return t.latitude
}

func (t *Ticket) Longitude() *float64 {
	return t.longitude
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) PhotoURLs() []string {
	urlsCopy := make([]string, len(t.photoURLs))
	copy(urlsCopy, t.photoURLs)
	return urlsCopy
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

// LinkedOrderID returns the service order created from this ticket,
// zero while the ticket has not been accepted.
func (t *Ticket) LinkedOrderID() uint {
	return t.linkedOrderID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// SetCoordinates records the client-supplied position.
func (t *Ticket) SetCoordinates(latitude, longitude float64) {
	t.latitude = &latitude
	t.longitude = &longitude
	t.updatedAt = time.Now()
}

// Accept links the ticket to the service order created from it and marks it
// accepted. The link is set exactly once.
func (t *Ticket) Accept(orderID uint) error {
	if orderID == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	if t.linkedOrderID != 0 {
		return fmt.Errorf("ticket is already linked to order %d", t.linkedOrderID)
	}
	if !t.status.CanTransitionTo(vo.StatusAccepted) {
		return fmt.Errorf("cannot accept ticket with status %s", t.status)
	}

	t.linkedOrderID = orderID
	t.status = vo.StatusAccepted
	t.updatedAt = time.Now()

	return nil
}

// Reject marks the ticket rejected. Rejected tickets are immutable.
func (t *Ticket) Reject() error {
	if !t.status.CanTransitionTo(vo.StatusRejected) {
		return fmt.Errorf("cannot reject ticket with status %s", t.status)
	}

	t.status = vo.StatusRejected
	t.updatedAt = time.Now()

	return nil
}

func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	// Statuses past pending imply an order was created from this ticket.
	if newStatus != vo.StatusPending && newStatus != vo.StatusRejected && t.linkedOrderID == 0 {
		if newStatus != vo.StatusAccepted {
			return fmt.Errorf("cannot move unlinked ticket to %s", newStatus)
		}
		return fmt.Errorf("use Accept to link an order")
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	return nil
}
