package order

import (
	"fmt"
	"strings"
	"time"

	vo "fieldops/internal/domain/order/value_objects"
)

// QuoteDeclinedNote is appended to the work notes when a client declines a
// quote and the order closes with only the visit fee billed.
const QuoteDeclinedNote = "Orçamento recusado pelo cliente."

// ServiceOrder is the unit of work a ticket becomes once accepted, tracked
// from triage through execution to billing and closure.
type ServiceOrder struct {
	id                  uint
	clientName          string
	contactPhone        string
	contactEmail        string
	serviceCategory     vo.ServiceCategory
	address             string
	latitude            *float64
	longitude           *float64
	problemDescription  string
	workNotes           string
	photos              vo.PhotoSet
	laborCostCents      int64
	materialCostCents   int64
	materialNotes       string
	status              vo.OrderStatus
	assignedTechnicians []string
	createdAt           time.Time
	updatedAt           time.Time
	executedAt          *time.Time
	closedAt            *time.Time
}

func NewServiceOrder(
	clientName string,
	contactPhone string,
	contactEmail string,
	serviceCategory vo.ServiceCategory,
	address string,
	problemDescription string,
) (*ServiceOrder, error) {
	if len(clientName) == 0 {
		return nil, fmt.Errorf("client name is required")
	}
	if len(contactPhone) == 0 {
		return nil, fmt.Errorf("contact phone is required")
	}
	if !serviceCategory.IsValid() {
		return nil, fmt.Errorf("invalid service category")
	}
	if len(problemDescription) == 0 {
		return nil, fmt.Errorf("problem description is required")
	}

	now := time.Now()

	return &ServiceOrder{
		clientName:          clientName,
		contactPhone:        contactPhone,
		contactEmail:        contactEmail,
		serviceCategory:     serviceCategory,
		address:             address,
		problemDescription:  problemDescription,
		photos:              vo.NewPhotoSet(),
		status:              vo.StatusOpen,
		assignedTechnicians: []string{},
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

func ReconstructServiceOrder(
	id uint,
	clientName string,
	contactPhone string,
	contactEmail string,
	serviceCategory vo.ServiceCategory,
	address string,
	latitude *float64,
	longitude *float64,
	problemDescription string,
	workNotes string,
	photos vo.PhotoSet,
	laborCostCents int64,
	materialCostCents int64,
	materialNotes string,
	status vo.OrderStatus,
	assignedTechnicians []string,
	createdAt, updatedAt time.Time,
	executedAt, closedAt *time.Time,
) (*ServiceOrder, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if !serviceCategory.IsValid() {
		return nil, fmt.Errorf("invalid service category")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if laborCostCents < 0 || materialCostCents < 0 {
		return nil, fmt.Errorf("costs cannot be negative")
	}

	if assignedTechnicians == nil {
		assignedTechnicians = []string{}
	}

	return &ServiceOrder{
		id:                  id,
		clientName:          clientName,
		contactPhone:        contactPhone,
		contactEmail:        contactEmail,
		serviceCategory:     serviceCategory,
		address:             address,
		latitude:            latitude,
		longitude:           longitude,
		problemDescription:  problemDescription,
		workNotes:           workNotes,
		photos:              photos,
		laborCostCents:      laborCostCents,
		materialCostCents:   materialCostCents,
		materialNotes:       materialNotes,
		status:              status,
		assignedTechnicians: assignedTechnicians,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
		executedAt:          executedAt,
		closedAt:            closedAt,
	}, nil
}

func (o *ServiceOrder) ID() uint {
	return o.id
}

func (o *ServiceOrder) ClientName() string {
	return o.clientName
}

func (o *ServiceOrder) ContactPhone() string {
	return o.contactPhone
}

func (o *ServiceOrder) ContactEmail() string {
	return o.contactEmail
}

func (o *ServiceOrder) ServiceCategory() vo.ServiceCategory {
	return o.serviceCategory
}

func (o *ServiceOrder) Address() string {
	return o.address
}

func (o *ServiceOrder) Latitude() *float64 {
	return o.latitude
}

func (o *ServiceOrder) Longitude() *float64 {
	return o.longitude
}

func (o *ServiceOrder) ProblemDescription() string {
	return o.problemDescription
}

func (o *ServiceOrder) WorkNotes() string {
	return o.workNotes
}

func (o *ServiceOrder) Photos() vo.PhotoSet {
	return o.photos.Copy()
}

func (o *ServiceOrder) LaborCostCents() int64 {
	return o.laborCostCents
}

func (o *ServiceOrder) MaterialCostCents() int64 {
	return o.materialCostCents
}

// TotalCents is what the client is billed for the order.
func (o *ServiceOrder) TotalCents() int64 {
	return o.laborCostCents + o.materialCostCents
}

func (o *ServiceOrder) MaterialNotes() string {
	return o.materialNotes
}

func (o *ServiceOrder) Status() vo.OrderStatus {
	return o.status
}

func (o *ServiceOrder) AssignedTechnicians() []string {
	techsCopy := make([]string, len(o.assignedTechnicians))
	copy(techsCopy, o.assignedTechnicians)
	return techsCopy
}

func (o *ServiceOrder) CreatedAt() time.Time {
	return o.createdAt
}

func (o *ServiceOrder) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *ServiceOrder) ExecutedAt() *time.Time {
	return o.executedAt
}

func (o *ServiceOrder) ClosedAt() *time.Time {
	return o.closedAt
}

func (o *ServiceOrder) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}

// UpdateContact replaces the client contact fields. Field edits are allowed
// in every status: closed orders stay editable through the reopen-for-edit
// capability, and saving them never touches status or the lifecycle stamps.
func (o *ServiceOrder) UpdateContact(clientName, contactPhone, contactEmail string) error {
	if len(clientName) == 0 {
		return fmt.Errorf("client name is required")
	}
	if len(contactPhone) == 0 {
		return fmt.Errorf("contact phone is required")
	}
	o.clientName = clientName
	o.contactPhone = contactPhone
	o.contactEmail = contactEmail
	o.touch()
	return nil
}

func (o *ServiceOrder) UpdateServiceCategory(category vo.ServiceCategory) error {
	if !category.IsValid() {
		return fmt.Errorf("invalid service category")
	}
	o.serviceCategory = category
	o.touch()
	return nil
}

func (o *ServiceOrder) UpdateAddress(address string) {
	if address != o.address {
		// Stale coordinates would pin the marker at the old address.
		o.latitude = nil
		o.longitude = nil
	}
	o.address = address
	o.touch()
}

func (o *ServiceOrder) SetCoordinates(latitude, longitude float64) {
	o.latitude = &latitude
	o.longitude = &longitude
	o.touch()
}

func (o *ServiceOrder) UpdateProblemDescription(description string) {
	o.problemDescription = description
	o.touch()
}

func (o *ServiceOrder) UpdateWorkNotes(notes string) {
	o.workNotes = notes
	o.touch()
}

func (o *ServiceOrder) AppendWorkNote(note string) {
	if note == "" {
		return
	}
	if o.workNotes == "" {
		o.workNotes = note
	} else {
		o.workNotes = o.workNotes + "\n" + note
	}
	o.touch()
}

func (o *ServiceOrder) SetCosts(laborCents, materialCents int64) error {
	if laborCents < 0 || materialCents < 0 {
		return fmt.Errorf("costs cannot be negative")
	}
	o.laborCostCents = laborCents
	o.materialCostCents = materialCents
	o.touch()
	return nil
}

func (o *ServiceOrder) UpdateMaterialNotes(notes string) {
	o.materialNotes = notes
	o.touch()
}

func (o *ServiceOrder) AssignTechnicians(names []string) {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			cleaned = append(cleaned, name)
		}
	}
	o.assignedTechnicians = cleaned
	o.touch()
}

func (o *ServiceOrder) AddPhoto(bucket vo.PhotoBucket, url string) error {
	if !bucket.IsValid() {
		return fmt.Errorf("invalid photo bucket: %s", bucket)
	}
	if len(url) == 0 {
		return fmt.Errorf("photo URL is required")
	}
	o.photos = o.photos.WithPhoto(bucket, url)
	o.touch()
	return nil
}

func (o *ServiceOrder) SetPhotos(photos vo.PhotoSet) {
	o.photos = photos.Copy()
	o.touch()
}

// Transition moves the order to newStatus, stamping executedAt and closedAt
// the first time the corresponding state is entered. Returns true when this
// call closed the order, so the caller renders the closing report exactly once.
func (o *ServiceOrder) Transition(newStatus vo.OrderStatus) (bool, error) {
	if !newStatus.IsValid() {
		return false, fmt.Errorf("invalid status: %s", newStatus)
	}

	if o.status == newStatus {
		return false, nil
	}

	if !o.status.CanTransitionTo(newStatus) {
		return false, fmt.Errorf("cannot transition from %s to %s", o.status, newStatus)
	}

	o.status = newStatus
	now := time.Now()
	o.updatedAt = now

	if newStatus.IsExecuted() && o.executedAt == nil {
		o.executedAt = &now
	}

	closedNow := false
	if newStatus.IsClosed() && o.closedAt == nil {
		o.closedAt = &now
		closedNow = true
	}

	return closedNow, nil
}

// DeclineQuote closes a quoted order the client walked away from: only the
// visit fee is billed, materials zero out, and the standard decline note is
// appended to the work notes.
func (o *ServiceOrder) DeclineQuote(visitFeeCents int64) error {
	if !o.status.IsQuote() {
		return fmt.Errorf("only quoted orders can be declined, status is %s", o.status)
	}
	if visitFeeCents < 0 {
		return fmt.Errorf("visit fee cannot be negative")
	}

	o.laborCostCents = visitFeeCents
	o.materialCostCents = 0
	o.AppendWorkNote(QuoteDeclinedNote)

	if _, err := o.Transition(vo.StatusClosed); err != nil {
		return err
	}

	return nil
}

func (o *ServiceOrder) touch() {
	o.updatedAt = time.Now()
}
